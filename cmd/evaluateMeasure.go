// Copyright 2019 - 2025 The Samply Community
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package cmd

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/google/uuid"
	"github.com/samply/fhirmodel/constraint"
	"github.com/samply/fhirmodel/data"
	"github.com/samply/fhirmodel/fhir"
	"github.com/samply/fhirmodel/util"
	fm "github.com/samply/golang-fhir-models/fhir-models/fhir"
	"github.com/spf13/cobra"
)

const maxRetries = 3

var (
	asyncPollInterval = time.Second
	asyncPollTimeout  = time.Hour
	retryBackoff      = 2 * time.Second
)

func CreateMeasureResource(m data.Measure, measureUrl string, libraryUrl string) (*fm.Measure, error) {
	if len(m.Group) == 0 {
		return nil, errors.New("missing group")
	}
	measure := &fm.Measure{
		Url:    &measureUrl,
		Status: fm.PublicationStatusActive,
		SubjectCodeableConcept: &fm.CodeableConcept{
			Coding: []fm.Coding{
				createCoding("http://hl7.org/fhir/resource-types", "Patient"),
			},
		},
		Scoring: &fm.CodeableConcept{
			Coding: []fm.Coding{
				createCoding("http://terminology.hl7.org/CodeSystem/measure-scoring", "cohort"),
			},
		},
		Library: []string{libraryUrl},
		Group:   make([]fm.MeasureGroup, 0, len(m.Group)),
	}
	for i, g := range m.Group {
		group, err := createMeasureGroup(g)
		if err != nil {
			return nil, fmt.Errorf("error in group[%d]: %w", i, err)
		}
		measure.Group = append(measure.Group, *group)
	}
	return measure, nil
}

func createMeasureGroup(g data.Group) (*fm.MeasureGroup, error) {
	if len(g.Population) == 0 {
		return nil, errors.New("missing population")
	}
	group := &fm.MeasureGroup{
		Population: make([]fm.MeasureGroupPopulation, 0, len(g.Population)),
		Stratifier: make([]fm.MeasureGroupStratifier, 0, len(g.Stratifier)),
	}
	if g.Type != "" && g.Type != "Patient" {
		populationBasis := g.Type
		group.Extension = []fm.Extension{{
			Url:       "http://hl7.org/fhir/us/cqfmeasures/StructureDefinition/cqfm-populationBasis",
			ValueCode: &populationBasis,
		}}
	}
	if g.Code != "" {
		group.Code = &fm.CodeableConcept{Text: &g.Code}
	}
	if g.Description != "" {
		group.Description = &g.Description
	}
	for i, p := range g.Population {
		population, err := createMeasureGroupPopulation(p)
		if err != nil {
			return nil, fmt.Errorf("population[%d]: %w", i, err)
		}
		group.Population = append(group.Population, *population)
	}
	for i, s := range g.Stratifier {
		stratifier, err := createMeasureGroupStratifier(s)
		if err != nil {
			return nil, fmt.Errorf("stratifier[%d]: %w", i, err)
		}
		group.Stratifier = append(group.Stratifier, *stratifier)
	}
	return group, nil
}

func createMeasureGroupPopulation(p data.Population) (*fm.MeasureGroupPopulation, error) {
	if p.Expression == "" {
		return nil, errors.New("missing expression name")
	}
	code := p.Code
	if code == "" {
		code = "initial-population"
	}
	return &fm.MeasureGroupPopulation{
		Code: &fm.CodeableConcept{
			Coding: []fm.Coding{
				createCoding("http://terminology.hl7.org/CodeSystem/measure-population", code),
			},
		},
		Criteria: fm.Expression{
			Language:   "text/cql-identifier",
			Expression: &p.Expression,
		},
	}, nil
}

func createMeasureGroupStratifier(s data.Stratifier) (*fm.MeasureGroupStratifier, error) {
	if s.Code == "" {
		return nil, errors.New("missing code")
	}
	if s.Expression == "" {
		return nil, errors.New("missing expression name")
	}
	stratifier := &fm.MeasureGroupStratifier{
		Code: &fm.CodeableConcept{
			Text: &s.Code,
		},
		Criteria: &fm.Expression{
			Language:   "text/cql-identifier",
			Expression: &s.Expression,
		},
	}
	if s.Description != "" {
		stratifier.Description = &s.Description
	}
	return stratifier, nil
}

func createCoding(system string, code string) fm.Coding {
	return fm.Coding{System: &system, Code: &code}
}

func CreateLibraryResource(m data.Measure, libraryUrl string) (*fm.Library, error) {
	if m.Library == "" {
		return nil, errors.New("error while reading the measure file: missing CQL library filename")
	}
	libraryFile, err := os.ReadFile(m.Library)
	if err != nil {
		return nil, fmt.Errorf("error while reading the CQL library file: %w", err)
	}
	return &fm.Library{
		Url:    &libraryUrl,
		Status: fm.PublicationStatusActive,
		Type: fm.CodeableConcept{
			Coding: []fm.Coding{
				createCoding("http://terminology.hl7.org/CodeSystem/library-type", "logic-library"),
			},
		},
		Content: []fm.Attachment{
			createAttachment("text/cql", base64.StdEncoding.EncodeToString(libraryFile)),
		},
	}, nil
}

func createAttachment(contentType string, data string) fm.Attachment {
	return fm.Attachment{
		ContentType: &contentType,
		Data:        &data,
	}
}

func createBundleEntry(url string, resource []byte) fm.BundleEntry {
	return fm.BundleEntry{
		Resource: resource,
		Request: &fm.BundleEntryRequest{
			Method: fm.HTTPVerbPOST,
			Url:    url,
		},
	}
}

func readMeasureFile(filename string) (*data.Measure, error) {
	file, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	measure := data.Measure{}
	if err := yaml.Unmarshal(file, &measure); err != nil {
		return nil, fmt.Errorf("error while parsing the measure file %s: %w", filename, err)
	}
	return &measure, nil
}

// RandomUrl returns a random URN usable as canonical URL.
func RandomUrl() (string, error) {
	myUuid, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}

	return "urn:uuid:" + myUuid.String(), nil
}

// createMeasureBundle returns a transaction bundle creating the measure and
// its library.
func createMeasureBundle(measure *data.Measure, measureUrl, libraryUrl string) ([]byte, error) {
	measureResource, err := CreateMeasureResource(*measure, measureUrl, libraryUrl)
	if err != nil {
		return nil, fmt.Errorf("error while reading the measure file: %w", err)
	}
	measureBytes, err := json.Marshal(measureResource)
	if err != nil {
		return nil, err
	}

	library, err := CreateLibraryResource(*measure, libraryUrl)
	if err != nil {
		return nil, err
	}
	libraryBytes, err := json.Marshal(library)
	if err != nil {
		return nil, err
	}

	bundle := fm.Bundle{
		Type: fm.BundleTypeTransaction,
		Entry: []fm.BundleEntry{
			createBundleEntry("Library", libraryBytes),
			createBundleEntry("Measure", measureBytes),
		},
	}
	return json.Marshal(bundle)
}

func uploadMeasure(client *fhir.Client, bundle []byte) error {
	req, err := client.NewTransactionRequest(bytes.NewReader(bundle))
	if err != nil {
		return err
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("can't create the Measure and/or Library Resource:\n\n%w",
			util.NewErrorResponse(resp.StatusCode, body))
	}
	return nil
}

// evaluateMeasure evaluates the measure with the canonical URL measureUrl.
// Servers answering asynchronously are polled until the MeasureReport is
// available.
func evaluateMeasure(client *fhir.Client, measureUrl string) (*fhir.MeasureReport, error) {
	req, err := client.NewTypeOperationRequest("Measure", "evaluate-measure",
		url.Values{
			"measure":     []string{measureUrl},
			"periodStart": []string{"1900"},
			"periodEnd":   []string{"2200"},
		})
	if err != nil {
		return nil, err
	}
	req.Header.Set("Prefer", "respond-async")

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	switch resp.StatusCode {
	case http.StatusOK:
		return fhir.ReadMeasureReport(bytes.NewReader(body))
	case http.StatusAccepted:
		location := resp.Header.Get("Content-Location")
		if location == "" {
			return nil, errors.New("missing Content-Location header in async response")
		}
		return pollAsyncResponse(client, measureUrl, location)
	default:
		return nil, evaluationError(measureUrl, util.NewErrorResponse(resp.StatusCode, body))
	}
}

func pollAsyncResponse(client *fhir.Client, measureUrl string, location string) (*fhir.MeasureReport, error) {
	deadline := time.Now().Add(asyncPollTimeout)
	for time.Now().Before(deadline) {
		req, err := client.NewPollRequest(location)
		if err != nil {
			return nil, err
		}

		resp, err := client.Do(req)
		if err != nil {
			return nil, err
		}
		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, err
		}

		switch resp.StatusCode {
		case http.StatusAccepted:
			log.Debug().Str("location", location).Msg("measure evaluation still in progress")
			time.Sleep(asyncPollInterval)
		case http.StatusOK:
			return readAsyncResponse(body)
		default:
			return nil, evaluationError(measureUrl, util.NewErrorResponse(resp.StatusCode, body))
		}
	}
	return nil, fmt.Errorf("measure evaluation did not finish within %s", asyncPollTimeout)
}

func readAsyncResponse(body []byte) (*fhir.MeasureReport, error) {
	var bundle fm.Bundle
	if err := json.Unmarshal(body, &bundle); err != nil {
		return nil, fmt.Errorf("error while reading the async response Bundle: %w", err)
	}
	if len(bundle.Entry) != 1 {
		return nil, fmt.Errorf("expected one entry in async response Bundle but was %d entries", len(bundle.Entry))
	}
	return fhir.ReadMeasureReport(bytes.NewReader(bundle.Entry[0].Resource))
}

func evaluationError(measureUrl string, errRes *util.ErrorResponse) error {
	return fmt.Errorf("error while evaluating the measure with canonical URL %s:\n\n%w", measureUrl, errRes)
}

// isRetryable reports whether err is a timeout reported by the server.
func isRetryable(err error) bool {
	var errRes *util.ErrorResponse
	if !errors.As(err, &errRes) || errRes.StatusCode != http.StatusServiceUnavailable || errRes.Outcome == nil {
		return false
	}
	for _, issue := range errRes.Outcome.Issue {
		if issue.Code == fm.IssueTypeTimeout {
			return true
		}
	}
	return false
}

func evaluateMeasureWithRetry(client *fhir.Client, measureUrl string) (*fhir.MeasureReport, error) {
	backoff := retryBackoff
	for retry := 0; ; retry++ {
		report, err := evaluateMeasure(client, measureUrl)
		if err == nil || retry == maxRetries || !isRetryable(err) {
			return report, err
		}
		log.Warn().Int("retry", retry+1).Dur("backoff", backoff).Msg("measure evaluation timed out, retrying")
		time.Sleep(backoff)
		backoff *= 2
	}
}

// checkReport logs the violated invariants of report.
func checkReport(report *fhir.MeasureReport) error {
	violations, err := constraint.NewEvaluator().Evaluate(report)
	if err != nil {
		return err
	}
	for _, v := range violations {
		if v.Constraint.Level == fhir.LevelRule {
			log.Error().Str("constraint", v.Constraint.ID).Str("path", v.Path).Msg(v.Constraint.Description)
		} else {
			log.Warn().Str("constraint", v.Constraint.ID).Str("path", v.Path).Msg(v.Constraint.Description)
		}
	}
	return nil
}

var evaluateMeasureCmd = &cobra.Command{
	Use:   "evaluate-measure [measure-file]",
	Short: "Evaluates a Measure",
	Long: `Given a measure in YAML form, creates the required FHIR resources,
evaluates that measure and returns the measure report.

The measure file names a CQL library file and the groups of the measure:

  library: all.cql
  group:
  - type: Patient
    population:
    - expression: InInitialPopulation
    stratifier:
    - code: gender
      expression: Gender

The returned MeasureReport is checked against its invariants.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := cmd.Flags().GetString("format")
		if err != nil {
			return err
		}

		measure, err := readMeasureFile(args[0])
		if err != nil {
			return err
		}

		measureUrl, err := RandomUrl()
		if err != nil {
			return err
		}

		libraryUrl, err := RandomUrl()
		if err != nil {
			return err
		}

		bundle, err := createMeasureBundle(measure, measureUrl, libraryUrl)
		if err != nil {
			return err
		}

		if err := createClient(); err != nil {
			return err
		}
		defer client.CloseIdleConnections()

		if err := uploadMeasure(client, bundle); err != nil {
			return err
		}

		log.Info().Str("measure", measureUrl).Str("server", cfg.Server).Msg("evaluate measure")

		report, err := evaluateMeasureWithRetry(client, measureUrl)
		if err != nil {
			return err
		}

		if err := checkReport(report); err != nil {
			return err
		}

		return writeResource(cmd.OutOrStdout(), report, format)
	},
}

func init() {
	rootCmd.AddCommand(evaluateMeasureCmd)

	evaluateMeasureCmd.Flags().String("format", formatJSON, "output format (json, yaml)")
}
