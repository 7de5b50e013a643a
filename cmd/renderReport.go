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
	_ "embed"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"strings"

	"github.com/samply/fhirmodel/fhir"
	"github.com/samply/fhirmodel/util"
	"github.com/spf13/cobra"
)

//go:embed report-template.gohtml
var reportTemplate string

var reportFuncs = template.FuncMap{
	"inc": func(i int) int {
		return i + 1
	},
	"ratio": func(n int, d int) string {
		if d == 0 {
			return "-"
		}
		return fmt.Sprintf("%.2f %%", float64(n*100)/float64(d))
	},
	"concept":      conceptText,
	"period":       periodText,
	"stratumValue": stratumValue,
	"populationCount": func(g *fhir.MeasureReportGroup) int {
		if len(g.Population()) == 0 {
			return 0
		}
		return count(g.Population()[0].Count())
	},
	"stratumCount": func(s *fhir.MeasureReportGroupStratifierStratum) int {
		if len(s.Population()) == 0 {
			return 0
		}
		return count(s.Population()[0].Count())
	},
}

var reportTmpl = template.Must(template.New("report").Funcs(reportFuncs).Parse(reportTemplate))

func renderReport(wr io.Writer, report *fhir.MeasureReport) error {
	return reportTmpl.Execute(wr, report)
}

func count(c *fhir.Integer) int {
	if c == nil {
		return 0
	}
	return int(c.Value())
}

func isNullString(s *fhir.String) bool {
	return s == nil || !s.HasValue() || s.Value() == "null"
}

// conceptText returns the text of c or its codings if it has no text. Texts
// of "null" are treated as missing.
func conceptText(c *fhir.CodeableConcept) string {
	if c == nil {
		return ""
	}
	if !isNullString(c.Text()) {
		return c.Text().Value()
	}
	codings := make([]string, 0, len(c.Coding()))
	for _, coding := range c.Coding() {
		codings = append(codings, codingText(coding))
	}
	return strings.Join(codings, ", ")
}

func codingText(c *fhir.Coding) string {
	var code, system string
	if c.Code() != nil {
		code = c.Code().Value()
	}
	if c.System() != nil {
		system = c.System().Value()
	}
	if c.Display() != nil && c.Display().HasValue() {
		code = c.Display().Value()
	}
	if system == "" {
		return code
	}
	return fmt.Sprintf("%s (%s)", code, system)
}

func periodText(p *fhir.Period) string {
	var start, end string
	if p.Start() != nil {
		start = p.Start().Value()
	}
	if p.End() != nil {
		end = p.End().Value()
	}
	return start + " - " + end
}

// stratumValue returns the value of s, its components or "nothing" for
// strata without value.
func stratumValue(s *fhir.MeasureReportGroupStratifierStratum) string {
	if text := conceptText(s.Value()); text != "" {
		return text
	}
	components := make([]string, 0, len(s.Component()))
	for _, c := range s.Component() {
		components = append(components, conceptText(c.Code())+": "+conceptText(c.Value()))
	}
	if len(components) == 0 {
		return "nothing"
	}
	return strings.Join(components, "; ")
}

// fetchMeasureReport reads the MeasureReport with id from the server.
func fetchMeasureReport(client *fhir.Client, id string) (*fhir.MeasureReport, error) {
	req, err := client.NewReadRequest("MeasureReport", id)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("error while reading the MeasureReport with id %s:\n\n%w", id,
			util.NewErrorResponse(resp.StatusCode, body))
	}
	return fhir.ReadMeasureReport(bytes.NewReader(body))
}

func readReportInput(args []string) (*fhir.MeasureReport, error) {
	input := "-"
	if len(args) == 1 {
		input = args[0]
	}

	in, err := openInput(input)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	report, err := fhir.ReadMeasureReport(in)
	if err != nil {
		return nil, fmt.Errorf("error while reading %s: %w", input, err)
	}
	return report, nil
}

var renderReportCmd = &cobra.Command{
	Use:   "render-report [file]",
	Short: "Renders a MeasureReport as HTML",
	Long: `Reads a MeasureReport from a file or stdin and renders its groups and
stratifiers as HTML tables. With --id the MeasureReport is read from the
server instead.

Examples:

  fhirmodel evaluate-measure measure.yml --server http://localhost:8080/fhir | fhirmodel render-report > report.html
  fhirmodel render-report --id 0 --server http://localhost:8080/fhir > report.html`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := cmd.Flags().GetString("id")
		if err != nil {
			return err
		}

		var report *fhir.MeasureReport
		if id != "" {
			if len(args) > 0 {
				return fmt.Errorf("can't use a file together with --id")
			}
			if err := createClient(); err != nil {
				return err
			}
			defer client.CloseIdleConnections()

			report, err = fetchMeasureReport(client, id)
		} else {
			report, err = readReportInput(args)
		}
		if err != nil {
			return err
		}

		return renderReport(cmd.OutOrStdout(), report)
	},
}

func init() {
	rootCmd.AddCommand(renderReportCmd)

	renderReportCmd.Flags().String("id", "", "the id of a MeasureReport to read from the server")
}
