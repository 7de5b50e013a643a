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
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/samply/fhirmodel/constraint"
	"github.com/samply/fhirmodel/fhir"
	"github.com/samply/fhirmodel/util"
	"github.com/spf13/cobra"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

type validationResult struct {
	name                              string
	bytesIn                           int64
	parseDuration, constraintDuration time.Duration
	violations                        []constraint.Violation
	err                               error
}

// validateResource reads a MeasureReport from r and evaluates its
// constraints. The name identifies the resource in the result.
func validateResource(evaluator *constraint.Evaluator, name string, r io.Reader) validationResult {
	body, err := io.ReadAll(r)
	if err != nil {
		return validationResult{name: name, err: err}
	}
	result := validationResult{name: name, bytesIn: int64(len(body))}

	start := time.Now()
	report, err := fhir.ReadMeasureReport(bytes.NewReader(body))
	result.parseDuration = time.Since(start)
	if err != nil {
		result.err = err
		return result
	}

	start = time.Now()
	result.violations, result.err = evaluator.Evaluate(report)
	result.constraintDuration = time.Since(start)
	return result
}

// validateFile validates the resource in a JSON file or all resources in an
// NDJSON file. Resources of NDJSON files are named by file and line number.
func validateFile(evaluator *constraint.Evaluator, filename string, results chan<- validationResult) {
	file, err := os.Open(filename)
	if err != nil {
		results <- validationResult{name: filename, err: err}
		return
	}
	defer file.Close()

	if !util.IsNDJSON(filename) {
		results <- validateResource(evaluator, filename, file)
		return
	}

	err = util.ScanLines(file, func(line util.Line) error {
		if !line.Empty() {
			name := fmt.Sprintf("%s:%d", filename, line.Number)
			results <- validateResource(evaluator, name, line.Section(file))
		}
		return nil
	})
	if err != nil {
		results <- validationResult{name: filename, err: err}
	}
}

func aggregateValidationResults(results <-chan validationResult, statsCh chan<- *util.ValidationStats) {
	stats := util.NewValidationStats()
	for result := range results {
		stats.Resources++
		stats.TotalBytesIn += result.bytesIn

		if result.err != nil {
			log.Debug().Str("resource", result.name).Err(result.err).Msg("validation failed")
			stats.Failed++
			stats.Errors[result.name] = result.err
			continue
		}

		stats.ParseDurations = append(stats.ParseDurations, result.parseDuration.Seconds())
		stats.ConstraintDurations = append(stats.ConstraintDurations, result.constraintDuration.Seconds())
		if len(result.violations) > 0 {
			stats.Outcomes[result.name] = constraint.ToOperationOutcome(result.violations)
		}
		if constraint.HasErrors(result.violations) {
			stats.Invalid++
		}
	}
	statsCh <- stats
}

// validateFiles validates files using up to concurrency goroutines. The
// function onDone is called after each file.
func validateFiles(files []string, concurrency int, onDone func()) *util.ValidationStats {
	evaluator := constraint.NewEvaluator()

	results := make(chan validationResult)
	statsCh := make(chan *util.ValidationStats)
	go aggregateValidationResults(results, statsCh)

	start := time.Now()
	sem := make(chan struct{}, concurrency)
	var wg sync.WaitGroup
	for _, filename := range files {
		sem <- struct{}{}
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() { <-sem }()
			validateFile(evaluator, filename, results)
			onDone()
		}()
	}
	wg.Wait()
	close(results)

	stats := <-statsCh
	stats.TotalDuration = time.Since(start)
	return stats
}

var validateCmd = &cobra.Command{
	Use:   "validate [file or directory]...",
	Short: "Validates MeasureReport resources",
	Long: `Validates MeasureReport resources given as JSON files or NDJSON files.
Directories are searched recursively for files ending in .json or .ndjson.

Each resource is checked for its structure, required elements, closed value
sets and references. Afterwards the invariants of the resource are evaluated.
Violated invariants with level Warning are reported but do not fail the
validation.

Example:

  fhirmodel validate reports/ --concurrency 4`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		files, err := util.FindResourceFiles(args)
		if err != nil {
			return err
		}
		if len(files) == 0 {
			return fmt.Errorf("no JSON or NDJSON files found in %v", args)
		}
		log.Info().Int("files", len(files)).Int("concurrency", cfg.Concurrency).Msg("start validation")

		onDone := func() {}
		var progress *mpb.Progress
		if !cfg.NoProgress {
			progress = mpb.New(mpb.WithOutput(os.Stderr))
			bar := progress.AddBar(int64(len(files)),
				mpb.BarRemoveOnComplete(),
				mpb.PrependDecorators(
					decor.Name("validate", decor.WC{W: 9}),
					decor.OnComplete(decor.EwmaETA(decor.ET_STYLE_GO, 60, decor.WC{W: 4}), "done"),
				),
				mpb.AppendDecorators(decor.Percentage()),
			)
			var mu sync.Mutex
			last := time.Now()
			onDone = func() {
				mu.Lock()
				defer mu.Unlock()
				bar.EwmaIncrement(time.Since(last))
				last = time.Now()
			}
		}

		stats := validateFiles(files, cfg.Concurrency, onDone)
		if progress != nil {
			progress.Wait()
		}

		fmt.Fprint(cmd.OutOrStdout(), stats.String())

		if !stats.Ok() {
			return fmt.Errorf("validation failed: %d invalid and %d unreadable resources", stats.Invalid, stats.Failed)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().Int("concurrency", 2, "number of files validated in parallel")
}
