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
package util

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	fm "github.com/samply/golang-fhir-models/fhir-models/fhir"
)

// ValidationStats collects the results of validating a set of resources.
type ValidationStats struct {
	Resources, Invalid, Failed          int
	TotalBytesIn                        int64
	TotalDuration                       time.Duration
	ParseDurations, ConstraintDurations []float64

	// Outcomes holds the issues found per resource. Resources are named by
	// their file and, for NDJSON files, their line number.
	Outcomes map[string]*fm.OperationOutcome

	// Errors holds resources which could not be read or parsed.
	Errors map[string]error
}

func NewValidationStats() *ValidationStats {
	return &ValidationStats{
		Outcomes: make(map[string]*fm.OperationOutcome),
		Errors:   make(map[string]error),
	}
}

// Valid returns the number of resources without errors.
func (vs *ValidationStats) Valid() int {
	return vs.Resources - vs.Invalid - vs.Failed
}

// Ok reports whether all resources could be parsed and have no errors.
func (vs *ValidationStats) Ok() bool {
	return vs.Invalid == 0 && vs.Failed == 0
}

func (vs *ValidationStats) String() string {
	builder := strings.Builder{}
	builder.WriteString(fmt.Sprintf("Resources	[total]			%d\n", vs.Resources))
	builder.WriteString(fmt.Sprintf("Resources	[valid, invalid, failed]	%d, %d, %d\n", vs.Valid(), vs.Invalid, vs.Failed))
	builder.WriteString(fmt.Sprintf("Duration	[total]			%s\n", FmtDurationHumanReadable(vs.TotalDuration)))

	if len(vs.ParseDurations) > 0 {
		p := CalculateDurationStatistics(vs.ParseDurations)
		builder.WriteString(fmt.Sprintf("Parse Latencies	[mean, 50, 95, 99, max]	%s, %s, %s, %s, %s\n", p.Mean, p.Q50, p.Q95, p.Q99, p.Max))
	}

	if len(vs.ConstraintDurations) > 0 {
		p := CalculateDurationStatistics(vs.ConstraintDurations)
		builder.WriteString(fmt.Sprintf("Inv. Latencies	[mean, 50, 95, 99, max]	%s, %s, %s, %s, %s\n", p.Mean, p.Q50, p.Q95, p.Q99, p.Max))
	}

	if vs.Resources > 0 {
		builder.WriteString(fmt.Sprintf("Bytes In	[total, mean]		%s, %s\n", FmtBytesHumanReadable(float32(vs.TotalBytesIn)), FmtBytesHumanReadable(float32(vs.TotalBytesIn)/float32(vs.Resources))))
	}

	if len(vs.Outcomes) > 0 {
		var errors, warnings int
		for _, outcome := range vs.Outcomes {
			e, w := CountIssues(outcome)
			errors += e
			warnings += w
		}
		builder.WriteString(fmt.Sprintf("Issues		[errors, warnings]	%d, %d\n", errors, warnings))
	}

	for _, name := range slices.Sorted(maps.Keys(vs.Outcomes)) {
		builder.WriteString(fmt.Sprintf("\nIssues in %s:\n", name))
		builder.WriteString(Indent(2, FmtOutcomes(vs.Outcomes[name])))
	}

	for _, name := range slices.Sorted(maps.Keys(vs.Errors)) {
		builder.WriteString(fmt.Sprintf("\nError in %s:\n", name))
		builder.WriteString(Indent(2, vs.Errors[name].Error()))
		builder.WriteString("\n")
	}

	return builder.String()
}
