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
	"strings"

	fm "github.com/samply/golang-fhir-models/fhir-models/fhir"
)

// FmtOutcomes formats all issues of the outcomes in a block per issue. Blocks
// are separated by "---" lines.
func FmtOutcomes(outcomes ...*fm.OperationOutcome) string {
	builder := strings.Builder{}
	for _, outcome := range outcomes {
		if outcome == nil {
			continue
		}
		for _, issue := range outcome.Issue {
			if builder.Len() > 0 {
				builder.WriteString("---\n")
			}
			writeIssue(&builder, issue)
		}
	}
	return builder.String()
}

func writeIssue(builder *strings.Builder, issue fm.OperationOutcomeIssue) {
	builder.WriteString(fmt.Sprintf("Severity    : %s\n", issue.Severity.Display()))
	builder.WriteString(fmt.Sprintf("Code        : %s\n", issue.Code.Definition()))
	if issue.Details != nil {
		if issue.Details.Text != nil {
			builder.WriteString(fmt.Sprintf("Details     : %s\n", *issue.Details.Text))
		}
		for _, coding := range issue.Details.Coding {
			if coding.Code != nil {
				builder.WriteString(fmt.Sprintf("Details     : %s\n", *coding.Code))
			}
		}
	}
	if issue.Diagnostics != nil {
		builder.WriteString(fmt.Sprintf("Diagnostics : %s\n", *issue.Diagnostics))
	}
	if len(issue.Expression) > 0 {
		builder.WriteString(fmt.Sprintf("Expression  : %s\n", strings.Join(issue.Expression, ", ")))
	}
}

// CountIssues returns the number of issues with severity fatal or error and
// the number of warnings in outcome.
func CountIssues(outcome *fm.OperationOutcome) (errors int, warnings int) {
	if outcome == nil {
		return 0, 0
	}
	for _, issue := range outcome.Issue {
		switch issue.Severity {
		case fm.IssueSeverityFatal, fm.IssueSeverityError:
			errors++
		case fm.IssueSeverityWarning:
			warnings++
		}
	}
	return errors, warnings
}
