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
	"testing"

	fm "github.com/samply/golang-fhir-models/fhir-models/fhir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var text = "text-133546"
var code = "code-130834"
var diagnostics = "diagnostics-131023"

func TestString(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		errorResponse := &ErrorResponse{
			StatusCode: 400,
			Outcome:    &fm.OperationOutcome{},
		}
		assert.Equal(t, "StatusCode  : 400\n", errorResponse.String())
	})

	t.Run("WithOneIssue", func(t *testing.T) {
		errorResponse := &ErrorResponse{
			StatusCode: 400,
			Outcome: &fm.OperationOutcome{
				Issue: []fm.OperationOutcomeIssue{{}},
			},
		}
		assert.Equal(t, `StatusCode  : 400
Severity    : Fatal
Code        : Content invalid against the specification or a profile.
`, errorResponse.String())
	})

	t.Run("WithOneIssueAndDetailsWithText", func(t *testing.T) {
		errorResponse := &ErrorResponse{
			StatusCode: 400,
			Outcome: &fm.OperationOutcome{
				Issue: []fm.OperationOutcomeIssue{
					{Details: &fm.CodeableConcept{Text: &text}},
				},
			},
		}
		assert.Equal(t, `StatusCode  : 400
Severity    : Fatal
Code        : Content invalid against the specification or a profile.
Details     : text-133546
`, errorResponse.String())
	})

	t.Run("WithOneIssueAndDetailsWithCode", func(t *testing.T) {
		errorResponse := &ErrorResponse{
			StatusCode: 400,
			Outcome: &fm.OperationOutcome{
				Issue: []fm.OperationOutcomeIssue{
					{Details: &fm.CodeableConcept{Coding: []fm.Coding{{Code: &code}}}},
				},
			},
		}
		assert.Equal(t, `StatusCode  : 400
Severity    : Fatal
Code        : Content invalid against the specification or a profile.
Details     : code-130834
`, errorResponse.String())
	})

	t.Run("WithOneIssueAndDiagnostics", func(t *testing.T) {
		errorResponse := &ErrorResponse{
			StatusCode: 400,
			Outcome: &fm.OperationOutcome{
				Issue: []fm.OperationOutcomeIssue{{Diagnostics: &diagnostics}},
			},
		}
		assert.Equal(t, `StatusCode  : 400
Severity    : Fatal
Code        : Content invalid against the specification or a profile.
Diagnostics : diagnostics-131023
`, errorResponse.String())
	})

	t.Run("WithOneIssueAndOneExpression", func(t *testing.T) {
		errorResponse := &ErrorResponse{
			StatusCode: 400,
			Outcome: &fm.OperationOutcome{
				Issue: []fm.OperationOutcomeIssue{{Expression: []string{"expression-131256"}}},
			},
		}
		assert.Equal(t, `StatusCode  : 400
Severity    : Fatal
Code        : Content invalid against the specification or a profile.
Expression  : expression-131256
`, errorResponse.String())
	})

	t.Run("WithOneIssueAndTwoExpressions", func(t *testing.T) {
		errorResponse := &ErrorResponse{
			StatusCode: 400,
			Outcome: &fm.OperationOutcome{
				Issue: []fm.OperationOutcomeIssue{
					{Expression: []string{"expression-131256", "expression-131345"}},
				},
			},
		}
		assert.Equal(t, `StatusCode  : 400
Severity    : Fatal
Code        : Content invalid against the specification or a profile.
Expression  : expression-131256, expression-131345
`, errorResponse.String())
	})

	t.Run("WithTwoIssues", func(t *testing.T) {
		errorResponse := &ErrorResponse{
			StatusCode: 400,
			Outcome: &fm.OperationOutcome{
				Issue: []fm.OperationOutcomeIssue{{}, {}},
			},
		}
		assert.Equal(t, `StatusCode  : 400
Severity    : Fatal
Code        : Content invalid against the specification or a profile.
---
Severity    : Fatal
Code        : Content invalid against the specification or a profile.
`, errorResponse.String())
	})
}

func TestNewErrorResponse(t *testing.T) {
	t.Run("OperationOutcome", func(t *testing.T) {
		body := []byte(`{"resourceType":"OperationOutcome","issue":[{"severity":"error","code":"not-found","diagnostics":"Measure not found"}]}`)

		errorResponse := NewErrorResponse(404, body)

		require.NotNil(t, errorResponse.Outcome)
		assert.Equal(t, 404, errorResponse.StatusCode)
		assert.Empty(t, errorResponse.OtherError)
		require.Len(t, errorResponse.Outcome.Issue, 1)
		assert.Equal(t, "Measure not found", *errorResponse.Outcome.Issue[0].Diagnostics)
	})

	t.Run("OtherBody", func(t *testing.T) {
		errorResponse := NewErrorResponse(502, []byte("Bad Gateway\n"))

		assert.Nil(t, errorResponse.Outcome)
		assert.Equal(t, "Bad Gateway", errorResponse.OtherError)
		assert.Equal(t, "StatusCode  : 502\nError       : Bad Gateway\n", errorResponse.Error())
	})
}
