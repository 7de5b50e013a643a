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
	"encoding/json"
	"fmt"
	"strings"

	fm "github.com/samply/golang-fhir-models/fhir-models/fhir"
)

// ErrorResponse represents an error returned from the FHIR server.
type ErrorResponse struct {
	StatusCode int
	Outcome    *fm.OperationOutcome
	OtherError string
}

// NewErrorResponse creates an ErrorResponse from the body of a failed
// request. Bodies which are no OperationOutcome are kept as OtherError.
func NewErrorResponse(statusCode int, body []byte) *ErrorResponse {
	var outcome fm.OperationOutcome
	if err := json.Unmarshal(body, &outcome); err != nil || len(outcome.Issue) == 0 {
		return &ErrorResponse{StatusCode: statusCode, OtherError: strings.TrimSpace(string(body))}
	}
	return &ErrorResponse{StatusCode: statusCode, Outcome: &outcome}
}

// Error implements the error interface, so an ErrorResponse can be returned
// by commands.
func (errRes *ErrorResponse) Error() string {
	return errRes.String()
}

// String returns the ErrorResponse in a default formatted way.
func (errRes *ErrorResponse) String() string {
	builder := strings.Builder{}
	builder.WriteString(fmt.Sprintf("StatusCode  : %d\n", errRes.StatusCode))
	if errRes.Outcome != nil {
		builder.WriteString(FmtOutcomes(errRes.Outcome))
	}
	if len(errRes.OtherError) > 0 {
		builder.WriteString(fmt.Sprintf("Error       : %s\n", IndentExceptFirstLine(14, errRes.OtherError)))
	}
	return builder.String()
}

func Indent(spaces int, v string) string {
	pad := strings.Repeat(" ", spaces)
	return pad + IndentExceptFirstLine(spaces, v)
}

func IndentExceptFirstLine(spaces int, v string) string {
	pad := strings.Repeat(" ", spaces)
	return strings.ReplaceAll(v, "\n", "\n"+pad)
}
