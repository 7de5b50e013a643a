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

// Package constraint evaluates the FHIRPath invariants of resources.
package constraint

import (
	"fmt"
	"sync"

	"github.com/gofhir/fhirpath"
	"github.com/samply/fhirmodel/fhir"
	fm "github.com/samply/golang-fhir-models/fhir-models/fhir"
)

// Violation is a constraint which does not hold for a resource.
type Violation struct {
	Constraint fhir.Constraint
	// Path is the FHIRPath location of the elements the constraint was
	// evaluated on, e.g. "MeasureReport.group.stratifier.stratum".
	Path string
}

func (v Violation) String() string {
	return fmt.Sprintf("%s (%s) at %s: %s", v.Constraint.ID, v.Constraint.Level, v.Path, v.Constraint.Description)
}

// Evaluator evaluates the constraints of resources. It is safe for
// concurrent use.
type Evaluator struct {
	cache   map[string]*fhirpath.Expression
	cacheMu sync.RWMutex
}

func NewEvaluator() *Evaluator {
	return &Evaluator{cache: make(map[string]*fhirpath.Expression)}
}

// Evaluate evaluates all constraints of r and returns the violated ones.
// Errors while compiling or evaluating an expression are returned
// immediately.
func (e *Evaluator) Evaluate(r fhir.Resource) ([]Violation, error) {
	data, err := fhir.Marshal(r)
	if err != nil {
		return nil, err
	}

	var violations []Violation
	for _, c := range r.Constraints() {
		ok, err := e.holds(data, c)
		if err != nil {
			return nil, fmt.Errorf("error while evaluating constraint %s: %w", c.ID, err)
		}
		if !ok {
			violations = append(violations, Violation{Constraint: c, Path: path(r, c)})
		}
	}
	return violations, nil
}

// expression returns the expression of c applied to all elements at the
// location of c.
func expression(c fhir.Constraint) string {
	if c.Location == "" {
		return c.Expression
	}
	return c.Location + ".all(" + c.Expression + ")"
}

func path(r fhir.Resource, c fhir.Constraint) string {
	if c.Location == "" {
		return r.ResourceType()
	}
	return r.ResourceType() + "." + c.Location
}

func (e *Evaluator) holds(data []byte, c fhir.Constraint) (bool, error) {
	expr, err := e.compile(expression(c))
	if err != nil {
		return false, err
	}
	result, err := expr.Evaluate(data)
	if err != nil {
		return false, err
	}
	// an empty result means the constraint does not apply
	if result.Empty() {
		return true, nil
	}
	b, err := result.ToBoolean()
	if err != nil {
		return true, nil
	}
	return b, nil
}

func (e *Evaluator) compile(expr string) (*fhirpath.Expression, error) {
	e.cacheMu.RLock()
	compiled, ok := e.cache[expr]
	e.cacheMu.RUnlock()
	if ok {
		return compiled, nil
	}

	compiled, err := fhirpath.Compile(expr)
	if err != nil {
		return nil, err
	}

	e.cacheMu.Lock()
	e.cache[expr] = compiled
	e.cacheMu.Unlock()

	return compiled, nil
}

// HasErrors reports whether violations contain a violated rule.
func HasErrors(violations []Violation) bool {
	for _, v := range violations {
		if v.Constraint.Level == fhir.LevelRule {
			return true
		}
	}
	return false
}

// ToOperationOutcome converts violations into an OperationOutcome with one
// invariant issue per violation.
func ToOperationOutcome(violations []Violation) *fm.OperationOutcome {
	outcome := &fm.OperationOutcome{Issue: make([]fm.OperationOutcomeIssue, 0, len(violations))}
	for _, v := range violations {
		severity := fm.IssueSeverityError
		if v.Constraint.Level == fhir.LevelWarning {
			severity = fm.IssueSeverityWarning
		}
		diagnostics := fmt.Sprintf("%s: %s", v.Constraint.ID, v.Constraint.Description)
		outcome.Issue = append(outcome.Issue, fm.OperationOutcomeIssue{
			Severity:    severity,
			Code:        fm.IssueTypeInvariant,
			Diagnostics: &diagnostics,
			Expression:  []string{v.Path},
		})
	}
	return outcome
}
