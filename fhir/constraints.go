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

package fhir

import "strings"

// ConstraintLevel is the severity of a violated constraint.
type ConstraintLevel string

const (
	LevelRule    ConstraintLevel = "Rule"
	LevelWarning ConstraintLevel = "Warning"
)

// Constraint is an invariant of a resource expressed in FHIRPath.
//
// Location is the path of the elements the expression applies to, relative to
// the resource. An empty location means the resource itself. The expression
// has to hold for every element found at the location.
type Constraint struct {
	ID          string
	Level       ConstraintLevel
	Location    string
	Description string
	Expression  string
}

var domainResourceConstraints = []Constraint{
	{
		ID:          "dom-2",
		Level:       LevelRule,
		Description: "If the resource is contained in another resource, it SHALL NOT contain nested Resources",
		Expression:  "contained.contained.empty()",
	},
	{
		ID:          "dom-4",
		Level:       LevelRule,
		Description: "If a resource is contained in another resource, it SHALL NOT have a meta.versionId or a meta.lastUpdated",
		Expression:  "contained.meta.versionId.empty() and contained.meta.lastUpdated.empty()",
	},
	{
		ID:          "dom-5",
		Level:       LevelRule,
		Description: "If a resource is contained in another resource, it SHALL NOT have a security label",
		Expression:  "contained.meta.security.empty()",
	},
	{
		ID:          "dom-6",
		Level:       LevelWarning,
		Description: "A resource should have narrative for robust management",
		Expression:  "text.`div`.exists()",
	},
}

var measureReportConstraints = []Constraint{
	{
		ID:          "mrp-1",
		Level:       LevelRule,
		Description: "Measure Reports used for data collection SHALL NOT communicate group and score information",
		Expression:  "(type != 'data-collection') or group.exists().not()",
	},
	{
		ID:          "mrp-2",
		Level:       LevelRule,
		Location:    "group.stratifier.stratum",
		Description: "Stratifiers SHALL be either a single criteria or a set of criteria components",
		Expression:  "value.exists() xor component.exists()",
	},
}

var molecularSequenceConstraints = []Constraint{
	{
		ID:          "msq-3",
		Level:       LevelRule,
		Description: "Only 0 and 1 are valid for coordinateSystem",
		Expression:  "coordinateSystem = 1 or coordinateSystem = 0",
	},
	{
		ID:          "msq-5",
		Level:       LevelRule,
		Location:    "referenceSeq",
		Description: "GenomeBuild and chromosome must be both contained if either one of them is contained",
		Expression:  "(chromosome.empty() and genomeBuild.empty()) or (chromosome.exists() and genomeBuild.exists())",
	},
	{
		ID:          "msq-6",
		Level:       LevelRule,
		Location:    "referenceSeq",
		Description: "Have and only have one of the following elements in referenceSeq: genomeBuild, referenceSeqId, referenceSeqPointer or referenceSeqString",
		Expression:  "(genomeBuild.count()+referenceSeqId.count()+referenceSeqPointer.count()+referenceSeqString.count()) = 1",
	},
}

var substanceSpecificationConstraints []Constraint

// checkValueOrExtensions enforces that an extension has either a value or
// nested extensions.
func (e *Extension) checkValueOrExtensions() error {
	if (e.value != nil) == (len(e.extension) > 0) {
		return &ValidationError{Type: "Extension", Err: ErrInvalidValue,
			Detail: "must have either extensions or value[x], not both"}
	}
	return nil
}

func checkDiv(div string) error {
	if div != "" && !strings.HasPrefix(div, "<div") {
		return invalidValue("Narrative", "div", "not a div element: %.20q", div)
	}
	return nil
}
