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

package constraint

import (
	"sync"
	"testing"

	"github.com/samply/fhirmodel/fhir"
	fm "github.com/samply/golang-fhir-models/fhir-models/fhir"
	"github.com/stretchr/testify/assert"
)

func mustBuild[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func concept(text string) *fhir.CodeableConcept {
	return mustBuild(fhir.NewCodeableConceptBuilder().Text(fhir.StringOf(text)).Build())
}

func narrative() *fhir.Narrative {
	return mustBuild(fhir.NewNarrativeBuilder(fhir.NarrativeStatusGenerated.Code(),
		`<div xmlns="http://www.w3.org/1999/xhtml">report</div>`).Build())
}

func reportBuilder(typ fhir.MeasureReportType) *fhir.MeasureReportBuilder {
	period := mustBuild(fhir.NewPeriodBuilder().Start(fhir.DateTimeOf("2020")).Build())
	return fhir.NewMeasureReportBuilder(fhir.MeasureReportStatusComplete.Code(), typ.Code(),
		fhir.CanonicalOf("urn:uuid:1"), period)
}

func group(strata ...*fhir.MeasureReportGroupStratifierStratum) *fhir.MeasureReportGroup {
	population := mustBuild(fhir.NewMeasureReportGroupPopulationBuilder().Count(fhir.IntegerOf(1)).Build())
	b := fhir.NewMeasureReportGroupBuilder().Population(population)
	if len(strata) > 0 {
		b.Stratifier(mustBuild(fhir.NewMeasureReportGroupStratifierBuilder().Stratum(strata...).Build()))
	}
	return mustBuild(b.Build())
}

func ids(violations []Violation) []string {
	var ids []string
	for _, v := range violations {
		ids = append(ids, v.Constraint.ID)
	}
	return ids
}

func evaluate(t *testing.T, r fhir.Resource) []Violation {
	violations, err := NewEvaluator().Evaluate(r)
	if err != nil {
		t.Fatalf("could not evaluate the constraints: %v", err)
	}
	return violations
}

func TestEvaluate_MeasureReport(t *testing.T) {
	t.Run("valid report with narrative", func(t *testing.T) {
		report := mustBuild(reportBuilder(fhir.MeasureReportTypeSummary).Text(narrative()).Group(group()).Build())

		assert.Empty(t, evaluate(t, report))
	})

	t.Run("missing narrative is a warning", func(t *testing.T) {
		report := mustBuild(reportBuilder(fhir.MeasureReportTypeSummary).Group(group()).Build())

		violations := evaluate(t, report)

		assert.Equal(t, []string{"dom-6"}, ids(violations))
		assert.Equal(t, "MeasureReport", violations[0].Path)
		assert.Equal(t, fhir.LevelWarning, violations[0].Constraint.Level)
		assert.False(t, HasErrors(violations))
	})

	t.Run("data collection with groups", func(t *testing.T) {
		report := mustBuild(reportBuilder(fhir.MeasureReportTypeDataCollection).Text(narrative()).Group(group()).Build())

		violations := evaluate(t, report)

		assert.Equal(t, []string{"mrp-1"}, ids(violations))
		assert.True(t, HasErrors(violations))
	})

	t.Run("data collection without groups", func(t *testing.T) {
		report := mustBuild(reportBuilder(fhir.MeasureReportTypeDataCollection).Text(narrative()).Build())

		assert.Empty(t, evaluate(t, report))
	})

	t.Run("stratum with value and components", func(t *testing.T) {
		component := mustBuild(fhir.NewMeasureReportGroupStratifierStratumComponentBuilder(concept("age"), concept("40")).Build())
		valid := mustBuild(fhir.NewMeasureReportGroupStratifierStratumBuilder().Value(concept("male")).Build())
		invalid := mustBuild(fhir.NewMeasureReportGroupStratifierStratumBuilder().
			Value(concept("female")).
			Component(component).
			Build())
		report := mustBuild(reportBuilder(fhir.MeasureReportTypeSummary).Text(narrative()).Group(group(valid, invalid)).Build())

		violations := evaluate(t, report)

		assert.Equal(t, []string{"mrp-2"}, ids(violations))
		assert.Equal(t, "MeasureReport.group.stratifier.stratum", violations[0].Path)
	})

	t.Run("strata with either value or components", func(t *testing.T) {
		component := mustBuild(fhir.NewMeasureReportGroupStratifierStratumComponentBuilder(concept("age"), concept("40")).Build())
		byValue := mustBuild(fhir.NewMeasureReportGroupStratifierStratumBuilder().Value(concept("male")).Build())
		byComponent := mustBuild(fhir.NewMeasureReportGroupStratifierStratumBuilder().Component(component).Build())
		report := mustBuild(reportBuilder(fhir.MeasureReportTypeSummary).Text(narrative()).Group(group(byValue, byComponent)).Build())

		assert.Empty(t, evaluate(t, report))
	})
}

func TestEvaluate_MolecularSequence(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		referenceSeq := mustBuild(fhir.NewMolecularSequenceReferenceSeqBuilder().
			Chromosome(concept("1")).
			GenomeBuild(fhir.StringOf("GRCh38")).
			Build())
		sequence := mustBuild(fhir.NewMolecularSequenceBuilder(fhir.IntegerOf(1)).
			Text(narrative()).
			ReferenceSeq(referenceSeq).
			Build())

		assert.Empty(t, evaluate(t, sequence))
	})

	t.Run("invalid coordinate system", func(t *testing.T) {
		sequence := mustBuild(fhir.NewMolecularSequenceBuilder(fhir.IntegerOf(2)).Text(narrative()).Build())

		assert.Equal(t, []string{"msq-3"}, ids(evaluate(t, sequence)))
	})

	t.Run("chromosome without genome build", func(t *testing.T) {
		referenceSeq := mustBuild(fhir.NewMolecularSequenceReferenceSeqBuilder().
			Chromosome(concept("1")).
			ReferenceSeqString(fhir.StringOf("ACGT")).
			Build())
		sequence := mustBuild(fhir.NewMolecularSequenceBuilder(fhir.IntegerOf(0)).
			Text(narrative()).
			ReferenceSeq(referenceSeq).
			Build())

		violations := evaluate(t, sequence)

		assert.Equal(t, []string{"msq-5"}, ids(violations))
		assert.Equal(t, "MolecularSequence.referenceSeq", violations[0].Path)
	})

	t.Run("more than one reference sequence", func(t *testing.T) {
		referenceSeq := mustBuild(fhir.NewMolecularSequenceReferenceSeqBuilder().
			Chromosome(concept("1")).
			GenomeBuild(fhir.StringOf("GRCh38")).
			ReferenceSeqString(fhir.StringOf("ACGT")).
			Build())
		sequence := mustBuild(fhir.NewMolecularSequenceBuilder(fhir.IntegerOf(0)).
			Text(narrative()).
			ReferenceSeq(referenceSeq).
			Build())

		assert.Equal(t, []string{"msq-6"}, ids(evaluate(t, sequence)))
	})
}

func TestEvaluate_Concurrent(t *testing.T) {
	evaluator := NewEvaluator()
	report := mustBuild(reportBuilder(fhir.MeasureReportTypeDataCollection).Group(group()).Build())

	var wg sync.WaitGroup
	results := make([][]Violation, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = evaluator.Evaluate(report)
		}(i)
	}
	wg.Wait()

	for _, violations := range results {
		assert.Equal(t, []string{"mrp-1", "dom-6"}, ids(violations))
	}
}

func TestHasErrors(t *testing.T) {
	warning := Violation{Constraint: fhir.Constraint{ID: "dom-6", Level: fhir.LevelWarning}}
	rule := Violation{Constraint: fhir.Constraint{ID: "mrp-1", Level: fhir.LevelRule}}

	assert.False(t, HasErrors(nil))
	assert.False(t, HasErrors([]Violation{warning}))
	assert.True(t, HasErrors([]Violation{warning, rule}))
}

func TestToOperationOutcome(t *testing.T) {
	violations := []Violation{
		{Constraint: fhir.Constraint{ID: "mrp-1", Level: fhir.LevelRule, Description: "foo"}, Path: "MeasureReport"},
		{Constraint: fhir.Constraint{ID: "dom-6", Level: fhir.LevelWarning, Description: "bar"}, Path: "MeasureReport"},
	}

	outcome := ToOperationOutcome(violations)

	assert.Len(t, outcome.Issue, 2)
	assert.Equal(t, fm.IssueSeverityError, outcome.Issue[0].Severity)
	assert.Equal(t, fm.IssueTypeInvariant, outcome.Issue[0].Code)
	assert.Equal(t, "mrp-1: foo", *outcome.Issue[0].Diagnostics)
	assert.Equal(t, []string{"MeasureReport"}, outcome.Issue[0].Expression)
	assert.Equal(t, fm.IssueSeverityWarning, outcome.Issue[1].Severity)
	assert.Empty(t, ToOperationOutcome(nil).Issue)
}

func TestViolation_String(t *testing.T) {
	v := Violation{
		Constraint: fhir.Constraint{ID: "mrp-2", Level: fhir.LevelRule, Description: "foo"},
		Path:       "MeasureReport.group.stratifier.stratum",
	}

	assert.Equal(t, "mrp-2 (Rule) at MeasureReport.group.stratifier.stratum: foo", v.String())
}
