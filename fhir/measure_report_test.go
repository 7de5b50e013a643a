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

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

const measurePopulationSystem = "http://terminology.hl7.org/CodeSystem/measure-population"

func testPeriod() *Period {
	return must(NewPeriodBuilder().Start(DateTimeOf("2020")).End(DateTimeOf("2021")).Build())
}

func testConcept(system, code string) *CodeableConcept {
	coding := must(NewCodingBuilder().System(UriOf(system)).Code(CodeOf(code)).Build())
	return must(NewCodeableConceptBuilder().Coding(coding).Build())
}

func testReference(reference string) *Reference {
	return must(NewReferenceBuilder().Reference(StringOf(reference)).Build())
}

func testReportBuilder() *MeasureReportBuilder {
	return NewMeasureReportBuilder(MeasureReportStatusComplete.Code(), MeasureReportTypeSummary.Code(),
		CanonicalOf("urn:uuid:1"), testPeriod())
}

func testGroup(count int32) *MeasureReportGroup {
	population := must(NewMeasureReportGroupPopulationBuilder().
		Code(testConcept(measurePopulationSystem, "initial-population")).
		Count(IntegerOf(count)).
		Build())
	return must(NewMeasureReportGroupBuilder().Population(population).Build())
}

func testStratum(value string, count int32) *MeasureReportGroupStratifierStratum {
	population := must(NewMeasureReportGroupStratifierStratumPopulationBuilder().
		Count(IntegerOf(count)).
		Build())
	return must(NewMeasureReportGroupStratifierStratumBuilder().
		Value(must(NewCodeableConceptBuilder().Text(StringOf(value)).Build())).
		Population(population).
		Build())
}

// assertValidationError asserts that err is a *ValidationError of typeName
// and elem wrapping target.
func assertValidationError(t *testing.T, err error, target error, typeName, elem string) {
	t.Helper()
	if !assert.ErrorIs(t, err, target) {
		return
	}
	var validationErr *ValidationError
	if assert.True(t, errors.As(err, &validationErr)) {
		assert.Equal(t, typeName, validationErr.Type)
		assert.Equal(t, elem, validationErr.Element)
	}
}

func TestMeasureReportBuilder(t *testing.T) {
	t.Run("minimal", func(t *testing.T) {
		report, err := testReportBuilder().Build()
		if err != nil {
			t.Fatalf("could not build the report: %v", err)
		}

		assert.Equal(t, "MeasureReport", report.ResourceType())
		assert.Equal(t, "complete", report.Status().Value())
		assert.Equal(t, "summary", report.Type().Value())
		assert.Equal(t, "urn:uuid:1", report.Measure().Value())
		assert.Equal(t, "2020", report.Period().Start().Value())
		assert.Nil(t, report.Subject())
		assert.Empty(t, report.Group())
	})

	t.Run("with groups", func(t *testing.T) {
		stratifier := must(NewMeasureReportGroupStratifierBuilder().
			Code(testConcept("http://example.com/stratifier", "gender")).
			Stratum(testStratum("male", 1), testStratum("female", 2)).
			Build())
		group := must(testGroup(3).ToBuilder().Stratifier(stratifier).Build())

		report, err := testReportBuilder().
			ID("0").
			Subject(testReference("Patient/0")).
			Reporter(testReference("Organization/0")).
			Date(DateTimeOf("2021-02-03")).
			Group(group).
			Build()
		if err != nil {
			t.Fatalf("could not build the report: %v", err)
		}

		assert.Equal(t, "0", report.ID())
		assert.Len(t, report.Group(), 1)
		assert.Equal(t, int32(3), report.Group()[0].Population()[0].Count().Value())
		strata := report.Group()[0].Stratifier()[0].Stratum()
		assert.Len(t, strata, 2)
		assert.Equal(t, "female", strata[1].Value().Text().Value())
	})

	t.Run("missing status", func(t *testing.T) {
		_, err := NewMeasureReportBuilder(nil, MeasureReportTypeSummary.Code(), CanonicalOf("urn:uuid:1"), testPeriod()).Build()
		assertValidationError(t, err, ErrMissingRequired, "MeasureReport", "status")
	})

	t.Run("zero value elements", func(t *testing.T) {
		_, err := NewMeasureReportBuilder(&Code{}, &Code{}, &Canonical{}, &Period{}).Build()
		assertValidationError(t, err, ErrMissingRequired, "MeasureReport", "status")

		_, err = testReportBuilder().Measure(&Canonical{}).Build()
		assertValidationError(t, err, ErrMissingRequired, "MeasureReport", "measure")

		_, err = testReportBuilder().Period(&Period{}).Build()
		assertValidationError(t, err, ErrMissingRequired, "MeasureReport", "period")
	})

	t.Run("zero value group", func(t *testing.T) {
		_, err := testReportBuilder().Group(testGroup(1), &MeasureReportGroup{}).Build()
		assertValidationError(t, err, ErrNoChildren, "MeasureReport", "group")
		assert.ErrorContains(t, err, "index 1")
	})

	t.Run("missing period", func(t *testing.T) {
		_, err := testReportBuilder().Period(nil).Build()
		assertValidationError(t, err, ErrMissingRequired, "MeasureReport", "period")
	})

	t.Run("status outside of the value set", func(t *testing.T) {
		_, err := testReportBuilder().Status(CodeOf("final")).Build()
		assertValidationError(t, err, ErrInvalidCode, "MeasureReport", "status")
	})

	t.Run("type outside of the value set", func(t *testing.T) {
		_, err := testReportBuilder().Type(CodeOf("population")).Build()
		assertValidationError(t, err, ErrInvalidCode, "MeasureReport", "type")
	})

	t.Run("nil group", func(t *testing.T) {
		var group *MeasureReportGroup
		_, err := testReportBuilder().Group(testGroup(1), group).Build()
		assertValidationError(t, err, ErrNilItem, "MeasureReport", "group")
		assert.ErrorContains(t, err, "index 1")
	})

	t.Run("subject of the wrong type", func(t *testing.T) {
		_, err := testReportBuilder().Subject(testReference("Organization/0")).Build()
		assertValidationError(t, err, ErrInvalidReference, "MeasureReport", "subject")
	})

	t.Run("subject with type element of the wrong type", func(t *testing.T) {
		subject := must(NewReferenceBuilder().Type(UriOf("Observation")).Display(StringOf("foo")).Build())
		_, err := testReportBuilder().Subject(subject).Build()
		assertValidationError(t, err, ErrInvalidReference, "MeasureReport", "subject")
	})

	t.Run("contained and absolute subject references", func(t *testing.T) {
		for _, reference := range []string{"#p0", "urn:uuid:1", "http://localhost:8080/fhir/Patient/0", "Group/0/_history/1"} {
			_, err := testReportBuilder().Subject(testReference(reference)).Build()
			assert.NoError(t, err, reference)
		}
	})

	t.Run("invalid id", func(t *testing.T) {
		_, err := testReportBuilder().ID("id with spaces").Build()
		assertValidationError(t, err, ErrInvalidValue, "MeasureReport", "id")
	})
}

func TestMeasureReportGroupBuilder(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		_, err := NewMeasureReportGroupBuilder().Build()
		assertValidationError(t, err, ErrNoChildren, "MeasureReport.group", "")
	})

	t.Run("id only", func(t *testing.T) {
		_, err := NewMeasureReportGroupBuilder().ID("g0").Build()
		assert.ErrorIs(t, err, ErrNoChildren)
	})

	t.Run("code only", func(t *testing.T) {
		group, err := NewMeasureReportGroupBuilder().Code(testConcept("http://example.com", "g0")).Build()
		if err != nil {
			t.Fatalf("could not build the group: %v", err)
		}
		assert.Equal(t, "g0", group.Code().Coding()[0].Code().Value())
	})

	t.Run("population subject results have to be lists", func(t *testing.T) {
		_, err := NewMeasureReportGroupPopulationBuilder().SubjectResults(testReference("Patient/0")).Build()
		assertValidationError(t, err, ErrInvalidReference, "MeasureReport.group.population", "subjectResults")
	})
}

func TestMeasureReportGroupStratifierStratumComponentBuilder(t *testing.T) {
	code := testConcept("http://example.com", "age")
	value := must(NewCodeableConceptBuilder().Text(StringOf("40")).Build())

	t.Run("valid", func(t *testing.T) {
		component, err := NewMeasureReportGroupStratifierStratumComponentBuilder(code, value).Build()
		if err != nil {
			t.Fatalf("could not build the component: %v", err)
		}
		assert.Same(t, code, component.Code())
		assert.Same(t, value, component.Value())
	})

	t.Run("missing code", func(t *testing.T) {
		_, err := NewMeasureReportGroupStratifierStratumComponentBuilder(nil, value).Build()
		assertValidationError(t, err, ErrMissingRequired, "MeasureReport.group.stratifier.stratum.component", "code")
	})

	t.Run("missing value", func(t *testing.T) {
		_, err := NewMeasureReportGroupStratifierStratumComponentBuilder(code, nil).Build()
		assertValidationError(t, err, ErrMissingRequired, "MeasureReport.group.stratifier.stratum.component", "value")
	})
}

func TestMeasureReportImmutability(t *testing.T) {
	t.Run("getters return copies", func(t *testing.T) {
		report := must(testReportBuilder().Group(testGroup(1)).Build())

		groups := report.Group()
		groups[0] = testGroup(2)

		assert.Len(t, report.Group(), 1)
		assert.Equal(t, int32(1), report.Group()[0].Population()[0].Count().Value())
	})

	t.Run("builder changes after build", func(t *testing.T) {
		b := testReportBuilder().Group(testGroup(1))
		first := must(b.Build())

		b.Group(testGroup(2)).Status(MeasureReportStatusPending.Code())
		second := must(b.Build())

		assert.Len(t, first.Group(), 1)
		assert.Equal(t, "complete", first.Status().Value())
		assert.Len(t, second.Group(), 2)
		assert.Equal(t, "pending", second.Status().Value())
	})

	t.Run("slices passed to the builder", func(t *testing.T) {
		groups := []*MeasureReportGroup{testGroup(1)}
		report := must(testReportBuilder().SetGroup(groups).Build())

		groups[0] = testGroup(2)

		assert.Equal(t, int32(1), report.Group()[0].Population()[0].Count().Value())
	})

	t.Run("ToBuilder", func(t *testing.T) {
		report := must(testReportBuilder().Group(testGroup(1)).Build())

		changed := must(report.ToBuilder().
			Group(testGroup(2)).
			Type(MeasureReportTypeDataCollection.Code()).
			Build())

		assert.Len(t, report.Group(), 1)
		assert.Equal(t, "summary", report.Type().Value())
		assert.Len(t, changed.Group(), 2)
		assert.Equal(t, "data-collection", changed.Type().Value())
		assert.True(t, Equal(report, must(changed.ToBuilder().
			SetGroup(changed.Group()[:1]).
			Type(MeasureReportTypeSummary.Code()).
			Build())))
	})

	t.Run("ToBuilder on a backbone element", func(t *testing.T) {
		group := testGroup(1)

		changed := must(group.ToBuilder().Code(testConcept("http://example.com", "g0")).Build())

		assert.Nil(t, group.Code())
		assert.NotNil(t, changed.Code())
		assert.Same(t, group.Population()[0], changed.Population()[0])
	})
}

func TestMeasureReportConstraints(t *testing.T) {
	report := must(testReportBuilder().Build())

	var ids []string
	for _, c := range report.Constraints() {
		ids = append(ids, c.ID)
	}

	assert.Equal(t, []string{"mrp-1", "mrp-2", "dom-2", "dom-4", "dom-5", "dom-6"}, ids)
}
