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
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const dataAbsentReason = "http://hl7.org/fhir/StructureDefinition/data-absent-reason"

func marshalString(t *testing.T, e Element) string {
	b, err := Marshal(e)
	if err != nil {
		t.Fatalf("could not marshal %s: %v", e.TypeName(), err)
	}
	return string(b)
}

func TestMarshal(t *testing.T) {
	t.Run("minimal report", func(t *testing.T) {
		report := must(testReportBuilder().ID("0").Build())

		assert.Equal(t, `{"resourceType":"MeasureReport","id":"0","status":"complete","type":"summary",`+
			`"measure":"urn:uuid:1","period":{"start":"2020","end":"2021"}}`, marshalString(t, report))
	})

	t.Run("groups", func(t *testing.T) {
		report := must(testReportBuilder().Group(testGroup(5)).Build())

		assert.JSONEq(t, `{
		  "resourceType": "MeasureReport",
		  "status": "complete",
		  "type": "summary",
		  "measure": "urn:uuid:1",
		  "period": {"start": "2020", "end": "2021"},
		  "group": [{
		    "population": [{
		      "code": {"coding": [{"system": "http://terminology.hl7.org/CodeSystem/measure-population", "code": "initial-population"}]},
		      "count": 5
		    }]
		  }]
		}`, marshalString(t, report))
	})

	t.Run("primitive with id and value", func(t *testing.T) {
		status := must(NewCodeBuilder().ID("s0").Value("complete").Build())
		report := must(testReportBuilder().Status(status).Build())

		assert.Contains(t, marshalString(t, report), `"status":"complete","_status":{"id":"s0"}`)
	})

	t.Run("primitive with extension only", func(t *testing.T) {
		absent := must(NewExtensionBuilder(dataAbsentReason).Value(CodeOf("unknown")).Build())
		measure := must(NewCanonicalBuilder().Extension(absent).Build())
		report := must(testReportBuilder().Measure(measure).Build())

		s := marshalString(t, report)
		assert.NotContains(t, s, `"measure":`)
		assert.Contains(t, s, `"_measure":{"extension":[{"url":"`+dataAbsentReason+`","valueCode":"unknown"}]}`)
	})

	t.Run("repeated primitives with extensions", func(t *testing.T) {
		ext := must(NewExtensionBuilder("http://example.com/ext").Value(StringOf("x")).Build())
		roc := must(NewMolecularSequenceQualityRocBuilder().
			Score(IntegerOf(1), must(NewIntegerBuilder().Extension(ext).Build())).
			NumTP(IntegerOf(2)).
			Build())

		assert.Equal(t, `{"score":[1,null],"_score":[null,{"extension":[{"url":"http://example.com/ext","valueString":"x"}]}],"numTP":[2]}`,
			marshalString(t, roc))
	})

	t.Run("decimal keeps its scale", func(t *testing.T) {
		assert.Equal(t, `{"value":1.50,"unit":"mg"}`, marshalString(t, testQuantity("1.50", "mg")))
		assert.Equal(t, `{"value":100,"unit":"mg"}`, marshalString(t, testQuantity("100", "mg")))
	})

	t.Run("choice elements", func(t *testing.T) {
		moiety := must(NewSubstanceSpecificationMoietyBuilder().Amount(StringOf("some")).Build())

		assert.Equal(t, `{"amountString":"some"}`, marshalString(t, moiety))
	})

	t.Run("narrative is not HTML escaped", func(t *testing.T) {
		div := `<div xmlns="http://www.w3.org/1999/xhtml">a &amp; b</div>`
		text := must(NewNarrativeBuilder(NarrativeStatusGenerated.Code(), div).Build())
		report := must(testReportBuilder().Text(text).Build())

		assert.Contains(t, marshalString(t, report), `"text":{"status":"generated","div":"<div xmlns=\"http://www.w3.org/1999/xhtml\">a &amp; b</div>"}`)
	})

	t.Run("contained resources", func(t *testing.T) {
		sequence := must(NewMolecularSequenceBuilder(IntegerOf(0)).ID("s0").Build())
		report := must(testReportBuilder().Contained(sequence).Build())

		assert.Contains(t, marshalString(t, report), `"contained":[{"resourceType":"MolecularSequence","id":"s0","coordinateSystem":0}]`)
	})

	t.Run("primitive as root", func(t *testing.T) {
		assert.Equal(t, `"foo"`, marshalString(t, StringOf("foo")))
	})

	t.Run("nil", func(t *testing.T) {
		var report *MeasureReport
		assert.Equal(t, "null", marshalString(t, report))
	})

	t.Run("encoding/json uses the FHIR representation", func(t *testing.T) {
		report := must(testReportBuilder().ID("0").Group(testGroup(1)).Build())

		b, err := json.Marshal(report)
		if err != nil {
			t.Fatalf("could not marshal the report: %v", err)
		}
		assert.Equal(t, marshalString(t, report), string(b))
	})
}

func TestMarshalIndent(t *testing.T) {
	report := must(testReportBuilder().Build())

	b, err := MarshalIndent(report, "", "  ")
	if err != nil {
		t.Fatalf("could not marshal the report: %v", err)
	}

	assert.True(t, strings.HasPrefix(string(b), "{\n  \"resourceType\": \"MeasureReport\",\n"))
	assert.JSONEq(t, marshalString(t, report), string(b))
}
