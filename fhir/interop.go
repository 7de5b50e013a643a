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
	"fmt"
	"io"

	fm "github.com/samply/golang-fhir-models/fhir-models/fhir"
	"github.com/shopspring/decimal"
)

// measureReportHeader holds the elements golang-fhir-models can't tell apart
// from their zero values.
type measureReportHeader struct {
	ResourceType string          `json:"resourceType"`
	Status       json.RawMessage `json:"status"`
	Type         json.RawMessage `json:"type"`
	Measure      json.RawMessage `json:"measure"`
	Period       json.RawMessage `json:"period"`
}

func isPresent(v json.RawMessage) bool {
	return len(v) > 0 && string(v) != "null"
}

func (h *measureReportHeader) validate() error {
	if h.ResourceType != "MeasureReport" {
		return invalidValue("MeasureReport", "resourceType", "expected MeasureReport but was %q", h.ResourceType)
	}
	return check(
		requireValue("MeasureReport", "status", isPresent(h.Status)),
		requireValue("MeasureReport", "type", isPresent(h.Type)),
		requireValue("MeasureReport", "measure", isPresent(h.Measure)),
		requireValue("MeasureReport", "period", isPresent(h.Period)),
	)
}

// ReadMeasureReport reads and unmarshals a measure report and converts it
// into the immutable model.
func ReadMeasureReport(r io.Reader) (*MeasureReport, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var header measureReportHeader
	if err := json.Unmarshal(body, &header); err != nil {
		return nil, err
	}
	if err := header.validate(); err != nil {
		return nil, err
	}
	var report fm.MeasureReport
	if err := json.Unmarshal(body, &report); err != nil {
		return nil, err
	}
	return MeasureReportFromModel(report)
}

// MeasureReportFromModel converts a measure report of the golang-fhir-models
// library into the immutable model. All elements are validated on the way.
func MeasureReportFromModel(m fm.MeasureReport) (*MeasureReport, error) {
	period, err := fromPeriod(&m.Period)
	if err != nil {
		return nil, fmt.Errorf("period: %w", err)
	}
	measure, err := NewCanonicalBuilder().Value(m.Measure).Build()
	if err != nil {
		return nil, fmt.Errorf("measure: %w", err)
	}
	b := NewMeasureReportBuilder(CodeOf(m.Status.Code()), CodeOf(m.Type.Code()), measure, period)

	if m.Id != nil {
		b.ID(*m.Id)
	}
	meta, err := opt(m.Meta, fromMeta)
	if err != nil {
		return nil, fmt.Errorf("meta: %w", err)
	}
	implicitRules, err := optValue(m.ImplicitRules, buildUri)
	if err != nil {
		return nil, fmt.Errorf("implicitRules: %w", err)
	}
	language, err := optValue(m.Language, buildCode)
	if err != nil {
		return nil, fmt.Errorf("language: %w", err)
	}
	text, err := opt(m.Text, fromNarrative)
	if err != nil {
		return nil, fmt.Errorf("text: %w", err)
	}
	b.Meta(meta).ImplicitRules(implicitRules).Language(language).Text(text)

	extension, err := convertList(m.Extension, fromExtension)
	if err != nil {
		return nil, err
	}
	modifierExtension, err := convertList(m.ModifierExtension, fromExtension)
	if err != nil {
		return nil, err
	}
	identifier, err := convertList(m.Identifier, fromIdentifier)
	if err != nil {
		return nil, fmt.Errorf("identifier: %w", err)
	}
	subject, err := opt(m.Subject, fromReference)
	if err != nil {
		return nil, fmt.Errorf("subject: %w", err)
	}
	date, err := optValue(m.Date, buildDateTime)
	if err != nil {
		return nil, fmt.Errorf("date: %w", err)
	}
	reporter, err := opt(m.Reporter, fromReference)
	if err != nil {
		return nil, fmt.Errorf("reporter: %w", err)
	}
	improvementNotation, err := opt(m.ImprovementNotation, fromCodeableConcept)
	if err != nil {
		return nil, fmt.Errorf("improvementNotation: %w", err)
	}
	group, err := convertList(m.Group, fromMeasureReportGroup)
	if err != nil {
		return nil, err
	}
	evaluatedResource, err := convertList(m.EvaluatedResource, fromReference)
	if err != nil {
		return nil, fmt.Errorf("evaluatedResource: %w", err)
	}

	return b.SetExtension(extension).
		SetModifierExtension(modifierExtension).
		SetIdentifier(identifier).
		Subject(subject).
		Date(date).
		Reporter(reporter).
		ImprovementNotation(improvementNotation).
		SetGroup(group).
		SetEvaluatedResource(evaluatedResource).
		Build()
}

// MeasureReportToModel converts r into the measure report type of the
// golang-fhir-models library.
func MeasureReportToModel(r *MeasureReport) (fm.MeasureReport, error) {
	var report fm.MeasureReport
	b, err := Marshal(r)
	if err != nil {
		return report, err
	}
	err = json.Unmarshal(b, &report)
	return report, err
}

func fromMeasureReportGroup(g *fm.MeasureReportGroup) (*MeasureReportGroup, error) {
	extension, modifierExtension, err := fromExtensions(g.Extension, g.ModifierExtension)
	if err != nil {
		return nil, err
	}
	code, err := opt(g.Code, fromCodeableConcept)
	if err != nil {
		return nil, err
	}
	population, err := convertList(g.Population, fromMeasureReportGroupPopulation)
	if err != nil {
		return nil, err
	}
	measureScore, err := opt(g.MeasureScore, fromQuantity)
	if err != nil {
		return nil, err
	}
	stratifier, err := convertList(g.Stratifier, fromMeasureReportGroupStratifier)
	if err != nil {
		return nil, err
	}
	b := NewMeasureReportGroupBuilder()
	if g.Id != nil {
		b.ID(*g.Id)
	}
	return b.SetExtension(extension).
		SetModifierExtension(modifierExtension).
		Code(code).
		SetPopulation(population).
		MeasureScore(measureScore).
		SetStratifier(stratifier).
		Build()
}

func fromMeasureReportGroupPopulation(p *fm.MeasureReportGroupPopulation) (*MeasureReportGroupPopulation, error) {
	extension, modifierExtension, err := fromExtensions(p.Extension, p.ModifierExtension)
	if err != nil {
		return nil, err
	}
	code, err := opt(p.Code, fromCodeableConcept)
	if err != nil {
		return nil, err
	}
	count, err := optValue(p.Count, buildInteger)
	if err != nil {
		return nil, err
	}
	subjectResults, err := opt(p.SubjectResults, fromReference)
	if err != nil {
		return nil, err
	}
	b := NewMeasureReportGroupPopulationBuilder()
	if p.Id != nil {
		b.ID(*p.Id)
	}
	return b.SetExtension(extension).
		SetModifierExtension(modifierExtension).
		Code(code).
		Count(count).
		SubjectResults(subjectResults).
		Build()
}

func fromMeasureReportGroupStratifier(s *fm.MeasureReportGroupStratifier) (*MeasureReportGroupStratifier, error) {
	extension, modifierExtension, err := fromExtensions(s.Extension, s.ModifierExtension)
	if err != nil {
		return nil, err
	}
	code, err := convertList(s.Code, fromCodeableConcept)
	if err != nil {
		return nil, err
	}
	stratum, err := convertList(s.Stratum, fromMeasureReportGroupStratifierStratum)
	if err != nil {
		return nil, err
	}
	b := NewMeasureReportGroupStratifierBuilder()
	if s.Id != nil {
		b.ID(*s.Id)
	}
	return b.SetExtension(extension).
		SetModifierExtension(modifierExtension).
		SetCode(code).
		SetStratum(stratum).
		Build()
}

func fromMeasureReportGroupStratifierStratum(s *fm.MeasureReportGroupStratifierStratum) (*MeasureReportGroupStratifierStratum, error) {
	extension, modifierExtension, err := fromExtensions(s.Extension, s.ModifierExtension)
	if err != nil {
		return nil, err
	}
	value, err := opt(s.Value, fromCodeableConcept)
	if err != nil {
		return nil, err
	}
	component, err := convertList(s.Component, fromMeasureReportGroupStratifierStratumComponent)
	if err != nil {
		return nil, err
	}
	population, err := convertList(s.Population, fromMeasureReportGroupStratifierStratumPopulation)
	if err != nil {
		return nil, err
	}
	measureScore, err := opt(s.MeasureScore, fromQuantity)
	if err != nil {
		return nil, err
	}
	b := NewMeasureReportGroupStratifierStratumBuilder()
	if s.Id != nil {
		b.ID(*s.Id)
	}
	return b.SetExtension(extension).
		SetModifierExtension(modifierExtension).
		Value(value).
		SetComponent(component).
		SetPopulation(population).
		MeasureScore(measureScore).
		Build()
}

func fromMeasureReportGroupStratifierStratumComponent(c *fm.MeasureReportGroupStratifierStratumComponent) (*MeasureReportGroupStratifierStratumComponent, error) {
	extension, modifierExtension, err := fromExtensions(c.Extension, c.ModifierExtension)
	if err != nil {
		return nil, err
	}
	code, err := fromCodeableConcept(&c.Code)
	if err != nil {
		return nil, err
	}
	value, err := fromCodeableConcept(&c.Value)
	if err != nil {
		return nil, err
	}
	b := NewMeasureReportGroupStratifierStratumComponentBuilder(code, value)
	if c.Id != nil {
		b.ID(*c.Id)
	}
	return b.SetExtension(extension).
		SetModifierExtension(modifierExtension).
		Build()
}

func fromMeasureReportGroupStratifierStratumPopulation(p *fm.MeasureReportGroupStratifierStratumPopulation) (*MeasureReportGroupStratifierStratumPopulation, error) {
	extension, modifierExtension, err := fromExtensions(p.Extension, p.ModifierExtension)
	if err != nil {
		return nil, err
	}
	code, err := opt(p.Code, fromCodeableConcept)
	if err != nil {
		return nil, err
	}
	count, err := optValue(p.Count, buildInteger)
	if err != nil {
		return nil, err
	}
	subjectResults, err := opt(p.SubjectResults, fromReference)
	if err != nil {
		return nil, err
	}
	b := NewMeasureReportGroupStratifierStratumPopulationBuilder()
	if p.Id != nil {
		b.ID(*p.Id)
	}
	return b.SetExtension(extension).
		SetModifierExtension(modifierExtension).
		Code(code).
		Count(count).
		SubjectResults(subjectResults).
		Build()
}

func fromExtensions(extension, modifierExtension []fm.Extension) ([]*Extension, []*Extension, error) {
	ext, err := convertList(extension, fromExtension)
	if err != nil {
		return nil, nil, err
	}
	modExt, err := convertList(modifierExtension, fromExtension)
	if err != nil {
		return nil, nil, err
	}
	return ext, modExt, nil
}

func fromExtension(e *fm.Extension) (*Extension, error) {
	nested, err := convertList(e.Extension, fromExtension)
	if err != nil {
		return nil, err
	}
	var value Element
	switch {
	case e.ValueCode != nil:
		value, err = buildCode(*e.ValueCode)
	case e.ValueString != nil:
		value, err = buildString(*e.ValueString)
	case e.ValueBoolean != nil:
		value, err = buildBoolean(*e.ValueBoolean)
	case e.ValueInteger != nil:
		value, err = buildInteger(*e.ValueInteger)
	case e.ValueCodeableConcept != nil:
		value, err = fromCodeableConcept(e.ValueCodeableConcept)
	case e.ValueCoding != nil:
		value, err = fromCoding(e.ValueCoding)
	case e.ValueReference != nil:
		value, err = fromReference(e.ValueReference)
	case e.ValueDecimal != nil:
		value, err = buildDecimal(*e.ValueDecimal)
	case e.ValueUri != nil:
		value, err = buildUri(*e.ValueUri)
	case e.ValueDateTime != nil:
		value, err = buildDateTime(*e.ValueDateTime)
	case e.ValueQuantity != nil:
		value, err = fromQuantity(e.ValueQuantity)
	case e.ValuePeriod != nil:
		value, err = fromPeriod(e.ValuePeriod)
	case e.ValueIdentifier != nil:
		value, err = fromIdentifier(e.ValueIdentifier)
	}
	if err != nil {
		return nil, fmt.Errorf("extension %s: %w", e.Url, err)
	}
	b := NewExtensionBuilder(e.Url).SetExtension(nested).Value(value)
	if e.Id != nil {
		b.ID(*e.Id)
	}
	return b.Build()
}

func fromCoding(c *fm.Coding) (*Coding, error) {
	extension, err := convertList(c.Extension, fromExtension)
	if err != nil {
		return nil, err
	}
	system, err := optValue(c.System, buildUri)
	if err != nil {
		return nil, err
	}
	version, err := optValue(c.Version, buildString)
	if err != nil {
		return nil, err
	}
	code, err := optValue(c.Code, buildCode)
	if err != nil {
		return nil, err
	}
	display, err := optValue(c.Display, buildString)
	if err != nil {
		return nil, err
	}
	userSelected, err := optValue(c.UserSelected, buildBoolean)
	if err != nil {
		return nil, err
	}
	b := NewCodingBuilder()
	if c.Id != nil {
		b.ID(*c.Id)
	}
	return b.SetExtension(extension).
		System(system).
		Version(version).
		Code(code).
		Display(display).
		UserSelected(userSelected).
		Build()
}

func fromCodeableConcept(c *fm.CodeableConcept) (*CodeableConcept, error) {
	extension, err := convertList(c.Extension, fromExtension)
	if err != nil {
		return nil, err
	}
	coding, err := convertList(c.Coding, fromCoding)
	if err != nil {
		return nil, err
	}
	text, err := optValue(c.Text, buildString)
	if err != nil {
		return nil, err
	}
	b := NewCodeableConceptBuilder()
	if c.Id != nil {
		b.ID(*c.Id)
	}
	return b.SetExtension(extension).SetCoding(coding).Text(text).Build()
}

func fromIdentifier(i *fm.Identifier) (*Identifier, error) {
	extension, err := convertList(i.Extension, fromExtension)
	if err != nil {
		return nil, err
	}
	var use *Code
	if i.Use != nil {
		use = CodeOf(i.Use.Code())
	}
	typ, err := opt(i.Type, fromCodeableConcept)
	if err != nil {
		return nil, err
	}
	system, err := optValue(i.System, buildUri)
	if err != nil {
		return nil, err
	}
	value, err := optValue(i.Value, buildString)
	if err != nil {
		return nil, err
	}
	period, err := opt(i.Period, fromPeriod)
	if err != nil {
		return nil, err
	}
	assigner, err := opt(i.Assigner, fromReference)
	if err != nil {
		return nil, err
	}
	b := NewIdentifierBuilder()
	if i.Id != nil {
		b.ID(*i.Id)
	}
	return b.SetExtension(extension).
		Use(use).
		Type(typ).
		System(system).
		Value(value).
		Period(period).
		Assigner(assigner).
		Build()
}

func fromReference(r *fm.Reference) (*Reference, error) {
	extension, err := convertList(r.Extension, fromExtension)
	if err != nil {
		return nil, err
	}
	reference, err := optValue(r.Reference, buildString)
	if err != nil {
		return nil, err
	}
	typ, err := optValue(r.Type, buildUri)
	if err != nil {
		return nil, err
	}
	identifier, err := opt(r.Identifier, fromIdentifier)
	if err != nil {
		return nil, err
	}
	display, err := optValue(r.Display, buildString)
	if err != nil {
		return nil, err
	}
	b := NewReferenceBuilder()
	if r.Id != nil {
		b.ID(*r.Id)
	}
	return b.SetExtension(extension).
		Reference(reference).
		Type(typ).
		Identifier(identifier).
		Display(display).
		Build()
}

func fromPeriod(p *fm.Period) (*Period, error) {
	extension, err := convertList(p.Extension, fromExtension)
	if err != nil {
		return nil, err
	}
	start, err := optValue(p.Start, buildDateTime)
	if err != nil {
		return nil, err
	}
	end, err := optValue(p.End, buildDateTime)
	if err != nil {
		return nil, err
	}
	b := NewPeriodBuilder()
	if p.Id != nil {
		b.ID(*p.Id)
	}
	return b.SetExtension(extension).Start(start).End(end).Build()
}

func fromQuantity(q *fm.Quantity) (*Quantity, error) {
	extension, err := convertList(q.Extension, fromExtension)
	if err != nil {
		return nil, err
	}
	value, err := optValue(q.Value, buildDecimal)
	if err != nil {
		return nil, err
	}
	var comparator *Code
	if q.Comparator != nil {
		comparator = CodeOf(q.Comparator.Code())
	}
	unit, err := optValue(q.Unit, buildString)
	if err != nil {
		return nil, err
	}
	system, err := optValue(q.System, buildUri)
	if err != nil {
		return nil, err
	}
	code, err := optValue(q.Code, buildCode)
	if err != nil {
		return nil, err
	}
	b := NewQuantityBuilder()
	if q.Id != nil {
		b.ID(*q.Id)
	}
	return b.SetExtension(extension).
		Value(value).
		Comparator(comparator).
		Unit(unit).
		System(system).
		Code(code).
		Build()
}

func fromMeta(m *fm.Meta) (*Meta, error) {
	extension, err := convertList(m.Extension, fromExtension)
	if err != nil {
		return nil, err
	}
	versionID, err := optValue(m.VersionId, buildID)
	if err != nil {
		return nil, err
	}
	lastUpdated, err := optValue(m.LastUpdated, buildInstant)
	if err != nil {
		return nil, err
	}
	source, err := optValue(m.Source, buildUri)
	if err != nil {
		return nil, err
	}
	profile := make([]*Canonical, 0, len(m.Profile))
	for _, p := range m.Profile {
		c, err := NewCanonicalBuilder().Value(p).Build()
		if err != nil {
			return nil, err
		}
		profile = append(profile, c)
	}
	security, err := convertList(m.Security, fromCoding)
	if err != nil {
		return nil, err
	}
	tag, err := convertList(m.Tag, fromCoding)
	if err != nil {
		return nil, err
	}
	b := NewMetaBuilder()
	if m.Id != nil {
		b.ID(*m.Id)
	}
	return b.SetExtension(extension).
		VersionID(versionID).
		LastUpdated(lastUpdated).
		Source(source).
		SetProfile(profile).
		SetSecurity(security).
		SetTag(tag).
		Build()
}

func fromNarrative(n *fm.Narrative) (*Narrative, error) {
	extension, err := convertList(n.Extension, fromExtension)
	if err != nil {
		return nil, err
	}
	b := NewNarrativeBuilder(CodeOf(n.Status.Code()), n.Div)
	if n.Id != nil {
		b.ID(*n.Id)
	}
	return b.SetExtension(extension).Build()
}

func convertList[S any, T any](in []S, convert func(*S) (T, error)) ([]T, error) {
	if len(in) == 0 {
		return nil, nil
	}
	out := make([]T, 0, len(in))
	for i := range in {
		t, err := convert(&in[i])
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}
		out = append(out, t)
	}
	return out, nil
}

// opt converts v if present and returns the zero value of P otherwise.
func opt[T any, P any](v *T, convert func(*T) (P, error)) (P, error) {
	if v == nil {
		var zero P
		return zero, nil
	}
	return convert(v)
}

func optValue[T any, P any](v *T, build func(T) (P, error)) (P, error) {
	if v == nil {
		var zero P
		return zero, nil
	}
	return build(*v)
}

func buildString(v string) (*String, error)     { return NewStringBuilder().Value(v).Build() }
func buildCode(v string) (*Code, error)         { return NewCodeBuilder().Value(v).Build() }
func buildUri(v string) (*Uri, error)           { return NewUriBuilder().Value(v).Build() }
func buildID(v string) (*Id, error)             { return NewIdBuilder().Value(v).Build() }
func buildDateTime(v string) (*DateTime, error) { return NewDateTimeBuilder().Value(v).Build() }
func buildInstant(v string) (*Instant, error)   { return NewInstantBuilder().Value(v).Build() }
func buildBoolean(v bool) (*Boolean, error)     { return NewBooleanBuilder().Value(v).Build() }
func buildInteger(v int) (*Integer, error)      { return NewIntegerBuilder().Value(int32(v)).Build() }

func buildDecimal(v json.Number) (*Decimal, error) {
	d, err := decimal.NewFromString(v.String())
	if err != nil {
		return nil, err
	}
	return NewDecimalBuilder().Value(d).Build()
}
