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

import "slices"

// MeasureReport contains the results of the calculation of a measure, and optionally a reference to
// the resources involved in that calculation.
type MeasureReport struct {
	domainResource
	identifier          []*Identifier
	status              *Code
	typ                 *Code
	measure             *Canonical
	subject             *Reference
	date                *DateTime
	reporter            *Reference
	period              *Period
	improvementNotation *CodeableConcept
	group               []*MeasureReportGroup
	evaluatedResource   []*Reference
}

func (r *MeasureReport) ResourceType() string {
	return "MeasureReport"
}

func (r *MeasureReport) TypeName() string {
	return "MeasureReport"
}

// Constraints returns the invariants of MeasureReport including the ones
// inherited from DomainResource.
func (r *MeasureReport) Constraints() []Constraint {
	return slices.Concat(measureReportConstraints, domainResourceConstraints)
}

// MarshalJSON returns the FHIR JSON representation of r.
func (r *MeasureReport) MarshalJSON() ([]byte, error) {
	return Marshal(r)
}

func (r *MeasureReport) Identifier() []*Identifier {
	return slices.Clone(r.identifier)
}

func (r *MeasureReport) Status() *Code {
	return r.status
}

func (r *MeasureReport) Type() *Code {
	return r.typ
}

func (r *MeasureReport) Measure() *Canonical {
	return r.measure
}

func (r *MeasureReport) Subject() *Reference {
	return r.subject
}

func (r *MeasureReport) Date() *DateTime {
	return r.date
}

func (r *MeasureReport) Reporter() *Reference {
	return r.reporter
}

func (r *MeasureReport) Period() *Period {
	return r.period
}

func (r *MeasureReport) ImprovementNotation() *CodeableConcept {
	return r.improvementNotation
}

func (r *MeasureReport) Group() []*MeasureReportGroup {
	return slices.Clone(r.group)
}

func (r *MeasureReport) EvaluatedResource() []*Reference {
	return slices.Clone(r.evaluatedResource)
}

func (r *MeasureReport) Accept(name string, index int, v Visitor) {
	if r == nil {
		return
	}
	visit(name, index, r, v, func() {
		r.acceptDomainResource(v)
		acceptList("identifier", r.identifier, v)
		r.status.Accept("status", -1, v)
		r.typ.Accept("type", -1, v)
		r.measure.Accept("measure", -1, v)
		r.subject.Accept("subject", -1, v)
		r.date.Accept("date", -1, v)
		r.reporter.Accept("reporter", -1, v)
		r.period.Accept("period", -1, v)
		r.improvementNotation.Accept("improvementNotation", -1, v)
		acceptList("group", r.group, v)
		acceptList("evaluatedResource", r.evaluatedResource, v)
	})
}

func (r *MeasureReport) cloneLists() {
	r.domainResource.cloneLists()
	r.identifier = slices.Clone(r.identifier)
	r.group = slices.Clone(r.group)
	r.evaluatedResource = slices.Clone(r.evaluatedResource)
}

func (r *MeasureReport) validate() error {
	return check(
		requireElement("MeasureReport", "status", r.status),
		requireElement("MeasureReport", "type", r.typ),
		requireElement("MeasureReport", "measure", r.measure),
		requireElement("MeasureReport", "period", r.period),
		checkList("MeasureReport", "identifier", r.identifier),
		checkList("MeasureReport", "group", r.group),
		checkList("MeasureReport", "evaluatedResource", r.evaluatedResource),
		checkReference("MeasureReport", "subject", r.subject, "Patient", "Practitioner", "PractitionerRole", "Location", "Device", "RelatedPerson", "Group"),
		checkReference("MeasureReport", "reporter", r.reporter, "Practitioner", "PractitionerRole", "Location", "Organization"),
		checkCode("MeasureReport", "status", r.status, measureReportStatusCodes),
		checkCode("MeasureReport", "type", r.typ, measureReportTypeCodes),
		r.domainResource.validate("MeasureReport"),
	)
}

// ToBuilder returns a builder initialized with the elements of r.
func (r *MeasureReport) ToBuilder() *MeasureReportBuilder {
	b := &MeasureReportBuilder{v: *r}
	b.v.cloneLists()
	return b
}

// MeasureReportBuilder builds MeasureReport values.
type MeasureReportBuilder struct {
	v MeasureReport
}

// NewMeasureReportBuilder returns a builder for MeasureReport with the required elements set.
func NewMeasureReportBuilder(status *Code, typ *Code, measure *Canonical, period *Period) *MeasureReportBuilder {
	b := &MeasureReportBuilder{}
	b.v.status = status
	b.v.typ = typ
	b.v.measure = measure
	b.v.period = period
	return b
}

func (b *MeasureReportBuilder) ID(id string) *MeasureReportBuilder {
	b.v.id = id
	return b
}

func (b *MeasureReportBuilder) Meta(v *Meta) *MeasureReportBuilder {
	b.v.meta = v
	return b
}

func (b *MeasureReportBuilder) ImplicitRules(v *Uri) *MeasureReportBuilder {
	b.v.implicitRules = v
	return b
}

func (b *MeasureReportBuilder) Language(v *Code) *MeasureReportBuilder {
	b.v.language = v
	return b
}

func (b *MeasureReportBuilder) Text(v *Narrative) *MeasureReportBuilder {
	b.v.text = v
	return b
}

func (b *MeasureReportBuilder) Contained(v ...Resource) *MeasureReportBuilder {
	b.v.contained = append(b.v.contained, v...)
	return b
}

func (b *MeasureReportBuilder) SetContained(v []Resource) *MeasureReportBuilder {
	b.v.contained = slices.Clone(v)
	return b
}

func (b *MeasureReportBuilder) Extension(v ...*Extension) *MeasureReportBuilder {
	b.v.extension = append(b.v.extension, v...)
	return b
}

func (b *MeasureReportBuilder) SetExtension(v []*Extension) *MeasureReportBuilder {
	b.v.extension = slices.Clone(v)
	return b
}

func (b *MeasureReportBuilder) ModifierExtension(v ...*Extension) *MeasureReportBuilder {
	b.v.modifierExtension = append(b.v.modifierExtension, v...)
	return b
}

func (b *MeasureReportBuilder) SetModifierExtension(v []*Extension) *MeasureReportBuilder {
	b.v.modifierExtension = slices.Clone(v)
	return b
}

func (b *MeasureReportBuilder) Identifier(v ...*Identifier) *MeasureReportBuilder {
	b.v.identifier = append(b.v.identifier, v...)
	return b
}

func (b *MeasureReportBuilder) SetIdentifier(v []*Identifier) *MeasureReportBuilder {
	b.v.identifier = slices.Clone(v)
	return b
}

func (b *MeasureReportBuilder) Status(v *Code) *MeasureReportBuilder {
	b.v.status = v
	return b
}

func (b *MeasureReportBuilder) Type(v *Code) *MeasureReportBuilder {
	b.v.typ = v
	return b
}

func (b *MeasureReportBuilder) Measure(v *Canonical) *MeasureReportBuilder {
	b.v.measure = v
	return b
}

func (b *MeasureReportBuilder) Subject(v *Reference) *MeasureReportBuilder {
	b.v.subject = v
	return b
}

func (b *MeasureReportBuilder) Date(v *DateTime) *MeasureReportBuilder {
	b.v.date = v
	return b
}

func (b *MeasureReportBuilder) Reporter(v *Reference) *MeasureReportBuilder {
	b.v.reporter = v
	return b
}

func (b *MeasureReportBuilder) Period(v *Period) *MeasureReportBuilder {
	b.v.period = v
	return b
}

func (b *MeasureReportBuilder) ImprovementNotation(v *CodeableConcept) *MeasureReportBuilder {
	b.v.improvementNotation = v
	return b
}

func (b *MeasureReportBuilder) Group(v ...*MeasureReportGroup) *MeasureReportBuilder {
	b.v.group = append(b.v.group, v...)
	return b
}

func (b *MeasureReportBuilder) SetGroup(v []*MeasureReportGroup) *MeasureReportBuilder {
	b.v.group = slices.Clone(v)
	return b
}

func (b *MeasureReportBuilder) EvaluatedResource(v ...*Reference) *MeasureReportBuilder {
	b.v.evaluatedResource = append(b.v.evaluatedResource, v...)
	return b
}

func (b *MeasureReportBuilder) SetEvaluatedResource(v []*Reference) *MeasureReportBuilder {
	b.v.evaluatedResource = slices.Clone(v)
	return b
}

// Build validates the elements and returns a new MeasureReport. The returned error
// is a *ValidationError.
func (b *MeasureReportBuilder) Build() (*MeasureReport, error) {
	v := b.v
	v.cloneLists()
	if err := v.validate(); err != nil {
		return nil, err
	}
	return &v, nil
}

// MeasureReportGroup holds the results of the calculation, one for each population group in the measure.
type MeasureReportGroup struct {
	backboneElement
	code         *CodeableConcept
	population   []*MeasureReportGroupPopulation
	measureScore *Quantity
	stratifier   []*MeasureReportGroupStratifier
}

func (g *MeasureReportGroup) TypeName() string {
	return "MeasureReport.group"
}

func (g *MeasureReportGroup) Code() *CodeableConcept {
	return g.code
}

func (g *MeasureReportGroup) Population() []*MeasureReportGroupPopulation {
	return slices.Clone(g.population)
}

func (g *MeasureReportGroup) MeasureScore() *Quantity {
	return g.measureScore
}

func (g *MeasureReportGroup) Stratifier() []*MeasureReportGroupStratifier {
	return slices.Clone(g.stratifier)
}

func (g *MeasureReportGroup) Accept(name string, index int, v Visitor) {
	if g == nil {
		return
	}
	visit(name, index, g, v, func() {
		g.acceptBackbone(v)
		g.code.Accept("code", -1, v)
		acceptList("population", g.population, v)
		g.measureScore.Accept("measureScore", -1, v)
		acceptList("stratifier", g.stratifier, v)
	})
}

func (g *MeasureReportGroup) hasChildren() bool {
	return g.hasExtensions() ||
		g.code != nil ||
		len(g.population) > 0 ||
		g.measureScore != nil ||
		len(g.stratifier) > 0
}

func (g *MeasureReportGroup) cloneLists() {
	g.backboneElement.cloneLists()
	g.population = slices.Clone(g.population)
	g.stratifier = slices.Clone(g.stratifier)
}

func (g *MeasureReportGroup) validate() error {
	return check(
		checkList("MeasureReport.group", "population", g.population),
		checkList("MeasureReport.group", "stratifier", g.stratifier),
		g.backboneElement.validate("MeasureReport.group"),
		requireChildren("MeasureReport.group", g.hasChildren()),
	)
}

// ToBuilder returns a builder initialized with the elements of g.
func (g *MeasureReportGroup) ToBuilder() *MeasureReportGroupBuilder {
	b := &MeasureReportGroupBuilder{v: *g}
	b.v.cloneLists()
	return b
}

// MeasureReportGroupBuilder builds MeasureReportGroup values.
type MeasureReportGroupBuilder struct {
	v MeasureReportGroup
}

func NewMeasureReportGroupBuilder() *MeasureReportGroupBuilder {
	return &MeasureReportGroupBuilder{}
}

func (b *MeasureReportGroupBuilder) ID(id string) *MeasureReportGroupBuilder {
	b.v.id = id
	return b
}

func (b *MeasureReportGroupBuilder) Extension(v ...*Extension) *MeasureReportGroupBuilder {
	b.v.extension = append(b.v.extension, v...)
	return b
}

func (b *MeasureReportGroupBuilder) SetExtension(v []*Extension) *MeasureReportGroupBuilder {
	b.v.extension = slices.Clone(v)
	return b
}

func (b *MeasureReportGroupBuilder) ModifierExtension(v ...*Extension) *MeasureReportGroupBuilder {
	b.v.modifierExtension = append(b.v.modifierExtension, v...)
	return b
}

func (b *MeasureReportGroupBuilder) SetModifierExtension(v []*Extension) *MeasureReportGroupBuilder {
	b.v.modifierExtension = slices.Clone(v)
	return b
}

func (b *MeasureReportGroupBuilder) Code(v *CodeableConcept) *MeasureReportGroupBuilder {
	b.v.code = v
	return b
}

func (b *MeasureReportGroupBuilder) Population(v ...*MeasureReportGroupPopulation) *MeasureReportGroupBuilder {
	b.v.population = append(b.v.population, v...)
	return b
}

func (b *MeasureReportGroupBuilder) SetPopulation(v []*MeasureReportGroupPopulation) *MeasureReportGroupBuilder {
	b.v.population = slices.Clone(v)
	return b
}

func (b *MeasureReportGroupBuilder) MeasureScore(v *Quantity) *MeasureReportGroupBuilder {
	b.v.measureScore = v
	return b
}

func (b *MeasureReportGroupBuilder) Stratifier(v ...*MeasureReportGroupStratifier) *MeasureReportGroupBuilder {
	b.v.stratifier = append(b.v.stratifier, v...)
	return b
}

func (b *MeasureReportGroupBuilder) SetStratifier(v []*MeasureReportGroupStratifier) *MeasureReportGroupBuilder {
	b.v.stratifier = slices.Clone(v)
	return b
}

// Build validates the elements and returns a new MeasureReportGroup. The returned error
// is a *ValidationError.
func (b *MeasureReportGroupBuilder) Build() (*MeasureReportGroup, error) {
	v := b.v
	v.cloneLists()
	if err := v.validate(); err != nil {
		return nil, err
	}
	return &v, nil
}

// MeasureReportGroupPopulation is the population count of a group.
type MeasureReportGroupPopulation struct {
	backboneElement
	code           *CodeableConcept
	count          *Integer
	subjectResults *Reference
}

func (p *MeasureReportGroupPopulation) TypeName() string {
	return "MeasureReport.group.population"
}

func (p *MeasureReportGroupPopulation) Code() *CodeableConcept {
	return p.code
}

func (p *MeasureReportGroupPopulation) Count() *Integer {
	return p.count
}

func (p *MeasureReportGroupPopulation) SubjectResults() *Reference {
	return p.subjectResults
}

func (p *MeasureReportGroupPopulation) Accept(name string, index int, v Visitor) {
	if p == nil {
		return
	}
	visit(name, index, p, v, func() {
		p.acceptBackbone(v)
		p.code.Accept("code", -1, v)
		p.count.Accept("count", -1, v)
		p.subjectResults.Accept("subjectResults", -1, v)
	})
}

func (p *MeasureReportGroupPopulation) hasChildren() bool {
	return p.hasExtensions() ||
		p.code != nil ||
		p.count != nil ||
		p.subjectResults != nil
}

func (p *MeasureReportGroupPopulation) cloneLists() {
	p.backboneElement.cloneLists()
}

func (p *MeasureReportGroupPopulation) validate() error {
	return check(
		checkReference("MeasureReport.group.population", "subjectResults", p.subjectResults, "List"),
		p.backboneElement.validate("MeasureReport.group.population"),
		requireChildren("MeasureReport.group.population", p.hasChildren()),
	)
}

// ToBuilder returns a builder initialized with the elements of p.
func (p *MeasureReportGroupPopulation) ToBuilder() *MeasureReportGroupPopulationBuilder {
	b := &MeasureReportGroupPopulationBuilder{v: *p}
	b.v.cloneLists()
	return b
}

// MeasureReportGroupPopulationBuilder builds MeasureReportGroupPopulation values.
type MeasureReportGroupPopulationBuilder struct {
	v MeasureReportGroupPopulation
}

func NewMeasureReportGroupPopulationBuilder() *MeasureReportGroupPopulationBuilder {
	return &MeasureReportGroupPopulationBuilder{}
}

func (b *MeasureReportGroupPopulationBuilder) ID(id string) *MeasureReportGroupPopulationBuilder {
	b.v.id = id
	return b
}

func (b *MeasureReportGroupPopulationBuilder) Extension(v ...*Extension) *MeasureReportGroupPopulationBuilder {
	b.v.extension = append(b.v.extension, v...)
	return b
}

func (b *MeasureReportGroupPopulationBuilder) SetExtension(v []*Extension) *MeasureReportGroupPopulationBuilder {
	b.v.extension = slices.Clone(v)
	return b
}

func (b *MeasureReportGroupPopulationBuilder) ModifierExtension(v ...*Extension) *MeasureReportGroupPopulationBuilder {
	b.v.modifierExtension = append(b.v.modifierExtension, v...)
	return b
}

func (b *MeasureReportGroupPopulationBuilder) SetModifierExtension(v []*Extension) *MeasureReportGroupPopulationBuilder {
	b.v.modifierExtension = slices.Clone(v)
	return b
}

func (b *MeasureReportGroupPopulationBuilder) Code(v *CodeableConcept) *MeasureReportGroupPopulationBuilder {
	b.v.code = v
	return b
}

func (b *MeasureReportGroupPopulationBuilder) Count(v *Integer) *MeasureReportGroupPopulationBuilder {
	b.v.count = v
	return b
}

func (b *MeasureReportGroupPopulationBuilder) SubjectResults(v *Reference) *MeasureReportGroupPopulationBuilder {
	b.v.subjectResults = v
	return b
}

// Build validates the elements and returns a new MeasureReportGroupPopulation. The returned error
// is a *ValidationError.
func (b *MeasureReportGroupPopulationBuilder) Build() (*MeasureReportGroupPopulation, error) {
	v := b.v
	v.cloneLists()
	if err := v.validate(); err != nil {
		return nil, err
	}
	return &v, nil
}

// MeasureReportGroupStratifier holds the results of a stratifier of a group.
type MeasureReportGroupStratifier struct {
	backboneElement
	code    []*CodeableConcept
	stratum []*MeasureReportGroupStratifierStratum
}

func (s *MeasureReportGroupStratifier) TypeName() string {
	return "MeasureReport.group.stratifier"
}

func (s *MeasureReportGroupStratifier) Code() []*CodeableConcept {
	return slices.Clone(s.code)
}

func (s *MeasureReportGroupStratifier) Stratum() []*MeasureReportGroupStratifierStratum {
	return slices.Clone(s.stratum)
}

func (s *MeasureReportGroupStratifier) Accept(name string, index int, v Visitor) {
	if s == nil {
		return
	}
	visit(name, index, s, v, func() {
		s.acceptBackbone(v)
		acceptList("code", s.code, v)
		acceptList("stratum", s.stratum, v)
	})
}

func (s *MeasureReportGroupStratifier) hasChildren() bool {
	return s.hasExtensions() ||
		len(s.code) > 0 ||
		len(s.stratum) > 0
}

func (s *MeasureReportGroupStratifier) cloneLists() {
	s.backboneElement.cloneLists()
	s.code = slices.Clone(s.code)
	s.stratum = slices.Clone(s.stratum)
}

func (s *MeasureReportGroupStratifier) validate() error {
	return check(
		checkList("MeasureReport.group.stratifier", "code", s.code),
		checkList("MeasureReport.group.stratifier", "stratum", s.stratum),
		s.backboneElement.validate("MeasureReport.group.stratifier"),
		requireChildren("MeasureReport.group.stratifier", s.hasChildren()),
	)
}

// ToBuilder returns a builder initialized with the elements of s.
func (s *MeasureReportGroupStratifier) ToBuilder() *MeasureReportGroupStratifierBuilder {
	b := &MeasureReportGroupStratifierBuilder{v: *s}
	b.v.cloneLists()
	return b
}

// MeasureReportGroupStratifierBuilder builds MeasureReportGroupStratifier values.
type MeasureReportGroupStratifierBuilder struct {
	v MeasureReportGroupStratifier
}

func NewMeasureReportGroupStratifierBuilder() *MeasureReportGroupStratifierBuilder {
	return &MeasureReportGroupStratifierBuilder{}
}

func (b *MeasureReportGroupStratifierBuilder) ID(id string) *MeasureReportGroupStratifierBuilder {
	b.v.id = id
	return b
}

func (b *MeasureReportGroupStratifierBuilder) Extension(v ...*Extension) *MeasureReportGroupStratifierBuilder {
	b.v.extension = append(b.v.extension, v...)
	return b
}

func (b *MeasureReportGroupStratifierBuilder) SetExtension(v []*Extension) *MeasureReportGroupStratifierBuilder {
	b.v.extension = slices.Clone(v)
	return b
}

func (b *MeasureReportGroupStratifierBuilder) ModifierExtension(v ...*Extension) *MeasureReportGroupStratifierBuilder {
	b.v.modifierExtension = append(b.v.modifierExtension, v...)
	return b
}

func (b *MeasureReportGroupStratifierBuilder) SetModifierExtension(v []*Extension) *MeasureReportGroupStratifierBuilder {
	b.v.modifierExtension = slices.Clone(v)
	return b
}

func (b *MeasureReportGroupStratifierBuilder) Code(v ...*CodeableConcept) *MeasureReportGroupStratifierBuilder {
	b.v.code = append(b.v.code, v...)
	return b
}

func (b *MeasureReportGroupStratifierBuilder) SetCode(v []*CodeableConcept) *MeasureReportGroupStratifierBuilder {
	b.v.code = slices.Clone(v)
	return b
}

func (b *MeasureReportGroupStratifierBuilder) Stratum(v ...*MeasureReportGroupStratifierStratum) *MeasureReportGroupStratifierBuilder {
	b.v.stratum = append(b.v.stratum, v...)
	return b
}

func (b *MeasureReportGroupStratifierBuilder) SetStratum(v []*MeasureReportGroupStratifierStratum) *MeasureReportGroupStratifierBuilder {
	b.v.stratum = slices.Clone(v)
	return b
}

// Build validates the elements and returns a new MeasureReportGroupStratifier. The returned error
// is a *ValidationError.
func (b *MeasureReportGroupStratifierBuilder) Build() (*MeasureReportGroupStratifier, error) {
	v := b.v
	v.cloneLists()
	if err := v.validate(); err != nil {
		return nil, err
	}
	return &v, nil
}

// MeasureReportGroupStratifierStratum is one stratum of a stratifier. A stratum is identified either by a
// single value or by a set of components.
type MeasureReportGroupStratifierStratum struct {
	backboneElement
	value        *CodeableConcept
	component    []*MeasureReportGroupStratifierStratumComponent
	population   []*MeasureReportGroupStratifierStratumPopulation
	measureScore *Quantity
}

func (s *MeasureReportGroupStratifierStratum) TypeName() string {
	return "MeasureReport.group.stratifier.stratum"
}

func (s *MeasureReportGroupStratifierStratum) Value() *CodeableConcept {
	return s.value
}

func (s *MeasureReportGroupStratifierStratum) Component() []*MeasureReportGroupStratifierStratumComponent {
	return slices.Clone(s.component)
}

func (s *MeasureReportGroupStratifierStratum) Population() []*MeasureReportGroupStratifierStratumPopulation {
	return slices.Clone(s.population)
}

func (s *MeasureReportGroupStratifierStratum) MeasureScore() *Quantity {
	return s.measureScore
}

func (s *MeasureReportGroupStratifierStratum) Accept(name string, index int, v Visitor) {
	if s == nil {
		return
	}
	visit(name, index, s, v, func() {
		s.acceptBackbone(v)
		s.value.Accept("value", -1, v)
		acceptList("component", s.component, v)
		acceptList("population", s.population, v)
		s.measureScore.Accept("measureScore", -1, v)
	})
}

func (s *MeasureReportGroupStratifierStratum) hasChildren() bool {
	return s.hasExtensions() ||
		s.value != nil ||
		len(s.component) > 0 ||
		len(s.population) > 0 ||
		s.measureScore != nil
}

func (s *MeasureReportGroupStratifierStratum) cloneLists() {
	s.backboneElement.cloneLists()
	s.component = slices.Clone(s.component)
	s.population = slices.Clone(s.population)
}

func (s *MeasureReportGroupStratifierStratum) validate() error {
	return check(
		checkList("MeasureReport.group.stratifier.stratum", "component", s.component),
		checkList("MeasureReport.group.stratifier.stratum", "population", s.population),
		s.backboneElement.validate("MeasureReport.group.stratifier.stratum"),
		requireChildren("MeasureReport.group.stratifier.stratum", s.hasChildren()),
	)
}

// ToBuilder returns a builder initialized with the elements of s.
func (s *MeasureReportGroupStratifierStratum) ToBuilder() *MeasureReportGroupStratifierStratumBuilder {
	b := &MeasureReportGroupStratifierStratumBuilder{v: *s}
	b.v.cloneLists()
	return b
}

// MeasureReportGroupStratifierStratumBuilder builds MeasureReportGroupStratifierStratum values.
type MeasureReportGroupStratifierStratumBuilder struct {
	v MeasureReportGroupStratifierStratum
}

func NewMeasureReportGroupStratifierStratumBuilder() *MeasureReportGroupStratifierStratumBuilder {
	return &MeasureReportGroupStratifierStratumBuilder{}
}

func (b *MeasureReportGroupStratifierStratumBuilder) ID(id string) *MeasureReportGroupStratifierStratumBuilder {
	b.v.id = id
	return b
}

func (b *MeasureReportGroupStratifierStratumBuilder) Extension(v ...*Extension) *MeasureReportGroupStratifierStratumBuilder {
	b.v.extension = append(b.v.extension, v...)
	return b
}

func (b *MeasureReportGroupStratifierStratumBuilder) SetExtension(v []*Extension) *MeasureReportGroupStratifierStratumBuilder {
	b.v.extension = slices.Clone(v)
	return b
}

func (b *MeasureReportGroupStratifierStratumBuilder) ModifierExtension(v ...*Extension) *MeasureReportGroupStratifierStratumBuilder {
	b.v.modifierExtension = append(b.v.modifierExtension, v...)
	return b
}

func (b *MeasureReportGroupStratifierStratumBuilder) SetModifierExtension(v []*Extension) *MeasureReportGroupStratifierStratumBuilder {
	b.v.modifierExtension = slices.Clone(v)
	return b
}

func (b *MeasureReportGroupStratifierStratumBuilder) Value(v *CodeableConcept) *MeasureReportGroupStratifierStratumBuilder {
	b.v.value = v
	return b
}

func (b *MeasureReportGroupStratifierStratumBuilder) Component(v ...*MeasureReportGroupStratifierStratumComponent) *MeasureReportGroupStratifierStratumBuilder {
	b.v.component = append(b.v.component, v...)
	return b
}

func (b *MeasureReportGroupStratifierStratumBuilder) SetComponent(v []*MeasureReportGroupStratifierStratumComponent) *MeasureReportGroupStratifierStratumBuilder {
	b.v.component = slices.Clone(v)
	return b
}

func (b *MeasureReportGroupStratifierStratumBuilder) Population(v ...*MeasureReportGroupStratifierStratumPopulation) *MeasureReportGroupStratifierStratumBuilder {
	b.v.population = append(b.v.population, v...)
	return b
}

func (b *MeasureReportGroupStratifierStratumBuilder) SetPopulation(v []*MeasureReportGroupStratifierStratumPopulation) *MeasureReportGroupStratifierStratumBuilder {
	b.v.population = slices.Clone(v)
	return b
}

func (b *MeasureReportGroupStratifierStratumBuilder) MeasureScore(v *Quantity) *MeasureReportGroupStratifierStratumBuilder {
	b.v.measureScore = v
	return b
}

// Build validates the elements and returns a new MeasureReportGroupStratifierStratum. The returned error
// is a *ValidationError.
func (b *MeasureReportGroupStratifierStratumBuilder) Build() (*MeasureReportGroupStratifierStratum, error) {
	v := b.v
	v.cloneLists()
	if err := v.validate(); err != nil {
		return nil, err
	}
	return &v, nil
}

type MeasureReportGroupStratifierStratumComponent struct {
	backboneElement
	code  *CodeableConcept
	value *CodeableConcept
}

func (c *MeasureReportGroupStratifierStratumComponent) TypeName() string {
	return "MeasureReport.group.stratifier.stratum.component"
}

func (c *MeasureReportGroupStratifierStratumComponent) Code() *CodeableConcept {
	return c.code
}

func (c *MeasureReportGroupStratifierStratumComponent) Value() *CodeableConcept {
	return c.value
}

func (c *MeasureReportGroupStratifierStratumComponent) Accept(name string, index int, v Visitor) {
	if c == nil {
		return
	}
	visit(name, index, c, v, func() {
		c.acceptBackbone(v)
		c.code.Accept("code", -1, v)
		c.value.Accept("value", -1, v)
	})
}

func (c *MeasureReportGroupStratifierStratumComponent) hasChildren() bool {
	return c.hasExtensions() ||
		c.code != nil ||
		c.value != nil
}

func (c *MeasureReportGroupStratifierStratumComponent) cloneLists() {
	c.backboneElement.cloneLists()
}

func (c *MeasureReportGroupStratifierStratumComponent) validate() error {
	return check(
		requireElement("MeasureReport.group.stratifier.stratum.component", "code", c.code),
		requireElement("MeasureReport.group.stratifier.stratum.component", "value", c.value),
		c.backboneElement.validate("MeasureReport.group.stratifier.stratum.component"),
		requireChildren("MeasureReport.group.stratifier.stratum.component", c.hasChildren()),
	)
}

// ToBuilder returns a builder initialized with the elements of c.
func (c *MeasureReportGroupStratifierStratumComponent) ToBuilder() *MeasureReportGroupStratifierStratumComponentBuilder {
	b := &MeasureReportGroupStratifierStratumComponentBuilder{v: *c}
	b.v.cloneLists()
	return b
}

// MeasureReportGroupStratifierStratumComponentBuilder builds MeasureReportGroupStratifierStratumComponent values.
type MeasureReportGroupStratifierStratumComponentBuilder struct {
	v MeasureReportGroupStratifierStratumComponent
}

// NewMeasureReportGroupStratifierStratumComponentBuilder returns a builder for MeasureReportGroupStratifierStratumComponent with the required elements set.
func NewMeasureReportGroupStratifierStratumComponentBuilder(code *CodeableConcept, value *CodeableConcept) *MeasureReportGroupStratifierStratumComponentBuilder {
	b := &MeasureReportGroupStratifierStratumComponentBuilder{}
	b.v.code = code
	b.v.value = value
	return b
}

func (b *MeasureReportGroupStratifierStratumComponentBuilder) ID(id string) *MeasureReportGroupStratifierStratumComponentBuilder {
	b.v.id = id
	return b
}

func (b *MeasureReportGroupStratifierStratumComponentBuilder) Extension(v ...*Extension) *MeasureReportGroupStratifierStratumComponentBuilder {
	b.v.extension = append(b.v.extension, v...)
	return b
}

func (b *MeasureReportGroupStratifierStratumComponentBuilder) SetExtension(v []*Extension) *MeasureReportGroupStratifierStratumComponentBuilder {
	b.v.extension = slices.Clone(v)
	return b
}

func (b *MeasureReportGroupStratifierStratumComponentBuilder) ModifierExtension(v ...*Extension) *MeasureReportGroupStratifierStratumComponentBuilder {
	b.v.modifierExtension = append(b.v.modifierExtension, v...)
	return b
}

func (b *MeasureReportGroupStratifierStratumComponentBuilder) SetModifierExtension(v []*Extension) *MeasureReportGroupStratifierStratumComponentBuilder {
	b.v.modifierExtension = slices.Clone(v)
	return b
}

func (b *MeasureReportGroupStratifierStratumComponentBuilder) Code(v *CodeableConcept) *MeasureReportGroupStratifierStratumComponentBuilder {
	b.v.code = v
	return b
}

func (b *MeasureReportGroupStratifierStratumComponentBuilder) Value(v *CodeableConcept) *MeasureReportGroupStratifierStratumComponentBuilder {
	b.v.value = v
	return b
}

// Build validates the elements and returns a new MeasureReportGroupStratifierStratumComponent. The returned error
// is a *ValidationError.
func (b *MeasureReportGroupStratifierStratumComponentBuilder) Build() (*MeasureReportGroupStratifierStratumComponent, error) {
	v := b.v
	v.cloneLists()
	if err := v.validate(); err != nil {
		return nil, err
	}
	return &v, nil
}

type MeasureReportGroupStratifierStratumPopulation struct {
	backboneElement
	code           *CodeableConcept
	count          *Integer
	subjectResults *Reference
}

func (p *MeasureReportGroupStratifierStratumPopulation) TypeName() string {
	return "MeasureReport.group.stratifier.stratum.population"
}

func (p *MeasureReportGroupStratifierStratumPopulation) Code() *CodeableConcept {
	return p.code
}

func (p *MeasureReportGroupStratifierStratumPopulation) Count() *Integer {
	return p.count
}

func (p *MeasureReportGroupStratifierStratumPopulation) SubjectResults() *Reference {
	return p.subjectResults
}

func (p *MeasureReportGroupStratifierStratumPopulation) Accept(name string, index int, v Visitor) {
	if p == nil {
		return
	}
	visit(name, index, p, v, func() {
		p.acceptBackbone(v)
		p.code.Accept("code", -1, v)
		p.count.Accept("count", -1, v)
		p.subjectResults.Accept("subjectResults", -1, v)
	})
}

func (p *MeasureReportGroupStratifierStratumPopulation) hasChildren() bool {
	return p.hasExtensions() ||
		p.code != nil ||
		p.count != nil ||
		p.subjectResults != nil
}

func (p *MeasureReportGroupStratifierStratumPopulation) cloneLists() {
	p.backboneElement.cloneLists()
}

func (p *MeasureReportGroupStratifierStratumPopulation) validate() error {
	return check(
		checkReference("MeasureReport.group.stratifier.stratum.population", "subjectResults", p.subjectResults, "List"),
		p.backboneElement.validate("MeasureReport.group.stratifier.stratum.population"),
		requireChildren("MeasureReport.group.stratifier.stratum.population", p.hasChildren()),
	)
}

// ToBuilder returns a builder initialized with the elements of p.
func (p *MeasureReportGroupStratifierStratumPopulation) ToBuilder() *MeasureReportGroupStratifierStratumPopulationBuilder {
	b := &MeasureReportGroupStratifierStratumPopulationBuilder{v: *p}
	b.v.cloneLists()
	return b
}

// MeasureReportGroupStratifierStratumPopulationBuilder builds MeasureReportGroupStratifierStratumPopulation values.
type MeasureReportGroupStratifierStratumPopulationBuilder struct {
	v MeasureReportGroupStratifierStratumPopulation
}

func NewMeasureReportGroupStratifierStratumPopulationBuilder() *MeasureReportGroupStratifierStratumPopulationBuilder {
	return &MeasureReportGroupStratifierStratumPopulationBuilder{}
}

func (b *MeasureReportGroupStratifierStratumPopulationBuilder) ID(id string) *MeasureReportGroupStratifierStratumPopulationBuilder {
	b.v.id = id
	return b
}

func (b *MeasureReportGroupStratifierStratumPopulationBuilder) Extension(v ...*Extension) *MeasureReportGroupStratifierStratumPopulationBuilder {
	b.v.extension = append(b.v.extension, v...)
	return b
}

func (b *MeasureReportGroupStratifierStratumPopulationBuilder) SetExtension(v []*Extension) *MeasureReportGroupStratifierStratumPopulationBuilder {
	b.v.extension = slices.Clone(v)
	return b
}

func (b *MeasureReportGroupStratifierStratumPopulationBuilder) ModifierExtension(v ...*Extension) *MeasureReportGroupStratifierStratumPopulationBuilder {
	b.v.modifierExtension = append(b.v.modifierExtension, v...)
	return b
}

func (b *MeasureReportGroupStratifierStratumPopulationBuilder) SetModifierExtension(v []*Extension) *MeasureReportGroupStratifierStratumPopulationBuilder {
	b.v.modifierExtension = slices.Clone(v)
	return b
}

func (b *MeasureReportGroupStratifierStratumPopulationBuilder) Code(v *CodeableConcept) *MeasureReportGroupStratifierStratumPopulationBuilder {
	b.v.code = v
	return b
}

func (b *MeasureReportGroupStratifierStratumPopulationBuilder) Count(v *Integer) *MeasureReportGroupStratifierStratumPopulationBuilder {
	b.v.count = v
	return b
}

func (b *MeasureReportGroupStratifierStratumPopulationBuilder) SubjectResults(v *Reference) *MeasureReportGroupStratifierStratumPopulationBuilder {
	b.v.subjectResults = v
	return b
}

// Build validates the elements and returns a new MeasureReportGroupStratifierStratumPopulation. The returned error
// is a *ValidationError.
func (b *MeasureReportGroupStratifierStratumPopulationBuilder) Build() (*MeasureReportGroupStratifierStratumPopulation, error) {
	v := b.v
	v.cloneLists()
	if err := v.validate(); err != nil {
		return nil, err
	}
	return &v, nil
}
