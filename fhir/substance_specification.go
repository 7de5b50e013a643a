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

// SubstanceSpecification is the detailed description of a substance, typically at a level beyond
// what is used for prescribing.
type SubstanceSpecification struct {
	domainResource
	identifier           *Identifier
	typ                  *CodeableConcept
	status               *CodeableConcept
	domain               *CodeableConcept
	description          *String
	source               []*Reference
	comment              *String
	moiety               []*SubstanceSpecificationMoiety
	property             []*SubstanceSpecificationProperty
	referenceInformation *Reference
	structure            *SubstanceSpecificationStructure
	code                 []*SubstanceSpecificationCode
	name                 []*SubstanceSpecificationName
	molecularWeight      []*SubstanceSpecificationStructureIsotopeMolecularWeight
	relationship         []*SubstanceSpecificationRelationship
	nucleicAcid          *Reference
	polymer              *Reference
	protein              *Reference
	sourceMaterial       *Reference
}

func (s *SubstanceSpecification) ResourceType() string {
	return "SubstanceSpecification"
}

func (s *SubstanceSpecification) TypeName() string {
	return "SubstanceSpecification"
}

// Constraints returns the invariants of SubstanceSpecification including the ones
// inherited from DomainResource.
func (s *SubstanceSpecification) Constraints() []Constraint {
	return slices.Concat(substanceSpecificationConstraints, domainResourceConstraints)
}

// MarshalJSON returns the FHIR JSON representation of s.
func (s *SubstanceSpecification) MarshalJSON() ([]byte, error) {
	return Marshal(s)
}

func (s *SubstanceSpecification) Identifier() *Identifier {
	return s.identifier
}

func (s *SubstanceSpecification) Type() *CodeableConcept {
	return s.typ
}

func (s *SubstanceSpecification) Status() *CodeableConcept {
	return s.status
}

func (s *SubstanceSpecification) Domain() *CodeableConcept {
	return s.domain
}

func (s *SubstanceSpecification) Description() *String {
	return s.description
}

func (s *SubstanceSpecification) Source() []*Reference {
	return slices.Clone(s.source)
}

func (s *SubstanceSpecification) Comment() *String {
	return s.comment
}

func (s *SubstanceSpecification) Moiety() []*SubstanceSpecificationMoiety {
	return slices.Clone(s.moiety)
}

func (s *SubstanceSpecification) Property() []*SubstanceSpecificationProperty {
	return slices.Clone(s.property)
}

func (s *SubstanceSpecification) ReferenceInformation() *Reference {
	return s.referenceInformation
}

func (s *SubstanceSpecification) Structure() *SubstanceSpecificationStructure {
	return s.structure
}

func (s *SubstanceSpecification) Code() []*SubstanceSpecificationCode {
	return slices.Clone(s.code)
}

func (s *SubstanceSpecification) Name() []*SubstanceSpecificationName {
	return slices.Clone(s.name)
}

func (s *SubstanceSpecification) MolecularWeight() []*SubstanceSpecificationStructureIsotopeMolecularWeight {
	return slices.Clone(s.molecularWeight)
}

func (s *SubstanceSpecification) Relationship() []*SubstanceSpecificationRelationship {
	return slices.Clone(s.relationship)
}

func (s *SubstanceSpecification) NucleicAcid() *Reference {
	return s.nucleicAcid
}

func (s *SubstanceSpecification) Polymer() *Reference {
	return s.polymer
}

func (s *SubstanceSpecification) Protein() *Reference {
	return s.protein
}

func (s *SubstanceSpecification) SourceMaterial() *Reference {
	return s.sourceMaterial
}

func (s *SubstanceSpecification) Accept(name string, index int, v Visitor) {
	if s == nil {
		return
	}
	visit(name, index, s, v, func() {
		s.acceptDomainResource(v)
		s.identifier.Accept("identifier", -1, v)
		s.typ.Accept("type", -1, v)
		s.status.Accept("status", -1, v)
		s.domain.Accept("domain", -1, v)
		s.description.Accept("description", -1, v)
		acceptList("source", s.source, v)
		s.comment.Accept("comment", -1, v)
		acceptList("moiety", s.moiety, v)
		acceptList("property", s.property, v)
		s.referenceInformation.Accept("referenceInformation", -1, v)
		s.structure.Accept("structure", -1, v)
		acceptList("code", s.code, v)
		acceptList("name", s.name, v)
		acceptList("molecularWeight", s.molecularWeight, v)
		acceptList("relationship", s.relationship, v)
		s.nucleicAcid.Accept("nucleicAcid", -1, v)
		s.polymer.Accept("polymer", -1, v)
		s.protein.Accept("protein", -1, v)
		s.sourceMaterial.Accept("sourceMaterial", -1, v)
	})
}

func (s *SubstanceSpecification) cloneLists() {
	s.domainResource.cloneLists()
	s.source = slices.Clone(s.source)
	s.moiety = slices.Clone(s.moiety)
	s.property = slices.Clone(s.property)
	s.code = slices.Clone(s.code)
	s.name = slices.Clone(s.name)
	s.molecularWeight = slices.Clone(s.molecularWeight)
	s.relationship = slices.Clone(s.relationship)
}

func (s *SubstanceSpecification) validate() error {
	return check(
		checkList("SubstanceSpecification", "source", s.source),
		checkList("SubstanceSpecification", "moiety", s.moiety),
		checkList("SubstanceSpecification", "property", s.property),
		checkList("SubstanceSpecification", "code", s.code),
		checkList("SubstanceSpecification", "name", s.name),
		checkList("SubstanceSpecification", "molecularWeight", s.molecularWeight),
		checkList("SubstanceSpecification", "relationship", s.relationship),
		checkReferences("SubstanceSpecification", "source", s.source, "DocumentReference"),
		checkReference("SubstanceSpecification", "referenceInformation", s.referenceInformation, "SubstanceReferenceInformation"),
		checkReference("SubstanceSpecification", "nucleicAcid", s.nucleicAcid, "SubstanceNucleicAcid"),
		checkReference("SubstanceSpecification", "polymer", s.polymer, "SubstancePolymer"),
		checkReference("SubstanceSpecification", "protein", s.protein, "SubstanceProtein"),
		checkReference("SubstanceSpecification", "sourceMaterial", s.sourceMaterial, "SubstanceSourceMaterial"),
		s.domainResource.validate("SubstanceSpecification"),
	)
}

// ToBuilder returns a builder initialized with the elements of s.
func (s *SubstanceSpecification) ToBuilder() *SubstanceSpecificationBuilder {
	b := &SubstanceSpecificationBuilder{v: *s}
	b.v.cloneLists()
	return b
}

// SubstanceSpecificationBuilder builds SubstanceSpecification values.
type SubstanceSpecificationBuilder struct {
	v SubstanceSpecification
}

func NewSubstanceSpecificationBuilder() *SubstanceSpecificationBuilder {
	return &SubstanceSpecificationBuilder{}
}

func (b *SubstanceSpecificationBuilder) ID(id string) *SubstanceSpecificationBuilder {
	b.v.id = id
	return b
}

func (b *SubstanceSpecificationBuilder) Meta(v *Meta) *SubstanceSpecificationBuilder {
	b.v.meta = v
	return b
}

func (b *SubstanceSpecificationBuilder) ImplicitRules(v *Uri) *SubstanceSpecificationBuilder {
	b.v.implicitRules = v
	return b
}

func (b *SubstanceSpecificationBuilder) Language(v *Code) *SubstanceSpecificationBuilder {
	b.v.language = v
	return b
}

func (b *SubstanceSpecificationBuilder) Text(v *Narrative) *SubstanceSpecificationBuilder {
	b.v.text = v
	return b
}

func (b *SubstanceSpecificationBuilder) Contained(v ...Resource) *SubstanceSpecificationBuilder {
	b.v.contained = append(b.v.contained, v...)
	return b
}

func (b *SubstanceSpecificationBuilder) SetContained(v []Resource) *SubstanceSpecificationBuilder {
	b.v.contained = slices.Clone(v)
	return b
}

func (b *SubstanceSpecificationBuilder) Extension(v ...*Extension) *SubstanceSpecificationBuilder {
	b.v.extension = append(b.v.extension, v...)
	return b
}

func (b *SubstanceSpecificationBuilder) SetExtension(v []*Extension) *SubstanceSpecificationBuilder {
	b.v.extension = slices.Clone(v)
	return b
}

func (b *SubstanceSpecificationBuilder) ModifierExtension(v ...*Extension) *SubstanceSpecificationBuilder {
	b.v.modifierExtension = append(b.v.modifierExtension, v...)
	return b
}

func (b *SubstanceSpecificationBuilder) SetModifierExtension(v []*Extension) *SubstanceSpecificationBuilder {
	b.v.modifierExtension = slices.Clone(v)
	return b
}

func (b *SubstanceSpecificationBuilder) Identifier(v *Identifier) *SubstanceSpecificationBuilder {
	b.v.identifier = v
	return b
}

func (b *SubstanceSpecificationBuilder) Type(v *CodeableConcept) *SubstanceSpecificationBuilder {
	b.v.typ = v
	return b
}

func (b *SubstanceSpecificationBuilder) Status(v *CodeableConcept) *SubstanceSpecificationBuilder {
	b.v.status = v
	return b
}

func (b *SubstanceSpecificationBuilder) Domain(v *CodeableConcept) *SubstanceSpecificationBuilder {
	b.v.domain = v
	return b
}

func (b *SubstanceSpecificationBuilder) Description(v *String) *SubstanceSpecificationBuilder {
	b.v.description = v
	return b
}

func (b *SubstanceSpecificationBuilder) Source(v ...*Reference) *SubstanceSpecificationBuilder {
	b.v.source = append(b.v.source, v...)
	return b
}

func (b *SubstanceSpecificationBuilder) SetSource(v []*Reference) *SubstanceSpecificationBuilder {
	b.v.source = slices.Clone(v)
	return b
}

func (b *SubstanceSpecificationBuilder) Comment(v *String) *SubstanceSpecificationBuilder {
	b.v.comment = v
	return b
}

func (b *SubstanceSpecificationBuilder) Moiety(v ...*SubstanceSpecificationMoiety) *SubstanceSpecificationBuilder {
	b.v.moiety = append(b.v.moiety, v...)
	return b
}

func (b *SubstanceSpecificationBuilder) SetMoiety(v []*SubstanceSpecificationMoiety) *SubstanceSpecificationBuilder {
	b.v.moiety = slices.Clone(v)
	return b
}

func (b *SubstanceSpecificationBuilder) Property(v ...*SubstanceSpecificationProperty) *SubstanceSpecificationBuilder {
	b.v.property = append(b.v.property, v...)
	return b
}

func (b *SubstanceSpecificationBuilder) SetProperty(v []*SubstanceSpecificationProperty) *SubstanceSpecificationBuilder {
	b.v.property = slices.Clone(v)
	return b
}

func (b *SubstanceSpecificationBuilder) ReferenceInformation(v *Reference) *SubstanceSpecificationBuilder {
	b.v.referenceInformation = v
	return b
}

func (b *SubstanceSpecificationBuilder) Structure(v *SubstanceSpecificationStructure) *SubstanceSpecificationBuilder {
	b.v.structure = v
	return b
}

func (b *SubstanceSpecificationBuilder) Code(v ...*SubstanceSpecificationCode) *SubstanceSpecificationBuilder {
	b.v.code = append(b.v.code, v...)
	return b
}

func (b *SubstanceSpecificationBuilder) SetCode(v []*SubstanceSpecificationCode) *SubstanceSpecificationBuilder {
	b.v.code = slices.Clone(v)
	return b
}

func (b *SubstanceSpecificationBuilder) Name(v ...*SubstanceSpecificationName) *SubstanceSpecificationBuilder {
	b.v.name = append(b.v.name, v...)
	return b
}

func (b *SubstanceSpecificationBuilder) SetName(v []*SubstanceSpecificationName) *SubstanceSpecificationBuilder {
	b.v.name = slices.Clone(v)
	return b
}

func (b *SubstanceSpecificationBuilder) MolecularWeight(v ...*SubstanceSpecificationStructureIsotopeMolecularWeight) *SubstanceSpecificationBuilder {
	b.v.molecularWeight = append(b.v.molecularWeight, v...)
	return b
}

func (b *SubstanceSpecificationBuilder) SetMolecularWeight(v []*SubstanceSpecificationStructureIsotopeMolecularWeight) *SubstanceSpecificationBuilder {
	b.v.molecularWeight = slices.Clone(v)
	return b
}

func (b *SubstanceSpecificationBuilder) Relationship(v ...*SubstanceSpecificationRelationship) *SubstanceSpecificationBuilder {
	b.v.relationship = append(b.v.relationship, v...)
	return b
}

func (b *SubstanceSpecificationBuilder) SetRelationship(v []*SubstanceSpecificationRelationship) *SubstanceSpecificationBuilder {
	b.v.relationship = slices.Clone(v)
	return b
}

func (b *SubstanceSpecificationBuilder) NucleicAcid(v *Reference) *SubstanceSpecificationBuilder {
	b.v.nucleicAcid = v
	return b
}

func (b *SubstanceSpecificationBuilder) Polymer(v *Reference) *SubstanceSpecificationBuilder {
	b.v.polymer = v
	return b
}

func (b *SubstanceSpecificationBuilder) Protein(v *Reference) *SubstanceSpecificationBuilder {
	b.v.protein = v
	return b
}

func (b *SubstanceSpecificationBuilder) SourceMaterial(v *Reference) *SubstanceSpecificationBuilder {
	b.v.sourceMaterial = v
	return b
}

// Build validates the elements and returns a new SubstanceSpecification. The returned error
// is a *ValidationError.
func (b *SubstanceSpecificationBuilder) Build() (*SubstanceSpecification, error) {
	v := b.v
	v.cloneLists()
	if err := v.validate(); err != nil {
		return nil, err
	}
	return &v, nil
}

// SubstanceSpecificationMoiety is a moiety of the substance, e.g. a salt or a solvate.
type SubstanceSpecificationMoiety struct {
	backboneElement
	role             *CodeableConcept
	identifier       *Identifier
	name             *String
	stereochemistry  *CodeableConcept
	opticalActivity  *CodeableConcept
	molecularFormula *String
	amount           Element
}

func (m *SubstanceSpecificationMoiety) TypeName() string {
	return "SubstanceSpecification.moiety"
}

func (m *SubstanceSpecificationMoiety) Role() *CodeableConcept {
	return m.role
}

func (m *SubstanceSpecificationMoiety) Identifier() *Identifier {
	return m.identifier
}

func (m *SubstanceSpecificationMoiety) Name() *String {
	return m.name
}

func (m *SubstanceSpecificationMoiety) Stereochemistry() *CodeableConcept {
	return m.stereochemistry
}

func (m *SubstanceSpecificationMoiety) OpticalActivity() *CodeableConcept {
	return m.opticalActivity
}

func (m *SubstanceSpecificationMoiety) MolecularFormula() *String {
	return m.molecularFormula
}

func (m *SubstanceSpecificationMoiety) Amount() Element {
	return m.amount
}

func (m *SubstanceSpecificationMoiety) Accept(name string, index int, v Visitor) {
	if m == nil {
		return
	}
	visit(name, index, m, v, func() {
		m.acceptBackbone(v)
		m.role.Accept("role", -1, v)
		m.identifier.Accept("identifier", -1, v)
		m.name.Accept("name", -1, v)
		m.stereochemistry.Accept("stereochemistry", -1, v)
		m.opticalActivity.Accept("opticalActivity", -1, v)
		m.molecularFormula.Accept("molecularFormula", -1, v)
		acceptChoice("amount", m.amount, v)
	})
}

func (m *SubstanceSpecificationMoiety) hasChildren() bool {
	return m.hasExtensions() ||
		m.role != nil ||
		m.identifier != nil ||
		m.name != nil ||
		m.stereochemistry != nil ||
		m.opticalActivity != nil ||
		m.molecularFormula != nil ||
		m.amount != nil
}

func (m *SubstanceSpecificationMoiety) cloneLists() {
	m.backboneElement.cloneLists()
}

func (m *SubstanceSpecificationMoiety) validate() error {
	return check(
		checkChoice("SubstanceSpecification.moiety", "amount", m.amount, "Quantity", "string"),
		m.backboneElement.validate("SubstanceSpecification.moiety"),
		requireChildren("SubstanceSpecification.moiety", m.hasChildren()),
	)
}

// ToBuilder returns a builder initialized with the elements of m.
func (m *SubstanceSpecificationMoiety) ToBuilder() *SubstanceSpecificationMoietyBuilder {
	b := &SubstanceSpecificationMoietyBuilder{v: *m}
	b.v.cloneLists()
	return b
}

// SubstanceSpecificationMoietyBuilder builds SubstanceSpecificationMoiety values.
type SubstanceSpecificationMoietyBuilder struct {
	v SubstanceSpecificationMoiety
}

func NewSubstanceSpecificationMoietyBuilder() *SubstanceSpecificationMoietyBuilder {
	return &SubstanceSpecificationMoietyBuilder{}
}

func (b *SubstanceSpecificationMoietyBuilder) ID(id string) *SubstanceSpecificationMoietyBuilder {
	b.v.id = id
	return b
}

func (b *SubstanceSpecificationMoietyBuilder) Extension(v ...*Extension) *SubstanceSpecificationMoietyBuilder {
	b.v.extension = append(b.v.extension, v...)
	return b
}

func (b *SubstanceSpecificationMoietyBuilder) SetExtension(v []*Extension) *SubstanceSpecificationMoietyBuilder {
	b.v.extension = slices.Clone(v)
	return b
}

func (b *SubstanceSpecificationMoietyBuilder) ModifierExtension(v ...*Extension) *SubstanceSpecificationMoietyBuilder {
	b.v.modifierExtension = append(b.v.modifierExtension, v...)
	return b
}

func (b *SubstanceSpecificationMoietyBuilder) SetModifierExtension(v []*Extension) *SubstanceSpecificationMoietyBuilder {
	b.v.modifierExtension = slices.Clone(v)
	return b
}

func (b *SubstanceSpecificationMoietyBuilder) Role(v *CodeableConcept) *SubstanceSpecificationMoietyBuilder {
	b.v.role = v
	return b
}

func (b *SubstanceSpecificationMoietyBuilder) Identifier(v *Identifier) *SubstanceSpecificationMoietyBuilder {
	b.v.identifier = v
	return b
}

func (b *SubstanceSpecificationMoietyBuilder) Name(v *String) *SubstanceSpecificationMoietyBuilder {
	b.v.name = v
	return b
}

func (b *SubstanceSpecificationMoietyBuilder) Stereochemistry(v *CodeableConcept) *SubstanceSpecificationMoietyBuilder {
	b.v.stereochemistry = v
	return b
}

func (b *SubstanceSpecificationMoietyBuilder) OpticalActivity(v *CodeableConcept) *SubstanceSpecificationMoietyBuilder {
	b.v.opticalActivity = v
	return b
}

func (b *SubstanceSpecificationMoietyBuilder) MolecularFormula(v *String) *SubstanceSpecificationMoietyBuilder {
	b.v.molecularFormula = v
	return b
}

// Amount sets amount[x]. The value has to be one of Quantity, string.
func (b *SubstanceSpecificationMoietyBuilder) Amount(v Element) *SubstanceSpecificationMoietyBuilder {
	b.v.amount = choice(v)
	return b
}

// Build validates the elements and returns a new SubstanceSpecificationMoiety. The returned error
// is a *ValidationError.
func (b *SubstanceSpecificationMoietyBuilder) Build() (*SubstanceSpecificationMoiety, error) {
	v := b.v
	v.cloneLists()
	if err := v.validate(); err != nil {
		return nil, err
	}
	return &v, nil
}

// SubstanceSpecificationProperty is a general specification property, e.g. a physical or chemical property.
type SubstanceSpecificationProperty struct {
	backboneElement
	category          *CodeableConcept
	code              *CodeableConcept
	parameters        *String
	definingSubstance Element
	amount            Element
}

func (p *SubstanceSpecificationProperty) TypeName() string {
	return "SubstanceSpecification.property"
}

func (p *SubstanceSpecificationProperty) Category() *CodeableConcept {
	return p.category
}

func (p *SubstanceSpecificationProperty) Code() *CodeableConcept {
	return p.code
}

func (p *SubstanceSpecificationProperty) Parameters() *String {
	return p.parameters
}

func (p *SubstanceSpecificationProperty) DefiningSubstance() Element {
	return p.definingSubstance
}

func (p *SubstanceSpecificationProperty) Amount() Element {
	return p.amount
}

func (p *SubstanceSpecificationProperty) Accept(name string, index int, v Visitor) {
	if p == nil {
		return
	}
	visit(name, index, p, v, func() {
		p.acceptBackbone(v)
		p.category.Accept("category", -1, v)
		p.code.Accept("code", -1, v)
		p.parameters.Accept("parameters", -1, v)
		acceptChoice("definingSubstance", p.definingSubstance, v)
		acceptChoice("amount", p.amount, v)
	})
}

func (p *SubstanceSpecificationProperty) hasChildren() bool {
	return p.hasExtensions() ||
		p.category != nil ||
		p.code != nil ||
		p.parameters != nil ||
		p.definingSubstance != nil ||
		p.amount != nil
}

func (p *SubstanceSpecificationProperty) cloneLists() {
	p.backboneElement.cloneLists()
}

func (p *SubstanceSpecificationProperty) validate() error {
	return check(
		checkChoice("SubstanceSpecification.property", "definingSubstance", p.definingSubstance, "Reference", "CodeableConcept"),
		checkChoice("SubstanceSpecification.property", "amount", p.amount, "Quantity", "string"),
		checkReference("SubstanceSpecification.property", "definingSubstance", choiceReference(p.definingSubstance), "SubstanceSpecification", "Substance"),
		p.backboneElement.validate("SubstanceSpecification.property"),
		requireChildren("SubstanceSpecification.property", p.hasChildren()),
	)
}

// ToBuilder returns a builder initialized with the elements of p.
func (p *SubstanceSpecificationProperty) ToBuilder() *SubstanceSpecificationPropertyBuilder {
	b := &SubstanceSpecificationPropertyBuilder{v: *p}
	b.v.cloneLists()
	return b
}

// SubstanceSpecificationPropertyBuilder builds SubstanceSpecificationProperty values.
type SubstanceSpecificationPropertyBuilder struct {
	v SubstanceSpecificationProperty
}

func NewSubstanceSpecificationPropertyBuilder() *SubstanceSpecificationPropertyBuilder {
	return &SubstanceSpecificationPropertyBuilder{}
}

func (b *SubstanceSpecificationPropertyBuilder) ID(id string) *SubstanceSpecificationPropertyBuilder {
	b.v.id = id
	return b
}

func (b *SubstanceSpecificationPropertyBuilder) Extension(v ...*Extension) *SubstanceSpecificationPropertyBuilder {
	b.v.extension = append(b.v.extension, v...)
	return b
}

func (b *SubstanceSpecificationPropertyBuilder) SetExtension(v []*Extension) *SubstanceSpecificationPropertyBuilder {
	b.v.extension = slices.Clone(v)
	return b
}

func (b *SubstanceSpecificationPropertyBuilder) ModifierExtension(v ...*Extension) *SubstanceSpecificationPropertyBuilder {
	b.v.modifierExtension = append(b.v.modifierExtension, v...)
	return b
}

func (b *SubstanceSpecificationPropertyBuilder) SetModifierExtension(v []*Extension) *SubstanceSpecificationPropertyBuilder {
	b.v.modifierExtension = slices.Clone(v)
	return b
}

func (b *SubstanceSpecificationPropertyBuilder) Category(v *CodeableConcept) *SubstanceSpecificationPropertyBuilder {
	b.v.category = v
	return b
}

func (b *SubstanceSpecificationPropertyBuilder) Code(v *CodeableConcept) *SubstanceSpecificationPropertyBuilder {
	b.v.code = v
	return b
}

func (b *SubstanceSpecificationPropertyBuilder) Parameters(v *String) *SubstanceSpecificationPropertyBuilder {
	b.v.parameters = v
	return b
}

// DefiningSubstance sets definingSubstance[x]. The value has to be one of Reference, CodeableConcept.
func (b *SubstanceSpecificationPropertyBuilder) DefiningSubstance(v Element) *SubstanceSpecificationPropertyBuilder {
	b.v.definingSubstance = choice(v)
	return b
}

// Amount sets amount[x]. The value has to be one of Quantity, string.
func (b *SubstanceSpecificationPropertyBuilder) Amount(v Element) *SubstanceSpecificationPropertyBuilder {
	b.v.amount = choice(v)
	return b
}

// Build validates the elements and returns a new SubstanceSpecificationProperty. The returned error
// is a *ValidationError.
func (b *SubstanceSpecificationPropertyBuilder) Build() (*SubstanceSpecificationProperty, error) {
	v := b.v
	v.cloneLists()
	if err := v.validate(); err != nil {
		return nil, err
	}
	return &v, nil
}

// SubstanceSpecificationStructure describes the structural information of a substance.
type SubstanceSpecificationStructure struct {
	backboneElement
	stereochemistry          *CodeableConcept
	opticalActivity          *CodeableConcept
	molecularFormula         *String
	molecularFormulaByMoiety *String
	isotope                  []*SubstanceSpecificationStructureIsotope
	molecularWeight          *SubstanceSpecificationStructureIsotopeMolecularWeight
	source                   []*Reference
	representation           []*SubstanceSpecificationStructureRepresentation
}

func (s *SubstanceSpecificationStructure) TypeName() string {
	return "SubstanceSpecification.structure"
}

func (s *SubstanceSpecificationStructure) Stereochemistry() *CodeableConcept {
	return s.stereochemistry
}

func (s *SubstanceSpecificationStructure) OpticalActivity() *CodeableConcept {
	return s.opticalActivity
}

func (s *SubstanceSpecificationStructure) MolecularFormula() *String {
	return s.molecularFormula
}

func (s *SubstanceSpecificationStructure) MolecularFormulaByMoiety() *String {
	return s.molecularFormulaByMoiety
}

func (s *SubstanceSpecificationStructure) Isotope() []*SubstanceSpecificationStructureIsotope {
	return slices.Clone(s.isotope)
}

func (s *SubstanceSpecificationStructure) MolecularWeight() *SubstanceSpecificationStructureIsotopeMolecularWeight {
	return s.molecularWeight
}

func (s *SubstanceSpecificationStructure) Source() []*Reference {
	return slices.Clone(s.source)
}

func (s *SubstanceSpecificationStructure) Representation() []*SubstanceSpecificationStructureRepresentation {
	return slices.Clone(s.representation)
}

func (s *SubstanceSpecificationStructure) Accept(name string, index int, v Visitor) {
	if s == nil {
		return
	}
	visit(name, index, s, v, func() {
		s.acceptBackbone(v)
		s.stereochemistry.Accept("stereochemistry", -1, v)
		s.opticalActivity.Accept("opticalActivity", -1, v)
		s.molecularFormula.Accept("molecularFormula", -1, v)
		s.molecularFormulaByMoiety.Accept("molecularFormulaByMoiety", -1, v)
		acceptList("isotope", s.isotope, v)
		s.molecularWeight.Accept("molecularWeight", -1, v)
		acceptList("source", s.source, v)
		acceptList("representation", s.representation, v)
	})
}

func (s *SubstanceSpecificationStructure) hasChildren() bool {
	return s.hasExtensions() ||
		s.stereochemistry != nil ||
		s.opticalActivity != nil ||
		s.molecularFormula != nil ||
		s.molecularFormulaByMoiety != nil ||
		len(s.isotope) > 0 ||
		s.molecularWeight != nil ||
		len(s.source) > 0 ||
		len(s.representation) > 0
}

func (s *SubstanceSpecificationStructure) cloneLists() {
	s.backboneElement.cloneLists()
	s.isotope = slices.Clone(s.isotope)
	s.source = slices.Clone(s.source)
	s.representation = slices.Clone(s.representation)
}

func (s *SubstanceSpecificationStructure) validate() error {
	return check(
		checkList("SubstanceSpecification.structure", "isotope", s.isotope),
		checkList("SubstanceSpecification.structure", "source", s.source),
		checkList("SubstanceSpecification.structure", "representation", s.representation),
		checkReferences("SubstanceSpecification.structure", "source", s.source, "DocumentReference"),
		s.backboneElement.validate("SubstanceSpecification.structure"),
		requireChildren("SubstanceSpecification.structure", s.hasChildren()),
	)
}

// ToBuilder returns a builder initialized with the elements of s.
func (s *SubstanceSpecificationStructure) ToBuilder() *SubstanceSpecificationStructureBuilder {
	b := &SubstanceSpecificationStructureBuilder{v: *s}
	b.v.cloneLists()
	return b
}

// SubstanceSpecificationStructureBuilder builds SubstanceSpecificationStructure values.
type SubstanceSpecificationStructureBuilder struct {
	v SubstanceSpecificationStructure
}

func NewSubstanceSpecificationStructureBuilder() *SubstanceSpecificationStructureBuilder {
	return &SubstanceSpecificationStructureBuilder{}
}

func (b *SubstanceSpecificationStructureBuilder) ID(id string) *SubstanceSpecificationStructureBuilder {
	b.v.id = id
	return b
}

func (b *SubstanceSpecificationStructureBuilder) Extension(v ...*Extension) *SubstanceSpecificationStructureBuilder {
	b.v.extension = append(b.v.extension, v...)
	return b
}

func (b *SubstanceSpecificationStructureBuilder) SetExtension(v []*Extension) *SubstanceSpecificationStructureBuilder {
	b.v.extension = slices.Clone(v)
	return b
}

func (b *SubstanceSpecificationStructureBuilder) ModifierExtension(v ...*Extension) *SubstanceSpecificationStructureBuilder {
	b.v.modifierExtension = append(b.v.modifierExtension, v...)
	return b
}

func (b *SubstanceSpecificationStructureBuilder) SetModifierExtension(v []*Extension) *SubstanceSpecificationStructureBuilder {
	b.v.modifierExtension = slices.Clone(v)
	return b
}

func (b *SubstanceSpecificationStructureBuilder) Stereochemistry(v *CodeableConcept) *SubstanceSpecificationStructureBuilder {
	b.v.stereochemistry = v
	return b
}

func (b *SubstanceSpecificationStructureBuilder) OpticalActivity(v *CodeableConcept) *SubstanceSpecificationStructureBuilder {
	b.v.opticalActivity = v
	return b
}

func (b *SubstanceSpecificationStructureBuilder) MolecularFormula(v *String) *SubstanceSpecificationStructureBuilder {
	b.v.molecularFormula = v
	return b
}

func (b *SubstanceSpecificationStructureBuilder) MolecularFormulaByMoiety(v *String) *SubstanceSpecificationStructureBuilder {
	b.v.molecularFormulaByMoiety = v
	return b
}

func (b *SubstanceSpecificationStructureBuilder) Isotope(v ...*SubstanceSpecificationStructureIsotope) *SubstanceSpecificationStructureBuilder {
	b.v.isotope = append(b.v.isotope, v...)
	return b
}

func (b *SubstanceSpecificationStructureBuilder) SetIsotope(v []*SubstanceSpecificationStructureIsotope) *SubstanceSpecificationStructureBuilder {
	b.v.isotope = slices.Clone(v)
	return b
}

func (b *SubstanceSpecificationStructureBuilder) MolecularWeight(v *SubstanceSpecificationStructureIsotopeMolecularWeight) *SubstanceSpecificationStructureBuilder {
	b.v.molecularWeight = v
	return b
}

func (b *SubstanceSpecificationStructureBuilder) Source(v ...*Reference) *SubstanceSpecificationStructureBuilder {
	b.v.source = append(b.v.source, v...)
	return b
}

func (b *SubstanceSpecificationStructureBuilder) SetSource(v []*Reference) *SubstanceSpecificationStructureBuilder {
	b.v.source = slices.Clone(v)
	return b
}

func (b *SubstanceSpecificationStructureBuilder) Representation(v ...*SubstanceSpecificationStructureRepresentation) *SubstanceSpecificationStructureBuilder {
	b.v.representation = append(b.v.representation, v...)
	return b
}

func (b *SubstanceSpecificationStructureBuilder) SetRepresentation(v []*SubstanceSpecificationStructureRepresentation) *SubstanceSpecificationStructureBuilder {
	b.v.representation = slices.Clone(v)
	return b
}

// Build validates the elements and returns a new SubstanceSpecificationStructure. The returned error
// is a *ValidationError.
func (b *SubstanceSpecificationStructureBuilder) Build() (*SubstanceSpecificationStructure, error) {
	v := b.v
	v.cloneLists()
	if err := v.validate(); err != nil {
		return nil, err
	}
	return &v, nil
}

type SubstanceSpecificationStructureIsotope struct {
	backboneElement
	identifier      *Identifier
	name            *CodeableConcept
	substitution    *CodeableConcept
	halfLife        *Quantity
	molecularWeight *SubstanceSpecificationStructureIsotopeMolecularWeight
}

func (i *SubstanceSpecificationStructureIsotope) TypeName() string {
	return "SubstanceSpecification.structure.isotope"
}

func (i *SubstanceSpecificationStructureIsotope) Identifier() *Identifier {
	return i.identifier
}

func (i *SubstanceSpecificationStructureIsotope) Name() *CodeableConcept {
	return i.name
}

func (i *SubstanceSpecificationStructureIsotope) Substitution() *CodeableConcept {
	return i.substitution
}

func (i *SubstanceSpecificationStructureIsotope) HalfLife() *Quantity {
	return i.halfLife
}

func (i *SubstanceSpecificationStructureIsotope) MolecularWeight() *SubstanceSpecificationStructureIsotopeMolecularWeight {
	return i.molecularWeight
}

func (i *SubstanceSpecificationStructureIsotope) Accept(name string, index int, v Visitor) {
	if i == nil {
		return
	}
	visit(name, index, i, v, func() {
		i.acceptBackbone(v)
		i.identifier.Accept("identifier", -1, v)
		i.name.Accept("name", -1, v)
		i.substitution.Accept("substitution", -1, v)
		i.halfLife.Accept("halfLife", -1, v)
		i.molecularWeight.Accept("molecularWeight", -1, v)
	})
}

func (i *SubstanceSpecificationStructureIsotope) hasChildren() bool {
	return i.hasExtensions() ||
		i.identifier != nil ||
		i.name != nil ||
		i.substitution != nil ||
		i.halfLife != nil ||
		i.molecularWeight != nil
}

func (i *SubstanceSpecificationStructureIsotope) cloneLists() {
	i.backboneElement.cloneLists()
}

func (i *SubstanceSpecificationStructureIsotope) validate() error {
	return check(
		i.backboneElement.validate("SubstanceSpecification.structure.isotope"),
		requireChildren("SubstanceSpecification.structure.isotope", i.hasChildren()),
	)
}

// ToBuilder returns a builder initialized with the elements of i.
func (i *SubstanceSpecificationStructureIsotope) ToBuilder() *SubstanceSpecificationStructureIsotopeBuilder {
	b := &SubstanceSpecificationStructureIsotopeBuilder{v: *i}
	b.v.cloneLists()
	return b
}

// SubstanceSpecificationStructureIsotopeBuilder builds SubstanceSpecificationStructureIsotope values.
type SubstanceSpecificationStructureIsotopeBuilder struct {
	v SubstanceSpecificationStructureIsotope
}

func NewSubstanceSpecificationStructureIsotopeBuilder() *SubstanceSpecificationStructureIsotopeBuilder {
	return &SubstanceSpecificationStructureIsotopeBuilder{}
}

func (b *SubstanceSpecificationStructureIsotopeBuilder) ID(id string) *SubstanceSpecificationStructureIsotopeBuilder {
	b.v.id = id
	return b
}

func (b *SubstanceSpecificationStructureIsotopeBuilder) Extension(v ...*Extension) *SubstanceSpecificationStructureIsotopeBuilder {
	b.v.extension = append(b.v.extension, v...)
	return b
}

func (b *SubstanceSpecificationStructureIsotopeBuilder) SetExtension(v []*Extension) *SubstanceSpecificationStructureIsotopeBuilder {
	b.v.extension = slices.Clone(v)
	return b
}

func (b *SubstanceSpecificationStructureIsotopeBuilder) ModifierExtension(v ...*Extension) *SubstanceSpecificationStructureIsotopeBuilder {
	b.v.modifierExtension = append(b.v.modifierExtension, v...)
	return b
}

func (b *SubstanceSpecificationStructureIsotopeBuilder) SetModifierExtension(v []*Extension) *SubstanceSpecificationStructureIsotopeBuilder {
	b.v.modifierExtension = slices.Clone(v)
	return b
}

func (b *SubstanceSpecificationStructureIsotopeBuilder) Identifier(v *Identifier) *SubstanceSpecificationStructureIsotopeBuilder {
	b.v.identifier = v
	return b
}

func (b *SubstanceSpecificationStructureIsotopeBuilder) Name(v *CodeableConcept) *SubstanceSpecificationStructureIsotopeBuilder {
	b.v.name = v
	return b
}

func (b *SubstanceSpecificationStructureIsotopeBuilder) Substitution(v *CodeableConcept) *SubstanceSpecificationStructureIsotopeBuilder {
	b.v.substitution = v
	return b
}

func (b *SubstanceSpecificationStructureIsotopeBuilder) HalfLife(v *Quantity) *SubstanceSpecificationStructureIsotopeBuilder {
	b.v.halfLife = v
	return b
}

func (b *SubstanceSpecificationStructureIsotopeBuilder) MolecularWeight(v *SubstanceSpecificationStructureIsotopeMolecularWeight) *SubstanceSpecificationStructureIsotopeBuilder {
	b.v.molecularWeight = v
	return b
}

// Build validates the elements and returns a new SubstanceSpecificationStructureIsotope. The returned error
// is a *ValidationError.
func (b *SubstanceSpecificationStructureIsotopeBuilder) Build() (*SubstanceSpecificationStructureIsotope, error) {
	v := b.v
	v.cloneLists()
	if err := v.validate(); err != nil {
		return nil, err
	}
	return &v, nil
}

// SubstanceSpecificationStructureIsotopeMolecularWeight is the molecular weight or weight range. It is also used
// for the molecular weight of the structure and of the substance itself.
type SubstanceSpecificationStructureIsotopeMolecularWeight struct {
	backboneElement
	method *CodeableConcept
	typ    *CodeableConcept
	amount *Quantity
}

func (w *SubstanceSpecificationStructureIsotopeMolecularWeight) TypeName() string {
	return "SubstanceSpecification.structure.isotope.molecularWeight"
}

func (w *SubstanceSpecificationStructureIsotopeMolecularWeight) Method() *CodeableConcept {
	return w.method
}

func (w *SubstanceSpecificationStructureIsotopeMolecularWeight) Type() *CodeableConcept {
	return w.typ
}

func (w *SubstanceSpecificationStructureIsotopeMolecularWeight) Amount() *Quantity {
	return w.amount
}

func (w *SubstanceSpecificationStructureIsotopeMolecularWeight) Accept(name string, index int, v Visitor) {
	if w == nil {
		return
	}
	visit(name, index, w, v, func() {
		w.acceptBackbone(v)
		w.method.Accept("method", -1, v)
		w.typ.Accept("type", -1, v)
		w.amount.Accept("amount", -1, v)
	})
}

func (w *SubstanceSpecificationStructureIsotopeMolecularWeight) hasChildren() bool {
	return w.hasExtensions() ||
		w.method != nil ||
		w.typ != nil ||
		w.amount != nil
}

func (w *SubstanceSpecificationStructureIsotopeMolecularWeight) cloneLists() {
	w.backboneElement.cloneLists()
}

func (w *SubstanceSpecificationStructureIsotopeMolecularWeight) validate() error {
	return check(
		w.backboneElement.validate("SubstanceSpecification.structure.isotope.molecularWeight"),
		requireChildren("SubstanceSpecification.structure.isotope.molecularWeight", w.hasChildren()),
	)
}

// ToBuilder returns a builder initialized with the elements of w.
func (w *SubstanceSpecificationStructureIsotopeMolecularWeight) ToBuilder() *SubstanceSpecificationStructureIsotopeMolecularWeightBuilder {
	b := &SubstanceSpecificationStructureIsotopeMolecularWeightBuilder{v: *w}
	b.v.cloneLists()
	return b
}

// SubstanceSpecificationStructureIsotopeMolecularWeightBuilder builds SubstanceSpecificationStructureIsotopeMolecularWeight values.
type SubstanceSpecificationStructureIsotopeMolecularWeightBuilder struct {
	v SubstanceSpecificationStructureIsotopeMolecularWeight
}

func NewSubstanceSpecificationStructureIsotopeMolecularWeightBuilder() *SubstanceSpecificationStructureIsotopeMolecularWeightBuilder {
	return &SubstanceSpecificationStructureIsotopeMolecularWeightBuilder{}
}

func (b *SubstanceSpecificationStructureIsotopeMolecularWeightBuilder) ID(id string) *SubstanceSpecificationStructureIsotopeMolecularWeightBuilder {
	b.v.id = id
	return b
}

func (b *SubstanceSpecificationStructureIsotopeMolecularWeightBuilder) Extension(v ...*Extension) *SubstanceSpecificationStructureIsotopeMolecularWeightBuilder {
	b.v.extension = append(b.v.extension, v...)
	return b
}

func (b *SubstanceSpecificationStructureIsotopeMolecularWeightBuilder) SetExtension(v []*Extension) *SubstanceSpecificationStructureIsotopeMolecularWeightBuilder {
	b.v.extension = slices.Clone(v)
	return b
}

func (b *SubstanceSpecificationStructureIsotopeMolecularWeightBuilder) ModifierExtension(v ...*Extension) *SubstanceSpecificationStructureIsotopeMolecularWeightBuilder {
	b.v.modifierExtension = append(b.v.modifierExtension, v...)
	return b
}

func (b *SubstanceSpecificationStructureIsotopeMolecularWeightBuilder) SetModifierExtension(v []*Extension) *SubstanceSpecificationStructureIsotopeMolecularWeightBuilder {
	b.v.modifierExtension = slices.Clone(v)
	return b
}

func (b *SubstanceSpecificationStructureIsotopeMolecularWeightBuilder) Method(v *CodeableConcept) *SubstanceSpecificationStructureIsotopeMolecularWeightBuilder {
	b.v.method = v
	return b
}

func (b *SubstanceSpecificationStructureIsotopeMolecularWeightBuilder) Type(v *CodeableConcept) *SubstanceSpecificationStructureIsotopeMolecularWeightBuilder {
	b.v.typ = v
	return b
}

func (b *SubstanceSpecificationStructureIsotopeMolecularWeightBuilder) Amount(v *Quantity) *SubstanceSpecificationStructureIsotopeMolecularWeightBuilder {
	b.v.amount = v
	return b
}

// Build validates the elements and returns a new SubstanceSpecificationStructureIsotopeMolecularWeight. The returned error
// is a *ValidationError.
func (b *SubstanceSpecificationStructureIsotopeMolecularWeightBuilder) Build() (*SubstanceSpecificationStructureIsotopeMolecularWeight, error) {
	v := b.v
	v.cloneLists()
	if err := v.validate(); err != nil {
		return nil, err
	}
	return &v, nil
}

type SubstanceSpecificationStructureRepresentation struct {
	backboneElement
	typ            *CodeableConcept
	representation *String
	attachment     *Attachment
}

func (r *SubstanceSpecificationStructureRepresentation) TypeName() string {
	return "SubstanceSpecification.structure.representation"
}

func (r *SubstanceSpecificationStructureRepresentation) Type() *CodeableConcept {
	return r.typ
}

func (r *SubstanceSpecificationStructureRepresentation) Representation() *String {
	return r.representation
}

func (r *SubstanceSpecificationStructureRepresentation) Attachment() *Attachment {
	return r.attachment
}

func (r *SubstanceSpecificationStructureRepresentation) Accept(name string, index int, v Visitor) {
	if r == nil {
		return
	}
	visit(name, index, r, v, func() {
		r.acceptBackbone(v)
		r.typ.Accept("type", -1, v)
		r.representation.Accept("representation", -1, v)
		r.attachment.Accept("attachment", -1, v)
	})
}

func (r *SubstanceSpecificationStructureRepresentation) hasChildren() bool {
	return r.hasExtensions() ||
		r.typ != nil ||
		r.representation != nil ||
		r.attachment != nil
}

func (r *SubstanceSpecificationStructureRepresentation) cloneLists() {
	r.backboneElement.cloneLists()
}

func (r *SubstanceSpecificationStructureRepresentation) validate() error {
	return check(
		r.backboneElement.validate("SubstanceSpecification.structure.representation"),
		requireChildren("SubstanceSpecification.structure.representation", r.hasChildren()),
	)
}

// ToBuilder returns a builder initialized with the elements of r.
func (r *SubstanceSpecificationStructureRepresentation) ToBuilder() *SubstanceSpecificationStructureRepresentationBuilder {
	b := &SubstanceSpecificationStructureRepresentationBuilder{v: *r}
	b.v.cloneLists()
	return b
}

// SubstanceSpecificationStructureRepresentationBuilder builds SubstanceSpecificationStructureRepresentation values.
type SubstanceSpecificationStructureRepresentationBuilder struct {
	v SubstanceSpecificationStructureRepresentation
}

func NewSubstanceSpecificationStructureRepresentationBuilder() *SubstanceSpecificationStructureRepresentationBuilder {
	return &SubstanceSpecificationStructureRepresentationBuilder{}
}

func (b *SubstanceSpecificationStructureRepresentationBuilder) ID(id string) *SubstanceSpecificationStructureRepresentationBuilder {
	b.v.id = id
	return b
}

func (b *SubstanceSpecificationStructureRepresentationBuilder) Extension(v ...*Extension) *SubstanceSpecificationStructureRepresentationBuilder {
	b.v.extension = append(b.v.extension, v...)
	return b
}

func (b *SubstanceSpecificationStructureRepresentationBuilder) SetExtension(v []*Extension) *SubstanceSpecificationStructureRepresentationBuilder {
	b.v.extension = slices.Clone(v)
	return b
}

func (b *SubstanceSpecificationStructureRepresentationBuilder) ModifierExtension(v ...*Extension) *SubstanceSpecificationStructureRepresentationBuilder {
	b.v.modifierExtension = append(b.v.modifierExtension, v...)
	return b
}

func (b *SubstanceSpecificationStructureRepresentationBuilder) SetModifierExtension(v []*Extension) *SubstanceSpecificationStructureRepresentationBuilder {
	b.v.modifierExtension = slices.Clone(v)
	return b
}

func (b *SubstanceSpecificationStructureRepresentationBuilder) Type(v *CodeableConcept) *SubstanceSpecificationStructureRepresentationBuilder {
	b.v.typ = v
	return b
}

func (b *SubstanceSpecificationStructureRepresentationBuilder) Representation(v *String) *SubstanceSpecificationStructureRepresentationBuilder {
	b.v.representation = v
	return b
}

func (b *SubstanceSpecificationStructureRepresentationBuilder) Attachment(v *Attachment) *SubstanceSpecificationStructureRepresentationBuilder {
	b.v.attachment = v
	return b
}

// Build validates the elements and returns a new SubstanceSpecificationStructureRepresentation. The returned error
// is a *ValidationError.
func (b *SubstanceSpecificationStructureRepresentationBuilder) Build() (*SubstanceSpecificationStructureRepresentation, error) {
	v := b.v
	v.cloneLists()
	if err := v.validate(); err != nil {
		return nil, err
	}
	return &v, nil
}

// SubstanceSpecificationCode is a code or identifier of the substance.
type SubstanceSpecificationCode struct {
	backboneElement
	code       *CodeableConcept
	status     *CodeableConcept
	statusDate *DateTime
	comment    *String
	source     []*Reference
}

func (c *SubstanceSpecificationCode) TypeName() string {
	return "SubstanceSpecification.code"
}

func (c *SubstanceSpecificationCode) Code() *CodeableConcept {
	return c.code
}

func (c *SubstanceSpecificationCode) Status() *CodeableConcept {
	return c.status
}

func (c *SubstanceSpecificationCode) StatusDate() *DateTime {
	return c.statusDate
}

func (c *SubstanceSpecificationCode) Comment() *String {
	return c.comment
}

func (c *SubstanceSpecificationCode) Source() []*Reference {
	return slices.Clone(c.source)
}

func (c *SubstanceSpecificationCode) Accept(name string, index int, v Visitor) {
	if c == nil {
		return
	}
	visit(name, index, c, v, func() {
		c.acceptBackbone(v)
		c.code.Accept("code", -1, v)
		c.status.Accept("status", -1, v)
		c.statusDate.Accept("statusDate", -1, v)
		c.comment.Accept("comment", -1, v)
		acceptList("source", c.source, v)
	})
}

func (c *SubstanceSpecificationCode) hasChildren() bool {
	return c.hasExtensions() ||
		c.code != nil ||
		c.status != nil ||
		c.statusDate != nil ||
		c.comment != nil ||
		len(c.source) > 0
}

func (c *SubstanceSpecificationCode) cloneLists() {
	c.backboneElement.cloneLists()
	c.source = slices.Clone(c.source)
}

func (c *SubstanceSpecificationCode) validate() error {
	return check(
		checkList("SubstanceSpecification.code", "source", c.source),
		checkReferences("SubstanceSpecification.code", "source", c.source, "DocumentReference"),
		c.backboneElement.validate("SubstanceSpecification.code"),
		requireChildren("SubstanceSpecification.code", c.hasChildren()),
	)
}

// ToBuilder returns a builder initialized with the elements of c.
func (c *SubstanceSpecificationCode) ToBuilder() *SubstanceSpecificationCodeBuilder {
	b := &SubstanceSpecificationCodeBuilder{v: *c}
	b.v.cloneLists()
	return b
}

// SubstanceSpecificationCodeBuilder builds SubstanceSpecificationCode values.
type SubstanceSpecificationCodeBuilder struct {
	v SubstanceSpecificationCode
}

func NewSubstanceSpecificationCodeBuilder() *SubstanceSpecificationCodeBuilder {
	return &SubstanceSpecificationCodeBuilder{}
}

func (b *SubstanceSpecificationCodeBuilder) ID(id string) *SubstanceSpecificationCodeBuilder {
	b.v.id = id
	return b
}

func (b *SubstanceSpecificationCodeBuilder) Extension(v ...*Extension) *SubstanceSpecificationCodeBuilder {
	b.v.extension = append(b.v.extension, v...)
	return b
}

func (b *SubstanceSpecificationCodeBuilder) SetExtension(v []*Extension) *SubstanceSpecificationCodeBuilder {
	b.v.extension = slices.Clone(v)
	return b
}

func (b *SubstanceSpecificationCodeBuilder) ModifierExtension(v ...*Extension) *SubstanceSpecificationCodeBuilder {
	b.v.modifierExtension = append(b.v.modifierExtension, v...)
	return b
}

func (b *SubstanceSpecificationCodeBuilder) SetModifierExtension(v []*Extension) *SubstanceSpecificationCodeBuilder {
	b.v.modifierExtension = slices.Clone(v)
	return b
}

func (b *SubstanceSpecificationCodeBuilder) Code(v *CodeableConcept) *SubstanceSpecificationCodeBuilder {
	b.v.code = v
	return b
}

func (b *SubstanceSpecificationCodeBuilder) Status(v *CodeableConcept) *SubstanceSpecificationCodeBuilder {
	b.v.status = v
	return b
}

func (b *SubstanceSpecificationCodeBuilder) StatusDate(v *DateTime) *SubstanceSpecificationCodeBuilder {
	b.v.statusDate = v
	return b
}

func (b *SubstanceSpecificationCodeBuilder) Comment(v *String) *SubstanceSpecificationCodeBuilder {
	b.v.comment = v
	return b
}

func (b *SubstanceSpecificationCodeBuilder) Source(v ...*Reference) *SubstanceSpecificationCodeBuilder {
	b.v.source = append(b.v.source, v...)
	return b
}

func (b *SubstanceSpecificationCodeBuilder) SetSource(v []*Reference) *SubstanceSpecificationCodeBuilder {
	b.v.source = slices.Clone(v)
	return b
}

// Build validates the elements and returns a new SubstanceSpecificationCode. The returned error
// is a *ValidationError.
func (b *SubstanceSpecificationCodeBuilder) Build() (*SubstanceSpecificationCode, error) {
	v := b.v
	v.cloneLists()
	if err := v.validate(); err != nil {
		return nil, err
	}
	return &v, nil
}

// SubstanceSpecificationName is a name or synonym of the substance.
type SubstanceSpecificationName struct {
	backboneElement
	name         *String
	typ          *CodeableConcept
	status       *CodeableConcept
	preferred    *Boolean
	language     []*CodeableConcept
	domain       []*CodeableConcept
	jurisdiction []*CodeableConcept
	synonym      []*SubstanceSpecificationName
	translation  []*SubstanceSpecificationName
	official     []*SubstanceSpecificationNameOfficial
	source       []*Reference
}

func (n *SubstanceSpecificationName) TypeName() string {
	return "SubstanceSpecification.name"
}

func (n *SubstanceSpecificationName) Name() *String {
	return n.name
}

func (n *SubstanceSpecificationName) Type() *CodeableConcept {
	return n.typ
}

func (n *SubstanceSpecificationName) Status() *CodeableConcept {
	return n.status
}

func (n *SubstanceSpecificationName) Preferred() *Boolean {
	return n.preferred
}

func (n *SubstanceSpecificationName) Language() []*CodeableConcept {
	return slices.Clone(n.language)
}

func (n *SubstanceSpecificationName) Domain() []*CodeableConcept {
	return slices.Clone(n.domain)
}

func (n *SubstanceSpecificationName) Jurisdiction() []*CodeableConcept {
	return slices.Clone(n.jurisdiction)
}

func (n *SubstanceSpecificationName) Synonym() []*SubstanceSpecificationName {
	return slices.Clone(n.synonym)
}

func (n *SubstanceSpecificationName) Translation() []*SubstanceSpecificationName {
	return slices.Clone(n.translation)
}

func (n *SubstanceSpecificationName) Official() []*SubstanceSpecificationNameOfficial {
	return slices.Clone(n.official)
}

func (n *SubstanceSpecificationName) Source() []*Reference {
	return slices.Clone(n.source)
}

func (n *SubstanceSpecificationName) Accept(name string, index int, v Visitor) {
	if n == nil {
		return
	}
	visit(name, index, n, v, func() {
		n.acceptBackbone(v)
		n.name.Accept("name", -1, v)
		n.typ.Accept("type", -1, v)
		n.status.Accept("status", -1, v)
		n.preferred.Accept("preferred", -1, v)
		acceptList("language", n.language, v)
		acceptList("domain", n.domain, v)
		acceptList("jurisdiction", n.jurisdiction, v)
		acceptList("synonym", n.synonym, v)
		acceptList("translation", n.translation, v)
		acceptList("official", n.official, v)
		acceptList("source", n.source, v)
	})
}

func (n *SubstanceSpecificationName) hasChildren() bool {
	return n.hasExtensions() ||
		n.name != nil ||
		n.typ != nil ||
		n.status != nil ||
		n.preferred != nil ||
		len(n.language) > 0 ||
		len(n.domain) > 0 ||
		len(n.jurisdiction) > 0 ||
		len(n.synonym) > 0 ||
		len(n.translation) > 0 ||
		len(n.official) > 0 ||
		len(n.source) > 0
}

func (n *SubstanceSpecificationName) cloneLists() {
	n.backboneElement.cloneLists()
	n.language = slices.Clone(n.language)
	n.domain = slices.Clone(n.domain)
	n.jurisdiction = slices.Clone(n.jurisdiction)
	n.synonym = slices.Clone(n.synonym)
	n.translation = slices.Clone(n.translation)
	n.official = slices.Clone(n.official)
	n.source = slices.Clone(n.source)
}

func (n *SubstanceSpecificationName) validate() error {
	return check(
		requireElement("SubstanceSpecification.name", "name", n.name),
		checkList("SubstanceSpecification.name", "language", n.language),
		checkList("SubstanceSpecification.name", "domain", n.domain),
		checkList("SubstanceSpecification.name", "jurisdiction", n.jurisdiction),
		checkList("SubstanceSpecification.name", "synonym", n.synonym),
		checkList("SubstanceSpecification.name", "translation", n.translation),
		checkList("SubstanceSpecification.name", "official", n.official),
		checkList("SubstanceSpecification.name", "source", n.source),
		checkReferences("SubstanceSpecification.name", "source", n.source, "DocumentReference"),
		n.backboneElement.validate("SubstanceSpecification.name"),
		requireChildren("SubstanceSpecification.name", n.hasChildren()),
	)
}

// ToBuilder returns a builder initialized with the elements of n.
func (n *SubstanceSpecificationName) ToBuilder() *SubstanceSpecificationNameBuilder {
	b := &SubstanceSpecificationNameBuilder{v: *n}
	b.v.cloneLists()
	return b
}

// SubstanceSpecificationNameBuilder builds SubstanceSpecificationName values.
type SubstanceSpecificationNameBuilder struct {
	v SubstanceSpecificationName
}

// NewSubstanceSpecificationNameBuilder returns a builder for SubstanceSpecificationName with the required elements set.
func NewSubstanceSpecificationNameBuilder(name *String) *SubstanceSpecificationNameBuilder {
	b := &SubstanceSpecificationNameBuilder{}
	b.v.name = name
	return b
}

func (b *SubstanceSpecificationNameBuilder) ID(id string) *SubstanceSpecificationNameBuilder {
	b.v.id = id
	return b
}

func (b *SubstanceSpecificationNameBuilder) Extension(v ...*Extension) *SubstanceSpecificationNameBuilder {
	b.v.extension = append(b.v.extension, v...)
	return b
}

func (b *SubstanceSpecificationNameBuilder) SetExtension(v []*Extension) *SubstanceSpecificationNameBuilder {
	b.v.extension = slices.Clone(v)
	return b
}

func (b *SubstanceSpecificationNameBuilder) ModifierExtension(v ...*Extension) *SubstanceSpecificationNameBuilder {
	b.v.modifierExtension = append(b.v.modifierExtension, v...)
	return b
}

func (b *SubstanceSpecificationNameBuilder) SetModifierExtension(v []*Extension) *SubstanceSpecificationNameBuilder {
	b.v.modifierExtension = slices.Clone(v)
	return b
}

func (b *SubstanceSpecificationNameBuilder) Name(v *String) *SubstanceSpecificationNameBuilder {
	b.v.name = v
	return b
}

func (b *SubstanceSpecificationNameBuilder) Type(v *CodeableConcept) *SubstanceSpecificationNameBuilder {
	b.v.typ = v
	return b
}

func (b *SubstanceSpecificationNameBuilder) Status(v *CodeableConcept) *SubstanceSpecificationNameBuilder {
	b.v.status = v
	return b
}

func (b *SubstanceSpecificationNameBuilder) Preferred(v *Boolean) *SubstanceSpecificationNameBuilder {
	b.v.preferred = v
	return b
}

func (b *SubstanceSpecificationNameBuilder) Language(v ...*CodeableConcept) *SubstanceSpecificationNameBuilder {
	b.v.language = append(b.v.language, v...)
	return b
}

func (b *SubstanceSpecificationNameBuilder) SetLanguage(v []*CodeableConcept) *SubstanceSpecificationNameBuilder {
	b.v.language = slices.Clone(v)
	return b
}

func (b *SubstanceSpecificationNameBuilder) Domain(v ...*CodeableConcept) *SubstanceSpecificationNameBuilder {
	b.v.domain = append(b.v.domain, v...)
	return b
}

func (b *SubstanceSpecificationNameBuilder) SetDomain(v []*CodeableConcept) *SubstanceSpecificationNameBuilder {
	b.v.domain = slices.Clone(v)
	return b
}

func (b *SubstanceSpecificationNameBuilder) Jurisdiction(v ...*CodeableConcept) *SubstanceSpecificationNameBuilder {
	b.v.jurisdiction = append(b.v.jurisdiction, v...)
	return b
}

func (b *SubstanceSpecificationNameBuilder) SetJurisdiction(v []*CodeableConcept) *SubstanceSpecificationNameBuilder {
	b.v.jurisdiction = slices.Clone(v)
	return b
}

func (b *SubstanceSpecificationNameBuilder) Synonym(v ...*SubstanceSpecificationName) *SubstanceSpecificationNameBuilder {
	b.v.synonym = append(b.v.synonym, v...)
	return b
}

func (b *SubstanceSpecificationNameBuilder) SetSynonym(v []*SubstanceSpecificationName) *SubstanceSpecificationNameBuilder {
	b.v.synonym = slices.Clone(v)
	return b
}

func (b *SubstanceSpecificationNameBuilder) Translation(v ...*SubstanceSpecificationName) *SubstanceSpecificationNameBuilder {
	b.v.translation = append(b.v.translation, v...)
	return b
}

func (b *SubstanceSpecificationNameBuilder) SetTranslation(v []*SubstanceSpecificationName) *SubstanceSpecificationNameBuilder {
	b.v.translation = slices.Clone(v)
	return b
}

func (b *SubstanceSpecificationNameBuilder) Official(v ...*SubstanceSpecificationNameOfficial) *SubstanceSpecificationNameBuilder {
	b.v.official = append(b.v.official, v...)
	return b
}

func (b *SubstanceSpecificationNameBuilder) SetOfficial(v []*SubstanceSpecificationNameOfficial) *SubstanceSpecificationNameBuilder {
	b.v.official = slices.Clone(v)
	return b
}

func (b *SubstanceSpecificationNameBuilder) Source(v ...*Reference) *SubstanceSpecificationNameBuilder {
	b.v.source = append(b.v.source, v...)
	return b
}

func (b *SubstanceSpecificationNameBuilder) SetSource(v []*Reference) *SubstanceSpecificationNameBuilder {
	b.v.source = slices.Clone(v)
	return b
}

// Build validates the elements and returns a new SubstanceSpecificationName. The returned error
// is a *ValidationError.
func (b *SubstanceSpecificationNameBuilder) Build() (*SubstanceSpecificationName, error) {
	v := b.v
	v.cloneLists()
	if err := v.validate(); err != nil {
		return nil, err
	}
	return &v, nil
}

type SubstanceSpecificationNameOfficial struct {
	backboneElement
	authority *CodeableConcept
	status    *CodeableConcept
	date      *DateTime
}

func (o *SubstanceSpecificationNameOfficial) TypeName() string {
	return "SubstanceSpecification.name.official"
}

func (o *SubstanceSpecificationNameOfficial) Authority() *CodeableConcept {
	return o.authority
}

func (o *SubstanceSpecificationNameOfficial) Status() *CodeableConcept {
	return o.status
}

func (o *SubstanceSpecificationNameOfficial) Date() *DateTime {
	return o.date
}

func (o *SubstanceSpecificationNameOfficial) Accept(name string, index int, v Visitor) {
	if o == nil {
		return
	}
	visit(name, index, o, v, func() {
		o.acceptBackbone(v)
		o.authority.Accept("authority", -1, v)
		o.status.Accept("status", -1, v)
		o.date.Accept("date", -1, v)
	})
}

func (o *SubstanceSpecificationNameOfficial) hasChildren() bool {
	return o.hasExtensions() ||
		o.authority != nil ||
		o.status != nil ||
		o.date != nil
}

func (o *SubstanceSpecificationNameOfficial) cloneLists() {
	o.backboneElement.cloneLists()
}

func (o *SubstanceSpecificationNameOfficial) validate() error {
	return check(
		o.backboneElement.validate("SubstanceSpecification.name.official"),
		requireChildren("SubstanceSpecification.name.official", o.hasChildren()),
	)
}

// ToBuilder returns a builder initialized with the elements of o.
func (o *SubstanceSpecificationNameOfficial) ToBuilder() *SubstanceSpecificationNameOfficialBuilder {
	b := &SubstanceSpecificationNameOfficialBuilder{v: *o}
	b.v.cloneLists()
	return b
}

// SubstanceSpecificationNameOfficialBuilder builds SubstanceSpecificationNameOfficial values.
type SubstanceSpecificationNameOfficialBuilder struct {
	v SubstanceSpecificationNameOfficial
}

func NewSubstanceSpecificationNameOfficialBuilder() *SubstanceSpecificationNameOfficialBuilder {
	return &SubstanceSpecificationNameOfficialBuilder{}
}

func (b *SubstanceSpecificationNameOfficialBuilder) ID(id string) *SubstanceSpecificationNameOfficialBuilder {
	b.v.id = id
	return b
}

func (b *SubstanceSpecificationNameOfficialBuilder) Extension(v ...*Extension) *SubstanceSpecificationNameOfficialBuilder {
	b.v.extension = append(b.v.extension, v...)
	return b
}

func (b *SubstanceSpecificationNameOfficialBuilder) SetExtension(v []*Extension) *SubstanceSpecificationNameOfficialBuilder {
	b.v.extension = slices.Clone(v)
	return b
}

func (b *SubstanceSpecificationNameOfficialBuilder) ModifierExtension(v ...*Extension) *SubstanceSpecificationNameOfficialBuilder {
	b.v.modifierExtension = append(b.v.modifierExtension, v...)
	return b
}

func (b *SubstanceSpecificationNameOfficialBuilder) SetModifierExtension(v []*Extension) *SubstanceSpecificationNameOfficialBuilder {
	b.v.modifierExtension = slices.Clone(v)
	return b
}

func (b *SubstanceSpecificationNameOfficialBuilder) Authority(v *CodeableConcept) *SubstanceSpecificationNameOfficialBuilder {
	b.v.authority = v
	return b
}

func (b *SubstanceSpecificationNameOfficialBuilder) Status(v *CodeableConcept) *SubstanceSpecificationNameOfficialBuilder {
	b.v.status = v
	return b
}

func (b *SubstanceSpecificationNameOfficialBuilder) Date(v *DateTime) *SubstanceSpecificationNameOfficialBuilder {
	b.v.date = v
	return b
}

// Build validates the elements and returns a new SubstanceSpecificationNameOfficial. The returned error
// is a *ValidationError.
func (b *SubstanceSpecificationNameOfficialBuilder) Build() (*SubstanceSpecificationNameOfficial, error) {
	v := b.v
	v.cloneLists()
	if err := v.validate(); err != nil {
		return nil, err
	}
	return &v, nil
}

// SubstanceSpecificationRelationship is a link between this substance and another, with details of the relationship.
type SubstanceSpecificationRelationship struct {
	backboneElement
	substance           Element
	relationship        *CodeableConcept
	isDefining          *Boolean
	amount              Element
	amountRatioLowLimit *Ratio
	amountType          *CodeableConcept
	source              []*Reference
}

func (r *SubstanceSpecificationRelationship) TypeName() string {
	return "SubstanceSpecification.relationship"
}

func (r *SubstanceSpecificationRelationship) Substance() Element {
	return r.substance
}

func (r *SubstanceSpecificationRelationship) Relationship() *CodeableConcept {
	return r.relationship
}

func (r *SubstanceSpecificationRelationship) IsDefining() *Boolean {
	return r.isDefining
}

func (r *SubstanceSpecificationRelationship) Amount() Element {
	return r.amount
}

func (r *SubstanceSpecificationRelationship) AmountRatioLowLimit() *Ratio {
	return r.amountRatioLowLimit
}

func (r *SubstanceSpecificationRelationship) AmountType() *CodeableConcept {
	return r.amountType
}

func (r *SubstanceSpecificationRelationship) Source() []*Reference {
	return slices.Clone(r.source)
}

func (r *SubstanceSpecificationRelationship) Accept(name string, index int, v Visitor) {
	if r == nil {
		return
	}
	visit(name, index, r, v, func() {
		r.acceptBackbone(v)
		acceptChoice("substance", r.substance, v)
		r.relationship.Accept("relationship", -1, v)
		r.isDefining.Accept("isDefining", -1, v)
		acceptChoice("amount", r.amount, v)
		r.amountRatioLowLimit.Accept("amountRatioLowLimit", -1, v)
		r.amountType.Accept("amountType", -1, v)
		acceptList("source", r.source, v)
	})
}

func (r *SubstanceSpecificationRelationship) hasChildren() bool {
	return r.hasExtensions() ||
		r.substance != nil ||
		r.relationship != nil ||
		r.isDefining != nil ||
		r.amount != nil ||
		r.amountRatioLowLimit != nil ||
		r.amountType != nil ||
		len(r.source) > 0
}

func (r *SubstanceSpecificationRelationship) cloneLists() {
	r.backboneElement.cloneLists()
	r.source = slices.Clone(r.source)
}

func (r *SubstanceSpecificationRelationship) validate() error {
	return check(
		checkList("SubstanceSpecification.relationship", "source", r.source),
		checkChoice("SubstanceSpecification.relationship", "substance", r.substance, "Reference", "CodeableConcept"),
		checkChoice("SubstanceSpecification.relationship", "amount", r.amount, "Quantity", "Range", "Ratio", "string"),
		checkReference("SubstanceSpecification.relationship", "substance", choiceReference(r.substance), "SubstanceSpecification"),
		checkReferences("SubstanceSpecification.relationship", "source", r.source, "DocumentReference"),
		r.backboneElement.validate("SubstanceSpecification.relationship"),
		requireChildren("SubstanceSpecification.relationship", r.hasChildren()),
	)
}

// ToBuilder returns a builder initialized with the elements of r.
func (r *SubstanceSpecificationRelationship) ToBuilder() *SubstanceSpecificationRelationshipBuilder {
	b := &SubstanceSpecificationRelationshipBuilder{v: *r}
	b.v.cloneLists()
	return b
}

// SubstanceSpecificationRelationshipBuilder builds SubstanceSpecificationRelationship values.
type SubstanceSpecificationRelationshipBuilder struct {
	v SubstanceSpecificationRelationship
}

func NewSubstanceSpecificationRelationshipBuilder() *SubstanceSpecificationRelationshipBuilder {
	return &SubstanceSpecificationRelationshipBuilder{}
}

func (b *SubstanceSpecificationRelationshipBuilder) ID(id string) *SubstanceSpecificationRelationshipBuilder {
	b.v.id = id
	return b
}

func (b *SubstanceSpecificationRelationshipBuilder) Extension(v ...*Extension) *SubstanceSpecificationRelationshipBuilder {
	b.v.extension = append(b.v.extension, v...)
	return b
}

func (b *SubstanceSpecificationRelationshipBuilder) SetExtension(v []*Extension) *SubstanceSpecificationRelationshipBuilder {
	b.v.extension = slices.Clone(v)
	return b
}

func (b *SubstanceSpecificationRelationshipBuilder) ModifierExtension(v ...*Extension) *SubstanceSpecificationRelationshipBuilder {
	b.v.modifierExtension = append(b.v.modifierExtension, v...)
	return b
}

func (b *SubstanceSpecificationRelationshipBuilder) SetModifierExtension(v []*Extension) *SubstanceSpecificationRelationshipBuilder {
	b.v.modifierExtension = slices.Clone(v)
	return b
}

// Substance sets substance[x]. The value has to be one of Reference, CodeableConcept.
func (b *SubstanceSpecificationRelationshipBuilder) Substance(v Element) *SubstanceSpecificationRelationshipBuilder {
	b.v.substance = choice(v)
	return b
}

func (b *SubstanceSpecificationRelationshipBuilder) Relationship(v *CodeableConcept) *SubstanceSpecificationRelationshipBuilder {
	b.v.relationship = v
	return b
}

func (b *SubstanceSpecificationRelationshipBuilder) IsDefining(v *Boolean) *SubstanceSpecificationRelationshipBuilder {
	b.v.isDefining = v
	return b
}

// Amount sets amount[x]. The value has to be one of Quantity, Range, Ratio, string.
func (b *SubstanceSpecificationRelationshipBuilder) Amount(v Element) *SubstanceSpecificationRelationshipBuilder {
	b.v.amount = choice(v)
	return b
}

func (b *SubstanceSpecificationRelationshipBuilder) AmountRatioLowLimit(v *Ratio) *SubstanceSpecificationRelationshipBuilder {
	b.v.amountRatioLowLimit = v
	return b
}

func (b *SubstanceSpecificationRelationshipBuilder) AmountType(v *CodeableConcept) *SubstanceSpecificationRelationshipBuilder {
	b.v.amountType = v
	return b
}

func (b *SubstanceSpecificationRelationshipBuilder) Source(v ...*Reference) *SubstanceSpecificationRelationshipBuilder {
	b.v.source = append(b.v.source, v...)
	return b
}

func (b *SubstanceSpecificationRelationshipBuilder) SetSource(v []*Reference) *SubstanceSpecificationRelationshipBuilder {
	b.v.source = slices.Clone(v)
	return b
}

// Build validates the elements and returns a new SubstanceSpecificationRelationship. The returned error
// is a *ValidationError.
func (b *SubstanceSpecificationRelationshipBuilder) Build() (*SubstanceSpecificationRelationship, error) {
	v := b.v
	v.cloneLists()
	if err := v.validate(); err != nil {
		return nil, err
	}
	return &v, nil
}
