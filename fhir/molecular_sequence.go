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

// MolecularSequence is the raw data describing a biological sequence.
type MolecularSequence struct {
	domainResource
	identifier       []*Identifier
	typ              *Code
	coordinateSystem *Integer
	patient          *Reference
	specimen         *Reference
	device           *Reference
	performer        *Reference
	quantity         *Quantity
	referenceSeq     *MolecularSequenceReferenceSeq
	variant          []*MolecularSequenceVariant
	observedSeq      *String
	quality          []*MolecularSequenceQuality
	readCoverage     *Integer
	repository       []*MolecularSequenceRepository
	pointer          []*Reference
	structureVariant []*MolecularSequenceStructureVariant
}

func (s *MolecularSequence) ResourceType() string {
	return "MolecularSequence"
}

func (s *MolecularSequence) TypeName() string {
	return "MolecularSequence"
}

// Constraints returns the invariants of MolecularSequence including the ones
// inherited from DomainResource.
func (s *MolecularSequence) Constraints() []Constraint {
	return slices.Concat(molecularSequenceConstraints, domainResourceConstraints)
}

// MarshalJSON returns the FHIR JSON representation of s.
func (s *MolecularSequence) MarshalJSON() ([]byte, error) {
	return Marshal(s)
}

func (s *MolecularSequence) Identifier() []*Identifier {
	return slices.Clone(s.identifier)
}

func (s *MolecularSequence) Type() *Code {
	return s.typ
}

func (s *MolecularSequence) CoordinateSystem() *Integer {
	return s.coordinateSystem
}

func (s *MolecularSequence) Patient() *Reference {
	return s.patient
}

func (s *MolecularSequence) Specimen() *Reference {
	return s.specimen
}

func (s *MolecularSequence) Device() *Reference {
	return s.device
}

func (s *MolecularSequence) Performer() *Reference {
	return s.performer
}

func (s *MolecularSequence) Quantity() *Quantity {
	return s.quantity
}

func (s *MolecularSequence) ReferenceSeq() *MolecularSequenceReferenceSeq {
	return s.referenceSeq
}

func (s *MolecularSequence) Variant() []*MolecularSequenceVariant {
	return slices.Clone(s.variant)
}

func (s *MolecularSequence) ObservedSeq() *String {
	return s.observedSeq
}

func (s *MolecularSequence) Quality() []*MolecularSequenceQuality {
	return slices.Clone(s.quality)
}

func (s *MolecularSequence) ReadCoverage() *Integer {
	return s.readCoverage
}

func (s *MolecularSequence) Repository() []*MolecularSequenceRepository {
	return slices.Clone(s.repository)
}

func (s *MolecularSequence) Pointer() []*Reference {
	return slices.Clone(s.pointer)
}

func (s *MolecularSequence) StructureVariant() []*MolecularSequenceStructureVariant {
	return slices.Clone(s.structureVariant)
}

func (s *MolecularSequence) Accept(name string, index int, v Visitor) {
	if s == nil {
		return
	}
	visit(name, index, s, v, func() {
		s.acceptDomainResource(v)
		acceptList("identifier", s.identifier, v)
		s.typ.Accept("type", -1, v)
		s.coordinateSystem.Accept("coordinateSystem", -1, v)
		s.patient.Accept("patient", -1, v)
		s.specimen.Accept("specimen", -1, v)
		s.device.Accept("device", -1, v)
		s.performer.Accept("performer", -1, v)
		s.quantity.Accept("quantity", -1, v)
		s.referenceSeq.Accept("referenceSeq", -1, v)
		acceptList("variant", s.variant, v)
		s.observedSeq.Accept("observedSeq", -1, v)
		acceptList("quality", s.quality, v)
		s.readCoverage.Accept("readCoverage", -1, v)
		acceptList("repository", s.repository, v)
		acceptList("pointer", s.pointer, v)
		acceptList("structureVariant", s.structureVariant, v)
	})
}

func (s *MolecularSequence) cloneLists() {
	s.domainResource.cloneLists()
	s.identifier = slices.Clone(s.identifier)
	s.variant = slices.Clone(s.variant)
	s.quality = slices.Clone(s.quality)
	s.repository = slices.Clone(s.repository)
	s.pointer = slices.Clone(s.pointer)
	s.structureVariant = slices.Clone(s.structureVariant)
}

func (s *MolecularSequence) validate() error {
	return check(
		requireElement("MolecularSequence", "coordinateSystem", s.coordinateSystem),
		checkList("MolecularSequence", "identifier", s.identifier),
		checkList("MolecularSequence", "variant", s.variant),
		checkList("MolecularSequence", "quality", s.quality),
		checkList("MolecularSequence", "repository", s.repository),
		checkList("MolecularSequence", "pointer", s.pointer),
		checkList("MolecularSequence", "structureVariant", s.structureVariant),
		checkReference("MolecularSequence", "patient", s.patient, "Patient"),
		checkReference("MolecularSequence", "specimen", s.specimen, "Specimen"),
		checkReference("MolecularSequence", "device", s.device, "Device"),
		checkReference("MolecularSequence", "performer", s.performer, "Organization"),
		checkReferences("MolecularSequence", "pointer", s.pointer, "MolecularSequence"),
		checkCode("MolecularSequence", "type", s.typ, sequenceTypeCodes),
		s.domainResource.validate("MolecularSequence"),
	)
}

// ToBuilder returns a builder initialized with the elements of s.
func (s *MolecularSequence) ToBuilder() *MolecularSequenceBuilder {
	b := &MolecularSequenceBuilder{v: *s}
	b.v.cloneLists()
	return b
}

// MolecularSequenceBuilder builds MolecularSequence values.
type MolecularSequenceBuilder struct {
	v MolecularSequence
}

// NewMolecularSequenceBuilder returns a builder for MolecularSequence with the required elements set.
func NewMolecularSequenceBuilder(coordinateSystem *Integer) *MolecularSequenceBuilder {
	b := &MolecularSequenceBuilder{}
	b.v.coordinateSystem = coordinateSystem
	return b
}

func (b *MolecularSequenceBuilder) ID(id string) *MolecularSequenceBuilder {
	b.v.id = id
	return b
}

func (b *MolecularSequenceBuilder) Meta(v *Meta) *MolecularSequenceBuilder {
	b.v.meta = v
	return b
}

func (b *MolecularSequenceBuilder) ImplicitRules(v *Uri) *MolecularSequenceBuilder {
	b.v.implicitRules = v
	return b
}

func (b *MolecularSequenceBuilder) Language(v *Code) *MolecularSequenceBuilder {
	b.v.language = v
	return b
}

func (b *MolecularSequenceBuilder) Text(v *Narrative) *MolecularSequenceBuilder {
	b.v.text = v
	return b
}

func (b *MolecularSequenceBuilder) Contained(v ...Resource) *MolecularSequenceBuilder {
	b.v.contained = append(b.v.contained, v...)
	return b
}

func (b *MolecularSequenceBuilder) SetContained(v []Resource) *MolecularSequenceBuilder {
	b.v.contained = slices.Clone(v)
	return b
}

func (b *MolecularSequenceBuilder) Extension(v ...*Extension) *MolecularSequenceBuilder {
	b.v.extension = append(b.v.extension, v...)
	return b
}

func (b *MolecularSequenceBuilder) SetExtension(v []*Extension) *MolecularSequenceBuilder {
	b.v.extension = slices.Clone(v)
	return b
}

func (b *MolecularSequenceBuilder) ModifierExtension(v ...*Extension) *MolecularSequenceBuilder {
	b.v.modifierExtension = append(b.v.modifierExtension, v...)
	return b
}

func (b *MolecularSequenceBuilder) SetModifierExtension(v []*Extension) *MolecularSequenceBuilder {
	b.v.modifierExtension = slices.Clone(v)
	return b
}

func (b *MolecularSequenceBuilder) Identifier(v ...*Identifier) *MolecularSequenceBuilder {
	b.v.identifier = append(b.v.identifier, v...)
	return b
}

func (b *MolecularSequenceBuilder) SetIdentifier(v []*Identifier) *MolecularSequenceBuilder {
	b.v.identifier = slices.Clone(v)
	return b
}

func (b *MolecularSequenceBuilder) Type(v *Code) *MolecularSequenceBuilder {
	b.v.typ = v
	return b
}

func (b *MolecularSequenceBuilder) CoordinateSystem(v *Integer) *MolecularSequenceBuilder {
	b.v.coordinateSystem = v
	return b
}

func (b *MolecularSequenceBuilder) Patient(v *Reference) *MolecularSequenceBuilder {
	b.v.patient = v
	return b
}

func (b *MolecularSequenceBuilder) Specimen(v *Reference) *MolecularSequenceBuilder {
	b.v.specimen = v
	return b
}

func (b *MolecularSequenceBuilder) Device(v *Reference) *MolecularSequenceBuilder {
	b.v.device = v
	return b
}

func (b *MolecularSequenceBuilder) Performer(v *Reference) *MolecularSequenceBuilder {
	b.v.performer = v
	return b
}

func (b *MolecularSequenceBuilder) Quantity(v *Quantity) *MolecularSequenceBuilder {
	b.v.quantity = v
	return b
}

func (b *MolecularSequenceBuilder) ReferenceSeq(v *MolecularSequenceReferenceSeq) *MolecularSequenceBuilder {
	b.v.referenceSeq = v
	return b
}

func (b *MolecularSequenceBuilder) Variant(v ...*MolecularSequenceVariant) *MolecularSequenceBuilder {
	b.v.variant = append(b.v.variant, v...)
	return b
}

func (b *MolecularSequenceBuilder) SetVariant(v []*MolecularSequenceVariant) *MolecularSequenceBuilder {
	b.v.variant = slices.Clone(v)
	return b
}

func (b *MolecularSequenceBuilder) ObservedSeq(v *String) *MolecularSequenceBuilder {
	b.v.observedSeq = v
	return b
}

func (b *MolecularSequenceBuilder) Quality(v ...*MolecularSequenceQuality) *MolecularSequenceBuilder {
	b.v.quality = append(b.v.quality, v...)
	return b
}

func (b *MolecularSequenceBuilder) SetQuality(v []*MolecularSequenceQuality) *MolecularSequenceBuilder {
	b.v.quality = slices.Clone(v)
	return b
}

func (b *MolecularSequenceBuilder) ReadCoverage(v *Integer) *MolecularSequenceBuilder {
	b.v.readCoverage = v
	return b
}

func (b *MolecularSequenceBuilder) Repository(v ...*MolecularSequenceRepository) *MolecularSequenceBuilder {
	b.v.repository = append(b.v.repository, v...)
	return b
}

func (b *MolecularSequenceBuilder) SetRepository(v []*MolecularSequenceRepository) *MolecularSequenceBuilder {
	b.v.repository = slices.Clone(v)
	return b
}

func (b *MolecularSequenceBuilder) Pointer(v ...*Reference) *MolecularSequenceBuilder {
	b.v.pointer = append(b.v.pointer, v...)
	return b
}

func (b *MolecularSequenceBuilder) SetPointer(v []*Reference) *MolecularSequenceBuilder {
	b.v.pointer = slices.Clone(v)
	return b
}

func (b *MolecularSequenceBuilder) StructureVariant(v ...*MolecularSequenceStructureVariant) *MolecularSequenceBuilder {
	b.v.structureVariant = append(b.v.structureVariant, v...)
	return b
}

func (b *MolecularSequenceBuilder) SetStructureVariant(v []*MolecularSequenceStructureVariant) *MolecularSequenceBuilder {
	b.v.structureVariant = slices.Clone(v)
	return b
}

// Build validates the elements and returns a new MolecularSequence. The returned error
// is a *ValidationError.
func (b *MolecularSequenceBuilder) Build() (*MolecularSequence, error) {
	v := b.v
	v.cloneLists()
	if err := v.validate(); err != nil {
		return nil, err
	}
	return &v, nil
}

// MolecularSequenceReferenceSeq describes the reference sequence a sequence is aligned to.
type MolecularSequenceReferenceSeq struct {
	backboneElement
	chromosome          *CodeableConcept
	genomeBuild         *String
	orientation         *Code
	referenceSeqId      *CodeableConcept
	referenceSeqPointer *Reference
	referenceSeqString  *String
	strand              *Code
	windowStart         *Integer
	windowEnd           *Integer
}

func (r *MolecularSequenceReferenceSeq) TypeName() string {
	return "MolecularSequence.referenceSeq"
}

func (r *MolecularSequenceReferenceSeq) Chromosome() *CodeableConcept {
	return r.chromosome
}

func (r *MolecularSequenceReferenceSeq) GenomeBuild() *String {
	return r.genomeBuild
}

func (r *MolecularSequenceReferenceSeq) Orientation() *Code {
	return r.orientation
}

func (r *MolecularSequenceReferenceSeq) ReferenceSeqID() *CodeableConcept {
	return r.referenceSeqId
}

func (r *MolecularSequenceReferenceSeq) ReferenceSeqPointer() *Reference {
	return r.referenceSeqPointer
}

func (r *MolecularSequenceReferenceSeq) ReferenceSeqString() *String {
	return r.referenceSeqString
}

func (r *MolecularSequenceReferenceSeq) Strand() *Code {
	return r.strand
}

func (r *MolecularSequenceReferenceSeq) WindowStart() *Integer {
	return r.windowStart
}

func (r *MolecularSequenceReferenceSeq) WindowEnd() *Integer {
	return r.windowEnd
}

func (r *MolecularSequenceReferenceSeq) Accept(name string, index int, v Visitor) {
	if r == nil {
		return
	}
	visit(name, index, r, v, func() {
		r.acceptBackbone(v)
		r.chromosome.Accept("chromosome", -1, v)
		r.genomeBuild.Accept("genomeBuild", -1, v)
		r.orientation.Accept("orientation", -1, v)
		r.referenceSeqId.Accept("referenceSeqId", -1, v)
		r.referenceSeqPointer.Accept("referenceSeqPointer", -1, v)
		r.referenceSeqString.Accept("referenceSeqString", -1, v)
		r.strand.Accept("strand", -1, v)
		r.windowStart.Accept("windowStart", -1, v)
		r.windowEnd.Accept("windowEnd", -1, v)
	})
}

func (r *MolecularSequenceReferenceSeq) hasChildren() bool {
	return r.hasExtensions() ||
		r.chromosome != nil ||
		r.genomeBuild != nil ||
		r.orientation != nil ||
		r.referenceSeqId != nil ||
		r.referenceSeqPointer != nil ||
		r.referenceSeqString != nil ||
		r.strand != nil ||
		r.windowStart != nil ||
		r.windowEnd != nil
}

func (r *MolecularSequenceReferenceSeq) cloneLists() {
	r.backboneElement.cloneLists()
}

func (r *MolecularSequenceReferenceSeq) validate() error {
	return check(
		checkReference("MolecularSequence.referenceSeq", "referenceSeqPointer", r.referenceSeqPointer, "MolecularSequence"),
		checkCode("MolecularSequence.referenceSeq", "orientation", r.orientation, orientationTypeCodes),
		checkCode("MolecularSequence.referenceSeq", "strand", r.strand, strandTypeCodes),
		r.backboneElement.validate("MolecularSequence.referenceSeq"),
		requireChildren("MolecularSequence.referenceSeq", r.hasChildren()),
	)
}

// ToBuilder returns a builder initialized with the elements of r.
func (r *MolecularSequenceReferenceSeq) ToBuilder() *MolecularSequenceReferenceSeqBuilder {
	b := &MolecularSequenceReferenceSeqBuilder{v: *r}
	b.v.cloneLists()
	return b
}

// MolecularSequenceReferenceSeqBuilder builds MolecularSequenceReferenceSeq values.
type MolecularSequenceReferenceSeqBuilder struct {
	v MolecularSequenceReferenceSeq
}

func NewMolecularSequenceReferenceSeqBuilder() *MolecularSequenceReferenceSeqBuilder {
	return &MolecularSequenceReferenceSeqBuilder{}
}

func (b *MolecularSequenceReferenceSeqBuilder) ID(id string) *MolecularSequenceReferenceSeqBuilder {
	b.v.id = id
	return b
}

func (b *MolecularSequenceReferenceSeqBuilder) Extension(v ...*Extension) *MolecularSequenceReferenceSeqBuilder {
	b.v.extension = append(b.v.extension, v...)
	return b
}

func (b *MolecularSequenceReferenceSeqBuilder) SetExtension(v []*Extension) *MolecularSequenceReferenceSeqBuilder {
	b.v.extension = slices.Clone(v)
	return b
}

func (b *MolecularSequenceReferenceSeqBuilder) ModifierExtension(v ...*Extension) *MolecularSequenceReferenceSeqBuilder {
	b.v.modifierExtension = append(b.v.modifierExtension, v...)
	return b
}

func (b *MolecularSequenceReferenceSeqBuilder) SetModifierExtension(v []*Extension) *MolecularSequenceReferenceSeqBuilder {
	b.v.modifierExtension = slices.Clone(v)
	return b
}

func (b *MolecularSequenceReferenceSeqBuilder) Chromosome(v *CodeableConcept) *MolecularSequenceReferenceSeqBuilder {
	b.v.chromosome = v
	return b
}

func (b *MolecularSequenceReferenceSeqBuilder) GenomeBuild(v *String) *MolecularSequenceReferenceSeqBuilder {
	b.v.genomeBuild = v
	return b
}

func (b *MolecularSequenceReferenceSeqBuilder) Orientation(v *Code) *MolecularSequenceReferenceSeqBuilder {
	b.v.orientation = v
	return b
}

func (b *MolecularSequenceReferenceSeqBuilder) ReferenceSeqID(v *CodeableConcept) *MolecularSequenceReferenceSeqBuilder {
	b.v.referenceSeqId = v
	return b
}

func (b *MolecularSequenceReferenceSeqBuilder) ReferenceSeqPointer(v *Reference) *MolecularSequenceReferenceSeqBuilder {
	b.v.referenceSeqPointer = v
	return b
}

func (b *MolecularSequenceReferenceSeqBuilder) ReferenceSeqString(v *String) *MolecularSequenceReferenceSeqBuilder {
	b.v.referenceSeqString = v
	return b
}

func (b *MolecularSequenceReferenceSeqBuilder) Strand(v *Code) *MolecularSequenceReferenceSeqBuilder {
	b.v.strand = v
	return b
}

func (b *MolecularSequenceReferenceSeqBuilder) WindowStart(v *Integer) *MolecularSequenceReferenceSeqBuilder {
	b.v.windowStart = v
	return b
}

func (b *MolecularSequenceReferenceSeqBuilder) WindowEnd(v *Integer) *MolecularSequenceReferenceSeqBuilder {
	b.v.windowEnd = v
	return b
}

// Build validates the elements and returns a new MolecularSequenceReferenceSeq. The returned error
// is a *ValidationError.
func (b *MolecularSequenceReferenceSeqBuilder) Build() (*MolecularSequenceReferenceSeq, error) {
	v := b.v
	v.cloneLists()
	if err := v.validate(); err != nil {
		return nil, err
	}
	return &v, nil
}

// MolecularSequenceVariant is a variation in the sequence compared to the reference sequence.
type MolecularSequenceVariant struct {
	backboneElement
	start           *Integer
	end             *Integer
	observedAllele  *String
	referenceAllele *String
	cigar           *String
	variantPointer  *Reference
}

func (va *MolecularSequenceVariant) TypeName() string {
	return "MolecularSequence.variant"
}

func (va *MolecularSequenceVariant) Start() *Integer {
	return va.start
}

func (va *MolecularSequenceVariant) End() *Integer {
	return va.end
}

func (va *MolecularSequenceVariant) ObservedAllele() *String {
	return va.observedAllele
}

func (va *MolecularSequenceVariant) ReferenceAllele() *String {
	return va.referenceAllele
}

func (va *MolecularSequenceVariant) Cigar() *String {
	return va.cigar
}

func (va *MolecularSequenceVariant) VariantPointer() *Reference {
	return va.variantPointer
}

func (va *MolecularSequenceVariant) Accept(name string, index int, v Visitor) {
	if va == nil {
		return
	}
	visit(name, index, va, v, func() {
		va.acceptBackbone(v)
		va.start.Accept("start", -1, v)
		va.end.Accept("end", -1, v)
		va.observedAllele.Accept("observedAllele", -1, v)
		va.referenceAllele.Accept("referenceAllele", -1, v)
		va.cigar.Accept("cigar", -1, v)
		va.variantPointer.Accept("variantPointer", -1, v)
	})
}

func (va *MolecularSequenceVariant) hasChildren() bool {
	return va.hasExtensions() ||
		va.start != nil ||
		va.end != nil ||
		va.observedAllele != nil ||
		va.referenceAllele != nil ||
		va.cigar != nil ||
		va.variantPointer != nil
}

func (va *MolecularSequenceVariant) cloneLists() {
	va.backboneElement.cloneLists()
}

func (va *MolecularSequenceVariant) validate() error {
	return check(
		checkReference("MolecularSequence.variant", "variantPointer", va.variantPointer, "Observation"),
		va.backboneElement.validate("MolecularSequence.variant"),
		requireChildren("MolecularSequence.variant", va.hasChildren()),
	)
}

// ToBuilder returns a builder initialized with the elements of va.
func (va *MolecularSequenceVariant) ToBuilder() *MolecularSequenceVariantBuilder {
	b := &MolecularSequenceVariantBuilder{v: *va}
	b.v.cloneLists()
	return b
}

// MolecularSequenceVariantBuilder builds MolecularSequenceVariant values.
type MolecularSequenceVariantBuilder struct {
	v MolecularSequenceVariant
}

func NewMolecularSequenceVariantBuilder() *MolecularSequenceVariantBuilder {
	return &MolecularSequenceVariantBuilder{}
}

func (b *MolecularSequenceVariantBuilder) ID(id string) *MolecularSequenceVariantBuilder {
	b.v.id = id
	return b
}

func (b *MolecularSequenceVariantBuilder) Extension(v ...*Extension) *MolecularSequenceVariantBuilder {
	b.v.extension = append(b.v.extension, v...)
	return b
}

func (b *MolecularSequenceVariantBuilder) SetExtension(v []*Extension) *MolecularSequenceVariantBuilder {
	b.v.extension = slices.Clone(v)
	return b
}

func (b *MolecularSequenceVariantBuilder) ModifierExtension(v ...*Extension) *MolecularSequenceVariantBuilder {
	b.v.modifierExtension = append(b.v.modifierExtension, v...)
	return b
}

func (b *MolecularSequenceVariantBuilder) SetModifierExtension(v []*Extension) *MolecularSequenceVariantBuilder {
	b.v.modifierExtension = slices.Clone(v)
	return b
}

func (b *MolecularSequenceVariantBuilder) Start(v *Integer) *MolecularSequenceVariantBuilder {
	b.v.start = v
	return b
}

func (b *MolecularSequenceVariantBuilder) End(v *Integer) *MolecularSequenceVariantBuilder {
	b.v.end = v
	return b
}

func (b *MolecularSequenceVariantBuilder) ObservedAllele(v *String) *MolecularSequenceVariantBuilder {
	b.v.observedAllele = v
	return b
}

func (b *MolecularSequenceVariantBuilder) ReferenceAllele(v *String) *MolecularSequenceVariantBuilder {
	b.v.referenceAllele = v
	return b
}

func (b *MolecularSequenceVariantBuilder) Cigar(v *String) *MolecularSequenceVariantBuilder {
	b.v.cigar = v
	return b
}

func (b *MolecularSequenceVariantBuilder) VariantPointer(v *Reference) *MolecularSequenceVariantBuilder {
	b.v.variantPointer = v
	return b
}

// Build validates the elements and returns a new MolecularSequenceVariant. The returned error
// is a *ValidationError.
func (b *MolecularSequenceVariantBuilder) Build() (*MolecularSequenceVariant, error) {
	v := b.v
	v.cloneLists()
	if err := v.validate(); err != nil {
		return nil, err
	}
	return &v, nil
}

// MolecularSequenceQuality is an experimental feature attribute that defines the quality of the
// feature in a quantitative way.
type MolecularSequenceQuality struct {
	backboneElement
	typ              *Code
	standardSequence *CodeableConcept
	start            *Integer
	end              *Integer
	score            *Quantity
	method           *CodeableConcept
	truthTP          *Decimal
	queryTP          *Decimal
	truthFN          *Decimal
	queryFP          *Decimal
	gtFP             *Decimal
	precision        *Decimal
	recall           *Decimal
	fScore           *Decimal
	roc              *MolecularSequenceQualityRoc
}

func (q *MolecularSequenceQuality) TypeName() string {
	return "MolecularSequence.quality"
}

func (q *MolecularSequenceQuality) Type() *Code {
	return q.typ
}

func (q *MolecularSequenceQuality) StandardSequence() *CodeableConcept {
	return q.standardSequence
}

func (q *MolecularSequenceQuality) Start() *Integer {
	return q.start
}

func (q *MolecularSequenceQuality) End() *Integer {
	return q.end
}

func (q *MolecularSequenceQuality) Score() *Quantity {
	return q.score
}

func (q *MolecularSequenceQuality) Method() *CodeableConcept {
	return q.method
}

func (q *MolecularSequenceQuality) TruthTP() *Decimal {
	return q.truthTP
}

func (q *MolecularSequenceQuality) QueryTP() *Decimal {
	return q.queryTP
}

func (q *MolecularSequenceQuality) TruthFN() *Decimal {
	return q.truthFN
}

func (q *MolecularSequenceQuality) QueryFP() *Decimal {
	return q.queryFP
}

func (q *MolecularSequenceQuality) GtFP() *Decimal {
	return q.gtFP
}

func (q *MolecularSequenceQuality) Precision() *Decimal {
	return q.precision
}

func (q *MolecularSequenceQuality) Recall() *Decimal {
	return q.recall
}

func (q *MolecularSequenceQuality) FScore() *Decimal {
	return q.fScore
}

func (q *MolecularSequenceQuality) Roc() *MolecularSequenceQualityRoc {
	return q.roc
}

func (q *MolecularSequenceQuality) Accept(name string, index int, v Visitor) {
	if q == nil {
		return
	}
	visit(name, index, q, v, func() {
		q.acceptBackbone(v)
		q.typ.Accept("type", -1, v)
		q.standardSequence.Accept("standardSequence", -1, v)
		q.start.Accept("start", -1, v)
		q.end.Accept("end", -1, v)
		q.score.Accept("score", -1, v)
		q.method.Accept("method", -1, v)
		q.truthTP.Accept("truthTP", -1, v)
		q.queryTP.Accept("queryTP", -1, v)
		q.truthFN.Accept("truthFN", -1, v)
		q.queryFP.Accept("queryFP", -1, v)
		q.gtFP.Accept("gtFP", -1, v)
		q.precision.Accept("precision", -1, v)
		q.recall.Accept("recall", -1, v)
		q.fScore.Accept("fScore", -1, v)
		q.roc.Accept("roc", -1, v)
	})
}

func (q *MolecularSequenceQuality) hasChildren() bool {
	return q.hasExtensions() ||
		q.typ != nil ||
		q.standardSequence != nil ||
		q.start != nil ||
		q.end != nil ||
		q.score != nil ||
		q.method != nil ||
		q.truthTP != nil ||
		q.queryTP != nil ||
		q.truthFN != nil ||
		q.queryFP != nil ||
		q.gtFP != nil ||
		q.precision != nil ||
		q.recall != nil ||
		q.fScore != nil ||
		q.roc != nil
}

func (q *MolecularSequenceQuality) cloneLists() {
	q.backboneElement.cloneLists()
}

func (q *MolecularSequenceQuality) validate() error {
	return check(
		requireElement("MolecularSequence.quality", "type", q.typ),
		checkCode("MolecularSequence.quality", "type", q.typ, qualityTypeCodes),
		q.backboneElement.validate("MolecularSequence.quality"),
		requireChildren("MolecularSequence.quality", q.hasChildren()),
	)
}

// ToBuilder returns a builder initialized with the elements of q.
func (q *MolecularSequenceQuality) ToBuilder() *MolecularSequenceQualityBuilder {
	b := &MolecularSequenceQualityBuilder{v: *q}
	b.v.cloneLists()
	return b
}

// MolecularSequenceQualityBuilder builds MolecularSequenceQuality values.
type MolecularSequenceQualityBuilder struct {
	v MolecularSequenceQuality
}

// NewMolecularSequenceQualityBuilder returns a builder for MolecularSequenceQuality with the required elements set.
func NewMolecularSequenceQualityBuilder(typ *Code) *MolecularSequenceQualityBuilder {
	b := &MolecularSequenceQualityBuilder{}
	b.v.typ = typ
	return b
}

func (b *MolecularSequenceQualityBuilder) ID(id string) *MolecularSequenceQualityBuilder {
	b.v.id = id
	return b
}

func (b *MolecularSequenceQualityBuilder) Extension(v ...*Extension) *MolecularSequenceQualityBuilder {
	b.v.extension = append(b.v.extension, v...)
	return b
}

func (b *MolecularSequenceQualityBuilder) SetExtension(v []*Extension) *MolecularSequenceQualityBuilder {
	b.v.extension = slices.Clone(v)
	return b
}

func (b *MolecularSequenceQualityBuilder) ModifierExtension(v ...*Extension) *MolecularSequenceQualityBuilder {
	b.v.modifierExtension = append(b.v.modifierExtension, v...)
	return b
}

func (b *MolecularSequenceQualityBuilder) SetModifierExtension(v []*Extension) *MolecularSequenceQualityBuilder {
	b.v.modifierExtension = slices.Clone(v)
	return b
}

func (b *MolecularSequenceQualityBuilder) Type(v *Code) *MolecularSequenceQualityBuilder {
	b.v.typ = v
	return b
}

func (b *MolecularSequenceQualityBuilder) StandardSequence(v *CodeableConcept) *MolecularSequenceQualityBuilder {
	b.v.standardSequence = v
	return b
}

func (b *MolecularSequenceQualityBuilder) Start(v *Integer) *MolecularSequenceQualityBuilder {
	b.v.start = v
	return b
}

func (b *MolecularSequenceQualityBuilder) End(v *Integer) *MolecularSequenceQualityBuilder {
	b.v.end = v
	return b
}

func (b *MolecularSequenceQualityBuilder) Score(v *Quantity) *MolecularSequenceQualityBuilder {
	b.v.score = v
	return b
}

func (b *MolecularSequenceQualityBuilder) Method(v *CodeableConcept) *MolecularSequenceQualityBuilder {
	b.v.method = v
	return b
}

func (b *MolecularSequenceQualityBuilder) TruthTP(v *Decimal) *MolecularSequenceQualityBuilder {
	b.v.truthTP = v
	return b
}

func (b *MolecularSequenceQualityBuilder) QueryTP(v *Decimal) *MolecularSequenceQualityBuilder {
	b.v.queryTP = v
	return b
}

func (b *MolecularSequenceQualityBuilder) TruthFN(v *Decimal) *MolecularSequenceQualityBuilder {
	b.v.truthFN = v
	return b
}

func (b *MolecularSequenceQualityBuilder) QueryFP(v *Decimal) *MolecularSequenceQualityBuilder {
	b.v.queryFP = v
	return b
}

func (b *MolecularSequenceQualityBuilder) GtFP(v *Decimal) *MolecularSequenceQualityBuilder {
	b.v.gtFP = v
	return b
}

func (b *MolecularSequenceQualityBuilder) Precision(v *Decimal) *MolecularSequenceQualityBuilder {
	b.v.precision = v
	return b
}

func (b *MolecularSequenceQualityBuilder) Recall(v *Decimal) *MolecularSequenceQualityBuilder {
	b.v.recall = v
	return b
}

func (b *MolecularSequenceQualityBuilder) FScore(v *Decimal) *MolecularSequenceQualityBuilder {
	b.v.fScore = v
	return b
}

func (b *MolecularSequenceQualityBuilder) Roc(v *MolecularSequenceQualityRoc) *MolecularSequenceQualityBuilder {
	b.v.roc = v
	return b
}

// Build validates the elements and returns a new MolecularSequenceQuality. The returned error
// is a *ValidationError.
func (b *MolecularSequenceQualityBuilder) Build() (*MolecularSequenceQuality, error) {
	v := b.v
	v.cloneLists()
	if err := v.validate(); err != nil {
		return nil, err
	}
	return &v, nil
}

// MolecularSequenceQualityRoc holds the receiver operator characteristic curve of a quality measurement.
type MolecularSequenceQualityRoc struct {
	backboneElement
	score       []*Integer
	numTP       []*Integer
	numFP       []*Integer
	numFN       []*Integer
	precision   []*Decimal
	sensitivity []*Decimal
	fMeasure    []*Decimal
}

func (r *MolecularSequenceQualityRoc) TypeName() string {
	return "MolecularSequence.quality.roc"
}

func (r *MolecularSequenceQualityRoc) Score() []*Integer {
	return slices.Clone(r.score)
}

func (r *MolecularSequenceQualityRoc) NumTP() []*Integer {
	return slices.Clone(r.numTP)
}

func (r *MolecularSequenceQualityRoc) NumFP() []*Integer {
	return slices.Clone(r.numFP)
}

func (r *MolecularSequenceQualityRoc) NumFN() []*Integer {
	return slices.Clone(r.numFN)
}

func (r *MolecularSequenceQualityRoc) Precision() []*Decimal {
	return slices.Clone(r.precision)
}

func (r *MolecularSequenceQualityRoc) Sensitivity() []*Decimal {
	return slices.Clone(r.sensitivity)
}

func (r *MolecularSequenceQualityRoc) FMeasure() []*Decimal {
	return slices.Clone(r.fMeasure)
}

func (r *MolecularSequenceQualityRoc) Accept(name string, index int, v Visitor) {
	if r == nil {
		return
	}
	visit(name, index, r, v, func() {
		r.acceptBackbone(v)
		acceptList("score", r.score, v)
		acceptList("numTP", r.numTP, v)
		acceptList("numFP", r.numFP, v)
		acceptList("numFN", r.numFN, v)
		acceptList("precision", r.precision, v)
		acceptList("sensitivity", r.sensitivity, v)
		acceptList("fMeasure", r.fMeasure, v)
	})
}

func (r *MolecularSequenceQualityRoc) hasChildren() bool {
	return r.hasExtensions() ||
		len(r.score) > 0 ||
		len(r.numTP) > 0 ||
		len(r.numFP) > 0 ||
		len(r.numFN) > 0 ||
		len(r.precision) > 0 ||
		len(r.sensitivity) > 0 ||
		len(r.fMeasure) > 0
}

func (r *MolecularSequenceQualityRoc) cloneLists() {
	r.backboneElement.cloneLists()
	r.score = slices.Clone(r.score)
	r.numTP = slices.Clone(r.numTP)
	r.numFP = slices.Clone(r.numFP)
	r.numFN = slices.Clone(r.numFN)
	r.precision = slices.Clone(r.precision)
	r.sensitivity = slices.Clone(r.sensitivity)
	r.fMeasure = slices.Clone(r.fMeasure)
}

func (r *MolecularSequenceQualityRoc) validate() error {
	return check(
		checkList("MolecularSequence.quality.roc", "score", r.score),
		checkList("MolecularSequence.quality.roc", "numTP", r.numTP),
		checkList("MolecularSequence.quality.roc", "numFP", r.numFP),
		checkList("MolecularSequence.quality.roc", "numFN", r.numFN),
		checkList("MolecularSequence.quality.roc", "precision", r.precision),
		checkList("MolecularSequence.quality.roc", "sensitivity", r.sensitivity),
		checkList("MolecularSequence.quality.roc", "fMeasure", r.fMeasure),
		r.backboneElement.validate("MolecularSequence.quality.roc"),
		requireChildren("MolecularSequence.quality.roc", r.hasChildren()),
	)
}

// ToBuilder returns a builder initialized with the elements of r.
func (r *MolecularSequenceQualityRoc) ToBuilder() *MolecularSequenceQualityRocBuilder {
	b := &MolecularSequenceQualityRocBuilder{v: *r}
	b.v.cloneLists()
	return b
}

// MolecularSequenceQualityRocBuilder builds MolecularSequenceQualityRoc values.
type MolecularSequenceQualityRocBuilder struct {
	v MolecularSequenceQualityRoc
}

func NewMolecularSequenceQualityRocBuilder() *MolecularSequenceQualityRocBuilder {
	return &MolecularSequenceQualityRocBuilder{}
}

func (b *MolecularSequenceQualityRocBuilder) ID(id string) *MolecularSequenceQualityRocBuilder {
	b.v.id = id
	return b
}

func (b *MolecularSequenceQualityRocBuilder) Extension(v ...*Extension) *MolecularSequenceQualityRocBuilder {
	b.v.extension = append(b.v.extension, v...)
	return b
}

func (b *MolecularSequenceQualityRocBuilder) SetExtension(v []*Extension) *MolecularSequenceQualityRocBuilder {
	b.v.extension = slices.Clone(v)
	return b
}

func (b *MolecularSequenceQualityRocBuilder) ModifierExtension(v ...*Extension) *MolecularSequenceQualityRocBuilder {
	b.v.modifierExtension = append(b.v.modifierExtension, v...)
	return b
}

func (b *MolecularSequenceQualityRocBuilder) SetModifierExtension(v []*Extension) *MolecularSequenceQualityRocBuilder {
	b.v.modifierExtension = slices.Clone(v)
	return b
}

func (b *MolecularSequenceQualityRocBuilder) Score(v ...*Integer) *MolecularSequenceQualityRocBuilder {
	b.v.score = append(b.v.score, v...)
	return b
}

func (b *MolecularSequenceQualityRocBuilder) SetScore(v []*Integer) *MolecularSequenceQualityRocBuilder {
	b.v.score = slices.Clone(v)
	return b
}

func (b *MolecularSequenceQualityRocBuilder) NumTP(v ...*Integer) *MolecularSequenceQualityRocBuilder {
	b.v.numTP = append(b.v.numTP, v...)
	return b
}

func (b *MolecularSequenceQualityRocBuilder) SetNumTP(v []*Integer) *MolecularSequenceQualityRocBuilder {
	b.v.numTP = slices.Clone(v)
	return b
}

func (b *MolecularSequenceQualityRocBuilder) NumFP(v ...*Integer) *MolecularSequenceQualityRocBuilder {
	b.v.numFP = append(b.v.numFP, v...)
	return b
}

func (b *MolecularSequenceQualityRocBuilder) SetNumFP(v []*Integer) *MolecularSequenceQualityRocBuilder {
	b.v.numFP = slices.Clone(v)
	return b
}

func (b *MolecularSequenceQualityRocBuilder) NumFN(v ...*Integer) *MolecularSequenceQualityRocBuilder {
	b.v.numFN = append(b.v.numFN, v...)
	return b
}

func (b *MolecularSequenceQualityRocBuilder) SetNumFN(v []*Integer) *MolecularSequenceQualityRocBuilder {
	b.v.numFN = slices.Clone(v)
	return b
}

func (b *MolecularSequenceQualityRocBuilder) Precision(v ...*Decimal) *MolecularSequenceQualityRocBuilder {
	b.v.precision = append(b.v.precision, v...)
	return b
}

func (b *MolecularSequenceQualityRocBuilder) SetPrecision(v []*Decimal) *MolecularSequenceQualityRocBuilder {
	b.v.precision = slices.Clone(v)
	return b
}

func (b *MolecularSequenceQualityRocBuilder) Sensitivity(v ...*Decimal) *MolecularSequenceQualityRocBuilder {
	b.v.sensitivity = append(b.v.sensitivity, v...)
	return b
}

func (b *MolecularSequenceQualityRocBuilder) SetSensitivity(v []*Decimal) *MolecularSequenceQualityRocBuilder {
	b.v.sensitivity = slices.Clone(v)
	return b
}

func (b *MolecularSequenceQualityRocBuilder) FMeasure(v ...*Decimal) *MolecularSequenceQualityRocBuilder {
	b.v.fMeasure = append(b.v.fMeasure, v...)
	return b
}

func (b *MolecularSequenceQualityRocBuilder) SetFMeasure(v []*Decimal) *MolecularSequenceQualityRocBuilder {
	b.v.fMeasure = slices.Clone(v)
	return b
}

// Build validates the elements and returns a new MolecularSequenceQualityRoc. The returned error
// is a *ValidationError.
func (b *MolecularSequenceQualityRocBuilder) Build() (*MolecularSequenceQualityRoc, error) {
	v := b.v
	v.cloneLists()
	if err := v.validate(); err != nil {
		return nil, err
	}
	return &v, nil
}

// MolecularSequenceRepository points to an external repository holding the sequence.
type MolecularSequenceRepository struct {
	backboneElement
	typ          *Code
	url          *Uri
	name         *String
	datasetId    *String
	variantsetId *String
	readsetId    *String
}

func (r *MolecularSequenceRepository) TypeName() string {
	return "MolecularSequence.repository"
}

func (r *MolecularSequenceRepository) Type() *Code {
	return r.typ
}

func (r *MolecularSequenceRepository) URL() *Uri {
	return r.url
}

func (r *MolecularSequenceRepository) Name() *String {
	return r.name
}

func (r *MolecularSequenceRepository) DatasetID() *String {
	return r.datasetId
}

func (r *MolecularSequenceRepository) VariantsetID() *String {
	return r.variantsetId
}

func (r *MolecularSequenceRepository) ReadsetID() *String {
	return r.readsetId
}

func (r *MolecularSequenceRepository) Accept(name string, index int, v Visitor) {
	if r == nil {
		return
	}
	visit(name, index, r, v, func() {
		r.acceptBackbone(v)
		r.typ.Accept("type", -1, v)
		r.url.Accept("url", -1, v)
		r.name.Accept("name", -1, v)
		r.datasetId.Accept("datasetId", -1, v)
		r.variantsetId.Accept("variantsetId", -1, v)
		r.readsetId.Accept("readsetId", -1, v)
	})
}

func (r *MolecularSequenceRepository) hasChildren() bool {
	return r.hasExtensions() ||
		r.typ != nil ||
		r.url != nil ||
		r.name != nil ||
		r.datasetId != nil ||
		r.variantsetId != nil ||
		r.readsetId != nil
}

func (r *MolecularSequenceRepository) cloneLists() {
	r.backboneElement.cloneLists()
}

func (r *MolecularSequenceRepository) validate() error {
	return check(
		requireElement("MolecularSequence.repository", "type", r.typ),
		checkCode("MolecularSequence.repository", "type", r.typ, repositoryTypeCodes),
		r.backboneElement.validate("MolecularSequence.repository"),
		requireChildren("MolecularSequence.repository", r.hasChildren()),
	)
}

// ToBuilder returns a builder initialized with the elements of r.
func (r *MolecularSequenceRepository) ToBuilder() *MolecularSequenceRepositoryBuilder {
	b := &MolecularSequenceRepositoryBuilder{v: *r}
	b.v.cloneLists()
	return b
}

// MolecularSequenceRepositoryBuilder builds MolecularSequenceRepository values.
type MolecularSequenceRepositoryBuilder struct {
	v MolecularSequenceRepository
}

// NewMolecularSequenceRepositoryBuilder returns a builder for MolecularSequenceRepository with the required elements set.
func NewMolecularSequenceRepositoryBuilder(typ *Code) *MolecularSequenceRepositoryBuilder {
	b := &MolecularSequenceRepositoryBuilder{}
	b.v.typ = typ
	return b
}

func (b *MolecularSequenceRepositoryBuilder) ID(id string) *MolecularSequenceRepositoryBuilder {
	b.v.id = id
	return b
}

func (b *MolecularSequenceRepositoryBuilder) Extension(v ...*Extension) *MolecularSequenceRepositoryBuilder {
	b.v.extension = append(b.v.extension, v...)
	return b
}

func (b *MolecularSequenceRepositoryBuilder) SetExtension(v []*Extension) *MolecularSequenceRepositoryBuilder {
	b.v.extension = slices.Clone(v)
	return b
}

func (b *MolecularSequenceRepositoryBuilder) ModifierExtension(v ...*Extension) *MolecularSequenceRepositoryBuilder {
	b.v.modifierExtension = append(b.v.modifierExtension, v...)
	return b
}

func (b *MolecularSequenceRepositoryBuilder) SetModifierExtension(v []*Extension) *MolecularSequenceRepositoryBuilder {
	b.v.modifierExtension = slices.Clone(v)
	return b
}

func (b *MolecularSequenceRepositoryBuilder) Type(v *Code) *MolecularSequenceRepositoryBuilder {
	b.v.typ = v
	return b
}

func (b *MolecularSequenceRepositoryBuilder) URL(v *Uri) *MolecularSequenceRepositoryBuilder {
	b.v.url = v
	return b
}

func (b *MolecularSequenceRepositoryBuilder) Name(v *String) *MolecularSequenceRepositoryBuilder {
	b.v.name = v
	return b
}

func (b *MolecularSequenceRepositoryBuilder) DatasetID(v *String) *MolecularSequenceRepositoryBuilder {
	b.v.datasetId = v
	return b
}

func (b *MolecularSequenceRepositoryBuilder) VariantsetID(v *String) *MolecularSequenceRepositoryBuilder {
	b.v.variantsetId = v
	return b
}

func (b *MolecularSequenceRepositoryBuilder) ReadsetID(v *String) *MolecularSequenceRepositoryBuilder {
	b.v.readsetId = v
	return b
}

// Build validates the elements and returns a new MolecularSequenceRepository. The returned error
// is a *ValidationError.
func (b *MolecularSequenceRepositoryBuilder) Build() (*MolecularSequenceRepository, error) {
	v := b.v
	v.cloneLists()
	if err := v.validate(); err != nil {
		return nil, err
	}
	return &v, nil
}

type MolecularSequenceStructureVariant struct {
	backboneElement
	variantType *CodeableConcept
	exact       *Boolean
	length      *Integer
	outer       *MolecularSequenceStructureVariantOuter
	inner       *MolecularSequenceStructureVariantInner
}

func (sv *MolecularSequenceStructureVariant) TypeName() string {
	return "MolecularSequence.structureVariant"
}

func (sv *MolecularSequenceStructureVariant) VariantType() *CodeableConcept {
	return sv.variantType
}

func (sv *MolecularSequenceStructureVariant) Exact() *Boolean {
	return sv.exact
}

func (sv *MolecularSequenceStructureVariant) Length() *Integer {
	return sv.length
}

func (sv *MolecularSequenceStructureVariant) Outer() *MolecularSequenceStructureVariantOuter {
	return sv.outer
}

func (sv *MolecularSequenceStructureVariant) Inner() *MolecularSequenceStructureVariantInner {
	return sv.inner
}

func (sv *MolecularSequenceStructureVariant) Accept(name string, index int, v Visitor) {
	if sv == nil {
		return
	}
	visit(name, index, sv, v, func() {
		sv.acceptBackbone(v)
		sv.variantType.Accept("variantType", -1, v)
		sv.exact.Accept("exact", -1, v)
		sv.length.Accept("length", -1, v)
		sv.outer.Accept("outer", -1, v)
		sv.inner.Accept("inner", -1, v)
	})
}

func (sv *MolecularSequenceStructureVariant) hasChildren() bool {
	return sv.hasExtensions() ||
		sv.variantType != nil ||
		sv.exact != nil ||
		sv.length != nil ||
		sv.outer != nil ||
		sv.inner != nil
}

func (sv *MolecularSequenceStructureVariant) cloneLists() {
	sv.backboneElement.cloneLists()
}

func (sv *MolecularSequenceStructureVariant) validate() error {
	return check(
		sv.backboneElement.validate("MolecularSequence.structureVariant"),
		requireChildren("MolecularSequence.structureVariant", sv.hasChildren()),
	)
}

// ToBuilder returns a builder initialized with the elements of sv.
func (sv *MolecularSequenceStructureVariant) ToBuilder() *MolecularSequenceStructureVariantBuilder {
	b := &MolecularSequenceStructureVariantBuilder{v: *sv}
	b.v.cloneLists()
	return b
}

// MolecularSequenceStructureVariantBuilder builds MolecularSequenceStructureVariant values.
type MolecularSequenceStructureVariantBuilder struct {
	v MolecularSequenceStructureVariant
}

func NewMolecularSequenceStructureVariantBuilder() *MolecularSequenceStructureVariantBuilder {
	return &MolecularSequenceStructureVariantBuilder{}
}

func (b *MolecularSequenceStructureVariantBuilder) ID(id string) *MolecularSequenceStructureVariantBuilder {
	b.v.id = id
	return b
}

func (b *MolecularSequenceStructureVariantBuilder) Extension(v ...*Extension) *MolecularSequenceStructureVariantBuilder {
	b.v.extension = append(b.v.extension, v...)
	return b
}

func (b *MolecularSequenceStructureVariantBuilder) SetExtension(v []*Extension) *MolecularSequenceStructureVariantBuilder {
	b.v.extension = slices.Clone(v)
	return b
}

func (b *MolecularSequenceStructureVariantBuilder) ModifierExtension(v ...*Extension) *MolecularSequenceStructureVariantBuilder {
	b.v.modifierExtension = append(b.v.modifierExtension, v...)
	return b
}

func (b *MolecularSequenceStructureVariantBuilder) SetModifierExtension(v []*Extension) *MolecularSequenceStructureVariantBuilder {
	b.v.modifierExtension = slices.Clone(v)
	return b
}

func (b *MolecularSequenceStructureVariantBuilder) VariantType(v *CodeableConcept) *MolecularSequenceStructureVariantBuilder {
	b.v.variantType = v
	return b
}

func (b *MolecularSequenceStructureVariantBuilder) Exact(v *Boolean) *MolecularSequenceStructureVariantBuilder {
	b.v.exact = v
	return b
}

func (b *MolecularSequenceStructureVariantBuilder) Length(v *Integer) *MolecularSequenceStructureVariantBuilder {
	b.v.length = v
	return b
}

func (b *MolecularSequenceStructureVariantBuilder) Outer(v *MolecularSequenceStructureVariantOuter) *MolecularSequenceStructureVariantBuilder {
	b.v.outer = v
	return b
}

func (b *MolecularSequenceStructureVariantBuilder) Inner(v *MolecularSequenceStructureVariantInner) *MolecularSequenceStructureVariantBuilder {
	b.v.inner = v
	return b
}

// Build validates the elements and returns a new MolecularSequenceStructureVariant. The returned error
// is a *ValidationError.
func (b *MolecularSequenceStructureVariantBuilder) Build() (*MolecularSequenceStructureVariant, error) {
	v := b.v
	v.cloneLists()
	if err := v.validate(); err != nil {
		return nil, err
	}
	return &v, nil
}

type MolecularSequenceStructureVariantOuter struct {
	backboneElement
	start *Integer
	end   *Integer
}

func (o *MolecularSequenceStructureVariantOuter) TypeName() string {
	return "MolecularSequence.structureVariant.outer"
}

func (o *MolecularSequenceStructureVariantOuter) Start() *Integer {
	return o.start
}

func (o *MolecularSequenceStructureVariantOuter) End() *Integer {
	return o.end
}

func (o *MolecularSequenceStructureVariantOuter) Accept(name string, index int, v Visitor) {
	if o == nil {
		return
	}
	visit(name, index, o, v, func() {
		o.acceptBackbone(v)
		o.start.Accept("start", -1, v)
		o.end.Accept("end", -1, v)
	})
}

func (o *MolecularSequenceStructureVariantOuter) hasChildren() bool {
	return o.hasExtensions() ||
		o.start != nil ||
		o.end != nil
}

func (o *MolecularSequenceStructureVariantOuter) cloneLists() {
	o.backboneElement.cloneLists()
}

func (o *MolecularSequenceStructureVariantOuter) validate() error {
	return check(
		o.backboneElement.validate("MolecularSequence.structureVariant.outer"),
		requireChildren("MolecularSequence.structureVariant.outer", o.hasChildren()),
	)
}

// ToBuilder returns a builder initialized with the elements of o.
func (o *MolecularSequenceStructureVariantOuter) ToBuilder() *MolecularSequenceStructureVariantOuterBuilder {
	b := &MolecularSequenceStructureVariantOuterBuilder{v: *o}
	b.v.cloneLists()
	return b
}

// MolecularSequenceStructureVariantOuterBuilder builds MolecularSequenceStructureVariantOuter values.
type MolecularSequenceStructureVariantOuterBuilder struct {
	v MolecularSequenceStructureVariantOuter
}

func NewMolecularSequenceStructureVariantOuterBuilder() *MolecularSequenceStructureVariantOuterBuilder {
	return &MolecularSequenceStructureVariantOuterBuilder{}
}

func (b *MolecularSequenceStructureVariantOuterBuilder) ID(id string) *MolecularSequenceStructureVariantOuterBuilder {
	b.v.id = id
	return b
}

func (b *MolecularSequenceStructureVariantOuterBuilder) Extension(v ...*Extension) *MolecularSequenceStructureVariantOuterBuilder {
	b.v.extension = append(b.v.extension, v...)
	return b
}

func (b *MolecularSequenceStructureVariantOuterBuilder) SetExtension(v []*Extension) *MolecularSequenceStructureVariantOuterBuilder {
	b.v.extension = slices.Clone(v)
	return b
}

func (b *MolecularSequenceStructureVariantOuterBuilder) ModifierExtension(v ...*Extension) *MolecularSequenceStructureVariantOuterBuilder {
	b.v.modifierExtension = append(b.v.modifierExtension, v...)
	return b
}

func (b *MolecularSequenceStructureVariantOuterBuilder) SetModifierExtension(v []*Extension) *MolecularSequenceStructureVariantOuterBuilder {
	b.v.modifierExtension = slices.Clone(v)
	return b
}

func (b *MolecularSequenceStructureVariantOuterBuilder) Start(v *Integer) *MolecularSequenceStructureVariantOuterBuilder {
	b.v.start = v
	return b
}

func (b *MolecularSequenceStructureVariantOuterBuilder) End(v *Integer) *MolecularSequenceStructureVariantOuterBuilder {
	b.v.end = v
	return b
}

// Build validates the elements and returns a new MolecularSequenceStructureVariantOuter. The returned error
// is a *ValidationError.
func (b *MolecularSequenceStructureVariantOuterBuilder) Build() (*MolecularSequenceStructureVariantOuter, error) {
	v := b.v
	v.cloneLists()
	if err := v.validate(); err != nil {
		return nil, err
	}
	return &v, nil
}

type MolecularSequenceStructureVariantInner struct {
	backboneElement
	start *Integer
	end   *Integer
}

func (i *MolecularSequenceStructureVariantInner) TypeName() string {
	return "MolecularSequence.structureVariant.inner"
}

func (i *MolecularSequenceStructureVariantInner) Start() *Integer {
	return i.start
}

func (i *MolecularSequenceStructureVariantInner) End() *Integer {
	return i.end
}

func (i *MolecularSequenceStructureVariantInner) Accept(name string, index int, v Visitor) {
	if i == nil {
		return
	}
	visit(name, index, i, v, func() {
		i.acceptBackbone(v)
		i.start.Accept("start", -1, v)
		i.end.Accept("end", -1, v)
	})
}

func (i *MolecularSequenceStructureVariantInner) hasChildren() bool {
	return i.hasExtensions() ||
		i.start != nil ||
		i.end != nil
}

func (i *MolecularSequenceStructureVariantInner) cloneLists() {
	i.backboneElement.cloneLists()
}

func (i *MolecularSequenceStructureVariantInner) validate() error {
	return check(
		i.backboneElement.validate("MolecularSequence.structureVariant.inner"),
		requireChildren("MolecularSequence.structureVariant.inner", i.hasChildren()),
	)
}

// ToBuilder returns a builder initialized with the elements of i.
func (i *MolecularSequenceStructureVariantInner) ToBuilder() *MolecularSequenceStructureVariantInnerBuilder {
	b := &MolecularSequenceStructureVariantInnerBuilder{v: *i}
	b.v.cloneLists()
	return b
}

// MolecularSequenceStructureVariantInnerBuilder builds MolecularSequenceStructureVariantInner values.
type MolecularSequenceStructureVariantInnerBuilder struct {
	v MolecularSequenceStructureVariantInner
}

func NewMolecularSequenceStructureVariantInnerBuilder() *MolecularSequenceStructureVariantInnerBuilder {
	return &MolecularSequenceStructureVariantInnerBuilder{}
}

func (b *MolecularSequenceStructureVariantInnerBuilder) ID(id string) *MolecularSequenceStructureVariantInnerBuilder {
	b.v.id = id
	return b
}

func (b *MolecularSequenceStructureVariantInnerBuilder) Extension(v ...*Extension) *MolecularSequenceStructureVariantInnerBuilder {
	b.v.extension = append(b.v.extension, v...)
	return b
}

func (b *MolecularSequenceStructureVariantInnerBuilder) SetExtension(v []*Extension) *MolecularSequenceStructureVariantInnerBuilder {
	b.v.extension = slices.Clone(v)
	return b
}

func (b *MolecularSequenceStructureVariantInnerBuilder) ModifierExtension(v ...*Extension) *MolecularSequenceStructureVariantInnerBuilder {
	b.v.modifierExtension = append(b.v.modifierExtension, v...)
	return b
}

func (b *MolecularSequenceStructureVariantInnerBuilder) SetModifierExtension(v []*Extension) *MolecularSequenceStructureVariantInnerBuilder {
	b.v.modifierExtension = slices.Clone(v)
	return b
}

func (b *MolecularSequenceStructureVariantInnerBuilder) Start(v *Integer) *MolecularSequenceStructureVariantInnerBuilder {
	b.v.start = v
	return b
}

func (b *MolecularSequenceStructureVariantInnerBuilder) End(v *Integer) *MolecularSequenceStructureVariantInnerBuilder {
	b.v.end = v
	return b
}

// Build validates the elements and returns a new MolecularSequenceStructureVariantInner. The returned error
// is a *ValidationError.
func (b *MolecularSequenceStructureVariantInnerBuilder) Build() (*MolecularSequenceStructureVariantInner, error) {
	v := b.v
	v.cloneLists()
	if err := v.validate(); err != nil {
		return nil, err
	}
	return &v, nil
}
