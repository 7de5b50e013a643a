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

// Extension is additional content defined by implementations. It holds either a value or nested
// extensions, never both.
type Extension struct {
	element
	url   string
	value Element
}

func (e *Extension) TypeName() string {
	return "Extension"
}

func (e *Extension) URL() string {
	return e.url
}

func (e *Extension) Value() Element {
	return e.value
}

func (e *Extension) Accept(name string, index int, v Visitor) {
	if e == nil {
		return
	}
	visit(name, index, e, v, func() {
		e.acceptElement(v)
		if e.url != "" {
			v.VisitValue("url", -1, e.url)
		}
		acceptChoice("value", e.value, v)
	})
}

func (e *Extension) hasChildren() bool {
	return e.hasExtensions() ||
		e.url != "" ||
		e.value != nil
}

func (e *Extension) cloneLists() {
	e.element.cloneLists()
}

func (e *Extension) validate() error {
	return check(
		requireValue("Extension", "url", e.url != ""),
		checkChoice("Extension", "value", e.value, "base64Binary", "boolean", "canonical", "code", "dateTime", "decimal", "id", "instant", "integer", "string", "unsignedInt", "uri", "url", "Attachment", "CodeableConcept", "Coding", "Identifier", "Meta", "Period", "Quantity", "Range", "Ratio", "Reference"),
		e.checkValueOrExtensions(),
		e.element.validate("Extension"),
		requireChildren("Extension", e.hasChildren()),
	)
}

// ToBuilder returns a builder initialized with the elements of e.
func (e *Extension) ToBuilder() *ExtensionBuilder {
	b := &ExtensionBuilder{v: *e}
	b.v.cloneLists()
	return b
}

// ExtensionBuilder builds Extension values.
type ExtensionBuilder struct {
	v Extension
}

// NewExtensionBuilder returns a builder for Extension with the required elements set.
func NewExtensionBuilder(url string) *ExtensionBuilder {
	b := &ExtensionBuilder{}
	b.v.url = url
	return b
}

func (b *ExtensionBuilder) ID(id string) *ExtensionBuilder {
	b.v.id = id
	return b
}

func (b *ExtensionBuilder) Extension(v ...*Extension) *ExtensionBuilder {
	b.v.extension = append(b.v.extension, v...)
	return b
}

func (b *ExtensionBuilder) SetExtension(v []*Extension) *ExtensionBuilder {
	b.v.extension = slices.Clone(v)
	return b
}

func (b *ExtensionBuilder) URL(v string) *ExtensionBuilder {
	b.v.url = v
	return b
}

// Value sets value[x]. The value has to be one of base64Binary, boolean, canonical, code, dateTime, decimal, id, instant, integer, string, unsignedInt, uri, url, Attachment, CodeableConcept, Coding, Identifier, Meta, Period, Quantity, Range, Ratio, Reference.
func (b *ExtensionBuilder) Value(v Element) *ExtensionBuilder {
	b.v.value = choice(v)
	return b
}

// Build validates the elements and returns a new Extension. The returned error
// is a *ValidationError.
func (b *ExtensionBuilder) Build() (*Extension, error) {
	v := b.v
	v.cloneLists()
	if err := v.validate(); err != nil {
		return nil, err
	}
	return &v, nil
}

// Coding is a reference to a code defined by a terminology system.
type Coding struct {
	element
	system       *Uri
	version      *String
	code         *Code
	display      *String
	userSelected *Boolean
}

func (c *Coding) TypeName() string {
	return "Coding"
}

func (c *Coding) System() *Uri {
	return c.system
}

func (c *Coding) Version() *String {
	return c.version
}

func (c *Coding) Code() *Code {
	return c.code
}

func (c *Coding) Display() *String {
	return c.display
}

func (c *Coding) UserSelected() *Boolean {
	return c.userSelected
}

func (c *Coding) Accept(name string, index int, v Visitor) {
	if c == nil {
		return
	}
	visit(name, index, c, v, func() {
		c.acceptElement(v)
		c.system.Accept("system", -1, v)
		c.version.Accept("version", -1, v)
		c.code.Accept("code", -1, v)
		c.display.Accept("display", -1, v)
		c.userSelected.Accept("userSelected", -1, v)
	})
}

func (c *Coding) hasChildren() bool {
	return c.hasExtensions() ||
		c.system != nil ||
		c.version != nil ||
		c.code != nil ||
		c.display != nil ||
		c.userSelected != nil
}

func (c *Coding) cloneLists() {
	c.element.cloneLists()
}

func (c *Coding) validate() error {
	return check(
		c.element.validate("Coding"),
		requireChildren("Coding", c.hasChildren()),
	)
}

// ToBuilder returns a builder initialized with the elements of c.
func (c *Coding) ToBuilder() *CodingBuilder {
	b := &CodingBuilder{v: *c}
	b.v.cloneLists()
	return b
}

// CodingBuilder builds Coding values.
type CodingBuilder struct {
	v Coding
}

func NewCodingBuilder() *CodingBuilder {
	return &CodingBuilder{}
}

func (b *CodingBuilder) ID(id string) *CodingBuilder {
	b.v.id = id
	return b
}

func (b *CodingBuilder) Extension(v ...*Extension) *CodingBuilder {
	b.v.extension = append(b.v.extension, v...)
	return b
}

func (b *CodingBuilder) SetExtension(v []*Extension) *CodingBuilder {
	b.v.extension = slices.Clone(v)
	return b
}

func (b *CodingBuilder) System(v *Uri) *CodingBuilder {
	b.v.system = v
	return b
}

func (b *CodingBuilder) Version(v *String) *CodingBuilder {
	b.v.version = v
	return b
}

func (b *CodingBuilder) Code(v *Code) *CodingBuilder {
	b.v.code = v
	return b
}

func (b *CodingBuilder) Display(v *String) *CodingBuilder {
	b.v.display = v
	return b
}

func (b *CodingBuilder) UserSelected(v *Boolean) *CodingBuilder {
	b.v.userSelected = v
	return b
}

// Build validates the elements and returns a new Coding. The returned error
// is a *ValidationError.
func (b *CodingBuilder) Build() (*Coding, error) {
	v := b.v
	v.cloneLists()
	if err := v.validate(); err != nil {
		return nil, err
	}
	return &v, nil
}

// CodeableConcept is a concept that may be defined by one or more codings and/or plain text.
type CodeableConcept struct {
	element
	coding []*Coding
	text   *String
}

func (c *CodeableConcept) TypeName() string {
	return "CodeableConcept"
}

func (c *CodeableConcept) Coding() []*Coding {
	return slices.Clone(c.coding)
}

func (c *CodeableConcept) Text() *String {
	return c.text
}

func (c *CodeableConcept) Accept(name string, index int, v Visitor) {
	if c == nil {
		return
	}
	visit(name, index, c, v, func() {
		c.acceptElement(v)
		acceptList("coding", c.coding, v)
		c.text.Accept("text", -1, v)
	})
}

func (c *CodeableConcept) hasChildren() bool {
	return c.hasExtensions() ||
		len(c.coding) > 0 ||
		c.text != nil
}

func (c *CodeableConcept) cloneLists() {
	c.element.cloneLists()
	c.coding = slices.Clone(c.coding)
}

func (c *CodeableConcept) validate() error {
	return check(
		checkList("CodeableConcept", "coding", c.coding),
		c.element.validate("CodeableConcept"),
		requireChildren("CodeableConcept", c.hasChildren()),
	)
}

// ToBuilder returns a builder initialized with the elements of c.
func (c *CodeableConcept) ToBuilder() *CodeableConceptBuilder {
	b := &CodeableConceptBuilder{v: *c}
	b.v.cloneLists()
	return b
}

// CodeableConceptBuilder builds CodeableConcept values.
type CodeableConceptBuilder struct {
	v CodeableConcept
}

func NewCodeableConceptBuilder() *CodeableConceptBuilder {
	return &CodeableConceptBuilder{}
}

func (b *CodeableConceptBuilder) ID(id string) *CodeableConceptBuilder {
	b.v.id = id
	return b
}

func (b *CodeableConceptBuilder) Extension(v ...*Extension) *CodeableConceptBuilder {
	b.v.extension = append(b.v.extension, v...)
	return b
}

func (b *CodeableConceptBuilder) SetExtension(v []*Extension) *CodeableConceptBuilder {
	b.v.extension = slices.Clone(v)
	return b
}

func (b *CodeableConceptBuilder) Coding(v ...*Coding) *CodeableConceptBuilder {
	b.v.coding = append(b.v.coding, v...)
	return b
}

func (b *CodeableConceptBuilder) SetCoding(v []*Coding) *CodeableConceptBuilder {
	b.v.coding = slices.Clone(v)
	return b
}

func (b *CodeableConceptBuilder) Text(v *String) *CodeableConceptBuilder {
	b.v.text = v
	return b
}

// Build validates the elements and returns a new CodeableConcept. The returned error
// is a *ValidationError.
func (b *CodeableConceptBuilder) Build() (*CodeableConcept, error) {
	v := b.v
	v.cloneLists()
	if err := v.validate(); err != nil {
		return nil, err
	}
	return &v, nil
}

// Identifier associates a value that is unique within a namespace with a resource.
type Identifier struct {
	element
	use      *Code
	typ      *CodeableConcept
	system   *Uri
	value    *String
	period   *Period
	assigner *Reference
}

func (i *Identifier) TypeName() string {
	return "Identifier"
}

func (i *Identifier) Use() *Code {
	return i.use
}

func (i *Identifier) Type() *CodeableConcept {
	return i.typ
}

func (i *Identifier) System() *Uri {
	return i.system
}

func (i *Identifier) Value() *String {
	return i.value
}

func (i *Identifier) Period() *Period {
	return i.period
}

func (i *Identifier) Assigner() *Reference {
	return i.assigner
}

func (i *Identifier) Accept(name string, index int, v Visitor) {
	if i == nil {
		return
	}
	visit(name, index, i, v, func() {
		i.acceptElement(v)
		i.use.Accept("use", -1, v)
		i.typ.Accept("type", -1, v)
		i.system.Accept("system", -1, v)
		i.value.Accept("value", -1, v)
		i.period.Accept("period", -1, v)
		i.assigner.Accept("assigner", -1, v)
	})
}

func (i *Identifier) hasChildren() bool {
	return i.hasExtensions() ||
		i.use != nil ||
		i.typ != nil ||
		i.system != nil ||
		i.value != nil ||
		i.period != nil ||
		i.assigner != nil
}

func (i *Identifier) cloneLists() {
	i.element.cloneLists()
}

func (i *Identifier) validate() error {
	return check(
		checkReference("Identifier", "assigner", i.assigner, "Organization"),
		checkCode("Identifier", "use", i.use, identifierUseCodes),
		i.element.validate("Identifier"),
		requireChildren("Identifier", i.hasChildren()),
	)
}

// ToBuilder returns a builder initialized with the elements of i.
func (i *Identifier) ToBuilder() *IdentifierBuilder {
	b := &IdentifierBuilder{v: *i}
	b.v.cloneLists()
	return b
}

// IdentifierBuilder builds Identifier values.
type IdentifierBuilder struct {
	v Identifier
}

func NewIdentifierBuilder() *IdentifierBuilder {
	return &IdentifierBuilder{}
}

func (b *IdentifierBuilder) ID(id string) *IdentifierBuilder {
	b.v.id = id
	return b
}

func (b *IdentifierBuilder) Extension(v ...*Extension) *IdentifierBuilder {
	b.v.extension = append(b.v.extension, v...)
	return b
}

func (b *IdentifierBuilder) SetExtension(v []*Extension) *IdentifierBuilder {
	b.v.extension = slices.Clone(v)
	return b
}

func (b *IdentifierBuilder) Use(v *Code) *IdentifierBuilder {
	b.v.use = v
	return b
}

func (b *IdentifierBuilder) Type(v *CodeableConcept) *IdentifierBuilder {
	b.v.typ = v
	return b
}

func (b *IdentifierBuilder) System(v *Uri) *IdentifierBuilder {
	b.v.system = v
	return b
}

func (b *IdentifierBuilder) Value(v *String) *IdentifierBuilder {
	b.v.value = v
	return b
}

func (b *IdentifierBuilder) Period(v *Period) *IdentifierBuilder {
	b.v.period = v
	return b
}

func (b *IdentifierBuilder) Assigner(v *Reference) *IdentifierBuilder {
	b.v.assigner = v
	return b
}

// Build validates the elements and returns a new Identifier. The returned error
// is a *ValidationError.
func (b *IdentifierBuilder) Build() (*Identifier, error) {
	v := b.v
	v.cloneLists()
	if err := v.validate(); err != nil {
		return nil, err
	}
	return &v, nil
}

// Reference is a reference from one resource to another.
type Reference struct {
	element
	reference  *String
	typ        *Uri
	identifier *Identifier
	display    *String
}

func (r *Reference) TypeName() string {
	return "Reference"
}

func (r *Reference) Reference() *String {
	return r.reference
}

func (r *Reference) Type() *Uri {
	return r.typ
}

func (r *Reference) Identifier() *Identifier {
	return r.identifier
}

func (r *Reference) Display() *String {
	return r.display
}

func (r *Reference) Accept(name string, index int, v Visitor) {
	if r == nil {
		return
	}
	visit(name, index, r, v, func() {
		r.acceptElement(v)
		r.reference.Accept("reference", -1, v)
		r.typ.Accept("type", -1, v)
		r.identifier.Accept("identifier", -1, v)
		r.display.Accept("display", -1, v)
	})
}

func (r *Reference) hasChildren() bool {
	return r.hasExtensions() ||
		r.reference != nil ||
		r.typ != nil ||
		r.identifier != nil ||
		r.display != nil
}

func (r *Reference) cloneLists() {
	r.element.cloneLists()
}

func (r *Reference) validate() error {
	return check(
		r.element.validate("Reference"),
		requireChildren("Reference", r.hasChildren()),
	)
}

// ToBuilder returns a builder initialized with the elements of r.
func (r *Reference) ToBuilder() *ReferenceBuilder {
	b := &ReferenceBuilder{v: *r}
	b.v.cloneLists()
	return b
}

// ReferenceBuilder builds Reference values.
type ReferenceBuilder struct {
	v Reference
}

func NewReferenceBuilder() *ReferenceBuilder {
	return &ReferenceBuilder{}
}

func (b *ReferenceBuilder) ID(id string) *ReferenceBuilder {
	b.v.id = id
	return b
}

func (b *ReferenceBuilder) Extension(v ...*Extension) *ReferenceBuilder {
	b.v.extension = append(b.v.extension, v...)
	return b
}

func (b *ReferenceBuilder) SetExtension(v []*Extension) *ReferenceBuilder {
	b.v.extension = slices.Clone(v)
	return b
}

func (b *ReferenceBuilder) Reference(v *String) *ReferenceBuilder {
	b.v.reference = v
	return b
}

func (b *ReferenceBuilder) Type(v *Uri) *ReferenceBuilder {
	b.v.typ = v
	return b
}

func (b *ReferenceBuilder) Identifier(v *Identifier) *ReferenceBuilder {
	b.v.identifier = v
	return b
}

func (b *ReferenceBuilder) Display(v *String) *ReferenceBuilder {
	b.v.display = v
	return b
}

// Build validates the elements and returns a new Reference. The returned error
// is a *ValidationError.
func (b *ReferenceBuilder) Build() (*Reference, error) {
	v := b.v
	v.cloneLists()
	if err := v.validate(); err != nil {
		return nil, err
	}
	return &v, nil
}

// Period is a time period defined by a start and end date/time.
type Period struct {
	element
	start *DateTime
	end   *DateTime
}

func (p *Period) TypeName() string {
	return "Period"
}

func (p *Period) Start() *DateTime {
	return p.start
}

func (p *Period) End() *DateTime {
	return p.end
}

func (p *Period) Accept(name string, index int, v Visitor) {
	if p == nil {
		return
	}
	visit(name, index, p, v, func() {
		p.acceptElement(v)
		p.start.Accept("start", -1, v)
		p.end.Accept("end", -1, v)
	})
}

func (p *Period) hasChildren() bool {
	return p.hasExtensions() ||
		p.start != nil ||
		p.end != nil
}

func (p *Period) cloneLists() {
	p.element.cloneLists()
}

func (p *Period) validate() error {
	return check(
		p.element.validate("Period"),
		requireChildren("Period", p.hasChildren()),
	)
}

// ToBuilder returns a builder initialized with the elements of p.
func (p *Period) ToBuilder() *PeriodBuilder {
	b := &PeriodBuilder{v: *p}
	b.v.cloneLists()
	return b
}

// PeriodBuilder builds Period values.
type PeriodBuilder struct {
	v Period
}

func NewPeriodBuilder() *PeriodBuilder {
	return &PeriodBuilder{}
}

func (b *PeriodBuilder) ID(id string) *PeriodBuilder {
	b.v.id = id
	return b
}

func (b *PeriodBuilder) Extension(v ...*Extension) *PeriodBuilder {
	b.v.extension = append(b.v.extension, v...)
	return b
}

func (b *PeriodBuilder) SetExtension(v []*Extension) *PeriodBuilder {
	b.v.extension = slices.Clone(v)
	return b
}

func (b *PeriodBuilder) Start(v *DateTime) *PeriodBuilder {
	b.v.start = v
	return b
}

func (b *PeriodBuilder) End(v *DateTime) *PeriodBuilder {
	b.v.end = v
	return b
}

// Build validates the elements and returns a new Period. The returned error
// is a *ValidationError.
func (b *PeriodBuilder) Build() (*Period, error) {
	v := b.v
	v.cloneLists()
	if err := v.validate(); err != nil {
		return nil, err
	}
	return &v, nil
}

type Quantity struct {
	element
	value      *Decimal
	comparator *Code
	unit       *String
	system     *Uri
	code       *Code
}

func (q *Quantity) TypeName() string {
	return "Quantity"
}

func (q *Quantity) Value() *Decimal {
	return q.value
}

func (q *Quantity) Comparator() *Code {
	return q.comparator
}

func (q *Quantity) Unit() *String {
	return q.unit
}

func (q *Quantity) System() *Uri {
	return q.system
}

func (q *Quantity) Code() *Code {
	return q.code
}

func (q *Quantity) Accept(name string, index int, v Visitor) {
	if q == nil {
		return
	}
	visit(name, index, q, v, func() {
		q.acceptElement(v)
		q.value.Accept("value", -1, v)
		q.comparator.Accept("comparator", -1, v)
		q.unit.Accept("unit", -1, v)
		q.system.Accept("system", -1, v)
		q.code.Accept("code", -1, v)
	})
}

func (q *Quantity) hasChildren() bool {
	return q.hasExtensions() ||
		q.value != nil ||
		q.comparator != nil ||
		q.unit != nil ||
		q.system != nil ||
		q.code != nil
}

func (q *Quantity) cloneLists() {
	q.element.cloneLists()
}

func (q *Quantity) validate() error {
	return check(
		checkCode("Quantity", "comparator", q.comparator, quantityComparatorCodes),
		q.element.validate("Quantity"),
		requireChildren("Quantity", q.hasChildren()),
	)
}

// ToBuilder returns a builder initialized with the elements of q.
func (q *Quantity) ToBuilder() *QuantityBuilder {
	b := &QuantityBuilder{v: *q}
	b.v.cloneLists()
	return b
}

// QuantityBuilder builds Quantity values.
type QuantityBuilder struct {
	v Quantity
}

func NewQuantityBuilder() *QuantityBuilder {
	return &QuantityBuilder{}
}

func (b *QuantityBuilder) ID(id string) *QuantityBuilder {
	b.v.id = id
	return b
}

func (b *QuantityBuilder) Extension(v ...*Extension) *QuantityBuilder {
	b.v.extension = append(b.v.extension, v...)
	return b
}

func (b *QuantityBuilder) SetExtension(v []*Extension) *QuantityBuilder {
	b.v.extension = slices.Clone(v)
	return b
}

func (b *QuantityBuilder) Value(v *Decimal) *QuantityBuilder {
	b.v.value = v
	return b
}

func (b *QuantityBuilder) Comparator(v *Code) *QuantityBuilder {
	b.v.comparator = v
	return b
}

func (b *QuantityBuilder) Unit(v *String) *QuantityBuilder {
	b.v.unit = v
	return b
}

func (b *QuantityBuilder) System(v *Uri) *QuantityBuilder {
	b.v.system = v
	return b
}

func (b *QuantityBuilder) Code(v *Code) *QuantityBuilder {
	b.v.code = v
	return b
}

// Build validates the elements and returns a new Quantity. The returned error
// is a *ValidationError.
func (b *QuantityBuilder) Build() (*Quantity, error) {
	v := b.v
	v.cloneLists()
	if err := v.validate(); err != nil {
		return nil, err
	}
	return &v, nil
}

// Range is a set of ordered quantities defined by a low and high limit.
type Range struct {
	element
	low  *Quantity
	high *Quantity
}

func (r *Range) TypeName() string {
	return "Range"
}

func (r *Range) Low() *Quantity {
	return r.low
}

func (r *Range) High() *Quantity {
	return r.high
}

func (r *Range) Accept(name string, index int, v Visitor) {
	if r == nil {
		return
	}
	visit(name, index, r, v, func() {
		r.acceptElement(v)
		r.low.Accept("low", -1, v)
		r.high.Accept("high", -1, v)
	})
}

func (r *Range) hasChildren() bool {
	return r.hasExtensions() ||
		r.low != nil ||
		r.high != nil
}

func (r *Range) cloneLists() {
	r.element.cloneLists()
}

func (r *Range) validate() error {
	return check(
		r.element.validate("Range"),
		requireChildren("Range", r.hasChildren()),
	)
}

// ToBuilder returns a builder initialized with the elements of r.
func (r *Range) ToBuilder() *RangeBuilder {
	b := &RangeBuilder{v: *r}
	b.v.cloneLists()
	return b
}

// RangeBuilder builds Range values.
type RangeBuilder struct {
	v Range
}

func NewRangeBuilder() *RangeBuilder {
	return &RangeBuilder{}
}

func (b *RangeBuilder) ID(id string) *RangeBuilder {
	b.v.id = id
	return b
}

func (b *RangeBuilder) Extension(v ...*Extension) *RangeBuilder {
	b.v.extension = append(b.v.extension, v...)
	return b
}

func (b *RangeBuilder) SetExtension(v []*Extension) *RangeBuilder {
	b.v.extension = slices.Clone(v)
	return b
}

func (b *RangeBuilder) Low(v *Quantity) *RangeBuilder {
	b.v.low = v
	return b
}

func (b *RangeBuilder) High(v *Quantity) *RangeBuilder {
	b.v.high = v
	return b
}

// Build validates the elements and returns a new Range. The returned error
// is a *ValidationError.
func (b *RangeBuilder) Build() (*Range, error) {
	v := b.v
	v.cloneLists()
	if err := v.validate(); err != nil {
		return nil, err
	}
	return &v, nil
}

// Ratio is a relationship of two quantity values.
type Ratio struct {
	element
	numerator   *Quantity
	denominator *Quantity
}

func (r *Ratio) TypeName() string {
	return "Ratio"
}

func (r *Ratio) Numerator() *Quantity {
	return r.numerator
}

func (r *Ratio) Denominator() *Quantity {
	return r.denominator
}

func (r *Ratio) Accept(name string, index int, v Visitor) {
	if r == nil {
		return
	}
	visit(name, index, r, v, func() {
		r.acceptElement(v)
		r.numerator.Accept("numerator", -1, v)
		r.denominator.Accept("denominator", -1, v)
	})
}

func (r *Ratio) hasChildren() bool {
	return r.hasExtensions() ||
		r.numerator != nil ||
		r.denominator != nil
}

func (r *Ratio) cloneLists() {
	r.element.cloneLists()
}

func (r *Ratio) validate() error {
	return check(
		r.element.validate("Ratio"),
		requireChildren("Ratio", r.hasChildren()),
	)
}

// ToBuilder returns a builder initialized with the elements of r.
func (r *Ratio) ToBuilder() *RatioBuilder {
	b := &RatioBuilder{v: *r}
	b.v.cloneLists()
	return b
}

// RatioBuilder builds Ratio values.
type RatioBuilder struct {
	v Ratio
}

func NewRatioBuilder() *RatioBuilder {
	return &RatioBuilder{}
}

func (b *RatioBuilder) ID(id string) *RatioBuilder {
	b.v.id = id
	return b
}

func (b *RatioBuilder) Extension(v ...*Extension) *RatioBuilder {
	b.v.extension = append(b.v.extension, v...)
	return b
}

func (b *RatioBuilder) SetExtension(v []*Extension) *RatioBuilder {
	b.v.extension = slices.Clone(v)
	return b
}

func (b *RatioBuilder) Numerator(v *Quantity) *RatioBuilder {
	b.v.numerator = v
	return b
}

func (b *RatioBuilder) Denominator(v *Quantity) *RatioBuilder {
	b.v.denominator = v
	return b
}

// Build validates the elements and returns a new Ratio. The returned error
// is a *ValidationError.
func (b *RatioBuilder) Build() (*Ratio, error) {
	v := b.v
	v.cloneLists()
	if err := v.validate(); err != nil {
		return nil, err
	}
	return &v, nil
}

// Attachment is content in a format defined elsewhere.
type Attachment struct {
	element
	contentType *Code
	language    *Code
	data        *Base64Binary
	url         *Url
	size        *UnsignedInt
	hash        *Base64Binary
	title       *String
	creation    *DateTime
}

func (a *Attachment) TypeName() string {
	return "Attachment"
}

func (a *Attachment) ContentType() *Code {
	return a.contentType
}

func (a *Attachment) Language() *Code {
	return a.language
}

func (a *Attachment) Data() *Base64Binary {
	return a.data
}

func (a *Attachment) URL() *Url {
	return a.url
}

func (a *Attachment) Size() *UnsignedInt {
	return a.size
}

func (a *Attachment) Hash() *Base64Binary {
	return a.hash
}

func (a *Attachment) Title() *String {
	return a.title
}

func (a *Attachment) Creation() *DateTime {
	return a.creation
}

func (a *Attachment) Accept(name string, index int, v Visitor) {
	if a == nil {
		return
	}
	visit(name, index, a, v, func() {
		a.acceptElement(v)
		a.contentType.Accept("contentType", -1, v)
		a.language.Accept("language", -1, v)
		a.data.Accept("data", -1, v)
		a.url.Accept("url", -1, v)
		a.size.Accept("size", -1, v)
		a.hash.Accept("hash", -1, v)
		a.title.Accept("title", -1, v)
		a.creation.Accept("creation", -1, v)
	})
}

func (a *Attachment) hasChildren() bool {
	return a.hasExtensions() ||
		a.contentType != nil ||
		a.language != nil ||
		a.data != nil ||
		a.url != nil ||
		a.size != nil ||
		a.hash != nil ||
		a.title != nil ||
		a.creation != nil
}

func (a *Attachment) cloneLists() {
	a.element.cloneLists()
}

func (a *Attachment) validate() error {
	return check(
		a.element.validate("Attachment"),
		requireChildren("Attachment", a.hasChildren()),
	)
}

// ToBuilder returns a builder initialized with the elements of a.
func (a *Attachment) ToBuilder() *AttachmentBuilder {
	b := &AttachmentBuilder{v: *a}
	b.v.cloneLists()
	return b
}

// AttachmentBuilder builds Attachment values.
type AttachmentBuilder struct {
	v Attachment
}

func NewAttachmentBuilder() *AttachmentBuilder {
	return &AttachmentBuilder{}
}

func (b *AttachmentBuilder) ID(id string) *AttachmentBuilder {
	b.v.id = id
	return b
}

func (b *AttachmentBuilder) Extension(v ...*Extension) *AttachmentBuilder {
	b.v.extension = append(b.v.extension, v...)
	return b
}

func (b *AttachmentBuilder) SetExtension(v []*Extension) *AttachmentBuilder {
	b.v.extension = slices.Clone(v)
	return b
}

func (b *AttachmentBuilder) ContentType(v *Code) *AttachmentBuilder {
	b.v.contentType = v
	return b
}

func (b *AttachmentBuilder) Language(v *Code) *AttachmentBuilder {
	b.v.language = v
	return b
}

func (b *AttachmentBuilder) Data(v *Base64Binary) *AttachmentBuilder {
	b.v.data = v
	return b
}

func (b *AttachmentBuilder) URL(v *Url) *AttachmentBuilder {
	b.v.url = v
	return b
}

func (b *AttachmentBuilder) Size(v *UnsignedInt) *AttachmentBuilder {
	b.v.size = v
	return b
}

func (b *AttachmentBuilder) Hash(v *Base64Binary) *AttachmentBuilder {
	b.v.hash = v
	return b
}

func (b *AttachmentBuilder) Title(v *String) *AttachmentBuilder {
	b.v.title = v
	return b
}

func (b *AttachmentBuilder) Creation(v *DateTime) *AttachmentBuilder {
	b.v.creation = v
	return b
}

// Build validates the elements and returns a new Attachment. The returned error
// is a *ValidationError.
func (b *AttachmentBuilder) Build() (*Attachment, error) {
	v := b.v
	v.cloneLists()
	if err := v.validate(); err != nil {
		return nil, err
	}
	return &v, nil
}

// Meta holds the metadata about a resource.
type Meta struct {
	element
	versionId   *Id
	lastUpdated *Instant
	source      *Uri
	profile     []*Canonical
	security    []*Coding
	tag         []*Coding
}

func (m *Meta) TypeName() string {
	return "Meta"
}

func (m *Meta) VersionID() *Id {
	return m.versionId
}

func (m *Meta) LastUpdated() *Instant {
	return m.lastUpdated
}

func (m *Meta) Source() *Uri {
	return m.source
}

func (m *Meta) Profile() []*Canonical {
	return slices.Clone(m.profile)
}

func (m *Meta) Security() []*Coding {
	return slices.Clone(m.security)
}

func (m *Meta) Tag() []*Coding {
	return slices.Clone(m.tag)
}

func (m *Meta) Accept(name string, index int, v Visitor) {
	if m == nil {
		return
	}
	visit(name, index, m, v, func() {
		m.acceptElement(v)
		m.versionId.Accept("versionId", -1, v)
		m.lastUpdated.Accept("lastUpdated", -1, v)
		m.source.Accept("source", -1, v)
		acceptList("profile", m.profile, v)
		acceptList("security", m.security, v)
		acceptList("tag", m.tag, v)
	})
}

func (m *Meta) hasChildren() bool {
	return m.hasExtensions() ||
		m.versionId != nil ||
		m.lastUpdated != nil ||
		m.source != nil ||
		len(m.profile) > 0 ||
		len(m.security) > 0 ||
		len(m.tag) > 0
}

func (m *Meta) cloneLists() {
	m.element.cloneLists()
	m.profile = slices.Clone(m.profile)
	m.security = slices.Clone(m.security)
	m.tag = slices.Clone(m.tag)
}

func (m *Meta) validate() error {
	return check(
		checkList("Meta", "profile", m.profile),
		checkList("Meta", "security", m.security),
		checkList("Meta", "tag", m.tag),
		m.element.validate("Meta"),
		requireChildren("Meta", m.hasChildren()),
	)
}

// ToBuilder returns a builder initialized with the elements of m.
func (m *Meta) ToBuilder() *MetaBuilder {
	b := &MetaBuilder{v: *m}
	b.v.cloneLists()
	return b
}

// MetaBuilder builds Meta values.
type MetaBuilder struct {
	v Meta
}

func NewMetaBuilder() *MetaBuilder {
	return &MetaBuilder{}
}

func (b *MetaBuilder) ID(id string) *MetaBuilder {
	b.v.id = id
	return b
}

func (b *MetaBuilder) Extension(v ...*Extension) *MetaBuilder {
	b.v.extension = append(b.v.extension, v...)
	return b
}

func (b *MetaBuilder) SetExtension(v []*Extension) *MetaBuilder {
	b.v.extension = slices.Clone(v)
	return b
}

func (b *MetaBuilder) VersionID(v *Id) *MetaBuilder {
	b.v.versionId = v
	return b
}

func (b *MetaBuilder) LastUpdated(v *Instant) *MetaBuilder {
	b.v.lastUpdated = v
	return b
}

func (b *MetaBuilder) Source(v *Uri) *MetaBuilder {
	b.v.source = v
	return b
}

func (b *MetaBuilder) Profile(v ...*Canonical) *MetaBuilder {
	b.v.profile = append(b.v.profile, v...)
	return b
}

func (b *MetaBuilder) SetProfile(v []*Canonical) *MetaBuilder {
	b.v.profile = slices.Clone(v)
	return b
}

func (b *MetaBuilder) Security(v ...*Coding) *MetaBuilder {
	b.v.security = append(b.v.security, v...)
	return b
}

func (b *MetaBuilder) SetSecurity(v []*Coding) *MetaBuilder {
	b.v.security = slices.Clone(v)
	return b
}

func (b *MetaBuilder) Tag(v ...*Coding) *MetaBuilder {
	b.v.tag = append(b.v.tag, v...)
	return b
}

func (b *MetaBuilder) SetTag(v []*Coding) *MetaBuilder {
	b.v.tag = slices.Clone(v)
	return b
}

// Build validates the elements and returns a new Meta. The returned error
// is a *ValidationError.
func (b *MetaBuilder) Build() (*Meta, error) {
	v := b.v
	v.cloneLists()
	if err := v.validate(); err != nil {
		return nil, err
	}
	return &v, nil
}

// Narrative is a human-readable summary of a resource. Div holds the XHTML content.
type Narrative struct {
	element
	status *Code
	div    string
}

func (n *Narrative) TypeName() string {
	return "Narrative"
}

func (n *Narrative) Status() *Code {
	return n.status
}

func (n *Narrative) Div() string {
	return n.div
}

func (n *Narrative) Accept(name string, index int, v Visitor) {
	if n == nil {
		return
	}
	visit(name, index, n, v, func() {
		n.acceptElement(v)
		n.status.Accept("status", -1, v)
		if n.div != "" {
			v.VisitValue("div", -1, n.div)
		}
	})
}

func (n *Narrative) hasChildren() bool {
	return n.hasExtensions() ||
		n.status != nil ||
		n.div != ""
}

func (n *Narrative) cloneLists() {
	n.element.cloneLists()
}

func (n *Narrative) validate() error {
	return check(
		requireElement("Narrative", "status", n.status),
		requireValue("Narrative", "div", n.div != ""),
		checkCode("Narrative", "status", n.status, narrativeStatusCodes),
		checkDiv(n.div),
		n.element.validate("Narrative"),
		requireChildren("Narrative", n.hasChildren()),
	)
}

// ToBuilder returns a builder initialized with the elements of n.
func (n *Narrative) ToBuilder() *NarrativeBuilder {
	b := &NarrativeBuilder{v: *n}
	b.v.cloneLists()
	return b
}

// NarrativeBuilder builds Narrative values.
type NarrativeBuilder struct {
	v Narrative
}

// NewNarrativeBuilder returns a builder for Narrative with the required elements set.
func NewNarrativeBuilder(status *Code, div string) *NarrativeBuilder {
	b := &NarrativeBuilder{}
	b.v.status = status
	b.v.div = div
	return b
}

func (b *NarrativeBuilder) ID(id string) *NarrativeBuilder {
	b.v.id = id
	return b
}

func (b *NarrativeBuilder) Extension(v ...*Extension) *NarrativeBuilder {
	b.v.extension = append(b.v.extension, v...)
	return b
}

func (b *NarrativeBuilder) SetExtension(v []*Extension) *NarrativeBuilder {
	b.v.extension = slices.Clone(v)
	return b
}

func (b *NarrativeBuilder) Status(v *Code) *NarrativeBuilder {
	b.v.status = v
	return b
}

func (b *NarrativeBuilder) Div(v string) *NarrativeBuilder {
	b.v.div = v
	return b
}

// Build validates the elements and returns a new Narrative. The returned error
// is a *ValidationError.
func (b *NarrativeBuilder) Build() (*Narrative, error) {
	v := b.v
	v.cloneLists()
	if err := v.validate(); err != nil {
		return nil, err
	}
	return &v, nil
}
