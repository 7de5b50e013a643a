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
	"encoding/base64"
	"fmt"
	"regexp"
	"slices"

	"github.com/shopspring/decimal"
)

var (
	codeRegex      = regexp.MustCompile(`^[^\s]+(\s[^\s]+)*$`)
	idRegex        = regexp.MustCompile(`^[A-Za-z0-9\-.]{1,64}$`)
	uriRegex       = regexp.MustCompile(`^\S+$`)
	canonicalRegex = regexp.MustCompile(`^\S+(\|\S+)?$`)
	dateTimeRegex  = regexp.MustCompile(`^(\d{4})(-(0[1-9]|1[012])(-(0[1-9]|[12]\d|3[01])(T([01]\d|2[0-3]):[0-5]\d:([0-5]\d|60)(\.\d+)?(Z|[+-]((0\d|1[0-3]):[0-5]\d|14:00))?)?)?)?$`)
	instantRegex   = regexp.MustCompile(`^(\d{4})-(0[1-9]|1[012])-(0[1-9]|[12]\d|3[01])T([01]\d|2[0-3]):[0-5]\d:([0-5]\d|60)(\.\d+)?(Z|[+-]((0\d|1[0-3]):[0-5]\d|14:00))$`)
)

// primitive is the common part of all primitive types. A primitive has an
// optional value and may carry an id and extensions like any other element.
type primitive[T any] struct {
	element
	value *T
}

// HasValue reports whether the primitive has a value. Primitives without a
// value carry extensions only.
func (p *primitive[T]) HasValue() bool {
	return p.value != nil
}

// Value returns the value of the primitive or the zero value of T if it has
// none.
func (p *primitive[T]) Value() T {
	if p.value == nil {
		var zero T
		return zero
	}
	return *p.value
}

func (p *primitive[T]) hasChildren() bool {
	return p.value != nil || p.hasExtensions()
}

func (p *primitive[T]) isPrimitive() {}

func (p *primitive[T]) accept(name string, index int, self Element, v Visitor) {
	visit(name, index, self, v, func() {
		p.acceptElement(v)
		if p.value != nil {
			v.VisitValue("value", -1, *p.value)
		}
	})
}

func (p primitive[T]) build(typeName string, validate func(T) error) (primitive[T], error) {
	p.cloneLists()
	if p.value != nil && validate != nil {
		if err := validate(*p.value); err != nil {
			return p, &ValidationError{Type: typeName, Element: "value", Err: ErrInvalidValue, Detail: err.Error()}
		}
	}
	return p, check(
		p.element.validate(typeName),
		requireChildren(typeName, p.hasChildren()),
	)
}

// primitiveElement is implemented by all primitive types.
type primitiveElement interface {
	Element
	HasValue() bool
	isPrimitive()
}

func matches(re *regexp.Regexp) func(string) error {
	return func(s string) error {
		if !re.MatchString(s) {
			return fmt.Errorf("%q does not match %s", s, re)
		}
		return nil
	}
}

func validateString(s string) error {
	if s == "" {
		return fmt.Errorf("empty string")
	}
	return nil
}

func validateUnsignedInt(i int32) error {
	if i < 0 {
		return fmt.Errorf("negative value %d", i)
	}
	return nil
}

func validateBase64(s string) error {
	if _, err := base64.StdEncoding.DecodeString(s); err != nil {
		return fmt.Errorf("invalid base64: %w", err)
	}
	return nil
}

// decimalString returns d with its scale, e.g. 1.50 instead of 1.5.
func decimalString(d decimal.Decimal) string {
	if d.Exponent() < 0 {
		return d.StringFixed(-d.Exponent())
	}
	return d.String()
}

// Base64Binary is a stream of bytes, base64 encoded.
type Base64Binary struct {
	primitive[string]
}

// Base64BinaryOf returns a Base64Binary holding v. It panics if v is not a valid base64Binary.
func Base64BinaryOf(v string) *Base64Binary {
	return must(NewBase64BinaryBuilder().Value(v).Build())
}

func (p *Base64Binary) TypeName() string {
	return "base64Binary"
}

func (p *Base64Binary) Accept(name string, index int, v Visitor) {
	if p == nil {
		return
	}
	p.accept(name, index, p, v)
}

func (p *Base64Binary) ToBuilder() *Base64BinaryBuilder {
	b := &Base64BinaryBuilder{v: p.primitive}
	b.v.cloneLists()
	return b
}

type Base64BinaryBuilder struct {
	v primitive[string]
}

func NewBase64BinaryBuilder() *Base64BinaryBuilder {
	return &Base64BinaryBuilder{}
}

func (b *Base64BinaryBuilder) ID(id string) *Base64BinaryBuilder {
	b.v.id = id
	return b
}

func (b *Base64BinaryBuilder) Extension(v ...*Extension) *Base64BinaryBuilder {
	b.v.extension = append(b.v.extension, v...)
	return b
}

func (b *Base64BinaryBuilder) SetExtension(v []*Extension) *Base64BinaryBuilder {
	b.v.extension = slices.Clone(v)
	return b
}

func (b *Base64BinaryBuilder) Value(v string) *Base64BinaryBuilder {
	b.v.value = &v
	return b
}

func (b *Base64BinaryBuilder) Build() (*Base64Binary, error) {
	v, err := b.v.build("base64Binary", validateBase64)
	if err != nil {
		return nil, err
	}
	return &Base64Binary{v}, nil
}

type Boolean struct {
	primitive[bool]
}

// BooleanOf returns a Boolean holding v. It panics if v is not a valid boolean.
func BooleanOf(v bool) *Boolean {
	return must(NewBooleanBuilder().Value(v).Build())
}

func (p *Boolean) TypeName() string {
	return "boolean"
}

func (p *Boolean) Accept(name string, index int, v Visitor) {
	if p == nil {
		return
	}
	p.accept(name, index, p, v)
}

func (p *Boolean) ToBuilder() *BooleanBuilder {
	b := &BooleanBuilder{v: p.primitive}
	b.v.cloneLists()
	return b
}

type BooleanBuilder struct {
	v primitive[bool]
}

func NewBooleanBuilder() *BooleanBuilder {
	return &BooleanBuilder{}
}

func (b *BooleanBuilder) ID(id string) *BooleanBuilder {
	b.v.id = id
	return b
}

func (b *BooleanBuilder) Extension(v ...*Extension) *BooleanBuilder {
	b.v.extension = append(b.v.extension, v...)
	return b
}

func (b *BooleanBuilder) SetExtension(v []*Extension) *BooleanBuilder {
	b.v.extension = slices.Clone(v)
	return b
}

func (b *BooleanBuilder) Value(v bool) *BooleanBuilder {
	b.v.value = &v
	return b
}

func (b *BooleanBuilder) Build() (*Boolean, error) {
	v, err := b.v.build("boolean", nil)
	if err != nil {
		return nil, err
	}
	return &Boolean{v}, nil
}

// Canonical is a URI that refers to a resource by its canonical URL, optionally followed by |version.
type Canonical struct {
	primitive[string]
}

// CanonicalOf returns a Canonical holding v. It panics if v is not a valid canonical.
func CanonicalOf(v string) *Canonical {
	return must(NewCanonicalBuilder().Value(v).Build())
}

func (p *Canonical) TypeName() string {
	return "canonical"
}

func (p *Canonical) Accept(name string, index int, v Visitor) {
	if p == nil {
		return
	}
	p.accept(name, index, p, v)
}

func (p *Canonical) ToBuilder() *CanonicalBuilder {
	b := &CanonicalBuilder{v: p.primitive}
	b.v.cloneLists()
	return b
}

type CanonicalBuilder struct {
	v primitive[string]
}

func NewCanonicalBuilder() *CanonicalBuilder {
	return &CanonicalBuilder{}
}

func (b *CanonicalBuilder) ID(id string) *CanonicalBuilder {
	b.v.id = id
	return b
}

func (b *CanonicalBuilder) Extension(v ...*Extension) *CanonicalBuilder {
	b.v.extension = append(b.v.extension, v...)
	return b
}

func (b *CanonicalBuilder) SetExtension(v []*Extension) *CanonicalBuilder {
	b.v.extension = slices.Clone(v)
	return b
}

func (b *CanonicalBuilder) Value(v string) *CanonicalBuilder {
	b.v.value = &v
	return b
}

func (b *CanonicalBuilder) Build() (*Canonical, error) {
	v, err := b.v.build("canonical", matches(canonicalRegex))
	if err != nil {
		return nil, err
	}
	return &Canonical{v}, nil
}

// Code is a string taken from a set of controlled strings defined elsewhere.
type Code struct {
	primitive[string]
}

// CodeOf returns a Code holding v. It panics if v is not a valid code.
func CodeOf(v string) *Code {
	return must(NewCodeBuilder().Value(v).Build())
}

func (p *Code) TypeName() string {
	return "code"
}

func (p *Code) Accept(name string, index int, v Visitor) {
	if p == nil {
		return
	}
	p.accept(name, index, p, v)
}

func (p *Code) ToBuilder() *CodeBuilder {
	b := &CodeBuilder{v: p.primitive}
	b.v.cloneLists()
	return b
}

type CodeBuilder struct {
	v primitive[string]
}

func NewCodeBuilder() *CodeBuilder {
	return &CodeBuilder{}
}

func (b *CodeBuilder) ID(id string) *CodeBuilder {
	b.v.id = id
	return b
}

func (b *CodeBuilder) Extension(v ...*Extension) *CodeBuilder {
	b.v.extension = append(b.v.extension, v...)
	return b
}

func (b *CodeBuilder) SetExtension(v []*Extension) *CodeBuilder {
	b.v.extension = slices.Clone(v)
	return b
}

func (b *CodeBuilder) Value(v string) *CodeBuilder {
	b.v.value = &v
	return b
}

func (b *CodeBuilder) Build() (*Code, error) {
	v, err := b.v.build("code", matches(codeRegex))
	if err != nil {
		return nil, err
	}
	return &Code{v}, nil
}

// DateTime is a date, date-time or partial date as used in human communication.
type DateTime struct {
	primitive[string]
}

// DateTimeOf returns a DateTime holding v. It panics if v is not a valid dateTime.
func DateTimeOf(v string) *DateTime {
	return must(NewDateTimeBuilder().Value(v).Build())
}

func (p *DateTime) TypeName() string {
	return "dateTime"
}

func (p *DateTime) Accept(name string, index int, v Visitor) {
	if p == nil {
		return
	}
	p.accept(name, index, p, v)
}

func (p *DateTime) ToBuilder() *DateTimeBuilder {
	b := &DateTimeBuilder{v: p.primitive}
	b.v.cloneLists()
	return b
}

type DateTimeBuilder struct {
	v primitive[string]
}

func NewDateTimeBuilder() *DateTimeBuilder {
	return &DateTimeBuilder{}
}

func (b *DateTimeBuilder) ID(id string) *DateTimeBuilder {
	b.v.id = id
	return b
}

func (b *DateTimeBuilder) Extension(v ...*Extension) *DateTimeBuilder {
	b.v.extension = append(b.v.extension, v...)
	return b
}

func (b *DateTimeBuilder) SetExtension(v []*Extension) *DateTimeBuilder {
	b.v.extension = slices.Clone(v)
	return b
}

func (b *DateTimeBuilder) Value(v string) *DateTimeBuilder {
	b.v.value = &v
	return b
}

func (b *DateTimeBuilder) Build() (*DateTime, error) {
	v, err := b.v.build("dateTime", matches(dateTimeRegex))
	if err != nil {
		return nil, err
	}
	return &DateTime{v}, nil
}

// Decimal is a rational number. The scale of the value is part of its identity, so 1.50 and 1.5
// are different values.
type Decimal struct {
	primitive[decimal.Decimal]
}

// DecimalOf returns a Decimal holding v. It panics if v is not a valid decimal.
func DecimalOf(v decimal.Decimal) *Decimal {
	return must(NewDecimalBuilder().Value(v).Build())
}

func (p *Decimal) TypeName() string {
	return "decimal"
}

func (p *Decimal) Accept(name string, index int, v Visitor) {
	if p == nil {
		return
	}
	p.accept(name, index, p, v)
}

func (p *Decimal) ToBuilder() *DecimalBuilder {
	b := &DecimalBuilder{v: p.primitive}
	b.v.cloneLists()
	return b
}

type DecimalBuilder struct {
	v primitive[decimal.Decimal]
}

func NewDecimalBuilder() *DecimalBuilder {
	return &DecimalBuilder{}
}

func (b *DecimalBuilder) ID(id string) *DecimalBuilder {
	b.v.id = id
	return b
}

func (b *DecimalBuilder) Extension(v ...*Extension) *DecimalBuilder {
	b.v.extension = append(b.v.extension, v...)
	return b
}

func (b *DecimalBuilder) SetExtension(v []*Extension) *DecimalBuilder {
	b.v.extension = slices.Clone(v)
	return b
}

func (b *DecimalBuilder) Value(v decimal.Decimal) *DecimalBuilder {
	b.v.value = &v
	return b
}

func (b *DecimalBuilder) Build() (*Decimal, error) {
	v, err := b.v.build("decimal", nil)
	if err != nil {
		return nil, err
	}
	return &Decimal{v}, nil
}

type Id struct {
	primitive[string]
}

// IdOf returns a Id holding v. It panics if v is not a valid id.
func IdOf(v string) *Id {
	return must(NewIdBuilder().Value(v).Build())
}

func (p *Id) TypeName() string {
	return "id"
}

func (p *Id) Accept(name string, index int, v Visitor) {
	if p == nil {
		return
	}
	p.accept(name, index, p, v)
}

func (p *Id) ToBuilder() *IdBuilder {
	b := &IdBuilder{v: p.primitive}
	b.v.cloneLists()
	return b
}

type IdBuilder struct {
	v primitive[string]
}

func NewIdBuilder() *IdBuilder {
	return &IdBuilder{}
}

func (b *IdBuilder) ID(id string) *IdBuilder {
	b.v.id = id
	return b
}

func (b *IdBuilder) Extension(v ...*Extension) *IdBuilder {
	b.v.extension = append(b.v.extension, v...)
	return b
}

func (b *IdBuilder) SetExtension(v []*Extension) *IdBuilder {
	b.v.extension = slices.Clone(v)
	return b
}

func (b *IdBuilder) Value(v string) *IdBuilder {
	b.v.value = &v
	return b
}

func (b *IdBuilder) Build() (*Id, error) {
	v, err := b.v.build("id", matches(idRegex))
	if err != nil {
		return nil, err
	}
	return &Id{v}, nil
}

// Instant is a point in time with at least second precision and a time zone.
type Instant struct {
	primitive[string]
}

// InstantOf returns a Instant holding v. It panics if v is not a valid instant.
func InstantOf(v string) *Instant {
	return must(NewInstantBuilder().Value(v).Build())
}

func (p *Instant) TypeName() string {
	return "instant"
}

func (p *Instant) Accept(name string, index int, v Visitor) {
	if p == nil {
		return
	}
	p.accept(name, index, p, v)
}

func (p *Instant) ToBuilder() *InstantBuilder {
	b := &InstantBuilder{v: p.primitive}
	b.v.cloneLists()
	return b
}

type InstantBuilder struct {
	v primitive[string]
}

func NewInstantBuilder() *InstantBuilder {
	return &InstantBuilder{}
}

func (b *InstantBuilder) ID(id string) *InstantBuilder {
	b.v.id = id
	return b
}

func (b *InstantBuilder) Extension(v ...*Extension) *InstantBuilder {
	b.v.extension = append(b.v.extension, v...)
	return b
}

func (b *InstantBuilder) SetExtension(v []*Extension) *InstantBuilder {
	b.v.extension = slices.Clone(v)
	return b
}

func (b *InstantBuilder) Value(v string) *InstantBuilder {
	b.v.value = &v
	return b
}

func (b *InstantBuilder) Build() (*Instant, error) {
	v, err := b.v.build("instant", matches(instantRegex))
	if err != nil {
		return nil, err
	}
	return &Instant{v}, nil
}

type Integer struct {
	primitive[int32]
}

// IntegerOf returns a Integer holding v. It panics if v is not a valid integer.
func IntegerOf(v int32) *Integer {
	return must(NewIntegerBuilder().Value(v).Build())
}

func (p *Integer) TypeName() string {
	return "integer"
}

func (p *Integer) Accept(name string, index int, v Visitor) {
	if p == nil {
		return
	}
	p.accept(name, index, p, v)
}

func (p *Integer) ToBuilder() *IntegerBuilder {
	b := &IntegerBuilder{v: p.primitive}
	b.v.cloneLists()
	return b
}

type IntegerBuilder struct {
	v primitive[int32]
}

func NewIntegerBuilder() *IntegerBuilder {
	return &IntegerBuilder{}
}

func (b *IntegerBuilder) ID(id string) *IntegerBuilder {
	b.v.id = id
	return b
}

func (b *IntegerBuilder) Extension(v ...*Extension) *IntegerBuilder {
	b.v.extension = append(b.v.extension, v...)
	return b
}

func (b *IntegerBuilder) SetExtension(v []*Extension) *IntegerBuilder {
	b.v.extension = slices.Clone(v)
	return b
}

func (b *IntegerBuilder) Value(v int32) *IntegerBuilder {
	b.v.value = &v
	return b
}

func (b *IntegerBuilder) Build() (*Integer, error) {
	v, err := b.v.build("integer", nil)
	if err != nil {
		return nil, err
	}
	return &Integer{v}, nil
}

// String is a sequence of Unicode characters.
type String struct {
	primitive[string]
}

// StringOf returns a String holding v. It panics if v is not a valid string.
func StringOf(v string) *String {
	return must(NewStringBuilder().Value(v).Build())
}

func (p *String) TypeName() string {
	return "string"
}

func (p *String) Accept(name string, index int, v Visitor) {
	if p == nil {
		return
	}
	p.accept(name, index, p, v)
}

func (p *String) ToBuilder() *StringBuilder {
	b := &StringBuilder{v: p.primitive}
	b.v.cloneLists()
	return b
}

type StringBuilder struct {
	v primitive[string]
}

func NewStringBuilder() *StringBuilder {
	return &StringBuilder{}
}

func (b *StringBuilder) ID(id string) *StringBuilder {
	b.v.id = id
	return b
}

func (b *StringBuilder) Extension(v ...*Extension) *StringBuilder {
	b.v.extension = append(b.v.extension, v...)
	return b
}

func (b *StringBuilder) SetExtension(v []*Extension) *StringBuilder {
	b.v.extension = slices.Clone(v)
	return b
}

func (b *StringBuilder) Value(v string) *StringBuilder {
	b.v.value = &v
	return b
}

func (b *StringBuilder) Build() (*String, error) {
	v, err := b.v.build("string", validateString)
	if err != nil {
		return nil, err
	}
	return &String{v}, nil
}

// UnsignedInt is a non-negative integer.
type UnsignedInt struct {
	primitive[int32]
}

// UnsignedIntOf returns a UnsignedInt holding v. It panics if v is not a valid unsignedInt.
func UnsignedIntOf(v int32) *UnsignedInt {
	return must(NewUnsignedIntBuilder().Value(v).Build())
}

func (p *UnsignedInt) TypeName() string {
	return "unsignedInt"
}

func (p *UnsignedInt) Accept(name string, index int, v Visitor) {
	if p == nil {
		return
	}
	p.accept(name, index, p, v)
}

func (p *UnsignedInt) ToBuilder() *UnsignedIntBuilder {
	b := &UnsignedIntBuilder{v: p.primitive}
	b.v.cloneLists()
	return b
}

type UnsignedIntBuilder struct {
	v primitive[int32]
}

func NewUnsignedIntBuilder() *UnsignedIntBuilder {
	return &UnsignedIntBuilder{}
}

func (b *UnsignedIntBuilder) ID(id string) *UnsignedIntBuilder {
	b.v.id = id
	return b
}

func (b *UnsignedIntBuilder) Extension(v ...*Extension) *UnsignedIntBuilder {
	b.v.extension = append(b.v.extension, v...)
	return b
}

func (b *UnsignedIntBuilder) SetExtension(v []*Extension) *UnsignedIntBuilder {
	b.v.extension = slices.Clone(v)
	return b
}

func (b *UnsignedIntBuilder) Value(v int32) *UnsignedIntBuilder {
	b.v.value = &v
	return b
}

func (b *UnsignedIntBuilder) Build() (*UnsignedInt, error) {
	v, err := b.v.build("unsignedInt", validateUnsignedInt)
	if err != nil {
		return nil, err
	}
	return &UnsignedInt{v}, nil
}

// Uri is a uniform resource identifier.
type Uri struct {
	primitive[string]
}

// UriOf returns a Uri holding v. It panics if v is not a valid uri.
func UriOf(v string) *Uri {
	return must(NewUriBuilder().Value(v).Build())
}

func (p *Uri) TypeName() string {
	return "uri"
}

func (p *Uri) Accept(name string, index int, v Visitor) {
	if p == nil {
		return
	}
	p.accept(name, index, p, v)
}

func (p *Uri) ToBuilder() *UriBuilder {
	b := &UriBuilder{v: p.primitive}
	b.v.cloneLists()
	return b
}

type UriBuilder struct {
	v primitive[string]
}

func NewUriBuilder() *UriBuilder {
	return &UriBuilder{}
}

func (b *UriBuilder) ID(id string) *UriBuilder {
	b.v.id = id
	return b
}

func (b *UriBuilder) Extension(v ...*Extension) *UriBuilder {
	b.v.extension = append(b.v.extension, v...)
	return b
}

func (b *UriBuilder) SetExtension(v []*Extension) *UriBuilder {
	b.v.extension = slices.Clone(v)
	return b
}

func (b *UriBuilder) Value(v string) *UriBuilder {
	b.v.value = &v
	return b
}

func (b *UriBuilder) Build() (*Uri, error) {
	v, err := b.v.build("uri", matches(uriRegex))
	if err != nil {
		return nil, err
	}
	return &Uri{v}, nil
}

// Url is a uniform resource locator.
type Url struct {
	primitive[string]
}

// UrlOf returns a Url holding v. It panics if v is not a valid url.
func UrlOf(v string) *Url {
	return must(NewUrlBuilder().Value(v).Build())
}

func (p *Url) TypeName() string {
	return "url"
}

func (p *Url) Accept(name string, index int, v Visitor) {
	if p == nil {
		return
	}
	p.accept(name, index, p, v)
}

func (p *Url) ToBuilder() *UrlBuilder {
	b := &UrlBuilder{v: p.primitive}
	b.v.cloneLists()
	return b
}

type UrlBuilder struct {
	v primitive[string]
}

func NewUrlBuilder() *UrlBuilder {
	return &UrlBuilder{}
}

func (b *UrlBuilder) ID(id string) *UrlBuilder {
	b.v.id = id
	return b
}

func (b *UrlBuilder) Extension(v ...*Extension) *UrlBuilder {
	b.v.extension = append(b.v.extension, v...)
	return b
}

func (b *UrlBuilder) SetExtension(v []*Extension) *UrlBuilder {
	b.v.extension = slices.Clone(v)
	return b
}

func (b *UrlBuilder) Value(v string) *UrlBuilder {
	b.v.value = &v
	return b
}

func (b *UrlBuilder) Build() (*Url, error) {
	v, err := b.v.build("url", matches(uriRegex))
	if err != nil {
		return nil, err
	}
	return &Url{v}, nil
}
