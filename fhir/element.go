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

// Package fhir contains an immutable object model for a subset of FHIR R4
// resources together with a small client for talking to FHIR servers.
//
// Model values are created through builders only. A builder validates the
// value on Build and returns the first violation it finds as a
// *ValidationError. Built values never change. Getters of repeated elements
// return copies, and a changed value is obtained by calling ToBuilder,
// modifying the builder and building again.
package fhir

import (
	"reflect"
	"slices"
)

// Element is implemented by every type of the object model.
type Element interface {
	// TypeName returns the FHIR type name of the element. Primitive types
	// use the lower case names of the FHIR specification.
	TypeName() string

	// Accept traverses the element with the visitor v. Name is the name of
	// the element in its parent and index the position inside a repeated
	// element or -1.
	Accept(name string, index int, v Visitor)

	ID() string
	Extension() []*Extension
}

// Resource is implemented by all resource types.
type Resource interface {
	Element

	// ResourceType returns the resource type, e.g. "MeasureReport".
	ResourceType() string

	Meta() *Meta

	// Constraints returns the invariants which have to hold for the resource.
	Constraints() []Constraint
}

type element struct {
	id        string
	extension []*Extension
}

// ID returns the id of the element used for internal references.
func (e *element) ID() string {
	return e.id
}

func (e *element) Extension() []*Extension {
	return slices.Clone(e.extension)
}

func (e *element) hasExtensions() bool {
	return len(e.extension) > 0
}

func (e *element) cloneLists() {
	e.extension = slices.Clone(e.extension)
}

func (e *element) validate(typeName string) error {
	return checkList(typeName, "extension", e.extension)
}

func (e *element) acceptElement(v Visitor) {
	if e.id != "" {
		v.VisitValue("id", -1, e.id)
	}
	acceptList("extension", e.extension, v)
}

type backboneElement struct {
	element
	modifierExtension []*Extension
}

func (e *backboneElement) ModifierExtension() []*Extension {
	return slices.Clone(e.modifierExtension)
}

func (e *backboneElement) hasExtensions() bool {
	return len(e.extension) > 0 || len(e.modifierExtension) > 0
}

func (e *backboneElement) cloneLists() {
	e.element.cloneLists()
	e.modifierExtension = slices.Clone(e.modifierExtension)
}

func (e *backboneElement) validate(typeName string) error {
	return check(
		e.element.validate(typeName),
		checkList(typeName, "modifierExtension", e.modifierExtension),
	)
}

func (e *backboneElement) acceptBackbone(v Visitor) {
	e.acceptElement(v)
	acceptList("modifierExtension", e.modifierExtension, v)
}

type resource struct {
	id            string
	meta          *Meta
	implicitRules *Uri
	language      *Code
}

// ID returns the logical id of the resource.
func (r *resource) ID() string {
	return r.id
}

func (r *resource) Meta() *Meta {
	return r.meta
}

func (r *resource) ImplicitRules() *Uri {
	return r.implicitRules
}

func (r *resource) Language() *Code {
	return r.language
}

func (r *resource) validate(typeName string) error {
	if r.id != "" && !idRegex.MatchString(r.id) {
		return invalidValue(typeName, "id", "invalid id %q", r.id)
	}
	return nil
}

func (r *resource) acceptResource(v Visitor) {
	if r.id != "" {
		v.VisitValue("id", -1, r.id)
	}
	r.meta.Accept("meta", -1, v)
	r.implicitRules.Accept("implicitRules", -1, v)
	r.language.Accept("language", -1, v)
}

type domainResource struct {
	resource
	text              *Narrative
	contained         []Resource
	extension         []*Extension
	modifierExtension []*Extension
}

func (r *domainResource) Text() *Narrative {
	return r.text
}

// Contained returns the inline resources of the resource.
func (r *domainResource) Contained() []Resource {
	return slices.Clone(r.contained)
}

func (r *domainResource) Extension() []*Extension {
	return slices.Clone(r.extension)
}

func (r *domainResource) ModifierExtension() []*Extension {
	return slices.Clone(r.modifierExtension)
}

func (r *domainResource) cloneLists() {
	r.contained = slices.Clone(r.contained)
	r.extension = slices.Clone(r.extension)
	r.modifierExtension = slices.Clone(r.modifierExtension)
}

func (r *domainResource) validate(typeName string) error {
	if err := r.resource.validate(typeName); err != nil {
		return err
	}
	for i, c := range r.contained {
		if isNil(c) {
			return nilItem(typeName, "contained", i)
		}
	}
	return check(
		checkList(typeName, "extension", r.extension),
		checkList(typeName, "modifierExtension", r.modifierExtension),
	)
}

func (r *domainResource) acceptDomainResource(v Visitor) {
	r.acceptResource(v)
	r.text.Accept("text", -1, v)
	acceptList("contained", r.contained, v)
	acceptList("extension", r.extension, v)
	acceptList("modifierExtension", r.modifierExtension, v)
}

// isNil reports whether e is nil or an interface holding a nil pointer.
func isNil(e Element) bool {
	if e == nil {
		return true
	}
	rv := reflect.ValueOf(e)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// choice drops typed nil pointers so that an unset choice element is always
// a nil interface.
func choice(e Element) Element {
	if isNil(e) {
		return nil
	}
	return e
}
