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
	"fmt"
	"regexp"
	"slices"
	"strings"
)

var (
	ErrMissingRequired  = errors.New("missing required element")
	ErrNilItem          = errors.New("nil item in repeated element")
	ErrInvalidChoice    = errors.New("invalid choice type")
	ErrInvalidReference = errors.New("invalid reference target")
	ErrInvalidCode      = errors.New("code not in required value set")
	ErrInvalidValue     = errors.New("invalid value")
	ErrNoChildren       = errors.New("element has neither a value nor children")
)

// ValidationError is returned by the Build methods of all builders. Err is
// one of the Err* sentinel errors, so callers can use errors.Is.
type ValidationError struct {
	// Type is the FHIR type or element path of the value being built, e.g.
	// "MeasureReport" or "MeasureReport.group.stratifier".
	Type string
	// Element is the name of the offending child element. It is empty for
	// violations of the element as a whole.
	Element string
	Err     error
	Detail  string
}

func (e *ValidationError) Error() string {
	path := e.Type
	if e.Element != "" {
		path += "." + e.Element
	}
	if e.Detail != "" {
		return fmt.Sprintf("%s: %v: %s", path, e.Err, e.Detail)
	}
	return fmt.Sprintf("%s: %v", path, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// check returns the first non-nil error.
func check(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func invalidValue(typeName, elem, format string, args ...any) error {
	return &ValidationError{Type: typeName, Element: elem, Err: ErrInvalidValue, Detail: fmt.Sprintf(format, args...)}
}

func nilItem(typeName, elem string, index int) error {
	return &ValidationError{Type: typeName, Element: elem, Err: ErrNilItem, Detail: fmt.Sprintf("index %d", index)}
}

func requireValue(typeName, elem string, present bool) error {
	if present {
		return nil
	}
	return &ValidationError{Type: typeName, Element: elem, Err: ErrMissingRequired}
}

// populated is implemented by all data types and backbone elements.
type populated interface {
	hasChildren() bool
}

// requireElement checks that a required element is set and not a zero value
// created outside of a builder.
func requireElement(typeName, elem string, e Element) error {
	if isNil(e) {
		return &ValidationError{Type: typeName, Element: elem, Err: ErrMissingRequired}
	}
	if p, ok := e.(populated); ok && !p.hasChildren() {
		return &ValidationError{Type: typeName, Element: elem, Err: ErrMissingRequired,
			Detail: "empty " + e.TypeName()}
	}
	return nil
}

func requireChildren(typeName string, present bool) error {
	if present {
		return nil
	}
	return &ValidationError{Type: typeName, Err: ErrNoChildren}
}

func checkList[T any](typeName, elem string, list []*T) error {
	for i, e := range list {
		if e == nil {
			return nilItem(typeName, elem, i)
		}
		if p, ok := any(e).(populated); ok && !p.hasChildren() {
			return &ValidationError{Type: typeName, Element: elem, Err: ErrNoChildren,
				Detail: fmt.Sprintf("index %d", i)}
		}
	}
	return nil
}

func checkChoice(typeName, elem string, e Element, allowed ...string) error {
	if e == nil {
		return nil
	}
	if slices.Contains(allowed, e.TypeName()) {
		return nil
	}
	return &ValidationError{Type: typeName, Element: elem, Err: ErrInvalidChoice,
		Detail: fmt.Sprintf("got %s, expected one of %s", e.TypeName(), strings.Join(allowed, ", "))}
}

func checkCode(typeName, elem string, c *Code, allowed []string) error {
	if c == nil || !c.HasValue() {
		return nil
	}
	if slices.Contains(allowed, c.Value()) {
		return nil
	}
	return &ValidationError{Type: typeName, Element: elem, Err: ErrInvalidCode,
		Detail: fmt.Sprintf("%q is not one of %s", c.Value(), strings.Join(allowed, ", "))}
}

var referenceRegex = regexp.MustCompile(`^((https?)://([A-Za-z0-9\-\\.:%$]*/)+)?([A-Z][A-Za-z]+)/[A-Za-z0-9\-.]{1,64}(/_history/[A-Za-z0-9\-.]{1,64})?$`)

// referenceType returns the resource type a literal reference points to.
// Contained, urn and unparsable references yield an empty string.
func referenceType(reference string) string {
	if strings.HasPrefix(reference, "#") || strings.HasPrefix(reference, "urn:") {
		return ""
	}
	m := referenceRegex.FindStringSubmatch(reference)
	if m == nil {
		return ""
	}
	return m[4]
}

// checkReference verifies that ref points to one of the target resource
// types. Both the literal reference and the type element are checked.
func checkReference(typeName, elem string, ref *Reference, targets ...string) error {
	if ref == nil {
		return nil
	}
	if t := ref.Type(); t != nil && t.HasValue() && !slices.Contains(targets, t.Value()) {
		return &ValidationError{Type: typeName, Element: elem, Err: ErrInvalidReference,
			Detail: fmt.Sprintf("type %s is not one of %s", t.Value(), strings.Join(targets, ", "))}
	}
	if r := ref.Reference(); r != nil && r.HasValue() {
		if rt := referenceType(r.Value()); rt != "" && !slices.Contains(targets, rt) {
			return &ValidationError{Type: typeName, Element: elem, Err: ErrInvalidReference,
				Detail: fmt.Sprintf("%s is not one of %s", r.Value(), strings.Join(targets, ", "))}
		}
	}
	return nil
}

func checkReferences(typeName, elem string, refs []*Reference, targets ...string) error {
	for _, ref := range refs {
		if err := checkReference(typeName, elem, ref, targets...); err != nil {
			return err
		}
	}
	return nil
}

// choiceReference returns e as *Reference if it holds one.
func choiceReference(e Element) *Reference {
	r, _ := e.(*Reference)
	return r
}
