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
	"strconv"
	"strings"
)

// Visitor is called by Element.Accept for every element of a tree in
// document order.
//
// For each element Accept calls PreVisit first. If PreVisit returns false the
// element is skipped entirely. Otherwise VisitStart, Visit, the children,
// VisitEnd and PostVisit follow. Children are only visited if Visit returns
// true. Values which are not elements themselves, like the value of a
// primitive or the id of an element, are reported through VisitValue.
type Visitor interface {
	PreVisit(e Element) bool
	VisitStart(name string, index int, e Element)
	Visit(name string, index int, e Element) bool
	VisitValue(name string, index int, value any)
	VisitEnd(name string, index int, e Element)
	PostVisit(e Element)
}

// BaseVisitor implements Visitor by visiting everything and doing nothing.
// Embed it to implement only the methods needed.
type BaseVisitor struct{}

func (BaseVisitor) PreVisit(Element) bool           { return true }
func (BaseVisitor) VisitStart(string, int, Element) {}
func (BaseVisitor) Visit(string, int, Element) bool { return true }
func (BaseVisitor) VisitValue(string, int, any)     {}
func (BaseVisitor) VisitEnd(string, int, Element)   {}
func (BaseVisitor) PostVisit(Element)               {}

func visit(name string, index int, e Element, v Visitor, children func()) {
	if !v.PreVisit(e) {
		return
	}
	v.VisitStart(name, index, e)
	if v.Visit(name, index, e) {
		children()
	}
	v.VisitEnd(name, index, e)
	v.PostVisit(e)
}

func acceptList[T Element](name string, list []T, v Visitor) {
	for i, e := range list {
		e.Accept(name, i, v)
	}
}

// acceptChoice visits a choice element under its type specific name, e.g.
// amount[x] holding a Quantity is visited as amountQuantity.
func acceptChoice(name string, e Element, v Visitor) {
	if isNil(e) {
		return
	}
	e.Accept(ChoiceName(name, e), -1, v)
}

// ChoiceName returns the name of the choice element base holding e.
func ChoiceName(base string, e Element) string {
	t := e.TypeName()
	return base + strings.ToUpper(t[:1]) + t[1:]
}

// SkipChildren can be returned by a WalkFunc to skip the children of the
// current element.
var SkipChildren = errors.New("skip children")

// WalkContext describes the position of the walk. Exactly one of Element and
// Value is set.
type WalkContext struct {
	// Path is the FHIRPath like location, e.g. "MeasureReport.group[0].code".
	Path    string
	Name    string
	Index   int
	Depth   int
	Element Element
	Value   any
}

// WalkFunc is called by Walk for every element and value.
type WalkFunc func(ctx *WalkContext) error

// Walk traverses e depth-first and calls fn for every element and value. The
// walk stops at the first error returned by fn, which is returned by Walk.
func Walk(e Element, fn WalkFunc) error {
	if isNil(e) {
		return nil
	}
	w := &walker{fn: fn}
	e.Accept(rootName(e), -1, w)
	return w.err
}

func rootName(e Element) string {
	if r, ok := e.(Resource); ok {
		return r.ResourceType()
	}
	return e.TypeName()
}

type walker struct {
	BaseVisitor
	fn   WalkFunc
	path []string
	err  error
}

func segment(name string, index int) string {
	if index < 0 {
		return name
	}
	return name + "[" + strconv.Itoa(index) + "]"
}

func (w *walker) current() string {
	return strings.Join(w.path, ".")
}

func (w *walker) PreVisit(Element) bool {
	return w.err == nil
}

func (w *walker) VisitStart(name string, index int, _ Element) {
	w.path = append(w.path, segment(name, index))
}

func (w *walker) Visit(name string, index int, e Element) bool {
	err := w.fn(&WalkContext{Path: w.current(), Name: name, Index: index, Depth: len(w.path) - 1, Element: e})
	if errors.Is(err, SkipChildren) {
		return false
	}
	if err != nil {
		w.err = err
		return false
	}
	return true
}

func (w *walker) VisitValue(name string, index int, value any) {
	if w.err != nil {
		return
	}
	path := w.current() + "." + segment(name, index)
	if err := w.fn(&WalkContext{Path: path, Name: name, Index: index, Depth: len(w.path), Value: value}); err != nil && !errors.Is(err, SkipChildren) {
		w.err = err
	}
}

func (w *walker) VisitEnd(string, int, Element) {
	w.path = w.path[:len(w.path)-1]
}
