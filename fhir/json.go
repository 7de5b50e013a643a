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
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Marshal returns the FHIR JSON representation of e.
//
// Elements are written in definition order, resources start with their
// resourceType. The id and extensions of primitives are written into the
// underscore prefixed sibling property as defined by the FHIR JSON format.
func Marshal(e Element) ([]byte, error) {
	if isNil(e) {
		return []byte("null"), nil
	}
	w := &jsonWriter{}
	e.Accept("", -1, w)

	var buf bytes.Buffer
	if err := writeJSON(&buf, w.root); err != nil {
		return nil, fmt.Errorf("error while writing the JSON representation of %s: %w", e.TypeName(), err)
	}
	return buf.Bytes(), nil
}

// MarshalIndent is like Marshal but applies indentation like json.MarshalIndent.
func MarshalIndent(e Element, prefix, indent string) ([]byte, error) {
	b, err := Marshal(e)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, b, prefix, indent); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// jsonObject is a JSON object which keeps the order of its properties.
type jsonObject struct {
	keys   []string
	values map[string]any
}

func newJSONObject() *jsonObject {
	return &jsonObject{values: make(map[string]any)}
}

func (o *jsonObject) set(key string, v any) {
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = v
}

// setAt places v at index of the array property key, padding with nulls.
func (o *jsonObject) setAt(key string, index int, v any) {
	arr, _ := o.values[key].([]any)
	for len(arr) <= index {
		arr = append(arr, nil)
	}
	arr[index] = v
	o.set(key, arr)
}

type jsonFrame struct {
	obj       *jsonObject
	primitive bool
	value     any
}

type jsonWriter struct {
	BaseVisitor
	stack []*jsonFrame
	root  any
}

func (w *jsonWriter) VisitStart(_ string, _ int, e Element) {
	f := &jsonFrame{obj: newJSONObject()}
	if _, ok := e.(primitiveElement); ok {
		f.primitive = true
	}
	if r, ok := e.(Resource); ok {
		f.obj.set("resourceType", r.ResourceType())
	}
	w.stack = append(w.stack, f)
}

func (w *jsonWriter) VisitValue(name string, _ int, value any) {
	f := w.stack[len(w.stack)-1]
	if f.primitive && name == "value" {
		f.value = jsonValue(value)
		return
	}
	f.obj.set(name, jsonValue(value))
}

func (w *jsonWriter) VisitEnd(name string, index int, _ Element) {
	f := w.stack[len(w.stack)-1]
	w.stack = w.stack[:len(w.stack)-1]

	if len(w.stack) == 0 {
		if f.primitive {
			w.root = f.value
		} else {
			w.root = f.obj
		}
		return
	}

	parent := w.stack[len(w.stack)-1].obj
	if !f.primitive {
		if index < 0 {
			parent.set(name, f.obj)
		} else {
			parent.setAt(name, index, f.obj)
		}
		return
	}

	var ext any
	if len(f.obj.keys) > 0 {
		ext = f.obj
	}
	if index < 0 {
		if f.value != nil {
			parent.set(name, f.value)
		}
		if ext != nil {
			parent.set("_"+name, ext)
		}
		return
	}
	parent.setAt(name, index, f.value)
	parent.setAt("_"+name, index, ext)
}

func jsonValue(v any) any {
	if d, ok := v.(decimal.Decimal); ok {
		return json.Number(decimalString(d))
	}
	return v
}

func allNull(arr []any) bool {
	for _, v := range arr {
		if v != nil {
			return false
		}
	}
	return true
}

func writeJSON(buf *bytes.Buffer, v any) error {
	switch v := v.(type) {
	case *jsonObject:
		buf.WriteByte('{')
		first := true
		for _, key := range v.keys {
			value := v.values[key]
			if arr, ok := value.([]any); ok && allNull(arr) {
				continue
			}
			if !first {
				buf.WriteByte(',')
			}
			first = false
			if err := writeScalar(buf, key); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := writeJSON(buf, value); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
		return nil
	case []any:
		buf.WriteByte('[')
		for i, e := range v {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, e); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil
	default:
		return writeScalar(buf, v)
	}
}

// writeScalar writes v without escaping HTML characters, so narratives stay
// readable.
func writeScalar(buf *bytes.Buffer, v any) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	// Encode terminates each value with a newline
	buf.Truncate(buf.Len() - 1)
	return nil
}
