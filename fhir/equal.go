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
	"fmt"
	"hash/fnv"
	"io"
	"reflect"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/shopspring/decimal"
)

var equalOptions = []cmp.Option{
	cmp.Exporter(func(reflect.Type) bool { return true }),
	cmpopts.EquateEmpty(),
	cmp.Comparer(func(a, b decimal.Decimal) bool {
		return a.Exponent() == b.Exponent() && a.Equal(b)
	}),
}

// Equal reports whether a and b are structurally equal. Two elements are
// equal if they have the same type and all their elements are equal,
// including ids and extensions. Decimals have to agree in value and scale.
// Absent and empty repeated elements are equal.
func Equal(a, b Element) bool {
	if isNil(a) || isNil(b) {
		return isNil(a) && isNil(b)
	}
	return cmp.Equal(a, b, equalOptions...)
}

// Diff returns a human readable report of the differences between a and b.
// It returns an empty string if both are equal.
func Diff(a, b Element) string {
	return cmp.Diff(a, b, equalOptions...)
}

// Hash returns a hash of e which is consistent with Equal. Equal elements
// have equal hashes.
func Hash(e Element) uint64 {
	h := fnv.New64a()
	_ = Walk(e, func(ctx *WalkContext) error {
		_, _ = io.WriteString(h, ctx.Path)
		if ctx.Element != nil {
			_, _ = io.WriteString(h, ctx.Element.TypeName())
		} else {
			writeHashValue(h, ctx.Value)
		}
		_, _ = h.Write([]byte{0})
		return nil
	})
	return h.Sum64()
}

func writeHashValue(w io.Writer, v any) {
	switch v := v.(type) {
	case decimal.Decimal:
		_, _ = io.WriteString(w, decimalString(v))
	case string:
		_, _ = io.WriteString(w, v)
	default:
		_, _ = fmt.Fprint(w, v)
	}
}
