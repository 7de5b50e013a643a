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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqual(t *testing.T) {
	t.Run("separately built reports", func(t *testing.T) {
		a := must(testReportBuilder().ID("0").Group(testGroup(1)).Build())
		b := must(testReportBuilder().ID("0").Group(testGroup(1)).Build())

		assert.True(t, Equal(a, b))
		assert.Empty(t, Diff(a, b))
		assert.Equal(t, Hash(a), Hash(b))
	})

	t.Run("different counts", func(t *testing.T) {
		a := must(testReportBuilder().Group(testGroup(1)).Build())
		b := must(testReportBuilder().Group(testGroup(2)).Build())

		assert.False(t, Equal(a, b))
		assert.NotEmpty(t, Diff(a, b))
		assert.NotEqual(t, Hash(a), Hash(b))
	})

	t.Run("ids are significant", func(t *testing.T) {
		a := must(testReportBuilder().ID("0").Build())
		b := must(testReportBuilder().ID("1").Build())

		assert.False(t, Equal(a, b))
		assert.NotEqual(t, Hash(a), Hash(b))
	})

	t.Run("decimal scale is significant", func(t *testing.T) {
		a := testQuantity("1.5", "mg")
		b := testQuantity("1.50", "mg")

		assert.False(t, Equal(a, b))
		assert.NotEqual(t, Hash(a), Hash(b))
		assert.True(t, Equal(a, testQuantity("1.5", "mg")))
		assert.Equal(t, Hash(a), Hash(testQuantity("1.5", "mg")))
	})

	t.Run("different types", func(t *testing.T) {
		assert.False(t, Equal(StringOf("a"), CodeOf("a")))
		assert.NotEqual(t, Hash(StringOf("a")), Hash(CodeOf("a")))
	})

	t.Run("choice types", func(t *testing.T) {
		a := must(NewSubstanceSpecificationMoietyBuilder().Amount(StringOf("1")).Build())
		b := must(NewSubstanceSpecificationMoietyBuilder().Amount(testQuantity("1", "mol")).Build())

		assert.False(t, Equal(a, b))
		assert.True(t, Equal(a, must(a.ToBuilder().Build())))
	})

	t.Run("order of repeated elements", func(t *testing.T) {
		a := must(testReportBuilder().Group(testGroup(1), testGroup(2)).Build())
		b := must(testReportBuilder().Group(testGroup(2), testGroup(1)).Build())

		assert.False(t, Equal(a, b))
		assert.NotEqual(t, Hash(a), Hash(b))
	})

	t.Run("absent and empty lists", func(t *testing.T) {
		a := must(testReportBuilder().Build())
		b := must(a.ToBuilder().SetGroup([]*MeasureReportGroup{}).SetExtension([]*Extension{}).Build())

		assert.True(t, Equal(a, b), Diff(a, b))
		assert.Empty(t, Diff(a, b))
		assert.Equal(t, Hash(a), Hash(b))
	})

	t.Run("nil", func(t *testing.T) {
		var report *MeasureReport

		assert.True(t, Equal(nil, nil))
		assert.True(t, Equal(report, nil))
		assert.False(t, Equal(report, must(testReportBuilder().Build())))
		assert.False(t, Equal(StringOf("a"), nil))
	})
}

func TestHash(t *testing.T) {
	t.Run("usable as map key", func(t *testing.T) {
		seen := map[uint64]*MeasureReportGroup{}
		for _, g := range []*MeasureReportGroup{testGroup(1), testGroup(2), testGroup(1)} {
			seen[Hash(g)] = g
		}
		assert.Len(t, seen, 2)
	})

	t.Run("ToBuilder round trip", func(t *testing.T) {
		report := must(testReportBuilder().Group(testGroup(1)).Build())

		assert.Equal(t, Hash(report), Hash(must(report.ToBuilder().Build())))
	})
}
