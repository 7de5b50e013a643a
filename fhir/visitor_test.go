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
	"testing"

	"github.com/stretchr/testify/assert"
)

func walkPaths(t *testing.T, e Element) []string {
	var paths []string
	err := Walk(e, func(ctx *WalkContext) error {
		paths = append(paths, ctx.Path)
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected walk error: %v", err)
	}
	return paths
}

func TestWalk(t *testing.T) {
	report := must(testReportBuilder().ID("0").Group(testGroup(5)).Build())

	t.Run("paths in document order", func(t *testing.T) {
		assert.Equal(t, []string{
			"MeasureReport",
			"MeasureReport.id",
			"MeasureReport.status",
			"MeasureReport.status.value",
			"MeasureReport.type",
			"MeasureReport.type.value",
			"MeasureReport.measure",
			"MeasureReport.measure.value",
			"MeasureReport.period",
			"MeasureReport.period.start",
			"MeasureReport.period.start.value",
			"MeasureReport.period.end",
			"MeasureReport.period.end.value",
			"MeasureReport.group[0]",
			"MeasureReport.group[0].population[0]",
			"MeasureReport.group[0].population[0].code",
			"MeasureReport.group[0].population[0].code.coding[0]",
			"MeasureReport.group[0].population[0].code.coding[0].system",
			"MeasureReport.group[0].population[0].code.coding[0].system.value",
			"MeasureReport.group[0].population[0].code.coding[0].code",
			"MeasureReport.group[0].population[0].code.coding[0].code.value",
			"MeasureReport.group[0].population[0].count",
			"MeasureReport.group[0].population[0].count.value",
		}, walkPaths(t, report))
	})

	t.Run("context", func(t *testing.T) {
		var count *WalkContext
		var countValue *WalkContext
		_ = Walk(report, func(ctx *WalkContext) error {
			switch ctx.Path {
			case "MeasureReport.group[0].population[0].count":
				count = ctx
			case "MeasureReport.group[0].population[0].count.value":
				countValue = ctx
			}
			return nil
		})

		if assert.NotNil(t, count) {
			assert.Equal(t, "count", count.Name)
			assert.Equal(t, -1, count.Index)
			assert.Equal(t, 3, count.Depth)
			assert.IsType(t, &Integer{}, count.Element)
			assert.Nil(t, count.Value)
		}
		if assert.NotNil(t, countValue) {
			assert.Equal(t, 4, countValue.Depth)
			assert.Nil(t, countValue.Element)
			assert.Equal(t, int32(5), countValue.Value)
		}
	})

	t.Run("skip children", func(t *testing.T) {
		var paths []string
		err := Walk(report, func(ctx *WalkContext) error {
			paths = append(paths, ctx.Path)
			if ctx.Name == "period" || ctx.Name == "group" {
				return SkipChildren
			}
			return nil
		})

		assert.NoError(t, err)
		assert.Contains(t, paths, "MeasureReport.period")
		assert.Contains(t, paths, "MeasureReport.group[0]")
		assert.NotContains(t, paths, "MeasureReport.period.start")
		assert.NotContains(t, paths, "MeasureReport.group[0].population[0]")
	})

	t.Run("stops at the first error", func(t *testing.T) {
		stop := errors.New("stop")
		var paths []string
		err := Walk(report, func(ctx *WalkContext) error {
			paths = append(paths, ctx.Path)
			if ctx.Path == "MeasureReport.period" {
				return stop
			}
			return nil
		})

		assert.ErrorIs(t, err, stop)
		assert.Equal(t, "MeasureReport.period", paths[len(paths)-1])
	})

	t.Run("nil element", func(t *testing.T) {
		var nilReport *MeasureReport
		assert.NoError(t, Walk(nilReport, func(*WalkContext) error {
			t.Fatal("unexpected call")
			return nil
		}))
	})

	t.Run("data type as root", func(t *testing.T) {
		assert.Equal(t, []string{"Period", "Period.start", "Period.start.value", "Period.end", "Period.end.value"},
			walkPaths(t, testPeriod()))
	})
}

func TestWalkChoiceNames(t *testing.T) {
	moiety := must(NewSubstanceSpecificationMoietyBuilder().Amount(testQuantity("1", "mol")).Build())
	property := must(NewSubstanceSpecificationPropertyBuilder().Amount(StringOf("high")).Build())
	spec := must(NewSubstanceSpecificationBuilder().Moiety(moiety).Property(property).Build())

	paths := walkPaths(t, spec)

	assert.Contains(t, paths, "SubstanceSpecification.moiety[0].amountQuantity")
	assert.Contains(t, paths, "SubstanceSpecification.moiety[0].amountQuantity.value.value")
	assert.Contains(t, paths, "SubstanceSpecification.property[0].amountString.value")
}

func TestChoiceName(t *testing.T) {
	assert.Equal(t, "valueCodeableConcept", ChoiceName("value", testConcept("http://example.com", "a")))
	assert.Equal(t, "valueString", ChoiceName("value", StringOf("a")))
	assert.Equal(t, "amountUnsignedInt", ChoiceName("amount", UnsignedIntOf(1)))
}

// typeCounter counts the visited elements by type name.
type typeCounter struct {
	BaseVisitor
	counts map[string]int
	skip   string
	ends   int
}

func (c *typeCounter) Visit(_ string, _ int, e Element) bool {
	c.counts[e.TypeName()]++
	return e.TypeName() != c.skip
}

func (c *typeCounter) VisitEnd(string, int, Element) {
	c.ends++
}

func TestVisitor(t *testing.T) {
	stratifier := must(NewMeasureReportGroupStratifierBuilder().
		Stratum(testStratum("male", 1), testStratum("female", 2)).
		Build())
	group := must(testGroup(3).ToBuilder().Stratifier(stratifier).Build())
	report := must(testReportBuilder().Group(group).Build())

	t.Run("all elements", func(t *testing.T) {
		counter := &typeCounter{counts: map[string]int{}}
		report.Accept("MeasureReport", -1, counter)

		assert.Equal(t, 1, counter.counts["MeasureReport"])
		assert.Equal(t, 2, counter.counts["MeasureReport.group.stratifier.stratum"])
		assert.Equal(t, 2, counter.counts["MeasureReport.group.stratifier.stratum.population"])
		assert.Equal(t, 3, counter.counts["integer"])
		assert.Equal(t, 3, counter.counts["dateTime"]+counter.counts["Period"])

		total := 0
		for _, n := range counter.counts {
			total += n
		}
		assert.Equal(t, total, counter.ends)
	})

	t.Run("children of rejected elements are not visited", func(t *testing.T) {
		counter := &typeCounter{counts: map[string]int{}, skip: "MeasureReport.group.stratifier"}
		report.Accept("MeasureReport", -1, counter)

		assert.Equal(t, 1, counter.counts["MeasureReport.group.stratifier"])
		assert.Zero(t, counter.counts["MeasureReport.group.stratifier.stratum"])
		assert.Equal(t, 1, counter.counts["integer"])
	})

	t.Run("pre visit", func(t *testing.T) {
		var visited []string
		v := &preVisitor{visited: &visited}
		report.Accept("MeasureReport", -1, v)

		assert.Equal(t, []string{"MeasureReport"}, visited)
	})
}

// preVisitor rejects every element except resources in PreVisit.
type preVisitor struct {
	BaseVisitor
	visited *[]string
}

func (v *preVisitor) PreVisit(e Element) bool {
	_, ok := e.(Resource)
	return ok
}

func (v *preVisitor) VisitStart(_ string, _ int, e Element) {
	*v.visited = append(*v.visited, e.TypeName())
}
