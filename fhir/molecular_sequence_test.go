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

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func testReferenceSeq() *MolecularSequenceReferenceSeq {
	return must(NewMolecularSequenceReferenceSeqBuilder().
		Chromosome(testConcept("http://terminology.hl7.org/CodeSystem/chromosome-human", "1")).
		GenomeBuild(StringOf("GRCh38")).
		Orientation(OrientationTypeSense.Code()).
		Strand(StrandTypeWatson.Code()).
		WindowStart(IntegerOf(22125500)).
		WindowEnd(IntegerOf(22125510)).
		Build())
}

func TestMolecularSequenceBuilder(t *testing.T) {
	t.Run("complete", func(t *testing.T) {
		variant := must(NewMolecularSequenceVariantBuilder().
			Start(IntegerOf(22125503)).
			End(IntegerOf(22125504)).
			ObservedAllele(StringOf("C")).
			ReferenceAllele(StringOf("G")).
			Cigar(StringOf("1M")).
			Build())
		roc := must(NewMolecularSequenceQualityRocBuilder().
			Score(IntegerOf(1), IntegerOf(2)).
			Precision(DecimalOf(decimal.RequireFromString("0.90")), DecimalOf(decimal.RequireFromString("0.95"))).
			Build())
		quality := must(NewMolecularSequenceQualityBuilder(QualityTypeSNP.Code()).
			Start(IntegerOf(22125500)).
			End(IntegerOf(22125510)).
			Precision(DecimalOf(decimal.RequireFromString("0.998"))).
			Roc(roc).
			Build())
		repository := must(NewMolecularSequenceRepositoryBuilder(RepositoryTypeOpenAPI.Code()).
			URL(UriOf("https://www.googleapis.com/genomics/v1beta2")).
			Name(StringOf("GA4GH API")).
			Build())
		structureVariant := must(NewMolecularSequenceStructureVariantBuilder().
			Exact(BooleanOf(true)).
			Length(IntegerOf(100)).
			Outer(must(NewMolecularSequenceStructureVariantOuterBuilder().Start(IntegerOf(1)).End(IntegerOf(200)).Build())).
			Inner(must(NewMolecularSequenceStructureVariantInnerBuilder().Start(IntegerOf(50)).End(IntegerOf(150)).Build())).
			Build())

		sequence, err := NewMolecularSequenceBuilder(IntegerOf(0)).
			ID("example").
			Type(SequenceTypeDNA.Code()).
			Patient(testReference("Patient/example")).
			ReferenceSeq(testReferenceSeq()).
			Variant(variant).
			ObservedSeq(StringOf("ACGT")).
			Quality(quality).
			ReadCoverage(IntegerOf(3)).
			Repository(repository).
			Pointer(testReference("MolecularSequence/other")).
			StructureVariant(structureVariant).
			Build()
		if err != nil {
			t.Fatalf("could not build the sequence: %v", err)
		}

		assert.Equal(t, "MolecularSequence", sequence.ResourceType())
		assert.Equal(t, int32(0), sequence.CoordinateSystem().Value())
		assert.Equal(t, "dna", sequence.Type().Value())
		assert.Equal(t, "GRCh38", sequence.ReferenceSeq().GenomeBuild().Value())
		assert.Equal(t, "C", sequence.Variant()[0].ObservedAllele().Value())
		assert.Equal(t, "0.998", decimalString(sequence.Quality()[0].Precision().Value()))
		assert.Len(t, sequence.Quality()[0].Roc().Score(), 2)
		assert.Equal(t, "openapi", sequence.Repository()[0].Type().Value())
		assert.Equal(t, int32(50), sequence.StructureVariant()[0].Inner().Start().Value())
	})

	t.Run("missing coordinate system", func(t *testing.T) {
		_, err := NewMolecularSequenceBuilder(nil).Build()
		assertValidationError(t, err, ErrMissingRequired, "MolecularSequence", "coordinateSystem")
	})

	t.Run("empty coordinate system", func(t *testing.T) {
		_, err := NewMolecularSequenceBuilder(&Integer{}).Build()
		assertValidationError(t, err, ErrMissingRequired, "MolecularSequence", "coordinateSystem")
		assert.ErrorContains(t, err, "empty integer")
	})

	t.Run("coordinate system with extension only", func(t *testing.T) {
		absent := must(NewExtensionBuilder("http://hl7.org/fhir/StructureDefinition/data-absent-reason").
			Value(CodeOf("unknown")).
			Build())
		_, err := NewMolecularSequenceBuilder(must(NewIntegerBuilder().Extension(absent).Build())).Build()
		assert.NoError(t, err)
	})

	t.Run("coordinate system only", func(t *testing.T) {
		sequence, err := NewMolecularSequenceBuilder(IntegerOf(1)).Build()
		if err != nil {
			t.Fatalf("could not build the sequence: %v", err)
		}
		assert.Nil(t, sequence.ReferenceSeq())
		assert.Empty(t, sequence.Variant())
	})

	t.Run("type outside of the value set", func(t *testing.T) {
		_, err := NewMolecularSequenceBuilder(IntegerOf(1)).Type(CodeOf("protein")).Build()
		assertValidationError(t, err, ErrInvalidCode, "MolecularSequence", "type")
	})

	t.Run("patient of the wrong type", func(t *testing.T) {
		_, err := NewMolecularSequenceBuilder(IntegerOf(1)).Patient(testReference("Group/0")).Build()
		assertValidationError(t, err, ErrInvalidReference, "MolecularSequence", "patient")
	})

	t.Run("pointer to another resource type", func(t *testing.T) {
		_, err := NewMolecularSequenceBuilder(IntegerOf(1)).
			Pointer(testReference("MolecularSequence/0"), testReference("Observation/0")).
			Build()
		assertValidationError(t, err, ErrInvalidReference, "MolecularSequence", "pointer")
	})

	t.Run("nil variant", func(t *testing.T) {
		var variant *MolecularSequenceVariant
		_, err := NewMolecularSequenceBuilder(IntegerOf(1)).Variant(variant).Build()
		assertValidationError(t, err, ErrNilItem, "MolecularSequence", "variant")
	})
}

func TestMolecularSequenceBackbones(t *testing.T) {
	t.Run("empty reference sequence", func(t *testing.T) {
		_, err := NewMolecularSequenceReferenceSeqBuilder().Build()
		assertValidationError(t, err, ErrNoChildren, "MolecularSequence.referenceSeq", "")
	})

	t.Run("invalid orientation", func(t *testing.T) {
		_, err := NewMolecularSequenceReferenceSeqBuilder().Orientation(CodeOf("forward")).Build()
		assertValidationError(t, err, ErrInvalidCode, "MolecularSequence.referenceSeq", "orientation")
	})

	t.Run("invalid strand", func(t *testing.T) {
		_, err := NewMolecularSequenceReferenceSeqBuilder().Strand(CodeOf("plus")).Build()
		assertValidationError(t, err, ErrInvalidCode, "MolecularSequence.referenceSeq", "strand")
	})

	t.Run("reference sequence pointer", func(t *testing.T) {
		_, err := NewMolecularSequenceReferenceSeqBuilder().ReferenceSeqPointer(testReference("Patient/0")).Build()
		assertValidationError(t, err, ErrInvalidReference, "MolecularSequence.referenceSeq", "referenceSeqPointer")
	})

	t.Run("quality without type", func(t *testing.T) {
		_, err := NewMolecularSequenceQualityBuilder(nil).Start(IntegerOf(1)).Build()
		assertValidationError(t, err, ErrMissingRequired, "MolecularSequence.quality", "type")
	})

	t.Run("quality with invalid type", func(t *testing.T) {
		_, err := NewMolecularSequenceQualityBuilder(CodeOf("mnp")).Build()
		assertValidationError(t, err, ErrInvalidCode, "MolecularSequence.quality", "type")
	})

	t.Run("repository without type", func(t *testing.T) {
		_, err := NewMolecularSequenceRepositoryBuilder(nil).Name(StringOf("foo")).Build()
		assertValidationError(t, err, ErrMissingRequired, "MolecularSequence.repository", "type")
	})

	t.Run("variant pointer", func(t *testing.T) {
		_, err := NewMolecularSequenceVariantBuilder().VariantPointer(testReference("Patient/0")).Build()
		assertValidationError(t, err, ErrInvalidReference, "MolecularSequence.variant", "variantPointer")
	})

	t.Run("empty structure variant parts", func(t *testing.T) {
		_, err := NewMolecularSequenceStructureVariantOuterBuilder().Build()
		assert.ErrorIs(t, err, ErrNoChildren)

		_, err = NewMolecularSequenceStructureVariantInnerBuilder().Build()
		assert.ErrorIs(t, err, ErrNoChildren)

		_, err = NewMolecularSequenceStructureVariantBuilder().Build()
		assert.ErrorIs(t, err, ErrNoChildren)
	})

	t.Run("nil roc score", func(t *testing.T) {
		var score *Integer
		_, err := NewMolecularSequenceQualityRocBuilder().Score(IntegerOf(1), score).Build()
		assertValidationError(t, err, ErrNilItem, "MolecularSequence.quality.roc", "score")
	})

	t.Run("roc ToBuilder", func(t *testing.T) {
		roc := must(NewMolecularSequenceQualityRocBuilder().Score(IntegerOf(1)).Build())

		changed := must(roc.ToBuilder().Score(IntegerOf(2)).NumTP(IntegerOf(3)).Build())

		assert.Len(t, roc.Score(), 1)
		assert.Empty(t, roc.NumTP())
		assert.Len(t, changed.Score(), 2)
		assert.Len(t, changed.NumTP(), 1)
	})
}
