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

func testQuantity(value string, unit string) *Quantity {
	return must(NewQuantityBuilder().
		Value(DecimalOf(decimal.RequireFromString(value))).
		Unit(StringOf(unit)).
		Build())
}

func TestSubstanceSpecificationBuilder(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		spec, err := NewSubstanceSpecificationBuilder().Build()
		if err != nil {
			t.Fatalf("could not build the substance specification: %v", err)
		}
		assert.Equal(t, "SubstanceSpecification", spec.ResourceType())
		assert.Len(t, spec.Constraints(), 4)
	})

	t.Run("complete", func(t *testing.T) {
		moiety := must(NewSubstanceSpecificationMoietyBuilder().
			Name(StringOf("ibuprofen")).
			MolecularFormula(StringOf("C13H18O2")).
			Amount(testQuantity("1", "mol")).
			Build())
		property := must(NewSubstanceSpecificationPropertyBuilder().
			Code(testConcept("http://example.com/property", "melting-point")).
			DefiningSubstance(testReference("Substance/water")).
			Amount(StringOf("75-78 °C")).
			Build())
		name := must(NewSubstanceSpecificationNameBuilder(StringOf("Ibuprofen")).
			Preferred(BooleanOf(true)).
			Synonym(must(NewSubstanceSpecificationNameBuilder(StringOf("Isobutylphenylpropionic acid")).Build())).
			Official(must(NewSubstanceSpecificationNameOfficialBuilder().Date(DateTimeOf("2020-01-01")).Build())).
			Build())
		relationship := must(NewSubstanceSpecificationRelationshipBuilder().
			Substance(testConcept("http://example.com/substance", "dexibuprofen")).
			IsDefining(BooleanOf(false)).
			Amount(must(NewRangeBuilder().Low(testQuantity("0.5", "mg")).High(testQuantity("1.5", "mg")).Build())).
			Build())
		weight := must(NewSubstanceSpecificationStructureIsotopeMolecularWeightBuilder().
			Amount(testQuantity("206.28", "g/mol")).
			Build())
		structure := must(NewSubstanceSpecificationStructureBuilder().
			MolecularFormula(StringOf("C13H18O2")).
			MolecularWeight(weight).
			Representation(must(NewSubstanceSpecificationStructureRepresentationBuilder().
				Representation(StringOf("CC(C)Cc1ccc(cc1)C(C)C(O)=O")).
				Build())).
			Build())

		spec, err := NewSubstanceSpecificationBuilder().
			ID("ibuprofen").
			Description(StringOf("A nonsteroidal anti-inflammatory drug")).
			Source(testReference("DocumentReference/0")).
			Moiety(moiety).
			Property(property).
			Structure(structure).
			Code(must(NewSubstanceSpecificationCodeBuilder().Code(testConcept("http://example.com/code", "R7P8FRP05V")).Build())).
			Name(name).
			Relationship(relationship).
			Protein(testReference("SubstanceProtein/0")).
			Build()
		if err != nil {
			t.Fatalf("could not build the substance specification: %v", err)
		}

		assert.Equal(t, "ibuprofen", spec.Moiety()[0].Name().Value())
		assert.Equal(t, "Quantity", spec.Moiety()[0].Amount().TypeName())
		assert.Equal(t, "string", spec.Property()[0].Amount().TypeName())
		assert.IsType(t, &Reference{}, spec.Property()[0].DefiningSubstance())
		assert.IsType(t, &Range{}, spec.Relationship()[0].Amount())
		assert.Equal(t, "Isobutylphenylpropionic acid", spec.Name()[0].Synonym()[0].Name().Value())
		assert.Equal(t, "206.28", decimalString(spec.Structure().MolecularWeight().Amount().Value().Value()))
	})

	t.Run("source of the wrong type", func(t *testing.T) {
		_, err := NewSubstanceSpecificationBuilder().Source(testReference("Patient/0")).Build()
		assertValidationError(t, err, ErrInvalidReference, "SubstanceSpecification", "source")
	})

	t.Run("nil name", func(t *testing.T) {
		var name *SubstanceSpecificationName
		_, err := NewSubstanceSpecificationBuilder().Name(name).Build()
		assertValidationError(t, err, ErrNilItem, "SubstanceSpecification", "name")
	})
}

func TestSubstanceSpecificationChoices(t *testing.T) {
	t.Run("moiety amount of a disallowed type", func(t *testing.T) {
		_, err := NewSubstanceSpecificationMoietyBuilder().Amount(BooleanOf(true)).Build()
		assertValidationError(t, err, ErrInvalidChoice, "SubstanceSpecification.moiety", "amount")
		assert.ErrorContains(t, err, "got boolean")
	})

	t.Run("moiety amount of typed nil is unset", func(t *testing.T) {
		var amount *Quantity
		moiety, err := NewSubstanceSpecificationMoietyBuilder().Name(StringOf("foo")).Amount(amount).Build()
		if err != nil {
			t.Fatalf("could not build the moiety: %v", err)
		}
		assert.Nil(t, moiety.Amount())
	})

	t.Run("property defining substance of a disallowed type", func(t *testing.T) {
		_, err := NewSubstanceSpecificationPropertyBuilder().DefiningSubstance(StringOf("water")).Build()
		assertValidationError(t, err, ErrInvalidChoice, "SubstanceSpecification.property", "definingSubstance")
	})

	t.Run("property defining substance reference target", func(t *testing.T) {
		_, err := NewSubstanceSpecificationPropertyBuilder().DefiningSubstance(testReference("Patient/0")).Build()
		assertValidationError(t, err, ErrInvalidReference, "SubstanceSpecification.property", "definingSubstance")
	})

	t.Run("relationship amount ratio", func(t *testing.T) {
		ratio := must(NewRatioBuilder().Numerator(testQuantity("1", "mg")).Denominator(testQuantity("2", "mg")).Build())
		relationship, err := NewSubstanceSpecificationRelationshipBuilder().Amount(ratio).Build()
		if err != nil {
			t.Fatalf("could not build the relationship: %v", err)
		}
		assert.Same(t, ratio, relationship.Amount())
	})

	t.Run("relationship amount of a disallowed type", func(t *testing.T) {
		_, err := NewSubstanceSpecificationRelationshipBuilder().Amount(IntegerOf(1)).Build()
		assertValidationError(t, err, ErrInvalidChoice, "SubstanceSpecification.relationship", "amount")
	})

	t.Run("relationship substance reference target", func(t *testing.T) {
		_, err := NewSubstanceSpecificationRelationshipBuilder().Substance(testReference("Substance/0")).Build()
		assertValidationError(t, err, ErrInvalidReference, "SubstanceSpecification.relationship", "substance")
	})

	t.Run("extension value of a disallowed type", func(t *testing.T) {
		_, err := NewExtensionBuilder("http://example.com/ext").Value(testGroup(1)).Build()
		assertValidationError(t, err, ErrInvalidChoice, "Extension", "value")
	})
}

func TestSubstanceSpecificationName(t *testing.T) {
	t.Run("missing name", func(t *testing.T) {
		_, err := NewSubstanceSpecificationNameBuilder(nil).Preferred(BooleanOf(true)).Build()
		assertValidationError(t, err, ErrMissingRequired, "SubstanceSpecification.name", "name")
	})

	t.Run("nested names are independent of the builder", func(t *testing.T) {
		synonym := must(NewSubstanceSpecificationNameBuilder(StringOf("a")).Build())
		b := NewSubstanceSpecificationNameBuilder(StringOf("b")).Synonym(synonym)
		name := must(b.Build())

		b.Synonym(synonym)

		assert.Len(t, name.Synonym(), 1)
		assert.Len(t, must(b.Build()).Synonym(), 2)
	})
}
