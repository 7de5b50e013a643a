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

// NarrativeStatus is the status of a narrative.
type NarrativeStatus string

const (
	NarrativeStatusGenerated  NarrativeStatus = "generated"
	NarrativeStatusExtensions NarrativeStatus = "extensions"
	NarrativeStatusAdditional NarrativeStatus = "additional"
	NarrativeStatusEmpty      NarrativeStatus = "empty"
)

var narrativeStatusCodes = []string{"generated", "extensions", "additional", "empty"}

// Code returns c as Code element.
func (c NarrativeStatus) Code() *Code {
	return CodeOf(string(c))
}

// IdentifierUse is the purpose of an identifier.
type IdentifierUse string

const (
	IdentifierUseUsual     IdentifierUse = "usual"
	IdentifierUseOfficial  IdentifierUse = "official"
	IdentifierUseTemp      IdentifierUse = "temp"
	IdentifierUseSecondary IdentifierUse = "secondary"
	IdentifierUseOld       IdentifierUse = "old"
)

var identifierUseCodes = []string{"usual", "official", "temp", "secondary", "old"}

// Code returns c as Code element.
func (c IdentifierUse) Code() *Code {
	return CodeOf(string(c))
}

// QuantityComparator is how a quantity value is to be understood.
type QuantityComparator string

const (
	QuantityComparatorLessThan       QuantityComparator = "<"
	QuantityComparatorLessOrEqual    QuantityComparator = "<="
	QuantityComparatorGreaterOrEqual QuantityComparator = ">="
	QuantityComparatorGreaterThan    QuantityComparator = ">"
)

var quantityComparatorCodes = []string{"<", "<=", ">=", ">"}

// Code returns c as Code element.
func (c QuantityComparator) Code() *Code {
	return CodeOf(string(c))
}

// MeasureReportStatus is the status of a measure report.
type MeasureReportStatus string

const (
	MeasureReportStatusComplete MeasureReportStatus = "complete"
	MeasureReportStatusPending  MeasureReportStatus = "pending"
	MeasureReportStatusError    MeasureReportStatus = "error"
)

var measureReportStatusCodes = []string{"complete", "pending", "error"}

// Code returns c as Code element.
func (c MeasureReportStatus) Code() *Code {
	return CodeOf(string(c))
}

// MeasureReportType is the type of a measure report.
type MeasureReportType string

const (
	MeasureReportTypeIndividual     MeasureReportType = "individual"
	MeasureReportTypeSubjectList    MeasureReportType = "subject-list"
	MeasureReportTypeSummary        MeasureReportType = "summary"
	MeasureReportTypeDataCollection MeasureReportType = "data-collection"
)

var measureReportTypeCodes = []string{"individual", "subject-list", "summary", "data-collection"}

// Code returns c as Code element.
func (c MeasureReportType) Code() *Code {
	return CodeOf(string(c))
}

// SequenceType is the type of a molecular sequence.
type SequenceType string

const (
	SequenceTypeAA  SequenceType = "aa"
	SequenceTypeDNA SequenceType = "dna"
	SequenceTypeRNA SequenceType = "rna"
)

var sequenceTypeCodes = []string{"aa", "dna", "rna"}

// Code returns c as Code element.
func (c SequenceType) Code() *Code {
	return CodeOf(string(c))
}

// OrientationType is the orientation of a reference sequence.
type OrientationType string

const (
	OrientationTypeSense     OrientationType = "sense"
	OrientationTypeAntisense OrientationType = "antisense"
)

var orientationTypeCodes = []string{"sense", "antisense"}

// Code returns c as Code element.
func (c OrientationType) Code() *Code {
	return CodeOf(string(c))
}

// StrandType is the strand of a reference sequence.
type StrandType string

const (
	StrandTypeWatson StrandType = "watson"
	StrandTypeCrick  StrandType = "crick"
)

var strandTypeCodes = []string{"watson", "crick"}

// Code returns c as Code element.
func (c StrandType) Code() *Code {
	return CodeOf(string(c))
}

// QualityType is the type of a sequence quality measurement.
type QualityType string

const (
	QualityTypeIndel   QualityType = "indel"
	QualityTypeSNP     QualityType = "snp"
	QualityTypeUnknown QualityType = "unknown"
)

var qualityTypeCodes = []string{"indel", "snp", "unknown"}

// Code returns c as Code element.
func (c QualityType) Code() *Code {
	return CodeOf(string(c))
}

// RepositoryType is the type of a sequence repository.
type RepositoryType string

const (
	RepositoryTypeDirectLink RepositoryType = "directlink"
	RepositoryTypeOpenAPI    RepositoryType = "openapi"
	RepositoryTypeLogin      RepositoryType = "login"
	RepositoryTypeOAuth      RepositoryType = "oauth"
	RepositoryTypeOther      RepositoryType = "other"
)

var repositoryTypeCodes = []string{"directlink", "openapi", "login", "oauth", "other"}

// Code returns c as Code element.
func (c RepositoryType) Code() *Code {
	return CodeOf(string(c))
}
