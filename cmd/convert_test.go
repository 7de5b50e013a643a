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
package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/samply/fhirmodel/fhir"
	"github.com/samply/fhirmodel/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeReportFile(t *testing.T, report *fhir.MeasureReport) string {
	file := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, os.WriteFile(file, mustBuild(fhir.Marshal(report)), 0644))
	return file
}

func TestConvert(t *testing.T) {
	report := measureReport(
		mustBuild(fhir.NewMeasureReportGroupBuilder().
			Code(concept("Main Group")).
			Population(groupPopulation(100)).
			Build()),
	)
	file := writeReportFile(t, report)

	t.Run("JSON", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, convert(&buf, file, formatJSON))

		assert.Equal(t, string(mustBuild(fhir.MarshalIndent(report, "", "  ")))+"\n", buf.String())

		converted, err := fhir.ReadMeasureReport(&buf)
		require.NoError(t, err)
		assert.True(t, fhir.Equal(report, converted), fhir.Diff(report, converted))
	})

	t.Run("YAML", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, convert(&buf, file, formatYAML))

		output := buf.String()
		assert.Contains(t, output, "resourceType: MeasureReport")
		assert.Contains(t, output, "status: complete")
		assert.Contains(t, output, "text: Main Group")
	})

	t.Run("unknown format", func(t *testing.T) {
		var buf bytes.Buffer
		err := convert(&buf, file, "xml")

		assert.EqualError(t, err, `unknown format "xml": use json or yaml`)
	})

	t.Run("invalid resource", func(t *testing.T) {
		invalid := filepath.Join(t.TempDir(), "invalid.json")
		require.NoError(t, os.WriteFile(invalid, []byte(`{"resourceType":"MeasureReport","status":"complete"}`), 0644))

		var buf bytes.Buffer
		err := convert(&buf, invalid, formatJSON)

		var validationErr *fhir.ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})
}

func TestConvertCmd(t *testing.T) {
	file := writeReportFile(t, measureReport())
	outputFile := filepath.Join(t.TempDir(), "report.yaml")

	rootCmd.SetArgs([]string{"convert", file, "--format", "yaml", "--output-file", outputFile})
	require.NoError(t, rootCmd.Execute())

	content, err := os.ReadFile(outputFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), "resourceType: MeasureReport")

	t.Run("existing output file", func(t *testing.T) {
		rootCmd.SetArgs([]string{"convert", file, "--format", "yaml", "--output-file", outputFile})

		assert.ErrorIs(t, rootCmd.Execute(), util.ErrOutputFileExists)
	})
}
