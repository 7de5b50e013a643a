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
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/samply/fhirmodel/fhir"
	"github.com/samply/fhirmodel/util"
	"github.com/spf13/cobra"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

// writeResource writes r in the given format. JSON is indented by two spaces.
func writeResource(w io.Writer, r fhir.Resource, format string) error {
	var out []byte
	switch format {
	case formatJSON:
		b, err := fhir.MarshalIndent(r, "", "  ")
		if err != nil {
			return err
		}
		out = append(b, '\n')
	case formatYAML:
		b, err := fhir.Marshal(r)
		if err != nil {
			return err
		}
		out, err = yaml.JSONToYAML(b)
		if err != nil {
			return fmt.Errorf("error while converting %s to YAML: %w", r.ResourceType(), err)
		}
	default:
		return fmt.Errorf("unknown format %q: use %s or %s", format, formatJSON, formatYAML)
	}
	_, err := w.Write(out)
	return err
}

// openInput returns the named file or stdin for "-".
func openInput(name string) (io.ReadCloser, error) {
	if name == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(name)
}

func convert(w io.Writer, input string, format string) error {
	in, err := openInput(input)
	if err != nil {
		return err
	}
	defer in.Close()

	report, err := fhir.ReadMeasureReport(in)
	if err != nil {
		return fmt.Errorf("error while reading %s: %w", input, err)
	}
	return writeResource(w, report, format)
}

var convertCmd = &cobra.Command{
	Use:   "convert [file]",
	Short: "Converts a MeasureReport to canonical JSON or YAML",
	Long: `Reads a MeasureReport from a file or stdin, checks its structure and
writes it in canonical FHIR JSON or in YAML.

Canonical JSON lists the elements in definition order and drops empty
elements, so converting a report is also a way to normalize it.

Example:

  fhirmodel convert report.json --format yaml --output-file report.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := cmd.Flags().GetString("format")
		if err != nil {
			return err
		}
		outputFile, err := cmd.Flags().GetString("output-file")
		if err != nil {
			return err
		}

		input := "-"
		if len(args) == 1 {
			input = args[0]
		}

		w := cmd.OutOrStdout()
		if outputFile != "" {
			file, err := util.CreateOutputFile(outputFile)
			if err != nil {
				return err
			}
			defer file.Close()
			w = file
		}

		return convert(w, input, format)
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().String("format", formatJSON, "output format (json, yaml)")
	convertCmd.Flags().StringP("output-file", "o", "", "write to file instead of stdout")
}
