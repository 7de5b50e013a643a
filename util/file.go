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
package util

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// ErrOutputFileExists is returned if the output file does already exist.
var ErrOutputFileExists = errors.New("output file does already exist")

// CreateOutputFile creates the output file at the given filepath if it does not already exist
// and returns the file handle.
// This is a non-destructive operation. Hence, if a file already exists at the given filepath
// ErrOutputFileExists is returned.
//
// Note: The callee has to make sure that the file handle is closed properly.
func CreateOutputFile(filepath string) (*os.File, error) {
	outputFile, err := os.OpenFile(filepath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if os.IsExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrOutputFileExists, filepath)
		}
		return nil, fmt.Errorf("could not open/create the output file %s: %w", filepath, err)
	}
	return outputFile, nil
}

// IsNDJSON reports whether the file contains newline delimited JSON.
func IsNDJSON(filename string) bool {
	return strings.HasSuffix(filename, ".ndjson")
}

// FindResourceFiles returns all JSON and NDJSON files given by paths. Files are
// returned as they are, directories are searched recursively. The result is
// sorted and free of duplicates.
func FindResourceFiles(paths []string) ([]string, error) {
	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, path)
			continue
		}
		err = filepath.WalkDir(path, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && (strings.HasSuffix(path, ".json") || IsNDJSON(path)) {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("error while searching %s: %w", path, err)
		}
	}
	slices.Sort(files)
	return slices.Compact(files), nil
}
