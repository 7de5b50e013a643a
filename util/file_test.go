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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOutputFile(t *testing.T) {
	tempDir := t.TempDir()

	t.Run("Successfully create new file", func(t *testing.T) {
		filepath := filepath.Join(tempDir, "test_new_file.txt")

		file, err := CreateOutputFile(filepath)
		require.NoError(t, err)
		defer file.Close()

		info, err := file.Stat()
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0644), info.Mode().Perm())

		_, err = file.WriteString("test content")
		assert.NoError(t, err)
	})

	t.Run("File already exists", func(t *testing.T) {
		filepath := filepath.Join(tempDir, "existing_file.txt")
		require.NoError(t, os.WriteFile(filepath, []byte("content"), 0644))

		_, err := CreateOutputFile(filepath)
		assert.ErrorIs(t, err, ErrOutputFileExists)

		content, err := os.ReadFile(filepath)
		require.NoError(t, err)
		assert.Equal(t, "content", string(content), "existing file must not be touched")
	})

	t.Run("Non-existing directory", func(t *testing.T) {
		_, err := CreateOutputFile(filepath.Join(tempDir, "nonexistent", "path", "file.txt"))
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrOutputFileExists)
	})
}

func TestFindResourceFiles(t *testing.T) {
	tempDir := t.TempDir()
	nested := filepath.Join(tempDir, "nested")
	require.NoError(t, os.MkdirAll(nested, 0755))
	for _, name := range []string{"a.json", "b.ndjson", "notes.txt", filepath.Join("nested", "c.json")} {
		require.NoError(t, os.WriteFile(filepath.Join(tempDir, name), []byte("{}"), 0644))
	}

	t.Run("Directory", func(t *testing.T) {
		files, err := FindResourceFiles([]string{tempDir})
		require.NoError(t, err)

		assert.Equal(t, []string{
			filepath.Join(tempDir, "a.json"),
			filepath.Join(tempDir, "b.ndjson"),
			filepath.Join(nested, "c.json"),
		}, files)
	})

	t.Run("Files are taken as they are", func(t *testing.T) {
		notes := filepath.Join(tempDir, "notes.txt")
		files, err := FindResourceFiles([]string{notes, notes})
		require.NoError(t, err)

		assert.Equal(t, []string{notes}, files)
	})

	t.Run("Missing path", func(t *testing.T) {
		_, err := FindResourceFiles([]string{filepath.Join(tempDir, "missing.json")})
		assert.Error(t, err)
	})
}

func TestIsNDJSON(t *testing.T) {
	assert.True(t, IsNDJSON("reports.ndjson"))
	assert.False(t, IsNDJSON("report.json"))
}
