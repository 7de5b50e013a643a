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

package config

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCommand() *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("server", "", "")
	cmd.Flags().String("user", "", "")
	cmd.Flags().Bool("insecure", false, "")
	cmd.Flags().String("log-level", "warn", "")
	cmd.Flags().Int("concurrency", 2, "")
	return cmd
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load(newCommand())
		require.NoError(t, err)

		assert.Equal(t, "", cfg.Server)
		assert.Equal(t, "warn", cfg.LogLevel)
		assert.Equal(t, 2, cfg.Concurrency)
		assert.False(t, cfg.Insecure)
	})

	t.Run("environment", func(t *testing.T) {
		t.Setenv("FHIRMODEL_SERVER", "http://localhost:8080/fhir")
		t.Setenv("FHIRMODEL_LOG_LEVEL", "debug")

		cfg, err := Load(newCommand())
		require.NoError(t, err)

		assert.Equal(t, "http://localhost:8080/fhir", cfg.Server)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("flags take precedence", func(t *testing.T) {
		t.Setenv("FHIRMODEL_SERVER", "http://localhost:8080/fhir")
		cmd := newCommand()
		require.NoError(t, cmd.Flags().Set("server", "http://other:8080/fhir"))
		require.NoError(t, cmd.Flags().Set("insecure", "true"))

		cfg, err := Load(cmd)
		require.NoError(t, err)

		assert.Equal(t, "http://other:8080/fhir", cfg.Server)
		assert.True(t, cfg.Insecure)
	})

	t.Run("invalid concurrency", func(t *testing.T) {
		cmd := newCommand()
		require.NoError(t, cmd.Flags().Set("concurrency", "0"))

		_, err := Load(cmd)
		assert.EqualError(t, err, "invalid concurrency 0: has to be at least 1")
	})
}
