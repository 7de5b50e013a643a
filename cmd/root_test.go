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
	"io"
	"testing"

	"github.com/samply/fhirmodel/config"
	"github.com/samply/fhirmodel/fhir"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func resetFlags(t *testing.T) {
	t.Cleanup(func() {
		_ = rootCmd.PersistentFlags().Set("server", "")
		_ = rootCmd.PersistentFlags().Set("log-level", "warn")
		rootCmd.Run = nil
	})
}

func TestRootCmd_InvalidServerAddress(t *testing.T) {
	resetFlags(t)
	rootCmd.SetOut(io.Discard)
	rootCmd.SetArgs([]string{"--server", "invalid-url"})
	rootCmd.Run = func(cmd *cobra.Command, args []string) {}
	assert.Error(t, rootCmd.Execute(), "an invalid server URL has to be rejected")
}

func TestRootCmd_ValidServerAddress(t *testing.T) {
	resetFlags(t)
	rootCmd.SetOut(io.Discard)
	rootCmd.SetArgs([]string{"--server", "localhost:9200"})
	rootCmd.Run = func(cmd *cobra.Command, args []string) {}
	assert.NoError(t, rootCmd.Execute())
}

func TestRootCmd_InvalidLogLevel(t *testing.T) {
	resetFlags(t)
	rootCmd.SetOut(io.Discard)
	rootCmd.SetArgs([]string{"--server", "http://localhost:8080/fhir", "--log-level", "loud"})
	rootCmd.Run = func(cmd *cobra.Command, args []string) {}
	assert.Error(t, rootCmd.Execute())
}

func TestClientAuth(t *testing.T) {
	defer func(c *config.Config) { cfg = c }(cfg)

	t.Run("basic", func(t *testing.T) {
		cfg = &config.Config{User: "foo", Password: "bar"}
		assert.Equal(t, fhir.BasicAuth{User: "foo", Password: "bar"}, clientAuth())
	})

	t.Run("token", func(t *testing.T) {
		cfg = &config.Config{Token: "secret"}
		assert.Equal(t, fhir.TokenAuth{Token: "secret"}, clientAuth())
	})

	t.Run("none", func(t *testing.T) {
		cfg = &config.Config{User: "foo"}
		assert.Nil(t, clientAuth())
	})
}

func TestCreateClient_MissingServer(t *testing.T) {
	defer func(c *config.Config) { cfg = c }(cfg)
	cfg = &config.Config{}

	assert.EqualError(t, createClient(), "missing server: use --server or FHIRMODEL_SERVER")
}
