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
	"net/url"
	"os"

	"github.com/rs/zerolog"
	"github.com/samply/fhirmodel/config"
	"github.com/samply/fhirmodel/fhir"
	"github.com/spf13/cobra"
)

var cfg = &config.Config{}

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

var client *fhir.Client

func createClient() error {
	if cfg.Server == "" {
		return fmt.Errorf("missing server: use --server or FHIRMODEL_SERVER")
	}
	fhirServerBaseUrl, err := url.ParseRequestURI(cfg.Server)
	if err != nil {
		return fmt.Errorf("could not parse server's base URL: %w", err)
	}

	if cfg.Insecure {
		client = fhir.NewClientInsecure(*fhirServerBaseUrl, clientAuth())
	} else {
		client = fhir.NewClient(*fhirServerBaseUrl, clientAuth())
	}
	return nil
}

func clientAuth() fhir.Auth {
	if cfg.User != "" && cfg.Password != "" {
		return fhir.BasicAuth{User: cfg.User, Password: cfg.Password}
	} else if cfg.Token != "" {
		return fhir.TokenAuth{Token: cfg.Token}
	} else {
		return nil
	}
}

// configure loads the configuration of cmd and sets up logging.
func configure(cmd *cobra.Command) error {
	c, err := config.Load(cmd)
	if err != nil {
		return err
	}
	if c.Server != "" {
		if _, err := url.ParseRequestURI(c.Server); err != nil {
			return fmt.Errorf("could not parse server's base URL: %w", err)
		}
	}
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	log = log.Level(level)
	cfg = c
	return nil
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "fhirmodel",
	Short: "Validate and convert FHIR® resources from the Command Line",
	Long: `fhirmodel is a command line tool working with FHIR® R4 MeasureReport
resources.

You can validate resources against their structure and invariants, convert
them to JSON or YAML, render them as HTML and evaluate measures on a server.

All flags can also be set by environment variables prefixed with FHIRMODEL_,
e.g. FHIRMODEL_SERVER or FHIRMODEL_LOG_LEVEL.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return configure(cmd)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("server", "", "the base URL of the server to use")
	rootCmd.PersistentFlags().BoolP("insecure", "k", false, "allow insecure server connections when using SSL")
	rootCmd.PersistentFlags().String("user", "", "user information for basic authentication")
	rootCmd.PersistentFlags().String("password", "", "password information for basic authentication")
	rootCmd.PersistentFlags().String("token", "", "bearer token for authentication")
	rootCmd.PersistentFlags().Bool("no-progress", false, "don't show progress bar")
	rootCmd.PersistentFlags().String("log-level", "warn", "log level (trace, debug, info, warn, error)")
}
