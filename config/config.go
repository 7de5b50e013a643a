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

// Package config loads the settings of the command line tool from flags and
// FHIRMODEL_* environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of all environment variables, e.g. FHIRMODEL_SERVER.
const EnvPrefix = "FHIRMODEL"

type Config struct {
	Server      string `mapstructure:"server"`
	User        string `mapstructure:"user"`
	Password    string `mapstructure:"password"`
	Token       string `mapstructure:"token"`
	Insecure    bool   `mapstructure:"insecure"`
	NoProgress  bool   `mapstructure:"no-progress"`
	LogLevel    string `mapstructure:"log-level"`
	Concurrency int    `mapstructure:"concurrency"`
}

// Load reads the configuration of cmd. Flags set on the command line take
// precedence over environment variables, which take precedence over the
// flag defaults.
func Load(cmd *cobra.Command) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("log-level", "warn")
	v.SetDefault("concurrency", 2)

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if cfg.Concurrency < 1 {
		return nil, fmt.Errorf("invalid concurrency %d: has to be at least 1", cfg.Concurrency)
	}
	return cfg, nil
}
