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
// Package data contains the measure file format of the evaluate-measure
// command.
package data

type Population struct {
	Code       string `yaml:"code"`
	Expression string `yaml:"expression"`
}

type Stratifier struct {
	Code        string `yaml:"code"`
	Description string `yaml:"description"`
	Expression  string `yaml:"expression"`
}

type Group struct {
	Type        string       `yaml:"type"`
	Code        string       `yaml:"code"`
	Description string       `yaml:"description"`
	Population  []Population `yaml:"population"`
	Stratifier  []Stratifier `yaml:"stratifier"`
}

// Measure is a measure with a CQL library given by its filename.
type Measure struct {
	Library string  `yaml:"library"`
	Group   []Group `yaml:"group"`
}
