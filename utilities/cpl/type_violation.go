// Copyright 2020 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the 'License');
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an 'AS IS' BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cpl

// Violation one detected non compliance, constructed only by a rule, immutable once returned.
// RuleName and the per rule fields are a stable contract consumers match on: adding a field is safe, renaming or removing one is breaking.
// Numeric observations are formatted as strings so a zero survives the omitempty serialization
type Violation struct {
	RuleName    string   `json:"ruleName"`
	Reason      string   `json:"reason"`
	Required    []string `json:"required,omitempty"`
	Missing     []string `json:"missing,omitempty"`
	Allowed     []string `json:"allowed,omitempty"`
	Cidrs       []string `json:"cidrs,omitempty"`
	Minimum     string   `json:"minimum,omitempty"`
	Current     string   `json:"current,omitempty"`
	Limit       string   `json:"limit,omitempty"`
	MinSize     string   `json:"minSize,omitempty"`
	MaxSize     string   `json:"maxSize,omitempty"`
	DesiredSize string   `json:"desiredSize,omitempty"`
}

// Result the outcome of evaluating one snapshot against a policy set.
// Vulnerable is true if and only if Evidence is not empty, no rule sets it on its own.
// Evidence keeps the fixed rule registration order and serializes as an empty list, not null
type Result struct {
	Vulnerable bool        `json:"vulnerable"`
	Evidence   []Violation `json:"evidence"`
}
