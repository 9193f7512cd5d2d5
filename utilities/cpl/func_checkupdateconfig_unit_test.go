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

import (
	"testing"

	"github.com/BrunoReboul/rem/utilities/eks"
)

func int64Value(value int64) *int64 {
	return &value
}

func TestUnitCheckUpdateConfig(t *testing.T) {
	var tests = []struct {
		name           string
		policy         UpdateConfigPolicy
		maxUnavailable *int64
		wantViolation  bool
		wantCurrent    string
		wantLimit      string
	}{
		{
			name:           "noCeilingSkips",
			policy:         UpdateConfigPolicy{Enabled: true},
			maxUnavailable: int64Value(10),
			wantViolation:  false,
		},
		{
			name:           "disabledPolicySkips",
			policy:         UpdateConfigPolicy{MaxUnavailable: int64Value(1)},
			maxUnavailable: int64Value(10),
			wantViolation:  false,
		},
		{
			name:          "absentIsNotSet",
			policy:        UpdateConfigPolicy{Enabled: true, MaxUnavailable: int64Value(1)},
			wantViolation: true,
			wantCurrent:   "not set",
			wantLimit:     "1",
		},
		{
			name:           "exceedsCeiling",
			policy:         UpdateConfigPolicy{Enabled: true, MaxUnavailable: int64Value(1)},
			maxUnavailable: int64Value(2),
			wantViolation:  true,
			wantCurrent:    "2",
			wantLimit:      "1",
		},
		{
			name:           "equalsCeilingIsCompliant",
			policy:         UpdateConfigPolicy{Enabled: true, MaxUnavailable: int64Value(2)},
			maxUnavailable: int64Value(2),
			wantViolation:  false,
		},
		{
			name:           "belowCeilingIsCompliant",
			policy:         UpdateConfigPolicy{Enabled: true, MaxUnavailable: int64Value(2)},
			maxUnavailable: int64Value(1),
			wantViolation:  false,
		},
		{
			name:           "explicitZeroCeiling",
			policy:         UpdateConfigPolicy{Enabled: true, MaxUnavailable: int64Value(0)},
			maxUnavailable: int64Value(1),
			wantViolation:  true,
			wantCurrent:    "1",
			wantLimit:      "0",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			nodegroupConfig := eks.NodegroupConfig{
				UpdateConfig: eks.UpdateConfig{MaxUnavailable: test.maxUnavailable},
			}
			violation := CheckUpdateConfig(nodegroupConfig, test.policy)
			if !test.wantViolation {
				if violation != nil {
					t.Errorf("Want no violation got %v", violation)
				}
				return
			}
			if violation == nil {
				t.Errorf("Want a violation got none")
				return
			}
			if RuleUpdateConfig != violation.RuleName {
				t.Errorf("Want ruleName %s got %s", RuleUpdateConfig, violation.RuleName)
			}
			if test.wantCurrent != violation.Current {
				t.Errorf("Want current %s got %s", test.wantCurrent, violation.Current)
			}
			if test.wantLimit != violation.Limit {
				t.Errorf("Want limit %s got %s", test.wantLimit, violation.Limit)
			}
		})
	}
}
