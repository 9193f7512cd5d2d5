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

func TestUnitCheckClusterVersion(t *testing.T) {
	var tests = []struct {
		name          string
		policy        ClusterVersionPolicy
		version       string
		wantViolation bool
		wantCurrent   string
	}{
		{
			name:          "noMinimumSkips",
			policy:        ClusterVersionPolicy{Enabled: true},
			version:       "1.12",
			wantViolation: false,
		},
		{
			name:          "disabledPolicySkips",
			policy:        ClusterVersionPolicy{MinimumVersion: "1.27"},
			version:       "1.12",
			wantViolation: false,
		},
		{
			name:          "absentVersionIsUnknown",
			policy:        ClusterVersionPolicy{Enabled: true, MinimumVersion: "1.27"},
			wantViolation: true,
			wantCurrent:   "unknown",
		},
		{
			name:          "belowMinimum",
			policy:        ClusterVersionPolicy{Enabled: true, MinimumVersion: "1.27"},
			version:       "1.26",
			wantViolation: true,
			wantCurrent:   "1.26",
		},
		{
			name:          "numericNotLexicographic",
			policy:        ClusterVersionPolicy{Enabled: true, MinimumVersion: "1.10"},
			version:       "1.9",
			wantViolation: true,
			wantCurrent:   "1.9",
		},
		{
			name:          "equalIsCompliant",
			policy:        ClusterVersionPolicy{Enabled: true, MinimumVersion: "1.27"},
			version:       "1.27.0",
			wantViolation: false,
		},
		{
			name:          "aboveIsCompliant",
			policy:        ClusterVersionPolicy{Enabled: true, MinimumVersion: "1.27"},
			version:       "1.28",
			wantViolation: false,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			violation := CheckClusterVersion(eks.ClusterConfig{Version: test.version}, test.policy)
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
			if RuleClusterVersion != violation.RuleName {
				t.Errorf("Want ruleName %s got %s", RuleClusterVersion, violation.RuleName)
			}
			if test.wantCurrent != violation.Current {
				t.Errorf("Want current %s got %s", test.wantCurrent, violation.Current)
			}
			if test.policy.MinimumVersion != violation.Minimum {
				t.Errorf("Want minimum %s got %s", test.policy.MinimumVersion, violation.Minimum)
			}
		})
	}
}
