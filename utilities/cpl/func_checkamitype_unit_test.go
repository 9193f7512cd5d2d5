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

func TestUnitCheckAmiType(t *testing.T) {
	var tests = []struct {
		name          string
		policy        AmiTypePolicy
		amiType       string
		wantViolation bool
		wantCurrent   string
	}{
		{
			name:          "allowed",
			policy:        AmiTypePolicy{Enabled: true, AllowedTypes: []string{"AL2_x86_64", "BOTTLEROCKET_x86_64"}},
			amiType:       "BOTTLEROCKET_x86_64",
			wantViolation: false,
		},
		{
			name:          "notAllowed",
			policy:        AmiTypePolicy{Enabled: true, AllowedTypes: []string{"AL2_x86_64"}},
			amiType:       "CUSTOM",
			wantViolation: true,
			wantCurrent:   "CUSTOM",
		},
		{
			name:          "absentIsUnknown",
			policy:        AmiTypePolicy{Enabled: true, AllowedTypes: []string{"AL2_x86_64"}},
			wantViolation: true,
			wantCurrent:   "unknown",
		},
		{
			name:          "noAllowListSkips",
			policy:        AmiTypePolicy{Enabled: true},
			amiType:       "CUSTOM",
			wantViolation: false,
		},
		{
			name:          "disabledPolicySkips",
			policy:        AmiTypePolicy{AllowedTypes: []string{"AL2_x86_64"}},
			amiType:       "CUSTOM",
			wantViolation: false,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			violation := CheckAmiType(eks.NodegroupConfig{AmiType: test.amiType}, test.policy)
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
			if RuleAmiType != violation.RuleName {
				t.Errorf("Want ruleName %s got %s", RuleAmiType, violation.RuleName)
			}
			if test.wantCurrent != violation.Current {
				t.Errorf("Want current %s got %s", test.wantCurrent, violation.Current)
			}
		})
	}
}
