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
	"strings"
	"testing"

	"github.com/BrunoReboul/rem/utilities/eks"
)

func TestUnitCheckRequiredTags(t *testing.T) {
	var tests = []struct {
		name          string
		policy        RequiredTagsPolicy
		tags          map[string]string
		wantViolation bool
		wantMissing   string
	}{
		{
			name:          "missingTeam",
			policy:        RequiredTagsPolicy{Enabled: true, RequiredKeys: []string{"Environment", "Team"}},
			tags:          map[string]string{"Environment": "prod"},
			wantViolation: true,
			wantMissing:   "Team",
		},
		{
			name:          "allPresent",
			policy:        RequiredTagsPolicy{Enabled: true, RequiredKeys: []string{"Environment", "Team"}},
			tags:          map[string]string{"Environment": "prod", "Team": "payments"},
			wantViolation: false,
		},
		{
			name:          "emptyValueStillCounts",
			policy:        RequiredTagsPolicy{Enabled: true, RequiredKeys: []string{"Team"}},
			tags:          map[string]string{"Team": ""},
			wantViolation: false,
		},
		{
			name:          "missingKeepsPolicyOrder",
			policy:        RequiredTagsPolicy{Enabled: true, RequiredKeys: []string{"Team", "CostCenter", "Environment"}},
			tags:          map[string]string{"CostCenter": "42"},
			wantViolation: true,
			wantMissing:   "Team Environment",
		},
		{
			name:          "noTagsAtAll",
			policy:        RequiredTagsPolicy{Enabled: true, RequiredKeys: []string{"Team"}},
			wantViolation: true,
			wantMissing:   "Team",
		},
		{
			name:          "emptyPolicySkips",
			policy:        RequiredTagsPolicy{Enabled: true},
			wantViolation: false,
		},
		{
			name:          "disabledPolicySkips",
			policy:        RequiredTagsPolicy{RequiredKeys: []string{"Team"}},
			wantViolation: false,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			violation := CheckRequiredTags(eks.NodegroupConfig{Tags: test.tags}, test.policy)
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
			if RuleRequiredTags != violation.RuleName {
				t.Errorf("Want ruleName %s got %s", RuleRequiredTags, violation.RuleName)
			}
			gotMissing := strings.Join(violation.Missing, " ")
			if test.wantMissing != gotMissing {
				t.Errorf("Want missing %s got %s", test.wantMissing, gotMissing)
			}
		})
	}
}
