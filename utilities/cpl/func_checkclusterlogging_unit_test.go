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

func TestUnitCheckClusterLogging(t *testing.T) {
	var tests = []struct {
		name          string
		policy        ClusterLoggingPolicy
		clusterConfig eks.ClusterConfig
		wantViolation bool
		wantMissing   string
	}{
		{
			name:   "missingAudit",
			policy: ClusterLoggingPolicy{Enabled: true, RequiredTypes: []string{"api", "audit"}},
			clusterConfig: eks.ClusterConfig{
				Logging: eks.Logging{ClusterLogging: []eks.LogSetup{
					{Types: []string{"api"}, Enabled: true},
				}},
			},
			wantViolation: true,
			wantMissing:   "audit",
		},
		{
			name:   "disabledEntryDoesNotCount",
			policy: ClusterLoggingPolicy{Enabled: true, RequiredTypes: []string{"audit"}},
			clusterConfig: eks.ClusterConfig{
				Logging: eks.Logging{ClusterLogging: []eks.LogSetup{
					{Types: []string{"audit"}, Enabled: false},
				}},
			},
			wantViolation: true,
			wantMissing:   "audit",
		},
		{
			name:   "unionAcrossEntries",
			policy: ClusterLoggingPolicy{Enabled: true, RequiredTypes: []string{"api", "audit", "authenticator"}},
			clusterConfig: eks.ClusterConfig{
				Logging: eks.Logging{ClusterLogging: []eks.LogSetup{
					{Types: []string{"api", "audit"}, Enabled: true},
					{Types: []string{"authenticator"}, Enabled: true},
				}},
			},
			wantViolation: false,
		},
		{
			name:          "missingKeepsRequiredOrder",
			policy:        ClusterLoggingPolicy{Enabled: true, RequiredTypes: []string{"scheduler", "audit", "api"}},
			clusterConfig: eks.ClusterConfig{},
			wantViolation: true,
			wantMissing:   "scheduler audit api",
		},
		{
			name:          "emptyPolicySkips",
			policy:        ClusterLoggingPolicy{Enabled: true},
			clusterConfig: eks.ClusterConfig{},
			wantViolation: false,
		},
		{
			name:          "disabledPolicySkips",
			policy:        ClusterLoggingPolicy{RequiredTypes: []string{"api", "audit"}},
			clusterConfig: eks.ClusterConfig{},
			wantViolation: false,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			violation := CheckClusterLogging(test.clusterConfig, test.policy)
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
			if RuleClusterLogging != violation.RuleName {
				t.Errorf("Want ruleName %s got %s", RuleClusterLogging, violation.RuleName)
			}
			gotMissing := strings.Join(violation.Missing, " ")
			if test.wantMissing != gotMissing {
				t.Errorf("Want missing %s got %s", test.wantMissing, gotMissing)
			}
		})
	}
}
