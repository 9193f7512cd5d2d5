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

func TestUnitCheckEndpointAccess(t *testing.T) {
	var tests = []struct {
		name          string
		policy        EndpointAccessPolicy
		publicAccess  bool
		cidrs         []string
		wantViolation bool
	}{
		{
			name:          "publicWithoutCidrs",
			policy:        EndpointAccessPolicy{Enabled: true},
			publicAccess:  true,
			wantViolation: true,
		},
		{
			name:          "publicWithUnrestrictedBlock",
			policy:        EndpointAccessPolicy{Enabled: true},
			publicAccess:  true,
			cidrs:         []string{"10.0.0.0/8", "0.0.0.0/0"},
			wantViolation: true,
		},
		{
			name:          "publicRestricted",
			policy:        EndpointAccessPolicy{Enabled: true},
			publicAccess:  true,
			cidrs:         []string{"10.0.0.0/8"},
			wantViolation: false,
		},
		{
			name:          "privateWhateverTheCidrs",
			policy:        EndpointAccessPolicy{Enabled: true},
			publicAccess:  false,
			cidrs:         []string{"0.0.0.0/0"},
			wantViolation: false,
		},
		{
			name:          "disabledPolicySkips",
			policy:        EndpointAccessPolicy{},
			publicAccess:  true,
			wantViolation: false,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			clusterConfig := eks.ClusterConfig{
				ResourcesVpcConfig: eks.ResourcesVpcConfig{
					EndpointPublicAccess: test.publicAccess,
					PublicAccessCidrs:    test.cidrs,
				},
			}
			violation := CheckEndpointAccess(clusterConfig, test.policy)
			if test.wantViolation && violation == nil {
				t.Errorf("Want a violation got none")
				return
			}
			if !test.wantViolation && violation != nil {
				t.Errorf("Want no violation got %v", violation)
				return
			}
			if violation != nil && RuleEndpointAccess != violation.RuleName {
				t.Errorf("Want ruleName %s got %s", RuleEndpointAccess, violation.RuleName)
			}
		})
	}
}
