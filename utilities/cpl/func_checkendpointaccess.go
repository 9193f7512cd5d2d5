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
	"fmt"

	"github.com/BrunoReboul/rem/utilities/eks"
	"github.com/BrunoReboul/rem/utilities/str"
)

// CheckEndpointAccess reports a public cluster endpoint left without an effective CIDR restriction.
// A private endpoint is compliant whatever the CIDR list contains
func CheckEndpointAccess(clusterConfig eks.ClusterConfig, policy EndpointAccessPolicy) *Violation {
	if !policy.Enabled {
		return nil
	}
	if !clusterConfig.ResourcesVpcConfig.EndpointPublicAccess {
		return nil
	}
	cidrs := clusterConfig.ResourcesVpcConfig.PublicAccessCidrs
	if len(cidrs) == 0 {
		return &Violation{
			RuleName: RuleEndpointAccess,
			Reason:   "Public endpoint access is enabled without any CIDR restriction",
		}
	}
	if str.Find(cidrs, unrestrictedBlock) {
		return &Violation{
			RuleName: RuleEndpointAccess,
			Reason:   fmt.Sprintf("Public endpoint access allows the unrestricted block %s", unrestrictedBlock),
			Cidrs:    cidrs,
		}
	}
	return nil
}
