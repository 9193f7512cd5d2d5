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
)

// CheckClusterVersion reports a cluster version below the required minimum, or an absent one
func CheckClusterVersion(clusterConfig eks.ClusterConfig, policy ClusterVersionPolicy) *Violation {
	if !policy.Enabled || policy.MinimumVersion == "" {
		return nil
	}
	if clusterConfig.Version == "" {
		return &Violation{
			RuleName: RuleClusterVersion,
			Reason:   fmt.Sprintf("Cluster version is unknown, the required minimum is %s", policy.MinimumVersion),
			Minimum:  policy.MinimumVersion,
			Current:  CurrentUnknown,
		}
	}
	if CompareVersions(clusterConfig.Version, policy.MinimumVersion) < 0 {
		return &Violation{
			RuleName: RuleClusterVersion,
			Reason:   fmt.Sprintf("Cluster version %s is below the required minimum %s", clusterConfig.Version, policy.MinimumVersion),
			Minimum:  policy.MinimumVersion,
			Current:  clusterConfig.Version,
		}
	}
	return nil
}
