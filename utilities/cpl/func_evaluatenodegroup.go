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
	"github.com/BrunoReboul/rem/utilities/eks"
)

// EvaluateNodegroup runs the node group rules over the snapshot in registration order.
// Same gates as EvaluateCluster: kind first, then lifecycle status
func EvaluateNodegroup(snapshot eks.Snapshot, policySet PolicySet) Result {
	result := Result{Evidence: []Violation{}}
	if snapshot.Kind != eks.KindNodegroup {
		return result
	}
	if snapshot.Status != eks.StatusResourceDiscovered && snapshot.Status != eks.StatusOK {
		return result
	}
	nodegroupConfig := *snapshot.Nodegroup
	for _, violation := range []*Violation{
		CheckAmiType(nodegroupConfig, policySet.AmiType),
		CheckUpdateConfig(nodegroupConfig, policySet.UpdateConfig),
		CheckRequiredTags(nodegroupConfig, policySet.RequiredTags),
		CheckScalingConfig(nodegroupConfig),
	} {
		if violation != nil {
			result.Evidence = append(result.Evidence, *violation)
		}
	}
	result.Vulnerable = len(result.Evidence) > 0
	return result
}
