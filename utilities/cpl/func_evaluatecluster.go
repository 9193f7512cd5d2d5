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

// EvaluateCluster runs the cluster rules over the snapshot in registration order.
// A snapshot of another kind, or one whose status is neither discovered nor OK, yields an empty result:
// that is how a past finding clears once the cluster leaves scope.
// Every rule runs whatever the previous ones returned, rules never short circuit each other
func EvaluateCluster(snapshot eks.Snapshot, policySet PolicySet) Result {
	result := Result{Evidence: []Violation{}}
	if snapshot.Kind != eks.KindCluster {
		return result
	}
	if snapshot.Status != eks.StatusResourceDiscovered && snapshot.Status != eks.StatusOK {
		return result
	}
	clusterConfig := *snapshot.Cluster
	for _, violation := range []*Violation{
		CheckClusterLogging(clusterConfig, policySet.ClusterLogging),
		CheckClusterVersion(clusterConfig, policySet.ClusterVersion),
		CheckEndpointAccess(clusterConfig, policySet.EndpointAccess),
		CheckSecretsEncryption(clusterConfig, policySet.SecretsEncryption),
	} {
		if violation != nil {
			result.Evidence = append(result.Evidence, *violation)
		}
	}
	result.Vulnerable = len(result.Evidence) > 0
	return result
}
