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
	"strings"

	"github.com/BrunoReboul/rem/utilities/eks"
)

// CheckClusterLogging reports the required control plane log types not enabled on the cluster.
// The enabled set is the union of the types of every logging entry flagged enabled.
// Missing types keep the required list order
func CheckClusterLogging(clusterConfig eks.ClusterConfig, policy ClusterLoggingPolicy) *Violation {
	if !policy.Enabled || len(policy.RequiredTypes) == 0 {
		return nil
	}
	enabledTypes := make(map[string]bool)
	for _, logSetup := range clusterConfig.Logging.ClusterLogging {
		if logSetup.Enabled {
			for _, logType := range logSetup.Types {
				enabledTypes[logType] = true
			}
		}
	}
	var missing []string
	for _, requiredType := range policy.RequiredTypes {
		if !enabledTypes[requiredType] {
			missing = append(missing, requiredType)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return &Violation{
		RuleName: RuleClusterLogging,
		Reason:   fmt.Sprintf("Control plane logging misses required log types %s", strings.Join(missing, ", ")),
		Required: policy.RequiredTypes,
		Missing:  missing,
	}
}
