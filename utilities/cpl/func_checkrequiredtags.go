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

// CheckRequiredTags reports the policy required tag keys absent from the node group tags.
// Missing keys keep the policy declared order
func CheckRequiredTags(nodegroupConfig eks.NodegroupConfig, policy RequiredTagsPolicy) *Violation {
	if !policy.Enabled || len(policy.RequiredKeys) == 0 {
		return nil
	}
	var missing []string
	for _, requiredKey := range policy.RequiredKeys {
		if _, ok := nodegroupConfig.Tags[requiredKey]; !ok {
			missing = append(missing, requiredKey)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return &Violation{
		RuleName: RuleRequiredTags,
		Reason:   fmt.Sprintf("Node group misses required tags %s", strings.Join(missing, ", ")),
		Required: policy.RequiredKeys,
		Missing:  missing,
	}
}
