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

// CheckAmiType reports a node group AMI type absent or not in the allowed list
func CheckAmiType(nodegroupConfig eks.NodegroupConfig, policy AmiTypePolicy) *Violation {
	if !policy.Enabled || len(policy.AllowedTypes) == 0 {
		return nil
	}
	if nodegroupConfig.AmiType == "" {
		return &Violation{
			RuleName: RuleAmiType,
			Reason:   "Node group AMI type is unknown",
			Allowed:  policy.AllowedTypes,
			Current:  CurrentUnknown,
		}
	}
	if !str.Find(policy.AllowedTypes, nodegroupConfig.AmiType) {
		return &Violation{
			RuleName: RuleAmiType,
			Reason:   fmt.Sprintf("Node group AMI type %s is not in the allowed list", nodegroupConfig.AmiType),
			Allowed:  policy.AllowedTypes,
			Current:  nodegroupConfig.AmiType,
		}
	}
	return nil
}
