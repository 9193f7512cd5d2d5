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
	"strconv"

	"github.com/BrunoReboul/rem/utilities/eks"
)

// CheckUpdateConfig reports a node group maxUnavailable absent or exceeding the policy ceiling, strictly
func CheckUpdateConfig(nodegroupConfig eks.NodegroupConfig, policy UpdateConfigPolicy) *Violation {
	if !policy.Enabled || policy.MaxUnavailable == nil {
		return nil
	}
	ceiling := *policy.MaxUnavailable
	if nodegroupConfig.UpdateConfig.MaxUnavailable == nil {
		return &Violation{
			RuleName: RuleUpdateConfig,
			Reason:   fmt.Sprintf("Node group maxUnavailable is not set, the ceiling is %d", ceiling),
			Limit:    strconv.FormatInt(ceiling, 10),
			Current:  CurrentNotSet,
		}
	}
	maxUnavailable := *nodegroupConfig.UpdateConfig.MaxUnavailable
	if maxUnavailable > ceiling {
		return &Violation{
			RuleName: RuleUpdateConfig,
			Reason:   fmt.Sprintf("Node group maxUnavailable %d exceeds the ceiling %d", maxUnavailable, ceiling),
			Limit:    strconv.FormatInt(ceiling, 10),
			Current:  strconv.FormatInt(maxUnavailable, 10),
		}
	}
	return nil
}
