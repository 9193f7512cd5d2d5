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

// CheckScalingConfig reports inconsistent node group autoscaling boundaries.
// Not policy gated: inconsistent boundaries are a defect whatever the policy set says.
// At most one violation per call, the first failing rule wins: min over max, then desired below min, then desired over max
func CheckScalingConfig(nodegroupConfig eks.NodegroupConfig) *Violation {
	scalingConfig := nodegroupConfig.ScalingConfig
	minSize := strconv.FormatInt(scalingConfig.MinSize, 10)
	maxSize := strconv.FormatInt(scalingConfig.MaxSize, 10)
	desiredSize := strconv.FormatInt(scalingConfig.DesiredSize, 10)
	if scalingConfig.MinSize > scalingConfig.MaxSize {
		return &Violation{
			RuleName:    RuleScalingConfig,
			Reason:      fmt.Sprintf("Node group minSize %d is greater than maxSize %d", scalingConfig.MinSize, scalingConfig.MaxSize),
			MinSize:     minSize,
			MaxSize:     maxSize,
			DesiredSize: desiredSize,
		}
	}
	if scalingConfig.DesiredSize < scalingConfig.MinSize {
		return &Violation{
			RuleName:    RuleScalingConfig,
			Reason:      fmt.Sprintf("Node group desiredSize %d is less than minSize %d", scalingConfig.DesiredSize, scalingConfig.MinSize),
			MinSize:     minSize,
			MaxSize:     maxSize,
			DesiredSize: desiredSize,
		}
	}
	if scalingConfig.DesiredSize > scalingConfig.MaxSize {
		return &Violation{
			RuleName:    RuleScalingConfig,
			Reason:      fmt.Sprintf("Node group desiredSize %d is greater than maxSize %d", scalingConfig.DesiredSize, scalingConfig.MaxSize),
			MinSize:     minSize,
			MaxSize:     maxSize,
			DesiredSize: desiredSize,
		}
	}
	return nil
}
