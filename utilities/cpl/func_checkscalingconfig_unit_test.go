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
	"strings"
	"testing"

	"github.com/BrunoReboul/rem/utilities/eks"
)

func TestUnitCheckScalingConfig(t *testing.T) {
	var tests = []struct {
		name          string
		minSize       int64
		maxSize       int64
		desiredSize   int64
		wantViolation bool
		wantReasonHas string
	}{
		{
			name:          "consistent",
			minSize:       1,
			maxSize:       5,
			desiredSize:   3,
			wantViolation: false,
		},
		{
			name:          "minOverMaxWinsOverDesiredRules",
			minSize:       5,
			maxSize:       3,
			desiredSize:   4,
			wantViolation: true,
			wantReasonHas: "minSize 5 is greater than maxSize 3",
		},
		{
			name:          "desiredBelowMin",
			minSize:       2,
			maxSize:       5,
			desiredSize:   1,
			wantViolation: true,
			wantReasonHas: "desiredSize 1 is less than minSize 2",
		},
		{
			name:          "desiredOverMax",
			minSize:       1,
			maxSize:       3,
			desiredSize:   4,
			wantViolation: true,
			wantReasonHas: "desiredSize 4 is greater than maxSize 3",
		},
		{
			name:          "boundariesAreInclusive",
			minSize:       2,
			maxSize:       2,
			desiredSize:   2,
			wantViolation: false,
		},
		{
			name:          "allZeroIsConsistent",
			wantViolation: false,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			nodegroupConfig := eks.NodegroupConfig{
				ScalingConfig: eks.ScalingConfig{
					MinSize:     test.minSize,
					MaxSize:     test.maxSize,
					DesiredSize: test.desiredSize,
				},
			}
			violation := CheckScalingConfig(nodegroupConfig)
			if !test.wantViolation {
				if violation != nil {
					t.Errorf("Want no violation got %v", violation)
				}
				return
			}
			if violation == nil {
				t.Errorf("Want a violation got none")
				return
			}
			if RuleScalingConfig != violation.RuleName {
				t.Errorf("Want ruleName %s got %s", RuleScalingConfig, violation.RuleName)
			}
			if !strings.Contains(violation.Reason, test.wantReasonHas) {
				t.Errorf("Want reason containing %s got %s", test.wantReasonHas, violation.Reason)
			}
		})
	}
}
