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

package remcli

import (
	"os"
	"testing"
)

func TestUnitMakePoliciesYAML(t *testing.T) {
	var testCases = []struct {
		name              string
		repositoryPath    string
		wantInstances     int
		wantRulesPerInst  int
		wantFirstInstance string
	}{
		{
			name:              "standard",
			repositoryPath:    "testdata/rem_config/standard",
			wantInstances:     2,
			wantRulesPerInst:  8,
			wantFirstInstance: "monitor_rces_cluster",
		},
		{
			name:              "onlyOnePolicy",
			repositoryPath:    "testdata/rem_config/onlyonepolicy",
			wantInstances:     1,
			wantRulesPerInst:  8,
			wantFirstInstance: "monitor_rces_cluster",
		},
	}
	for _, tc := range testCases {
		tc := tc // https://github.com/golang/go/wiki/CommonMistakes#using-goroutines-on-loop-iterator-variables
		t.Run(tc.name, func(t *testing.T) {
			instanceFolderRelativePaths, err := GetMonitorInstanceFolderRelativePaths(tc.repositoryPath)
			if err != nil {
				t.Fatal(err)
			}
			ps, err := makePoliciesYAML(tc.repositoryPath, instanceFolderRelativePaths)
			if err != nil {
				t.Fatalf("Did not expect an error an got %s", err.Error())
			}
			if len(ps.Instances) != tc.wantInstances {
				t.Errorf("want %d instances got %d", tc.wantInstances, len(ps.Instances))
			}
			if ps.Instances[0].Name != tc.wantFirstInstance {
				t.Errorf("want first instance %s got %s", tc.wantFirstInstance, ps.Instances[0].Name)
			}
			for _, instance := range ps.Instances {
				if len(instance.Rules) != tc.wantRulesPerInst {
					t.Errorf("%s want %d rules got %d", instance.Name, tc.wantRulesPerInst, len(instance.Rules))
				}
			}
			ouputfilePath := tc.repositoryPath + "/services/monitor/policies.yaml"
			if _, err = os.Stat(ouputfilePath); err != nil {
				t.Errorf("Did not expect an error an got %s", err.Error())
			}
		})
	}
}
