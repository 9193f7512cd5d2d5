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
	"strings"
	"testing"
)

func TestUnitMakePoliciesReadme(t *testing.T) {
	var testCases = []struct {
		name           string
		repositoryPath string
		wantContains   []string
	}{
		{
			name:           "standard",
			repositoryPath: "testdata/rem_config/standard",
			wantContains: []string{
				"# Compliance policies summary",
				"## monitor_rces_cluster",
				"## monitor_rces_nodegroup",
				"triggered by eks-rces-nodegroup",
				"**endpointAccess** enabled (*critical*)",
				"**scalingConfig** always on",
				"secretsEncryption disabled",
			},
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
				t.Fatal(err)
			}
			readme, err := makePoliciesReadme(tc.repositoryPath, ps)
			if err != nil {
				t.Fatalf("Did not expect an error an got %s", err.Error())
			}
			for _, want := range tc.wantContains {
				if !strings.Contains(readme, want) {
					t.Errorf("readme should contains '%s'", want)
				}
			}
			ouputfilePath := tc.repositoryPath + "/services/monitor/readme.md"
			if _, err = os.Stat(ouputfilePath); err != nil {
				t.Errorf("Did not expect an error an got %s", err.Error())
			}
		})
	}
}
