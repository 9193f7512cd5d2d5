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

package convertconfig2feed

import (
	"testing"
)

func TestUnitNewInstanceDeployment(t *testing.T) {
	var testCases = []struct {
		name      string
		roleTitle string
	}{
		{
			name:      "convertconfig2feed_deploy_core",
			roleTitle: "rem_convertconfig2feed_deploy_core",
		},
		{
			name:      "convertconfig2feed_run",
			roleTitle: "rem_convertconfig2feed_run",
		},
	}
	instanceDeployment := NewInstanceDeployment()
	for _, tc := range testCases {
		tc := tc // https://github.com/golang/go/wiki/CommonMistakes#using-goroutines-on-loop-iterator-variables
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			found := false
			for _, role := range instanceDeployment.Settings.Service.IAM.DeployRoles.Project {
				if role.Title == tc.roleTitle {
					found = true
					if role.Stage != "GA" {
						t.Errorf("Error want stage 'GA' and got '%s'", role.Stage)
					}
					if len(role.IncludedPermissions) == 0 {
						t.Errorf("Error role '%s' has no included permissions", role.Title)
					}
				}
			}
			if !found {
				t.Errorf("Error project deploy roles do not include '%s'", tc.roleTitle)
			}
		})
	}
}
