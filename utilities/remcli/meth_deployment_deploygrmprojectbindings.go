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
	"fmt"

	"github.com/BrunoReboul/rem/utilities/grm"
)

func (deployment *Deployment) deployGRMProjectBindings() (err error) {
	projectBindingsDeployment := grm.NewProjectBindingsDeployment()
	projectBindingsDeployment.Core = &deployment.Core
	projectBindingsDeployment.Artifacts.ProjectID = deployment.Core.SolutionSettings.Hosting.ProjectID
	projectBindingsDeployment.Settings.Roles = deployment.Settings.Service.GCB.ServiceAccountBindings.GRM.Hosting.Project.Roles
	projectBindingsDeployment.Settings.CustomRoles = deployment.Settings.Service.GCB.ServiceAccountBindings.GRM.Hosting.Project.CustomRoles

	// Member = Cloud Build service account
	projectBindingsDeployment.Artifacts.Member = fmt.Sprintf("serviceAccount:%d@cloudbuild.gserviceaccount.com", deployment.Core.ProjectNumber)
	err = projectBindingsDeployment.Deploy()
	if err != nil {
		return err
	}

	if deployment.Core.RemcliServiceAccount != "" {
		// Member = rem cli service account
		projectBindingsDeployment.Artifacts.Member = fmt.Sprintf("serviceAccount:%s", deployment.Core.RemcliServiceAccount)
		err = projectBindingsDeployment.Deploy()
		if err != nil {
			return err
		}
	}
	return nil
}
