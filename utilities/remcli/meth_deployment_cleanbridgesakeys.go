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

	"github.com/BrunoReboul/rem/utilities/aut"
)

// cleanBridgeSAKeys deletes the stale user managed keys of the EKS bridge publisher service account
func (deployment *Deployment) cleanBridgeSAKeys() (err error) {
	bridgeServiceAccountName := deployment.Core.SolutionSettings.Monitoring.BridgeServiceAccountName
	if bridgeServiceAccountName == "" {
		return nil
	}
	keysHygieneDeployment := aut.NewKeysHygieneDeployment()
	keysHygieneDeployment.Core = &deployment.Core
	keysHygieneDeployment.Artifacts.ServiceAccountEmail = fmt.Sprintf("%s@%s.iam.gserviceaccount.com",
		bridgeServiceAccountName,
		deployment.Core.SolutionSettings.Hosting.ProjectID)
	keysHygieneDeployment.Artifacts.KeyJSONFilePath = fmt.Sprintf("%s/%s.json",
		deployment.Core.RepositoryPath,
		bridgeServiceAccountName)
	return keysHygieneDeployment.Deploy()
}
