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
	"log"
)

// makePoliciesDocs renders the monitor policy sets as yaml, csv and readme summary docs
func (deployment *Deployment) makePoliciesDocs() (err error) {
	instanceFolderRelativePaths, err := GetMonitorInstanceFolderRelativePaths(deployment.Core.RepositoryPath)
	if err != nil {
		return err
	}
	log.Printf("monitor found %d policy set(s)", len(instanceFolderRelativePaths))

	ps, err := makePoliciesYAML(deployment.Core.RepositoryPath, instanceFolderRelativePaths)
	if err != nil {
		return err
	}
	if _, err = makePoliciesCSV(deployment.Core.RepositoryPath, ps); err != nil {
		return err
	}
	if _, err = makePoliciesReadme(deployment.Core.RepositoryPath, ps); err != nil {
		return err
	}
	return nil
}
