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

package aut

import (
	"encoding/json"
	"io/ioutil"
	"log"
	"os"

	"github.com/BrunoReboul/rem/utilities/str"
)

// Deploy KeysHygieneDeployment check the bridge publisher service account keys, delete stale user managed keys
func (keysHygieneDeployment *KeysHygieneDeployment) Deploy() (err error) {
	var currentKeyName string
	iamService := keysHygieneDeployment.Core.Services.IAMService
	resource := "projects/-/serviceAccounts/" + keysHygieneDeployment.Artifacts.ServiceAccountEmail
	listServiceAccountKeyResponse, err := iamService.Projects.ServiceAccounts.Keys.List(resource).Context(keysHygieneDeployment.Core.Ctx).Do()
	if err != nil {
		return err
	}

	// The local key file is the one shipped to the bridge publisher. When present its name stays
	if _, err := os.Stat(keysHygieneDeployment.Artifacts.KeyJSONFilePath); err == nil {
		var keyRestAPIFormat keyRestAPIFormat
		keyJSONdata, err := ioutil.ReadFile(keysHygieneDeployment.Artifacts.KeyJSONFilePath)
		if err != nil {
			return err
		}
		err = json.Unmarshal(keyJSONdata, &keyRestAPIFormat)
		if err != nil {
			return err
		}
		currentKeyName = keyRestAPIFormat.Name
	}

	for _, serviceAccountKey := range listServiceAccountKeyResponse.Keys {
		switch {
		case serviceAccountKey.Name == currentKeyName:
			log.Printf("%s aut keep current key validAfterTime %s named %s", keysHygieneDeployment.Core.InstanceName, serviceAccountKey.ValidAfterTime, serviceAccountKey.Name)
		case str.Find(keysHygieneDeployment.Settings.KeyNames, serviceAccountKey.Name):
			log.Printf("%s aut keep recorded key validAfterTime %s named %s", keysHygieneDeployment.Core.InstanceName, serviceAccountKey.ValidAfterTime, serviceAccountKey.Name)
		case serviceAccountKey.KeyType == "SYSTEM_MANAGED":
			log.Printf("%s aut ignore system managed key named %s", keysHygieneDeployment.Core.InstanceName, serviceAccountKey.Name)
		default:
			if keysHygieneDeployment.Core.Commands.Check {
				log.Printf("%s aut WARNING stale key validAfterTime %s named %s", keysHygieneDeployment.Core.InstanceName, serviceAccountKey.ValidAfterTime, serviceAccountKey.Name)
				continue
			}
			log.Printf("%s aut delete stale key validAfterTime %s named %s", keysHygieneDeployment.Core.InstanceName, serviceAccountKey.ValidAfterTime, serviceAccountKey.Name)
			_, err = iamService.Projects.ServiceAccounts.Keys.Delete(serviceAccountKey.Name).Context(keysHygieneDeployment.Core.Ctx).Do()
			if err != nil {
				return err
			}
		}
	}
	return nil
}
