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
	"log"
	"os"

	"github.com/BrunoReboul/rem/services/convertconfig2feed"
	"github.com/BrunoReboul/rem/utilities/ffo"
	"github.com/BrunoReboul/rem/utilities/solution"
)

// configureConvertconfig2feedSingleInstance
func (deployment *Deployment) configureConvertconfig2feedSingleInstance() (err error) {
	serviceName := "convertconfig2feed"
	log.Printf("configure %s single instance", serviceName)
	var convertconfig2feedInstanceDeployment convertconfig2feed.InstanceDeployment
	convertconfig2feedInstance := convertconfig2feedInstanceDeployment.Settings.Instance
	serviceFolderPath := fmt.Sprintf("%s/%s/%s", deployment.Core.RepositoryPath, solution.MicroserviceParentFolderName, serviceName)
	if _, err := os.Stat(serviceFolderPath); os.IsNotExist(err) {
		os.Mkdir(serviceFolderPath, 0755)
	}
	instancesFolderPath := fmt.Sprintf("%s/%s", serviceFolderPath, solution.InstancesFolderName)
	if _, err := os.Stat(instancesFolderPath); os.IsNotExist(err) {
		os.Mkdir(instancesFolderPath, 0755)
	}

	convertconfig2feedInstance.GCF.TriggerTopic = deployment.Core.SolutionSettings.Hosting.Pubsub.TopicNames.EKSConfigNotifications

	instanceFolderPath := makeInstanceFolderPath(instancesFolderPath, fmt.Sprintf("%s_single_instance",
		serviceName))
	if _, err := os.Stat(instanceFolderPath); os.IsNotExist(err) {
		os.Mkdir(instanceFolderPath, 0755)
	}
	if err = ffo.MarshalYAMLWrite(fmt.Sprintf("%s/%s", instanceFolderPath, solution.InstanceSettingsFileName), convertconfig2feedInstance); err != nil {
		return err
	}
	log.Printf("done %s", instanceFolderPath)
	return nil
}
