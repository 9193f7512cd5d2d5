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

	"github.com/BrunoReboul/rem/services/stream2bq"
	"github.com/BrunoReboul/rem/utilities/eks"
	"github.com/BrunoReboul/rem/utilities/ffo"
	"github.com/BrunoReboul/rem/utilities/solution"
)

// configureStream2bqTables writes stream2bq instance.yml files and subfolders, one per BigQuery table stream
func (deployment *Deployment) configureStream2bqTables() (err error) {
	serviceName := "stream2bq"
	log.Printf("configure %s tables", serviceName)
	var stream2bqInstanceDeployment stream2bq.InstanceDeployment
	stream2bqInstance := stream2bqInstanceDeployment.Settings.Instance
	serviceFolderPath := fmt.Sprintf("%s/%s/%s", deployment.Core.RepositoryPath, solution.MicroserviceParentFolderName, serviceName)
	if _, err := os.Stat(serviceFolderPath); os.IsNotExist(err) {
		os.Mkdir(serviceFolderPath, 0755)
	}
	instancesFolderPath := fmt.Sprintf("%s/%s", serviceFolderPath, solution.InstancesFolderName)
	if _, err := os.Stat(instancesFolderPath); os.IsNotExist(err) {
		os.Mkdir(instancesFolderPath, 0755)
	}

	// violations, complianceStatus
	topicNames := map[string]string{
		"violations":       deployment.Core.SolutionSettings.Hosting.Pubsub.TopicNames.REMViolation,
		"complianceStatus": deployment.Core.SolutionSettings.Hosting.Pubsub.TopicNames.REMComplianceStatus,
	}
	for _, tableName := range []string{"violations", "complianceStatus"} {
		stream2bqInstance.Bigquery.TableName = tableName
		stream2bqInstance.GCF.TriggerTopic = topicNames[tableName]
		instanceFolderPath := makeInstanceFolderPath(instancesFolderPath, fmt.Sprintf("%s_%s",
			serviceName,
			tableName))
		if _, err := os.Stat(instanceFolderPath); os.IsNotExist(err) {
			os.Mkdir(instanceFolderPath, 0755)
		}
		if err = ffo.MarshalYAMLWrite(fmt.Sprintf("%s/%s", instanceFolderPath, solution.InstanceSettingsFileName), stream2bqInstance); err != nil {
			return err
		}
		log.Printf("done %s", instanceFolderPath)
	}

	// assets, one instance per monitored asset kind
	for _, assetType := range deployment.Core.SolutionSettings.Monitoring.AssetTypes.Resources {
		stream2bqInstance.Bigquery.TableName = "assets"
		assetShortName := eks.GetAssetShortKindName(assetType)
		stream2bqInstance.GCF.TriggerTopic = fmt.Sprintf("eks-rces-%s", assetShortName)
		instanceFolderPath := makeInstanceFolderPath(instancesFolderPath, fmt.Sprintf("%s_rces_%s",
			serviceName,
			assetShortName))
		if _, err := os.Stat(instanceFolderPath); os.IsNotExist(err) {
			os.Mkdir(instanceFolderPath, 0755)
		}
		if err = ffo.MarshalYAMLWrite(fmt.Sprintf("%s/%s", instanceFolderPath, solution.InstanceSettingsFileName), stream2bqInstance); err != nil {
			return err
		}
		log.Printf("done %s", instanceFolderPath)
	}
	return nil
}
