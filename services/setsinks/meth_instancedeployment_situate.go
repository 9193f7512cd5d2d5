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

package setsinks

import (
	"fmt"
)

// bridgeServiceName is the Cloud Run service logging AWS Config notifications as jsonPayload
const bridgeServiceName = "eks-config-bridge"

// Situate complement settings taking in account the situation for service and instance settings
func (instanceDeployment *InstanceDeployment) Situate() (err error) {
	projectID := instanceDeployment.Core.SolutionSettings.Hosting.ProjectID
	instanceDeployment.Artifacts.SinkName = fmt.Sprintf("rem-%s-config-notifications",
		instanceDeployment.Core.EnvironmentName)
	instanceDeployment.Artifacts.TopicName = instanceDeployment.Core.SolutionSettings.Hosting.Pubsub.TopicNames.EKSConfigNotifications
	instanceDeployment.Artifacts.TopicFullName = fmt.Sprintf("projects/%s/topics/%s",
		projectID,
		instanceDeployment.Artifacts.TopicName)
	instanceDeployment.Artifacts.Destination = fmt.Sprintf("pubsub.googleapis.com/%s",
		instanceDeployment.Artifacts.TopicFullName)
	if instanceDeployment.Settings.Instance.LSK.Parent == "" {
		instanceDeployment.Settings.Instance.LSK.Parent = fmt.Sprintf("projects/%s", projectID)
	}
	if instanceDeployment.Settings.Instance.LSK.Filter == "" {
		instanceDeployment.Settings.Instance.LSK.Filter = fmt.Sprintf(
			`resource.type="cloud_run_revision" resource.labels.service_name="%s"`,
			bridgeServiceName)
	}
	return nil
}
