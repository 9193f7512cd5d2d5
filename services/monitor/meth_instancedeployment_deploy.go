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

package monitor

import (
	"fmt"
	"log"
	"time"

	"gopkg.in/yaml.v2"

	"github.com/BrunoReboul/rem/utilities/gcf"
	"github.com/BrunoReboul/rem/utilities/gps"
	"github.com/BrunoReboul/rem/utilities/grm"
	"github.com/BrunoReboul/rem/utilities/gsu"
	"github.com/BrunoReboul/rem/utilities/iam"
	"github.com/BrunoReboul/rem/utilities/iamgt"
)

// Deploy a service instance
func (instanceDeployment *InstanceDeployment) Deploy() (err error) {
	start := time.Now()
	// Extended project
	if err = instanceDeployment.deployGSUAPI(); err != nil {
		return err
	}
	if err = instanceDeployment.deployIAMServiceAccount(); err != nil {
		return err
	}
	if err = instanceDeployment.deployGRMProjectBindings(); err != nil {
		return err
	}
	if err = instanceDeployment.deployIAMBindings(); err != nil {
		return err
	}
	// Core project
	if err = instanceDeployment.deployGPSTopic(); err != nil {
		return err
	}
	if err = instanceDeployment.deployGCFFunction(); err != nil {
		return err
	}
	log.Printf("%s done in %v minutes", instanceDeployment.Core.InstanceName, time.Since(start).Minutes())
	return nil
}

func (instanceDeployment *InstanceDeployment) deployGSUAPI() (err error) {
	apiDeployment := gsu.NewAPIDeployment()
	apiDeployment.Core = instanceDeployment.Core
	apiDeployment.Settings.Service.GSU = instanceDeployment.Settings.Service.GSU
	return apiDeployment.Deploy()
}

func (instanceDeployment *InstanceDeployment) deployIAMServiceAccount() (err error) {
	serviceAccountDeployment := iam.NewServiceaccountDeployment()
	serviceAccountDeployment.Core = instanceDeployment.Core
	return serviceAccountDeployment.Deploy()
}

func (instanceDeployment *InstanceDeployment) deployGRMProjectBindings() (err error) {
	projectBindingsDeployment := grm.NewProjectBindingsDeployment()
	projectBindingsDeployment.Core = instanceDeployment.Core
	projectBindingsDeployment.Artifacts.ProjectID = instanceDeployment.Core.SolutionSettings.Hosting.ProjectID
	projectBindingsDeployment.Artifacts.Member = fmt.Sprintf("serviceAccount:%s@%s.iam.gserviceaccount.com",
		instanceDeployment.Core.ServiceName,
		instanceDeployment.Core.SolutionSettings.Hosting.ProjectID)
	projectBindingsDeployment.Settings.Roles = instanceDeployment.Settings.Service.GCF.ServiceAccountBindings.GRM.Hosting.Project.Roles
	projectBindingsDeployment.Settings.CustomRoles = instanceDeployment.Settings.Service.GCF.ServiceAccountBindings.GRM.Hosting.Project.CustomRoles
	return projectBindingsDeployment.Deploy()
}

func (instanceDeployment *InstanceDeployment) deployIAMBindings() (err error) {
	bindingsDeployment := iamgt.NewBindingsDeployment()
	bindingsDeployment.Core = instanceDeployment.Core
	bindingsDeployment.Artifacts.ServiceAccountName = fmt.Sprintf("projects/%s/serviceAccounts/%s@%s.iam.gserviceaccount.com",
		instanceDeployment.Core.SolutionSettings.Hosting.ProjectID,
		instanceDeployment.Core.ServiceName,
		instanceDeployment.Core.SolutionSettings.Hosting.ProjectID)
	bindingsDeployment.Artifacts.Member = fmt.Sprintf("serviceAccount:%s@%s.iam.gserviceaccount.com",
		instanceDeployment.Core.ServiceName,
		instanceDeployment.Core.SolutionSettings.Hosting.ProjectID)
	bindingsDeployment.Settings.Service.IAM = instanceDeployment.Settings.Service.GCF.ServiceAccountBindings.IAM
	return bindingsDeployment.Deploy()
}

func (instanceDeployment *InstanceDeployment) deployGPSTopic() (err error) {
	topicDeployment := gps.NewTopicDeployment()
	topicDeployment.Core = instanceDeployment.Core
	topicDeployment.Settings.TopicName = instanceDeployment.Settings.Instance.GCF.TriggerTopic
	return topicDeployment.Deploy()
}

func (instanceDeployment *InstanceDeployment) deployGCFFunction() (err error) {
	instanceDeployment.DumpTimestamp = time.Now()
	instanceDeploymentYAMLBytes, err := yaml.Marshal(instanceDeployment)
	if err != nil {
		return err
	}
	functionDeployment := gcf.NewFunctionDeployment()
	functionDeployment.Core = instanceDeployment.Core
	functionDeployment.Artifacts.InstanceDeploymentYAMLContent = string(instanceDeploymentYAMLBytes)
	functionDeployment.Settings.Service.GCF = instanceDeployment.Settings.Service.GCF
	functionDeployment.Settings.Instance.GCF.TriggerTopic = instanceDeployment.Settings.Instance.GCF.TriggerTopic
	return functionDeployment.Deploy()
}
