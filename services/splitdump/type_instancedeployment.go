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

package splitdump

import (
	"time"

	"github.com/BrunoReboul/rem/utilities/deploy"
	"github.com/BrunoReboul/rem/utilities/gcb"
	"github.com/BrunoReboul/rem/utilities/gcf"
	"github.com/BrunoReboul/rem/utilities/gsu"
	"github.com/BrunoReboul/rem/utilities/iamgt"
	"google.golang.org/api/iam/v1"
)

// InstanceDeployment settings and artifacts structure
type InstanceDeployment struct {
	DumpTimestamp time.Time `yaml:"dumpTimestamp"`
	Core          *deploy.Core
	Settings      struct {
		Service struct {
			GSU gsu.Parameters
			IAM iamgt.Parameters
			GCB gcb.Parameters
			GCF gcf.Parameters
		}
		Instance struct {
			GCF                        gcf.Event
			ScannerBufferSizeKiloBytes int   `yaml:"scannerBufferSizeKiloBytes"`
			SplitThresholdLineNumber   int64 `yaml:"splitThresholdLineNumber"`
		}
	}
}

// NewInstanceDeployment create deployment structure with default settings set
func NewInstanceDeployment() *InstanceDeployment {
	var instanceDeployment InstanceDeployment
	instanceDeployment.Settings.Service.GSU.APIList = []string{
		"appengine.googleapis.com",
		"cloudbuild.googleapis.com",
		"cloudfunctions.googleapis.com",
		"containerregistry.googleapis.com",
		"iam.googleapis.com",
		"pubsub.googleapis.com",
		"storage-component.googleapis.com"}
	instanceDeployment.Settings.Service.GSU.APIList = append(deploy.GetCommonAPIlist(), instanceDeployment.Settings.Service.GSU.APIList...)

	instanceDeployment.Settings.Service.IAM.DeployRoles.Project = []iam.Role{
		projectDeployCoreRole(),
		projectRunRole(),
		iamgt.ProjectDeployExtendedRole()}

	instanceDeployment.Settings.Service.GCB.BuildTimeout = "600s"
	instanceDeployment.Settings.Service.GCB.DeployIAMServiceAccount = true
	instanceDeployment.Settings.Service.GCB.DeployIAMBindings = true
	instanceDeployment.Settings.Service.GCB.ServiceAccountBindings.GRM.Hosting.Project.CustomRoles = []string{
		projectDeployCoreRole().Title,
		iamgt.ProjectDeployExtendedRole().Title}
	instanceDeployment.Settings.Service.GCB.ServiceAccountBindings.IAM.RolesOnServiceAccounts = []string{
		"roles/iam.serviceAccountUser"}

	// The run service account reads parent dumps, writes child dumps, creates per kind topics, publishes one message per line
	instanceDeployment.Settings.Service.GCF.ServiceAccountBindings.GRM.Hosting.Project.Roles = []string{
		"roles/storage.objectAdmin"}
	instanceDeployment.Settings.Service.GCF.ServiceAccountBindings.GRM.Hosting.Project.CustomRoles = []string{
		projectRunRole().Title}

	// Dumps may be large, and splitting is read and write intensive
	instanceDeployment.Settings.Service.GCF.AvailableMemoryMb = 1024
	instanceDeployment.Settings.Service.GCF.RetryTimeOutSeconds = 3600
	instanceDeployment.Settings.Service.GCF.Timeout = "540s"

	// 1024 KiloBytes scanner buffer copes with the largest observed dump lines
	instanceDeployment.Settings.Instance.ScannerBufferSizeKiloBytes = 1024
	instanceDeployment.Settings.Instance.SplitThresholdLineNumber = 1000

	return &instanceDeployment
}

func projectDeployCoreRole() (role iam.Role) {
	role.Title = "rem_splitdump_deploy_core"
	role.Description = "Real-time EKS Monitor splitdump microservice core permissions to deploy"
	role.Stage = "GA"
	role.IncludedPermissions = []string{
		"storage.buckets.get",
		"storage.buckets.create",
		"storage.buckets.update",
		"cloudfunctions.functions.sourceCodeSet",
		"cloudfunctions.functions.get",
		"cloudfunctions.functions.create",
		"cloudfunctions.functions.update",
		"cloudfunctions.operations.get"}
	return role
}

func projectRunRole() (role iam.Role) {
	role.Title = "rem_splitdump_run"
	role.Description = "Real-time EKS Monitor splitdump microservice permissions to run"
	role.Stage = "GA"
	role.IncludedPermissions = []string{
		"pubsub.topics.list",
		"pubsub.topics.get",
		"pubsub.topics.create",
		"pubsub.topics.publish"}
	return role
}
