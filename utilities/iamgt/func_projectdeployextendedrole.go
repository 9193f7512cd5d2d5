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

package iamgt

import "google.golang.org/api/iam/v1"

// ProjectDeployExtendedRole returns the extended permissions common to deploy any microservice instance
func ProjectDeployExtendedRole() (role iam.Role) {
	role.Title = "rem_deploy_extended"
	role.Description = "Real-time EKS Monitor microservice extended permissions to deploy"
	role.Stage = "GA"
	role.IncludedPermissions = []string{
		"serviceusage.services.list",
		"serviceusage.services.enable",
		"appengine.applications.get",
		"appengine.applications.create",
		"servicemanagement.services.bind",
		"storage.buckets.create",
		"iam.serviceAccounts.get",
		"iam.serviceAccounts.create",
		"resourcemanager.projects.getIamPolicy",
		"resourcemanager.projects.setIamPolicy",
		"iam.serviceAccounts.getIamPolicy",
		"iam.serviceAccounts.setIamPolicy"}
	return role
}
