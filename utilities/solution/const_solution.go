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

package solution

// SolutionName the solution short name
const SolutionName = "rem"

// PathToFunctionCode path from the cloud function runtime working directory to the function code
const PathToFunctionCode = "./"

// SettingsFileName name of the settings file deployed alongside each cloud function instance
const SettingsFileName = "settings.yml"

// SolutionSettingsFileName name of the solution wide settings file at the repository root
const SolutionSettingsFileName = "solution.yml"

// ServiceSettingsFileName name of the per microservice settings file
const ServiceSettingsFileName = "service.yml"

// InstanceSettingsFileName name of the per instance settings file
const InstanceSettingsFileName = "instance.yml"

// MicroserviceParentFolderName name of the folder hosting one folder per microservice
const MicroserviceParentFolderName = "services"

// InstancesFolderName name of the folder hosting one folder per instance in a microservice folder
const InstancesFolderName = "instances"

// DevelopmentEnvironmentName name of the development environment
const DevelopmentEnvironmentName = "dev"
