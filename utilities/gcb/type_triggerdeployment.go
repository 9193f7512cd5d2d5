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

package gcb

import (
	"github.com/BrunoReboul/rem/utilities/deploy"
	"github.com/BrunoReboul/rem/utilities/grm"
	"github.com/BrunoReboul/rem/utilities/iamgt"
	"google.golang.org/api/cloudbuild/v1"
)

// Parameters structure
type Parameters struct {
	BuildTimeout            string `yaml:"buildTimeout"`
	QueueTTL                string `yaml:"queueTTL"`
	DeployIAMServiceAccount bool   `yaml:"deployIAMServiceAccount"`
	DeployIAMBindings       bool   `yaml:"deployIAMBindings"`
	ServiceAccountBindings  struct {
		GRM grm.Bindings
		IAM iamgt.Bindings
	} `yaml:"serviceAccountBindings"`
}

// TriggerDeployment struct
type TriggerDeployment struct {
	Core      *deploy.Core
	Artifacts struct {
		BuildTrigger           cloudbuild.BuildTrigger            `yaml:"-"`
		ProjectsTriggersService *cloudbuild.ProjectsTriggersService `yaml:"-"`
	}
	Settings struct {
		Service struct {
			GCB Parameters
		}
	}
}

// NewTriggerDeployment create deployment structure
func NewTriggerDeployment() *TriggerDeployment {
	return &TriggerDeployment{}
}
