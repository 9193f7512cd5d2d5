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

package lsk

import "github.com/BrunoReboul/rem/utilities/deploy"

// Parameters structure
type Parameters struct {
	Parent string
	Filter string
}

// SinkDeployment struct
type SinkDeployment struct {
	Core      *deploy.Core
	Artifacts struct {
		SinkName      string `yaml:"sinkName"`
		TopicFullName string `yaml:"topicFullName"`
		Destination   string
	}
	Settings struct {
		Instance struct {
			LSK Parameters
		}
	}
}

// NewSinkDeployment create deployment structure
func NewSinkDeployment() *SinkDeployment {
	return &SinkDeployment{}
}
