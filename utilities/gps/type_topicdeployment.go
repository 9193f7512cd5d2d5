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

package gps

import "github.com/BrunoReboul/rem/utilities/deploy"

// TopicDeployment struct
type TopicDeployment struct {
	Core     *deploy.Core
	Settings struct {
		TopicName string `yaml:"topicName"`
	}
}

// NewTopicDeployment create deployment structure
func NewTopicDeployment() *TopicDeployment {
	return &TopicDeployment{}
}
