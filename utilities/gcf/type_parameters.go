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

package gcf

import (
	"github.com/BrunoReboul/rem/utilities/grm"
	"github.com/BrunoReboul/rem/utilities/iamgt"
)

// Parameters structure
type Parameters struct {
	Description            string `yaml:"description"`
	FunctionType           string `yaml:"functionType"`
	AvailableMemoryMb      int64  `yaml:"availableMemoryMb"`
	RetryTimeOutSeconds    int64  `yaml:"retryTimeOutSeconds"`
	Timeout                string
	ServiceAccountBindings struct {
		GRM grm.Bindings
		IAM iamgt.Bindings
	} `yaml:"serviceAccountBindings"`
}

// Event defines the instance level trigger of a cloud function
type Event struct {
	TriggerTopic string `yaml:"triggerTopic,omitempty"`
	BucketName   string `yaml:"bucketName,omitempty"`
}
