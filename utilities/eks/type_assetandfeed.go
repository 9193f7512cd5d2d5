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

package eks

import (
	"encoding/json"
	"time"

	"github.com/BrunoReboul/rem/utilities/glo"
)

// Asset EKS resource metadata in feed format.
// Owner, violation resolver and display names are resolved by the consuming services, the bridge only fills the raw fields
type Asset struct {
	Name                    string          `json:"name"`
	Owner                   string          `json:"owner,omitempty"`
	ViolationResolver       string          `json:"violationResolver,omitempty"`
	AssetType               string          `json:"assetType"`
	Status                  string          `json:"status"`
	Ancestors               []string        `json:"ancestors"`
	AncestorsDisplayName    []string        `json:"ancestorsDisplayName,omitempty"`
	AncestryPath            string          `json:"ancestryPath,omitempty"`
	AncestryPathDisplayName string          `json:"ancestryPathDisplayName,omitempty"`
	Resource                json.RawMessage `json:"resource"`
}

// FeedMessage EKS configuration change feed format
type FeedMessage struct {
	Asset     Asset     `json:"asset"`
	Window    Window    `json:"window"`
	Deleted   bool      `json:"deleted"`
	Origin    string    `json:"origin"`
	StepStack glo.Steps `json:"step_stack,omitempty"`
}

// Window feed message time window
type Window struct {
	StartTime time.Time `json:"startTime" firestore:"startTime"`
}
