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

package mon

// DashboardParameters structure
type DashboardParameters struct {
	DisplayName          string   `yaml:"displayName"`
	Columns              int64    `yaml:"columns,omitempty"`
	MicroServiceNameList []string `yaml:"microServiceNameList,omitempty"`
	WidgetTypeList       []string `yaml:"widgetTypeList,omitempty"`
	SLOFreshnessLayout   struct {
		SLO              float64 `yaml:"slo,omitempty"`
		Origin           string  `yaml:"origin,omitempty"`
		Scope            string  `yaml:"scope,omitempty"`
		Flow             string  `yaml:"flow,omitempty"`
		ThresholdSeconds int64   `yaml:"thresholdSeconds,omitempty"`
		Columns          int64   `yaml:"columns,omitempty"`
	} `yaml:"sloFreshnessLayout,omitempty"`
}
