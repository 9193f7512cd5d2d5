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

// NodegroupConfig EKS node group configuration, the fields assessed by compliance rules
type NodegroupConfig struct {
	AmiType       string            `json:"amiType"`
	Version       string            `json:"version"`
	ClusterName   string            `json:"clusterName"`
	ScalingConfig ScalingConfig     `json:"scalingConfig"`
	UpdateConfig  UpdateConfig      `json:"updateConfig"`
	Tags          map[string]string `json:"tags"`
}

// ScalingConfig node group autoscaling boundaries
type ScalingConfig struct {
	MinSize     int64 `json:"minSize"`
	MaxSize     int64 `json:"maxSize"`
	DesiredSize int64 `json:"desiredSize"`
}

// UpdateConfig rolling update disruption budget. MaxUnavailable is a pointer as absent and zero mean different things
type UpdateConfig struct {
	MaxUnavailable           *int64 `json:"maxUnavailable"`
	MaxUnavailablePercentage *int64 `json:"maxUnavailablePercentage"`
}
