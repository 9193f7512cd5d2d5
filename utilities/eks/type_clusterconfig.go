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

// ClusterConfig EKS cluster configuration, the fields assessed by compliance rules
type ClusterConfig struct {
	Version            string             `json:"version"`
	Logging            Logging            `json:"logging"`
	ResourcesVpcConfig ResourcesVpcConfig `json:"resourcesVpcConfig"`
	EncryptionConfig   []EncryptionConfig `json:"encryptionConfig"`
	Tags               map[string]string  `json:"tags"`
}

// Logging control plane logging configuration
type Logging struct {
	ClusterLogging []LogSetup `json:"clusterLogging"`
}

// LogSetup enables or disables a set of control plane log types
type LogSetup struct {
	Types   []string `json:"types"`
	Enabled bool     `json:"enabled"`
}

// ResourcesVpcConfig cluster endpoint network configuration
type ResourcesVpcConfig struct {
	EndpointPublicAccess  bool     `json:"endpointPublicAccess"`
	EndpointPrivateAccess bool     `json:"endpointPrivateAccess"`
	PublicAccessCidrs     []string `json:"publicAccessCidrs"`
}

// EncryptionConfig envelope encryption configuration
type EncryptionConfig struct {
	Resources []string `json:"resources"`
	Provider  Provider `json:"provider"`
}

// Provider KMS key used for envelope encryption
type Provider struct {
	KeyArn string `json:"keyArn"`
}
