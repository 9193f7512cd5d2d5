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

package cpl

// PolicySet the compliance policies, keyed in yaml by rule name.
// Loaded once from the instance settings, then passed by value so an evaluation cannot mutate it.
// Changing a policy means redeploying the instance, not mutating the running one.
// The scalingConfig rule has no entry: it is not policy gated
type PolicySet struct {
	ClusterLogging    ClusterLoggingPolicy    `yaml:"clusterLogging" json:"clusterLogging"`
	ClusterVersion    ClusterVersionPolicy    `yaml:"clusterVersion" json:"clusterVersion"`
	EndpointAccess    EndpointAccessPolicy    `yaml:"endpointAccess" json:"endpointAccess"`
	SecretsEncryption SecretsEncryptionPolicy `yaml:"secretsEncryption" json:"secretsEncryption"`
	AmiType           AmiTypePolicy           `yaml:"amiType" json:"amiType"`
	UpdateConfig      UpdateConfigPolicy      `yaml:"updateConfig" json:"updateConfig"`
	RequiredTags      RequiredTagsPolicy      `yaml:"requiredTags" json:"requiredTags"`
}

// ClusterLoggingPolicy requires control plane log types to be enabled
type ClusterLoggingPolicy struct {
	Enabled       bool     `yaml:"enabled" json:"enabled"`
	Severity      string   `yaml:"severity" json:"severity,omitempty"`
	RequiredTypes []string `yaml:"requiredTypes" json:"requiredTypes"`
}

// ClusterVersionPolicy requires a minimum cluster version
type ClusterVersionPolicy struct {
	Enabled        bool   `yaml:"enabled" json:"enabled"`
	Severity       string `yaml:"severity" json:"severity,omitempty"`
	MinimumVersion string `yaml:"minimumVersion" json:"minimumVersion"`
}

// EndpointAccessPolicy requires the public cluster endpoint to be CIDR restricted
type EndpointAccessPolicy struct {
	Enabled  bool   `yaml:"enabled" json:"enabled"`
	Severity string `yaml:"severity" json:"severity,omitempty"`
}

// SecretsEncryptionPolicy requires envelope encryption of kubernetes secrets
type SecretsEncryptionPolicy struct {
	Enabled  bool   `yaml:"enabled" json:"enabled"`
	Severity string `yaml:"severity" json:"severity,omitempty"`
}

// AmiTypePolicy allow lists node group AMI types
type AmiTypePolicy struct {
	Enabled      bool     `yaml:"enabled" json:"enabled"`
	Severity     string   `yaml:"severity" json:"severity,omitempty"`
	AllowedTypes []string `yaml:"allowedTypes" json:"allowedTypes"`
}

// UpdateConfigPolicy ceils the node group rolling update disruption budget.
// MaxUnavailable is a pointer as absent and an explicit zero mean different things
type UpdateConfigPolicy struct {
	Enabled        bool   `yaml:"enabled" json:"enabled"`
	Severity       string `yaml:"severity" json:"severity,omitempty"`
	MaxUnavailable *int64 `yaml:"maxUnavailable" json:"maxUnavailable"`
}

// RequiredTagsPolicy requires tag keys on node groups
type RequiredTagsPolicy struct {
	Enabled      bool     `yaml:"enabled" json:"enabled"`
	Severity     string   `yaml:"severity" json:"severity,omitempty"`
	RequiredKeys []string `yaml:"requiredKeys" json:"requiredKeys"`
}
