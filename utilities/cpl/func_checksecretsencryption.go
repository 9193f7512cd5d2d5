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

import (
	"github.com/BrunoReboul/rem/utilities/eks"
	"github.com/BrunoReboul/rem/utilities/str"
)

// CheckSecretsEncryption reports a cluster not envelope encrypting its kubernetes secrets:
// either no encryption configuration at all, or none of its entries covering the secrets resource
func CheckSecretsEncryption(clusterConfig eks.ClusterConfig, policy SecretsEncryptionPolicy) *Violation {
	if !policy.Enabled {
		return nil
	}
	for _, encryptionConfig := range clusterConfig.EncryptionConfig {
		if str.Find(encryptionConfig.Resources, "secrets") {
			return nil
		}
	}
	return &Violation{
		RuleName: RuleSecretsEncryption,
		Reason:   "Kubernetes secrets are not envelope encrypted with a KMS key",
	}
}
