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

// RuleSpec returns the severity and the policy entry of one rule, to be echoed in violation envelopes.
// The scalingConfig rule is not policy gated: it has no entry and no severity
func (policySet PolicySet) RuleSpec(ruleName string) (severity string, parameters interface{}) {
	switch ruleName {
	case RuleClusterLogging:
		return policySet.ClusterLogging.Severity, policySet.ClusterLogging
	case RuleClusterVersion:
		return policySet.ClusterVersion.Severity, policySet.ClusterVersion
	case RuleEndpointAccess:
		return policySet.EndpointAccess.Severity, policySet.EndpointAccess
	case RuleSecretsEncryption:
		return policySet.SecretsEncryption.Severity, policySet.SecretsEncryption
	case RuleAmiType:
		return policySet.AmiType.Severity, policySet.AmiType
	case RuleUpdateConfig:
		return policySet.UpdateConfig.Severity, policySet.UpdateConfig
	case RuleRequiredTags:
		return policySet.RequiredTags.Severity, policySet.RequiredTags
	}
	return "", nil
}
