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
	"testing"

	"github.com/BrunoReboul/rem/utilities/eks"
)

func TestUnitCheckSecretsEncryption(t *testing.T) {
	var tests = []struct {
		name             string
		policy           SecretsEncryptionPolicy
		encryptionConfig []eks.EncryptionConfig
		wantViolation    bool
	}{
		{
			name:          "noEncryptionConfigAtAll",
			policy:        SecretsEncryptionPolicy{Enabled: true},
			wantViolation: true,
		},
		{
			name:   "noEntryCoversSecrets",
			policy: SecretsEncryptionPolicy{Enabled: true},
			encryptionConfig: []eks.EncryptionConfig{
				{Resources: []string{"configmaps"}},
			},
			wantViolation: true,
		},
		{
			name:   "oneEntryCoversSecrets",
			policy: SecretsEncryptionPolicy{Enabled: true},
			encryptionConfig: []eks.EncryptionConfig{
				{Resources: []string{"configmaps"}},
				{Resources: []string{"secrets"}, Provider: eks.Provider{KeyArn: "arn:aws:kms:eu-west-1:123456789012:key/aa-bb"}},
			},
			wantViolation: false,
		},
		{
			name:          "disabledPolicySkips",
			policy:        SecretsEncryptionPolicy{},
			wantViolation: false,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			violation := CheckSecretsEncryption(eks.ClusterConfig{EncryptionConfig: test.encryptionConfig}, test.policy)
			if test.wantViolation && violation == nil {
				t.Errorf("Want a violation got none")
				return
			}
			if !test.wantViolation && violation != nil {
				t.Errorf("Want no violation got %v", violation)
				return
			}
			if violation != nil && RuleSecretsEncryption != violation.RuleName {
				t.Errorf("Want ruleName %s got %s", RuleSecretsEncryption, violation.RuleName)
			}
		})
	}
}
