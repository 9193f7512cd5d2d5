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
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/BrunoReboul/rem/utilities/eks"
)

func testPolicySet() PolicySet {
	return PolicySet{
		ClusterLogging:    ClusterLoggingPolicy{Enabled: true, RequiredTypes: []string{"api", "audit"}},
		ClusterVersion:    ClusterVersionPolicy{Enabled: true, MinimumVersion: "1.27"},
		EndpointAccess:    EndpointAccessPolicy{Enabled: true},
		SecretsEncryption: SecretsEncryptionPolicy{Enabled: true},
		AmiType:           AmiTypePolicy{Enabled: true, AllowedTypes: []string{"AL2_x86_64"}},
		UpdateConfig:      UpdateConfigPolicy{Enabled: true, MaxUnavailable: int64Value(1)},
		RequiredTags:      RequiredTagsPolicy{Enabled: true, RequiredKeys: []string{"Team"}},
	}
}

func violatingClusterSnapshot() eks.Snapshot {
	return eks.Snapshot{
		Name:   "arn:aws:eks:eu-west-1:123456789012:cluster/rotten",
		Kind:   eks.KindCluster,
		Status: eks.StatusOK,
		Cluster: &eks.ClusterConfig{
			Version: "1.12",
			ResourcesVpcConfig: eks.ResourcesVpcConfig{
				EndpointPublicAccess: true,
				PublicAccessCidrs:    []string{"0.0.0.0/0"},
			},
		},
	}
}

func violatingNodegroupSnapshot() eks.Snapshot {
	return eks.Snapshot{
		Name:   "arn:aws:eks:eu-west-1:123456789012:nodegroup/rotten/workers/aa-bb",
		Kind:   eks.KindNodegroup,
		Status: eks.StatusResourceDiscovered,
		Nodegroup: &eks.NodegroupConfig{
			AmiType: "CUSTOM",
			UpdateConfig: eks.UpdateConfig{
				MaxUnavailable: int64Value(3),
			},
			ScalingConfig: eks.ScalingConfig{
				MinSize:     5,
				MaxSize:     3,
				DesiredSize: 4,
			},
		},
	}
}

func compliantClusterSnapshot() eks.Snapshot {
	return eks.Snapshot{
		Name:   "arn:aws:eks:eu-west-1:123456789012:cluster/clean",
		Kind:   eks.KindCluster,
		Status: eks.StatusOK,
		Cluster: &eks.ClusterConfig{
			Version: "1.27",
			Logging: eks.Logging{ClusterLogging: []eks.LogSetup{
				{Types: []string{"api", "audit"}, Enabled: true},
			}},
			ResourcesVpcConfig: eks.ResourcesVpcConfig{
				EndpointPublicAccess: true,
				PublicAccessCidrs:    []string{"10.0.0.0/8"},
			},
			EncryptionConfig: []eks.EncryptionConfig{
				{Resources: []string{"secrets"}},
			},
		},
	}
}

func ruleNames(result Result) string {
	var names []string
	for _, violation := range result.Evidence {
		names = append(names, violation.RuleName)
	}
	return strings.Join(names, " ")
}

func TestUnitEvaluateClusterRegistrationOrder(t *testing.T) {
	result := EvaluateCluster(violatingClusterSnapshot(), testPolicySet())
	want := "clusterLogging clusterVersion endpointAccess secretsEncryption"
	got := ruleNames(result)
	if want != got {
		t.Errorf("Want %s got %s", want, got)
	}
	if !result.Vulnerable {
		t.Errorf("Want vulnerable got not")
	}
}

func TestUnitEvaluateClusterOrderIsRegistrationNotDetection(t *testing.T) {
	// only the logging and version rules fire: evidence keeps logging first whatever fired internally
	snapshot := compliantClusterSnapshot()
	snapshot.Cluster.Logging = eks.Logging{}
	snapshot.Cluster.Version = "1.12"
	result := EvaluateCluster(snapshot, testPolicySet())
	want := "clusterLogging clusterVersion"
	got := ruleNames(result)
	if want != got {
		t.Errorf("Want %s got %s", want, got)
	}
}

func TestUnitEvaluateNodegroupRegistrationOrder(t *testing.T) {
	result := EvaluateNodegroup(violatingNodegroupSnapshot(), testPolicySet())
	want := "amiType updateConfig requiredTags scalingConfig"
	got := ruleNames(result)
	if want != got {
		t.Errorf("Want %s got %s", want, got)
	}
}

func TestUnitEvaluateOutOfScopeStatusClearsFindings(t *testing.T) {
	var tests = []struct {
		name   string
		status string
	}{
		{"deleted", eks.StatusResourceDeleted},
		{"notRecorded", eks.StatusResourceNotRecorded},
		{"deletedNotRecorded", eks.StatusResourceDeletedNotRecorded},
		{"emptyStatus", ""},
		{"unexpectedStatus", "Wobbly"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			snapshot := violatingClusterSnapshot()
			snapshot.Status = test.status
			result := Evaluate(snapshot, testPolicySet())
			if result.Vulnerable {
				t.Errorf("Want not vulnerable got vulnerable")
			}
			if len(result.Evidence) != 0 {
				t.Errorf("Want no evidence got %v", result.Evidence)
			}
			resultJSON, err := json.Marshal(result)
			if err != nil {
				t.Errorf("json.Marshal %v", err)
			}
			if !strings.Contains(string(resultJSON), `"evidence":[]`) {
				t.Errorf("Want an empty evidence list not null got %s", string(resultJSON))
			}
		})
	}
}

func TestUnitEvaluateKindGate(t *testing.T) {
	if got := ruleNames(EvaluateCluster(violatingNodegroupSnapshot(), testPolicySet())); got != "" {
		t.Errorf("Want no evidence on a nodegroup snapshot got %s", got)
	}
	if got := ruleNames(EvaluateNodegroup(violatingClusterSnapshot(), testPolicySet())); got != "" {
		t.Errorf("Want no evidence on a cluster snapshot got %s", got)
	}
	unsupported := eks.Snapshot{Name: "arn:aws:ec2:eu-west-1:123456789012:instance/i-0abc", Status: eks.StatusOK}
	result := Evaluate(unsupported, testPolicySet())
	if result.Vulnerable || len(result.Evidence) != 0 {
		t.Errorf("Want an empty result on an unsupported kind got %v", result)
	}
}

func TestUnitEvaluateIdempotence(t *testing.T) {
	policySet := testPolicySet()
	for _, snapshot := range []eks.Snapshot{
		violatingClusterSnapshot(),
		violatingNodegroupSnapshot(),
		compliantClusterSnapshot(),
	} {
		firstJSON, err := json.Marshal(Evaluate(snapshot, policySet))
		if err != nil {
			t.Errorf("json.Marshal %v", err)
		}
		secondJSON, err := json.Marshal(Evaluate(snapshot, policySet))
		if err != nil {
			t.Errorf("json.Marshal %v", err)
		}
		if !bytes.Equal(firstJSON, secondJSON) {
			t.Errorf("Want identical results got %s then %s", string(firstJSON), string(secondJSON))
		}
	}
}

func TestUnitEvaluateVulnerableMatchesEvidence(t *testing.T) {
	result := Evaluate(compliantClusterSnapshot(), testPolicySet())
	if result.Vulnerable {
		t.Errorf("Want not vulnerable got vulnerable %v", result.Evidence)
	}
	if len(result.Evidence) != 0 {
		t.Errorf("Want no evidence got %v", result.Evidence)
	}
	result = Evaluate(violatingClusterSnapshot(), testPolicySet())
	if !result.Vulnerable {
		t.Errorf("Want vulnerable got not")
	}
	if len(result.Evidence) == 0 {
		t.Errorf("Want evidence got none")
	}
}
