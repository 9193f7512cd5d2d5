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

package remcli

import (
	"fmt"
	"os"
	"testing"
)

func TestUnitMakePoliciesCSV(t *testing.T) {
	var testCases = []struct {
		name             string
		repositoryPath   string
		wantInstanceName string
		wantTriggerTopic string
		wantRuleName     string
		wantEnabled      string
		wantSeverity     string
		wantRecordIndex  int
	}{
		{
			name:             "standard",
			repositoryPath:   "testdata/rem_config/standard",
			wantRecordIndex:  1,
			wantInstanceName: "monitor_rces_cluster",
			wantTriggerTopic: "eks-rces-cluster",
			wantRuleName:     "clusterLogging",
			wantEnabled:      "true",
			wantSeverity:     "high",
		},
		{
			name:             "onlyOnePolicy",
			repositoryPath:   "testdata/rem_config/onlyonepolicy",
			wantRecordIndex:  3,
			wantInstanceName: "monitor_rces_cluster",
			wantTriggerTopic: "eks-rces-cluster",
			wantRuleName:     "endpointAccess",
			wantEnabled:      "true",
			wantSeverity:     "critical",
		},
	}

	for _, tc := range testCases {
		tc := tc // https://github.com/golang/go/wiki/CommonMistakes#using-goroutines-on-loop-iterator-variables
		t.Run(tc.name, func(t *testing.T) {
			instanceFolderRelativePaths, err := GetMonitorInstanceFolderRelativePaths(tc.repositoryPath)
			if err != nil {
				t.Fatal(err)
			}
			ps, err := makePoliciesYAML(tc.repositoryPath, instanceFolderRelativePaths)
			if err != nil {
				t.Fatal(err)
			}
			records, err := makePoliciesCSV(tc.repositoryPath, ps)
			if err != nil {
				t.Fatalf("Did not expect an error an got %s", err.Error())
			}
			wantRecords := len(ps.Instances)*8 + 1
			if len(records) != wantRecords {
				t.Errorf("want number of records %d got %d", wantRecords, len(records))
			}
			ouputfilePath := fmt.Sprintf("%s/services/monitor/policies.csv", tc.repositoryPath)
			if _, err = os.Stat(ouputfilePath); err != nil {
				t.Errorf("Did not expect an error an got %s", err.Error())
			}
			record := records[tc.wantRecordIndex]
			if record[0] != tc.wantInstanceName {
				t.Errorf("InstanceName want %s got %s", tc.wantInstanceName, record[0])
			}
			if record[1] != tc.wantTriggerTopic {
				t.Errorf("TriggerTopic want %s got %s", tc.wantTriggerTopic, record[1])
			}
			if record[2] != tc.wantRuleName {
				t.Errorf("RuleName want %s got %s", tc.wantRuleName, record[2])
			}
			if record[3] != tc.wantEnabled {
				t.Errorf("Enabled want %s got %s", tc.wantEnabled, record[3])
			}
			if record[4] != tc.wantSeverity {
				t.Errorf("Severity want %s got %s", tc.wantSeverity, record[4])
			}
			// scalingConfig is not policy gated
			lastRuleRecord := records[8]
			if lastRuleRecord[3] != "always" {
				t.Errorf("scalingConfig Enabled want always got %s", lastRuleRecord[3])
			}
		})
	}
}
