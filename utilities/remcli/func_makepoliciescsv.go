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
	"encoding/csv"
	"fmt"
	"os"

	"github.com/BrunoReboul/rem/utilities/solution"
)

func makePoliciesCSV(repositoryPath string, ps policiesSummary) (records [][]string, err error) {
	records = [][]string{
		{
			"instanceName", "triggerTopic", "ruleName", "enabled", "severity",
		},
	}
	for _, instance := range ps.Instances {
		for _, rule := range instance.Rules {
			record := []string{instance.Name,
				instance.TriggerTopic,
				rule.Name,
				rule.Enabled,
				rule.Severity}
			records = append(records, record)
		}
	}
	file, err := os.OpenFile(fmt.Sprintf("%s/%s/monitor/policies.csv", repositoryPath, solution.MicroserviceParentFolderName),
		os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return records, err
	}
	defer file.Close()
	csvWriter := csv.NewWriter(file)
	csvWriter.WriteAll(records)
	csvWriter.Flush()
	return records, nil
}
