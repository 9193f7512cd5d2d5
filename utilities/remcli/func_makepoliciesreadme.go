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
	"io/ioutil"
	"path/filepath"
	"strings"
	"time"

	"github.com/BrunoReboul/rem/utilities/solution"
)

func makePoliciesReadme(repositoryPath string, ps policiesSummary) (readme string, err error) {
	absolutePath, err := filepath.Abs(repositoryPath)
	if err != nil {
		return "", err
	}
	parts := strings.Split(absolutePath, "/")
	readme = fmt.Sprintf("# Compliance policies summary\n\nRepository: **%s**\n\n*Timestamp* %v\n\nInstance | enabled rules | rules\n--- | --- | ---\n", parts[len(parts)-1], time.Now())

	var totalRules, totalEnabled, instanceEnabled int
	for _, instance := range ps.Instances {
		instanceEnabled = 0
		for _, rule := range instance.Rules {
			if rule.Enabled != "false" {
				instanceEnabled++
			}
		}
		readme = readme + fmt.Sprintf("**%s** | %d | %d\n", instance.Name, instanceEnabled, len(instance.Rules))
		totalEnabled = totalEnabled + instanceEnabled
		totalRules = totalRules + len(instance.Rules)
	}
	readme = readme + fmt.Sprintf("\n%d instances %d enabled rules %d rules\n", len(ps.Instances), totalEnabled, totalRules)

	for _, instance := range ps.Instances {
		readme = readme + fmt.Sprintf("\n## %s\n\ntriggered by %s\n\n", instance.Name, instance.TriggerTopic)
		for _, rule := range instance.Rules {
			switch rule.Enabled {
			case "always":
				readme = readme + fmt.Sprintf("- **%s** always on\n", rule.Name)
			case "true":
				readme = readme + fmt.Sprintf("- **%s** enabled (*%s*)\n", rule.Name, rule.Severity)
			default:
				readme = readme + fmt.Sprintf("- %s disabled\n", rule.Name)
			}
		}
	}
	err = ioutil.WriteFile(fmt.Sprintf("%s/%s/monitor/readme.md", repositoryPath, solution.MicroserviceParentFolderName),
		[]byte(readme), 0644)
	if err != nil {
		return "", err
	}
	return readme, nil
}
