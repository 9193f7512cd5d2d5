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
	"strings"

	"github.com/BrunoReboul/rem/utilities/cpl"
	"github.com/BrunoReboul/rem/utilities/ffo"
	"github.com/BrunoReboul/rem/utilities/solution"
	"gopkg.in/yaml.v2"
)

func makePoliciesYAML(repositoryPath string, instanceFolderRelativePaths []string) (ps policiesSummary, err error) {
	for _, instanceFolderRelativePath := range instanceFolderRelativePaths {
		parts := strings.Split(instanceFolderRelativePath, "/")
		instanceName := parts[len(parts)-1]

		var instanceSettings monitorInstanceSettings
		err = ffo.ReadUnmarshalYAML(fmt.Sprintf("%s/%s/%s",
			repositoryPath,
			instanceFolderRelativePath,
			solution.InstanceSettingsFileName), &instanceSettings)
		if err != nil {
			return ps, err
		}

		instance := instancePolicies{
			Name:         instanceName,
			TriggerTopic: instanceSettings.GCF.TriggerTopic,
		}
		for _, ruleName := range cpl.RuleNames() {
			rule, err := makeRuleDoc(instanceSettings.CPL, ruleName)
			if err != nil {
				return ps, err
			}
			instance.Rules = append(instance.Rules, rule)
		}
		ps.Instances = append(ps.Instances, instance)
	}

	err = ffo.MarshalYAMLWrite(fmt.Sprintf("%s/%s/monitor/policies.yaml", repositoryPath, solution.MicroserviceParentFolderName), &ps)
	if err != nil {
		return ps, err
	}
	return ps, nil
}

// makeRuleDoc the scalingConfig rule is not policy gated, it is documented as always on
func makeRuleDoc(policySet cpl.PolicySet, ruleName string) (rule ruleDoc, err error) {
	rule.Name = ruleName
	severity, parameters := policySet.RuleSpec(ruleName)
	if parameters == nil {
		rule.Enabled = "always"
		return rule, nil
	}
	var gate struct {
		Enabled bool `yaml:"enabled"`
	}
	bytes, err := yaml.Marshal(parameters)
	if err != nil {
		return rule, err
	}
	if err = yaml.Unmarshal(bytes, &gate); err != nil {
		return rule, err
	}
	rule.Enabled = fmt.Sprintf("%v", gate.Enabled)
	rule.Severity = severity
	return rule, nil
}
