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

package glo

import (
	"strings"
	"testing"
)

func TestUnitEntryString(t *testing.T) {
	var tests = []struct {
		name         string
		entry        Entry
		wantContains []string
	}{
		{
			name: "severityDefaultsToInfo",
			entry: Entry{
				Message: "coldstart",
			},
			wantContains: []string{`"severity":"INFO"`, `"message":"coldstart"`},
		},
		{
			name: "severityKept",
			entry: Entry{
				Severity:    "CRITICAL",
				Message:     "init_failed",
				Description: "storage.NewClient(ctx) blah",
			},
			wantContains: []string{`"severity":"CRITICAL"`, `"message":"init_failed"`},
		},
		{
			name: "instanceContext",
			entry: Entry{
				MicroserviceName: "monitor",
				InstanceName:     "monitor_eks_cluster",
				Environment:      "dev",
				Message:          "finish",
			},
			wantContains: []string{`"microservice_name":"monitor"`, `"instance_name":"monitor_eks_cluster"`, `"environment":"dev"`},
		},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			got := test.entry.String()
			for _, want := range test.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("Want entry JSON to contain %s got %s", want, got)
				}
			}
		})
	}
}
