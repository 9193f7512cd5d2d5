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

package eks

import (
	"testing"
)

func TestUnitGetAssetTagValue(t *testing.T) {
	var tests = []struct {
		name         string
		resourceJSON string
		tagKey       string
		wantTagValue string
		wantError    bool
	}{
		{
			name:         "jsonError",
			wantTagValue: "",
			wantError:    true,
		},
		{
			name:         "noTagAtAll",
			resourceJSON: `{}`,
			wantTagValue: "",
			wantError:    false,
		},
		{
			name:         "notThisTag",
			resourceJSON: `{"tags": {"application_name": "rem"}}`,
			tagKey:       "owner",
			wantTagValue: "",
			wantError:    false,
		},
		{
			name:         "owner",
			resourceJSON: `{"tags": {"owner": "cpasmoi"}}`,
			tagKey:       "owner",
			wantTagValue: "cpasmoi",
			wantError:    false,
		},
		{
			name:         "violationResolver",
			resourceJSON: `{"tags": {"owner": "cpasmoi","violation_resolver": "ohnonono"}}`,
			tagKey:       "violation_resolver",
			wantTagValue: "ohnonono",
			wantError:    false,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := GetAssetTagValue(test.tagKey, []byte(test.resourceJSON))
			if test.wantTagValue != got {
				t.Errorf("Want %s got %s", test.wantTagValue, got)
			}
			if err != nil {
				if !test.wantError {
					t.Errorf("Want no error and got one %v", err)
				}
			} else {
				if test.wantError {
					t.Errorf("Want an error and got none")
				}
			}
		})
	}
}
