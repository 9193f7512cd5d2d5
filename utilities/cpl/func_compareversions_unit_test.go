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
)

func TestUnitCompareVersions(t *testing.T) {
	var tests = []struct {
		name string
		a    string
		b    string
		want int
	}{
		{"equal", "1.27", "1.27", 0},
		{"greater", "1.27", "1.26", 1},
		{"numericNotLexicographic", "1.9", "1.10", -1},
		{"missingComponentIsZero", "1.27", "1.27.0", 0},
		{"missingComponentIsZeroReversed", "1.27.0", "1.27", 0},
		{"patchBreaksTie", "1.27.1", "1.27", 1},
		{"firstComponentWins", "2.0", "1.99", 1},
		{"nonNumericIsZero", "1.x", "1.0", 0},
		{"nonNumericLoses", "1.x", "1.1", -1},
		{"emptyIsZero", "", "0", 0},
		{"emptyLoses", "", "1.0", -1},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := CompareVersions(test.a, test.b)
			if test.want != got {
				t.Errorf("Want %d got %d", test.want, got)
			}
		})
	}
}
