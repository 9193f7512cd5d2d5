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
	"strconv"
	"strings"
)

// CompareVersions compares two dot separated numeric version strings.
// Returns -1 when a is lower than b, 0 when equal, 1 when a is greater than b.
// Components are compared pairwise left to right as integers, so "1.9" is lower than "1.10".
// A missing component counts as 0, so "1.27" equals "1.27.0".
// A non numeric component counts as 0 too, a documented limitation, not an error
func CompareVersions(a string, b string) int {
	aComponents := strings.Split(a, ".")
	bComponents := strings.Split(b, ".")
	length := len(aComponents)
	if len(bComponents) > length {
		length = len(bComponents)
	}
	for idx := 0; idx < length; idx++ {
		aNumber := versionComponent(aComponents, idx)
		bNumber := versionComponent(bComponents, idx)
		if aNumber < bNumber {
			return -1
		}
		if aNumber > bNumber {
			return 1
		}
	}
	return 0
}

func versionComponent(components []string, idx int) int64 {
	if idx >= len(components) {
		return 0
	}
	number, err := strconv.ParseInt(components[idx], 10, 64)
	if err != nil {
		return 0
	}
	return number
}
