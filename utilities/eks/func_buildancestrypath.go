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

// BuildAncestryPath build a path from a slice of ancestors, starting from the AWS organization root
func BuildAncestryPath(ancestors []string) string {
	var ancestryPath string
	for idx := len(ancestors) - 1; idx >= 0; idx-- {
		if ancestryPath == "" {
			ancestryPath = ancestors[idx]
		} else {
			ancestryPath = ancestryPath + "/" + ancestors[idx]
		}
	}
	return makeCompatible(ancestryPath)
}
