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

import "strings"

// makeCompatible rewrites plural path segments into the singular form used in reports
func makeCompatible(path string) string {
	path = strings.Replace(path, "organizations/", "organization/", -1)
	path = strings.Replace(path, "ous/", "ou/", -1)
	path = strings.Replace(path, "accounts/", "account/", -1)
	return path
}
