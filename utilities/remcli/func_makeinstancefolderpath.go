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
)

// makeInstanceFolderPath folder names use underscores, and stay below the cloud function name length limit
func makeInstanceFolderPath(instancesFolderPath, instanceName string) string {
	instanceFolderName := strings.Replace(instanceName, "-", "_", -1)
	if len(instanceFolderName) > 63 {
		instanceFolderName = instanceFolderName[0:63]
	}
	return fmt.Sprintf("%s/%s", instancesFolderPath, instanceFolderName)
}
