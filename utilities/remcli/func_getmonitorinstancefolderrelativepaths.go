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
	"sort"

	"github.com/BrunoReboul/rem/utilities/ffo"
	"github.com/BrunoReboul/rem/utilities/solution"
)

// GetMonitorInstanceFolderRelativePaths make the sorted list of monitor instance paths
func GetMonitorInstanceFolderRelativePaths(repositoryPath string) (instanceFolderRelativePaths []string, err error) {
	instanceFolderRelativePaths, err = ffo.GetChild(repositoryPath,
		fmt.Sprintf("%s/%s/%s", solution.MicroserviceParentFolderName, "monitor", solution.InstancesFolderName))
	if err != nil {
		return instanceFolderRelativePaths, err
	}
	sort.Strings(instanceFolderRelativePaths)
	return instanceFolderRelativePaths, nil
}
