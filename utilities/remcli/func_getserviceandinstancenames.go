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
	"log"
	"strings"
)

// GetServiceAndInstanceNames retrieve service name and instance name from an instance folder relative path
func GetServiceAndInstanceNames(instanceFolderRelativePath string) (serviceName, instanceName string) {
	parts := strings.Split(instanceFolderRelativePath, "/")
	if len(parts) < 4 {
		log.Fatalf("Unexpected instance folder relative path %s", instanceFolderRelativePath)
	}
	return parts[1], parts[3]
}
