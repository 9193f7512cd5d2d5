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

// GetAssetShortKindName returns a short lower case kind name from an AWS Config resource type, like cluster for AWS::EKS::Cluster. It is used to name per kind feed topics
func GetAssetShortKindName(assetType string) string {
	tmpArr := strings.Split(assetType, "::")
	kindName := tmpArr[len(tmpArr)-1]
	return strings.ToLower(kindName)
}
