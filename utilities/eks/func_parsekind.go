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

// ParseKind maps an AWS Config resource type on an asset kind, KindUnsupported when unknown
func ParseKind(assetType string) Kind {
	switch assetType {
	case "AWS::EKS::Cluster":
		return KindCluster
	case "AWS::EKS::Nodegroup":
		return KindNodegroup
	}
	return KindUnsupported
}
