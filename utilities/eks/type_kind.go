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

// Kind discriminates the supported EKS asset kinds
type Kind int

// Supported asset kinds. KindUnsupported is the zero value so that a kind forgotten at parsing time cannot match an evaluation gate
const (
	KindUnsupported Kind = iota
	KindCluster
	KindNodegroup
)

// String returns the AWS Config resource type for the kind
func (kind Kind) String() string {
	switch kind {
	case KindCluster:
		return "AWS::EKS::Cluster"
	case KindNodegroup:
		return "AWS::EKS::Nodegroup"
	}
	return "unsupported"
}
