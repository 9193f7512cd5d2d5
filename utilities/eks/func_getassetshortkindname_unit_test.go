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

import (
	"testing"
)

func TestUnitGetAssetShortKindName(t *testing.T) {
	var tests = []struct {
		name      string
		assetType string
		want      string
	}{
		{"eksCluster", "AWS::EKS::Cluster", "cluster"},
		{"eksNodegroup", "AWS::EKS::Nodegroup", "nodegroup"},
		{"ec2Instance", "AWS::EC2::Instance", "instance"},
		{"noSeparator", "Cluster", "cluster"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := GetAssetShortKindName(test.assetType)
			if test.want != got {
				t.Errorf("Want %s got %s", test.want, got)
			}
		})
	}
}
