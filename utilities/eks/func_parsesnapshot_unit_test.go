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
	"encoding/json"
	"testing"
)

func TestUnitParseSnapshot(t *testing.T) {
	var tests = []struct {
		name         string
		assetName    string
		assetType    string
		status       string
		deleted      bool
		resourceJSON string
		wantKind     Kind
		wantStatus   string
		wantVersion  string
		wantAmiType  string
		wantError    bool
	}{
		{
			name:         "cluster",
			assetName:    "arn:aws:eks:eu-west-1:123456789012:cluster/prod",
			assetType:    "AWS::EKS::Cluster",
			status:       StatusOK,
			resourceJSON: `{"version": "1.27", "logging": {"clusterLogging": [{"types": ["api", "audit"], "enabled": true}]}}`,
			wantKind:     KindCluster,
			wantStatus:   StatusOK,
			wantVersion:  "1.27",
		},
		{
			name:         "nodegroup",
			assetName:    "arn:aws:eks:eu-west-1:123456789012:nodegroup/prod/workers/aa-bb",
			assetType:    "AWS::EKS::Nodegroup",
			status:       StatusResourceDiscovered,
			resourceJSON: `{"amiType": "AL2_x86_64", "scalingConfig": {"minSize": 1, "maxSize": 3, "desiredSize": 2}, "tags": {"Team": "payments"}}`,
			wantKind:     KindNodegroup,
			wantStatus:   StatusResourceDiscovered,
			wantAmiType:  "AL2_x86_64",
		},
		{
			name:         "deletedOverridesStatus",
			assetName:    "arn:aws:eks:eu-west-1:123456789012:cluster/gone",
			assetType:    "AWS::EKS::Cluster",
			status:       StatusOK,
			deleted:      true,
			resourceJSON: `{"version": "1.12"}`,
			wantKind:     KindCluster,
			wantStatus:   StatusResourceDeleted,
			wantVersion:  "1.12",
		},
		{
			name:         "unsupportedKind",
			assetName:    "arn:aws:ec2:eu-west-1:123456789012:instance/i-0abc",
			assetType:    "AWS::EC2::Instance",
			status:       StatusOK,
			resourceJSON: `{}`,
			wantError:    true,
		},
		{
			name:         "malformedClusterConfig",
			assetName:    "arn:aws:eks:eu-west-1:123456789012:cluster/broken",
			assetType:    "AWS::EKS::Cluster",
			status:       StatusOK,
			resourceJSON: `{"version": 1.27}`,
			wantError:    true,
		},
		{
			name:         "malformedNodegroupConfig",
			assetName:    "arn:aws:eks:eu-west-1:123456789012:nodegroup/prod/broken/aa-bb",
			assetType:    "AWS::EKS::Nodegroup",
			status:       StatusOK,
			resourceJSON: `{"scalingConfig": "nope"}`,
			wantError:    true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var feedMessage FeedMessage
			feedMessage.Asset.Name = test.assetName
			feedMessage.Asset.AssetType = test.assetType
			feedMessage.Asset.Status = test.status
			feedMessage.Asset.Resource = json.RawMessage(test.resourceJSON)
			feedMessage.Deleted = test.deleted

			snapshot, err := ParseSnapshot(feedMessage)
			if test.wantError {
				if err == nil {
					t.Errorf("Want an error got none")
				}
				return
			}
			if err != nil {
				t.Errorf("Want no error got %v", err)
				return
			}
			if test.wantKind != snapshot.Kind {
				t.Errorf("Want kind %v got %v", test.wantKind, snapshot.Kind)
			}
			if test.wantStatus != snapshot.Status {
				t.Errorf("Want status %s got %s", test.wantStatus, snapshot.Status)
			}
			if test.assetName != snapshot.Name {
				t.Errorf("Want name %s got %s", test.assetName, snapshot.Name)
			}
			switch snapshot.Kind {
			case KindCluster:
				if snapshot.Cluster == nil {
					t.Errorf("Want a cluster configuration got nil")
					return
				}
				if snapshot.Nodegroup != nil {
					t.Errorf("Want no nodegroup configuration on a cluster snapshot")
				}
				if test.wantVersion != snapshot.Cluster.Version {
					t.Errorf("Want version %s got %s", test.wantVersion, snapshot.Cluster.Version)
				}
			case KindNodegroup:
				if snapshot.Nodegroup == nil {
					t.Errorf("Want a nodegroup configuration got nil")
					return
				}
				if snapshot.Cluster != nil {
					t.Errorf("Want no cluster configuration on a nodegroup snapshot")
				}
				if test.wantAmiType != snapshot.Nodegroup.AmiType {
					t.Errorf("Want amiType %s got %s", test.wantAmiType, snapshot.Nodegroup.AmiType)
				}
			}
		})
	}
}
