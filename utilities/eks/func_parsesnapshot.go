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
	"fmt"
)

// ParseSnapshot makes the typed snapshot evalutated by compliance rules from a feed message.
// An unsupported kind or a malformed configuration yields an error, no coercion happens past this boundary.
// The feed deleted flag overrides the asset status so a deletion always clears previous findings
func ParseSnapshot(feedMessage FeedMessage) (snapshot Snapshot, err error) {
	snapshot.Name = feedMessage.Asset.Name
	snapshot.Kind = ParseKind(feedMessage.Asset.AssetType)
	if snapshot.Kind == KindUnsupported {
		return snapshot, fmt.Errorf("unsupported assetType %s", feedMessage.Asset.AssetType)
	}
	snapshot.Status = feedMessage.Asset.Status
	if feedMessage.Deleted {
		snapshot.Status = StatusResourceDeleted
	}
	switch snapshot.Kind {
	case KindCluster:
		var clusterConfig ClusterConfig
		err = json.Unmarshal(feedMessage.Asset.Resource, &clusterConfig)
		if err != nil {
			return snapshot, fmt.Errorf("json.Unmarshal clusterConfig %s %v", feedMessage.Asset.Name, err)
		}
		snapshot.Cluster = &clusterConfig
	case KindNodegroup:
		var nodegroupConfig NodegroupConfig
		err = json.Unmarshal(feedMessage.Asset.Resource, &nodegroupConfig)
		if err != nil {
			return snapshot, fmt.Errorf("json.Unmarshal nodegroupConfig %s %v", feedMessage.Asset.Name, err)
		}
		snapshot.Nodegroup = &nodegroupConfig
	}
	return snapshot, nil
}
