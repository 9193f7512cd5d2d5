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
	"context"
	"log"
	"strings"

	"cloud.google.com/go/firestore"
	"github.com/BrunoReboul/rem/utilities/gfs"
	"github.com/BrunoReboul/rem/utilities/str"
)

// getDisplayName retreive the friendly name of an ancestor from the assets firestore cache.
// AWS organizations entities cannot be resolved through an API from the hosting side, so a cache miss falls back on the raw name
func getDisplayName(ctx context.Context,
	name string,
	collectionID string,
	firestoreClient *firestore.Client) (displayName string) {
	displayName = strings.Replace(name, "/", "_", -1)
	ancestorType := strings.Split(name, "/")[0]
	knownAncestorTypes := []string{"organizations", "ous", "accounts"}
	if !str.Find(knownAncestorTypes, ancestorType) {
		return displayName
	}
	documentID := "//organizations.amazonaws.com/" + name
	documentID = str.RevertSlash(documentID)
	documentPath := collectionID + "/" + documentID
	// log.Printf("documentPath:%s", documentPath)
	documentSnap, found := gfs.GetDoc(ctx, firestoreClient, documentPath, 10)
	if found {
		assetMap := documentSnap.Data()
		// log.Println(assetMap)
		var assetInterface interface{} = assetMap["asset"]
		if asset, ok := assetInterface.(map[string]interface{}); ok {
			var resourceInterface interface{} = asset["resource"]
			if resource, ok := resourceInterface.(map[string]interface{}); ok {
				var dNameInterface interface{} = resource["name"]
				if dName, ok := dNameInterface.(string); ok {
					displayName = dName
				}
			}
		}
		// log.Printf("name %s displayName %s", name, displayName)
	} else {
		log.Printf("WARNING - Not found in firestore %s", documentPath)
	}
	return displayName
}
