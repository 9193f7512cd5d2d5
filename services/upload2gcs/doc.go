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

/*
Package upload2gcs stores EKS asset feed messages as JSON files in GCS

One file per asset, refreshed on every change, deleted when the asset is deleted.

Triggered by

Messages in the per kind asset feed PubSub topics.

Instances

One per asset kind.

- cluster.

- nodegroup.

Output

JSON files into the assets GCS bucket.

Cardinality

One-one, one feed message - one file created, updated or deleted.

Automatic retrying

Yes.

Is recurssive

No.

Implementation example

 package p
 import (
     "context"

     "github.com/BrunoReboul/rem/services/upload2gcs"
     "github.com/BrunoReboul/rem/utilities/gps"
 )
 var global upload2gcs.Global
 var ctx = context.Background()

 // EntryPoint is the function to be executed for each cloud function occurence
 func EntryPoint(ctxEvent context.Context, PubSubMessage gps.PubSubMessage) error {
     return upload2gcs.EntryPoint(ctxEvent, PubSubMessage, &global)
 }

 func init() {
     upload2gcs.Initialize(ctx, &global)
 }

*/
package upload2gcs
