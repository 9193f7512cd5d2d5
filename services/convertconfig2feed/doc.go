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
Package convertconfig2feed convert AWS Config change notifications into per kind asset feed messages

The AWS side bridge relays AWS Config notifications as structured log entries. A logging sink
exports the bridge entries to a PubSub topic that triggers this function.

Triggered by

PubSub messages from the bridge log entries sink export.

Instances

Only one.

Output

One feed message published to the per kind feed topic, e.g. eks-rces-cluster, eks-rces-nodegroup.
The topic is created on demand when missing.

Cardinality

One-one: one configuration item change notification, one feed message.

Automatic retrying

Yes.

Notes

- Log entries that are not bridge ConfigurationItemChangeNotification entries are acknowledged and dropped.

- AWS Config tags are folded into the resource document so that downstream tag lookups see one resource shape.

Implementation example

 package p
 import (
     "context"

     "github.com/BrunoReboul/rem/services/convertconfig2feed"
     "github.com/BrunoReboul/rem/utilities/gps"
 )
 var global convertconfig2feed.Global
 var ctx = context.Background()

 // EntryPoint is the function to be executed for each cloud function occurence
 func EntryPoint(ctxEvent context.Context, PubSubMessage gps.PubSubMessage) error {
     return convertconfig2feed.EntryPoint(ctxEvent, PubSubMessage, &global)
 }

 func init() {
     convertconfig2feed.Initialize(ctx, &global)
 }
*/
package convertconfig2feed
