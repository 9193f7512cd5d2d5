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
Package requestdump request the bridge to export the AWS Config inventory

Triggered by

Cloud Scheduler ticks relayed by a PubSub topic.

Instances

Only one. The export command carries all monitored asset types.

Output

One export command published to the bridge commands topic. The bridge uploads the
resulting line delimited dump, eksdump*.dump, to the EKS export bucket, which triggers splitdump.

Cardinality

One-one: one scheduler tick, one export command.

Automatic retrying

Yes.

Notes

- The function does not wait for the bridge to complete the export, the dump arrival in the bucket drives the rest of the batch path.

Implementation example

 package p
 import (
     "context"

     "github.com/BrunoReboul/rem/services/requestdump"
     "github.com/BrunoReboul/rem/utilities/gps"
 )
 var global requestdump.Global
 var ctx = context.Background()

 // EntryPoint is the function to be executed for each cloud function occurence
 func EntryPoint(ctxEvent context.Context, PubSubMessage gps.PubSubMessage) error {
     return requestdump.EntryPoint(ctxEvent, PubSubMessage, &global)
 }

 func init() {
     requestdump.Initialize(ctx, &global)
 }
*/
package requestdump
