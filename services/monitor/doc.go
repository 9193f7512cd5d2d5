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
Package monitor check EKS asset compliance

Triggered by

EKS assets feed messages in per kind PubSub topics.

Instances

- one per policy set.

- all policies of a policy set are evaluated in that instance.

Output

- PubSub violation topic.

- PubSub complianceStatus topic.

Cardinality

- When compliant: one-one, only the compliance state, no violations.

- When not compliant: one-few, 1 compliance state + n violations.

Automatic retrying

Yes.

Is the evalutation transitive

No. A deleted asset clears its previous findings instead of being evaluated.

Implementation example

 package p
 import (
     "context"

     "github.com/BrunoReboul/rem/services/monitor"
     "github.com/BrunoReboul/rem/utilities/gps"
 )
 var global monitor.Global
 var ctx = context.Background()

 // EntryPoint is the function to be executed for each cloud function occurence
 func EntryPoint(ctxEvent context.Context, PubSubMessage gps.PubSubMessage) error {
     return monitor.EntryPoint(ctxEvent, PubSubMessage, &global)
 }

 func init() {
     monitor.Initialize(ctx, &global)
 }

*/
package monitor
