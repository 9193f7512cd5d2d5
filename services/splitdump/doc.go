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
Package splitdump split large eks dumps, publish one feed message per dump line

Triggered by

Google Cloud Storage events on the EKS export bucket, one for each uploaded eksdump*.dump object.

Instances

Only one.

Output

- Child dumps written back to the same bucket when a dump exceeds the split threshold. Each child triggers this function again.

- One feed message per dump line, origin batch-export, published to the per kind feed topic, created on demand.

Cardinality

One-few: one dump, n child dumps, or n line feed messages.

Automatic retrying

Yes.

Notes

- Dump lines are snake_case, they are transposed to the camelCase feed shape before publishing.

- Writer calls to GCS are retried up to 10 times with a growing backoff.

Implementation example

 package p
 import (
     "context"

     "github.com/BrunoReboul/rem/services/splitdump"
     "github.com/BrunoReboul/rem/utilities/gcs"
 )
 var global splitdump.Global
 var ctx = context.Background()

 // EntryPoint is the function to be executed for each cloud function occurence
 func EntryPoint(ctxEvent context.Context, gcsEvent gcs.Event) error {
     return splitdump.EntryPoint(ctxEvent, gcsEvent, &global)
 }

 func init() {
     splitdump.Initialize(ctx, &global)
 }
*/
package splitdump
