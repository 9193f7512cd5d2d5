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
Package stream2bq streams PubSub messages into BigQuery tables

It can stream into 3 REM tables: 1) assets 2) compliance states 3) violations.

Triggered by

Messages in related PubSub topics.

Instances

One per BigQuery table.

- assets, fed by the per kind asset feed topics.

- compliance states, fed by the compliance status topic.

- violations, fed by the violation topic.

Output

Streamed inserts into BigQuery tables.

Cardinality

One-one, one pubsub message - one row inserted in BigQuery.

Automatic retrying

Yes.

Is recurssive

No.

Implementation example

 package p
 import (
     "context"

     "github.com/BrunoReboul/rem/services/stream2bq"
     "github.com/BrunoReboul/rem/utilities/gps"
 )
 var global stream2bq.Global
 var ctx = context.Background()

 // EntryPoint is the function to be executed for each cloud function occurence
 func EntryPoint(ctxEvent context.Context, PubSubMessage gps.PubSubMessage) error {
     return stream2bq.EntryPoint(ctxEvent, PubSubMessage, &global)
 }

 func init() {
     stream2bq.Initialize(ctx, &global)
 }

*/
package stream2bq
