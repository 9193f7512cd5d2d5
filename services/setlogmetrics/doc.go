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
Package setlogmetrics sets log based metrics

Microservices log latency, end to end latency and triggering event age
in structured entries. Log based metrics turn these entries into
distributions usable in dashboards and alerting.

Triggered by

The deployment utility command line.

Instances

One per log based metric.

- rem_latency.

- rem_latency_e2e.

- rem_trigger_age.

Output

Log based metrics with their metric descriptors.

Cardinality

One-one, one instance - one log based metric.

Automatic retrying

N/A, not a cloud function.
*/
package setlogmetrics
