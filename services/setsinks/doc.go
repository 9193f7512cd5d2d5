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
Package setsinks sets the logging sink exporting bridge log entries

The bridge Cloud Run service logs each AWS Config notification as one
structured log entry. The sink exports these entries to the config
notifications PubSub topic, and the sink writer identity is granted
publisher on that topic.

Triggered by

The deployment utility command line.

Instances

One.

Output

A logging sink and its topic IAM binding.

Cardinality

One sink per environment.

Automatic retrying

N/A, not a cloud function.
*/
package setsinks
