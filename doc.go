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
Package realtimeeksmonitor REM Real-time EKS Monitor

## What

Audit AWS EKS resources (clusters, node groups) compliance against a set of policies when the resource configuration changes. The stream of detected non compliances could then be consumed to alert, report or even fix on the fly.

### Use cases

1. Security compliance, usually 80% of the policies
   - E.g. the cluster API endpoint should not be reachable from 0.0.0.0/0
2. Operational compliance
   - E.g. each cluster should ship the audit control plane logs to retain who did what
3. Upgrade hygiene
   - E.g. do not run control planes below the minimum supported Kubernetes version, upgrade surges should not take down more nodes than the agreed ceiling

## Why

- It is all easier to fix when it is detected early
- Value is delivered only when a detected non compliance is fixed
*/
package realtimeeksmonitor
