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
Package setdashboards sets monitoring dashboards

Triggered by

The deployment utility command line.

Instances

One per dashboard.

- microservices grid layouts, one widget per microservice and widget type.

- freshness SLO mosaic layouts, error budget burn rates and latency distributions.

Output

Monitoring dashboards.

Cardinality

One-one, one instance - one dashboard.

Automatic retrying

N/A, not a cloud function.
*/
package setdashboards
