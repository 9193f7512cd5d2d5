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

package glo

import "time"

// Step defines one step of a feed message journey through the microservice instances
type Step struct {
	StepID        string    `json:"step_id" firestore:"step_id"`
	StepTimestamp time.Time `json:"step_timestamp" firestore:"step_timestamp"`
}

// Steps defines a stack of steps, aka the feed message journey so far, used to mesure end to end latency
type Steps []Step
