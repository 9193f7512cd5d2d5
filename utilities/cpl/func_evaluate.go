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

package cpl

import (
	"github.com/BrunoReboul/rem/utilities/eks"
)

// Evaluate dispatches the snapshot on the orchestrator matching its kind.
// The kind gate lives here and in the orchestrators, never in policies: whether a policy claims to
// apply to a kind is not validated against the asset actually received
func Evaluate(snapshot eks.Snapshot, policySet PolicySet) Result {
	switch snapshot.Kind {
	case eks.KindCluster:
		return EvaluateCluster(snapshot, policySet)
	case eks.KindNodegroup:
		return EvaluateNodegroup(snapshot, policySet)
	}
	return Result{Evidence: []Violation{}}
}
