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
Package cpl Compliance Policy Library: the rules evaluating EKS configuration snapshots against the policy set

One pure function per rule, each mapping a configuration view and its policy parameters to at most one violation.
An orchestrator per asset kind runs its rules in a fixed registration order, rules never short circuit each other.
A policy entry absent or emptied skips its rule, never an error.
The policy set is passed by value on every call: evaluation has no ambient state, the same snapshot and policy set always yield the same result

*/
package cpl
