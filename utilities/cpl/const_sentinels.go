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

// Sentinel values reported in the violation current field when the expected configuration field is absent.
// An unconfigured field is a compliance gap, not a software fault
const (
	CurrentUnknown = "unknown"
	CurrentNotSet  = "not set"
)

// unrestrictedBlock the CIDR block that turns a public endpoint allow list into no restriction at all
const unrestrictedBlock = "0.0.0.0/0"
