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

package gbq

import "cloud.google.com/go/bigquery"

// GetAssetsSchema defines assets table schema
func GetAssetsSchema() bigquery.Schema {
	return bigquery.Schema{
		{Name: "timestamp", Required: true, Type: bigquery.TimestampFieldType, Description: "When the asset change was captured"},
		{Name: "name", Required: true, Type: bigquery.StringFieldType},
		{Name: "owner", Required: false, Type: bigquery.StringFieldType},
		{Name: "violationResolver", Required: false, Type: bigquery.StringFieldType},
		{Name: "ancestryPathDisplayName", Required: false, Type: bigquery.StringFieldType},
		{Name: "ancestryPath", Required: false, Type: bigquery.StringFieldType},
		{Name: "ancestorsDisplayName", Repeated: true, Type: bigquery.StringFieldType},
		{Name: "ancestors", Repeated: true, Type: bigquery.StringFieldType},
		{Name: "assetType", Required: true, Type: bigquery.StringFieldType},
		{Name: "deleted", Required: true, Type: bigquery.BooleanFieldType},
	}
}
