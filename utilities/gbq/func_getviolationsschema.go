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

// GetViolationsSchema defines violations table schema
// nonCompliance fields are the stable per rule contract: list fields are persisted as comma separated strings
func GetViolationsSchema() bigquery.Schema {
	return bigquery.Schema{
		{
			Name:        "nonCompliance",
			Type:        bigquery.RecordFieldType,
			Description: "The violation information, aka why it is not compliant",
			Schema: bigquery.Schema{
				{Name: "ruleName", Required: true, Type: bigquery.StringFieldType},
				{Name: "reason", Required: true, Type: bigquery.StringFieldType},
				{Name: "required", Required: false, Type: bigquery.StringFieldType},
				{Name: "missing", Required: false, Type: bigquery.StringFieldType},
				{Name: "allowed", Required: false, Type: bigquery.StringFieldType},
				{Name: "cidrs", Required: false, Type: bigquery.StringFieldType},
				{Name: "minimum", Required: false, Type: bigquery.StringFieldType},
				{Name: "current", Required: false, Type: bigquery.StringFieldType},
				{Name: "limit", Required: false, Type: bigquery.StringFieldType},
				{Name: "minSize", Required: false, Type: bigquery.StringFieldType},
				{Name: "maxSize", Required: false, Type: bigquery.StringFieldType},
				{Name: "desiredSize", Required: false, Type: bigquery.StringFieldType},
			},
		},
		{
			Name:        "functionConfig",
			Type:        bigquery.RecordFieldType,
			Description: "The settings of the cloud function hosting the rule check",
			Schema: bigquery.Schema{
				{Name: "functionName", Required: true, Type: bigquery.StringFieldType},
				{Name: "deploymentTime", Required: true, Type: bigquery.TimestampFieldType},
				{Name: "projectID", Required: false, Type: bigquery.StringFieldType},
				{Name: "environment", Required: false, Type: bigquery.StringFieldType},
			},
		},
		{
			Name:        "policyConfig",
			Type:        bigquery.RecordFieldType,
			Description: "The policy set entry used to assess the rule",
			Schema: bigquery.Schema{
				{Name: "name", Required: false, Type: bigquery.StringFieldType},
				{Name: "severity", Required: false, Type: bigquery.StringFieldType},
				{Name: "parameters", Required: false, Type: bigquery.StringFieldType},
			},
		},
		{
			Name:        "feedMessage",
			Type:        bigquery.RecordFieldType,
			Description: "The message from the EKS config bridge in realtime or from split dump in batch",
			Schema: bigquery.Schema{
				{
					Name: "asset",
					Type: bigquery.RecordFieldType,
					Schema: bigquery.Schema{
						{Name: "name", Required: true, Type: bigquery.StringFieldType},
						{Name: "owner", Required: false, Type: bigquery.StringFieldType},
						{Name: "violationResolver", Required: false, Type: bigquery.StringFieldType},
						{Name: "ancestryPathDisplayName", Required: false, Type: bigquery.StringFieldType},
						{Name: "ancestryPath", Required: false, Type: bigquery.StringFieldType},
						{Name: "ancestorsDisplayName", Required: false, Type: bigquery.StringFieldType},
						{Name: "ancestors", Required: false, Type: bigquery.StringFieldType},
						{Name: "assetType", Required: true, Type: bigquery.StringFieldType},
						{Name: "resource", Required: false, Type: bigquery.StringFieldType},
					},
				},
				{
					Name: "window",
					Type: bigquery.RecordFieldType,
					Schema: bigquery.Schema{
						{Name: "startTime", Required: true, Type: bigquery.TimestampFieldType},
					},
				},
				{Name: "origin", Required: false, Type: bigquery.StringFieldType},
			},
		},
	}
}
