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

package stream2bq

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"cloud.google.com/go/bigquery"
	"cloud.google.com/go/firestore"
	"cloud.google.com/go/functions/metadata"
	"github.com/BrunoReboul/rem/services/monitor"
	"github.com/BrunoReboul/rem/utilities/cpl"
	"github.com/BrunoReboul/rem/utilities/eks"
	"github.com/BrunoReboul/rem/utilities/ffo"
	"github.com/BrunoReboul/rem/utilities/gbq"
	"github.com/BrunoReboul/rem/utilities/glo"
	"github.com/BrunoReboul/rem/utilities/gps"
	"github.com/BrunoReboul/rem/utilities/solution"
	"github.com/google/uuid"
)

// Global structure for global variables to optimize the cloud function performances
type Global struct {
	assetsCollectionID          string
	ctx                         context.Context
	environment                 string
	firestoreClient             *firestore.Client
	inserter                    *bigquery.Inserter
	instanceName                string
	microserviceName            string
	ownerTagKeyName             string
	PubSubID                    string
	retryTimeOutSeconds         int64
	step                        glo.Step
	stepStack                   glo.Steps
	tableName                   string
	violationResolverTagKeyName string
}

// violation the monitor published envelope for one non compliance evidence
type violation struct {
	NonCompliance  cpl.Violation   `json:"nonCompliance"`
	FunctionConfig functionConfig  `json:"functionConfig"`
	PolicyConfig   policyConfig    `json:"policyConfig"`
	FeedMessage    eks.FeedMessage `json:"feedMessage"`
}

// functionConfig function deployment settings
type functionConfig struct {
	FunctionName   string    `json:"functionName"`
	DeploymentTime time.Time `json:"deploymentTime"`
	ProjectID      string    `json:"projectID"`
	Environment    string    `json:"environment"`
}

// policyConfig the policy set entry the violated rule was evaluated with
type policyConfig struct {
	Name       string      `json:"name"`
	Severity   string      `json:"severity,omitempty"`
	Parameters interface{} `json:"parameters,omitempty"`
}

// violationBQ format to persist in the BQ violations table, nested lists and documents flattened to strings
type violationBQ struct {
	NonCompliance  nonComplianceBQ `json:"nonCompliance"`
	FunctionConfig functionConfig  `json:"functionConfig"`
	PolicyConfig   policyConfigBQ  `json:"policyConfig"`
	FeedMessage    feedMessageBQ   `json:"feedMessage"`
}

// nonComplianceBQ cpl.Violation flattened, list fields as comma separated strings
type nonComplianceBQ struct {
	RuleName    string `json:"ruleName"`
	Reason      string `json:"reason"`
	Required    string `json:"required"`
	Missing     string `json:"missing"`
	Allowed     string `json:"allowed"`
	Cidrs       string `json:"cidrs"`
	Minimum     string `json:"minimum"`
	Current     string `json:"current"`
	Limit       string `json:"limit"`
	MinSize     string `json:"minSize"`
	MaxSize     string `json:"maxSize"`
	DesiredSize string `json:"desiredSize"`
}

// policyConfigBQ format to persist in BQ
type policyConfigBQ struct {
	Name       string `json:"name"`
	Severity   string `json:"severity"`
	Parameters string `json:"parameters"`
}

// feedMessageBQ format to persist in BQ
type feedMessageBQ struct {
	Asset  assetBQ    `json:"asset"`
	Window eks.Window `json:"window"`
	Origin string     `json:"origin"`
}

// assetBQ format to persist asset in BQ violations table
type assetBQ struct {
	Name                    string `json:"name"`
	Owner                   string `json:"owner"`
	ViolationResolver       string `json:"violationResolver"`
	AncestryPathDisplayName string `json:"ancestryPathDisplayName"`
	AncestryPath            string `json:"ancestryPath"`
	AncestorsDisplayName    string `json:"ancestorsDisplayName"`
	Ancestors               string `json:"ancestors"`
	AssetType               string `json:"assetType"`
	Resource                string `json:"resource"`
}

// assetFeedMessageBQ feed message for the assets table
type assetFeedMessageBQ struct {
	Asset     assetAssetBQ `json:"asset"`
	Window    eks.Window   `json:"window"`
	Deleted   bool         `json:"deleted"`
	Origin    string       `json:"origin"`
	StepStack glo.Steps    `json:"step_stack,omitempty"`
}

// assetAssetBQ format to persist asset in BQ assets table
type assetAssetBQ struct {
	Name                    string    `json:"name"`
	Owner                   string    `json:"owner"`
	ViolationResolver       string    `json:"violationResolver"`
	AncestryPathDisplayName string    `json:"ancestryPathDisplayName"`
	AncestryPath            string    `json:"ancestryPath"`
	AncestorsDisplayName    []string  `json:"ancestorsDisplayName"`
	Ancestors               []string  `json:"ancestors"`
	AssetType               string    `json:"assetType"`
	Deleted                 bool      `json:"deleted"`
	Timestamp               time.Time `json:"timestamp"`
}

// Initialize is to be executed in the init() function of the cloud function to optimize the cold start
func Initialize(ctx context.Context, global *Global) (err error) {
	log.SetFlags(0)
	global.ctx = ctx

	var instanceDeployment InstanceDeployment
	var bigQueryClient *bigquery.Client
	var table *bigquery.Table

	initID := fmt.Sprintf("%v", uuid.New())
	err = ffo.ReadUnmarshalYAML(solution.PathToFunctionCode+solution.SettingsFileName, &instanceDeployment)
	if err != nil {
		log.Println(glo.Entry{
			Severity:    "CRITICAL",
			Message:     "init_failed",
			Description: fmt.Sprintf("ReadUnmarshalYAML %s %v", solution.SettingsFileName, err),
			InitID:      initID,
		})
		return err
	}

	global.environment = instanceDeployment.Core.EnvironmentName
	global.instanceName = instanceDeployment.Core.InstanceName
	global.microserviceName = instanceDeployment.Core.ServiceName

	log.Println(glo.Entry{
		MicroserviceName: global.microserviceName,
		InstanceName:     global.instanceName,
		Environment:      global.environment,
		Severity:         "NOTICE",
		Message:          "coldstart",
		InitID:           initID,
	})

	datasetName := instanceDeployment.Core.SolutionSettings.Hosting.Bigquery.Dataset.Name
	global.assetsCollectionID = instanceDeployment.Core.SolutionSettings.Hosting.FireStore.CollectionIDs.Assets
	global.ownerTagKeyName = instanceDeployment.Core.SolutionSettings.Monitoring.TagKeyNames.Owner
	global.retryTimeOutSeconds = instanceDeployment.Settings.Service.GCF.RetryTimeOutSeconds
	global.tableName = instanceDeployment.Settings.Instance.Bigquery.TableName
	global.violationResolverTagKeyName = instanceDeployment.Core.SolutionSettings.Monitoring.TagKeyNames.ViolationResolver
	projectID := instanceDeployment.Core.SolutionSettings.Hosting.ProjectID

	bigQueryClient, err = bigquery.NewClient(global.ctx, projectID)
	if err != nil {
		log.Println(glo.Entry{
			MicroserviceName: global.microserviceName,
			InstanceName:     global.instanceName,
			Environment:      global.environment,
			Severity:         "CRITICAL",
			Message:          "init_failed",
			Description:      fmt.Sprintf("bigquery.NewClient %v", err),
			InitID:           initID,
		})
		return err
	}
	dataset := bigQueryClient.Dataset(datasetName)
	_, err = dataset.Metadata(ctx)
	if err != nil {
		log.Println(glo.Entry{
			MicroserviceName: global.microserviceName,
			InstanceName:     global.instanceName,
			Environment:      global.environment,
			Severity:         "CRITICAL",
			Message:          "init_failed",
			Description:      fmt.Sprintf("dataset.Metadata %v", err),
			InitID:           initID,
		})
		return err
	}
	table = dataset.Table(global.tableName)
	_, err = table.Metadata(ctx)
	if err != nil {
		log.Println(glo.Entry{
			MicroserviceName: global.microserviceName,
			InstanceName:     global.instanceName,
			Environment:      global.environment,
			Severity:         "CRITICAL",
			Message:          "init_failed",
			Description:      fmt.Sprintf("missing table %s %v", global.tableName, err),
			InitID:           initID,
		})
		return err
	}
	global.inserter = table.Inserter()
	if global.tableName == "assets" {
		global.firestoreClient, err = firestore.NewClient(global.ctx, projectID)
		if err != nil {
			log.Println(glo.Entry{
				MicroserviceName: global.microserviceName,
				InstanceName:     global.instanceName,
				Environment:      global.environment,
				Severity:         "CRITICAL",
				Message:          "init_failed",
				Description:      fmt.Sprintf("firestore.NewClient %v", err),
				InitID:           initID,
			})
			return err
		}
	}
	return nil
}

// EntryPoint is the function to be executed for each cloud function occurence
func EntryPoint(ctxEvent context.Context, PubSubMessage gps.PubSubMessage, global *Global) error {
	metadata, err := metadata.FromContext(ctxEvent)
	if err != nil {
		// Assume an error on the function invoker and try again.
		log.Println(glo.Entry{
			MicroserviceName:   global.microserviceName,
			InstanceName:       global.instanceName,
			Environment:        global.environment,
			Severity:           "CRITICAL",
			Message:            "redo_on_transient",
			Description:        fmt.Sprintf("pubsub_id no available metadata.FromContext: %v", err),
			TriggeringPubsubID: global.PubSubID,
		})
		return err
	}
	global.stepStack = nil
	global.PubSubID = metadata.EventID
	parts := strings.Split(metadata.Resource.Name, "/")
	global.step = glo.Step{
		StepID:        fmt.Sprintf("%s/%s", parts[len(parts)-1], global.PubSubID),
		StepTimestamp: metadata.Timestamp,
	}
	global.stepStack = append(global.stepStack, global.step)

	now := time.Now()
	d := now.Sub(metadata.Timestamp)
	log.Println(glo.Entry{
		MicroserviceName:           global.microserviceName,
		InstanceName:               global.instanceName,
		Environment:                global.environment,
		Severity:                   "NOTICE",
		Message:                    "start",
		TriggeringPubsubID:         global.PubSubID,
		TriggeringPubsubAgeSeconds: d.Seconds(),
		TriggeringPubsubTimestamp:  &metadata.Timestamp,
		Now:                        &now,
	})

	if d.Seconds() > float64(global.retryTimeOutSeconds) {
		log.Println(glo.Entry{
			MicroserviceName:           global.microserviceName,
			InstanceName:               global.instanceName,
			Environment:                global.environment,
			Severity:                   "CRITICAL",
			Message:                    "noretry",
			Description:                "Pubsub message too old",
			TriggeringPubsubID:         global.PubSubID,
			TriggeringPubsubAgeSeconds: d.Seconds(),
			TriggeringPubsubTimestamp:  &metadata.Timestamp,
			Now:                        &now,
		})
		return nil
	}

	var insertID string
	switch global.tableName {
	case "complianceStatus":
		insertID, err = persistComplianceStatus(PubSubMessage.Data, global)
	case "violations":
		insertID, err = persistViolation(PubSubMessage.Data, global)
	case "assets":
		insertID, err = persistAsset(PubSubMessage.Data, global)
	default:
		log.Println(glo.Entry{
			MicroserviceName:   global.microserviceName,
			InstanceName:       global.instanceName,
			Environment:        global.environment,
			Severity:           "CRITICAL",
			Message:            "noretry",
			Description:        fmt.Sprintf("unsupported tableName %s", global.tableName),
			TriggeringPubsubID: global.PubSubID,
		})
		return nil
	}
	if err != nil {
		log.Println(glo.Entry{
			MicroserviceName:   global.microserviceName,
			InstanceName:       global.instanceName,
			Environment:        global.environment,
			Severity:           "CRITICAL",
			Message:            "redo_on_transient",
			Description:        fmt.Sprintf("persist %s %v", global.tableName, err),
			TriggeringPubsubID: global.PubSubID,
		})
		return err
	}
	if insertID == "" {
		// the message was not persistable, already logged as noretry
		return nil
	}

	now = time.Now()
	latency := now.Sub(global.step.StepTimestamp)
	latencyE2E := now.Sub(global.stepStack[0].StepTimestamp)
	log.Println(glo.Entry{
		MicroserviceName:     global.microserviceName,
		InstanceName:         global.instanceName,
		Environment:          global.environment,
		Severity:             "NOTICE",
		Message:              fmt.Sprintf("finish insert %s %s", global.tableName, insertID),
		Now:                  &now,
		TriggeringPubsubID:   global.PubSubID,
		OriginEventTimestamp: &global.stepStack[0].StepTimestamp,
		LatencySeconds:       latency.Seconds(),
		LatencyE2ESeconds:    latencyE2E.Seconds(),
		StepStack:            global.stepStack,
	})
	return nil
}

func persistComplianceStatus(pubSubJSONDoc []byte, global *Global) (insertID string, err error) {
	var complianceStatus monitor.ComplianceStatus
	err = json.Unmarshal(pubSubJSONDoc, &complianceStatus)
	if err != nil {
		log.Println(glo.Entry{
			MicroserviceName:   global.microserviceName,
			InstanceName:       global.instanceName,
			Environment:        global.environment,
			Severity:           "CRITICAL",
			Message:            "noretry",
			Description:        fmt.Sprintf("json.Unmarshal complianceStatus %s %v", string(pubSubJSONDoc), err),
			TriggeringPubsubID: global.PubSubID,
		})
		return "", nil
	}
	insertID = fmt.Sprintf("%s%v%s%v", complianceStatus.AssetName, complianceStatus.AssetInventoryTimeStamp, complianceStatus.RuleName, complianceStatus.RuleDeploymentTimeStamp)
	savers := []*bigquery.StructSaver{
		{Struct: complianceStatus, Schema: gbq.GetComplianceStatusSchema(), InsertID: insertID},
	}
	if err := global.inserter.Put(global.ctx, savers); err != nil {
		return "", fmt.Errorf("inserter.Put %v", err)
	}
	return insertID, nil
}

func persistViolation(pubSubJSONDoc []byte, global *Global) (insertID string, err error) {
	var violation violation
	err = json.Unmarshal(pubSubJSONDoc, &violation)
	if err != nil {
		log.Println(glo.Entry{
			MicroserviceName:   global.microserviceName,
			InstanceName:       global.instanceName,
			Environment:        global.environment,
			Severity:           "CRITICAL",
			Message:            "noretry",
			Description:        fmt.Sprintf("json.Unmarshal violation %s %v", string(pubSubJSONDoc), err),
			TriggeringPubsubID: global.PubSubID,
		})
		return "", nil
	}
	if violation.FeedMessage.StepStack != nil {
		global.stepStack = append(violation.FeedMessage.StepStack, global.step)
	}

	var violationBQ violationBQ
	violationBQ.NonCompliance = flattenNonCompliance(violation.NonCompliance)
	violationBQ.FunctionConfig = violation.FunctionConfig
	violationBQ.PolicyConfig.Name = violation.PolicyConfig.Name
	violationBQ.PolicyConfig.Severity = violation.PolicyConfig.Severity
	if violation.PolicyConfig.Parameters != nil {
		parametersJSON, err := json.Marshal(violation.PolicyConfig.Parameters)
		if err == nil {
			violationBQ.PolicyConfig.Parameters = string(parametersJSON)
		}
	}
	violationBQ.FeedMessage.Window = violation.FeedMessage.Window
	violationBQ.FeedMessage.Origin = violation.FeedMessage.Origin
	violationBQ.FeedMessage.Asset.Name = violation.FeedMessage.Asset.Name
	violationBQ.FeedMessage.Asset.Owner = violation.FeedMessage.Asset.Owner
	violationBQ.FeedMessage.Asset.ViolationResolver = violation.FeedMessage.Asset.ViolationResolver
	violationBQ.FeedMessage.Asset.AssetType = violation.FeedMessage.Asset.AssetType
	violationBQ.FeedMessage.Asset.Ancestors = strings.Join(violation.FeedMessage.Asset.Ancestors, ",")
	violationBQ.FeedMessage.Asset.AncestorsDisplayName = strings.Join(violation.FeedMessage.Asset.AncestorsDisplayName, ",")
	violationBQ.FeedMessage.Asset.AncestryPath = violation.FeedMessage.Asset.AncestryPath
	violationBQ.FeedMessage.Asset.AncestryPathDisplayName = violation.FeedMessage.Asset.AncestryPathDisplayName
	violationBQ.FeedMessage.Asset.Resource = string(violation.FeedMessage.Asset.Resource)

	insertID = fmt.Sprintf("%s%v%s%v%s",
		violationBQ.FeedMessage.Asset.Name,
		violation.FeedMessage.Window.StartTime,
		violation.FunctionConfig.FunctionName,
		violation.FunctionConfig.DeploymentTime,
		violation.NonCompliance.RuleName)
	savers := []*bigquery.StructSaver{
		{Struct: violationBQ, Schema: gbq.GetViolationsSchema(), InsertID: insertID},
	}
	if err := global.inserter.Put(global.ctx, savers); err != nil {
		return "", fmt.Errorf("inserter.Put %v", err)
	}
	return insertID, nil
}

func persistAsset(pubSubJSONDoc []byte, global *Global) (insertID string, err error) {
	var feedMessage eks.FeedMessage
	err = json.Unmarshal(pubSubJSONDoc, &feedMessage)
	if err != nil {
		log.Println(glo.Entry{
			MicroserviceName:   global.microserviceName,
			InstanceName:       global.instanceName,
			Environment:        global.environment,
			Severity:           "CRITICAL",
			Message:            "noretry",
			Description:        fmt.Sprintf("json.Unmarshal feedMessage %s %v", string(pubSubJSONDoc), err),
			TriggeringPubsubID: global.PubSubID,
		})
		return "", nil
	}
	if feedMessage.Asset.Name == "" {
		log.Println(glo.Entry{
			MicroserviceName:   global.microserviceName,
			InstanceName:       global.instanceName,
			Environment:        global.environment,
			Severity:           "CRITICAL",
			Message:            "noretry",
			Description:        "feedMessage.Asset.Name is empty",
			TriggeringPubsubID: global.PubSubID,
		})
		return "", nil
	}
	if feedMessage.StepStack != nil {
		global.stepStack = append(feedMessage.StepStack, global.step)
	}

	var assetAssetBQ assetAssetBQ
	assetAssetBQ.Name = feedMessage.Asset.Name
	assetAssetBQ.AssetType = feedMessage.Asset.AssetType
	assetAssetBQ.Ancestors = feedMessage.Asset.Ancestors
	assetAssetBQ.Deleted = feedMessage.Deleted
	assetAssetBQ.Timestamp = feedMessage.Window.StartTime
	assetAssetBQ.AncestryPath = eks.BuildAncestryPath(feedMessage.Asset.Ancestors)
	assetAssetBQ.AncestorsDisplayName = eks.BuildAncestorsDisplayName(global.ctx, feedMessage.Asset.Ancestors, global.assetsCollectionID, global.firestoreClient)
	assetAssetBQ.AncestryPathDisplayName = eks.BuildAncestryPath(assetAssetBQ.AncestorsDisplayName)
	assetAssetBQ.Owner, _ = eks.GetAssetTagValue(global.ownerTagKeyName, feedMessage.Asset.Resource)
	assetAssetBQ.ViolationResolver, _ = eks.GetAssetTagValue(global.violationResolverTagKeyName, feedMessage.Asset.Resource)

	insertID = fmt.Sprintf("%s%v", assetAssetBQ.Name, assetAssetBQ.Timestamp)
	savers := []*bigquery.StructSaver{
		{Struct: assetAssetBQ, Schema: gbq.GetAssetsSchema(), InsertID: insertID},
	}
	if err := global.inserter.Put(global.ctx, savers); err != nil {
		return "", fmt.Errorf("inserter.Put %v", err)
	}
	return insertID, nil
}

func flattenNonCompliance(nonCompliance cpl.Violation) (flattened nonComplianceBQ) {
	flattened.RuleName = nonCompliance.RuleName
	flattened.Reason = nonCompliance.Reason
	flattened.Required = strings.Join(nonCompliance.Required, ",")
	flattened.Missing = strings.Join(nonCompliance.Missing, ",")
	flattened.Allowed = strings.Join(nonCompliance.Allowed, ",")
	flattened.Cidrs = strings.Join(nonCompliance.Cidrs, ",")
	flattened.Minimum = nonCompliance.Minimum
	flattened.Current = nonCompliance.Current
	flattened.Limit = nonCompliance.Limit
	flattened.MinSize = nonCompliance.MinSize
	flattened.MaxSize = nonCompliance.MaxSize
	flattened.DesiredSize = nonCompliance.DesiredSize
	return flattened
}
