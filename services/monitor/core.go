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

package monitor

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/functions/metadata"
	pubsub "cloud.google.com/go/pubsub/apiv1"
	"github.com/BrunoReboul/rem/utilities/cpl"
	"github.com/BrunoReboul/rem/utilities/eks"
	"github.com/BrunoReboul/rem/utilities/ffo"
	"github.com/BrunoReboul/rem/utilities/glo"
	"github.com/BrunoReboul/rem/utilities/gps"
	"github.com/BrunoReboul/rem/utilities/solution"
	"github.com/google/uuid"
	pubsubpb "google.golang.org/genproto/googleapis/pubsub/v1"
)

// Global structure for global variables to optimize the cloud function performances
type Global struct {
	assetsCollectionID           string
	ctx                          context.Context
	deploymentTime               time.Time
	environment                  string
	firestoreClient              *firestore.Client
	instanceName                 string
	microserviceName             string
	ownerTagKeyName              string
	policySet                    cpl.PolicySet
	projectID                    string
	PubSubID                     string
	pubsubPublisherClient        *pubsub.PublisherClient
	remComplianceStatusTopicName string
	remViolationTopicName        string
	retryTimeOutSeconds          int64
	step                         glo.Step
	stepStack                    glo.Steps
	violationResolverTagKeyName  string
}

// violation the envelope published for each non compliance evidence
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

// policyConfig echoes the policy entry the violated rule was evaluated with
type policyConfig struct {
	Name       string      `json:"name"`
	Severity   string      `json:"severity,omitempty"`
	Parameters interface{} `json:"parameters,omitempty"`
}

// ComplianceStatus by asset, by policy set, true/false compliance status
type ComplianceStatus struct {
	AssetName               string    `json:"assetName"`
	AssetInventoryTimeStamp time.Time `json:"assetInventoryTimeStamp"`
	AssetInventoryOrigin    string    `json:"assetInventoryOrigin"`
	RuleName                string    `json:"ruleName"`
	RuleDeploymentTimeStamp time.Time `json:"ruleDeploymentTimeStamp"`
	Compliant               bool      `json:"compliant"`
	Deleted                 bool      `json:"deleted"`
}

// Initialize is to be executed in the init() function of the cloud function to optimize the cold start
func Initialize(ctx context.Context, global *Global) (err error) {
	log.SetFlags(0)
	global.ctx = ctx

	var instanceDeployment InstanceDeployment

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

	global.assetsCollectionID = instanceDeployment.Core.SolutionSettings.Hosting.FireStore.CollectionIDs.Assets
	global.deploymentTime = instanceDeployment.Settings.Instance.DeploymentTime
	global.ownerTagKeyName = instanceDeployment.Core.SolutionSettings.Monitoring.TagKeyNames.Owner
	global.policySet = instanceDeployment.Settings.Instance.CPL
	global.projectID = instanceDeployment.Core.SolutionSettings.Hosting.ProjectID
	global.remComplianceStatusTopicName = instanceDeployment.Core.SolutionSettings.Hosting.Pubsub.TopicNames.REMComplianceStatus
	global.remViolationTopicName = instanceDeployment.Core.SolutionSettings.Hosting.Pubsub.TopicNames.REMViolation
	global.retryTimeOutSeconds = instanceDeployment.Settings.Service.GCF.RetryTimeOutSeconds
	global.violationResolverTagKeyName = instanceDeployment.Core.SolutionSettings.Monitoring.TagKeyNames.ViolationResolver

	global.firestoreClient, err = firestore.NewClient(ctx, global.projectID)
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
	global.pubsubPublisherClient, err = pubsub.NewPublisherClient(ctx)
	if err != nil {
		log.Println(glo.Entry{
			MicroserviceName: global.microserviceName,
			InstanceName:     global.instanceName,
			Environment:      global.environment,
			Severity:         "CRITICAL",
			Message:          "init_failed",
			Description:      fmt.Sprintf("pubsub.NewPublisherClient %v", err),
			InitID:           initID,
		})
		return err
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

	var feedMessage eks.FeedMessage
	err = json.Unmarshal(PubSubMessage.Data, &feedMessage)
	if err != nil {
		log.Println(glo.Entry{
			MicroserviceName:   global.microserviceName,
			InstanceName:       global.instanceName,
			Environment:        global.environment,
			Severity:           "CRITICAL",
			Message:            "noretry",
			Description:        fmt.Sprintf("json.Unmarshal(PubSubMessage.Data, &feedMessage) %v %v", PubSubMessage.Data, err),
			TriggeringPubsubID: global.PubSubID,
		})
		return nil
	}
	if feedMessage.Origin == "" {
		feedMessage.Origin = "real-time"
	}
	if feedMessage.StepStack != nil {
		global.stepStack = append(feedMessage.StepStack, global.step)
	} else {
		global.stepStack = append(global.stepStack, global.step)
	}

	feedMessage.Asset.AncestryPath = eks.BuildAncestryPath(feedMessage.Asset.Ancestors)
	feedMessage.Asset.AncestorsDisplayName = eks.BuildAncestorsDisplayName(global.ctx, feedMessage.Asset.Ancestors, global.assetsCollectionID, global.firestoreClient)
	feedMessage.Asset.AncestryPathDisplayName = eks.BuildAncestryPath(feedMessage.Asset.AncestorsDisplayName)
	feedMessage.Asset.Owner, _ = eks.GetAssetTagValue(global.ownerTagKeyName, feedMessage.Asset.Resource)
	feedMessage.Asset.ViolationResolver, _ = eks.GetAssetTagValue(global.violationResolverTagKeyName, feedMessage.Asset.Resource)

	snapshot, err := eks.ParseSnapshot(feedMessage)
	if err != nil {
		log.Println(glo.Entry{
			MicroserviceName:   global.microserviceName,
			InstanceName:       global.instanceName,
			Environment:        global.environment,
			Severity:           "CRITICAL",
			Message:            "noretry",
			Description:        fmt.Sprintf("eks.ParseSnapshot %v", err),
			TriggeringPubsubID: global.PubSubID,
		})
		return nil
	}

	var complianceStatus ComplianceStatus
	complianceStatus.AssetName = feedMessage.Asset.Name
	complianceStatus.AssetInventoryTimeStamp = feedMessage.Window.StartTime
	complianceStatus.AssetInventoryOrigin = feedMessage.Origin
	complianceStatus.RuleName = global.instanceName
	complianceStatus.RuleDeploymentTimeStamp = global.deploymentTime

	verdict := "COMPLIANT"
	if snapshot.Status == eks.StatusResourceDeleted {
		// bool cannot be nil and has a zero value of false, a deletion always clears previous findings
		complianceStatus.Deleted = true
		complianceStatus.Compliant = true
		verdict = "DELETED"
	} else {
		result := cpl.Evaluate(snapshot, global.policySet)
		complianceStatus.Compliant = !result.Vulnerable
		if result.Vulnerable {
			verdict = "NOT_COMPLIANT"
			for i, evidence := range result.Evidence {
				var violation violation
				violation.NonCompliance = evidence
				violation.FunctionConfig.FunctionName = global.instanceName
				violation.FunctionConfig.DeploymentTime = global.deploymentTime
				violation.FunctionConfig.ProjectID = global.projectID
				violation.FunctionConfig.Environment = global.environment
				severity, parameters := global.policySet.RuleSpec(evidence.RuleName)
				violation.PolicyConfig.Name = evidence.RuleName
				violation.PolicyConfig.Severity = severity
				violation.PolicyConfig.Parameters = parameters
				violation.FeedMessage = feedMessage

				violationJSON, err := json.Marshal(violation)
				if err != nil {
					log.Println(glo.Entry{
						MicroserviceName:   global.microserviceName,
						InstanceName:       global.instanceName,
						Environment:        global.environment,
						Severity:           "CRITICAL",
						Message:            "noretry",
						Description:        fmt.Sprintf("json.Marshal(violation) %v", err),
						TriggeringPubsubID: global.PubSubID,
					})
					return nil
				}
				log.Println(glo.Entry{
					MicroserviceName:   global.microserviceName,
					InstanceName:       global.instanceName,
					Environment:        global.environment,
					Severity:           "WARNING",
					Message:            fmt.Sprintf("violation %s %s", evidence.RuleName, complianceStatus.AssetName),
					Description:        fmt.Sprintf("violationNum %d %s", i, string(violationJSON)),
					TriggeringPubsubID: global.PubSubID,
				})
				err = publishPubSubMessage(violationJSON, global.remViolationTopicName, global)
				if err != nil {
					log.Println(glo.Entry{
						MicroserviceName:   global.microserviceName,
						InstanceName:       global.instanceName,
						Environment:        global.environment,
						Severity:           "CRITICAL",
						Message:            "redo_on_transient",
						Description:        fmt.Sprintf("publishPubSubMessage violation %v", err),
						TriggeringPubsubID: global.PubSubID,
					})
					return err
				}
			}
		}
	}

	complianceStatusJSON, err := json.Marshal(complianceStatus)
	if err != nil {
		log.Println(glo.Entry{
			MicroserviceName:   global.microserviceName,
			InstanceName:       global.instanceName,
			Environment:        global.environment,
			Severity:           "CRITICAL",
			Message:            "noretry",
			Description:        fmt.Sprintf("json.Marshal(complianceStatus) %v", err),
			TriggeringPubsubID: global.PubSubID,
		})
		return nil
	}
	err = publishPubSubMessage(complianceStatusJSON, global.remComplianceStatusTopicName, global)
	if err != nil {
		log.Println(glo.Entry{
			MicroserviceName:   global.microserviceName,
			InstanceName:       global.instanceName,
			Environment:        global.environment,
			Severity:           "CRITICAL",
			Message:            "redo_on_transient",
			Description:        fmt.Sprintf("publishPubSubMessage complianceStatus %v", err),
			TriggeringPubsubID: global.PubSubID,
		})
		return err
	}

	now = time.Now()
	latency := now.Sub(metadata.Timestamp)
	latencyE2E := now.Sub(global.stepStack[0].StepTimestamp)
	log.Println(glo.Entry{
		MicroserviceName:     global.microserviceName,
		InstanceName:         global.instanceName,
		Environment:          global.environment,
		Severity:             "NOTICE",
		Message:              fmt.Sprintf("finish %s %s", verdict, complianceStatus.AssetName),
		Description:          fmt.Sprintf("%s %v %s", complianceStatus.AssetInventoryOrigin, complianceStatus.AssetInventoryTimeStamp, string(complianceStatusJSON)),
		Now:                  &now,
		TriggeringPubsubID:   global.PubSubID,
		OriginEventTimestamp: &metadata.Timestamp,
		LatencySeconds:       latency.Seconds(),
		LatencyE2ESeconds:    latencyE2E.Seconds(),
		StepStack:            global.stepStack,
	})
	return nil
}

func publishPubSubMessage(docJSON []byte, topicName string, global *Global) error {
	var pubSubMessage pubsubpb.PubsubMessage
	pubSubMessage.Data = docJSON

	var pubsubMessages []*pubsubpb.PubsubMessage
	pubsubMessages = append(pubsubMessages, &pubSubMessage)

	var publishRequest pubsubpb.PublishRequest
	publishRequest.Topic = fmt.Sprintf("projects/%s/topics/%s", global.projectID, topicName)
	publishRequest.Messages = pubsubMessages

	_, err := global.pubsubPublisherClient.Publish(global.ctx, &publishRequest)
	if err != nil {
		return fmt.Errorf("pubsubPublisherClient.Publish topic %s %v", topicName, err)
	}
	return nil
}
