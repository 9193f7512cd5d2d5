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

package convertconfig2feed

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"cloud.google.com/go/functions/metadata"
	pubsub "cloud.google.com/go/pubsub/apiv1"
	"github.com/BrunoReboul/rem/utilities/eks"
	"github.com/BrunoReboul/rem/utilities/ffo"
	"github.com/BrunoReboul/rem/utilities/glo"
	"github.com/BrunoReboul/rem/utilities/gps"
	"github.com/BrunoReboul/rem/utilities/solution"
	"github.com/google/uuid"
	pubsubpb "google.golang.org/genproto/googleapis/pubsub/v1"
)

// bridgeServiceName the Cloud Run service relaying AWS Config notifications as log entries
const bridgeServiceName = "eks-config-bridge"

// Global structure for global variables to optimize the cloud function performances
type Global struct {
	ctx                   context.Context
	environment           string
	instanceName          string
	logEntry              logEntry
	microserviceName      string
	projectID             string
	PubSubID              string
	pubsubPublisherClient *pubsub.PublisherClient
	retryTimeOutSeconds   int64
	step                  glo.Step
	stepStack             glo.Steps
	topicList             []string
}

// logEntry sink export of the bridge log entries
// Not reusing the logging library LogEntry types as the jsonPayload structured there is not consistent with what is exported in the sink
type logEntry struct {
	InsertID         string    `json:"insertId"`
	Timestamp        time.Time `json:"timestamp"`
	ReceiveTimestamp time.Time `json:"receiveTimestamp"`
	Resource         struct {
		Type   string            `json:"type"`
		Labels map[string]string `json:"labels"`
	} `json:"resource"`
	JSONPayload json.RawMessage `json:"jsonPayload"`
}

// configNotification AWS Config notification as logged by the bridge
type configNotification struct {
	MessageType              string            `json:"messageType"`
	NotificationCreationTime time.Time         `json:"notificationCreationTime"`
	ConfigurationItem        configurationItem `json:"configurationItem"`
	ConfigurationItemDiff    struct {
		ChangeType string `json:"changeType"`
	} `json:"configurationItemDiff"`
}

// configurationItem the AWS Config snapshot of one resource
type configurationItem struct {
	ResourceType                 string            `json:"resourceType"`
	ResourceID                   string            `json:"resourceId"`
	ResourceName                 string            `json:"resourceName"`
	ARN                          string            `json:"arn"`
	AWSAccountID                 string            `json:"awsAccountId"`
	AWSRegion                    string            `json:"awsRegion"`
	ConfigurationItemStatus      string            `json:"configurationItemStatus"`
	ConfigurationItemCaptureTime time.Time         `json:"configurationItemCaptureTime"`
	Tags                         map[string]string `json:"tags"`
	Configuration                json.RawMessage   `json:"configuration"`
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

	global.projectID = instanceDeployment.Core.SolutionSettings.Hosting.ProjectID
	global.retryTimeOutSeconds = instanceDeployment.Settings.Service.GCF.RetryTimeOutSeconds

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
	err = gps.GetTopicList(ctx, global.pubsubPublisherClient, global.projectID, &global.topicList)
	if err != nil {
		log.Println(glo.Entry{
			MicroserviceName: global.microserviceName,
			InstanceName:     global.instanceName,
			Environment:      global.environment,
			Severity:         "CRITICAL",
			Message:          "init_failed",
			Description:      fmt.Sprintf("gps.GetTopicList %v", err),
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

	err = json.Unmarshal(PubSubMessage.Data, &global.logEntry)
	if err != nil {
		log.Println(glo.Entry{
			MicroserviceName:   global.microserviceName,
			InstanceName:       global.instanceName,
			Environment:        global.environment,
			Severity:           "CRITICAL",
			Message:            "noretry",
			Description:        fmt.Sprintf("json.Unmarshal logEntry %v %v", PubSubMessage.Data, err),
			TriggeringPubsubID: global.PubSubID,
		})
		return nil
	}
	global.stepStack = append(global.stepStack, global.step)

	switch global.logEntry.Resource.Type {
	case "cloud_run_revision":
		switch global.logEntry.Resource.Labels["service_name"] {
		case bridgeServiceName:
			return convertConfigNotification(global)
		default:
			log.Println(glo.Entry{
				MicroserviceName:   global.microserviceName,
				InstanceName:       global.instanceName,
				Environment:        global.environment,
				Severity:           "NOTICE",
				Message:            fmt.Sprintf("finish unmanaged service_name %s", global.logEntry.Resource.Labels["service_name"]),
				TriggeringPubsubID: global.PubSubID,
			})
			return nil
		}
	default:
		log.Println(glo.Entry{
			MicroserviceName:   global.microserviceName,
			InstanceName:       global.instanceName,
			Environment:        global.environment,
			Severity:           "NOTICE",
			Message:            fmt.Sprintf("finish unmanaged logEntry.Resource.Type %s", global.logEntry.Resource.Type),
			TriggeringPubsubID: global.PubSubID,
		})
		return nil
	}
}

func convertConfigNotification(global *Global) (err error) {
	var notification configNotification
	err = json.Unmarshal(global.logEntry.JSONPayload, &notification)
	if err != nil {
		log.Println(glo.Entry{
			MicroserviceName:   global.microserviceName,
			InstanceName:       global.instanceName,
			Environment:        global.environment,
			Severity:           "CRITICAL",
			Message:            "noretry",
			Description:        fmt.Sprintf("json.Unmarshal jsonPayload insertId %s %v", global.logEntry.InsertID, err),
			TriggeringPubsubID: global.PubSubID,
		})
		return nil
	}

	switch notification.MessageType {
	case "ConfigurationItemChangeNotification":
		return publishFeedMessage(notification, global)
	default:
		log.Println(glo.Entry{
			MicroserviceName:   global.microserviceName,
			InstanceName:       global.instanceName,
			Environment:        global.environment,
			Severity:           "NOTICE",
			Message:            fmt.Sprintf("finish unmanaged messageType %s", notification.MessageType),
			TriggeringPubsubID: global.PubSubID,
		})
		return nil
	}
}

func publishFeedMessage(notification configNotification, global *Global) (err error) {
	item := notification.ConfigurationItem
	if eks.ParseKind(item.ResourceType) == eks.KindUnsupported {
		log.Println(glo.Entry{
			MicroserviceName:   global.microserviceName,
			InstanceName:       global.instanceName,
			Environment:        global.environment,
			Severity:           "NOTICE",
			Message:            fmt.Sprintf("finish unmanaged resourceType %s", item.ResourceType),
			TriggeringPubsubID: global.PubSubID,
		})
		return nil
	}

	var feedMessage eks.FeedMessage
	feedMessage.Asset.Name = item.ARN
	feedMessage.Asset.AssetType = item.ResourceType
	feedMessage.Asset.Status = item.ConfigurationItemStatus
	feedMessage.Asset.Ancestors = []string{fmt.Sprintf("accounts/%s", item.AWSAccountID)}
	feedMessage.Asset.Resource, err = makeResourceJSON(item)
	if err != nil {
		log.Println(glo.Entry{
			MicroserviceName:   global.microserviceName,
			InstanceName:       global.instanceName,
			Environment:        global.environment,
			Severity:           "CRITICAL",
			Message:            "noretry",
			Description:        fmt.Sprintf("makeResourceJSON %s %v", item.ARN, err),
			TriggeringPubsubID: global.PubSubID,
		})
		return nil
	}
	feedMessage.Window.StartTime = item.ConfigurationItemCaptureTime
	if feedMessage.Window.StartTime.IsZero() {
		feedMessage.Window.StartTime = global.logEntry.Timestamp
	}
	feedMessage.Deleted = item.ConfigurationItemStatus == eks.StatusResourceDeleted ||
		item.ConfigurationItemStatus == eks.StatusResourceDeletedNotRecorded
	feedMessage.Origin = "real-time"
	feedMessage.StepStack = global.stepStack

	feedMessageJSON, err := json.Marshal(feedMessage)
	if err != nil {
		log.Println(glo.Entry{
			MicroserviceName:   global.microserviceName,
			InstanceName:       global.instanceName,
			Environment:        global.environment,
			Severity:           "CRITICAL",
			Message:            "noretry",
			Description:        fmt.Sprintf("json.Marshal(feedMessage) %v", err),
			TriggeringPubsubID: global.PubSubID,
		})
		return nil
	}

	topicName := fmt.Sprintf("eks-rces-%s", eks.GetAssetShortKindName(item.ResourceType))
	err = gps.CreateTopic(global.ctx, global.pubsubPublisherClient, &global.topicList, topicName, global.projectID)
	if err != nil {
		log.Println(glo.Entry{
			MicroserviceName:   global.microserviceName,
			InstanceName:       global.instanceName,
			Environment:        global.environment,
			Severity:           "CRITICAL",
			Message:            "redo_on_transient",
			Description:        fmt.Sprintf("gps.CreateTopic %s %v", topicName, err),
			TriggeringPubsubID: global.PubSubID,
		})
		return err
	}

	var pubSubMessage pubsubpb.PubsubMessage
	pubSubMessage.Data = feedMessageJSON
	var publishRequest pubsubpb.PublishRequest
	publishRequest.Topic = fmt.Sprintf("projects/%s/topics/%s", global.projectID, topicName)
	publishRequest.Messages = []*pubsubpb.PubsubMessage{&pubSubMessage}

	pubsubResponse, err := global.pubsubPublisherClient.Publish(global.ctx, &publishRequest)
	if err != nil {
		log.Println(glo.Entry{
			MicroserviceName:   global.microserviceName,
			InstanceName:       global.instanceName,
			Environment:        global.environment,
			Severity:           "CRITICAL",
			Message:            "redo_on_transient",
			Description:        fmt.Sprintf("pubsubPublisherClient.Publish topic %s %v", topicName, err),
			TriggeringPubsubID: global.PubSubID,
		})
		return err
	}

	now := time.Now()
	latency := now.Sub(global.step.StepTimestamp)
	latencyE2E := now.Sub(global.stepStack[0].StepTimestamp)
	log.Println(glo.Entry{
		MicroserviceName:     global.microserviceName,
		InstanceName:         global.instanceName,
		Environment:          global.environment,
		Severity:             "NOTICE",
		Message:              fmt.Sprintf("finish %s %s", topicName, feedMessage.Asset.Name),
		Description:          fmt.Sprintf("changeType %s status %s messageIDs %v", notification.ConfigurationItemDiff.ChangeType, item.ConfigurationItemStatus, pubsubResponse.MessageIds),
		Now:                  &now,
		TriggeringPubsubID:   global.PubSubID,
		OriginEventTimestamp: &global.step.StepTimestamp,
		LatencySeconds:       latency.Seconds(),
		LatencyE2ESeconds:    latencyE2E.Seconds(),
		StepStack:            global.stepStack,
	})
	return nil
}

// makeResourceJSON folds the AWS Config item tags into the configuration document so that downstream tag lookups see one resource shape
func makeResourceJSON(item configurationItem) (json.RawMessage, error) {
	if len(item.Tags) == 0 {
		return item.Configuration, nil
	}
	var resource map[string]interface{}
	err := json.Unmarshal(item.Configuration, &resource)
	if err != nil {
		return nil, fmt.Errorf("json.Unmarshal configuration %v", err)
	}
	if resource == nil {
		resource = map[string]interface{}{}
	}
	if _, ok := resource["tags"]; !ok {
		resource["tags"] = item.Tags
	}
	return json.Marshal(resource)
}
