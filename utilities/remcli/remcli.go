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

package remcli

import (
	"context"
	"fmt"
	"log"

	"cloud.google.com/go/bigquery"
	pubsub "cloud.google.com/go/pubsub/apiv1"
	scheduler "cloud.google.com/go/scheduler/apiv1"
	"cloud.google.com/go/storage"
	"github.com/BrunoReboul/rem/utilities/ffo"
	"github.com/BrunoReboul/rem/utilities/gcb"
	"github.com/BrunoReboul/rem/utilities/gcf"
	"github.com/BrunoReboul/rem/utilities/gsu"
	"github.com/BrunoReboul/rem/utilities/iamgt"
	"github.com/BrunoReboul/rem/utilities/solution"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/appengine/v1"
	"google.golang.org/api/cloudbilling/v1"
	"google.golang.org/api/cloudbuild/v1"
	"google.golang.org/api/cloudfunctions/v1"
	"google.golang.org/api/cloudresourcemanager/v1"
	cloudresourcemanagerv2 "google.golang.org/api/cloudresourcemanager/v2"
	"google.golang.org/api/iam/v1"
	"google.golang.org/api/logging/v2"
	"google.golang.org/api/monitoring/v1"
	"google.golang.org/api/option"
	"google.golang.org/api/serviceusage/v1"
	"google.golang.org/api/sourcerepo/v1"

	"github.com/BrunoReboul/rem/utilities/deploy"
)

// Deployment is the cli deployment structure
type Deployment struct {
	Core     deploy.Core
	Settings struct {
		Service struct {
			GSU gsu.Parameters
			IAM iamgt.Parameters
			GCB gcb.Parameters
			GCF gcf.Parameters
		}
	}
}

// NewDeployment create a cli deployment structure
func NewDeployment() *Deployment {
	return &Deployment{}
}

// Initialize is to be executed in the init() of the cli main package: creates the clients shared by all deployments
func Initialize(ctx context.Context, deployment *Deployment) {
	deployment.Core.Ctx = ctx

	creds, err := google.FindDefaultCredentials(ctx, "https://www.googleapis.com/auth/cloud-platform")
	if err != nil {
		log.Fatalf("ERROR - google.FindDefaultCredentials %v", err)
	}

	if deployment.Core.Services.AppengineAPIService, err = appengine.NewService(ctx, option.WithCredentials(creds)); err != nil {
		log.Fatalln(err)
	}
	if deployment.Core.Services.CloudSchedulerClient, err = scheduler.NewCloudSchedulerClient(ctx, option.WithCredentials(creds)); err != nil {
		log.Fatalln(err)
	}
	if deployment.Core.Services.Cloudbillingservice, err = cloudbilling.NewService(ctx, option.WithCredentials(creds)); err != nil {
		log.Fatalln(err)
	}
	if deployment.Core.Services.CloudbuildService, err = cloudbuild.NewService(ctx, option.WithCredentials(creds)); err != nil {
		log.Fatalln(err)
	}
	if deployment.Core.Services.CloudfunctionsService, err = cloudfunctions.NewService(ctx, option.WithCredentials(creds)); err != nil {
		log.Fatalln(err)
	}
	if deployment.Core.Services.CloudresourcemanagerService, err = cloudresourcemanager.NewService(ctx, option.WithCredentials(creds)); err != nil {
		log.Fatalln(err)
	}
	if deployment.Core.Services.CloudresourcemanagerServicev2, err = cloudresourcemanagerv2.NewService(ctx, option.WithCredentials(creds)); err != nil {
		log.Fatalln(err)
	}
	if deployment.Core.Services.IAMService, err = iam.NewService(ctx, option.WithCredentials(creds)); err != nil {
		log.Fatalln(err)
	}
	if deployment.Core.Services.LoggingService, err = logging.NewService(ctx, option.WithCredentials(creds)); err != nil {
		log.Fatalln(err)
	}
	if deployment.Core.Services.MonitoringService, err = monitoring.NewService(ctx, option.WithCredentials(creds)); err != nil {
		log.Fatalln(err)
	}
	if deployment.Core.Services.PubsubPublisherClient, err = pubsub.NewPublisherClient(ctx, option.WithCredentials(creds)); err != nil {
		log.Fatalln(err)
	}
	if deployment.Core.Services.ServiceusageService, err = serviceusage.NewService(ctx, option.WithCredentials(creds)); err != nil {
		log.Fatalln(err)
	}
	if deployment.Core.Services.SourcerepoService, err = sourcerepo.NewService(ctx, option.WithCredentials(creds)); err != nil {
		log.Fatalln(err)
	}
	if deployment.Core.Services.StorageClient, err = storage.NewClient(ctx, option.WithCredentials(creds)); err != nil {
		log.Fatalln(err)
	}
}

// REMCli Real-time EKS Monitor cli, crashes execution on errors
func REMCli(deployment *Deployment) (err error) {
	deployment.CheckArguments()

	solutionConfigFilePath := fmt.Sprintf("%s/%s", deployment.Core.RepositoryPath, solution.SolutionSettingsFileName)
	if err = ffo.ReadValidate("", "SolutionSettings", solutionConfigFilePath, &deployment.Core.SolutionSettings); err != nil {
		log.Fatal(err)
	}
	deployment.Core.SolutionSettings.Situate(deployment.Core.EnvironmentName)

	if deployment.Core.Services.BigqueryClient, err = bigquery.NewClient(deployment.Core.Ctx,
		deployment.Core.SolutionSettings.Hosting.ProjectID); err != nil {
		log.Fatalln(err)
	}

	project, err := deployment.Core.Services.CloudresourcemanagerService.Projects.Get(
		deployment.Core.SolutionSettings.Hosting.ProjectID).Context(deployment.Core.Ctx).Do()
	if err != nil {
		log.Fatalf("ERROR - cloudresourcemanagerService.Projects.Get %v", err)
	}
	deployment.Core.ProjectNumber = project.ProjectNumber

	if deployment.Core.Commands.Initialize {
		if err = deployment.initialize(); err != nil {
			log.Fatal(err)
		}
		log.Println("done rem cli init")
		return nil
	}

	if deployment.Core.Commands.ConfigureAssetTypes {
		if err = deployment.configure(); err != nil {
			log.Fatal(err)
		}
		log.Println("done rem cli config")
		return nil
	}

	if deployment.Core.Commands.MakeReleasePipeline {
		if err = deployment.deployReleasePipelinePrerequsites(); err != nil {
			log.Fatal(err)
		}
	}

	log.Printf("found %d instance(s)", len(deployment.Core.InstanceFolderRelativePaths))
	for _, instanceFolderRelativePath := range deployment.Core.InstanceFolderRelativePaths {
		serviceName, instanceName := GetServiceAndInstanceNames(instanceFolderRelativePath)
		deployment.Core.ServiceName = serviceName
		deployment.Core.InstanceName = instanceName
		switch serviceName {
		case "convertconfig2feed":
			deployment.deployConvertconfig2feed()
		case "monitor":
			deployment.deployMonitor()
		case "publish2fs":
			deployment.deployPublish2fs()
		case "requestdump":
			deployment.deployRequestdump()
		case "setdashboards":
			deployment.deploySetDashboards()
		case "setlogmetrics":
			deployment.deploySetLogMetrics()
		case "setsinks":
			deployment.deploySetSinks()
		case "splitdump":
			deployment.deploySplitdump()
		case "stream2bq":
			deployment.deployStream2bq()
		case "upload2gcs":
			deployment.deployUpload2gcs()
		default:
			log.Printf("WARNING unsupported microservice %s skip instance %s", serviceName, instanceName)
		}
	}
	return nil
}
