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
	"flag"
	"fmt"
	"log"

	"github.com/BrunoReboul/rem/utilities/ffo"
	"github.com/BrunoReboul/rem/utilities/solution"
)

// CheckArguments check cli arguments and build the list of microservices instances
func (deployment *Deployment) CheckArguments() {
	flag.BoolVar(&deployment.Core.Commands.Initialize, "init", false, "initial setup to be launched first, before manual, aka not automatable setup tasks")
	flag.BoolVar(&deployment.Core.Commands.ConfigureAssetTypes, "config", false, "For asset kinds defined in solution.yml writes setsinks, requestdump, stream2bq, upload2gcs, publish2fs instance.yml files and subfolders")
	flag.BoolVar(&deployment.Core.Commands.MakeReleasePipeline, "pipe", false, "make release pipeline using cloud build to deploy one instance, one microservice, or all")
	flag.BoolVar(&deployment.Core.Commands.Deploy, "deploy", false, "deploy one microservice instance")
	flag.BoolVar(&deployment.Core.Commands.Check, "check", false, "check deployed instances against settings, does not fix drifts")
	flag.BoolVar(&deployment.Core.Commands.Dumpsettings, "dump", false, fmt.Sprintf("dump all settings in %s", solution.SettingsFileName))
	flag.StringVar(&deployment.Core.RepositoryPath, "repo", ".", "Path to the root of the code repository")
	flag.StringVar(&deployment.Core.RemcliServiceAccount, "remclisa", "", "Email of Service Account used when running rem cli")
	var microserviceFolderName = flag.String("service", "", "Microservice folder name")
	var instanceFolderName = flag.String("instance", "", "Instance folder name")
	flag.StringVar(&deployment.Core.EnvironmentName, "environment", solution.DevelopmentEnvironmentName, "Environment name")
	flag.Parse()

	var err error
	deployment.Core.GoVersion, deployment.Core.REMVersion, err = getVersions(deployment.Core.RepositoryPath)
	if err != nil {
		log.Fatal(err)
	}

	// case one instance
	if *instanceFolderName != "" {
		if *microserviceFolderName == "" {
			log.Fatalln("Missing service argument")
		}
		instanceRelativePath := fmt.Sprintf("%s/%s/%s/%s", solution.MicroserviceParentFolderName, *microserviceFolderName, solution.InstancesFolderName, *instanceFolderName)
		deployment.Core.InstanceFolderRelativePaths = []string{instanceRelativePath}
		instancePath := fmt.Sprintf("%s/%s", deployment.Core.RepositoryPath, instanceRelativePath)
		ffo.CheckPath(instancePath)
		return
	}

	if *microserviceFolderName != "" {
		// case one microservice
		deployment.Core.InstanceFolderRelativePaths, err = ffo.GetChild(deployment.Core.RepositoryPath, fmt.Sprintf("%s/%s/%s", solution.MicroserviceParentFolderName, *microserviceFolderName, solution.InstancesFolderName))
		if err != nil {
			log.Fatal(err)
		}
	} else {
		// case all
		microserviceRelativeFolderPaths, err := ffo.GetChild(deployment.Core.RepositoryPath, solution.MicroserviceParentFolderName)
		if err != nil {
			log.Fatal(err)
		}
		for _, microserviceRelativeFolderPath := range microserviceRelativeFolderPaths {
			instanceFolderRelativePaths, err := ffo.GetChild(deployment.Core.RepositoryPath, fmt.Sprintf("%s/%s", microserviceRelativeFolderPath, solution.InstancesFolderName))
			if err != nil {
				log.Fatal(err)
			}
			for _, instanceFolderRelativePath := range instanceFolderRelativePaths {
				deployment.Core.InstanceFolderRelativePaths = append(deployment.Core.InstanceFolderRelativePaths, instanceFolderRelativePath)
			}
		}
	}
	if deployment.Core.Commands.Initialize || deployment.Core.Commands.ConfigureAssetTypes {
		return
	}
	if len(deployment.Core.InstanceFolderRelativePaths) == 0 {
		log.Fatalln("No instance found")
	}
	return
}
