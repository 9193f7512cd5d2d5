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
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/BrunoReboul/rem/services/setdashboards"
	"github.com/BrunoReboul/rem/utilities/ffo"
	"github.com/BrunoReboul/rem/utilities/solution"
)

// configureSetDashboards
func (deployment *Deployment) configureSetDashboards() (err error) {
	serviceName := "setdashboards"
	serviceFolderPath := fmt.Sprintf("%s/%s/%s",
		deployment.Core.RepositoryPath,
		solution.MicroserviceParentFolderName,
		serviceName)
	if _, err := os.Stat(serviceFolderPath); os.IsNotExist(err) {
		os.Mkdir(serviceFolderPath, 0755)
	}

	log.Printf("configure %s", serviceName)
	var setDashboardsInstanceDeployment setdashboards.InstanceDeployment
	setDashboardsInstance := setDashboardsInstanceDeployment.Settings.Instance
	instancesFolderPath := fmt.Sprintf("%s/%s", serviceFolderPath, solution.InstancesFolderName)
	if _, err := os.Stat(instancesFolderPath); os.IsNotExist(err) {
		os.Mkdir(instancesFolderPath, 0755)
	}

	microServiceNames := []string{"requestdump", "splitdump", "convertconfig2feed", "monitor", "stream2bq", "publish2fs", "upload2gcs"}

	type dboard struct {
		columns              int64
		microServiceNameList []string
		widgetTypeList       []string
	}
	type dboards map[string]dboard

	var dashboard dboard
	var dashboards dboards
	dashboards = make(dboards)

	dashboard.columns = 4
	dashboard.widgetTypeList = []string{"widgetGCFActiveInstances", "widgetGCFExecutionCount", "widgetGCFExecutionTime", "widgetGCFMemoryUsage"}
	dashboard.microServiceNameList = microServiceNames
	dashboards["REM core microservices"] = dashboard

	dashboard.columns = 1
	dashboard.widgetTypeList = []string{"widgetREMe2eLatency", "widgetREMLatency", "widgetREMTriggerAge", "widgetSubOldestUnackedMsg", "widgetGCFActiveInstances", "widgetGCFExecutionCount", "widgetGCFExecutionTime", "widgetGCFMemoryUsage"}
	for _, microServiceName := range microServiceNames {
		dashboard.microServiceNameList = []string{microServiceName}
		dashboards[fmt.Sprintf("REM %s", microServiceName)] = dashboard
	}

	for displayName, dashboard := range dashboards {
		setDashboardsInstance.MON.DisplayName = displayName
		setDashboardsInstance.MON.Columns = dashboard.columns
		setDashboardsInstance.MON.WidgetTypeList = dashboard.widgetTypeList
		setDashboardsInstance.MON.MicroServiceNameList = dashboard.microServiceNameList
		instanceFolderPath := fmt.Sprintf("%s/%s_%s",
			instancesFolderPath,
			serviceName,
			strings.ToLower(strings.Replace(displayName, " ", "_", -1)))
		if _, err := os.Stat(instanceFolderPath); os.IsNotExist(err) {
			os.Mkdir(instanceFolderPath, 0755)
		}
		if err = ffo.MarshalYAMLWrite(fmt.Sprintf("%s/%s",
			instanceFolderPath,
			solution.InstanceSettingsFileName),
			setDashboardsInstance); err != nil {
			return err
		}
		log.Printf("done %s", instanceFolderPath)
	}

	// SLO freshness dashboards use the tiles layout instead of the widgets grid
	var freshness setdashboards.InstanceDeployment
	for _, flow := range []string{"real-time", "batch"} {
		freshness.Settings.Instance.MON.DisplayName = fmt.Sprintf("REM freshness %s", flow)
		freshness.Settings.Instance.MON.SLOFreshnessLayout.SLO = 0.95
		freshness.Settings.Instance.MON.SLOFreshnessLayout.Origin = flow
		freshness.Settings.Instance.MON.SLOFreshnessLayout.Scope = "EKS clusters and node groups"
		freshness.Settings.Instance.MON.SLOFreshnessLayout.Flow = flow
		freshness.Settings.Instance.MON.SLOFreshnessLayout.Columns = 4
		if flow == "batch" {
			freshness.Settings.Instance.MON.SLOFreshnessLayout.ThresholdSeconds = 21600
		} else {
			freshness.Settings.Instance.MON.SLOFreshnessLayout.ThresholdSeconds = 900
		}
		instanceFolderPath := fmt.Sprintf("%s/%s_%s",
			instancesFolderPath,
			serviceName,
			strings.ToLower(strings.Replace(freshness.Settings.Instance.MON.DisplayName, " ", "_", -1)))
		instanceFolderPath = strings.Replace(instanceFolderPath, "-", "_", -1)
		if _, err := os.Stat(instanceFolderPath); os.IsNotExist(err) {
			os.Mkdir(instanceFolderPath, 0755)
		}
		if err = ffo.MarshalYAMLWrite(fmt.Sprintf("%s/%s",
			instanceFolderPath,
			solution.InstanceSettingsFileName),
			freshness.Settings.Instance); err != nil {
			return err
		}
		log.Printf("done %s", instanceFolderPath)
	}
	return nil
}
