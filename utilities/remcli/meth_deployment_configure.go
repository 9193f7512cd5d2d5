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

// configure writes the instance.yml files and subfolders driven by solution.yml, then refreshes the policies docs
func (deployment *Deployment) configure() (err error) {
	if err = deployment.configureConvertconfig2feedSingleInstance(); err != nil {
		return err
	}
	if err = deployment.configurePublish2fsInstances(); err != nil {
		return err
	}
	if err = deployment.configureRequestdumpSingleInstance(); err != nil {
		return err
	}
	if err = deployment.configureSetDashboards(); err != nil {
		return err
	}
	if err = deployment.configureSetLogMetrics(); err != nil {
		return err
	}
	if err = deployment.configureSetSinksSingleInstance(); err != nil {
		return err
	}
	if err = deployment.configureSplitDumpSingleInstance(); err != nil {
		return err
	}
	if err = deployment.configureStream2bqTables(); err != nil {
		return err
	}
	if err = deployment.configureUpload2gcsKinds(); err != nil {
		return err
	}
	if err = deployment.makePoliciesDocs(); err != nil {
		return err
	}
	return nil
}
