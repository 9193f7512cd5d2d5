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

package ffo

import (
	"fmt"

	"github.com/BrunoReboul/rem/utilities/validater"
)

// ReadValidate reads a YAML settings file into a structure and validates it
func ReadValidate(name string, settingsType string, path string, settings interface{}) (err error) {
	err = ReadUnmarshalYAML(path, settings)
	if err != nil {
		return fmt.Errorf("%s %s ReadUnmarshalYAML %s %v", name, settingsType, path, err)
	}
	err = validater.ValidateStruct(settings, fmt.Sprintf("%s%s", name, settingsType))
	if err != nil {
		return fmt.Errorf("%s %s %v", name, settingsType, err)
	}
	return nil
}
