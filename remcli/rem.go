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

// Package main is the entry point of the rem command line
package main

import (
	"context"
	"log"

	"github.com/BrunoReboul/rem/utilities/remcli"
)

func main() {
	ctx := context.Background()
	deployment := remcli.NewDeployment()
	remcli.Initialize(ctx, deployment)
	if err := remcli.REMCli(deployment); err != nil {
		log.Fatalln(err)
	}
}
