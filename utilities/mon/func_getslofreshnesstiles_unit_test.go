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

package mon

import (
	"strings"
	"testing"
)

func TestUnitGetSLOFreshnessTiles(t *testing.T) {
	tests := []struct {
		name             string
		scope            string
		flow             string
		origin           string
		slo              float64
		thresholdSeconds int64
		wantErr          bool
	}{
		{
			name:             "realTimeFlow",
			scope:            "clusters",
			flow:             "real-time",
			origin:           "real-time",
			slo:              0.95,
			thresholdSeconds: 300,
			wantErr:          false,
		},
		{
			name:             "scheduledFlow",
			scope:            "nodegroups",
			flow:             "scheduled",
			origin:           "scheduled",
			slo:              0.99,
			thresholdSeconds: 10800,
			wantErr:          false,
		},
		{
			name:             "sloOutOfRange",
			scope:            "clusters",
			flow:             "real-time",
			origin:           "real-time",
			slo:              1.5,
			thresholdSeconds: 300,
			wantErr:          true,
		},
		{
			name:             "zeroThreshold",
			scope:            "clusters",
			flow:             "real-time",
			origin:           "real-time",
			slo:              0.95,
			thresholdSeconds: 0,
			wantErr:          true,
		},
	}
	for _, tt := range tests {
		tt := tt // https://github.com/golang/go/wiki/CommonMistakes#using-goroutines-on-loop-iterator-variables
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			gotTiles, err := GetSLOFreshnessTiles(tt.scope, tt.flow, tt.origin, tt.slo, tt.thresholdSeconds)
			if (err != nil) != tt.wantErr {
				t.Errorf("error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if err == nil {
				if len(gotTiles) == 0 {
					t.Errorf("want tiles got none")
				}
				foundOrigin := false
				for _, tile := range gotTiles {
					tileJSON, err := tile.MarshalJSON()
					if err != nil {
						t.Fatalf("tile.MarshalJSON %v", err)
					}
					if strings.Contains(string(tileJSON), tt.origin) {
						foundOrigin = true
					}
				}
				if !foundOrigin {
					t.Errorf("origin = %s is not contained in any tile", tt.origin)
				}
			}
		})
	}
}
