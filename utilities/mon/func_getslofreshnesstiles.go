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
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"google.golang.org/api/monitoring/v1"
)

// GetSLOFreshnessTiles assemble the tiles of a freshness SLO dashboard
func GetSLOFreshnessTiles(scope, flow, origin string, slo float64, thresholdSeconds int64) (tiles []*monitoring.Tile, err error) {
	if slo <= 0 || slo >= 1 {
		return nil, fmt.Errorf("slo must be between 0 and 1, got %v", slo)
	}
	if thresholdSeconds <= 0 {
		return nil, fmt.Errorf("thresholdSeconds must be positive, got %d", thresholdSeconds)
	}
	sloText := fmt.Sprintf("%.2f%%", slo*100)
	thresholdText := (time.Duration(thresholdSeconds) * time.Second).String()
	lowerBound := slo - (1-slo)*2
	if lowerBound < 0 {
		lowerBound = 0
	}
	tilesJSON := SLOFreshnessTiles
	tilesJSON = strings.Replace(tilesJSON, "<scope>", scope, -1)
	tilesJSON = strings.Replace(tilesJSON, "<flow>", flow, -1)
	tilesJSON = strings.Replace(tilesJSON, "<origin>", origin, -1)
	tilesJSON = strings.Replace(tilesJSON, "<sloText>", sloText, -1)
	tilesJSON = strings.Replace(tilesJSON, "<thresholdText>", thresholdText, -1)
	tilesJSON = strings.Replace(tilesJSON, "<slo>", fmt.Sprintf("%v", slo), -1)
	tilesJSON = strings.Replace(tilesJSON, "<lowerBound>", fmt.Sprintf("%v", lowerBound), -1)
	tilesJSON = strings.Replace(tilesJSON, "<thresholdSeconds>", fmt.Sprintf("%d", thresholdSeconds), -1)
	err = json.Unmarshal([]byte(tilesJSON), &tiles)
	if err != nil {
		return nil, fmt.Errorf("json.Unmarshal %v", err)
	}
	return tiles, nil
}
