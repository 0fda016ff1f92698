/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package metrics

import (
	"time"

	"github.com/carverauto/snmp-relay/pkg/models"
)

// Recorder receives pipeline measurements. Implementations must be safe for
// concurrent use by device pollers.
type Recorder interface {
	ObserveQuery(kind models.OutcomeKind, elapsed time.Duration)
	ObserveDevicePoll(succeeded, failed int, elapsed time.Duration)
	ObserveRun(result string, elapsed time.Duration)
}

// Nop returns a Recorder that drops everything.
func Nop() Recorder {
	return nopRecorder{}
}

type nopRecorder struct{}

func (nopRecorder) ObserveQuery(models.OutcomeKind, time.Duration) {}
func (nopRecorder) ObserveDevicePoll(int, int, time.Duration)      {}
func (nopRecorder) ObserveRun(string, time.Duration)               {}
