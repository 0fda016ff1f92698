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

package models

// VariableResult pairs a variable label with its query outcome.
type VariableResult struct {
	Label   string
	Outcome Outcome
}

// DeviceReport holds one result per device variable, in inventory order.
type DeviceReport struct {
	DeviceName string
	Address    string
	Results    []VariableResult
}

// Counts returns the number of successful and failed results.
func (r *DeviceReport) Counts() (succeeded, failed int) {
	for i := range r.Results {
		if r.Results[i].Outcome.OK() {
			succeeded++
		} else {
			failed++
		}
	}

	return succeeded, failed
}

// RunPayload is everything collected during one run.
type RunPayload struct {
	ClientCode    string
	DeviceReports []DeviceReport
}

// Clone returns a deep copy so the payload can be handed off by value.
func (p *RunPayload) Clone() RunPayload {
	out := RunPayload{
		ClientCode:    p.ClientCode,
		DeviceReports: make([]DeviceReport, len(p.DeviceReports)),
	}

	for i := range p.DeviceReports {
		src := &p.DeviceReports[i]

		out.DeviceReports[i] = DeviceReport{
			DeviceName: src.DeviceName,
			Address:    src.Address,
			Results:    append([]VariableResult(nil), src.Results...),
		}
	}

	return out
}
