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

// ReportRequest is the body accepted by the ingestion API.
type ReportRequest struct {
	ClientCode string         `json:"client_code"`
	Data       []DeviceRecord `json:"data"`
}

// DeviceRecord is the wire form of a DeviceReport.
type DeviceRecord struct {
	Device     string            `json:"device"`
	IP         string            `json:"ip"`
	Parameters []ParameterRecord `json:"parameters"`
}

// ParameterRecord carries a collected value. A nil Value marks a failed query.
type ParameterRecord struct {
	Parameter string  `json:"parameter"`
	Value     *string `json:"value"`
}

// Wire converts the payload to the ingestion request body. Error details are
// not part of the wire format; failed outcomes are sent as null values.
func (p *RunPayload) Wire() ReportRequest {
	req := ReportRequest{
		ClientCode: p.ClientCode,
		Data:       make([]DeviceRecord, 0, len(p.DeviceReports)),
	}

	for i := range p.DeviceReports {
		report := &p.DeviceReports[i]

		record := DeviceRecord{
			Device:     report.DeviceName,
			IP:         report.Address,
			Parameters: make([]ParameterRecord, 0, len(report.Results)),
		}

		for _, result := range report.Results {
			param := ParameterRecord{Parameter: result.Label}

			if result.Outcome.OK() {
				value := result.Outcome.Value
				param.Value = &value
			}

			record.Parameters = append(record.Parameters, param)
		}

		req.Data = append(req.Data, record)
	}

	return req
}
