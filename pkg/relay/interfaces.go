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

// Package relay runs one polling cycle: fetch the inventory, poll every
// device and submit the collected values.
package relay

import (
	"context"

	"github.com/carverauto/snmp-relay/pkg/api"
	"github.com/carverauto/snmp-relay/pkg/models"
)

//go:generate mockgen -destination=mock_relay.go -package=relay github.com/carverauto/snmp-relay/pkg/relay InventorySource,FleetRunner,ReportSink,MetricsPusher

// InventorySource lists the devices to poll for a client.
type InventorySource interface {
	Fetch(ctx context.Context, clientCode string) ([]models.Device, error)
}

// FleetRunner polls a device list.
type FleetRunner interface {
	Run(ctx context.Context, clientCode string, devices []models.Device) (models.RunPayload, error)
}

// ReportSink delivers a finished run.
type ReportSink interface {
	Submit(ctx context.Context, payload models.RunPayload) (api.Acknowledgement, error)
}

// MetricsPusher ships run metrics to a Pushgateway.
type MetricsPusher interface {
	Push(ctx context.Context, gatewayURL, clientCode string) error
}
