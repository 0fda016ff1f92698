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

package poller

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/carverauto/snmp-relay/pkg/logger"
	"github.com/carverauto/snmp-relay/pkg/metrics"
	"github.com/carverauto/snmp-relay/pkg/models"
	"github.com/carverauto/snmp-relay/pkg/snmp"
)

// DevicePoller reads every variable of one device, one after the other.
type DevicePoller struct {
	querier Querier
	config  Config
	logger  logger.Logger
	metrics metrics.Recorder
}

// NewDevicePoller builds a DevicePoller. Unset fields of cfg take their
// defaults and a nil recorder drops measurements.
func NewDevicePoller(q Querier, cfg Config, log logger.Logger, rec metrics.Recorder) *DevicePoller {
	if rec == nil {
		rec = metrics.Nop()
	}

	return &DevicePoller{
		querier: q,
		config:  cfg.withDefaults(),
		logger:  log,
		metrics: rec,
	}
}

// Poll returns one result per device variable in inventory order. A failing
// variable never prevents the following ones from being read.
func (p *DevicePoller) Poll(ctx context.Context, device models.Device) models.DeviceReport {
	start := time.Now()

	log := p.logger.With().
		Str("device", device.Name).
		Str("address", device.Address).
		Logger()

	report := models.DeviceReport{
		DeviceName: device.Name,
		Address:    device.Address,
		Results:    make([]models.VariableResult, 0, len(device.Variables)),
	}

	pollCtx := ctx

	if p.config.DeviceTimeout > 0 {
		var cancel context.CancelFunc

		pollCtx, cancel = context.WithTimeout(ctx, p.config.DeviceTimeout)
		defer cancel()
	}

	log.Info().Int("variables", len(device.Variables)).Msg("Polling device")

	for _, v := range device.Variables {
		var outcome models.Outcome

		if err := pollCtx.Err(); err != nil {
			outcome = p.abandoned(ctx, err)
		} else {
			outcome = p.querier.Query(pollCtx, p.request(device.Address, v.OID))
		}

		if outcome.OK() {
			log.Info().
				Str("parameter", v.Label).
				Str("oid", v.OID).
				Str("value", outcome.Value).
				Msg("Variable read")
		} else {
			log.Warn().
				Str("parameter", v.Label).
				Str("oid", v.OID).
				Str("outcome", outcome.Kind.String()).
				Str("reason", outcome.Message).
				Msg("Variable read failed")
		}

		report.Results = append(report.Results, models.VariableResult{Label: v.Label, Outcome: outcome})
	}

	succeeded, failed := report.Counts()
	elapsed := time.Since(start)

	p.metrics.ObserveDevicePoll(succeeded, failed, elapsed)

	log.Info().
		Int("succeeded", succeeded).
		Int("failed", failed).
		Dur("elapsed", elapsed).
		Msg("Device poll finished")

	return report
}

func (p *DevicePoller) request(address, oid string) snmp.Request {
	return snmp.Request{
		Address:   address,
		OID:       oid,
		Community: p.config.Community,
		Timeout:   p.config.Timeout,
		Retries:   p.config.Retries,
		Port:      p.config.Port,
		Version:   p.config.Version,
	}
}

// abandoned is the outcome for a variable that was never queried because the
// device deadline passed or the run was cancelled.
func (*DevicePoller) abandoned(parent context.Context, err error) models.Outcome {
	if parent.Err() == nil && errors.Is(err, context.DeadlineExceeded) {
		return models.TransportError(ErrDeviceDeadline.Error())
	}

	return models.TransportError(fmt.Sprintf("%v: %v", snmp.ErrQueryCancelled, err))
}
