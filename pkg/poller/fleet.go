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
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/carverauto/snmp-relay/pkg/logger"
	"github.com/carverauto/snmp-relay/pkg/models"
)

// Fleet polls every device of a run with a bounded number of workers.
type Fleet struct {
	poller  *DevicePoller
	workers int
	logger  logger.Logger
}

// NewFleet builds a Fleet around a DevicePoller. The worker count comes from
// the poller's configuration.
func NewFleet(p *DevicePoller, log logger.Logger) *Fleet {
	return &Fleet{
		poller:  p,
		workers: p.config.Workers,
		logger:  log,
	}
}

// Run polls devices and returns their reports in input order. Device level
// failures are carried inside the reports; the only error is cancellation of
// ctx, in which case partial results are discarded.
func (f *Fleet) Run(ctx context.Context, clientCode string, devices []models.Device) (models.RunPayload, error) {
	start := time.Now()

	payload := models.RunPayload{
		ClientCode:    clientCode,
		DeviceReports: make([]models.DeviceReport, len(devices)),
	}

	if len(devices) == 0 {
		f.logger.Info().Msg("No devices in inventory")

		return payload, nil
	}

	f.logger.Info().
		Int("devices", len(devices)).
		Int("workers", f.workers).
		Msg("Polling fleet")

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(f.workers)

	for i := range devices {
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			payload.DeviceReports[i] = f.poller.Poll(gctx, devices[i])

			return nil
		})
	}

	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		f.logger.Warn().Err(err).Msg("Fleet poll cancelled")

		return models.RunPayload{}, fmt.Errorf("%w: %w", ErrRunCancelled, err)
	}

	f.logger.Info().
		Int("devices", len(devices)).
		Dur("elapsed", time.Since(start)).
		Msg("Fleet poll finished")

	return payload, nil
}
