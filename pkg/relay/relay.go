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

package relay

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/carverauto/snmp-relay/pkg/api"
	"github.com/carverauto/snmp-relay/pkg/logger"
	"github.com/carverauto/snmp-relay/pkg/metrics"
	"github.com/carverauto/snmp-relay/pkg/poller"
	"github.com/carverauto/snmp-relay/pkg/snmp"
)

const pushTimeout = 10 * time.Second

// Result summarises a finished run.
type Result struct {
	RunID           string
	Devices         int
	Succeeded       int
	Failed          int
	Acknowledgement api.Acknowledgement
}

// Relay wires the inventory, the fleet and the report sink together.
type Relay struct {
	config    *Config
	inventory InventorySource
	fleet     FleetRunner
	sink      ReportSink
	metrics   metrics.Recorder
	pusher    MetricsPusher
	logger    logger.Logger
}

// Option replaces one of the components New would build.
type Option func(*Relay)

func WithInventory(src InventorySource) Option {
	return func(r *Relay) { r.inventory = src }
}

func WithFleet(f FleetRunner) Option {
	return func(r *Relay) { r.fleet = f }
}

func WithReportSink(s ReportSink) Option {
	return func(r *Relay) { r.sink = s }
}

// WithMetrics sets the recorder for run level metrics and, when p is not
// nil, the pusher used at the end of the run.
func WithMetrics(rec metrics.Recorder, p MetricsPusher) Option {
	return func(r *Relay) {
		r.metrics = rec
		r.pusher = p
	}
}

// New builds a Relay from a validated Config. Components not supplied as
// options are built from the configuration.
func New(cfg *Config, log logger.Logger, opts ...Option) (*Relay, error) {
	r := &Relay{
		config: cfg,
		logger: log,
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.metrics == nil {
		collector := metrics.NewCollector()

		r.metrics = collector
		r.pusher = collector
	}

	if r.fleet == nil {
		client := snmp.NewClient(
			logger.Wrap(log.WithComponent("snmp")),
			snmp.WithMetrics(r.metrics),
		)

		pollerLog := logger.Wrap(log.WithComponent("poller"))
		devicePoller := poller.NewDevicePoller(client, cfg.PollerConfig(), pollerLog, r.metrics)

		r.fleet = poller.NewFleet(devicePoller, pollerLog)
	}

	apiLog := logger.Wrap(log.WithComponent("api"))

	if r.inventory == nil {
		inventory, err := api.NewInventoryClient(cfg.APIConfig(apiLog), cfg.InventoryRetries)
		if err != nil {
			return nil, err
		}

		r.inventory = inventory
	}

	if r.sink == nil {
		reporter, err := api.NewReporter(cfg.APIConfig(apiLog))
		if err != nil {
			return nil, err
		}

		r.sink = reporter
	}

	return r, nil
}

// Run executes one cycle. Nothing is submitted when the inventory cannot be
// fetched or ctx is cancelled before submission. Runs where some or all
// variables failed are still submitted.
func (r *Relay) Run(ctx context.Context) (Result, error) {
	start := time.Now()
	runID := uuid.New().String()

	log := logger.Wrap(r.logger.With().
		Str("run_id", runID).
		Str("client_code", r.config.ClientCode).
		Logger())

	result := Result{RunID: runID}

	log.Info().Msg("Starting relay run")

	devices, err := r.inventory.Fetch(ctx, r.config.ClientCode)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return result, r.finish(ctx, log, metrics.RunCancelled, start, fmt.Errorf("%w: %w", ErrRunCancelled, ctxErr))
		}

		return result, r.finish(ctx, log, metrics.RunInventoryFailed, start, fmt.Errorf("%w: %w", ErrInventoryFetch, err))
	}

	result.Devices = len(devices)

	payload, err := r.fleet.Run(ctx, r.config.ClientCode, devices)
	if err != nil {
		return result, r.finish(ctx, log, metrics.RunCancelled, start, fmt.Errorf("%w: %w", ErrRunCancelled, err))
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return result, r.finish(ctx, log, metrics.RunCancelled, start, fmt.Errorf("%w: %w", ErrRunCancelled, ctxErr))
	}

	for i := range payload.DeviceReports {
		succeeded, failed := payload.DeviceReports[i].Counts()

		result.Succeeded += succeeded
		result.Failed += failed
	}

	log.Info().
		Int("devices", result.Devices).
		Int("succeeded", result.Succeeded).
		Int("failed", result.Failed).
		Msg("Polling complete, submitting report")

	ack, err := r.sink.Submit(ctx, payload.Clone())
	result.Acknowledgement = ack

	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
			return result, r.finish(ctx, log, metrics.RunCancelled, start, fmt.Errorf("%w: %w", ErrRunCancelled, err))
		}

		return result, r.finish(ctx, log, metrics.RunSubmitFailed, start, fmt.Errorf("%w: %w", ErrSubmit, err))
	}

	return result, r.finish(ctx, log, metrics.RunSubmitted, start, nil)
}

func (r *Relay) finish(ctx context.Context, log logger.Logger, outcome string, start time.Time, err error) error {
	elapsed := time.Since(start)

	r.metrics.ObserveRun(outcome, elapsed)

	if err != nil {
		log.Error().Err(err).Str("result", outcome).Dur("elapsed", elapsed).Msg("Relay run failed")
	} else {
		log.Info().Str("result", outcome).Dur("elapsed", elapsed).Msg("Relay run finished")
	}

	r.push(ctx, log)

	return err
}

// push never affects the run result.
func (r *Relay) push(ctx context.Context, log logger.Logger) {
	if r.pusher == nil || r.config.PushgatewayURL == "" {
		return
	}

	pushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), pushTimeout)
	defer cancel()

	if err := r.pusher.Push(pushCtx, r.config.PushgatewayURL, r.config.ClientCode); err != nil {
		log.Warn().Err(err).Msg("Failed to push metrics")

		return
	}

	log.Debug().Str("pushgateway", r.config.PushgatewayURL).Msg("Pushed run metrics")
}

// Summary is the status line printed at the end of a run.
func Summary(res Result, err error) string {
	switch {
	case err == nil:
	case errors.Is(err, ErrInventoryFetch):
		return fmt.Sprintf("Inventory fetch failed, nothing submitted (run %s): %v", res.RunID, err)
	case errors.Is(err, ErrRunCancelled):
		return fmt.Sprintf("Run cancelled, nothing submitted (run %s): %v", res.RunID, err)
	default:
		return fmt.Sprintf("Report submission failed (run %s): %v", res.RunID, err)
	}

	return fmt.Sprintf("Report submitted (run %s): %d device(s), %d value(s) read, %d failed, server answered %d",
		res.RunID, res.Devices, res.Succeeded, res.Failed, res.Acknowledgement.Status)
}
