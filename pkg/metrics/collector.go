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

// Package metrics exposes Prometheus instrumentation for polling runs.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/carverauto/snmp-relay/pkg/models"
)

const namespace = "snmp_relay"

// Run results used as the result label of runs_total.
const (
	RunSubmitted       = "submitted"
	RunInventoryFailed = "inventory_failed"
	RunSubmitFailed    = "submit_failed"
	RunCancelled       = "cancelled"
)

// Collector records pipeline metrics in its own registry so a run can be
// pushed as a unit.
type Collector struct {
	registry *prometheus.Registry

	queries        *prometheus.CounterVec
	queryDuration  prometheus.Histogram
	devicePolls    *prometheus.CounterVec
	deviceDuration prometheus.Histogram
	runs           *prometheus.CounterVec
	runDuration    prometheus.Gauge
	lastSuccess    prometheus.Gauge
}

var _ Recorder = (*Collector)(nil)

// NewCollector returns a Collector registered on its own registry.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		queries: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "queries_total",
				Help:      "SNMP variable queries by outcome",
			},
			[]string{"outcome"},
		),
		queryDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "query_duration_seconds",
				Help:      "Time spent on a single variable query including retries",
				Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 4, 8},
			},
		),
		devicePolls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "device_polls_total",
				Help:      "Device polls by result: complete when every variable succeeded, partial or failed otherwise",
			},
			[]string{"result"},
		),
		deviceDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "device_poll_duration_seconds",
				Help:      "Time spent polling all variables of a device",
				Buckets:   prometheus.ExponentialBuckets(0.05, 2, 12),
			},
		),
		runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "runs_total",
				Help:      "Runs by result",
			},
			[]string{"result"},
		),
		runDuration: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "run_duration_seconds",
				Help:      "Duration of the last run",
			},
		),
		lastSuccess: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "last_success_timestamp_seconds",
				Help:      "Unix time of the last run whose report was accepted",
			},
		),
	}

	c.registry.MustRegister(
		c.queries,
		c.queryDuration,
		c.devicePolls,
		c.deviceDuration,
		c.runs,
		c.runDuration,
		c.lastSuccess,
	)

	return c
}

// Registry exposes the underlying registry for pushing or scraping.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

func (c *Collector) ObserveQuery(kind models.OutcomeKind, elapsed time.Duration) {
	c.queries.WithLabelValues(kind.String()).Inc()
	c.queryDuration.Observe(elapsed.Seconds())
}

func (c *Collector) ObserveDevicePoll(succeeded, failed int, elapsed time.Duration) {
	result := "complete"

	switch {
	case failed == 0:
	case succeeded == 0:
		result = "failed"
	default:
		result = "partial"
	}

	c.devicePolls.WithLabelValues(result).Inc()
	c.deviceDuration.Observe(elapsed.Seconds())
}

func (c *Collector) ObserveRun(result string, elapsed time.Duration) {
	c.runs.WithLabelValues(result).Inc()
	c.runDuration.Set(elapsed.Seconds())

	if result == RunSubmitted {
		c.lastSuccess.SetToCurrentTime()
	}
}
