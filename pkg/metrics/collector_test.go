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
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carverauto/snmp-relay/pkg/models"
)

func TestCollector_ObserveQuery(t *testing.T) {
	c := NewCollector()

	c.ObserveQuery(models.OutcomeSuccess, 10*time.Millisecond)
	c.ObserveQuery(models.OutcomeSuccess, 20*time.Millisecond)
	c.ObserveQuery(models.OutcomeTransportError, 2*time.Second)

	assert.InDelta(t, 2, testutil.ToFloat64(c.queries.WithLabelValues("success")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(c.queries.WithLabelValues("transport_error")), 0)
	assert.InDelta(t, 0, testutil.ToFloat64(c.queries.WithLabelValues("protocol_error")), 0)
}

func TestCollector_ObserveDevicePoll(t *testing.T) {
	c := NewCollector()

	c.ObserveDevicePoll(4, 0, time.Second)
	c.ObserveDevicePoll(2, 2, time.Second)
	c.ObserveDevicePoll(0, 4, time.Second)
	c.ObserveDevicePoll(0, 0, time.Second)

	assert.InDelta(t, 2, testutil.ToFloat64(c.devicePolls.WithLabelValues("complete")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(c.devicePolls.WithLabelValues("partial")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(c.devicePolls.WithLabelValues("failed")), 0)
}

func TestCollector_ObserveRun(t *testing.T) {
	c := NewCollector()

	c.ObserveRun(RunSubmitFailed, 3*time.Second)
	assert.InDelta(t, 0, testutil.ToFloat64(c.lastSuccess), 0)
	assert.InDelta(t, 3, testutil.ToFloat64(c.runDuration), 0.001)

	c.ObserveRun(RunSubmitted, time.Second)
	assert.Greater(t, testutil.ToFloat64(c.lastSuccess), float64(0))
	assert.InDelta(t, 1, testutil.ToFloat64(c.runs.WithLabelValues(RunSubmitted)), 0)
}

func TestCollector_Push(t *testing.T) {
	var (
		mu   sync.Mutex
		path string
		body string
	)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)

		mu.Lock()
		path = r.URL.Path
		body = string(data)
		mu.Unlock()

		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	c := NewCollector()
	c.ObserveRun(RunSubmitted, time.Second)

	require.NoError(t, c.Push(context.Background(), server.URL, "cliente01"))

	mu.Lock()
	defer mu.Unlock()

	assert.True(t, strings.HasPrefix(path, "/metrics/job/snmp_relay"), path)
	assert.Contains(t, path, "client_code")
	assert.NotEmpty(t, body)
}

func TestCollector_PushFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	c := NewCollector()
	err := c.Push(context.Background(), server.URL, "cliente01")
	require.Error(t, err)
}

func TestNop(t *testing.T) {
	r := Nop()
	r.ObserveQuery(models.OutcomeSuccess, time.Second)
	r.ObserveDevicePoll(1, 0, time.Second)
	r.ObserveRun(RunSubmitted, time.Second)
}
