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

package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carverauto/snmp-relay/pkg/logger"
	"github.com/carverauto/snmp-relay/pkg/models"
)

const epsonInventory = `[
	{
		"nome_de_dispositivo": "EPSON2C64AA",
		"ip_address": "192.168.0.52",
		"parameter": [
			{"parameter": "uptime", "mib": ".1.3.6.1.2.1.1.3.0"},
			{"parameter": "mac_address", "mib": ".1.3.6.1.2.1.2.2.1.6.1"},
			{"parameter": "in_octets", "mib": ".1.3.6.1.2.1.2.2.1.10.1"},
			{"parameter": "out_octets", "mib": ".1.3.6.1.2.1.2.2.1.16.1"}
		]
	}
]`

func testConfig(serviceURL string) Config {
	return Config{
		ServiceURL:   serviceURL,
		APIKey:       "key-123",
		APISecret:    "secret-456",
		Timeout:      2 * time.Second,
		RetryWaitMin: time.Millisecond,
		RetryWaitMax: 5 * time.Millisecond,
		Logger:       logger.NewTestLogger(),
	}
}

func TestInventoryFetch_SendsCredentialsAndClientCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "cliente01", r.URL.Query().Get("client_code"))
		assert.Equal(t, "key-123", r.Header.Get("X-API-KEY"))
		assert.Equal(t, "secret-456", r.Header.Get("X-API-SECRET"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(epsonInventory))
	}))
	defer server.Close()

	client, err := NewInventoryClient(testConfig(server.URL), 0)
	require.NoError(t, err)

	devices, err := client.Fetch(context.Background(), "cliente01")
	require.NoError(t, err)

	require.Len(t, devices, 1)
	assert.Equal(t, "EPSON2C64AA", devices[0].Name)
	assert.Equal(t, "192.168.0.52", devices[0].Address)
	assert.Equal(t, []models.Variable{
		{Label: "uptime", OID: ".1.3.6.1.2.1.1.3.0"},
		{Label: "mac_address", OID: ".1.3.6.1.2.1.2.2.1.6.1"},
		{Label: "in_octets", OID: ".1.3.6.1.2.1.2.2.1.10.1"},
		{Label: "out_octets", OID: ".1.3.6.1.2.1.2.2.1.16.1"},
	}, devices[0].Variables)
}

func TestInventoryFetch_EmptyArray(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client, err := NewInventoryClient(testConfig(server.URL), 0)
	require.NoError(t, err)

	devices, err := client.Fetch(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, devices)
}

func TestInventoryFetch_DropsInvalidEntries(t *testing.T) {
	body := `[
		{"nome_de_dispositivo": "", "ip_address": "10.0.0.1", "parameter": []},
		{"nome_de_dispositivo": "noaddr", "ip_address": " ", "parameter": []},
		{"nome_de_dispositivo": "nullparams", "ip_address": "10.0.0.3", "parameter": null},
		{"nome_de_dispositivo": "sw1", "ip_address": "10.0.0.4", "parameter": [
			{"parameter": "", "mib": ".1.3.6.1.2.1.1.3.0"},
			{"parameter": "bad", "mib": "sysUpTime.0"},
			{"parameter": "uptime", "mib": ".1.3.6.1.2.1.1.3.0"}
		]}
	]`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(body))
	}))
	defer server.Close()

	client, err := NewInventoryClient(testConfig(server.URL), 0)
	require.NoError(t, err)

	devices, err := client.Fetch(context.Background(), "cliente01")
	require.NoError(t, err)

	require.Len(t, devices, 2)
	assert.Equal(t, "nullparams", devices[0].Name)
	assert.Empty(t, devices[0].Variables)
	assert.Equal(t, "sw1", devices[1].Name)
	assert.Equal(t, []models.Variable{{Label: "uptime", OID: ".1.3.6.1.2.1.1.3.0"}}, devices[1].Variables)
}

func TestInventoryFetch_ClientErrorIsNotRetried(t *testing.T) {
	var calls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
	}))
	defer server.Close()

	client, err := NewInventoryClient(testConfig(server.URL), 2)
	require.NoError(t, err)

	devices, err := client.Fetch(context.Background(), "cliente01")
	require.ErrorIs(t, err, ErrUnexpectedStatus)
	assert.Contains(t, err.Error(), "401")
	assert.Contains(t, err.Error(), "invalid credentials")
	assert.Nil(t, devices)
	assert.Equal(t, int32(1), calls.Load())
}

func TestInventoryFetch_ServerErrorIsRetried(t *testing.T) {
	var calls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)

			return
		}

		_, _ = w.Write([]byte(epsonInventory))
	}))
	defer server.Close()

	client, err := NewInventoryClient(testConfig(server.URL), 2)
	require.NoError(t, err)

	devices, err := client.Fetch(context.Background(), "cliente01")
	require.NoError(t, err)
	assert.Len(t, devices, 1)
	assert.Equal(t, int32(3), calls.Load())
}

func TestInventoryFetch_ServerErrorExhaustsRetries(t *testing.T) {
	var calls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client, err := NewInventoryClient(testConfig(server.URL), 1)
	require.NoError(t, err)

	_, err = client.Fetch(context.Background(), "cliente01")
	require.ErrorIs(t, err, ErrUnexpectedStatus)
	assert.Contains(t, err.Error(), "500")
	assert.Equal(t, int32(2), calls.Load())
}

func TestInventoryFetch_InvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"error": "not a list"}`))
	}))
	defer server.Close()

	client, err := NewInventoryClient(testConfig(server.URL), 0)
	require.NoError(t, err)

	_, err = client.Fetch(context.Background(), "cliente01")
	require.ErrorIs(t, err, ErrDecodeResponse)
}

func TestInventoryFetch_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := server.URL
	server.Close()

	client, err := NewInventoryClient(testConfig(url), 0)
	require.NoError(t, err)

	_, err = client.Fetch(context.Background(), "cliente01")
	require.ErrorIs(t, err, ErrRequestFailed)
}

func TestNewInventoryClient_RejectsBadServiceURL(t *testing.T) {
	_, err := NewInventoryClient(testConfig(""), 0)
	require.ErrorIs(t, err, ErrMissingServiceURL)

	_, err = NewInventoryClient(testConfig("ftp://example.com"), 0)
	require.ErrorIs(t, err, ErrInvalidServiceURL)

	_, err = NewInventoryClient(testConfig("http://"), 0)
	require.ErrorIs(t, err, ErrInvalidServiceURL)
}
