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
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/carverauto/snmp-relay/pkg/logger"
	"github.com/carverauto/snmp-relay/pkg/models"
	"github.com/carverauto/snmp-relay/pkg/snmp"
)

// inventoryDevice is one element of the inventory response.
type inventoryDevice struct {
	Name       string               `json:"nome_de_dispositivo"`
	IPAddress  string               `json:"ip_address"`
	Parameters []inventoryParameter `json:"parameter"`
}

type inventoryParameter struct {
	Parameter string `json:"parameter"`
	MIB       string `json:"mib"`
}

// InventoryClient fetches the list of devices to poll for a client code.
type InventoryClient struct {
	config Config
	client *retryablehttp.Client
	logger logger.Logger
}

// NewInventoryClient builds an InventoryClient. Connection errors and 5xx
// responses are retried up to retries times.
func NewInventoryClient(cfg Config, retries int) (*InventoryClient, error) {
	if _, err := cfg.baseURL(); err != nil {
		return nil, err
	}

	if cfg.Logger == nil {
		cfg.Logger = logger.NewTestLogger()
	}

	if retries < 0 {
		retries = 0
	}

	return &InventoryClient{
		config: cfg,
		client: newHTTPClient(&cfg, retries),
		logger: cfg.Logger,
	}, nil
}

// Fetch downloads and validates the inventory. Entries without a name or
// address and variables without a label or with a malformed OID are dropped.
func (c *InventoryClient) Fetch(ctx context.Context, clientCode string) ([]models.Device, error) {
	endpoint, err := c.config.baseURL()
	if err != nil {
		return nil, err
	}

	query := endpoint.Query()
	query.Set("client_code", clientCode)
	endpoint.RawQuery = query.Encode()

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}

	setCredentials(req, &c.config)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if !success(resp.StatusCode) {
		return nil, statusError(resp)
	}

	var entries []inventoryDevice

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseSize)).Decode(&entries); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeResponse, err)
	}

	devices := c.convert(entries)

	c.logger.Info().
		Str("url", endpoint.Redacted()).
		Int("entries", len(entries)).
		Int("devices", len(devices)).
		Msg("Fetched device inventory")

	return devices, nil
}

func (c *InventoryClient) convert(entries []inventoryDevice) []models.Device {
	devices := make([]models.Device, 0, len(entries))

	for i := range entries {
		entry := &entries[i]

		name := strings.TrimSpace(entry.Name)
		address := strings.TrimSpace(entry.IPAddress)

		if name == "" || address == "" {
			c.logger.Warn().
				Int("index", i).
				Str("device", name).
				Str("address", address).
				Msg("Skipping inventory entry without name or address")

			continue
		}

		device := models.Device{
			Name:      name,
			Address:   address,
			Variables: make([]models.Variable, 0, len(entry.Parameters)),
		}

		for _, p := range entry.Parameters {
			label := strings.TrimSpace(p.Parameter)
			oid := strings.TrimSpace(p.MIB)

			if label == "" || !snmp.ValidOID(oid) {
				c.logger.Warn().
					Str("device", name).
					Str("parameter", label).
					Str("oid", oid).
					Msg("Skipping invalid inventory parameter")

				continue
			}

			device.Variables = append(device.Variables, models.Variable{Label: label, OID: oid})
		}

		devices = append(devices, device)
	}

	return devices
}
