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
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/carverauto/snmp-relay/pkg/logger"
	"github.com/carverauto/snmp-relay/pkg/models"
)

const reportPath = "/report"

// Acknowledgement is the ingestion endpoint's answer to a submitted payload.
type Acknowledgement struct {
	Status int
	Body   []byte
}

// Reporter submits run payloads. It never retries: a failed submission
// fails the run.
type Reporter struct {
	config Config
	client *retryablehttp.Client
	logger logger.Logger
}

// NewReporter returns a Reporter that posts to {service_url}/report without retrying.
func NewReporter(cfg Config) (*Reporter, error) {
	if _, err := cfg.baseURL(); err != nil {
		return nil, err
	}

	if cfg.Logger == nil {
		cfg.Logger = logger.NewTestLogger()
	}

	return &Reporter{
		config: cfg,
		client: newHTTPClient(&cfg, 0),
		logger: cfg.Logger,
	}, nil
}

// Submit POSTs the payload to the report endpoint and returns the response
// body on a 2xx answer.
func (r *Reporter) Submit(ctx context.Context, payload models.RunPayload) (Acknowledgement, error) {
	body, err := json.Marshal(payload.Wire())
	if err != nil {
		return Acknowledgement{}, fmt.Errorf("%w: %w", ErrEncodeRequest, err)
	}

	endpoint := strings.TrimRight(strings.TrimSpace(r.config.ServiceURL), "/") + reportPath

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return Acknowledgement{}, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}

	setCredentials(req, &r.config)
	req.Header.Set("Content-Type", "application/json")

	r.logger.Debug().
		Int("devices", len(payload.DeviceReports)).
		Int("bytes", len(body)).
		Msg("Submitting report")

	resp, err := r.client.Do(req)
	if err != nil {
		return Acknowledgement{}, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if !success(resp.StatusCode) {
		return Acknowledgement{Status: resp.StatusCode}, statusError(resp)
	}

	ack, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return Acknowledgement{Status: resp.StatusCode}, fmt.Errorf("%w: %w", ErrDecodeResponse, err)
	}

	r.logger.Info().
		Int("status", resp.StatusCode).
		Int("devices", len(payload.DeviceReports)).
		Msg("Report submitted")

	return Acknowledgement{Status: resp.StatusCode, Body: ack}, nil
}
