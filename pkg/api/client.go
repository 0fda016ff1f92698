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

// Package api talks to the inventory and ingestion endpoints of the
// reporting service.
package api

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/carverauto/snmp-relay/pkg/logger"
)

const (
	headerAPIKey    = "X-API-KEY"
	headerAPISecret = "X-API-SECRET"

	defaultHTTPTimeout  = 30 * time.Second
	defaultRetryWaitMin = 1 * time.Second
	defaultRetryWaitMax = 10 * time.Second

	// maxErrorSnippet bounds how much of an error response ends up in messages.
	maxErrorSnippet = 2048
	// maxResponseSize bounds decoded response bodies.
	maxResponseSize = 32 << 20
)

// Config describes how to reach the reporting service.
type Config struct {
	ServiceURL string
	APIKey     string
	APISecret  string
	Timeout    time.Duration

	// RetryWaitMin and RetryWaitMax bound the pause between retried requests.
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration

	Logger logger.Logger
}

func (c *Config) baseURL() (*url.URL, error) {
	if strings.TrimSpace(c.ServiceURL) == "" {
		return nil, ErrMissingServiceURL
	}

	parsed, err := url.Parse(strings.TrimSpace(c.ServiceURL))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidServiceURL, err)
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("%w: unsupported scheme %q", ErrInvalidServiceURL, parsed.Scheme)
	}

	if parsed.Host == "" {
		return nil, fmt.Errorf("%w: missing host", ErrInvalidServiceURL)
	}

	return parsed, nil
}

// newHTTPClient returns a retryable client that hands the last response back
// to the caller once retries are exhausted, so status codes can be reported.
func newHTTPClient(cfg *Config, retryMax int) *retryablehttp.Client {
	client := retryablehttp.NewClient()

	client.RetryMax = retryMax
	client.RetryWaitMin = defaultRetryWaitMin
	client.RetryWaitMax = defaultRetryWaitMax
	client.ErrorHandler = retryablehttp.PassthroughErrorHandler

	if cfg.RetryWaitMin > 0 {
		client.RetryWaitMin = cfg.RetryWaitMin
	}

	if cfg.RetryWaitMax > 0 {
		client.RetryWaitMax = cfg.RetryWaitMax
	}

	client.HTTPClient.Timeout = defaultHTTPTimeout
	if cfg.Timeout > 0 {
		client.HTTPClient.Timeout = cfg.Timeout
	}

	if cfg.Logger != nil {
		client.Logger = newLeveledLogger(cfg.Logger)
	} else {
		client.Logger = nil
	}

	return client
}

func setCredentials(req *retryablehttp.Request, cfg *Config) {
	req.Header.Set(headerAPIKey, cfg.APIKey)
	req.Header.Set(headerAPISecret, cfg.APISecret)
}

func statusError(resp *http.Response) error {
	msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorSnippet))

	return fmt.Errorf("%w: %d: %s", ErrUnexpectedStatus, resp.StatusCode, strings.TrimSpace(string(msg)))
}

func success(status int) bool {
	return status >= http.StatusOK && status < http.StatusMultipleChoices
}
