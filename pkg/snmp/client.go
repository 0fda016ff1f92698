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

// Package snmp issues scalar SNMP GET requests and classifies their outcome.
package snmp

import (
	"context"
	"fmt"
	"time"

	"github.com/gosnmp/gosnmp"
	"github.com/jpillora/backoff"

	"github.com/carverauto/snmp-relay/pkg/logger"
	"github.com/carverauto/snmp-relay/pkg/metrics"
	"github.com/carverauto/snmp-relay/pkg/models"
)

const (
	defaultRetryBackoffMin = 50 * time.Millisecond
	defaultRetryBackoffMax = time.Second
	retryBackoffFactor     = 2
)

// Request is a single scalar read of one OID on one agent.
type Request struct {
	Address   string
	OID       string
	Community string
	Timeout   time.Duration
	Retries   int
	Port      uint16
	Version   Version
}

// Validate checks the request constraints.
func (r *Request) Validate() error {
	switch {
	case r.Address == "":
		return fmt.Errorf("%w: address is required", ErrInvalidRequest)
	case !ValidOID(r.OID):
		return fmt.Errorf("%w: %w: %q", ErrInvalidRequest, ErrInvalidOID, r.OID)
	case r.Timeout <= 0:
		return fmt.Errorf("%w: timeout must be positive", ErrInvalidRequest)
	case r.Retries < 0:
		return fmt.Errorf("%w: retries must not be negative", ErrInvalidRequest)
	}

	return nil
}

func (r *Request) target() Target {
	return Target{
		Address:   r.Address,
		Port:      r.Port,
		Community: r.Community,
		Version:   r.Version,
		Timeout:   r.Timeout,
	}
}

// Client is the variable query client. It never returns errors: every fault
// is folded into a models.Outcome.
type Client struct {
	sessions   SessionFactory
	logger     logger.Logger
	metrics    metrics.Recorder
	backoffMin time.Duration
	backoffMax time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithSessionFactory replaces the gosnmp transport.
func WithSessionFactory(f SessionFactory) Option {
	return func(c *Client) {
		c.sessions = f
	}
}

// WithMetrics records one observation per query.
func WithMetrics(r metrics.Recorder) Option {
	return func(c *Client) {
		c.metrics = r
	}
}

// WithRetryBackoff bounds the pause between attempts.
func WithRetryBackoff(minWait, maxWait time.Duration) Option {
	return func(c *Client) {
		c.backoffMin = minWait
		c.backoffMax = maxWait
	}
}

// NewClient returns a Client that opens gosnmp sessions for each query.
func NewClient(log logger.Logger, opts ...Option) *Client {
	c := &Client{
		sessions:   GoSNMPFactory{},
		logger:     log,
		metrics:    metrics.Nop(),
		backoffMin: defaultRetryBackoffMin,
		backoffMax: defaultRetryBackoffMax,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Query reads req.OID from the agent. Transport failures are retried up to
// req.Retries more times, each attempt with a fresh timeout window. Errors
// reported by the agent are returned after the first attempt.
func (c *Client) Query(ctx context.Context, req Request) models.Outcome {
	start := time.Now()

	outcome := c.query(ctx, &req)

	c.metrics.ObserveQuery(outcome.Kind, time.Since(start))

	return outcome
}

func (c *Client) query(ctx context.Context, req *Request) (outcome models.Outcome) {
	log := c.logger.With().Str("address", req.Address).Str("oid", req.OID).Logger()

	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("SNMP transport panicked")

			outcome = models.TransportError(fmt.Sprintf("%v: %v", ErrQueryPanic, r))
		}
	}()

	if err := req.Validate(); err != nil {
		log.Error().Err(err).Msg("Rejected SNMP request")

		return models.TransportError(err.Error())
	}

	if err := ctx.Err(); err != nil {
		return cancelled(err)
	}

	session, err := c.sessions.Open(ctx, req.target())
	if err != nil {
		log.Error().Err(err).Msg("Failed to open SNMP session")

		return models.TransportError(fmt.Sprintf("%v: %v", ErrSessionOpen, err))
	}

	defer func() {
		if closeErr := session.Close(); closeErr != nil {
			log.Debug().Err(closeErr).Msg("Failed to close SNMP session")
		}
	}()

	delay := &backoff.Backoff{
		Min:    c.backoffMin,
		Max:    c.backoffMax,
		Factor: retryBackoffFactor,
		Jitter: true,
	}

	attempts := req.Retries + 1

	var lastErr error

	for attempt := 1; attempt <= attempts; attempt++ {
		log.Debug().Int("attempt", attempt).Int("max_attempts", attempts).Msg("Sending SNMP GET")

		packet, err := session.Get([]string{req.OID})
		if err == nil {
			return classify(packet)
		}

		lastErr = err

		if ctxErr := ctx.Err(); ctxErr != nil {
			return cancelled(ctxErr)
		}

		if attempt == attempts {
			break
		}

		wait := delay.Duration()

		log.Warn().
			Err(err).
			Int("attempt", attempt).
			Dur("retry_in", wait).
			Msg("SNMP GET failed, retrying")

		if err := sleep(ctx, wait); err != nil {
			return cancelled(err)
		}
	}

	log.Error().Err(lastErr).Int("attempts", attempts).Msg("SNMP GET exhausted retries")

	return models.TransportError(fmt.Sprintf("%v after %d attempt(s): %v", ErrNoResponse, attempts, lastErr))
}

// classify turns an agent response into an outcome. Error statuses and
// exception varbinds are explicit answers from the agent.
func classify(packet *gosnmp.SnmpPacket) models.Outcome {
	if packet == nil {
		return models.TransportError(ErrEmptyResponse.Error())
	}

	if packet.Error != gosnmp.NoError {
		return models.ProtocolError(fmt.Sprintf("%v (error index %d)", packet.Error, packet.ErrorIndex))
	}

	if len(packet.Variables) == 0 {
		return models.TransportError(ErrEmptyResponse.Error())
	}

	pdu := packet.Variables[0]

	switch pdu.Type {
	case gosnmp.NoSuchObject:
		return models.ProtocolError("noSuchObject: " + pdu.Name)
	case gosnmp.NoSuchInstance:
		return models.ProtocolError("noSuchInstance: " + pdu.Name)
	case gosnmp.EndOfMibView:
		return models.ProtocolError("endOfMibView: " + pdu.Name)
	}

	value, err := RenderValue(pdu)
	if err != nil {
		return models.ProtocolError(err.Error())
	}

	return models.Success(value)
}

func cancelled(err error) models.Outcome {
	return models.TransportError(fmt.Sprintf("%v: %v", ErrQueryCancelled, err))
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
