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
	"fmt"

	"github.com/prometheus/client_golang/prometheus/push"
)

const pushJobName = "snmp_relay"

// Push sends the collector's registry to a Prometheus Pushgateway, grouped by
// client code. Each push replaces the previous run's metrics for that group.
func (c *Collector) Push(ctx context.Context, gatewayURL, clientCode string) error {
	err := push.New(gatewayURL, pushJobName).
		Gatherer(c.Registry()).
		Grouping("client_code", clientCode).
		PushContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to push metrics to %s: %w", gatewayURL, err)
	}

	return nil
}
