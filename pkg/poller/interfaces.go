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

// Package poller reads device variables over SNMP and runs the fleet of
// device polls that make up one relay run.
package poller

import (
	"context"

	"github.com/carverauto/snmp-relay/pkg/models"
	"github.com/carverauto/snmp-relay/pkg/snmp"
)

//go:generate mockgen -destination=mock_poller.go -package=poller github.com/carverauto/snmp-relay/pkg/poller Querier

// Querier reads one variable. *snmp.Client satisfies it.
type Querier interface {
	Query(ctx context.Context, req snmp.Request) models.Outcome
}

var _ Querier = (*snmp.Client)(nil)
