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

package snmp

import "errors"

var (
	ErrInvalidRequest     = errors.New("invalid SNMP request")
	ErrInvalidOID         = errors.New("invalid object identifier")
	ErrUnsupportedVersion = errors.New("unsupported SNMP version")
	ErrSessionOpen        = errors.New("failed to open SNMP session")
	ErrNoResponse         = errors.New("no response from agent")
	ErrEmptyResponse      = errors.New("empty SNMP response")
	ErrQueryCancelled     = errors.New("query cancelled")
	ErrQueryPanic         = errors.New("SNMP transport fault")
	ErrUnsupportedValue   = errors.New("unsupported SNMP value")
)
