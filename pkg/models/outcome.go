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

package models

import "fmt"

// OutcomeKind classifies the result of a single variable query.
type OutcomeKind int

const (
	// OutcomeSuccess means the device returned a value.
	OutcomeSuccess OutcomeKind = iota
	// OutcomeProtocolError means the device answered with an explicit error indication.
	OutcomeProtocolError
	// OutcomeTransportError means no usable answer was received.
	OutcomeTransportError
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "success"
	case OutcomeProtocolError:
		return "protocol_error"
	case OutcomeTransportError:
		return "transport_error"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// Outcome is the tagged result of querying one variable. Value is only
// meaningful for OutcomeSuccess, Message only for the error kinds.
type Outcome struct {
	Kind    OutcomeKind
	Value   string
	Message string
}

// Success builds a successful outcome.
func Success(value string) Outcome {
	return Outcome{Kind: OutcomeSuccess, Value: value}
}

// ProtocolError builds an outcome for an error reported by the remote agent.
func ProtocolError(message string) Outcome {
	return Outcome{Kind: OutcomeProtocolError, Message: message}
}

// TransportError builds an outcome for a timeout or other transport fault.
func TransportError(message string) Outcome {
	return Outcome{Kind: OutcomeTransportError, Message: message}
}

// OK reports whether the outcome carries a value.
func (o Outcome) OK() bool {
	return o.Kind == OutcomeSuccess
}

func (o Outcome) String() string {
	if o.OK() {
		return o.Value
	}

	return o.Kind.String() + ": " + o.Message
}
