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

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/gosnmp/gosnmp"
)

// RenderValue converts a varbind value to its display string. Printable octet
// strings are returned as text and binary ones as 0x-prefixed hex, numbers in
// decimal. No further type-specific decoding is done.
func RenderValue(pdu gosnmp.SnmpPDU) (string, error) {
	switch pdu.Type {
	case gosnmp.OctetString, gosnmp.ObjectDescription:
		b, ok := pdu.Value.([]byte)
		if !ok {
			return "", unsupported(pdu)
		}

		return renderOctets(b), nil
	case gosnmp.Opaque, gosnmp.BitString, gosnmp.NsapAddress:
		b, ok := pdu.Value.([]byte)
		if !ok {
			return "", unsupported(pdu)
		}

		return "0x" + hex.EncodeToString(b), nil
	case gosnmp.ObjectIdentifier, gosnmp.IPAddress:
		s, ok := pdu.Value.(string)
		if !ok {
			return "", unsupported(pdu)
		}

		return s, nil
	case gosnmp.Integer, gosnmp.Counter32, gosnmp.Gauge32, gosnmp.TimeTicks,
		gosnmp.Counter64, gosnmp.Uinteger32:
		s, ok := renderInteger(pdu.Value)
		if !ok {
			return "", unsupported(pdu)
		}

		return s, nil
	case gosnmp.OpaqueFloat:
		f, ok := pdu.Value.(float32)
		if !ok {
			return "", unsupported(pdu)
		}

		return strconv.FormatFloat(float64(f), 'g', -1, 32), nil
	case gosnmp.OpaqueDouble:
		f, ok := pdu.Value.(float64)
		if !ok {
			return "", unsupported(pdu)
		}

		return strconv.FormatFloat(f, 'g', -1, 64), nil
	case gosnmp.Null:
		return "", nil
	default:
		return "", unsupported(pdu)
	}
}

func unsupported(pdu gosnmp.SnmpPDU) error {
	return fmt.Errorf("%w: type %v with Go type %T for %s", ErrUnsupportedValue, pdu.Type, pdu.Value, pdu.Name)
}

func renderInteger(value interface{}) (string, bool) {
	switch v := value.(type) {
	case int:
		return strconv.FormatInt(int64(v), 10), true
	case int32:
		return strconv.FormatInt(int64(v), 10), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case uint:
		return strconv.FormatUint(uint64(v), 10), true
	case uint32:
		return strconv.FormatUint(uint64(v), 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true
	default:
		return "", false
	}
}

func renderOctets(b []byte) string {
	if isPrintable(b) {
		return string(b)
	}

	return "0x" + hex.EncodeToString(b)
}

func isPrintable(b []byte) bool {
	if !utf8.Valid(b) {
		return false
	}

	for _, r := range string(b) {
		if !unicode.IsPrint(r) && !unicode.IsSpace(r) {
			return false
		}
	}

	return true
}
