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
	"context"
	"fmt"
	"net"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/gosnmp/gosnmp"
)

//go:generate mockgen -destination=mock_snmp.go -package=snmp github.com/carverauto/snmp-relay/pkg/snmp Session,SessionFactory

const (
	// DefaultPort is the well-known SNMP agent port.
	DefaultPort uint16 = 161
)

// Version is an SNMP protocol version as written in configuration.
type Version string

const (
	Version1  Version = "1"
	Version2c Version = "2c"
)

var oidPattern = regexp.MustCompile(`^\.?[0-9]+(\.[0-9]+)+$`)

// ValidOID reports whether oid is a dotted numeric object identifier.
func ValidOID(oid string) bool {
	return oidPattern.MatchString(oid)
}

// ParseVersion accepts "1", "v1", "2", "2c" and "v2c".
func ParseVersion(s string) (Version, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "v1":
		return Version1, nil
	case "", "2", "2c", "v2", "v2c":
		return Version2c, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedVersion, s)
	}
}

func (v Version) gosnmpVersion() (gosnmp.SnmpVersion, error) {
	switch v {
	case Version1:
		return gosnmp.Version1, nil
	case Version2c, "":
		return gosnmp.Version2c, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedVersion, v)
	}
}

// Target describes the agent a session talks to.
type Target struct {
	Address   string
	Port      uint16
	Community string
	Version   Version
	Timeout   time.Duration
}

// Session performs GET requests against one agent. Each Get is a single
// attempt bounded by the target timeout.
type Session interface {
	Get(oids []string) (*gosnmp.SnmpPacket, error)
	Close() error
}

// SessionFactory opens sessions. The context bounds every request made on the
// returned session.
type SessionFactory interface {
	Open(ctx context.Context, target Target) (Session, error)
}

// GoSNMPFactory opens UDP sessions with gosnmp.
type GoSNMPFactory struct{}

var _ SessionFactory = GoSNMPFactory{}

// Open connects a gosnmp client to the target. Library level retries are off;
// the caller decides whether to retry.
func (GoSNMPFactory) Open(ctx context.Context, target Target) (Session, error) {
	version, err := target.Version.gosnmpVersion()
	if err != nil {
		return nil, err
	}

	host, port := splitAddress(target.Address, target.Port)

	client := &gosnmp.GoSNMP{
		Target:    host,
		Port:      port,
		Transport: "udp",
		Community: target.Community,
		Version:   version,
		Timeout:   target.Timeout,
		Retries:   0,
		MaxOids:   gosnmp.MaxOids,
		Context:   ctx,
	}

	if err := client.Connect(); err != nil {
		return nil, err
	}

	return &goSNMPSession{client: client}, nil
}

type goSNMPSession struct {
	client *gosnmp.GoSNMP
}

func (s *goSNMPSession) Get(oids []string) (*gosnmp.SnmpPacket, error) {
	return s.client.Get(oids)
}

func (s *goSNMPSession) Close() error {
	if s.client.Conn == nil {
		return nil
	}

	return s.client.Conn.Close()
}

// splitAddress honours an explicit host:port in the address and falls back to
// the given port otherwise. Bare IPv6 addresses are passed through.
func splitAddress(address string, port uint16) (string, uint16) {
	if port == 0 {
		port = DefaultPort
	}

	host, portStr, err := net.SplitHostPort(address)
	if err != nil {
		return address, port
	}

	p, err := strconv.ParseUint(portStr, 10, 16)
	if err != nil {
		return address, port
	}

	return host, uint16(p)
}
