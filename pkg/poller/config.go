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

package poller

import (
	"time"

	"github.com/carverauto/snmp-relay/pkg/snmp"
)

const (
	DefaultCommunity     = "public"
	DefaultTimeout       = 2 * time.Second
	DefaultRetries       = 2
	DefaultWorkers       = 8
	DefaultDeviceTimeout = 60 * time.Second
)

// Config holds the SNMP settings shared by every device in a run.
type Config struct {
	Community string
	Timeout   time.Duration
	Retries   int
	Port      uint16
	Version   snmp.Version
	Workers   int

	// DeviceTimeout bounds a whole device poll. Zero disables the bound.
	DeviceTimeout time.Duration
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		Community:     DefaultCommunity,
		Timeout:       DefaultTimeout,
		Retries:       DefaultRetries,
		Port:          snmp.DefaultPort,
		Version:       snmp.Version2c,
		Workers:       DefaultWorkers,
		DeviceTimeout: DefaultDeviceTimeout,
	}
}

func (c Config) withDefaults() Config {
	if c.Community == "" {
		c.Community = DefaultCommunity
	}

	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}

	if c.Retries < 0 {
		c.Retries = DefaultRetries
	}

	if c.Port == 0 {
		c.Port = snmp.DefaultPort
	}

	if c.Version == "" {
		c.Version = snmp.Version2c
	}

	if c.Workers <= 0 {
		c.Workers = DefaultWorkers
	}

	if c.DeviceTimeout < 0 {
		c.DeviceTimeout = 0
	}

	return c
}
