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

package relay

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"

	"github.com/carverauto/snmp-relay/pkg/api"
	"github.com/carverauto/snmp-relay/pkg/config"
	"github.com/carverauto/snmp-relay/pkg/logger"
	"github.com/carverauto/snmp-relay/pkg/poller"
	"github.com/carverauto/snmp-relay/pkg/snmp"
)

const (
	defaultHTTPTimeout      = 30 * time.Second
	defaultInventoryRetries = 2
	defaultLogDir           = "logs"
	defaultLogDays          = 7
	maxPort                 = 65535
)

// Config is the relay configuration, read once at startup.
type Config struct {
	APIKey     string `mapstructure:"api_key"`
	APISecret  string `mapstructure:"api_secret"`
	ServiceURL string `mapstructure:"service_url"`
	ClientCode string `mapstructure:"client_code"`

	Community     string        `mapstructure:"community"`
	Timeout       time.Duration `mapstructure:"timeout"`
	Retries       int           `mapstructure:"retries"`
	SNMPPort      int           `mapstructure:"snmp_port"`
	SNMPVersion   string        `mapstructure:"snmp_version"`
	Workers       int           `mapstructure:"workers"`
	DeviceTimeout time.Duration `mapstructure:"device_timeout"`

	HTTPTimeout      time.Duration `mapstructure:"http_timeout"`
	InventoryRetries int           `mapstructure:"inventory_retries"`

	LogLevel int    `mapstructure:"loglevel"`
	LogDays  int    `mapstructure:"log_days"`
	LogDir   string `mapstructure:"log_dir"`

	PushgatewayURL string `mapstructure:"pushgateway_url"`
}

var _ config.Validator = (*Config)(nil)

// DefaultConfig returns a Config holding every default. Loading a file on top
// of it only replaces the keys the file sets.
func DefaultConfig() *Config {
	return &Config{
		Community:        poller.DefaultCommunity,
		Timeout:          poller.DefaultTimeout,
		Retries:          poller.DefaultRetries,
		SNMPPort:         int(snmp.DefaultPort),
		SNMPVersion:      string(snmp.Version2c),
		Workers:          poller.DefaultWorkers,
		DeviceTimeout:    poller.DefaultDeviceTimeout,
		HTTPTimeout:      defaultHTTPTimeout,
		InventoryRetries: defaultInventoryRetries,
		LogLevel:         logger.VerbosityInfo,
		LogDays:          defaultLogDays,
		LogDir:           defaultLogDir,
	}
}

// Validate fills unset optional settings and reports every problem found.
func (c *Config) Validate() error {
	var result *multierror.Error

	c.APIKey = strings.TrimSpace(c.APIKey)
	c.APISecret = strings.TrimSpace(c.APISecret)
	c.ServiceURL = strings.TrimSpace(c.ServiceURL)
	c.ClientCode = strings.TrimSpace(c.ClientCode)

	for _, field := range []struct{ key, value string }{
		{"api_key", c.APIKey},
		{"api_secret", c.APISecret},
		{"service_url", c.ServiceURL},
		{"client_code", c.ClientCode},
	} {
		if field.value == "" {
			result = multierror.Append(result, fmt.Errorf("%w: %s", errMissingField, field.key))
		}
	}

	if c.ServiceURL != "" {
		if u, err := url.Parse(c.ServiceURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			result = multierror.Append(result, fmt.Errorf("%w: %q", errInvalidEndpoint, c.ServiceURL))
		}
	}

	if c.PushgatewayURL != "" {
		if u, err := url.Parse(c.PushgatewayURL); err != nil || u.Host == "" {
			result = multierror.Append(result, fmt.Errorf("%w: pushgateway_url %q", errInvalidSetting, c.PushgatewayURL))
		}
	}

	c.applyDefaults()

	if c.LogLevel < logger.VerbosityError || c.LogLevel > logger.VerbosityDebug {
		result = multierror.Append(result, fmt.Errorf("%w: loglevel must be 0, 1 or 2, got %d", errOutOfRange, c.LogLevel))
	}

	if c.Retries < 0 {
		result = multierror.Append(result, fmt.Errorf("%w: retries must not be negative", errOutOfRange))
	}

	if c.InventoryRetries < 0 {
		result = multierror.Append(result, fmt.Errorf("%w: inventory_retries must not be negative", errOutOfRange))
	}

	if c.LogDays < 0 {
		result = multierror.Append(result, fmt.Errorf("%w: log_days must not be negative", errOutOfRange))
	}

	if c.DeviceTimeout < 0 {
		result = multierror.Append(result, fmt.Errorf("%w: device_timeout must not be negative", errOutOfRange))
	}

	if c.SNMPPort < 1 || c.SNMPPort > maxPort {
		result = multierror.Append(result, fmt.Errorf("%w: snmp_port %d", errOutOfRange, c.SNMPPort))
	}

	version, err := snmp.ParseVersion(c.SNMPVersion)
	if err != nil {
		result = multierror.Append(result, fmt.Errorf("%w: snmp_version: %w", errInvalidSetting, err))
	} else {
		c.SNMPVersion = string(version)
	}

	return result.ErrorOrNil()
}

func (c *Config) applyDefaults() {
	if strings.TrimSpace(c.Community) == "" {
		c.Community = poller.DefaultCommunity
	}

	if c.Timeout <= 0 {
		c.Timeout = poller.DefaultTimeout
	}

	if c.SNMPPort == 0 {
		c.SNMPPort = int(snmp.DefaultPort)
	}

	if c.Workers <= 0 {
		c.Workers = poller.DefaultWorkers
	}

	if c.HTTPTimeout <= 0 {
		c.HTTPTimeout = defaultHTTPTimeout
	}

	if strings.TrimSpace(c.LogDir) == "" {
		c.LogDir = defaultLogDir
	}
}

// LoggerConfig returns the logger settings derived from the relay settings.
func (c *Config) LoggerConfig() *logger.Config {
	return &logger.Config{
		Verbosity:     c.LogLevel,
		Dir:           c.LogDir,
		RetentionDays: c.LogDays,
		Console:       true,
	}
}

// PollerConfig returns the SNMP settings shared by every device poll.
func (c *Config) PollerConfig() poller.Config {
	return poller.Config{
		Community:     c.Community,
		Timeout:       c.Timeout,
		Retries:       c.Retries,
		Port:          uint16(c.SNMPPort),
		Version:       snmp.Version(c.SNMPVersion),
		Workers:       c.Workers,
		DeviceTimeout: c.DeviceTimeout,
	}
}

// APIConfig returns the reporting service client settings.
func (c *Config) APIConfig(log logger.Logger) api.Config {
	return api.Config{
		ServiceURL: c.ServiceURL,
		APIKey:     c.APIKey,
		APISecret:  c.APISecret,
		Timeout:    c.HTTPTimeout,
		Logger:     log,
	}
}
