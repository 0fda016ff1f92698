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

package logger

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Verbosity values accepted in the loglevel setting.
const (
	VerbosityError = 0
	VerbosityInfo  = 1
	VerbosityDebug = 2
)

const (
	defaultDir           = "logs"
	defaultRetentionDays = 7
)

type Config struct {
	// Verbosity is 0 for errors only, 1 for info and 2 for debug.
	Verbosity int `json:"verbosity" yaml:"verbosity"`
	// Dir receives one snmp_log_YYYY-MM-DD.txt file per day. Empty disables file output.
	Dir string `json:"dir" yaml:"dir"`
	// RetentionDays is how long daily files are kept. Zero keeps everything.
	RetentionDays int `json:"retention_days" yaml:"retention_days"`
	// Console enables human readable output on stdout.
	Console bool `json:"console" yaml:"console"`
}

func DefaultConfig() *Config {
	return &Config{
		Verbosity:     VerbosityInfo,
		Dir:           defaultDir,
		RetentionDays: defaultRetentionDays,
		Console:       true,
	}
}

// LevelFromVerbosity maps the numeric loglevel setting to a zerolog level.
func LevelFromVerbosity(v int) (zerolog.Level, error) {
	switch v {
	case VerbosityError:
		return zerolog.ErrorLevel, nil
	case VerbosityInfo:
		return zerolog.InfoLevel, nil
	case VerbosityDebug:
		return zerolog.DebugLevel, nil
	default:
		return zerolog.NoLevel, fmt.Errorf("%w: %d", errInvalidVerbosity, v)
	}
}
