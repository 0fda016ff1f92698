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

// Package logger provides structured logging using zerolog
package logger

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

var (
	errInvalidVerbosity = errors.New("invalid log verbosity")
)

const (
	logFilePrefix = "snmp_log_"
	logFileSuffix = ".txt"
	logDateLayout = "2006-01-02"
	logDirPerm    = 0o755
	logFilePerm   = 0o644
)

// Handle is a process-wide logger that owns its output files. It is created at
// startup and must be closed before exit so buffered lines reach disk.
type Handle struct {
	logger zerolog.Logger
	file   *os.File
	path   string
}

// New builds a Handle from the config. File output goes to the current day's
// log file inside cfg.Dir, and expired daily files are removed first.
func New(cfg *Config) (*Handle, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	level, err := LevelFromVerbosity(cfg.Verbosity)
	if err != nil {
		return nil, err
	}

	h := &Handle{}

	var writers []io.Writer

	if cfg.Console {
		writers = append(writers, zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	if cfg.Dir != "" {
		now := time.Now()

		if err := os.MkdirAll(cfg.Dir, logDirPerm); err != nil {
			return nil, fmt.Errorf("failed to create log directory %s: %w", cfg.Dir, err)
		}

		for _, cleanupErr := range CleanupOldLogs(cfg.Dir, cfg.RetentionDays, now) {
			fmt.Fprintf(os.Stderr, "log retention: %v\n", cleanupErr)
		}

		h.path = filepath.Join(cfg.Dir, FileName(now))

		h.file, err = os.OpenFile(h.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, logFilePerm)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %w", h.path, err)
		}

		writers = append(writers, h.file)
	}

	var output io.Writer = io.Discard

	switch len(writers) {
	case 0:
	case 1:
		output = writers[0]
	default:
		output = zerolog.MultiLevelWriter(writers...)
	}

	zerolog.TimeFieldFormat = time.RFC3339

	h.logger = zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Logger()

	return h, nil
}

// FileName returns the daily log file name for t.
func FileName(t time.Time) string {
	return logFilePrefix + t.Format(logDateLayout) + logFileSuffix
}

// Path is the log file currently written to, or empty when file output is off.
func (h *Handle) Path() string {
	return h.path
}

// Close flushes and closes the log file.
func (h *Handle) Close() error {
	if h.file == nil {
		return nil
	}

	if err := h.file.Sync(); err != nil {
		_ = h.file.Close()

		return err
	}

	err := h.file.Close()
	h.file = nil

	return err
}

func (h *Handle) Trace() *zerolog.Event {
	return h.logger.Trace()
}

func (h *Handle) Debug() *zerolog.Event {
	return h.logger.Debug()
}

func (h *Handle) Info() *zerolog.Event {
	return h.logger.Info()
}

func (h *Handle) Warn() *zerolog.Event {
	return h.logger.Warn()
}

func (h *Handle) Error() *zerolog.Event {
	return h.logger.Error()
}

func (h *Handle) Fatal() *zerolog.Event {
	return h.logger.Fatal()
}

func (h *Handle) Panic() *zerolog.Event {
	return h.logger.Panic()
}

func (h *Handle) With() zerolog.Context {
	return h.logger.With()
}

func (h *Handle) WithComponent(component string) zerolog.Logger {
	return h.logger.With().Str("component", component).Logger()
}

func (h *Handle) WithFields(fields map[string]interface{}) zerolog.Logger {
	ctx := h.logger.With()
	for key, value := range fields {
		ctx = ctx.Interface(key, value)
	}

	return ctx.Logger()
}

func (h *Handle) SetLevel(level zerolog.Level) {
	h.logger = h.logger.Level(level)
}

func (h *Handle) SetDebug(debug bool) {
	if debug {
		h.SetLevel(zerolog.DebugLevel)
	} else {
		h.SetLevel(zerolog.InfoLevel)
	}
}
