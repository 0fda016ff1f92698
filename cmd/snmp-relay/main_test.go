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

package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carverauto/snmp-relay/pkg/relay"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		err      error
		expected int
	}{
		{err: nil, expected: exitOK},
		{err: fmt.Errorf("%w: boom", relay.ErrInventoryFetch), expected: exitInventory},
		{err: fmt.Errorf("%w: boom", relay.ErrSubmit), expected: exitSubmit},
		{err: fmt.Errorf("%w: %w", relay.ErrRunCancelled, context.Canceled), expected: exitCancelled},
		{err: fmt.Errorf("%w: boom", errFailedToLoadConfig), expected: exitSetup},
		{err: errors.New("unknown flag: --bogus"), expected: exitSetup},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, exitCode(tt.err), fmt.Sprint(tt.err))
	}
}

func TestExecute_MissingConfig(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := execute(context.Background(),
		[]string{"--config", filepath.Join(t.TempDir(), "missing.ini")}, &stdout, &stderr)

	assert.Equal(t, exitSetup, code)
	assert.Contains(t, stderr.String(), errFailedToLoadConfig.Error())
}

func TestExecute_RejectsPositionalArgs(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := execute(context.Background(), []string{"extra"}, &stdout, &stderr)

	assert.Equal(t, exitSetup, code)
}

func writeConfig(t *testing.T, serviceURL string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.ini")

	content := fmt.Sprintf(`[DEFAULT]
api_key = key-123
api_secret = secret-456
service_url = %s
client_code = cliente01
loglevel = 1
log_days = 7
log_dir = %s
`, serviceURL, filepath.Join(dir, "logs"))

	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestExecute_EmptyInventorySubmits(t *testing.T) {
	var submitted atomic.Bool

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			_, _ = w.Write([]byte(`[]`))
		case http.MethodPost:
			submitted.Store(true)
			_, _ = w.Write([]byte(`{"status":"ok"}`))
		}
	}))
	defer server.Close()

	var stdout, stderr bytes.Buffer

	code := execute(context.Background(), []string{"--config", writeConfig(t, server.URL)}, &stdout, &stderr)

	assert.Equal(t, exitOK, code)
	assert.True(t, submitted.Load())
	assert.Contains(t, stdout.String(), "Report submitted")
}

func TestExecute_InventoryFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	var stdout, stderr bytes.Buffer

	code := execute(context.Background(), []string{"-c", writeConfig(t, server.URL)}, &stdout, &stderr)

	assert.Equal(t, exitInventory, code)
	assert.Contains(t, stdout.String(), "Inventory fetch failed, nothing submitted")
}

func TestExecute_SubmitFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			_, _ = w.Write([]byte(`[]`))

			return
		}

		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	var stdout, stderr bytes.Buffer

	code := execute(context.Background(), []string{"-c", writeConfig(t, server.URL)}, &stdout, &stderr)

	assert.Equal(t, exitSubmit, code)
}
