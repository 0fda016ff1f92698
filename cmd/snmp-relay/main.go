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

// Command snmp-relay polls the devices listed by the reporting service over
// SNMP and submits the collected values back to it.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/carverauto/snmp-relay/pkg/config"
	"github.com/carverauto/snmp-relay/pkg/logger"
	"github.com/carverauto/snmp-relay/pkg/relay"
	"github.com/carverauto/snmp-relay/pkg/version"
)

const (
	exitOK        = 0
	exitSetup     = 1
	exitInventory = 2
	exitSubmit    = 3
	exitCancelled = 4

	envPrefix         = "SNMP_RELAY"
	defaultConfigPath = "config.ini"
)

var (
	errFailedToLoadConfig = errors.New("failed to load config")
	errFailedToInitLogger = errors.New("failed to initialize logger")
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	code := execute(ctx, os.Args[1:], os.Stdout, os.Stderr)

	stop()
	os.Exit(code)
}

func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := newRootCommand(stdout)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	code := exitCode(err)

	if code == exitSetup {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
	}

	return code
}

func newRootCommand(stdout io.Writer) *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:           "snmp-relay",
		Short:         "Poll SNMP devices from the service inventory and report their values",
		Version:       version.GetFullVersion(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), configPath, stdout)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath,
		"Path to the configuration file (.ini, .yaml or .json)")

	return cmd
}

func run(ctx context.Context, configPath string, stdout io.Writer) error {
	cfg := relay.DefaultConfig()

	if err := config.NewLoader(envPrefix, nil).LoadAndValidate(ctx, configPath, cfg); err != nil {
		return fmt.Errorf("%w: %w", errFailedToLoadConfig, err)
	}

	log, err := logger.New(cfg.LoggerConfig())
	if err != nil {
		return fmt.Errorf("%w: %w", errFailedToInitLogger, err)
	}

	defer func() { _ = log.Close() }()

	log.Info().
		Str("version", version.GetFullVersion()).
		Str("config", configPath).
		Msg("snmp-relay starting")

	r, err := relay.New(cfg, log)
	if err != nil {
		return err
	}

	res, err := r.Run(ctx)

	_, _ = fmt.Fprintln(stdout, relay.Summary(res, err))

	return err
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, relay.ErrRunCancelled):
		return exitCancelled
	case errors.Is(err, relay.ErrInventoryFetch):
		return exitInventory
	case errors.Is(err, relay.ErrSubmit):
		return exitSubmit
	default:
		return exitSetup
	}
}
