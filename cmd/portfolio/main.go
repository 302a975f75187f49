/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"portfolioshowcase/internal/catalog"
	"portfolioshowcase/internal/config"
	applog "portfolioshowcase/internal/log"
	"portfolioshowcase/internal/telemetry"
	"portfolioshowcase/internal/view"
)

// app carries what every command needs once the root pre-run has loaded it.
type app struct {
	catalogPath string
	cfg         config.AppConfig
	token       string
	// quietConsole keeps log lines off the terminal while a full-screen UI owns it.
	quietConsole bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	a := &app{}
	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	err := root.ExecuteContext(ctx)
	shutdownTelemetry()
	if err != nil {
		applog.WithComponent("cli").Error("command failed", slog.Any("err", err))
		return 1
	}
	return 0
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:          "portfolio",
		Short:        "Design portfolio showcase",
		Long:         "Browse a design portfolio by category and open any project for its full detail.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runTUI(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.catalogPath, "catalog", "", "catalog JSON document (default: built-in showcase)")

	root.AddCommand(
		versionCmd(),
		categoriesCmd(a),
		gridCmd(a),
		showCmd(a),
		tuiCmd(a),
		uiCmd(a),
		exportCmd(a),
		configCmd(a),
	)
	return root
}

// setup loads the user config, initializes logging and telemetry.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, tok, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	a.cfg, a.token = cfg, tok
	if a.catalogPath == "" {
		a.catalogPath = cfg.Catalog.Path
	}
	if cmd.Name() == "portfolio" || cmd.Name() == "tui" {
		a.quietConsole = true
	}

	opts := applog.Options{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		AddSource: cfg.Logging.Source,
		File:      cfg.Logging.File,
		Console:   cmd.ErrOrStderr(),
	}
	if a.quietConsole {
		opts.Console = io.Discard
	}
	applog.Init(opts)
	telemetry.NewDefault(cfg.TelemetryClientConfig(tok))

	applog.WithComponent("cli").Debug("start",
		slog.String("command", cmd.CommandPath()),
		slog.String("catalog", a.catalogPath),
		slog.Bool("telemetry", telemetry.Default().Enabled()))
	return nil
}

func (a *app) store() (*catalog.Store, error) {
	return catalog.LoadFile(a.catalogPath)
}

// viewOptions wires the controller to the logger, telemetry and configured timings.
func (a *app) viewOptions() []view.Option {
	return []view.Option{
		view.WithLogger(applog.WithComponent("view")),
		view.WithTracker(telemetry.Default()),
		view.WithAnimation(a.cfg.Display.Animation()),
	}
}

func shutdownTelemetry() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	c := telemetry.Default()
	c.Flush(ctx)
	c.Close()
}
