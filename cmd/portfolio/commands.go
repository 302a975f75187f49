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
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"portfolioshowcase/internal/config"
	"portfolioshowcase/internal/crash"
	"portfolioshowcase/internal/domain"
	"portfolioshowcase/internal/export"
	"portfolioshowcase/internal/tui"
	"portfolioshowcase/internal/ui"
	"portfolioshowcase/internal/version"
	"portfolioshowcase/internal/view"
)

const defaultWidth = 100

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Println("Portfolio Showcase " + version.String())
		},
	}
}

func categoriesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the filter categories in display order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.store()
			if err != nil {
				return err
			}
			for _, c := range s.Categories() {
				cmd.Println(c)
			}
			return nil
		},
	}
}

func gridCmd(a *app) *cobra.Command {
	var category string
	var width int
	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Print the card grid for a category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.store()
			if err != nil {
				return err
			}
			c := view.NewController(s, nil, a.viewOptions()...)
			if err := c.SetFilter(category); err != nil {
				return err
			}
			cards := view.SummarizeAll(c.VisibleProjects())
			cmd.Print(tui.GridText(s.Categories(), c.State().ActiveFilter, cards, width))
			return nil
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", domain.CategoryAll, "category to show")
	cmd.Flags().IntVarP(&width, "width", "w", defaultWidth, "output width in columns")
	return cmd
}

func showCmd(a *app) *cobra.Command {
	var width int
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Print the full detail of a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid project id %q", args[0])
			}
			s, err := a.store()
			if err != nil {
				return err
			}
			var sink detailSink
			c := view.NewController(s, &sink, a.viewOptions()...)
			if err := c.OpenModal(id); err != nil {
				return err
			}
			cmd.Print(tui.DetailText(sink.detail, width))
			return nil
		},
	}
	cmd.Flags().IntVarP(&width, "width", "w", defaultWidth, "output width in columns")
	return cmd
}

// detailSink keeps the last detail view a controller rendered.
type detailSink struct{ detail view.DetailView }

func (d *detailSink) RenderGrid([]view.CardView)     {}
func (d *detailSink) RenderDetail(v view.DetailView) { d.detail = v }
func (d *detailSink) HideDetail()                    {}
func (d *detailSink) SetScrollLock(bool)             {}

func tuiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Browse the portfolio in the terminal (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runTUI(cmd)
		},
	}
}

func (a *app) runTUI(cmd *cobra.Command) error {
	s, err := a.store()
	if err != nil {
		return err
	}
	m, err := tui.New(s, a.viewOptions()...)
	if err != nil {
		return err
	}
	defer crash.Recover(m.Controller())
	return tui.Run(cmd.Context(), m)
}

func uiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ui",
		Short: "Open the desktop showcase (build with -tags fyne)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.store()
			if err != nil {
				return err
			}
			return ui.Run(s, a.cfg, a.viewOptions()...)
		},
	}
}

func exportCmd(a *app) *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a static snapshot of the showcase",
	}
	cmd.PersistentFlags().StringVarP(&category, "category", "c", domain.CategoryAll, "category to export")

	for _, f := range export.Formats {
		cmd.AddCommand(&cobra.Command{
			Use:   string(f) + " <out>",
			Short: "Export as " + strings.ToUpper(string(f)),
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				snap, err := a.snapshot(category)
				if err != nil {
					return err
				}
				if err := export.Write(f, args[0], snap); err != nil {
					return err
				}
				cmd.Println("Wrote", args[0])
				return nil
			},
		})
	}

	var formats []string
	all := &cobra.Command{
		Use:   "all <dir>",
		Short: "Export every format into a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var fs []export.Format
			for _, name := range formats {
				f, err := export.ParseFormat(name)
				if err != nil {
					return err
				}
				fs = append(fs, f)
			}
			snap, err := a.snapshot(category)
			if err != nil {
				return err
			}
			paths, err := export.Batch(snap, args[0], fs)
			for _, p := range paths {
				cmd.Println("Wrote", p)
			}
			return err
		},
	}
	all.Flags().StringSliceVar(&formats, "formats", nil, "formats to write (default: all)")
	cmd.AddCommand(all)
	return cmd
}

func (a *app) snapshot(category string) (export.Snapshot, error) {
	s, err := a.store()
	if err != nil {
		return export.Snapshot{}, err
	}
	return export.Capture(s, category)
}

func configCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or change the user configuration",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "path",
			Short: "Print the config file location",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				p, err := config.ConfigPath()
				if err != nil {
					return err
				}
				cmd.Println(p)
				return nil
			},
		},
		&cobra.Command{
			Use:   "show",
			Short: "Print the effective configuration and its environment overrides",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				out, err := yaml.Marshal(a.cfg)
				if err != nil {
					return err
				}
				cmd.Print(string(out))
				for _, key := range config.OverrideKeys() {
					if env, ok := config.EnvOverrideFor(key); ok {
						cmd.Printf("# %s overridden by %s\n", key, env)
					}
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "init",
			Short: "Write the defaults to the config file if it does not exist",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				p, err := config.ConfigPath()
				if err != nil {
					return err
				}
				if fileExists(p) {
					cmd.Println("Config already exists at", p)
					return nil
				}
				if err := config.Save(config.Defaults(), ""); err != nil {
					return err
				}
				cmd.Println("Wrote", filepath.Clean(p))
				return nil
			},
		},
		&cobra.Command{
			Use:   "set-token <token>",
			Short: "Store the telemetry API token in the OS keychain",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := config.SetToken(args[0]); err != nil {
					return err
				}
				cmd.Println("Token stored in the OS keychain")
				return nil
			},
		},
		&cobra.Command{
			Use:   "forget-token",
			Short: "Remove the telemetry API token from the OS keychain",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return config.ForgetToken()
			},
		},
	)
	return cmd
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
