/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/zalando/go-keyring"

	"portfolioshowcase/internal/view"
)

// isolate points the config directory at a temp dir and swaps the OS keychain for an in-memory one.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("AppData", dir)
	keyring.MockInit()
	for _, name := range overrides {
		t.Setenv(name, "")
	}
	return dir
}

func TestLoadWithoutFileReturnsDefaults(t *testing.T) {
	isolate(t)
	cfg, tok, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg != Defaults() {
		t.Fatalf("Load() = %#v, want defaults", cfg)
	}
	if tok != "" {
		t.Fatalf("unexpected token %q", tok)
	}
}

func TestSaveThenLoadRoundTripsFileAndToken(t *testing.T) {
	isolate(t)
	cfg := Defaults()
	cfg.Catalog.Path = "/srv/showcase.json"
	cfg.General.Theme = "dark"
	cfg.Display.CardStaggerMs = 40
	if err := Save(cfg, "tok-123"); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	path, _ := ConfigPath()
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	got, tok, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got != cfg {
		t.Fatalf("Load() = %#v, want %#v", got, cfg)
	}
	if tok != "tok-123" {
		t.Fatalf("token = %q", tok)
	}

	if err := ForgetToken(); err != nil {
		t.Fatalf("ForgetToken() error: %v", err)
	}
	if err := ForgetToken(); err != nil {
		t.Fatalf("second ForgetToken() error: %v", err)
	}
	if _, tok, _ = Load(); tok != "" {
		t.Fatalf("token survived ForgetToken: %q", tok)
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	isolate(t)
	path, _ := ConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("display: [unterminated"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := Load(); err == nil {
		t.Fatalf("expected error for malformed YAML")
	}
}

func TestEnvOverridesCatalogAndTelemetry(t *testing.T) {
	isolate(t)
	t.Setenv(EnvCatalogPath, "/tmp/other.json")
	t.Setenv(EnvTelemetryOptIn, "yes")
	t.Setenv(EnvTelemetryURL, "https://example.test/events")
	cfg, _, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Catalog.Path != "/tmp/other.json" {
		t.Fatalf("Catalog.Path = %q", cfg.Catalog.Path)
	}
	if !cfg.General.TelemetryOptIn || cfg.Telemetry.EventsURL != "https://example.test/events" {
		t.Fatalf("telemetry overrides not applied: %#v", cfg)
	}
	if name, ok := EnvOverrideFor("catalog.path"); !ok || name != EnvCatalogPath {
		t.Fatalf("EnvOverrideFor(catalog.path) = %q, %v", name, ok)
	}
	if _, ok := EnvOverrideFor("logging.level"); ok {
		t.Fatalf("logging.level should not be overridden")
	}
	if _, ok := EnvOverrideFor("no.such.key"); ok {
		t.Fatalf("unknown key reported as overridden")
	}
}

func TestEnvOverridesLogging(t *testing.T) {
	isolate(t)
	t.Setenv(EnvLogLevel, "ERROR")
	t.Setenv(EnvLogFormat, "json")
	t.Setenv(EnvLogSource, "1")
	t.Setenv(EnvLogFile, "/var/log/pfs.log")
	cfg, _, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Logging.Level != "error" || cfg.Logging.Format != "json" || !cfg.Logging.Source || cfg.Logging.File != "/var/log/pfs.log" {
		t.Fatalf("env overrides not applied to logging: %#v", cfg.Logging)
	}
}

func TestEnvZeroDisablesAnimation(t *testing.T) {
	isolate(t)
	t.Setenv(EnvCardStaggerMs, "0")
	t.Setenv(EnvModalFadeMs, "-5")
	cfg, _, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if a := cfg.Display.Animation(); a != (view.Animation{}) {
		t.Fatalf("Animation() = %+v, want zero", a)
	}
}

func TestMergeTimings(t *testing.T) {
	dst := Defaults()
	src := AppConfig{Display: DisplayConfig{WindowWidth: 900, ModalFadeMs: -1}}
	mergeInto(&dst, &src)
	if dst.Display.WindowWidth != 900 || dst.Display.WindowHeight != 800 {
		t.Fatalf("window size not merged: %#v", dst.Display)
	}
	if dst.Display.CardStaggerMs != 100 {
		t.Fatalf("absent stagger should keep default, got %d", dst.Display.CardStaggerMs)
	}
	if dst.Display.ModalFadeMs != 0 {
		t.Fatalf("negative fade should disable, got %d", dst.Display.ModalFadeMs)
	}
}

func TestMergeIncludesLogging(t *testing.T) {
	dst := Defaults()
	src := Defaults()
	src.Logging.Level = " Debug "
	src.Logging.Format = "json"
	src.Logging.Source = true
	src.Logging.File = "C:/tmp/pfs.log"
	mergeInto(&dst, &src)
	if dst.Logging.Level != "debug" || dst.Logging.Format != "json" || !dst.Logging.Source || dst.Logging.File != "C:/tmp/pfs.log" {
		t.Fatalf("logging fields not merged correctly: %#v", dst.Logging)
	}
}

func TestDefaultAnimationMatchesShowcaseTimings(t *testing.T) {
	a := Defaults().Display.Animation()
	if a.Stagger != 100*time.Millisecond || a.Fade != 600*time.Millisecond {
		t.Fatalf("Animation() = %+v", a)
	}
}

func TestTelemetryClientConfig(t *testing.T) {
	cfg := Defaults()
	cfg.General.TelemetryOptIn = true
	cfg.Telemetry.EventsURL = "https://example.test/e"
	tc := cfg.TelemetryClientConfig("abc")
	if !tc.OptIn || tc.EventsURL != "https://example.test/e" || tc.Token != "abc" || tc.Timeout != 1500*time.Millisecond {
		t.Fatalf("TelemetryClientConfig() = %+v", tc)
	}
}

func TestSetTokenLeavesFileAlone(t *testing.T) {
	isolate(t)
	if err := SetToken("  "); err == nil {
		t.Fatal("expected error for empty token")
	}
	if err := SetToken("abc"); err != nil {
		t.Fatalf("SetToken: %v", err)
	}
	p, _ := ConfigPath()
	if _, err := os.Stat(p); !os.IsNotExist(err) {
		t.Fatalf("config file should not exist, stat err = %v", err)
	}
	_, tok, err := Load()
	if err != nil || tok != "abc" {
		t.Fatalf("Load() token = %q, err = %v", tok, err)
	}
}

func TestOverrideKeysSortedAndResolvable(t *testing.T) {
	isolate(t)
	keys := OverrideKeys()
	if len(keys) != len(overrides) {
		t.Fatalf("got %d keys, want %d", len(keys), len(overrides))
	}
	for i := 1; i < len(keys); i++ {
		if keys[i-1] >= keys[i] {
			t.Fatalf("keys not sorted: %v", keys)
		}
	}
	t.Setenv(EnvTheme, "dark")
	if env, ok := EnvOverrideFor("general.theme"); !ok || env != EnvTheme {
		t.Fatalf("EnvOverrideFor(general.theme) = %q, %v", env, ok)
	}
	if _, ok := EnvOverrideFor("catalog.path"); ok {
		t.Fatal("catalog.path should not be overridden")
	}
}
