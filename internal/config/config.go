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
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/zalando/go-keyring"
	"gopkg.in/yaml.v3"

	"portfolioshowcase/internal/telemetry"
	"portfolioshowcase/internal/view"
)

// AppConfig is the user-editable configuration persisted as YAML in the user scope.
// Environment variables are read-only overrides applied at load time.
//
// config_version: bump when the structure changes in a backward-incompatible way.
type AppConfig struct {
	ConfigVersion int             `yaml:"config_version"`
	General       GeneralConfig   `yaml:"general"`
	Catalog       CatalogConfig   `yaml:"catalog"`
	Display       DisplayConfig   `yaml:"display"`
	Logging       LoggingConfig   `yaml:"logging"`
	Telemetry     TelemetryConfig `yaml:"telemetry"`
}

type GeneralConfig struct {
	TelemetryOptIn bool   `yaml:"telemetry_opt_in"`
	Theme          string `yaml:"theme"` // "system" | "light" | "dark"
}

type CatalogConfig struct {
	// Path to a catalog JSON document. Empty selects the built-in showcase.
	Path string `yaml:"path"`
}

type DisplayConfig struct {
	WindowWidth  int `yaml:"window_width"`
	WindowHeight int `yaml:"window_height"`
	CardWidth    int `yaml:"card_width"`
	// Animation timings in milliseconds. In the file, 0 keeps the default and
	// a negative value turns the animation off.
	CardStaggerMs int `yaml:"card_stagger_ms"`
	ModalFadeMs   int `yaml:"modal_fade_ms"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Source bool   `yaml:"source"`
	File   string `yaml:"file"`
}

type TelemetryConfig struct {
	EventsURL string `yaml:"events_url"`
	CrashURL  string `yaml:"crash_url"`
	TimeoutMs int    `yaml:"timeout_ms"`
	// The API token is not stored on disk; it lives in the OS keychain.
}

// Defaults returns the application defaults.
func Defaults() AppConfig {
	return AppConfig{
		ConfigVersion: 1,
		General:       GeneralConfig{TelemetryOptIn: false, Theme: "system"},
		Display:       DisplayConfig{WindowWidth: 1200, WindowHeight: 800, CardWidth: 340, CardStaggerMs: 100, ModalFadeMs: 600},
		Logging:       LoggingConfig{Level: "info", Format: "console"},
		Telemetry:     TelemetryConfig{TimeoutMs: 1500},
	}
}

// Env var names used as overrides.
const (
	EnvCatalogPath    = "PFS_CATALOG"
	EnvTheme          = "PFS_THEME"
	EnvTelemetryOptIn = "PFS_TELEMETRY_OPT_IN"
	EnvTelemetryURL   = "PFS_TELEMETRY_URL"
	EnvCrashURL       = "PFS_CRASH_UPLOAD_URL"
	EnvCardStaggerMs  = "PFS_CARD_STAGGER_MS"
	EnvModalFadeMs    = "PFS_MODAL_FADE_MS"
	EnvLogLevel       = "PFS_LOG_LEVEL"
	EnvLogFormat      = "PFS_LOG_FORMAT"
	EnvLogSource      = "PFS_LOG_SOURCE"
	EnvLogFile        = "PFS_LOG_FILE"
)

// Keychain entry for the telemetry API token.
const (
	keyringService = "PortfolioShowcase"
	keyringToken   = "telemetry_token"
)

// ConfigPath returns the per-user config file path.
func ConfigPath() (string, error) {
	var base string
	switch runtime.GOOS {
	case "windows":
		base = os.Getenv("AppData")
		if base == "" {
			base = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		base = filepath.Join(base, "PortfolioShowcase")
	case "darwin":
		base = filepath.Join(os.Getenv("HOME"), "Library", "Application Support", "PortfolioShowcase")
	default:
		home := os.Getenv("HOME")
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			base = filepath.Join(xdg, "portfolioshowcase")
		} else if home != "" {
			base = filepath.Join(home, ".config", "portfolioshowcase")
		}
	}
	if base == "" {
		return "", errors.New("cannot resolve config directory")
	}
	return filepath.Join(base, "config.yaml"), nil
}

// Load reads the user config file (if present), applies defaults and merges
// environment overrides. The telemetry token is read from the keychain and
// returned separately. A malformed file is an error; a missing one is not.
func Load() (AppConfig, string, error) {
	cfg := Defaults()
	path, err := ConfigPath()
	if err != nil {
		return cfg, "", err
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		var fileCfg AppConfig
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return cfg, "", err
		}
		mergeInto(&cfg, &fileCfg)
	case !errors.Is(err, os.ErrNotExist):
		return cfg, "", err
	}
	applyEnvOverrides(&cfg)
	tok, _ := keyring.Get(keyringService, keyringToken)
	return cfg, tok, nil
}

// Save writes the user config YAML and stores token in the keychain when non-empty.
func Save(cfg AppConfig, token string) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return err
	}
	if token != "" {
		return keyring.Set(keyringService, keyringToken, token)
	}
	return nil
}

// SetToken stores the telemetry token in the keychain without touching the YAML file.
func SetToken(token string) error {
	if strings.TrimSpace(token) == "" {
		return errors.New("empty token")
	}
	return keyring.Set(keyringService, keyringToken, token)
}

// ForgetToken removes the telemetry token from the keychain. A missing entry is not an error.
func ForgetToken() error {
	if err := keyring.Delete(keyringService, keyringToken); err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return err
	}
	return nil
}

func mergeInto(dst *AppConfig, src *AppConfig) {
	if src.ConfigVersion != 0 {
		dst.ConfigVersion = src.ConfigVersion
	}
	if t := strings.ToLower(strings.TrimSpace(src.General.Theme)); t != "" {
		dst.General.Theme = t
	}
	// booleans come straight from the file so user choices persist
	dst.General.TelemetryOptIn = src.General.TelemetryOptIn
	if p := strings.TrimSpace(src.Catalog.Path); p != "" {
		dst.Catalog.Path = p
	}
	mergeInt(&dst.Display.WindowWidth, src.Display.WindowWidth)
	mergeInt(&dst.Display.WindowHeight, src.Display.WindowHeight)
	mergeInt(&dst.Display.CardWidth, src.Display.CardWidth)
	mergeTiming(&dst.Display.CardStaggerMs, src.Display.CardStaggerMs)
	mergeTiming(&dst.Display.ModalFadeMs, src.Display.ModalFadeMs)
	if strings.TrimSpace(src.Logging.Level) != "" {
		dst.Logging.Level = strings.ToLower(strings.TrimSpace(src.Logging.Level))
	}
	if strings.TrimSpace(src.Logging.Format) != "" {
		dst.Logging.Format = strings.ToLower(strings.TrimSpace(src.Logging.Format))
	}
	dst.Logging.Source = src.Logging.Source
	if strings.TrimSpace(src.Logging.File) != "" {
		dst.Logging.File = strings.TrimSpace(src.Logging.File)
	}
	if u := strings.TrimSpace(src.Telemetry.EventsURL); u != "" {
		dst.Telemetry.EventsURL = u
	}
	if u := strings.TrimSpace(src.Telemetry.CrashURL); u != "" {
		dst.Telemetry.CrashURL = u
	}
	mergeInt(&dst.Telemetry.TimeoutMs, src.Telemetry.TimeoutMs)
}

func mergeInt(dst *int, v int) {
	if v > 0 {
		*dst = v
	}
}

// mergeTiming keeps the default for 0 and disables the animation for negative values.
func mergeTiming(dst *int, v int) {
	switch {
	case v > 0:
		*dst = v
	case v < 0:
		*dst = 0
	}
}

func parseBool(v string) bool {
	lv := strings.ToLower(strings.TrimSpace(v))
	return lv == "1" || lv == "true" || lv == "on" || lv == "yes"
}

func envMs(name string, dst *int) {
	if v := strings.TrimSpace(os.Getenv(name)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = max(n, 0)
		}
	}
}

func applyEnvOverrides(cfg *AppConfig) {
	if v := strings.TrimSpace(os.Getenv(EnvCatalogPath)); v != "" {
		cfg.Catalog.Path = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvTheme)); v != "" {
		cfg.General.Theme = strings.ToLower(v)
	}
	if v := os.Getenv(EnvTelemetryOptIn); strings.TrimSpace(v) != "" {
		cfg.General.TelemetryOptIn = parseBool(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvTelemetryURL)); v != "" {
		cfg.Telemetry.EventsURL = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvCrashURL)); v != "" {
		cfg.Telemetry.CrashURL = v
	}
	envMs(EnvCardStaggerMs, &cfg.Display.CardStaggerMs)
	envMs(EnvModalFadeMs, &cfg.Display.ModalFadeMs)
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFormat)); v != "" {
		cfg.Logging.Format = strings.ToLower(v)
	}
	if v := os.Getenv(EnvLogSource); strings.TrimSpace(v) != "" {
		cfg.Logging.Source = parseBool(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFile)); v != "" {
		cfg.Logging.File = v
	}
}

var overrides = map[string]string{
	"catalog.path":             EnvCatalogPath,
	"general.theme":            EnvTheme,
	"general.telemetry_opt_in": EnvTelemetryOptIn,
	"telemetry.events_url":     EnvTelemetryURL,
	"telemetry.crash_url":      EnvCrashURL,
	"display.card_stagger_ms":  EnvCardStaggerMs,
	"display.modal_fade_ms":    EnvModalFadeMs,
	"logging.level":            EnvLogLevel,
	"logging.format":           EnvLogFormat,
	"logging.source":           EnvLogSource,
	"logging.file":             EnvLogFile,
}

// EnvOverrideFor returns the env var name if the dotted key is overridden by the environment.
func EnvOverrideFor(key string) (string, bool) {
	name, ok := overrides[key]
	if !ok || os.Getenv(name) == "" {
		return "", false
	}
	return name, true
}

// OverrideKeys lists the dotted config keys that have an environment override, sorted.
func OverrideKeys() []string {
	keys := make([]string, 0, len(overrides))
	for k := range overrides {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Animation converts the display timings into renderer hints.
func (d DisplayConfig) Animation() view.Animation {
	return view.Animation{
		Stagger: time.Duration(max(d.CardStaggerMs, 0)) * time.Millisecond,
		Fade:    time.Duration(max(d.ModalFadeMs, 0)) * time.Millisecond,
	}
}

// TelemetryClientConfig builds the telemetry client settings from cfg and the keychain token.
func (c AppConfig) TelemetryClientConfig(token string) telemetry.Config {
	return telemetry.Config{
		OptIn:     c.General.TelemetryOptIn,
		EventsURL: c.Telemetry.EventsURL,
		CrashURL:  c.Telemetry.CrashURL,
		Token:     token,
		Timeout:   time.Duration(c.Telemetry.TimeoutMs) * time.Millisecond,
	}
}
