// Package config provides configuration types and defaults for regform.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/zjrosen/regform/internal/log"
	"github.com/zjrosen/regform/internal/submit"
	"github.com/zjrosen/regform/internal/tracing"
)

// Config holds all configuration options for regform.
type Config struct {
	Submit       SubmitConfig       `mapstructure:"submit"`
	Notification NotificationConfig `mapstructure:"notification"`
	Theme        ThemeConfig        `mapstructure:"theme"`
	Tracing      tracing.Config     `mapstructure:"tracing"`
	Debug        bool               `mapstructure:"debug"`
	LogFile      string             `mapstructure:"log_file"`
}

// SubmitConfig controls the submission placeholder.
type SubmitConfig struct {
	// Delay is how long the simulated submission takes.
	Delay time.Duration `mapstructure:"delay"`
}

// NotificationConfig controls toast notifications.
type NotificationConfig struct {
	// Duration is how long a notification stays on screen.
	Duration time.Duration `mapstructure:"duration"`
}

// ThemeConfig overrides individual colors. Empty values keep the defaults.
type ThemeConfig struct {
	Accent  string `mapstructure:"accent"`
	Error   string `mapstructure:"error"`
	Success string `mapstructure:"success"`
}

// Defaults returns the configuration used when no file sets a value.
func Defaults() Config {
	return Config{
		Submit:       SubmitConfig{Delay: submit.DefaultDelay},
		Notification: NotificationConfig{Duration: 4 * time.Second},
		Tracing:      tracing.DefaultConfig(),
		LogFile:      "debug.log",
	}
}

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Validate rejects values the application cannot run with.
func (c Config) Validate() error {
	if c.Submit.Delay < 0 {
		return fmt.Errorf("submit.delay must not be negative, got %s", c.Submit.Delay)
	}
	if c.Notification.Duration <= 0 {
		return fmt.Errorf("notification.duration must be positive, got %s", c.Notification.Duration)
	}
	for _, tc := range []struct{ name, color string }{
		{"theme.accent", c.Theme.Accent},
		{"theme.error", c.Theme.Error},
		{"theme.success", c.Theme.Success},
	} {
		if tc.color != "" && !hexColor.MatchString(tc.color) {
			return fmt.Errorf("%s: %q is not a hex color", tc.name, tc.color)
		}
	}
	if c.Tracing.SampleRate < 0 || c.Tracing.SampleRate > 1 {
		return fmt.Errorf("tracing.sample_rate must be within [0, 1], got %v", c.Tracing.SampleRate)
	}
	return nil
}

// DefaultTracePath returns the trace file used when tracing.file_path is unset.
func DefaultTracePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".regform", "traces", "traces.jsonl")
	}
	return filepath.Join(home, ".config", "regform", "traces", "traces.jsonl")
}

// DefaultConfigTemplate returns the commented YAML written on first run.
func DefaultConfigTemplate() string {
	return `# regform configuration

# Submission placeholder: how long the simulated network call takes
submit:
  delay: 1s

# How long the success notification stays on screen
notification:
  duration: 4s

# Color overrides (hex). Leave empty to keep the defaults.
theme:
  accent: ""
  error: ""
  success: ""

# OpenTelemetry tracing of submissions
tracing:
  enabled: false
  exporter: file          # none | file | stdout | otlp
  # file_path: ~/.config/regform/traces/traces.jsonl
  otlp_endpoint: localhost:4317
  sample_rate: 1.0

# Debug logging (same as --debug)
debug: false
log_file: debug.log
`
}

// WriteDefaultConfig writes the default template to configPath.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Wrote default config", "path", configPath)
	return nil
}
