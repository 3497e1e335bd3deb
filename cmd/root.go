package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/regform/internal/app"
	"github.com/zjrosen/regform/internal/config"
	"github.com/zjrosen/regform/internal/log"
	"github.com/zjrosen/regform/internal/submit"
	"github.com/zjrosen/regform/internal/tracing"
	"github.com/zjrosen/regform/internal/ui/styles"
	"github.com/zjrosen/regform/internal/watcher"
)

func init() {
	// Query the terminal background before Bubble Tea owns stdin so the
	// OSC 11 reply does not leak into the first text input.
	_ = lipgloss.HasDarkBackground()
}

const localConfigPath = ".regform/config.yaml"

var (
	version   = "dev"
	cfgFile   string
	cfg       config.Config
	configErr error
)

var rootCmd = &cobra.Command{
	Use:   "regform",
	Short: "A terminal registration form",
	Long: `A terminal registration form collecting name, department, registration
number, state of origin and age. Valid submissions are acknowledged with a
welcome notification and the form is cleared for the next person.`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: prepare,
	RunE:              runApp,
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&cfgFile, "config", "c", "",
		"config file (default: .regform/config.yaml or ~/.config/regform/config.yaml)")
	pf.Bool("debug", false, "log to a file and show the log panel")
	pf.String("log-file", "", "debug log path (default: debug.log)")
	pf.Duration("delay", 0, "simulated submission delay (default: 1s)")

	_ = viper.BindPFlag("debug", pf.Lookup("debug"))
	_ = viper.BindPFlag("log_file", pf.Lookup("log-file"))
	_ = viper.BindPFlag("submit.delay", pf.Lookup("delay"))

	rootCmd.AddCommand(submitCmd, statesCmd)
}

func initConfig() {
	userDir := ""
	if home, err := os.UserHomeDir(); err == nil {
		userDir = filepath.Join(home, ".config", "regform")
	}
	cfg, configErr = loadConfig(viper.GetViper(), cfgFile, localConfigPath, userDir)
}

// loadConfig reads configuration into v and decodes it.
//
// Lookup order: explicit file, then localPath, then config.yaml in userDir.
// When none exists a commented default is written to localPath. Environment
// variables prefixed REGFORM_ override file values (REGFORM_SUBMIT_DELAY).
func loadConfig(v *viper.Viper, explicit, localPath, userDir string) (config.Config, error) {
	defaults := config.Defaults()
	v.SetDefault("submit.delay", defaults.Submit.Delay)
	v.SetDefault("notification.duration", defaults.Notification.Duration)
	v.SetDefault("theme.accent", defaults.Theme.Accent)
	v.SetDefault("theme.error", defaults.Theme.Error)
	v.SetDefault("theme.success", defaults.Theme.Success)
	v.SetDefault("tracing.enabled", defaults.Tracing.Enabled)
	v.SetDefault("tracing.exporter", defaults.Tracing.Exporter)
	v.SetDefault("tracing.file_path", defaults.Tracing.FilePath)
	v.SetDefault("tracing.otlp_endpoint", defaults.Tracing.OTLPEndpoint)
	v.SetDefault("tracing.sample_rate", defaults.Tracing.SampleRate)
	v.SetDefault("tracing.service_name", defaults.Tracing.ServiceName)
	v.SetDefault("debug", defaults.Debug)
	v.SetDefault("log_file", defaults.LogFile)

	v.SetEnvPrefix("REGFORM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	switch {
	case explicit != "":
		v.SetConfigFile(explicit)
	case fileExists(localPath):
		v.SetConfigFile(localPath)
	default:
		if userDir != "" {
			v.AddConfigPath(userDir)
		}
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit != "" || !errors.As(err, &notFound) {
			return config.Config{}, fmt.Errorf("reading config: %w", err)
		}
		if writeErr := config.WriteDefaultConfig(localPath); writeErr == nil {
			v.SetConfigFile(localPath)
			_ = v.ReadInConfig()
		}
		// Without a writable directory the defaults still apply.
	}

	var c config.Config
	if err := v.Unmarshal(&c); err != nil {
		return config.Config{}, fmt.Errorf("decoding config: %w", err)
	}
	return c, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// prepare runs before every command: it surfaces config errors and applies
// the theme.
func prepare(_ *cobra.Command, _ []string) error {
	if configErr != nil {
		return configErr
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	styles.ApplyTheme(themeFrom(cfg))
	return nil
}

func themeFrom(c config.Config) styles.Theme {
	return styles.Theme{
		Accent:  c.Theme.Accent,
		Error:   c.Theme.Error,
		Success: c.Theme.Success,
	}
}

// reloader re-reads path for the running application. Only the settings
// in app.Settings change without a restart.
func reloader(path string) func() (app.Settings, error) {
	return func() (app.Settings, error) {
		c, err := loadConfig(viper.New(), path, "", "")
		if err != nil {
			return app.Settings{}, err
		}
		if err := c.Validate(); err != nil {
			return app.Settings{}, fmt.Errorf("invalid config: %w", err)
		}
		return app.Settings{
			NotificationDuration: c.Notification.Duration,
			Theme:                themeFrom(c),
		}, nil
	}
}

// watchConfig starts watching the config file in use. Failures only disable
// live reload.
func watchConfig() (<-chan struct{}, func()) {
	path := viper.ConfigFileUsed()
	if path == "" {
		return nil, func() {}
	}
	w, err := watcher.New(watcher.Config{Path: path})
	if err != nil {
		log.ErrorErr(log.CatConfig, "Config watcher unavailable", err)
		return nil, func() {}
	}
	changes, err := w.Start()
	if err != nil {
		log.ErrorErr(log.CatConfig, "Config watcher unavailable", err, "path", path)
		_ = w.Stop()
		return nil, func() {}
	}
	return changes, func() { _ = w.Stop() }
}

// newSubmitter builds the submission chain: tracing around logging around
// the simulated backend.
func newSubmitter(c config.Config, provider *tracing.Provider) submit.Submitter {
	var s submit.Submitter = submit.NewSimulated(c.Submit.Delay)
	s = submit.WithLogging(s)
	return submit.WithTracing(s, provider.Tracer())
}

func newTracing(c config.Config) (*tracing.Provider, func(), error) {
	tc := c.Tracing
	if tc.Enabled && tc.Exporter == "file" && tc.FilePath == "" {
		tc.FilePath = config.DefaultTracePath()
	}
	provider, err := tracing.NewProvider(tc)
	if err != nil {
		return nil, nil, fmt.Errorf("setting up tracing: %w", err)
	}
	shutdown := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := provider.Shutdown(ctx); err != nil {
			log.ErrorErr(log.CatTrace, "Tracer shutdown failed", err)
		}
	}
	return provider, shutdown, nil
}

func runApp(_ *cobra.Command, _ []string) error {
	closeLog := func() {}
	if cfg.Debug {
		var err error
		closeLog, err = log.InitWithTeaLog(cfg.LogFile, "regform")
		if err != nil {
			return fmt.Errorf("starting debug log: %w", err)
		}
		log.Info(log.CatConfig, "Starting regform", "version", version, "config", viper.ConfigFileUsed())
	}
	defer closeLog()

	provider, shutdown, err := newTracing(cfg)
	if err != nil {
		return err
	}
	defer shutdown()

	changes, stopWatching := watchConfig()
	defer stopWatching()

	zone.NewGlobal()

	model := app.New(app.Config{
		Submitter:            newSubmitter(cfg, provider),
		NotificationDuration: cfg.Notification.Duration,
		Debug:                cfg.Debug,
		ConfigChanges:        changes,
		Reload:               reloader(viper.ConfigFileUsed()),
	})
	p := tea.NewProgram(
		&model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err = p.Run()
	model.Close()

	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
