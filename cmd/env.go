package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/inovacc/countries/internal/application"
	"github.com/inovacc/countries/internal/core"
	"github.com/inovacc/countries/internal/model"
	"github.com/inovacc/countries/internal/render"
	"github.com/spf13/cobra"
)

// settings is the effective configuration of one command run.
type settings struct {
	path   string
	config model.Config
}

// loadSettings reads the config file and applies the global flags the
// user set explicitly on top of it.
func loadSettings(cmd *cobra.Command) (settings, error) {
	path := cfgFile
	if path == "" {
		p, err := application.ConfigFilePath()
		if err != nil {
			return settings{}, err
		}

		path = p
	}

	cfg, err := core.LoadConfig(path)
	if err != nil {
		return settings{}, err
	}

	flags := cmd.Flags()

	if flags.Changed("api-url") {
		cfg.API.URL = apiURL
	}

	if flags.Changed("timeout") {
		if timeout < 0 {
			return settings{}, fmt.Errorf("timeout must not be negative, got %s", timeout)
		}

		cfg.API.Timeout = timeout
	}

	if flags.Changed("locale") {
		cfg.Display.Locale = locale
	}

	if flags.Changed("native-lang") {
		cfg.Display.NativeLang = nativeLang
	}

	if flags.Changed("log-file") {
		cfg.Log.File = logFile
	}

	if flags.Changed("verbose") {
		cfg.Log.Verbose = verbose
	}

	return settings{path: path, config: cfg}, nil
}

// environment bundles what a command needs to fetch and render countries.
type environment struct {
	settings
	logger    *slog.Logger
	formatter render.Formatter
	source    core.CountrySource
	closeLog  func() error
}

func (e environment) close() {
	if e.closeLog != nil {
		_ = e.closeLog()
	}
}

// setup prepares logging and the API client. Interactive runs own the
// terminal, so their logs go to the configured file or nowhere.
func setup(cmd *cobra.Command, interactive bool) (environment, error) {
	s, err := loadSettings(cmd)
	if err != nil {
		return environment{}, err
	}

	out, closeLog, err := logOutput(cmd.ErrOrStderr(), s.config.Log.File, interactive)
	if err != nil {
		return environment{}, err
	}

	logger := newLogger(out, s.config.Log.Verbose)

	client, err := core.NewClient(s.config, logger)
	if err != nil {
		_ = closeLog()
		return environment{}, err
	}

	logger.Debug("configuration loaded",
		slog.String("path", s.path),
		slog.String("api_url", client.BaseURL()),
		slog.String("locale", s.config.Display.Locale),
	)

	return environment{
		settings:  s,
		logger:    logger,
		formatter: render.NewFormatter(s.config.Display.Locale, s.config.Display.NativeLang),
		source:    client,
		closeLog:  closeLog,
	}, nil
}

func logOutput(stderr io.Writer, file string, interactive bool) (io.Writer, func() error, error) {
	noop := func() error { return nil }

	if file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}

		return f, f.Close, nil
	}

	if interactive {
		return io.Discard, noop, nil
	}

	return stderr, noop, nil
}

func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
