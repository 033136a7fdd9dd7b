package core

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/inovacc/countries/internal/model"
	"gopkg.in/ini.v1"
)

// LoadConfig reads the ini file at path on top of the defaults.
// A missing file is not an error; the defaults are returned.
func LoadConfig(path string) (model.Config, error) {
	cfg := model.DefaultConfig()

	if path == "" {
		return cfg, nil
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}

		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	file, err := ini.Load(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := file.Section("api").MapTo(&cfg.API); err != nil {
		return cfg, fmt.Errorf("invalid [api] section: %w", err)
	}

	if err := file.Section("display").MapTo(&cfg.Display); err != nil {
		return cfg, fmt.Errorf("invalid [display] section: %w", err)
	}

	if err := file.Section("log").MapTo(&cfg.Log); err != nil {
		return cfg, fmt.Errorf("invalid [log] section: %w", err)
	}

	return cfg, nil
}

// SaveConfig writes cfg as an ini file, creating parent directories.
func SaveConfig(path string, cfg model.Config) error {
	file := ini.Empty()

	api := file.Section("api")
	_, _ = api.NewKey("url", cfg.API.URL)
	_, _ = api.NewKey("timeout", cfg.API.Timeout.String())

	display := file.Section("display")
	_, _ = display.NewKey("locale", cfg.Display.Locale)
	_, _ = display.NewKey("native_lang", cfg.Display.NativeLang)

	log := file.Section("log")
	_, _ = log.NewKey("file", cfg.Log.File)
	_, _ = log.NewKey("verbose", fmt.Sprint(cfg.Log.Verbose))

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := file.SaveTo(path); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}

	return nil
}

// ShowConfig displays the given configuration
func ShowConfig(w io.Writer, path string, cfg model.Config) {
	timeout := cfg.API.Timeout.String()
	if cfg.API.Timeout == 0 {
		timeout = "none"
	}

	logFile := cfg.Log.File
	if logFile == "" {
		logFile = "(disabled)"
	}

	_, _ = fmt.Fprintln(w, "Current Configuration:")
	_, _ = fmt.Fprintln(w, "=====================")
	_, _ = fmt.Fprintf(w, "Config File:       %s\n", path)
	_, _ = fmt.Fprintf(w, "API URL:           %s\n", cfg.API.URL)
	_, _ = fmt.Fprintf(w, "Request Timeout:   %s\n", timeout)
	_, _ = fmt.Fprintf(w, "Locale:            %s\n", cfg.Display.Locale)
	_, _ = fmt.Fprintf(w, "Native Name Lang:  %s\n", cfg.Display.NativeLang)
	_, _ = fmt.Fprintf(w, "Log File:          %s\n", logFile)
	_, _ = fmt.Fprintf(w, "Verbose:           %t\n", cfg.Log.Verbose)
}
