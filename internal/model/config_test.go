package model

import (
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.API.URL != "https://restcountries.com/v3.1" {
		t.Errorf("API.URL = %q, want %q", cfg.API.URL, "https://restcountries.com/v3.1")
	}

	// No request timeout unless configured
	if cfg.API.Timeout != 0 {
		t.Errorf("API.Timeout = %v, want 0", cfg.API.Timeout)
	}

	if cfg.Display.Locale != "en" {
		t.Errorf("Display.Locale = %q, want %q", cfg.Display.Locale, "en")
	}

	if cfg.Display.NativeLang != "ind" {
		t.Errorf("Display.NativeLang = %q, want %q", cfg.Display.NativeLang, "ind")
	}

	if cfg.Log.File != "" || cfg.Log.Verbose {
		t.Errorf("Log = %+v, want zero value", cfg.Log)
	}
}
