package model

import (
	"time"
)

// APIConfig configures how the REST Countries API is reached.
type APIConfig struct {
	// URL is the API root, e.g. "https://restcountries.com/v3.1"
	URL string `ini:"url"`

	// Timeout bounds each request; zero waits indefinitely
	Timeout time.Duration `ini:"timeout"`
}

// DisplayConfig controls how values are presented.
type DisplayConfig struct {
	// Locale is a BCP 47 tag used for number grouping (e.g. "en", "id")
	Locale string `ini:"locale"`

	// NativeLang is the language code of the native name shown in details
	NativeLang string `ini:"native_lang"`
}

// LogConfig controls diagnostic output.
type LogConfig struct {
	// File receives log output; empty keeps the interactive UI silent
	File string `ini:"file"`

	// Verbose enables debug level logging
	Verbose bool `ini:"verbose"`
}

// Config holds the application configuration
type Config struct {
	API     APIConfig
	Display DisplayConfig
	Log     LogConfig
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() Config {
	return Config{
		API: APIConfig{
			URL:     "https://restcountries.com/v3.1",
			Timeout: 0, // wait for the API as long as it takes
		},
		Display: DisplayConfig{
			Locale:     "en",
			NativeLang: "ind",
		},
	}
}
