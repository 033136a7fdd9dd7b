package core

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/inovacc/countries/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_MissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.ini"))
	require.NoError(t, err)
	assert.Equal(t, model.DefaultConfig(), cfg)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, model.DefaultConfig(), cfg)
}

func TestLoadConfig_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.ini")
	data := `[api]
url = http://localhost:8080/v3.1
timeout = 15s

[display]
locale = id
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080/v3.1", cfg.API.URL)
	assert.Equal(t, 15*time.Second, cfg.API.Timeout)
	assert.Equal(t, "id", cfg.Display.Locale)

	// keys not in the file keep their defaults
	assert.Equal(t, "ind", cfg.Display.NativeLang)
	assert.Empty(t, cfg.Log.File)
}

func TestLoadConfig_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.ini")
	require.NoError(t, os.WriteFile(path, []byte("[api\nurl"), 0o600))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.ini")

	want := model.DefaultConfig()
	want.API.Timeout = 30 * time.Second
	want.Display.Locale = "de"
	want.Log.File = "/tmp/countries.log"
	want.Log.Verbose = true

	require.NoError(t, SaveConfig(path, want))

	got, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestShowConfig(t *testing.T) {
	var buf bytes.Buffer

	ShowConfig(&buf, "/etc/countries.ini", model.DefaultConfig())

	out := buf.String()
	assert.Contains(t, out, "/etc/countries.ini")
	assert.Contains(t, out, "https://restcountries.com/v3.1")
	assert.Contains(t, out, "Request Timeout:   none")
	assert.Contains(t, out, "(disabled)")
}
