package application

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigFilePath(t *testing.T) {
	base := t.TempDir()

	t.Setenv(ConfigDirEnv, "")
	userConfigDir = func() (string, error) { return base, nil }
	t.Cleanup(func() { userConfigDir = osUserConfigDir })

	got, err := ConfigFilePath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "countries", "config.ini"), got)
}

func TestConfigDir_EnvOverride(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "custom")
	t.Setenv(ConfigDirEnv, dir+string(filepath.Separator))

	got, err := ConfigDir()
	require.NoError(t, err)
	assert.Equal(t, dir, got)
}

func TestConfigDir_NoHome(t *testing.T) {
	t.Setenv(ConfigDirEnv, "")
	userConfigDir = func() (string, error) { return "", errors.New("$HOME is not defined") }
	t.Cleanup(func() { userConfigDir = osUserConfigDir })

	_, err := ConfigFilePath()
	assert.ErrorContains(t, err, "failed to get config directory")
}
