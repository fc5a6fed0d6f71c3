package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// devEnv routes all XDG paths into a throwaway working directory.
func devEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("ENV", "dev")
	return dir
}

func TestXDGDirsDevMode(t *testing.T) {
	dir := devEnv(t)

	dirs, err := GetXDGDirs()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ".dev", "cfgsmith"), dirs.ConfigHome)
	assert.Equal(t, dirs.ConfigHome, dirs.DataHome)
}

func TestManagerLoadCreatesDefaultConfig(t *testing.T) {
	dir := devEnv(t)

	m, err := NewManager()
	require.NoError(t, err)

	cfg, err := m.Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "all", cfg.Generate.DefaultScope)
	assert.NotEmpty(t, cfg.Database.Path)

	// First run leaves a config file behind.
	_, err = os.Stat(filepath.Join(dir, ".dev", "cfgsmith", "config.toml"))
	require.NoError(t, err)

	assert.Same(t, cfg, m.Get())
}

func TestManagerLoadReadsExistingConfig(t *testing.T) {
	dir := devEnv(t)

	cfgDir := filepath.Join(dir, ".dev", "cfgsmith")
	require.NoError(t, os.MkdirAll(cfgDir, 0o750))
	content := "schema_dir = \"/srv/schema\"\n\n[logging]\nlevel = \"debug\"\nformat = \"json\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(cfgDir, "config.toml"), []byte(content), 0o600))

	m, err := NewManager()
	require.NoError(t, err)

	cfg, err := m.Load()
	require.NoError(t, err)
	assert.Equal(t, "/srv/schema", cfg.SchemaDir)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)

	// Unset keys fall back to defaults.
	assert.Equal(t, "all", cfg.Generate.DefaultScope)
	assert.Equal(t, defaultBrowsePageSize, cfg.Browse.PageSize)
}

func TestManagerLoadRejectsInvalidConfig(t *testing.T) {
	dir := devEnv(t)

	cfgDir := filepath.Join(dir, ".dev", "cfgsmith")
	require.NoError(t, os.MkdirAll(cfgDir, 0o750))
	content := "[logging]\nlevel = \"shouty\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(cfgDir, "config.toml"), []byte(content), 0o600))

	m, err := NewManager()
	require.NoError(t, err)

	_, err = m.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.level")
}

func TestDefaultScope(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "all", string(cfg.DefaultScope()))

	cfg.Generate.DefaultScope = "player"
	assert.Equal(t, "player", string(cfg.DefaultScope()))

	cfg.Generate.DefaultScope = ""
	assert.Equal(t, "all", string(cfg.DefaultScope()))
}
