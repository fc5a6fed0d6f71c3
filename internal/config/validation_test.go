package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfigDefaults(t *testing.T) {
	require.NoError(t, validateConfig(DefaultConfig()))
}

func TestValidateLogging(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = "verbose"
	err := validateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.level")

	cfg = DefaultConfig()
	cfg.Logging.Format = "xml"
	err = validateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.format")
}

func TestValidateGenerateScope(t *testing.T) {
	cfg := DefaultConfig()
	for _, scope := range []string{"all", "player", "server", "shared", "uncategorized"} {
		cfg.Generate.DefaultScope = scope
		require.NoError(t, validateConfig(cfg), scope)
	}

	cfg.Generate.DefaultScope = "everything"
	err := validateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "generate.default_scope")
}

func TestValidateBrowse(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Browse.PageSize = 0
	err := validateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "browse.page_size")
}

func TestValidateCollectsAllErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = "bad"
	cfg.Generate.DefaultScope = "bad"
	cfg.Browse.PageSize = -1

	err := validateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.level")
	assert.Contains(t, err.Error(), "generate.default_scope")
	assert.Contains(t, err.Error(), "browse.page_size")
}
