package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"github.com/cfgsmith/cfgsmith/internal/logging"
	"github.com/cfgsmith/cfgsmith/internal/schema"
)

const filePerm = 0o644

// Config represents the complete configuration for cfgsmith.
type Config struct {
	// SchemaDir is the directory holding the per-scope command schema files
	// (player.json, server.json, ...).
	SchemaDir string `mapstructure:"schema_dir" toml:"schema_dir" json:"schema_dir"`

	Database DatabaseConfig `mapstructure:"database" toml:"database" json:"database"`
	Logging  LoggingConfig  `mapstructure:"logging" toml:"logging" json:"logging"`
	Generate GenerateConfig `mapstructure:"generate" toml:"generate" json:"generate"`
	Browse   BrowseConfig   `mapstructure:"browse" toml:"browse" json:"browse"`
}

// DatabaseConfig locates the profile database.
type DatabaseConfig struct {
	Path string `mapstructure:"path" toml:"path" json:"path"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level"`
	Format string `mapstructure:"format" toml:"format" json:"format"`
}

// GenerateConfig holds defaults for config generation.
type GenerateConfig struct {
	// DefaultScope is the scope used when none is passed on the command line.
	DefaultScope string `mapstructure:"default_scope" toml:"default_scope" json:"default_scope"`
}

// BrowseConfig tunes the interactive browser.
type BrowseConfig struct {
	ShowDescriptions bool `mapstructure:"show_descriptions" toml:"show_descriptions" json:"show_descriptions"`
	PageSize         int  `mapstructure:"page_size" toml:"page_size" json:"page_size"`
}

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config         *Config
	viper          *viper.Viper
	mu             sync.RWMutex
	callbacks      []func(*Config)
	watching       bool
	skipNextReload bool
}

// NewManager creates a new configuration manager.
func NewManager() (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w", err)
	}
	v.AddConfigPath(configDir)
	v.AddConfigPath(".") // Current directory for development

	v.SetEnvPrefix("CFGSMITH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	m := &Manager{viper: v}
	m.setDefaults()

	return m, nil
}

// Load reads the configuration, creating a default config file on first
// run, and validates the result.
func (m *Manager) Load() (*Config, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := m.writeDefaultConfig(); err != nil {
			return nil, err
		}
		// Re-read now that the default file exists.
		if err := m.viper.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read created config: %w", err)
		}
	}

	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if config.Database.Path == "" {
		dbPath, err := GetDatabaseFile()
		if err != nil {
			return nil, fmt.Errorf("failed to get database path: %w", err)
		}
		config.Database.Path = dbPath
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	m.config = config
	return config, nil
}

// Get returns the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config
}

// Save writes the current configuration back to disk in ordered form.
func (m *Manager) Save() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	path, err := GetConfigFile()
	if err != nil {
		return fmt.Errorf("failed to get config file path: %w", err)
	}

	// Our own write should not trigger a reload cycle.
	if m.watching {
		m.skipNextReload = true
	}
	return WriteConfigOrdered(m.config, path)
}

// writeDefaultConfig creates the config directory, writes the default
// config file, and generates the JSON schema next to it.
func (m *Manager) writeDefaultConfig() error {
	const dirPerm = 0o750

	configDir, err := GetConfigDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(configDir, dirPerm); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	path, err := GetConfigFile()
	if err != nil {
		return err
	}
	if err := WriteConfigOrdered(DefaultConfig(), path); err != nil {
		return fmt.Errorf("failed to write default config: %w", err)
	}

	log := logging.NewFromEnv()
	log.Info().Str("path", path).Msg("created default config")

	if err := GenerateSchemaFile(); err != nil {
		log.Warn().Err(err).Msg("failed to generate config schema")
	}
	return nil
}

// DefaultScope returns the generate scope as a schema.Scope, falling back
// to "all" for anything unset.
func (c *Config) DefaultScope() schema.Scope {
	if c.Generate.DefaultScope == "" {
		return schema.ScopeAll
	}
	return schema.Scope(c.Generate.DefaultScope)
}
