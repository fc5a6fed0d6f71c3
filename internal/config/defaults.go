package config

// Default configuration constants
const (
	defaultLogLevel  = "info"
	defaultLogFormat = "console"

	defaultGenerateScope = "all"

	defaultBrowsePageSize = 20
)

// DefaultConfig returns the configuration used on first run.
func DefaultConfig() *Config {
	return &Config{
		SchemaDir: "",
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Generate: GenerateConfig{
			DefaultScope: defaultGenerateScope,
		},
		Browse: BrowseConfig{
			ShowDescriptions: true,
			PageSize:         defaultBrowsePageSize,
		},
	}
}

// setDefaults registers defaults on the viper instance so env overrides
// work even for keys absent from the config file.
func (m *Manager) setDefaults() {
	m.viper.SetDefault("schema_dir", "")
	m.viper.SetDefault("database.path", "")
	m.viper.SetDefault("logging.level", defaultLogLevel)
	m.viper.SetDefault("logging.format", defaultLogFormat)
	m.viper.SetDefault("generate.default_scope", defaultGenerateScope)
	m.viper.SetDefault("browse.show_descriptions", true)
	m.viper.SetDefault("browse.page_size", defaultBrowsePageSize)
}
