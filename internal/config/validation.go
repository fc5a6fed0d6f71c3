package config

import (
	"fmt"
	"strings"

	"github.com/cfgsmith/cfgsmith/internal/schema"
)

// validateConfig performs validation of configuration values.
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateGenerate(config)...)
	validationErrors = append(validationErrors, validateBrowse(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string

	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level must be one of trace, debug, info, warn, error (got %q)", config.Logging.Level))
	}

	switch config.Logging.Format {
	case "console", "json":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.format must be console or json (got %q)", config.Logging.Format))
	}
	return validationErrors
}

func validateGenerate(config *Config) []string {
	var validationErrors []string

	scope := schema.Scope(config.Generate.DefaultScope)
	if scope != schema.ScopeAll {
		valid := false
		for _, s := range schema.Scopes() {
			if scope == s {
				valid = true
				break
			}
		}
		if !valid {
			validationErrors = append(validationErrors,
				fmt.Sprintf("generate.default_scope must be a known scope (got %q)", config.Generate.DefaultScope))
		}
	}
	return validationErrors
}

func validateBrowse(config *Config) []string {
	var validationErrors []string

	if config.Browse.PageSize < 1 {
		validationErrors = append(validationErrors, "browse.page_size must be at least 1")
	}
	return validationErrors
}
