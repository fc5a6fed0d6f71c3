// Package cli provides the cfgsmith command-line interface.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/cfgsmith/cfgsmith/internal/config"
	"github.com/cfgsmith/cfgsmith/internal/logging"
	"github.com/cfgsmith/cfgsmith/internal/schema/loader"
	"github.com/cfgsmith/cfgsmith/internal/state"
	"github.com/cfgsmith/cfgsmith/internal/store"
)

// BuildInfo carries version details set via ldflags.
type BuildInfo struct {
	Version   string
	Commit    string
	BuildDate string
}

// App wires the configuration, logging, schema, and engine together for
// the CLI commands.
type App struct {
	BuildInfo BuildInfo

	Manager *config.Manager
	Config  *config.Config
	Log     zerolog.Logger

	engine *state.ConfigState
	db     *store.Store
}

// NewApp loads configuration and logging. Schema and database are opened
// lazily by the commands that need them.
func NewApp() (*App, error) {
	manager, err := config.NewManager()
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}

	cfg, err := manager.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	// Env vars win over the config file for log settings.
	log := logging.NewFromConfigValues(cfg.Logging.Level, cfg.Logging.Format)
	if os.Getenv("CFGSMITH_LOG_LEVEL") != "" || os.Getenv("CFGSMITH_LOG_FORMAT") != "" {
		log = logging.NewFromEnv()
	}

	return &App{
		Manager: manager,
		Config:  cfg,
		Log:     log,
	}, nil
}

// Context returns a context carrying the app logger.
func (a *App) Context() context.Context {
	return logging.WithContext(context.Background(), a.Log)
}

// Engine loads the schema from the configured directory (or the --schema-dir
// override) and constructs the config-state engine. The result is cached
// for the lifetime of the process.
func (a *App) Engine(schemaDir string) (*state.ConfigState, error) {
	if a.engine != nil {
		return a.engine, nil
	}

	dir := schemaDir
	if dir == "" {
		dir = a.Config.SchemaDir
	}
	if dir == "" {
		return nil, fmt.Errorf("no schema directory configured: set schema_dir in the config file or pass --schema-dir")
	}

	defs, err := loader.LoadDir(a.Context(), dir)
	if err != nil {
		return nil, err
	}

	a.engine = state.New(defs, state.WithLogger(a.Log))
	return a.engine, nil
}

// Store opens the profile database on first use.
func (a *App) Store() (*store.Store, error) {
	if a.db != nil {
		return a.db, nil
	}

	db, err := store.Open(a.Context(), a.Config.Database.Path)
	if err != nil {
		return nil, err
	}
	a.db = db
	return db, nil
}

// Close releases held resources.
func (a *App) Close() error {
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}
