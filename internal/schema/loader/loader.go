// Package loader reads command-definition schema files produced by the
// offline pipeline and binds each command to the scope of the file it came
// from.
package loader

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/cfgsmith/cfgsmith/internal/logging"
	"github.com/cfgsmith/cfgsmith/internal/schema"
	"github.com/cfgsmith/cfgsmith/internal/state"
)

// scopeFile returns the conventional file name for a scope partition.
func scopeFile(s schema.Scope) string {
	return string(s) + ".json"
}

// LoadFile decodes one schema file into scoped definitions. Any decode
// failure is fatal; a corrupt schema file cannot be partially trusted.
func LoadFile(path string, scope schema.Scope) ([]state.Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema %s: %w", path, err)
	}

	var cmds []schema.CommandDefinition
	if err := json.Unmarshal(data, &cmds); err != nil {
		return nil, fmt.Errorf("decode schema %s: %w", path, err)
	}

	defs := make([]state.Definition, 0, len(cmds))
	for _, c := range cmds {
		defs = append(defs, state.Definition{CommandDefinition: c, Scope: scope})
	}
	return defs, nil
}

// LoadDir loads every scope partition present in dir, fanning the file
// reads out concurrently. The result is deterministic regardless of
// completion order: partitions concatenate in the fixed scope order, and
// each file's array order is the schema-declared command order. Missing
// partition files are skipped; at least one must exist.
func LoadDir(ctx context.Context, dir string) ([]state.Definition, error) {
	log := logging.FromContext(ctx)

	scopes := schema.Scopes()
	byScope := make([][]state.Definition, len(scopes))
	g, _ := errgroup.WithContext(ctx)

	for i, scope := range scopes {
		path := filepath.Join(dir, scopeFile(scope))
		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}
		g.Go(func() error {
			defs, err := LoadFile(path, scope)
			if err != nil {
				return err
			}
			byScope[i] = defs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var defs []state.Definition
	for _, scoped := range byScope {
		defs = append(defs, scoped...)
	}
	if len(defs) == 0 {
		return nil, fmt.Errorf("no schema files found in %s", dir)
	}

	log.Debug().Int("commands", len(defs)).Str("dir", dir).Msg("schema loaded")
	return defs, nil
}
