package loader

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cfgsmith/cfgsmith/internal/schema"
)

const playerSchema = `[
  {
    "command": "sensitivity",
    "consoleData": {"defaultValue": "2.5", "flags": ["a"], "description": "Mouse sensitivity"},
    "typeDescriptor": {"type": "float", "range": {"min": 0.0001, "max": 8}}
  },
  {
    "command": "cl_crosshairstyle",
    "consoleData": {"defaultValue": "4", "flags": ["a", "cl"], "description": "Crosshair style"},
    "typeDescriptor": {"type": "int", "range": {"min": 0, "max": 5}}
  }
]`

const serverSchema = `[
  {
    "command": "sv_cheats",
    "consoleData": {"defaultValue": "false", "flags": ["sv", "rep"], "description": "Allow cheats"},
    "typeDescriptor": {"type": "bool", "default": false}
  }
]`

func writeSchema(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	writeSchema(t, dir, "player.json", playerSchema)

	defs, err := LoadFile(filepath.Join(dir, "player.json"), schema.ScopePlayer)
	require.NoError(t, err)
	require.Len(t, defs, 2)

	assert.Equal(t, "sensitivity", defs[0].Command)
	assert.Equal(t, schema.ScopePlayer, defs[0].Scope)
	assert.Equal(t, schema.KindFloat, defs[0].Type.Kind())
	assert.Equal(t, schema.KindInt, defs[1].Type.Kind())
}

func TestLoadFileRejectsCorruptSchema(t *testing.T) {
	dir := t.TempDir()
	writeSchema(t, dir, "player.json", `[{"command": "x", "typeDescriptor": {"type": "enum"}}]`)

	_, err := LoadFile(filepath.Join(dir, "player.json"), schema.ScopePlayer)
	require.Error(t, err)
	assert.True(t, schema.IsDecodeError(err))
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	writeSchema(t, dir, "player.json", playerSchema)
	writeSchema(t, dir, "server.json", serverSchema)

	defs, err := LoadDir(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, defs, 3)

	// Partitions concatenate in fixed scope order: player before server.
	assert.Equal(t, "sensitivity", defs[0].Command)
	assert.Equal(t, "cl_crosshairstyle", defs[1].Command)
	assert.Equal(t, "sv_cheats", defs[2].Command)
	assert.Equal(t, schema.ScopeServer, defs[2].Scope)
}

func TestLoadDirSkipsMissingPartitions(t *testing.T) {
	dir := t.TempDir()
	writeSchema(t, dir, "server.json", serverSchema)

	defs, err := LoadDir(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, defs, 1)
	assert.Equal(t, "sv_cheats", defs[0].Command)
}

func TestLoadDirEmpty(t *testing.T) {
	_, err := LoadDir(context.Background(), t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no schema files")
}
