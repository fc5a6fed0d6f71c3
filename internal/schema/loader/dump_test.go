package loader

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cfgsmith/cfgsmith/internal/schema"
)

func TestParseConsoleDump(t *testing.T) {
	dump := strings.Join([]string{
		"Some preamble the console prints",
		"[Console] sensitivity : 2.5 : a, user : Mouse sensitivity",
		"[Console] sv_cheats : false : sv, rep, cheat : Allow cheats on server",
		"[Console] exec : cmd : : Execute a cfg file",
		"[Console] r_drawtracers : true : cl :",
		"[Console] spec_show_xray : 1 : a, cl : Bitmask of xray layers",
		"not a console line",
	}, "\n")

	sourced := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	defs, err := ParseConsoleDump(strings.NewReader(dump), sourced)
	require.NoError(t, err)
	require.Len(t, defs, 5)

	byName := make(map[string]int)
	for i, d := range defs {
		byName[d.Command] = i
	}

	sens := defs[byName["sensitivity"]]
	assert.Equal(t, schema.KindFloat, sens.Type.Kind())
	assert.Equal(t, schema.ScopePlayer, sens.Scope)
	require.NotNil(t, sens.Console.DefaultValue)
	assert.Equal(t, "2.5", *sens.Console.DefaultValue)
	assert.Equal(t, []string{"a", "user"}, sens.Console.Flags)
	assert.Equal(t, "Mouse sensitivity", sens.Console.Description)
	assert.Equal(t, sourced, sens.Console.SourcedAt)

	cheats := defs[byName["sv_cheats"]]
	assert.Equal(t, schema.KindBool, cheats.Type.Kind())
	// sv and rep flags put it in the shared partition.
	assert.Equal(t, schema.ScopeShared, cheats.Scope)

	// "cmd" in the default column means no value at all.
	exec := defs[byName["exec"]]
	assert.Nil(t, exec.Console.DefaultValue)
	assert.Equal(t, schema.KindAction, exec.Type.Kind())
	assert.Equal(t, schema.ScopePlayer, exec.Scope)

	tracers := defs[byName["r_drawtracers"]]
	assert.Equal(t, schema.KindBool, tracers.Type.Kind())
	assert.Equal(t, "", tracers.Console.Description)

	xray := defs[byName["spec_show_xray"]]
	assert.Equal(t, schema.KindBitmask, xray.Type.Kind())
}

func TestParseConsoleDumpDeduplicates(t *testing.T) {
	dump := strings.Join([]string{
		"[Console] volume : 1.0 : a : Game volume",
		"[Console] volume : 0.5 : a : Game volume again",
	}, "\n")

	defs, err := ParseConsoleDump(strings.NewReader(dump), time.Now())
	require.NoError(t, err)
	require.Len(t, defs, 1)
	assert.Equal(t, "1.0", *defs[0].Console.DefaultValue)
}

func TestParseConsoleDumpEmpty(t *testing.T) {
	defs, err := ParseConsoleDump(strings.NewReader("nothing here\n"), time.Now())
	require.NoError(t, err)
	assert.Empty(t, defs)
}
