package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defWithFlags(name string, flags ...string) CommandDefinition {
	return CommandDefinition{
		Command: name,
		Console: ConsoleData{Flags: flags},
		Type:    &UnknownDescriptor{},
	}
}

func TestParseScope(t *testing.T) {
	for _, in := range []string{"player", "Server", " SHARED ", "uncategorized", "all"} {
		_, err := ParseScope(in)
		require.NoError(t, err, in)
	}

	got, err := ParseScope("Player")
	require.NoError(t, err)
	assert.Equal(t, ScopePlayer, got)

	_, err = ParseScope("global")
	require.Error(t, err)
}

func TestScopeMatches(t *testing.T) {
	assert.True(t, ScopePlayer.Matches(ScopeAll))
	assert.True(t, ScopePlayer.Matches(ScopePlayer))
	assert.False(t, ScopePlayer.Matches(ScopeServer))
	assert.True(t, ScopeUncategorized.Matches(ScopeAll))
}

func TestCategorizeScopeFlags(t *testing.T) {
	// Flags win over name prefixes.
	assert.Equal(t, ScopeShared, CategorizeScope(defWithFlags("cl_upspeed", "rep")))
	assert.Equal(t, ScopeShared, CategorizeScope(defWithFlags("anything", "sv", "cl")))
	assert.Equal(t, ScopeServer, CategorizeScope(defWithFlags("cl_oddly_named", "sv")))
	assert.Equal(t, ScopePlayer, CategorizeScope(defWithFlags("sv_oddly_named", "cl")))
}

func TestCategorizeScopePrefixes(t *testing.T) {
	tests := []struct {
		command string
		want    Scope
	}{
		{"cl_crosshairsize", ScopePlayer},
		{"+forward", ScopePlayer},
		{"snd_musicvolume", ScopePlayer},
		{"sv_cheats", ScopeServer},
		{"mp_roundtime", ScopeServer},
		{"bot_quota", ScopeServer},
		{"weapon_accuracy_nospread", ScopeShared},
		{"host_timescale", ScopeShared},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CategorizeScope(defWithFlags(tt.command)), tt.command)
	}
}

func TestCategorizeScopeLiteralCommands(t *testing.T) {
	assert.Equal(t, ScopePlayer, CategorizeScope(defWithFlags("bind")))
	assert.Equal(t, ScopePlayer, CategorizeScope(defWithFlags("exec")))
	assert.Equal(t, ScopeServer, CategorizeScope(defWithFlags("changelevel")))
	assert.Equal(t, ScopeShared, CategorizeScope(defWithFlags("echo")))
}

func TestCategorizeScopeFallbacks(t *testing.T) {
	// Archived or per-user cvars default to the player partition.
	assert.Equal(t, ScopePlayer, CategorizeScope(defWithFlags("volume", "a")))
	assert.Equal(t, ScopePlayer, CategorizeScope(defWithFlags("name", "user")))

	assert.Equal(t, ScopeUncategorized, CategorizeScope(defWithFlags("mysterycmd")))
}
