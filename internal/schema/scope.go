package schema

import (
	"fmt"
	"strings"
)

// Scope is a named partition of the schema used to filter generated config
// output. The names match the offline pipeline's splitting stage.
type Scope string

const (
	ScopePlayer        Scope = "player"
	ScopeServer        Scope = "server"
	ScopeShared        Scope = "shared"
	ScopeUncategorized Scope = "uncategorized"

	// ScopeAll matches every command regardless of partition.
	ScopeAll Scope = "all"
)

// Scopes lists the concrete partitions, excluding the "all" catch-all.
func Scopes() []Scope {
	return []Scope{ScopePlayer, ScopeServer, ScopeShared, ScopeUncategorized}
}

// ParseScope maps a user-supplied name to a Scope, accepting the concrete
// partitions plus "all".
func ParseScope(raw string) (Scope, error) {
	s := Scope(strings.ToLower(strings.TrimSpace(raw)))
	if s == ScopeAll {
		return s, nil
	}
	for _, known := range Scopes() {
		if s == known {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown scope %q (expected player, server, shared, uncategorized, or all)", raw)
}

// Matches reports whether a command in scope s should be included when
// filtering by want.
func (s Scope) Matches(want Scope) bool {
	return want == ScopeAll || s == want
}

// Prefix tables from the splitting rules; checked after console flags.
var (
	playerPrefixes = []string{
		"cl_", "ui_", "joy_", "cam_", "c_", "+", "snd_", "r_", "mat_",
		"demo_", "csm_", "sc_", "dsp_", "phys_", "rcon_", "net_", "mm_",
		"crash", "fog_", "key_",
	}
	serverPrefixes = []string{
		"sv_", "mp_", "bot_", "nav_", "ent_", "script_", "logaddress_",
		"rr_", "cast_", "navspace_", "markup_", "spawn_", "vis_",
		"telemetry_", "test_", "soundscape_", "scene_", "particle_",
		"shatterglass_", "create_", "debugoverlay_", "prop_", "g_",
		"ff_", "cash_", "contributionscore_", "tv_",
	}
	sharedPrefixes = []string{
		"ai_", "weapon_", "ragdoll_", "ik_", "skeleton_", "log_", "fs_", "host_",
	}

	playerCommands = map[string]struct{}{
		"bind": {}, "alias": {}, "exec": {}, "quit": {}, "disconnect": {},
		"connect": {}, "find": {}, "help": {}, "rcon": {}, "unbind": {},
		"unbindall": {}, "toggle": {}, "execifexists": {}, "incrementvar": {},
		"multvar": {}, "cyclevar": {}, "record": {}, "stop": {},
		"playdemo": {}, "timedemo": {}, "soundinfo": {}, "stopsound": {},
	}
	serverCommands = map[string]struct{}{
		"map": {}, "changelevel": {}, "kick": {}, "kickid": {},
		"kickid_hltv": {}, "pause": {}, "unpause": {}, "setpause": {},
	}
	sharedCommands = map[string]struct{}{
		"echo": {}, "echoln": {},
	}
)

// commandPrefix extracts the prefix used by the splitting tables.
func commandPrefix(name string) string {
	if strings.HasPrefix(name, "+") {
		return "+"
	}
	if i := strings.Index(name, "_"); i > 0 {
		return name[:i+1]
	}
	return ""
}

// CategorizeScope decides which partition a command belongs to. Console
// flags win over name prefixes, prefixes win over the literal command
// tables, and archived/user cvars fall back to the player partition.
func CategorizeScope(d CommandDefinition) Scope {
	isServer := d.Console.HasFlag("sv")
	isClient := d.Console.HasFlag("cl")
	isReplicated := d.Console.HasFlag("rep")

	switch {
	case isReplicated || (isServer && isClient):
		return ScopeShared
	case isServer:
		return ScopeServer
	case isClient:
		return ScopePlayer
	}

	prefix := commandPrefix(d.Command)
	switch {
	case containsString(playerPrefixes, prefix):
		return ScopePlayer
	case containsString(serverPrefixes, prefix):
		return ScopeServer
	case containsString(sharedPrefixes, prefix):
		return ScopeShared
	}

	if _, ok := playerCommands[d.Command]; ok {
		return ScopePlayer
	}
	if _, ok := serverCommands[d.Command]; ok {
		return ScopeServer
	}
	if _, ok := sharedCommands[d.Command]; ok {
		return ScopeShared
	}

	if d.Console.HasFlag("a") || d.Console.HasFlag("user") {
		return ScopePlayer
	}
	return ScopeUncategorized
}

func containsString(list []string, s string) bool {
	if s == "" {
		return false
	}
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
