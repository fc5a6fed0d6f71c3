package state

import (
	"strings"

	"github.com/cfgsmith/cfgsmith/internal/schema"
)

// configHeader is the first line of every generated file.
const configHeader = "// Generated by cfgsmith"

// GenerateConfigFile emits the config text for the requested scope: the
// header comment, then one "command value" line per included setting whose
// command belongs to the scope, in schema-declared order. Output is
// deterministic; the same state always produces byte-identical text.
func (cs *ConfigState) GenerateConfigFile(scope schema.Scope) string {
	cs.mu.RLock()
	defer cs.mu.RUnlock()

	var b strings.Builder
	b.WriteString(configHeader)
	b.WriteByte('\n')

	for _, def := range cs.defs {
		if !def.Scope.Matches(scope) {
			continue
		}
		s := cs.settings[def.Command]
		if !s.Included {
			continue
		}
		b.WriteString(def.Command)
		b.WriteByte(' ')
		b.WriteString(def.Type.FormatConfig(s.Value))
		b.WriteByte('\n')
	}
	return b.String()
}
