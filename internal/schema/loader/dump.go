package loader

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/cfgsmith/cfgsmith/internal/schema"
	"github.com/cfgsmith/cfgsmith/internal/state"
)

// dumpLine matches one entry of a raw console dump:
//
//	[Console] name : default : flag, flag : description
//
// The description segment is optional.
var dumpLine = regexp.MustCompile(`^\[Console\]\s+(\S+)\s+:\s+(.+?)\s+:\s+([^:]*?)\s*(?::\s*(.*))?$`)

// ParseConsoleDump reads a raw console dump and derives scoped definitions:
// each entry is classified into a ValueKind from its default value and
// description, then assigned a scope from its flags and name. sourcedAt
// stamps every definition with the dump's capture time.
func ParseConsoleDump(r io.Reader, sourcedAt time.Time) ([]state.Definition, error) {
	var defs []state.Definition
	seen := make(map[string]struct{})

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		m := dumpLine.FindStringSubmatch(scanner.Text())
		if m == nil {
			continue
		}

		name := m[1]
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}

		console := schema.ConsoleData{
			Description: strings.TrimSpace(m[4]),
			SourcedAt:   sourcedAt,
		}
		// The console prints "cmd" in the default column for commands
		// that have no value at all.
		if def := strings.TrimSpace(m[2]); def != "cmd" {
			console.DefaultValue = &def
		}
		for _, f := range strings.Split(m[3], ",") {
			if f = strings.TrimSpace(f); f != "" {
				console.Flags = append(console.Flags, f)
			}
		}

		cmd := schema.CommandDefinition{
			Command: name,
			Console: console,
			Type:    schema.Classify(console),
		}
		defs = append(defs, state.Definition{
			CommandDefinition: cmd,
			Scope:             schema.CategorizeScope(cmd),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read console dump: %w", err)
	}
	return defs, nil
}
