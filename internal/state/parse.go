package state

import (
	"strings"
	"unicode"
)

// LineError records one malformed directive encountered during parsing.
type LineError struct {
	Line int
	Text string
	Err  error
}

// ParseReport summarizes a ParseConfigFile run. A malformed line never
// discards the rest of the file; it lands in Errors and parsing continues.
type ParseReport struct {
	Applied int
	Skipped int
	Errors  []LineError
}

// ParseConfigFile applies config text to the Setting table. Blank lines and
// // comments are ignored; each directive splits on the first whitespace
// run into command and value, with one layer of surrounding double quotes
// stripped from the value. Unknown commands are silently skipped since
// config files may reference cvars outside the loaded schema. A directive
// that parses and validates updates the setting's value and marks it
// included. One batched reload notification fires at the end.
func (cs *ConfigState) ParseConfigFile(text, source string) ParseReport {
	var report ParseReport

	cs.mu.Lock()
	for i, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "//") {
			continue
		}

		command, rest := splitDirective(trimmed)
		idx, ok := cs.byName[command]
		if !ok {
			report.Skipped++
			continue
		}
		desc := cs.defs[idx].Type

		value, err := desc.ParseString(stripQuotes(rest))
		if err == nil {
			err = desc.Validate(value)
		}
		if err != nil {
			cs.log.Warn().
				Int("line", i+1).
				Str("command", command).
				Err(err).
				Msg("config line rejected")
			report.Errors = append(report.Errors, LineError{Line: i + 1, Text: trimmed, Err: err})
			continue
		}

		s := cs.settings[command]
		s.Value = value
		s.Included = true
		report.Applied++
	}
	cs.mu.Unlock()

	cs.notify(Change{Type: ChangeReload, Source: source})
	return report
}

// splitDirective splits a directive on its first whitespace run.
func splitDirective(line string) (command, rest string) {
	cut := strings.IndexFunc(line, unicode.IsSpace)
	if cut < 0 {
		return line, ""
	}
	return line[:cut], strings.TrimLeftFunc(line[cut:], unicode.IsSpace)
}

// stripQuotes removes one layer of surrounding double quotes.
func stripQuotes(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}
