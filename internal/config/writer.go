package config

import (
	"bytes"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// sectionHeader matches a TOML table header, including indented sub-tables.
var sectionHeader = regexp.MustCompile(`^(\s*)\[([^\]]+)\]\s*$`)

// WriteConfigOrdered writes the configuration to disk with deterministic
// ordering: top-level keys first, then sections sorted alphabetically.
func WriteConfigOrdered(cfg *Config, path string) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)

	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.WriteFile(path, []byte(sortSections(buf.String())), filePerm); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// sortSections reorders TOML text so sections appear alphabetically while
// top-level keys stay first. Line content within a section is untouched.
func sortSections(content string) string {
	type section struct {
		name  string
		lines []string
	}

	var preamble []string
	var sections []section
	current := -1

	for _, line := range strings.Split(content, "\n") {
		if m := sectionHeader.FindStringSubmatch(line); m != nil {
			sections = append(sections, section{name: m[2], lines: []string{line}})
			current = len(sections) - 1
			continue
		}
		if current < 0 {
			preamble = append(preamble, line)
			continue
		}
		sections[current].lines = append(sections[current].lines, line)
	}

	sort.SliceStable(sections, func(i, j int) bool {
		return sections[i].name < sections[j].name
	})

	var out strings.Builder
	for _, line := range preamble {
		if strings.TrimSpace(line) == "" {
			continue
		}
		out.WriteString(line)
		out.WriteByte('\n')
	}
	for _, sec := range sections {
		if out.Len() > 0 {
			out.WriteByte('\n')
		}
		for _, line := range sec.lines {
			if strings.TrimSpace(line) == "" {
				continue
			}
			out.WriteString(line)
			out.WriteByte('\n')
		}
	}
	return out.String()
}
