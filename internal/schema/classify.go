package schema

import (
	"strconv"
	"strings"
)

// Classify derives a TypeDescriptor for a command from its raw console
// metadata. The rules are ordered; the first match wins:
//
//  1. no default value        -> action
//  2. "true"/"false" default  -> bool
//  3. "bitmask" in description -> bitmask
//  4. numeric default          -> float when it carries a '.', else unknown
//  5. anything else            -> string
//
// Dedicated kinds (enum, color, vectors, uints) come from curated schema
// files, never from raw classification.
func Classify(console ConsoleData) TypeDescriptor {
	if console.DefaultValue == nil {
		return &ActionDescriptor{}
	}
	def := *console.DefaultValue

	switch strings.ToLower(def) {
	case "true":
		return &BoolDescriptor{DefaultValue: boolPtr(true)}
	case "false":
		return &BoolDescriptor{DefaultValue: boolPtr(false)}
	}

	if strings.Contains(strings.ToLower(console.Description), "bitmask") {
		d := &BitmaskDescriptor{Options: NewOptions()}
		if n, err := strconv.ParseUint(def, 10, 64); err == nil {
			d.DefaultValue = &n
		}
		return d
	}

	if _, err := strconv.ParseFloat(def, 64); err == nil {
		if strings.Contains(def, ".") {
			d := &FloatDescriptor{Range: DefaultFloatRange()}
			if f, perr := strconv.ParseFloat(def, 32); perr == nil {
				f32 := float32(f)
				d.DefaultValue = &f32
			}
			return d
		}
		return &UnknownDescriptor{DefaultValue: &def}
	}

	return &StringDescriptor{DefaultValue: &def}
}

func boolPtr(b bool) *bool { return &b }
