package schema

import (
	"fmt"
	"strconv"
	"strings"
)

// TypeDescriptor bundles the per-kind metadata and behavior for one command.
// Callers never branch on the concrete kind outside the decoder; all access
// goes through these operations.
type TypeDescriptor interface {
	// Kind returns the ValueKind this descriptor implements.
	Kind() ValueKind

	// Metadata returns the common presentation metadata.
	Metadata() *Meta

	// ParseString converts a config-line token to the kind-native value.
	// A token that does not match the kind's grammar yields a *ParseError.
	ParseString(raw string) (any, error)

	// FormatConfig renders a kind-native value for a config line. It is the
	// exact inverse of ParseString for every valid value.
	FormatConfig(v any) string

	// Coerce best-effort converts a loosely-typed input into the kind-native
	// value. Used by JSON decoding and programmatic setters.
	Coerce(v any) (any, error)

	// Default returns the descriptor's declared default, or the kind's
	// zero value when none was declared.
	Default() any

	// Validate checks a kind-native value against the descriptor's
	// constraints. Kinds without constraints return nil.
	Validate(v any) error
}

// Meta carries the presentation fields shared by every kind.
type Meta struct {
	Label          string `json:"label,omitempty"`
	HelperText     string `json:"helperText,omitempty"`
	RequiresCheats bool   `json:"requiresCheats,omitempty"`
}

// Range bounds a numeric kind. A nil bound means unbounded on that side.
type Range struct {
	Min  *float64 `json:"min,omitempty"`
	Max  *float64 `json:"max,omitempty"`
	Step *float64 `json:"step,omitempty"`
}

// DefaultIntRange returns the permissive range synthesized for int
// descriptors whose source JSON omits one: 0-100, step 1.
func DefaultIntRange() *Range {
	return &Range{Min: boundOf(0), Max: boundOf(100), Step: boundOf(1)}
}

// DefaultFloatRange returns the permissive range synthesized for float
// descriptors whose source JSON omits one: 0.0-1.0, step 0.01.
func DefaultFloatRange() *Range {
	return &Range{Min: boundOf(0), Max: boundOf(1), Step: boundOf(0.01)}
}

func boundOf(v float64) *float64 { return &v }

// contains checks min <= v <= max against the present bounds.
func (r *Range) contains(v float64) error {
	if r == nil {
		return nil
	}
	if r.Min != nil && v < *r.Min {
		return fmt.Errorf("%s is less than minimum %s", formatFloat(v), formatFloat(*r.Min))
	}
	if r.Max != nil && v > *r.Max {
		return fmt.Errorf("%s is greater than maximum %s", formatFloat(v), formatFloat(*r.Max))
	}
	return nil
}

// formatFloat renders a float with the invariant '.' decimal separator and
// the shortest representation that round-trips.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// formatFloat32 is formatFloat for 32-bit values.
func formatFloat32(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}

// quoteIfNeeded wraps s in double quotes when it contains a space or
// semicolon, the two characters the game's cfg tokenizer treats specially.
func quoteIfNeeded(s string) string {
	if strings.ContainsAny(s, " ;") {
		return `"` + s + `"`
	}
	return s
}

// unquote strips one layer of surrounding double quotes, if present.
func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}
