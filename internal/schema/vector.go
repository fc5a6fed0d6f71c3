package schema

import (
	"fmt"
	"strconv"
	"strings"
)

// Vector values are stored as their canonical config representation:
// components joined by single spaces, each formatted with the invariant
// '.' decimal separator. Parsing canonicalizes, so format is an exact
// inverse for every parsed value.

// parseVector parses raw into exactly arity float components and returns
// both the components and the canonical string form.
func parseVector(kind ValueKind, raw string, arity int) ([]float32, string, error) {
	fields := strings.Fields(unquote(raw))
	if len(fields) != arity {
		return nil, "", &ParseError{
			Kind: kind,
			Raw:  raw,
			Err:  fmt.Errorf("expected %d components, got %d", arity, len(fields)),
		}
	}
	comps := make([]float32, arity)
	canon := make([]string, arity)
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 32)
		if err != nil {
			return nil, "", &ParseError{Kind: kind, Raw: raw, Err: fmt.Errorf("component %d: %w", i+1, err)}
		}
		comps[i] = float32(v)
		canon[i] = formatFloat32(float32(v))
	}
	return comps, strings.Join(canon, " "), nil
}

// Vector2Descriptor handles two-component cvars (screen positions, UV pans).
type Vector2Descriptor struct {
	Meta
	DefaultValue *string `json:"default,omitempty"`
}

func (d *Vector2Descriptor) Kind() ValueKind { return KindVector2 }
func (d *Vector2Descriptor) Metadata() *Meta { return &d.Meta }

func (d *Vector2Descriptor) ParseString(raw string) (any, error) {
	_, canon, err := parseVector(KindVector2, raw, 2)
	if err != nil {
		return nil, err
	}
	return canon, nil
}

func (d *Vector2Descriptor) FormatConfig(v any) string {
	s, _ := v.(string)
	return quoteIfNeeded(s)
}

func (d *Vector2Descriptor) Coerce(v any) (any, error) {
	s, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf("cannot coerce %T to vector2", v)
	}
	if s == "" {
		return "", nil
	}
	return d.ParseString(s)
}

func (d *Vector2Descriptor) Default() any {
	if d.DefaultValue != nil {
		return *d.DefaultValue
	}
	return ""
}

func (d *Vector2Descriptor) Validate(any) error { return nil }

// Vector3Descriptor handles three-component cvars (world positions, RGB
// triples classified as vectors). Each component is validated independently
// against the shared range; an out-of-range component rejects the whole
// value, never a partial application.
type Vector3Descriptor struct {
	Meta
	Range        *Range  `json:"range,omitempty"`
	DefaultValue *string `json:"default,omitempty"`
}

func (d *Vector3Descriptor) Kind() ValueKind { return KindVector3 }
func (d *Vector3Descriptor) Metadata() *Meta { return &d.Meta }

func (d *Vector3Descriptor) ParseString(raw string) (any, error) {
	_, canon, err := parseVector(KindVector3, raw, 3)
	if err != nil {
		return nil, err
	}
	return canon, nil
}

func (d *Vector3Descriptor) FormatConfig(v any) string {
	s, _ := v.(string)
	return quoteIfNeeded(s)
}

func (d *Vector3Descriptor) Coerce(v any) (any, error) {
	s, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf("cannot coerce %T to vector3", v)
	}
	if s == "" {
		return "", nil
	}
	return d.ParseString(s)
}

func (d *Vector3Descriptor) Default() any {
	if d.DefaultValue != nil {
		return *d.DefaultValue
	}
	return ""
}

func (d *Vector3Descriptor) Validate(v any) error {
	s, ok := v.(string)
	if !ok {
		return &ValidationError{Kind: KindVector3, Value: v, Reason: fmt.Sprintf("expected vector string, got %T", v)}
	}
	if s == "" || d.Range == nil {
		return nil
	}
	comps, _, err := parseVector(KindVector3, s, 3)
	if err != nil {
		return &ValidationError{Kind: KindVector3, Value: s, Reason: "not a well-formed vector"}
	}
	for i, c := range comps {
		if rerr := d.Range.contains(float64(c)); rerr != nil {
			return &ValidationError{
				Kind:   KindVector3,
				Value:  s,
				Reason: fmt.Sprintf("component %d: %v", i+1, rerr),
			}
		}
	}
	return nil
}
