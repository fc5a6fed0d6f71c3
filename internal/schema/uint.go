package schema

import (
	"fmt"
	"math"
	"strconv"
)

// Uint32Descriptor handles unsigned 32-bit cvars (entity handles, indexes).
type Uint32Descriptor struct {
	Meta
	DefaultValue *uint32 `json:"default,omitempty"`
}

func (d *Uint32Descriptor) Kind() ValueKind { return KindUint32 }
func (d *Uint32Descriptor) Metadata() *Meta { return &d.Meta }

func (d *Uint32Descriptor) ParseString(raw string) (any, error) {
	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil, &ParseError{Kind: KindUint32, Raw: raw, Err: err}
	}
	return uint32(n), nil
}

func (d *Uint32Descriptor) FormatConfig(v any) string {
	if n, ok := v.(uint32); ok {
		return strconv.FormatUint(uint64(n), 10)
	}
	return "0"
}

func (d *Uint32Descriptor) Coerce(v any) (any, error) {
	switch t := v.(type) {
	case uint32:
		return t, nil
	case int:
		if t < 0 || int64(t) > math.MaxUint32 {
			return nil, fmt.Errorf("%d out of uint32 range", t)
		}
		return uint32(t), nil
	case int64:
		if t < 0 || t > math.MaxUint32 {
			return nil, fmt.Errorf("%d out of uint32 range", t)
		}
		return uint32(t), nil
	case uint64:
		if t > math.MaxUint32 {
			return nil, fmt.Errorf("%d out of uint32 range", t)
		}
		return uint32(t), nil
	case float64:
		if t < 0 || t > math.MaxUint32 || t != math.Trunc(t) {
			return nil, fmt.Errorf("cannot coerce %v to uint32", t)
		}
		return uint32(t), nil
	case string:
		return d.ParseString(t)
	}
	return nil, fmt.Errorf("cannot coerce %T to uint32", v)
}

func (d *Uint32Descriptor) Default() any {
	if d.DefaultValue != nil {
		return *d.DefaultValue
	}
	return uint32(0)
}

func (d *Uint32Descriptor) Validate(any) error { return nil }

// Uint64Descriptor handles unsigned 64-bit cvars (steam IDs, match IDs).
type Uint64Descriptor struct {
	Meta
	DefaultValue *uint64 `json:"default,omitempty"`
}

func (d *Uint64Descriptor) Kind() ValueKind { return KindUint64 }
func (d *Uint64Descriptor) Metadata() *Meta { return &d.Meta }

func (d *Uint64Descriptor) ParseString(raw string) (any, error) {
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil, &ParseError{Kind: KindUint64, Raw: raw, Err: err}
	}
	return n, nil
}

func (d *Uint64Descriptor) FormatConfig(v any) string {
	if n, ok := v.(uint64); ok {
		return strconv.FormatUint(n, 10)
	}
	return "0"
}

func (d *Uint64Descriptor) Coerce(v any) (any, error) {
	switch t := v.(type) {
	case uint64:
		return t, nil
	case uint32:
		return uint64(t), nil
	case int:
		if t < 0 {
			return nil, fmt.Errorf("%d out of uint64 range", t)
		}
		return uint64(t), nil
	case int64:
		if t < 0 {
			return nil, fmt.Errorf("%d out of uint64 range", t)
		}
		return uint64(t), nil
	case float64:
		if t < 0 || t != math.Trunc(t) {
			return nil, fmt.Errorf("cannot coerce %v to uint64", t)
		}
		return uint64(t), nil
	case string:
		return d.ParseString(t)
	}
	return nil, fmt.Errorf("cannot coerce %T to uint64", v)
}

func (d *Uint64Descriptor) Default() any {
	if d.DefaultValue != nil {
		return *d.DefaultValue
	}
	return uint64(0)
}

func (d *Uint64Descriptor) Validate(any) error { return nil }
