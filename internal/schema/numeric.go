package schema

import (
	"fmt"
	"math"
	"strconv"
)

// IntDescriptor handles signed 32-bit integer cvars. Post-decode the Range
// is always non-nil; the decoder synthesizes a permissive default when the
// source JSON omits it.
type IntDescriptor struct {
	Meta
	Range        *Range `json:"range"`
	DefaultValue *int32 `json:"default,omitempty"`
}

func (d *IntDescriptor) Kind() ValueKind { return KindInt }
func (d *IntDescriptor) Metadata() *Meta { return &d.Meta }

func (d *IntDescriptor) ParseString(raw string) (any, error) {
	n, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return nil, &ParseError{Kind: KindInt, Raw: raw, Err: err}
	}
	return int32(n), nil
}

func (d *IntDescriptor) FormatConfig(v any) string {
	if n, ok := v.(int32); ok {
		return strconv.FormatInt(int64(n), 10)
	}
	return "0"
}

func (d *IntDescriptor) Coerce(v any) (any, error) {
	switch t := v.(type) {
	case int32:
		return t, nil
	case int:
		return int32(t), nil
	case int64:
		if t < math.MinInt32 || t > math.MaxInt32 {
			return nil, fmt.Errorf("%d overflows int32", t)
		}
		return int32(t), nil
	case float64:
		if t != math.Trunc(t) {
			return nil, fmt.Errorf("cannot coerce non-integral %v to int", t)
		}
		return int32(t), nil
	case bool:
		if t {
			return int32(1), nil
		}
		return int32(0), nil
	case string:
		return d.ParseString(t)
	}
	return nil, fmt.Errorf("cannot coerce %T to int", v)
}

func (d *IntDescriptor) Default() any {
	if d.DefaultValue != nil {
		return *d.DefaultValue
	}
	return int32(0)
}

func (d *IntDescriptor) Validate(v any) error {
	n, ok := v.(int32)
	if !ok {
		return &ValidationError{Kind: KindInt, Value: v, Reason: fmt.Sprintf("expected int32, got %T", v)}
	}
	if err := d.Range.contains(float64(n)); err != nil {
		return &ValidationError{Kind: KindInt, Value: n, Reason: err.Error()}
	}
	return nil
}

// FloatDescriptor handles 32-bit float cvars. Parsing and formatting use
// the invariant '.' decimal separator regardless of host locale; config
// files are shared across locales.
type FloatDescriptor struct {
	Meta
	Range        *Range   `json:"range"`
	DefaultValue *float32 `json:"default,omitempty"`
}

func (d *FloatDescriptor) Kind() ValueKind { return KindFloat }
func (d *FloatDescriptor) Metadata() *Meta { return &d.Meta }

func (d *FloatDescriptor) ParseString(raw string) (any, error) {
	f, err := strconv.ParseFloat(raw, 32)
	if err != nil {
		return nil, &ParseError{Kind: KindFloat, Raw: raw, Err: err}
	}
	return float32(f), nil
}

func (d *FloatDescriptor) FormatConfig(v any) string {
	if f, ok := v.(float32); ok {
		return formatFloat32(f)
	}
	return "0"
}

func (d *FloatDescriptor) Coerce(v any) (any, error) {
	switch t := v.(type) {
	case float32:
		return t, nil
	case float64:
		return float32(t), nil
	case int:
		return float32(t), nil
	case int32:
		return float32(t), nil
	case int64:
		return float32(t), nil
	case string:
		return d.ParseString(t)
	}
	return nil, fmt.Errorf("cannot coerce %T to float", v)
}

func (d *FloatDescriptor) Default() any {
	if d.DefaultValue != nil {
		return *d.DefaultValue
	}
	return float32(0)
}

func (d *FloatDescriptor) Validate(v any) error {
	f, ok := v.(float32)
	if !ok {
		return &ValidationError{Kind: KindFloat, Value: v, Reason: fmt.Sprintf("expected float32, got %T", v)}
	}
	if err := d.Range.contains(float64(f)); err != nil {
		return &ValidationError{Kind: KindFloat, Value: f, Reason: err.Error()}
	}
	return nil
}
