package schema

import (
	"fmt"
	"strconv"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Options maps stored option values to display labels. Insertion order is
// display order, so the JSON object order must survive decode and encode.
type Options = orderedmap.OrderedMap[string, string]

// NewOptions returns an empty insertion-ordered option table.
func NewOptions() *Options {
	return orderedmap.New[string, string]()
}

// EnumDescriptor handles cvars whose value domain is a fixed option table.
// The option-map keys are the authoritative value domain; values are
// canonicalized to string keys.
type EnumDescriptor struct {
	Meta
	Options      *Options `json:"options"`
	DefaultValue *string  `json:"default,omitempty"`
}

func (d *EnumDescriptor) Kind() ValueKind { return KindEnum }
func (d *EnumDescriptor) Metadata() *Meta { return &d.Meta }

func (d *EnumDescriptor) ParseString(raw string) (any, error) {
	return unquote(raw), nil
}

func (d *EnumDescriptor) FormatConfig(v any) string {
	s, _ := v.(string)
	return quoteIfNeeded(s)
}

func (d *EnumDescriptor) Coerce(v any) (any, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case bool, int, int32, int64:
		return fmt.Sprintf("%v", t), nil
	case float64:
		// JSON numbers arrive as float64; integral option keys are common.
		if t == float64(int64(t)) {
			return strconv.FormatInt(int64(t), 10), nil
		}
		return formatFloat(t), nil
	}
	return nil, fmt.Errorf("cannot coerce %T to enum option", v)
}

func (d *EnumDescriptor) Default() any {
	if d.DefaultValue != nil {
		return *d.DefaultValue
	}
	if d.Options != nil {
		if first := d.Options.Oldest(); first != nil {
			return first.Key
		}
	}
	return ""
}

func (d *EnumDescriptor) Validate(v any) error {
	s, ok := v.(string)
	if !ok {
		return &ValidationError{Kind: KindEnum, Value: v, Reason: fmt.Sprintf("expected string option, got %T", v)}
	}
	if d.Options != nil {
		if _, present := d.Options.Get(s); present {
			return nil
		}
	}
	return &ValidationError{Kind: KindEnum, Value: s, Reason: "not an allowed option"}
}

// BitmaskDescriptor handles flag-set cvars. The option table maps each bit
// value (as a decimal string) to its label; the stored value is the combined
// mask. Any mask is accepted since the game tolerates undocumented bits.
type BitmaskDescriptor struct {
	Meta
	Options      *Options `json:"options"`
	DefaultValue *uint64  `json:"default,omitempty"`
}

func (d *BitmaskDescriptor) Kind() ValueKind { return KindBitmask }
func (d *BitmaskDescriptor) Metadata() *Meta { return &d.Meta }

func (d *BitmaskDescriptor) ParseString(raw string) (any, error) {
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil, &ParseError{Kind: KindBitmask, Raw: raw, Err: err}
	}
	return n, nil
}

func (d *BitmaskDescriptor) FormatConfig(v any) string {
	if n, ok := v.(uint64); ok {
		return strconv.FormatUint(n, 10)
	}
	return "0"
}

func (d *BitmaskDescriptor) Coerce(v any) (any, error) {
	switch t := v.(type) {
	case uint64:
		return t, nil
	case uint32:
		return uint64(t), nil
	case int:
		if t < 0 {
			return nil, fmt.Errorf("negative value %d is not a bitmask", t)
		}
		return uint64(t), nil
	case int64:
		if t < 0 {
			return nil, fmt.Errorf("negative value %d is not a bitmask", t)
		}
		return uint64(t), nil
	case float64:
		if t < 0 || t != float64(uint64(t)) {
			return nil, fmt.Errorf("cannot coerce %v to bitmask", t)
		}
		return uint64(t), nil
	case string:
		return d.ParseString(t)
	}
	return nil, fmt.Errorf("cannot coerce %T to bitmask", v)
}

func (d *BitmaskDescriptor) Default() any {
	if d.DefaultValue != nil {
		return *d.DefaultValue
	}
	return uint64(0)
}

func (d *BitmaskDescriptor) Validate(any) error { return nil }
