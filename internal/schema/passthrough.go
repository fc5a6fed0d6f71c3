package schema

import "fmt"

// UnknownDescriptor handles cvars the classification pipeline could not pin
// to a concrete kind. Values pass through as strings so nothing the game
// accepts is rejected here.
type UnknownDescriptor struct {
	Meta
	DefaultValue *string `json:"default,omitempty"`
}

func (d *UnknownDescriptor) Kind() ValueKind { return KindUnknown }
func (d *UnknownDescriptor) Metadata() *Meta { return &d.Meta }

func (d *UnknownDescriptor) ParseString(raw string) (any, error) {
	return unquote(raw), nil
}

func (d *UnknownDescriptor) FormatConfig(v any) string {
	s, _ := v.(string)
	return quoteIfNeeded(s)
}

func (d *UnknownDescriptor) Coerce(v any) (any, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case bool, int, int32, int64, float32, float64:
		return fmt.Sprintf("%v", t), nil
	}
	return nil, fmt.Errorf("cannot coerce %T to unknown-kind value", v)
}

func (d *UnknownDescriptor) Default() any {
	if d.DefaultValue != nil {
		return *d.DefaultValue
	}
	return ""
}

func (d *UnknownDescriptor) Validate(any) error { return nil }

// ActionDescriptor handles console commands rather than variables. The
// value is the argument string passed on the config line, usually empty.
type ActionDescriptor struct {
	Meta
}

func (d *ActionDescriptor) Kind() ValueKind { return KindAction }
func (d *ActionDescriptor) Metadata() *Meta { return &d.Meta }

func (d *ActionDescriptor) ParseString(raw string) (any, error) {
	return unquote(raw), nil
}

func (d *ActionDescriptor) FormatConfig(v any) string {
	s, _ := v.(string)
	return quoteIfNeeded(s)
}

func (d *ActionDescriptor) Coerce(v any) (any, error) {
	if s, ok := v.(string); ok {
		return s, nil
	}
	return nil, fmt.Errorf("cannot coerce %T to action arguments", v)
}

func (d *ActionDescriptor) Default() any { return "" }

func (d *ActionDescriptor) Validate(any) error { return nil }
