package schema

import "fmt"

// StringDescriptor handles free-text cvars. Values containing a space or
// semicolon are wrapped in double quotes on format; ParseString strips one
// layer of surrounding quotes so format and parse stay exact inverses.
type StringDescriptor struct {
	Meta
	DefaultValue *string `json:"default,omitempty"`
}

func (d *StringDescriptor) Kind() ValueKind { return KindString }
func (d *StringDescriptor) Metadata() *Meta { return &d.Meta }

func (d *StringDescriptor) ParseString(raw string) (any, error) {
	return unquote(raw), nil
}

func (d *StringDescriptor) FormatConfig(v any) string {
	s, _ := v.(string)
	return quoteIfNeeded(s)
}

func (d *StringDescriptor) Coerce(v any) (any, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case fmt.Stringer:
		return t.String(), nil
	case bool, int, int32, int64, float32, float64:
		return fmt.Sprintf("%v", t), nil
	}
	return nil, fmt.Errorf("cannot coerce %T to string", v)
}

func (d *StringDescriptor) Default() any {
	if d.DefaultValue != nil {
		return *d.DefaultValue
	}
	return ""
}

func (d *StringDescriptor) Validate(any) error { return nil }
