package schema

import "fmt"

// ColorDescriptor handles color cvars. The game expresses colors as
// space-separated channel strings ("255 255 255" or with alpha); the value
// is carried as that string and quoted on format when it contains spaces.
type ColorDescriptor struct {
	Meta
	DefaultValue *string `json:"default,omitempty"`
}

func (d *ColorDescriptor) Kind() ValueKind { return KindColor }
func (d *ColorDescriptor) Metadata() *Meta { return &d.Meta }

func (d *ColorDescriptor) ParseString(raw string) (any, error) {
	return unquote(raw), nil
}

func (d *ColorDescriptor) FormatConfig(v any) string {
	s, _ := v.(string)
	return quoteIfNeeded(s)
}

func (d *ColorDescriptor) Coerce(v any) (any, error) {
	if s, ok := v.(string); ok {
		return s, nil
	}
	return nil, fmt.Errorf("cannot coerce %T to color", v)
}

func (d *ColorDescriptor) Default() any {
	if d.DefaultValue != nil {
		return *d.DefaultValue
	}
	return ""
}

func (d *ColorDescriptor) Validate(any) error { return nil }
