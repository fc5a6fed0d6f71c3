package schema

import "fmt"

// BoolDescriptor handles boolean cvars. Config files accept "0"/"1" and the
// case-sensitive literals "true"/"false" on read, and always emit the words.
type BoolDescriptor struct {
	Meta
	DefaultValue *bool `json:"default,omitempty"`
}

func (d *BoolDescriptor) Kind() ValueKind { return KindBool }
func (d *BoolDescriptor) Metadata() *Meta { return &d.Meta }

func (d *BoolDescriptor) ParseString(raw string) (any, error) {
	switch raw {
	case "0", "false":
		return false, nil
	case "1", "true":
		return true, nil
	}
	return nil, &ParseError{Kind: KindBool, Raw: raw}
}

func (d *BoolDescriptor) FormatConfig(v any) string {
	if b, ok := v.(bool); ok && b {
		return "true"
	}
	return "false"
}

func (d *BoolDescriptor) Coerce(v any) (any, error) {
	switch t := v.(type) {
	case bool:
		return t, nil
	case int:
		return intToBool(int64(t))
	case int32:
		return intToBool(int64(t))
	case int64:
		return intToBool(t)
	case float64:
		return intToBool(int64(t))
	case string:
		return d.ParseString(t)
	}
	return nil, fmt.Errorf("cannot coerce %T to bool", v)
}

func intToBool(n int64) (any, error) {
	switch n {
	case 0:
		return false, nil
	case 1:
		return true, nil
	}
	return nil, fmt.Errorf("cannot coerce %d to bool", n)
}

func (d *BoolDescriptor) Default() any {
	if d.DefaultValue != nil {
		return *d.DefaultValue
	}
	return false
}

func (d *BoolDescriptor) Validate(any) error { return nil }
