// Package schema defines the typed-setting model for CS2 console variables:
// the closed set of value kinds, the per-kind TypeDescriptor behavior bundle,
// the immutable CommandDefinition records produced by the offline pipeline,
// and the discriminator-based JSON decoder that ties them together.
package schema

import (
	"fmt"
	"strings"
)

// ValueKind identifies which TypeDescriptor variant applies to a command.
// The string values match the "type" discriminators emitted by the offline
// classification pipeline.
type ValueKind string

const (
	KindBool    ValueKind = "bool"
	KindInt     ValueKind = "int"
	KindFloat   ValueKind = "float"
	KindString  ValueKind = "string"
	KindEnum    ValueKind = "enum"
	KindBitmask ValueKind = "bitmask"
	KindColor   ValueKind = "color"
	KindUint32  ValueKind = "uint32"
	KindUint64  ValueKind = "uint64"
	KindVector2 ValueKind = "vector2"
	KindVector3 ValueKind = "vector3"
	KindUnknown ValueKind = "unknown"
	KindAction  ValueKind = "action"
)

// allKinds lists every supported kind for discriminator lookup.
var allKinds = []ValueKind{
	KindBool, KindInt, KindFloat, KindString, KindEnum, KindBitmask,
	KindColor, KindUint32, KindUint64, KindVector2, KindVector3,
	KindUnknown, KindAction,
}

// ParseKind maps a discriminator string to a ValueKind. Matching is
// case-insensitive. An unrecognized discriminator is a decode failure.
func ParseKind(s string) (ValueKind, error) {
	lowered := strings.ToLower(strings.TrimSpace(s))
	for _, k := range allKinds {
		if string(k) == lowered {
			return k, nil
		}
	}
	return "", &DecodeError{Field: "type", Reason: fmt.Sprintf("unrecognized kind %q", s)}
}

// String returns the JSON discriminator for the kind.
func (k ValueKind) String() string {
	return string(k)
}

// IsNumeric reports whether values of this kind are scalar numbers.
func (k ValueKind) IsNumeric() bool {
	switch k {
	case KindInt, KindFloat, KindUint32, KindUint64, KindBitmask:
		return true
	default:
		return false
	}
}
