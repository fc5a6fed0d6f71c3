package schema

import (
	"errors"
	"fmt"
)

// DecodeError reports malformed or unrecognized TypeDescriptor JSON.
// Schema decode failures are fatal to schema load; a corrupt schema makes
// the rest of the system meaningless.
type DecodeError struct {
	Field  string
	Reason string
}

func (e *DecodeError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("schema decode: %s", e.Reason)
	}
	return fmt.Sprintf("schema decode: field %q: %s", e.Field, e.Reason)
}

// ParseError reports a value token that does not match the kind's grammar.
type ParseError struct {
	Kind ValueKind
	Raw  string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot parse %q as %s: %v", e.Raw, e.Kind, e.Err)
	}
	return fmt.Sprintf("cannot parse %q as %s", e.Raw, e.Kind)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ValidationError reports a well-formed value that violates the kind's
// constraints (out of range, not an allowed option). Values are never
// silently clamped.
type ValidationError struct {
	Kind   ValueKind
	Value  any
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s value %v: %s", e.Kind, e.Value, e.Reason)
}

// IsDecodeError reports whether err is (or wraps) a DecodeError.
func IsDecodeError(err error) bool {
	var de *DecodeError
	return errors.As(err, &de)
}

// IsValidationError reports whether err is (or wraps) a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
