package scval

import (
	"fmt"

	"github.com/stellar/go-stellar-sdk/xdr"
)

// UnsupportedValueError is returned when a Go value cannot be represented as the requested
// contract value type.
type UnsupportedValueError struct {
	Value  any
	Tag    Tag
	Reason string
}

func (e *UnsupportedValueError) Error() string {
	target := e.Tag.String()
	if target == "" {
		target = "contract value"
	}

	return fmt.Sprintf("cannot encode %T as %s: %s", e.Value, target, e.Reason)
}

// DecodeError is returned when a contract value has a type that has no Go representation.
type DecodeError struct {
	Type   xdr.ScValType
	Reason string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("cannot decode %s: %s", e.Type, e.Reason)
}

func unsupported(v any, tag Tag, format string, args ...any) error {
	return &UnsupportedValueError{Value: v, Tag: tag, Reason: fmt.Sprintf(format, args...)}
}

func undecodable(t xdr.ScValType, format string, args ...any) error {
	return &DecodeError{Type: t, Reason: fmt.Sprintf(format, args...)}
}
