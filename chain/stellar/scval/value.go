// Package scval converts between Go values and Soroban contract values (xdr.ScVal).
//
// Contract arguments are expressed with the closed [Value] union: [Address], [I128], [U32],
// [String] and the [Native] fallback for composite values. Call sites pick the variant that
// matches the argument position of the contract method, so the XDR type of every argument is
// fixed at compile time. [FromNative] offers the dynamic path (value + optional [Tag]) used by the
// CLI.
package scval

import (
	"fmt"
	"math/big"
	"strings"
)

// Tag names the contract value type an argument is expected to have.
type Tag int

const (
	// TagNone lets the value's Go type decide: numbers become i128, everything else goes through
	// the native conversion.
	TagNone Tag = iota
	TagAddress
	TagI128
	TagU32
	TagString
)

var tagNames = map[Tag]string{
	TagNone:    "",
	TagAddress: "address",
	TagI128:    "i128",
	TagU32:     "u32",
	TagString:  "string",
}

func (t Tag) String() string {
	if name, ok := tagNames[t]; ok {
		return name
	}

	return fmt.Sprintf("Tag(%d)", int(t))
}

// ParseTag parses the lower case tag name. The empty string maps to TagNone.
func ParseTag(s string) (Tag, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for tag, name := range tagNames {
		if name == s {
			return tag, nil
		}
	}

	return TagNone, fmt.Errorf("unknown contract value type %q", s)
}

// Value is a contract argument. The set of implementations is closed.
type Value interface {
	// Tag returns the contract type of the value, TagNone for Native.
	Tag() Tag

	sealed()
}

// Address is a Stellar account (G...) or contract (C...) strkey.
type Address string

// I128 is a signed 128-bit integer.
type I128 struct {
	Int *big.Int
}

// U32 is an unsigned 32-bit integer.
type U32 uint32

// String is a UTF-8 contract string.
type String string

// Native wraps a Go value converted with the native conversion rules: nil, bool, string,
// Symbol, []byte, []any, []string, map[string]any, xdr.ScVal or a nested Value.
type Native struct {
	V any
}

// Symbol marks a Go string that must be encoded as a contract symbol rather than a string.
type Symbol string

func (Address) Tag() Tag { return TagAddress }
func (I128) Tag() Tag    { return TagI128 }
func (U32) Tag() Tag     { return TagU32 }
func (String) Tag() Tag  { return TagString }
func (Native) Tag() Tag  { return TagNone }

func (Address) sealed() {}
func (I128) sealed()    {}
func (U32) sealed()     {}
func (String) sealed()  {}
func (Native) sealed()  {}

// NewI128 returns an I128 holding a copy of v.
func NewI128(v *big.Int) I128 {
	return I128{Int: new(big.Int).Set(v)}
}

// I128FromInt64 returns an I128 holding v.
func I128FromInt64(v int64) I128 {
	return I128{Int: big.NewInt(v)}
}
