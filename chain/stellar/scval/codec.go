package scval

import (
	"math"
	"math/big"
	"slices"
	"strings"

	"github.com/stellar/go-stellar-sdk/strkey"
	"github.com/stellar/go-stellar-sdk/xdr"
)

// FromNative resolves a Go value into a contract Value.
//
// An explicit tag always wins. Without one, numbers become I128 and anything else is wrapped in
// Native. A v that already is a Value is returned as is when the tag is TagNone or matches.
func FromNative(v any, tag Tag) (Value, error) {
	if val, ok := v.(Value); ok {
		if tag == TagNone || val.Tag() == tag {
			return val, nil
		}

		return nil, unsupported(v, tag, "value already has type %s", val.Tag())
	}

	switch tag {
	case TagAddress:
		s, ok := v.(string)
		if !ok {
			return nil, unsupported(v, tag, "addresses must be strkey strings")
		}

		return Address(s), nil
	case TagString:
		s, ok := v.(string)
		if !ok {
			return nil, unsupported(v, tag, "expected a Go string")
		}

		return String(s), nil
	case TagI128:
		if s, ok := v.(string); ok {
			i, ok := new(big.Int).SetString(strings.TrimSpace(s), 10)
			if !ok {
				return nil, unsupported(v, tag, "%q is not a base 10 integer", s)
			}

			return I128{Int: i}, nil
		}

		i, ok := toBigInt(v)
		if !ok {
			return nil, unsupported(v, tag, "expected an integer")
		}

		return I128{Int: i}, nil
	case TagU32:
		i, ok := toBigInt(v)
		if !ok {
			return nil, unsupported(v, tag, "expected an integer")
		}
		if i.Sign() < 0 || i.Cmp(new(big.Int).SetUint64(math.MaxUint32)) > 0 {
			return nil, unsupported(v, tag, "%s out of u32 range", i)
		}

		return U32(uint32(i.Uint64())), nil
	case TagNone:
		if isNumeric(v) {
			i, ok := toBigInt(v)
			if !ok {
				return nil, unsupported(v, TagI128, "non-integral number")
			}

			return I128{Int: i}, nil
		}

		return Native{V: v}, nil
	}

	return nil, unsupported(v, tag, "unknown tag")
}

// EncodeNative is FromNative followed by Encode.
func EncodeNative(v any, tag Tag) (xdr.ScVal, error) {
	val, err := FromNative(v, tag)
	if err != nil {
		return xdr.ScVal{}, err
	}

	return Encode(val)
}

// Encode converts a Value to its XDR representation.
func Encode(v Value) (xdr.ScVal, error) {
	switch val := v.(type) {
	case Address:
		addr, err := encodeAddress(string(val))
		if err != nil {
			return xdr.ScVal{}, unsupported(string(val), TagAddress, "%v", err)
		}

		return xdr.ScVal{Type: xdr.ScValTypeScvAddress, Address: &addr}, nil
	case I128:
		if val.Int == nil {
			return xdr.ScVal{}, unsupported(val, TagI128, "nil integer")
		}
		parts, err := toInt128Parts(val.Int)
		if err != nil {
			return xdr.ScVal{}, unsupported(val.Int, TagI128, "%v", err)
		}

		return xdr.ScVal{Type: xdr.ScValTypeScvI128, I128: &parts}, nil
	case U32:
		u := xdr.Uint32(val)

		return xdr.ScVal{Type: xdr.ScValTypeScvU32, U32: &u}, nil
	case String:
		s := xdr.ScString(val)

		return xdr.ScVal{Type: xdr.ScValTypeScvString, Str: &s}, nil
	case Native:
		return encodeNative(val.V)
	case nil:
		return xdr.ScVal{}, unsupported(nil, TagNone, "nil Value")
	}

	return xdr.ScVal{}, unsupported(v, TagNone, "unknown Value implementation")
}

// EncodeAll encodes args in order.
func EncodeAll(args []Value) ([]xdr.ScVal, error) {
	out := make([]xdr.ScVal, 0, len(args))
	for _, arg := range args {
		sv, err := Encode(arg)
		if err != nil {
			return nil, err
		}
		out = append(out, sv)
	}

	return out, nil
}

func encodeNative(v any) (xdr.ScVal, error) {
	switch n := v.(type) {
	case nil:
		return xdr.ScVal{Type: xdr.ScValTypeScvVoid}, nil
	case xdr.ScVal:
		return n, nil
	case Value:
		return Encode(n)
	case bool:
		return xdr.ScVal{Type: xdr.ScValTypeScvBool, B: &n}, nil
	case string:
		s := xdr.ScString(n)

		return xdr.ScVal{Type: xdr.ScValTypeScvString, Str: &s}, nil
	case Symbol:
		sym := xdr.ScSymbol(n)

		return xdr.ScVal{Type: xdr.ScValTypeScvSymbol, Sym: &sym}, nil
	case []byte:
		b := xdr.ScBytes(slices.Clone(n))

		return xdr.ScVal{Type: xdr.ScValTypeScvBytes, Bytes: &b}, nil
	case []string:
		items := make([]any, len(n))
		for i, s := range n {
			items[i] = s
		}

		return encodeVec(items)
	case []any:
		return encodeVec(n)
	case map[string]any:
		return encodeMap(n)
	}

	if isNumeric(v) {
		return EncodeNative(v, TagNone)
	}

	return xdr.ScVal{}, unsupported(v, TagNone, "no native conversion")
}

func encodeVec(items []any) (xdr.ScVal, error) {
	vec := make(xdr.ScVec, 0, len(items))
	for _, item := range items {
		sv, err := EncodeNative(item, TagNone)
		if err != nil {
			return xdr.ScVal{}, err
		}
		vec = append(vec, sv)
	}
	pvec := &vec

	return xdr.ScVal{Type: xdr.ScValTypeScvVec, Vec: &pvec}, nil
}

// encodeMap encodes string keys as symbols. Soroban requires map entries sorted by key.
func encodeMap(m map[string]any) (xdr.ScVal, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	entries := make(xdr.ScMap, 0, len(keys))
	for _, k := range keys {
		val, err := EncodeNative(m[k], TagNone)
		if err != nil {
			return xdr.ScVal{}, err
		}
		sym := xdr.ScSymbol(k)
		entries = append(entries, xdr.ScMapEntry{
			Key: xdr.ScVal{Type: xdr.ScValTypeScvSymbol, Sym: &sym},
			Val: val,
		})
	}
	pmap := &entries

	return xdr.ScVal{Type: xdr.ScValTypeScvMap, Map: &pmap}, nil
}

func encodeAddress(s string) (xdr.ScAddress, error) {
	switch {
	case strings.HasPrefix(s, "G"):
		aid, err := xdr.AddressToAccountId(s)
		if err != nil {
			return xdr.ScAddress{}, err
		}

		return xdr.ScAddress{Type: xdr.ScAddressTypeScAddressTypeAccount, AccountId: &aid}, nil
	case strings.HasPrefix(s, "C"):
		raw, err := strkey.Decode(strkey.VersionByteContract, s)
		if err != nil {
			return xdr.ScAddress{}, err
		}
		var id xdr.ContractId
		copy(id[:], raw)

		return xdr.ScAddress{Type: xdr.ScAddressTypeScAddressTypeContract, ContractId: &id}, nil
	}

	return xdr.ScAddress{}, errInvalidAddress
}

// ContractAddress parses a C... strkey into an xdr.ScAddress.
func ContractAddress(contractID string) (xdr.ScAddress, error) {
	if !strings.HasPrefix(contractID, "C") {
		return xdr.ScAddress{}, unsupported(contractID, TagAddress, "contract ids start with C")
	}

	addr, err := encodeAddress(contractID)
	if err != nil {
		return xdr.ScAddress{}, unsupported(contractID, TagAddress, "%v", err)
	}

	return addr, nil
}
