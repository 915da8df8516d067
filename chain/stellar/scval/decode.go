package scval

import (
	"errors"
	"slices"

	"github.com/stellar/go-stellar-sdk/strkey"
	"github.com/stellar/go-stellar-sdk/xdr"
)

var errInvalidAddress = errors.New("address must be a G... account or C... contract strkey")

// Decode converts a contract value to its Go representation:
//
//	address          -> string (strkey)
//	i128, u128       -> *big.Int
//	u32 / i32        -> uint32 / int32
//	u64 / i64        -> uint64 / int64 (timepoint and duration decode as uint64)
//	string, symbol   -> string
//	bool, void       -> bool, nil
//	bytes            -> []byte
//	vec              -> []any
//	map              -> map[string]any, keys must be strings or symbols
func Decode(v xdr.ScVal) (any, error) {
	switch v.Type {
	case xdr.ScValTypeScvAddress:
		addr, ok := v.GetAddress()
		if !ok {
			return nil, undecodable(v.Type, "missing address body")
		}

		return decodeAddress(addr)
	case xdr.ScValTypeScvI128:
		parts, ok := v.GetI128()
		if !ok {
			return nil, undecodable(v.Type, "missing i128 body")
		}

		return fromInt128Parts(parts), nil
	case xdr.ScValTypeScvU128:
		parts, ok := v.GetU128()
		if !ok {
			return nil, undecodable(v.Type, "missing u128 body")
		}

		return fromUInt128Parts(parts), nil
	case xdr.ScValTypeScvU32:
		u, ok := v.GetU32()
		if !ok {
			return nil, undecodable(v.Type, "missing u32 body")
		}

		return uint32(u), nil
	case xdr.ScValTypeScvI32:
		i, ok := v.GetI32()
		if !ok {
			return nil, undecodable(v.Type, "missing i32 body")
		}

		return int32(i), nil
	case xdr.ScValTypeScvU64:
		u, ok := v.GetU64()
		if !ok {
			return nil, undecodable(v.Type, "missing u64 body")
		}

		return uint64(u), nil
	case xdr.ScValTypeScvI64:
		i, ok := v.GetI64()
		if !ok {
			return nil, undecodable(v.Type, "missing i64 body")
		}

		return int64(i), nil
	case xdr.ScValTypeScvTimepoint:
		tp, ok := v.GetTimepoint()
		if !ok {
			return nil, undecodable(v.Type, "missing timepoint body")
		}

		return uint64(tp), nil
	case xdr.ScValTypeScvDuration:
		d, ok := v.GetDuration()
		if !ok {
			return nil, undecodable(v.Type, "missing duration body")
		}

		return uint64(d), nil
	case xdr.ScValTypeScvString:
		s, ok := v.GetStr()
		if !ok {
			return nil, undecodable(v.Type, "missing string body")
		}

		return string(s), nil
	case xdr.ScValTypeScvSymbol:
		s, ok := v.GetSym()
		if !ok {
			return nil, undecodable(v.Type, "missing symbol body")
		}

		return string(s), nil
	case xdr.ScValTypeScvBool:
		b, ok := v.GetB()
		if !ok {
			return nil, undecodable(v.Type, "missing bool body")
		}

		return b, nil
	case xdr.ScValTypeScvVoid:
		return nil, nil
	case xdr.ScValTypeScvBytes:
		b, ok := v.GetBytes()
		if !ok {
			return nil, undecodable(v.Type, "missing bytes body")
		}

		return slices.Clone([]byte(b)), nil
	case xdr.ScValTypeScvVec:
		vec, ok := v.GetVec()
		if !ok || vec == nil {
			return nil, undecodable(v.Type, "missing vec body")
		}

		return decodeVec(*vec)
	case xdr.ScValTypeScvMap:
		m, ok := v.GetMap()
		if !ok || m == nil {
			return nil, undecodable(v.Type, "missing map body")
		}

		return decodeMap(*m)
	}

	return nil, undecodable(v.Type, "unsupported contract value type")
}

// DecodeBase64 decodes a base64 XDR encoded xdr.ScVal and converts it with Decode.
func DecodeBase64(b64 string) (any, error) {
	var v xdr.ScVal
	if err := xdr.SafeUnmarshalBase64(b64, &v); err != nil {
		return nil, err
	}

	return Decode(v)
}

func decodeVec(vec xdr.ScVec) ([]any, error) {
	out := make([]any, 0, len(vec))
	for _, item := range vec {
		v, err := Decode(item)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}

	return out, nil
}

func decodeMap(m xdr.ScMap) (map[string]any, error) {
	out := make(map[string]any, len(m))
	for _, entry := range m {
		var key string
		switch entry.Key.Type {
		case xdr.ScValTypeScvSymbol:
			key = string(*entry.Key.Sym)
		case xdr.ScValTypeScvString:
			key = string(*entry.Key.Str)
		default:
			return nil, undecodable(xdr.ScValTypeScvMap, "map key of type %s", entry.Key.Type)
		}

		val, err := Decode(entry.Val)
		if err != nil {
			return nil, err
		}
		out[key] = val
	}

	return out, nil
}

func decodeAddress(addr xdr.ScAddress) (string, error) {
	switch addr.Type {
	case xdr.ScAddressTypeScAddressTypeAccount:
		if addr.AccountId == nil {
			return "", undecodable(xdr.ScValTypeScvAddress, "missing account id")
		}

		return addr.AccountId.Address(), nil
	case xdr.ScAddressTypeScAddressTypeContract:
		if addr.ContractId == nil {
			return "", undecodable(xdr.ScValTypeScvAddress, "missing contract id")
		}
		id := *addr.ContractId

		s, err := strkey.Encode(strkey.VersionByteContract, id[:])
		if err != nil {
			return "", undecodable(xdr.ScValTypeScvAddress, "%v", err)
		}

		return s, nil
	}

	return "", undecodable(xdr.ScValTypeScvAddress, "address type %s", addr.Type)
}
