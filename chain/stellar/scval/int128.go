package scval

import (
	"errors"
	"math"
	"math/big"

	"github.com/stellar/go-stellar-sdk/xdr"
)

var (
	two128  = new(big.Int).Lsh(big.NewInt(1), 128)
	mask64  = new(big.Int).SetUint64(math.MaxUint64)
	maxI128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
	minI128 = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))

	errI128Range = errors.New("value out of i128 range")
)

// MaxI128 returns 2^127-1.
func MaxI128() *big.Int { return new(big.Int).Set(maxI128) }

// MinI128 returns -2^127.
func MinI128() *big.Int { return new(big.Int).Set(minI128) }

// toInt128Parts splits v into two's complement hi/lo words.
func toInt128Parts(v *big.Int) (xdr.Int128Parts, error) {
	if v.Cmp(minI128) < 0 || v.Cmp(maxI128) > 0 {
		return xdr.Int128Parts{}, errI128Range
	}

	u := new(big.Int).Set(v)
	if u.Sign() < 0 {
		u.Add(u, two128)
	}

	lo := new(big.Int).And(u, mask64).Uint64()
	hi := new(big.Int).Rsh(u, 64).Uint64()

	return xdr.Int128Parts{
		Hi: xdr.Int64(int64(hi)),
		Lo: xdr.Uint64(lo),
	}, nil
}

func fromInt128Parts(p xdr.Int128Parts) *big.Int {
	v := big.NewInt(int64(p.Hi))
	v.Lsh(v, 64)

	return v.Add(v, new(big.Int).SetUint64(uint64(p.Lo)))
}

func fromUInt128Parts(p xdr.UInt128Parts) *big.Int {
	v := new(big.Int).SetUint64(uint64(p.Hi))
	v.Lsh(v, 64)

	return v.Add(v, new(big.Int).SetUint64(uint64(p.Lo)))
}

// toBigInt converts any Go integer kind or an integral float to a big.Int.
func toBigInt(v any) (*big.Int, bool) {
	switch n := v.(type) {
	case int:
		return big.NewInt(int64(n)), true
	case int8:
		return big.NewInt(int64(n)), true
	case int16:
		return big.NewInt(int64(n)), true
	case int32:
		return big.NewInt(int64(n)), true
	case int64:
		return big.NewInt(n), true
	case uint:
		return new(big.Int).SetUint64(uint64(n)), true
	case uint8:
		return new(big.Int).SetUint64(uint64(n)), true
	case uint16:
		return new(big.Int).SetUint64(uint64(n)), true
	case uint32:
		return new(big.Int).SetUint64(uint64(n)), true
	case uint64:
		return new(big.Int).SetUint64(n), true
	case float32:
		return floatToBigInt(float64(n))
	case float64:
		return floatToBigInt(n)
	case *big.Int:
		if n == nil {
			return nil, false
		}

		return new(big.Int).Set(n), true
	}

	return nil, false
}

func floatToBigInt(f float64) (*big.Int, bool) {
	if math.IsInf(f, 0) || math.IsNaN(f) || math.Trunc(f) != f {
		return nil, false
	}

	i, _ := big.NewFloat(f).Int(nil)

	return i, true
}

// isNumeric reports whether v is a Go number kind.
func isNumeric(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64, *big.Int:
		return true
	}

	return false
}
