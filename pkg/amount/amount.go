// Package amount converts between human-readable token amounts and on-ledger base units.
//
// Stellar assets and the escrow's SAC token carry seven decimal places: one unit is 10^7 stroops.
package amount

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// Decimals is the number of fractional digits of a Stellar amount.
const Decimals = 7

var stroopsPerUnit = decimal.New(1, Decimals)

// FormatAmount renders v with exactly seven fractional digits. Rounding applies to the exact
// binary value of v, so 1.00000005 renders as "1.0000000".
func FormatAmount(v float64) string {
	return decimal.NewFromFloatWithExponent(v, -Decimals).StringFixed(Decimals)
}

// Parse parses a decimal amount string such as "150.5".
func Parse(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}

	return d, nil
}

// ToStroops converts a unit amount into base units. Amounts with more than seven fractional
// digits are rejected rather than silently truncated.
func ToStroops(d decimal.Decimal) (*big.Int, error) {
	scaled := d.Mul(stroopsPerUnit)
	if !scaled.Equal(scaled.Truncate(0)) {
		return nil, fmt.Errorf("amount %s has more than %d decimal places", d.String(), Decimals)
	}

	return scaled.BigInt(), nil
}

// ParseStroops parses a decimal amount string directly into base units.
func ParseStroops(s string) (*big.Int, error) {
	d, err := Parse(s)
	if err != nil {
		return nil, err
	}

	return ToStroops(d)
}

// FromStroops converts base units into a unit amount.
func FromStroops(stroops *big.Int) decimal.Decimal {
	if stroops == nil {
		return decimal.Zero
	}

	return decimal.NewFromBigInt(stroops, -Decimals)
}

// FormatStroops renders base units as a unit amount with seven fractional digits.
func FormatStroops(stroops *big.Int) string {
	return FromStroops(stroops).StringFixed(Decimals)
}
