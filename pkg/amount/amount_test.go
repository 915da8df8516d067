package amount

import (
	"math/big"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatAmount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		give float64
		want string
	}{
		{give: 3, want: "3.0000000"},
		{give: 150.5, want: "150.5000000"},
		{give: 1.23456789, want: "1.2345679"},
		{give: 0.00000004, want: "0.0000000"},
		{give: 0.00000005, want: "0.0000000"},
		{give: -2.5, want: "-2.5000000"},
		{give: 0, want: "0.0000000"},
		{give: 1.00000005, want: "1.0000000"},
		{give: 1.5e-07, want: "0.0000001"},
		{give: 2.00000025, want: "2.0000002"},
		{give: 1.23456785, want: "1.2345678"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, FormatAmount(tt.give))
		})
	}
}

func TestParseStroops(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		give    string
		want    string
		wantErr string
	}{
		{name: "whole units", give: "150", want: "1500000000"},
		{name: "fractional", give: "150.5", want: "1505000000"},
		{name: "one stroop", give: "0.0000001", want: "1"},
		{name: "too precise", give: "0.00000001", wantErr: "more than 7 decimal places"},
		{name: "not a number", give: "abc", wantErr: `invalid amount "abc"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseStroops(tt.give)
			if tt.wantErr != "" {
				require.ErrorContains(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestFromStroops(t *testing.T) {
	t.Parallel()

	assert.True(t, decimal.RequireFromString("150.5").Equal(FromStroops(big.NewInt(1_505_000_000))))
	assert.True(t, decimal.Zero.Equal(FromStroops(nil)))

	back, err := ToStroops(FromStroops(big.NewInt(42)))
	require.NoError(t, err)
	assert.Equal(t, int64(42), back.Int64())
}

func TestFormatStroops(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "150.5000000", FormatStroops(big.NewInt(1_505_000_000)))
	assert.Equal(t, "0.0000001", FormatStroops(big.NewInt(1)))
	assert.Equal(t, "0.0000000", FormatStroops(nil))
}
