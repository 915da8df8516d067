package stellar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetworkByName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		give    string
		want    Network
		wantErr string
	}{
		{give: "testnet", want: Testnet},
		{give: " TESTNET ", want: Testnet},
		{give: "public", want: Public},
		{give: "mainnet", want: Public},
		{give: "futurenet", wantErr: `unknown network "futurenet": expected testnet or public`},
		{give: "", wantErr: `unknown network ""`},
	}

	for _, tt := range tests {
		t.Run(tt.give, func(t *testing.T) {
			t.Parallel()

			got, err := NetworkByName(tt.give)
			if tt.wantErr != "" {
				require.ErrorContains(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			require.NoError(t, got.Validate())
		})
	}
}

func TestNetwork_Validate(t *testing.T) {
	t.Parallel()

	err := Network{Name: "custom"}.Validate()
	require.Error(t, err)
	assert.ErrorContains(t, err, "soroban RPC URL is required")
	assert.ErrorContains(t, err, "horizon URL is required")
	assert.ErrorContains(t, err, "network passphrase is required")

	n := Testnet
	n.HorizonURL = ""
	require.EqualError(t, n.Validate(), "horizon URL is required")
}

func TestPresetPassphrases(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Test SDF Network ; September 2015", Testnet.Passphrase)
	assert.Equal(t, "Public Global Stellar Network ; September 2015", Public.Passphrase)
}
