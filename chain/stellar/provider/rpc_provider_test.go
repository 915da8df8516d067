package provider

import (
	"testing"
	"time"

	"github.com/stellar/go-stellar-sdk/keypair"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Linkd-Fund/linkd-go-sdk/chain/stellar"
	"github.com/Linkd-Fund/linkd-go-sdk/chain/stellar/ledger"
	"github.com/Linkd-Fund/linkd-go-sdk/pkg/logger"
)

func Test_RPCChainProviderConfig_validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		config  RPCChainProviderConfig
		wantErr string
	}{
		{
			name:   "testnet preset",
			config: RPCChainProviderConfig{Network: stellar.Testnet},
		},
		{
			name: "missing soroban RPC URL",
			config: RPCChainProviderConfig{Network: stellar.Network{
				HorizonURL: "https://horizon-testnet.stellar.org",
				Passphrase: stellar.Testnet.Passphrase,
			}},
			wantErr: "soroban RPC URL is required",
		},
		{
			name:    "empty network",
			config:  RPCChainProviderConfig{},
			wantErr: "invalid network",
		},
		{
			name:    "negative timeout",
			config:  RPCChainProviderConfig{Network: stellar.Testnet, Timeout: -time.Second},
			wantErr: "timeout must not be negative",
		},
		{
			name: "negative retry delay",
			config: RPCChainProviderConfig{
				Network: stellar.Testnet,
				Retry:   &ledger.RetryConfig{Attempts: 2, Delay: -time.Millisecond},
			},
			wantErr: "retry delay must not be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.config.validate()
			if tt.wantErr != "" {
				require.ErrorContains(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func Test_RPCChainProvider_Initialize(t *testing.T) {
	t.Parallel()

	kp := keypair.MustRandom()
	p := NewRPCChainProvider(RPCChainProviderConfig{
		Network:   stellar.Testnet,
		SignerGen: KeypairFromSecret(kp.Seed()),
		Logger:    logger.Test(t),
	})
	assert.Nil(t, p.BlockChain())

	got, err := p.Initialize(t.Context())
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, stellar.Testnet, got.Network)
	assert.Equal(t, "testnet", got.Name())
	assert.NotNil(t, got.RPC)
	assert.NotNil(t, got.Horizon)
	require.True(t, got.HasSigner())
	assert.Equal(t, kp.Address(), got.Signer.Address())

	again, err := p.Initialize(t.Context())
	require.NoError(t, err)
	assert.Same(t, got, again)
	assert.Same(t, got, p.BlockChain())
}

func Test_RPCChainProvider_InitializeErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		config  RPCChainProviderConfig
		wantErr string
	}{
		{
			name:    "invalid config",
			config:  RPCChainProviderConfig{},
			wantErr: "failed to validate provider config",
		},
		{
			name:    "bad signer",
			config:  RPCChainProviderConfig{Network: stellar.Testnet, SignerGen: KeypairFromSecret("nope")},
			wantErr: "failed to generate signer keypair",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := NewRPCChainProvider(tt.config)
			got, err := p.Initialize(t.Context())
			require.ErrorContains(t, err, tt.wantErr)
			assert.Nil(t, got)
		})
	}
}

func Test_RPCChainProvider_NoSigner(t *testing.T) {
	t.Parallel()

	got, err := NewRPCChainProvider(RPCChainProviderConfig{Network: stellar.Public}).Initialize(t.Context())
	require.NoError(t, err)
	assert.False(t, got.HasSigner())
}

func Test_RPCChainProvider_Name(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Stellar RPC Chain Provider", NewRPCChainProvider(RPCChainProviderConfig{}).Name())
}
