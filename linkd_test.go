package linkd

import (
	"bytes"
	"context"
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/stellar/go-stellar-sdk/keypair"
	"github.com/stellar/go-stellar-sdk/strkey"
	"github.com/stellar/go-stellar-sdk/xdr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Linkd-Fund/linkd-go-sdk/anchoring"
	"github.com/Linkd-Fund/linkd-go-sdk/chain/stellar"
	"github.com/Linkd-Fund/linkd-go-sdk/chain/stellar/ledger"
	"github.com/Linkd-Fund/linkd-go-sdk/chain/stellar/ledger/mocks"
	"github.com/Linkd-Fund/linkd-go-sdk/engine/config"
	"github.com/Linkd-Fund/linkd-go-sdk/pkg/logger"
)

func TestNew(t *testing.T) {
	t.Parallel()

	kp := keypair.MustRandom()

	sdk, err := New(t.Context(), stellar.Testnet,
		WithLogger(logger.Test(t)),
		WithRetry(ledger.RetryConfig{Attempts: 1}),
		WithAnchorSecret(kp.Seed()),
	)
	require.NoError(t, err)

	assert.Equal(t, stellar.Testnet, sdk.Chain.Network)
	assert.NotNil(t, sdk.Escrow)
	assert.NotNil(t, sdk.Anchoring)
	require.True(t, sdk.Chain.HasSigner())
	assert.Equal(t, kp.Address(), sdk.Chain.Signer.Address())
}

func TestNew_InvalidNetwork(t *testing.T) {
	t.Parallel()

	_, err := New(t.Context(), stellar.Network{Name: "nowhere"})
	require.ErrorContains(t, err, "soroban RPC URL is required")
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	sdk, err := NewFromConfig(t.Context(), &config.Config{
		Network: config.NetworkConfig{Name: "public", HorizonURL: "https://horizon.example.org"},
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, "public", sdk.Chain.Name())
	assert.Equal(t, "https://horizon.example.org", sdk.Chain.Network.HorizonURL)
	assert.False(t, sdk.Chain.HasSigner())

	_, err = NewFromConfig(t.Context(), &config.Config{}, nil)
	require.EqualError(t, err, "network name is required")
}

func TestNewFromConfig_AnchorAccount(t *testing.T) {
	t.Parallel()

	kp := keypair.MustRandom()
	const seedHex = "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"

	seed, err := hex.DecodeString(seedHex)
	require.NoError(t, err)
	var rawSeed [32]byte
	copy(rawSeed[:], seed)
	fromSeed, err := keypair.FromRawSeed(rawSeed)
	require.NoError(t, err)

	tests := []struct {
		name        string
		give        config.AnchorConfig
		wantAddress string
		wantErr     string
	}{
		{
			name:        "secret",
			give:        config.AnchorConfig{Secret: kp.Seed()},
			wantAddress: kp.Address(),
		},
		{
			name:        "hex seed",
			give:        config.AnchorConfig{SeedHex: seedHex},
			wantAddress: fromSeed.Address(),
		},
		{
			name:        "hex seed with prefix",
			give:        config.AnchorConfig{SeedHex: "0x" + seedHex},
			wantAddress: fromSeed.Address(),
		},
		{
			name:    "invalid hex seed",
			give:    config.AnchorConfig{SeedHex: "0123"},
			wantErr: "failed to create keypair from hex",
		},
		{
			name:    "secret and hex seed",
			give:    config.AnchorConfig{Secret: kp.Seed(), SeedHex: seedHex},
			wantErr: "anchor.secret and anchor.seed_hex are mutually exclusive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sdk, err := NewFromConfig(t.Context(), &config.Config{
				Network: config.NetworkConfig{Name: "testnet"},
				Anchor:  tt.give,
			}, logger.Test(t))
			if tt.wantErr != "" {
				require.ErrorContains(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.True(t, sdk.Chain.HasSigner())
			assert.Equal(t, tt.wantAddress, sdk.Chain.Signer.Address())
		})
	}
}

func TestSDK_Anchor_NoSigner(t *testing.T) {
	t.Parallel()

	horizon := mocks.NewMockRPC(t)
	sdk := FromChain(&stellar.Chain{Network: stellar.Testnet, RPC: mocks.NewMockRPC(t), Horizon: horizon}, nil)

	_, err := sdk.Anchor(t.Context(), anchoring.GenerateExpenditureHash("INV-1", 1, "S", nil))
	require.ErrorIs(t, err, ErrNoSigner)
}

func TestSDK_EndToEnd(t *testing.T) {
	t.Parallel()

	kp := keypair.MustRandom()
	donor := keypair.MustRandom().Address()
	contractID, err := strkey.Encode(strkey.VersionByteContract, bytes.Repeat([]byte{0x01}, 32))
	require.NoError(t, err)

	rpc := mocks.NewMockRPC(t)
	rpc.EXPECT().LoadAccount(mock.Anything, donor).Return(ledger.Account{ID: donor, Sequence: 10}, nil)
	data, err := xdr.MarshalBase64(xdr.SorobanTransactionData{ResourceFee: 2_000})
	require.NoError(t, err)
	rpc.EXPECT().SimulateTransaction(mock.Anything, mock.Anything).
		Return(ledger.SimulationResult{TransactionData: data, MinResourceFee: 2_000}, nil)

	horizon := mocks.NewMockRPC(t)
	horizon.EXPECT().LoadAccount(mock.Anything, kp.Address()).Return(ledger.Account{ID: kp.Address(), Sequence: 3}, nil)
	horizon.EXPECT().SubmitTransaction(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, _ string) (ledger.SubmitResult, error) {
			return ledger.SubmitResult{Hash: "anchored"}, nil
		})

	sdk := FromChain(&stellar.Chain{
		Network: stellar.Testnet,
		RPC:     rpc,
		Horizon: horizon,
		Signer:  stellar.NewStellarKeypairSigner(kp),
	}, logger.Test(t))

	envelope, err := sdk.Escrow.Deposit(t.Context(), contractID, donor, big.NewInt(1_500_000_000))
	require.NoError(t, err)
	assert.NotEmpty(t, envelope.String())

	record := anchoring.ExpenditureRecord{InvoiceNumber: "INV-001", Amount: 150.5, SupplierName: "Acme Supplies", DonorIDs: []string{donor}}
	txHash, err := sdk.Anchor(t.Context(), record.Hash())
	require.NoError(t, err)
	assert.Equal(t, "anchored", txHash)

	_, err = sdk.Anchor(t.Context(), "nothex")
	var hashErr *anchoring.InvalidHashFormatError
	require.ErrorAs(t, err, &hashErr)
}
