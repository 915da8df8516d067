// Package linkd is the entry point of the Linkd SDK. It connects to one Stellar network and
// exposes the milestone escrow client and the expenditure anchoring service built on it.
//
//	sdk, err := linkd.New(ctx, stellar.Testnet)
//	if err != nil {
//	    return err
//	}
//	envelope, err := sdk.Escrow.Deposit(ctx, contractID, donor, big.NewInt(1_500_000_000))
package linkd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Linkd-Fund/linkd-go-sdk/anchoring"
	"github.com/Linkd-Fund/linkd-go-sdk/chain/stellar"
	"github.com/Linkd-Fund/linkd-go-sdk/chain/stellar/ledger"
	"github.com/Linkd-Fund/linkd-go-sdk/chain/stellar/provider"
	"github.com/Linkd-Fund/linkd-go-sdk/chain/stellar/txpipeline"
	"github.com/Linkd-Fund/linkd-go-sdk/engine/config"
	"github.com/Linkd-Fund/linkd-go-sdk/escrow"
	"github.com/Linkd-Fund/linkd-go-sdk/pkg/logger"
)

// ErrNoSigner is returned by SDK.Anchor when no anchoring account is configured.
var ErrNoSigner = errors.New("no anchoring account configured")

// SDK bundles the clients of one network.
type SDK struct {
	Chain     *stellar.Chain
	Escrow    *escrow.Escrow
	Anchoring *anchoring.Service
}

type options struct {
	lggr    logger.Logger
	retry   *ledger.RetryConfig
	signer  provider.KeypairGenerator
	timeout time.Duration
}

// Option configures New.
type Option func(*options)

// WithLogger sets the logger shared by all clients.
func WithLogger(lggr logger.Logger) Option {
	return func(o *options) { o.lggr = lggr }
}

// WithRetry sets the retry policy of the ledger adapters.
func WithRetry(cfg ledger.RetryConfig) Option {
	return func(o *options) { o.retry = &cfg }
}

// WithTimeout sets the per-request HTTP timeout of the ledger adapters.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// WithAnchorSecret configures the anchoring account from an S... secret seed.
func WithAnchorSecret(secret string) Option {
	return func(o *options) { o.signer = provider.KeypairFromSecret(secret) }
}

// WithAnchorSeedHex configures the anchoring account from a hex-encoded 32 byte ed25519 seed.
func WithAnchorSeedHex(hexKey string) Option {
	return func(o *options) { o.signer = provider.KeypairFromHex(hexKey) }
}

// New connects to network.
func New(ctx context.Context, network stellar.Network, opts ...Option) (*SDK, error) {
	o := options{lggr: logger.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	chain, err := provider.NewRPCChainProvider(provider.RPCChainProviderConfig{
		Network:   network,
		Retry:     o.retry,
		Timeout:   o.timeout,
		SignerGen: o.signer,
		Logger:    o.lggr,
	}).Initialize(ctx)
	if err != nil {
		return nil, err
	}

	return FromChain(chain, o.lggr), nil
}

// NewFromConfig connects to the network described by cfg.
func NewFromConfig(ctx context.Context, cfg *config.Config, lggr logger.Logger) (*SDK, error) {
	network, err := cfg.StellarNetwork()
	if err != nil {
		return nil, err
	}

	opts := []Option{
		WithRetry(cfg.RPC.RetryConfig()),
		WithTimeout(cfg.RPC.Timeout),
	}
	if lggr != nil {
		opts = append(opts, WithLogger(lggr))
	}
	switch {
	case cfg.Anchor.Secret != "" && cfg.Anchor.SeedHex != "":
		return nil, errors.New("anchor.secret and anchor.seed_hex are mutually exclusive")
	case cfg.Anchor.Secret != "":
		opts = append(opts, WithAnchorSecret(cfg.Anchor.Secret))
	case cfg.Anchor.SeedHex != "":
		opts = append(opts, WithAnchorSeedHex(cfg.Anchor.SeedHex))
	}

	return New(ctx, network, opts...)
}

// FromChain builds the clients over an already connected chain. Contract calls go through the
// Soroban RPC adapter and anchors through Horizon.
func FromChain(chain *stellar.Chain, lggr logger.Logger) *SDK {
	if lggr == nil {
		lggr = logger.Nop()
	}

	pipeline := txpipeline.New(chain.RPC, txpipeline.WithLogger(lggr.Named("txpipeline")))

	return &SDK{
		Chain:     chain,
		Escrow:    escrow.New(pipeline, escrow.WithLogger(lggr.Named("escrow"))),
		Anchoring: anchoring.NewService(chain.Horizon, chain.Network, anchoring.WithLogger(lggr.Named("anchoring"))),
	}
}

// Anchor anchors hashHex with the configured anchoring account.
func (s *SDK) Anchor(ctx context.Context, hashHex string) (string, error) {
	if !s.Chain.HasSigner() {
		return "", ErrNoSigner
	}

	txHash, err := s.Anchoring.Anchor(ctx, hashHex, s.Chain.Signer)
	if err != nil {
		return "", fmt.Errorf("anchor on %s: %w", s.Chain.Name(), err)
	}

	return txHash, nil
}
