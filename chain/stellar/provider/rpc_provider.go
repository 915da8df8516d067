// Package provider connects a stellar.Chain from a network description.
package provider

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Linkd-Fund/linkd-go-sdk/chain/stellar"
	"github.com/Linkd-Fund/linkd-go-sdk/chain/stellar/ledger"
	"github.com/Linkd-Fund/linkd-go-sdk/chain/stellar/ledger/horizon"
	"github.com/Linkd-Fund/linkd-go-sdk/chain/stellar/ledger/sorobanrpc"
	"github.com/Linkd-Fund/linkd-go-sdk/pkg/logger"
)

// DefaultTimeout is the HTTP timeout of both adapters when none is configured.
const DefaultTimeout = 60 * time.Second

type RPCChainProviderConfig struct {
	// Required: the network to connect to.
	Network stellar.Network

	// Optional: retry policy for idempotent reads. Defaults to ledger.DefaultRetryConfig.
	Retry *ledger.RetryConfig

	// Optional: per-request HTTP timeout. Defaults to DefaultTimeout.
	Timeout time.Duration

	// Optional: a generator for the SDK's own signing account, used for anchoring.
	SignerGen KeypairGenerator

	// Optional: defaults to logger.Nop().
	Logger logger.Logger
}

func (c RPCChainProviderConfig) validate() error {
	if err := c.Network.Validate(); err != nil {
		return fmt.Errorf("invalid network: %w", err)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative, got %s", c.Timeout)
	}
	if c.Retry != nil && c.Retry.Delay < 0 {
		return fmt.Errorf("retry delay must not be negative, got %s", c.Retry.Delay)
	}

	return nil
}

// RPCChainProvider dials the Soroban RPC and Horizon endpoints of a network.
type RPCChainProvider struct {
	config RPCChainProviderConfig

	once  sync.Once
	chain *stellar.Chain
	err   error
}

func NewRPCChainProvider(config RPCChainProviderConfig) *RPCChainProvider {
	return &RPCChainProvider{config: config}
}

// Initialize builds the chain on first call and returns the same chain afterwards.
func (p *RPCChainProvider) Initialize(_ context.Context) (*stellar.Chain, error) {
	p.once.Do(func() {
		p.chain, p.err = p.initialize()
	})

	return p.chain, p.err
}

func (p *RPCChainProvider) initialize() (*stellar.Chain, error) {
	if err := p.config.validate(); err != nil {
		return nil, fmt.Errorf("failed to validate provider config: %w", err)
	}

	retryCfg := ledger.DefaultRetryConfig
	if p.config.Retry != nil {
		retryCfg = *p.config.Retry
	}

	timeout := p.config.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	lggr := p.config.Logger
	if lggr == nil {
		lggr = logger.Nop()
	}

	var signer stellar.StellarSigner
	if p.config.SignerGen != nil {
		var err error
		if signer, err = p.config.SignerGen.Generate(); err != nil {
			return nil, fmt.Errorf("failed to generate signer keypair: %w", err)
		}
	}

	network := p.config.Network

	return &stellar.Chain{
		Network: network,
		RPC: sorobanrpc.Dial(network.SorobanRPCURL, timeout,
			sorobanrpc.WithRetry(retryCfg),
			sorobanrpc.WithLogger(lggr.Named("sorobanrpc")),
		),
		Horizon: horizon.Dial(network.HorizonURL, timeout,
			horizon.WithRetry(retryCfg),
			horizon.WithLogger(lggr.Named("horizon")),
		),
		Signer: signer,
	}, nil
}

func (p *RPCChainProvider) Name() string {
	return "Stellar RPC Chain Provider"
}

// BlockChain returns the initialized chain, or nil before Initialize succeeds.
func (p *RPCChainProvider) BlockChain() *stellar.Chain {
	return p.chain
}
