// Package escrow provides the CLI commands for the milestone escrow contract.
package escrow

import (
	"context"
	"math/big"

	linkd "github.com/Linkd-Fund/linkd-go-sdk"
	"github.com/Linkd-Fund/linkd-go-sdk/chain/stellar/txpipeline"
	"github.com/Linkd-Fund/linkd-go-sdk/engine/config"
	"github.com/Linkd-Fund/linkd-go-sdk/escrow"
	"github.com/Linkd-Fund/linkd-go-sdk/pkg/logger"
)

// Client is the subset of *escrow.Escrow the commands use.
type Client interface {
	Initialize(ctx context.Context, contractID, admin, ngo, auditor, beneficiary, token string) (txpipeline.Envelope, error)
	AddMilestone(ctx context.Context, contractID, admin string, targetAmount *big.Int) (txpipeline.Envelope, error)
	Deposit(ctx context.Context, contractID, donor string, amount *big.Int) (txpipeline.Envelope, error)
	SubmitProof(ctx context.Context, contractID, ngo string, milestoneID uint32, proofHash string) (txpipeline.Envelope, error)
	ApproveNgo(ctx context.Context, contractID, ngo string, milestoneID uint32) (txpipeline.Envelope, error)
	ApproveAuditor(ctx context.Context, contractID, auditor string, milestoneID uint32) (txpipeline.Envelope, error)
	RefundMilestone(ctx context.Context, contractID, admin string, milestoneID uint32, refundAddress string) (txpipeline.Envelope, error)
	TotalEscrowed(ctx context.Context, contractID string) (*big.Int, error)
	MilestoneCount(ctx context.Context, contractID string) (uint32, error)
	View(ctx context.Context, contractID string) (escrow.View, error)
}

var _ Client = (*escrow.Escrow)(nil)

// ClientFactoryFunc builds the escrow client from the configuration file at configPath.
type ClientFactoryFunc func(ctx context.Context, lggr logger.Logger, configPath string) (Client, error)

// defaultClientFactory loads the configuration and connects to the configured network.
func defaultClientFactory(ctx context.Context, lggr logger.Logger, configPath string) (Client, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	sdk, err := linkd.NewFromConfig(ctx, cfg, lggr)
	if err != nil {
		return nil, err
	}

	return sdk.Escrow, nil
}

// Deps holds the injectable dependencies for escrow commands.
// All fields are optional; nil values will use production defaults.
type Deps struct {
	// ClientFactory builds the escrow client.
	// Default: loads the config and connects through linkd.NewFromConfig
	ClientFactory ClientFactoryFunc
}

// applyDefaults fills in nil dependencies with production defaults.
func (d *Deps) applyDefaults() {
	if d.ClientFactory == nil {
		d.ClientFactory = defaultClientFactory
	}
}
