// Package anchor provides the CLI commands for expenditure hashing and anchoring.
package anchor

import (
	"context"

	linkd "github.com/Linkd-Fund/linkd-go-sdk"
	"github.com/Linkd-Fund/linkd-go-sdk/engine/config"
	"github.com/Linkd-Fund/linkd-go-sdk/pkg/logger"
)

// Anchorer anchors an expenditure hash with the configured anchoring account.
type Anchorer interface {
	Anchor(ctx context.Context, hashHex string) (string, error)
}

var _ Anchorer = (*linkd.SDK)(nil)

// AnchorerFactoryFunc builds the Anchorer from the configuration file at configPath.
type AnchorerFactoryFunc func(ctx context.Context, lggr logger.Logger, configPath string) (Anchorer, error)

// defaultAnchorerFactory loads the configuration and connects to the configured network.
func defaultAnchorerFactory(ctx context.Context, lggr logger.Logger, configPath string) (Anchorer, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	return linkd.NewFromConfig(ctx, cfg, lggr)
}

// Deps holds the injectable dependencies for anchor commands.
// All fields are optional; nil values will use production defaults.
type Deps struct {
	// AnchorerFactory builds the Anchorer used by submit.
	// Default: loads the config and connects through linkd.NewFromConfig
	AnchorerFactory AnchorerFactoryFunc
}

// applyDefaults fills in nil dependencies with production defaults.
func (d *Deps) applyDefaults() {
	if d.AnchorerFactory == nil {
		d.AnchorerFactory = defaultAnchorerFactory
	}
}
