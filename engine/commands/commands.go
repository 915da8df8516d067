// Package commands provides the linkd CLI command groups.
//
// There are two ways to use commands from this package:
//
// 1. Via the Commands factory (recommended for most use cases):
//
//	commands := commands.New(lggr)
//	escrowCmd, err := commands.Escrow()
//	if err != nil {
//	    return err
//	}
//	app.AddCommand(escrowCmd)
//
// 2. Via direct package imports (for advanced DI/testing):
//
//	import "github.com/Linkd-Fund/linkd-go-sdk/engine/commands/escrow"
//
//	cmd, err := escrow.NewCommand(escrow.Config{
//	    Logger: lggr,
//	    Deps:   escrow.Deps{...},  // inject fakes for testing
//	})
package commands

import (
	"github.com/spf13/cobra"

	"github.com/Linkd-Fund/linkd-go-sdk/engine/commands/anchor"
	"github.com/Linkd-Fund/linkd-go-sdk/engine/commands/escrow"
	"github.com/Linkd-Fund/linkd-go-sdk/pkg/logger"
)

// Commands provides a factory for creating CLI commands with shared configuration.
type Commands struct {
	lggr logger.Logger
}

// New creates a new Commands factory with the given logger.
// The logger will be shared across all commands created by this factory.
func New(lggr logger.Logger) *Commands {
	return &Commands{lggr: lggr}
}

// Escrow creates the escrow command group.
func (c *Commands) Escrow() (*cobra.Command, error) {
	return escrow.NewCommand(escrow.Config{Logger: c.lggr})
}

// Anchor creates the anchor command group.
func (c *Commands) Anchor() (*cobra.Command, error) {
	return anchor.NewCommand(anchor.Config{Logger: c.lggr})
}

// Root creates the linkd root command with every command group attached.
func (c *Commands) Root() (*cobra.Command, error) {
	root := &cobra.Command{
		Use:           "linkd",
		Short:         "Linkd milestone escrow and expenditure anchoring on Stellar",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	for _, newCmd := range []func() (*cobra.Command, error){c.Escrow, c.Anchor} {
		cmd, err := newCmd()
		if err != nil {
			return nil, err
		}
		root.AddCommand(cmd)
	}

	return root, nil
}
