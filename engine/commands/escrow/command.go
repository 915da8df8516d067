package escrow

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Linkd-Fund/linkd-go-sdk/engine/commands/flags"
	"github.com/Linkd-Fund/linkd-go-sdk/engine/commands/text"
	"github.com/Linkd-Fund/linkd-go-sdk/escrow"
	"github.com/Linkd-Fund/linkd-go-sdk/pkg/logger"
)

var (
	escrowShort = "Milestone escrow operations"

	escrowLong = text.LongDesc(`
		Commands for the milestone escrow contract.

		Mutating commands load the principal's account, simulate the contract call and print the
		assembled, unsigned transaction envelope as base64 XDR. The principal signs and submits it
		with their own wallet. Query commands read the escrow's current state.
	`)
)

// Config holds the configuration for escrow commands.
type Config struct {
	// Logger is the logger to use for command output. Required.
	Logger logger.Logger

	// Deps holds optional dependencies that can be overridden.
	// If fields are nil, production defaults are used.
	Deps Deps
}

// Validate checks that all required configuration fields are set.
func (c Config) Validate() error {
	var missing []string

	if c.Logger == nil {
		missing = append(missing, "Logger")
	}

	if len(missing) > 0 {
		return errors.New("escrow.Config: missing required fields: " + strings.Join(missing, ", "))
	}

	return nil
}

// deps returns the Deps with defaults applied.
func (c *Config) deps() *Deps {
	c.Deps.applyDefaults()

	return &c.Deps
}

// NewCommand creates a new escrow command with a subcommand per contract method.
func NewCommand(cfg Config) (*cobra.Command, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.deps()

	cmd := &cobra.Command{
		Use:   "escrow",
		Short: escrowShort,
		Long:  escrowLong,
	}

	flags.Config(cmd)

	for _, m := range escrow.Methods() {
		if !m.ReadOnly() {
			cmd.AddCommand(newWriteCmd(cfg, m))
		}
	}
	cmd.AddCommand(newTotalEscrowedCmd(cfg))
	cmd.AddCommand(newMilestoneCountCmd(cfg))
	cmd.AddCommand(newViewCmd(cfg))

	return cmd, nil
}

// connect builds the escrow client from the --config flag.
func connect(cmd *cobra.Command, cfg Config) (Client, error) {
	configPath := flags.MustString(cmd.Flags().GetString("config"))

	return cfg.deps().ClientFactory(cmd.Context(), cfg.Logger, configPath)
}

// flagName turns a contract identifier into a flag or command name.
func flagName(ident string) string {
	return strings.ReplaceAll(ident, "_", "-")
}
