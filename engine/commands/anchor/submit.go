package anchor

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Linkd-Fund/linkd-go-sdk/anchoring"
	"github.com/Linkd-Fund/linkd-go-sdk/engine/commands/flags"
	"github.com/Linkd-Fund/linkd-go-sdk/engine/commands/text"
)

var (
	submitShort = "Anchor an expenditure hash on the ledger"

	submitLong = text.LongDesc(`
		Anchors an expenditure hash by submitting a self-payment of one stroop that carries the
		hash as its memo. The anchoring account is read from the configuration (anchor.secret or
		LINKD_ANCHOR_SECRET). Prints the hash of the submitted transaction.
	`)

	submitExample = text.Examples(`
		# Anchor a hash computed by 'linkd anchor hash'
		linkd anchor submit --hash dcb72cd2608a01c6a5342a357e569a1f5ba5f488ca6928d6197193b6c552fd73
	`)
)

func newSubmitCmd(cfg Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "submit",
		Short:   submitShort,
		Long:    submitLong,
		Example: submitExample,
		RunE: func(cmd *cobra.Command, _ []string) error {
			hashHex := flags.MustString(cmd.Flags().GetString("hash"))

			// Reject malformed input before touching the network.
			if _, err := anchoring.ParseHash(hashHex); err != nil {
				return err
			}

			configPath := flags.MustString(cmd.Flags().GetString("config"))
			anchorer, err := cfg.deps().AnchorerFactory(cmd.Context(), cfg.Logger, configPath)
			if err != nil {
				return fmt.Errorf("failed to connect: %w", err)
			}

			txHash, err := anchorer.Anchor(cmd.Context(), hashHex)
			if err != nil {
				return fmt.Errorf("error anchoring hash: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), txHash)

			return err
		},
	}

	cmd.Flags().String("hash", "", "Expenditure hash, 64 hex characters (required)")
	_ = cmd.MarkFlagRequired("hash")

	return cmd
}
