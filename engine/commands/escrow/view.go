package escrow

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Linkd-Fund/linkd-go-sdk/engine/commands/flags"
	"github.com/Linkd-Fund/linkd-go-sdk/engine/commands/text"
	"github.com/Linkd-Fund/linkd-go-sdk/pkg/amount"
)

var (
	viewShort = "Show the escrow's total and milestone count"

	viewLong = text.LongDesc(`
		Reads the escrow's current totals from the ledger. Amounts are shown both in base units
		and in token units.
	`)

	viewExample = text.Examples(`
		# Show the escrow state as YAML
		linkd escrow view -c CCONTRACT

		# Show the escrow state as JSON
		linkd escrow view -c CCONTRACT -f json
	`)
)

// viewOutput is the printed form of escrow.View.
type viewOutput struct {
	Contract           string `json:"contract" yaml:"contract"`
	TotalEscrowed      string `json:"total_escrowed" yaml:"total_escrowed"`
	TotalEscrowedUnits string `json:"total_escrowed_units" yaml:"total_escrowed_units"`
	MilestoneCount     uint32 `json:"milestone_count" yaml:"milestone_count"`
}

func newViewCmd(cfg Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "view",
		Short:   viewShort,
		Long:    viewLong,
		Example: viewExample,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runView(cmd, cfg,
				flags.MustString(cmd.Flags().GetString("contract")),
				flags.MustString(cmd.Flags().GetString("format")),
			)
		},
	}

	flags.Contract(cmd)
	flags.Format(cmd)

	return cmd
}

func runView(cmd *cobra.Command, cfg Config, contract, format string) error {
	if err := flags.ValidateFormat(format); err != nil {
		return err
	}

	client, err := connect(cmd, cfg)
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}

	v, err := client.View(cmd.Context(), contract)
	if err != nil {
		return fmt.Errorf("error reading escrow %s: %w", contract, err)
	}

	out := viewOutput{
		Contract:           contract,
		TotalEscrowed:      v.TotalEscrowed.String(),
		TotalEscrowedUnits: amount.FormatStroops(v.TotalEscrowed),
		MilestoneCount:     v.MilestoneCount,
	}

	var b []byte
	if format == flags.FormatJSON {
		b, err = json.MarshalIndent(out, "", "  ")
		b = append(b, '\n')
	} else {
		b, err = yaml.Marshal(out)
	}
	if err != nil {
		return fmt.Errorf("failed to encode escrow view: %w", err)
	}

	_, err = cmd.OutOrStdout().Write(b)

	return err
}

func newTotalEscrowedCmd(cfg Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "total-escrowed",
		Short: "Print the amount held by the escrow, in base units",
		RunE: func(cmd *cobra.Command, _ []string) error {
			contract := flags.MustString(cmd.Flags().GetString("contract"))

			client, err := connect(cmd, cfg)
			if err != nil {
				return fmt.Errorf("failed to connect: %w", err)
			}

			total, err := client.TotalEscrowed(cmd.Context(), contract)
			if err != nil {
				return fmt.Errorf("error reading total escrowed of %s: %w", contract, err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), total.String())

			return err
		},
	}

	flags.Contract(cmd)

	return cmd
}

func newMilestoneCountCmd(cfg Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "milestone-count",
		Short: "Print the number of milestones of the escrow",
		RunE: func(cmd *cobra.Command, _ []string) error {
			contract := flags.MustString(cmd.Flags().GetString("contract"))

			client, err := connect(cmd, cfg)
			if err != nil {
				return fmt.Errorf("failed to connect: %w", err)
			}

			count, err := client.MilestoneCount(cmd.Context(), contract)
			if err != nil {
				return fmt.Errorf("error reading milestone count of %s: %w", contract, err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), count)

			return err
		},
	}

	flags.Contract(cmd)

	return cmd
}
