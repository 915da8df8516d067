package anchor

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Linkd-Fund/linkd-go-sdk/anchoring"
	"github.com/Linkd-Fund/linkd-go-sdk/engine/commands/flags"
	"github.com/Linkd-Fund/linkd-go-sdk/engine/commands/text"
	"github.com/Linkd-Fund/linkd-go-sdk/pkg/logger"
)

var (
	anchorShort = "Expenditure hashing and anchoring"

	anchorLong = text.LongDesc(`
		Commands to compute, anchor and verify expenditure hashes.

		An expenditure hash is the SHA-256 digest of the invoice number, amount, supplier name and
		sorted donor IDs. Anchoring records the digest as the hash memo of a minimal self-payment
		from the configured anchoring account.
	`)
)

// Config holds the configuration for anchor commands.
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
		return errors.New("anchor.Config: missing required fields: " + strings.Join(missing, ", "))
	}

	return nil
}

// deps returns the Deps with defaults applied.
func (c *Config) deps() *Deps {
	c.Deps.applyDefaults()

	return &c.Deps
}

// NewCommand creates a new anchor command with its subcommands.
func NewCommand(cfg Config) (*cobra.Command, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.deps()

	cmd := &cobra.Command{
		Use:   "anchor",
		Short: anchorShort,
		Long:  anchorLong,
	}

	flags.Config(cmd)

	cmd.AddCommand(newHashCmd())
	cmd.AddCommand(newSubmitCmd(cfg))
	cmd.AddCommand(newVerifyCmd())

	return cmd, nil
}

// recordFlags adds the flags describing an expenditure record.
func recordFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("record", "r", "", "YAML or JSON file holding the expenditure record")
	cmd.Flags().String("invoice", "", "Invoice number")
	cmd.Flags().Float64("amount", 0, "Expenditure amount")
	cmd.Flags().String("supplier", "", "Supplier name")
	cmd.Flags().StringArray("donor", nil, "Donor ID, repeatable; the value is taken verbatim")
	cmd.MarkFlagsMutuallyExclusive("record", "invoice")
	cmd.MarkFlagsOneRequired("record", "invoice")
}

// readRecord returns the expenditure record given by --record or by the individual flags.
func readRecord(cmd *cobra.Command) (anchoring.ExpenditureRecord, error) {
	path := flags.MustString(cmd.Flags().GetString("record"))
	if path == "" {
		return anchoring.ExpenditureRecord{
			InvoiceNumber: flags.MustString(cmd.Flags().GetString("invoice")),
			Amount:        flags.MustFloat64(cmd.Flags().GetFloat64("amount")),
			SupplierName:  flags.MustString(cmd.Flags().GetString("supplier")),
			DonorIDs:      flags.MustStringArray(cmd.Flags().GetStringArray("donor")),
		}, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return anchoring.ExpenditureRecord{}, fmt.Errorf("failed to read record file: %w", err)
	}

	var record anchoring.ExpenditureRecord
	if err = yaml.Unmarshal(b, &record); err != nil {
		return anchoring.ExpenditureRecord{}, fmt.Errorf("failed to parse record file %s: %w", path, err)
	}

	return record, nil
}
