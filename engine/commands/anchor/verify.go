package anchor

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Linkd-Fund/linkd-go-sdk/anchoring"
	"github.com/Linkd-Fund/linkd-go-sdk/engine/commands/flags"
	"github.com/Linkd-Fund/linkd-go-sdk/engine/commands/text"
)

var (
	verifyShort = "Check an anchored memo against an expenditure record"

	verifyLong = text.LongDesc(`
		Checks that the hash memo of an anchoring transaction is the expenditure hash of a record.
		The memo is accepted as hex or as the base64 form shown by Horizon. Fails when the memo
		does not match.
	`)

	verifyExample = text.Examples(`
		linkd anchor verify --memo 3Lcs0mCKAcalNCo1flaaH1ul9IjKaSjWGXGTtsVS/XM= --record expenditure.yml
	`)
)

func newVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "verify",
		Short:   verifyShort,
		Long:    verifyLong,
		Example: verifyExample,
		RunE: func(cmd *cobra.Command, _ []string) error {
			memo, err := decodeMemo(flags.MustString(cmd.Flags().GetString("memo")))
			if err != nil {
				return err
			}

			record, err := readRecord(cmd)
			if err != nil {
				return err
			}

			if !anchoring.Verify(record, memo) {
				return fmt.Errorf("memo %x does not match expenditure hash %s", memo, record.Hash())
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), "match", record.Hash())

			return err
		},
	}

	cmd.Flags().String("memo", "", "Anchored memo, hex or base64 (required)")
	_ = cmd.MarkFlagRequired("memo")
	recordFlags(cmd)

	return cmd
}

// decodeMemo decodes a 32 byte hash memo given as hex or standard base64.
func decodeMemo(s string) ([]byte, error) {
	if b, err := hex.DecodeString(s); err == nil && len(b) == 32 {
		return b, nil
	}
	if b, err := base64.StdEncoding.DecodeString(s); err == nil && len(b) == 32 {
		return b, nil
	}

	return nil, fmt.Errorf("invalid memo %q: expected 32 bytes as hex or base64", s)
}
