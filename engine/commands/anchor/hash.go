package anchor

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Linkd-Fund/linkd-go-sdk/engine/commands/text"
)

var (
	hashShort = "Compute an expenditure hash"

	hashLong = text.LongDesc(`
		Computes the expenditure hash of a record and prints it as lowercase hex.

		The donor order does not matter: donor IDs are sorted before hashing.
	`)

	hashExample = text.Examples(`
		# Hash an expenditure given on the command line
		linkd anchor hash --invoice INV-001 --amount 150.5 --supplier "Acme Supplies" --donor donorA --donor donorB

		# Hash an expenditure stored in a file
		linkd anchor hash --record expenditure.yml
	`)
)

func newHashCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "hash",
		Short:   hashShort,
		Long:    hashLong,
		Example: hashExample,
		RunE: func(cmd *cobra.Command, _ []string) error {
			record, err := readRecord(cmd)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), record.Hash())

			return err
		},
	}

	recordFlags(cmd)

	return cmd
}
