package escrow

import (
	"context"
	"fmt"
	"math/big"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/Linkd-Fund/linkd-go-sdk/chain/stellar/scval"
	"github.com/Linkd-Fund/linkd-go-sdk/chain/stellar/txpipeline"
	"github.com/Linkd-Fund/linkd-go-sdk/engine/commands/flags"
	"github.com/Linkd-Fund/linkd-go-sdk/engine/commands/text"
	"github.com/Linkd-Fund/linkd-go-sdk/escrow"
	"github.com/Linkd-Fund/linkd-go-sdk/pkg/amount"
)

// writeOp calls the facade method of one mutating contract method.
type writeOp struct {
	short   string
	example string
	call    func(ctx context.Context, c Client, contract string, in writeInput) (txpipeline.Envelope, error)
}

var writeOps = map[string]writeOp{
	escrow.MethodInitialize: {
		short: "Prepare the one-time escrow initialization",
		example: `
			linkd escrow initialize -c CCONTRACT --admin GADMIN --ngo GNGO --auditor GAUDITOR \
			  --beneficiary GBENEFICIARY --token CTOKEN
		`,
		call: func(ctx context.Context, c Client, contract string, in writeInput) (txpipeline.Envelope, error) {
			return c.Initialize(ctx, contract, in.str("admin"), in.str("ngo"), in.str("auditor"), in.str("beneficiary"), in.str("token"))
		},
	},
	escrow.MethodAddMilestone: {
		short:   "Prepare a new milestone",
		example: `linkd escrow add-milestone -c CCONTRACT --admin GADMIN --target-amount 1000`,
		call: func(ctx context.Context, c Client, contract string, in writeInput) (txpipeline.Envelope, error) {
			target, err := in.units("target_amount")
			if err != nil {
				return "", err
			}

			return c.AddMilestone(ctx, contract, in.str("admin"), target)
		},
	},
	escrow.MethodDeposit: {
		short:   "Prepare a donor deposit",
		example: `linkd escrow deposit -c CCONTRACT --donor GDONOR --amount 150.5`,
		call: func(ctx context.Context, c Client, contract string, in writeInput) (txpipeline.Envelope, error) {
			amt, err := in.units("amount")
			if err != nil {
				return "", err
			}

			return c.Deposit(ctx, contract, in.str("donor"), amt)
		},
	},
	escrow.MethodSubmitProof: {
		short:   "Prepare the submission of a milestone expenditure proof",
		example: `linkd escrow submit-proof -c CCONTRACT --ngo GNGO --milestone-id 0 --proof-hash $(linkd anchor hash ...)`,
		call: func(ctx context.Context, c Client, contract string, in writeInput) (txpipeline.Envelope, error) {
			return c.SubmitProof(ctx, contract, in.str("ngo"), in.u32("milestone_id"), in.str("proof_hash"))
		},
	},
	escrow.MethodApproveNgo: {
		short:   "Prepare the NGO approval of a milestone",
		example: `linkd escrow approve-ngo -c CCONTRACT --ngo GNGO --milestone-id 0`,
		call: func(ctx context.Context, c Client, contract string, in writeInput) (txpipeline.Envelope, error) {
			return c.ApproveNgo(ctx, contract, in.str("ngo"), in.u32("milestone_id"))
		},
	},
	escrow.MethodApproveAuditor: {
		short:   "Prepare the auditor approval of a milestone",
		example: `linkd escrow approve-auditor -c CCONTRACT --auditor GAUDITOR --milestone-id 0`,
		call: func(ctx context.Context, c Client, contract string, in writeInput) (txpipeline.Envelope, error) {
			return c.ApproveAuditor(ctx, contract, in.str("auditor"), in.u32("milestone_id"))
		},
	},
	escrow.MethodRefundMilestone: {
		short:   "Prepare the refund of a milestone",
		example: `linkd escrow refund-milestone -c CCONTRACT --admin GADMIN --milestone-id 0 --refund-address GDONOR`,
		call: func(ctx context.Context, c Client, contract string, in writeInput) (txpipeline.Envelope, error) {
			return c.RefundMilestone(ctx, contract, in.str("admin"), in.u32("milestone_id"), in.str("refund_address"))
		},
	},
}

// newWriteCmd creates the subcommand of a mutating contract method. Its flags mirror the
// method's parameters; the signing principal gets a flag of its own when it is not already a
// parameter.
func newWriteCmd(cfg Config, m escrow.Method) *cobra.Command {
	op, ok := writeOps[m.Name]
	if !ok {
		panic(fmt.Sprintf("no command bound to escrow method %s", m.Name))
	}

	cmd := &cobra.Command{
		Use:     flagName(m.Name),
		Short:   op.short,
		Long:    text.LongDesc(op.short + ". Prints the unsigned envelope to be signed by the " + m.Signer + "."),
		Example: text.Examples(op.example),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWrite(cmd, cfg, m, op)
		},
	}

	flags.Contract(cmd)

	signerIsParam := false
	for _, p := range m.Params {
		name := flagName(p.Name)
		switch p.Tag {
		case scval.TagU32:
			cmd.Flags().Uint32(name, 0, p.Name+" (required)")
		case scval.TagI128:
			cmd.Flags().String(name, "", p.Name+" in token units, up to 7 decimals (required)")
		default:
			cmd.Flags().String(name, "", p.Name+" (required)")
		}
		_ = cmd.MarkFlagRequired(name)

		if p.Name == m.Signer {
			signerIsParam = true
		}
	}
	if !signerIsParam {
		cmd.Flags().String(flagName(m.Signer), "", m.Signer+" account, G... (required)")
		_ = cmd.MarkFlagRequired(flagName(m.Signer))
	}

	return cmd
}

// runWrite executes a mutating escrow command.
func runWrite(cmd *cobra.Command, cfg Config, m escrow.Method, op writeOp) error {
	contract := flags.MustString(cmd.Flags().GetString("contract"))

	client, err := connect(cmd, cfg)
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}

	env, err := op.call(cmd.Context(), client, contract, writeInput{flags: cmd.Flags()})
	if err != nil {
		return fmt.Errorf("error preparing %s on %s: %w", m.Name, contract, err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), env.String())

	return err
}

// writeInput reads contract arguments from registered flags by parameter name.
type writeInput struct {
	flags *pflag.FlagSet
}

func (in writeInput) str(param string) string {
	return flags.MustString(in.flags.GetString(flagName(param)))
}

func (in writeInput) u32(param string) uint32 {
	return flags.MustUint32(in.flags.GetUint32(flagName(param)))
}

func (in writeInput) units(param string) (*big.Int, error) {
	v, err := amount.ParseStroops(in.str(param))
	if err != nil {
		return nil, fmt.Errorf("--%s: %w", flagName(param), err)
	}

	return v, nil
}
