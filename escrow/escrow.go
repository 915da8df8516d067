// Package escrow maps the milestone escrow contract's operations onto contract invocations.
//
// Mutating operations return an unsigned, simulated and assembled transaction envelope that the
// named principal signs and submits; the contract checks authorization against that principal.
// Queries are answered by view simulations and never need a signature.
package escrow

import (
	"context"
	"fmt"
	"math/big"

	"github.com/Linkd-Fund/linkd-go-sdk/chain/stellar/scval"
	"github.com/Linkd-Fund/linkd-go-sdk/chain/stellar/txpipeline"
	"github.com/Linkd-Fund/linkd-go-sdk/pkg/logger"
)

// Invoker runs contract invocations. *txpipeline.Pipeline satisfies it.
type Invoker interface {
	Prepare(ctx context.Context, source string, inv txpipeline.Invocation) (txpipeline.Envelope, error)
	View(ctx context.Context, inv txpipeline.Invocation) (any, error)
}

var _ Invoker = (*txpipeline.Pipeline)(nil)

// Option configures an Escrow.
type Option func(*Escrow)

// WithLogger sets the logger.
func WithLogger(lggr logger.Logger) Option {
	return func(e *Escrow) {
		e.lggr = lggr
	}
}

// Escrow is the client for escrow contract instances.
type Escrow struct {
	invoker Invoker
	lggr    logger.Logger
}

// New creates an Escrow backed by invoker.
func New(invoker Invoker, opts ...Option) *Escrow {
	e := &Escrow{
		invoker: invoker,
		lggr:    logger.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Initialize prepares the one-time setup of the escrow roles and token. Sourced by admin.
func (e *Escrow) Initialize(
	ctx context.Context, contractID, admin, ngo, auditor, beneficiary, token string,
) (txpipeline.Envelope, error) {
	return e.prepare(ctx, contractID, admin, MethodInitialize,
		scval.Address(admin),
		scval.Address(ngo),
		scval.Address(auditor),
		scval.Address(beneficiary),
		scval.Address(token),
	)
}

// AddMilestone prepares a new milestone with the given target amount, in token base units.
// Sourced by admin.
func (e *Escrow) AddMilestone(ctx context.Context, contractID, admin string, targetAmount *big.Int) (txpipeline.Envelope, error) {
	if targetAmount == nil {
		return "", fmt.Errorf("%s: target amount is required", MethodAddMilestone)
	}

	return e.prepare(ctx, contractID, admin, MethodAddMilestone, scval.NewI128(targetAmount))
}

// Deposit prepares a donor deposit of amount token base units. Sourced by donor.
func (e *Escrow) Deposit(ctx context.Context, contractID, donor string, amount *big.Int) (txpipeline.Envelope, error) {
	if amount == nil {
		return "", fmt.Errorf("%s: amount is required", MethodDeposit)
	}

	return e.prepare(ctx, contractID, donor, MethodDeposit, scval.Address(donor), scval.NewI128(amount))
}

// SubmitProof prepares the submission of an expenditure proof hash for a milestone. Sourced by
// ngo.
func (e *Escrow) SubmitProof(
	ctx context.Context, contractID, ngo string, milestoneID uint32, proofHash string,
) (txpipeline.Envelope, error) {
	return e.prepare(ctx, contractID, ngo, MethodSubmitProof, scval.U32(milestoneID), scval.String(proofHash))
}

// ApproveNgo prepares the NGO approval of a milestone. Sourced by ngo.
func (e *Escrow) ApproveNgo(ctx context.Context, contractID, ngo string, milestoneID uint32) (txpipeline.Envelope, error) {
	return e.prepare(ctx, contractID, ngo, MethodApproveNgo, scval.U32(milestoneID))
}

// ApproveAuditor prepares the auditor approval of a milestone. Sourced by auditor.
func (e *Escrow) ApproveAuditor(ctx context.Context, contractID, auditor string, milestoneID uint32) (txpipeline.Envelope, error) {
	return e.prepare(ctx, contractID, auditor, MethodApproveAuditor, scval.U32(milestoneID))
}

// RefundMilestone prepares the refund of a milestone's funds to refundAddress. Sourced by admin.
func (e *Escrow) RefundMilestone(
	ctx context.Context, contractID, admin string, milestoneID uint32, refundAddress string,
) (txpipeline.Envelope, error) {
	return e.prepare(ctx, contractID, admin, MethodRefundMilestone, scval.U32(milestoneID), scval.Address(refundAddress))
}

// TotalEscrowed returns the amount currently held by the escrow, in token base units.
func (e *Escrow) TotalEscrowed(ctx context.Context, contractID string) (*big.Int, error) {
	v, err := e.view(ctx, contractID, MethodGetTotalEscrowed)
	if err != nil {
		return nil, err
	}

	total, ok := v.(*big.Int)
	if !ok {
		return nil, fmt.Errorf("%s returned %T, want i128", MethodGetTotalEscrowed, v)
	}

	return total, nil
}

// MilestoneCount returns the number of milestones registered on the escrow.
func (e *Escrow) MilestoneCount(ctx context.Context, contractID string) (uint32, error) {
	v, err := e.view(ctx, contractID, MethodGetMilestoneCount)
	if err != nil {
		return 0, err
	}

	count, ok := v.(uint32)
	if !ok {
		return 0, fmt.Errorf("%s returned %T, want u32", MethodGetMilestoneCount, v)
	}

	return count, nil
}

// View is a snapshot of an escrow's on-ledger totals. It is read fresh on every call.
type View struct {
	TotalEscrowed  *big.Int
	MilestoneCount uint32
}

// View queries both escrow totals.
func (e *Escrow) View(ctx context.Context, contractID string) (View, error) {
	total, err := e.TotalEscrowed(ctx, contractID)
	if err != nil {
		return View{}, err
	}

	count, err := e.MilestoneCount(ctx, contractID)
	if err != nil {
		return View{}, err
	}

	return View{TotalEscrowed: total, MilestoneCount: count}, nil
}

func (e *Escrow) prepare(
	ctx context.Context, contractID, source, method string, args ...scval.Value,
) (txpipeline.Envelope, error) {
	env, err := e.invoker.Prepare(ctx, source, txpipeline.Invocation{
		ContractID: contractID,
		Method:     method,
		Args:       args,
	})
	if err != nil {
		e.lggr.Errorw("Failed to prepare escrow operation", "contract", contractID, "method", method, "err", err)

		return "", err
	}

	return env, nil
}

func (e *Escrow) view(ctx context.Context, contractID, method string) (any, error) {
	return e.invoker.View(ctx, txpipeline.Invocation{
		ContractID: contractID,
		Method:     method,
	})
}
