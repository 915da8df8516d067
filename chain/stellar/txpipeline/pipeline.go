// Package txpipeline prepares Soroban contract invocations.
//
// Writes go through Prepare: load the source account, build a single InvokeHostFunction
// transaction, simulate it, and assemble the simulated footprint, auth entries and resource fee
// into an unsigned envelope the caller signs and submits. Reads go through View, which simulates
// against PlaceholderAccount and decodes the return value.
//
// A Pipeline holds no per-call state. Two concurrent Prepare calls for the same source account
// observe the same sequence number; callers must serialize writes per account.
package txpipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/stellar/go-stellar-sdk/txnbuild"
	"github.com/stellar/go-stellar-sdk/xdr"

	"github.com/Linkd-Fund/linkd-go-sdk/chain/stellar/ledger"
	"github.com/Linkd-Fund/linkd-go-sdk/chain/stellar/scval"
	"github.com/Linkd-Fund/linkd-go-sdk/pkg/logger"
)

const (
	// WriteTimeout is the validity window, in seconds, of a prepared write. It leaves room for
	// external signing before the ledger rejects the transaction as expired.
	WriteTimeout = 300

	// PlaceholderAccount is the source of every view simulation. It is the all-zero ed25519 key:
	// it is never funded and never used for writes. It only satisfies the envelope's
	// requirement for a source account.
	PlaceholderAccount = "GAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAWHF"
)

// Backend is the part of the ledger collaborator the pipeline needs.
type Backend interface {
	ledger.AccountLoader
	ledger.Simulator
}

// Invocation is a single contract method call.
type Invocation struct {
	ContractID string
	Method     string
	Args       []scval.Value
}

// Envelope is a base64 encoded, unsigned xdr.TransactionEnvelope.
type Envelope string

func (e Envelope) String() string { return string(e) }

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the pipeline logger.
func WithLogger(lggr logger.Logger) Option {
	return func(p *Pipeline) {
		p.lggr = lggr
	}
}

// Pipeline runs write and view invocations against a Backend.
type Pipeline struct {
	backend Backend
	lggr    logger.Logger
}

// New creates a Pipeline.
func New(backend Backend, opts ...Option) *Pipeline {
	p := &Pipeline{
		backend: backend,
		lggr:    logger.Nop(),
	}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Prepare builds, simulates and assembles a write invocation sourced by source. The returned
// envelope is unsigned and has not been submitted.
func (p *Pipeline) Prepare(ctx context.Context, source string, inv Invocation) (Envelope, error) {
	lggr := p.invocationLogger(inv, "source", source)

	account, err := p.backend.LoadAccount(ctx, source)
	if err != nil {
		return "", &AccountLoadError{Account: source, Err: err}
	}
	lggr.Debugw("Loaded source account", "sequence", account.Sequence)

	tx, err := BuildTransaction(account, inv, txnbuild.NewTimeout(WriteTimeout))
	if err != nil {
		return "", err
	}

	unsigned, err := tx.Base64()
	if err != nil {
		return "", fmt.Errorf("failed to encode transaction for %s: %w", inv.Method, err)
	}

	sim, err := p.backend.SimulateTransaction(ctx, unsigned)
	if err != nil {
		return "", &SimulationError{Method: inv.Method, Message: err.Error(), Err: err}
	}
	if sim.Failed() {
		lggr.Debugw("Simulation rejected", "error", sim.Error)

		return "", &SimulationError{Method: inv.Method, Message: sim.Error}
	}
	if sim.RestoreRequired {
		return "", &SimulationError{Method: inv.Method, Message: "ledger entries archived; restore required"}
	}

	assembled, err := Assemble(unsigned, sim)
	if err != nil {
		return "", fmt.Errorf("failed to assemble %s: %w", inv.Method, err)
	}

	lggr.Infow("Prepared contract invocation",
		"minResourceFee", sim.MinResourceFee,
		"latestLedger", sim.LatestLedger,
	)

	return assembled, nil
}

// View simulates a read-only invocation and returns the decoded return value.
func (p *Pipeline) View(ctx context.Context, inv Invocation) (any, error) {
	lggr := p.invocationLogger(inv)

	placeholder := ledger.Account{ID: PlaceholderAccount, Sequence: 0}
	tx, err := BuildTransaction(placeholder, inv, txnbuild.NewInfiniteTimeout())
	if err != nil {
		return nil, err
	}

	unsigned, err := tx.Base64()
	if err != nil {
		return nil, fmt.Errorf("failed to encode transaction for %s: %w", inv.Method, err)
	}

	sim, err := p.backend.SimulateTransaction(ctx, unsigned)
	if err != nil {
		return nil, &ViewSimulationError{Method: inv.Method, Err: err}
	}
	if sim.Failed() {
		return nil, &ViewSimulationError{Method: inv.Method, Err: errors.New(sim.Error)}
	}
	if sim.ReturnValue == "" {
		return nil, &ViewSimulationError{Method: inv.Method, Err: errNoReturnValue}
	}

	val, err := scval.DecodeBase64(sim.ReturnValue)
	if err != nil {
		return nil, fmt.Errorf("failed to decode result of %s: %w", inv.Method, err)
	}
	lggr.Debugw("View simulated", "latestLedger", sim.LatestLedger)

	return val, nil
}

// BuildTransaction builds the unsigned single-operation transaction for inv, sourced by
// account. The sequence number used is account.Sequence+1.
func BuildTransaction(account ledger.Account, inv Invocation, timeBounds txnbuild.TimeBounds) (*txnbuild.Transaction, error) {
	op, err := invokeOperation(inv)
	if err != nil {
		return nil, err
	}

	tx, err := txnbuild.NewTransaction(txnbuild.TransactionParams{
		SourceAccount:        &txnbuild.SimpleAccount{AccountID: account.ID, Sequence: account.Sequence},
		IncrementSequenceNum: true,
		Operations:           []txnbuild.Operation{op},
		BaseFee:              txnbuild.MinBaseFee,
		Preconditions:        txnbuild.Preconditions{TimeBounds: timeBounds},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build transaction for %s: %w", inv.Method, err)
	}

	return tx, nil
}

func invokeOperation(inv Invocation) (*txnbuild.InvokeHostFunction, error) {
	contract, err := scval.ContractAddress(inv.ContractID)
	if err != nil {
		return nil, fmt.Errorf("invalid contract id for %s: %w", inv.Method, err)
	}

	args, err := scval.EncodeAll(inv.Args)
	if err != nil {
		return nil, fmt.Errorf("invalid arguments for %s: %w", inv.Method, err)
	}

	return &txnbuild.InvokeHostFunction{
		HostFunction: xdr.HostFunction{
			Type: xdr.HostFunctionTypeHostFunctionTypeInvokeContract,
			InvokeContract: &xdr.InvokeContractArgs{
				ContractAddress: contract,
				FunctionName:    xdr.ScSymbol(inv.Method),
				Args:            args,
			},
		},
	}, nil
}

func (p *Pipeline) invocationLogger(inv Invocation, keysAndValues ...any) *invocationLog {
	kv := append([]any{
		"invocation", uuid.NewString(),
		"contract", inv.ContractID,
		"method", inv.Method,
	}, keysAndValues...)

	return &invocationLog{lggr: p.lggr, kv: kv}
}

// invocationLog prefixes every entry with the invocation's identifying fields.
type invocationLog struct {
	lggr logger.Logger
	kv   []any
}

func (l *invocationLog) Debugw(msg string, keysAndValues ...any) {
	l.lggr.Debugw(msg, append(append([]any{}, l.kv...), keysAndValues...)...)
}

func (l *invocationLog) Infow(msg string, keysAndValues ...any) {
	l.lggr.Infow(msg, append(append([]any{}, l.kv...), keysAndValues...)...)
}
