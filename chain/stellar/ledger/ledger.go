// Package ledger defines the narrow interface the SDK uses to talk to a Stellar network: account
// lookup, transaction simulation and transaction submission.
//
// Adapters live in the sorobanrpc and horizon subpackages. Retry policy, if any, belongs to the
// adapter; callers of this interface never retry.
package ledger

import (
	"context"
	"errors"
)

var (
	// ErrAccountNotFound is returned when the requested account does not exist on the ledger.
	ErrAccountNotFound = errors.New("account not found")

	// ErrSimulationUnsupported is returned by adapters whose backend cannot simulate
	// transactions, e.g. Horizon.
	ErrSimulationUnsupported = errors.New("transaction simulation is not supported by this backend")
)

// Account is the minimal view of a ledger account needed to build a transaction.
type Account struct {
	ID       string
	Sequence int64
}

// SimulationResult is the outcome of simulating a single-operation Soroban transaction.
type SimulationResult struct {
	// Error is the diagnostic message reported by the network. Empty on success.
	Error string
	// TransactionData is the base64 encoded xdr.SorobanTransactionData (footprint + resources).
	TransactionData string
	// MinResourceFee is the resource fee, in stroops, the transaction must pay on top of the
	// inclusion fee.
	MinResourceFee int64
	// Auth holds the base64 encoded xdr.SorobanAuthorizationEntry values recorded during
	// simulation.
	Auth []string
	// ReturnValue is the base64 encoded xdr.ScVal returned by the invoked function.
	ReturnValue string
	// RestoreRequired is set when part of the footprint is archived and must be restored first.
	RestoreRequired bool
	LatestLedger    uint32
}

// Failed reports whether the network rejected the simulation.
func (r SimulationResult) Failed() bool {
	return r.Error != ""
}

// SubmitResult is the network's acknowledgement of a submitted transaction.
type SubmitResult struct {
	Hash   string
	Status string
	Ledger uint32
}

// AccountLoader loads the current state of an account.
type AccountLoader interface {
	LoadAccount(ctx context.Context, accountID string) (Account, error)
}

// Simulator simulates an unsigned transaction envelope (base64 XDR).
type Simulator interface {
	SimulateTransaction(ctx context.Context, envelopeXDR string) (SimulationResult, error)
}

// Submitter submits a signed transaction envelope (base64 XDR).
type Submitter interface {
	SubmitTransaction(ctx context.Context, envelopeXDR string) (SubmitResult, error)
}

// RPC is the full ledger collaborator.
type RPC interface {
	AccountLoader
	Simulator
	Submitter
}
