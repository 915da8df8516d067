package txpipeline

import (
	"errors"
	"fmt"
	"math"

	"github.com/stellar/go-stellar-sdk/xdr"

	"github.com/Linkd-Fund/linkd-go-sdk/chain/stellar/ledger"
)

// Assemble merges a successful simulation into an unsigned single InvokeHostFunction envelope:
// the Soroban transaction data becomes the transaction extension, the recorded auth entries are
// attached to the operation when it carries none, and the fee becomes the envelope's inclusion
// fee plus the minimum resource fee.
//
// The input envelope is not modified; the assembled envelope is returned as base64 XDR.
func Assemble(envelopeXDR string, sim ledger.SimulationResult) (Envelope, error) {
	if sim.Failed() {
		return "", errors.New("cannot assemble a failed simulation")
	}
	if sim.TransactionData == "" {
		return "", errors.New("simulation returned no transaction data")
	}
	if sim.MinResourceFee < 0 {
		return "", fmt.Errorf("negative resource fee %d", sim.MinResourceFee)
	}

	var env xdr.TransactionEnvelope
	if err := xdr.SafeUnmarshalBase64(envelopeXDR, &env); err != nil {
		return "", fmt.Errorf("failed to decode envelope: %w", err)
	}
	if env.Type != xdr.EnvelopeTypeEnvelopeTypeTx || env.V1 == nil {
		return "", fmt.Errorf("unsupported envelope type %s", env.Type)
	}

	tx := &env.V1.Tx
	if len(tx.Operations) != 1 || tx.Operations[0].Body.Type != xdr.OperationTypeInvokeHostFunction {
		return "", errors.New("envelope must contain exactly one InvokeHostFunction operation")
	}

	var data xdr.SorobanTransactionData
	if err := xdr.SafeUnmarshalBase64(sim.TransactionData, &data); err != nil {
		return "", fmt.Errorf("failed to decode soroban transaction data: %w", err)
	}

	invoke := tx.Operations[0].Body.InvokeHostFunctionOp
	if len(invoke.Auth) == 0 && len(sim.Auth) > 0 {
		auth := make([]xdr.SorobanAuthorizationEntry, 0, len(sim.Auth))
		for i, b64 := range sim.Auth {
			var entry xdr.SorobanAuthorizationEntry
			if err := xdr.SafeUnmarshalBase64(b64, &entry); err != nil {
				return "", fmt.Errorf("failed to decode auth entry %d: %w", i, err)
			}
			auth = append(auth, entry)
		}
		invoke.Auth = auth
	}

	fee := uint64(tx.Fee) + uint64(sim.MinResourceFee)
	if fee > math.MaxUint32 {
		return "", fmt.Errorf("assembled fee %d exceeds the maximum transaction fee", fee)
	}
	tx.Fee = xdr.Uint32(fee)
	tx.Ext = xdr.TransactionExt{V: 1, SorobanData: &data}

	out, err := xdr.MarshalBase64(env)
	if err != nil {
		return "", fmt.Errorf("failed to encode assembled envelope: %w", err)
	}

	return Envelope(out), nil
}
