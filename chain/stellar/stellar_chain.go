// Package stellar holds the Stellar network description, the signing abstraction and the
// connected Chain that the escrow and anchoring components run against.
package stellar

import (
	"github.com/Linkd-Fund/linkd-go-sdk/chain/stellar/ledger"
)

// Chain is a connected Stellar network.
type Chain struct {
	Network Network

	// RPC is the Soroban RPC adapter. It serves simulation and contract reads.
	RPC ledger.RPC

	// Horizon is the Horizon adapter. It serves classic account loads and submissions.
	Horizon ledger.RPC

	// Signer is the SDK's own account, if configured. Escrow principals never sign through it.
	Signer StellarSigner
}

// Name returns the network name.
func (c Chain) Name() string {
	return c.Network.Name
}

// HasSigner reports whether the chain carries an SDK signing account.
func (c Chain) HasSigner() bool {
	return c.Signer != nil
}
