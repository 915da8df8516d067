// Package anchoring derives expenditure hashes and anchors them on the Stellar ledger.
//
// An anchor is a payment of one stroop from an account to itself whose memo is the 32 byte
// expenditure digest. Anyone holding the original record can re-derive the digest and compare it
// to the memo of the anchoring transaction.
//
// Anchoring consumes the signer's sequence number; callers must serialize Anchor calls per
// signing account.
package anchoring

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/stellar/go-stellar-sdk/txnbuild"

	"github.com/Linkd-Fund/linkd-go-sdk/chain/stellar"
	"github.com/Linkd-Fund/linkd-go-sdk/chain/stellar/ledger"
	"github.com/Linkd-Fund/linkd-go-sdk/pkg/logger"
)

const (
	// AnchorAmount is the smallest native payment, one stroop.
	AnchorAmount = "0.0000001"

	// AnchorTimeout is the validity window, in seconds, of an anchoring transaction.
	AnchorTimeout = 30
)

// InvalidHashFormatError is returned when the hash to anchor is not 64 hex characters.
type InvalidHashFormatError struct {
	Hash string
}

func (e *InvalidHashFormatError) Error() string {
	return fmt.Sprintf("invalid hash format: expected a 64 character hex SHA-256 digest, got %q", e.Hash)
}

// Backend loads the signing account and submits the signed anchor.
type Backend interface {
	ledger.AccountLoader
	ledger.Submitter
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the service logger.
func WithLogger(lggr logger.Logger) Option {
	return func(s *Service) {
		s.lggr = lggr
	}
}

// Service anchors expenditure hashes on one network.
type Service struct {
	backend Backend
	network stellar.Network
	lggr    logger.Logger
}

// NewService creates a Service that submits through backend to network.
func NewService(backend Backend, network stellar.Network, opts ...Option) *Service {
	s := &Service{
		backend: backend,
		network: network,
		lggr:    logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Anchor submits hashHex as the memo of a self-payment signed by signer and returns the
// transaction hash. A malformed hashHex fails before any network call.
func (s *Service) Anchor(ctx context.Context, hashHex string, signer stellar.StellarSigner) (string, error) {
	memo, err := ParseHash(hashHex)
	if err != nil {
		return "", err
	}
	if signer == nil {
		return "", errors.New("signer is required")
	}

	source := signer.Address()
	account, err := s.backend.LoadAccount(ctx, source)
	if err != nil {
		return "", fmt.Errorf("failed to load anchoring account %s: %w", source, err)
	}

	tx, err := txnbuild.NewTransaction(txnbuild.TransactionParams{
		SourceAccount:        &txnbuild.SimpleAccount{AccountID: account.ID, Sequence: account.Sequence},
		IncrementSequenceNum: true,
		Operations: []txnbuild.Operation{&txnbuild.Payment{
			Destination: source,
			Amount:      AnchorAmount,
			Asset:       txnbuild.NativeAsset{},
		}},
		BaseFee:       txnbuild.MinBaseFee,
		Memo:          txnbuild.MemoHash(memo),
		Preconditions: txnbuild.Preconditions{TimeBounds: txnbuild.NewTimeout(AnchorTimeout)},
	})
	if err != nil {
		return "", fmt.Errorf("failed to build anchoring transaction: %w", err)
	}

	signed, err := stellar.SignTransaction(tx, s.network.Passphrase, signer)
	if err != nil {
		return "", err
	}

	envelope, err := signed.Base64()
	if err != nil {
		return "", fmt.Errorf("failed to encode anchoring transaction: %w", err)
	}

	res, err := s.backend.SubmitTransaction(ctx, envelope)
	if err != nil {
		return "", fmt.Errorf("failed to submit anchoring transaction: %w", err)
	}

	s.lggr.Infow("Anchored expenditure hash",
		"network", s.network.Name,
		"account", source,
		"hash", hashHex,
		"tx", res.Hash,
		"ledger", res.Ledger,
	)

	return res.Hash, nil
}

// AnchorWithSecret anchors hashHex signed by the account of an S... secret seed. The keypair
// only lives for the duration of the call.
func (s *Service) AnchorWithSecret(ctx context.Context, hashHex, secret string) (string, error) {
	if _, err := ParseHash(hashHex); err != nil {
		return "", err
	}

	kp, err := stellar.KeypairFromSecret(secret)
	if err != nil {
		return "", err
	}

	return s.Anchor(ctx, hashHex, stellar.NewStellarKeypairSigner(kp))
}

// AnchorRecord hashes record and anchors the digest.
func (s *Service) AnchorRecord(ctx context.Context, record ExpenditureRecord, signer stellar.StellarSigner) (string, error) {
	return s.Anchor(ctx, record.Hash(), signer)
}

// ParseHash decodes a 64 character hex digest.
func ParseHash(hashHex string) ([32]byte, error) {
	var out [32]byte
	if len(hashHex) != 64 {
		return out, &InvalidHashFormatError{Hash: hashHex}
	}
	if _, err := hex.Decode(out[:], []byte(hashHex)); err != nil {
		return out, &InvalidHashFormatError{Hash: hashHex}
	}

	return out, nil
}
