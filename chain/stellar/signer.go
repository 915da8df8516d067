package stellar

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/stellar/go-stellar-sdk/keypair"
	"github.com/stellar/go-stellar-sdk/strkey"
	"github.com/stellar/go-stellar-sdk/txnbuild"
	"github.com/stellar/go-stellar-sdk/xdr"
)

// StellarSigner signs transaction hashes on behalf of a single Stellar account.
//
// The SDK never holds keys for escrow principals; StellarSigner is only used where the SDK
// submits on its own behalf, such as anchoring.
type StellarSigner interface {
	// Sign signs the given message and returns the signature bytes.
	Sign(message []byte) ([]byte, error)

	// SignDecorated signs the given message and returns a decorated signature (XDR format).
	SignDecorated(message []byte) (xdr.DecoratedSignature, error)

	// Address returns the G... address of the signing account.
	Address() string
}

type stellarKeypairSigner struct {
	kp *keypair.Full
}

var _ StellarSigner = (*stellarKeypairSigner)(nil)

// NewStellarKeypairSigner creates a StellarSigner backed by a full keypair.
func NewStellarKeypairSigner(kp *keypair.Full) StellarSigner {
	return &stellarKeypairSigner{kp: kp}
}

func (s *stellarKeypairSigner) Sign(message []byte) ([]byte, error) {
	return s.kp.Sign(message)
}

func (s *stellarKeypairSigner) SignDecorated(message []byte) (xdr.DecoratedSignature, error) {
	return s.kp.SignDecorated(message)
}

func (s *stellarKeypairSigner) Address() string {
	return s.kp.Address()
}

// SignTransaction signs tx for the network identified by passphrase and returns the signed copy.
func SignTransaction(tx *txnbuild.Transaction, passphrase string, signer StellarSigner) (*txnbuild.Transaction, error) {
	if signer == nil {
		return nil, errors.New("signer is required")
	}

	hash, err := tx.Hash(passphrase)
	if err != nil {
		return nil, fmt.Errorf("failed to hash transaction: %w", err)
	}

	sig, err := signer.SignDecorated(hash[:])
	if err != nil {
		return nil, fmt.Errorf("failed to sign transaction as %s: %w", signer.Address(), err)
	}

	signed, err := tx.AddSignatureDecorated(sig)
	if err != nil {
		return nil, fmt.Errorf("failed to attach signature: %w", err)
	}

	return signed, nil
}

// KeypairFromSecret parses an S... secret seed.
func KeypairFromSecret(secret string) (*keypair.Full, error) {
	secret = strings.TrimSpace(secret)
	if !strkey.IsValidEd25519SecretSeed(secret) {
		return nil, errors.New("invalid secret seed")
	}

	kp, err := keypair.ParseFull(secret)
	if err != nil {
		return nil, fmt.Errorf("failed to parse secret seed: %w", err)
	}

	return kp, nil
}

// KeypairFromHex creates a keypair from a hex-encoded 32 byte seed, with or without a "0x"
// prefix.
func KeypairFromHex(hexKey string) (*keypair.Full, error) {
	rawSeed, err := hex.DecodeString(strings.TrimPrefix(hexKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("failed to decode hex key: %w", err)
	}

	if len(rawSeed) != 32 {
		return nil, fmt.Errorf("invalid key length: expected 32 bytes, got %d", len(rawSeed))
	}

	var seed [32]byte
	copy(seed[:], rawSeed)

	kp, err := keypair.FromRawSeed(seed)
	if err != nil {
		return nil, fmt.Errorf("failed to create keypair from seed: %w", err)
	}

	return kp, nil
}
