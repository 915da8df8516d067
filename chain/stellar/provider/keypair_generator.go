package provider

import (
	"errors"
	"fmt"

	"github.com/Linkd-Fund/linkd-go-sdk/chain/stellar"
)

// KeypairGenerator produces the signer a chain is configured with.
type KeypairGenerator interface {
	Generate() (stellar.StellarSigner, error)
}

type keypairFromSecret struct {
	secret string
}

var _ KeypairGenerator = (*keypairFromSecret)(nil)

// KeypairFromSecret creates a KeypairGenerator from an S... secret seed.
func KeypairFromSecret(secret string) KeypairGenerator {
	return &keypairFromSecret{secret: secret}
}

func (k *keypairFromSecret) Generate() (stellar.StellarSigner, error) {
	if k.secret == "" {
		return nil, errors.New("secret seed is empty")
	}

	kp, err := stellar.KeypairFromSecret(k.secret)
	if err != nil {
		return nil, fmt.Errorf("failed to create keypair from secret: %w", err)
	}

	return stellar.NewStellarKeypairSigner(kp), nil
}

type keypairFromHex struct {
	hexKey string
}

var _ KeypairGenerator = (*keypairFromHex)(nil)

// KeypairFromHex creates a KeypairGenerator from a hex-encoded 32 byte seed.
func KeypairFromHex(hexKey string) KeypairGenerator {
	return &keypairFromHex{hexKey: hexKey}
}

func (k *keypairFromHex) Generate() (stellar.StellarSigner, error) {
	if k.hexKey == "" {
		return nil, errors.New("hex key is empty")
	}

	kp, err := stellar.KeypairFromHex(k.hexKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create keypair from hex: %w", err)
	}

	return stellar.NewStellarKeypairSigner(kp), nil
}
