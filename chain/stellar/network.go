package stellar

import (
	"errors"
	"fmt"
	"strings"

	"github.com/stellar/go-stellar-sdk/network"
)

// Network names.
const (
	NetworkTestnet = "testnet"
	NetworkPublic  = "public"
)

// Network identifies a Stellar network and the endpoints used to reach it. Every component that
// touches the ledger takes an explicit Network; nothing falls back to a process-wide default.
type Network struct {
	Name          string `yaml:"name"`
	SorobanRPCURL string `yaml:"soroban_rpc_url"`
	HorizonURL    string `yaml:"horizon_url"`
	Passphrase    string `yaml:"passphrase"`
}

// Testnet is the SDF test network with its public endpoints.
var Testnet = Network{
	Name:          NetworkTestnet,
	SorobanRPCURL: "https://soroban-testnet.stellar.org",
	HorizonURL:    "https://horizon-testnet.stellar.org",
	Passphrase:    network.TestNetworkPassphrase,
}

// Public is the Stellar public network. The Soroban RPC URL points at the SDF endpoint; most
// production deployments override it with their own provider.
var Public = Network{
	Name:          NetworkPublic,
	SorobanRPCURL: "https://soroban-rpc.stellar.org",
	HorizonURL:    "https://horizon.stellar.org",
	Passphrase:    network.PublicNetworkPassphrase,
}

// NetworkByName returns the preset for name, case-insensitively.
func NetworkByName(name string) (Network, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case NetworkTestnet:
		return Testnet, nil
	case NetworkPublic, "mainnet":
		return Public, nil
	default:
		return Network{}, fmt.Errorf("unknown network %q: expected %s or %s", name, NetworkTestnet, NetworkPublic)
	}
}

// Validate checks that all endpoints and the passphrase are set.
func (n Network) Validate() error {
	var errs []error
	if n.SorobanRPCURL == "" {
		errs = append(errs, errors.New("soroban RPC URL is required"))
	}
	if n.HorizonURL == "" {
		errs = append(errs, errors.New("horizon URL is required"))
	}
	if n.Passphrase == "" {
		errs = append(errs, errors.New("network passphrase is required"))
	}

	return errors.Join(errs...)
}
