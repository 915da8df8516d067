// Package config loads the SDK configuration from a YAML file and environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"time"

	"github.com/spf13/viper"

	"github.com/Linkd-Fund/linkd-go-sdk/chain/stellar"
	"github.com/Linkd-Fund/linkd-go-sdk/chain/stellar/ledger"
)

// NetworkConfig selects the Stellar network. Name is either a preset (testnet, public) whose
// endpoints may be individually overridden, or a custom name with every field set.
type NetworkConfig struct {
	Name          string `mapstructure:"name" yaml:"name"`
	SorobanRPCURL string `mapstructure:"soroban_rpc_url" yaml:"soroban_rpc_url,omitempty"`
	HorizonURL    string `mapstructure:"horizon_url" yaml:"horizon_url,omitempty"`
	Passphrase    string `mapstructure:"passphrase" yaml:"passphrase,omitempty"`
}

// AnchorConfig is the configuration of the anchoring account.
//
// WARNING: This data type contains sensitive fields and should not be logged or set in file
// configuration.
type AnchorConfig struct {
	Secret  string `mapstructure:"secret" yaml:"secret,omitempty"`     // Secret: S... seed of the anchoring account.
	SeedHex string `mapstructure:"seed_hex" yaml:"seed_hex,omitempty"` // SeedHex: raw 32 byte ed25519 seed as hex, alternative to Secret.
}

// RPCConfig tunes the ledger adapters. Zero values select the defaults.
type RPCConfig struct {
	RetryAttempts uint          `mapstructure:"retry_attempts" yaml:"retry_attempts,omitempty"` // Attempts for idempotent reads
	RetryDelay    time.Duration `mapstructure:"retry_delay" yaml:"retry_delay,omitempty"`       // Fixed delay between attempts
	Timeout       time.Duration `mapstructure:"timeout" yaml:"timeout,omitempty"`               // Per-request HTTP timeout
}

// Config wraps the entire SDK configuration.
type Config struct {
	Network NetworkConfig `mapstructure:"network" yaml:"network"`
	Anchor  AnchorConfig  `mapstructure:"anchor" yaml:"anchor"`
	RPC     RPCConfig     `mapstructure:"rpc" yaml:"rpc"`
}

// StellarNetwork resolves the configured network.
func (c Config) StellarNetwork() (stellar.Network, error) {
	nc := c.Network
	if nc.Name == "" {
		return stellar.Network{}, errors.New("network name is required")
	}

	n, err := stellar.NetworkByName(nc.Name)
	if err != nil {
		// Custom networks must be fully specified.
		if nc.SorobanRPCURL == "" || nc.HorizonURL == "" || nc.Passphrase == "" {
			return stellar.Network{}, err
		}
		n = stellar.Network{Name: nc.Name}
	}

	if nc.SorobanRPCURL != "" {
		n.SorobanRPCURL = nc.SorobanRPCURL
	}
	if nc.HorizonURL != "" {
		n.HorizonURL = nc.HorizonURL
	}
	if nc.Passphrase != "" {
		n.Passphrase = nc.Passphrase
	}

	if err := n.Validate(); err != nil {
		return stellar.Network{}, fmt.Errorf("invalid network %s: %w", n.Name, err)
	}

	return n, nil
}

// RetryConfig returns the adapter retry policy, falling back to ledger.DefaultRetryConfig for
// unset fields.
func (c RPCConfig) RetryConfig() ledger.RetryConfig {
	cfg := ledger.DefaultRetryConfig
	if c.RetryAttempts > 0 {
		cfg.Attempts = c.RetryAttempts
	}
	if c.RetryDelay > 0 {
		cfg.Delay = c.RetryDelay
	}

	return cfg
}

// Load loads the config from the file path, falling back to env vars if the file does not exist.
// If the file exists, any env vars that are set will override the values loaded from the file.
func Load(filePath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(filePath)

	if err := bindEnvs(v); err != nil {
		return nil, err
	}

	if _, err := os.Stat(filePath); !errors.Is(err, fs.ErrNotExist) {
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	cfg := &Config{}
	err := v.Unmarshal(cfg)

	return cfg, err
}

// LoadEnv loads the config from the environment variables.
func LoadEnv() (*Config, error) {
	v := viper.New()

	if err := bindEnvs(v); err != nil {
		return nil, err
	}

	cfg := &Config{}
	err := v.Unmarshal(cfg)

	return cfg, err
}

// LoadFile loads the config from a file.
func LoadFile(filePath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(filePath)

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	cfg := &Config{}
	err := v.Unmarshal(cfg)

	return cfg, err
}

// envBindings maps config keys to the environment variables that can provide them. The first
// name is preferred; the second, when present, is the conventional Stellar tooling name and is
// only consulted when the first is unset.
var envBindings = map[string][]string{
	"network.name":            {"LINKD_NETWORK", "STELLAR_NETWORK"},
	"network.soroban_rpc_url": {"LINKD_SOROBAN_RPC_URL", "SOROBAN_RPC_URL"},
	"network.horizon_url":     {"LINKD_HORIZON_URL", "HORIZON_URL"},
	"network.passphrase":      {"LINKD_NETWORK_PASSPHRASE", "STELLAR_NETWORK_PASSPHRASE"},
	"anchor.secret":           {"LINKD_ANCHOR_SECRET"},
	"anchor.seed_hex":         {"LINKD_ANCHOR_SEED_HEX"},
	"rpc.retry_attempts":      {"LINKD_RPC_RETRY_ATTEMPTS"},
	"rpc.retry_delay":         {"LINKD_RPC_RETRY_DELAY"},
	"rpc.timeout":             {"LINKD_RPC_TIMEOUT"},
}

// bindEnvs binds the environment variables to the viper instance.
func bindEnvs(v *viper.Viper) error {
	for key, envs := range envBindings {
		inputs := slices.Insert(slices.Clone(envs), 0, key)

		if err := v.BindEnv(inputs...); err != nil {
			return err
		}
	}

	return nil
}
