// Package sorobanrpc adapts the Stellar RPC (Soroban RPC) JSON-RPC client to the ledger.RPC
// interface.
package sorobanrpc

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/stellar/go-stellar-sdk/clients/rpcclient"
	protocol "github.com/stellar/go-stellar-sdk/protocols/rpc"
	"github.com/stellar/go-stellar-sdk/xdr"

	"github.com/Linkd-Fund/linkd-go-sdk/chain/stellar/ledger"
	"github.com/Linkd-Fund/linkd-go-sdk/pkg/logger"
)

// sendTransaction and getTransaction statuses.
const (
	sendStatusError         = "ERROR"
	sendStatusTryAgainLater = "TRY_AGAIN_LATER"
	txStatusNotFound        = "NOT_FOUND"
	txStatusFailed          = "FAILED"
)

var errNotFinal = errors.New("transaction not yet in a closed ledger")

// ConfirmConfig bounds the getTransaction polling that follows a submission.
type ConfirmConfig struct {
	Attempts uint
	Delay    time.Duration
}

// DefaultConfirmConfig covers several ledger closes.
var DefaultConfirmConfig = ConfirmConfig{
	Attempts: 30,
	Delay:    time.Second,
}

// rpcAPI is the subset of *rpcclient.Client used by the adapter.
type rpcAPI interface {
	GetLedgerEntries(ctx context.Context, request protocol.GetLedgerEntriesRequest) (protocol.GetLedgerEntriesResponse, error)
	SimulateTransaction(ctx context.Context, request protocol.SimulateTransactionRequest) (protocol.SimulateTransactionResponse, error)
	SendTransaction(ctx context.Context, request protocol.SendTransactionRequest) (protocol.SendTransactionResponse, error)
	GetTransaction(ctx context.Context, request protocol.GetTransactionRequest) (protocol.GetTransactionResponse, error)
}

var _ rpcAPI = (*rpcclient.Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithRetry overrides the retry policy for account lookups and simulations.
func WithRetry(cfg ledger.RetryConfig) Option {
	return func(c *Client) {
		c.retry = cfg
	}
}

// WithConfirm overrides how long SubmitTransaction waits for the transaction to be final.
func WithConfirm(cfg ConfirmConfig) Option {
	return func(c *Client) {
		c.confirm = cfg
	}
}

// WithLogger sets the logger used to report transport retries.
func WithLogger(lggr logger.Logger) Option {
	return func(c *Client) {
		c.lggr = lggr
	}
}

// Client implements ledger.RPC on top of a Stellar RPC endpoint.
type Client struct {
	api     rpcAPI
	retry   ledger.RetryConfig
	confirm ConfirmConfig
	lggr    logger.Logger
}

var _ ledger.RPC = (*Client)(nil)

// Dial creates a Client for the Stellar RPC endpoint at url.
func Dial(url string, timeout time.Duration, opts ...Option) *Client {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	return New(rpcclient.NewClient(url, &http.Client{Timeout: timeout}), opts...)
}

// New wraps an existing rpcclient.Client.
func New(client *rpcclient.Client, opts ...Option) *Client {
	return newClient(client, opts...)
}

func newClient(api rpcAPI, opts ...Option) *Client {
	c := &Client{
		api:     api,
		retry:   ledger.DefaultRetryConfig,
		confirm: DefaultConfirmConfig,
		lggr:    logger.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// LoadAccount reads the account ledger entry and returns its current sequence number.
func (c *Client) LoadAccount(ctx context.Context, accountID string) (ledger.Account, error) {
	aid, err := xdr.AddressToAccountId(accountID)
	if err != nil {
		return ledger.Account{}, fmt.Errorf("invalid account id %q: %w", accountID, err)
	}

	key, err := xdr.MarshalBase64(xdr.LedgerKey{
		Type:    xdr.LedgerEntryTypeAccount,
		Account: &xdr.LedgerKeyAccount{AccountId: aid},
	})
	if err != nil {
		return ledger.Account{}, fmt.Errorf("failed to encode account ledger key: %w", err)
	}

	resp, err := retry.DoWithData(func() (protocol.GetLedgerEntriesResponse, error) {
		return c.api.GetLedgerEntries(ctx, protocol.GetLedgerEntriesRequest{Keys: []string{key}})
	}, c.retry.RetryOpts(ctx, c.onRetry("getLedgerEntries"))...)
	if err != nil {
		return ledger.Account{}, fmt.Errorf("failed to get ledger entry for account %s: %w", accountID, err)
	}

	if len(resp.Entries) == 0 {
		return ledger.Account{}, fmt.Errorf("%s: %w", accountID, ledger.ErrAccountNotFound)
	}

	var data xdr.LedgerEntryData
	if err := xdr.SafeUnmarshalBase64(resp.Entries[0].DataXDR, &data); err != nil {
		return ledger.Account{}, fmt.Errorf("failed to decode account ledger entry: %w", err)
	}

	entry, ok := data.GetAccount()
	if !ok {
		return ledger.Account{}, fmt.Errorf("ledger entry for %s is not an account entry", accountID)
	}

	return ledger.Account{ID: accountID, Sequence: int64(entry.SeqNum)}, nil
}

// SimulateTransaction calls simulateTransaction. A simulation reported as failed by the node is
// returned as a result with Error set, not as a Go error.
func (c *Client) SimulateTransaction(ctx context.Context, envelopeXDR string) (ledger.SimulationResult, error) {
	resp, err := retry.DoWithData(func() (protocol.SimulateTransactionResponse, error) {
		return c.api.SimulateTransaction(ctx, protocol.SimulateTransactionRequest{Transaction: envelopeXDR})
	}, c.retry.RetryOpts(ctx, c.onRetry("simulateTransaction"))...)
	if err != nil {
		return ledger.SimulationResult{}, fmt.Errorf("simulateTransaction request failed: %w", err)
	}

	result := ledger.SimulationResult{
		Error:           resp.Error,
		TransactionData: resp.TransactionDataXDR,
		MinResourceFee:  resp.MinResourceFee,
		RestoreRequired: resp.RestorePreamble != nil,
		LatestLedger:    resp.LatestLedger,
	}

	if len(resp.Results) > 0 {
		first := resp.Results[0]
		if first.AuthXDR != nil {
			result.Auth = append(result.Auth, (*first.AuthXDR)...)
		}
		if first.ReturnValueXDR != nil {
			result.ReturnValue = *first.ReturnValueXDR
		}
	}

	return result, nil
}

// SubmitTransaction calls sendTransaction exactly once, then polls getTransaction until the
// transaction is in a closed ledger. A transaction that fails in the ledger is an error.
func (c *Client) SubmitTransaction(ctx context.Context, envelopeXDR string) (ledger.SubmitResult, error) {
	resp, err := c.api.SendTransaction(ctx, protocol.SendTransactionRequest{Transaction: envelopeXDR})
	if err != nil {
		return ledger.SubmitResult{}, fmt.Errorf("sendTransaction request failed: %w", err)
	}

	switch resp.Status {
	case sendStatusError:
		return ledger.SubmitResult{}, fmt.Errorf("transaction %s rejected by the network (result %s)", resp.Hash, resp.ErrorResultXDR)
	case sendStatusTryAgainLater:
		return ledger.SubmitResult{}, fmt.Errorf("transaction %s not accepted: %s", resp.Hash, resp.Status)
	}

	return c.awaitFinal(ctx, resp.Hash)
}

func (c *Client) awaitFinal(ctx context.Context, hash string) (ledger.SubmitResult, error) {
	cfg := ledger.RetryConfig{Attempts: c.confirm.Attempts, Delay: c.confirm.Delay}

	tx, err := retry.DoWithData(func() (protocol.GetTransactionResponse, error) {
		tx, err := c.api.GetTransaction(ctx, protocol.GetTransactionRequest{Hash: hash})
		if err != nil {
			return tx, err
		}
		if tx.Status == txStatusNotFound {
			return tx, errNotFinal
		}

		return tx, nil
	}, cfg.RetryOpts(ctx, nil)...)
	if err != nil {
		return ledger.SubmitResult{}, fmt.Errorf("transaction %s not confirmed: %w", hash, err)
	}

	if tx.Status == txStatusFailed {
		return ledger.SubmitResult{}, fmt.Errorf("transaction %s failed in ledger %d", hash, tx.Ledger)
	}
	c.lggr.Debugw("Transaction confirmed", "hash", hash, "ledger", tx.Ledger)

	return ledger.SubmitResult{
		Hash:   hash,
		Status: tx.Status,
		Ledger: tx.Ledger,
	}, nil
}

func (c *Client) onRetry(method string) retry.OnRetryFunc {
	return func(attempt uint, err error) {
		c.lggr.Warnw("Retrying Stellar RPC call", "method", method, "attempt", attempt+1, "err", err)
	}
}
