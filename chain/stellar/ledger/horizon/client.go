// Package horizon adapts the Horizon REST client to the ledger.AccountLoader and
// ledger.Submitter interfaces. Horizon cannot simulate Soroban transactions.
package horizon

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/stellar/go-stellar-sdk/clients/horizonclient"
	hProtocol "github.com/stellar/go-stellar-sdk/protocols/horizon"

	"github.com/Linkd-Fund/linkd-go-sdk/chain/stellar/ledger"
	"github.com/Linkd-Fund/linkd-go-sdk/pkg/logger"
)

// horizonAPI is the subset of *horizonclient.Client used by the adapter.
type horizonAPI interface {
	AccountDetail(request horizonclient.AccountRequest) (hProtocol.Account, error)
	SubmitTransactionXDR(transactionXdr string) (hProtocol.Transaction, error)
}

var _ horizonAPI = (*horizonclient.Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithRetry overrides the retry policy for account lookups.
func WithRetry(cfg ledger.RetryConfig) Option {
	return func(c *Client) {
		c.retry = cfg
	}
}

// WithLogger sets the logger used to report transport retries.
func WithLogger(lggr logger.Logger) Option {
	return func(c *Client) {
		c.lggr = lggr
	}
}

// Client implements ledger.RPC on top of Horizon. SimulateTransaction always fails with
// ledger.ErrSimulationUnsupported.
type Client struct {
	api   horizonAPI
	retry ledger.RetryConfig
	lggr  logger.Logger
}

var _ ledger.RPC = (*Client)(nil)

// Dial creates a Client for the Horizon server at url.
func Dial(url string, timeout time.Duration, opts ...Option) *Client {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	return New(&horizonclient.Client{
		HorizonURL: url,
		HTTP:       &http.Client{Timeout: timeout},
	}, opts...)
}

// New wraps an existing horizonclient.Client.
func New(client *horizonclient.Client, opts ...Option) *Client {
	return newClient(client, opts...)
}

func newClient(api horizonAPI, opts ...Option) *Client {
	c := &Client{
		api:   api,
		retry: ledger.DefaultRetryConfig,
		lggr:  logger.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// LoadAccount fetches the account from Horizon. A 404 is mapped to ledger.ErrAccountNotFound
// and is not retried.
func (c *Client) LoadAccount(ctx context.Context, accountID string) (ledger.Account, error) {
	account, err := retry.DoWithData(func() (hProtocol.Account, error) {
		acc, err := c.api.AccountDetail(horizonclient.AccountRequest{AccountID: accountID})
		if horizonclient.IsNotFoundError(err) {
			return acc, retry.Unrecoverable(fmt.Errorf("%s: %w", accountID, ledger.ErrAccountNotFound))
		}

		return acc, err
	}, c.retry.RetryOpts(ctx, func(attempt uint, err error) {
		c.lggr.Warnw("Retrying Horizon account lookup", "account", accountID, "attempt", attempt+1, "err", err)
	})...)
	if err != nil {
		return ledger.Account{}, fmt.Errorf("failed to load account %s from horizon: %w", accountID, err)
	}

	seq, err := account.GetSequenceNumber()
	if err != nil {
		return ledger.Account{}, fmt.Errorf("invalid sequence number for account %s: %w", accountID, err)
	}

	return ledger.Account{ID: accountID, Sequence: seq}, nil
}

// SimulateTransaction is not available on Horizon.
func (c *Client) SimulateTransaction(context.Context, string) (ledger.SimulationResult, error) {
	return ledger.SimulationResult{}, ledger.ErrSimulationUnsupported
}

// SubmitTransaction submits the signed envelope synchronously and returns once Horizon reports
// the ledger outcome. It is attempted exactly once.
func (c *Client) SubmitTransaction(ctx context.Context, envelopeXDR string) (ledger.SubmitResult, error) {
	if err := ctx.Err(); err != nil {
		return ledger.SubmitResult{}, err
	}

	tx, err := c.api.SubmitTransactionXDR(envelopeXDR)
	if err != nil {
		return ledger.SubmitResult{}, fmt.Errorf("horizon rejected transaction: %w", describe(err))
	}

	status := "SUCCESS"
	if !tx.Successful {
		status = "FAILED"
	}

	return ledger.SubmitResult{
		Hash:   tx.Hash,
		Status: status,
		Ledger: uint32(tx.Ledger),
	}, nil
}

// describe enriches a Horizon problem response with its result codes.
func describe(err error) error {
	var herr *horizonclient.Error
	if !errors.As(err, &herr) {
		return err
	}

	codes, cerr := herr.ResultCodes()
	if cerr != nil || codes == nil {
		return err
	}

	return fmt.Errorf("%w (tx: %s, ops: %v)", err, codes.TransactionCode, codes.OperationCodes)
}
