package escrow

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"math/big"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/Linkd-Fund/linkd-go-sdk/chain/stellar/txpipeline"
	"github.com/Linkd-Fund/linkd-go-sdk/escrow"
	"github.com/Linkd-Fund/linkd-go-sdk/pkg/logger"
)

const testContract = "CCONTRACT"

// call records one invocation of the fake client.
type call struct {
	method string
	args   []any
}

// fakeClient records calls and returns canned results.
type fakeClient struct {
	calls []call
	err   error
	view  escrow.View
}

func (f *fakeClient) record(method string, args ...any) (txpipeline.Envelope, error) {
	f.calls = append(f.calls, call{method: method, args: args})
	if f.err != nil {
		return "", f.err
	}

	return txpipeline.Envelope("AAAA" + method), nil
}

func (f *fakeClient) Initialize(_ context.Context, contractID, admin, ngo, auditor, beneficiary, token string) (txpipeline.Envelope, error) {
	return f.record(escrow.MethodInitialize, contractID, admin, ngo, auditor, beneficiary, token)
}

func (f *fakeClient) AddMilestone(_ context.Context, contractID, admin string, targetAmount *big.Int) (txpipeline.Envelope, error) {
	return f.record(escrow.MethodAddMilestone, contractID, admin, targetAmount.String())
}

func (f *fakeClient) Deposit(_ context.Context, contractID, donor string, amount *big.Int) (txpipeline.Envelope, error) {
	return f.record(escrow.MethodDeposit, contractID, donor, amount.String())
}

func (f *fakeClient) SubmitProof(_ context.Context, contractID, ngo string, milestoneID uint32, proofHash string) (txpipeline.Envelope, error) {
	return f.record(escrow.MethodSubmitProof, contractID, ngo, milestoneID, proofHash)
}

func (f *fakeClient) ApproveNgo(_ context.Context, contractID, ngo string, milestoneID uint32) (txpipeline.Envelope, error) {
	return f.record(escrow.MethodApproveNgo, contractID, ngo, milestoneID)
}

func (f *fakeClient) ApproveAuditor(_ context.Context, contractID, auditor string, milestoneID uint32) (txpipeline.Envelope, error) {
	return f.record(escrow.MethodApproveAuditor, contractID, auditor, milestoneID)
}

func (f *fakeClient) RefundMilestone(_ context.Context, contractID, admin string, milestoneID uint32, refundAddress string) (txpipeline.Envelope, error) {
	return f.record(escrow.MethodRefundMilestone, contractID, admin, milestoneID, refundAddress)
}

func (f *fakeClient) TotalEscrowed(context.Context, string) (*big.Int, error) {
	if f.err != nil {
		return nil, f.err
	}

	return f.view.TotalEscrowed, nil
}

func (f *fakeClient) MilestoneCount(context.Context, string) (uint32, error) {
	if f.err != nil {
		return 0, f.err
	}

	return f.view.MilestoneCount, nil
}

func (f *fakeClient) View(context.Context, string) (escrow.View, error) {
	if f.err != nil {
		return escrow.View{}, f.err
	}

	return f.view, nil
}

// newTestCommand creates the escrow command backed by the given client.
func newTestCommand(t *testing.T, client *fakeClient) (*cobra.Command, *string) {
	t.Helper()

	var gotConfigPath string
	cmd, err := NewCommand(Config{
		Logger: logger.Nop(),
		Deps: Deps{
			ClientFactory: func(_ context.Context, _ logger.Logger, configPath string) (Client, error) {
				gotConfigPath = configPath
				return client, nil
			},
		},
	})
	require.NoError(t, err)

	return cmd, &gotConfigPath
}

func execute(cmd *cobra.Command, args ...string) (string, error) {
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	require.EqualError(t, Config{}.Validate(), "escrow.Config: missing required fields: Logger")
	require.NoError(t, Config{Logger: logger.Nop()}.Validate())

	_, err := NewCommand(Config{})
	require.Error(t, err)
}

func TestNewCommand_Structure(t *testing.T) {
	t.Parallel()

	cmd, _ := newTestCommand(t, &fakeClient{})

	assert.Equal(t, "escrow", cmd.Use)
	assert.Equal(t, escrowShort, cmd.Short)
	assert.NotEmpty(t, cmd.Long)

	cfgFlag := cmd.PersistentFlags().Lookup("config")
	require.NotNil(t, cfgFlag)
	assert.Equal(t, "linkd.yml", cfgFlag.DefValue)

	uses := make([]string, 0, len(cmd.Commands()))
	for _, sc := range cmd.Commands() {
		uses = append(uses, sc.Use)
	}
	assert.ElementsMatch(t, []string{
		"initialize", "add-milestone", "deposit", "submit-proof", "approve-ngo", "approve-auditor",
		"refund-milestone", "total-escrowed", "milestone-count", "view",
	}, uses)
}

func TestNewCommand_WriteFlagsMirrorMethods(t *testing.T) {
	t.Parallel()

	cmd, _ := newTestCommand(t, &fakeClient{})

	for _, m := range escrow.Methods() {
		if m.ReadOnly() {
			continue
		}

		sub, _, err := cmd.Find([]string{flagName(m.Name)})
		require.NoError(t, err, m.Name)

		c := sub.Flags().Lookup("contract")
		require.NotNil(t, c, m.Name)
		assert.Equal(t, "c", c.Shorthand)

		for _, p := range m.Params {
			assert.NotNil(t, sub.Flags().Lookup(flagName(p.Name)), "%s --%s", m.Name, flagName(p.Name))
		}
		assert.NotNil(t, sub.Flags().Lookup(flagName(m.Signer)), "%s signer flag", m.Name)
	}
}

func TestWrite_Commands(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		give     []string
		wantCall call
	}{
		{
			name: "initialize",
			give: []string{
				"initialize", "-c", testContract, "--admin", "GADMIN", "--ngo", "GNGO", "--auditor", "GAUDITOR",
				"--beneficiary", "GBEN", "--token", "CTOKEN",
			},
			wantCall: call{
				method: escrow.MethodInitialize,
				args:   []any{testContract, "GADMIN", "GNGO", "GAUDITOR", "GBEN", "CTOKEN"},
			},
		},
		{
			name:     "add milestone",
			give:     []string{"add-milestone", "-c", testContract, "--admin", "GADMIN", "--target-amount", "1000"},
			wantCall: call{method: escrow.MethodAddMilestone, args: []any{testContract, "GADMIN", "10000000000"}},
		},
		{
			name:     "deposit",
			give:     []string{"deposit", "-c", testContract, "--donor", "GDONOR", "--amount", "150.5"},
			wantCall: call{method: escrow.MethodDeposit, args: []any{testContract, "GDONOR", "1505000000"}},
		},
		{
			name: "submit proof",
			give: []string{
				"submit-proof", "-c", testContract, "--ngo", "GNGO", "--milestone-id", "2", "--proof-hash", "abc123",
			},
			wantCall: call{method: escrow.MethodSubmitProof, args: []any{testContract, "GNGO", uint32(2), "abc123"}},
		},
		{
			name:     "approve ngo",
			give:     []string{"approve-ngo", "-c", testContract, "--ngo", "GNGO", "--milestone-id", "1"},
			wantCall: call{method: escrow.MethodApproveNgo, args: []any{testContract, "GNGO", uint32(1)}},
		},
		{
			name:     "approve auditor",
			give:     []string{"approve-auditor", "-c", testContract, "--auditor", "GAUD", "--milestone-id", "1"},
			wantCall: call{method: escrow.MethodApproveAuditor, args: []any{testContract, "GAUD", uint32(1)}},
		},
		{
			name: "refund milestone",
			give: []string{
				"refund-milestone", "-c", testContract, "--admin", "GADMIN", "--milestone-id", "3",
				"--refund-address", "GDONOR",
			},
			wantCall: call{method: escrow.MethodRefundMilestone, args: []any{testContract, "GADMIN", uint32(3), "GDONOR"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client := &fakeClient{}
			cmd, configPath := newTestCommand(t, client)

			out, err := execute(cmd, append(tt.give, "--config", "custom.yml")...)
			require.NoError(t, err)

			require.Len(t, client.calls, 1)
			assert.Equal(t, tt.wantCall, client.calls[0])
			assert.Equal(t, "AAAA"+tt.wantCall.method+"\n", out)
			assert.Equal(t, "custom.yml", *configPath)
		})
	}
}

func TestWrite_MissingFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		give    []string
		wantErr string
	}{
		{
			name:    "contract",
			give:    []string{"deposit", "--donor", "GDONOR", "--amount", "1"},
			wantErr: `required flag(s) "contract" not set`,
		},
		{
			name:    "signer",
			give:    []string{"approve-ngo", "-c", testContract, "--milestone-id", "1"},
			wantErr: `required flag(s) "ngo" not set`,
		},
		{
			name:    "milestone id",
			give:    []string{"approve-auditor", "-c", testContract, "--auditor", "GAUD"},
			wantErr: `required flag(s) "milestone-id" not set`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client := &fakeClient{}
			cmd, _ := newTestCommand(t, client)

			_, err := execute(cmd, tt.give...)
			require.ErrorContains(t, err, tt.wantErr)
			assert.Empty(t, client.calls)
		})
	}
}

func TestWrite_InvalidAmount(t *testing.T) {
	t.Parallel()

	client := &fakeClient{}
	cmd, _ := newTestCommand(t, client)

	_, err := execute(cmd, "deposit", "-c", testContract, "--donor", "GDONOR", "--amount", "0.00000001")
	require.ErrorContains(t, err, "--amount")
	require.ErrorContains(t, err, "more than 7 decimal places")
	assert.Empty(t, client.calls)
}

func TestWrite_ClientError(t *testing.T) {
	t.Parallel()

	client := &fakeClient{err: errors.New("simulation failed")}
	cmd, _ := newTestCommand(t, client)

	_, err := execute(cmd, "approve-ngo", "-c", testContract, "--ngo", "GNGO", "--milestone-id", "0")
	require.ErrorContains(t, err, "error preparing approve_ngo on CCONTRACT")
	require.ErrorContains(t, err, "simulation failed")
}

func TestWrite_ConnectError(t *testing.T) {
	t.Parallel()

	cmd, err := NewCommand(Config{
		Logger: logger.Nop(),
		Deps: Deps{
			ClientFactory: func(context.Context, logger.Logger, string) (Client, error) {
				return nil, errors.New("unknown network")
			},
		},
	})
	require.NoError(t, err)

	_, err = execute(cmd, "approve-ngo", "-c", testContract, "--ngo", "GNGO", "--milestone-id", "0")
	require.ErrorContains(t, err, "failed to connect: unknown network")
}

func TestView(t *testing.T) {
	t.Parallel()

	view := escrow.View{TotalEscrowed: big.NewInt(1_505_000_000), MilestoneCount: 3}
	want := viewOutput{
		Contract:           testContract,
		TotalEscrowed:      "1505000000",
		TotalEscrowedUnits: "150.5000000",
		MilestoneCount:     3,
	}

	t.Run("yaml", func(t *testing.T) {
		t.Parallel()

		cmd, _ := newTestCommand(t, &fakeClient{view: view})
		out, err := execute(cmd, "view", "-c", testContract)
		require.NoError(t, err)

		var got viewOutput
		require.NoError(t, yaml.Unmarshal([]byte(out), &got))
		assert.Equal(t, want, got)
	})

	t.Run("json", func(t *testing.T) {
		t.Parallel()

		cmd, _ := newTestCommand(t, &fakeClient{view: view})
		out, err := execute(cmd, "view", "-c", testContract, "-f", "json")
		require.NoError(t, err)

		var got viewOutput
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.Equal(t, want, got)
	})

	t.Run("unsupported format", func(t *testing.T) {
		t.Parallel()

		cmd, _ := newTestCommand(t, &fakeClient{view: view})
		_, err := execute(cmd, "view", "-c", testContract, "-f", "toml")
		require.ErrorContains(t, err, `unsupported format "toml"`)
	})

	t.Run("client error", func(t *testing.T) {
		t.Parallel()

		cmd, _ := newTestCommand(t, &fakeClient{err: errors.New("rpc down")})
		_, err := execute(cmd, "view", "-c", testContract)
		require.ErrorContains(t, err, "error reading escrow CCONTRACT: rpc down")
	})
}

func TestTotalEscrowedAndMilestoneCount(t *testing.T) {
	t.Parallel()

	client := &fakeClient{view: escrow.View{TotalEscrowed: big.NewInt(42), MilestoneCount: 7}}

	cmd, _ := newTestCommand(t, client)
	out, err := execute(cmd, "total-escrowed", "-c", testContract)
	require.NoError(t, err)
	assert.Equal(t, "42\n", out)

	cmd, _ = newTestCommand(t, client)
	out, err = execute(cmd, "milestone-count", "-c", testContract)
	require.NoError(t, err)
	assert.Equal(t, "7\n", out)
}
