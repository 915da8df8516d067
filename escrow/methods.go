package escrow

import (
	"github.com/Linkd-Fund/linkd-go-sdk/chain/stellar/scval"
)

// Contract method names. These and the argument order in methodTable are the wire contract with
// the deployed escrow; they must change together with it.
const (
	MethodInitialize        = "initialize"
	MethodAddMilestone      = "add_milestone"
	MethodDeposit           = "deposit"
	MethodSubmitProof       = "submit_proof"
	MethodApproveNgo        = "approve_ngo"
	MethodApproveAuditor    = "approve_auditor"
	MethodRefundMilestone   = "refund_milestone"
	MethodGetTotalEscrowed  = "get_total_escrowed"
	MethodGetMilestoneCount = "get_milestone_count"
)

// Param is a positional contract argument.
type Param struct {
	Name string
	Tag  scval.Tag
}

// Method describes one escrow contract entry point.
type Method struct {
	Name   string
	Params []Param
	// Signer names the role whose account sources the transaction. Empty for views.
	Signer string
}

// ReadOnly reports whether the method is served by a view simulation.
func (m Method) ReadOnly() bool {
	return m.Signer == ""
}

var methodTable = []Method{
	{
		Name: MethodInitialize,
		Params: []Param{
			{"admin", scval.TagAddress},
			{"ngo", scval.TagAddress},
			{"auditor", scval.TagAddress},
			{"beneficiary", scval.TagAddress},
			{"token", scval.TagAddress},
		},
		Signer: "admin",
	},
	{
		Name:   MethodAddMilestone,
		Params: []Param{{"target_amount", scval.TagI128}},
		Signer: "admin",
	},
	{
		Name:   MethodDeposit,
		Params: []Param{{"donor", scval.TagAddress}, {"amount", scval.TagI128}},
		Signer: "donor",
	},
	{
		Name:   MethodSubmitProof,
		Params: []Param{{"milestone_id", scval.TagU32}, {"proof_hash", scval.TagString}},
		Signer: "ngo",
	},
	{
		Name:   MethodApproveNgo,
		Params: []Param{{"milestone_id", scval.TagU32}},
		Signer: "ngo",
	},
	{
		Name:   MethodApproveAuditor,
		Params: []Param{{"milestone_id", scval.TagU32}},
		Signer: "auditor",
	},
	{
		Name:   MethodRefundMilestone,
		Params: []Param{{"milestone_id", scval.TagU32}, {"refund_address", scval.TagAddress}},
		Signer: "admin",
	},
	{Name: MethodGetTotalEscrowed},
	{Name: MethodGetMilestoneCount},
}

// Methods returns the escrow contract interface in declaration order.
func Methods() []Method {
	out := make([]Method, len(methodTable))
	for i, m := range methodTable {
		m.Params = append([]Param(nil), m.Params...)
		out[i] = m
	}

	return out
}

// MethodByName looks up a contract method.
func MethodByName(name string) (Method, bool) {
	for _, m := range methodTable {
		if m.Name == name {
			return m, true
		}
	}

	return Method{}, false
}
