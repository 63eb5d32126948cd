// Package bridgetypes defines the six cross-chain entities the orchestrator
// moves between Eth and Cosmos: Valset, TransactionBatch, LogicCall,
// Attestation, Signature, and DelegateKeyBinding.
package bridgetypes

import (
	"math/big"
	"sort"

	"github.com/ethereum/go-ethereum/common"
)

// ValsetMember is one validator's Eth signing address and voting power.
type ValsetMember struct {
	EthAddress common.Address
	Power      uint64
}

// Valset is an ordered snapshot of the bridge's validator set.
type Valset struct {
	Nonce        uint64
	Members      []ValsetMember
	RewardAmount *big.Int
	RewardDenom  string
}

// TotalPower sums member voting power. Callers are responsible for checking
// this does not overflow uint64 before relying on it (invariant (b), §3).
func (v *Valset) TotalPower() uint64 {
	var total uint64
	for _, m := range v.Members {
		total += m.Power
	}
	return total
}

// SortMembers orders members by power descending, ties broken by Eth address
// ascending, matching invariant (a) of §3.
func SortMembers(members []ValsetMember) {
	sort.SliceStable(members, func(i, j int) bool {
		if members[i].Power != members[j].Power {
			return members[i].Power > members[j].Power
		}
		return bytesLess(members[i].EthAddress.Bytes(), members[j].EthAddress.Bytes())
	})
}

func bytesLess(a, b []byte) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// BatchTx is one outgoing transfer within a TransactionBatch.
type BatchTx struct {
	Destination common.Address
	Amount      *big.Int
	Fee         *big.Int
}

// TransactionBatch is an outgoing bundle of ERC20 withdrawals bound to a
// single token contract.
type TransactionBatch struct {
	Nonce        uint64
	TokenContract common.Address
	Transactions []BatchTx
	BatchTimeout uint64
}

// Erc20Token pairs a token contract with an amount, used for LogicCall
// transfers and fees.
type Erc20Token struct {
	Amount              *big.Int
	TokenContractAddress common.Address
}

// LogicCall is a generalized outgoing Eth contract invocation authorized by
// the valset.
type LogicCall struct {
	Transfers          []Erc20Token
	Fees               []Erc20Token
	LogicContractAddress common.Address
	Payload            []byte
	Timeout            uint64
	InvalidationID     []byte
	InvalidationNonce  uint64
}

// EthSignature is an Eth-recoverable (v, r, s) signature over a confirm hash.
type EthSignature struct {
	V uint8
	R [32]byte
	S [32]byte
}

// IsZero reports whether sig is the placeholder used for a missing signer
// (§4.1 "Missing signers contribute a zero signature").
func (sig EthSignature) IsZero() bool {
	return sig.V == 0 && sig.R == [32]byte{} && sig.S == [32]byte{}
}

// ConfirmResponse associates an Eth signature, the signer's Eth address, and
// the Cosmos orchestrator address that submitted it, over some object
// identified externally by nonce(s).
type ConfirmResponse struct {
	EthereumSigner common.Address
	Orchestrator   string
	Signature      EthSignature
}

// Attestation is an observation of a single Eth event, as mirrored on Cosmos.
type Attestation struct {
	EventNonce     uint64
	EthBlockHeight uint64
}

// DelegateKeyBinding ties a Cosmos validator operator address to an
// orchestrator (Cosmos) address and an Eth signing address. Immutable after
// first write.
type DelegateKeyBinding struct {
	ValidatorAddress   string
	OrchestratorAddress string
	EthAddress         common.Address
}
