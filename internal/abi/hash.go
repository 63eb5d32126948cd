// Package abi produces the exact byte sequences the Eth bridge contract
// verifies: confirm hashes for Valset/Batch/LogicCall, the payloads for
// submitBatch/submitLogicCall/updateValset, and Eth-verifiable signature
// ordering (§4.1).
package abi

import (
	"math/big"

	"github.com/althea-net/gravity-orchestrator/internal/bridgetypes"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// domainTag returns a bridge-type tag placed at the start of a bytes32 word
// and zero-padded on the right, the
// same way the bridge contract's makeCheckpoint-style functions build their
// domain separator out of a short ASCII tag.
func domainTag(tag string) [32]byte {
	var out [32]byte
	copy(out[:], tag)
	return out
}

func gravityIDWord(gravityID string) [32]byte {
	var out [32]byte
	copy(out[:], gravityID)
	return out
}

var (
	bytes32Ty, _  = abi.NewType("bytes32", "", nil)
	addressTy, _  = abi.NewType("address", "", nil)
	addressesTy, _ = abi.NewType("address[]", "", nil)
	uint256Ty, _  = abi.NewType("uint256", "", nil)
	uint256sTy, _ = abi.NewType("uint256[]", "", nil)
	stringTy, _   = abi.NewType("string", "", nil)
	bytesTy, _    = abi.NewType("bytes", "", nil)
)

func powersToBig(members []bridgetypes.ValsetMember) []*big.Int {
	out := make([]*big.Int, len(members))
	for i, m := range members {
		out[i] = new(big.Int).SetUint64(m.Power)
	}
	return out
}

func addressesOf(members []bridgetypes.ValsetMember) []common.Address {
	out := make([]common.Address, len(members))
	for i, m := range members {
		out[i] = m.EthAddress
	}
	return out
}

// ValsetConfirmHash computes the checkpoint hash a validator signs to
// confirm a valset update.
func ValsetConfirmHash(gravityID string, v *bridgetypes.Valset) ([32]byte, error) {
	args := abi.Arguments{{Type: bytes32Ty}, {Type: bytes32Ty}, {Type: addressesTy}, {Type: uint256sTy}, {Type: uint256Ty}, {Type: uint256Ty}, {Type: stringTy}}
	rewardAmount := v.RewardAmount
	if rewardAmount == nil {
		rewardAmount = big.NewInt(0)
	}
	packed, err := args.Pack(
		gravityIDWord(gravityID),
		domainTag("checkpoint"),
		addressesOf(v.Members),
		powersToBig(v.Members),
		new(big.Int).SetUint64(v.Nonce),
		rewardAmount,
		v.RewardDenom,
	)
	if err != nil {
		return [32]byte{}, err
	}
	return crypto.Keccak256Hash(packed), nil
}

// BatchConfirmHash computes the checkpoint hash a validator signs to confirm
// a transaction batch.
func BatchConfirmHash(gravityID string, b *bridgetypes.TransactionBatch) ([32]byte, error) {
	amounts := make([]*big.Int, len(b.Transactions))
	destinations := make([]common.Address, len(b.Transactions))
	fees := make([]*big.Int, len(b.Transactions))
	for i, tx := range b.Transactions {
		amounts[i] = tx.Amount
		destinations[i] = tx.Destination
		fees[i] = tx.Fee
	}
	args := abi.Arguments{{Type: bytes32Ty}, {Type: bytes32Ty}, {Type: uint256sTy}, {Type: addressesTy}, {Type: uint256sTy}, {Type: uint256Ty}, {Type: addressTy}, {Type: uint256Ty}}
	packed, err := args.Pack(
		gravityIDWord(gravityID),
		domainTag("transactionBatch"),
		amounts,
		destinations,
		fees,
		new(big.Int).SetUint64(b.Nonce),
		b.TokenContract,
		new(big.Int).SetUint64(b.BatchTimeout),
	)
	if err != nil {
		return [32]byte{}, err
	}
	return crypto.Keccak256Hash(packed), nil
}

// LogicCallConfirmHash computes the checkpoint hash a validator signs to
// confirm a logic call.
func LogicCallConfirmHash(gravityID string, c *bridgetypes.LogicCall) ([32]byte, error) {
	transferAmounts := make([]*big.Int, len(c.Transfers))
	transferContracts := make([]common.Address, len(c.Transfers))
	for i, t := range c.Transfers {
		transferAmounts[i] = t.Amount
		transferContracts[i] = t.TokenContractAddress
	}
	feeAmounts := make([]*big.Int, len(c.Fees))
	feeContracts := make([]common.Address, len(c.Fees))
	for i, f := range c.Fees {
		feeAmounts[i] = f.Amount
		feeContracts[i] = f.TokenContractAddress
	}

	args := abi.Arguments{
		{Type: bytes32Ty}, {Type: bytes32Ty},
		{Type: uint256sTy}, {Type: addressesTy},
		{Type: uint256sTy}, {Type: addressesTy},
		{Type: addressTy}, {Type: bytesTy}, {Type: uint256Ty},
		{Type: bytes32Ty}, {Type: uint256Ty},
	}
	var invalidationID [32]byte
	copy(invalidationID[:], c.InvalidationID)
	packed, err := args.Pack(
		gravityIDWord(gravityID),
		domainTag("logicCall"),
		transferAmounts, transferContracts,
		feeAmounts, feeContracts,
		c.LogicContractAddress, c.Payload, new(big.Int).SetUint64(c.Timeout),
		invalidationID, new(big.Int).SetUint64(c.InvalidationNonce),
	)
	if err != nil {
		return [32]byte{}, err
	}
	return crypto.Keccak256Hash(packed), nil
}
