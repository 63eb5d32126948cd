package abi

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/althea-net/gravity-orchestrator/internal/bridgetypes"
	gabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// function signatures pinned by §4.1; must match byte-for-byte what the
// bridge contract expects.
const (
	submitBatchSig     = "submitBatch((address[],uint256[],uint256,uint256,string),(uint8,bytes32,bytes32)[],uint256[],address[],uint256[],uint256,address,uint256)"
	submitLogicCallSig = "submitLogicCall((address[],uint256[],uint256,uint256,string),(uint8,bytes32,bytes32)[],(uint256[],address[],uint256[],address[],address,bytes,uint256,bytes32,uint256))"
	updateValsetSig    = "updateValset((address[],uint256[],uint256,uint256,string),(address[],uint256[],uint256,uint256,string),(uint8,bytes32,bytes32)[])"
)

const contractABIJSON = `[
  {"type":"function","name":"submitBatch","stateMutability":"nonpayable","inputs":[
    {"name":"_currentValset","type":"tuple","components":[
      {"name":"validators","type":"address[]"},
      {"name":"powers","type":"uint256[]"},
      {"name":"valsetNonce","type":"uint256"},
      {"name":"rewardAmount","type":"uint256"},
      {"name":"rewardToken","type":"string"}]},
    {"name":"_sigs","type":"tuple[]","components":[
      {"name":"v","type":"uint8"},
      {"name":"r","type":"bytes32"},
      {"name":"s","type":"bytes32"}]},
    {"name":"_amounts","type":"uint256[]"},
    {"name":"_destinations","type":"address[]"},
    {"name":"_fees","type":"uint256[]"},
    {"name":"_batchNonce","type":"uint256"},
    {"name":"_tokenContract","type":"address"},
    {"name":"_batchTimeout","type":"uint256"}],
   "outputs":[]},
  {"type":"function","name":"submitLogicCall","stateMutability":"nonpayable","inputs":[
    {"name":"_currentValset","type":"tuple","components":[
      {"name":"validators","type":"address[]"},
      {"name":"powers","type":"uint256[]"},
      {"name":"valsetNonce","type":"uint256"},
      {"name":"rewardAmount","type":"uint256"},
      {"name":"rewardToken","type":"string"}]},
    {"name":"_sigs","type":"tuple[]","components":[
      {"name":"v","type":"uint8"},
      {"name":"r","type":"bytes32"},
      {"name":"s","type":"bytes32"}]},
    {"name":"_args","type":"tuple","components":[
      {"name":"transferAmounts","type":"uint256[]"},
      {"name":"transferTokenContracts","type":"address[]"},
      {"name":"feeAmounts","type":"uint256[]"},
      {"name":"feeTokenContracts","type":"address[]"},
      {"name":"logicContractAddress","type":"address"},
      {"name":"payload","type":"bytes"},
      {"name":"timeOut","type":"uint256"},
      {"name":"invalidationId","type":"bytes32"},
      {"name":"invalidationNonce","type":"uint256"}]}],
   "outputs":[]},
  {"type":"function","name":"updateValset","stateMutability":"nonpayable","inputs":[
    {"name":"_currentValset","type":"tuple","components":[
      {"name":"validators","type":"address[]"},
      {"name":"powers","type":"uint256[]"},
      {"name":"valsetNonce","type":"uint256"},
      {"name":"rewardAmount","type":"uint256"},
      {"name":"rewardToken","type":"string"}]},
    {"name":"_newValset","type":"tuple","components":[
      {"name":"validators","type":"address[]"},
      {"name":"powers","type":"uint256[]"},
      {"name":"valsetNonce","type":"uint256"},
      {"name":"rewardAmount","type":"uint256"},
      {"name":"rewardToken","type":"string"}]},
    {"name":"_sigs","type":"tuple[]","components":[
      {"name":"v","type":"uint8"},
      {"name":"r","type":"bytes32"},
      {"name":"s","type":"bytes32"}]}],
   "outputs":[]}
]`

var contractABI = func() gabi.ABI {
	parsed, err := gabi.JSON(strings.NewReader(contractABIJSON))
	if err != nil {
		panic(fmt.Sprintf("abi: invalid embedded contract ABI: %v", err))
	}
	return parsed
}()

type valsetArg struct {
	Validators   []common.Address
	Powers       []*big.Int
	ValsetNonce  *big.Int
	RewardAmount *big.Int
	RewardToken  string
}

type sigArg struct {
	V uint8
	R [32]byte
	S [32]byte
}

func toValsetArg(v *bridgetypes.Valset) valsetArg {
	rewardAmount := v.RewardAmount
	if rewardAmount == nil {
		rewardAmount = big.NewInt(0)
	}
	addrs := make([]common.Address, len(v.Members))
	powers := make([]*big.Int, len(v.Members))
	for i, m := range v.Members {
		addrs[i] = m.EthAddress
		powers[i] = new(big.Int).SetUint64(m.Power)
	}
	return valsetArg{
		Validators:   addrs,
		Powers:       powers,
		ValsetNonce:  new(big.Int).SetUint64(v.Nonce),
		RewardAmount: rewardAmount,
		RewardToken:  v.RewardDenom,
	}
}

func toSigArgs(sigs []bridgetypes.EthSignature) []sigArg {
	out := make([]sigArg, len(sigs))
	for i, s := range sigs {
		out[i] = sigArg{V: s.V, R: s.R, S: s.S}
	}
	return out
}

// BuildSubmitBatchPayload encodes a call to submitBatch: current valset,
// ordered signatures, and the new batch's fields.
func BuildSubmitBatchPayload(currentValset *bridgetypes.Valset, sigs []bridgetypes.EthSignature, batch *bridgetypes.TransactionBatch) ([]byte, error) {
	amounts := make([]*big.Int, len(batch.Transactions))
	destinations := make([]common.Address, len(batch.Transactions))
	fees := make([]*big.Int, len(batch.Transactions))
	for i, tx := range batch.Transactions {
		amounts[i] = tx.Amount
		destinations[i] = tx.Destination
		fees[i] = tx.Fee
	}
	return contractABI.Pack("submitBatch",
		toValsetArg(currentValset),
		toSigArgs(sigs),
		amounts, destinations, fees,
		new(big.Int).SetUint64(batch.Nonce),
		batch.TokenContract,
		new(big.Int).SetUint64(batch.BatchTimeout),
	)
}

// BuildSubmitLogicCallPayload encodes a call to submitLogicCall: current
// valset, ordered signatures, and the logic call's struct argument. This is
// the function pinned by the golden test in §8.
func BuildSubmitLogicCallPayload(currentValset *bridgetypes.Valset, sigs []bridgetypes.EthSignature, call *bridgetypes.LogicCall) ([]byte, error) {
	transferAmounts := make([]*big.Int, len(call.Transfers))
	transferContracts := make([]common.Address, len(call.Transfers))
	for i, t := range call.Transfers {
		transferAmounts[i] = t.Amount
		transferContracts[i] = t.TokenContractAddress
	}
	feeAmounts := make([]*big.Int, len(call.Fees))
	feeContracts := make([]common.Address, len(call.Fees))
	for i, f := range call.Fees {
		feeAmounts[i] = f.Amount
		feeContracts[i] = f.TokenContractAddress
	}
	var invalidationID [32]byte
	copy(invalidationID[:], call.InvalidationID)

	type logicCallArg struct {
		TransferAmounts        []*big.Int
		TransferTokenContracts []common.Address
		FeeAmounts             []*big.Int
		FeeTokenContracts      []common.Address
		LogicContractAddress   common.Address
		Payload                []byte
		TimeOut                *big.Int
		InvalidationId         [32]byte
		InvalidationNonce      *big.Int
	}

	return contractABI.Pack("submitLogicCall",
		toValsetArg(currentValset),
		toSigArgs(sigs),
		logicCallArg{
			TransferAmounts:        transferAmounts,
			TransferTokenContracts: transferContracts,
			FeeAmounts:             feeAmounts,
			FeeTokenContracts:      feeContracts,
			LogicContractAddress:   call.LogicContractAddress,
			Payload:                call.Payload,
			TimeOut:                new(big.Int).SetUint64(call.Timeout),
			InvalidationId:         invalidationID,
			InvalidationNonce:      new(big.Int).SetUint64(call.InvalidationNonce),
		},
	)
}

// BuildUpdateValsetPayload encodes a call to updateValset: current valset,
// new valset, and ordered signatures over the new valset's checkpoint.
func BuildUpdateValsetPayload(currentValset, newValset *bridgetypes.Valset, sigs []bridgetypes.EthSignature) ([]byte, error) {
	return contractABI.Pack("updateValset",
		toValsetArg(currentValset),
		toValsetArg(newValset),
		toSigArgs(sigs),
	)
}
