package cosmosadapter

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/althea-net/gravity-orchestrator/internal/bridgetypes"
	"github.com/althea-net/gravity-orchestrator/internal/gravitypb"
)

func TestValsetRoundTripsThroughWire(t *testing.T) {
	v := &bridgetypes.Valset{
		Nonce: 7,
		Members: []bridgetypes.ValsetMember{
			{EthAddress: common.HexToAddress("0x1111111111111111111111111111111111111111"), Power: 5000},
			{EthAddress: common.HexToAddress("0x2222222222222222222222222222222222222222"), Power: 5000},
		},
		RewardAmount: big.NewInt(12345),
		RewardDenom:  "ugraviton",
	}

	wire := valsetToWire(v)
	back, err := valsetFromWire(wire)
	require.NoError(t, err)
	require.Equal(t, v.Nonce, back.Nonce)
	require.Equal(t, v.RewardDenom, back.RewardDenom)
	require.Equal(t, v.RewardAmount.String(), back.RewardAmount.String())
	require.Len(t, back.Members, 2)
	require.Equal(t, v.Members[0].EthAddress, back.Members[0].EthAddress)
	require.Equal(t, v.Members[0].Power, back.Members[0].Power)
}

func TestBatchRoundTripsThroughWire(t *testing.T) {
	b := &bridgetypes.TransactionBatch{
		Nonce:         3,
		TokenContract: common.HexToAddress("0x3333333333333333333333333333333333333333"),
		BatchTimeout:  999,
		Transactions: []bridgetypes.BatchTx{
			{Destination: common.HexToAddress("0x4444444444444444444444444444444444444444"), Amount: big.NewInt(100), Fee: big.NewInt(1)},
		},
	}

	wire := batchToWire(b)
	back, err := batchFromWire(wire)
	require.NoError(t, err)
	require.Equal(t, b.Nonce, back.Nonce)
	require.Equal(t, b.TokenContract, back.TokenContract)
	require.Len(t, back.Transactions, 1)
	require.Equal(t, b.Transactions[0].Destination, back.Transactions[0].Destination)
	require.Equal(t, "100", back.Transactions[0].Amount.String())
	require.Equal(t, "1", back.Transactions[0].Fee.String())
}

func TestLogicCallRoundTripsThroughWire(t *testing.T) {
	c := &bridgetypes.LogicCall{
		Transfers:             []bridgetypes.Erc20Token{{Amount: big.NewInt(10), TokenContractAddress: common.HexToAddress("0x5555555555555555555555555555555555555555")}},
		Fees:                  []bridgetypes.Erc20Token{{Amount: big.NewInt(1), TokenContractAddress: common.HexToAddress("0x5555555555555555555555555555555555555555")}},
		LogicContractAddress: common.HexToAddress("0x6666666666666666666666666666666666666666"),
		Payload:              []byte{0xde, 0xad, 0xbe, 0xef},
		Timeout:              123,
		InvalidationID:       []byte{1, 2, 3},
		InvalidationNonce:    9,
	}

	wire := logicCallToWire(c)
	back, err := logicCallFromWire(wire)
	require.NoError(t, err)
	require.Equal(t, c.LogicContractAddress, back.LogicContractAddress)
	require.Equal(t, c.Payload, back.Payload)
	require.Equal(t, c.InvalidationNonce, back.InvalidationNonce)
	require.Len(t, back.Transfers, 1)
	require.Equal(t, "10", back.Transfers[0].Amount.String())
}

func TestParseEthSignatureRejectsWrongLength(t *testing.T) {
	_, err := parseEthSignature("0x1234")
	require.Error(t, err)
}

func TestSignTypeForSubjectDistinguishesVariants(t *testing.T) {
	require.Equal(t, gravitypb.SignTypeOrchestratorSignedMultiSigUpdate, gravitypb.SignTypeForSubject(&gravitypb.Valset{}))
	require.Equal(t, gravitypb.SignTypeOrchestratorSignedWithdrawBatch, gravitypb.SignTypeForSubject(&gravitypb.OutgoingTxBatch{}))
	require.Equal(t, gravitypb.SignTypeOrchestratorSignedLogicCall, gravitypb.SignTypeForSubject(&gravitypb.ContractCallTx{}))
	require.Equal(t, gravitypb.SignTypeUnspecified, gravitypb.SignTypeForSubject(&gravitypb.Params{}))
}

func TestPackBadSignatureSubjectRoundTrips(t *testing.T) {
	v := &gravitypb.Valset{Nonce: 42}
	packed, err := gravitypb.PackBadSignatureSubject(v)
	require.NoError(t, err)
	require.Equal(t, "/gravity.v1.Valset", packed.TypeUrl)
	require.NotEmpty(t, packed.Value)
}
