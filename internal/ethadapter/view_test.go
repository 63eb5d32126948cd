package ethadapter

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

func TestViewABIPacksAndUnpacksLastBatchNonce(t *testing.T) {
	erc20 := common.HexToAddress("0x038B86d9d8FAFdd0a02ebd1A476432877b0107C8")
	data, err := viewABI.Pack("state_lastBatchNonces", erc20)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	encoded, err := viewABI.Methods["state_lastBatchNonces"].Outputs.Pack(big.NewInt(42))
	require.NoError(t, err)

	values, err := viewABI.Unpack("state_lastBatchNonces", encoded)
	require.NoError(t, err)
	require.Len(t, values, 1)
	require.Equal(t, "42", values[0].(*big.Int).String())
}

func TestApplyPctAppliesTenPercentPremium(t *testing.T) {
	base := big.NewInt(1_000_000_000)
	got := applyPct(base, gasPriceMultiplierPctBatch)
	require.Equal(t, "1100000000", got.String())
}
