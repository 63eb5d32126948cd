package relayer

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/althea-net/gravity-orchestrator/internal/bridgetypes"
	"github.com/althea-net/gravity-orchestrator/internal/config"
)

func batchWithFee(fee int64) *bridgetypes.TransactionBatch {
	return &bridgetypes.TransactionBatch{
		TokenContract: addr(9),
		Transactions: []bridgetypes.BatchTx{
			{Amount: big.NewInt(1000), Fee: big.NewInt(fee)},
		},
	}
}

func TestShouldRelayBatchNoneNeverRelays(t *testing.T) {
	require.False(t, shouldRelayBatch(config.BatchRelayingNone, batchWithFee(100), nil))
}

func TestShouldRelayBatchEveryBatchAlwaysRelays(t *testing.T) {
	require.True(t, shouldRelayBatch(config.BatchRelayingEveryBatch, batchWithFee(0), nil))
}

func TestShouldRelayBatchProfitableOnlyRequiresFee(t *testing.T) {
	require.False(t, shouldRelayBatch(config.BatchRelayingProfitableOnly, batchWithFee(0), nil))
	require.True(t, shouldRelayBatch(config.BatchRelayingProfitableOnly, batchWithFee(1), nil))
}

func TestShouldRelayBatchProfitableWithWhitelistAllowsWhitelistedLoss(t *testing.T) {
	batch := batchWithFee(0)
	require.False(t, shouldRelayBatch(config.BatchRelayingProfitableWithWhitelist, batch, nil))
	require.True(t, shouldRelayBatch(config.BatchRelayingProfitableWithWhitelist, batch, []string{batch.TokenContract.Hex()}))
}
