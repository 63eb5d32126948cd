package oracle

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	gethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/require"

	"github.com/althea-net/gravity-orchestrator/internal/logging"
)

func TestTopicsAreDistinct(t *testing.T) {
	topics := allTopics()
	seen := make(map[string]bool)
	for _, top := range topics {
		require.False(t, seen[top.Hex()], "duplicate topic0 %s", top.Hex())
		seen[top.Hex()] = true
	}
	require.Len(t, topics, 5)
}

func TestClassifyDropsMalformedLogsWithoutPanicking(t *testing.T) {
	l := &Loop{log: logging.Setup("error", false, nil)}

	logs := []gethtypes.Log{
		{Topics: []common.Hash{topicValsetUpdated}},
		{Topics: []common.Hash{topicSendToCosmos}},
		{}, // no topics at all
	}

	all := l.classify(logs)
	require.Empty(t, all.ValsetUpdates)
	require.Empty(t, all.Deposits)
}
