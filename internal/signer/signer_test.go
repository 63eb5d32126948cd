package signer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/althea-net/gravity-orchestrator/internal/bridgetypes"
)

func TestFilterSignableValsetsDropsGenesis(t *testing.T) {
	pending := []*bridgetypes.Valset{
		{Nonce: 0},
		{Nonce: 1},
		{Nonce: 2},
	}
	out := filterSignableValsets(pending)
	require.Len(t, out, 2)
	require.Equal(t, uint64(1), out[0].Nonce)
	require.Equal(t, uint64(2), out[1].Nonce)
}

func TestFilterSignableValsetsEmptyInput(t *testing.T) {
	require.Empty(t, filterSignableValsets(nil))
}
