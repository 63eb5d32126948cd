package relayer

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/althea-net/gravity-orchestrator/internal/bridgetypes"
	"github.com/althea-net/gravity-orchestrator/internal/config"
)

func addr(b byte) common.Address {
	var a common.Address
	a[19] = b
	return a
}

func TestValsetPowerDriftNoChange(t *testing.T) {
	old := &bridgetypes.Valset{Members: []bridgetypes.ValsetMember{
		{EthAddress: addr(1), Power: 50},
		{EthAddress: addr(2), Power: 50},
	}}
	require.Equal(t, uint64(0), valsetPowerDrift(old, old))
}

func TestValsetPowerDriftFullReplacement(t *testing.T) {
	old := &bridgetypes.Valset{Members: []bridgetypes.ValsetMember{
		{EthAddress: addr(1), Power: 100},
	}}
	next := &bridgetypes.Valset{Members: []bridgetypes.ValsetMember{
		{EthAddress: addr(2), Power: 100},
	}}
	require.Equal(t, uint64(200), valsetPowerDrift(old, next))
}

func TestShouldRelayValsetEveryValsetAlwaysRelays(t *testing.T) {
	old := &bridgetypes.Valset{Members: []bridgetypes.ValsetMember{{EthAddress: addr(1), Power: 100}}}
	require.True(t, shouldRelayValset(config.ValsetRelayingEveryValset, old, old))
}

func TestShouldRelayValsetAltruisticSkipsBelowThreshold(t *testing.T) {
	old := &bridgetypes.Valset{Members: []bridgetypes.ValsetMember{
		{EthAddress: addr(1), Power: 99},
		{EthAddress: addr(2), Power: 1},
	}}
	next := &bridgetypes.Valset{Members: []bridgetypes.ValsetMember{
		{EthAddress: addr(1), Power: 99},
		{EthAddress: addr(2), Power: 1},
	}}
	require.False(t, shouldRelayValset(config.ValsetRelayingAltruistic, old, next))
}

func TestShouldRelayValsetAltruisticRelaysAboveThreshold(t *testing.T) {
	old := &bridgetypes.Valset{Members: []bridgetypes.ValsetMember{
		{EthAddress: addr(1), Power: 100},
	}}
	next := &bridgetypes.Valset{Members: []bridgetypes.ValsetMember{
		{EthAddress: addr(2), Power: 100},
	}}
	require.True(t, shouldRelayValset(config.ValsetRelayingAltruistic, old, next))
}
