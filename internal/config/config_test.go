package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestWriteDefaultThenLoadRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, WriteDefault(path))
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadPartialOverridesOnlyGivenFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	contents := `
[relayer]
batch_relaying_mode = "PROFITABLEONLY"
relayer_loop_speed = 30
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, BatchRelayingProfitableOnly, cfg.Relayer.BatchRelayingMode)
	require.Equal(t, uint64(30), cfg.Relayer.RelayerLoopSpeed)
	require.Equal(t, ValsetRelayingAltruistic, cfg.Relayer.ValsetRelayingMode)
}

func TestLoadRejectsInvalidMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	contents := `
[relayer]
batch_relaying_mode = "NOT_A_MODE"
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}
