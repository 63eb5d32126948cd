// Package config holds the orchestrator's TOML-serializable configuration,
// grounded on gravity_utils/src/types/config.rs: a nested struct per
// subsystem (relayer, orchestrator, metrics), each field defaulted so a
// missing or partial config file still produces a usable configuration.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// ValsetRelayingMode controls when the relayer submits a validator set
// update to Eth.
type ValsetRelayingMode int

const (
	// ValsetRelayingAltruistic relays only when continued bridge operation
	// requires it.
	ValsetRelayingAltruistic ValsetRelayingMode = iota
	// ValsetRelayingEveryValset relays every valset update, for development.
	ValsetRelayingEveryValset
)

func (m ValsetRelayingMode) String() string {
	switch m {
	case ValsetRelayingEveryValset:
		return "EVERYVALSET"
	default:
		return "ALTRUISTIC"
	}
}

func parseValsetRelayingMode(s string) (ValsetRelayingMode, error) {
	switch strings.ToUpper(s) {
	case "EVERYVALSET":
		return ValsetRelayingEveryValset, nil
	case "ALTRUISTIC":
		return ValsetRelayingAltruistic, nil
	default:
		return 0, fmt.Errorf("invalid valset_relaying_mode %q", s)
	}
}

// BatchRequestMode controls whether the relayer automatically requests new
// batches from the Cosmos chain.
type BatchRequestMode int

const (
	BatchRequestEveryBatch BatchRequestMode = iota
	BatchRequestNone
)

func (m BatchRequestMode) String() string {
	switch m {
	case BatchRequestNone:
		return "NONE"
	default:
		return "EVERYBATCH"
	}
}

func parseBatchRequestMode(s string) (BatchRequestMode, error) {
	switch strings.ToUpper(s) {
	case "EVERYBATCH":
		return BatchRequestEveryBatch, nil
	case "NONE":
		return BatchRequestNone, nil
	default:
		return 0, fmt.Errorf("invalid batch_request_mode %q", s)
	}
}

// BatchRelayingMode controls which batches the relayer submits to Eth.
// EveryBatch and None are the reference implementation's baseline; the
// Profitable variants are this orchestrator's extension (SPEC_FULL.md §9
// Open Question #2) and relay a batch only when its summed fees are
// positive; no gas-cost estimate or margin is compared against those fees.
type BatchRelayingMode int

const (
	BatchRelayingEveryBatch BatchRelayingMode = iota
	BatchRelayingNone
	BatchRelayingProfitableOnly
	BatchRelayingProfitableWithWhitelist
)

func (m BatchRelayingMode) String() string {
	switch m {
	case BatchRelayingNone:
		return "NONE"
	case BatchRelayingProfitableOnly:
		return "PROFITABLEONLY"
	case BatchRelayingProfitableWithWhitelist:
		return "PROFITABLEWITHWHITELIST"
	default:
		return "EVERYBATCH"
	}
}

func parseBatchRelayingMode(s string) (BatchRelayingMode, error) {
	switch strings.ToUpper(s) {
	case "EVERYBATCH":
		return BatchRelayingEveryBatch, nil
	case "NONE":
		return BatchRelayingNone, nil
	case "PROFITABLEONLY":
		return BatchRelayingProfitableOnly, nil
	case "PROFITABLEWITHWHITELIST":
		return BatchRelayingProfitableWithWhitelist, nil
	default:
		return 0, fmt.Errorf("invalid batch_relaying_mode %q", s)
	}
}

// RelayerConfig controls the Cosmos relayer loop and its batch requester
// sub-loop.
type RelayerConfig struct {
	ValsetRelayingMode     ValsetRelayingMode
	BatchRequestMode       BatchRequestMode
	BatchRelayingMode      BatchRelayingMode
	LogicCallMarketEnabled bool
	// RelayerLoopSpeed is the relayer main loop's polling interval in
	// seconds. Higher values reduce the chance of two orchestrators racing
	// to relay the same update.
	RelayerLoopSpeed uint64
	// ProfitableBatchWhitelist names the ERC20 contracts the
	// PROFITABLEWITHWHITELIST mode will relay even at a loss.
	ProfitableBatchWhitelist []string
}

func defaultRelayerConfig() RelayerConfig {
	return RelayerConfig{
		ValsetRelayingMode:     ValsetRelayingAltruistic,
		BatchRequestMode:       BatchRequestEveryBatch,
		BatchRelayingMode:      BatchRelayingEveryBatch,
		LogicCallMarketEnabled: true,
		RelayerLoopSpeed:       600,
	}
}

// OrchestratorConfig controls the Eth oracle and signer loops.
type OrchestratorConfig struct {
	// RelayerEnabled runs an integrated relayer loop alongside the oracle
	// and signer loops in the same process.
	RelayerEnabled bool
}

func defaultOrchestratorConfig() OrchestratorConfig {
	return OrchestratorConfig{RelayerEnabled: false}
}

// MetricsConfig controls the optional Prometheus metrics server.
type MetricsConfig struct {
	MetricsEnabled bool
	MetricsBind    string
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{MetricsEnabled: false, MetricsBind: "127.0.0.1:6631"}
}

// GravityBridgeToolsConfig is the orchestrator's fully resolved runtime
// configuration, assembled from a TOML file layered over the defaults
// above.
type GravityBridgeToolsConfig struct {
	Relayer      RelayerConfig
	Orchestrator OrchestratorConfig
	Metrics      MetricsConfig
}

// Default returns a config identical to what a missing config file
// produces.
func Default() GravityBridgeToolsConfig {
	return GravityBridgeToolsConfig{
		Relayer:      defaultRelayerConfig(),
		Orchestrator: defaultOrchestratorConfig(),
		Metrics:      defaultMetricsConfig(),
	}
}

// tomlConfig is the on-disk shape: string-valued mode fields so hand-edited
// TOML stays readable, converted to the typed GravityBridgeToolsConfig by
// Load.
type tomlConfig struct {
	Relayer struct {
		ValsetRelayingMode       string   `toml:"valset_relaying_mode"`
		BatchRequestMode         string   `toml:"batch_request_mode"`
		BatchRelayingMode        string   `toml:"batch_relaying_mode"`
		LogicCallMarketEnabled   bool     `toml:"logic_call_market_enabled"`
		RelayerLoopSpeed         uint64   `toml:"relayer_loop_speed"`
		ProfitableBatchWhitelist []string `toml:"profitable_batch_whitelist"`
	} `toml:"relayer"`
	Orchestrator struct {
		RelayerEnabled bool `toml:"relayer_enabled"`
	} `toml:"orchestrator"`
	Metrics struct {
		MetricsEnabled bool   `toml:"metrics_enabled"`
		MetricsBind    string `toml:"metrics_bind"`
	} `toml:"metrics"`
}

func defaultTomlConfig() tomlConfig {
	var t tomlConfig
	d := Default()
	t.Relayer.ValsetRelayingMode = d.Relayer.ValsetRelayingMode.String()
	t.Relayer.BatchRequestMode = d.Relayer.BatchRequestMode.String()
	t.Relayer.BatchRelayingMode = d.Relayer.BatchRelayingMode.String()
	t.Relayer.LogicCallMarketEnabled = d.Relayer.LogicCallMarketEnabled
	t.Relayer.RelayerLoopSpeed = d.Relayer.RelayerLoopSpeed
	t.Orchestrator.RelayerEnabled = d.Orchestrator.RelayerEnabled
	t.Metrics.MetricsEnabled = d.Metrics.MetricsEnabled
	t.Metrics.MetricsBind = d.Metrics.MetricsBind
	return t
}

// Load reads path as TOML and overlays it onto the defaults. A missing file
// is not an error: it resolves to Default().
func Load(path string) (GravityBridgeToolsConfig, error) {
	t := defaultTomlConfig()

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, &t); err != nil {
			return GravityBridgeToolsConfig{}, fmt.Errorf("config: decode %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return GravityBridgeToolsConfig{}, fmt.Errorf("config: stat %s: %w", path, err)
	}

	valsetMode, err := parseValsetRelayingMode(t.Relayer.ValsetRelayingMode)
	if err != nil {
		return GravityBridgeToolsConfig{}, err
	}
	batchReqMode, err := parseBatchRequestMode(t.Relayer.BatchRequestMode)
	if err != nil {
		return GravityBridgeToolsConfig{}, err
	}
	batchRelayMode, err := parseBatchRelayingMode(t.Relayer.BatchRelayingMode)
	if err != nil {
		return GravityBridgeToolsConfig{}, err
	}

	return GravityBridgeToolsConfig{
		Relayer: RelayerConfig{
			ValsetRelayingMode:       valsetMode,
			BatchRequestMode:         batchReqMode,
			BatchRelayingMode:        batchRelayMode,
			LogicCallMarketEnabled:   t.Relayer.LogicCallMarketEnabled,
			RelayerLoopSpeed:         t.Relayer.RelayerLoopSpeed,
			ProfitableBatchWhitelist: t.Relayer.ProfitableBatchWhitelist,
		},
		Orchestrator: OrchestratorConfig{
			RelayerEnabled: t.Orchestrator.RelayerEnabled,
		},
		Metrics: MetricsConfig{
			MetricsEnabled: t.Metrics.MetricsEnabled,
			MetricsBind:    t.Metrics.MetricsBind,
		},
	}, nil
}

// WriteDefault writes the default configuration to path as TOML, for the
// `config init` CLI subcommand.
func WriteDefault(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("config: create %s: %w", path, err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(defaultTomlConfig())
}
