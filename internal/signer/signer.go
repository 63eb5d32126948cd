// Package signer implements the Eth Signer loop: finding Valsets, Batches,
// and LogicCalls awaiting this validator's Eth signature and confirming
// them on Cosmos, grounded on cosmos_gravity/src/send.rs's confirm-sending
// functions and the polling shape of orchestrator/src/*signer*.
package signer

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/althea-net/gravity-orchestrator/internal/bridgetypes"
	"github.com/althea-net/gravity-orchestrator/internal/cosmosadapter"
	"github.com/althea-net/gravity-orchestrator/internal/errs"
	"github.com/althea-net/gravity-orchestrator/internal/metrics"
)

// Config holds the signer loop's per-process tunables.
type Config struct {
	// PollInterval is how often the loop runs an iteration; ~11s per §2.
	PollInterval time.Duration
	// GravityID is the bridge deployment's domain-separator string, mixed
	// into every confirm hash (internal/abi).
	GravityID string
	// Orchestrator is this process's bech32 Cosmos orchestrator address.
	Orchestrator string
}

// Loop runs the Eth Signer polling loop.
type Loop struct {
	query   *cosmosadapter.QueryClient
	signer  *cosmosadapter.Signer
	ethKey  *ecdsa.PrivateKey
	cfg     Config
	log     zerolog.Logger
	metrics metrics.Recorder
}

// NewLoop constructs a signer Loop. ethKey is the validator's Eth signing
// key; it is never written to disk or logged.
func NewLoop(query *cosmosadapter.QueryClient, signer *cosmosadapter.Signer, ethKey *ecdsa.PrivateKey, cfg Config, log zerolog.Logger, rec metrics.Recorder) *Loop {
	return &Loop{query: query, signer: signer, ethKey: ethKey, cfg: cfg, log: log, metrics: rec}
}

// Run polls every cfg.PollInterval until ctx is cancelled.
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			l.metrics.LoopIteration("signer")
			if err := l.runIteration(ctx); err != nil {
				kind := "unknown"
				var e *errs.Error
				if errors.As(err, &e) {
					kind = e.Kind.String()
				}
				l.metrics.LoopError("signer", kind)
				l.log.Warn().Err(err).Msg("signer loop iteration failed")
			}
		}
	}
}

// runIteration implements SPEC_FULL.md §4.4: three pending-object queries,
// each confirmed and submitted as one Cosmos tx per object kind, in the
// order Cosmos returned them.
func (l *Loop) runIteration(ctx context.Context) error {
	if err := l.signValsets(ctx); err != nil {
		return err
	}
	if err := l.signBatches(ctx); err != nil {
		return err
	}
	if err := l.signLogicCalls(ctx); err != nil {
		return err
	}
	return nil
}

// filterSignableValsets drops the genesis valset (nonce 0): signing it is
// meaningless since it predates the bridge, per §4.4.
func filterSignableValsets(pending []*bridgetypes.Valset) []*bridgetypes.Valset {
	out := make([]*bridgetypes.Valset, 0, len(pending))
	for _, v := range pending {
		if v.Nonce == 0 {
			continue
		}
		out = append(out, v)
	}
	return out
}

func (l *Loop) signValsets(ctx context.Context) error {
	pending, err := l.query.LastPendingValsetRequestByAddr(ctx, l.cfg.Orchestrator)
	if err != nil {
		return err
	}

	toSign := filterSignableValsets(pending)
	if len(toSign) == 0 {
		return nil
	}

	txHash, err := l.signer.ConfirmValsets(ctx, l.cfg.GravityID, toSign, l.ethKey)
	if err != nil {
		return err
	}
	if txHash != "" {
		l.metrics.ConfirmSubmitted("valset")
	}
	return nil
}

func (l *Loop) signBatches(ctx context.Context) error {
	pending, err := l.query.LastPendingBatchRequestByAddr(ctx, l.cfg.Orchestrator)
	if err != nil {
		return err
	}
	if len(pending) == 0 {
		return nil
	}
	txHash, err := l.signer.ConfirmBatches(ctx, l.cfg.GravityID, pending, l.ethKey)
	if err != nil {
		return err
	}
	if txHash != "" {
		l.metrics.ConfirmSubmitted("batch")
	}
	return nil
}

func (l *Loop) signLogicCalls(ctx context.Context) error {
	pending, err := l.query.LastPendingLogicCallByAddr(ctx, l.cfg.Orchestrator)
	if err != nil {
		return err
	}
	if len(pending) == 0 {
		return nil
	}
	txHash, err := l.signer.ConfirmLogicCalls(ctx, l.cfg.GravityID, pending, l.ethKey)
	if err != nil {
		return err
	}
	if txHash != "" {
		l.metrics.ConfirmSubmitted("logic_call")
	}
	return nil
}
