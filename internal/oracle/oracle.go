// Package oracle implements the Eth Oracle loop: polling Eth for bridge
// events and submitting them to Cosmos as claims, grounded on
// orchestrator/src/ethereum_event_watcher.rs.
package oracle

import (
	"context"
	"errors"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog"

	"github.com/althea-net/gravity-orchestrator/internal/cosmosadapter"
	"github.com/althea-net/gravity-orchestrator/internal/errs"
	"github.com/althea-net/gravity-orchestrator/internal/ethadapter"
	"github.com/althea-net/gravity-orchestrator/internal/ethevents"
	"github.com/althea-net/gravity-orchestrator/internal/metrics"
)

// Config holds the oracle loop's per-process tunables, supplied by the CLI
// (§6 "start" command flags), not the TOML policy config: these are
// connection/finality parameters, not relaying policy.
type Config struct {
	// PollInterval is how often the loop runs an iteration; ~13s per §2.
	PollInterval time.Duration
	// BlockDelay is the probabilistic-finality confirmation depth (§4.3):
	// 35 for PoW-style chains, 0 for a trusted single-signer test chain.
	BlockDelay uint64
	// StartBlock is where last_checked_block resumes from on a cold start,
	// since the core persists no durable state locally (§6 "Persisted state").
	StartBlock uint64
	// Orchestrator is this process's bech32 Cosmos orchestrator address,
	// used to query last_event_nonce.
	Orchestrator string
}

// Loop runs the Eth Oracle polling loop.
type Loop struct {
	eth     *ethadapter.Client
	query   *cosmosadapter.QueryClient
	signer  *cosmosadapter.Signer
	cfg     Config
	log     zerolog.Logger
	metrics metrics.Recorder

	lastCheckedBlock uint64
}

// NewLoop constructs an oracle Loop. lastCheckedBlock starts at
// cfg.StartBlock; Run advances it as iterations succeed.
func NewLoop(eth *ethadapter.Client, query *cosmosadapter.QueryClient, signer *cosmosadapter.Signer, cfg Config, log zerolog.Logger, rec metrics.Recorder) *Loop {
	return &Loop{
		eth:              eth,
		query:            query,
		signer:           signer,
		cfg:              cfg,
		log:              log,
		metrics:          rec,
		lastCheckedBlock: cfg.StartBlock,
	}
}

// Run polls every cfg.PollInterval until ctx is cancelled. Each iteration's
// error is logged and swallowed so one bad poll never kills the loop — only
// ctx cancellation stops it.
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			l.metrics.LoopIteration("oracle")
			if err := l.runIteration(ctx); err != nil {
				kind := "unknown"
				var e *errs.Error
				if errors.As(err, &e) {
					kind = e.Kind.String()
				}
				l.metrics.LoopError("oracle", kind)
				l.log.Warn().Err(err).Msg("oracle loop iteration failed")
			}
		}
	}
}

// runIteration implements SPEC_FULL.md §4.3 steps 1-6.
func (l *Loop) runIteration(ctx context.Context) error {
	latest, err := l.eth.BlockNumber(ctx)
	if err != nil {
		return err
	}
	if latest < l.cfg.BlockDelay {
		return nil
	}
	endingBlock := latest - l.cfg.BlockDelay
	if endingBlock <= l.lastCheckedBlock {
		return nil
	}

	// step 2: the window overlaps the previous tip by one block
	// deliberately, in case the process crashed mid-submission last time.
	fromBlock := l.lastCheckedBlock
	logs, err := l.eth.FilterLogs(ctx, fromBlock, endingBlock, [][]common.Hash{allTopics()})
	if err != nil {
		return err
	}

	all := l.classify(logs)

	lastEventNonce, err := l.query.LastEventNonceByAddr(ctx, l.cfg.Orchestrator)
	if err != nil {
		return err
	}
	all.ValsetUpdates = ethevents.FilterByEventNonce(all.ValsetUpdates, lastEventNonce)
	all.BatchExecutions = ethevents.FilterByEventNonce(all.BatchExecutions, lastEventNonce)
	all.Deposits = ethevents.FilterByEventNonce(all.Deposits, lastEventNonce)
	all.Erc20Deployments = ethevents.FilterByEventNonce(all.Erc20Deployments, lastEventNonce)
	all.LogicCallExecutions = ethevents.FilterByEventNonce(all.LogicCallExecutions, lastEventNonce)

	merged := ethevents.MergeByNonce(all)
	if len(merged) == 0 {
		l.lastCheckedBlock = endingBlock
		return nil
	}

	txHash, err := l.signer.SubmitClaims(ctx, merged)
	if err != nil {
		return err
	}

	advanced, err := l.query.LastEventNonceByAddr(ctx, l.cfg.Orchestrator)
	if err != nil {
		return err
	}
	if advanced <= lastEventNonce {
		return errs.Recoverable(nil, "last_event_nonce did not advance after claim submission").WithTxHash(txHash)
	}

	l.metrics.EventNonceObserved("eth", advanced)
	l.lastCheckedBlock = endingBlock
	return nil
}
