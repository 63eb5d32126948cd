package relayer

import (
	"context"

	"github.com/althea-net/gravity-orchestrator/internal/config"
)

// requestBatches implements the batch requester sub-loop (§4.5.1), grounded
// on request_batches.rs: fetch the Eth gas price once (a failure here just
// skips this iteration, it is not fatal to the relayer loop), then for every
// token with pending batch fees, look up its Cosmos denom and ask the chain
// to assemble a batch when BatchRequestMode says to.
func (l *Loop) requestBatches(ctx context.Context) error {
	if _, err := l.eth.SuggestGasPrice(ctx); err != nil {
		l.log.Warn().Err(err).Msg("could not get gas price for auto batch request")
		return nil
	}

	fees, err := l.query.BatchFees(ctx)
	if err != nil {
		return err
	}

	for _, fee := range fees {
		denom, _, err := l.query.Erc20ToDenom(ctx, fee.Token)
		if err != nil {
			l.log.Error().Err(err).Str("erc20", fee.Token).Msg("failed to look up erc20 for batch request")
			continue
		}

		switch l.cfg.Relaying.BatchRequestMode {
		case config.BatchRequestEveryBatch:
			l.log.Info().Str("erc20", fee.Token).Msg("requesting batch")
			if _, err := l.cfg.CosmosSigner.RequestBatch(ctx, denom); err != nil {
				l.log.Warn().Err(err).Str("erc20", fee.Token).Msg("failed to request batch")
			}
		case config.BatchRequestNone:
		}
	}
	return nil
}
