package relayer

import (
	"context"

	"github.com/althea-net/gravity-orchestrator/internal/bridgetypes"
)

// relayLogicCalls implements §4.5 step 2/5 for outgoing logic calls: the
// market for these is a single on/off toggle (LogicCallMarketEnabled),
// unlike the batch and valset relays' graded modes, matching the reference
// config's binary logic_call_market_enabled flag.
func (l *Loop) relayLogicCalls(ctx context.Context, current *bridgetypes.Valset) error {
	if !l.cfg.Relaying.LogicCallMarketEnabled {
		return nil
	}

	calls, err := l.query.OutgoingLogicCalls(ctx)
	if err != nil {
		return err
	}

	for _, call := range calls {
		lastNonce, err := l.eth.LastLogicCallNonce(ctx, call.InvalidationID)
		if err != nil {
			l.log.Warn().Err(err).Msg("could not read last logic call nonce")
			continue
		}
		if call.InvalidationNonce <= lastNonce {
			continue
		}

		confirms, err := l.query.LogicConfirms(ctx, call.InvalidationID, call.InvalidationNonce)
		if err != nil {
			l.log.Warn().Err(err).Uint64("invalidation_nonce", call.InvalidationNonce).Msg("could not fetch logic call confirms")
			continue
		}
		sigs, err := bridgetypes.OrderSignatures(current, confirms)
		if err != nil {
			l.log.Debug().Err(err).Uint64("invalidation_nonce", call.InvalidationNonce).Msg("logic call not yet at quorum")
			continue
		}

		hash, err := l.eth.RelayLogicCall(ctx, l.ethKey, current, sigs, call)
		if err != nil {
			l.log.Warn().Err(err).Uint64("invalidation_nonce", call.InvalidationNonce).Msg("relay logic call failed")
			continue
		}
		if _, err := l.eth.WaitForReceipt(ctx, hash); err != nil {
			l.log.Warn().Err(err).Uint64("invalidation_nonce", call.InvalidationNonce).Msg("logic call receipt wait failed")
			continue
		}
		l.metrics.BatchRelayed(true)
		l.log.Info().Uint64("invalidation_nonce", call.InvalidationNonce).Str("tx", hash.Hex()).Msg("relayed logic call")
	}
	return nil
}
