package cosmosadapter

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/althea-net/gravity-orchestrator/internal/errs"
	"github.com/althea-net/gravity-orchestrator/internal/ethevents"
	"github.com/althea-net/gravity-orchestrator/internal/gravitypb"
)

// claimMsg converts one observed Eth event into the bridge module claim
// message that attests it, stamping the submitting orchestrator address.
// Grounded on cosmos_gravity/src/send.rs send_ethereum_claims, which builds
// the same five Msg variants from the same five event kinds before
// inserting them into its per-nonce ordering map.
func claimMsg(event any, orchestrator string) (sdk.Msg, error) {
	switch e := event.(type) {
	case *ethevents.SendToCosmosEvent:
		return &gravitypb.MsgSendToCosmosClaim{
			EventNonce:     e.EventNonce,
			BlockHeight:    e.BlockHeight,
			TokenContract:  e.Erc20.Hex(),
			Amount:         e.Amount.String(),
			EthereumSender: e.Sender.Hex(),
			CosmosReceiver: e.ValidatedDestination,
			Orchestrator:   orchestrator,
		}, nil
	case *ethevents.TransactionBatchExecutedEvent:
		return &gravitypb.MsgBatchSendToEthClaim{
			EventNonce:    e.EventNonce,
			BlockHeight:   e.BlockHeight,
			TokenContract: e.Erc20.Hex(),
			BatchNonce:    e.BatchNonce,
			Orchestrator:  orchestrator,
		}, nil
	case *ethevents.Erc20DeployedEvent:
		return &gravitypb.MsgErc20DeployedClaim{
			EventNonce:    e.EventNonce,
			BlockHeight:   e.BlockHeight,
			CosmosDenom:   e.CosmosDenom,
			TokenContract: e.Erc20Address.Hex(),
			Name:          e.Name,
			Symbol:        e.Symbol,
			Decimals:      uint64(e.Decimals),
			Orchestrator:  orchestrator,
		}, nil
	case *ethevents.LogicCallExecutedEvent:
		return &gravitypb.MsgLogicCallExecutedClaim{
			EventNonce:        e.EventNonce,
			BlockHeight:       e.BlockHeight,
			InvalidationId:    e.InvalidationID,
			InvalidationNonce: e.InvalidationNonce,
			Orchestrator:      orchestrator,
		}, nil
	case *ethevents.ValsetUpdatedEvent:
		members := make([]*gravitypb.BridgeValidator, len(e.Members))
		for i, m := range e.Members {
			members[i] = &gravitypb.BridgeValidator{
				Power:           m.Power,
				EthereumAddress: m.EthAddress.Hex(),
			}
		}
		rewardAmount := "0"
		if e.RewardAmount != nil {
			rewardAmount = e.RewardAmount.String()
		}
		return &gravitypb.MsgValsetUpdatedClaim{
			EventNonce:      e.EventNonce,
			ValsetNonce:     e.ValsetNonce,
			BlockHeight:     e.BlockHeight,
			Members:         members,
			RewardAmount:    rewardAmount,
			RewardDenom:     e.RewardDenom,
			RewardRecipient: e.RewardRecipient,
			Orchestrator:    orchestrator,
		}, nil
	default:
		return nil, fmt.Errorf("cosmosadapter: unrecognized event type %T", event)
	}
}

// SubmitClaims converts a globally nonce-ordered slice of observed Eth
// events (as produced by ethevents.MergeByNonce) into claim messages and
// broadcasts them in one transaction, preserving that order. Cosmos SDK
// messages inside a single tx execute in the order they appear, so a single
// broadcast is sufficient to preserve the module's strictly-increasing
// event_nonce invariant; splitting across multiple transactions would risk
// the node processing them out of order. Grounded on
// cosmos_gravity/src/send.rs send_ethereum_claims's BTreeMap<event_nonce,
// Msg> ordering.
func (s *Signer) SubmitClaims(ctx context.Context, events []any) (string, error) {
	if len(events) == 0 {
		return "", nil
	}
	msgs := make([]sdk.Msg, len(events))
	for i, ev := range events {
		msg, err := claimMsg(ev, s.Address())
		if err != nil {
			return "", errs.Validation(err, "build claim message")
		}
		msgs[i] = msg
	}
	return s.BroadcastMsgs(ctx, msgs...)
}
