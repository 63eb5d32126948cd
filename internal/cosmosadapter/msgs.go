package cosmosadapter

import (
	"context"
	"math/big"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common"

	"github.com/althea-net/gravity-orchestrator/internal/bridgetypes"
	"github.com/althea-net/gravity-orchestrator/internal/errs"
	"github.com/althea-net/gravity-orchestrator/internal/gravitypb"
)

// SetOrchestratorAddress submits the one-time delegation binding a
// validator's operator address to this orchestrator's Cosmos key and an Eth
// signing address, grounded on set_gravity_delegate_addresses.
func (s *Signer) SetOrchestratorAddress(ctx context.Context, validator string, ethAddress common.Address) (string, error) {
	msg := &gravitypb.MsgSetOrchestratorAddress{
		Validator:    validator,
		Orchestrator: s.Address(),
		EthAddress:   ethAddress.Hex(),
	}
	return s.BroadcastMsgs(ctx, msg)
}

// SendToEth submits a withdrawal request, the supplemented user-facing flow
// named in SPEC_FULL.md §2.3, grounded on send_to_eth.
func (s *Signer) SendToEth(ctx context.Context, ethDest common.Address, amount, bridgeFee sdk.Coin) (string, error) {
	if !amount.IsValid() || !bridgeFee.IsValid() {
		return "", errs.Validation(nil, "send to eth: invalid coin amount or fee")
	}
	msg := &gravitypb.MsgSendToEth{
		Sender:  s.Address(),
		EthDest: ethDest.Hex(),
		Amount: &gravitypb.CosmosCoin{
			Denom:  amount.Denom,
			Amount: amount.Amount.String(),
		},
		BridgeFee: &gravitypb.CosmosCoin{
			Denom:  bridgeFee.Denom,
			Amount: bridgeFee.Amount.String(),
		},
	}
	return s.BroadcastMsgs(ctx, msg)
}

// CancelSendToEth cancels a pending (not yet batched) withdrawal by its
// transaction ID, the CLI subcommand named in SPEC_FULL.md §2.3, grounded on
// cancel_send_to_eth.
func (s *Signer) CancelSendToEth(ctx context.Context, transactionID uint64) (string, error) {
	msg := &gravitypb.MsgCancelSendToEth{
		TransactionId: transactionID,
		Sender:        s.Address(),
	}
	return s.BroadcastMsgs(ctx, msg)
}

// RequestBatch asks the bridge module to assemble a new outgoing batch for
// denom, the Batch Requester sub-loop's write path, grounded on
// send_request_batch.
func (s *Signer) RequestBatch(ctx context.Context, denom string) (string, error) {
	msg := &gravitypb.MsgRequestBatch{
		Sender: s.Address(),
		Denom:  denom,
	}
	return s.BroadcastMsgs(ctx, msg)
}

// SubmitBadSignatureEvidence reports a signature that verifies against a
// hash no valid valset, batch, or logic call ever produced, packing subject
// into the Any stand-in, whose type URL names the subject's message type; no
// SignType is attached to the message. The CLI subcommand named in
// SPEC_FULL.md §2.3, grounded on
// submit_bad_signature_evidence.
func (s *Signer) SubmitBadSignatureEvidence(ctx context.Context, subject any, signature bridgetypes.EthSignature) (string, error) {
	var wire interface {
		Reset()
		String() string
		ProtoMessage()
	}
	switch v := subject.(type) {
	case *bridgetypes.Valset:
		wire = valsetToWire(v)
	case *bridgetypes.TransactionBatch:
		wire = batchToWire(v)
	case *bridgetypes.LogicCall:
		wire = logicCallToWire(v)
	default:
		return "", errs.Validation(nil, "bad signature evidence: unsupported subject type %T", subject)
	}

	packed, err := gravitypb.PackBadSignatureSubject(wire)
	if err != nil {
		return "", errs.Unrecoverable(err, "pack bad signature evidence subject")
	}

	msg := &gravitypb.MsgSubmitBadSignatureEvidence{
		Subject:   packed,
		Signature: signatureHex(signature),
		Sender:    s.Address(),
	}
	return s.BroadcastMsgs(ctx, msg)
}

// NewCoin is a small helper so callers don't need to import cosmossdk.io/math
// directly just to build the amount/fee passed to SendToEth.
func NewCoin(denom string, amount *big.Int) sdk.Coin {
	return sdk.NewCoin(denom, sdkmath.NewIntFromBigInt(amount))
}
