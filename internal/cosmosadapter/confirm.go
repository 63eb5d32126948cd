package cosmosadapter

import (
	"context"
	"crypto/ecdsa"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/althea-net/gravity-orchestrator/internal/abi"
	"github.com/althea-net/gravity-orchestrator/internal/bridgetypes"
	"github.com/althea-net/gravity-orchestrator/internal/errs"
	"github.com/althea-net/gravity-orchestrator/internal/gravitypb"
)

func signatureHex(sig bridgetypes.EthSignature) string {
	b := make([]byte, 0, 65)
	b = append(b, sig.R[:]...)
	b = append(b, sig.S[:]...)
	b = append(b, sig.V)
	return hexutil.Encode(b)
}

// ConfirmValset signs the given valset with ethKey and broadcasts a single
// MsgValsetConfirm, grounded on cosmos_gravity/src/send.rs
// send_valset_confirms.
func (s *Signer) ConfirmValset(ctx context.Context, gravityID string, v *bridgetypes.Valset, ethKey *ecdsa.PrivateKey) (string, error) {
	hash, err := abi.ValsetConfirmHash(gravityID, v)
	if err != nil {
		return "", errs.Validation(err, "compute valset confirm hash")
	}
	sig, err := abi.Sign(hash, ethKey)
	if err != nil {
		return "", errs.Unrecoverable(err, "sign valset confirm hash")
	}
	msg := &gravitypb.MsgValsetConfirm{
		Nonce:        v.Nonce,
		Orchestrator: s.Address(),
		EthAddress:   crypto.PubkeyToAddress(ethKey.PublicKey).Hex(),
		Signature:    signatureHex(sig),
	}
	return s.BroadcastMsgs(ctx, msg)
}

// ConfirmBatch signs the given batch and broadcasts a single
// MsgConfirmBatch, grounded on send_batch_confirm.
func (s *Signer) ConfirmBatch(ctx context.Context, gravityID string, b *bridgetypes.TransactionBatch, ethKey *ecdsa.PrivateKey) (string, error) {
	hash, err := abi.BatchConfirmHash(gravityID, b)
	if err != nil {
		return "", errs.Validation(err, "compute batch confirm hash")
	}
	sig, err := abi.Sign(hash, ethKey)
	if err != nil {
		return "", errs.Unrecoverable(err, "sign batch confirm hash")
	}
	msg := &gravitypb.MsgConfirmBatch{
		Nonce:         b.Nonce,
		TokenContract: b.TokenContract.Hex(),
		EthSigner:     crypto.PubkeyToAddress(ethKey.PublicKey).Hex(),
		Orchestrator:  s.Address(),
		Signature:     signatureHex(sig),
	}
	return s.BroadcastMsgs(ctx, msg)
}

// ConfirmLogicCall signs the given logic call and broadcasts a single
// MsgConfirmLogicCall, grounded on send_logic_call_confirm.
func (s *Signer) ConfirmLogicCall(ctx context.Context, gravityID string, c *bridgetypes.LogicCall, ethKey *ecdsa.PrivateKey) (string, error) {
	hash, err := abi.LogicCallConfirmHash(gravityID, c)
	if err != nil {
		return "", errs.Validation(err, "compute logic call confirm hash")
	}
	sig, err := abi.Sign(hash, ethKey)
	if err != nil {
		return "", errs.Unrecoverable(err, "sign logic call confirm hash")
	}
	msg := &gravitypb.MsgConfirmLogicCall{
		InvalidationId:    fmt.Sprintf("%x", c.InvalidationID),
		InvalidationNonce: c.InvalidationNonce,
		EthSigner:         crypto.PubkeyToAddress(ethKey.PublicKey).Hex(),
		Orchestrator:      s.Address(),
		Signature:         signatureHex(sig),
	}
	return s.BroadcastMsgs(ctx, msg)
}

// ConfirmValsets signs and broadcasts confirmations for every given valset
// in a single transaction, the same one-tx-per-kind batching ConfirmBatches
// applies, per §4.4. Valsets with nonce 0 must already be filtered out by
// the caller (signing the genesis valset is meaningless).
func (s *Signer) ConfirmValsets(ctx context.Context, gravityID string, valsets []*bridgetypes.Valset, ethKey *ecdsa.PrivateKey) (string, error) {
	if len(valsets) == 0 {
		return "", nil
	}
	signerAddr := crypto.PubkeyToAddress(ethKey.PublicKey).Hex()
	msgs := make([]sdk.Msg, len(valsets))
	for i, v := range valsets {
		hash, err := abi.ValsetConfirmHash(gravityID, v)
		if err != nil {
			return "", errs.Validation(err, "compute valset confirm hash")
		}
		sig, err := abi.Sign(hash, ethKey)
		if err != nil {
			return "", errs.Unrecoverable(err, "sign valset confirm hash")
		}
		msgs[i] = &gravitypb.MsgValsetConfirm{
			Nonce:        v.Nonce,
			Orchestrator: s.Address(),
			EthAddress:   signerAddr,
			Signature:    signatureHex(sig),
		}
	}
	return s.BroadcastMsgs(ctx, msgs...)
}

// ConfirmLogicCalls signs and broadcasts confirmations for every given logic
// call in a single transaction, per §4.4.
func (s *Signer) ConfirmLogicCalls(ctx context.Context, gravityID string, calls []*bridgetypes.LogicCall, ethKey *ecdsa.PrivateKey) (string, error) {
	if len(calls) == 0 {
		return "", nil
	}
	signerAddr := crypto.PubkeyToAddress(ethKey.PublicKey).Hex()
	msgs := make([]sdk.Msg, len(calls))
	for i, call := range calls {
		hash, err := abi.LogicCallConfirmHash(gravityID, call)
		if err != nil {
			return "", errs.Validation(err, "compute logic call confirm hash")
		}
		sig, err := abi.Sign(hash, ethKey)
		if err != nil {
			return "", errs.Unrecoverable(err, "sign logic call confirm hash")
		}
		msgs[i] = &gravitypb.MsgConfirmLogicCall{
			InvalidationId:    fmt.Sprintf("%x", call.InvalidationID),
			InvalidationNonce: call.InvalidationNonce,
			EthSigner:         signerAddr,
			Orchestrator:      s.Address(),
			Signature:         signatureHex(sig),
		}
	}
	return s.BroadcastMsgs(ctx, msgs...)
}

// ConfirmBatches signs and broadcasts confirmations for every given batch in
// a single transaction, mirroring send_batch_confirm's behavior of batching
// all outstanding confirms the signer loop finds pending into one tx.
func (s *Signer) ConfirmBatches(ctx context.Context, gravityID string, batches []*bridgetypes.TransactionBatch, ethKey *ecdsa.PrivateKey) (string, error) {
	if len(batches) == 0 {
		return "", nil
	}
	signerAddr := crypto.PubkeyToAddress(ethKey.PublicKey).Hex()
	msgs := make([]sdk.Msg, len(batches))
	for i, b := range batches {
		hash, err := abi.BatchConfirmHash(gravityID, b)
		if err != nil {
			return "", errs.Validation(err, "compute batch confirm hash")
		}
		sig, err := abi.Sign(hash, ethKey)
		if err != nil {
			return "", errs.Unrecoverable(err, "sign batch confirm hash")
		}
		msgs[i] = &gravitypb.MsgConfirmBatch{
			Nonce:         b.Nonce,
			TokenContract: b.TokenContract.Hex(),
			EthSigner:     signerAddr,
			Orchestrator:  s.Address(),
			Signature:     signatureHex(sig),
		}
	}
	return s.BroadcastMsgs(ctx, msgs...)
}
