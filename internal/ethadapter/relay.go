package ethadapter

import (
	"context"
	"crypto/ecdsa"

	"github.com/ethereum/go-ethereum/common"

	"github.com/althea-net/gravity-orchestrator/internal/abi"
	"github.com/althea-net/gravity-orchestrator/internal/bridgetypes"
	"github.com/althea-net/gravity-orchestrator/internal/errs"
)

// RelayBatch encodes and submits submitBatch, the relayer loop's write path
// for a signed transaction batch. Batch relays always carry the 10% gas
// price premium (§4.5 item 6).
func (c *Client) RelayBatch(ctx context.Context, key *ecdsa.PrivateKey, currentValset *bridgetypes.Valset, sigs []bridgetypes.EthSignature, batch *bridgetypes.TransactionBatch) (common.Hash, error) {
	data, err := abi.BuildSubmitBatchPayload(currentValset, sigs, batch)
	if err != nil {
		return common.Hash{}, errs.Validation(err, "encode submitBatch payload for batch nonce %d", batch.Nonce)
	}
	return c.SendTx(ctx, key, data, gasPriceMultiplierPctBatch)
}

// RelayLogicCall encodes and submits submitLogicCall, unmultiplied per §4.5.
func (c *Client) RelayLogicCall(ctx context.Context, key *ecdsa.PrivateKey, currentValset *bridgetypes.Valset, sigs []bridgetypes.EthSignature, call *bridgetypes.LogicCall) (common.Hash, error) {
	data, err := abi.BuildSubmitLogicCallPayload(currentValset, sigs, call)
	if err != nil {
		return common.Hash{}, errs.Validation(err, "encode submitLogicCall payload for invalidation nonce %d", call.InvalidationNonce)
	}
	return c.SendTx(ctx, key, data, 0)
}

// RelayValsetUpdate encodes and submits updateValset, unmultiplied per §4.5.
func (c *Client) RelayValsetUpdate(ctx context.Context, key *ecdsa.PrivateKey, currentValset, newValset *bridgetypes.Valset, sigs []bridgetypes.EthSignature) (common.Hash, error) {
	data, err := abi.BuildUpdateValsetPayload(currentValset, newValset, sigs)
	if err != nil {
		return common.Hash{}, errs.Validation(err, "encode updateValset payload for new nonce %d", newValset.Nonce)
	}
	return c.SendTx(ctx, key, data, 0)
}
