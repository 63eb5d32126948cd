package ethadapter

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/althea-net/gravity-orchestrator/internal/errs"
)

// receiptPollInterval and receiptPollTimeout bound how long WaitForReceipt
// spins on a not-yet-mined transaction, grounded on ethrpc.go's GetTxReciept
// polling loop.
const (
	receiptPollInterval = 2 * time.Second
	receiptPollTimeout  = 60 * time.Second
)

// WaitForReceipt polls for hash's receipt until it is mined or ctx/timeout
// expires. A reverted receipt (Status == 0) is still returned without error
// so callers can log the on-chain revert themselves.
func (c *Client) WaitForReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	ctx, cancel := context.WithTimeout(ctx, receiptPollTimeout)
	defer cancel()

	ticker := time.NewTicker(receiptPollInterval)
	defer ticker.Stop()

	for {
		receipt, err := c.RPC.TransactionReceipt(ctx, hash)
		if err == nil {
			return receipt, nil
		}

		select {
		case <-ctx.Done():
			return nil, errs.Recoverable(ctx.Err(), "tx %s not mined within %s", hash.Hex(), receiptPollTimeout)
		case <-ticker.C:
		}
	}
}
