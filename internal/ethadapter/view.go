package ethadapter

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	ethereum "github.com/ethereum/go-ethereum"
	gabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	"github.com/althea-net/gravity-orchestrator/internal/errs"
)

// viewABIJSON declares the bridge contract's state-reading view selectors
// (§6): the relayer reads these before deciding whether it has already been
// beaten to a relay by a competing orchestrator.
const viewABIJSON = `[
  {"type":"function","name":"state_lastValsetNonce","stateMutability":"view","inputs":[],"outputs":[{"type":"uint256"}]},
  {"type":"function","name":"state_lastValsetCheckpoint","stateMutability":"view","inputs":[],"outputs":[{"type":"bytes32"}]},
  {"type":"function","name":"state_lastBatchNonces","stateMutability":"view","inputs":[{"name":"_erc20Address","type":"address"}],"outputs":[{"type":"uint256"}]},
  {"type":"function","name":"state_lastLogicCallNonce","stateMutability":"view","inputs":[{"name":"_invalidation_id","type":"bytes32"}],"outputs":[{"type":"uint256"}]},
  {"type":"function","name":"state_lastEventNonce","stateMutability":"view","inputs":[],"outputs":[{"type":"uint256"}]}
]`

var viewABI = func() gabi.ABI {
	parsed, err := gabi.JSON(strings.NewReader(viewABIJSON))
	if err != nil {
		panic(fmt.Sprintf("ethadapter: invalid embedded view ABI: %v", err))
	}
	return parsed
}()

func (c *Client) callUint256(ctx context.Context, method string, args ...any) (*big.Int, error) {
	data, err := viewABI.Pack(method, args...)
	if err != nil {
		return nil, errs.Validation(err, "encode %s call", method)
	}
	out, err := c.RPC.CallContract(ctx, ethereum.CallMsg{To: &c.Contract, Data: data}, nil)
	if err != nil {
		return nil, errs.RPC(err, "call %s", method)
	}
	values, err := viewABI.Unpack(method, out)
	if err != nil {
		return nil, errs.Unrecoverable(err, "decode %s response", method)
	}
	if len(values) != 1 {
		return nil, errs.Unrecoverable(nil, "%s returned %d values, want 1", method, len(values))
	}
	n, ok := values[0].(*big.Int)
	if !ok {
		return nil, errs.Unrecoverable(nil, "%s returned non-uint256 value", method)
	}
	return n, nil
}

// LastValsetNonce reads state_lastValsetNonce, the Eth-side tip the relayer
// checks before a valset update relay.
func (c *Client) LastValsetNonce(ctx context.Context) (uint64, error) {
	n, err := c.callUint256(ctx, "state_lastValsetNonce")
	if err != nil {
		return 0, err
	}
	return n.Uint64(), nil
}

// LastValsetCheckpoint reads state_lastValsetCheckpoint, the hash
// find_latest_valset (§4.5 step 1) matches backward against Cosmos's valset
// history to find the signer basis for a relay.
func (c *Client) LastValsetCheckpoint(ctx context.Context) ([32]byte, error) {
	data, err := viewABI.Pack("state_lastValsetCheckpoint")
	if err != nil {
		return [32]byte{}, errs.Validation(err, "encode state_lastValsetCheckpoint call")
	}
	out, err := c.RPC.CallContract(ctx, ethereum.CallMsg{To: &c.Contract, Data: data}, nil)
	if err != nil {
		return [32]byte{}, errs.RPC(err, "call state_lastValsetCheckpoint")
	}
	values, err := viewABI.Unpack("state_lastValsetCheckpoint", out)
	if err != nil {
		return [32]byte{}, errs.Unrecoverable(err, "decode state_lastValsetCheckpoint response")
	}
	if len(values) != 1 {
		return [32]byte{}, errs.Unrecoverable(nil, "state_lastValsetCheckpoint returned %d values, want 1", len(values))
	}
	checkpoint, ok := values[0].([32]byte)
	if !ok {
		return [32]byte{}, errs.Unrecoverable(nil, "state_lastValsetCheckpoint returned non-bytes32 value")
	}
	return checkpoint, nil
}

// LastBatchNonce reads state_lastBatchNonces(erc20), the Eth-side tip for a
// specific token's outgoing batches.
func (c *Client) LastBatchNonce(ctx context.Context, erc20 common.Address) (uint64, error) {
	n, err := c.callUint256(ctx, "state_lastBatchNonces", erc20)
	if err != nil {
		return 0, err
	}
	return n.Uint64(), nil
}

// LastLogicCallNonce reads state_lastLogicCallNonce(invalidation_id).
func (c *Client) LastLogicCallNonce(ctx context.Context, invalidationID []byte) (uint64, error) {
	var id [32]byte
	copy(id[:], invalidationID)
	n, err := c.callUint256(ctx, "state_lastLogicCallNonce", id)
	if err != nil {
		return 0, err
	}
	return n.Uint64(), nil
}

// LastEventNonce reads state_lastEventNonce, the Eth-side tip of observed
// bridge events (used by the oracle loop for cross-checks, not as its
// source of truth — that remains Cosmos's last_event_nonce per §4.3).
func (c *Client) LastEventNonce(ctx context.Context) (uint64, error) {
	n, err := c.callUint256(ctx, "state_lastEventNonce")
	if err != nil {
		return 0, err
	}
	return n.Uint64(), nil
}
