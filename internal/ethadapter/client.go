// Package ethadapter wraps github.com/ethereum/go-ethereum's ethclient with
// the EIP-1559 transaction building/broadcasting idiom used throughout this
// orchestrator, grounded on e2e/interchaintestv8/ethereum/ethrpc.go.
package ethadapter

import (
	"context"
	"math/big"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/althea-net/gravity-orchestrator/internal/errs"
)

// Client wraps an *ethclient.Client with the bridge contract address the
// relay and view helpers target.
type Client struct {
	RPC      *ethclient.Client
	Contract common.Address
}

// Dial connects to an Eth JSON-RPC endpoint, grounded on the reference
// stack's plain ethclient.DialContext use in cmd/main.go.
func Dial(ctx context.Context, url string, contract common.Address) (*Client, error) {
	rpc, err := ethclient.DialContext(ctx, url)
	if err != nil {
		return nil, errs.RPC(err, "dial eth rpc %s", url)
	}
	return &Client{RPC: rpc, Contract: contract}, nil
}

// Close releases the underlying RPC connection.
func (c *Client) Close() {
	c.RPC.Close()
}

// BlockNumber returns the latest Eth block height, used by the oracle loop
// to bound its block_delay window (§4.3).
func (c *Client) BlockNumber(ctx context.Context) (uint64, error) {
	n, err := c.RPC.BlockNumber(ctx)
	if err != nil {
		return 0, errs.RPC(err, "get block number")
	}
	return n, nil
}

// FilterLogs runs eth_getLogs for the bridge contract's five event
// topics between fromBlock and toBlock inclusive.
func (c *Client) FilterLogs(ctx context.Context, fromBlock, toBlock uint64, topics [][]common.Hash) ([]types.Log, error) {
	query := ethereum.FilterQuery{
		FromBlock: new(big.Int).SetUint64(fromBlock),
		ToBlock:   new(big.Int).SetUint64(toBlock),
		Addresses: []common.Address{c.Contract},
		Topics:    topics,
	}
	logs, err := c.RPC.FilterLogs(ctx, query)
	if err != nil {
		return nil, errs.RPC(err, "filter logs [%d,%d]", fromBlock, toBlock)
	}
	return logs, nil
}
