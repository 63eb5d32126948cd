package ethadapter

import (
	"context"
	"crypto/ecdsa"
	"math/big"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/althea-net/gravity-orchestrator/internal/errs"
)

// defaultGasLimit is used when EstimateGas fails outright (e.g. the node
// refuses eth_estimateGas for some proxy setups).
const defaultGasLimit = uint64(500_000)

// minTipCapWei is the fallback priority fee when SuggestGasTipCap errors or
// returns a non-positive value, matching the reference stack's 1 gwei floor.
const minTipCapWei = 1_000_000_000

// gasPriceMultiplierPctBatch is the 10% premium §4.5 item 6 requires on
// batch relays only; logic-call and valset-update relays send unmultiplied.
const gasPriceMultiplierPctBatch = 110

// BuildSignedTx constructs and signs an EIP-1559 transaction calling the
// contract with data, grounded on ethrpc.go's BuildSignedTx: feeCap =
// 2*baseFee + tipCap when a base fee is available, else just tipCap.
func (c *Client) BuildSignedTx(ctx context.Context, key *ecdsa.PrivateKey, data []byte, gasPriceMultiplierPct uint64) (*types.Transaction, error) {
	chainID, err := c.RPC.ChainID(ctx)
	if err != nil {
		return nil, errs.RPC(err, "fetch chain id")
	}

	from := crypto.PubkeyToAddress(key.PublicKey)
	nonce, err := c.RPC.PendingNonceAt(ctx, from)
	if err != nil {
		return nil, errs.RPC(err, "fetch pending nonce for %s", from.Hex())
	}

	gas, err := c.RPC.EstimateGas(ctx, ethereum.CallMsg{From: from, To: &c.Contract, Data: data})
	if err != nil {
		gas = defaultGasLimit
	}

	tipCap, err := c.RPC.SuggestGasTipCap(ctx)
	if err != nil || tipCap.Sign() <= 0 {
		tipCap = big.NewInt(minTipCapWei)
	}
	if gasPriceMultiplierPct > 0 {
		tipCap = applyPct(tipCap, gasPriceMultiplierPct)
	}

	baseFee := big.NewInt(0)
	if header, err := c.RPC.HeaderByNumber(ctx, nil); err == nil && header.BaseFee != nil {
		baseFee = header.BaseFee
	}

	feeCap := new(big.Int).Set(tipCap)
	if baseFee.Sign() > 0 {
		feeCap = new(big.Int).Add(new(big.Int).Mul(baseFee, big.NewInt(2)), tipCap)
	}

	tx := types.NewTx(&types.DynamicFeeTx{
		ChainID:   chainID,
		Nonce:     nonce,
		To:        &c.Contract,
		Value:     big.NewInt(0),
		Gas:       gas,
		GasFeeCap: feeCap,
		GasTipCap: tipCap,
		Data:      data,
	})

	signed, err := types.SignTx(tx, types.LatestSignerForChainID(chainID), key)
	if err != nil {
		return nil, errs.Unrecoverable(err, "sign eth tx")
	}
	return signed, nil
}

// SendTx builds, signs, and broadcasts a contract call, returning the
// broadcast transaction's hash. gasPriceMultiplierPct is 0 for unmultiplied
// sends (logic-call and valset-update relays) or gasPriceMultiplierPctBatch
// for batch relays.
func (c *Client) SendTx(ctx context.Context, key *ecdsa.PrivateKey, data []byte, gasPriceMultiplierPct uint64) (common.Hash, error) {
	signed, err := c.BuildSignedTx(ctx, key, data, gasPriceMultiplierPct)
	if err != nil {
		return common.Hash{}, err
	}
	if err := c.RPC.SendTransaction(ctx, signed); err != nil {
		return common.Hash{}, errs.RPC(err, "broadcast eth tx")
	}
	return signed.Hash(), nil
}

// SuggestGasPrice returns the node's current suggested gas price. The batch
// requester sub-loop (§4.5.1) calls it once per iteration and only checks
// that it succeeds: a failure skips that iteration's requests instead of
// aborting, and the returned price is not otherwise used there.
func (c *Client) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	price, err := c.RPC.SuggestGasPrice(ctx)
	if err != nil {
		return nil, errs.RPC(err, "suggest gas price")
	}
	return price, nil
}

func applyPct(v *big.Int, pct uint64) *big.Int {
	out := new(big.Int).Mul(v, new(big.Int).SetUint64(pct))
	return out.Div(out, big.NewInt(100))
}
