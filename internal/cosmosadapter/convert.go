// Package cosmosadapter wraps the bridge module's gRPC query/msg surface
// (internal/gravitypb) with the domain types in internal/bridgetypes,
// grounded on cosmos_gravity/src/{query,send}.rs.
package cosmosadapter

import (
	"fmt"
	"math/big"

	"github.com/althea-net/gravity-orchestrator/internal/bridgetypes"
	"github.com/althea-net/gravity-orchestrator/internal/gravitypb"
	"github.com/ethereum/go-ethereum/common"
)

func parseBig(s string) (*big.Int, error) {
	if s == "" {
		return big.NewInt(0), nil
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("cosmosadapter: invalid integer %q", s)
	}
	return v, nil
}

func valsetFromWire(w *gravitypb.Valset) (*bridgetypes.Valset, error) {
	if w == nil {
		return nil, fmt.Errorf("cosmosadapter: nil valset")
	}
	members := make([]bridgetypes.ValsetMember, len(w.Members))
	for i, m := range w.Members {
		members[i] = bridgetypes.ValsetMember{
			EthAddress: common.HexToAddress(m.EthereumAddress),
			Power:      m.Power,
		}
	}
	reward, err := parseBig(w.RewardAmount)
	if err != nil {
		return nil, err
	}
	return &bridgetypes.Valset{
		Nonce:        w.Nonce,
		Members:      members,
		RewardAmount: reward,
		RewardDenom:  w.RewardToken,
	}, nil
}

func valsetsFromWire(in []*gravitypb.Valset) ([]*bridgetypes.Valset, error) {
	out := make([]*bridgetypes.Valset, 0, len(in))
	for _, w := range in {
		v, err := valsetFromWire(w)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func batchFromWire(w *gravitypb.OutgoingTxBatch) (*bridgetypes.TransactionBatch, error) {
	if w == nil {
		return nil, fmt.Errorf("cosmosadapter: nil batch")
	}
	txs := make([]bridgetypes.BatchTx, len(w.Transactions))
	for i, t := range w.Transactions {
		amount, err := parseBig(t.Erc20Token.Amount)
		if err != nil {
			return nil, err
		}
		fee, err := parseBig(t.Erc20Fee.Amount)
		if err != nil {
			return nil, err
		}
		txs[i] = bridgetypes.BatchTx{
			Destination: common.HexToAddress(t.DestAddress),
			Amount:      amount,
			Fee:         fee,
		}
	}
	return &bridgetypes.TransactionBatch{
		Nonce:         w.BatchNonce,
		TokenContract: common.HexToAddress(w.TokenContract),
		Transactions:  txs,
		BatchTimeout:  w.BatchTimeout,
	}, nil
}

func batchesFromWire(in []*gravitypb.OutgoingTxBatch) ([]*bridgetypes.TransactionBatch, error) {
	out := make([]*bridgetypes.TransactionBatch, 0, len(in))
	for _, w := range in {
		b, err := batchFromWire(w)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

func erc20TokensFromWire(in []*gravitypb.Erc20Token) ([]bridgetypes.Erc20Token, error) {
	out := make([]bridgetypes.Erc20Token, len(in))
	for i, t := range in {
		amount, err := parseBig(t.Amount)
		if err != nil {
			return nil, err
		}
		out[i] = bridgetypes.Erc20Token{
			Amount:               amount,
			TokenContractAddress: common.HexToAddress(t.Contract),
		}
	}
	return out, nil
}

func logicCallFromWire(w *gravitypb.ContractCallTx) (*bridgetypes.LogicCall, error) {
	if w == nil {
		return nil, fmt.Errorf("cosmosadapter: nil logic call")
	}
	transfers, err := erc20TokensFromWire(w.Transfers)
	if err != nil {
		return nil, err
	}
	fees, err := erc20TokensFromWire(w.Fees)
	if err != nil {
		return nil, err
	}
	return &bridgetypes.LogicCall{
		Transfers:            transfers,
		Fees:                 fees,
		LogicContractAddress: common.HexToAddress(w.Address),
		Payload:              w.Payload,
		Timeout:              w.Timeout,
		InvalidationID:       w.InvalidationId,
		InvalidationNonce:    w.InvalidationNonce,
	}, nil
}

func logicCallsFromWire(in []*gravitypb.ContractCallTx) ([]*bridgetypes.LogicCall, error) {
	out := make([]*bridgetypes.LogicCall, 0, len(in))
	for _, w := range in {
		c, err := logicCallFromWire(w)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func parseEthSignature(hex string) (bridgetypes.EthSignature, error) {
	b := common.FromHex(hex)
	if len(b) != 65 {
		return bridgetypes.EthSignature{}, fmt.Errorf("cosmosadapter: signature must be 65 bytes, got %d", len(b))
	}
	var sig bridgetypes.EthSignature
	copy(sig.R[:], b[0:32])
	copy(sig.S[:], b[32:64])
	sig.V = b[64]
	return sig, nil
}

func valsetConfirmFromWire(w *gravitypb.MsgValsetConfirm) (bridgetypes.ConfirmResponse, error) {
	sig, err := parseEthSignature(w.Signature)
	if err != nil {
		return bridgetypes.ConfirmResponse{}, err
	}
	return bridgetypes.ConfirmResponse{
		EthereumSigner: common.HexToAddress(w.EthAddress),
		Orchestrator:   w.Orchestrator,
		Signature:      sig,
	}, nil
}

func valsetConfirmsFromWire(in []*gravitypb.MsgValsetConfirm) ([]bridgetypes.ConfirmResponse, error) {
	out := make([]bridgetypes.ConfirmResponse, 0, len(in))
	for _, w := range in {
		c, err := valsetConfirmFromWire(w)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func batchConfirmFromWire(w *gravitypb.MsgConfirmBatch) (bridgetypes.ConfirmResponse, error) {
	sig, err := parseEthSignature(w.Signature)
	if err != nil {
		return bridgetypes.ConfirmResponse{}, err
	}
	return bridgetypes.ConfirmResponse{
		EthereumSigner: common.HexToAddress(w.EthSigner),
		Orchestrator:   w.Orchestrator,
		Signature:      sig,
	}, nil
}

func batchConfirmsFromWire(in []*gravitypb.MsgConfirmBatch) ([]bridgetypes.ConfirmResponse, error) {
	out := make([]bridgetypes.ConfirmResponse, 0, len(in))
	for _, w := range in {
		c, err := batchConfirmFromWire(w)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func logicCallConfirmFromWire(w *gravitypb.MsgConfirmLogicCall) (bridgetypes.ConfirmResponse, error) {
	sig, err := parseEthSignature(w.Signature)
	if err != nil {
		return bridgetypes.ConfirmResponse{}, err
	}
	return bridgetypes.ConfirmResponse{
		EthereumSigner: common.HexToAddress(w.EthSigner),
		Orchestrator:   w.Orchestrator,
		Signature:      sig,
	}, nil
}

func valsetToWire(v *bridgetypes.Valset) *gravitypb.Valset {
	members := make([]*gravitypb.BridgeValidator, len(v.Members))
	for i, m := range v.Members {
		members[i] = &gravitypb.BridgeValidator{Power: m.Power, EthereumAddress: m.EthAddress.Hex()}
	}
	rewardAmount := "0"
	if v.RewardAmount != nil {
		rewardAmount = v.RewardAmount.String()
	}
	return &gravitypb.Valset{
		Nonce:        v.Nonce,
		Members:      members,
		RewardAmount: rewardAmount,
		RewardToken:  v.RewardDenom,
	}
}

func batchToWire(b *bridgetypes.TransactionBatch) *gravitypb.OutgoingTxBatch {
	txs := make([]*gravitypb.OutgoingTransferTx, len(b.Transactions))
	for i, t := range b.Transactions {
		txs[i] = &gravitypb.OutgoingTransferTx{
			Id:          uint64(i),
			DestAddress: t.Destination.Hex(),
			Erc20Token:  &gravitypb.Erc20Token{Contract: b.TokenContract.Hex(), Amount: t.Amount.String()},
			Erc20Fee:    &gravitypb.Erc20Token{Contract: b.TokenContract.Hex(), Amount: t.Fee.String()},
		}
	}
	return &gravitypb.OutgoingTxBatch{
		BatchNonce:    b.Nonce,
		BatchTimeout:  b.BatchTimeout,
		Transactions:  txs,
		TokenContract: b.TokenContract.Hex(),
	}
}

func logicCallToWire(c *bridgetypes.LogicCall) *gravitypb.ContractCallTx {
	toWire := func(in []bridgetypes.Erc20Token) []*gravitypb.Erc20Token {
		out := make([]*gravitypb.Erc20Token, len(in))
		for i, t := range in {
			out[i] = &gravitypb.Erc20Token{Contract: t.TokenContractAddress.Hex(), Amount: t.Amount.String()}
		}
		return out
	}
	return &gravitypb.ContractCallTx{
		InvalidationId:    c.InvalidationID,
		InvalidationNonce: c.InvalidationNonce,
		Address:           c.LogicContractAddress.Hex(),
		Payload:           c.Payload,
		Timeout:           c.Timeout,
		Transfers:         toWire(c.Transfers),
		Fees:              toWire(c.Fees),
	}
}

func logicCallConfirmsFromWire(in []*gravitypb.MsgConfirmLogicCall) ([]bridgetypes.ConfirmResponse, error) {
	out := make([]bridgetypes.ConfirmResponse, 0, len(in))
	for _, w := range in {
		c, err := logicCallConfirmFromWire(w)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}
