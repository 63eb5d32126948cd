package cosmosadapter

import (
	"context"
	"fmt"

	"github.com/althea-net/gravity-orchestrator/internal/bridgetypes"
	"github.com/althea-net/gravity-orchestrator/internal/gravitypb"
	"github.com/althea-net/gravity-orchestrator/internal/retrywrap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
)

// Dial opens a gRPC connection to a Cosmos node's grpc endpoint, grounded on
// cmd/utils/grpc.go's GetGRPC: TLS when the endpoint terminates TLS,
// plaintext otherwise.
func Dial(addr string, tls bool) (*grpc.ClientConn, error) {
	var creds grpc.DialOption
	if tls {
		creds = grpc.WithTransportCredentials(credentials.NewTLS(nil))
	} else {
		creds = grpc.WithTransportCredentials(insecure.NewCredentials())
	}
	conn, err := grpc.NewClient(addr, creds)
	if err != nil {
		return nil, fmt.Errorf("cosmosadapter: dial %s: %w", addr, err)
	}
	return conn, nil
}

// QueryClient wraps gravitypb.QueryClient and returns internal/bridgetypes
// domain values instead of wire types, grounded on cosmos_gravity/src/query.rs.
type QueryClient struct {
	wire gravitypb.QueryClient
}

func NewQueryClient(cc grpc.ClientConnInterface) *QueryClient {
	return &QueryClient{wire: gravitypb.NewQueryClient(cc)}
}

// Params fetches the bridge module's on-chain parameters, retrying
// transient RPC failures per internal/retrywrap.
func (q *QueryClient) Params(ctx context.Context) (*gravitypb.Params, error) {
	var resp *gravitypb.QueryParamsResponse
	err := retrywrap.Do(ctx, func() error {
		var err error
		resp, err = q.wire.Params(ctx, &gravitypb.QueryParamsRequest{})
		return err
	})
	if err != nil {
		return nil, err
	}
	return resp.Params, nil
}

// CurrentValset fetches the latest validator set the bridge module knows
// about, grounded on cosmos_gravity/src/query.rs get_current_valset.
func (q *QueryClient) CurrentValset(ctx context.Context) (*bridgetypes.Valset, error) {
	var resp *gravitypb.QueryCurrentValsetResponse
	err := retrywrap.Do(ctx, func() error {
		var err error
		resp, err = q.wire.CurrentValset(ctx, &gravitypb.QueryCurrentValsetRequest{})
		return err
	})
	if err != nil {
		return nil, err
	}
	return valsetFromWire(resp.Valset)
}

// ValsetRequest fetches the valset with the given nonce, or nil if the
// module has already pruned it, used by the relayer's find_latest_valset
// backward walk (§4.5 step 1).
func (q *QueryClient) ValsetRequest(ctx context.Context, nonce uint64) (*bridgetypes.Valset, error) {
	var resp *gravitypb.QueryValsetRequestResponse
	err := retrywrap.Do(ctx, func() error {
		var err error
		resp, err = q.wire.ValsetRequest(ctx, &gravitypb.QueryValsetRequestRequest{Nonce: nonce})
		return err
	})
	if err != nil {
		return nil, err
	}
	if resp.Valset == nil {
		return nil, nil
	}
	return valsetFromWire(resp.Valset)
}

// LastValsetRequests returns the most recently created valsets, newest
// first.
func (q *QueryClient) LastValsetRequests(ctx context.Context) ([]*bridgetypes.Valset, error) {
	var resp *gravitypb.QueryLastValsetRequestsResponse
	err := retrywrap.Do(ctx, func() error {
		var err error
		resp, err = q.wire.LastValsetRequests(ctx, &gravitypb.QueryLastValsetRequestsRequest{})
		return err
	})
	if err != nil {
		return nil, err
	}
	return valsetsFromWire(resp.Valsets)
}

// LastPendingValsetRequestByAddr returns every valset this orchestrator
// address has not yet signed, oldest first, grounded on
// get_oldest_unsigned_valsets.
func (q *QueryClient) LastPendingValsetRequestByAddr(ctx context.Context, orchestrator string) ([]*bridgetypes.Valset, error) {
	var resp *gravitypb.QueryLastPendingValsetRequestByAddrResponse
	err := retrywrap.Do(ctx, func() error {
		var err error
		resp, err = q.wire.LastPendingValsetRequestByAddr(ctx, &gravitypb.QueryLastPendingValsetRequestByAddrRequest{Address: orchestrator})
		return err
	})
	if err != nil {
		return nil, err
	}
	return valsetsFromWire(resp.Valsets)
}

// ValsetConfirmsByNonce returns every confirmation signers have submitted
// for the given valset nonce so far, grounded on get_all_valset_confirms.
func (q *QueryClient) ValsetConfirmsByNonce(ctx context.Context, nonce uint64) ([]bridgetypes.ConfirmResponse, error) {
	var resp *gravitypb.QueryValsetConfirmsByNonceResponse
	err := retrywrap.Do(ctx, func() error {
		var err error
		resp, err = q.wire.ValsetConfirmsByNonce(ctx, &gravitypb.QueryValsetConfirmsByNonceRequest{Nonce: nonce})
		return err
	})
	if err != nil {
		return nil, err
	}
	return valsetConfirmsFromWire(resp.Confirms)
}

// LastPendingBatchRequestByAddr returns every batch this orchestrator
// address has not yet signed, grounded on get_oldest_unsigned_transaction_batch.
func (q *QueryClient) LastPendingBatchRequestByAddr(ctx context.Context, orchestrator string) ([]*bridgetypes.TransactionBatch, error) {
	var resp *gravitypb.QueryLastPendingBatchRequestByAddrResponse
	err := retrywrap.Do(ctx, func() error {
		var err error
		resp, err = q.wire.LastPendingBatchRequestByAddr(ctx, &gravitypb.QueryLastPendingBatchRequestByAddrRequest{Address: orchestrator})
		return err
	})
	if err != nil {
		return nil, err
	}
	return batchesFromWire(resp.Batch)
}

// OutgoingTxBatches returns every batch currently pending confirmation or
// relay, grounded on get_latest_transaction_batches.
func (q *QueryClient) OutgoingTxBatches(ctx context.Context) ([]*bridgetypes.TransactionBatch, error) {
	var resp *gravitypb.QueryOutgoingTxBatchesResponse
	err := retrywrap.Do(ctx, func() error {
		var err error
		resp, err = q.wire.OutgoingTxBatches(ctx, &gravitypb.QueryOutgoingTxBatchesRequest{})
		return err
	})
	if err != nil {
		return nil, err
	}
	return batchesFromWire(resp.Batches)
}

// BatchConfirms returns every confirmation submitted for a batch, grounded
// on get_transaction_batch_signatures.
func (q *QueryClient) BatchConfirms(ctx context.Context, nonce uint64, tokenContract string) ([]bridgetypes.ConfirmResponse, error) {
	var resp *gravitypb.QueryBatchConfirmsResponse
	err := retrywrap.Do(ctx, func() error {
		var err error
		resp, err = q.wire.BatchConfirms(ctx, &gravitypb.QueryBatchConfirmsRequest{Nonce: nonce, ContractAddress: tokenContract})
		return err
	})
	if err != nil {
		return nil, err
	}
	return batchConfirmsFromWire(resp.Confirms)
}

// LastEventNonceByAddr returns the highest Ethereum event_nonce this
// orchestrator address has submitted a claim for, grounded on
// get_last_event_nonce_for_validator.
func (q *QueryClient) LastEventNonceByAddr(ctx context.Context, orchestrator string) (uint64, error) {
	var resp *gravitypb.QueryLastEventNonceByAddrResponse
	err := retrywrap.Do(ctx, func() error {
		var err error
		resp, err = q.wire.LastEventNonceByAddr(ctx, &gravitypb.QueryLastEventNonceByAddrRequest{Address: orchestrator})
		return err
	})
	if err != nil {
		return 0, err
	}
	return resp.EventNonce, nil
}

// OutgoingLogicCalls returns every logic call currently pending, grounded
// on get_logic_calls.
func (q *QueryClient) OutgoingLogicCalls(ctx context.Context) ([]*bridgetypes.LogicCall, error) {
	var resp *gravitypb.QueryOutgoingLogicCallsResponse
	err := retrywrap.Do(ctx, func() error {
		var err error
		resp, err = q.wire.OutgoingLogicCalls(ctx, &gravitypb.QueryOutgoingLogicCallsRequest{})
		return err
	})
	if err != nil {
		return nil, err
	}
	return logicCallsFromWire(resp.Calls)
}

// LogicConfirms returns every confirmation submitted for a logic call,
// grounded on get_logic_call_signatures.
func (q *QueryClient) LogicConfirms(ctx context.Context, invalidationID []byte, invalidationNonce uint64) ([]bridgetypes.ConfirmResponse, error) {
	var resp *gravitypb.QueryLogicConfirmsResponse
	err := retrywrap.Do(ctx, func() error {
		var err error
		resp, err = q.wire.LogicConfirms(ctx, &gravitypb.QueryLogicConfirmsRequest{
			InvalidationId:    invalidationID,
			InvalidationNonce: invalidationNonce,
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return logicCallConfirmsFromWire(resp.Confirms)
}

// LastPendingLogicCallByAddr returns every logic call this orchestrator
// address has not yet signed, grounded on get_oldest_unsigned_logic_call.
func (q *QueryClient) LastPendingLogicCallByAddr(ctx context.Context, orchestrator string) ([]*bridgetypes.LogicCall, error) {
	var resp *gravitypb.QueryLastPendingLogicCallByAddrResponse
	err := retrywrap.Do(ctx, func() error {
		var err error
		resp, err = q.wire.LastPendingLogicCallByAddr(ctx, &gravitypb.QueryLastPendingLogicCallByAddrRequest{Address: orchestrator})
		return err
	})
	if err != nil {
		return nil, err
	}
	return logicCallsFromWire(resp.Call)
}

// GetAttestations returns the most recent attestations the bridge module
// has recorded, newest first, grounded on get_attestations. limit of 0
// falls back to the module's own default (1000, per SPEC_FULL.md §6).
func (q *QueryClient) GetAttestations(ctx context.Context, limit uint64) ([]*gravitypb.Attestation, error) {
	var resp *gravitypb.QueryAttestationsResponse
	err := retrywrap.Do(ctx, func() error {
		var err error
		resp, err = q.wire.GetAttestations(ctx, &gravitypb.QueryAttestationsRequest{Limit: limit})
		return err
	})
	if err != nil {
		return nil, err
	}
	return resp.Attestations, nil
}

// DenomToErc20 resolves a Cosmos denom to its bridged ERC20 contract address,
// grounded on get_denom_to_erc20.
func (q *QueryClient) DenomToErc20(ctx context.Context, denom string) (string, error) {
	var resp *gravitypb.QueryDenomToErc20Response
	err := retrywrap.Do(ctx, func() error {
		var err error
		resp, err = q.wire.DenomToErc20(ctx, &gravitypb.QueryDenomToErc20Request{Denom: denom})
		return err
	})
	if err != nil {
		return "", err
	}
	return resp.Erc20, nil
}

// Erc20ToDenom resolves a bridged ERC20 contract address to its Cosmos
// denom, grounded on get_erc20_to_denom.
func (q *QueryClient) Erc20ToDenom(ctx context.Context, erc20 string) (string, bool, error) {
	var resp *gravitypb.QueryErc20ToDenomResponse
	err := retrywrap.Do(ctx, func() error {
		var err error
		resp, err = q.wire.Erc20ToDenom(ctx, &gravitypb.QueryErc20ToDenomRequest{Erc20: erc20})
		return err
	})
	if err != nil {
		return "", false, err
	}
	return resp.Denom, resp.CosmosOriginated, nil
}

// BatchFees returns the pending-batch fee summary per ERC20, grounded on
// get_pending_batch_fees.
func (q *QueryClient) BatchFees(ctx context.Context) ([]*gravitypb.BatchFees, error) {
	var resp *gravitypb.QueryBatchFeeResponse
	err := retrywrap.Do(ctx, func() error {
		var err error
		resp, err = q.wire.BatchFees(ctx, &gravitypb.QueryBatchFeeRequest{})
		return err
	})
	if err != nil {
		return nil, err
	}
	return resp.BatchFees, nil
}

// GetPendingSendToEth returns every withdrawal queued for this sender, both
// already batched and still unbatched, grounded on get_pending_send_to_eth.
func (q *QueryClient) GetPendingSendToEth(ctx context.Context, sender string) (inBatches, unbatched []*gravitypb.OutgoingTransferTx, err error) {
	var resp *gravitypb.QueryPendingSendToEthResponse
	err = retrywrap.Do(ctx, func() error {
		var err error
		resp, err = q.wire.GetPendingSendToEth(ctx, &gravitypb.QueryPendingSendToEthRequest{SenderAddress: sender})
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	return resp.TransfersInBatches, resp.UnbatchedTransfers, nil
}
