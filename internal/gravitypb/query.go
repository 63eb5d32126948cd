package gravitypb

import (
	"context"

	"google.golang.org/grpc"
)

const queryServiceName = "/gravity.v1.Query/"

type QueryParamsRequest struct{}

func (m *QueryParamsRequest) Reset()         { *m = QueryParamsRequest{} }
func (m *QueryParamsRequest) String() string { return "" }
func (*QueryParamsRequest) ProtoMessage()    {}

type QueryParamsResponse struct {
	Params *Params `protobuf:"bytes,1,opt,name=params,proto3" json:"params,omitempty"`
}

func (m *QueryParamsResponse) Reset()         { *m = QueryParamsResponse{} }
func (m *QueryParamsResponse) String() string { return "" }
func (*QueryParamsResponse) ProtoMessage()    {}

type QueryCurrentValsetRequest struct{}

func (m *QueryCurrentValsetRequest) Reset()         { *m = QueryCurrentValsetRequest{} }
func (m *QueryCurrentValsetRequest) String() string { return "" }
func (*QueryCurrentValsetRequest) ProtoMessage()    {}

type QueryCurrentValsetResponse struct {
	Valset *Valset `protobuf:"bytes,1,opt,name=valset,proto3" json:"valset,omitempty"`
}

func (m *QueryCurrentValsetResponse) Reset()         { *m = QueryCurrentValsetResponse{} }
func (m *QueryCurrentValsetResponse) String() string { return "" }
func (*QueryCurrentValsetResponse) ProtoMessage()    {}

type QueryValsetRequestRequest struct {
	Nonce uint64 `protobuf:"varint,1,opt,name=nonce,proto3" json:"nonce,omitempty"`
}

func (m *QueryValsetRequestRequest) Reset()         { *m = QueryValsetRequestRequest{} }
func (m *QueryValsetRequestRequest) String() string { return "" }
func (*QueryValsetRequestRequest) ProtoMessage()    {}

type QueryValsetRequestResponse struct {
	Valset *Valset `protobuf:"bytes,1,opt,name=valset,proto3" json:"valset,omitempty"`
}

func (m *QueryValsetRequestResponse) Reset()         { *m = QueryValsetRequestResponse{} }
func (m *QueryValsetRequestResponse) String() string { return "" }
func (*QueryValsetRequestResponse) ProtoMessage()    {}

type QueryLastValsetRequestsRequest struct{}

func (m *QueryLastValsetRequestsRequest) Reset()         { *m = QueryLastValsetRequestsRequest{} }
func (m *QueryLastValsetRequestsRequest) String() string { return "" }
func (*QueryLastValsetRequestsRequest) ProtoMessage()    {}

type QueryLastValsetRequestsResponse struct {
	Valsets []*Valset `protobuf:"bytes,1,rep,name=valsets,proto3" json:"valsets,omitempty"`
}

func (m *QueryLastValsetRequestsResponse) Reset()         { *m = QueryLastValsetRequestsResponse{} }
func (m *QueryLastValsetRequestsResponse) String() string { return "" }
func (*QueryLastValsetRequestsResponse) ProtoMessage()    {}

type QueryLastPendingValsetRequestByAddrRequest struct {
	Address string `protobuf:"bytes,1,opt,name=address,proto3" json:"address,omitempty"`
}

func (m *QueryLastPendingValsetRequestByAddrRequest) Reset() {
	*m = QueryLastPendingValsetRequestByAddrRequest{}
}
func (m *QueryLastPendingValsetRequestByAddrRequest) String() string { return "" }
func (*QueryLastPendingValsetRequestByAddrRequest) ProtoMessage()    {}

type QueryLastPendingValsetRequestByAddrResponse struct {
	Valsets []*Valset `protobuf:"bytes,1,rep,name=valsets,proto3" json:"valsets,omitempty"`
}

func (m *QueryLastPendingValsetRequestByAddrResponse) Reset() {
	*m = QueryLastPendingValsetRequestByAddrResponse{}
}
func (m *QueryLastPendingValsetRequestByAddrResponse) String() string { return "" }
func (*QueryLastPendingValsetRequestByAddrResponse) ProtoMessage()    {}

type QueryValsetConfirmsByNonceRequest struct {
	Nonce uint64 `protobuf:"varint,1,opt,name=nonce,proto3" json:"nonce,omitempty"`
}

func (m *QueryValsetConfirmsByNonceRequest) Reset()         { *m = QueryValsetConfirmsByNonceRequest{} }
func (m *QueryValsetConfirmsByNonceRequest) String() string { return "" }
func (*QueryValsetConfirmsByNonceRequest) ProtoMessage()    {}

type QueryValsetConfirmsByNonceResponse struct {
	Confirms []*MsgValsetConfirm `protobuf:"bytes,1,rep,name=confirms,proto3" json:"confirms,omitempty"`
}

func (m *QueryValsetConfirmsByNonceResponse) Reset()         { *m = QueryValsetConfirmsByNonceResponse{} }
func (m *QueryValsetConfirmsByNonceResponse) String() string { return "" }
func (*QueryValsetConfirmsByNonceResponse) ProtoMessage()    {}

type QueryLastPendingBatchRequestByAddrRequest struct {
	Address string `protobuf:"bytes,1,opt,name=address,proto3" json:"address,omitempty"`
}

func (m *QueryLastPendingBatchRequestByAddrRequest) Reset() {
	*m = QueryLastPendingBatchRequestByAddrRequest{}
}
func (m *QueryLastPendingBatchRequestByAddrRequest) String() string { return "" }
func (*QueryLastPendingBatchRequestByAddrRequest) ProtoMessage()    {}

type QueryLastPendingBatchRequestByAddrResponse struct {
	Batch []*OutgoingTxBatch `protobuf:"bytes,1,rep,name=batch,proto3" json:"batch,omitempty"`
}

func (m *QueryLastPendingBatchRequestByAddrResponse) Reset() {
	*m = QueryLastPendingBatchRequestByAddrResponse{}
}
func (m *QueryLastPendingBatchRequestByAddrResponse) String() string { return "" }
func (*QueryLastPendingBatchRequestByAddrResponse) ProtoMessage()    {}

type QueryOutgoingTxBatchesRequest struct{}

func (m *QueryOutgoingTxBatchesRequest) Reset()         { *m = QueryOutgoingTxBatchesRequest{} }
func (m *QueryOutgoingTxBatchesRequest) String() string { return "" }
func (*QueryOutgoingTxBatchesRequest) ProtoMessage()    {}

type QueryOutgoingTxBatchesResponse struct {
	Batches []*OutgoingTxBatch `protobuf:"bytes,1,rep,name=batches,proto3" json:"batches,omitempty"`
}

func (m *QueryOutgoingTxBatchesResponse) Reset()         { *m = QueryOutgoingTxBatchesResponse{} }
func (m *QueryOutgoingTxBatchesResponse) String() string { return "" }
func (*QueryOutgoingTxBatchesResponse) ProtoMessage()    {}

type QueryBatchConfirmsRequest struct {
	Nonce           uint64 `protobuf:"varint,1,opt,name=nonce,proto3" json:"nonce,omitempty"`
	ContractAddress string `protobuf:"bytes,2,opt,name=contract_address,json=contractAddress,proto3" json:"contract_address,omitempty"`
}

func (m *QueryBatchConfirmsRequest) Reset()         { *m = QueryBatchConfirmsRequest{} }
func (m *QueryBatchConfirmsRequest) String() string { return "" }
func (*QueryBatchConfirmsRequest) ProtoMessage()    {}

type QueryBatchConfirmsResponse struct {
	Confirms []*MsgConfirmBatch `protobuf:"bytes,1,rep,name=confirms,proto3" json:"confirms,omitempty"`
}

func (m *QueryBatchConfirmsResponse) Reset()         { *m = QueryBatchConfirmsResponse{} }
func (m *QueryBatchConfirmsResponse) String() string { return "" }
func (*QueryBatchConfirmsResponse) ProtoMessage()    {}

type QueryLastEventNonceByAddrRequest struct {
	Address string `protobuf:"bytes,1,opt,name=address,proto3" json:"address,omitempty"`
}

func (m *QueryLastEventNonceByAddrRequest) Reset()         { *m = QueryLastEventNonceByAddrRequest{} }
func (m *QueryLastEventNonceByAddrRequest) String() string { return "" }
func (*QueryLastEventNonceByAddrRequest) ProtoMessage()    {}

type QueryLastEventNonceByAddrResponse struct {
	EventNonce uint64 `protobuf:"varint,1,opt,name=event_nonce,json=eventNonce,proto3" json:"event_nonce,omitempty"`
}

func (m *QueryLastEventNonceByAddrResponse) Reset()         { *m = QueryLastEventNonceByAddrResponse{} }
func (m *QueryLastEventNonceByAddrResponse) String() string { return "" }
func (*QueryLastEventNonceByAddrResponse) ProtoMessage()    {}

type QueryOutgoingLogicCallsRequest struct{}

func (m *QueryOutgoingLogicCallsRequest) Reset()         { *m = QueryOutgoingLogicCallsRequest{} }
func (m *QueryOutgoingLogicCallsRequest) String() string { return "" }
func (*QueryOutgoingLogicCallsRequest) ProtoMessage()    {}

type QueryOutgoingLogicCallsResponse struct {
	Calls []*ContractCallTx `protobuf:"bytes,1,rep,name=calls,proto3" json:"calls,omitempty"`
}

func (m *QueryOutgoingLogicCallsResponse) Reset()         { *m = QueryOutgoingLogicCallsResponse{} }
func (m *QueryOutgoingLogicCallsResponse) String() string { return "" }
func (*QueryOutgoingLogicCallsResponse) ProtoMessage()    {}

type QueryLogicConfirmsRequest struct {
	InvalidationId    []byte `protobuf:"bytes,1,opt,name=invalidation_id,json=invalidationId,proto3" json:"invalidation_id,omitempty"`
	InvalidationNonce uint64 `protobuf:"varint,2,opt,name=invalidation_nonce,json=invalidationNonce,proto3" json:"invalidation_nonce,omitempty"`
}

func (m *QueryLogicConfirmsRequest) Reset()         { *m = QueryLogicConfirmsRequest{} }
func (m *QueryLogicConfirmsRequest) String() string { return "" }
func (*QueryLogicConfirmsRequest) ProtoMessage()    {}

type QueryLogicConfirmsResponse struct {
	Confirms []*MsgConfirmLogicCall `protobuf:"bytes,1,rep,name=confirms,proto3" json:"confirms,omitempty"`
}

func (m *QueryLogicConfirmsResponse) Reset()         { *m = QueryLogicConfirmsResponse{} }
func (m *QueryLogicConfirmsResponse) String() string { return "" }
func (*QueryLogicConfirmsResponse) ProtoMessage()    {}

type QueryLastPendingLogicCallByAddrRequest struct {
	Address string `protobuf:"bytes,1,opt,name=address,proto3" json:"address,omitempty"`
}

func (m *QueryLastPendingLogicCallByAddrRequest) Reset() {
	*m = QueryLastPendingLogicCallByAddrRequest{}
}
func (m *QueryLastPendingLogicCallByAddrRequest) String() string { return "" }
func (*QueryLastPendingLogicCallByAddrRequest) ProtoMessage()    {}

type QueryLastPendingLogicCallByAddrResponse struct {
	Call []*ContractCallTx `protobuf:"bytes,1,rep,name=call,proto3" json:"call,omitempty"`
}

func (m *QueryLastPendingLogicCallByAddrResponse) Reset() {
	*m = QueryLastPendingLogicCallByAddrResponse{}
}
func (m *QueryLastPendingLogicCallByAddrResponse) String() string { return "" }
func (*QueryLastPendingLogicCallByAddrResponse) ProtoMessage()    {}

type QueryAttestationsRequest struct {
	Limit uint64 `protobuf:"varint,1,opt,name=limit,proto3" json:"limit,omitempty"`
}

func (m *QueryAttestationsRequest) Reset()         { *m = QueryAttestationsRequest{} }
func (m *QueryAttestationsRequest) String() string { return "" }
func (*QueryAttestationsRequest) ProtoMessage()    {}

type QueryAttestationsResponse struct {
	Attestations []*Attestation `protobuf:"bytes,1,rep,name=attestations,proto3" json:"attestations,omitempty"`
}

func (m *QueryAttestationsResponse) Reset()         { *m = QueryAttestationsResponse{} }
func (m *QueryAttestationsResponse) String() string { return "" }
func (*QueryAttestationsResponse) ProtoMessage()    {}

type QueryDenomToErc20Request struct {
	Denom string `protobuf:"bytes,1,opt,name=denom,proto3" json:"denom,omitempty"`
}

func (m *QueryDenomToErc20Request) Reset()         { *m = QueryDenomToErc20Request{} }
func (m *QueryDenomToErc20Request) String() string { return "" }
func (*QueryDenomToErc20Request) ProtoMessage()    {}

type QueryDenomToErc20Response struct {
	Erc20 string `protobuf:"bytes,1,opt,name=erc20,proto3" json:"erc20,omitempty"`
}

func (m *QueryDenomToErc20Response) Reset()         { *m = QueryDenomToErc20Response{} }
func (m *QueryDenomToErc20Response) String() string { return "" }
func (*QueryDenomToErc20Response) ProtoMessage()    {}

type QueryErc20ToDenomRequest struct {
	Erc20 string `protobuf:"bytes,1,opt,name=erc20,proto3" json:"erc20,omitempty"`
}

func (m *QueryErc20ToDenomRequest) Reset()         { *m = QueryErc20ToDenomRequest{} }
func (m *QueryErc20ToDenomRequest) String() string { return "" }
func (*QueryErc20ToDenomRequest) ProtoMessage()    {}

type QueryErc20ToDenomResponse struct {
	Denom              string `protobuf:"bytes,1,opt,name=denom,proto3" json:"denom,omitempty"`
	CosmosOriginated   bool   `protobuf:"varint,2,opt,name=cosmos_originated,json=cosmosOriginated,proto3" json:"cosmos_originated,omitempty"`
}

func (m *QueryErc20ToDenomResponse) Reset()         { *m = QueryErc20ToDenomResponse{} }
func (m *QueryErc20ToDenomResponse) String() string { return "" }
func (*QueryErc20ToDenomResponse) ProtoMessage()    {}

type QueryBatchFeeRequest struct{}

func (m *QueryBatchFeeRequest) Reset()         { *m = QueryBatchFeeRequest{} }
func (m *QueryBatchFeeRequest) String() string { return "" }
func (*QueryBatchFeeRequest) ProtoMessage()    {}

type BatchFees struct {
	Token     string `protobuf:"bytes,1,opt,name=token,proto3" json:"token,omitempty"`
	TotalFees string `protobuf:"bytes,2,opt,name=total_fees,json=totalFees,proto3" json:"total_fees,omitempty"`
	TxCount   uint64 `protobuf:"varint,3,opt,name=tx_count,json=txCount,proto3" json:"tx_count,omitempty"`
}

func (m *BatchFees) Reset()         { *m = BatchFees{} }
func (m *BatchFees) String() string { return "" }
func (*BatchFees) ProtoMessage()    {}

type QueryBatchFeeResponse struct {
	BatchFees []*BatchFees `protobuf:"bytes,1,rep,name=batch_fees,json=batchFees,proto3" json:"batch_fees,omitempty"`
}

func (m *QueryBatchFeeResponse) Reset()         { *m = QueryBatchFeeResponse{} }
func (m *QueryBatchFeeResponse) String() string { return "" }
func (*QueryBatchFeeResponse) ProtoMessage()    {}

type QueryPendingSendToEthRequest struct {
	SenderAddress string `protobuf:"bytes,1,opt,name=sender_address,json=senderAddress,proto3" json:"sender_address,omitempty"`
}

func (m *QueryPendingSendToEthRequest) Reset()         { *m = QueryPendingSendToEthRequest{} }
func (m *QueryPendingSendToEthRequest) String() string { return "" }
func (*QueryPendingSendToEthRequest) ProtoMessage()    {}

type QueryPendingSendToEthResponse struct {
	TransfersInBatches []*OutgoingTransferTx `protobuf:"bytes,1,rep,name=transfers_in_batches,json=transfersInBatches,proto3" json:"transfers_in_batches,omitempty"`
	UnbatchedTransfers []*OutgoingTransferTx `protobuf:"bytes,2,rep,name=unbatched_transfers,json=unbatchedTransfers,proto3" json:"unbatched_transfers,omitempty"`
}

func (m *QueryPendingSendToEthResponse) Reset()         { *m = QueryPendingSendToEthResponse{} }
func (m *QueryPendingSendToEthResponse) String() string { return "" }
func (*QueryPendingSendToEthResponse) ProtoMessage()    {}

// QueryClient is the subset of the bridge module's gRPC query service this
// orchestrator calls.
type QueryClient interface {
	Params(ctx context.Context, in *QueryParamsRequest) (*QueryParamsResponse, error)
	CurrentValset(ctx context.Context, in *QueryCurrentValsetRequest) (*QueryCurrentValsetResponse, error)
	ValsetRequest(ctx context.Context, in *QueryValsetRequestRequest) (*QueryValsetRequestResponse, error)
	LastValsetRequests(ctx context.Context, in *QueryLastValsetRequestsRequest) (*QueryLastValsetRequestsResponse, error)
	LastPendingValsetRequestByAddr(ctx context.Context, in *QueryLastPendingValsetRequestByAddrRequest) (*QueryLastPendingValsetRequestByAddrResponse, error)
	ValsetConfirmsByNonce(ctx context.Context, in *QueryValsetConfirmsByNonceRequest) (*QueryValsetConfirmsByNonceResponse, error)
	LastPendingBatchRequestByAddr(ctx context.Context, in *QueryLastPendingBatchRequestByAddrRequest) (*QueryLastPendingBatchRequestByAddrResponse, error)
	OutgoingTxBatches(ctx context.Context, in *QueryOutgoingTxBatchesRequest) (*QueryOutgoingTxBatchesResponse, error)
	BatchConfirms(ctx context.Context, in *QueryBatchConfirmsRequest) (*QueryBatchConfirmsResponse, error)
	LastEventNonceByAddr(ctx context.Context, in *QueryLastEventNonceByAddrRequest) (*QueryLastEventNonceByAddrResponse, error)
	OutgoingLogicCalls(ctx context.Context, in *QueryOutgoingLogicCallsRequest) (*QueryOutgoingLogicCallsResponse, error)
	LogicConfirms(ctx context.Context, in *QueryLogicConfirmsRequest) (*QueryLogicConfirmsResponse, error)
	LastPendingLogicCallByAddr(ctx context.Context, in *QueryLastPendingLogicCallByAddrRequest) (*QueryLastPendingLogicCallByAddrResponse, error)
	GetAttestations(ctx context.Context, in *QueryAttestationsRequest) (*QueryAttestationsResponse, error)
	DenomToErc20(ctx context.Context, in *QueryDenomToErc20Request) (*QueryDenomToErc20Response, error)
	Erc20ToDenom(ctx context.Context, in *QueryErc20ToDenomRequest) (*QueryErc20ToDenomResponse, error)
	BatchFees(ctx context.Context, in *QueryBatchFeeRequest) (*QueryBatchFeeResponse, error)
	GetPendingSendToEth(ctx context.Context, in *QueryPendingSendToEthRequest) (*QueryPendingSendToEthResponse, error)
}

type queryClient struct {
	cc grpc.ClientConnInterface
}

// NewQueryClient wraps a dialed gRPC connection to the Cosmos node.
func NewQueryClient(cc grpc.ClientConnInterface) QueryClient {
	return &queryClient{cc: cc}
}

func (c *queryClient) Params(ctx context.Context, in *QueryParamsRequest) (*QueryParamsResponse, error) {
	out := new(QueryParamsResponse)
	if err := c.cc.Invoke(ctx, queryServiceName+"Params", in, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) CurrentValset(ctx context.Context, in *QueryCurrentValsetRequest) (*QueryCurrentValsetResponse, error) {
	out := new(QueryCurrentValsetResponse)
	if err := c.cc.Invoke(ctx, queryServiceName+"CurrentValset", in, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) ValsetRequest(ctx context.Context, in *QueryValsetRequestRequest) (*QueryValsetRequestResponse, error) {
	out := new(QueryValsetRequestResponse)
	if err := c.cc.Invoke(ctx, queryServiceName+"ValsetRequest", in, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) LastValsetRequests(ctx context.Context, in *QueryLastValsetRequestsRequest) (*QueryLastValsetRequestsResponse, error) {
	out := new(QueryLastValsetRequestsResponse)
	if err := c.cc.Invoke(ctx, queryServiceName+"LastValsetRequests", in, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) LastPendingValsetRequestByAddr(ctx context.Context, in *QueryLastPendingValsetRequestByAddrRequest) (*QueryLastPendingValsetRequestByAddrResponse, error) {
	out := new(QueryLastPendingValsetRequestByAddrResponse)
	if err := c.cc.Invoke(ctx, queryServiceName+"LastPendingValsetRequestByAddr", in, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) ValsetConfirmsByNonce(ctx context.Context, in *QueryValsetConfirmsByNonceRequest) (*QueryValsetConfirmsByNonceResponse, error) {
	out := new(QueryValsetConfirmsByNonceResponse)
	if err := c.cc.Invoke(ctx, queryServiceName+"ValsetConfirmsByNonce", in, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) LastPendingBatchRequestByAddr(ctx context.Context, in *QueryLastPendingBatchRequestByAddrRequest) (*QueryLastPendingBatchRequestByAddrResponse, error) {
	out := new(QueryLastPendingBatchRequestByAddrResponse)
	if err := c.cc.Invoke(ctx, queryServiceName+"LastPendingBatchRequestByAddr", in, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) OutgoingTxBatches(ctx context.Context, in *QueryOutgoingTxBatchesRequest) (*QueryOutgoingTxBatchesResponse, error) {
	out := new(QueryOutgoingTxBatchesResponse)
	if err := c.cc.Invoke(ctx, queryServiceName+"OutgoingTxBatches", in, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) BatchConfirms(ctx context.Context, in *QueryBatchConfirmsRequest) (*QueryBatchConfirmsResponse, error) {
	out := new(QueryBatchConfirmsResponse)
	if err := c.cc.Invoke(ctx, queryServiceName+"BatchConfirms", in, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) LastEventNonceByAddr(ctx context.Context, in *QueryLastEventNonceByAddrRequest) (*QueryLastEventNonceByAddrResponse, error) {
	out := new(QueryLastEventNonceByAddrResponse)
	if err := c.cc.Invoke(ctx, queryServiceName+"LastEventNonceByAddr", in, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) OutgoingLogicCalls(ctx context.Context, in *QueryOutgoingLogicCallsRequest) (*QueryOutgoingLogicCallsResponse, error) {
	out := new(QueryOutgoingLogicCallsResponse)
	if err := c.cc.Invoke(ctx, queryServiceName+"OutgoingLogicCalls", in, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) LogicConfirms(ctx context.Context, in *QueryLogicConfirmsRequest) (*QueryLogicConfirmsResponse, error) {
	out := new(QueryLogicConfirmsResponse)
	if err := c.cc.Invoke(ctx, queryServiceName+"LogicConfirms", in, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) LastPendingLogicCallByAddr(ctx context.Context, in *QueryLastPendingLogicCallByAddrRequest) (*QueryLastPendingLogicCallByAddrResponse, error) {
	out := new(QueryLastPendingLogicCallByAddrResponse)
	if err := c.cc.Invoke(ctx, queryServiceName+"LastPendingLogicCallByAddr", in, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) GetAttestations(ctx context.Context, in *QueryAttestationsRequest) (*QueryAttestationsResponse, error) {
	out := new(QueryAttestationsResponse)
	if err := c.cc.Invoke(ctx, queryServiceName+"GetAttestations", in, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) DenomToErc20(ctx context.Context, in *QueryDenomToErc20Request) (*QueryDenomToErc20Response, error) {
	out := new(QueryDenomToErc20Response)
	if err := c.cc.Invoke(ctx, queryServiceName+"DenomToErc20", in, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) Erc20ToDenom(ctx context.Context, in *QueryErc20ToDenomRequest) (*QueryErc20ToDenomResponse, error) {
	out := new(QueryErc20ToDenomResponse)
	if err := c.cc.Invoke(ctx, queryServiceName+"Erc20ToDenom", in, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) BatchFees(ctx context.Context, in *QueryBatchFeeRequest) (*QueryBatchFeeResponse, error) {
	out := new(QueryBatchFeeResponse)
	if err := c.cc.Invoke(ctx, queryServiceName+"BatchFees", in, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) GetPendingSendToEth(ctx context.Context, in *QueryPendingSendToEthRequest) (*QueryPendingSendToEthResponse, error) {
	out := new(QueryPendingSendToEthResponse)
	if err := c.cc.Invoke(ctx, queryServiceName+"GetPendingSendToEth", in, out); err != nil {
		return nil, err
	}
	return out, nil
}
