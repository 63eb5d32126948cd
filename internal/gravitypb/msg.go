package gravitypb

import (
	gogoproto "github.com/cosmos/gogoproto/proto"
)

// MsgSetOrchestratorAddress binds a validator's operator address to a
// delegate orchestrator address and Eth signing address. Must be submitted
// once before the orchestrator can submit any other message.
type MsgSetOrchestratorAddress struct {
	Validator    string `protobuf:"bytes,1,opt,name=validator,proto3" json:"validator,omitempty"`
	Orchestrator string `protobuf:"bytes,2,opt,name=orchestrator,proto3" json:"orchestrator,omitempty"`
	EthAddress   string `protobuf:"bytes,3,opt,name=eth_address,json=ethAddress,proto3" json:"eth_address,omitempty"`
}

func (m *MsgSetOrchestratorAddress) Reset()         { *m = MsgSetOrchestratorAddress{} }
func (m *MsgSetOrchestratorAddress) String() string { return "" }
func (*MsgSetOrchestratorAddress) ProtoMessage()    {}

// MsgSendToCosmosClaim attests a SendToCosmos (deposit) Eth event.
type MsgSendToCosmosClaim struct {
	EventNonce     uint64 `protobuf:"varint,1,opt,name=event_nonce,json=eventNonce,proto3" json:"event_nonce,omitempty"`
	BlockHeight    uint64 `protobuf:"varint,2,opt,name=block_height,json=blockHeight,proto3" json:"block_height,omitempty"`
	TokenContract  string `protobuf:"bytes,3,opt,name=token_contract,json=tokenContract,proto3" json:"token_contract,omitempty"`
	Amount         string `protobuf:"bytes,4,opt,name=amount,proto3" json:"amount,omitempty"`
	EthereumSender string `protobuf:"bytes,5,opt,name=ethereum_sender,json=ethereumSender,proto3" json:"ethereum_sender,omitempty"`
	CosmosReceiver string `protobuf:"bytes,6,opt,name=cosmos_receiver,json=cosmosReceiver,proto3" json:"cosmos_receiver,omitempty"`
	Orchestrator   string `protobuf:"bytes,7,opt,name=orchestrator,proto3" json:"orchestrator,omitempty"`
}

func (m *MsgSendToCosmosClaim) Reset()         { *m = MsgSendToCosmosClaim{} }
func (m *MsgSendToCosmosClaim) String() string { return "" }
func (*MsgSendToCosmosClaim) ProtoMessage()    {}

// MsgBatchSendToEthClaim attests a TransactionBatchExecuted Eth event.
type MsgBatchSendToEthClaim struct {
	EventNonce      uint64 `protobuf:"varint,1,opt,name=event_nonce,json=eventNonce,proto3" json:"event_nonce,omitempty"`
	BlockHeight     uint64 `protobuf:"varint,2,opt,name=block_height,json=blockHeight,proto3" json:"block_height,omitempty"`
	TokenContract   string `protobuf:"bytes,3,opt,name=token_contract,json=tokenContract,proto3" json:"token_contract,omitempty"`
	BatchNonce      uint64 `protobuf:"varint,4,opt,name=batch_nonce,json=batchNonce,proto3" json:"batch_nonce,omitempty"`
	Orchestrator    string `protobuf:"bytes,5,opt,name=orchestrator,proto3" json:"orchestrator,omitempty"`
	RewardRecipient string `protobuf:"bytes,6,opt,name=reward_recipient,json=rewardRecipient,proto3" json:"reward_recipient,omitempty"`
}

func (m *MsgBatchSendToEthClaim) Reset()         { *m = MsgBatchSendToEthClaim{} }
func (m *MsgBatchSendToEthClaim) String() string { return "" }
func (*MsgBatchSendToEthClaim) ProtoMessage()    {}

// MsgErc20DeployedClaim attests an Erc20Deployed Eth event.
type MsgErc20DeployedClaim struct {
	EventNonce    uint64 `protobuf:"varint,1,opt,name=event_nonce,json=eventNonce,proto3" json:"event_nonce,omitempty"`
	BlockHeight   uint64 `protobuf:"varint,2,opt,name=block_height,json=blockHeight,proto3" json:"block_height,omitempty"`
	CosmosDenom   string `protobuf:"bytes,3,opt,name=cosmos_denom,json=cosmosDenom,proto3" json:"cosmos_denom,omitempty"`
	TokenContract string `protobuf:"bytes,4,opt,name=token_contract,json=tokenContract,proto3" json:"token_contract,omitempty"`
	Name          string `protobuf:"bytes,5,opt,name=name,proto3" json:"name,omitempty"`
	Symbol        string `protobuf:"bytes,6,opt,name=symbol,proto3" json:"symbol,omitempty"`
	Decimals      uint64 `protobuf:"varint,7,opt,name=decimals,proto3" json:"decimals,omitempty"`
	Orchestrator  string `protobuf:"bytes,8,opt,name=orchestrator,proto3" json:"orchestrator,omitempty"`
}

func (m *MsgErc20DeployedClaim) Reset()         { *m = MsgErc20DeployedClaim{} }
func (m *MsgErc20DeployedClaim) String() string { return "" }
func (*MsgErc20DeployedClaim) ProtoMessage()    {}

// MsgLogicCallExecutedClaim attests a LogicCallExecuted Eth event.
type MsgLogicCallExecutedClaim struct {
	EventNonce        uint64 `protobuf:"varint,1,opt,name=event_nonce,json=eventNonce,proto3" json:"event_nonce,omitempty"`
	BlockHeight       uint64 `protobuf:"varint,2,opt,name=block_height,json=blockHeight,proto3" json:"block_height,omitempty"`
	InvalidationId    []byte `protobuf:"bytes,3,opt,name=invalidation_id,json=invalidationId,proto3" json:"invalidation_id,omitempty"`
	InvalidationNonce uint64 `protobuf:"varint,4,opt,name=invalidation_nonce,json=invalidationNonce,proto3" json:"invalidation_nonce,omitempty"`
	Orchestrator      string `protobuf:"bytes,5,opt,name=orchestrator,proto3" json:"orchestrator,omitempty"`
}

func (m *MsgLogicCallExecutedClaim) Reset()         { *m = MsgLogicCallExecutedClaim{} }
func (m *MsgLogicCallExecutedClaim) String() string { return "" }
func (*MsgLogicCallExecutedClaim) ProtoMessage()    {}

// MsgValsetUpdatedClaim attests a ValsetUpdated Eth event.
type MsgValsetUpdatedClaim struct {
	EventNonce       uint64             `protobuf:"varint,1,opt,name=event_nonce,json=eventNonce,proto3" json:"event_nonce,omitempty"`
	ValsetNonce      uint64             `protobuf:"varint,2,opt,name=valset_nonce,json=valsetNonce,proto3" json:"valset_nonce,omitempty"`
	BlockHeight      uint64             `protobuf:"varint,3,opt,name=block_height,json=blockHeight,proto3" json:"block_height,omitempty"`
	Members          []*BridgeValidator `protobuf:"bytes,4,rep,name=members,proto3" json:"members,omitempty"`
	RewardAmount     string             `protobuf:"bytes,5,opt,name=reward_amount,json=rewardAmount,proto3" json:"reward_amount,omitempty"`
	RewardDenom      string             `protobuf:"bytes,6,opt,name=reward_denom,json=rewardDenom,proto3" json:"reward_denom,omitempty"`
	RewardRecipient  string             `protobuf:"bytes,7,opt,name=reward_recipient,json=rewardRecipient,proto3" json:"reward_recipient,omitempty"`
	Orchestrator     string             `protobuf:"bytes,8,opt,name=orchestrator,proto3" json:"orchestrator,omitempty"`
}

func (m *MsgValsetUpdatedClaim) Reset()         { *m = MsgValsetUpdatedClaim{} }
func (m *MsgValsetUpdatedClaim) String() string { return "" }
func (*MsgValsetUpdatedClaim) ProtoMessage()    {}

// MsgSendToEth is a user-submitted withdrawal request, to be picked up by a
// future batch.
type MsgSendToEth struct {
	Sender     string      `protobuf:"bytes,1,opt,name=sender,proto3" json:"sender,omitempty"`
	EthDest    string      `protobuf:"bytes,2,opt,name=eth_dest,json=ethDest,proto3" json:"eth_dest,omitempty"`
	Amount     *CosmosCoin `protobuf:"bytes,3,opt,name=amount,proto3" json:"amount,omitempty"`
	BridgeFee  *CosmosCoin `protobuf:"bytes,4,opt,name=bridge_fee,json=bridgeFee,proto3" json:"bridge_fee,omitempty"`
}

func (m *MsgSendToEth) Reset()         { *m = MsgSendToEth{} }
func (m *MsgSendToEth) String() string { return "" }
func (*MsgSendToEth) ProtoMessage()    {}

// CosmosCoin mirrors cosmos.base.v1beta1.Coin for embedding in messages that
// don't otherwise need the full cosmos-sdk type.
type CosmosCoin struct {
	Denom  string `protobuf:"bytes,1,opt,name=denom,proto3" json:"denom,omitempty"`
	Amount string `protobuf:"bytes,2,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *CosmosCoin) Reset()         { *m = CosmosCoin{} }
func (m *CosmosCoin) String() string { return "" }
func (*CosmosCoin) ProtoMessage()    {}

// MsgCancelSendToEth cancels a pending (not yet batched) withdrawal, the CLI
// subcommand named in SPEC_FULL.md §2.3.
type MsgCancelSendToEth struct {
	TransactionId uint64 `protobuf:"varint,1,opt,name=transaction_id,json=transactionId,proto3" json:"transaction_id,omitempty"`
	Sender        string `protobuf:"bytes,2,opt,name=sender,proto3" json:"sender,omitempty"`
}

func (m *MsgCancelSendToEth) Reset()         { *m = MsgCancelSendToEth{} }
func (m *MsgCancelSendToEth) String() string { return "" }
func (*MsgCancelSendToEth) ProtoMessage()    {}

// MsgRequestBatch asks the bridge module to assemble a new outgoing batch
// for denom, if enough pending transactions exist.
type MsgRequestBatch struct {
	Sender string `protobuf:"bytes,1,opt,name=sender,proto3" json:"sender,omitempty"`
	Denom  string `protobuf:"bytes,2,opt,name=denom,proto3" json:"denom,omitempty"`
}

func (m *MsgRequestBatch) Reset()         { *m = MsgRequestBatch{} }
func (m *MsgRequestBatch) String() string { return "" }
func (*MsgRequestBatch) ProtoMessage()    {}

// MsgSubmitBadSignatureEvidence reports a signature that verifies against a
// hash no valid checkpoint/batch/logic-call ever produced, the CLI
// subcommand named in SPEC_FULL.md §2.3.
type MsgSubmitBadSignatureEvidence struct {
	Subject   *anyMessage `protobuf:"bytes,1,opt,name=subject,proto3" json:"subject,omitempty"`
	Signature string      `protobuf:"bytes,2,opt,name=signature,proto3" json:"signature,omitempty"`
	Sender    string      `protobuf:"bytes,3,opt,name=sender,proto3" json:"sender,omitempty"`
}

func (m *MsgSubmitBadSignatureEvidence) Reset()         { *m = MsgSubmitBadSignatureEvidence{} }
func (m *MsgSubmitBadSignatureEvidence) String() string { return "" }
func (*MsgSubmitBadSignatureEvidence) ProtoMessage()    {}

func init() {
	gogoproto.RegisterType((*MsgSetOrchestratorAddress)(nil), "gravity.v1.MsgSetOrchestratorAddress")
	gogoproto.RegisterType((*MsgSendToCosmosClaim)(nil), "gravity.v1.MsgSendToCosmosClaim")
	gogoproto.RegisterType((*MsgBatchSendToEthClaim)(nil), "gravity.v1.MsgBatchSendToEthClaim")
	gogoproto.RegisterType((*MsgErc20DeployedClaim)(nil), "gravity.v1.MsgERC20DeployedClaim")
	gogoproto.RegisterType((*MsgLogicCallExecutedClaim)(nil), "gravity.v1.MsgLogicCallExecutedClaim")
	gogoproto.RegisterType((*MsgValsetUpdatedClaim)(nil), "gravity.v1.MsgValsetUpdatedClaim")
	gogoproto.RegisterType((*MsgValsetConfirm)(nil), "gravity.v1.MsgValsetConfirm")
	gogoproto.RegisterType((*MsgConfirmBatch)(nil), "gravity.v1.MsgConfirmBatch")
	gogoproto.RegisterType((*MsgConfirmLogicCall)(nil), "gravity.v1.MsgConfirmLogicCall")
	gogoproto.RegisterType((*MsgSendToEth)(nil), "gravity.v1.MsgSendToEth")
	gogoproto.RegisterType((*MsgCancelSendToEth)(nil), "gravity.v1.MsgCancelSendToEth")
	gogoproto.RegisterType((*MsgRequestBatch)(nil), "gravity.v1.MsgRequestBatch")
	gogoproto.RegisterType((*MsgSubmitBadSignatureEvidence)(nil), "gravity.v1.MsgSubmitBadSignatureEvidence")
}

// TypeURL returns the Cosmos SDK Any type URL this message is broadcast
// under, used by internal/cosmosadapter when packing messages into a
// transaction.
func (m *MsgSetOrchestratorAddress) TypeURL() string     { return "/gravity.v1.MsgSetOrchestratorAddress" }
func (m *MsgSendToCosmosClaim) TypeURL() string          { return "/gravity.v1.MsgSendToCosmosClaim" }
func (m *MsgBatchSendToEthClaim) TypeURL() string        { return "/gravity.v1.MsgBatchSendToEthClaim" }
func (m *MsgErc20DeployedClaim) TypeURL() string         { return "/gravity.v1.MsgERC20DeployedClaim" }
func (m *MsgLogicCallExecutedClaim) TypeURL() string     { return "/gravity.v1.MsgLogicCallExecutedClaim" }
func (m *MsgValsetUpdatedClaim) TypeURL() string         { return "/gravity.v1.MsgValsetUpdatedClaim" }
func (m *MsgValsetConfirm) TypeURL() string              { return "/gravity.v1.MsgValsetConfirm" }
func (m *MsgConfirmBatch) TypeURL() string               { return "/gravity.v1.MsgConfirmBatch" }
func (m *MsgConfirmLogicCall) TypeURL() string           { return "/gravity.v1.MsgConfirmLogicCall" }
func (m *MsgSendToEth) TypeURL() string                  { return "/gravity.v1.MsgSendToEth" }
func (m *MsgCancelSendToEth) TypeURL() string            { return "/gravity.v1.MsgCancelSendToEth" }
func (m *MsgRequestBatch) TypeURL() string                { return "/gravity.v1.MsgRequestBatch" }
func (m *MsgSubmitBadSignatureEvidence) TypeURL() string { return "/gravity.v1.MsgSubmitBadSignatureEvidence" }
