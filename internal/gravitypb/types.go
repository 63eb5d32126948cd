// Package gravitypb declares the wire types and gRPC client stubs for the
// Cosmos bridge module's query and msg services — the core's external
// collaborator boundary named in SPEC_FULL.md §6. These mirror the shape a
// protoc-gen-gocosmos run against the gravity module's .proto files would
// produce; Marshal/Unmarshal go through gogoproto's reflection-based codec
// off the `protobuf` struct tags below rather than generated Size/Marshal
// methods, since no protoc toolchain runs in this build.
package gravitypb

import (
	"fmt"

	gogoproto "github.com/cosmos/gogoproto/proto"
)

func init() {
	gogoproto.RegisterType((*Valset)(nil), "gravity.v1.Valset")
	gogoproto.RegisterType((*OutgoingTxBatch)(nil), "gravity.v1.OutgoingTxBatch")
	gogoproto.RegisterType((*ContractCallTx)(nil), "gravity.v1.ContractCallTx")
	gogoproto.RegisterType((*Attestation)(nil), "gravity.v1.Attestation")
	gogoproto.RegisterType((*Params)(nil), "gravity.v1.Params")
}

// BridgeValidator is one member of a validator set as the bridge module
// represents it on the wire: an Eth address and a raw voting power.
type BridgeValidator struct {
	Power           uint64 `protobuf:"varint,1,opt,name=power,proto3" json:"power,omitempty"`
	EthereumAddress string `protobuf:"bytes,2,opt,name=ethereum_address,json=ethereumAddress,proto3" json:"ethereum_address,omitempty"`
}

func (m *BridgeValidator) Reset()         { *m = BridgeValidator{} }
func (m *BridgeValidator) String() string { return "" }
func (*BridgeValidator) ProtoMessage()    {}

// Valset is the bridge module's validator-set checkpoint type.
type Valset struct {
	Nonce        uint64             `protobuf:"varint,1,opt,name=nonce,proto3" json:"nonce,omitempty"`
	Members      []*BridgeValidator `protobuf:"bytes,2,rep,name=members,proto3" json:"members,omitempty"`
	Height       uint64             `protobuf:"varint,3,opt,name=height,proto3" json:"height,omitempty"`
	RewardAmount string             `protobuf:"bytes,4,opt,name=reward_amount,json=rewardAmount,proto3" json:"reward_amount,omitempty"`
	RewardToken  string             `protobuf:"bytes,5,opt,name=reward_token,json=rewardToken,proto3" json:"reward_token,omitempty"`
}

func (m *Valset) Reset()         { *m = Valset{} }
func (m *Valset) String() string { return "" }
func (*Valset) ProtoMessage()    {}

// OutgoingTransferTx is one leg of a batch: a single withdrawal.
type OutgoingTransferTx struct {
	Id          uint64 `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	Sender      string `protobuf:"bytes,2,opt,name=sender,proto3" json:"sender,omitempty"`
	DestAddress string `protobuf:"bytes,3,opt,name=dest_address,json=destAddress,proto3" json:"dest_address,omitempty"`
	Erc20Token  *Erc20Token `protobuf:"bytes,4,opt,name=erc20_token,json=erc20Token,proto3" json:"erc20_token,omitempty"`
	Erc20Fee    *Erc20Token `protobuf:"bytes,5,opt,name=erc20_fee,json=erc20Fee,proto3" json:"erc20_fee,omitempty"`
}

func (m *OutgoingTransferTx) Reset()         { *m = OutgoingTransferTx{} }
func (m *OutgoingTransferTx) String() string { return "" }
func (*OutgoingTransferTx) ProtoMessage()    {}

// Erc20Token pairs a raw amount with the token's contract address.
type Erc20Token struct {
	Contract string `protobuf:"bytes,1,opt,name=contract,proto3" json:"contract,omitempty"`
	Amount   string `protobuf:"bytes,2,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *Erc20Token) Reset()         { *m = Erc20Token{} }
func (m *Erc20Token) String() string { return "" }
func (*Erc20Token) ProtoMessage()    {}

// OutgoingTxBatch is the bridge module's pending-batch type.
type OutgoingTxBatch struct {
	BatchNonce    uint64                `protobuf:"varint,1,opt,name=batch_nonce,json=batchNonce,proto3" json:"batch_nonce,omitempty"`
	BatchTimeout  uint64                `protobuf:"varint,2,opt,name=batch_timeout,json=batchTimeout,proto3" json:"batch_timeout,omitempty"`
	Transactions  []*OutgoingTransferTx `protobuf:"bytes,3,rep,name=transactions,proto3" json:"transactions,omitempty"`
	TokenContract string                `protobuf:"bytes,4,opt,name=token_contract,json=tokenContract,proto3" json:"token_contract,omitempty"`
	Block         uint64                `protobuf:"varint,5,opt,name=block,proto3" json:"block,omitempty"`
}

func (m *OutgoingTxBatch) Reset()         { *m = OutgoingTxBatch{} }
func (m *OutgoingTxBatch) String() string { return "" }
func (*OutgoingTxBatch) ProtoMessage()    {}

// ContractCallTx is the bridge module's pending-logic-call type.
type ContractCallTx struct {
	InvalidationId    []byte        `protobuf:"bytes,1,opt,name=invalidation_id,json=invalidationId,proto3" json:"invalidation_id,omitempty"`
	InvalidationNonce uint64        `protobuf:"varint,2,opt,name=invalidation_nonce,json=invalidationNonce,proto3" json:"invalidation_nonce,omitempty"`
	Address           string        `protobuf:"bytes,3,opt,name=address,proto3" json:"address,omitempty"`
	Payload           []byte        `protobuf:"bytes,4,opt,name=payload,proto3" json:"payload,omitempty"`
	Timeout           uint64        `protobuf:"varint,5,opt,name=timeout,proto3" json:"timeout,omitempty"`
	Transfers         []*Erc20Token `protobuf:"bytes,6,rep,name=transfers,proto3" json:"transfers,omitempty"`
	Fees              []*Erc20Token `protobuf:"bytes,7,rep,name=fees,proto3" json:"fees,omitempty"`
}

func (m *ContractCallTx) Reset()         { *m = ContractCallTx{} }
func (m *ContractCallTx) String() string { return "" }
func (*ContractCallTx) ProtoMessage()    {}

// SignType distinguishes which confirm hash domain a signature covers.
type SignType int32

const (
	SignTypeUnspecified SignType = 0
	SignTypeOrchestratorSignedMultiSigUpdate SignType = 1
	SignTypeOrchestratorSignedWithdrawBatch  SignType = 2
	SignTypeOrchestratorSignedLogicCall      SignType = 3
)

// MsgValsetConfirm is the confirmation message signers submit for a valset.
type MsgValsetConfirm struct {
	Nonce        uint64 `protobuf:"varint,1,opt,name=nonce,proto3" json:"nonce,omitempty"`
	Orchestrator string `protobuf:"bytes,2,opt,name=orchestrator,proto3" json:"orchestrator,omitempty"`
	EthAddress   string `protobuf:"bytes,3,opt,name=eth_address,json=ethAddress,proto3" json:"eth_address,omitempty"`
	Signature    string `protobuf:"bytes,4,opt,name=signature,proto3" json:"signature,omitempty"`
}

func (m *MsgValsetConfirm) Reset()         { *m = MsgValsetConfirm{} }
func (m *MsgValsetConfirm) String() string { return "" }
func (*MsgValsetConfirm) ProtoMessage()    {}

// MsgConfirmBatch is the confirmation message signers submit for a batch.
type MsgConfirmBatch struct {
	Nonce         uint64 `protobuf:"varint,1,opt,name=nonce,proto3" json:"nonce,omitempty"`
	TokenContract string `protobuf:"bytes,2,opt,name=token_contract,json=tokenContract,proto3" json:"token_contract,omitempty"`
	EthSigner     string `protobuf:"bytes,3,opt,name=eth_signer,json=ethSigner,proto3" json:"eth_signer,omitempty"`
	Orchestrator  string `protobuf:"bytes,4,opt,name=orchestrator,proto3" json:"orchestrator,omitempty"`
	Signature     string `protobuf:"bytes,5,opt,name=signature,proto3" json:"signature,omitempty"`
}

func (m *MsgConfirmBatch) Reset()         { *m = MsgConfirmBatch{} }
func (m *MsgConfirmBatch) String() string { return "" }
func (*MsgConfirmBatch) ProtoMessage()    {}

// MsgConfirmLogicCall is the confirmation message signers submit for a
// logic call.
type MsgConfirmLogicCall struct {
	InvalidationId    string `protobuf:"bytes,1,opt,name=invalidation_id,json=invalidationId,proto3" json:"invalidation_id,omitempty"`
	InvalidationNonce uint64 `protobuf:"varint,2,opt,name=invalidation_nonce,json=invalidationNonce,proto3" json:"invalidation_nonce,omitempty"`
	EthSigner         string `protobuf:"bytes,3,opt,name=eth_signer,json=ethSigner,proto3" json:"eth_signer,omitempty"`
	Orchestrator      string `protobuf:"bytes,4,opt,name=orchestrator,proto3" json:"orchestrator,omitempty"`
	Signature         string `protobuf:"bytes,5,opt,name=signature,proto3" json:"signature,omitempty"`
}

func (m *MsgConfirmLogicCall) Reset()         { *m = MsgConfirmLogicCall{} }
func (m *MsgConfirmLogicCall) String() string { return "" }
func (*MsgConfirmLogicCall) ProtoMessage()    {}

// Attestation is a claim and its current observation tally.
type Attestation struct {
	Observed bool     `protobuf:"varint,1,opt,name=observed,proto3" json:"observed,omitempty"`
	Votes    []string `protobuf:"bytes,2,rep,name=votes,proto3" json:"votes,omitempty"`
	Height   uint64   `protobuf:"varint,3,opt,name=height,proto3" json:"height,omitempty"`
	Claim    []byte   `protobuf:"bytes,4,opt,name=claim,proto3" json:"claim,omitempty"`
}

func (m *Attestation) Reset()         { *m = Attestation{} }
func (m *Attestation) String() string { return "" }
func (*Attestation) ProtoMessage()    {}

// Params is the bridge module's on-chain parameter set.
type Params struct {
	GravityId                    string `protobuf:"bytes,1,opt,name=gravity_id,json=gravityId,proto3" json:"gravity_id,omitempty"`
	BridgeEthereumAddress         string `protobuf:"bytes,2,opt,name=bridge_ethereum_address,json=bridgeEthereumAddress,proto3" json:"bridge_ethereum_address,omitempty"`
	BridgeChainId                 uint64 `protobuf:"varint,3,opt,name=bridge_chain_id,json=bridgeChainId,proto3" json:"bridge_chain_id,omitempty"`
	SignedValsetsWindow            uint64 `protobuf:"varint,4,opt,name=signed_valsets_window,json=signedValsetsWindow,proto3" json:"signed_valsets_window,omitempty"`
	SignedBatchesWindow             uint64 `protobuf:"varint,5,opt,name=signed_batches_window,json=signedBatchesWindow,proto3" json:"signed_batches_window,omitempty"`
	SignedLogicCallsWindow          uint64 `protobuf:"varint,6,opt,name=signed_logic_calls_window,json=signedLogicCallsWindow,proto3" json:"signed_logic_calls_window,omitempty"`
}

func (m *Params) Reset()         { *m = Params{} }
func (m *Params) String() string { return "" }
func (*Params) ProtoMessage()    {}

// BadSignatureEvidence reports a signature that validates against a hash no
// valid checkpoint, batch, or logic call ever produced — the tagged-variant
// sum type named in SPEC_FULL.md §2.3.
type BadSignatureEvidence struct {
	Subject *anyMessage `protobuf:"bytes,1,opt,name=subject,proto3" json:"subject,omitempty"`
	Signature string    `protobuf:"bytes,2,opt,name=signature,proto3" json:"signature,omitempty"`
}

func (m *BadSignatureEvidence) Reset()         { *m = BadSignatureEvidence{} }
func (m *BadSignatureEvidence) String() string { return "" }
func (*BadSignatureEvidence) ProtoMessage()    {}

// anyMessage is a minimal stand-in for google.protobuf.Any: a type URL and
// the serialized bytes of one of {Valset, OutgoingTxBatch, ContractCallTx}.
type anyMessage struct {
	TypeUrl string `protobuf:"bytes,1,opt,name=type_url,json=typeUrl,proto3" json:"type_url,omitempty"`
	Value   []byte `protobuf:"bytes,2,opt,name=value,proto3" json:"value,omitempty"`
}

func (m *anyMessage) Reset()         { *m = anyMessage{} }
func (m *anyMessage) String() string { return "" }
func (*anyMessage) ProtoMessage()    {}

// SignTypeForSubject reports which confirm-hash domain a BadSignatureEvidence
// subject belongs to, so a receiving validator knows which checkpoint-style
// hash to recompute before checking the reported signature.
func SignTypeForSubject(subject gogoproto.Message) SignType {
	switch subject.(type) {
	case *Valset:
		return SignTypeOrchestratorSignedMultiSigUpdate
	case *OutgoingTxBatch:
		return SignTypeOrchestratorSignedWithdrawBatch
	case *ContractCallTx:
		return SignTypeOrchestratorSignedLogicCall
	default:
		return SignTypeUnspecified
	}
}

// PackBadSignatureSubject serializes one of {Valset, OutgoingTxBatch,
// ContractCallTx} into the Any stand-in BadSignatureEvidence.Subject expects,
// grounded on cosmos_gravity/src/send.rs submit_bad_signature_evidence's
// signed_object.to_any() call.
func PackBadSignatureSubject(subject gogoproto.Message) (*anyMessage, error) {
	name := gogoproto.MessageName(subject)
	if name == "" {
		return nil, fmt.Errorf("gravitypb: %T is not a registered message", subject)
	}
	value, err := gogoproto.Marshal(subject)
	if err != nil {
		return nil, fmt.Errorf("gravitypb: marshal bad signature subject: %w", err)
	}
	return &anyMessage{TypeUrl: "/" + name, Value: value}, nil
}
