package cosmosadapter

import (
	"context"
	"encoding/hex"
	"fmt"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/tx"
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	"github.com/cosmos/cosmos-sdk/crypto/keys/secp256k1"
	cryptotypes "github.com/cosmos/cosmos-sdk/crypto/types"
	"github.com/cosmos/cosmos-sdk/std"
	sdk "github.com/cosmos/cosmos-sdk/types"
	txtypes "github.com/cosmos/cosmos-sdk/types/tx"
	"github.com/cosmos/cosmos-sdk/types/tx/signing"
	xauthsigning "github.com/cosmos/cosmos-sdk/x/auth/signing"
	authtx "github.com/cosmos/cosmos-sdk/x/auth/tx"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"google.golang.org/grpc"

	"github.com/althea-net/gravity-orchestrator/internal/errs"
	"github.com/althea-net/gravity-orchestrator/internal/gravitypb"
	"github.com/althea-net/gravity-orchestrator/internal/retrywrap"
)

const defaultGasLimit = uint64(300_000)

// newTxConfig builds a standalone client.TxConfig without pulling in a full
// app: an interface registry carrying the standard crypto types plus every
// bridge module message this orchestrator ever signs, wrapped in a proto
// codec, grounded on cmd/transfer_from_cosmos_to_eth.go's use of
// app.TxConfig() (here built directly instead of through a simapp, since
// this binary never needs the rest of an app's module set).
func newTxConfig() client.TxConfig {
	registry := codectypes.NewInterfaceRegistry()
	std.RegisterInterfaces(registry)
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&gravitypb.MsgSetOrchestratorAddress{},
		&gravitypb.MsgSendToCosmosClaim{},
		&gravitypb.MsgBatchSendToEthClaim{},
		&gravitypb.MsgErc20DeployedClaim{},
		&gravitypb.MsgLogicCallExecutedClaim{},
		&gravitypb.MsgValsetUpdatedClaim{},
		&gravitypb.MsgValsetConfirm{},
		&gravitypb.MsgConfirmBatch{},
		&gravitypb.MsgConfirmLogicCall{},
		&gravitypb.MsgSendToEth{},
		&gravitypb.MsgCancelSendToEth{},
		&gravitypb.MsgRequestBatch{},
		&gravitypb.MsgSubmitBadSignatureEvidence{},
	)
	protoCodec := codec.NewProtoCodec(registry)
	return authtx.NewTxConfig(protoCodec, authtx.DefaultSignModes)
}

// Signer builds, signs, and broadcasts Cosmos transactions carrying bridge
// module messages on behalf of one orchestrator delegate key, grounded on
// cmd/transfer_from_cosmos_to_eth.go's TxBuilder/SignWithPrivKey/BroadcastTx
// sequence.
type Signer struct {
	conn     *grpc.ClientConn
	txConfig client.TxConfig
	privKey  cryptotypes.PrivKey
	address  sdk.AccAddress
	chainID  string
	gasLimit uint64
}

// NewSigner constructs a Signer from a hex-encoded secp256k1 private key,
// grounded on cmd/utils/cosmos_helpers.go CosmosPrivateKeyFromHex.
func NewSigner(conn *grpc.ClientConn, privateKeyHex, chainID string) (*Signer, error) {
	keyBytes, err := hex.DecodeString(privateKeyHex)
	if err != nil {
		return nil, fmt.Errorf("cosmosadapter: invalid private key hex: %w", err)
	}
	privKey := &secp256k1.PrivKey{Key: keyBytes}
	return &Signer{
		conn:     conn,
		txConfig: newTxConfig(),
		privKey:  privKey,
		address:  sdk.AccAddress(privKey.PubKey().Address()),
		chainID:  chainID,
		gasLimit: defaultGasLimit,
	}, nil
}

// Address returns the bech32 Cosmos address this signer broadcasts from.
func (s *Signer) Address() string {
	return s.address.String()
}

// BroadcastMsgs signs and submits one transaction carrying msgs, in the
// order given, and waits for the node's synchronous CheckTx result. It does
// not wait for the transaction to be included in a block; callers that need
// that should poll GetTx separately.
func (s *Signer) BroadcastMsgs(ctx context.Context, msgs ...sdk.Msg) (string, error) {
	if len(msgs) == 0 {
		return "", errs.Validation(nil, "BroadcastMsgs called with no messages")
	}

	accountClient := authtypes.NewQueryClient(s.conn)
	var accountRes *authtypes.QueryAccountInfoResponse
	err := retrywrap.Do(ctx, func() error {
		var err error
		accountRes, err = accountClient.AccountInfo(ctx, &authtypes.QueryAccountInfoRequest{Address: s.address.String()})
		return err
	})
	if err != nil {
		return "", errs.RPC(err, "fetch account info for %s", s.address.String())
	}

	txBuilder := s.txConfig.NewTxBuilder()
	txBuilder.SetGasLimit(s.gasLimit)
	if err := txBuilder.SetMsgs(msgs...); err != nil {
		return "", errs.Validation(err, "set messages on tx builder")
	}

	signMode := signing.SignMode(s.txConfig.SignModeHandler().DefaultMode())
	sigV2 := signing.SignatureV2{
		PubKey: s.privKey.PubKey(),
		Data: &signing.SingleSignatureData{
			SignMode:  signMode,
			Signature: nil,
		},
		Sequence: accountRes.Info.Sequence,
	}
	if err := txBuilder.SetSignatures(sigV2); err != nil {
		return "", errs.Unrecoverable(err, "set placeholder signature")
	}

	signerData := xauthsigning.SignerData{
		Address:       s.address.String(),
		ChainID:       s.chainID,
		AccountNumber: accountRes.Info.AccountNumber,
	}
	sigV2, err = tx.SignWithPrivKey(
		ctx,
		signMode,
		signerData,
		txBuilder,
		s.privKey,
		s.txConfig,
		accountRes.Info.Sequence,
	)
	if err != nil {
		return "", errs.Unrecoverable(err, "sign transaction")
	}
	if err := txBuilder.SetSignatures(sigV2); err != nil {
		return "", errs.Unrecoverable(err, "set final signature")
	}

	txBytes, err := s.txConfig.TxEncoder()(txBuilder.GetTx())
	if err != nil {
		return "", errs.Unrecoverable(err, "encode transaction")
	}

	txClient := txtypes.NewServiceClient(s.conn)
	var broadcastResp *txtypes.BroadcastTxResponse
	err = retrywrap.Do(ctx, func() error {
		var err error
		broadcastResp, err = txClient.BroadcastTx(ctx, &txtypes.BroadcastTxRequest{
			Mode:    txtypes.BroadcastMode_BROADCAST_MODE_SYNC,
			TxBytes: txBytes,
		})
		return err
	})
	if err != nil {
		return "", errs.RPC(err, "broadcast transaction")
	}
	if broadcastResp.TxResponse.Code != 0 {
		return broadcastResp.TxResponse.TxHash, errs.Recoverable(nil,
			"tx %s failed with code %d: %s",
			broadcastResp.TxResponse.TxHash, broadcastResp.TxResponse.Code, broadcastResp.TxResponse.RawLog,
		)
	}
	return broadcastResp.TxResponse.TxHash, nil
}
