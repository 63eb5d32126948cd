package main

import (
	"context"
	"encoding/hex"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"

	"github.com/althea-net/gravity-orchestrator/internal/bridgetypes"
	"github.com/althea-net/gravity-orchestrator/internal/cosmosadapter"
)

// SendToEthCmd submits a withdrawal request, the supplemented user-facing
// flow named in SPEC_FULL.md §2.3.
func SendToEthCmd() *cobra.Command {
	var ethDest, denom, amount, fee string
	cmd := &cobra.Command{
		Use:   "send-to-eth",
		Short: "Submit a withdrawal from Cosmos to Eth",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !common.IsHexAddress(ethDest) {
				return fmt.Errorf("invalid --eth-dest: %q", ethDest)
			}
			amountInt, ok := new(big.Int).SetString(amount, 10)
			if !ok {
				return fmt.Errorf("invalid --amount: %q", amount)
			}
			feeInt, ok := new(big.Int).SetString(fee, 10)
			if !ok {
				return fmt.Errorf("invalid --bridge-fee: %q", fee)
			}

			conn, err := dialCosmos(cmd)
			if err != nil {
				return err
			}
			signer, err := newSigner(cmd, conn)
			if err != nil {
				return err
			}

			txHash, err := signer.SendToEth(context.Background(), common.HexToAddress(ethDest),
				cosmosadapter.NewCoin(denom, amountInt), cosmosadapter.NewCoin(denom, feeInt))
			if err != nil {
				return err
			}
			fmt.Printf("submitted MsgSendToEth, tx %s\n", txHash)
			return nil
		},
	}
	AddCosmosFlags(cmd)
	cmd.Flags().StringVar(&ethDest, "eth-dest", "", "destination Eth address")
	cmd.Flags().StringVar(&denom, "denom", "", "Cosmos denom to withdraw")
	cmd.Flags().StringVar(&amount, "amount", "", "amount to withdraw")
	cmd.Flags().StringVar(&fee, "bridge-fee", "0", "bridge fee, in the same denom")
	return cmd
}

// CancelSendToEthCmd cancels a pending (not yet batched) withdrawal.
func CancelSendToEthCmd() *cobra.Command {
	var txID uint64
	cmd := &cobra.Command{
		Use:   "cancel-send-to-eth",
		Short: "Cancel a pending withdrawal before it is batched",
		RunE: func(cmd *cobra.Command, _ []string) error {
			conn, err := dialCosmos(cmd)
			if err != nil {
				return err
			}
			signer, err := newSigner(cmd, conn)
			if err != nil {
				return err
			}
			txHash, err := signer.CancelSendToEth(context.Background(), txID)
			if err != nil {
				return err
			}
			fmt.Printf("submitted MsgCancelSendToEth, tx %s\n", txHash)
			return nil
		},
	}
	AddCosmosFlags(cmd)
	cmd.Flags().Uint64Var(&txID, "transaction-id", 0, "the pending send-to-eth transaction ID to cancel")
	return cmd
}

// SubmitBadSignatureEvidenceCmd reports a signature that verifies against a
// hash no valid valset, batch, or logic call ever produced, per §2.3
// "Bad-signature evidence submission".
func SubmitBadSignatureEvidenceCmd() *cobra.Command {
	var kind string
	var nonce, invalidationNonce uint64
	var tokenContract string
	var sigV uint8
	var sigR, sigS string

	cmd := &cobra.Command{
		Use:   "submit-bad-signature-evidence",
		Short: "Report a signature that does not validate against any real confirm hash",
		RunE: func(cmd *cobra.Command, _ []string) error {
			sig, err := parseSig(sigV, sigR, sigS)
			if err != nil {
				return err
			}

			ctx := context.Background()
			conn, err := dialCosmos(cmd)
			if err != nil {
				return err
			}
			query := cosmosadapter.NewQueryClient(conn)
			signer, err := newSigner(cmd, conn)
			if err != nil {
				return err
			}

			var subject any
			switch kind {
			case "valset":
				v, err := query.ValsetRequest(ctx, nonce)
				if err != nil {
					return err
				}
				if v == nil {
					return fmt.Errorf("no valset request at nonce %d", nonce)
				}
				subject = v
			case "batch":
				batches, err := query.OutgoingTxBatches(ctx)
				if err != nil {
					return err
				}
				b := findBatch(batches, nonce, tokenContract)
				if b == nil {
					return fmt.Errorf("no outgoing batch found for nonce %d / token %s", nonce, tokenContract)
				}
				subject = b
			case "logiccall":
				calls, err := query.OutgoingLogicCalls(ctx)
				if err != nil {
					return err
				}
				c := findLogicCall(calls, invalidationNonce)
				if c == nil {
					return fmt.Errorf("no outgoing logic call found for invalidation nonce %d", invalidationNonce)
				}
				subject = c
			default:
				return fmt.Errorf("--kind must be one of valset, batch, logiccall")
			}

			txHash, err := signer.SubmitBadSignatureEvidence(ctx, subject, sig)
			if err != nil {
				return err
			}
			fmt.Printf("submitted MsgSubmitBadSignatureEvidence, tx %s\n", txHash)
			return nil
		},
	}
	AddCosmosFlags(cmd)
	cmd.Flags().StringVar(&kind, "kind", "", "subject kind: valset, batch, or logiccall")
	cmd.Flags().Uint64Var(&nonce, "nonce", 0, "valset or batch nonce")
	cmd.Flags().Uint64Var(&invalidationNonce, "invalidation-nonce", 0, "logic call invalidation nonce")
	cmd.Flags().StringVar(&tokenContract, "token-contract", "", "batch's ERC20 token contract")
	cmd.Flags().Uint8Var(&sigV, "sig-v", 0, "signature recovery id")
	cmd.Flags().StringVar(&sigR, "sig-r", "", "signature r, hex-encoded")
	cmd.Flags().StringVar(&sigS, "sig-s", "", "signature s, hex-encoded")
	return cmd
}

func parseSig(v uint8, rHex, sHex string) (bridgetypes.EthSignature, error) {
	r, err := hex.DecodeString(trimHexPrefix(rHex))
	if err != nil || len(r) != 32 {
		return bridgetypes.EthSignature{}, fmt.Errorf("invalid --sig-r")
	}
	s, err := hex.DecodeString(trimHexPrefix(sHex))
	if err != nil || len(s) != 32 {
		return bridgetypes.EthSignature{}, fmt.Errorf("invalid --sig-s")
	}
	var sig bridgetypes.EthSignature
	sig.V = v
	copy(sig.R[:], r)
	copy(sig.S[:], s)
	return sig, nil
}

func findBatch(batches []*bridgetypes.TransactionBatch, nonce uint64, tokenContract string) *bridgetypes.TransactionBatch {
	for _, b := range batches {
		if b.Nonce == nonce && (tokenContract == "" || common.HexToAddress(tokenContract) == b.TokenContract) {
			return b
		}
	}
	return nil
}

func findLogicCall(calls []*bridgetypes.LogicCall, invalidationNonce uint64) *bridgetypes.LogicCall {
	for _, c := range calls {
		if c.InvalidationNonce == invalidationNonce {
			return c
		}
	}
	return nil
}
