package main

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/spf13/cobra"
)

// KeysCmd groups the one-time delegate key setup subcommand named in
// SPEC_FULL.md §2.3.
func KeysCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Manage orchestrator delegate keys",
	}
	cmd.AddCommand(registerOrchestratorAddressCmd())
	return cmd
}

func registerOrchestratorAddressCmd() *cobra.Command {
	var validator string
	cmd := &cobra.Command{
		Use:   "register-orchestrator-address",
		Short: "Bind a validator operator address to this orchestrator's Cosmos and Eth keys",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if validator == "" {
				return fmt.Errorf("--validator is required")
			}
			ctx := context.Background()

			conn, err := dialCosmos(cmd)
			if err != nil {
				return err
			}
			signer, err := newSigner(cmd, conn)
			if err != nil {
				return err
			}
			ethKey, err := ethKeyFromEnv()
			if err != nil {
				return err
			}

			txHash, err := signer.SetOrchestratorAddress(ctx, validator, crypto.PubkeyToAddress(ethKey.PublicKey))
			if err != nil {
				return err
			}
			fmt.Printf("submitted MsgSetOrchestratorAddress, tx %s\n", txHash)
			return nil
		},
	}
	AddCosmosFlags(cmd)
	cmd.Flags().StringVar(&validator, "validator", "", "bech32 validator operator address")
	return cmd
}
