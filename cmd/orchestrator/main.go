// Command orchestrator runs the Gravity-style bridge orchestrator core: the
// Eth Oracle, Eth Signer, and Cosmos Relayer loops, plus the one-off CLI
// subcommands a validator operator needs around them. Flag layout follows
// the teacher's flag-const/AddXxxFlags idiom from
// e2e/interchaintestv8/cmd/main.go.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const (
	FlagEthRPC      = "eth-rpc"
	FlagCosmosGRPC  = "cosmos-grpc"
	FlagCosmosTLS   = "cosmos-grpc-tls"
	FlagCosmosChain = "cosmos-chain-id"
	FlagContract    = "contract-address"
	FlagConfig      = "config"
	FlagLogLevel    = "log-level"
	FlagLogPretty   = "log-pretty"

	DefaultConfigPath = "orchestrator.toml"

	EnvEthPrivateKey    = "ETH_PRIVATE_KEY"
	EnvCosmosPrivateKey = "COSMOS_PRIVATE_KEY"
)

func main() {
	if err := RootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
		os.Exit(1)
	}
}

func RootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "orchestrator",
		Short: "Gravity bridge validator orchestrator",
	}

	rootCmd.AddCommand(StartCmd())
	rootCmd.AddCommand(KeysCmd())
	rootCmd.AddCommand(ConfigCmd())
	rootCmd.AddCommand(SendToEthCmd())
	rootCmd.AddCommand(CancelSendToEthCmd())
	rootCmd.AddCommand(SubmitBadSignatureEvidenceCmd())

	return rootCmd
}

// AddEthFlags registers the Eth JSON-RPC connection flags shared by every
// subcommand that needs to reach the bridge contract.
func AddEthFlags(cmd *cobra.Command) {
	cmd.Flags().String(FlagEthRPC, "http://localhost:8545", "Ethereum JSON-RPC URL")
	cmd.Flags().String(FlagContract, "", "bridge contract address on Eth")
}

// AddCosmosFlags registers the Cosmos gRPC connection flags.
func AddCosmosFlags(cmd *cobra.Command) {
	cmd.Flags().String(FlagCosmosGRPC, "localhost:9090", "Cosmos gRPC endpoint")
	cmd.Flags().Bool(FlagCosmosTLS, false, "use TLS for the Cosmos gRPC connection")
	cmd.Flags().String(FlagCosmosChain, "gravity-bridge-1", "Cosmos chain ID")
}
