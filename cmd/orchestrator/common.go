package main

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"google.golang.org/grpc"

	"github.com/althea-net/gravity-orchestrator/internal/cosmosadapter"
	"github.com/althea-net/gravity-orchestrator/internal/ethadapter"
)

// bindFlags layers environment variables over a command's flags via viper,
// so e.g. --cosmos-grpc can also be set as GRAVITY_ORCHESTRATOR_COSMOS_GRPC.
// Called at the top of every subcommand's RunE.
func bindFlags(cmd *cobra.Command) error {
	v := viper.GetViper()
	v.SetEnvPrefix("GRAVITY_ORCHESTRATOR")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v.BindPFlags(cmd.Flags())
}

func ethKeyFromEnv() (*ecdsa.PrivateKey, error) {
	hexKey := os.Getenv(EnvEthPrivateKey)
	if hexKey == "" {
		return nil, fmt.Errorf("%s is not set", EnvEthPrivateKey)
	}
	key, err := crypto.HexToECDSA(trimHexPrefix(hexKey))
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", EnvEthPrivateKey, err)
	}
	return key, nil
}

func cosmosKeyFromEnv() (string, error) {
	hexKey := os.Getenv(EnvCosmosPrivateKey)
	if hexKey == "" {
		return "", fmt.Errorf("%s is not set", EnvCosmosPrivateKey)
	}
	return trimHexPrefix(hexKey), nil
}

func trimHexPrefix(s string) string {
	if len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}

func dialEth(ctx context.Context, cmd *cobra.Command) (*ethadapter.Client, error) {
	if err := bindFlags(cmd); err != nil {
		return nil, err
	}
	rpc := viper.GetString(FlagEthRPC)
	contractHex := viper.GetString(FlagContract)
	if !common.IsHexAddress(contractHex) {
		return nil, fmt.Errorf("invalid %s: %q", FlagContract, contractHex)
	}
	return ethadapter.Dial(ctx, rpc, common.HexToAddress(contractHex))
}

func dialCosmos(cmd *cobra.Command) (*grpc.ClientConn, error) {
	if err := bindFlags(cmd); err != nil {
		return nil, err
	}
	return cosmosadapter.Dial(viper.GetString(FlagCosmosGRPC), viper.GetBool(FlagCosmosTLS))
}

func newSigner(cmd *cobra.Command, conn *grpc.ClientConn) (*cosmosadapter.Signer, error) {
	if err := bindFlags(cmd); err != nil {
		return nil, err
	}
	privKeyHex, err := cosmosKeyFromEnv()
	if err != nil {
		return nil, err
	}
	return cosmosadapter.NewSigner(conn, privKeyHex, viper.GetString(FlagCosmosChain))
}
