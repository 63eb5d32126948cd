package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/althea-net/gravity-orchestrator/internal/config"
	"github.com/althea-net/gravity-orchestrator/internal/cosmosadapter"
	"github.com/althea-net/gravity-orchestrator/internal/logging"
	"github.com/althea-net/gravity-orchestrator/internal/metrics"
	"github.com/althea-net/gravity-orchestrator/internal/oracle"
	"github.com/althea-net/gravity-orchestrator/internal/relayer"
	"github.com/althea-net/gravity-orchestrator/internal/signer"
)

const (
	FlagBlockDelay = "block-delay"
	FlagStartBlock = "start-block"
	FlagOraclePoll = "oracle-poll-interval"
	FlagSignerPoll = "signer-poll-interval"
)

// StartCmd runs the Eth Oracle, Eth Signer, and (when enabled) Cosmos
// Relayer loops until interrupted, per §4 and the process surface named in
// §6.
func StartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start",
		Short: "Run the orchestrator's Eth Oracle, Eth Signer, and Cosmos Relayer loops",
		RunE:  runStart,
	}
	AddEthFlags(cmd)
	AddCosmosFlags(cmd)
	cmd.Flags().String(FlagConfig, DefaultConfigPath, "path to the orchestrator TOML config")
	cmd.Flags().String(FlagLogLevel, "info", "log level")
	cmd.Flags().Bool(FlagLogPretty, false, "use a human-readable console log writer")
	cmd.Flags().Uint64(FlagBlockDelay, 35, "Eth block confirmation depth before the oracle trusts a block")
	cmd.Flags().Uint64(FlagStartBlock, 0, "Eth block to resume the oracle from on a cold start")
	cmd.Flags().Duration(FlagOraclePoll, 13*time.Second, "Eth Oracle loop poll interval")
	cmd.Flags().Duration(FlagSignerPoll, 11*time.Second, "Eth Signer loop poll interval")
	return cmd
}

func runStart(cmd *cobra.Command, _ []string) error {
	if err := bindFlags(cmd); err != nil {
		return err
	}
	log := logging.Setup(viper.GetString(FlagLogLevel), viper.GetBool(FlagLogPretty), nil)

	cfg, err := config.Load(viper.GetString(FlagConfig))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	var rec metrics.Recorder = metrics.NewNoop()
	if cfg.Metrics.MetricsEnabled {
		var handler http.Handler
		rec, handler = metrics.NewPrometheus()
		srv := &http.Server{Addr: cfg.Metrics.MetricsBind, Handler: handler}
		go func() {
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Error().Err(err).Msg("metrics server stopped")
			}
		}()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	eth, err := dialEth(ctx, cmd)
	if err != nil {
		return fmt.Errorf("connect to eth: %w", err)
	}
	defer eth.Close()

	ethKey, err := ethKeyFromEnv()
	if err != nil {
		return err
	}

	conn, err := dialCosmos(cmd)
	if err != nil {
		return fmt.Errorf("connect to cosmos: %w", err)
	}
	query := cosmosadapter.NewQueryClient(conn)

	cosmosSigner, err := newSigner(cmd, conn)
	if err != nil {
		return fmt.Errorf("load cosmos key: %w", err)
	}

	params, err := query.Params(ctx)
	if err != nil {
		return fmt.Errorf("fetch bridge params: %w", err)
	}

	// Confirm this process's delegate key binding exists before any loop
	// starts (§2.3 "Delegate key registration"); there is no dedicated
	// binding query, so an orchestrator-scoped query that only resolves for
	// a bound address stands in for it.
	if _, err := query.LastEventNonceByAddr(ctx, cosmosSigner.Address()); err != nil {
		return fmt.Errorf("unrecoverable: no delegate key binding for orchestrator %s: %w", cosmosSigner.Address(), err)
	}

	oracleLoop := oracle.NewLoop(eth, query, cosmosSigner, oracle.Config{
		PollInterval: viper.GetDuration(FlagOraclePoll),
		BlockDelay:   viper.GetUint64(FlagBlockDelay),
		StartBlock:   viper.GetUint64(FlagStartBlock),
		Orchestrator: cosmosSigner.Address(),
	}, logging.WithComponent(log, "oracle"), rec)

	signerLoop := signer.NewLoop(query, cosmosSigner, ethKey, signer.Config{
		PollInterval: viper.GetDuration(FlagSignerPoll),
		GravityID:    params.GravityId,
		Orchestrator: cosmosSigner.Address(),
	}, logging.WithComponent(log, "signer"), rec)

	var wg sync.WaitGroup
	errCh := make(chan error, 3)
	run := func(name string, fn func(context.Context) error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fn(ctx); err != nil && ctx.Err() == nil {
				errCh <- fmt.Errorf("%s loop: %w", name, err)
			}
		}()
	}

	run("oracle", oracleLoop.Run)
	run("signer", signerLoop.Run)

	if cfg.Orchestrator.RelayerEnabled {
		relayerCfg := relayer.Config{
			Relaying:     cfg.Relayer,
			GravityID:    params.GravityId,
			CosmosSigner: cosmosSigner,
		}
		relayerLoop := relayer.NewLoop(query, eth, ethKey, relayerCfg, logging.WithComponent(log, "relayer"), rec)
		run("relayer", relayerLoop.Run)
	}

	go func() {
		wg.Wait()
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutting down")
	case err := <-errCh:
		if err != nil {
			stop()
			return err
		}
	}
	wg.Wait()
	return nil
}
