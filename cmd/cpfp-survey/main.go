package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/rpcclient"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/cpfp-survey/internal/bitcoin"
	"github.com/goodnatureofminers/cpfp-survey/internal/cpfp"
	"github.com/goodnatureofminers/cpfp-survey/internal/metrics"
	"github.com/goodnatureofminers/cpfp-survey/internal/repository/clickhouse"
	"github.com/goodnatureofminers/cpfp-survey/internal/scan"
	"github.com/goodnatureofminers/cpfp-survey/pkg/safe"
)

const (
	txFetchInline = "inline"
	txFetchPerTx  = "per-tx"
)

type config struct {
	StartHeight   uint64 `long:"start-height" env:"CPFP_SURVEY_START_HEIGHT" description:"first block height to scan (inclusive)" required:"true"`
	StopHeight    uint64 `long:"stop-height" env:"CPFP_SURVEY_STOP_HEIGHT" description:"last block height to scan (inclusive)" required:"true"`
	RPCURL        string `long:"rpc-url" env:"CPFP_SURVEY_RPC_URL" description:"Bitcoin RPC URL" default:"http://127.0.0.1:8332"`
	RPCUser       string `long:"rpc-user" env:"CPFP_SURVEY_RPC_USER" description:"Bitcoin RPC username"`
	RPCPassword   string `long:"rpc-password" env:"CPFP_SURVEY_RPC_PASSWORD" description:"Bitcoin RPC password"`
	RPCCookiePath string `long:"rpc-cookie-path" env:"CPFP_SURVEY_RPC_COOKIE_PATH" description:"cookie file for RPC auth when user/password are unset (defaults to the bitcoin data dir cookie)"`
	RPCRateLimit  int    `long:"rpc-rate-limit" env:"CPFP_SURVEY_RPC_RATE_LIMIT" description:"max RPC requests per second, 0 for unlimited" default:"0"`
	TxFetch       string `long:"tx-fetch" env:"CPFP_SURVEY_TX_FETCH" description:"transaction fetch strategy" choice:"inline" choice:"per-tx" default:"inline"`
	Workers       int    `long:"workers" env:"CPFP_SURVEY_WORKERS" description:"number of concurrent block fetchers, 0 for the CPU count" default:"0"`
	Network       string `long:"network" env:"CPFP_SURVEY_NETWORK" description:"network name" default:"mainnet"`
	ClickhouseDSN string `long:"clickhouse-dsn" env:"CPFP_SURVEY_CLICKHOUSE_DSN" description:"ClickHouse DSN for persisting per-block stats (optional)"`
	MetricsAddr   string `long:"metrics-addr" env:"CPFP_SURVEY_METRICS_ADDR" description:"address for the metrics server (optional)"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if cfg.StartHeight > cfg.StopHeight {
		logger.Fatal("start height is above stop height",
			zap.Uint64("start", cfg.StartHeight),
			zap.Uint64("stop", cfg.StopHeight),
		)
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("cpfp survey failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	if cfg.MetricsAddr != "" {
		startMetricsServer(ctx, cfg.MetricsAddr, logger)
	}

	node, err := newRPCClient(cfg)
	if err != nil {
		return fmt.Errorf("init bitcoin rpc client: %w", err)
	}
	defer func() {
		node.Shutdown()
		node.WaitForShutdown()
	}()

	client, err := bitcoin.NewClient(node, metrics.NewRPCClient(cfg.Network), cfg.RPCRateLimit, logger)
	if err != nil {
		return fmt.Errorf("init node client: %w", err)
	}

	// The first call doubles as the warmup gate: a node still verifying
	// blocks keeps the scan from starting until it can actually serve.
	tip, err := client.GetBlockCount(ctx)
	if err != nil {
		return fmt.Errorf("get node block count: %w", err)
	}
	tipHeight, err := safe.Uint64(tip)
	if err != nil {
		return fmt.Errorf("node block count %d: %w", tip, err)
	}
	if cfg.StopHeight > tipHeight {
		return fmt.Errorf("stop height %d is above the node tip %d", cfg.StopHeight, tipHeight)
	}

	var source scan.BlockSource
	switch cfg.TxFetch {
	case txFetchInline:
		source = bitcoin.NewInlineSource(client)
	case txFetchPerTx:
		source = bitcoin.NewPerTxSource(client)
	default:
		return fmt.Errorf("unknown tx fetch strategy %q", cfg.TxFetch)
	}

	var writer scan.StatsWriter = scan.NopStatsWriter{}
	if cfg.ClickhouseDSN != "" {
		repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, cfg.Network, metrics.NewClickhouseRepository(cfg.Network))
		if err != nil {
			return fmt.Errorf("init clickhouse repository: %w", err)
		}
		writer = scan.NewBatchedStatsWriter(repo, logger)
	}

	scanner, err := scan.NewScanner(
		source,
		writer,
		metrics.NewScanner(cfg.Network),
		cfg.Workers,
		os.Stderr,
		logger,
	)
	if err != nil {
		return fmt.Errorf("init scanner: %w", err)
	}

	summary, err := scanner.Run(ctx, cfg.StartHeight, cfg.StopHeight)
	if err != nil {
		return err
	}

	return cpfp.WriteReport(os.Stdout, cfg.StartHeight, cfg.StopHeight, summary)
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}

func newRPCClient(cfg config) (*rpcclient.Client, error) {
	parsed, err := url.Parse(cfg.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("parse rpc url: %w", err)
	}
	if parsed.Scheme != "http" {
		return nil, fmt.Errorf("rpc url scheme %q not supported, use http", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("rpc url missing host")
	}

	conn := &rpcclient.ConnConfig{
		Host:         parsed.Host,
		User:         cfg.RPCUser,
		Pass:         cfg.RPCPassword,
		HTTPPostMode: true,
		DisableTLS:   true,
	}
	if cfg.RPCUser == "" && cfg.RPCPassword == "" {
		conn.CookiePath = cfg.RPCCookiePath
		if conn.CookiePath == "" {
			conn.CookiePath = filepath.Join(btcutil.AppDataDir("bitcoin", false), ".cookie")
		}
	}

	return rpcclient.New(conn, nil)
}
