// Command orderbook-aggregator runs the merged Bitstamp/Binance order-book
// aggregator and serves it over the BookSummary streaming RPC.
package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	flag "github.com/spf13/pflag"
	"google.golang.org/grpc"

	"github.com/fd1az/orderbook-aggregator/api/orderbook"
	"github.com/fd1az/orderbook-aggregator/internal/aggregator"
	"github.com/fd1az/orderbook-aggregator/internal/broadcast"
	"github.com/fd1az/orderbook-aggregator/internal/config"
	"github.com/fd1az/orderbook-aggregator/internal/health"
	"github.com/fd1az/orderbook-aggregator/internal/logger"
	"github.com/fd1az/orderbook-aggregator/internal/metrics"
	"github.com/fd1az/orderbook-aggregator/internal/rpcserver"
	"github.com/fd1az/orderbook-aggregator/internal/wsconn"
)

var version = "dev"

func main() {
	fs := flag.NewFlagSet("orderbook-aggregator", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to configuration file")
	config.Flags(fs)
	fs.Parse(os.Args[1:])

	cfg, err := config.Load(*configPath, fs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg.App.LogLevel)
	log := logger.Get()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		log.Info().Str("signal", sig.String()).Msg("received shutdown signal")
		cancel()
	}()

	if err := run(ctx, cfg, version); err != nil {
		log.Error().Err(err).Msg("exited with error")
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, version string) error {
	log := logger.Get()

	reg := metrics.NewRegistry(prometheus.DefaultRegisterer)

	healthServer := health.NewServer(cfg.Telemetry.HealthPort, version)
	if err := healthServer.Start(); err != nil {
		log.Warn().Err(err).Msg("failed to start health server")
	}
	defer healthServer.Stop(ctx)

	go func() {
		if err := metrics.Serve(cfg.Telemetry.MetricsAddr, prometheus.DefaultGatherer); err != nil {
			log.Warn().Err(err).Msg("metrics server exited")
		}
	}()

	hub := broadcast.NewHub[*orderbook.Summary](cfg.RPC.BroadcastCapacity)

	bitstampClient := wsconn.New(
		wsconn.DefaultConfig(aggregator.BitstampURL(), "bitstamp"),
		reg.ConnectionState.WithLabelValues("bitstamp"),
		reg.MessagesReceived.WithLabelValues("bitstamp"),
		nil,
	)
	binanceClient := wsconn.New(
		wsconn.DefaultConfig(aggregator.BinanceURL(cfg.App.Symbol), "binance"),
		reg.ConnectionState.WithLabelValues("binance"),
		reg.MessagesReceived.WithLabelValues("binance"),
		nil,
	)

	healthServer.RegisterCheck("bitstamp", func(ctx context.Context) (bool, string) {
		return bitstampClient.IsConnected(), string(bitstampClient.State())
	})
	healthServer.RegisterCheck("binance", func(ctx context.Context) (bool, string) {
		return binanceClient.IsConnected(), string(binanceClient.State())
	})

	task := aggregator.New(cfg.App.Symbol, bitstampClient, binanceClient, reg.SummariesSent, *log)

	lis, err := net.Listen("tcp", cfg.RPC.BindAddr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", cfg.RPC.BindAddr, err)
	}

	grpcServer := grpc.NewServer()
	orderbook.RegisterOrderbookAggregatorServer(grpcServer, rpcserver.New(hub, reg, *log))

	errCh := make(chan error, 2)

	go func() {
		log.Info().Str("addr", cfg.RPC.BindAddr).Msg("serving BookSummary RPC")
		errCh <- grpcServer.Serve(lis)
	}()

	go func() {
		errCh <- task.Run(ctx, hub)
	}()

	select {
	case err := <-errCh:
		grpcServer.GracefulStop()
		return err
	case <-ctx.Done():
		grpcServer.GracefulStop()
		return ctx.Err()
	}
}
