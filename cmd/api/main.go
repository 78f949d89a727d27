package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/feral-file/ticket-marketplace/internal/adapter"
	"github.com/feral-file/ticket-marketplace/internal/api/middleware"
	"github.com/feral-file/ticket-marketplace/internal/api/server"
	"github.com/feral-file/ticket-marketplace/internal/config"
	"github.com/feral-file/ticket-marketplace/internal/logger"
	"github.com/feral-file/ticket-marketplace/internal/marketplace"
	"github.com/feral-file/ticket-marketplace/internal/messaging"
	"github.com/feral-file/ticket-marketplace/internal/providers/ethereum"
	"github.com/feral-file/ticket-marketplace/internal/providers/jetstream"
	"github.com/feral-file/ticket-marketplace/internal/storage"
	"github.com/feral-file/ticket-marketplace/internal/store"
	"github.com/feral-file/ticket-marketplace/internal/wallet"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		Service:         "ticket-marketplace-api",
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "ticket-marketplace-api",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting ticket marketplace API")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
	}
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	dataStore := store.NewPGStore(db)
	logger.InfoCtx(ctx, "Connected to database", zap.String("host", cfg.Database.Host))

	// Connect to the chain
	ethClient, err := adapter.NewEthClientDialer().Dial(ctx, cfg.Ethereum.RPCURL)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to dial Ethereum RPC", zap.Error(err), zap.String("rpc_url", cfg.Ethereum.RPCURL))
	}
	defer ethClient.Close()

	signer, err := wallet.NewKeySigner(cfg.Ethereum.PrivateKey)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to load wallet key", zap.Error(err))
	}

	contract, err := ethereum.NewTicketContract(ethereum.Config{
		ContractAddress:     common.HexToAddress(cfg.Ethereum.ContractAddress),
		GasLimit:            cfg.Ethereum.GasLimit,
		StartBlock:          cfg.Ethereum.StartBlock,
		LogStepSize:         cfg.Ethereum.LogStepSize,
		ReceiptPollInterval: cfg.Ethereum.ReceiptPollInterval,
		ReceiptTimeout:      cfg.Ethereum.ReceiptTimeout,
	}, ethClient, signer)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create ticket contract binding", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Ticket contract ready",
		zap.String("contract", contract.Address().Hex()),
		zap.String("account", contract.Account().Hex()),
		zap.Int64("chain_id", cfg.Ethereum.ChainID))

	// Storage clients
	httpClient := adapter.NewHTTPClient(cfg.Storage.HTTPTimeout, adapter.RetryConfig{})
	jsonAdapter := adapter.NewJSON()
	storageConfig := &storage.Config{
		APIURL:       cfg.Storage.APIURL,
		APIKey:       cfg.Storage.APIKey,
		IPFSGateways: cfg.Storage.IPFSGateways,
	}
	if storageConfig.APIKey == "" {
		logger.WarnCtx(ctx, "Storage API key not configured, ticket uploads will be rejected")
	}

	// Event publisher
	var publisher messaging.Publisher
	if cfg.NATS.URL != "" {
		publisher, err = jetstream.NewPublisher(jetstream.Config{
			URL:            cfg.NATS.URL,
			SubjectPrefix:  cfg.NATS.SubjectPrefix,
			MaxReconnects:  cfg.NATS.MaxReconnects,
			ReconnectWait:  cfg.NATS.ReconnectWait,
			ConnectionName: cfg.NATS.ConnectionName,
		}, adapter.NewNatsJetStream(), jsonAdapter)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to connect to NATS", zap.Error(err), zap.String("url", cfg.NATS.URL))
		}
		logger.InfoCtx(ctx, "Connected to NATS", zap.String("url", cfg.NATS.URL))
	} else {
		logger.WarnCtx(ctx, "NATS URL not configured, ticket events will not be published")
		publisher = messaging.NewNopPublisher()
	}
	defer publisher.Close()

	exec := marketplace.NewExecutor(
		marketplace.Config{
			ChainID:   cfg.Ethereum.ChainID,
			PoolSize:  cfg.Worker.WorkerPoolSize,
			QueueSize: cfg.Worker.WorkerQueueSize,
		},
		contract,
		storage.NewUploader(httpClient, jsonAdapter, storageConfig),
		storage.NewRetriever(httpClient, storageConfig),
		dataStore,
		publisher,
		adapter.NewClock(),
	)
	defer exec.Close()

	srv := server.New(server.Config{
		Debug:          cfg.Debug,
		Host:           cfg.Server.Host,
		Port:           cfg.Server.Port,
		ReadTimeout:    time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout:   time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:    time.Duration(cfg.Server.IdleTimeout) * time.Second,
		MaxUploadBytes: cfg.Server.MaxUploadBytes,
		CORSOrigins:    cfg.Server.CORSOrigins,
		Auth: middleware.AuthConfig{
			JWTPublicKey: cfg.Auth.JWTPublicKey,
			APIKeys:      cfg.Auth.APIKeys,
		},
	}, exec)

	// Start server in a goroutine
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(ctx); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
	}
	cancel()

	// In-flight writes may be waiting for a receipt
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err, zap.String("component", "server"))
	}

	// Use non-context logger for final message since original ctx is canceled
	logger.Info("API server stopped")
}
