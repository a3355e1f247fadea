package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"swap-marketplace/internal/config"
	"swap-marketplace/internal/database"
	"swap-marketplace/internal/handler"
	"swap-marketplace/internal/logger"
	"swap-marketplace/internal/notifier"
	"swap-marketplace/internal/repository"
	"swap-marketplace/internal/repository/postgres"
	"swap-marketplace/internal/service"
	"swap-marketplace/internal/worker"

	"github.com/joho/godotenv"

	_ "swap-marketplace/docs"
)

// @title Swap Marketplace API
// @version 1.0
// @description Credit ledger and swap-request backend for a peer-to-peer item swap marketplace
// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Setup logger
	log := logger.New(true)

	// Optional .env for local development; real deployments set env vars
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment")
	}

	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	// Initialize database connection
	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbPool, err := database.NewPool(dbCtx, cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer dbPool.Close()

	if err := database.Migrate(cfg.Database); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Repositories
	accountRepo := postgres.NewAccountRepository(dbPool)
	ledgerRepo := postgres.NewLedgerRepository(dbPool)
	itemRepo := postgres.NewItemRepository(dbPool)
	swapRepo := postgres.NewSwapRequestRepository(dbPool)

	// Transaction manager used by the credit service. Sequential mode is for
	// stores without multi-statement transactions; writes then commit one by
	// one, ledger entry first, so a crash leaves an auditable trail.
	var dbManager repository.DBManager = postgres.NewTransactionManager(dbPool)
	if cfg.Database.SequentialWrites {
		dbManager = postgres.NewSequentialManager()
		log.Warn().Msg("sequential write mode enabled, ledger and balance writes commit individually")
	}

	// Services
	creditService := service.NewCreditService(accountRepo, ledgerRepo, dbManager, log)
	swapService := service.NewSwapService(itemRepo, swapRepo, creditService, notifier.NewLogNotifier(log), log)
	itemService := service.NewItemService(itemRepo, creditService, log)

	// Root context to be canceled on SIGINT / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Worker auditing cached balances against the ledger
	reconcileWorker := worker.NewReconcileWorker(
		creditService,
		ledgerRepo,
		cfg.Worker.ReconcileInterval,
		cfg.Worker.ReconcileBatch,
		cfg.Worker.ReconcileRepair,
		log,
	)
	reconcileWorker.Start(ctx)
	defer reconcileWorker.Stop()

	// http handler
	h := handler.NewHandler(creditService, swapService, itemService, log)
	router := h.SetupRoutes()

	// http server configuration
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	log.Info().Str("port", cfg.Server.Port).Msg("Server started")

	// Wait for shutdown signal
	<-ctx.Done()
	log.Info().Msg("Shutdown signal received, starting graceful shutdown...")

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server shutdown error")
	} else {
		log.Info().Msg("HTTP server stopped gracefully")
	}

	log.Info().Msg("Shutdown complete")
}
