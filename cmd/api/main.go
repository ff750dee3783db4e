package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"private-payroll-gateway/config"
	httpHandler "private-payroll-gateway/internal/adapter/http/handler"
	pgStorage "private-payroll-gateway/internal/adapter/storage/postgres"
	redisStorage "private-payroll-gateway/internal/adapter/storage/redis"
	"private-payroll-gateway/internal/adapter/walletrpc"
	"private-payroll-gateway/internal/core/ports"
	"private-payroll-gateway/internal/service"
	"private-payroll-gateway/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Str("program", cfg.Ledger.ProgramID).
		Msg("Starting Private Payroll Gateway")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize stores
	journalRepo := pgStorage.NewJournalRepo(pool)
	consumedRegistry := redisStorage.NewConsumedRegistry(rdb)

	// Wallet bridge client. The bridge holds the keys; this process never
	// sees them.
	wallet := walletrpc.New(
		cfg.Wallet.BaseURL,
		cfg.Wallet.APIKey,
		&http.Client{Timeout: cfg.Wallet.RequestTimeout},
		log,
	)

	// Initialize core services
	normalizer := service.NewNormalizer(log)
	recordSvc := service.NewRecordService(wallet, normalizer, cfg.Ledger.ProgramID, log)
	tracker := service.NewTracker(wallet, log)
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)

	payrollSvc := service.NewPayrollService(
		wallet,
		recordSvc,
		tracker,
		journalRepo,
		consumedRegistry,
		service.PayrollConfig{
			ProgramID:       cfg.Ledger.ProgramID,
			Fee:             cfg.Ledger.Fee,
			PrivateFee:      cfg.Ledger.PrivateFee,
			PollMaxAttempts: cfg.Ledger.PollMaxAttempts,
			PollInterval:    cfg.Ledger.PollInterval,
			ConsumedTTL:     cfg.Ledger.ConsumedTTL,
		},
		log,
	)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		PayrollSvc:     payrollSvc,
		RecordSvc:      recordSvc,
		Wallet:         wallet,
		Journal:        journalRepo,
		TokenSvc:       tokenSvc,
		OperatorName:   cfg.Auth.OperatorName,
		OperatorKey:    cfg.Auth.OperatorKey,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
