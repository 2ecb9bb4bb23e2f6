package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/wagerworks/parimutuel/internal/betpool"
	"github.com/wagerworks/parimutuel/internal/charsheet"
	"github.com/wagerworks/parimutuel/internal/config"
	"github.com/wagerworks/parimutuel/internal/database"
	"github.com/wagerworks/parimutuel/internal/database/postgres"
	"github.com/wagerworks/parimutuel/internal/event"
	"github.com/wagerworks/parimutuel/internal/eventlog"
	"github.com/wagerworks/parimutuel/internal/metrics"
	"github.com/wagerworks/parimutuel/internal/server"
	"github.com/wagerworks/parimutuel/internal/wallet"
)

const (
	dbMaxConns       = 10
	dbMaxIdle        = 30 * time.Minute
	dbMaxLife        = time.Hour
	shutdownTimeout  = 15 * time.Second
	deadLetterPath   = "dead_letter_events.jsonl"
	cleanupInterval  = 24 * time.Hour
	cleanupRunBudget = 5 * time.Minute
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)
	log := slog.Default()

	dbPool, err := database.NewPool(cfg.GetDBConnString(), dbMaxConns, dbMaxIdle, dbMaxLife)
	if err != nil {
		log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	if err := database.Migrate(dbPool); err != nil {
		log.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Event bus with retry and dead-letter fallback
	bus := event.NewMemoryBus()
	publisher := event.NewResilientPublisher(bus, event.ResilientConfig{
		MaxRetries:     event.RetryMaxAttempts,
		RetryDelay:     event.RetryInitialDelaySeconds * time.Second,
		DeadLetterPath: deadLetterPath,
	})

	// Repositories
	betpoolRepo := postgres.NewBetpoolRepository(dbPool)
	walletRepo := postgres.NewWalletRepository(dbPool)
	charsheetRepo := postgres.NewCharsheetRepository(dbPool)
	eventLogRepo := postgres.NewEventLogRepository(dbPool)

	// Services
	betpoolService, err := betpool.NewService(betpoolRepo, publisher, cfg.ClaimMode, cfg.MaxFeeBps)
	if err != nil {
		log.Error("Failed to create betpool service", "error", err)
		os.Exit(1)
	}
	walletService := wallet.NewService(walletRepo)
	charsheetService := charsheet.NewService(charsheetRepo)
	eventlogService := eventlog.NewService(eventLogRepo)

	// Subscribers: audit log and metrics both listen to every engine event
	if err := eventlogService.Subscribe(bus); err != nil {
		log.Error("Failed to subscribe event logger", "error", err)
		os.Exit(1)
	}
	if err := metrics.NewEventMetricsCollector().Register(bus); err != nil {
		log.Error("Failed to register metrics collector", "error", err)
		os.Exit(1)
	}

	// Periodic audit log cleanup
	cleanupCtx, cancelCleanup := context.WithCancel(context.Background())
	defer cancelCleanup()
	go runCleanupLoop(cleanupCtx, eventlogService)

	srv := server.NewServer(cfg.Port, cfg.APIKey, dbPool, betpoolService, walletService, charsheetService, eventlogService)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	log.Info("Service started", "port", cfg.Port, "claim_mode", cfg.ClaimMode)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		log.Error("Server stopped unexpectedly", "error", err)
	case sig := <-stop:
		log.Info("Shutdown signal received", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		log.Error("Server shutdown failed", "error", err)
	}
	if err := publisher.Shutdown(shutdownCtx); err != nil {
		log.Warn("Event publisher shutdown incomplete", "error", err)
	}

	log.Info("Shutdown complete")
}

// runCleanupLoop periodically trims the audit log to its retention window
func runCleanupLoop(ctx context.Context, svc eventlog.Service) {
	job := eventlog.NewCleanupJob(svc, eventlog.DefaultRetentionDays)
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			runCtx, cancel := context.WithTimeout(ctx, cleanupRunBudget)
			if err := job.Process(runCtx); err != nil {
				slog.Default().Warn("Audit log cleanup failed", "error", err)
			}
			cancel()
		}
	}
}
