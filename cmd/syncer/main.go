package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"content_syncer/internal/config"
	"content_syncer/internal/httpapi"
	"content_syncer/internal/publisher"
	"content_syncer/internal/quota"
	"content_syncer/internal/scheduler"
	"content_syncer/internal/service"
	"content_syncer/internal/source/creatorhub"
	"content_syncer/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
		URL:        cfg.RabbitMQ.URL,
		Exchange:   cfg.RabbitMQ.Exchange,
		RoutingKey: cfg.RabbitMQ.RoutingKey,
		QueueName:  cfg.RabbitMQ.QueueName,
	}, logger)
	if err != nil {
		logger.Error("failed to connect to rabbitmq", "error", err)
		os.Exit(1)
	}
	defer rabbitMQ.Close()

	// Stores
	contentStore := postgres.NewContentStore(db)
	statsStore := postgres.NewContentStatsStore(db)
	sourceStore := postgres.NewSourceStore(db)
	recordStore := postgres.NewSyncRecordStore(db)
	quotaStore := postgres.NewQuotaStore(db)
	txManager := postgres.NewTransactionManager(db)

	// Quota budget tracker for the platform provider
	quotaTracker := quota.NewTracker(quotaStore, quota.Config{
		Provider:      cfg.Quota.Provider,
		WindowLimit:   cfg.Quota.WindowLimit,
		Window:        cfg.Quota.Window,
		SoftThreshold: cfg.Quota.SoftThreshold,
		HardThreshold: cfg.Quota.HardThreshold,
		Retention:     cfg.Quota.Retention,
		RatePerSecond: cfg.Quota.RatePerSecond,
		RateBurst:     cfg.Quota.RateBurst,
	}, logger)

	// Platform API client
	fetcher := creatorhub.New(creatorhub.Config{
		BaseURL: cfg.API.BaseURL,
		APIKey:  cfg.API.APIKey,
		Timeout: cfg.API.Timeout,
	}, logger)

	ingestor := service.NewContentIngestor(contentStore, statsStore, txManager, rabbitMQ, logger)

	orchestrator := service.NewOrchestrator(
		fetcher,
		sourceStore,
		recordStore,
		ingestor,
		quotaTracker,
		logger,
		service.OrchestratorConfig{
			PageSize:               cfg.API.PageSize,
			Freshness:              cfg.Sync.Freshness,
			StuckTimeout:           cfg.Sync.StuckTimeout,
			MaxConsecutiveFailures: cfg.Sync.MaxConsecutiveFailures,
			FetchQuotaUnits:        cfg.Quota.UnitsPerFetch,
			MetaQuotaUnits:         cfg.Quota.UnitsPerMeta,
		},
	)

	sched := scheduler.NewScheduler(orchestrator, quotaTracker, scheduler.RealClock(), scheduler.Config{
		CycleInterval:   cfg.Sync.Interval,
		SweepInterval:   cfg.Sync.SweepInterval,
		CleanupInterval: cfg.Sync.CleanupInterval,
	}, logger)

	api := httpapi.NewServer(orchestrator, quotaTracker, logger)
	httpServer := &http.Server{
		Addr:              cfg.HTTP.ListenAddr,
		Handler:           api.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	go func() {
		logger.Info("http api listening", "addr", cfg.HTTP.ListenAddr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			cancel()
		}
	}()

	logger.Info("starting content syncer",
		"provider", fetcher.Provider(),
		"interval", cfg.Sync.Interval,
		"page_size", cfg.API.PageSize,
	)

	err = sched.Start(ctx)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if shutdownErr := httpServer.Shutdown(shutdownCtx); shutdownErr != nil {
		logger.Error("http shutdown error", "error", shutdownErr)
	}

	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("scheduler error", "error", err)
		os.Exit(1)
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
