package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"damsync/internal/config"
	"damsync/internal/publisher"
	"damsync/internal/scheduler"
	"damsync/internal/service"
	"damsync/internal/source/bork"
	"damsync/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	delay := flag.Int("delay", 0, "delay each search call by this number of seconds")
	skip := flag.Int("skip", 0, "skip this number of items")
	watch := flag.Bool("watch", false, "keep running, syncing at the configured interval")
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

	var events service.Publisher
	if cfg.RabbitMQ.Enabled {
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
		events = rabbitMQ
	}

	assetStore := postgres.NewAssetStore(db)
	shapeStore := postgres.NewShapeStore(db)
	siteStore := postgres.NewSiteStore(db)
	runStore := postgres.NewSyncRunStore(db)
	txManager := postgres.NewTransactionManager(db)

	client := bork.New(bork.Config{
		BaseURL:  cfg.API.BaseURL,
		Token:    cfg.API.Token,
		Username: cfg.API.Username,
		Timeout:  cfg.API.Timeout,
		Retry: bork.RetryPolicy{
			MaxAttempts:    cfg.API.Retry.MaxAttempts,
			InitialBackoff: cfg.API.Retry.InitialBackoff,
			MaxBackoff:     cfg.API.Retry.MaxBackoff,
		},
	}, logger)

	processor := service.NewProcessor(
		client,
		assetStore,
		shapeStore,
		siteStore,
		txManager,
		events,
		logger,
	)

	syncService := service.NewSyncService(
		client,
		processor,
		siteStore,
		runStore,
		assetStore,
		shapeStore,
		events,
		logger,
		service.Options{
			Site:     cfg.API.Site,
			Skip:     *skip,
			PageSize: cfg.API.PageSize,
			Delay:    time.Duration(*delay) * time.Second,
			Workers:  cfg.Sync.Workers,
		},
	)
	syncService.OnProgress(progressPrinter(os.Stdout))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	logger.Info("starting asset syncer",
		"source", client.Name(),
		"site", cfg.API.Site,
		"skip", *skip,
		"delay", *delay,
	)

	if *watch {
		sched := scheduler.NewScheduler(syncService, cfg.Sync.Interval, cfg.Sync.RunTimeout, logger)
		if err := sched.Start(ctx); err != nil && err != context.Canceled {
			logger.Error("scheduler error", "error", err)
			os.Exit(1)
		}
		return
	}

	stats, err := syncService.Sync(ctx)
	if err != nil {
		logger.Error("sync failed", "error", err)
		os.Exit(1)
	}
	logger.Info("done",
		"run", stats.RunUUID,
		"items", stats.Items,
		"duration", stats.Duration,
	)
}

// progressPrinter renders an in-place progress bar on w. Safe to call
// from concurrent workers.
func progressPrinter(w *os.File) service.ProgressFunc {
	var mu sync.Mutex
	return func(done, total int) {
		mu.Lock()
		defer mu.Unlock()
		if total <= 0 {
			return
		}
		progress := done * 100 / total
		complete := progress / 10
		bar := strings.Repeat("#", complete) + strings.Repeat(" ", 10-complete)
		fmt.Fprintf(w, "\rProgress: [%s] %d%% (%d/%d)", bar, progress, done, total)
		if done >= total {
			fmt.Fprintln(w)
		}
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
