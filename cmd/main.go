package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "notifyads/internal/adapter/http"
	"notifyads/internal/adapter/memory"
	"notifyads/internal/adapter/observer"
	"notifyads/internal/adapter/postgres"
	redisadapter "notifyads/internal/adapter/redis"
	"notifyads/internal/adapter/usecase"
	"notifyads/internal/config"
	"notifyads/internal/config/configs"
	"notifyads/internal/core/domain"
	"notifyads/internal/core/port"
	"notifyads/internal/db"
)

// directory is what main needs from a directory backend.
type directory interface {
	port.AdDirectory
	Save(ctx context.Context, ad domain.NotificationAd) error
}

// main loads configuration, opens the configured ad directory, registers the
// outcome observers and serves HTTP until SIGINT or SIGTERM.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}
	logger := cfg.Log.New(os.Stdout)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	dir, closeDir, err := openDirectory(ctx, cfg, logger)
	if err != nil {
		logger.Error("directory error", slog.String("backend", cfg.Store.NormalizedBackend()), slog.Any("error", err))
		return
	}
	defer closeDir()

	if cfg.Store.SeedCount > 0 {
		ids, err := db.Seed(ctx, dir, cfg.Store.SeedCount)
		if err != nil {
			logger.Error("seed error", slog.Any("error", err))
			return
		}
		logger.Info("seeded notification ads", slog.Int("count", len(ids)))
	}

	handler := usecase.NewNotificationAdEventHandler(dir, logger)
	sinks := observer.Chain{observer.NewLogObserver(logger)}
	if cfg.NATS.URL != "" {
		natsObserver, err := observer.NewNATSObserver(cfg.NATS.URL, logger)
		if err != nil {
			logger.Error("nats error", slog.Any("error", err))
			return
		}
		defer natsObserver.Close()
		sinks = append(sinks, natsObserver)
	}
	handler.SetObserver(sinks)

	api := httpadapter.NewHandler(handler, dir, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: api.Router(),
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			cancel()
		}
	}()

	<-ctx.Done()
	exitCode = 0

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}

// openDirectory builds the directory selected by cfg.Store and returns a
// function releasing its resources.
func openDirectory(ctx context.Context, cfg config.Config, logger *slog.Logger) (directory, func(), error) {
	switch cfg.Store.NormalizedBackend() {
	case configs.BackendPostgres:
		if cfg.Psql.RunMigrations {
			if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
				return nil, nil, fmt.Errorf("migrate: %w", err)
			}
			logger.Info("migrations applied successfully")
		}
		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			return nil, nil, err
		}
		return postgres.NewAdDirectory(pool), pool.Close, nil
	case configs.BackendRedis:
		client, err := db.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		return redisadapter.NewAdDirectory(client, cfg.Redis.AdTTL, cfg.Redis.HistoryTTL), func() { _ = client.Close() }, nil
	default:
		return memory.NewAdDirectory(), func() {}, nil
	}
}
