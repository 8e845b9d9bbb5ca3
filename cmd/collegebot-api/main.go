// Package main provides the college bot API server entrypoint.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/campusassist/collegebot/internal/cache"
	"github.com/campusassist/collegebot/internal/config"
	"github.com/campusassist/collegebot/internal/dataset"
	"github.com/campusassist/collegebot/internal/nlp"
	"github.com/campusassist/collegebot/internal/observability"
	"github.com/campusassist/collegebot/internal/query"
)

func main() {
	// A missing .env file is fine; env vars may come from the environment.
	_ = godotenv.Load()

	cfgPath := os.Getenv("CONFIG_PATH")
	if len(os.Args) > 2 && os.Args[1] == "--config" {
		cfgPath = os.Args[2]
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(observability.LogConfig{
		Level:       cfg.Observability.LogLevel,
		Format:      cfg.Observability.LogFormat,
		ServiceName: "collegebot",
	})

	logger.Info().
		Str("host", cfg.Server.Host).
		Int("port", cfg.Server.Port).
		Str("dataset", cfg.Dataset.Path).
		Str("cache", cfg.Cache.Driver).
		Msg("Starting college bot API")

	ix, err := dataset.Load(newSource(cfg))
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load dataset")
	}
	logger.Info().Int("records", ix.Len()).Msg("Dataset loaded")

	cacheClient := newCache(cfg, logger)
	defer cacheClient.Close()

	extractor := query.NewExtractor(ix, nlp.NewLevenshteinMatcher(cfg.Matcher.Threshold))
	queryRouter := query.NewRouter(logger, ix, extractor, cacheClient, query.RouterConfig{
		CacheResults: true,
		CacheTTL:     cfg.Cache.TTL,
	})

	router := NewRouter(logger, cfg, ix, queryRouter)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", addr).Msg("HTTP server listening")
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		logger.Error().Err(err).Msg("Server error")
	case sig := <-shutdown:
		logger.Info().Str("signal", sig.String()).Msg("Shutdown signal received")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.GracefulShutdown)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("Graceful shutdown failed")
		if err := srv.Close(); err != nil {
			logger.Error().Err(err).Msg("Forced shutdown failed")
		}
	}

	logger.Info().Msg("Server stopped")
}

// newSource picks the dataset source for the configured format.
func newSource(cfg *config.Config) dataset.Source {
	if cfg.Dataset.Format == "sqlite" {
		return dataset.NewSQLiteSource(cfg.Dataset.Path, cfg.Dataset.Table)
	}
	return dataset.NewCSVSource(cfg.Dataset.Path)
}

// newCache builds the answer cache, falling back to the in-memory client
// when Redis is unreachable.
func newCache(cfg *config.Config, logger *observability.Logger) cache.Client {
	if cfg.Cache.Driver == "redis" {
		client, err := cache.NewRedisClient(cache.RedisConfig{
			Addr:     cfg.Cache.Redis.Addr,
			Password: cfg.Cache.Redis.Password,
			DB:       cfg.Cache.Redis.DB,
			PoolSize: cfg.Cache.Redis.PoolSize,
		})
		if err == nil {
			return client
		}
		logger.Warn().Err(err).Msg("Redis unavailable, using in-memory cache")
	}
	return cache.NewMemoryClient(cfg.Cache.MaxEntries)
}
