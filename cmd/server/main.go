package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"shortlink/internal/config"
	"shortlink/internal/http/server"
	"shortlink/internal/logger"
	"shortlink/internal/repository"
	"shortlink/internal/repository/inmemory"
	"shortlink/internal/repository/postgres"
	"shortlink/internal/services/alias"
	"shortlink/internal/services/auth"
	"shortlink/internal/services/links"
	"shortlink/internal/services/overview"
	"shortlink/internal/services/sweeper"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.NewConfig()
	log := logger.NewLogger()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var storage repository.Storage
	if cfg.DatabaseDSN != "" {
		pg, err := postgres.NewStorage(ctx, cfg.DatabaseDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to init postgres storage")
		}
		storage = pg
	} else {
		log.Warn().Msg("database DSN is empty, falling back to in-memory storage")
		storage = inmemory.NewStorage()
	}
	defer storage.Close()

	guard := auth.NewGuard(storage)
	allocator := alias.NewAllocator(storage)
	linkService := links.NewService(storage, allocator, guard)
	overviewService := overview.NewAggregator(storage, guard)

	sweep := sweeper.NewSweeper(storage, log, cfg.SweepInterval)
	sweep.Start(ctx)
	defer sweep.Stop()

	srv, err := server.NewServer(log, *cfg, linkService, overviewService)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to init server")
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("server shutdown failed")
		}
	}()

	if err := srv.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}

	log.Info().Msg("server stopped")
}
