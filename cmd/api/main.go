package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"wastenot/internal/domain"
	"wastenot/internal/http/handlers"
	"wastenot/internal/http/httpapi"
	"wastenot/internal/infra"
	"wastenot/internal/infra/geoip"
	"wastenot/internal/middleware"
	"wastenot/internal/session"
	"wastenot/internal/storage/memory"
	"wastenot/internal/storage/postgres"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)
	ctx := context.Background()

	// Storage backend, selected by configuration. Both realizations satisfy
	// the same interface; nothing downstream knows which one is live.
	var store domain.Storage
	switch cfg.StorageBackend {
	case infra.BackendPostgres:
		pool, err := infra.NewDBPool(ctx, cfg)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect database")
		}
		defer pool.Close()

		store, err = postgres.New(ctx, pool)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to initialize postgres storage")
		}
	default:
		store = memory.New()
		logger.Warn().Msg("using in-memory storage; all data is lost on restart")
	}

	sessions := session.NewMemoryStore(cfg.SessionTTL, cfg.SessionSweep)
	defer sessions.Close()

	var lookup middleware.CountryLookup
	resolver, err := geoip.NewResolver(cfg.GeoIPDBPath)
	if err != nil {
		logger.Warn().Err(err).Msg("geoip disabled")
	} else if resolver != nil {
		defer resolver.Close()
		lookup = resolver.CountryCode
	}

	app := handlers.NewApp(store, sessions, logger, cfg.AppEnv != "development")
	app.SessionTTL = cfg.SessionTTL
	router := httpapi.NewRouter(app, sessions, httpapi.Options{
		AllowedOrigins:  cfg.AllowedOrigins,
		RateLimitPerMin: cfg.RateLimitPerMin,
		DefaultLocale:   cfg.DefaultLocale,
		CountryLookup:   lookup,
		Logger:          middleware.Logger(logger),
	})

	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().
			Str("backend", cfg.StorageBackend).
			Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
