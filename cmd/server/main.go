// Command server runs the dictionary lookup API.
//
// It loads configuration from the environment (optionally a .env file),
// configures structured logging and OpenTelemetry tracing, opens the SQLite
// catalog database, constructs the lookup engine, and serves the HTTP API
// with graceful shutdown.
//
// @title        go-kamus-backend API
// @version      1.0
// @description  Indonesian dictionary (KBBI) lookup service with a small library catalog.
// @BasePath     /api
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/nandika/go-kamus-backend/internal/config"
	httpapi "github.com/nandika/go-kamus-backend/internal/http"
	"github.com/nandika/go-kamus-backend/internal/kbbi"
	"github.com/nandika/go-kamus-backend/internal/observability"
	"github.com/nandika/go-kamus-backend/internal/repo"
	"github.com/nandika/go-kamus-backend/internal/sysutil"
)

// version is stamped at build time via -ldflags "-X main.version=...".
var version string

func main() {
	// Optional .env for local development; real deployments use the environment.
	_ = godotenv.Load()

	cfg := config.MustLoad()
	version = sysutil.FirstNonEmpty(version, os.Getenv("APP_VERSION"), "dev")

	// Logging
	sysutil.SetLogLevel(cfg.LogLevel)
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
	log.Info().Str("version", version).Str("port", cfg.Port).Msg("starting go-kamus-backend")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Tracing
	shutdownOTel, err := observability.SetupOTel(ctx, cfg.OTEL, version)
	if err != nil {
		log.Fatal().Err(err).Msg("otel setup failed")
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownOTel(sctx); err != nil {
			log.Warn().Err(err).Msg("otel shutdown failed")
		}
	}()

	// Catalog database
	db, err := repo.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("open sqlite failed")
	}
	if err := repo.EnableTracing(db); err != nil {
		log.Warn().Err(err).Msg("gorm tracing plugin failed, continuing without query spans")
	}
	if err := repo.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("migrate failed")
	}

	// Lookup engine
	var remote kbbi.RemoteClient
	if cfg.KBBI.RemoteEnabled {
		remote = kbbi.NewHTTPRemoteClient(cfg.KBBI.RemoteBaseURL, cfg.KBBI.RemoteTimeout)
	}
	dictSvc := kbbi.NewService(kbbi.Config{
		CorpusGlob:      cfg.KBBI.CorpusPattern(),
		WordDBGlob:      cfg.KBBI.WordDBPattern(),
		CacheTTL:        cfg.KBBI.CacheTTL,
		RateMax:         cfg.KBBI.RateLimitMax,
		RateWindow:      cfg.KBBI.RateLimitWindow,
		SuggestionLimit: cfg.KBBI.SuggestionLimit,
		Remote:          remote,
		Logger:          log.Logger,
	})

	// Optional corpus watcher: invalidate indices when shard files change.
	if cfg.KBBI.WatchCorpus {
		watcher, err := kbbi.NewCorpusWatcher(
			cfg.KBBI.DataDir,
			[]string{cfg.KBBI.CorpusGlob, cfg.KBBI.WordDBGlob},
			dictSvc,
			log.Logger,
		)
		if err != nil {
			log.Warn().Err(err).Str("dir", cfg.KBBI.DataDir).Msg("corpus watcher unavailable")
		} else {
			defer watcher.Close()
			go watcher.Start(ctx)
		}
	}

	// HTTP
	gin.SetMode(cfg.GinMode)
	r := gin.New()
	httpapi.RegisterRoutes(r, db, dictSvc, cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
	case err := <-errCh:
		log.Error().Err(err).Msg("server error")
	}

	sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
