package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/mediashelf/entertainment/docs" // Register swagger docs
	"github.com/mediashelf/entertainment/internal/admin"
	"github.com/mediashelf/entertainment/internal/config"
	"github.com/mediashelf/entertainment/internal/ingest"
	"github.com/mediashelf/entertainment/internal/logging"
	"github.com/mediashelf/entertainment/internal/store"
	"github.com/mediashelf/entertainment/internal/web"
	"github.com/joho/godotenv"
)

//	@title        Entertainment API
//	@version      1.0
//	@description  CRUD API over locally stored movie, song, book and game datasets.
//	@BasePath     /

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err != nil {
		slog.Info("no .env file found, using environment variables")
	} else {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	// Load and validate configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Setup structured logging based on config
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	slog.Info("configuration loaded",
		"port", cfg.Server.Port,
		"db_path", cfg.Database.Path,
		"rate_limit_enabled", cfg.Rate.Enabled,
	)

	// A missing database file means this is a fresh install and the
	// CSV datasets should be loaded after the schema is created.
	_, statErr := os.Stat(cfg.Database.Path)
	fresh := os.IsNotExist(statErr)

	st, err := store.Open(cfg.Database.Path)
	if err != nil {
		slog.Error("failed to open database", "error", err, "path", cfg.Database.Path)
		os.Exit(1)
	}
	defer st.Close()

	ctx := context.Background()
	if err := st.Init(ctx); err != nil {
		slog.Error("failed to initialize schema", "error", err)
		os.Exit(1)
	}
	slog.Info("database ready", "path", cfg.Database.Path, "fresh", fresh)

	if cfg.Ingest.Reset {
		resetter := &admin.Resetter{Store: st}
		if err := resetter.ResetAll(ctx); err != nil {
			slog.Error("catalog reset failed", "error", err)
			os.Exit(1)
		}
		fresh = true
	}

	if fresh && !cfg.Ingest.Disabled {
		runner := ingest.NewRunner(st, cfg.Ingest.DataDir)
		results, err := runner.Run(ctx)
		if err != nil {
			slog.Error("dataset ingestion failed", "error", err)
			os.Exit(1)
		}
		for _, res := range results {
			slog.Info("dataset loaded",
				"category", res.Category,
				"inserted", res.Inserted,
				"skipped", res.Skipped,
			)
		}
	}

	// Create server with config
	server := web.NewServer(st, cfg)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
	}()

	// Start server (uses addr from config internally)
	slog.Info("server starting", "addr", cfg.Server.Addr())
	if err := server.Start(); err != nil {
		slog.Info("server stopped", "error", err)
	}
}
