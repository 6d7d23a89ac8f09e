// Package main is the entry point for the brand machine server.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Fliegenbart/tyrnon-brand-machine-neu-sub000/internal/ai"
	"github.com/Fliegenbart/tyrnon-brand-machine-neu-sub000/internal/cache"
	"github.com/Fliegenbart/tyrnon-brand-machine-neu-sub000/internal/config"
	"github.com/Fliegenbart/tyrnon-brand-machine-neu-sub000/internal/database"
	"github.com/Fliegenbart/tyrnon-brand-machine-neu-sub000/internal/handlers"
	"github.com/Fliegenbart/tyrnon-brand-machine-neu-sub000/internal/router"
	"github.com/Fliegenbart/tyrnon-brand-machine-neu-sub000/internal/storage"
	"github.com/Fliegenbart/tyrnon-brand-machine-neu-sub000/internal/store"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
	)

	// Connect to PostgreSQL.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run pending migrations.
	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Seed the demo brand (no-op if brands already exist).
	if cfg.IsDev() {
		if err := database.Seed(db); err != nil {
			slog.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
	}

	// Connect to Valkey. The server runs without it; accessibility
	// reports are then computed on every request and change events
	// are not published.
	var (
		reports *cache.ReportCache
		events  *cache.Events
	)
	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Warn("valkey not available, running without report cache", "error", err)
	} else {
		defer valkeyClient.Close()
		reports = cache.NewReportCache(valkeyClient, cache.DefaultReportTTL)
		events = cache.NewEvents(valkeyClient)
	}

	// Initialize data stores.
	brandStore := store.NewBrandStore(db)
	contentStore := store.NewContentStore(db)

	// Connect the S3 artifact archive (optional).
	var archive *storage.Archive
	if cfg.S3Enabled() {
		archive, err = storage.New(
			cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey,
			cfg.S3Bucket, cfg.S3PublicURL,
		)
		if err != nil {
			slog.Error("failed to initialize artifact archive", "error", err)
			os.Exit(1)
		}
		if archive != nil {
			slog.Info("artifact archive connected",
				"endpoint", cfg.S3Endpoint,
				"bucket", cfg.S3Bucket,
			)
		}
	} else {
		slog.Warn("s3 not configured, exports will not be archived")
	}

	// Initialize the AI provider registry with all configured providers.
	aiRegistry := ai.NewRegistry(cfg.AIProvider, map[string]ai.ProviderConfig{
		"openai":  {APIKey: cfg.OpenAIKey, Model: cfg.OpenAIModel, BaseURL: cfg.OpenAIBaseURL},
		"gemini":  {APIKey: cfg.GeminiKey, Model: cfg.GeminiModel, BaseURL: cfg.GeminiBaseURL},
		"claude":  {APIKey: cfg.ClaudeKey, Model: cfg.ClaudeModel, BaseURL: cfg.ClaudeBaseURL},
		"mistral": {APIKey: cfg.MistralKey, Model: cfg.MistralModel, BaseURL: cfg.MistralBaseURL},
	})

	slog.Info("ai providers initialized",
		"active", aiRegistry.ActiveName(),
		"available", aiRegistry.Available(),
	)

	// Drop cached accessibility reports when a brand changes anywhere
	// in the deployment, not just on this instance.
	subCtx, subCancel := context.WithCancel(context.Background())
	defer subCancel()
	if events != nil && reports != nil {
		go events.Subscribe(subCtx, func(e cache.BrandEvent) {
			reports.Invalidate(subCtx, e.BrandID)
		})
	}

	api := handlers.NewAPI(brandStore, contentStore, aiRegistry, reports, events, archive)

	// Set up the Chi router with all middleware and routes.
	r := router.New(api)

	// WriteTimeout must accommodate AI endpoints that wait on LLM
	// responses and the heavier PDF/PPTX exports.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
