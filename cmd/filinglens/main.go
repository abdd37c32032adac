// FilingLens server — provides the operational HTTP API, manages queue
// workers, and orchestrates the filing summarization pipeline.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/filinglens/filinglens/pkg/api"
	"github.com/filinglens/filinglens/pkg/config"
	"github.com/filinglens/filinglens/pkg/database"
	"github.com/filinglens/filinglens/pkg/handlers"
	"github.com/filinglens/filinglens/pkg/ingest"
	"github.com/filinglens/filinglens/pkg/llm"
	"github.com/filinglens/filinglens/pkg/queue"
	"github.com/filinglens/filinglens/pkg/services"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	configPath := flag.String("config",
		getEnv("FILINGLENS_CONFIG", "filinglens.yaml"),
		"Path to configuration file")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, continuing with existing environment")
	}

	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Initialize(*configPath)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Domain services
	deps := &handlers.Deps{
		Jobs:         services.NewJobService(dbClient.Client),
		Companies:    services.NewCompanyService(dbClient.Client),
		Filings:      services.NewFilingService(dbClient.Client),
		Financials:   services.NewFinancialService(dbClient.Client),
		Prompts:      services.NewPromptService(dbClient.Client),
		ModelConfigs: services.NewModelConfigService(dbClient.Client),
		Contents:     services.NewContentService(dbClient.Client),
		Runs:         services.NewRunService(dbClient.Client),
		Groups:       services.NewGroupService(dbClient.Client),
		Completer:    llm.NewAnthropicCompleter(os.Getenv("ANTHROPIC_API_KEY")),
		Source:       newSource(),
		Pipeline:     cfg.Pipeline,
	}
	slog.Info("Services initialized")

	// 4. Handler registry (validates that every job type is covered)
	registry, err := handlers.NewRegistry(deps)
	if err != nil {
		slog.Error("Failed to build handler registry", "error", err)
		os.Exit(1)
	}

	// 5. Worker pool
	workerPool := queue.NewWorkerPool(deps.Jobs, cfg.Queue, registry)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 6. HTTP server
	server := api.NewServer(dbClient, deps.Jobs, deps.Runs, workerPool)
	httpServer := &http.Server{
		Addr:              cfg.API.Addr,
		Handler:           server.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", cfg.API.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("FilingLens started successfully", "workers", cfg.Queue.WorkerCount)

	// 7. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 8. Graceful shutdown: workers finish their current jobs, anything
	// still running past the deadline is recovered by the stale sweep.
	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer cancel()

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-shutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded — incomplete jobs will be stale-recovered")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}

// newSource selects the ingestion source. The production EDGAR source ships
// separately; out of the box the server runs with the in-memory fake, which
// is enough for queue and pipeline operation against pre-loaded data.
func newSource() ingest.Source {
	return ingest.NewFakeSource()
}
