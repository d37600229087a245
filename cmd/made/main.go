// MADE server, the multi-agent deliberation engine. Provides the council,
// superchat, upload, and history HTTP API backed by PostgreSQL and an
// OpenAI-compatible LLM gateway.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/deepcouncil/made/pkg/api"
	"github.com/deepcouncil/made/pkg/cleanup"
	"github.com/deepcouncil/made/pkg/database"
	"github.com/deepcouncil/made/pkg/engine"
	"github.com/deepcouncil/made/pkg/gateway"
	"github.com/deepcouncil/made/pkg/services"
	"github.com/deepcouncil/made/pkg/upload"
	"github.com/deepcouncil/made/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	envPath := getEnv("ENV_FILE", ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	slog.Info("Starting MADE", "version", version.Full(), "http_port", httpPort)

	ctx := context.Background()

	// Database
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

	// Services
	conversationService := services.NewConversationService(dbClient.Client)
	nodeService := services.NewNodeService(dbClient.Client)
	slog.Info("Services initialized")

	// LLM gateway
	gatewayClient := gateway.NewClient(getEnv("GATEWAY_BASE_URL", gateway.DefaultBaseURL))
	defaultAPIKey := os.Getenv("GATEWAY_API_KEY")
	if defaultAPIKey == "" {
		slog.Warn("GATEWAY_API_KEY not set; requests must carry X-Gateway-Key")
	}

	// Upload staging with background TTL eviction
	staging := upload.NewStaging(upload.DefaultTTL)
	staging.StartJanitor(5 * time.Minute)
	defer staging.Stop()

	// Conversation retention (disabled unless RETENTION_DAYS is set)
	retention := cleanup.NewService(cleanup.LoadConfigFromEnv(), conversationService)
	retention.Start(ctx)
	defer retention.Stop()

	coordinator := engine.NewCoordinator(conversationService, nodeService, gatewayClient, staging)

	httpServer := api.NewServer(
		dbClient, conversationService, nodeService, coordinator,
		gatewayClient, staging, defaultAPIKey)

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + httpPort
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
