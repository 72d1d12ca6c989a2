// Package main implements the entry point for the FlashMind API server,
// which turns uploaded PDF documents into AI-generated flashcards and runs
// quizzes over them.
package main

import (
	"fmt"
	"log"
	"log/slog"

	"github.com/joho/godotenv"

	"github.com/flashmind/flashmind-api/internal/config"
	"github.com/flashmind/flashmind-api/internal/platform/logger"
)

func main() {
	// A missing .env file is fine; real deployments set the environment
	// directly.
	_ = godotenv.Load()

	cfg, err := loadAppConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		log.Fatalf("Failed to set up logger: %v", err)
	}

	app, err := newApplication(cfg, appLogger)
	if err != nil {
		appLogger.Error("Failed to initialize application", "error", err)
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer app.cleanup()

	if err := app.startHTTPServer(app.setupRouter()); err != nil {
		appLogger.Error("Server terminated with error", "error", err)
		log.Fatalf("Server terminated with error: %v", err)
	}
}

// loadAppConfig loads the application configuration from environment
// variables or the optional config file.
func loadAppConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"leaderboard_backend", cfg.Leaderboard.Backend)

	return cfg, nil
}
