package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/flashmind/flashmind-api/internal/config"
	"github.com/flashmind/flashmind-api/internal/extract"
	"github.com/flashmind/flashmind-api/internal/leaderboard"
	"github.com/flashmind/flashmind-api/internal/platform/gemini"
	"github.com/flashmind/flashmind-api/internal/session"
	"github.com/flashmind/flashmind-api/internal/store"
	"github.com/flashmind/flashmind-api/internal/store/local"
	"github.com/flashmind/flashmind-api/internal/store/postgres"
)

// application holds the fully wired dependency graph of the server.
type application struct {
	config *config.Config
	logger *slog.Logger

	sessionManager     *session.Manager
	leaderboardService *leaderboard.Service

	// db is non-nil only for the postgres leaderboard backend.
	db *sql.DB
}

// newApplication constructs every service the server needs: the Gemini
// client behind generation, evaluation and explanation, the PDF extractor,
// the session manager, and the configured leaderboard store.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	geminiClient, err := gemini.NewClient(ctx, logger, cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	app := &application{
		config: cfg,
		logger: logger,
	}

	leaderboardStore, err := app.setupLeaderboardStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app.sessionManager = session.NewManager(
		extract.NewPDFExtractor(logger),
		geminiClient,
		geminiClient,
		geminiClient,
		logger,
	)
	app.leaderboardService = leaderboard.NewService(leaderboardStore, logger)

	return app, nil
}

// setupLeaderboardStore builds the store selected by the leaderboard.backend
// setting. The postgres backend opens a connection pool and applies pending
// schema migrations; the local backend opens (or creates) the SQLite file.
func (app *application) setupLeaderboardStore(
	ctx context.Context,
	cfg *config.Config,
) (store.LeaderboardStore, error) {
	switch cfg.Leaderboard.Backend {
	case config.LeaderboardBackendPostgres:
		db, err := sql.Open("pgx", cfg.Leaderboard.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to open database connection: %w", err)
		}
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := db.PingContext(pingCtx); err != nil {
			return nil, fmt.Errorf("failed to ping database: %w", err)
		}

		if err := postgres.RunMigrations(db); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}

		app.db = db
		app.logger.Info("Leaderboard store initialized", "backend", "postgres")
		return postgres.NewLeaderboardStore(db), nil

	case config.LeaderboardBackendLocal:
		localStore, err := local.New(cfg.Leaderboard.LocalPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open local leaderboard store: %w", err)
		}
		app.logger.Info("Leaderboard store initialized",
			"backend", "local",
			"path", cfg.Leaderboard.LocalPath)
		return localStore, nil

	default:
		return nil, fmt.Errorf("unknown leaderboard backend %q", cfg.Leaderboard.Backend)
	}
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Failed to close database connection", "error", err)
		}
	}
}
