package main

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flashmind/flashmind-api/internal/config"
	"github.com/flashmind/flashmind-api/internal/domain"
	"github.com/flashmind/flashmind-api/internal/generation"
	"github.com/flashmind/flashmind-api/internal/leaderboard"
	"github.com/flashmind/flashmind-api/internal/session"
)

type stubExtractor struct{}

func (stubExtractor) CheckMediaType(contentType string) error {
	return nil
}

func (stubExtractor) Extract(ctx context.Context, name, contentType string, r io.Reader) (string, error) {
	return "stub text", nil
}

type stubAI struct{}

func (stubAI) GenerateFlashcards(ctx context.Context, req domain.GenerationRequest) (*generation.Result, error) {
	return &generation.Result{}, nil
}

func (stubAI) EvaluateAnswer(ctx context.Context, question, correctAnswer, userAnswer string) (*generation.Evaluation, error) {
	return &generation.Evaluation{}, nil
}

func (stubAI) ExplainQuestion(ctx context.Context, question string) (*generation.Explanation, error) {
	return &generation.Explanation{}, nil
}

func newTestApplication(t *testing.T) *application {
	t.Helper()

	logger := slog.Default()
	cfg := &config.Config{
		Server: config.ServerConfig{Port: 8080, LogLevel: "info"},
		Leaderboard: config.LeaderboardConfig{
			Backend:   config.LeaderboardBackendLocal,
			LocalPath: filepath.Join(t.TempDir(), "test.db"),
		},
	}

	app := &application{
		config: cfg,
		logger: logger,
	}

	leaderboardStore, err := app.setupLeaderboardStore(context.Background(), cfg)
	require.NoError(t, err)

	app.sessionManager = session.NewManager(stubExtractor{}, stubAI{}, stubAI{}, stubAI{}, logger)
	app.leaderboardService = leaderboard.NewService(leaderboardStore, logger)
	return app
}

func TestSetupLeaderboardStore(t *testing.T) {
	t.Run("local backend", func(t *testing.T) {
		app := newTestApplication(t)
		assert.Nil(t, app.db, "local backend must not open a SQL connection")
	})

	t.Run("unknown backend", func(t *testing.T) {
		app := &application{logger: slog.Default()}
		cfg := &config.Config{Leaderboard: config.LeaderboardConfig{Backend: "redis"}}

		_, err := app.setupLeaderboardStore(context.Background(), cfg)
		assert.Error(t, err)
	})
}

func TestRouter(t *testing.T) {
	app := newTestApplication(t)
	router := app.setupRouter()

	t.Run("health check", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "OK", w.Body.String())
	})

	t.Run("session creation is routed", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/sessions", nil))

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("leaderboard is routed", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/leaderboard", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
