// Package store provides abstractions and implementations for leaderboard
// persistence.
package store

import (
	"context"
	"database/sql"

	"github.com/flashmind/flashmind-api/internal/domain"
)

// DBTX is an interface that abstracts the database access layer.
// It is implemented by both *sql.DB and *sql.Tx, allowing our code
// to work with either a database connection or a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// LeaderboardStore defines the interface for leaderboard persistence.
//
// Retention and ordering are backend-specific: the local backend keeps only
// the most recent entries and lists newest first, while the postgres backend
// keeps everything and lists highest score first. Callers that care about
// the distinction should consult the backend configuration.
type LeaderboardStore interface {
	// SaveScore persists one quiz result.
	// Returns ErrInvalidEntry if the entry fails domain validation.
	SaveScore(ctx context.Context, entry *domain.LeaderboardEntry) error

	// ListTop returns up to limit entries in the backend's display order.
	ListTop(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error)
}
