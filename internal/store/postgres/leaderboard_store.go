// Package postgres implements the leaderboard store on PostgreSQL. Unlike
// the local backend it keeps every submission and ranks reads by score.
package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/flashmind/flashmind-api/internal/domain"
	"github.com/flashmind/flashmind-api/internal/platform/logger"
	"github.com/flashmind/flashmind-api/internal/store"
)

// DefaultListLimit bounds ListTop when the caller passes a non-positive
// limit.
const DefaultListLimit = 5

// LeaderboardStore implements the store.LeaderboardStore interface using
// PostgreSQL.
type LeaderboardStore struct {
	db store.DBTX
}

var _ store.LeaderboardStore = (*LeaderboardStore)(nil)

// NewLeaderboardStore creates a new LeaderboardStore. The db argument may be
// a *sql.DB or a *sql.Tx.
func NewLeaderboardStore(db store.DBTX) *LeaderboardStore {
	return &LeaderboardStore{db: db}
}

// SaveScore persists one quiz result. Submissions are never evicted; the
// table holds the full history.
func (s *LeaderboardStore) SaveScore(ctx context.Context, entry *domain.LeaderboardEntry) error {
	log := logger.FromContext(ctx)

	if err := entry.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntry, err)
	}

	query := `
		INSERT INTO quiz_results (id, name, score, total_questions, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := s.db.ExecContext(ctx, query,
		entry.ID,
		entry.Name,
		entry.Score,
		entry.TotalQuestions,
		entry.CreatedAt,
	)
	if err != nil {
		log.Error("failed to save quiz result",
			slog.String("entry_id", entry.ID.String()),
			slog.String("error", err.Error()))
		return fmt.Errorf("%w: %w", store.ErrSaveFailed, err)
	}

	return nil
}

// ListTop returns up to limit results ordered by score descending, ties
// broken by recency.
func (s *LeaderboardStore) ListTop(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	log := logger.FromContext(ctx)

	if limit <= 0 {
		limit = DefaultListLimit
	}

	query := `
		SELECT id, name, score, total_questions, created_at
		FROM quiz_results
		ORDER BY score DESC, created_at DESC
		LIMIT $1
	`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		log.Error("failed to list quiz results",
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %w", store.ErrListFailed, err)
	}
	defer func() { _ = rows.Close() }()

	var entries []domain.LeaderboardEntry
	for rows.Next() {
		var entry domain.LeaderboardEntry
		if err := rows.Scan(
			&entry.ID,
			&entry.Name,
			&entry.Score,
			&entry.TotalQuestions,
			&entry.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: scanning row: %w", store.ErrListFailed, err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", store.ErrListFailed, err)
	}

	return entries, nil
}
