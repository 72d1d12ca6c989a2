// Package leaderboard records finished quiz scores under a player-supplied
// name and serves the board shown after a quiz.
package leaderboard

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/flashmind/flashmind-api/internal/domain"
	"github.com/flashmind/flashmind-api/internal/store"
)

// DefaultListSize is how many entries the board displays.
const DefaultListSize = 5

var (
	// ErrNameRequired is returned when a score is submitted with a blank name.
	ErrNameRequired = errors.New("name is required")

	// ErrSubmissionFailed is returned when the score could not be persisted.
	ErrSubmissionFailed = errors.New("score submission failed")
)

// Service handles score submission and leaderboard reads.
type Service struct {
	store  store.LeaderboardStore
	logger *slog.Logger
}

// NewService creates a leaderboard service over the given store.
func NewService(leaderboardStore store.LeaderboardStore, logger *slog.Logger) *Service {
	if leaderboardStore == nil {
		panic("leaderboardStore cannot be nil") // ALLOW-PANIC: Constructor enforcing required dependency
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Service{
		store:  leaderboardStore,
		logger: logger.With(slog.String("component", "leaderboard_service")),
	}
}

// SubmitScore records one finished quiz. A blank name is rejected before
// anything is written.
func (s *Service) SubmitScore(ctx context.Context, name string, score, total int) (*domain.LeaderboardEntry, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrNameRequired
	}

	entry, err := domain.NewLeaderboardEntry(name, score, total)
	if err != nil {
		return nil, err
	}

	if err := s.store.SaveScore(ctx, entry); err != nil {
		s.logger.ErrorContext(ctx, "failed to save quiz score",
			slog.String("entry_id", entry.ID.String()),
			slog.String("error", err.Error()))
		return nil, errors.Join(ErrSubmissionFailed, err)
	}

	s.logger.InfoContext(ctx, "quiz score recorded",
		slog.String("entry_id", entry.ID.String()),
		slog.Int("score", entry.Score),
		slog.Int("total_questions", entry.TotalQuestions))
	return entry, nil
}

// ListTop returns the board for display. A store failure is logged and
// surfaced as an empty board rather than an error, so a broken leaderboard
// never blocks the study flow.
func (s *Service) ListTop(ctx context.Context) []domain.LeaderboardEntry {
	entries, err := s.store.ListTop(ctx, DefaultListSize)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to read leaderboard, serving empty board",
			slog.String("error", err.Error()))
		return []domain.LeaderboardEntry{}
	}
	if entries == nil {
		entries = []domain.LeaderboardEntry{}
	}
	return entries
}
