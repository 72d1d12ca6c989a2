package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// LeaderboardEntry validation errors
var (
	// ErrEntryIDEmpty is returned when a leaderboard entry ID is empty or nil.
	ErrEntryIDEmpty = errors.New("leaderboard entry ID cannot be empty")

	// ErrEntryNameEmpty is returned when a leaderboard entry has a blank name.
	ErrEntryNameEmpty = errors.New("leaderboard entry name cannot be empty")

	// ErrEntryScoreNegative is returned when a leaderboard entry has a negative score.
	ErrEntryScoreNegative = errors.New("leaderboard entry score cannot be negative")

	// ErrEntryTotalInvalid is returned when the total question count is not positive.
	ErrEntryTotalInvalid = errors.New("leaderboard entry total questions must be positive")
)

// LeaderboardEntry records one finished quiz under a user-supplied name.
// Entries are append-only; retention and ordering are properties of the
// backing store, not of the entry itself.
type LeaderboardEntry struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"total_questions"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewLeaderboardEntry creates a LeaderboardEntry stamped with the current UTC time.
// Returns an error if validation fails.
func NewLeaderboardEntry(name string, score, totalQuestions int) (*LeaderboardEntry, error) {
	entry := &LeaderboardEntry{
		ID:             uuid.New(),
		Name:           strings.TrimSpace(name),
		Score:          score,
		TotalQuestions: totalQuestions,
		CreatedAt:      time.Now().UTC(),
	}

	if err := entry.Validate(); err != nil {
		return nil, err
	}

	return entry, nil
}

// Validate checks if the LeaderboardEntry has valid data.
func (e *LeaderboardEntry) Validate() error {
	if e.ID == uuid.Nil {
		return ErrEntryIDEmpty
	}

	if strings.TrimSpace(e.Name) == "" {
		return ErrEntryNameEmpty
	}

	if e.Score < 0 {
		return ErrEntryScoreNegative
	}

	if e.TotalQuestions <= 0 {
		return ErrEntryTotalInvalid
	}

	return nil
}
