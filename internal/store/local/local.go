// Package local implements the leaderboard store on an embedded SQLite
// database. It mirrors the behavior of a small on-device history: only the
// five most recent results are retained, older ones are evicted in insertion
// order, and reads return the newest result first.
package local

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/flashmind/flashmind-api/internal/domain"
	"github.com/flashmind/flashmind-api/internal/store"
)

// MaxRetained is the number of results the local backend keeps.
const MaxRetained = 5

// scoreRecord is the SQLite row shape for one quiz result. Seq preserves
// insertion order for FIFO eviction independent of CreatedAt resolution.
type scoreRecord struct {
	Seq            uint      `gorm:"primaryKey;autoIncrement"`
	ID             string    `gorm:"uniqueIndex;not null"`
	Name           string    `gorm:"not null"`
	Score          int       `gorm:"not null"`
	TotalQuestions int       `gorm:"not null"`
	CreatedAt      time.Time `gorm:"not null"`
}

func (scoreRecord) TableName() string {
	return "quiz_results"
}

// Store is a store.LeaderboardStore backed by a local SQLite file.
type Store struct {
	db *gorm.DB
}

var _ store.LeaderboardStore = (*Store)(nil)

// New opens (or creates) the SQLite database at path and migrates the
// schema.
func New(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database at %q: %w", path, err)
	}

	if err := db.AutoMigrate(&scoreRecord{}); err != nil {
		return nil, fmt.Errorf("migrating quiz_results schema: %w", err)
	}

	return &Store{db: db}, nil
}

// SaveScore appends one result and evicts everything beyond the MaxRetained
// most recent entries.
func (s *Store) SaveScore(ctx context.Context, entry *domain.LeaderboardEntry) error {
	if err := entry.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntry, err)
	}

	rec := scoreRecord{
		ID:             entry.ID.String(),
		Name:           entry.Name,
		Score:          entry.Score,
		TotalQuestions: entry.TotalQuestions,
		CreatedAt:      entry.CreatedAt,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&rec).Error; err != nil {
			return err
		}

		var keep []uint
		if err := tx.Model(&scoreRecord{}).
			Order("seq DESC").
			Limit(MaxRetained).
			Pluck("seq", &keep).Error; err != nil {
			return err
		}

		return tx.Where("seq NOT IN ?", keep).Delete(&scoreRecord{}).Error
	})
	if err != nil {
		return fmt.Errorf("%w: %w", store.ErrSaveFailed, err)
	}

	return nil
}

// ListTop returns up to limit results, most recent first.
func (s *Store) ListTop(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	if limit <= 0 || limit > MaxRetained {
		limit = MaxRetained
	}

	var records []scoreRecord
	if err := s.db.WithContext(ctx).
		Order("seq DESC").
		Limit(limit).
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("%w: %w", store.ErrListFailed, err)
	}

	entries := make([]domain.LeaderboardEntry, 0, len(records))
	for _, rec := range records {
		id, err := uuid.Parse(rec.ID)
		if err != nil {
			return nil, fmt.Errorf("%w: corrupt entry ID %q: %w", store.ErrListFailed, rec.ID, err)
		}
		entries = append(entries, domain.LeaderboardEntry{
			ID:             id,
			Name:           rec.Name,
			Score:          rec.Score,
			TotalQuestions: rec.TotalQuestions,
			CreatedAt:      rec.CreatedAt,
		})
	}

	return entries, nil
}
