package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pageza/pantrycoach/internal/models"
	"github.com/pageza/pantrycoach/internal/types"
)

// DefaultHistoryLimit caps retained history entries so the store stays
// bounded; trimming drops oldest entries first.
const DefaultHistoryLimit = 100

var ErrEntryNotFound = errors.New("history entry not found")

// HistoryService owns the append-only dietary history store.
type HistoryService struct {
	db    *gorm.DB
	limit int
}

// NewHistoryService creates a new HistoryService instance. A non-positive
// limit falls back to DefaultHistoryLimit.
func NewHistoryService(db *gorm.DB, limit int) *HistoryService {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &HistoryService{db: db, limit: limit}
}

// Append stores a new entry and trims the store to the retention limit.
func (s *HistoryService) Append(ctx context.Context, entry *models.DietaryHistoryEntry) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("failed to append history entry: %w", err)
	}
	return s.Trim(ctx)
}

// EntriesForDay returns the entries consumed on the calendar day containing
// t, in stored (chronological) order.
func (s *HistoryService) EntriesForDay(ctx context.Context, t time.Time) ([]models.DietaryHistoryEntry, error) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	end := start.AddDate(0, 0, 1)

	var entries []models.DietaryHistoryEntry
	if err := s.db.WithContext(ctx).
		Where("consumed_at >= ? AND consumed_at < ?", start, end).
		Order("consumed_at").
		Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to load history for day: %w", err)
	}
	return entries, nil
}

// Delete removes a single entry by id.
func (s *HistoryService) Delete(ctx context.Context, id uuid.UUID) error {
	result := s.db.WithContext(ctx).Delete(&models.DietaryHistoryEntry{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete history entry: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrEntryNotFound
	}
	return nil
}

// Trim keeps only the newest entries up to the retention limit, dropping
// oldest first.
func (s *HistoryService) Trim(ctx context.Context) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.DietaryHistoryEntry{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count history entries: %w", err)
	}
	excess := int(count) - s.limit
	if excess <= 0 {
		return nil
	}

	var oldest []models.DietaryHistoryEntry
	if err := s.db.WithContext(ctx).
		Order("consumed_at").
		Limit(excess).
		Find(&oldest).Error; err != nil {
		return fmt.Errorf("failed to load oldest history entries: %w", err)
	}
	ids := make([]uuid.UUID, len(oldest))
	for i := range oldest {
		ids[i] = oldest[i].ID
	}
	if err := s.db.WithContext(ctx).Delete(&models.DietaryHistoryEntry{}, "id IN ?", ids).Error; err != nil {
		return fmt.Errorf("failed to trim history: %w", err)
	}
	return nil
}

// DailyProgress aggregates the day's consumption. It reads through the same
// Aggregate the limit checker uses, so progress display and limit checks
// always agree.
func (s *HistoryService) DailyProgress(ctx context.Context, t time.Time) (types.DailyProgress, error) {
	entries, err := s.EntriesForDay(ctx, t)
	if err != nil {
		return types.DailyProgress{}, err
	}
	return types.DailyProgress{
		Totals:  Aggregate(entries),
		Entries: len(entries),
	}, nil
}
