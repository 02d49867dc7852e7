package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pageza/pantrycoach/internal/models"
)

var (
	ErrItemNotFound = errors.New("inventory item not found")
	ErrInvalidItem  = errors.New("invalid inventory item")
)

// InventoryService owns the pantry inventory store. The suggestion engine
// never touches it directly; callers load snapshots here and apply the
// engine's output back through Consume.
type InventoryService struct {
	db *gorm.DB
}

// NewInventoryService creates a new InventoryService instance.
func NewInventoryService(db *gorm.DB) *InventoryService {
	return &InventoryService{db: db}
}

// List returns every inventory item.
func (s *InventoryService) List(ctx context.Context) ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	if err := s.db.WithContext(ctx).Order("name").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}
	return items, nil
}

// Get retrieves one item by id.
func (s *InventoryService) Get(ctx context.Context, id uuid.UUID) (*models.InventoryItem, error) {
	var item models.InventoryItem
	if err := s.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to get inventory item: %w", err)
	}
	return &item, nil
}

// FindByName retrieves the first item whose name matches case-insensitively.
func (s *InventoryService) FindByName(ctx context.Context, name string) (*models.InventoryItem, error) {
	var item models.InventoryItem
	if err := s.db.WithContext(ctx).First(&item, "LOWER(name) = LOWER(?)", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to find inventory item: %w", err)
	}
	return &item, nil
}

// Add validates and stores a new item, assigning an id when absent.
func (s *InventoryService) Add(ctx context.Context, item *models.InventoryItem) error {
	if err := validateItem(item); err != nil {
		return err
	}
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	item.UpdatedAt = time.Now()
	if err := s.db.WithContext(ctx).Create(item).Error; err != nil {
		return fmt.Errorf("failed to add inventory item: %w", err)
	}
	return nil
}

// AddBatch stores the given items, skipping invalid ones. It returns the
// number actually stored.
func (s *InventoryService) AddBatch(ctx context.Context, items []models.InventoryItem) (int, error) {
	added := 0
	for i := range items {
		if err := s.Add(ctx, &items[i]); err != nil {
			if errors.Is(err, ErrInvalidItem) {
				continue
			}
			return added, err
		}
		added++
	}
	return added, nil
}

// Update saves changes to an existing item.
func (s *InventoryService) Update(ctx context.Context, item *models.InventoryItem) error {
	if err := validateItem(item); err != nil {
		return err
	}
	item.UpdatedAt = time.Now()
	result := s.db.WithContext(ctx).Save(item)
	if result.Error != nil {
		return fmt.Errorf("failed to update inventory item: %w", result.Error)
	}
	return nil
}

// Remove deletes an item by id.
func (s *InventoryService) Remove(ctx context.Context, id uuid.UUID) error {
	result := s.db.WithContext(ctx).Delete(&models.InventoryItem{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to remove inventory item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrItemNotFound
	}
	return nil
}

// Consume applies one consumption event as a single unit: it appends the
// history entry and reduces or removes the item inside one transaction, so
// no caller ever observes the item gone without its entry or vice versa.
// Macros on the entry are the item's per-unit macros prorated by the
// consumed quantity. An unknown on-hand quantity stays unknown.
func (s *InventoryService) Consume(ctx context.Context, id uuid.UUID, qty float64, violations []string, glucoseRelevant bool, now time.Time) (*models.DietaryHistoryEntry, error) {
	if qty <= 0 {
		return nil, fmt.Errorf("%w: consumed quantity must be positive", ErrInvalidItem)
	}

	var entry *models.DietaryHistoryEntry
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item models.InventoryItem
		if err := tx.First(&item, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrItemNotFound
			}
			return fmt.Errorf("failed to load inventory item: %w", err)
		}

		entry = consumptionEntry(&item, qty, violations, glucoseRelevant, now)
		if err := tx.Create(entry).Error; err != nil {
			return fmt.Errorf("failed to record consumption: %w", err)
		}

		if item.Quantity == nil {
			return nil
		}
		remaining := *item.Quantity - qty
		if remaining <= 0 {
			if err := tx.Delete(&item).Error; err != nil {
				return fmt.Errorf("failed to remove depleted item: %w", err)
			}
			return nil
		}
		item.Quantity = &remaining
		item.UpdatedAt = now
		if err := tx.Save(&item).Error; err != nil {
			return fmt.Errorf("failed to reduce item quantity: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// consumptionEntry builds the immutable history record for eating qty units
// of the item, with macros scaled per unit consumed.
func consumptionEntry(item *models.InventoryItem, qty float64, violations []string, glucoseRelevant bool, now time.Time) *models.DietaryHistoryEntry {
	entry := &models.DietaryHistoryEntry{
		ID:              uuid.New(),
		ConsumedAt:      now,
		ItemID:          item.ID,
		ItemName:        item.Name,
		Quantity:        qty,
		CarbsG:          item.CarbsG * qty,
		ProteinG:        item.ProteinG * qty,
		FatG:            item.FatG * qty,
		FiberG:          item.FiberG * qty,
		Violations:      violations,
		GlucoseRelevant: glucoseRelevant,
	}
	if item.Calories != nil {
		entry.Calories = *item.Calories * qty
	}
	return entry
}

func validateItem(item *models.InventoryItem) error {
	if item.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidItem)
	}
	if !models.ValidCategory(item.Category) {
		return fmt.Errorf("%w: unknown category %q", ErrInvalidItem, item.Category)
	}
	if item.FiberG < 0 || item.FatG < 0 || item.CarbsG < 0 || item.ProteinG < 0 {
		return fmt.Errorf("%w: macro grams must be non-negative", ErrInvalidItem)
	}
	if item.Quantity != nil && *item.Quantity < 0 {
		return fmt.Errorf("%w: quantity must be non-negative or unknown", ErrInvalidItem)
	}
	return nil
}
