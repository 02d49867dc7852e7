package models

import (
	"time"

	"github.com/google/uuid"
)

// Category classifies an inventory item into one of a fixed set of pantry
// sections.
type Category string

const (
	CategoryProduce    Category = "produce"
	CategoryDairy      Category = "dairy"
	CategoryMeat       Category = "meat"
	CategoryPantry     Category = "pantry"
	CategoryFrozen     Category = "frozen"
	CategoryBeverages  Category = "beverages"
	CategoryCondiments Category = "condiments"
	CategoryGrains     Category = "grains"
	CategorySnacks     Category = "snacks"
)

// AllCategories lists every valid item category.
var AllCategories = []Category{
	CategoryProduce,
	CategoryDairy,
	CategoryMeat,
	CategoryPantry,
	CategoryFrozen,
	CategoryBeverages,
	CategoryCondiments,
	CategoryGrains,
	CategorySnacks,
}

// ValidCategory reports whether c is one of the fixed item categories.
func ValidCategory(c Category) bool {
	for _, known := range AllCategories {
		if c == known {
			return true
		}
	}
	return false
}

// InventoryItem is one pantry item. Quantity is nil when the amount on hand
// has never been recorded; that is distinct from a recorded zero, which means
// the item is gone and must not be suggested.
type InventoryItem struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Name          string     `gorm:"size:255;not null" json:"name"`
	Quantity      *float64   `json:"quantity,omitempty"`
	Unit          string     `gorm:"size:20" json:"unit,omitempty"`
	Category      Category   `gorm:"size:20;not null;index" json:"category"`
	FiberG        float64    `gorm:"not null" json:"fiber_g"`
	FatG          float64    `gorm:"not null" json:"fat_g"`
	CarbsG        float64    `gorm:"not null" json:"carbs_g"`
	ProteinG      float64    `gorm:"not null" json:"protein_g"`
	Calories      *float64   `json:"calories,omitempty"`
	GlycemicIndex *float64   `json:"glycemic_index,omitempty"`
	ServingSize   string     `gorm:"size:50" json:"serving_size,omitempty"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (InventoryItem) TableName() string {
	return "inventory_items"
}

// QuantityKnown reports whether the on-hand amount has been recorded.
func (i *InventoryItem) QuantityKnown() bool {
	return i.Quantity != nil
}

// Available reports whether the item can appear in suggestions: either the
// quantity is unknown, or it is a known positive amount.
func (i *InventoryItem) Available() bool {
	return i.Quantity == nil || *i.Quantity > 0
}
