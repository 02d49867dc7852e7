package models

import (
	"time"

	"github.com/google/uuid"
)

// DietaryHistoryEntry records one consumption event. Entries are append-only:
// they are filtered and aggregated for a day, or deleted by id, but never
// mutated. Macro fields hold the amounts actually consumed, prorated from the
// source item at logging time.
type DietaryHistoryEntry struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ConsumedAt time.Time `gorm:"not null;index" json:"consumed_at"`
	ItemID     uuid.UUID `gorm:"type:uuid" json:"item_id"`
	ItemName   string    `gorm:"size:255;not null" json:"item_name"`
	Quantity   float64   `gorm:"not null" json:"quantity"`
	CarbsG     float64   `json:"carbs_g"`
	ProteinG   float64   `json:"protein_g"`
	FatG       float64   `json:"fat_g"`
	FiberG     float64   `json:"fiber_g"`
	Calories   float64   `json:"calories"`
	// Violations captures the rule warnings active at logging time, so the
	// record keeps what the user was told even if rules change later.
	Violations      []string `gorm:"serializer:json" json:"violations,omitempty"`
	GlucoseRelevant bool     `json:"glucose_relevant"`
}

func (DietaryHistoryEntry) TableName() string {
	return "dietary_history"
}
