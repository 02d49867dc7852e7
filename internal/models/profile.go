package models

import (
	"time"

	"github.com/google/uuid"
)

// UserProfile is the single local profile the engine evaluates against.
// The engine treats it as immutable during one evaluation pass; it changes
// only through explicit profile updates.
type UserProfile struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	DietType        DietType  `gorm:"size:30;not null" json:"diet_type"`
	Goals           []Goal    `gorm:"serializer:json" json:"goals"`
	EatingSchedule  string    `gorm:"size:100" json:"eating_schedule,omitempty"`
	Allergies       []string  `gorm:"serializer:json" json:"allergies,omitempty"`
	Intolerances    []string  `gorm:"serializer:json" json:"intolerances,omitempty"`
	UnitsPreference string    `gorm:"size:10" json:"units_preference,omitempty"`
	// Fasting window bounds as "HH:MM" local time. Both empty when the
	// profile has no time-restricted window.
	FastingStart string    `gorm:"size:5" json:"fasting_start,omitempty"`
	FastingEnd   string    `gorm:"size:5" json:"fasting_end,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}

// HasGoal reports whether the profile lists the given goal.
func (p *UserProfile) HasGoal(g Goal) bool {
	for _, have := range p.Goals {
		if have == g {
			return true
		}
	}
	return false
}
