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

var ErrInvalidProfile = errors.New("invalid profile")

// ProfileService handles the single local user profile.
type ProfileService struct {
	db *gorm.DB
}

// NewProfileService creates a new ProfileService instance.
func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

// Get retrieves the stored profile. On a first run, when no profile has been
// saved yet, it returns (nil, nil) so callers can fall back to defaults.
func (s *ProfileService) Get(ctx context.Context) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := s.db.WithContext(ctx).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	return &profile, nil
}

// Save validates and upserts the profile, assigning an id when absent.
func (s *ProfileService) Save(ctx context.Context, profile *models.UserProfile) error {
	if !models.ValidDietType(profile.DietType) {
		return fmt.Errorf("%w: unknown diet type %q", ErrInvalidProfile, profile.DietType)
	}
	profile.UpdatedAt = time.Now()
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
		profile.CreatedAt = time.Now()
		if err := s.db.WithContext(ctx).Create(profile).Error; err != nil {
			return fmt.Errorf("failed to save profile: %w", err)
		}
		return nil
	}
	if err := s.db.WithContext(ctx).Save(profile).Error; err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

// SetDietType updates just the selected diet type, creating a default
// profile when none exists yet.
func (s *ProfileService) SetDietType(ctx context.Context, diet models.DietType) (*models.UserProfile, error) {
	profile, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		profile = &models.UserProfile{DietType: diet}
	} else {
		profile.DietType = diet
	}
	if err := s.Save(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}
