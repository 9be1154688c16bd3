package repositories

import (
	"context"

	"ripple/internal/domain/models"
)

// ProfileRepository persists profile metadata, one record per user.
type ProfileRepository interface {
	// GetByUserID retrieves the profile for a user.
	// Returns (nil, nil) when the user never set a profile.
	GetByUserID(ctx context.Context, userID string) (*models.Profile, error)

	// Upsert atomically creates or fully replaces the profile's field set
	// and fills in the record's post-upsert state. Omitted fields are
	// cleared, never merged.
	Upsert(ctx context.Context, profile *models.Profile) error
}
