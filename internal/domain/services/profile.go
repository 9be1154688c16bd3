package services

import (
	"context"
	"io"

	"ripple/internal/domain/models"
)

// ProfileService defines the business logic for profile metadata and the
// profile photo.
type ProfileService interface {
	// Get retrieves a user's profile. Never creates one on read.
	Get(ctx context.Context, userID string) (*models.Profile, error)

	// Set creates or fully replaces the user's profile fields. A field
	// omitted from the request is cleared, not retained.
	Set(ctx context.Context, userID string, req *SetProfileRequest) (*models.Profile, error)

	// SetPhoto stores the uploaded photo as the user's profile photo,
	// silently overwriting any previous one. Only image/jpeg is accepted.
	SetPhoto(ctx context.Context, userID string, upload *UploadedPhoto) error

	// GetPhoto returns a descriptor for streaming the user's photo. The
	// transfer layer does the streaming; this never reads the bytes.
	GetPhoto(ctx context.Context, userID string) (*models.PhotoDescriptor, error)

	// DeletePhoto removes the user's profile photo.
	DeletePhoto(ctx context.Context, userID string) error
}

// SetProfileRequest represents a full profile replacement request
type SetProfileRequest struct {
	Bio      *string `json:"bio,omitempty"`
	Location *string `json:"location,omitempty"`
	Website  *string `json:"website,omitempty"`
}

// UploadedPhoto represents a photo uploaded by the user
type UploadedPhoto struct {
	ContentType string
	Content     io.Reader
}
