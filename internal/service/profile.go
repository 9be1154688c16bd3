package service

import (
	"context"
	"fmt"
	"log/slog"

	"ripple/internal/config"
	"ripple/internal/domain"
	"ripple/internal/domain/models"
	"ripple/internal/domain/repositories"
	"ripple/internal/domain/services"
	"ripple/internal/storage"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// acceptedPhotoMime is the single image type profile photos may use.
const acceptedPhotoMime = "image/jpeg"

type profileService struct {
	profileRepo repositories.ProfileRepository
	photos      *storage.PhotoStore
	logger      *slog.Logger
}

// NewProfileService creates a new profile service
func NewProfileService(
	profileRepo repositories.ProfileRepository,
	photos *storage.PhotoStore,
	logger *slog.Logger,
) services.ProfileService {
	return &profileService{
		profileRepo: profileRepo,
		photos:      photos,
		logger:      logger,
	}
}

// Get retrieves a user's profile. Reads never create one.
func (s *profileService) Get(ctx context.Context, userID string) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, &domain.UserProfileNotFoundError{UserID: userID}
	}
	return profile, nil
}

// Set creates or fully replaces the user's profile. Fields omitted from
// the request clear their stored values - no merging with the previous
// record.
func (s *profileService) Set(ctx context.Context, userID string, req *services.SetProfileRequest) (*models.Profile, error) {
	if err := validateSetProfile(req); err != nil {
		return nil, err
	}

	profile := &models.Profile{
		UserID:   userID,
		Bio:      req.Bio,
		Location: req.Location,
		Website:  req.Website,
	}

	if err := s.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, err
	}

	s.logger.Info("profile updated", "user_id", userID)

	return profile, nil
}

// SetPhoto validates the upload's mime type and stores the bytes. The mime
// check happens before any filesystem interaction.
func (s *profileService) SetPhoto(ctx context.Context, userID string, upload *services.UploadedPhoto) error {
	if upload.ContentType != acceptedPhotoMime {
		return &domain.InvalidMimeTypeError{Got: upload.ContentType}
	}

	if err := s.photos.Save(userID, upload.Content); err != nil {
		return err
	}

	s.logger.Info("profile photo uploaded", "user_id", userID)
	return nil
}

// GetPhoto returns a descriptor for the transfer layer to stream the photo.
func (s *profileService) GetPhoto(ctx context.Context, userID string) (*models.PhotoDescriptor, error) {
	return s.photos.Stat(userID)
}

// DeletePhoto removes the user's profile photo.
func (s *profileService) DeletePhoto(ctx context.Context, userID string) error {
	if err := s.photos.Remove(userID); err != nil {
		return err
	}

	s.logger.Info("profile photo deleted", "user_id", userID)
	return nil
}

func validateSetProfile(req *services.SetProfileRequest) error {
	err := validation.ValidateStruct(req,
		validation.Field(&req.Bio, validation.Length(0, config.MaxBioLength)),
		validation.Field(&req.Location, validation.Length(0, config.MaxLocationLength)),
		validation.Field(&req.Website,
			validation.Length(0, config.MaxWebsiteLength),
			is.URL,
		),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	return nil
}
