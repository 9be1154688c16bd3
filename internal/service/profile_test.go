package service

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"ripple/internal/domain"
	"ripple/internal/domain/models"
	"ripple/internal/domain/services"
	"ripple/internal/storage"
)

// fakeProfileRepo is an in-memory ProfileRepository with full-replacement
// upsert semantics.
type fakeProfileRepo struct {
	profiles map[string]models.Profile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[string]models.Profile)}
}

func (f *fakeProfileRepo) GetByUserID(ctx context.Context, userID string) (*models.Profile, error) {
	profile, ok := f.profiles[userID]
	if !ok {
		return nil, nil
	}
	return &profile, nil
}

func (f *fakeProfileRepo) Upsert(ctx context.Context, profile *models.Profile) error {
	now := time.Now()
	if existing, ok := f.profiles[profile.UserID]; ok {
		profile.CreatedAt = existing.CreatedAt
	} else {
		profile.CreatedAt = now
	}
	profile.UpdatedAt = now
	f.profiles[profile.UserID] = *profile
	return nil
}

func newTestProfileService(t *testing.T) (services.ProfileService, *storage.Paths) {
	t.Helper()
	paths := storage.NewPaths(t.TempDir())
	photos := storage.NewPhotoStore(paths, testLogger())
	return NewProfileService(newFakeProfileRepo(), photos, testLogger()), paths
}

func strPtr(s string) *string { return &s }

func TestProfileGetBeforeSet(t *testing.T) {
	svc, _ := newTestProfileService(t)

	_, err := svc.Get(context.Background(), "u1")
	var notFound *domain.UserProfileNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("Get error = %v, want UserProfileNotFoundError", err)
	}
}

func TestProfileSetAndGet(t *testing.T) {
	svc, _ := newTestProfileService(t)
	ctx := context.Background()

	_, err := svc.Set(ctx, "u1", &services.SetProfileRequest{
		Bio:      strPtr("hello"),
		Location: strPtr("porto"),
		Website:  strPtr("https://example.com"),
	})
	if err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	profile, err := svc.Get(ctx, "u1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if profile.Bio == nil || *profile.Bio != "hello" {
		t.Errorf("Bio = %v, want %q", profile.Bio, "hello")
	}
	if profile.Location == nil || *profile.Location != "porto" {
		t.Errorf("Location = %v, want %q", profile.Location, "porto")
	}
	if profile.Website == nil || *profile.Website != "https://example.com" {
		t.Errorf("Website = %v, want %q", profile.Website, "https://example.com")
	}
}

func TestProfileSetReplacesFully(t *testing.T) {
	svc, _ := newTestProfileService(t)
	ctx := context.Background()

	if _, err := svc.Set(ctx, "u1", &services.SetProfileRequest{
		Bio:      strPtr("hello"),
		Location: strPtr("porto"),
	}); err != nil {
		t.Fatalf("first Set failed: %v", err)
	}

	// Second write omits location: it must be cleared, not retained
	if _, err := svc.Set(ctx, "u1", &services.SetProfileRequest{
		Bio: strPtr("changed"),
	}); err != nil {
		t.Fatalf("second Set failed: %v", err)
	}

	profile, err := svc.Get(ctx, "u1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if profile.Bio == nil || *profile.Bio != "changed" {
		t.Errorf("Bio = %v, want %q", profile.Bio, "changed")
	}
	if profile.Location != nil {
		t.Errorf("Location = %q, want cleared", *profile.Location)
	}
}

func TestProfileSetValidation(t *testing.T) {
	tests := []struct {
		name string
		req  services.SetProfileRequest
	}{
		{name: "malformed website", req: services.SetProfileRequest{Website: strPtr("not a url")}},
		{name: "bio too long", req: services.SetProfileRequest{Bio: strPtr(strings.Repeat("a", 256))}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestProfileService(t)
			_, err := svc.Set(context.Background(), "u1", &tt.req)
			if !errors.Is(err, domain.ErrValidation) {
				t.Errorf("Set error = %v, want ErrValidation", err)
			}
		})
	}
}

func TestSetPhotoRejectsWrongMime(t *testing.T) {
	svc, paths := newTestProfileService(t)

	err := svc.SetPhoto(context.Background(), "u1", &services.UploadedPhoto{
		ContentType: "image/png",
		Content:     strings.NewReader("png-bytes"),
	})
	var badMime *domain.InvalidMimeTypeError
	if !errors.As(err, &badMime) {
		t.Fatalf("SetPhoto error = %v, want InvalidMimeTypeError", err)
	}

	// Rejected before any filesystem interaction
	if _, err := os.Stat(paths.ProfileRoot()); !os.IsNotExist(err) {
		t.Error("photo directory created despite rejected upload")
	}
}

func TestPhotoLifecycleThroughService(t *testing.T) {
	svc, _ := newTestProfileService(t)
	ctx := context.Background()
	const userID = "u1"

	// No photo yet
	_, err := svc.GetPhoto(ctx, userID)
	var notFound *domain.PhotoNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("GetPhoto before upload error = %v, want PhotoNotFoundError", err)
	}

	if err := svc.SetPhoto(ctx, userID, &services.UploadedPhoto{
		ContentType: "image/jpeg",
		Content:     strings.NewReader("jpeg-bytes"),
	}); err != nil {
		t.Fatalf("SetPhoto failed: %v", err)
	}

	desc, err := svc.GetPhoto(ctx, userID)
	if err != nil {
		t.Fatalf("GetPhoto failed: %v", err)
	}
	if desc.PhotoName != "u1.jpg" {
		t.Errorf("PhotoName = %q, want %q", desc.PhotoName, "u1.jpg")
	}

	if err := svc.DeletePhoto(ctx, userID); err != nil {
		t.Fatalf("DeletePhoto failed: %v", err)
	}

	if err := svc.DeletePhoto(ctx, userID); !errors.As(err, &notFound) {
		t.Fatalf("second DeletePhoto error = %v, want PhotoNotFoundError", err)
	}
}
