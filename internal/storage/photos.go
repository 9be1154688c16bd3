package storage

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"time"

	"ripple/internal/domain"
	"ripple/internal/domain/models"
)

// PhotoStore is filesystem-backed binary storage for profile photos,
// addressed deterministically by user ID. There is no application-level
// locking: concurrent writers for the same user race with last-write-wins.
type PhotoStore struct {
	paths  *Paths
	logger *slog.Logger
}

// NewPhotoStore creates a new PhotoStore over the given path resolver.
func NewPhotoStore(paths *Paths, logger *slog.Logger) *PhotoStore {
	return &PhotoStore{
		paths:  paths,
		logger: logger,
	}
}

// Save writes the photo bytes to the user's deterministic path, silently
// overwriting any previous photo. The bytes land in a temp file in the
// target directory first and are renamed into place, so concurrent readers
// only ever observe an absent file or a complete one.
func (s *PhotoStore) Save(userID string, content io.Reader) error {
	if err := ValidateID("userId", userID); err != nil {
		return err
	}

	dir := s.paths.ProfileRoot()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &domain.StorageError{Op: "create photo directory", Err: err}
	}

	tmp, err := os.CreateTemp(dir, s.paths.ProfilePhotoName(userID)+".tmp-*")
	if err != nil {
		return &domain.StorageError{Op: "create temp photo file", Err: err}
	}
	tmpName := tmp.Name()

	if _, err := io.Copy(tmp, content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &domain.StorageError{Op: "write photo", Err: err}
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &domain.StorageError{Op: "sync photo", Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &domain.StorageError{Op: "close photo file", Err: err}
	}

	dest := s.paths.ProfilePhotoPath(userID)
	if err := os.Rename(tmpName, dest); err != nil {
		os.Remove(tmpName)
		return &domain.StorageError{Op: "rename photo into place", Err: err}
	}

	s.logger.Debug("profile photo saved", "user_id", userID, "path", dest)
	return nil
}

// Stat checks that the user's photo exists and is a regular file, and
// returns a descriptor for the transfer layer to stream it.
func (s *PhotoStore) Stat(userID string) (*models.PhotoDescriptor, error) {
	if err := ValidateID("userId", userID); err != nil {
		return nil, err
	}

	path := s.paths.ProfilePhotoPath(userID)
	info, err := os.Stat(path)
	if err != nil {
		// Absent and unreadable collapse to the same caller-visible kind,
		// but stay distinguishable in the logs.
		s.logger.Debug("profile photo stat failed", "user_id", userID, "error", err)
		return nil, &domain.PhotoNotFoundError{UserID: userID}
	}
	if !info.Mode().IsRegular() {
		s.logger.Warn("profile photo path is not a regular file", "user_id", userID, "path", path)
		return nil, &domain.PhotoNotFoundError{UserID: userID}
	}

	return &models.PhotoDescriptor{
		PhotoName: s.paths.ProfilePhotoName(userID),
		Options: models.PhotoServeOptions{
			Root:     s.paths.ProfileRoot(),
			Dotfiles: "deny",
			Headers: map[string]string{
				"x-timestamp": strconv.FormatInt(time.Now().UnixMilli(), 10),
				"x-sent":      "true",
			},
		},
	}, nil
}

// Remove deletes the user's photo. A missing file is PhotoNotFound; any
// other removal failure surfaces as a storage error so callers can tell
// the two apart.
func (s *PhotoStore) Remove(userID string) error {
	if err := ValidateID("userId", userID); err != nil {
		return err
	}

	path := s.paths.ProfilePhotoPath(userID)
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return &domain.PhotoNotFoundError{UserID: userID}
		}
		return &domain.StorageError{Op: fmt.Sprintf("remove photo %s", path), Err: err}
	}

	s.logger.Debug("profile photo removed", "user_id", userID, "path", path)
	return nil
}
