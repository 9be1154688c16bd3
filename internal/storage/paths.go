package storage

import (
	"path/filepath"
	"regexp"

	"ripple/internal/domain"
)

// photoExt is the single extension photos are stored under. One photo per
// identity; re-uploads overwrite.
const photoExt = ".jpg"

// idPattern restricts identifiers used in path construction to a safe
// character set. Anything else (dots, separators, traversal sequences) is
// rejected before a path is ever built.
var idPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ValidateID checks that an identifier is safe to embed in a filesystem
// path.
func ValidateID(field, id string) error {
	if !idPattern.MatchString(id) {
		return &domain.InvalidInputError{Field: field, Expected: "identifier ([A-Za-z0-9_-]+)"}
	}
	return nil
}

// Paths derives deterministic filesystem locations for stored photos from
// a configured asset root. Pure mapping only: identical input yields
// identical output, and no path is checked for existence.
type Paths struct {
	assetRoot string
}

// NewPaths creates a Paths rooted at the given asset directory.
func NewPaths(assetRoot string) *Paths {
	return &Paths{assetRoot: assetRoot}
}

// ProfileRoot returns the directory profile photos are stored under.
func (p *Paths) ProfileRoot() string {
	return filepath.Join(p.assetRoot, "profile")
}

// ProfilePhotoName returns the file name of a user's profile photo.
func (p *Paths) ProfilePhotoName(userID string) string {
	return userID + photoExt
}

// ProfilePhotoPath returns the full path of a user's profile photo.
func (p *Paths) ProfilePhotoPath(userID string) string {
	return filepath.Join(p.ProfileRoot(), p.ProfilePhotoName(userID))
}

// AttachmentRoot returns the directory attachment photos are stored under.
func (p *Paths) AttachmentRoot() string {
	return filepath.Join(p.assetRoot, "attachment")
}

// AttachmentPhotoName returns the file name of an attachment photo.
func (p *Paths) AttachmentPhotoName(attachmentID string) string {
	return attachmentID + photoExt
}

// AttachmentPhotoPath returns the full path of an attachment photo.
func (p *Paths) AttachmentPhotoPath(attachmentID string) string {
	return filepath.Join(p.AttachmentRoot(), p.AttachmentPhotoName(attachmentID))
}
