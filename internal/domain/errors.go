package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// HTTPError defines errors that can be mapped to HTTP status codes.
// Implementing this interface lets the transport boundary handle new error
// kinds without enumerating every concrete type.
type HTTPError interface {
	error
	StatusCode() int
}

// Sentinel errors - use with errors.Is() to classify a failure without
// caring which concrete kind it is.
var (
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
	ErrStorage      = errors.New("storage failure")
)

// InvalidInputError indicates a request field outside its allowed domain,
// e.g. a post type that is not one of the known kinds.
type InvalidInputError struct {
	Field    string // offending field name
	Expected string // expected domain, e.g. "PostType"
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid value for %q: expected %s", e.Field, e.Expected)
}

func (e *InvalidInputError) StatusCode() int { return http.StatusBadRequest }

// Is allows errors.Is() to match against ErrValidation
func (e *InvalidInputError) Is(target error) bool { return target == ErrValidation }

// OriginalPostIDMissingError indicates a repost or reply without a parent
// post reference.
type OriginalPostIDMissingError struct{}

func (e *OriginalPostIDMissingError) Error() string {
	return "original post id is required for reposts and replies"
}

func (e *OriginalPostIDMissingError) StatusCode() int { return http.StatusBadRequest }

func (e *OriginalPostIDMissingError) Is(target error) bool { return target == ErrValidation }

// PostNotFoundError indicates the referenced post does not exist.
type PostNotFoundError struct {
	PostID string
}

func (e *PostNotFoundError) Error() string {
	return fmt.Sprintf("post %q not found", e.PostID)
}

func (e *PostNotFoundError) StatusCode() int { return http.StatusNotFound }

func (e *PostNotFoundError) Is(target error) bool { return target == ErrNotFound }

// ReactionNotFoundError indicates an un-react for a (user, post) pair that
// holds no reaction.
type ReactionNotFoundError struct {
	UserID string
	PostID string
}

func (e *ReactionNotFoundError) Error() string {
	return fmt.Sprintf("no reaction by user %q on post %q", e.UserID, e.PostID)
}

func (e *ReactionNotFoundError) StatusCode() int { return http.StatusNotFound }

func (e *ReactionNotFoundError) Is(target error) bool { return target == ErrNotFound }

// UserProfileNotFoundError indicates a profile read for a user that never
// set one. Reads never auto-create.
type UserProfileNotFoundError struct {
	UserID string
}

func (e *UserProfileNotFoundError) Error() string {
	return fmt.Sprintf("profile for user %q not found", e.UserID)
}

func (e *UserProfileNotFoundError) StatusCode() int { return http.StatusNotFound }

func (e *UserProfileNotFoundError) Is(target error) bool { return target == ErrNotFound }

// InvalidMimeTypeError indicates an uploaded photo that is not the accepted
// image type. Raised before any filesystem interaction.
type InvalidMimeTypeError struct {
	Got string
}

func (e *InvalidMimeTypeError) Error() string {
	return fmt.Sprintf("unsupported mime type %q: only image/jpeg is accepted", e.Got)
}

func (e *InvalidMimeTypeError) StatusCode() int { return http.StatusUnsupportedMediaType }

func (e *InvalidMimeTypeError) Is(target error) bool { return target == ErrValidation }

// PhotoNotFoundError indicates the photo file is absent or is not a regular
// file at its deterministic path.
type PhotoNotFoundError struct {
	UserID string
}

func (e *PhotoNotFoundError) Error() string {
	return fmt.Sprintf("profile photo for user %q not found", e.UserID)
}

func (e *PhotoNotFoundError) StatusCode() int { return http.StatusNotFound }

func (e *PhotoNotFoundError) Is(target error) bool { return target == ErrNotFound }

// StorageError wraps an underlying filesystem failure so callers can tell a
// retryable I/O problem apart from not-found and validation outcomes.
type StorageError struct {
	Op  string // operation being attempted, e.g. "save photo"
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) StatusCode() int { return http.StatusInternalServerError }

func (e *StorageError) Unwrap() error { return e.Err }

// Is allows errors.Is() to match against ErrStorage
func (e *StorageError) Is(target error) bool { return target == ErrStorage }
