package models

import "time"

// Profile represents a user's profile metadata. One profile per user,
// keyed by UserID. Writes replace the full field set.
type Profile struct {
	UserID    string    `json:"user_id" db:"user_id"`
	Bio       *string   `json:"bio,omitempty" db:"bio"`
	Location  *string   `json:"location,omitempty" db:"location"`
	Website   *string   `json:"website,omitempty" db:"website"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// PhotoServeOptions carries transfer hints for the layer that streams a
// stored photo back to the client.
type PhotoServeOptions struct {
	Root     string            `json:"root"`     // serving root directory
	Dotfiles string            `json:"dotfiles"` // always "deny"
	Headers  map[string]string `json:"headers"`  // x-timestamp, x-sent
}

// PhotoDescriptor describes where and how to stream a stored profile photo.
// The core hands this to a transfer layer; it never streams bytes itself.
type PhotoDescriptor struct {
	PhotoName string            `json:"photo_name"`
	Options   PhotoServeOptions `json:"options"`
}
