package models

import "time"

// PostType enumerates the kinds of posts a user can create.
type PostType string

const (
	PostTypePost   PostType = "post"
	PostTypeRepost PostType = "repost"
	PostTypeReply  PostType = "reply"
)

// Post represents a single post record. Posts are append-only: once created
// they are never mutated or deleted.
type Post struct {
	ID             string    `json:"id" db:"id"`
	UserID         string    `json:"user_id" db:"user_id"`
	Text           string    `json:"text" db:"text"`
	Type           PostType  `json:"type" db:"type"`
	OriginalPostID *string   `json:"original_post_id,omitempty" db:"original_post_id"` // set only for reposts and replies
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

// Reaction represents a user's single typed response to a post. The
// (UserID, PostID) pair is the identity: at most one reaction exists per
// pair, and re-reacting replaces Kind in place.
type Reaction struct {
	UserID    string    `json:"user_id" db:"user_id"`
	PostID    string    `json:"post_id" db:"post_id"`
	Kind      string    `json:"type" db:"kind"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
