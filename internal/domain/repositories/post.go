package repositories

import (
	"context"

	"ripple/internal/domain/models"
)

// PostRepository persists post records. Creation is append-only: no update
// or delete operations exist at this layer.
type PostRepository interface {
	// Create inserts a new post and fills in the store-assigned ID and
	// CreatedAt on the given record.
	Create(ctx context.Context, post *models.Post) error

	// GetByID retrieves a post by ID.
	// Returns (nil, nil) when no post with that ID exists.
	GetByID(ctx context.Context, id string) (*models.Post, error)
}

// ReactionRepository persists reaction records keyed by (user, post).
type ReactionRepository interface {
	// Upsert atomically creates the reaction or replaces the kind of the
	// existing record for the same (user, post) pair, and fills in the
	// record's post-upsert state. Single atomic statement: two concurrent
	// upserts for the same pair serialize to one resulting record.
	Upsert(ctx context.Context, reaction *models.Reaction) error

	// Delete atomically removes the reaction for (userID, postID) and
	// returns its prior state. Returns (nil, nil) when no such reaction
	// exists.
	Delete(ctx context.Context, userID, postID string) (*models.Reaction, error)
}
