package services

import (
	"context"

	"ripple/internal/domain/models"
)

// PostService defines the business logic for posts and reactions.
type PostService interface {
	// CreatePost creates a post, repost, or reply for the given author.
	// Reposts and replies must carry the parent post's ID; plain posts
	// must not.
	CreatePost(ctx context.Context, userID string, req *CreatePostRequest) (*models.Post, error)

	// React attaches the user's reaction to a post, replacing any prior
	// reaction by the same user on the same post. The post must exist.
	React(ctx context.Context, userID, postID string, req *CreateReactionRequest) (*models.Reaction, error)

	// Unreact removes the user's reaction from a post and returns the
	// removed record. Fails if no reaction exists for the pair.
	Unreact(ctx context.Context, userID, postID string) (*models.Reaction, error)
}

// CreatePostRequest represents a post creation request
type CreatePostRequest struct {
	Type           models.PostType `json:"type"`
	Text           string          `json:"text"`
	OriginalPostID string          `json:"original_post_id,omitempty"`
}

// CreateReactionRequest represents a reaction request
type CreateReactionRequest struct {
	Kind string `json:"type"`
}
