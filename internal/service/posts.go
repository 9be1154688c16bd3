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
	"ripple/internal/reactions"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type postService struct {
	postRepo     repositories.PostRepository
	reactionRepo repositories.ReactionRepository
	txManager    repositories.TransactionManager
	kinds        *reactions.Registry
	logger       *slog.Logger
}

// NewPostService creates a new post service
func NewPostService(
	postRepo repositories.PostRepository,
	reactionRepo repositories.ReactionRepository,
	txManager repositories.TransactionManager,
	kinds *reactions.Registry,
	logger *slog.Logger,
) services.PostService {
	return &postService{
		postRepo:     postRepo,
		reactionRepo: reactionRepo,
		txManager:    txManager,
		kinds:        kinds,
		logger:       logger,
	}
}

// CreatePost creates a post, repost, or reply. Reposts and replies must
// name a parent post; whether that parent still exists is not checked -
// pruning dangling references is the feed layer's problem, not creation's.
func (s *postService) CreatePost(ctx context.Context, userID string, req *services.CreatePostRequest) (*models.Post, error) {
	if err := validateCreatePost(req); err != nil {
		return nil, err
	}

	post := &models.Post{
		UserID: userID,
		Text:   req.Text,
		Type:   req.Type,
	}

	switch req.Type {
	case models.PostTypePost:
		// Plain posts never carry a parent reference, even if the caller
		// sent one.

	case models.PostTypeRepost, models.PostTypeReply:
		if req.OriginalPostID == "" {
			return nil, &domain.OriginalPostIDMissingError{}
		}
		originalID := req.OriginalPostID
		post.OriginalPostID = &originalID

	default:
		return nil, &domain.InvalidInputError{Field: "type", Expected: "PostType"}
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	s.logger.Info("post created",
		"post_id", post.ID,
		"user_id", userID,
		"type", post.Type,
	)

	return post, nil
}

// React attaches or replaces the user's reaction on a post. The existence
// check and the upsert run in one transaction so a post observed here is
// still the row the reaction lands against.
func (s *postService) React(ctx context.Context, userID, postID string, req *services.CreateReactionRequest) (*models.Reaction, error) {
	if !s.kinds.Known(req.Kind) {
		return nil, &domain.InvalidInputError{Field: "type", Expected: "ReactionKind"}
	}

	reaction := &models.Reaction{
		UserID: userID,
		PostID: postID,
		Kind:   req.Kind,
	}

	err := s.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		post, err := s.postRepo.GetByID(txCtx, postID)
		if err != nil {
			return err
		}
		if post == nil {
			return &domain.PostNotFoundError{PostID: postID}
		}

		// Atomic upsert keyed (user_id, post_id): concurrent reacts for the
		// same pair serialize to a single record.
		return s.reactionRepo.Upsert(txCtx, reaction)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("reaction set",
		"user_id", userID,
		"post_id", postID,
		"kind", reaction.Kind,
	)

	return reaction, nil
}

// Unreact removes the user's reaction and returns its prior state. No
// post-existence pre-check: removing a reaction does not require the post
// to still exist.
func (s *postService) Unreact(ctx context.Context, userID, postID string) (*models.Reaction, error) {
	reaction, err := s.reactionRepo.Delete(ctx, userID, postID)
	if err != nil {
		return nil, err
	}
	if reaction == nil {
		return nil, &domain.ReactionNotFoundError{UserID: userID, PostID: postID}
	}

	s.logger.Info("reaction removed",
		"user_id", userID,
		"post_id", postID,
		"kind", reaction.Kind,
	)

	return reaction, nil
}

func validateCreatePost(req *services.CreatePostRequest) error {
	err := validation.ValidateStruct(req,
		validation.Field(&req.Text,
			validation.Length(0, config.MaxPostTextLength), // empty text is allowed
		),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	return nil
}
