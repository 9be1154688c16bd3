package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"ripple/internal/domain"
	"ripple/internal/domain/models"
	"ripple/internal/domain/repositories"
	"ripple/internal/domain/services"
	"ripple/internal/reactions"
)

// fakePostRepo is an in-memory PostRepository.
type fakePostRepo struct {
	posts  map[string]models.Post
	nextID int
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: make(map[string]models.Post)}
}

func (f *fakePostRepo) Create(ctx context.Context, post *models.Post) error {
	f.nextID++
	post.ID = fmt.Sprintf("p%d", f.nextID)
	post.CreatedAt = time.Now()
	f.posts[post.ID] = *post
	return nil
}

func (f *fakePostRepo) GetByID(ctx context.Context, id string) (*models.Post, error) {
	post, ok := f.posts[id]
	if !ok {
		return nil, nil
	}
	return &post, nil
}

// fakeReactionRepo is an in-memory ReactionRepository with upsert semantics.
type fakeReactionRepo struct {
	reactions map[string]models.Reaction
}

func newFakeReactionRepo() *fakeReactionRepo {
	return &fakeReactionRepo{reactions: make(map[string]models.Reaction)}
}

func reactionKey(userID, postID string) string {
	return userID + "|" + postID
}

func (f *fakeReactionRepo) Upsert(ctx context.Context, reaction *models.Reaction) error {
	key := reactionKey(reaction.UserID, reaction.PostID)
	now := time.Now()
	if existing, ok := f.reactions[key]; ok {
		existing.Kind = reaction.Kind
		existing.UpdatedAt = now
		f.reactions[key] = existing
		*reaction = existing
		return nil
	}
	reaction.CreatedAt = now
	reaction.UpdatedAt = now
	f.reactions[key] = *reaction
	return nil
}

func (f *fakeReactionRepo) Delete(ctx context.Context, userID, postID string) (*models.Reaction, error) {
	key := reactionKey(userID, postID)
	existing, ok := f.reactions[key]
	if !ok {
		return nil, nil
	}
	delete(f.reactions, key)
	return &existing, nil
}

// fakeTxManager runs the function directly; the fakes are already atomic.
type fakeTxManager struct{}

func (fakeTxManager) ExecTx(ctx context.Context, fn repositories.TxFn) error {
	return fn(ctx)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestPostService(t *testing.T) (services.PostService, *fakePostRepo, *fakeReactionRepo) {
	t.Helper()
	kinds, err := reactions.NewRegistry()
	if err != nil {
		t.Fatalf("load reaction kinds: %v", err)
	}
	postRepo := newFakePostRepo()
	reactionRepo := newFakeReactionRepo()
	svc := NewPostService(postRepo, reactionRepo, fakeTxManager{}, kinds, testLogger())
	return svc, postRepo, reactionRepo
}

func TestCreatePost(t *testing.T) {
	tests := []struct {
		name         string
		req          services.CreatePostRequest
		wantErr      error
		wantOriginal string // expected OriginalPostID; "" means absent
	}{
		{
			name: "plain post",
			req:  services.CreatePostRequest{Type: models.PostTypePost, Text: "hello"},
		},
		{
			name: "plain post ignores original post id",
			req:  services.CreatePostRequest{Type: models.PostTypePost, Text: "hello", OriginalPostID: "p1"},
		},
		{
			name: "plain post with empty text",
			req:  services.CreatePostRequest{Type: models.PostTypePost},
		},
		{
			name:         "reply with parent",
			req:          services.CreatePostRequest{Type: models.PostTypeReply, Text: "hi", OriginalPostID: "p1"},
			wantOriginal: "p1",
		},
		{
			name:         "repost with parent",
			req:          services.CreatePostRequest{Type: models.PostTypeRepost, OriginalPostID: "p7"},
			wantOriginal: "p7",
		},
		{
			name:    "reply without parent",
			req:     services.CreatePostRequest{Type: models.PostTypeReply, Text: "hi", OriginalPostID: ""},
			wantErr: &domain.OriginalPostIDMissingError{},
		},
		{
			name:    "repost without parent",
			req:     services.CreatePostRequest{Type: models.PostTypeRepost},
			wantErr: &domain.OriginalPostIDMissingError{},
		},
		{
			name:    "unknown type",
			req:     services.CreatePostRequest{Type: "banana", Text: "hi"},
			wantErr: &domain.InvalidInputError{},
		},
		{
			name:    "text too long",
			req:     services.CreatePostRequest{Type: models.PostTypePost, Text: strings.Repeat("a", 1001)},
			wantErr: domain.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := newTestPostService(t)

			post, err := svc.CreatePost(context.Background(), "u1", &tt.req)
			if tt.wantErr != nil {
				if err == nil {
					t.Fatalf("CreatePost succeeded, want error %v", tt.wantErr)
				}
				if !errors.Is(err, domain.ErrValidation) {
					t.Errorf("CreatePost error = %v, should match ErrValidation", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("CreatePost failed: %v", err)
			}

			if post.ID == "" {
				t.Error("created post has no ID")
			}
			if post.UserID != "u1" {
				t.Errorf("UserID = %q, want %q", post.UserID, "u1")
			}
			if post.Type != tt.req.Type {
				t.Errorf("Type = %q, want %q", post.Type, tt.req.Type)
			}
			if post.Text != tt.req.Text {
				t.Errorf("Text = %q, want %q", post.Text, tt.req.Text)
			}
			if tt.wantOriginal == "" {
				if post.OriginalPostID != nil {
					t.Errorf("OriginalPostID = %q, want absent", *post.OriginalPostID)
				}
			} else {
				if post.OriginalPostID == nil || *post.OriginalPostID != tt.wantOriginal {
					t.Errorf("OriginalPostID = %v, want %q", post.OriginalPostID, tt.wantOriginal)
				}
			}
		})
	}
}

func TestCreatePostErrorKinds(t *testing.T) {
	svc, _, _ := newTestPostService(t)

	_, err := svc.CreatePost(context.Background(), "u1", &services.CreatePostRequest{
		Type: models.PostTypeReply, Text: "hi",
	})
	var missing *domain.OriginalPostIDMissingError
	if !errors.As(err, &missing) {
		t.Errorf("reply without parent error = %v, want OriginalPostIDMissingError", err)
	}

	_, err = svc.CreatePost(context.Background(), "u1", &services.CreatePostRequest{
		Type: "story", Text: "hi",
	})
	var invalid *domain.InvalidInputError
	if !errors.As(err, &invalid) {
		t.Fatalf("unknown type error = %v, want InvalidInputError", err)
	}
	if invalid.Field != "type" || invalid.Expected != "PostType" {
		t.Errorf("InvalidInputError = {%q %q}, want {%q %q}", invalid.Field, invalid.Expected, "type", "PostType")
	}
}

func TestReact(t *testing.T) {
	svc, _, reactionRepo := newTestPostService(t)
	ctx := context.Background()

	post, err := svc.CreatePost(ctx, "author", &services.CreatePostRequest{Type: models.PostTypePost, Text: "hi"})
	if err != nil {
		t.Fatalf("CreatePost failed: %v", err)
	}

	reaction, err := svc.React(ctx, "u1", post.ID, &services.CreateReactionRequest{Kind: "like"})
	if err != nil {
		t.Fatalf("React failed: %v", err)
	}
	if reaction.Kind != "like" {
		t.Errorf("Kind = %q, want %q", reaction.Kind, "like")
	}

	// Reacting again with a different kind replaces the record in place
	reaction, err = svc.React(ctx, "u1", post.ID, &services.CreateReactionRequest{Kind: "love"})
	if err != nil {
		t.Fatalf("second React failed: %v", err)
	}
	if reaction.Kind != "love" {
		t.Errorf("Kind after re-react = %q, want %q", reaction.Kind, "love")
	}
	if len(reactionRepo.reactions) != 1 {
		t.Errorf("reaction count = %d, want exactly 1 per (user, post)", len(reactionRepo.reactions))
	}
}

func TestReactPostNotFound(t *testing.T) {
	svc, _, reactionRepo := newTestPostService(t)

	_, err := svc.React(context.Background(), "u1", "missing", &services.CreateReactionRequest{Kind: "like"})
	var notFound *domain.PostNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("React error = %v, want PostNotFoundError", err)
	}
	if len(reactionRepo.reactions) != 0 {
		t.Error("reaction collection touched despite missing post")
	}
}

func TestReactUnknownKind(t *testing.T) {
	svc, _, _ := newTestPostService(t)
	ctx := context.Background()

	post, err := svc.CreatePost(ctx, "author", &services.CreatePostRequest{Type: models.PostTypePost})
	if err != nil {
		t.Fatalf("CreatePost failed: %v", err)
	}

	_, err = svc.React(ctx, "u1", post.ID, &services.CreateReactionRequest{Kind: "yodel"})
	var invalid *domain.InvalidInputError
	if !errors.As(err, &invalid) {
		t.Fatalf("React error = %v, want InvalidInputError", err)
	}
}

func TestUnreact(t *testing.T) {
	svc, _, reactionRepo := newTestPostService(t)
	ctx := context.Background()

	post, err := svc.CreatePost(ctx, "author", &services.CreatePostRequest{Type: models.PostTypePost})
	if err != nil {
		t.Fatalf("CreatePost failed: %v", err)
	}
	if _, err := svc.React(ctx, "u1", post.ID, &services.CreateReactionRequest{Kind: "like"}); err != nil {
		t.Fatalf("React failed: %v", err)
	}

	removed, err := svc.Unreact(ctx, "u1", post.ID)
	if err != nil {
		t.Fatalf("Unreact failed: %v", err)
	}
	if removed.Kind != "like" {
		t.Errorf("removed Kind = %q, want %q", removed.Kind, "like")
	}
	if len(reactionRepo.reactions) != 0 {
		t.Error("reaction still present after Unreact")
	}

	// Un-reacting again is an error, not a no-op
	_, err = svc.Unreact(ctx, "u1", post.ID)
	var notFound *domain.ReactionNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("second Unreact error = %v, want ReactionNotFoundError", err)
	}
}
