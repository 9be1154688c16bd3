package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"ripple/internal/domain"
	"ripple/internal/domain/models"
	"ripple/internal/domain/repositories"
)

// PostgresPostRepository implements the PostRepository interface
type PostgresPostRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
	logger *slog.Logger
}

// NewPostRepository creates a new post repository
func NewPostRepository(config *RepositoryConfig) repositories.PostRepository {
	return &PostgresPostRepository{
		pool:   config.Pool,
		tables: config.Tables,
		logger: config.Logger,
	}
}

// Create inserts a new post. Posts are append-only, so this is a plain
// insert with a store-assigned id - no read-modify-write, no lost updates.
func (r *PostgresPostRepository) Create(ctx context.Context, post *models.Post) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (user_id, text, type, original_post_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, r.tables.Posts)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		post.UserID,
		post.Text,
		post.Type,
		post.OriginalPostID,
	).Scan(&post.ID, &post.CreatedAt)

	if err != nil {
		if IsPgCheckViolation(err) {
			return &domain.InvalidInputError{Field: "type", Expected: "PostType"}
		}
		return fmt.Errorf("create post: %w", err)
	}

	return nil
}

// GetByID retrieves a post by ID. Returns (nil, nil) when absent.
func (r *PostgresPostRepository) GetByID(ctx context.Context, id string) (*models.Post, error) {
	query := fmt.Sprintf(`
		SELECT id, user_id, text, type, original_post_id, created_at
		FROM %s
		WHERE id = $1
	`, r.tables.Posts)

	var post models.Post
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, id).Scan(
		&post.ID,
		&post.UserID,
		&post.Text,
		&post.Type,
		&post.OriginalPostID,
		&post.CreatedAt,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get post: %w", err)
	}

	return &post, nil
}
