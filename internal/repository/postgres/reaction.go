package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"ripple/internal/domain/models"
	"ripple/internal/domain/repositories"
)

// PostgresReactionRepository implements the ReactionRepository interface
type PostgresReactionRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
	logger *slog.Logger
}

// NewReactionRepository creates a new reaction repository
func NewReactionRepository(config *RepositoryConfig) repositories.ReactionRepository {
	return &PostgresReactionRepository{
		pool:   config.Pool,
		tables: config.Tables,
		logger: config.Logger,
	}
}

// Upsert creates or replaces the reaction for (user, post) in a single
// atomic statement. Two concurrent upserts for the same pair serialize on
// the primary key: exactly one record results, holding the last writer's
// kind.
func (r *PostgresReactionRepository) Upsert(ctx context.Context, reaction *models.Reaction) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (user_id, post_id, kind, created_at, updated_at)
		VALUES ($1, $2, $3, now(), now())
		ON CONFLICT (user_id, post_id) DO UPDATE SET
			kind = EXCLUDED.kind,
			updated_at = now()
		RETURNING user_id, post_id, kind, created_at, updated_at
	`, r.tables.Reactions)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		reaction.UserID,
		reaction.PostID,
		reaction.Kind,
	).Scan(
		&reaction.UserID,
		&reaction.PostID,
		&reaction.Kind,
		&reaction.CreatedAt,
		&reaction.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("upsert reaction: %w", err)
	}

	return nil
}

// Delete atomically removes the reaction for (userID, postID) and returns
// its prior state. Returns (nil, nil) when no reaction existed.
func (r *PostgresReactionRepository) Delete(ctx context.Context, userID, postID string) (*models.Reaction, error) {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE user_id = $1 AND post_id = $2
		RETURNING user_id, post_id, kind, created_at, updated_at
	`, r.tables.Reactions)

	var reaction models.Reaction
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, userID, postID).Scan(
		&reaction.UserID,
		&reaction.PostID,
		&reaction.Kind,
		&reaction.CreatedAt,
		&reaction.UpdatedAt,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("delete reaction: %w", err)
	}

	return &reaction, nil
}
