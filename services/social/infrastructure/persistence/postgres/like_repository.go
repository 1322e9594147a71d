package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ghuser/curio/pkg/database"
)

// LikeRepository implements repositories.LikeRepository against PostgreSQL.
// The (item_id, user_id) primary key is the at-most-one-like invariant;
// ON CONFLICT DO NOTHING makes duplicate inserts a no-op instead of a
// constraint error.
type LikeRepository struct {
	db *database.Database
}

// NewLikeRepository returns a LikeRepository backed by the given pool.
func NewLikeRepository(db *database.Database) *LikeRepository {
	return &LikeRepository{db: db}
}

// Insert adds the like row. Inserting an existing like is a no-op.
func (r *LikeRepository) Insert(ctx context.Context, itemID, userID uuid.UUID) error {
	_, err := r.db.DB().ExecContext(ctx,
		`INSERT INTO likes (item_id, user_id) VALUES ($1, $2)
		 ON CONFLICT (item_id, user_id) DO NOTHING`,
		itemID, userID,
	)
	if err != nil {
		return fmt.Errorf("insert like: %w", err)
	}
	return nil
}

// Delete removes the like row. Deleting an absent like is a no-op.
func (r *LikeRepository) Delete(ctx context.Context, itemID, userID uuid.UUID) error {
	_, err := r.db.DB().ExecContext(ctx,
		`DELETE FROM likes WHERE item_id = $1 AND user_id = $2`,
		itemID, userID,
	)
	if err != nil {
		return fmt.Errorf("delete like: %w", err)
	}
	return nil
}

// CountForItem returns the authoritative like count for an item.
func (r *LikeRepository) CountForItem(ctx context.Context, itemID uuid.UUID) (int, error) {
	var count int
	err := r.db.DB().QueryRowContext(ctx,
		`SELECT count(*) FROM likes WHERE item_id = $1`, itemID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count likes: %w", err)
	}
	return count, nil
}

// Exists reports whether userID has liked itemID.
func (r *LikeRepository) Exists(ctx context.Context, itemID, userID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.DB().QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM likes WHERE item_id = $1 AND user_id = $2)`,
		itemID, userID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check like exists: %w", err)
	}
	return exists, nil
}
