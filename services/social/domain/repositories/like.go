package repositories

import (
	"context"

	"github.com/google/uuid"
)

// LikeRepository is the persistence interface for the like relation.
// A like row's existence is the only signal — there is no payload, and at
// most one row exists per (item, user) pair.
//
// Insert and Delete are idempotent from the caller's perspective: inserting
// an existing row and deleting an absent one are both no-ops.
type LikeRepository interface {
	Insert(ctx context.Context, itemID, userID uuid.UUID) error
	Delete(ctx context.Context, itemID, userID uuid.UUID) error

	// CountForItem returns the authoritative like count for an item.
	CountForItem(ctx context.Context, itemID uuid.UUID) (int, error)

	// Exists reports whether userID has liked itemID.
	Exists(ctx context.Context, itemID, userID uuid.UUID) (bool, error)
}
