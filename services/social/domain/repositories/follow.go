package repositories

import (
	"context"

	"github.com/google/uuid"
)

// FollowRepository is the persistence interface for the follow relation:
// one row per ordered (follower, followee) pair.
//
// Insert and Delete are idempotent and publish a follow-toggled event in the
// same transaction as the row change, so a successful write and its
// downstream cache invalidation cannot diverge.
type FollowRepository interface {
	Insert(ctx context.Context, followerID, followeeID uuid.UUID) error
	Delete(ctx context.Context, followerID, followeeID uuid.UUID) error

	// CountFollowers returns how many users follow the given profile.
	CountFollowers(ctx context.Context, profileID uuid.UUID) (int, error)

	// CountFollowing returns how many users the given profile follows.
	CountFollowing(ctx context.Context, profileID uuid.UUID) (int, error)

	// Exists reports whether the (follower → followee) edge is present.
	Exists(ctx context.Context, followerID, followeeID uuid.UUID) (bool, error)
}
