package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/curio/services/profile/domain/models"
)

// ReadGateway is the set of reads the profile aggregate is built from.
// Each method is one independent round trip; the aggregator issues them
// concurrently.
type ReadGateway interface {
	// Profile returns (nil, nil) when no row exists — a missing profile is
	// data, not an error.
	Profile(ctx context.Context, id uuid.UUID) (*models.Profile, error)

	// CollectionsWithCovers returns the user's collections with their derived
	// cover images.
	CollectionsWithCovers(ctx context.Context, ownerID uuid.UUID) ([]models.CollectionWithCover, error)

	FollowerCount(ctx context.Context, id uuid.UUID) (int, error)
	FollowingCount(ctx context.Context, id uuid.UUID) (int, error)

	// IsFollowing reports whether viewer follows subject. Only called with a
	// non-nil viewer distinct from the subject.
	IsFollowing(ctx context.Context, viewerID, subjectID uuid.UUID) (bool, error)
}
