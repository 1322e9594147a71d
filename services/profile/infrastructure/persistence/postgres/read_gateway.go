package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ghuser/curio/pkg/database"
	"github.com/ghuser/curio/services/profile/domain/models"
)

// ReadGateway implements repositories.ReadGateway against PostgreSQL.
// Counts and collection covers come from server-side SQL functions so the
// aggregation logic lives next to the data.
type ReadGateway struct {
	db *database.Database
}

// NewReadGateway returns a ReadGateway backed by the given pool.
func NewReadGateway(db *database.Database) *ReadGateway {
	return &ReadGateway{db: db}
}

// Profile returns the subject's profile row, or (nil, nil) when none exists.
func (g *ReadGateway) Profile(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	var p models.Profile
	err := g.db.DB().QueryRowContext(ctx,
		`SELECT id, username, avatar_url FROM profiles WHERE id = $1`, id,
	).Scan(&p.ID, &p.Username, &p.AvatarURL)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("query profile: %w", err)
	}
	return &p, nil
}

// CollectionsWithCovers returns the owner's collections with derived cover
// images via the get_collections_with_covers function.
func (g *ReadGateway) CollectionsWithCovers(ctx context.Context, ownerID uuid.UUID) ([]models.CollectionWithCover, error) {
	rows, err := g.db.DB().QueryContext(ctx,
		`SELECT id, name, cover_image_url FROM get_collections_with_covers($1)`, ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("query collections with covers: %w", err)
	}
	defer rows.Close()

	var collections []models.CollectionWithCover
	for rows.Next() {
		var c models.CollectionWithCover
		if err := rows.Scan(&c.ID, &c.Name, &c.CoverImageURL); err != nil {
			return nil, fmt.Errorf("scan collection: %w", err)
		}
		collections = append(collections, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate collections: %w", err)
	}
	return collections, nil
}

// FollowerCount returns how many users follow the subject.
func (g *ReadGateway) FollowerCount(ctx context.Context, id uuid.UUID) (int, error) {
	var count int
	if err := g.db.DB().QueryRowContext(ctx, `SELECT get_follower_count($1)`, id).Scan(&count); err != nil {
		return 0, fmt.Errorf("query follower count: %w", err)
	}
	return count, nil
}

// FollowingCount returns how many users the subject follows.
func (g *ReadGateway) FollowingCount(ctx context.Context, id uuid.UUID) (int, error) {
	var count int
	if err := g.db.DB().QueryRowContext(ctx, `SELECT get_following_count($1)`, id).Scan(&count); err != nil {
		return 0, fmt.Errorf("query following count: %w", err)
	}
	return count, nil
}

// IsFollowing reports whether viewer follows subject.
func (g *ReadGateway) IsFollowing(ctx context.Context, viewerID, subjectID uuid.UUID) (bool, error) {
	var following bool
	err := g.db.DB().QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM followers WHERE follower_id = $1 AND followee_id = $2)`,
		viewerID, subjectID,
	).Scan(&following)
	if err != nil {
		return false, fmt.Errorf("query is following: %w", err)
	}
	return following, nil
}
