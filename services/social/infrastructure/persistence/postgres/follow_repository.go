package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	"github.com/ghuser/curio/pkg/database"
	"github.com/ghuser/curio/pkg/events"
	domainevents "github.com/ghuser/curio/services/social/domain/events"
)

// FollowRepository implements repositories.FollowRepository against PostgreSQL.
// Edge changes publish a FollowToggledEvent within the same transaction so the
// worker's cache invalidation can never observe a write that did not commit.
type FollowRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewFollowRepository returns a FollowRepository backed by the given pool and bus.
func NewFollowRepository(db *database.Database, bus *events.EventBus) *FollowRepository {
	return &FollowRepository{db: db, bus: bus}
}

// Insert adds the (follower → followee) edge. Inserting an existing edge is
// a no-op and publishes nothing.
func (r *FollowRepository) Insert(ctx context.Context, followerID, followeeID uuid.UUID) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO followers (follower_id, followee_id) VALUES ($1, $2)
			 ON CONFLICT (follower_id, followee_id) DO NOTHING`,
			followerID, followeeID,
		)
		if err != nil {
			return fmt.Errorf("insert follow: %w", err)
		}
		return r.publishIfChanged(ctx, tx, res, followerID, followeeID, true)
	})
}

// Delete removes the edge. Deleting an absent edge is a no-op and publishes nothing.
func (r *FollowRepository) Delete(ctx context.Context, followerID, followeeID uuid.UUID) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`DELETE FROM followers WHERE follower_id = $1 AND followee_id = $2`,
			followerID, followeeID,
		)
		if err != nil {
			return fmt.Errorf("delete follow: %w", err)
		}
		return r.publishIfChanged(ctx, tx, res, followerID, followeeID, false)
	})
}

// CountFollowers returns how many users follow the given profile, via the
// server-side aggregate function.
func (r *FollowRepository) CountFollowers(ctx context.Context, profileID uuid.UUID) (int, error) {
	var count int
	err := r.db.DB().QueryRowContext(ctx,
		`SELECT get_follower_count($1)`, profileID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count followers: %w", err)
	}
	return count, nil
}

// CountFollowing returns how many users the given profile follows.
func (r *FollowRepository) CountFollowing(ctx context.Context, profileID uuid.UUID) (int, error) {
	var count int
	err := r.db.DB().QueryRowContext(ctx,
		`SELECT get_following_count($1)`, profileID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count following: %w", err)
	}
	return count, nil
}

// Exists reports whether the (follower → followee) edge is present.
func (r *FollowRepository) Exists(ctx context.Context, followerID, followeeID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.DB().QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM followers WHERE follower_id = $1 AND followee_id = $2)`,
		followerID, followeeID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check follow exists: %w", err)
	}
	return exists, nil
}

// publishIfChanged publishes a FollowToggledEvent when the statement actually
// changed a row. Duplicate inserts and absent-row deletes change nothing and
// stay silent.
func (r *FollowRepository) publishIfChanged(ctx context.Context, tx *sql.Tx, res sql.Result, followerID, followeeID uuid.UUID, following bool) error {
	if r.bus == nil {
		return nil
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("follow rows affected: %w", err)
	}
	if affected == 0 {
		return nil
	}

	event := domainevents.FollowToggledEvent{
		EventID:    uuid.New(),
		Version:    1,
		FollowerID: followerID,
		FolloweeID: followeeID,
		Following:  following,
		OccurredAt: time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal follow event: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_id", event.EventID.String())
	msg.Metadata.Set("event_version", "1")

	p, err := r.bus.NewTxPublisher(tx)
	if err != nil {
		return fmt.Errorf("create publisher: %w", err)
	}
	return p.Publish(domainevents.TopicFollowToggled, msg)
}
