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
	domainevents "github.com/ghuser/curio/services/profile/domain/events"
	"github.com/ghuser/curio/services/profile/domain/models"
)

// ProfileRepository implements repositories.ProfileRepository against
// PostgreSQL. Writes publish a ProfileUpdatedEvent within the same
// transaction so the worker's cache invalidation can never observe a write
// that did not commit.
type ProfileRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewProfileRepository returns a ProfileRepository backed by the given pool and bus.
func NewProfileRepository(db *database.Database, bus *events.EventBus) *ProfileRepository {
	return &ProfileRepository{db: db, bus: bus}
}

// Upsert writes the profile's display fields, creating the row on first
// save. The id is the account id, so ON CONFLICT (id) makes the same
// statement serve both the first save and every later edit.
func (r *ProfileRepository) Upsert(ctx context.Context, profile *models.Profile) (*models.Profile, error) {
	var saved models.Profile
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx,
			`INSERT INTO profiles (id, username, avatar_url)
			 VALUES ($1, $2, $3)
			 ON CONFLICT (id) DO UPDATE SET username = EXCLUDED.username, avatar_url = EXCLUDED.avatar_url
			 RETURNING id, username, avatar_url`,
			profile.ID, profile.Username, profile.AvatarURL,
		).Scan(&saved.ID, &saved.Username, &saved.AvatarURL)
		if err != nil {
			return fmt.Errorf("upsert profile: %w", err)
		}
		return r.publishUpdated(tx, saved.ID)
	})
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *ProfileRepository) publishUpdated(tx *sql.Tx, profileID uuid.UUID) error {
	if r.bus == nil {
		return nil
	}
	event := domainevents.ProfileUpdatedEvent{
		EventID:    uuid.New(),
		Version:    1,
		ProfileID:  profileID,
		OccurredAt: time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_id", event.EventID.String())
	msg.Metadata.Set("event_version", "1")

	p, err := r.bus.NewTxPublisher(tx)
	if err != nil {
		return fmt.Errorf("create publisher: %w", err)
	}
	return p.Publish(domainevents.TopicProfileUpdated, msg)
}
