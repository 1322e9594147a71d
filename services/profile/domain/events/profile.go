package events

import (
	"time"

	"github.com/google/uuid"
)

// TopicProfileUpdated is the Watermill topic published when a profile's
// display fields change.
const TopicProfileUpdated = "profile.updated"

// ProfileUpdatedEvent is published after a profile upsert, in the same
// transaction as the write. The worker invalidates the subject's cached
// profile views in response.
type ProfileUpdatedEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	ProfileID  uuid.UUID `json:"profile_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
