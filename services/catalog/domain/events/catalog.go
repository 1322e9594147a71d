package events

import (
	"time"

	"github.com/google/uuid"
)

// TopicItemCreated is the Watermill topic published when an item is persisted.
const TopicItemCreated = "catalog.item.created"

// TopicItemDeleted is the Watermill topic published when an item is removed.
const TopicItemDeleted = "catalog.item.deleted"

// ItemCreatedEvent is published in the same transaction as the item insert.
// The worker invalidates the owner's cached profile views since collection
// covers may have changed.
type ItemCreatedEvent struct {
	EventID      uuid.UUID  `json:"event_id"` // Unique publish-time identifier for deduplication
	Version      int        `json:"version"`  // Schema version; increment on breaking changes
	ItemID       uuid.UUID  `json:"item_id"`
	OwnerID      uuid.UUID  `json:"owner_id"`
	CollectionID *uuid.UUID `json:"collection_id"`
	OccurredAt   time.Time  `json:"occurred_at"`
}

// ItemDeletedEvent is published in the same transaction as the item delete.
type ItemDeletedEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	ItemID     uuid.UUID `json:"item_id"`
	OwnerID    uuid.UUID `json:"owner_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
