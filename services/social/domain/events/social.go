package events

import (
	"time"

	"github.com/google/uuid"
)

// TopicFollowToggled is the Watermill topic published when a follow edge is
// inserted or deleted.
const TopicFollowToggled = "social.follow.toggled"

// TopicCommentCreated is the Watermill topic published when a comment is persisted.
const TopicCommentCreated = "social.comment.created"

// FollowToggledEvent is published after a follow edge changes. The worker
// invalidates the followee's cached profile views in response.
type FollowToggledEvent struct {
	EventID    uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version    int       `json:"version"`  // Schema version; increment on breaking changes
	FollowerID uuid.UUID `json:"follower_id"`
	FolloweeID uuid.UUID `json:"followee_id"`
	Following  bool      `json:"following"` // true after an insert, false after a delete
	OccurredAt time.Time `json:"occurred_at"`
}

// CommentCreatedEvent is published after a new comment is persisted, in the
// same transaction as the insert.
type CommentCreatedEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	CommentID  uuid.UUID `json:"comment_id"`
	ItemID     uuid.UUID `json:"item_id"`
	AuthorID   uuid.UUID `json:"author_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
