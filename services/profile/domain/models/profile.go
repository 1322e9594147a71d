package models

import "github.com/google/uuid"

// Profile is a user's public display identity. The row is optional: accounts
// can exist without one, and every read path treats the absence as a valid
// state rather than an error.
type Profile struct {
	ID        uuid.UUID
	Username  string
	AvatarURL *string
}

// CollectionWithCover is one collection tile on a profile: its identity plus
// the derived cover image (most recent item image in the collection).
type CollectionWithCover struct {
	ID            uuid.UUID
	Name          string
	CoverImageURL *string
}
