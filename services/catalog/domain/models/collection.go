package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// CollectionName is a value object for a collection's name. Names are
// trimmed before comparison so "Vintage Cards" and " Vintage Cards " name
// the same collection.
type CollectionName string

const maxCollectionNameLength = 100

// NewCollectionName constructs a valid CollectionName or returns an error.
func NewCollectionName(s string) (CollectionName, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("collection name must not be empty")
	}
	if len(s) > maxCollectionNameLength {
		return "", fmt.Errorf("collection name must not exceed %d characters", maxCollectionNameLength)
	}
	return CollectionName(s), nil
}

// String returns the underlying string value.
func (n CollectionName) String() string {
	return string(n)
}

// Collection groups a user's items under a name unique per owner.
type Collection struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Name      CollectionName
	CreatedAt time.Time
}

// NewCollection constructs a Collection with generated ID and current timestamp.
func NewCollection(ownerID uuid.UUID, name CollectionName) *Collection {
	return &Collection{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
}
