package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Item is the core aggregate for this bounded context: one collectible with
// its photos and optional sale listing.
type Item struct {
	ID           uuid.UUID
	OwnerID      uuid.UUID
	CollectionID *uuid.UUID
	Name         ItemName
	Description  *string
	Author       *string
	Year         *int
	ImageURLs    []string
	IsForSale    bool
	Price        *float64
	CreatedAt    time.Time
}

// NewItem constructs a valid Item aggregate with generated ID and current
// timestamp. At least one image URL is required; a price only makes sense on
// an item that is listed for sale.
func NewItem(ownerID uuid.UUID, name ItemName, imageURLs []string) (*Item, error) {
	if len(imageURLs) == 0 {
		return nil, errors.New("at least one image is required")
	}
	return &Item{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Name:      name,
		ImageURLs: imageURLs,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// CoverURL returns the item's first image, the one feed and collection
// listings display.
func (i *Item) CoverURL() string {
	return i.ImageURLs[0]
}

// FeedEntry is the reduced item shape the feed returns: enough to render a
// grid tile, nothing more.
type FeedEntry struct {
	ID       uuid.UUID
	Name     string
	ImageURL *string
}
