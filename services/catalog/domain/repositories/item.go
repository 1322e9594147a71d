package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/curio/services/catalog/domain/models"
)

// ItemRepository is the persistence interface for items.
// Save and Delete publish their domain events within the write transaction.
type ItemRepository interface {
	Save(ctx context.Context, item *models.Item) error

	// GetByID returns ErrItemNotFound when no row exists.
	GetByID(ctx context.Context, id uuid.UUID) (*models.Item, error)

	// Update persists name and description changes.
	Update(ctx context.Context, item *models.Item) error

	// Delete removes the item; likes and comments cascade at the store.
	Delete(ctx context.Context, item *models.Item) error

	// Feed returns all items newest-first as grid tiles. A non-empty query
	// filters by case-insensitive name match.
	Feed(ctx context.Context, query string) ([]*models.FeedEntry, error)

	// ListForCollection returns a collection's items newest-first.
	ListForCollection(ctx context.Context, collectionID uuid.UUID) ([]*models.Item, error)
}
