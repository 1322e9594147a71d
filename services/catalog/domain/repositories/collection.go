package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/curio/services/catalog/domain/models"
)

// CollectionRepository is the persistence interface for collections.
type CollectionRepository interface {
	// FindByOwnerAndName returns ErrCollectionNotFound when no row matches.
	FindByOwnerAndName(ctx context.Context, ownerID uuid.UUID, name models.CollectionName) (*models.Collection, error)

	// Insert returns ErrCollectionExists when the (owner, name) pair is
	// already taken, which callers treat as losing a get-or-create race.
	Insert(ctx context.Context, collection *models.Collection) error

	// GetByID returns ErrCollectionNotFound when no row exists.
	GetByID(ctx context.Context, id uuid.UUID) (*models.Collection, error)
}
