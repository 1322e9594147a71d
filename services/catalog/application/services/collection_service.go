package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	catalogdomain "github.com/ghuser/curio/services/catalog/domain"
	"github.com/ghuser/curio/services/catalog/domain/models"
	"github.com/ghuser/curio/services/catalog/domain/repositories"
)

// CollectionService resolves collection names to identities. The contract is
// get-or-create: submitting an existing name returns the existing collection
// rather than a duplicate.
type CollectionService struct {
	collections repositories.CollectionRepository
}

// NewCollectionService returns a CollectionService backed by the given repository.
func NewCollectionService(collections repositories.CollectionRepository) *CollectionService {
	return &CollectionService{collections: collections}
}

// GetOrCreate resolves name to a collection owned by ownerID, creating it if
// absent. Two concurrent callers can both miss the lookup; the loser of the
// insert race re-fetches the winner's row, so both end up with the same
// identity.
func (s *CollectionService) GetOrCreate(ctx context.Context, ownerID uuid.UUID, rawName string) (*models.Collection, error) {
	name, err := models.NewCollectionName(rawName)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", catalogdomain.ErrInvalidCollectionName, err)
	}

	existing, err := s.collections.FindByOwnerAndName(ctx, ownerID, name)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, catalogdomain.ErrCollectionNotFound) {
		return nil, fmt.Errorf("find collection: %w", err)
	}

	collection := models.NewCollection(ownerID, name)
	err = s.collections.Insert(ctx, collection)
	if err == nil {
		return collection, nil
	}
	if !errors.Is(err, catalogdomain.ErrCollectionExists) {
		return nil, fmt.Errorf("insert collection: %w", err)
	}

	winner, err := s.collections.FindByOwnerAndName(ctx, ownerID, name)
	if err != nil {
		return nil, fmt.Errorf("refetch collection: %w", err)
	}
	return winner, nil
}

// Get retrieves a collection by ID.
func (s *CollectionService) Get(ctx context.Context, id uuid.UUID) (*models.Collection, error) {
	collection, err := s.collections.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get collection: %w", err)
	}
	return collection, nil
}
