package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	catalogdomain "github.com/ghuser/curio/services/catalog/domain"
	"github.com/ghuser/curio/services/catalog/domain/models"
	"github.com/ghuser/curio/services/catalog/domain/repositories"
)

// CreateItemInput carries the fields a user submits for a new item.
type CreateItemInput struct {
	Name         string
	Description  *string
	Author       *string
	Year         *int
	ImageURLs    []string
	IsForSale    bool
	Price        *float64
	CollectionID *uuid.UUID
}

// UpdateItemInput carries the editable fields of an existing item.
type UpdateItemInput struct {
	Name        string
	Description *string
}

// ItemService orchestrates item creation, mutation, and feed reads.
// Event publishing is handled by the repository layer inside the write
// transaction.
type ItemService struct {
	items repositories.ItemRepository
}

// NewItemService returns an ItemService wired with the given repository.
func NewItemService(items repositories.ItemRepository) *ItemService {
	return &ItemService{items: items}
}

// Create validates and persists an Item owned by ownerID.
// The repository publishes ItemCreatedEvent.
func (s *ItemService) Create(ctx context.Context, ownerID uuid.UUID, input CreateItemInput) (*models.Item, error) {
	name, err := models.NewItemName(input.Name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", catalogdomain.ErrInvalidItem, err)
	}

	item, err := models.NewItem(ownerID, name, input.ImageURLs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", catalogdomain.ErrInvalidItem, err)
	}
	item.Description = input.Description
	item.Author = input.Author
	item.Year = input.Year
	item.IsForSale = input.IsForSale
	if input.IsForSale {
		item.Price = input.Price
	}
	item.CollectionID = input.CollectionID

	if err := s.items.Save(ctx, item); err != nil {
		return nil, fmt.Errorf("save item: %w", err)
	}
	return item, nil
}

// Get retrieves an item by ID.
func (s *ItemService) Get(ctx context.Context, id uuid.UUID) (*models.Item, error) {
	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	return item, nil
}

// Update applies name and description changes. Only the owner may edit.
func (s *ItemService) Update(ctx context.Context, actorID, itemID uuid.UUID, input UpdateItemInput) (*models.Item, error) {
	item, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	if item.OwnerID != actorID {
		return nil, catalogdomain.ErrNotOwner
	}

	name, err := models.NewItemName(input.Name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", catalogdomain.ErrInvalidItem, err)
	}
	item.Name = name
	item.Description = input.Description

	if err := s.items.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("update item: %w", err)
	}
	return item, nil
}

// Delete removes an item. Only the owner may delete; likes and comments
// cascade at the store.
func (s *ItemService) Delete(ctx context.Context, actorID, itemID uuid.UUID) error {
	item, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return fmt.Errorf("get item: %w", err)
	}
	if item.OwnerID != actorID {
		return catalogdomain.ErrNotOwner
	}
	if err := s.items.Delete(ctx, item); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}

// Feed returns all items newest-first, optionally filtered by a
// case-insensitive name query.
func (s *ItemService) Feed(ctx context.Context, query string) ([]*models.FeedEntry, error) {
	entries, err := s.items.Feed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("load feed: %w", err)
	}
	return entries, nil
}

// ListForCollection returns a collection's items newest-first.
func (s *ItemService) ListForCollection(ctx context.Context, collectionID uuid.UUID) ([]*models.Item, error) {
	items, err := s.items.ListForCollection(ctx, collectionID)
	if err != nil {
		return nil, fmt.Errorf("list collection items: %w", err)
	}
	return items, nil
}
