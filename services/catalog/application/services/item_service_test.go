package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	catalogdomain "github.com/ghuser/curio/services/catalog/domain"
)

func TestItemService_Create(t *testing.T) {
	ownerID := uuid.New()

	t.Run("persists a valid item", func(t *testing.T) {
		repo := newFakeItemRepo()
		svc := NewItemService(repo)

		item, err := svc.Create(context.Background(), ownerID, CreateItemInput{
			Name:      "Amber Fossil",
			ImageURLs: []string{"https://cdn.example.com/1.jpg"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.OwnerID != ownerID {
			t.Fatal("expected ownership from the session user")
		}
		if _, ok := repo.items[item.ID]; !ok {
			t.Fatal("expected the item to be saved")
		}
	})

	t.Run("rejects an empty name", func(t *testing.T) {
		svc := NewItemService(newFakeItemRepo())

		_, err := svc.Create(context.Background(), ownerID, CreateItemInput{
			Name:      "   ",
			ImageURLs: []string{"https://cdn.example.com/1.jpg"},
		})
		if !errors.Is(err, catalogdomain.ErrInvalidItem) {
			t.Fatalf("expected ErrInvalidItem, got %v", err)
		}
	})

	t.Run("rejects an item without images", func(t *testing.T) {
		svc := NewItemService(newFakeItemRepo())

		_, err := svc.Create(context.Background(), ownerID, CreateItemInput{Name: "Amber Fossil"})
		if !errors.Is(err, catalogdomain.ErrInvalidItem) {
			t.Fatalf("expected ErrInvalidItem, got %v", err)
		}
	})

	t.Run("drops the price when not for sale", func(t *testing.T) {
		svc := NewItemService(newFakeItemRepo())
		price := 25.0

		item, err := svc.Create(context.Background(), ownerID, CreateItemInput{
			Name:      "Amber Fossil",
			ImageURLs: []string{"https://cdn.example.com/1.jpg"},
			IsForSale: false,
			Price:     &price,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.Price != nil {
			t.Fatal("expected no price on an unlisted item")
		}
	})
}

func TestItemService_OwnerOnlyMutation(t *testing.T) {
	item := newDetailItem(t)
	stranger := uuid.New()

	t.Run("update by a non-owner is refused", func(t *testing.T) {
		svc := NewItemService(newFakeItemRepo(item))

		_, err := svc.Update(context.Background(), stranger, item.ID, UpdateItemInput{Name: "Renamed"})
		if !errors.Is(err, catalogdomain.ErrNotOwner) {
			t.Fatalf("expected ErrNotOwner, got %v", err)
		}
	})

	t.Run("delete by a non-owner is refused", func(t *testing.T) {
		repo := newFakeItemRepo(item)
		svc := NewItemService(repo)

		err := svc.Delete(context.Background(), stranger, item.ID)
		if !errors.Is(err, catalogdomain.ErrNotOwner) {
			t.Fatalf("expected ErrNotOwner, got %v", err)
		}
		if _, ok := repo.items[item.ID]; !ok {
			t.Fatal("expected the item to survive")
		}
	})

	t.Run("owner can update", func(t *testing.T) {
		repo := newFakeItemRepo(item)
		svc := NewItemService(repo)

		updated, err := svc.Update(context.Background(), item.OwnerID, item.ID, UpdateItemInput{Name: "Renamed"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Name.String() != "Renamed" {
			t.Fatalf("expected renamed item, got %q", updated.Name)
		}
	})

	t.Run("owner can delete", func(t *testing.T) {
		repo := newFakeItemRepo(item)
		svc := NewItemService(repo)

		if err := svc.Delete(context.Background(), item.OwnerID, item.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := repo.items[item.ID]; ok {
			t.Fatal("expected the item to be gone")
		}
	})
}
