package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	catalogdomain "github.com/ghuser/curio/services/catalog/domain"
	"github.com/ghuser/curio/services/catalog/domain/models"
)

// fakeCollectionRepo keys rows by (owner, name) like the real unique index.
type fakeCollectionRepo struct {
	rows      map[string]*models.Collection
	insertErr error
	// raceOnInsert simulates another writer winning between lookup and insert.
	raceOnInsert *models.Collection
}

func newFakeCollectionRepo() *fakeCollectionRepo {
	return &fakeCollectionRepo{rows: map[string]*models.Collection{}}
}

func key(ownerID uuid.UUID, name models.CollectionName) string {
	return ownerID.String() + "/" + name.String()
}

func (f *fakeCollectionRepo) FindByOwnerAndName(ctx context.Context, ownerID uuid.UUID, name models.CollectionName) (*models.Collection, error) {
	if c, ok := f.rows[key(ownerID, name)]; ok {
		return c, nil
	}
	return nil, catalogdomain.ErrCollectionNotFound
}

func (f *fakeCollectionRepo) Insert(ctx context.Context, c *models.Collection) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	k := key(c.OwnerID, c.Name)
	if f.raceOnInsert != nil {
		f.rows[k] = f.raceOnInsert
		f.raceOnInsert = nil
		return catalogdomain.ErrCollectionExists
	}
	if _, ok := f.rows[k]; ok {
		return catalogdomain.ErrCollectionExists
	}
	f.rows[k] = c
	return nil
}

func (f *fakeCollectionRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Collection, error) {
	for _, c := range f.rows {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, catalogdomain.ErrCollectionNotFound
}

func TestCollectionService_GetOrCreate(t *testing.T) {
	ownerID := uuid.New()

	t.Run("creates on first use", func(t *testing.T) {
		repo := newFakeCollectionRepo()
		svc := NewCollectionService(repo)

		c, err := svc.GetOrCreate(context.Background(), ownerID, "Vintage Cards")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.Name.String() != "Vintage Cards" {
			t.Fatalf("expected name %q, got %q", "Vintage Cards", c.Name)
		}
		if len(repo.rows) != 1 {
			t.Fatalf("expected one stored row, got %d", len(repo.rows))
		}
	})

	t.Run("reuses the existing identity on repeat submission", func(t *testing.T) {
		repo := newFakeCollectionRepo()
		svc := NewCollectionService(repo)

		first, err := svc.GetOrCreate(context.Background(), ownerID, "Vintage Cards")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := svc.GetOrCreate(context.Background(), ownerID, "  Vintage Cards ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if second.ID != first.ID {
			t.Fatalf("expected reused identity %s, got %s", first.ID, second.ID)
		}
		if len(repo.rows) != 1 {
			t.Fatalf("expected a single row, got %d", len(repo.rows))
		}
	})

	t.Run("losing the insert race re-fetches the winner", func(t *testing.T) {
		repo := newFakeCollectionRepo()
		winner := models.NewCollection(ownerID, "Vintage Cards")
		repo.raceOnInsert = winner
		svc := NewCollectionService(repo)

		c, err := svc.GetOrCreate(context.Background(), ownerID, "Vintage Cards")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.ID != winner.ID {
			t.Fatalf("expected the winner's identity %s, got %s", winner.ID, c.ID)
		}
	})

	t.Run("rejects empty names", func(t *testing.T) {
		svc := NewCollectionService(newFakeCollectionRepo())

		_, err := svc.GetOrCreate(context.Background(), ownerID, "   ")
		if !errors.Is(err, catalogdomain.ErrInvalidCollectionName) {
			t.Fatalf("expected ErrInvalidCollectionName, got %v", err)
		}
	})

	t.Run("surfaces unexpected insert errors", func(t *testing.T) {
		repo := newFakeCollectionRepo()
		repo.insertErr = errors.New("connection reset")
		svc := NewCollectionService(repo)

		if _, err := svc.GetOrCreate(context.Background(), ownerID, "Vintage Cards"); err == nil {
			t.Fatal("expected error")
		}
	})
}
