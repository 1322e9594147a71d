package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ghuser/curio/pkg/database"
	catalogdomain "github.com/ghuser/curio/services/catalog/domain"
	"github.com/ghuser/curio/services/catalog/domain/models"
)

// CollectionRepository implements repositories.CollectionRepository against
// PostgreSQL. The UNIQUE(owner_id, name) constraint is the arbiter of
// get-or-create races; Insert maps its violation to ErrCollectionExists.
type CollectionRepository struct {
	db *database.Database
}

// NewCollectionRepository returns a CollectionRepository backed by the given pool.
func NewCollectionRepository(db *database.Database) *CollectionRepository {
	return &CollectionRepository{db: db}
}

// FindByOwnerAndName looks a collection up by its per-owner unique name.
func (r *CollectionRepository) FindByOwnerAndName(ctx context.Context, ownerID uuid.UUID, name models.CollectionName) (*models.Collection, error) {
	return r.scanOne(r.db.DB().QueryRowContext(ctx,
		`SELECT id, owner_id, name, created_at FROM collections WHERE owner_id = $1 AND name = $2`,
		ownerID, name.String(),
	))
}

// Insert persists a new collection. Returns ErrCollectionExists when another
// row already holds the (owner, name) pair.
func (r *CollectionRepository) Insert(ctx context.Context, collection *models.Collection) error {
	_, err := r.db.DB().ExecContext(ctx,
		`INSERT INTO collections (id, owner_id, name, created_at) VALUES ($1, $2, $3, $4)`,
		collection.ID, collection.OwnerID, collection.Name.String(), collection.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return catalogdomain.ErrCollectionExists
		}
		return fmt.Errorf("insert collection: %w", err)
	}
	return nil
}

// GetByID retrieves a collection by ID.
func (r *CollectionRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Collection, error) {
	return r.scanOne(r.db.DB().QueryRowContext(ctx,
		`SELECT id, owner_id, name, created_at FROM collections WHERE id = $1`, id,
	))
}

func (r *CollectionRepository) scanOne(row *sql.Row) (*models.Collection, error) {
	var (
		c    models.Collection
		name string
	)
	if err := row.Scan(&c.ID, &c.OwnerID, &name, &c.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, catalogdomain.ErrCollectionNotFound
		}
		return nil, fmt.Errorf("query collection: %w", err)
	}
	c.Name = models.CollectionName(name)
	return &c, nil
}
