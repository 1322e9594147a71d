package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	"github.com/ghuser/curio/pkg/database"
	"github.com/ghuser/curio/pkg/events"
	catalogdomain "github.com/ghuser/curio/services/catalog/domain"
	domainevents "github.com/ghuser/curio/services/catalog/domain/events"
	"github.com/ghuser/curio/services/catalog/domain/models"
)

// ItemRepository implements repositories.ItemRepository against PostgreSQL.
// Saves and deletes publish their domain events within the write transaction.
//
// image_urls is a text[] column; it crosses the driver boundary as JSON since
// database/sql has no native array support.
type ItemRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewItemRepository returns an ItemRepository backed by the given pool and bus.
func NewItemRepository(db *database.Database, bus *events.EventBus) *ItemRepository {
	return &ItemRepository{db: db, bus: bus}
}

const itemColumns = `id, owner_id, collection_id, name, description, author, year,
	array_to_json(image_urls)::text, is_for_sale, price, created_at`

// Save persists a new Item and publishes an ItemCreatedEvent within the same
// transaction.
func (r *ItemRepository) Save(ctx context.Context, item *models.Item) error {
	images, err := json.Marshal(item.ImageURLs)
	if err != nil {
		return fmt.Errorf("marshal image urls: %w", err)
	}

	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO items (id, owner_id, collection_id, name, description, author, year, image_urls, is_for_sale, price, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, ARRAY(SELECT json_array_elements_text($8::json)), $9, $10, $11)`,
			item.ID, item.OwnerID, item.CollectionID, item.Name.String(), item.Description,
			item.Author, item.Year, string(images), item.IsForSale, item.Price, item.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert item: %w", err)
		}
		return r.publishCreated(tx, item)
	})
}

// GetByID retrieves an Item by ID. Returns ErrItemNotFound if no row exists.
func (r *ItemRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Item, error) {
	row := r.db.DB().QueryRowContext(ctx,
		`SELECT `+itemColumns+` FROM items WHERE id = $1`, id,
	)
	item, err := scanItem(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, catalogdomain.ErrItemNotFound
		}
		return nil, fmt.Errorf("query item: %w", err)
	}
	return item, nil
}

// Update persists name and description changes.
func (r *ItemRepository) Update(ctx context.Context, item *models.Item) error {
	res, err := r.db.DB().ExecContext(ctx,
		`UPDATE items SET name = $1, description = $2 WHERE id = $3`,
		item.Name.String(), item.Description, item.ID,
	)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update rows affected: %w", err)
	}
	if affected == 0 {
		return catalogdomain.ErrItemNotFound
	}
	return nil
}

// Delete removes the item and publishes an ItemDeletedEvent in the same
// transaction. Likes and comments cascade via foreign keys.
func (r *ItemRepository) Delete(ctx context.Context, item *models.Item) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `DELETE FROM items WHERE id = $1`, item.ID)
		if err != nil {
			return fmt.Errorf("delete item: %w", err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("delete rows affected: %w", err)
		}
		if affected == 0 {
			return catalogdomain.ErrItemNotFound
		}
		return r.publishDeleted(tx, item)
	})
}

// Feed returns all items newest-first as grid tiles, optionally filtered by a
// case-insensitive name match.
func (r *ItemRepository) Feed(ctx context.Context, query string) ([]*models.FeedEntry, error) {
	rows, err := r.db.DB().QueryContext(ctx,
		`SELECT id, name, image_urls[1]
		 FROM items
		 WHERE $1 = '' OR name ILIKE '%' || $1 || '%'
		 ORDER BY created_at DESC`,
		query,
	)
	if err != nil {
		return nil, fmt.Errorf("query feed: %w", err)
	}
	defer rows.Close()

	var entries []*models.FeedEntry
	for rows.Next() {
		entry := &models.FeedEntry{}
		if err := rows.Scan(&entry.ID, &entry.Name, &entry.ImageURL); err != nil {
			return nil, fmt.Errorf("scan feed entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate feed: %w", err)
	}
	return entries, nil
}

// ListForCollection returns a collection's items newest-first.
func (r *ItemRepository) ListForCollection(ctx context.Context, collectionID uuid.UUID) ([]*models.Item, error) {
	rows, err := r.db.DB().QueryContext(ctx,
		`SELECT `+itemColumns+` FROM items WHERE collection_id = $1 ORDER BY created_at DESC`,
		collectionID,
	)
	if err != nil {
		return nil, fmt.Errorf("query collection items: %w", err)
	}
	defer rows.Close()

	var items []*models.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate items: %w", err)
	}
	return items, nil
}

// rowScanner lets scanItem work with both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (*models.Item, error) {
	var (
		item      models.Item
		name      string
		imagesRaw string
	)
	err := row.Scan(
		&item.ID, &item.OwnerID, &item.CollectionID, &name, &item.Description,
		&item.Author, &item.Year, &imagesRaw, &item.IsForSale, &item.Price, &item.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	item.Name = models.ItemName(name)
	if err := json.Unmarshal([]byte(imagesRaw), &item.ImageURLs); err != nil {
		return nil, fmt.Errorf("unmarshal image urls: %w", err)
	}
	return &item, nil
}

func (r *ItemRepository) publishCreated(tx *sql.Tx, item *models.Item) error {
	if r.bus == nil {
		return nil
	}
	event := domainevents.ItemCreatedEvent{
		EventID:      uuid.New(),
		Version:      1,
		ItemID:       item.ID,
		OwnerID:      item.OwnerID,
		CollectionID: item.CollectionID,
		OccurredAt:   time.Now().UTC(),
	}
	return r.publish(tx, domainevents.TopicItemCreated, event.EventID, event)
}

func (r *ItemRepository) publishDeleted(tx *sql.Tx, item *models.Item) error {
	if r.bus == nil {
		return nil
	}
	event := domainevents.ItemDeletedEvent{
		EventID:    uuid.New(),
		Version:    1,
		ItemID:     item.ID,
		OwnerID:    item.OwnerID,
		OccurredAt: time.Now().UTC(),
	}
	return r.publish(tx, domainevents.TopicItemDeleted, event.EventID, event)
}

func (r *ItemRepository) publish(tx *sql.Tx, topic string, eventID uuid.UUID, event any) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_id", eventID.String())
	msg.Metadata.Set("event_version", "1")

	p, err := r.bus.NewTxPublisher(tx)
	if err != nil {
		return fmt.Errorf("create publisher: %w", err)
	}
	return p.Publish(topic, msg)
}
