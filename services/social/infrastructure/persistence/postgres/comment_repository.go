package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ghuser/curio/pkg/database"
	"github.com/ghuser/curio/pkg/events"
	catalogdomain "github.com/ghuser/curio/services/catalog/domain"
	domainevents "github.com/ghuser/curio/services/social/domain/events"
	"github.com/ghuser/curio/services/social/domain/models"
)

// CommentRepository implements repositories.CommentRepository against PostgreSQL.
//
// The author sub-object is built server-side as JSON and normalized through
// models.NormalizeAuthor at this boundary. The insert path serializes it as
// a bare object (json_build_object) and the list path as an array
// (json_agg); both shapes collapse to the same zero-or-one slice here, so
// nothing past the repository sees the difference.
type CommentRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewCommentRepository returns a CommentRepository backed by the given pool
// and event bus. The bus publishes CommentCreatedEvents inside the insert transaction.
func NewCommentRepository(db *database.Database, bus *events.EventBus) *CommentRepository {
	return &CommentRepository{db: db, bus: bus}
}

// Insert persists the comment and returns it with the author's display
// fields joined in the same round trip. Returns catalog's ErrItemNotFound
// when the target item no longer exists.
func (r *CommentRepository) Insert(ctx context.Context, comment *models.Comment) (*models.Comment, error) {
	var saved *models.Comment
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx,
			`WITH ins AS (
			     INSERT INTO comments (id, item_id, user_id, content, created_at)
			     VALUES ($1, $2, $3, $4, $5)
			     RETURNING id, item_id, user_id, content, created_at
			 )
			 SELECT ins.id, ins.item_id, ins.user_id, ins.content, ins.created_at,
			        CASE WHEN p.id IS NULL THEN NULL
			             ELSE json_build_object('username', p.username, 'avatar_url', p.avatar_url)
			        END AS author
			 FROM ins
			 LEFT JOIN profiles p ON p.id = ins.user_id`,
			comment.ID, comment.ItemID, comment.UserID, comment.Content, comment.CreatedAt,
		)
		c, err := scanComment(row)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23503" {
				return catalogdomain.ErrItemNotFound
			}
			return fmt.Errorf("insert comment: %w", err)
		}
		saved = c

		if r.bus != nil {
			if err := r.publishCreated(tx, c); err != nil {
				return fmt.Errorf("publish comment created: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

// ListForItem returns the item's comments newest-first.
func (r *CommentRepository) ListForItem(ctx context.Context, itemID uuid.UUID) ([]*models.Comment, error) {
	rows, err := r.db.DB().QueryContext(ctx,
		`SELECT c.id, c.item_id, c.user_id, c.content, c.created_at,
		        (SELECT json_agg(json_build_object('username', p.username, 'avatar_url', p.avatar_url))
		         FROM profiles p WHERE p.id = c.user_id) AS author
		 FROM comments c
		 WHERE c.item_id = $1
		 ORDER BY c.created_at DESC`,
		itemID,
	)
	if err != nil {
		return nil, fmt.Errorf("query comments: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var comments []*models.Comment
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate comments: %w", err)
	}
	return comments, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanComment(row rowScanner) (*models.Comment, error) {
	var c models.Comment
	var authorRaw []byte
	if err := row.Scan(&c.ID, &c.ItemID, &c.UserID, &c.Content, &c.CreatedAt, &authorRaw); err != nil {
		return nil, err
	}
	c.Authors = models.NormalizeAuthor(authorRaw)
	return &c, nil
}

func (r *CommentRepository) publishCreated(tx *sql.Tx, c *models.Comment) error {
	event := domainevents.CommentCreatedEvent{
		EventID:    uuid.New(),
		Version:    1,
		CommentID:  c.ID,
		ItemID:     c.ItemID,
		AuthorID:   c.UserID,
		OccurredAt: c.CreatedAt,
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_id", event.EventID.String())
	msg.Metadata.Set("event_version", "1")
	p, err := r.bus.NewTxPublisher(tx)
	if err != nil {
		return fmt.Errorf("create publisher: %w", err)
	}
	return p.Publish(domainevents.TopicCommentCreated, msg)
}
