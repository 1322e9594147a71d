package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/curio/services/social/domain/models"
)

// CommentRepository is the persistence interface for comments.
type CommentRepository interface {
	// Insert persists the comment and returns it with the author's display
	// fields joined in the same round trip. The returned comment's Authors
	// slice is already normalized to zero-or-one entries.
	Insert(ctx context.Context, comment *models.Comment) (*models.Comment, error)

	// ListForItem returns the item's comments newest-first, each with the
	// normalized author sub-object.
	ListForItem(ctx context.Context, itemID uuid.UUID) ([]*models.Comment, error)
}
