package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	socialdomain "github.com/ghuser/curio/services/social/domain"
	"github.com/ghuser/curio/services/social/domain/models"
	"github.com/ghuser/curio/services/social/domain/repositories"
)

// CommentService is the comment append pipeline. Unlike the toggle engine it
// is confirm-then-insert: the list is only extended once the gateway returns
// the persisted row, so a failed post never touches the visible list.
type CommentService struct {
	comments repositories.CommentRepository
}

// NewCommentService returns a CommentService backed by the given repository.
func NewCommentService(comments repositories.CommentRepository) *CommentService {
	return &CommentService{comments: comments}
}

// Post appends a comment by actorID to itemID. The text is trimmed; an empty
// result is refused locally before any gateway call, as is a missing actor.
// On success the returned comment carries the author display fields joined
// in the same round trip, normalized to the zero-or-one Authors shape, and
// is intended to be prepended to the caller's newest-first list.
func (s *CommentService) Post(ctx context.Context, itemID, actorID uuid.UUID, text string) (*models.Comment, error) {
	if actorID == uuid.Nil {
		return nil, socialdomain.ErrAuthRequired
	}

	comment, ok := models.NewComment(itemID, actorID, text)
	if !ok {
		return nil, socialdomain.ErrEmptyComment
	}

	saved, err := s.comments.Insert(ctx, comment)
	if err != nil {
		return nil, fmt.Errorf("post comment: %w", err)
	}
	return saved, nil
}

// ListForItem returns the item's comments newest-first.
func (s *CommentService) ListForItem(ctx context.Context, itemID uuid.UUID) ([]*models.Comment, error) {
	comments, err := s.comments.ListForItem(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}
