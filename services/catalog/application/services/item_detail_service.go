package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/ghuser/curio/services/catalog/domain/models"
	"github.com/ghuser/curio/services/catalog/domain/repositories"
)

// CommentView is the comment shape the item detail carries: content plus the
// resolved author display identity.
type CommentView struct {
	ID              uuid.UUID
	Content         string
	CreatedAt       time.Time
	AuthorUsername  string
	AuthorAvatarURL *string
}

// SocialReads is the read contract this context needs from the social one.
// Implemented by a bridge over the social repositories; keeps the contexts
// decoupled at the type level.
type SocialReads interface {
	LikeCount(ctx context.Context, itemID uuid.UUID) (int, error)
	// ViewerLiked is only called with a non-nil viewer.
	ViewerLiked(ctx context.Context, itemID, viewerID uuid.UUID) (bool, error)
	// Comments returns the item's comments newest-first.
	Comments(ctx context.Context, itemID uuid.UUID) ([]CommentView, error)
}

// ProfileReads resolves a user ID to a display username. A nil result means
// the profile row does not exist, which is a valid state.
type ProfileReads interface {
	Username(ctx context.Context, id uuid.UUID) (*string, error)
}

// ItemDetail is the composed item page: the row itself plus everything the
// detail screen shows around it.
type ItemDetail struct {
	Item          *models.Item
	OwnerUsername *string
	LikeCount     int
	ViewerLiked   bool
	Comments      []CommentView
}

// ItemDetailService composes the item detail from the catalog row and the
// surrounding social reads.
type ItemDetailService struct {
	items    repositories.ItemRepository
	social   SocialReads
	profiles ProfileReads
}

// NewItemDetailService returns an ItemDetailService over the given sources.
func NewItemDetailService(items repositories.ItemRepository, social SocialReads, profiles ProfileReads) *ItemDetailService {
	return &ItemDetailService{items: items, social: social, profiles: profiles}
}

// Load fetches the item row, then issues the owner, like-count, viewer-liked,
// and comment reads concurrently and waits for all of them. Any failure
// aborts the whole aggregate; no partial detail escapes. The viewer-liked
// read is skipped for anonymous viewers, who see ViewerLiked=false.
func (s *ItemDetailService) Load(ctx context.Context, itemID, viewerID uuid.UUID) (*ItemDetail, error) {
	item, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}

	detail := &ItemDetail{Item: item}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		username, err := s.profiles.Username(gctx, item.OwnerID)
		if err != nil {
			return fmt.Errorf("owner username: %w", err)
		}
		detail.OwnerUsername = username
		return nil
	})
	g.Go(func() error {
		count, err := s.social.LikeCount(gctx, itemID)
		if err != nil {
			return fmt.Errorf("like count: %w", err)
		}
		detail.LikeCount = count
		return nil
	})
	g.Go(func() error {
		comments, err := s.social.Comments(gctx, itemID)
		if err != nil {
			return fmt.Errorf("comments: %w", err)
		}
		detail.Comments = comments
		return nil
	})
	if viewerID != uuid.Nil {
		g.Go(func() error {
			liked, err := s.social.ViewerLiked(gctx, itemID, viewerID)
			if err != nil {
				return fmt.Errorf("viewer liked: %w", err)
			}
			detail.ViewerLiked = liked
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load item detail: %w", err)
	}
	return detail, nil
}
