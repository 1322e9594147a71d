// Package reads adapts the social and profile contexts to the read
// interfaces the catalog's item detail aggregate consumes.
package reads

import (
	"context"

	"github.com/google/uuid"

	appsvcs "github.com/ghuser/curio/services/catalog/application/services"
	profilerepos "github.com/ghuser/curio/services/profile/domain/repositories"
	socialrepos "github.com/ghuser/curio/services/social/domain/repositories"
)

// SocialBridge implements services.SocialReads over the social repositories.
type SocialBridge struct {
	likes    socialrepos.LikeRepository
	comments socialrepos.CommentRepository
}

// NewSocialBridge returns a SocialBridge over the given repositories.
func NewSocialBridge(likes socialrepos.LikeRepository, comments socialrepos.CommentRepository) *SocialBridge {
	return &SocialBridge{likes: likes, comments: comments}
}

// LikeCount returns the item's authoritative like count.
func (b *SocialBridge) LikeCount(ctx context.Context, itemID uuid.UUID) (int, error) {
	return b.likes.CountForItem(ctx, itemID)
}

// ViewerLiked reports whether viewerID has liked itemID.
func (b *SocialBridge) ViewerLiked(ctx context.Context, itemID, viewerID uuid.UUID) (bool, error) {
	return b.likes.Exists(ctx, itemID, viewerID)
}

// Comments returns the item's comments newest-first with authors resolved to
// their display identity.
func (b *SocialBridge) Comments(ctx context.Context, itemID uuid.UUID) ([]appsvcs.CommentView, error) {
	comments, err := b.comments.ListForItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	views := make([]appsvcs.CommentView, len(comments))
	for i, c := range comments {
		author := c.DisplayAuthor()
		views[i] = appsvcs.CommentView{
			ID:              c.ID,
			Content:         c.Content,
			CreatedAt:       c.CreatedAt,
			AuthorUsername:  author.Username,
			AuthorAvatarURL: author.AvatarURL,
		}
	}
	return views, nil
}

// ProfileBridge implements services.ProfileReads over the profile read gateway.
type ProfileBridge struct {
	gateway profilerepos.ReadGateway
}

// NewProfileBridge returns a ProfileBridge over the given gateway.
func NewProfileBridge(gateway profilerepos.ReadGateway) *ProfileBridge {
	return &ProfileBridge{gateway: gateway}
}

// Username resolves a user ID to a display username. A nil result means the
// profile row does not exist.
func (b *ProfileBridge) Username(ctx context.Context, id uuid.UUID) (*string, error) {
	profile, err := b.gateway.Profile(ctx, id)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, nil
	}
	username := profile.Username
	return &username, nil
}
