package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/ghuser/curio/pkg/cache"
	"github.com/ghuser/curio/pkg/logger"
	"github.com/ghuser/curio/services/profile/domain/models"
	"github.com/ghuser/curio/services/profile/domain/repositories"
)

// View is the composed profile page. Profile is nil when the subject has no
// profile row; everything else still renders around it.
type View struct {
	SubjectID      uuid.UUID
	Profile        *models.Profile
	Collections    []models.CollectionWithCover
	FollowerCount  int
	FollowingCount int
	IsFollowing    bool
	IsSelf         bool
	// Stale is set when the view came from the last-good cache after a
	// failed re-aggregation.
	Stale bool
}

// ViewCache stores the last successful aggregate per (subject, viewer).
// Satisfied by cache.ProfileViewCache.
type ViewCache interface {
	Get(ctx context.Context, subjectID, viewerID uuid.UUID) (*cache.CachedProfileView, error)
	Set(ctx context.Context, viewerID uuid.UUID, view *cache.CachedProfileView) error
}

// AggregatorService builds the profile view from up to five concurrent reads.
// All reads settle before anything is returned: a failure in any of them
// aborts the aggregate, and the caller gets the previous successful view from
// cache when one exists instead of a partially merged page.
type AggregatorService struct {
	gateway repositories.ReadGateway
	views   ViewCache
	log     logger.Logger
}

// NewAggregatorService returns an AggregatorService over the given gateway
// and view cache. The cache may be nil, which disables the fallback.
func NewAggregatorService(gateway repositories.ReadGateway, views ViewCache, log logger.Logger) *AggregatorService {
	return &AggregatorService{gateway: gateway, views: views, log: log}
}

// LoadView rebuilds the profile view for subjectID as seen by viewerID.
// viewerID may be uuid.Nil for anonymous viewers. The follow-existence read
// is only issued when the viewer is present and not the subject; in both
// other cases IsFollowing is false without a round trip.
//
// Every call rebuilds from scratch; nothing is memoized between calls beyond
// the last-good fallback entry.
func (s *AggregatorService) LoadView(ctx context.Context, subjectID, viewerID uuid.UUID) (*View, error) {
	view := &View{
		SubjectID: subjectID,
		IsSelf:    viewerID != uuid.Nil && viewerID == subjectID,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		profile, err := s.gateway.Profile(gctx, subjectID)
		if err != nil {
			return fmt.Errorf("profile: %w", err)
		}
		view.Profile = profile
		return nil
	})
	g.Go(func() error {
		collections, err := s.gateway.CollectionsWithCovers(gctx, subjectID)
		if err != nil {
			return fmt.Errorf("collections: %w", err)
		}
		view.Collections = collections
		return nil
	})
	g.Go(func() error {
		count, err := s.gateway.FollowerCount(gctx, subjectID)
		if err != nil {
			return fmt.Errorf("follower count: %w", err)
		}
		view.FollowerCount = count
		return nil
	})
	g.Go(func() error {
		count, err := s.gateway.FollowingCount(gctx, subjectID)
		if err != nil {
			return fmt.Errorf("following count: %w", err)
		}
		view.FollowingCount = count
		return nil
	})
	if viewerID != uuid.Nil && viewerID != subjectID {
		g.Go(func() error {
			following, err := s.gateway.IsFollowing(gctx, viewerID, subjectID)
			if err != nil {
				return fmt.Errorf("is following: %w", err)
			}
			view.IsFollowing = following
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		if cached := s.lastGood(ctx, subjectID, viewerID); cached != nil {
			s.log.WarnContext(ctx, "profile aggregate failed, serving last-good view",
				"subject_id", subjectID, "error", err)
			return cached, nil
		}
		return nil, fmt.Errorf("load profile view: %w", err)
	}

	s.store(ctx, viewerID, view)
	return view, nil
}

// lastGood returns the cached previous view, or nil when none exists.
func (s *AggregatorService) lastGood(ctx context.Context, subjectID, viewerID uuid.UUID) *View {
	if s.views == nil {
		return nil
	}
	cached, err := s.views.Get(ctx, subjectID, viewerID)
	if err != nil {
		return nil
	}

	view := &View{
		SubjectID:      cached.SubjectID,
		Collections:    make([]models.CollectionWithCover, len(cached.Collections)),
		FollowerCount:  cached.FollowerCount,
		FollowingCount: cached.FollowingCount,
		IsFollowing:    cached.IsFollowing,
		IsSelf:         viewerID != uuid.Nil && viewerID == subjectID,
		Stale:          true,
	}
	if cached.HasProfile {
		view.Profile = &models.Profile{
			ID:        cached.SubjectID,
			Username:  cached.Username,
			AvatarURL: cached.AvatarURL,
		}
	}
	for i, c := range cached.Collections {
		view.Collections[i] = models.CollectionWithCover{
			ID:            c.ID,
			Name:          c.Name,
			CoverImageURL: c.CoverImageURL,
		}
	}
	return view
}

// store overwrites the last-good entry. Best effort: a cache failure only logs.
func (s *AggregatorService) store(ctx context.Context, viewerID uuid.UUID, view *View) {
	if s.views == nil {
		return
	}

	cached := &cache.CachedProfileView{
		SubjectID:      view.SubjectID,
		HasProfile:     view.Profile != nil,
		Collections:    make([]cache.CachedCollection, len(view.Collections)),
		FollowerCount:  view.FollowerCount,
		FollowingCount: view.FollowingCount,
		IsFollowing:    view.IsFollowing,
		FetchedAt:      time.Now().UTC(),
	}
	if view.Profile != nil {
		cached.Username = view.Profile.Username
		cached.AvatarURL = view.Profile.AvatarURL
	}
	for i, c := range view.Collections {
		cached.Collections[i] = cache.CachedCollection{
			ID:            c.ID,
			Name:          c.Name,
			CoverImageURL: c.CoverImageURL,
		}
	}

	if err := s.views.Set(ctx, viewerID, cached); err != nil {
		s.log.WarnContext(ctx, "profile view cache store failed",
			"subject_id", view.SubjectID, "error", err)
	}
}
