package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/curio/pkg/logger"
	socialdomain "github.com/ghuser/curio/services/social/domain"
	"github.com/ghuser/curio/services/social/domain/models"
	"github.com/ghuser/curio/services/social/domain/repositories"
)

// InteractionService is the toggle engine for binary social relations.
// Each toggle computes the optimistic projection first — that is what the
// caller renders immediately — and then issues the matching row write.
//
// The projection is deliberately not reconciled when the write fails: the
// displayed flag and counter stay at their optimistic values until the next
// full reload. Gateway failures are logged instead of surfaced.
type InteractionService struct {
	likes   repositories.LikeRepository
	follows repositories.FollowRepository
	log     logger.Logger
}

// NewInteractionService returns an InteractionService wired with the given repositories.
func NewInteractionService(likes repositories.LikeRepository, follows repositories.FollowRepository, log logger.Logger) *InteractionService {
	return &InteractionService{likes: likes, follows: follows, log: log}
}

// ToggleLike flips the liked state between actorID and itemID.
// current is the state the client is displaying; the returned projection is
// its optimistic successor. Requires a signed-in actor.
func (s *InteractionService) ToggleLike(ctx context.Context, actorID, itemID uuid.UUID, current models.Projection) (models.Projection, error) {
	if actorID == uuid.Nil {
		return current, socialdomain.ErrAuthRequired
	}

	next := current.Toggle()

	var err error
	if current.Active {
		err = s.likes.Delete(ctx, itemID, actorID)
	} else {
		err = s.likes.Insert(ctx, itemID, actorID)
	}
	if err != nil {
		// No rollback: the optimistic projection stands until the next reload.
		s.log.ErrorContext(ctx, "like toggle write failed, displayed state unreconciled",
			"item_id", itemID, "actor_id", actorID, "active", next.Active, "error", err)
	}

	return next, nil
}

// ToggleFollow flips the following state between actorID and profileID.
// Self-follow is rejected: the relation is meaningless for identical
// actor and target.
func (s *InteractionService) ToggleFollow(ctx context.Context, actorID, profileID uuid.UUID, current models.Projection) (models.Projection, error) {
	if actorID == uuid.Nil {
		return current, socialdomain.ErrAuthRequired
	}
	if actorID == profileID {
		return current, socialdomain.ErrSelfFollow
	}

	next := current.Toggle()

	var err error
	if current.Active {
		err = s.follows.Delete(ctx, actorID, profileID)
	} else {
		err = s.follows.Insert(ctx, actorID, profileID)
	}
	if err != nil {
		s.log.ErrorContext(ctx, "follow toggle write failed, displayed state unreconciled",
			"followee_id", profileID, "actor_id", actorID, "active", next.Active, "error", err)
	}

	return next, nil
}
