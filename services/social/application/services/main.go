package services

import (
	"github.com/ghuser/curio/pkg/app"
	"github.com/ghuser/curio/services/social/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Interactions *InteractionService
	Comments     *CommentService
}

// New wires all social application services with infrastructure from the Application container.
func New(a *app.Application) *Services {
	likes := postgres.NewLikeRepository(a.Db)
	follows := postgres.NewFollowRepository(a.Db, a.EventBus)
	comments := postgres.NewCommentRepository(a.Db, a.EventBus)
	return &Services{
		Interactions: NewInteractionService(likes, follows, a.Logger),
		Comments:     NewCommentService(comments),
	}
}
