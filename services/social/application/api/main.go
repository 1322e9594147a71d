package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/curio/pkg/app"
	"github.com/ghuser/curio/pkg/auth"
	"github.com/ghuser/curio/services/social/application/handlers"
	appsvcs "github.com/ghuser/curio/services/social/application/services"
)

// SocialRoutes registers like, follow, and comment endpoints on the provided
// chi router. Mutations use OptionalAuth rather than RequireAuth: the toggle
// engine and comment pipeline refuse missing actors themselves, which keeps
// the authentication-required condition a domain rule instead of a routing
// detail.
func SocialRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Group(func(r chi.Router) {
		r.Use(auth.OptionalAuth(a.SessionStore, a.Logger))

		r.Post("/items/{itemID}/like", handlers.NewToggleLikeHandler(svcs).Execute)
		r.Post("/profiles/{profileID}/follow", handlers.NewToggleFollowHandler(svcs).Execute)
		r.Post("/items/{itemID}/comments", handlers.NewPostCommentHandler(svcs).Execute)
		r.Get("/items/{itemID}/comments", handlers.NewListCommentsHandler(svcs).Execute)
	})
}
