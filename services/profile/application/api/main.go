package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/curio/pkg/app"
	"github.com/ghuser/curio/pkg/auth"
	"github.com/ghuser/curio/services/profile/application/handlers"
	appsvcs "github.com/ghuser/curio/services/profile/application/services"
)

// ProfileRoutes registers the profile endpoints on the provided chi router.
// The view is public; a session only affects the is-following flag. The
// write path covers only the caller's own row, so it sits behind RequireAuth.
// Returns the wired services so the composition root can bridge the read
// gateway into other contexts.
func ProfileRoutes(r chi.Router, a *app.Application) *appsvcs.Services {
	svcs := appsvcs.New(a)
	r.Group(func(r chi.Router) {
		r.Use(auth.OptionalAuth(a.SessionStore, a.Logger))

		r.Get("/profiles/{profileID}", handlers.NewGetProfileHandler(svcs).Execute)
	})
	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAuth(a.SessionStore, a.Logger))

		r.Put("/profiles/me", handlers.NewUpdateProfileHandler(svcs).Execute)
	})
	return svcs
}
