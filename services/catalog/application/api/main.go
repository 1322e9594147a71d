package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/curio/pkg/app"
	"github.com/ghuser/curio/pkg/auth"
	"github.com/ghuser/curio/services/catalog/application/handlers"
	appsvcs "github.com/ghuser/curio/services/catalog/application/services"
)

// CatalogRoutes registers item, collection, and feed endpoints on the
// provided chi router. Mutations require a session; reads accept anonymous
// viewers.
func CatalogRoutes(r chi.Router, a *app.Application, social appsvcs.SocialReads, profiles appsvcs.ProfileReads) {
	svcs := appsvcs.New(a, social, profiles)

	r.Group(func(r chi.Router) {
		r.Use(auth.OptionalAuth(a.SessionStore, a.Logger))

		r.Get("/feed", handlers.NewFeedHandler(svcs).Execute)
		r.Get("/items/{itemID}", handlers.NewGetItemHandler(svcs).Execute)
		r.Get("/collections/{collectionID}/items", handlers.NewListCollectionItemsHandler(svcs).Execute)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAuth(a.SessionStore, a.Logger))

		r.Post("/items", handlers.NewPostItemHandler(svcs).Execute)
		r.Patch("/items/{itemID}", handlers.NewUpdateItemHandler(svcs).Execute)
		r.Delete("/items/{itemID}", handlers.NewDeleteItemHandler(svcs).Execute)
		r.Post("/collections", handlers.NewGetOrCreateCollectionHandler(svcs).Execute)
	})
}
