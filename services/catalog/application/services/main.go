package services

import (
	"github.com/ghuser/curio/pkg/app"
	"github.com/ghuser/curio/services/catalog/infrastructure/persistence/postgres"
)

// Services bundles this context's application services for route wiring.
type Services struct {
	Items       *ItemService
	Collections *CollectionService
	Details     *ItemDetailService
}

// New wires the catalog services against Postgres repositories. The social
// and profile read bridges are injected by the composition root since they
// cross context boundaries.
func New(a *app.Application, social SocialReads, profiles ProfileReads) *Services {
	items := postgres.NewItemRepository(a.Db, a.EventBus)
	collections := postgres.NewCollectionRepository(a.Db)

	return &Services{
		Items:       NewItemService(items),
		Collections: NewCollectionService(collections),
		Details:     NewItemDetailService(items, social, profiles),
	}
}
