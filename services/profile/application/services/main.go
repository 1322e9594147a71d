package services

import (
	"github.com/ghuser/curio/pkg/app"
	"github.com/ghuser/curio/services/profile/domain/repositories"
	"github.com/ghuser/curio/services/profile/infrastructure/persistence/postgres"
)

// Services bundles this context's application services for route wiring.
type Services struct {
	Aggregator *AggregatorService
	Profiles   *ProfileService

	// Gateway is exported for composition-root bridges into other contexts.
	Gateway repositories.ReadGateway
}

// New wires the profile services against the Postgres gateways.
func New(a *app.Application) *Services {
	gateway := postgres.NewReadGateway(a.Db)
	return &Services{
		Aggregator: NewAggregatorService(gateway, a.ProfileViews, a.Logger),
		Profiles:   NewProfileService(postgres.NewProfileRepository(a.Db, a.EventBus)),
		Gateway:    gateway,
	}
}
