package app

import (
	"github.com/gorilla/sessions"

	"github.com/ghuser/curio/pkg/cache"
	"github.com/ghuser/curio/pkg/database"
	"github.com/ghuser/curio/pkg/events"
	"github.com/ghuser/curio/pkg/logger"
)

// Application holds shared infrastructure dependencies for all services.
// Pass to each service's Routes call during server initialization.
//
// Logging: app.Logger is backed by a trace-aware handler — use slog's context
// methods and trace_id, span_id, and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "toggling like", "item_id", id)
//	app.Logger.ErrorContext(ctx, "failed to save", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Db           *database.Database
	Logger       logger.Logger
	EventBus     *events.EventBus
	Redis        *cache.RedisClient
	ProfileViews *cache.ProfileViewCache
	SessionStore sessions.Store // Redis-backed session store; nil in worker process
}
