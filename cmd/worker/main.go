package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	"github.com/ghuser/curio/pkg/app"
	"github.com/ghuser/curio/pkg/cache"
	"github.com/ghuser/curio/pkg/config"
	"github.com/ghuser/curio/pkg/database"
	"github.com/ghuser/curio/pkg/events"
	"github.com/ghuser/curio/pkg/logger"
	"github.com/ghuser/curio/pkg/telemetry"
	catalogEvents "github.com/ghuser/curio/services/catalog/domain/events"
	profileEvents "github.com/ghuser/curio/services/profile/domain/events"
	socialEvents "github.com/ghuser/curio/services/social/domain/events"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	ctx := context.Background()

	otelShutdown, _, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer pool.Close()
	log.Info("database pool connected")

	eventBus, err := events.NewEventBus(cfg, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer redisClient.Close() //nolint:errcheck
	log.Info("redis connected")

	profileViews := cache.NewProfileViewCache(redisClient, 0)

	appConfig := &app.Application{
		Db:           pool,
		Logger:       log,
		EventBus:     eventBus,
		Redis:        redisClient,
		ProfileViews: profileViews,
	}

	if err := registerSubscribers(ctx, appConfig); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")
	// EventBus.Close() (via defer) waits for in-flight handlers.
	log.Info("worker stopped")
}

// registerSubscribers wires all domain event handlers.
// Add new topics here as more services publish events.
func registerSubscribers(ctx context.Context, a *app.Application) error {
	subscriptions := map[string]func(context.Context, *message.Message) error{
		socialEvents.TopicFollowToggled:   handleFollowToggled(a),
		socialEvents.TopicCommentCreated:  handleCommentCreated(a),
		catalogEvents.TopicItemCreated:    handleItemCreated(a),
		catalogEvents.TopicItemDeleted:    handleItemDeleted(a),
		profileEvents.TopicProfileUpdated: handleProfileUpdated(a),
	}

	topics := make([]string, 0, len(subscriptions))
	for topic, handler := range subscriptions {
		errCh, err := a.EventBus.Subscribe(ctx, topic, handler)
		if err != nil {
			return err
		}
		topics = append(topics, topic)

		// Drain subscriber errors in background so the channel never blocks.
		go func(topic string) {
			for err := range errCh {
				a.Logger.ErrorContext(ctx, "subscriber error", "topic", topic, "error", err)
			}
		}(topic)
	}

	a.Logger.Info("event subscribers registered", "topics", topics)
	return nil
}

// handleFollowToggled invalidates the followee's cached profile views: the
// follower count every viewer sees, and the is-following flag of the actor,
// are both stale after an edge change. Handlers must be idempotent — the
// EventBus retries up to 3× on failure, and invalidation trivially is.
func handleFollowToggled(a *app.Application) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		var evt socialEvents.FollowToggledEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		if err := a.ProfileViews.InvalidateSubject(ctx, evt.FolloweeID); err != nil {
			return err
		}
		// The follower's own following count changed too.
		if err := a.ProfileViews.InvalidateSubject(ctx, evt.FollowerID); err != nil {
			return err
		}

		a.Logger.InfoContext(ctx, "profile views invalidated for follow change",
			"follower_id", evt.FollowerID, "followee_id", evt.FolloweeID, "following", evt.Following)
		return nil
	}
}

// handleItemCreated invalidates the owner's cached profile views since
// collection covers derive from the newest item image.
func handleItemCreated(a *app.Application) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		var evt catalogEvents.ItemCreatedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}
		return invalidateOwnerViews(ctx, a, evt.OwnerID, evt.ItemID, "item created")
	}
}

// handleItemDeleted mirrors handleItemCreated: removing an item can change
// the cover of the collection it was in.
func handleItemDeleted(a *app.Application) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		var evt catalogEvents.ItemDeletedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}
		return invalidateOwnerViews(ctx, a, evt.OwnerID, evt.ItemID, "item deleted")
	}
}

func invalidateOwnerViews(ctx context.Context, a *app.Application, ownerID, itemID uuid.UUID, reason string) error {
	if err := a.ProfileViews.InvalidateSubject(ctx, ownerID); err != nil {
		return err
	}
	a.Logger.InfoContext(ctx, "profile views invalidated",
		"owner_id", ownerID, "item_id", itemID, "reason", reason)
	return nil
}

// handleProfileUpdated invalidates the subject's cached profile views so
// the new username and avatar show up on the next load.
func handleProfileUpdated(a *app.Application) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		var evt profileEvents.ProfileUpdatedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}
		if err := a.ProfileViews.InvalidateSubject(ctx, evt.ProfileID); err != nil {
			return err
		}
		a.Logger.InfoContext(ctx, "profile views invalidated for profile edit",
			"profile_id", evt.ProfileID)
		return nil
	}
}

// handleCommentCreated currently only records the event. It is the hook
// point for comment notifications once those exist.
func handleCommentCreated(a *app.Application) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		var evt socialEvents.CommentCreatedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}
		a.Logger.InfoContext(ctx, "comment created",
			"comment_id", evt.CommentID, "item_id", evt.ItemID, "author_id", evt.AuthorID)
		return nil
	}
}
