package services

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/uuid"

	"github.com/ghuser/curio/pkg/logger"
	socialdomain "github.com/ghuser/curio/services/social/domain"
	"github.com/ghuser/curio/services/social/domain/models"
)

// recordLogger captures error messages so tests can assert on failure logging.
type recordLogger struct {
	errors []string
}

func (l *recordLogger) Info(msg string, args ...any)  {}
func (l *recordLogger) Error(msg string, args ...any) { l.errors = append(l.errors, msg) }
func (l *recordLogger) Warn(msg string, args ...any)  {}
func (l *recordLogger) Debug(msg string, args ...any) {}
func (l *recordLogger) InfoContext(ctx context.Context, msg string, args ...any) {}
func (l *recordLogger) ErrorContext(ctx context.Context, msg string, args ...any) {
	l.errors = append(l.errors, msg)
}
func (l *recordLogger) WarnContext(ctx context.Context, msg string, args ...any)  {}
func (l *recordLogger) DebugContext(ctx context.Context, msg string, args ...any) {}
func (l *recordLogger) With(args ...any) logger.Logger                            { return l }
func (l *recordLogger) ToSlog() *slog.Logger                                      { return slog.Default() }

type fakeLikeRepo struct {
	inserts   int
	deletes   int
	insertErr error
	deleteErr error
}

func (f *fakeLikeRepo) Insert(ctx context.Context, itemID, userID uuid.UUID) error {
	f.inserts++
	return f.insertErr
}

func (f *fakeLikeRepo) Delete(ctx context.Context, itemID, userID uuid.UUID) error {
	f.deletes++
	return f.deleteErr
}

func (f *fakeLikeRepo) CountForItem(ctx context.Context, itemID uuid.UUID) (int, error) {
	return 0, nil
}

func (f *fakeLikeRepo) Exists(ctx context.Context, itemID, userID uuid.UUID) (bool, error) {
	return false, nil
}

type fakeFollowRepo struct {
	inserts   int
	deletes   int
	insertErr error
	deleteErr error
}

func (f *fakeFollowRepo) Insert(ctx context.Context, followerID, followeeID uuid.UUID) error {
	f.inserts++
	return f.insertErr
}

func (f *fakeFollowRepo) Delete(ctx context.Context, followerID, followeeID uuid.UUID) error {
	f.deletes++
	return f.deleteErr
}

func (f *fakeFollowRepo) CountFollowers(ctx context.Context, profileID uuid.UUID) (int, error) {
	return 0, nil
}

func (f *fakeFollowRepo) CountFollowing(ctx context.Context, profileID uuid.UUID) (int, error) {
	return 0, nil
}

func (f *fakeFollowRepo) Exists(ctx context.Context, followerID, followeeID uuid.UUID) (bool, error) {
	return false, nil
}

func TestInteractionService_ToggleLike(t *testing.T) {
	itemID := uuid.New()
	actorID := uuid.New()

	t.Run("requires a signed-in actor before any write", func(t *testing.T) {
		likes := &fakeLikeRepo{}
		svc := NewInteractionService(likes, &fakeFollowRepo{}, &recordLogger{})

		_, err := svc.ToggleLike(context.Background(), uuid.Nil, itemID, models.Projection{})
		if !errors.Is(err, socialdomain.ErrAuthRequired) {
			t.Fatalf("expected ErrAuthRequired, got %v", err)
		}
		if likes.inserts != 0 || likes.deletes != 0 {
			t.Fatal("expected no repository calls for an anonymous actor")
		}
	})

	t.Run("inactive state inserts a row and returns the incremented projection", func(t *testing.T) {
		likes := &fakeLikeRepo{}
		svc := NewInteractionService(likes, &fakeFollowRepo{}, &recordLogger{})

		next, err := svc.ToggleLike(context.Background(), actorID, itemID, models.Projection{Active: false, Count: 3})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !next.Active || next.Count != 4 {
			t.Fatalf("expected {true 4}, got %+v", next)
		}
		if likes.inserts != 1 || likes.deletes != 0 {
			t.Fatalf("expected one insert, got inserts=%d deletes=%d", likes.inserts, likes.deletes)
		}
	})

	t.Run("active state deletes the row and returns the decremented projection", func(t *testing.T) {
		likes := &fakeLikeRepo{}
		svc := NewInteractionService(likes, &fakeFollowRepo{}, &recordLogger{})

		next, err := svc.ToggleLike(context.Background(), actorID, itemID, models.Projection{Active: true, Count: 4})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if next.Active || next.Count != 3 {
			t.Fatalf("expected {false 3}, got %+v", next)
		}
		if likes.deletes != 1 || likes.inserts != 0 {
			t.Fatalf("expected one delete, got inserts=%d deletes=%d", likes.inserts, likes.deletes)
		}
	})

	t.Run("write failure keeps the optimistic projection and logs", func(t *testing.T) {
		likes := &fakeLikeRepo{insertErr: errors.New("connection reset")}
		log := &recordLogger{}
		svc := NewInteractionService(likes, &fakeFollowRepo{}, log)

		next, err := svc.ToggleLike(context.Background(), actorID, itemID, models.Projection{Active: false, Count: 3})
		if err != nil {
			t.Fatalf("expected nil error despite write failure, got %v", err)
		}
		if !next.Active || next.Count != 4 {
			t.Fatalf("expected optimistic {true 4} to stand, got %+v", next)
		}
		if len(log.errors) != 1 {
			t.Fatalf("expected one logged error, got %d", len(log.errors))
		}
	})
}

func TestInteractionService_ToggleFollow(t *testing.T) {
	actorID := uuid.New()
	profileID := uuid.New()

	t.Run("requires a signed-in actor", func(t *testing.T) {
		follows := &fakeFollowRepo{}
		svc := NewInteractionService(&fakeLikeRepo{}, follows, &recordLogger{})

		_, err := svc.ToggleFollow(context.Background(), uuid.Nil, profileID, models.Projection{})
		if !errors.Is(err, socialdomain.ErrAuthRequired) {
			t.Fatalf("expected ErrAuthRequired, got %v", err)
		}
		if follows.inserts != 0 || follows.deletes != 0 {
			t.Fatal("expected no repository calls for an anonymous actor")
		}
	})

	t.Run("rejects following your own profile", func(t *testing.T) {
		follows := &fakeFollowRepo{}
		svc := NewInteractionService(&fakeLikeRepo{}, follows, &recordLogger{})

		_, err := svc.ToggleFollow(context.Background(), actorID, actorID, models.Projection{})
		if !errors.Is(err, socialdomain.ErrSelfFollow) {
			t.Fatalf("expected ErrSelfFollow, got %v", err)
		}
		if follows.inserts != 0 || follows.deletes != 0 {
			t.Fatal("expected no repository calls on self-follow")
		}
	})

	t.Run("not-following becomes following", func(t *testing.T) {
		follows := &fakeFollowRepo{}
		svc := NewInteractionService(&fakeLikeRepo{}, follows, &recordLogger{})

		next, err := svc.ToggleFollow(context.Background(), actorID, profileID, models.Projection{Active: false, Count: 10})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !next.Active || next.Count != 11 {
			t.Fatalf("expected {true 11}, got %+v", next)
		}
		if follows.inserts != 1 {
			t.Fatalf("expected one insert, got %d", follows.inserts)
		}
	})

	t.Run("following becomes not-following", func(t *testing.T) {
		follows := &fakeFollowRepo{}
		svc := NewInteractionService(&fakeLikeRepo{}, follows, &recordLogger{})

		next, err := svc.ToggleFollow(context.Background(), actorID, profileID, models.Projection{Active: true, Count: 11})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if next.Active || next.Count != 10 {
			t.Fatalf("expected {false 10}, got %+v", next)
		}
		if follows.deletes != 1 {
			t.Fatalf("expected one delete, got %d", follows.deletes)
		}
	})

	t.Run("delete failure keeps the optimistic projection and logs", func(t *testing.T) {
		follows := &fakeFollowRepo{deleteErr: errors.New("timeout")}
		log := &recordLogger{}
		svc := NewInteractionService(&fakeLikeRepo{}, follows, log)

		next, err := svc.ToggleFollow(context.Background(), actorID, profileID, models.Projection{Active: true, Count: 5})
		if err != nil {
			t.Fatalf("expected nil error despite write failure, got %v", err)
		}
		if next.Active || next.Count != 4 {
			t.Fatalf("expected optimistic {false 4} to stand, got %+v", next)
		}
		if len(log.errors) != 1 {
			t.Fatalf("expected one logged error, got %d", len(log.errors))
		}
	})
}
