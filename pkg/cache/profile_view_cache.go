package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const profileViewKeyPrefix = "profile_view"

// CachedProfileView is the denormalized last-good profile aggregate stored in
// Redis. It exists so a failed re-aggregation can fall back to the previous
// successful view instead of rendering a partial one.
type CachedProfileView struct {
	SubjectID      uuid.UUID          `json:"subject_id"`
	Username       string             `json:"username"`
	AvatarURL      *string            `json:"avatar_url"`
	HasProfile     bool               `json:"has_profile"`
	Collections    []CachedCollection `json:"collections"`
	FollowerCount  int                `json:"follower_count"`
	FollowingCount int                `json:"following_count"`
	IsFollowing    bool               `json:"is_following"`
	FetchedAt      time.Time          `json:"fetched_at"`
}

// CachedCollection is one collection tile with its derived cover image.
type CachedCollection struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	CoverImageURL *string   `json:"cover_image_url"`
}

// ProfileViewCache stores aggregated profile views keyed by (subject, viewer).
// The viewer is part of the key because the is-following flag is
// viewer-specific; anonymous viewers share the "anon" slot.
// Key format: "profile_view:{subjectID}:{viewerID|anon}"
type ProfileViewCache struct {
	client *RedisClient
	ttl    time.Duration
}

// NewProfileViewCache creates a ProfileViewCache with the given entry TTL.
func NewProfileViewCache(r *RedisClient, ttl time.Duration) *ProfileViewCache {
	return &ProfileViewCache{client: r, ttl: ttl}
}

// Get retrieves the cached view for (subject, viewer).
// Returns redis.Nil error when the key does not exist or has expired.
func (c *ProfileViewCache) Get(ctx context.Context, subjectID, viewerID uuid.UUID) (*CachedProfileView, error) {
	data, err := c.client.Client().Get(ctx, c.key(subjectID, viewerID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, redis.Nil
		}
		return nil, fmt.Errorf("profile view cache get: %w", err)
	}
	var view CachedProfileView
	if err := json.Unmarshal(data, &view); err != nil {
		return nil, fmt.Errorf("profile view cache decode: %w", err)
	}
	return &view, nil
}

// Set overwrites the cached view for (subject, viewer).
func (c *ProfileViewCache) Set(ctx context.Context, viewerID uuid.UUID, view *CachedProfileView) error {
	data, err := json.Marshal(view)
	if err != nil {
		return fmt.Errorf("profile view cache encode: %w", err)
	}
	if err := c.client.Client().Set(ctx, c.key(view.SubjectID, viewerID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("profile view cache set: %w", err)
	}
	return nil
}

// InvalidateSubject removes every cached view of the subject, across all
// viewers. Used when follower edges or collection covers change.
func (c *ProfileViewCache) InvalidateSubject(ctx context.Context, subjectID uuid.UUID) error {
	pattern := fmt.Sprintf("%s:%s:*", profileViewKeyPrefix, subjectID)
	iter := c.client.Client().Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Client().Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("profile view cache invalidate: %w", err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("profile view cache scan: %w", err)
	}
	return nil
}

// key builds the Redis key: "profile_view:{subjectID}:{viewerID|anon}"
func (c *ProfileViewCache) key(subjectID, viewerID uuid.UUID) string {
	viewer := "anon"
	if viewerID != uuid.Nil {
		viewer = viewerID.String()
	}
	return fmt.Sprintf("%s:%s:%s", profileViewKeyPrefix, subjectID, viewer)
}
