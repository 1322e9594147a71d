package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	profiledomain "github.com/ghuser/curio/services/profile/domain"
	"github.com/ghuser/curio/services/profile/domain/models"
	"github.com/ghuser/curio/services/profile/domain/repositories"
)

// ProfileService owns the profile write path. Reads stay on the aggregator;
// this only covers the edit screen's save.
type ProfileService struct {
	repo repositories.ProfileRepository
}

// NewProfileService returns a ProfileService backed by the given repository.
func NewProfileService(repo repositories.ProfileRepository) *ProfileService {
	return &ProfileService{repo: repo}
}

// UpdateProfile stores the caller's display fields, creating the profile row
// when none exists yet. Only the caller's own profile can be written; the
// subject id is always the session's user id.
func (s *ProfileService) UpdateProfile(ctx context.Context, userID uuid.UUID, username string, avatarURL *string) (*models.Profile, error) {
	name, err := models.NewUsername(username)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", profiledomain.ErrInvalidUsername, err)
	}

	saved, err := s.repo.Upsert(ctx, &models.Profile{
		ID:        userID,
		Username:  name.String(),
		AvatarURL: avatarURL,
	})
	if err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}
	return saved, nil
}
