package repositories

import (
	"context"

	"github.com/ghuser/curio/services/profile/domain/models"
)

// ProfileRepository is the write side of the profiles table.
type ProfileRepository interface {
	// Upsert creates the profile row on first save and overwrites the
	// display fields afterwards. Returns the stored row.
	Upsert(ctx context.Context, profile *models.Profile) (*models.Profile, error)
}
