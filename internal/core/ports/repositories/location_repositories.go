package repositories

import (
	"context"

	"github.com/nanduks/driver_logistics_app/internal/core/domain"
)

// LocationRepository persists driver position reports.
type LocationRepository interface {
	// SaveLocation appends a location row and mirrors the coordinates onto the
	// user row in the same transaction.
	SaveLocation(ctx context.Context, location domain.Location) error

	// FindLatestLocation returns the newest location row for the user, or
	// apperrors.ErrNotFound when the user has never reported one.
	FindLatestLocation(ctx context.Context, userID string) (*domain.Location, error)
}
