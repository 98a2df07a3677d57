package services

import (
	"context"

	"github.com/nanduks/driver_logistics_app/internal/core/domain"
	"github.com/nanduks/driver_logistics_app/internal/dto"
)

// LocationSvcFacade defines driver position tracking operations.
type LocationSvcFacade interface {
	// RecordLocation appends a position report and mirrors it onto the user row.
	RecordLocation(ctx context.Context, userID string, req dto.RecordLocationRequest) (*domain.Location, error)

	// GetLatestLocation returns the driver's most recent position.
	GetLatestLocation(ctx context.Context, userID string) (*domain.Location, error)
}
