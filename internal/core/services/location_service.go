package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nanduks/driver_logistics_app/internal/core/domain"
	portsrepo "github.com/nanduks/driver_logistics_app/internal/core/ports/repositories"
	portssvc "github.com/nanduks/driver_logistics_app/internal/core/ports/services"
	"github.com/nanduks/driver_logistics_app/internal/dto"
)

type locationService struct {
	locationRepo portsrepo.LocationRepository
}

// NewLocationService creates a new instance of locationService.
func NewLocationService(locationRepo portsrepo.LocationRepository) portssvc.LocationSvcFacade {
	return &locationService{locationRepo: locationRepo}
}

var _ portssvc.LocationSvcFacade = (*locationService)(nil)

// RecordLocation appends a position report. The repository mirrors the
// coordinates onto the user row in the same transaction.
func (s *locationService) RecordLocation(ctx context.Context, userID string, req dto.RecordLocationRequest) (*domain.Location, error) {
	now := time.Now()
	location := domain.Location{
		LocationID:  uuid.NewString(),
		UserID:      userID,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Address:     req.Address,
		LastUpdated: now,
		CreatedAt:   now,
	}

	if err := s.locationRepo.SaveLocation(ctx, location); err != nil {
		return nil, fmt.Errorf("failed to save location: %w", err)
	}
	return &location, nil
}

func (s *locationService) GetLatestLocation(ctx context.Context, userID string) (*domain.Location, error) {
	location, err := s.locationRepo.FindLatestLocation(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest location: %w", err)
	}
	return location, nil
}
