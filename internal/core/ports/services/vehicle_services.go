package services

import (
	"context"

	"github.com/nanduks/driver_logistics_app/internal/core/domain"
	"github.com/nanduks/driver_logistics_app/internal/dto"
)

// VehicleSvcFacade defines vehicle registration operations.
type VehicleSvcFacade interface {
	// RegisterVehicle registers a vehicle for the driver. A duplicate vehicle
	// number surfaces as apperrors.ErrDuplicate.
	RegisterVehicle(ctx context.Context, userID string, req dto.RegisterVehicleRequest) (*domain.Vehicle, error)

	// GetVehicleForUser returns the driver's registered vehicle.
	GetVehicleForUser(ctx context.Context, userID string) (*domain.Vehicle, error)

	// UpdateVehicleStatus moves the vehicle between operational states. Only
	// the owning driver may change it; anyone else gets apperrors.ErrForbidden.
	UpdateVehicleStatus(ctx context.Context, userID string, vehicleID string, status domain.VehicleStatus) (*domain.Vehicle, error)
}
