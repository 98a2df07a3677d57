package repositories

import (
	"context"

	"github.com/nanduks/driver_logistics_app/internal/core/domain"
)

// VehicleRepository persists vehicle registrations.
type VehicleRepository interface {
	// SaveVehicle persists a new vehicle. Returns apperrors.ErrDuplicate when
	// the vehicle number is already registered.
	SaveVehicle(ctx context.Context, vehicle domain.Vehicle) error

	// FindVehicleByID retrieves a vehicle by its ID.
	FindVehicleByID(ctx context.Context, vehicleID string) (*domain.Vehicle, error)

	// FindVehicleByUserID retrieves the vehicle registered to a driver.
	FindVehicleByUserID(ctx context.Context, userID string) (*domain.Vehicle, error)

	// UpdateVehicleStatus moves a vehicle between operational states.
	UpdateVehicleStatus(ctx context.Context, vehicleID string, status domain.VehicleStatus) error
}
