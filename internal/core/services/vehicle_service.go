package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nanduks/driver_logistics_app/internal/apperrors"
	"github.com/nanduks/driver_logistics_app/internal/core/domain"
	portsrepo "github.com/nanduks/driver_logistics_app/internal/core/ports/repositories"
	portssvc "github.com/nanduks/driver_logistics_app/internal/core/ports/services"
	"github.com/nanduks/driver_logistics_app/internal/dto"
)

type vehicleService struct {
	vehicleRepo portsrepo.VehicleRepository
	userRepo    portsrepo.UserReader
}

// NewVehicleService creates a new instance of vehicleService.
func NewVehicleService(vehicleRepo portsrepo.VehicleRepository, userRepo portsrepo.UserReader) portssvc.VehicleSvcFacade {
	return &vehicleService{vehicleRepo: vehicleRepo, userRepo: userRepo}
}

var _ portssvc.VehicleSvcFacade = (*vehicleService)(nil)

// RegisterVehicle registers the driver's vehicle. The vehicle-number
// uniqueness constraint is the defence against concurrent duplicates.
func (s *vehicleService) RegisterVehicle(ctx context.Context, userID string, req dto.RegisterVehicleRequest) (*domain.Vehicle, error) {
	if _, err := s.userRepo.FindUserByID(ctx, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("user not found")
		}
		return nil, fmt.Errorf("failed to look up driver for vehicle registration: %w", err)
	}

	now := time.Now()
	vehicle := domain.Vehicle{
		VehicleID:       uuid.NewString(),
		UserID:          userID,
		VehicleNumber:   req.VehicleNumber,
		VehicleType:     domain.VehicleType(req.VehicleType),
		Model:           req.Model,
		Brand:           req.Brand,
		Year:            req.Year,
		RCBookURL:       req.RCBookURL,
		InsuranceURL:    req.InsuranceURL,
		InsuranceExpiry: req.InsuranceExpiry,
		Status:          domain.VehicleActive,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.vehicleRepo.SaveVehicle(ctx, vehicle); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewConflictError("vehicle number " + req.VehicleNumber + " already registered")
		}
		return nil, fmt.Errorf("failed to save vehicle: %w", err)
	}
	return &vehicle, nil
}

func (s *vehicleService) GetVehicleForUser(ctx context.Context, userID string) (*domain.Vehicle, error) {
	vehicle, err := s.vehicleRepo.FindVehicleByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get vehicle for user: %w", err)
	}
	return vehicle, nil
}

// UpdateVehicleStatus moves the caller's vehicle between operational states,
// e.g. parking it for maintenance. Only the owning driver may change it.
func (s *vehicleService) UpdateVehicleStatus(ctx context.Context, userID string, vehicleID string, status domain.VehicleStatus) (*domain.Vehicle, error) {
	vehicle, err := s.vehicleRepo.FindVehicleByID(ctx, vehicleID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("vehicle not found")
		}
		return nil, fmt.Errorf("failed to look up vehicle %s: %w", vehicleID, err)
	}

	if vehicle.UserID != userID {
		return nil, apperrors.NewForbiddenError("vehicle belongs to another driver")
	}

	if err := s.vehicleRepo.UpdateVehicleStatus(ctx, vehicleID, status); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("vehicle not found")
		}
		return nil, fmt.Errorf("failed to update vehicle %s status: %w", vehicleID, err)
	}

	vehicle.Status = status
	vehicle.UpdatedAt = time.Now()
	return vehicle, nil
}
