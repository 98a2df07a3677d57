package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nanduks/driver_logistics_app/internal/apperrors"
	"github.com/nanduks/driver_logistics_app/internal/core/domain"
	portsrepo "github.com/nanduks/driver_logistics_app/internal/core/ports/repositories"
	portssvc "github.com/nanduks/driver_logistics_app/internal/core/ports/services"
	"github.com/nanduks/driver_logistics_app/internal/dto"
)

type userService struct {
	userRepo     portsrepo.UserRepositoryFacade
	vehicleRepo  portsrepo.VehicleRepository
	orderRepo    portsrepo.OrderRepository
	locationRepo portsrepo.LocationRepository
}

// NewUserService creates a new instance of userService.
func NewUserService(
	userRepo portsrepo.UserRepositoryFacade,
	vehicleRepo portsrepo.VehicleRepository,
	orderRepo portsrepo.OrderRepository,
	locationRepo portsrepo.LocationRepository,
) portssvc.UserSvcFacade {
	return &userService{
		userRepo:     userRepo,
		vehicleRepo:  vehicleRepo,
		orderRepo:    orderRepo,
		locationRepo: locationRepo,
	}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}
	return user, nil
}

// GetUserData assembles the home-screen aggregate. A missing vehicle, order
// or location is not an error; only a missing user is.
func (s *userService) GetUserData(ctx context.Context, userID string) (*domain.UserData, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user data: %w", err)
	}

	data := &domain.UserData{User: *user}

	vehicle, err := s.vehicleRepo.FindVehicleByUserID(ctx, userID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to get vehicle for user data: %w", err)
	}
	data.Vehicle = vehicle

	order, err := s.orderRepo.FindCurrentOrderForDriver(ctx, userID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to get current order for user data: %w", err)
	}
	data.CurrentOrder = order

	location, err := s.locationRepo.FindLatestLocation(ctx, userID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to get latest location for user data: %w", err)
	}
	data.Location = location

	return data, nil
}

// UpdateProfile applies the non-nil request fields onto the stored user.
func (s *userService) UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user for profile update: %w", err)
	}

	changed := false
	if req.Name != nil && *req.Name != "" && *req.Name != user.Name {
		user.Name = *req.Name
		changed = true
	}
	if req.Age != nil && *req.Age > 0 && *req.Age != user.Age {
		user.Age = *req.Age
		changed = true
	}
	if req.Phone != nil && *req.Phone != "" {
		user.Phone = req.Phone
		changed = true
	}
	if req.State != nil && *req.State != "" && *req.State != user.State {
		user.State = *req.State
		changed = true
	}
	if req.District != nil && *req.District != "" && *req.District != user.District {
		user.District = *req.District
		changed = true
	}
	if req.Rating != nil {
		user.Rating = *req.Rating
		changed = true
	}

	if !changed {
		return user, nil
	}

	user.UpdatedAt = time.Now()
	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		return nil, fmt.Errorf("failed to update user profile: %w", err)
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	users, err := s.userRepo.FindUsers(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}
