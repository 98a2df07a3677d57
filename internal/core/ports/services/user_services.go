package services

import (
	"context"

	"github.com/nanduks/driver_logistics_app/internal/core/domain"
	"github.com/nanduks/driver_logistics_app/internal/dto"
)

// UserSvcFacade defines user profile operations.
type UserSvcFacade interface {
	// GetUserByID retrieves a single user.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// GetUserData assembles the user/vehicle/current-order/latest-location
	// aggregate the driver app renders.
	GetUserData(ctx context.Context, userID string) (*domain.UserData, error)

	// UpdateProfile applies the non-nil fields of the request to the user.
	UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*domain.User, error)

	// ListUsers returns a page of users.
	ListUsers(ctx context.Context, limit int, offset int) ([]domain.User, error)
}
