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

type orderService struct {
	orderRepo portsrepo.OrderRepository
	userRepo  portsrepo.UserRepositoryFacade
}

// NewOrderService creates a new instance of orderService.
func NewOrderService(orderRepo portsrepo.OrderRepository, userRepo portsrepo.UserRepositoryFacade) portssvc.OrderSvcFacade {
	return &orderService{orderRepo: orderRepo, userRepo: userRepo}
}

var _ portssvc.OrderSvcFacade = (*orderService)(nil)

// AssignOrder dispatches an order to a driver. Only admin users may assign;
// the driver must exist and not already be on a trip.
func (s *orderService) AssignOrder(ctx context.Context, adminUserID string, req dto.AssignOrderRequest) (*domain.Order, error) {
	admin, err := s.userRepo.FindUserByID(ctx, adminUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewUnauthorizedError("assigning user not found")
		}
		return nil, fmt.Errorf("failed to look up assigning user: %w", err)
	}
	if admin.Role != domain.RoleAdmin {
		return nil, apperrors.NewForbiddenError("only admins may assign orders")
	}

	driver, err := s.userRepo.FindUserByID(ctx, req.DriverID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("driver not found")
		}
		return nil, fmt.Errorf("failed to look up driver: %w", err)
	}
	if driver.Role != domain.RoleDriver {
		return nil, apperrors.NewValidationFailedError("assignee is not a driver")
	}
	if driver.Availability == domain.AvailabilityOnTrip {
		return nil, apperrors.NewConflictError("driver is already on a trip")
	}

	now := time.Now()
	order := domain.Order{
		OrderID:          uuid.NewString(),
		DriverID:         driver.UserID,
		AssignedByAdmin:  admin.UserID,
		DriverName:       driver.Name,
		PickupLocation:   req.PickupLocation,
		DeliveryLocation: req.DeliveryLocation,
		Status:           domain.OrderAssigned,
		PickupTime:       req.PickupTime,
		DeliveryTime:     req.DeliveryTime,
		DistanceKm:       req.DistanceKm,
		LoadWeightTons:   req.LoadWeightTons,
		GoodsType:        req.GoodsType,
		Fare:             req.Fare,
		Notes:            req.Notes,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.orderRepo.CreateAssignedOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create assigned order: %w", err)
	}
	return &order, nil
}

// UpdateOrderStatus moves an order through its lifecycle on behalf of its
// driver. Transition rules live on the domain type.
func (s *orderService) UpdateOrderStatus(ctx context.Context, driverID string, orderID string, status domain.OrderStatus) (*domain.Order, error) {
	order, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("order not found")
		}
		return nil, fmt.Errorf("failed to find order: %w", err)
	}

	if order.DriverID != driverID {
		return nil, apperrors.NewForbiddenError("order belongs to another driver")
	}
	if !order.CanTransitionTo(status) {
		return nil, apperrors.NewValidationFailedError(
			fmt.Sprintf("cannot move order from %s to %s", order.Status, status))
	}

	order.Status = status
	order.UpdatedAt = time.Now()
	if err := s.orderRepo.SaveStatusChange(ctx, *order); err != nil {
		return nil, fmt.Errorf("failed to save order status change: %w", err)
	}
	return order, nil
}

func (s *orderService) ListOrdersForDriver(ctx context.Context, driverID string, limit int, offset int) ([]domain.Order, error) {
	orders, err := s.orderRepo.FindOrdersByDriver(ctx, driverID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders for driver: %w", err)
	}
	return orders, nil
}
