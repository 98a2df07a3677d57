package services

import (
	"context"

	"github.com/nanduks/driver_logistics_app/internal/core/domain"
	"github.com/nanduks/driver_logistics_app/internal/dto"
)

// OrderSvcFacade defines order dispatch operations.
type OrderSvcFacade interface {
	// AssignOrder dispatches an order to a driver on behalf of an admin user.
	// Non-admin callers get apperrors.ErrForbidden. The order row and the
	// driver's dispatch state commit in one transaction.
	AssignOrder(ctx context.Context, adminUserID string, req dto.AssignOrderRequest) (*domain.Order, error)

	// UpdateOrderStatus moves the driver's order through its lifecycle.
	// Delivery bumps the driver's completed count and frees them for the next
	// trip in the same transaction.
	UpdateOrderStatus(ctx context.Context, driverID string, orderID string, status domain.OrderStatus) (*domain.Order, error)

	// ListOrdersForDriver returns a page of the driver's orders, newest first.
	ListOrdersForDriver(ctx context.Context, driverID string, limit int, offset int) ([]domain.Order, error)
}
