package repositories

import (
	"context"

	"github.com/nanduks/driver_logistics_app/internal/core/domain"
)

// OrderRepository persists delivery orders. Assignment and completion touch
// both the order row and the driver row, so those run in one transaction.
type OrderRepository interface {
	// CreateAssignedOrder inserts the order and marks the driver on_trip with
	// current_order_id set, in a single transaction.
	CreateAssignedOrder(ctx context.Context, order domain.Order) error

	// FindOrderByID retrieves an order.
	FindOrderByID(ctx context.Context, orderID string) (*domain.Order, error)

	// FindOrdersByDriver lists a driver's orders, newest first.
	FindOrdersByDriver(ctx context.Context, driverID string, limit int, offset int) ([]domain.Order, error)

	// FindCurrentOrderForDriver returns the driver's assigned order, or
	// apperrors.ErrNotFound when none is in flight.
	FindCurrentOrderForDriver(ctx context.Context, driverID string) (*domain.Order, error)

	// SaveStatusChange persists the order's new status. When the change ends
	// the trip (delivered or cancelled) the driver row is released in the same
	// transaction; delivery also bumps the driver's completed-order count.
	SaveStatusChange(ctx context.Context, order domain.Order) error
}
