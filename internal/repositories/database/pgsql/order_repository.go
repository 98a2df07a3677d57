package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nanduks/driver_logistics_app/internal/apperrors"
	"github.com/nanduks/driver_logistics_app/internal/core/domain"
	portsrepo "github.com/nanduks/driver_logistics_app/internal/core/ports/repositories"
)

const orderColumns = `order_id, driver_id, assigned_by_admin_id, driver_name, pickup_location,
	delivery_location, status, pickup_time, delivery_time, distance_km, load_weight_tons,
	goods_type, fare, notes, created_at, updated_at`

// PgxOrderRepository coordinates order rows with driver dispatch state. The
// driver-side writes go through the injected DriverAssignmentWriter so both
// rows move in one transaction.
type PgxOrderRepository struct {
	BaseRepository
	driverWriter portsrepo.DriverAssignmentWriter
}

func newPgxOrderRepository(pool *pgxpool.Pool, driverWriter portsrepo.DriverAssignmentWriter) portsrepo.OrderRepository {
	return &PgxOrderRepository{
		BaseRepository: BaseRepository{Pool: pool},
		driverWriter:   driverWriter,
	}
}

var _ portsrepo.OrderRepository = (*PgxOrderRepository)(nil)

func (r *PgxOrderRepository) CreateAssignedOrder(ctx context.Context, order domain.Order) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	insert := `
		INSERT INTO orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err = tx.Exec(ctx, insert,
		order.OrderID, order.DriverID, order.AssignedByAdmin, order.DriverName,
		order.PickupLocation, order.DeliveryLocation, order.Status,
		order.PickupTime, order.DeliveryTime, order.DistanceKm, order.LoadWeightTons,
		order.GoodsType, order.Fare, order.Notes, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to insert order: %w", err)
	}

	orderID := order.OrderID
	if err := r.driverWriter.UpdateDriverAssignmentInTx(ctx, tx, order.DriverID, &orderID, domain.AvailabilityOnTrip, 0); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

func (r *PgxOrderRepository) FindOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE order_id = $1;`
	rows, err := r.Pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to query order %s: %w", orderID, err)
	}
	order, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[domain.Order])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find order %s: %w", orderID, err)
	}
	return order, nil
}

func (r *PgxOrderRepository) FindOrdersByDriver(ctx context.Context, driverID string, limit int, offset int) ([]domain.Order, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	query := `SELECT ` + orderColumns + ` FROM orders WHERE driver_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3;`
	rows, err := r.Pool.Query(ctx, query, driverID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders for driver %s: %w", driverID, err)
	}
	orders, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Order])
	if err != nil {
		return nil, fmt.Errorf("failed to collect orders for driver %s: %w", driverID, err)
	}
	return orders, nil
}

func (r *PgxOrderRepository) FindCurrentOrderForDriver(ctx context.Context, driverID string) (*domain.Order, error) {
	query := `
		SELECT ` + orderColumns + ` FROM orders
		WHERE driver_id = $1 AND status = $2
		ORDER BY created_at DESC LIMIT 1;
	`
	rows, err := r.Pool.Query(ctx, query, driverID, domain.OrderAssigned)
	if err != nil {
		return nil, fmt.Errorf("failed to query current order for driver %s: %w", driverID, err)
	}
	order, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[domain.Order])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find current order for driver %s: %w", driverID, err)
	}
	return order, nil
}

// SaveStatusChange persists the order's status and, when the trip ends,
// releases the driver in the same transaction. A delivered order also bumps
// the driver's completed count.
func (r *PgxOrderRepository) SaveStatusChange(ctx context.Context, order domain.Order) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	update := `UPDATE orders SET status = $2, delivery_time = $3, updated_at = $4 WHERE order_id = $1;`
	tag, err := tx.Exec(ctx, update, order.OrderID, order.Status, order.DeliveryTime, order.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update order %s status: %w", order.OrderID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	switch order.Status {
	case domain.OrderDelivered:
		err = r.driverWriter.UpdateDriverAssignmentInTx(ctx, tx, order.DriverID, nil, domain.AvailabilityAvailable, 1)
	case domain.OrderCancelled:
		err = r.driverWriter.UpdateDriverAssignmentInTx(ctx, tx, order.DriverID, nil, domain.AvailabilityAvailable, 0)
	}
	if err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}
