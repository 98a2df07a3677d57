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

const vehicleColumns = `vehicle_id, user_id, vehicle_number, vehicle_type, model, brand, year,
	rc_book_url, insurance_url, insurance_expiry, status, created_at, updated_at`

type PgxVehicleRepository struct {
	BaseRepository
}

func newPgxVehicleRepository(pool *pgxpool.Pool) portsrepo.VehicleRepository {
	return &PgxVehicleRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.VehicleRepository = (*PgxVehicleRepository)(nil)

func (r *PgxVehicleRepository) SaveVehicle(ctx context.Context, vehicle domain.Vehicle) error {
	query := `
		INSERT INTO vehicles (` + vehicleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		vehicle.VehicleID, vehicle.UserID, vehicle.VehicleNumber, vehicle.VehicleType,
		vehicle.Model, vehicle.Brand, vehicle.Year, vehicle.RCBookURL,
		vehicle.InsuranceURL, vehicle.InsuranceExpiry, vehicle.Status,
		vehicle.CreatedAt, vehicle.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save vehicle: %w", err)
	}
	return nil
}

func (r *PgxVehicleRepository) FindVehicleByID(ctx context.Context, vehicleID string) (*domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE vehicle_id = $1;`
	rows, err := r.Pool.Query(ctx, query, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("failed to query vehicle %s: %w", vehicleID, err)
	}
	vehicle, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[domain.Vehicle])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find vehicle %s: %w", vehicleID, err)
	}
	return vehicle, nil
}

func (r *PgxVehicleRepository) FindVehicleByUserID(ctx context.Context, userID string) (*domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE user_id = $1 ORDER BY created_at DESC LIMIT 1;`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query vehicle for user %s: %w", userID, err)
	}
	vehicle, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[domain.Vehicle])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find vehicle for user %s: %w", userID, err)
	}
	return vehicle, nil
}

func (r *PgxVehicleRepository) UpdateVehicleStatus(ctx context.Context, vehicleID string, status domain.VehicleStatus) error {
	query := `UPDATE vehicles SET status = $2, updated_at = now() WHERE vehicle_id = $1;`
	tag, err := r.Pool.Exec(ctx, query, vehicleID, status)
	if err != nil {
		return fmt.Errorf("failed to update vehicle %s status: %w", vehicleID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
