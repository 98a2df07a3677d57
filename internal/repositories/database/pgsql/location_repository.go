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

type PgxLocationRepository struct {
	BaseRepository
}

func newPgxLocationRepository(pool *pgxpool.Pool) portsrepo.LocationRepository {
	return &PgxLocationRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.LocationRepository = (*PgxLocationRepository)(nil)

// SaveLocation appends the location row and mirrors the coordinates onto the
// user row so reads that only need the current position skip the history table.
func (r *PgxLocationRepository) SaveLocation(ctx context.Context, location domain.Location) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	insert := `
		INSERT INTO locations (location_id, user_id, latitude, longitude, address, last_updated, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err = tx.Exec(ctx, insert,
		location.LocationID, location.UserID, location.Latitude, location.Longitude,
		location.Address, location.LastUpdated, location.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert location: %w", err)
	}

	mirror := `UPDATE users SET latitude = $2, longitude = $3, updated_at = now() WHERE user_id = $1;`
	tag, err := tx.Exec(ctx, mirror, location.UserID, location.Latitude, location.Longitude)
	if err != nil {
		return fmt.Errorf("failed to mirror location onto user %s: %w", location.UserID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}

func (r *PgxLocationRepository) FindLatestLocation(ctx context.Context, userID string) (*domain.Location, error) {
	query := `
		SELECT location_id, user_id, latitude, longitude, address, last_updated, created_at
		FROM locations WHERE user_id = $1
		ORDER BY last_updated DESC LIMIT 1;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query location for user %s: %w", userID, err)
	}
	location, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[domain.Location])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find location for user %s: %w", userID, err)
	}
	return location, nil
}
