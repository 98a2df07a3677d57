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

// userColumns is the full users projection, matching domain.User db tags.
const userColumns = `user_id, google_id, name, age, email, phone, password_hash, state, district,
	role, status, latitude, longitude, is_online, availability, current_order_id,
	total_orders_completed, rating, fcm_token, profile_image_url, created_at, updated_at`

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(pool *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1;`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query user by ID %s: %w", userID, err)
	}
	user, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[domain.User])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by ID %s: %w", userID, err)
	}
	return user, nil
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1;`
	rows, err := r.Pool.Query(ctx, query, email)
	if err != nil {
		return nil, fmt.Errorf("failed to query user by email: %w", err)
	}
	user, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[domain.User])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	return user, nil
}

func (r *PgxUserRepository) FindUsers(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC LIMIT $1 OFFSET $2;`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	users, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.User])
	if err != nil {
		return nil, fmt.Errorf("failed to collect users: %w", err)
	}
	return users, nil
}

// CreateUserWithLog inserts the user row and its first session-log row in one
// transaction so a half-created account never exists. Unique violations on
// email, phone or google_id surface as apperrors.ErrDuplicate, which lets the
// service layer treat the insert itself as the duplicate-email arbiter.
func (r *PgxUserRepository) CreateUserWithLog(ctx context.Context, user domain.User, log domain.SessionLog) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // Ignored once the transaction commits

	insertUser := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22);
	`
	_, err = tx.Exec(ctx, insertUser,
		user.UserID, user.GoogleID, user.Name, user.Age, user.Email, user.Phone,
		user.PasswordHash, user.State, user.District, user.Role, user.Status,
		user.Latitude, user.Longitude, user.IsOnline, user.Availability,
		user.CurrentOrderID, user.OrdersCompleted, user.Rating, user.FCMToken,
		user.ProfileImageURL, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}

	insertLog := `
		INSERT INTO session_logs (log_id, user_id, activity, fcm_token, timestamp)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err = tx.Exec(ctx, insertLog, log.LogID, log.UserID, log.Activity, log.FCMToken, log.Timestamp)
	if err != nil {
		return fmt.Errorf("failed to insert session log: %w", err)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	query := `
		UPDATE users SET
			google_id = $2, name = $3, age = $4, phone = $5, state = $6, district = $7,
			role = $8, status = $9, latitude = $10, longitude = $11, is_online = $12,
			availability = $13, fcm_token = $14, profile_image_url = $15, rating = $16,
			updated_at = $17
		WHERE user_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		user.UserID, user.GoogleID, user.Name, user.Age, user.Phone, user.State,
		user.District, user.Role, user.Status, user.Latitude, user.Longitude,
		user.IsOnline, user.Availability, user.FCMToken, user.ProfileImageURL,
		user.Rating, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to update user %s: %w", user.UserID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxUserRepository) UpdatePassword(ctx context.Context, userID string, passwordHash string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `UPDATE users SET password_hash = $2, updated_at = now() WHERE user_id = $1;`
	tag, err := tx.Exec(ctx, query, userID, passwordHash)
	if err != nil {
		return fmt.Errorf("failed to update password for user %s: %w", userID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}

func (r *PgxUserRepository) SetOnline(ctx context.Context, userID string, online bool) error {
	query := `UPDATE users SET is_online = $2, updated_at = now() WHERE user_id = $1;`
	tag, err := r.Pool.Exec(ctx, query, userID, online)
	if err != nil {
		return fmt.Errorf("failed to set online flag for user %s: %w", userID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateDriverAssignmentInTx moves the driver's dispatch state inside the
// caller's transaction. completedDelta is added to total_orders_completed so a
// delivery bumps the counter atomically with the order row.
func (r *PgxUserRepository) UpdateDriverAssignmentInTx(ctx context.Context, tx pgx.Tx, driverID string, currentOrderID *string, availability domain.Availability, completedDelta int) error {
	query := `
		UPDATE users SET
			current_order_id = $2,
			availability = $3,
			total_orders_completed = total_orders_completed + $4,
			updated_at = now()
		WHERE user_id = $1;
	`
	tag, err := tx.Exec(ctx, query, driverID, currentOrderID, availability, completedDelta)
	if err != nil {
		return fmt.Errorf("failed to update driver assignment for %s: %w", driverID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
