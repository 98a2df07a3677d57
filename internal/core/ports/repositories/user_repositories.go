package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/nanduks/driver_logistics_app/internal/core/domain"
)

// UserReader defines read operations for user data.
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a user by their unique email.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindUsers retrieves a paginated list of users.
	FindUsers(ctx context.Context, limit int, offset int) ([]domain.User, error)
}

// UserWriter defines write operations for user data.
type UserWriter interface {
	// CreateUserWithLog persists a new user and their initial session-log row
	// in a single transaction. Both rows commit or neither does.
	// Returns apperrors.ErrDuplicate when the email (or phone) already exists.
	CreateUserWithLog(ctx context.Context, user domain.User, log domain.SessionLog) error

	// UpdateUser updates an existing user's full row.
	UpdateUser(ctx context.Context, user domain.User) error

	// UpdatePassword persists a new password hash for the user inside a transaction.
	UpdatePassword(ctx context.Context, userID string, passwordHash string) error

	// SetOnline flips the user's online flag.
	SetOnline(ctx context.Context, userID string, online bool) error
}

// DriverAssignmentWriter mutates driver dispatch state as part of a caller-owned
// transaction. Used by the order repository so order and driver rows move together.
type DriverAssignmentWriter interface {
	UpdateDriverAssignmentInTx(ctx context.Context, tx pgx.Tx, driverID string, currentOrderID *string, availability domain.Availability, completedDelta int) error
}

// UserRepositoryFacade combines all user-related repository interfaces.
type UserRepositoryFacade interface {
	UserReader
	UserWriter
	DriverAssignmentWriter
}
