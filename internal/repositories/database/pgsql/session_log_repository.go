package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/nanduks/driver_logistics_app/internal/core/ports/repositories"
)

type PgxSessionLogRepository struct {
	BaseRepository
}

func newPgxSessionLogRepository(pool *pgxpool.Pool) portsrepo.SessionLogRepository {
	return &PgxSessionLogRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.SessionLogRepository = (*PgxSessionLogRepository)(nil)

// UpsertLogForUser refreshes the user's newest session-log row, or inserts one
// when the user has none. Repeat logins from the same device therefore keep a
// single row with the latest push token rather than piling up.
func (r *PgxSessionLogRepository) UpsertLogForUser(ctx context.Context, userID string, activity string, fcmToken *string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	update := `
		UPDATE session_logs SET activity = $2, fcm_token = $3, timestamp = $4
		WHERE log_id = (
			SELECT log_id FROM session_logs WHERE user_id = $1
			ORDER BY timestamp DESC LIMIT 1
		);
	`
	now := time.Now()
	tag, err := tx.Exec(ctx, update, userID, activity, fcmToken, now)
	if err != nil {
		return fmt.Errorf("failed to upsert session log for user %s: %w", userID, err)
	}
	if tag.RowsAffected() == 0 {
		insert := `
			INSERT INTO session_logs (log_id, user_id, activity, fcm_token, timestamp)
			VALUES ($1, $2, $3, $4, $5);
		`
		if _, err := tx.Exec(ctx, insert, uuid.NewString(), userID, activity, fcmToken, now); err != nil {
			return fmt.Errorf("failed to insert session log for user %s: %w", userID, err)
		}
	}

	return r.Commit(ctx, tx)
}

func (r *PgxSessionLogRepository) DeleteLogsForUser(ctx context.Context, userID string) (int64, error) {
	query := `DELETE FROM session_logs WHERE user_id = $1;`
	tag, err := r.Pool.Exec(ctx, query, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete session logs for user %s: %w", userID, err)
	}
	return tag.RowsAffected(), nil
}
