package repositories

import "context"

// SessionLogRepository persists per-device session-log rows.
type SessionLogRepository interface {
	// UpsertLogForUser inserts or replaces the session-log row for the user,
	// refreshing the push token and timestamp on repeat logins.
	UpsertLogForUser(ctx context.Context, userID string, activity string, fcmToken *string) error

	// DeleteLogsForUser removes all session-log rows for the user and returns
	// how many were removed. Zero removals is not an error.
	DeleteLogsForUser(ctx context.Context, userID string) (int64, error)
}
