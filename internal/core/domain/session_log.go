package domain

import "time"

// SessionLog associates a user with a device push-notification token.
// One row per login/device; all of a user's rows are removed on logout.
type SessionLog struct {
	LogID     string    `json:"logID" db:"log_id"`
	UserID    string    `json:"userID" db:"user_id"`
	Activity  string    `json:"activity" db:"activity"`
	FCMToken  *string   `json:"fcmToken,omitempty" db:"fcm_token"`
	Timestamp time.Time `json:"timestamp" db:"timestamp"`
}

// Session-log activity kinds.
const (
	ActivityRegistered = "registered"
	ActivityLogin      = "login"
)
