package domain

import "time"

// Location is a single tracked position for a driver. Rows are append-only;
// the latest row per user is the driver's current position.
type Location struct {
	LocationID  string    `json:"locationID" db:"location_id"`
	UserID      string    `json:"userID" db:"user_id"`
	Latitude    float64   `json:"latitude" db:"latitude"`
	Longitude   float64   `json:"longitude" db:"longitude"`
	Address     string    `json:"address" db:"address"`
	LastUpdated time.Time `json:"lastUpdated" db:"last_updated"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}
