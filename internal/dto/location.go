package dto

import (
	"time"

	"github.com/nanduks/driver_logistics_app/internal/core/domain"
)

// RecordLocationRequest is a driver position report.
type RecordLocationRequest struct {
	Latitude  float64 `json:"latitude" binding:"required,gte=-90,lte=90"`
	Longitude float64 `json:"longitude" binding:"required,gte=-180,lte=180"`
	Address   string  `json:"address" binding:"required"`
}

// LocationResponse is the caller-safe projection of a location point.
type LocationResponse struct {
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Address     string    `json:"address"`
	LastUpdated time.Time `json:"lastUpdated"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ToLocationResponse converts a domain.Location to its response DTO.
func ToLocationResponse(l *domain.Location) LocationResponse {
	return LocationResponse{
		Latitude:    l.Latitude,
		Longitude:   l.Longitude,
		Address:     l.Address,
		LastUpdated: l.LastUpdated,
		CreatedAt:   l.CreatedAt,
	}
}

// placeholderLocation is returned in the aggregate before the first report.
func placeholderLocation() LocationResponse {
	now := time.Now()
	return LocationResponse{
		Address:     "No address",
		LastUpdated: now,
		CreatedAt:   now,
	}
}
