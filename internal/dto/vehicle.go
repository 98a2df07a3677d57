package dto

import (
	"time"

	"github.com/nanduks/driver_logistics_app/internal/core/domain"
)

// RegisterVehicleRequest is the payload for registering a driver's vehicle.
type RegisterVehicleRequest struct {
	VehicleNumber   string    `json:"vehicleNumber" binding:"required"`
	VehicleType     string    `json:"vehicleType" binding:"required,oneof=lorry mini-truck trailer"`
	Model           string    `json:"model" binding:"required"`
	Brand           string    `json:"brand" binding:"required"`
	Year            int       `json:"year" binding:"required,gte=1950"`
	RCBookURL       string    `json:"rcBookUrl" binding:"required"`
	InsuranceURL    string    `json:"insuranceUrl" binding:"required"`
	InsuranceExpiry time.Time `json:"insuranceExpiry" binding:"required"`
}

// UpdateVehicleStatusRequest is the payload for moving a vehicle between
// operational states.
type UpdateVehicleStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active inactive in_maintenance"`
}

// VehicleResponse is the caller-safe projection of a vehicle.
type VehicleResponse struct {
	VehicleID       string    `json:"id"`
	UserID          string    `json:"userId"`
	VehicleNumber   string    `json:"vehicleNumber"`
	VehicleType     string    `json:"vehicleType"`
	Model           string    `json:"model"`
	Brand           string    `json:"brand"`
	Year            int       `json:"year"`
	RCBookURL       string    `json:"rcBookUrl"`
	InsuranceURL    string    `json:"insuranceUrl"`
	InsuranceExpiry time.Time `json:"insuranceExpiry"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// ToVehicleResponse converts a domain.Vehicle to its response DTO.
func ToVehicleResponse(v *domain.Vehicle) VehicleResponse {
	return VehicleResponse{
		VehicleID:       v.VehicleID,
		UserID:          v.UserID,
		VehicleNumber:   v.VehicleNumber,
		VehicleType:     string(v.VehicleType),
		Model:           v.Model,
		Brand:           v.Brand,
		Year:            v.Year,
		RCBookURL:       v.RCBookURL,
		InsuranceURL:    v.InsuranceURL,
		InsuranceExpiry: v.InsuranceExpiry,
		Status:          string(v.Status),
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}
}

// placeholderVehicle mirrors what the mobile client expects when a driver has
// no vehicle registered yet.
func placeholderVehicle(userID string) VehicleResponse {
	now := time.Now()
	return VehicleResponse{
		VehicleID:       "No vehicle ID",
		UserID:          userID,
		VehicleNumber:   "No vehicle",
		VehicleType:     "N/A",
		Status:          string(domain.VehicleInactive),
		InsuranceExpiry: now,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}
