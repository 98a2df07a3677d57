package domain

import "time"

// VehicleType enumerates the supported vehicle classes.
type VehicleType string

const (
	VehicleLorry     VehicleType = "lorry"
	VehicleMiniTruck VehicleType = "mini-truck"
	VehicleTrailer   VehicleType = "trailer"
)

// VehicleStatus is the operational state of a vehicle.
type VehicleStatus string

const (
	VehicleActive        VehicleStatus = "active"
	VehicleInactive      VehicleStatus = "inactive"
	VehicleInMaintenance VehicleStatus = "in_maintenance"
)

// Vehicle is a driver's registered vehicle. VehicleNumber is the registration
// plate and is unique across the fleet.
type Vehicle struct {
	VehicleID       string        `json:"vehicleID" db:"vehicle_id"`
	UserID          string        `json:"userID" db:"user_id"`
	VehicleNumber   string        `json:"vehicleNumber" db:"vehicle_number"`
	VehicleType     VehicleType   `json:"vehicleType" db:"vehicle_type"`
	Model           string        `json:"model" db:"model"`
	Brand           string        `json:"brand" db:"brand"`
	Year            int           `json:"year" db:"year"`
	RCBookURL       string        `json:"rcBookURL" db:"rc_book_url"`
	InsuranceURL    string        `json:"insuranceURL" db:"insurance_url"`
	InsuranceExpiry time.Time     `json:"insuranceExpiry" db:"insurance_expiry"`
	Status          VehicleStatus `json:"status" db:"status"`
	CreatedAt       time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time     `json:"updatedAt" db:"updated_at"`
}
