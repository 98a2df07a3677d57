package domain

import "time"

// UserRole defines what a user is allowed to do.
type UserRole string

const (
	RoleDriver UserRole = "driver"
	RoleAdmin  UserRole = "admin"
)

// UserStatus is the account lifecycle state.
type UserStatus string

const (
	StatusActive   UserStatus = "active"
	StatusInactive UserStatus = "inactive"
	StatusBlocked  UserStatus = "blocked"
)

// Availability tracks whether a driver can take a new order.
type Availability string

const (
	AvailabilityAvailable   Availability = "available"
	AvailabilityOnTrip      Availability = "on_trip"
	AvailabilityUnavailable Availability = "unavailable"
)

// User represents a driver or admin account.
//
// PasswordHash and GoogleID are both nullable: an account created locally has
// a hash and no GoogleID, an account created via Google sign-in has a GoogleID
// and no hash until the user sets a password. Both may be absent only
// transiently during a Google-first creation.
type User struct {
	UserID          string       `json:"userID" db:"user_id"`
	GoogleID        *string      `json:"googleID,omitempty" db:"google_id"`
	Name            string       `json:"name" db:"name"`
	Age             int          `json:"age" db:"age"`
	Email           string       `json:"email" db:"email"`
	Phone           *string      `json:"phone,omitempty" db:"phone"`
	PasswordHash    *string      `json:"-" db:"password_hash"`
	State           string       `json:"state" db:"state"`
	District        string       `json:"district" db:"district"`
	Role            UserRole     `json:"role" db:"role"`
	Status          UserStatus   `json:"status" db:"status"`
	Latitude        float64      `json:"latitude" db:"latitude"`
	Longitude       float64      `json:"longitude" db:"longitude"`
	IsOnline        bool         `json:"isOnline" db:"is_online"`
	Availability    Availability `json:"availability" db:"availability"`
	CurrentOrderID  *string      `json:"currentOrderID,omitempty" db:"current_order_id"`
	OrdersCompleted int          `json:"totalOrdersCompleted" db:"total_orders_completed"`
	Rating          float64      `json:"rating" db:"rating"`
	FCMToken        *string      `json:"-" db:"fcm_token"`
	ProfileImageURL *string      `json:"profileImageURL,omitempty" db:"profile_image_url"`
	CreatedAt       time.Time    `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time    `json:"updatedAt" db:"updated_at"`
}

// HasPassword reports whether the account can authenticate locally.
func (u *User) HasPassword() bool {
	return u.PasswordHash != nil && *u.PasswordHash != ""
}
