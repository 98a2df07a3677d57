package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the delivery lifecycle state of an order.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderAssigned  OrderStatus = "assigned"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

// Order is a delivery job assigned by an admin to a driver.
type Order struct {
	OrderID          string          `json:"orderID" db:"order_id"`
	DriverID         string          `json:"driverID" db:"driver_id"`
	AssignedByAdmin  string          `json:"assignedByAdminID" db:"assigned_by_admin_id"`
	DriverName       string          `json:"driverName" db:"driver_name"`
	PickupLocation   string          `json:"pickupLocation" db:"pickup_location"`
	DeliveryLocation string          `json:"deliveryLocation" db:"delivery_location"`
	Status           OrderStatus     `json:"status" db:"status"`
	PickupTime       time.Time       `json:"pickupTime" db:"pickup_time"`
	DeliveryTime     time.Time       `json:"deliveryTime" db:"delivery_time"`
	DistanceKm       decimal.Decimal `json:"distanceInKm" db:"distance_km"`
	LoadWeightTons   decimal.Decimal `json:"loadWeightInTons" db:"load_weight_tons"`
	GoodsType        string          `json:"goodsType" db:"goods_type"`
	Fare             decimal.Decimal `json:"fare" db:"fare"`
	Notes            *string         `json:"notes,omitempty" db:"notes"`
	CreatedAt        time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt        time.Time       `json:"updatedAt" db:"updated_at"`
}

// CanTransitionTo reports whether the order may move to the given status.
// Orders move pending->assigned->delivered|cancelled; terminal states are final.
func (o *Order) CanTransitionTo(next OrderStatus) bool {
	switch o.Status {
	case OrderPending:
		return next == OrderAssigned || next == OrderCancelled
	case OrderAssigned:
		return next == OrderDelivered || next == OrderCancelled
	default:
		return false
	}
}
