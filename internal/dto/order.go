package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/nanduks/driver_logistics_app/internal/core/domain"
)

// AssignOrderRequest is the payload an admin sends to dispatch an order.
type AssignOrderRequest struct {
	DriverID         string          `json:"driverId" binding:"required"`
	PickupLocation   string          `json:"pickupLocation" binding:"required"`
	DeliveryLocation string          `json:"deliveryLocation" binding:"required"`
	PickupTime       time.Time       `json:"pickupTime" binding:"required"`
	DeliveryTime     time.Time       `json:"deliveryTime" binding:"required"`
	DistanceKm       decimal.Decimal `json:"distanceInKm"`
	LoadWeightTons   decimal.Decimal `json:"loadWeightInTons"`
	GoodsType        string          `json:"goodsType" binding:"required"`
	Fare             decimal.Decimal `json:"fare" binding:"required"`
	Notes            *string         `json:"notes"`
}

// UpdateOrderStatusRequest moves an order to a new lifecycle state.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=assigned delivered cancelled"`
}

// ListOrdersParams defines query parameters for listing a driver's orders.
type ListOrdersParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// OrderResponse is the caller-safe projection of an order.
type OrderResponse struct {
	OrderID          string          `json:"orderId"`
	DriverID         string          `json:"driverId"`
	DriverName       string          `json:"driverName"`
	PickupLocation   string          `json:"pickupLocation"`
	DeliveryLocation string          `json:"deliveryLocation"`
	Status           string          `json:"status"`
	PickupTime       time.Time       `json:"pickupTime"`
	DeliveryTime     time.Time       `json:"deliveryTime"`
	DistanceKm       decimal.Decimal `json:"distanceInKm"`
	LoadWeightTons   decimal.Decimal `json:"loadWeightInTons"`
	GoodsType        string          `json:"goodsType"`
	Fare             decimal.Decimal `json:"fare"`
	Notes            string          `json:"notes"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

// ToOrderResponse converts a domain.Order to its response DTO.
func ToOrderResponse(o *domain.Order) OrderResponse {
	resp := OrderResponse{
		OrderID:          o.OrderID,
		DriverID:         o.DriverID,
		DriverName:       o.DriverName,
		PickupLocation:   o.PickupLocation,
		DeliveryLocation: o.DeliveryLocation,
		Status:           string(o.Status),
		PickupTime:       o.PickupTime,
		DeliveryTime:     o.DeliveryTime,
		DistanceKm:       o.DistanceKm,
		LoadWeightTons:   o.LoadWeightTons,
		GoodsType:        o.GoodsType,
		Fare:             o.Fare,
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
	}
	if o.Notes != nil {
		resp.Notes = *o.Notes
	}
	return resp
}

// ListOrdersResponse wraps a driver's order history.
type ListOrdersResponse struct {
	Orders []OrderResponse `json:"orders"`
}

// ToListOrdersResponse converts a slice of domain.Order.
func ToListOrdersResponse(orders []domain.Order) ListOrdersResponse {
	responses := make([]OrderResponse, len(orders))
	for i := range orders {
		responses[i] = ToOrderResponse(&orders[i])
	}
	return ListOrdersResponse{Orders: responses}
}

// placeholderOrder is returned in the aggregate when no order is in flight.
func placeholderOrder(userID string) OrderResponse {
	now := time.Now()
	return OrderResponse{
		OrderID:    "No order ID",
		DriverID:   userID,
		Status:     "no_order",
		PickupTime: now,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}
