package dto

import (
	"time"

	"github.com/nanduks/driver_logistics_app/internal/core/domain"
)

// UpdateProfileRequest defines the data allowed for updating a user profile.
// Pointers so an omitted field is distinguishable from a zero value.
type UpdateProfileRequest struct {
	Name     *string  `json:"name"`
	Age      *int     `json:"age"`
	Phone    *string  `json:"phone"`
	State    *string  `json:"state"`
	District *string  `json:"district"`
	Rating   *float64 `json:"rating"`
}

// ListUsersParams defines query parameters for listing users.
type ListUsersParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// UserResponse is the caller-safe projection of a user.
type UserResponse struct {
	UserID          string    `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	Age             int       `json:"age"`
	State           string    `json:"state"`
	District        string    `json:"district"`
	Role            string    `json:"type"`
	Status          string    `json:"status"`
	IsOnline        bool      `json:"isOnline"`
	Availability    string    `json:"availability"`
	ProfileImageURL string    `json:"profileImageUrl,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// ToUserResponse converts a domain.User to its response DTO.
func ToUserResponse(user *domain.User) UserResponse {
	resp := UserResponse{
		UserID:       user.UserID,
		Name:         user.Name,
		Email:        user.Email,
		Age:          user.Age,
		State:        user.State,
		District:     user.District,
		Role:         string(user.Role),
		Status:       string(user.Status),
		IsOnline:     user.IsOnline,
		Availability: string(user.Availability),
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
	if user.Phone != nil {
		resp.Phone = *user.Phone
	}
	if user.ProfileImageURL != nil {
		resp.ProfileImageURL = *user.ProfileImageURL
	}
	return resp
}

// ListUsersResponse wraps the list of users.
type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}

// ToListUsersResponse converts a slice of domain.User to ListUsersResponse.
func ToListUsersResponse(users []domain.User) ListUsersResponse {
	userResponses := make([]UserResponse, len(users))
	for i := range users {
		userResponses[i] = ToUserResponse(&users[i])
	}
	return ListUsersResponse{Users: userResponses}
}

// UserDataResponse is the aggregate the driver app home screen renders.
// Absent vehicle/order/location are filled with neutral placeholders so the
// client never sees nulls.
type UserDataResponse struct {
	User         UserResponse     `json:"user"`
	Vehicle      VehicleResponse  `json:"vehicle"`
	CurrentOrder OrderResponse    `json:"currentOrder"`
	Location     LocationResponse `json:"location"`
}

// ToUserDataResponse assembles the aggregate, substituting placeholders for
// whatever the driver does not have yet.
func ToUserDataResponse(data *domain.UserData) UserDataResponse {
	resp := UserDataResponse{User: ToUserResponse(&data.User)}

	if data.Vehicle != nil {
		resp.Vehicle = ToVehicleResponse(data.Vehicle)
	} else {
		resp.Vehicle = placeholderVehicle(data.User.UserID)
	}

	if data.CurrentOrder != nil {
		resp.CurrentOrder = ToOrderResponse(data.CurrentOrder)
	} else {
		resp.CurrentOrder = placeholderOrder(data.User.UserID)
	}

	if data.Location != nil {
		resp.Location = ToLocationResponse(data.Location)
	} else {
		resp.Location = placeholderLocation()
	}

	return resp
}
