package dto

// RegisterRequest is the payload for local account registration.
type RegisterRequest struct {
	Email    string  `json:"email" binding:"required,email"`
	Username string  `json:"username" binding:"required"`
	Password string  `json:"password" binding:"required,min=6"`
	FCMToken *string `json:"fcmToken"`
}

// LoginRequest is the payload for local credential login.
type LoginRequest struct {
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required"`
	FCMToken *string `json:"fcmToken"`
}

// GoogleLoginRequest carries a Google ID token plus optional profile defaults
// applied when the account is first created. Role is deliberately absent: a
// Google sign-in can never change what a user is allowed to do.
type GoogleLoginRequest struct {
	IDToken   string  `json:"idToken" binding:"required"`
	FCMToken  *string `json:"fcmToken"`
	Age       int     `json:"age"`
	State     string  `json:"state"`
	District  string  `json:"district"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ChangePasswordRequest carries the replacement password for the bearer.
type ChangePasswordRequest struct {
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

// AuthResponse confirms a successful register/login. The token is also sent
// out-of-band in the X-Auth-Token header.
type AuthResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// LogoutResponse reports how many session-log rows were removed.
type LogoutResponse struct {
	Removed int64 `json:"removed"`
}

// ExchangeCodeRequest is the payload for the Google authorization-code flow.
type ExchangeCodeRequest struct {
	Code string `json:"code" binding:"required"`
}
