package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInvalidCredentials covers both unknown-email and wrong-password logins.
// The two cases are deliberately indistinguishable to callers.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrTokenExpired indicates a session token past its expiry.
var ErrTokenExpired = errors.New("token expired")

// ErrTokenInvalid indicates a malformed session token or a bad signature.
var ErrTokenInvalid = errors.New("token invalid")

// ErrExternalTokenInvalid indicates a third-party identity token that failed
// signature, audience or expiry validation.
var ErrExternalTokenInvalid = errors.New("external identity token invalid")

// ErrHashing indicates an internal failure of the password hashing primitive,
// including a malformed stored digest. Never returned on a plain mismatch.
var ErrHashing = errors.New("password hashing failure")

// ErrForbidden indicates the caller is authenticated but not allowed.
var ErrForbidden = errors.New("forbidden")

// AppError carries an HTTP status code alongside a caller-safe message.
// The wrapped error is for logs only and is never serialized.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates an AppError with an explicit status code.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func NewBadRequestError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message, Err: ErrValidation}
}

func NewValidationFailedError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message, Err: ErrValidation}
}

func NewUnauthorizedError(message string) *AppError {
	return &AppError{Code: http.StatusUnauthorized, Message: message}
}

func NewForbiddenError(message string) *AppError {
	return &AppError{Code: http.StatusForbidden, Message: message, Err: ErrForbidden}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: message, Err: ErrNotFound}
}

func NewConflictError(message string) *AppError {
	return &AppError{Code: http.StatusConflict, Message: message, Err: ErrDuplicate}
}

func NewInternalServerError(message string) *AppError {
	return &AppError{Code: http.StatusInternalServerError, Message: message}
}
