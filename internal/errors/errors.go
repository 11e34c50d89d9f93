package errors

import (
	"net/http"
)

// ErrorCode represents a standardized error code
type ErrorCode string

const (
	// Authentication errors (401xx)
	ErrInvalidCredentials ErrorCode = "40101"
	ErrSessionRequired    ErrorCode = "40102"

	// Authorization errors (403xx)
	ErrForbidden       ErrorCode = "40301"
	ErrListingNotOwned ErrorCode = "40302"

	// Resource errors (404xx)
	ErrListingNotFound  ErrorCode = "40401"
	ErrUserNotFound     ErrorCode = "40402"
	ErrCategoryNotFound ErrorCode = "40403"
	ErrAgencyNotFound   ErrorCode = "40404"
	ErrMessageNotFound  ErrorCode = "40405"

	// Request errors (400xx)
	ErrInvalidRequest   ErrorCode = "40001"
	ErrValidationFailed ErrorCode = "40002"

	// Server errors (500xx)
	ErrInternalServer     ErrorCode = "50001"
	ErrSessionUnavailable ErrorCode = "50301"
)

// APIError represents a standardized API error
type APIError struct {
	Code       ErrorCode `json:"code"`
	Message    string    `json:"message"`
	Details    any       `json:"details,omitempty"`
	HTTPStatus int       `json:"-"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Message
}

// ErrorResponse represents the error response format
type ErrorResponse struct {
	Error     APIError `json:"error"`
	RequestID string   `json:"request_id"`
}

// Common errors
var (
	ErrInvalidCredentialsError = &APIError{
		Code:       ErrInvalidCredentials,
		Message:    "Invalid email or password",
		HTTPStatus: http.StatusUnauthorized,
	}

	ErrSessionRequiredError = &APIError{
		Code:       ErrSessionRequired,
		Message:    "Sign in required",
		HTTPStatus: http.StatusUnauthorized,
	}

	ErrForbiddenError = &APIError{
		Code:       ErrForbidden,
		Message:    "Access denied",
		HTTPStatus: http.StatusForbidden,
	}

	ErrListingNotOwnedError = &APIError{
		Code:       ErrListingNotOwned,
		Message:    "Listing not owned by this agency",
		HTTPStatus: http.StatusForbidden,
	}

	ErrListingNotFoundError = &APIError{
		Code:       ErrListingNotFound,
		Message:    "Listing not found",
		HTTPStatus: http.StatusNotFound,
	}

	ErrUserNotFoundError = &APIError{
		Code:       ErrUserNotFound,
		Message:    "User not found",
		HTTPStatus: http.StatusNotFound,
	}

	ErrCategoryNotFoundError = &APIError{
		Code:       ErrCategoryNotFound,
		Message:    "Category not found",
		HTTPStatus: http.StatusNotFound,
	}

	ErrAgencyNotFoundError = &APIError{
		Code:       ErrAgencyNotFound,
		Message:    "Agency not found",
		HTTPStatus: http.StatusNotFound,
	}

	ErrMessageNotFoundError = &APIError{
		Code:       ErrMessageNotFound,
		Message:    "Message not found",
		HTTPStatus: http.StatusNotFound,
	}

	ErrInternalServerError = &APIError{
		Code:       ErrInternalServer,
		Message:    "Internal server error",
		HTTPStatus: http.StatusInternalServerError,
	}

	ErrSessionUnavailableError = &APIError{
		Code:       ErrSessionUnavailable,
		Message:    "Session state is initializing",
		HTTPStatus: http.StatusServiceUnavailable,
	}
)

// NewValidationError creates a validation error with per-field details
func NewValidationError(details any) *APIError {
	return &APIError{
		Code:       ErrValidationFailed,
		Message:    "Validation failed",
		Details:    details,
		HTTPStatus: http.StatusBadRequest,
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) *APIError {
	return &APIError{
		Code:       ErrInvalidRequest,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}
