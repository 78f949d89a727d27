package errors

import (
	"encoding/json"
	"strings"
)

// ErrorCode represents a standardized error code
type ErrorCode string

const (
	// Client errors (4xx)
	ErrCodeBadRequest          ErrorCode = "bad_request"
	ErrCodeNotFound            ErrorCode = "not_found"
	ErrCodeValidationFailed    ErrorCode = "validation_failed"
	ErrCodeUnauthorized        ErrorCode = "unauthorized"
	ErrCodeTransactionRejected ErrorCode = "transaction_rejected"

	// Server errors (5xx)
	ErrCodeInternalError ErrorCode = "internal_error"
	ErrCodeServiceError  ErrorCode = "service_error"
)

// APIError represents a structured API error that carries error code and details.
// It is the body of every non-2xx response, including those written by middleware.
type APIError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	jsonErr, _ := json.Marshal(e)
	return string(jsonErr)
}

func newAPIError(code ErrorCode, message string, details []string) *APIError {
	return &APIError{
		Code:    code,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

// Error constructors for common error types
func NewBadRequestError(message string, details ...string) *APIError {
	return newAPIError(ErrCodeBadRequest, message, details)
}

func NewNotFoundError(message string, details ...string) *APIError {
	return newAPIError(ErrCodeNotFound, message, details)
}

func NewValidationError(details ...string) *APIError {
	return newAPIError(ErrCodeValidationFailed, "Validation failed", details)
}

func NewUnauthorizedError(message string, details ...string) *APIError {
	return newAPIError(ErrCodeUnauthorized, message, details)
}

// NewTransactionRejectedError is returned when the contract reverts a call or a mined transaction fails
func NewTransactionRejectedError(message string, details ...string) *APIError {
	return newAPIError(ErrCodeTransactionRejected, message, details)
}

func NewInternalError(message string, details ...string) *APIError {
	return newAPIError(ErrCodeInternalError, message, details)
}

// NewServiceError is returned when the chain or the contract is not in a usable state
func NewServiceError(message string, details ...string) *APIError {
	return newAPIError(ErrCodeServiceError, message, details)
}
