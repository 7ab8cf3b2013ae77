package errors

import (
	"fmt"
	"net/http"
)

// ErrorCode represents different types of application errors
type ErrorCode string

const (
	ErrCodeNotFound           ErrorCode = "NOT_FOUND"
	ErrCodeInvalidInput       ErrorCode = "INVALID_INPUT"
	ErrCodeDuplicateEmail     ErrorCode = "DUPLICATE_EMAIL"
	ErrCodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	ErrCodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	ErrCodeInternal           ErrorCode = "INTERNAL_ERROR"
)

// AppError represents an application error with code and HTTP status
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
	Status  int
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewNotFound creates a new "not found" error
func NewNotFound(resource string) *AppError {
	return &AppError{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("%s not found", resource),
		Status:  http.StatusNotFound,
	}
}

// NewInvalidInput creates a new "invalid input" error
func NewInvalidInput(message string) *AppError {
	return &AppError{
		Code:    ErrCodeInvalidInput,
		Message: message,
		Status:  http.StatusBadRequest,
	}
}

// NewDuplicateEmail creates the error returned when a signup reuses a
// registered email. Surfaced as 400 so clients treat it like any other
// input problem.
func NewDuplicateEmail() *AppError {
	return &AppError{
		Code:    ErrCodeDuplicateEmail,
		Message: "User already exists",
		Status:  http.StatusBadRequest,
	}
}

// NewInvalidCredentials creates the generic login failure error. The message
// must not distinguish an unknown email from a wrong password.
func NewInvalidCredentials() *AppError {
	return &AppError{
		Code:    ErrCodeInvalidCredentials,
		Message: "invalid email or password",
		Status:  http.StatusBadRequest,
	}
}

// NewUnauthorized creates a new "unauthorized" error
func NewUnauthorized(message string) *AppError {
	return &AppError{
		Code:    ErrCodeUnauthorized,
		Message: message,
		Status:  http.StatusUnauthorized,
	}
}

// NewInternal creates a new "internal server" error
func NewInternal(message string) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: message,
		Status:  http.StatusInternalServerError,
	}
}

// Wrap wraps an existing error with an AppError
func Wrap(err error, code ErrorCode, message string, status int) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
		Status:  status,
	}
}
