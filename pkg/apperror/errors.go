package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Validation (VAL) ----

func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}

func ErrUnsupportedNetwork(network string) *AppError {
	return New("VAL_002", fmt.Sprintf("Unsupported network: %s", network), http.StatusBadRequest)
}

func ErrInvalidWebhookURL() *AppError {
	return New("VAL_003", "Webhook URL must be http or https", http.StatusBadRequest)
}

// ---- Payment & Settlement (PAY) ----

// ErrSettlementFailed carries the backend error message without backend
// credentials or connection detail.
func ErrSettlementFailed(err error) *AppError {
	return Wrap("PAY_001", "Settlement backend rejected the payment", http.StatusBadGateway, err)
}

func ErrNotFound(entity string) *AppError {
	return New("PAY_002", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// ---- Authentication (AUTH) ----

func ErrInvalidAPIKey() *AppError {
	return New("AUTH_001", "Invalid API key", http.StatusUnauthorized)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// ErrPersistence signals that a request record could not be durably written.
func ErrPersistence(err error) *AppError {
	return Wrap("SYS_002", "Failed to persist payment record", http.StatusInternalServerError, err)
}

func ErrBackendUnavailable(err error) *AppError {
	return Wrap("SYS_003", "Settlement backend unavailable", http.StatusServiceUnavailable, err)
}
