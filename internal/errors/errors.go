// Package errors provides the application error taxonomy for the pricetrack API.
// Services return AppError values so handlers can produce consistent envelopes
// without leaking store or driver details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Is reports whether target is an AppError with the same code, so wrapped
// copies still match their sentinel.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrConflict       = &AppError{Code: "CONFLICT", Message: "The record conflicts with an existing one", StatusCode: http.StatusConflict}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Purchase errors.
var (
	ErrPersistence      = &AppError{Code: "PERSISTENCE_ERROR", Message: "The purchase could not be recorded", StatusCode: http.StatusInternalServerError}
	ErrPurchaseNotFound = &AppError{Code: "PURCHASE_NOT_FOUND", Message: "Purchase not found", StatusCode: http.StatusNotFound}
)

// Catalog errors.
var (
	ErrProductNotFound     = &AppError{Code: "PRODUCT_NOT_FOUND", Message: "Product not found", StatusCode: http.StatusNotFound}
	ErrSupermarketNotFound = &AppError{Code: "SUPERMARKET_NOT_FOUND", Message: "Supermarket not found", StatusCode: http.StatusNotFound}
)

// Price read-path errors.
var (
	ErrPriceHistory = &AppError{Code: "PRICE_HISTORY_ERROR", Message: "Price history could not be loaded", StatusCode: http.StatusInternalServerError}
	ErrPriceFeed    = &AppError{Code: "PRICE_FEED_ERROR", Message: "Price feed could not be loaded", StatusCode: http.StatusInternalServerError}
)
