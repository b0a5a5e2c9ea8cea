package discord

import (
	"errors"
	"fmt"
)

// ErrWebhookURLMissing is returned when a send is attempted without a
// configured webhook URL.
var ErrWebhookURLMissing = errors.New("webhook URL is not configured")

// ErrInvalidWebhook is returned when the webhook endpoint rejects the
// validity check.
var ErrInvalidWebhook = errors.New("webhook URL is invalid or revoked")

// APIError is returned when Discord answers a POST with a non-2xx status.
// It carries the status code and the raw response body; nothing is
// retried at this layer.
type APIError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("webhook request failed with status %d: %s", e.StatusCode, e.Body)
}

// ValidationError is returned by the embed validator when a payload
// exceeds Discord's documented limits.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

// newValidationError creates a validation error for a field
func newValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
