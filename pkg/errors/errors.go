// Package errors provides the typed error taxonomy for the fury SDK.
// Every failure surfaced to a caller is one of four kinds: a local
// validation failure, a network-level transport failure, a non-2xx API
// response, or a response body that could not be decoded. Errors support
// errors.Is checks against the package sentinels and are never retried
// or swallowed by the SDK.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the fury SDK
var (
	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnreachable indicates that the API could not be reached at all
	ErrUnreachable = errors.New("api unreachable")

	// ErrDecode indicates that a success response body could not be decoded
	ErrDecode = errors.New("response decode failed")

	// ErrRateLimited indicates that the API rate limit has been exceeded
	ErrRateLimited = errors.New("rate limited")

	// ErrServiceUnavailable indicates that the API is temporarily unavailable
	ErrServiceUnavailable = errors.New("service unavailable")

	// ErrAPIKeyRequired indicates that an API key is required but not provided
	ErrAPIKeyRequired = errors.New("API key required")
)

// ValidationError represents a local input validation failure. It is
// raised before any network call is attempted.
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// APIError represents a non-success response from the FURY API. ErrorData
// carries the decoded JSON error body when the server returned one.
type APIError struct {
	StatusCode int
	Message    string
	Endpoint   string
	ErrorData  map[string]any
	Err        error
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("API error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *APIError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *APIError) Is(target error) bool {
	if e.StatusCode == 429 {
		return target == ErrRateLimited
	}
	if e.StatusCode >= 500 {
		return target == ErrServiceUnavailable
	}
	return false
}

// NewAPIError creates a new APIError
func NewAPIError(statusCode int, endpoint, message string, errorData map[string]any) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Endpoint:   endpoint,
		Message:    message,
		ErrorData:  errorData,
	}
}

// TransportError represents a network-level failure (DNS, connection
// refused, timeout) where no server response was received.
type TransportError struct {
	Op  string // HTTP method of the attempted request
	URL string
	Err error
}

// Error implements the error interface
func (e *TransportError) Error() string {
	if e.URL != "" {
		return fmt.Sprintf("transport error during %s %s: %v", e.Op, e.URL, e.Err)
	}
	return fmt.Sprintf("transport error during %s: %v", e.Op, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *TransportError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *TransportError) Is(target error) bool {
	return target == ErrUnreachable
}

// DecodeError represents a success response whose body could not be
// parsed as the expected structure.
type DecodeError struct {
	Endpoint string
	Message  string
	Err      error
}

// Error implements the error interface
func (e *DecodeError) Error() string {
	if e.Endpoint != "" {
		return fmt.Sprintf("decode error for %s: %s", e.Endpoint, e.Message)
	}
	return fmt.Sprintf("decode error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}

// Helper functions for error checking

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsUnreachable checks if an error indicates the API could not be reached
func IsUnreachable(err error) bool {
	return errors.Is(err, ErrUnreachable)
}

// IsDecodeError checks if an error is a response decode error
func IsDecodeError(err error) bool {
	return errors.Is(err, ErrDecode)
}

// IsRateLimited checks if an error is a rate limit error
func IsRateLimited(err error) bool {
	return errors.Is(err, ErrRateLimited)
}

// IsServiceUnavailable checks if an error indicates API unavailability
func IsServiceUnavailable(err error) bool {
	return errors.Is(err, ErrServiceUnavailable)
}

// AsAPIError returns the *APIError in err's chain, if any
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	ok := errors.As(err, &apiErr)
	return apiErr, ok
}

// Helper wrapping functions for common patterns

// WrapValidation wraps an error as a ValidationError
func WrapValidation(field string, err error) error {
	if err == nil {
		return nil
	}
	return &ValidationError{Field: field, Message: err.Error()}
}

// WrapTransport wraps an error as a TransportError
func WrapTransport(op, url string, err error) error {
	if err == nil {
		return nil
	}
	return &TransportError{Op: op, URL: url, Err: err}
}

// WrapDecode wraps an error as a DecodeError
func WrapDecode(endpoint string, err error) error {
	if err == nil {
		return nil
	}
	return &DecodeError{Endpoint: endpoint, Message: err.Error(), Err: err}
}
