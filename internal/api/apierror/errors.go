// Package apierror defines the closed set of failures the API pipeline can
// produce. Every failed call surfaces exactly one of these; callers branch
// with the Is* predicates and decide on messaging, retry, or re-auth.
package apierror

import (
	"errors"
	"fmt"
)

// NetworkError wraps a transport-level failure (DNS, TLS, timeout, ...).
type NetworkError struct {
	Err error
}

func (e NetworkError) Error() string {
	return fmt.Sprintf("network failure: %v", e.Err)
}

func (e NetworkError) Unwrap() error { return e.Err }

// InvalidResponseError marks a response that is missing or structurally
// unusable: no status metadata, an empty body on a decode path, or an
// envelope with no data.
type InvalidResponseError struct {
	Reason string
}

func (e InvalidResponseError) Error() string {
	if e.Reason == "" {
		return "invalid response"
	}
	return "invalid response: " + e.Reason
}

type UnauthorizedError struct{}

func (UnauthorizedError) Error() string { return "unauthorized" }

type ForbiddenError struct{}

func (ForbiddenError) Error() string { return "forbidden" }

type NotFoundError struct{}

func (NotFoundError) Error() string { return "not found" }

// ValidationError carries the server's human-readable rejection reason.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string {
	return "validation error: " + e.Message
}

// ServerError reports a 5xx response and the exact status code received.
type ServerError struct {
	StatusCode int
}

func (e ServerError) Error() string {
	return fmt.Sprintf("server error: status %d", e.StatusCode)
}

// DecodingError wraps the parse failure for a body that did not match the
// expected shape.
type DecodingError struct {
	Err error
}

func (e DecodingError) Error() string {
	return fmt.Sprintf("decoding error: %v", e.Err)
}

func (e DecodingError) Unwrap() error { return e.Err }

// UnknownError covers status codes outside the contract (1xx/3xx reaching
// this layer).
type UnknownError struct {
	StatusCode int
}

func (e UnknownError) Error() string {
	return fmt.Sprintf("unknown error: status %d", e.StatusCode)
}

func NewNetwork(err error) error { return NetworkError{Err: err} }

func NewInvalidResponse(reason string) error { return InvalidResponseError{Reason: reason} }

func NewUnauthorized() error { return UnauthorizedError{} }

func NewForbidden() error { return ForbiddenError{} }

func NewNotFound() error { return NotFoundError{} }

func NewValidation(msg string) error { return ValidationError{Message: msg} }

func NewServer(status int) error { return ServerError{StatusCode: status} }

func NewDecoding(err error) error { return DecodingError{Err: err} }

func NewUnknown(status int) error { return UnknownError{StatusCode: status} }

func IsNetwork(err error) bool {
	var e NetworkError
	return errors.As(err, &e)
}

func IsInvalidResponse(err error) bool {
	var e InvalidResponseError
	return errors.As(err, &e)
}

func IsUnauthorized(err error) bool {
	var e UnauthorizedError
	return errors.As(err, &e)
}

func IsForbidden(err error) bool {
	var e ForbiddenError
	return errors.As(err, &e)
}

func IsNotFound(err error) bool {
	var e NotFoundError
	return errors.As(err, &e)
}

func IsValidation(err error) bool {
	var e ValidationError
	return errors.As(err, &e)
}

func IsServer(err error) bool {
	var e ServerError
	return errors.As(err, &e)
}

func IsDecoding(err error) bool {
	var e DecodingError
	return errors.As(err, &e)
}

func IsUnknown(err error) bool {
	var e UnknownError
	return errors.As(err, &e)
}
