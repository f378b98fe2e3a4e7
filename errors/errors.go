package errors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrWorkerPanic = fmt.Errorf("worker panic")
	ErrEmptyWords  = fmt.Errorf("no words have been found")

	// Broker
	ErrAuthRequired      = fmt.Errorf("authentication required")
	ErrInvalidToken      = fmt.Errorf("invalid or expired token")
	ErrForbidden         = fmt.Errorf("operation not allowed")
	ErrUnknownConnection = fmt.Errorf("unknown connection")
	ErrInvalidCommand    = fmt.Errorf("invalid command")
	ErrDelivery          = fmt.Errorf("delivery failed")
	ErrConnectionClosed  = fmt.Errorf("connection closed")

	// Lifecycle & storage
	ErrInvalidTransition = fmt.Errorf("invalid status transition")
	ErrPersistence       = fmt.Errorf("persistence failed")
	ErrNotFound          = fmt.Errorf("not found")
	ErrAlreadyRead       = fmt.Errorf("notification already read")
	ErrUnsupportedMedia  = fmt.Errorf("unsupported media type")
	ErrInvalidRequest    = fmt.Errorf("invalid request")

	// Accounts
	ErrUserAlreadyExists  = fmt.Errorf("user already exists")
	ErrInvalidCredentials = fmt.Errorf("invalid credentials")
	ErrInvalidPassword    = fmt.Errorf("password does not meet complexity requirements")
	ErrTokenGeneration    = fmt.Errorf("token generation failed")
)

// Is and As are re-exported so callers importing this package under its
// default name keep access to the standard helpers.
var (
	Is = errors.Is
	As = errors.As
)

// HTTPStatus maps domain sentinels to the status code returned by the write path.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrAuthRequired), errors.Is(err, ErrInvalidToken),
		errors.Is(err, ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrUnknownConnection):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidTransition), errors.Is(err, ErrAlreadyRead),
		errors.Is(err, ErrUserAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidRequest), errors.Is(err, ErrInvalidCommand),
		errors.Is(err, ErrInvalidPassword):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnsupportedMedia):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, ErrPersistence):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
