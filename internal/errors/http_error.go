package errors

import (
	"errors"
	"net/http"
)

// Sentinel errors for the reservation flow. Handlers translate them to
// HTTP status codes with StatusFor; everything unrecognized is a 500.
var (
	// ErrStore wraps any failure talking to the record store.
	ErrStore = errors.New("record store error")

	// ErrCarNotFound means no row exists for the requested VIN.
	ErrCarNotFound = errors.New("car not found")

	// ErrAlreadyReserved means the availability check saw false; no
	// update was issued.
	ErrAlreadyReserved = errors.New("car is no longer available for reservation")

	// ErrCarUnavailable rejects Rent Now on a car listed as unavailable.
	ErrCarUnavailable = errors.New("car is not available")

	// ErrNoCarSelected means the persisted reservation holds no car.
	ErrNoCarSelected = errors.New("no car selected")

	// ErrFormIncomplete blocks submit while fields are empty or invalid.
	ErrFormIncomplete = errors.New("reservation form is incomplete or invalid")

	// ErrInvalidStage rejects an operation not allowed in the current stage.
	ErrInvalidStage = errors.New("operation not allowed in current stage")
)

// HTTPError represents an error with an associated HTTP status code.
type HTTPError struct {
	Code    int
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTPError with the given code and message.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{
		Code:    code,
		Message: message,
	}
}

// StatusFor maps a service error to the HTTP status handlers should return.
func StatusFor(err error) int {
	var he *HTTPError
	switch {
	case errors.As(err, &he):
		return he.Code
	case errors.Is(err, ErrCarNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrAlreadyReserved), errors.Is(err, ErrCarUnavailable):
		return http.StatusConflict
	case errors.Is(err, ErrNoCarSelected), errors.Is(err, ErrInvalidStage):
		return http.StatusBadRequest
	case errors.Is(err, ErrFormIncomplete):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
