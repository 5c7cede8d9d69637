package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrBookNotFound is returned when a book id does not resolve.
	ErrBookNotFound = errors.New("book not found")
	// ErrBookUnavailable is returned when no copies are left to lend.
	ErrBookUnavailable = errors.New("book not available")
	// ErrBorrowingNotFound is returned when a borrowing id does not resolve.
	ErrBorrowingNotFound = errors.New("borrowing not found")
	// ErrUserNotFound is returned when a user id does not resolve.
	ErrUserNotFound = errors.New("user not found")
	// ErrAlreadyReturned is returned when a borrowing was already returned.
	ErrAlreadyReturned = errors.New("borrowing already returned")
	// ErrInvalidInput is returned when a create-record request is malformed.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvariantViolation is returned when an availability counter would
	// leave [0, TotalCopies]. It indicates a core bug and is never
	// surfaced as a recoverable condition.
	ErrInvariantViolation = errors.New("availability invariant violation")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. The distinct codes
// matter: the boundary layer renders "book not found" and "all copies
// are out" differently.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrBookNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "BOOK_NOT_FOUND")
	case errors.Is(err, ErrBorrowingNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "BORROWING_NOT_FOUND")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrBookUnavailable):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "BOOK_UNAVAILABLE")
	case errors.Is(err, ErrAlreadyReturned):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "ALREADY_RETURNED")
	case errors.Is(err, ErrInvalidInput):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_INPUT")
	case errors.Is(err, ErrInvariantViolation):
		return NewHTTPError(http.StatusInternalServerError, err.Error(), "INVARIANT_VIOLATION")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
