package errors

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface.
// The predefined values below double as error kinds for errors.Is.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches any BaseError carrying the same business code, so a copy made by
// WithDetails still matches its predefined kind.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error kinds
var (
	// Data shape violations. Always local, never retried.
	ErrMalformedGeometry = NewBaseError(
		http.StatusBadRequest,
		"MALFORMED_GEOMETRY",
		"location must be a point with exactly two numeric coordinates",
		"",
	)

	ErrInvalidCoordinate = NewBaseError(
		http.StatusBadRequest,
		"INVALID_COORDINATE",
		"coordinate out of range",
		"",
	)

	// Remote call failures
	ErrFetch = NewBaseError(
		http.StatusBadGateway,
		"FETCH_FAILED",
		"An error occurred while fetching the places.",
		"",
	)

	ErrCreate = NewBaseError(
		http.StatusBadGateway,
		"CREATE_FAILED",
		"An error occurred while adding the place.",
		"",
	)

	ErrUpdate = NewBaseError(
		http.StatusBadGateway,
		"UPDATE_FAILED",
		"An error occurred while editing the place.",
		"",
	)

	ErrDelete = NewBaseError(
		http.StatusBadGateway,
		"DELETE_FAILED",
		"An error occurred while deleting the place.",
		"",
	)

	ErrUserFetch = NewBaseError(
		http.StatusBadGateway,
		"USER_FETCH_FAILED",
		"An error occurred while fetching the user profile.",
		"",
	)

	// Authentication-related errors
	ErrAuthRequired = NewBaseError(
		http.StatusUnauthorized,
		"AUTH_REQUIRED",
		"authentication required",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"invalid email or password",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"you are not allowed to modify this place",
		"",
	)

	// Local state errors
	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"place not found",
		"",
	)

	ErrSessionEnded = NewBaseError(
		http.StatusConflict,
		"SESSION_ENDED",
		"the session that issued this request has ended",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	ErrFavoritesCorrupt = NewBaseError(
		http.StatusInternalServerError,
		"FAVORITES_CORRUPT",
		"stored awaited places could not be decoded",
		"",
	)

	ErrStorage = NewBaseError(
		http.StatusInternalServerError,
		"STORAGE_FAILED",
		"local storage failed",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal error",
		"",
	)
)

// RemoteError is a failed call to the places service. It matches its Kind
// with errors.Is and unwraps to the transport or decoding cause.
type RemoteError struct {
	Kind          *BaseError
	Status        int    // HTTP status; 0 when no response was received
	ServerMessage string // Message taken from the response body, if any
	cause         error
}

// NewRemoteError builds a RemoteError of the given kind
func NewRemoteError(kind *BaseError, status int, serverMessage string, cause error) *RemoteError {
	return &RemoteError{
		Kind:          kind,
		Status:        status,
		ServerMessage: serverMessage,
		cause:         cause,
	}
}

// Error implements the error interface
func (e *RemoteError) Error() string {
	msg := e.Message()
	if e.Status != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.Status)
	}
	if e.cause != nil {
		msg += ": " + e.cause.Error()
	}

	return msg
}

// Is reports whether target is the kind of this error
func (e *RemoteError) Is(target error) bool {
	return e.Kind != nil && e.Kind.Is(target)
}

// Unwrap returns the underlying cause
func (e *RemoteError) Unwrap() error {
	return e.cause
}

// Message returns the server-provided message, falling back to the kind's generic message
func (e *RemoteError) Message() string {
	if e.ServerMessage != "" {
		return e.ServerMessage
	}
	if e.Kind != nil {
		return e.Kind.Message()
	}

	return "remote call failed"
}

// HTTPCode returns the kind's status code
func (e *RemoteError) HTTPCode() int {
	if e.Kind == nil {
		return http.StatusBadGateway
	}

	return e.Kind.HTTPCode()
}

// ErrorCode returns the kind's business code
func (e *RemoteError) ErrorCode() string {
	if e.Kind == nil {
		return "REMOTE_FAILED"
	}

	return e.Kind.ErrorCode()
}

// Details returns the underlying cause message
func (e *RemoteError) Details() string {
	if e.cause == nil {
		return ""
	}

	return e.cause.Error()
}

// Rekind returns a copy of err classified under kind when err is a RemoteError,
// keeping its status, server message and cause. Other errors are wrapped as the
// cause of a new RemoteError.
func Rekind(err error, kind *BaseError) *RemoteError {
	var re *RemoteError
	if errors.As(err, &re) {
		return NewRemoteError(kind, re.Status, re.ServerMessage, re.cause)
	}

	return NewRemoteError(kind, 0, "", err)
}
