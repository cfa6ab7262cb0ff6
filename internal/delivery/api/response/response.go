// Package response writes the JSend envelopes of the development backend.
package response

import (
	"net/http"

	deliverycontext "placebook/internal/delivery/context"
	domainerrors "placebook/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SuccessResponse defines the structure for successful responses
type SuccessResponse struct {
	Status string    `json:"status"`
	Data   any       `json:"data"`
	Meta   *MetaInfo `json:"meta,omitempty"`
}

// TokenResponse is a successful login; the token sits beside data
type TokenResponse struct {
	Status string    `json:"status"`
	Token  string    `json:"token"`
	Data   any       `json:"data"`
	Meta   *MetaInfo `json:"meta,omitempty"`
}

// ErrorResponse defines the structure for error responses.
// Status is "fail" for client errors and "error" for server errors.
type ErrorResponse struct {
	Status  string                  `json:"status"`
	Message string                  `json:"message"`
	Error   *domainerrors.ErrorInfo `json:"error,omitempty"`
	Meta    *MetaInfo               `json:"meta,omitempty"`
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"` // Request tracking ID
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{
		Status: domainerrors.StatusSuccess,
		Data:   data,
		Meta:   meta(c),
	})
}

// Token returns a successful login response
func Token(c echo.Context, token string, data any) error {
	return c.JSON(http.StatusOK, TokenResponse{
		Status: domainerrors.StatusSuccess,
		Token:  token,
		Data:   data,
		Meta:   meta(c),
	})
}

// NoContent answers a successful delete
func NoContent(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details string) error {
	// Details should not be included for 5xx errors or authentication/authorization errors
	if statusCode >= 500 || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		details = ""
	}

	status := domainerrors.StatusFail
	if statusCode >= 500 {
		status = domainerrors.StatusError
	}

	return c.JSON(statusCode, ErrorResponse{
		Status:  status,
		Message: message,
		Error: &domainerrors.ErrorInfo{
			Code:    errorCode,
			Details: details,
		},
		Meta: meta(c),
	})
}

// BindingError returns a binding error response
func BindingError(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, "INVALID_INPUT", message, "")
}

// Unauthorized returns a 401 error
func Unauthorized(c echo.Context, message string) error {
	return Error(c, http.StatusUnauthorized, domainerrors.ErrAuthRequired.ErrorCode(), message, "")
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, "")
}

// HandleAppError handles application errors, converting domain errors to appropriate HTTP responses
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}

func meta(c echo.Context) *MetaInfo {
	requestID := deliverycontext.GetRequestID(c)
	if requestID == "" {
		return nil
	}

	return &MetaInfo{RequestID: requestID}
}
