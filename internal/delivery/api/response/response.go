package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// MessageResponse is the body of operations that only report an outcome.
type MessageResponse struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
}

// ErrorResponse defines the structure for error responses. Code is the
// machine-readable error code; Error carries diagnostic detail for 4xx
// responses other than 401 and 403.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Success writes body as JSON with the given status.
func Success(c echo.Context, statusCode int, body any) error {
	return c.JSON(statusCode, body)
}

// Message writes {message, success:true}.
func Message(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, MessageResponse{
		Message: message,
		Success: true,
	})
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details string) error {
	// Details should not be included for 5xx errors or authentication/authorization errors
	if statusCode >= 500 || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		details = ""
	}

	return c.JSON(statusCode, ErrorResponse{
		Success: false,
		Message: message,
		Code:    errorCode,
		Error:   details,
	})
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, "")
}
