package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"sahara/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_IsMatchesCopies(t *testing.T) {
	withDetails := ErrInvalidToken.WithDetails("token is expired")
	withMessage := ErrValidationFailed.WithMessage("Full name, email and password are required.")

	assert.True(t, errors.Is(withDetails, ErrInvalidToken))
	assert.True(t, errors.Is(errors.Wrap(withMessage, "register"), ErrValidationFailed))
	assert.False(t, errors.Is(withDetails, ErrMissingToken))
}

func TestBaseError_WithMessageKeepsCode(t *testing.T) {
	err := ErrValidationFailed.WithMessage("custom")

	assert.Equal(t, "custom", err.Message())
	assert.Equal(t, ErrValidationFailed.ErrorCode(), err.ErrorCode())
	assert.Equal(t, http.StatusBadRequest, err.HTTPCode())
	assert.Equal(t, "All fields are required.", ErrValidationFailed.Message())
}

func TestBaseError_ErrorIncludesDetails(t *testing.T) {
	assert.Equal(t, "Invalid token, authorization denied.", ErrInvalidToken.Error())
	assert.Equal(t, "Invalid token, authorization denied.: jwt expired", ErrInvalidToken.WithDetails("jwt expired").Error())
}

func TestBaseError_AsThroughWrap(t *testing.T) {
	wrapped := errors.Wrap(ErrContactNotFound, "contact lookup")

	appErr, ok := errors.AsType[AppError](wrapped)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
	assert.Equal(t, "Contact not found.", appErr.Message())
}

func TestStatusTaxonomy(t *testing.T) {
	tests := []struct {
		err  *BaseError
		want int
	}{
		{ErrValidationFailed, http.StatusBadRequest},
		{ErrDuplicateField, http.StatusBadRequest},
		{ErrDuplicateEmail, http.StatusBadRequest},
		{ErrInvalidCredentials, http.StatusBadRequest},
		{ErrMissingToken, http.StatusUnauthorized},
		{ErrInvalidToken, http.StatusUnauthorized},
		{ErrUserNotFound, http.StatusUnauthorized},
		{ErrContactNotFound, http.StatusNotFound},
		{ErrReminderNotFound, http.StatusNotFound},
		{ErrInternalError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.ErrorCode(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.HTTPCode())
		})
	}
}

func TestDatabaseExecuteError_Unwrap(t *testing.T) {
	cause := stderrors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "insert contact")

	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "Server error.", err.Message())
	assert.Contains(t, err.Error(), "database execution failed")
}
