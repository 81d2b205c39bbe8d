package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type createRequest struct {
	Name  string `json:"contactName" validate:"required,notblank"`
	Phone string `json:"phoneNumber" validate:"required"`
}

type patchRequest struct {
	Name *string `json:"contactName" validate:"omitnil,notblank"`
}

func TestValidator_Required(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&createRequest{Name: "Ravi", Phone: "+15550001"}))

	err := v.Validate(&createRequest{Name: "Ravi"})
	require.Error(t, err)
	assert.Equal(t, "phoneNumber: required", Describe(err))
}

func TestValidator_NotBlank(t *testing.T) {
	v := New()

	err := v.Validate(&createRequest{Name: "   ", Phone: "+15550001"})
	require.Error(t, err)
	assert.Equal(t, "contactName: notblank", Describe(err))

	blank := " "
	assert.Error(t, v.Validate(&patchRequest{Name: &blank}))

	name := "Ravi"
	assert.NoError(t, v.Validate(&patchRequest{Name: &name}))
	assert.NoError(t, v.Validate(&patchRequest{}))
}

func TestDescribe_NonValidationError(t *testing.T) {
	assert.Empty(t, Describe(assert.AnError))
}
