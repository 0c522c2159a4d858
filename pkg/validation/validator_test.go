package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

func TestToFieldErrorsAllViolations(t *testing.T) {
	v := validator.New(validator.WithRequiredStructEnabled())
	err := v.Struct(sample{Name: "", Email: "bad", Password: "123"})
	require.Error(t, err)

	msgs := map[string]string{
		"Name":     "Name is required",
		"Email":    "Please include a valid email",
		"Password": "Please enter a password with 6 or more characters",
	}
	errs := ToFieldErrors(err, msgs)

	require.Len(t, errs, 3)
	assert.Equal(t, "Name is required", errs[0].Msg)
	assert.Equal(t, "Please include a valid email", errs[1].Msg)
	assert.Equal(t, "Please enter a password with 6 or more characters", errs[2].Msg)
	for _, fe := range errs {
		assert.Equal(t, "body", fe.Location)
		assert.NotEmpty(t, fe.Param)
	}
}

func TestToFieldErrorsFallbackMessage(t *testing.T) {
	v := validator.New(validator.WithRequiredStructEnabled())
	err := v.Struct(sample{Name: "Ann", Email: "ann@example.com", Password: "12345"})
	require.Error(t, err)

	errs := ToFieldErrors(err, nil)
	require.Len(t, errs, 1)
	assert.Equal(t, "Password must be at least 6 characters long", errs[0].Msg)
}

func TestToFieldErrorsNil(t *testing.T) {
	assert.Nil(t, ToFieldErrors(nil, nil))
}
