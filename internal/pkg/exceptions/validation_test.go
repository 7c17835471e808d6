package exceptions

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type loginForm struct {
	Username string `validate:"required"`
	Password string `validate:"required,min=8"`
}

func TestFormatFirstValidationError(t *testing.T) {
	validate := validator.New()

	t.Run("Required Field", func(t *testing.T) {
		err := validate.Struct(&loginForm{Password: "password123"})
		require.Error(t, err)

		assert.Equal(t, "username is required", FormatFirstValidationError(err))
	})

	t.Run("Parametrized Tag", func(t *testing.T) {
		err := validate.Struct(&loginForm{Username: "jkowalski", Password: "short"})
		require.Error(t, err)

		assert.Equal(t, "password must be at least 8 characters long", FormatFirstValidationError(err))
	})

	t.Run("Non Validation Error", func(t *testing.T) {
		message := FormatFirstValidationError(errors.New("boom"))
		assert.NotEmpty(t, message)
	})

	t.Run("Nil Error", func(t *testing.T) {
		assert.NotEmpty(t, FormatFirstValidationError(nil))
	})
}
