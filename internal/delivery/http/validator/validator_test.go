package validator

import (
	"testing"

	domainerrors "dating/internal/domain/errors"
	"dating/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=4"`
	Nickname string `validate:"max=3"`
}

func TestValidator_Validate(t *testing.T) {
	v := New()

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, v.Validate(&sample{Email: "a@b.com", Password: "pw1234"}))
	})

	t.Run("field errors keyed by json name", func(t *testing.T) {
		err := v.Validate(&sample{Email: "nope", Nickname: "toolong"})

		var validationErr *domainerrors.ValidationError
		require.True(t, errors.As(err, &validationErr))
		assert.Equal(t, map[string]string{
			"email":    "must be a valid email address",
			"password": "is required",
			"Nickname": "must be at most 3 characters",
		}, validationErr.Fields())
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})

	t.Run("min length", func(t *testing.T) {
		err := v.Validate(&sample{Email: "a@b.com", Password: "pw"})

		var validationErr *domainerrors.ValidationError
		require.True(t, errors.As(err, &validationErr))
		assert.Equal(t, "must be at least 4 characters", validationErr.Fields()["password"])
	})
}
