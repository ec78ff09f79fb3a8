package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
	Rating   int    `validate:"gte=1,lte=5"`
}

func TestValidate(t *testing.T) {
	cv := NewValidator()

	t.Run("valid struct passes", func(t *testing.T) {
		err := cv.Validate(&sampleRequest{Email: "a@example.com", Password: "longenough", Rating: 3})
		assert.NoError(t, err)
	})

	t.Run("violations are reported per field", func(t *testing.T) {
		err := cv.Validate(&sampleRequest{Email: "not-an-email", Password: "short", Rating: 9})
		require.Error(t, err)

		formatted := cv.FormatValidationErrors(err)
		assert.Equal(t, "Email must be a valid email address", formatted["Email"])
		assert.Equal(t, "Password must be at least 8 characters", formatted["Password"])
		assert.Equal(t, "Rating must be less than or equal to 5", formatted["Rating"])
	})
}
