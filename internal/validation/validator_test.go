package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/musclemap/musclemap-client/internal/errors"
)

type loginInput struct {
	Email  string `json:"email" validate:"required,email"`
	Secret string `json:"secret" validate:"required,min=8"`
}

func TestValidate_Passes(t *testing.T) {
	v := New()
	err := v.Validate(loginInput{Email: "learner@example.com", Secret: "long-enough"})
	assert.NoError(t, err)
}

func TestValidate_UsesJSONTagNames(t *testing.T) {
	v := New()
	err := v.Validate(loginInput{Email: "not-an-email", Secret: "short"})
	require.Error(t, err)

	var domainErr *domainerrors.Error
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domainerrors.CodeValidation, domainErr.Code)

	details, ok := domainErr.Details.(map[string]string)
	require.True(t, ok)
	assert.Contains(t, details, "email")
	assert.Contains(t, details, "secret")
	assert.Equal(t, "must be at least 8 characters", details["secret"])
}
