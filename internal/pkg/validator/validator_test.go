package validator

import (
	"testing"

	playground "github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registerBody struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
	Name     string `validate:"required"`
}

func TestFieldErrors_ListsEveryViolation(t *testing.T) {
	v := playground.New()
	err := v.Struct(registerBody{Email: "not-an-email", Password: "abc"})
	require.Error(t, err)

	fields := FieldErrors(err)
	require.Len(t, fields, 3)

	byField := map[string]string{}
	for _, fe := range fields {
		byField[fe.Field] = fe.Message
	}
	assert.Equal(t, "Invalid email format", byField["email"])
	assert.Equal(t, "password must be at least 6 characters", byField["password"])
	assert.Equal(t, "name is required", byField["name"])
}

func TestFieldErrors_NonValidationError(t *testing.T) {
	fields := FieldErrors(assert.AnError)
	require.Len(t, fields, 1)
	assert.Equal(t, "body", fields[0].Field)
}
