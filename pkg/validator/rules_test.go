package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/totpvault/pkg/validator"
)

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("all rules pass", func(t *testing.T) {
		t.Parallel()
		err := validator.Apply(
			validator.RequiredString("username", "alice"),
			validator.ValidEmail("email", "a@x.com"),
		)
		assert.NoError(t, err)
	})

	t.Run("collects all failures", func(t *testing.T) {
		t.Parallel()
		err := validator.Apply(
			validator.RequiredString("username", "  "),
			validator.ValidEmail("email", "nope"),
		)
		require.Error(t, err)

		var verrs validator.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Len(t, verrs, 2)
		assert.True(t, verrs.Has("username"))
		assert.True(t, verrs.Has("email"))
	})
}

func TestValidEmail(t *testing.T) {
	t.Parallel()

	valid := []string{"a@x.com", "alice+tag@sub.example.org"}
	invalid := []string{"", "nope", "a@x", "a@.com", "Display Name <a@x.com>"}

	for _, v := range valid {
		assert.NoError(t, validator.Apply(validator.ValidEmail("email", v)), v)
	}
	for _, v := range invalid {
		assert.Error(t, validator.Apply(validator.ValidEmail("email", v)), v)
	}
}

func TestOneOf(t *testing.T) {
	t.Parallel()

	assert.NoError(t, validator.Apply(validator.OneOf("role", "admin", "admin", "super_admin")))
	assert.Error(t, validator.Apply(validator.OneOf("role", "root", "admin", "super_admin")))
}

func TestMinLength(t *testing.T) {
	t.Parallel()

	assert.NoError(t, validator.Apply(validator.MinLength("password", "pw12345678", 8)))
	assert.Error(t, validator.Apply(validator.MinLength("password", "pw", 8)))
}
