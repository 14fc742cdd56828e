package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/textkit/pkg/strutil"
	"github.com/dmitrymomot/textkit/pkg/validator"
)

func TestRequired(t *testing.T) {
	assert.NoError(t, validator.Apply(validator.Required("name", "Ann")))

	for _, value := range []string{"", "   ", "\t\n"} {
		err := validator.Apply(validator.Required("name", value))
		require.Error(t, err, "value %q", value)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 1)
		assert.Equal(t, "validation.required", verrs[0].TranslationKey)
		assert.Equal(t, "name", verrs[0].TranslationValues["field"])
	}
}

func TestEmail(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		for _, value := range []string{"a@b.com", "john.doe@example.co", "user@[10.0.0.1]"} {
			assert.NoError(t, validator.Apply(validator.Email("email", value)), "value %q", value)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		for _, value := range []string{"", "plainaddress", "a..b@example.com", "a@@b.com"} {
			err := validator.Apply(validator.Email("email", value))
			require.Error(t, err, "value %q", value)
			assert.Equal(t, "validation.email", validator.ExtractValidationErrors(err)[0].TranslationKey)
		}
	})
}

func TestASCII(t *testing.T) {
	t.Run("plain ascii passes", func(t *testing.T) {
		assert.NoError(t, validator.Apply(validator.ASCII("slug", "hello-world")))
		assert.NoError(t, validator.Apply(validator.ASCII("slug", "")))
	})

	t.Run("non-ascii fails", func(t *testing.T) {
		for _, value := range []string{"café", "łźż", "日本", "\xff"} {
			err := validator.Apply(validator.ASCII("slug", value))
			require.Error(t, err, "value %q", value)
			assert.Equal(t, "validation.ascii", validator.ExtractValidationErrors(err)[0].TranslationKey)
		}
	})

	t.Run("transliterated value passes", func(t *testing.T) {
		assert.NoError(t, validator.Apply(validator.ASCII("slug", strutil.ToASCII("Crème brûlée"))))
	})
}
