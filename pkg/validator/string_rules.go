package validator

import (
	"strings"
	"unicode/utf8"

	"github.com/dmitrymomot/textkit/pkg/strutil"
)

// Required validates that a string is not empty after trimming whitespace.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: newError(field, "field is required", "validation.required", nil),
	}
}

// Email validates the loose address shape accepted by strutil.IsEmail.
// Empty values fail; combine with Required only for a distinct message.
func Email(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strutil.IsEmail(value)
		},
		Error: newError(field, "must be a valid email address", "validation.email", nil),
	}
}

// ASCII validates that value contains only 7-bit ASCII characters.
// Run strutil.ToASCII first to fold the accented letters it knows about.
func ASCII(field, value string) Rule {
	return Rule{
		Check: func() bool {
			for i := 0; i < len(value); i++ {
				if value[i] >= utf8.RuneSelf {
					return false
				}
			}
			return true
		},
		Error: newError(field, "must contain only ASCII characters", "validation.ascii", nil),
	}
}
