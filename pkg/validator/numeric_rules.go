package validator

import "github.com/dmitrymomot/textkit/pkg/strutil"

// Integer validates that value is a decimal integer with an optional minus sign.
func Integer(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strutil.IsInt(value)
		},
		Error: newError(field, "must be an integer", "validation.integer", nil),
	}
}

// Float validates that value is a number in canonical form, see strutil.IsFloat.
func Float(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strutil.IsFloat(value)
		},
		Error: newError(field, "must be a number", "validation.float", nil),
	}
}
