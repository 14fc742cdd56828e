package validator

import (
	"fmt"

	"github.com/dmitrymomot/textkit/pkg/strutil"
)

// Date validates that value is a real calendar date written in format.
// An empty format means strutil.DefaultDateFormat.
func Date(field, value, format string) Rule {
	if format == "" {
		format = strutil.DefaultDateFormat
	}
	return Rule{
		Check: func() bool {
			return strutil.IsDate(value, format)
		},
		Error: newError(field,
			fmt.Sprintf("must be a valid date in %s format", format),
			"validation.date",
			map[string]any{"format": format},
		),
	}
}

// DateFormat validates that value can be used as a date format by Date.
func DateFormat(field, value string) Rule {
	return Rule{
		Check: func() bool {
			_, err := strutil.ParseDateLayout(value)
			return err == nil
		},
		Error: newError(field,
			"must combine mm, dd and yyyy with a single separator",
			"validation.date_format",
			nil,
		),
	}
}
