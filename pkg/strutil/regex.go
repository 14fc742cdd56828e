package strutil

import "regexp"

// Pre-compiled regular expressions
var (
	// Case conversion
	upperRegex    = regexp.MustCompile(`[A-Z]`)
	digitRunRegex = regexp.MustCompile(`[0-9]+`)

	// Numeric validation
	intRegex = regexp.MustCompile(`^-?[0-9]+$`)

	// Email validation
	malformedEmailRegex = regexp.MustCompile(`(@.*@)|(\.\.)|(@\.)|(\.@)|(^\.)`)
	emailShapeRegex     = regexp.MustCompile(`^.+@(\[?)[a-zA-Z0-9\-\.]+\.([a-zA-Z]{2,3}|[0-9]{1,3})(\]?)$`)
)
