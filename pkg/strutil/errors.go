package strutil

import "errors"

var (
	// ErrNotImplemented is returned for options that are recognised but not supported.
	ErrNotImplemented = errors.New("not implemented")

	// ErrInvalidDateFormat is returned when a date format cannot be turned into a layout.
	ErrInvalidDateFormat = errors.New("invalid date format")
)
