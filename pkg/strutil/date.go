package strutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DefaultDateFormat is used by IsDate when no format is given.
const DefaultDateFormat = "mm/dd/yyyy"

// DateField identifies one component of a date format.
type DateField int

const (
	Month DateField = iota
	Day
	Year
)

func (f DateField) String() string {
	switch f {
	case Month:
		return "month"
	case Day:
		return "day"
	case Year:
		return "year"
	default:
		return "unknown"
	}
}

// Placeholders and the patterns they expand to.
const (
	monthPlaceholder = "mm"
	dayPlaceholder   = "dd"
	yearPlaceholder  = "yyyy"

	monthPattern = `(0?[1-9]|1[0-2])`
	dayPattern   = `(0?[1-9]|[1-2][0-9]|3[0-1])`
	yearPattern  = `(19|20)?[0-9][0-9]`
)

// DateLayout is a date format broken down into its separator, field order
// and the regular expression source matching it.
type DateLayout struct {
	Separator string
	Order     [3]DateField
	Pattern   string
}

// ParseDateLayout builds a DateLayout from a ten character format made of
// "mm", "dd" and "yyyy" joined by a single repeated separator, for example
// "mm/dd/yyyy" or "yyyy-mm-dd". Any other shape returns ErrInvalidDateFormat.
func ParseDateLayout(format string) (DateLayout, error) {
	if len(format) != len(DefaultDateFormat) {
		return DateLayout{}, fmt.Errorf("%w: %q must be %d characters long", ErrInvalidDateFormat, format, len(DefaultDateFormat))
	}

	separators := strings.NewReplacer("m", "", "d", "", "y", "").Replace(format)
	if len(separators) != 2 || separators[0] != separators[1] {
		return DateLayout{}, fmt.Errorf("%w: %q must contain exactly two identical separators", ErrInvalidDateFormat, format)
	}
	sep := separators[:1]

	layout := DateLayout{Separator: sep}
	patterns := make([]string, 0, 3)
	seen := make(map[DateField]bool, 3)
	for i, token := range strings.Split(format, sep) {
		var field DateField
		var pattern string
		switch token {
		case monthPlaceholder:
			field, pattern = Month, monthPattern
		case dayPlaceholder:
			field, pattern = Day, dayPattern
		case yearPlaceholder:
			field, pattern = Year, yearPattern
		default:
			return DateLayout{}, fmt.Errorf("%w: unexpected field %q in %q", ErrInvalidDateFormat, token, format)
		}
		if seen[field] {
			return DateLayout{}, fmt.Errorf("%w: duplicate %s field in %q", ErrInvalidDateFormat, field, format)
		}
		seen[field] = true
		layout.Order[i] = field
		patterns = append(patterns, pattern)
	}

	layout.Pattern = strings.Join(patterns, regexp.QuoteMeta(sep))
	return layout, nil
}

// Regexp compiles the layout pattern anchored at both ends of the input, so
// every field has to match its own placeholder pattern.
func (l DateLayout) Regexp() (*regexp.Regexp, error) {
	return regexp.Compile(`\A(?:` + l.Pattern + `)\z`)
}

// IsDate reports whether value is a real calendar date written in format.
// An empty format means DefaultDateFormat. Two digit years are read as is,
// so "02/29/20" is checked against the year 20.
//
// A value shorter than six bytes, an unusable format, a value that does not
// match the format or a day that does not exist in the given month and year
// all report false.
func IsDate(value, format string) bool {
	if format == "" {
		format = DefaultDateFormat
	}
	if len(value) < 6 {
		return false
	}

	layout, err := ParseDateLayout(format)
	if err != nil || layout.Pattern == value {
		return false
	}

	re, err := layout.Regexp()
	if err != nil || !re.MatchString(value) {
		return false
	}

	parts := strings.Split(value, layout.Separator)
	if len(parts) != len(layout.Order) {
		return false
	}

	var year, month, day int
	for i, field := range layout.Order {
		n, err := strconv.Atoi(parts[i])
		if err != nil {
			return false
		}
		switch field {
		case Month:
			month = n
		case Day:
			day = n
		case Year:
			year = n
		}
	}

	return validDate(year, month, day)
}

// validDate reports whether the date exists in the proleptic Gregorian calendar.
func validDate(year, month, day int) bool {
	if year < 1 || month < 1 || month > 12 || day < 1 {
		return false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return t.Year() == year && int(t.Month()) == month && t.Day() == day
}
