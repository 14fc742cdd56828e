package strutil

import (
	"math"
	"strconv"
	"strings"
)

// Decimal exponents outside [minPlainExp, maxPlainExp) are written in
// exponent notation by canonicalFloat.
const (
	minPlainExp = -4
	maxPlainExp = 15
)

// IsInt reports whether s is an optional minus sign followed by decimal digits.
func IsInt(s string) bool {
	return intRegex.MatchString(s)
}

// IsFloat reports whether s is a number in canonical form: parsing it and
// formatting it back must reproduce s exactly. "3.14" and "42" pass, while
// "1.0", "1.", "+1" and "1e3" do not. NaN and infinities are rejected.
//
// Very small and very large magnitudes are canonical in exponent notation,
// so "1e-05" and "1e+23" pass while "0.00001" and "100000000000000000000000"
// do not.
func IsFloat(s string) bool {
	if s == "" {
		return false
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return false
	}

	return canonicalFloat(f) == s
}

// canonicalFloat formats f with the shortest digits that round-trip, in
// plain decimal notation unless its decimal exponent is below minPlainExp
// or at least maxPlainExp.
func canonicalFloat(f float64) string {
	e := strconv.FormatFloat(f, 'e', -1, 64)
	exp, err := strconv.Atoi(e[strings.LastIndexByte(e, 'e')+1:])
	if err == nil && f != 0 && (exp < minPlainExp || exp >= maxPlainExp) {
		return e
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// IsEmail reports whether s looks like an e-mail address: a local part, "@",
// a domain of letters, digits, hyphens and dots (optionally in brackets), and
// a TLD of 2-3 letters or 1-3 digits. Addresses with an obviously malformed
// pattern are rejected even when they fit that shape.
//
// The check is deliberately loose and does not follow RFC 5322.
func IsEmail(s string) bool {
	return emailShapeRegex.MatchString(s) && !HasMalformedEmailPattern(s)
}

// HasMalformedEmailPattern reports whether s contains a sequence no valid
// address has: two "@" signs, "..", "@.", ".@" or a leading dot.
func HasMalformedEmailPattern(s string) bool {
	return malformedEmailRegex.MatchString(s)
}
