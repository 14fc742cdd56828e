// Package strutil provides small, stateless helpers for transforming and
// validating strings.
//
// The helpers fall into four groups:
//
//   - Transliteration: ToASCII replaces accented Latin letters with their
//     ASCII counterparts using a fixed lookup table. The same table is
//     available as the ASCII transform.Transformer for streaming input.
//
//   - Case conversion: Hyphenize, ToCamelCase, ToSnakeCase, CamelToSnake and
//     SnakeToCamel convert between common identifier conventions.
//
//   - Escaping: SanitizeClient escapes HTML special characters for output to
//     a browser, SanitizeXML escapes the characters XML text nodes require.
//
//   - Validation: IsInt, IsFloat, IsDate and IsEmail report whether a string
//     has the expected shape. They never return errors: anything that is not a
//     match, including a malformed date format, is simply false.
//
// # Usage
//
//	import "github.com/dmitrymomot/textkit/pkg/strutil"
//
//	strutil.ToASCII("Crème brûlée")        // "Creme brulee"
//	strutil.CamelToSnake("player22")       // "player_22"
//	strutil.SnakeToCamel("foo_bar", true)  // "FooBar"
//	strutil.IsDate("02/29/2020", "")       // true, format defaults to mm/dd/yyyy
//
// Transformations compose with Apply and Compose:
//
//	toColumn := strutil.Compose(strutil.ToASCII, strutil.ToSnakeCase)
//	toColumn("Prénom usuel") // "Prenom_usuel"
//
// # Case conversion
//
// Word capitalization and lowercasing only touch ASCII letters. Non-ASCII
// words pass through as they are, which keeps the conversions byte-stable for
// input that has not been transliterated first.
//
// CamelToSnake does not group acronyms: every uppercase letter starts a new
// word, so "HTTPServer" becomes "h_t_t_p_server".
//
// # Error handling
//
// Only SanitizeClient returns an error, and only when HTML pass-through is
// requested, which is not supported. The returned error wraps
// ErrNotImplemented. ParseDateLayout exposes date format problems as
// ErrInvalidDateFormat for callers that want to validate a format up front.
//
// # Concurrency
//
// There is no mutable package state. All functions, and the ASCII
// transformer, are safe for concurrent use.
package strutil
