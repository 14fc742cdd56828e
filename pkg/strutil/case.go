package strutil

import "strings"

// trimSet lists the bytes trimmed by Hyphenize.
const trimSet = " \t\n\r\x00\x0B"

// Hyphenize trims surrounding whitespace and joins words with hyphens.
// Double hyphens are collapsed in a single pass, so runs of three or more
// spaces still leave more than one hyphen: "a   b" becomes "a--b".
func Hyphenize(s string) string {
	s = strings.Trim(s, trimSet)
	s = strings.ReplaceAll(s, " ", "-")
	return strings.ReplaceAll(s, "--", "-")
}

// ToCamelCase converts hyphen, underscore or space separated words to
// camelCase, or to PascalCase when pascalCase is true.
func ToCamelCase(s string, pascalCase bool) string {
	s = strings.NewReplacer("-", " ", "_", " ").Replace(s)
	return joinWords(s, pascalCase)
}

// ToSnakeCase hyphenizes s and replaces hyphens with underscores.
func ToSnakeCase(s string) string {
	return strings.ReplaceAll(Hyphenize(s), "-", "_")
}

// CamelToSnake converts camelCase or PascalCase to snake_case. Digit runs
// are treated as separate words ("player22" becomes "player_22"), and each
// uppercase letter starts its own word.
func CamelToSnake(s string) string {
	s = upperRegex.ReplaceAllString(s, "_${0}")
	s = digitRunRegex.ReplaceAllString(s, "_${0}")
	s = strings.TrimLeft(s, "_")
	return lowerASCII(s)
}

// SnakeToCamel converts snake_case to camelCase, or to PascalCase when
// pascalCase is true.
func SnakeToCamel(s string, pascalCase bool) string {
	return joinWords(strings.ReplaceAll(s, "_", " "), pascalCase)
}

// joinWords capitalizes every word, drops the spaces between them and
// lowercases the first byte unless pascalCase is set.
func joinWords(s string, pascalCase bool) string {
	s = strings.ReplaceAll(capitalizeWords(s), " ", "")
	if pascalCase || s == "" {
		return s
	}
	b := []byte(s)
	b[0] = toLowerByte(b[0])
	return string(b)
}

// capitalizeWords uppercases the first ASCII letter of every word. Words are
// delimited by space, tab, CR, LF, form feed and vertical tab.
func capitalizeWords(s string) string {
	b := []byte(s)
	start := true
	for i, c := range b {
		if start {
			b[i] = toUpperByte(c)
		}
		switch c {
		case ' ', '\t', '\r', '\n', '\f', '\v':
			start = true
		default:
			start = false
		}
	}
	return string(b)
}

func lowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		b[i] = toLowerByte(c)
	}
	return string(b)
}

func toUpperByte(c byte) byte {
	if 'a' <= c && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

func toLowerByte(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}
