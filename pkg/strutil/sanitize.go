package strutil

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

var (
	clientReplacer = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#039;",
	)

	xmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;")
)

// SanitizeClient escapes HTML special characters (& < > " ') so s can be
// rendered in a browser as text. Input that is not valid UTF-8 yields an
// empty string.
//
// Passing allowHTML is not supported and returns an error wrapping
// ErrNotImplemented.
func SanitizeClient(s string, allowHTML bool) (string, error) {
	if allowHTML {
		return "", fmt.Errorf("sanitize client: allow html: %w", ErrNotImplemented)
	}
	if !utf8.ValidString(s) {
		return "", nil
	}
	return clientReplacer.Replace(s), nil
}

// SanitizeXML escapes & and < for use in XML text. Existing &amp; and &lt;
// entities are decoded first so already escaped input is not escaped twice.
// Other characters, including > and quotes, are left as they are.
func SanitizeXML(s string) string {
	s = strings.ReplaceAll(s, "&amp;", "&")
	s = strings.ReplaceAll(s, "&lt;", "<")
	return xmlEscaper.Replace(s)
}
