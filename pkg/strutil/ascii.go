package strutil

import (
	"io"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// asciiMap maps accented Latin letters to ASCII equivalents.
// The table is fixed; letters outside it are left untouched.
var asciiMap = map[rune]byte{
	// uppercase
	'À': 'A', 'Á': 'A', 'Â': 'A', 'Ã': 'A', 'Ä': 'A', 'Å': 'A', 'Æ': 'A',
	'Ç': 'C',
	'È': 'E', 'É': 'E', 'Ê': 'E', 'Ë': 'E',
	'Ì': 'I', 'Í': 'I', 'Î': 'I', 'Ï': 'I',
	'Ð': 'D',
	'Ñ': 'N',
	'Ò': 'O', 'Ó': 'O', 'Ô': 'O', 'Õ': 'O', 'Ö': 'O', 'Ø': 'O',
	'Ù': 'U', 'Ú': 'U', 'Û': 'U', 'Ü': 'U',
	'Ý': 'Y',
	'Þ': 'b',
	'ß': 's',
	'Ŕ': 'R',
	// lowercase
	'à': 'a', 'á': 'a', 'â': 'a', 'ã': 'a', 'ä': 'a', 'å': 'a', 'æ': 'a',
	'ç': 'c',
	'è': 'e', 'é': 'e', 'ê': 'e', 'ë': 'e',
	'ì': 'i', 'í': 'i', 'î': 'i', 'ï': 'i',
	'ð': 'd',
	'ñ': 'n',
	'ò': 'o', 'ó': 'o', 'ô': 'o', 'õ': 'o', 'ö': 'o', 'ø': 'o',
	'ù': 'u', 'ú': 'u', 'û': 'u', 'ü': 'u',
	'ý': 'y', 'ÿ': 'y',
	'þ': 'b',
	'ŕ': 'r',
}

// ASCII is a transform.Transformer replacing accented letters with their
// ASCII counterparts. Bytes that are not valid UTF-8 are copied unchanged.
var ASCII transform.SpanningTransformer = asciiTransformer{}

type asciiTransformer struct{ transform.NopResetter }

func (asciiTransformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		c := src[nSrc]
		if c < utf8.RuneSelf {
			if nDst >= len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = c
			nDst++
			nSrc++
			continue
		}

		if !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}

		r, size := utf8.DecodeRune(src[nSrc:])
		if a, ok := asciiMap[r]; ok {
			if nDst >= len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = a
			nDst++
			nSrc += size
			continue
		}

		if nDst+size > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += copy(dst[nDst:], src[nSrc:nSrc+size])
		nSrc += size
	}
	return nDst, nSrc, nil
}

// Span reports the prefix of src that needs no transliteration.
func (asciiTransformer) Span(src []byte, atEOF bool) (n int, err error) {
	for n < len(src) {
		if src[n] < utf8.RuneSelf {
			n++
			continue
		}
		if !atEOF && !utf8.FullRune(src[n:]) {
			return n, transform.ErrShortSrc
		}
		r, size := utf8.DecodeRune(src[n:])
		if _, ok := asciiMap[r]; ok {
			return n, transform.ErrEndOfSpan
		}
		n += size
	}
	return n, nil
}

// ToASCII replaces accented Latin letters with their ASCII counterparts,
// e.g. "café" becomes "cafe". Characters outside the table are preserved.
func ToASCII(s string) string {
	result, _, err := transform.String(ASCII, s)
	if err != nil {
		return s
	}
	return result
}

// NewASCIIReader returns a reader that transliterates r on the fly.
func NewASCIIReader(r io.Reader) io.Reader {
	return transform.NewReader(r, ASCII)
}
