package strutil_test

import (
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/transform"

	"github.com/dmitrymomot/textkit/pkg/strutil"
)

func TestToASCII(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "replaces accented letter",
			input:    "café",
			expected: "cafe",
		},
		{
			name:     "identity on plain ascii",
			input:    "ABC",
			expected: "ABC",
		},
		{
			name:     "handles empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "french phrase",
			input:    "Crème brûlée",
			expected: "Creme brulee",
		},
		{
			name:     "ligatures and sharp s",
			input:    "Æsir straße",
			expected: "Asir strase",
		},
		{
			name:     "thorn maps to b",
			input:    "Þorn þorn",
			expected: "born born",
		},
		{
			name:     "r with acute",
			input:    "Ŕŕ",
			expected: "Rr",
		},
		{
			name:     "y variants",
			input:    "ÝýÿŸ",
			expected: "YyyŸ",
		},
		{
			name:     "umlauts",
			input:    "Über naïve ü",
			expected: "Uber naive u",
		},
		{
			name:     "characters outside the table are preserved",
			input:    "łœ€ 日本",
			expected: "łœ€ 日本",
		},
		{
			name:     "invalid utf-8 bytes are preserved",
			input:    "a\xffé\xfeb",
			expected: "a\xffe\xfeb",
		},
		{
			name:     "truncated multi-byte sequence at the end",
			input:    "é\xc3",
			expected: "e\xc3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := strutil.ToASCII(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestNewASCIIReader(t *testing.T) {
	t.Run("transliterates stream", func(t *testing.T) {
		r := strutil.NewASCIIReader(strings.NewReader("Ça va, garçon?\nÀ bientôt"))
		out, err := io.ReadAll(r)
		require.NoError(t, err)
		assert.Equal(t, "Ca va, garcon?\nA bientot", string(out))
	})

	t.Run("handles runes split across reads", func(t *testing.T) {
		r := strutil.NewASCIIReader(iotest.OneByteReader(strings.NewReader("Ça va, garçon?")))
		out, err := io.ReadAll(r)
		require.NoError(t, err)
		assert.Equal(t, "Ca va, garcon?", string(out))
	})

	t.Run("large input", func(t *testing.T) {
		input := strings.Repeat("déjà vu ", 4096)
		r := strutil.NewASCIIReader(strings.NewReader(input))
		out, err := io.ReadAll(r)
		require.NoError(t, err)
		assert.Equal(t, strings.Repeat("deja vu ", 4096), string(out))
	})
}

func TestASCIISpan(t *testing.T) {
	t.Run("plain ascii spans everything", func(t *testing.T) {
		n, err := strutil.ASCII.Span([]byte("hello"), true)
		require.NoError(t, err)
		assert.Equal(t, 5, n)
	})

	t.Run("stops before a mapped letter", func(t *testing.T) {
		n, err := strutil.ASCII.Span([]byte("abé"), true)
		assert.ErrorIs(t, err, transform.ErrEndOfSpan)
		assert.Equal(t, 2, n)
	})

	t.Run("unmapped multi-byte letters are spanned", func(t *testing.T) {
		n, err := strutil.ASCII.Span([]byte("ł€"), true)
		require.NoError(t, err)
		assert.Equal(t, len("ł€"), n)
	})

	t.Run("incomplete rune before eof", func(t *testing.T) {
		n, err := strutil.ASCII.Span([]byte("a\xc3"), false)
		assert.ErrorIs(t, err, transform.ErrShortSrc)
		assert.Equal(t, 1, n)
	})
}
