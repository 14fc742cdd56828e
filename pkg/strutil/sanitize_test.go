package strutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/textkit/pkg/strutil"
)

func TestSanitizeClient(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "escapes script tag",
			input:    "<script>",
			expected: "&lt;script&gt;",
		},
		{
			name:     "escapes quotes and ampersand",
			input:    `Tom & "Jerry's"`,
			expected: "Tom &amp; &quot;Jerry&#039;s&quot;",
		},
		{
			name:     "escapes existing entities again",
			input:    "&amp;",
			expected: "&amp;amp;",
		},
		{
			name:     "keeps unicode text",
			input:    "héllo wörld",
			expected: "héllo wörld",
		},
		{
			name:     "invalid utf-8 yields empty string",
			input:    "bad \xff byte",
			expected: "",
		},
		{
			name:     "handles empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := strutil.SanitizeClient(tt.input, false)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}

	t.Run("allow html is not implemented", func(t *testing.T) {
		result, err := strutil.SanitizeClient("<b>bold</b>", true)
		require.Error(t, err)
		assert.ErrorIs(t, err, strutil.ErrNotImplemented)
		assert.Contains(t, err.Error(), "allow html")
		assert.Empty(t, result)
	})
}

func TestSanitizeXML(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "escapes ampersand and less than",
			input:    "a & b < c",
			expected: "a &amp; b &lt; c",
		},
		{
			name:     "does not double escape",
			input:    "a &amp; b &lt; c",
			expected: "a &amp; b &lt; c",
		},
		{
			name:     "leaves greater than and quotes",
			input:    `> " '`,
			expected: `> " '`,
		},
		{
			name:     "other entities get their ampersand escaped",
			input:    "&gt;",
			expected: "&amp;gt;",
		},
		{
			name:     "nested entity is decoded twice",
			input:    "&amp;lt;",
			expected: "&lt;",
		},
		{
			name:     "handles empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := strutil.SanitizeXML(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}

	t.Run("idempotent on input without entities", func(t *testing.T) {
		inputs := []string{"a & b < c", "<tag attr=\"x\">&</tag>", "plain", ""}
		for _, input := range inputs {
			once := strutil.SanitizeXML(input)
			assert.Equal(t, once, strutil.SanitizeXML(once), "input %q", input)
		}
	})
}
