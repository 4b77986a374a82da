package textclean_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/newwdead/cardkit/pkg/textclean"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "collapses whitespace runs",
			input:    "Jane \t  Doe",
			expected: "Jane Doe",
		},
		{
			name:     "strips control characters",
			input:    "Jane\x00Doe\x07",
			expected: "JaneDoe",
		},
		{
			name:     "composes decomposed unicode",
			input:    "José",
			expected: "José",
		},
		{
			name:     "folds newlines into spaces",
			input:    "Acme Inc\nCEO",
			expected: "Acme Inc CEO",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "whitespace only",
			input:    " \n\t ",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, textclean.Normalize(tt.input))
		})
	}
}

func TestStripControl(t *testing.T) {
	assert.Equal(t, "a\tb\nc", textclean.StripControl("a\t\x1bb\nc\x00"))
}

func TestTrimPunctuation(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "strips layout bullets",
			input:    "• Jane Doe •",
			expected: " Jane Doe ",
		},
		{
			name:     "keeps inner punctuation",
			input:    "-jane.doe@example.com-",
			expected: "jane.doe@example.com",
		},
		{
			name:     "keeps leading plus",
			input:    "+79991234567,",
			expected: "+79991234567",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, textclean.TrimPunctuation(tt.input))
		})
	}
}

func TestRecord(t *testing.T) {
	cleaned := textclean.Record(map[string]string{
		"full_name": "  Jane   Doe ",
		"company":   "Acme\x00 Inc",
	})

	assert.Equal(t, map[string]string{
		"full_name": "Jane Doe",
		"company":   "Acme Inc",
	}, cleaned)
}
