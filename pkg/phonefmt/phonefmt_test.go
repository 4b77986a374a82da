package phonefmt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/newwdead/cardkit/pkg/phonefmt"
)

func TestFormatForDisplay(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "russian trunk prefix 8",
			input:    "89991234567",
			expected: "+7 (999) 123-45-67",
		},
		{
			name:     "russian country code without plus",
			input:    "79991234567",
			expected: "+7 (999) 123-45-67",
		},
		{
			name:     "russian country code with plus",
			input:    "+79991234567",
			expected: "+7 (999) 123-45-67",
		},
		{
			name:     "already formatted russian number",
			input:    "+7 (999) 123-45-67",
			expected: "+7 (999) 123-45-67",
		},
		{
			name:     "trunk prefix with punctuation",
			input:    "8 (999) 123-45-67",
			expected: "+7 (999) 123-45-67",
		},
		{
			name:     "bare ten digits assumed russian",
			input:    "9991234567",
			expected: "+7 (999) 123-45-67",
		},
		{
			name:     "north american eleven digits",
			input:    "+12345678901",
			expected: "+1 (234) 567-8901",
		},
		{
			name:     "north american without plus",
			input:    "12345678901",
			expected: "+1 (234) 567-8901",
		},
		{
			name:     "generic international twelve digits",
			input:    "+442071234567",
			expected: "+44 (207) 123-4567",
		},
		{
			name:     "generic international thirteen digits",
			input:    "+4951512345678",
			expected: "+495 (151) 234-5678",
		},
		{
			name:     "too short with plus",
			input:    "+123",
			expected: "+123",
		},
		{
			name:     "too short without plus",
			input:    "12-34",
			expected: "1234",
		},
		{
			name:     "empty input unchanged",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, phonefmt.FormatForDisplay(tt.input))
		})
	}
}

// Ten-digit numbers without a plus are always claimed by the Russian rule,
// even when the leading digit suggests another region. The historical rule
// ordering is intentional; this test pins it so a "fix" does not slip in
// silently.
func TestFormatForDisplayTenDigitPrecedence(t *testing.T) {
	assert.Equal(t, "+7 (123) 456-78-90", phonefmt.FormatForDisplay("1234567890"))

	// With a plus the same digits match no rule and fall through untouched.
	assert.Equal(t, "+1234567890", phonefmt.FormatForDisplay("+1234567890"))
}

func TestFormatForDisplayIdempotent(t *testing.T) {
	inputs := []string{
		"89991234567",
		"9991234567",
		"+79991234567",
		"+12345678901",
		"+442071234567",
	}

	for _, input := range inputs {
		once := phonefmt.FormatForDisplay(input)
		twice := phonefmt.FormatForDisplay(once)
		assert.Equal(t, once, twice, "reformatting %q must be a no-op", input)
	}
}

func TestNormalizeForSearch(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "trunk prefix rewritten to plus seven",
			input:    "89991234567",
			expected: "+79991234567",
		},
		{
			name:     "bare country code gains plus",
			input:    "79991234567",
			expected: "+79991234567",
		},
		{
			name:     "canonical form unchanged",
			input:    "+79991234567",
			expected: "+79991234567",
		},
		{
			name:     "display format stripped",
			input:    "+7 (999) 123-45-67",
			expected: "+79991234567",
		},
		{
			name:     "foreign number keeps its plus",
			input:    "+1 (234) 567-8901",
			expected: "+12345678901",
		},
		{
			name:     "short number passes through",
			input:    "123-45",
			expected: "12345",
		},
		{
			name:     "empty input unchanged",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, phonefmt.NormalizeForSearch(tt.input))
		})
	}
}

// Every representation of the same Russian number must collapse to the
// identical search key.
func TestNormalizeForSearchEquivalence(t *testing.T) {
	variants := []string{
		"89991234567",
		"+79991234567",
		"79991234567",
		"+7 (999) 123-45-67",
		"8 999 123 45 67",
	}

	for _, v := range variants {
		assert.Equal(t, "+79991234567", phonefmt.NormalizeForSearch(v), "variant %q", v)
	}
}

func TestSame(t *testing.T) {
	t.Run("matching representations", func(t *testing.T) {
		assert.True(t, phonefmt.Same("89991234567", "+7 (999) 123-45-67"))
		assert.True(t, phonefmt.Same("79991234567", "+79991234567"))
	})

	t.Run("different numbers", func(t *testing.T) {
		assert.False(t, phonefmt.Same("+79991234567", "+79991234568"))
	})

	t.Run("empty operands never match", func(t *testing.T) {
		assert.False(t, phonefmt.Same("", ""))
		assert.False(t, phonefmt.Same("+79991234567", ""))
	})
}
