package textclean

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

// Normalize runs the standard OCR cleanup pipeline: Unicode NFC
// composition, control-character removal, and whitespace collapsing.
func Normalize(s string) string {
	return CollapseWhitespace(StripControl(norm.NFC.String(s)))
}

// CollapseWhitespace folds runs of whitespace into single spaces and trims
// the ends.
func CollapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}

// StripControl removes control characters except tab and newline, which
// CollapseWhitespace folds later.
func StripControl(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\t' && r != '\n' {
			return -1
		}
		return r
	}, s)
}

// TrimPunctuation removes leading and trailing punctuation left over from
// card layout elements (bullets, separators, underlines). Punctuation inside
// the value is preserved; a leading + survives because it is significant in
// phone numbers.
func TrimPunctuation(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		if r == '+' {
			return false
		}
		return unicode.IsPunct(r) || unicode.IsSymbol(r)
	})
}

// Record applies Normalize to every value of a field map, returning a new
// map. Keys are copied as-is.
func Record(fields map[string]string) map[string]string {
	cleaned := make(map[string]string, len(fields))
	for field, value := range fields {
		cleaned[field] = Normalize(value)
	}
	return cleaned
}
