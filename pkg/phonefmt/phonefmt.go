package phonefmt

import (
	"regexp"
	"strings"
)

var nonDigitRegex = regexp.MustCompile(`\D`)

// clean strips everything except digits, remembering whether the input
// carried a leading plus sign.
func clean(phone string) (digits string, hasPlus bool) {
	trimmed := strings.TrimSpace(phone)
	hasPlus = strings.HasPrefix(trimmed, "+")
	digits = nonDigitRegex.ReplaceAllString(trimmed, "")
	return digits, hasPlus
}

// FormatForDisplay renders a phone number in a human-readable form.
//
// The rules are evaluated in order, first match wins:
//  1. eleven digits starting with 8 – Russian number with trunk prefix,
//     formatted as +7 (XXX) XXX-XX-XX from the last ten digits
//  2. eleven digits starting with 7 – Russian number, same grouping
//  3. exactly ten digits without a leading plus – assumed Russian local
//     number missing its country code
//  4. eleven digits starting with 1 – North American +1 (XXX) XXX-XXXX
//  5. eleven or more digits – generic international: every digit before the
//     last ten becomes the country code, +CC (XXX) XXX-XXXX
//
// Anything shorter falls through unformatted: the cleaned digits, with the
// plus restored if the input had one. Empty input is returned unchanged.
//
// Note that rule 3 deliberately claims every bare ten-digit number for +7,
// including ones that look North American. Locale detection beyond the rule
// table is out of scope; keep the ordering stable.
func FormatForDisplay(phone string) string {
	if phone == "" {
		return phone
	}

	digits, hasPlus := clean(phone)

	switch {
	case len(digits) == 11 && digits[0] == '8':
		return formatRussian(digits[1:])
	case len(digits) == 11 && digits[0] == '7':
		return formatRussian(digits[1:])
	case !hasPlus && len(digits) == 10:
		return formatRussian(digits)
	case len(digits) == 11 && digits[0] == '1':
		return formatInternational("1", digits[1:])
	case len(digits) >= 11:
		return formatInternational(digits[:len(digits)-10], digits[len(digits)-10:])
	}

	if hasPlus {
		return "+" + digits
	}
	return digits
}

// NormalizeForSearch reduces a phone number to its canonical search key:
// digits with a leading plus where one is known. Russian trunk-prefix and
// bare country-code forms are rewritten to +7 so that every representation
// of the same number yields the identical key.
//
// Both operands of a comparison must be normalized; the function does not
// guess country codes for short or ambiguous input.
func NormalizeForSearch(phone string) string {
	if phone == "" {
		return phone
	}

	digits, hasPlus := clean(phone)

	switch {
	case len(digits) == 11 && digits[0] == '8':
		return "+7" + digits[1:]
	case len(digits) == 11 && digits[0] == '7' && !hasPlus:
		return "+" + digits
	}

	if hasPlus {
		return "+" + digits
	}
	return digits
}

// Same reports whether two phone numbers refer to the same subscriber once
// both are reduced to their canonical search keys. Two empty inputs are not
// considered the same number.
func Same(a, b string) bool {
	na := NormalizeForSearch(a)
	nb := NormalizeForSearch(b)
	if na == "" || nb == "" {
		return false
	}
	return na == nb
}

// formatRussian expects exactly ten digits (area code plus subscriber).
func formatRussian(d string) string {
	return "+7 (" + d[0:3] + ") " + d[3:6] + "-" + d[6:8] + "-" + d[8:10]
}

// formatInternational expects the country code and exactly ten further digits.
func formatInternational(cc, d string) string {
	return "+" + cc + " (" + d[0:3] + ") " + d[3:6] + "-" + d[6:10]
}
