package validator

import "strings"

// Fixed per-branch confidence constants. Downstream consumers threshold on
// these exact values; do not recalibrate without coordinating with them.
const (
	confEmailValid     = 0.95
	confEmailInvalid   = 0.3
	confPhoneValid     = 0.9
	confPhoneInvalid   = 0.3
	confWebsiteValid   = 0.9
	confWebsiteInvalid = 0.4
	confPostalValid    = 0.85
	confPostalInvalid  = 0.4
	confGenericText    = 0.8
)

// ValidatePattern classifies a single value against the known structured
// field shapes and proposes a correction where the raw text is recoverable.
//
// The field name selects the shape to check; when it is empty the kind is
// auto-detected from the value's content. Values that resolve to no known
// shape pass as free text with confidence 0.8.
func ValidatePattern(value, field string) Result {
	if strings.TrimSpace(value) == "" {
		return Result{
			Original: value,
			Field:    field,
			Message:  "Empty value",
		}
	}

	switch resolveKind(value, field) {
	case KindEmail:
		return validateEmail(value, field)
	case KindPhone:
		return validatePhone(value, field)
	case KindWebsite:
		return validateWebsite(value, field)
	case KindPostalCode:
		return validatePostalCode(value, field)
	}

	return Result{
		Valid:      true,
		Original:   value,
		Confidence: confGenericText,
		Field:      field,
	}
}

// validateEmail undoes the usual OCR damage (stray spaces, comma for period,
// mixed case) before checking the strict email shape.
func validateEmail(value, field string) Result {
	corrected := strings.ReplaceAll(value, " ", "")
	corrected = strings.ReplaceAll(corrected, ",", ".")
	corrected = strings.ToLower(corrected)

	r := Result{
		Original: value,
		Field:    field,
	}
	if corrected != value {
		r.Corrected = corrected
	}

	if emailRegex.MatchString(corrected) {
		r.Valid = true
		r.Confidence = confEmailValid
		return r
	}

	r.Confidence = confEmailInvalid
	r.Message = "Invalid email format"
	return r
}

// validatePhone regroups the extracted digits into the validator's own
// correction format. This rule table is intentionally separate from the
// display formatter in pkg/phonefmt: its output feeds correction review,
// not rendering, and the two consumers expect different shapes.
func validatePhone(value, field string) Result {
	digits := nonDigitRegex.ReplaceAllString(value, "")

	if len(digits) < 10 {
		return Result{
			Original:   value,
			Confidence: confPhoneInvalid,
			Field:      field,
			Message:    "Phone number too short",
		}
	}

	var formatted string
	switch {
	case len(digits) == 10:
		// No country digit present; assume NANP.
		formatted = "+1 (" + digits[0:3] + ") " + digits[3:6] + "-" + digits[6:10]
	case len(digits) == 11:
		formatted = "+" + digits[0:1] + " (" + digits[1:4] + ") " + digits[4:7] + "-" + digits[7:11]
	default:
		// First two digits are the country code, the rest the subscriber.
		rest := digits[2:]
		formatted = "+" + digits[0:2] + " (" + rest[0:3] + ") " + rest[3:6] + "-" + rest[6:]
	}

	r := Result{
		Valid:      true,
		Original:   value,
		Confidence: confPhoneValid,
		Field:      field,
	}
	if formatted != value {
		r.Corrected = formatted
	}
	return r
}

func validateWebsite(value, field string) Result {
	corrected := strings.ToLower(strings.TrimSpace(value))
	if !strings.HasPrefix(corrected, "http://") && !strings.HasPrefix(corrected, "https://") {
		if strings.HasPrefix(corrected, "www.") {
			corrected = "https://" + corrected
		} else {
			corrected = "https://www." + corrected
		}
	}

	r := Result{
		Original: value,
		Field:    field,
	}
	if corrected != value {
		r.Corrected = corrected
	}

	if websiteRegex.MatchString(corrected) {
		r.Valid = true
		r.Confidence = confWebsiteValid
		return r
	}

	r.Confidence = confWebsiteInvalid
	r.Message = "Invalid website format"
	return r
}

// validatePostalCode accepts 5-digit (US ZIP) and 6-digit (Russian index)
// codes after stripping everything but digits.
func validatePostalCode(value, field string) Result {
	digits := nonDigitRegex.ReplaceAllString(value, "")

	r := Result{
		Original: value,
		Field:    field,
	}
	if digits != "" && digits != value {
		r.Corrected = digits
	}

	if len(digits) == 5 || len(digits) == 6 {
		r.Valid = true
		r.Confidence = confPostalValid
		return r
	}

	r.Confidence = confPostalInvalid
	r.Message = "Invalid postal code format"
	return r
}
