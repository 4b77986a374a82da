package validator

import "strings"

// Canonical contact field names. The vocabulary is extensible: any other
// field name is handled as free text.
const (
	FieldFullName    = "full_name"
	FieldCompany     = "company"
	FieldPosition    = "position"
	FieldEmail       = "email"
	FieldPhone       = "phone"
	FieldPhoneMobile = "phone_mobile"
	FieldPhoneWork   = "phone_work"
	FieldWebsite     = "website"
	FieldAddress     = "address"
	FieldNotes       = "notes"
	FieldPostalCode  = "postal_code"
)

// Kind is the structural category a value is validated against.
type Kind string

const (
	KindEmail      Kind = "email"
	KindPhone      Kind = "phone"
	KindWebsite    Kind = "website"
	KindPostalCode Kind = "postal_code"
	// KindText is the permissive fallback for free-text fields.
	KindText Kind = "text"
)

// kindByField maps structured field names to their validation kind. Fields
// not listed here are free text.
var kindByField = map[string]Kind{
	FieldEmail:       KindEmail,
	FieldPhone:       KindPhone,
	FieldPhoneMobile: KindPhone,
	FieldPhoneWork:   KindPhone,
	FieldWebsite:     KindWebsite,
	FieldPostalCode:  KindPostalCode,
}

// KindForField returns the validation kind for a field name. Unknown field
// names resolve to KindText.
func KindForField(field string) Kind {
	if k, ok := kindByField[field]; ok {
		return k
	}
	return KindText
}

// IsStructured reports whether a field name has a dedicated pattern check.
func IsStructured(field string) bool {
	_, ok := kindByField[field]
	return ok
}

// Detect guesses the kind of a value from its content alone, for callers
// that have a raw OCR line but no field assignment yet. Checks run in
// priority order; values matching nothing resolve to KindText.
func Detect(value string) Kind {
	switch {
	case strings.Contains(value, "@"):
		return KindEmail
	case digitRunRegex.MatchString(value):
		return KindPhone
	case hasWebsitePrefix(value):
		return KindWebsite
	}
	return KindText
}

func hasWebsitePrefix(value string) bool {
	v := strings.ToLower(strings.TrimSpace(value))
	return strings.HasPrefix(v, "http://") ||
		strings.HasPrefix(v, "https://") ||
		strings.HasPrefix(v, "www.")
}

// resolveKind picks the kind for a validation call: an explicit field name
// wins, content detection covers the nameless case.
func resolveKind(value, field string) Kind {
	if field != "" {
		return KindForField(field)
	}
	return Detect(value)
}
