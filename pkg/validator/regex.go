package validator

import "regexp"

// Pre-compiled regular expressions for performance
var (
	// Strict email shape: local@domain.tld with a 2+ letter TLD.
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

	// URL shape: scheme, dot-separated host with a 2+ letter TLD, optional path.
	websiteRegex = regexp.MustCompile(`^https?://([a-zA-Z0-9\-]+\.)+[a-zA-Z]{2,}(/\S*)?$`)

	// Digit extraction for phone and postal-code correction.
	nonDigitRegex = regexp.MustCompile(`\D`)

	// A run of 7+ digits marks a value as phone-like during auto-detection.
	digitRunRegex = regexp.MustCompile(`\d{7,}`)
)
