// Package phonefmt formats phone numbers for display and normalizes them into
// a canonical search key.
//
// Business-card OCR yields phone numbers in wildly inconsistent shapes:
// "8 (999) 123-45-67", "+79991234567", "9991234567", "+1 234 567 8901". The
// package resolves these into either a human-readable display string or a
// digits-plus-leading-plus search key that makes differently formatted inputs
// comparable.
//
// Display formatting applies an ordered rule table biased toward Russian
// numbering (the trunk prefix 8 and bare ten-digit local numbers are both
// treated as +7); North American eleven-digit numbers and longer international
// numbers get the generic +CC grouping. The first matching rule wins, and
// anything that matches no rule is returned best-effort with its digits
// preserved.
//
// # Usage
//
//	display := phonefmt.FormatForDisplay("89991234567")
//	// display == "+7 (999) 123-45-67"
//
//	key := phonefmt.NormalizeForSearch("8 (999) 123-45-67")
//	// key == "+79991234567"
//
//	phonefmt.Same("89991234567", "+7 (999) 123-45-67") // true
//
// # Error handling
//
// No function returns an error. Malformed or too-short input degrades to a
// best-effort result, and empty input is returned unchanged.
//
// The package is stateless and safe for concurrent use.
package phonefmt
