// Package validator decides, per contact field, whether an OCR-extracted
// string is acceptable, what corrected value to substitute, and with what
// confidence.
//
// The package has two entry points. ValidatePattern classifies a single value
// against the known structured field shapes (email, phone, website, postal
// code) and proposes a correction where the raw text is recoverable: OCR
// commonly turns "john@example.com" into "John@EXAMPLE,com", and the email
// branch undoes exactly that class of damage. Policy wraps the pattern layer
// with record-level rules: required fields, per-field length caps with
// truncation corrections, and a permissive default for free-text fields.
//
// Every check returns a Result value rather than an error. A Result carries
// the verdict, the original value, an optional corrected value, and a fixed
// per-branch confidence score in [0, 1] that downstream consumers use to rank
// and flag records for manual review. The confidence constants are calibration
// points, not probabilities; changing them breaks any caller that thresholds
// on them.
//
// # Usage
//
//	p := validator.NewPolicy()
//
//	results := p.ValidateAll(map[string]string{
//	    "full_name": "Jane Doe",
//	    "email":     "Jane@EXAMPLE,com",
//	})
//	corrected := p.CorrectedData(fields) // cleaned record
//	summary := p.Summarize(fields)       // aggregate stats for UI / review queue
//
// # Error handling
//
// Malformed input is never signaled through Go errors or panics: a missing
// field name, an empty value, or unrecoverable garbage all come back as an
// invalid Result with confidence 0 and a human-readable Message. Callers
// check Result.Valid, not err.
//
// All state is fixed at construction; the package is safe for concurrent use.
package validator
