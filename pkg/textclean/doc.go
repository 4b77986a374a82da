// Package textclean prepares raw OCR output for field validation.
//
// OCR engines emit text with artifacts that every downstream check would
// otherwise have to re-handle: stray control characters, doubled whitespace,
// decomposed Unicode sequences, and leftover punctuation from card layout
// lines. The helpers here strip that noise while leaving the actual content
// untouched; deciding whether the cleaned text is a valid email, phone or
// postal code is the validator's job, not this package's.
//
// Normalize is the standard pipeline (Unicode NFC, control-char strip,
// whitespace collapse); the individual steps are exported for callers that
// need finer control.
//
//	clean := textclean.Normalize("Jane\x00  Doé")
//
// All helpers are stateless, never return errors, and are safe for
// concurrent use.
package textclean
