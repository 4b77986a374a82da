package validator

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"strings"
)

// Confidence constants for the policy layer.
const (
	confEmptyOptional = 1.0
	confTruncated     = 0.5
)

// defaultMaxLength caps any field without an explicit entry in the table.
const defaultMaxLength = 500

// defaultMaxLengths mirrors the column widths of the contact store; the
// validator truncates rather than letting the database reject the row.
var defaultMaxLengths = map[string]int{
	FieldFullName:    200,
	FieldCompany:     200,
	FieldPosition:    200,
	FieldEmail:       100,
	FieldPhone:       50,
	FieldPhoneMobile: 50,
	FieldPhoneWork:   50,
	FieldWebsite:     200,
	FieldAddress:     300,
	FieldNotes:       1000,
	FieldPostalCode:  20,
}

// Policy applies record-level validation rules: required fields, per-field
// length caps, and delegation to the pattern layer for structured fields.
// Its configuration tables are fixed at construction; a Policy is safe for
// concurrent use.
type Policy struct {
	required   map[string]struct{}
	maxLengths map[string]int
	defaultMax int
}

// PolicyOption overrides a Policy configuration table at construction.
type PolicyOption func(*Policy)

// WithRequiredFields replaces the default required-field set (full_name).
func WithRequiredFields(fields ...string) PolicyOption {
	return func(p *Policy) {
		p.required = make(map[string]struct{}, len(fields))
		for _, f := range fields {
			p.required[f] = struct{}{}
		}
	}
}

// WithMaxLength overrides the length cap for a single field.
func WithMaxLength(field string, limit int) PolicyOption {
	return func(p *Policy) {
		if limit > 0 {
			p.maxLengths[field] = limit
		}
	}
}

// WithDefaultMaxLength overrides the cap applied to fields without an
// explicit table entry.
func WithDefaultMaxLength(limit int) PolicyOption {
	return func(p *Policy) {
		if limit > 0 {
			p.defaultMax = limit
		}
	}
}

// NewPolicy builds a Policy with the standard contact-field tables, applying
// any overrides.
func NewPolicy(opts ...PolicyOption) *Policy {
	p := &Policy{
		required:   map[string]struct{}{FieldFullName: {}},
		maxLengths: maps.Clone(defaultMaxLengths),
		defaultMax: defaultMaxLength,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Required reports whether a field must be present and non-empty.
func (p *Policy) Required(field string) bool {
	_, ok := p.required[field]
	return ok
}

// MaxLength returns the length cap for a field, in runes.
func (p *Policy) MaxLength(field string) int {
	if limit, ok := p.maxLengths[field]; ok {
		return limit
	}
	return p.defaultMax
}

// Validate applies the policy rules to a single field value.
//
// The field name is the one hard precondition: without it no rule can be
// selected, and the call returns an invalid Result rather than panicking.
// Empty values are acceptable for optional fields, over-long values come
// back invalid with a truncation proposed as the correction, structured
// fields are handed to the pattern layer, and everything else passes as
// free text.
func (p *Policy) Validate(value, field string) Result {
	if field == "" {
		return Result{
			Original: value,
			Message:  "Field name required",
		}
	}

	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		if p.Required(field) {
			return Result{
				Original: value,
				Field:    field,
				Message:  "Required field is empty",
			}
		}
		return Result{
			Valid:      true,
			Original:   value,
			Confidence: confEmptyOptional,
			Field:      field,
		}
	}

	// Rune count, not bytes: OCR text is frequently Cyrillic.
	if runes, limit := []rune(trimmed), p.MaxLength(field); len(runes) > limit {
		return Result{
			Original:   value,
			Corrected:  string(runes[:limit]),
			Confidence: confTruncated,
			Field:      field,
			Message:    fmt.Sprintf("Value exceeds maximum length of %d characters", limit),
		}
	}

	if IsStructured(field) {
		return ValidatePattern(trimmed, field)
	}

	return Result{
		Valid:      true,
		Original:   value,
		Confidence: confGenericText,
		Field:      field,
	}
}

// ValidateAll validates every field of a record and synthesizes a missing
// verdict for required fields absent from the record entirely. The
// present-but-empty case is reported as "Required field is empty" instead.
func (p *Policy) ValidateAll(record map[string]string) map[string]Result {
	results := make(map[string]Result, len(record)+len(p.required))
	for field, value := range record {
		results[field] = p.Validate(value, field)
	}
	for field := range p.required {
		if _, ok := record[field]; !ok {
			results[field] = Result{
				Field:   field,
				Message: "Required field missing",
			}
		}
	}
	return results
}

// CorrectedData derives the cleaned record: per input field, the corrected
// value when one was proposed, the original value otherwise. Fields absent
// from the input are omitted, not synthesized.
func (p *Policy) CorrectedData(record map[string]string) map[string]string {
	results := p.ValidateAll(record)
	corrected := make(map[string]string, len(record))
	for field, value := range record {
		if r := results[field]; r.HasCorrection() {
			corrected[field] = r.Corrected
		} else {
			corrected[field] = value
		}
	}
	return corrected
}

// Summarize validates a record and aggregates the per-field results. The
// error list includes every field that is invalid or was corrected; a valid
// field with a correction still qualifies.
func (p *Policy) Summarize(record map[string]string) Summary {
	results := p.ValidateAll(record)

	s := Summary{
		TotalFields: len(results),
		Valid:       true,
	}

	var confidenceSum float64
	for _, field := range slices.Sorted(maps.Keys(results)) {
		r := results[field]
		confidenceSum += r.Confidence

		if r.Valid {
			s.ValidFields++
		} else {
			s.Valid = false
		}
		if r.HasCorrection() {
			s.CorrectedFields++
		}
		if !r.Valid || r.HasCorrection() {
			s.Errors = append(s.Errors, FieldError{
				Field:     field,
				Message:   r.Message,
				Original:  r.Original,
				Corrected: r.Corrected,
			})
		}
	}

	if s.TotalFields > 0 {
		s.AvgConfidence = math.Round(confidenceSum/float64(s.TotalFields)*100) / 100
	}
	return s
}
