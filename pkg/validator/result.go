package validator

// Result is the verdict for a single field value. It is constructed fresh
// per validation call and never mutated afterwards.
//
// Corrected uses the empty string as its "no correction" sentinel: the
// pipelines only attach a correction that is non-empty and different from
// the original, so the two states cannot collide.
type Result struct {
	// Valid reports whether the original value satisfies the field's rules.
	Valid bool `json:"is_valid"`
	// Original is the input exactly as received.
	Original string `json:"original_value"`
	// Corrected is the proposed substitute value, empty when none is needed.
	Corrected string `json:"corrected_value,omitempty"`
	// Confidence is the fixed per-branch score in [0, 1].
	Confidence float64 `json:"confidence"`
	// Field is the field name the result pertains to, when known.
	Field string `json:"field_name,omitempty"`
	// Message is the human-readable reason for invalidity, empty when valid.
	Message string `json:"error_message,omitempty"`
	// Suggestions holds alternative corrected values, usually empty.
	Suggestions []string `json:"suggestions,omitempty"`
}

// HasCorrection reports whether the validator proposes a substitute value.
func (r Result) HasCorrection() bool {
	return r.Corrected != ""
}

// Value returns the corrected value when one exists, the original otherwise.
func (r Result) Value() string {
	if r.HasCorrection() {
		return r.Corrected
	}
	return r.Original
}

// FieldError is one entry of a Summary's error list: a field that is either
// invalid or was auto-corrected.
type FieldError struct {
	Field     string `json:"field"`
	Message   string `json:"error,omitempty"`
	Original  string `json:"original"`
	Corrected string `json:"corrected,omitempty"`
}

// Summary aggregates the per-field results of a whole record for UI and
// review-queue consumption. It is a pure derivation, never persisted.
type Summary struct {
	TotalFields     int `json:"total_fields"`
	ValidFields     int `json:"valid_fields"`
	CorrectedFields int `json:"corrected_fields"`
	// AvgConfidence is the mean per-field confidence, rounded to 2 decimals;
	// 0 for an empty record.
	AvgConfidence float64 `json:"avg_confidence"`
	// Errors lists every field that is invalid or carries a correction,
	// ordered by field name.
	Errors []FieldError `json:"errors,omitempty"`
	// Valid is true iff every field is valid.
	Valid bool `json:"is_valid"`
}
