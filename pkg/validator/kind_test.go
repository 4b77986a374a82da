package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/newwdead/cardkit/pkg/validator"
)

func TestKindForField(t *testing.T) {
	tests := []struct {
		field    string
		expected validator.Kind
	}{
		{validator.FieldEmail, validator.KindEmail},
		{validator.FieldPhone, validator.KindPhone},
		{validator.FieldPhoneMobile, validator.KindPhone},
		{validator.FieldPhoneWork, validator.KindPhone},
		{validator.FieldWebsite, validator.KindWebsite},
		{validator.FieldPostalCode, validator.KindPostalCode},
		{validator.FieldFullName, validator.KindText},
		{validator.FieldNotes, validator.KindText},
		{"custom_field", validator.KindText},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			assert.Equal(t, tt.expected, validator.KindForField(tt.field))
		})
	}
}

func TestIsStructured(t *testing.T) {
	assert.True(t, validator.IsStructured(validator.FieldEmail))
	assert.True(t, validator.IsStructured(validator.FieldPhoneWork))
	assert.False(t, validator.IsStructured(validator.FieldFullName))
	assert.False(t, validator.IsStructured("anything_else"))
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected validator.Kind
	}{
		{
			name:     "at sign marks email",
			value:    "john@example.com",
			expected: validator.KindEmail,
		},
		{
			name:     "long digit run marks phone",
			value:    "call 89991234567 now",
			expected: validator.KindPhone,
		},
		{
			name:     "www prefix marks website",
			value:    "www.example.com",
			expected: validator.KindWebsite,
		},
		{
			name:     "https prefix marks website",
			value:    "https://example.com",
			expected: validator.KindWebsite,
		},
		{
			name:     "email wins over digit run",
			value:    "user1234567@example.com",
			expected: validator.KindEmail,
		},
		{
			name:     "short digit run stays text",
			value:    "suite 123456",
			expected: validator.KindText,
		},
		{
			name:     "plain text",
			value:    "Jane Doe",
			expected: validator.KindText,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, validator.Detect(tt.value))
		})
	}
}
