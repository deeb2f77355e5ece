package validation

import (
	"strings"
	"time"
)

// DateFormat is the wire format for date-only values.
const DateFormat = "2006-01-02"

// Validator provides common validation utilities
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidID checks if an entity ID is valid (positive)
func (v *Validator) IsValidID(id int64) bool {
	return id > 0
}

// IsValidDate checks if a string parses as a date-only value
func (v *Validator) IsValidDate(s string) bool {
	_, err := time.Parse(DateFormat, s)
	return err == nil
}

// ParseDate parses a date-only value
func (v *Validator) ParseDate(s string) (time.Time, error) {
	return time.Parse(DateFormat, s)
}

// IsValidDateRange checks that start does not come after end
func (v *Validator) IsValidDateRange(start, end time.Time) bool {
	return start.Before(end) || start.Equal(end)
}

// IsNonNegative checks if a numeric value is zero or greater
func (v *Validator) IsNonNegative(n float64) bool {
	return n >= 0
}

// TrimAndValidateString trims whitespace and returns the cleaned string
func (v *Validator) TrimAndValidateString(s string) string {
	return strings.TrimSpace(s)
}
