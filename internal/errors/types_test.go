package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorType_String(t *testing.T) {
	tests := []struct {
		errorType ErrorType
		expected  string
	}{
		{ErrorTypeValidation, "validation"},
		{ErrorTypeNotFound, "not_found"},
		{ErrorTypeDatabase, "database"},
		{ErrorTypeInvalidInput, "invalid_input"},
		{ErrorTypeNoEligibleWork, "no_eligible_work"},
		{ErrorTypeImmutablePayment, "immutable_payment"},
		{ErrorTypeAlreadyConfirmed, "already_confirmed"},
		{ErrorType(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.errorType.String(); got != tt.expected {
				t.Errorf("ErrorType.String() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		expected string
	}{
		{
			name: "error without cause",
			err: &AppError{
				Type:    ErrorTypeNotFound,
				Message: "payment not found: 7",
			},
			expected: "not_found: payment not found: 7",
		},
		{
			name: "error with cause",
			err: &AppError{
				Type:    ErrorTypeDatabase,
				Message: "query failed",
				Cause:   errors.New("connection refused"),
			},
			expected: "database: query failed (caused by: connection refused)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("AppError.Error() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &AppError{Type: ErrorTypeDatabase, Message: "wrapped", Cause: cause}

	if got := err.Unwrap(); got != cause {
		t.Errorf("AppError.Unwrap() = %v, want %v", got, cause)
	}

	wrapped := fmt.Errorf("outer: %w", err)
	if !errors.Is(wrapped, err) {
		t.Error("errors.Is should find AppError through wrapping")
	}
}

func TestAppError_IsType(t *testing.T) {
	err := NewImmutablePaymentError(3)

	if !err.IsType(ErrorTypeImmutablePayment) {
		t.Error("IsType should match ErrorTypeImmutablePayment")
	}
	if err.IsType(ErrorTypeNotFound) {
		t.Error("IsType should not match ErrorTypeNotFound")
	}
}

func TestAppError_WithContext(t *testing.T) {
	err := &AppError{Type: ErrorTypeValidation, Message: "bad range"}
	err.WithContext("field", "date_range")

	value, ok := err.GetContext("field")
	if !ok || value != "date_range" {
		t.Errorf("GetContext(field) = %v, %v; want date_range, true", value, ok)
	}

	_, ok = err.GetContext("missing")
	if ok {
		t.Error("GetContext should report missing keys")
	}
}
