package validation

import (
	"time"
)

// PaymentValidator provides validation for payment-related operations
type PaymentValidator struct {
	validator *Validator
}

// NewPaymentValidator creates a new payment validator
func NewPaymentValidator() *PaymentValidator {
	return &PaymentValidator{
		validator: NewValidator(),
	}
}

// ValidateDateRange validates and parses a payment date range
func (pv *PaymentValidator) ValidateDateRange(start, end string) (time.Time, time.Time, error) {
	validationError := NewValidationError()

	start = pv.validator.TrimAndValidateString(start)
	end = pv.validator.TrimAndValidateString(end)

	if !pv.validator.IsNonEmptyString(start) {
		validationError.AddRequiredError("date_range_start")
	}
	if !pv.validator.IsNonEmptyString(end) {
		validationError.AddRequiredError("date_range_end")
	}
	if validationError.HasErrors() {
		return time.Time{}, time.Time{}, validationError
	}

	startDate, err := pv.validator.ParseDate(start)
	if err != nil {
		validationError.AddInvalidFormatError("date_range_start", start, DateFormat)
	}
	endDate, err := pv.validator.ParseDate(end)
	if err != nil {
		validationError.AddInvalidFormatError("date_range_end", end, DateFormat)
	}
	if validationError.HasErrors() {
		return time.Time{}, time.Time{}, validationError
	}

	if !pv.validator.IsValidDateRange(startDate, endDate) {
		validationError.AddInvalidRangeError("date_range", start+".."+end, "start date must not be after end date")
		return time.Time{}, time.Time{}, validationError
	}

	return startDate, endDate, nil
}

// ValidatePaymentID validates a payment ID
func (pv *PaymentValidator) ValidatePaymentID(id int64) error {
	if !pv.validator.IsValidID(id) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("payment_id", id, "must be a positive integer")
		return validationError
	}
	return nil
}
