package validation

import (
	"time"

	"worklog-billing/internal/domain"
)

// WorkLogFilters holds parsed worklog search filters
type WorkLogFilters struct {
	DateFrom     *time.Time
	DateTo       *time.Time
	FreelancerID *int64
	Status       *string
}

// WorkLogValidator provides validation for worklog-related operations
type WorkLogValidator struct {
	validator *Validator
}

// NewWorkLogValidator creates a new worklog validator
func NewWorkLogValidator() *WorkLogValidator {
	return &WorkLogValidator{
		validator: NewValidator(),
	}
}

// ValidateWorkLogID validates a worklog ID
func (wv *WorkLogValidator) ValidateWorkLogID(id int64) error {
	if !wv.validator.IsValidID(id) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("worklog_id", id, "must be a positive integer")
		return validationError
	}
	return nil
}

// ValidateFilters validates and parses raw worklog search filters.
// Empty strings mean the filter is absent.
func (wv *WorkLogValidator) ValidateFilters(dateFrom, dateTo, status string, freelancerID *int64) (WorkLogFilters, error) {
	validationError := NewValidationError()
	filters := WorkLogFilters{}

	if wv.validator.IsNonEmptyString(dateFrom) {
		parsed, err := wv.validator.ParseDate(wv.validator.TrimAndValidateString(dateFrom))
		if err != nil {
			validationError.AddInvalidFormatError("date_from", dateFrom, DateFormat)
		} else {
			filters.DateFrom = &parsed
		}
	}

	if wv.validator.IsNonEmptyString(dateTo) {
		parsed, err := wv.validator.ParseDate(wv.validator.TrimAndValidateString(dateTo))
		if err != nil {
			validationError.AddInvalidFormatError("date_to", dateTo, DateFormat)
		} else {
			filters.DateTo = &parsed
		}
	}

	if filters.DateFrom != nil && filters.DateTo != nil && !wv.validator.IsValidDateRange(*filters.DateFrom, *filters.DateTo) {
		validationError.AddInvalidRangeError("date_range", dateFrom+".."+dateTo, "date_from must not be after date_to")
	}

	if freelancerID != nil {
		if !wv.validator.IsValidID(*freelancerID) {
			validationError.AddInvalidValueError("freelancer_id", *freelancerID, "must be a positive integer")
		} else {
			filters.FreelancerID = freelancerID
		}
	}

	if wv.validator.IsNonEmptyString(status) {
		trimmed := wv.validator.TrimAndValidateString(status)
		if !domain.WorkLogStatus(trimmed).IsValid() {
			validationError.AddInvalidValueError("status", trimmed, "must be one of: pending, paid")
		} else {
			filters.Status = &trimmed
		}
	}

	if validationError.HasErrors() {
		return WorkLogFilters{}, validationError
	}

	return filters, nil
}
