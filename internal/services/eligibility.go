package services

import (
	"worklog-billing/internal/domain"
	"worklog-billing/internal/errors"
)

// EligibilityCriteria describes which pending worklogs qualify for a payment batch
type EligibilityCriteria struct {
	Window                DateRange
	ExcludedWorkLogIDs    []int64
	ExcludedFreelancerIDs []int64
}

// SelectEligible filters pending worklogs down to those created inside the
// date window and not explicitly excluded by worklog or freelancer ID.
// Input order is preserved. An empty result is not an error here; callers
// that require at least one eligible worklog enforce that themselves.
func SelectEligible(workLogs []domain.WorkLog, criteria EligibilityCriteria) ([]domain.WorkLog, error) {
	if criteria.Window.End.Before(criteria.Window.Start) {
		return nil, errors.NewValidationError("date_range_end must be after date_range_start", nil)
	}

	excludedWorkLogs := make(map[int64]bool, len(criteria.ExcludedWorkLogIDs))
	for _, id := range criteria.ExcludedWorkLogIDs {
		excludedWorkLogs[id] = true
	}
	excludedFreelancers := make(map[int64]bool, len(criteria.ExcludedFreelancerIDs))
	for _, id := range criteria.ExcludedFreelancerIDs {
		excludedFreelancers[id] = true
	}

	var eligible []domain.WorkLog
	for _, wl := range workLogs {
		if !wl.IsPending() {
			continue
		}
		if !criteria.Window.ContainsDate(wl.CreatedAt) {
			continue
		}
		if excludedWorkLogs[wl.ID] {
			continue
		}
		if wl.FreelancerID != nil && excludedFreelancers[*wl.FreelancerID] {
			continue
		}
		eligible = append(eligible, wl)
	}

	return eligible, nil
}
