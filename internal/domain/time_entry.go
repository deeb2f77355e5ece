package domain

import "time"

// TimeEntry represents a single recorded interval of work belonging to one
// worklog. Hours may be absent; an absent value counts as zero when
// aggregating.
type TimeEntry struct {
	ID        int64
	WorkLogID int64
	StartTime *time.Time
	EndTime   *time.Time
	Hours     *float64
	CreatedAt time.Time
}

// NewTimeEntry creates a new TimeEntry for the given worklog.
func NewTimeEntry(workLogID int64, hours *float64) TimeEntry {
	return TimeEntry{
		WorkLogID: workLogID,
		Hours:     hours,
	}
}

// HoursOrZero returns the recorded hours, treating a missing value as 0.
func (te TimeEntry) HoursOrZero() float64 {
	if te.Hours == nil {
		return 0
	}
	return *te.Hours
}

// IsValid checks if the time entry has valid data.
func (te TimeEntry) IsValid() bool {
	if te.WorkLogID <= 0 {
		return false
	}
	if te.Hours != nil && *te.Hours < 0 {
		return false
	}
	if te.StartTime != nil && te.EndTime != nil && te.EndTime.Before(*te.StartTime) {
		return false
	}
	return true
}
