package domain

import "time"

// WorkLogStatus represents the billing state of a worklog.
type WorkLogStatus string

const (
	WorkLogStatusPending WorkLogStatus = "pending"
	WorkLogStatusPaid    WorkLogStatus = "paid"
)

// IsValid reports whether the status is one of the known values.
func (s WorkLogStatus) IsValid() bool {
	return s == WorkLogStatusPending || s == WorkLogStatusPaid
}

// WorkLog represents a unit of billable work performed by a freelancer.
// Its time entries live in their own entity; a worklog never nests under
// another worklog.
type WorkLog struct {
	ID           int64
	TaskName     string
	Description  *string
	FreelancerID *int64
	Status       WorkLogStatus
	PaymentID    *int64
	CreatedAt    time.Time
}

// NewWorkLog creates a new pending WorkLog for the given task.
func NewWorkLog(taskName string, freelancerID *int64) WorkLog {
	return WorkLog{
		TaskName:     taskName,
		FreelancerID: freelancerID,
		Status:       WorkLogStatusPending,
	}
}

// IsPending returns true if the worklog has not been paid yet.
func (w WorkLog) IsPending() bool {
	return w.Status == WorkLogStatusPending
}

// IsLinked returns true if the worklog belongs to a payment batch.
func (w WorkLog) IsLinked() bool {
	return w.PaymentID != nil
}

// LinkedTo reports whether the worklog belongs to the given payment.
func (w WorkLog) LinkedTo(paymentID int64) bool {
	return w.PaymentID != nil && *w.PaymentID == paymentID
}

// IsValid checks if the worklog has valid data.
func (w WorkLog) IsValid() bool {
	if w.TaskName == "" {
		return false
	}
	return w.Status.IsValid()
}

// String returns the task name for display purposes.
func (w WorkLog) String() string {
	return w.TaskName
}
