package services

import (
	"context"
	"time"

	"worklog-billing/internal/domain"
	"worklog-billing/internal/validation"
)

// DateRange represents an inclusive date-only range
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// ContainsDate reports whether the date component of t falls within the range
func (r DateRange) ContainsDate(t time.Time) bool {
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	start := time.Date(r.Start.Year(), r.Start.Month(), r.Start.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(r.End.Year(), r.End.Month(), r.End.Day(), 0, 0, 0, 0, time.UTC)
	return !d.Before(start) && !d.After(end)
}

// WorkLogView represents a worklog with its computed totals and freelancer info
type WorkLogView struct {
	ID              int64     `json:"id"`
	TaskName        string    `json:"task_name"`
	Description     *string   `json:"description"`
	FreelancerID    *int64    `json:"freelancer_id"`
	FreelancerName  *string   `json:"freelancer_name"`
	FreelancerEmail *string   `json:"freelancer_email"`
	HourlyRate      float64   `json:"hourly_rate"`
	TotalHours      float64   `json:"total_hours"`
	EarnedAmount    float64   `json:"earned_amount"`
	Status          string    `json:"status"`
	PaymentID       *int64    `json:"payment_id"`
	CreatedAt       time.Time `json:"created_at"`
}

// TimeEntryView represents a single time entry on a worklog detail
type TimeEntryView struct {
	ID        int64      `json:"id"`
	StartTime *time.Time `json:"start_time"`
	EndTime   *time.Time `json:"end_time"`
	Hours     *float64   `json:"hours"`
	CreatedAt time.Time  `json:"created_at"`
}

// WorkLogDetailView is a worklog view with its time entries attached
type WorkLogDetailView struct {
	WorkLogView
	TimeEntries []TimeEntryView `json:"time_entries"`
}

// PaymentWorkLogItem represents a worklog's contribution to a payment batch
type PaymentWorkLogItem struct {
	ID             int64   `json:"id"`
	TaskName       string  `json:"task_name"`
	FreelancerName *string `json:"freelancer_name"`
	FreelancerID   *int64  `json:"freelancer_id"`
	TotalHours     float64 `json:"total_hours"`
	EarnedAmount   float64 `json:"earned_amount"`
}

// PaymentView represents a payment batch with its included worklogs
type PaymentView struct {
	ID             int64                `json:"id"`
	Status         string               `json:"status"`
	TotalAmount    float64              `json:"total_amount"`
	DateRangeStart time.Time            `json:"date_range_start"`
	DateRangeEnd   time.Time            `json:"date_range_end"`
	CreatedAt      time.Time            `json:"created_at"`
	WorkLogs       []PaymentWorkLogItem `json:"worklogs"`
}

// PaymentListItem represents a payment batch in a listing, with a worklog count
type PaymentListItem struct {
	ID             int64     `json:"id"`
	Status         string    `json:"status"`
	TotalAmount    float64   `json:"total_amount"`
	DateRangeStart time.Time `json:"date_range_start"`
	DateRangeEnd   time.Time `json:"date_range_end"`
	CreatedAt      time.Time `json:"created_at"`
	WorkLogCount   int       `json:"wl_count"`
}

// CreatePaymentInput carries the parameters for creating a payment batch
type CreatePaymentInput struct {
	DateRange             DateRange
	ExcludedWorkLogIDs    []int64
	ExcludedFreelancerIDs []int64
}

// ExcludeResult reports the outcome of removing a worklog from a draft payment
type ExcludeResult struct {
	NewTotal float64 `json:"new_total"`
}

// FreelancerService handles freelancer read operations
type FreelancerService interface {
	ListFreelancers(ctx context.Context) ([]domain.Freelancer, error)
}

// WorkLogService handles worklog read operations with computed totals
type WorkLogService interface {
	ListWorkLogs(ctx context.Context, filters validation.WorkLogFilters) ([]WorkLogView, error)
	GetWorkLogDetail(ctx context.Context, id int64) (*WorkLogDetailView, error)
}

// PaymentService handles the payment batch lifecycle
type PaymentService interface {
	CreatePayment(ctx context.Context, input CreatePaymentInput) (*PaymentView, error)
	ListPayments(ctx context.Context) ([]PaymentListItem, error)
	GetPayment(ctx context.Context, id int64) (*PaymentView, error)
	ConfirmPayment(ctx context.Context, id int64) (*PaymentView, error)
	ExcludeWorkLog(ctx context.Context, paymentID, workLogID int64) (*ExcludeResult, error)
}

// ServiceContainer manages all services and their dependencies
type ServiceContainer struct {
	FreelancerService FreelancerService
	WorkLogService    WorkLogService
	PaymentService    PaymentService
}
