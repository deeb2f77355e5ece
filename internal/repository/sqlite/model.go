package sqlite

import "time"

// Freelancer represents a freelancer row
type Freelancer struct {
	ID         int64
	Name       string
	Email      string
	HourlyRate float64
	CreatedAt  time.Time
}

// WorkLog represents a billable task row
// Task and time entry are separate tables; a worklog never parents another worklog
type WorkLog struct {
	ID           int64
	TaskName     string
	Description  *string
	FreelancerID *int64 // Using pointer to allow NULL values
	Status       string
	PaymentID    *int64
	CreatedAt    time.Time
}

// TimeEntry represents a recorded interval of work belonging to one worklog
type TimeEntry struct {
	ID        int64
	WorkLogID int64
	StartTime *time.Time
	EndTime   *time.Time
	Hours     *float64
	CreatedAt time.Time
}

// Payment represents a payment batch row
type Payment struct {
	ID             int64
	Status         string
	TotalAmount    float64
	DateRangeStart time.Time // date-only
	DateRangeEnd   time.Time // date-only
	CreatedAt      time.Time
}

// SearchOptions contains all possible worklog search parameters
type SearchOptions struct {
	DateFrom     *time.Time // filter on created_at date, inclusive
	DateTo       *time.Time // filter on created_at date, inclusive
	FreelancerID *int64
	Status       *string
}
