package domain

import "time"

// Freelancer represents a freelancer in the domain model.
// This is a pure domain model without database-specific concerns.
// Freelancers are immutable once created: there is no update flow.
type Freelancer struct {
	ID         int64
	Name       string
	Email      string
	HourlyRate float64
	CreatedAt  time.Time
}

// NewFreelancer creates a new Freelancer with the given identity and rate.
func NewFreelancer(name, email string, hourlyRate float64) Freelancer {
	return Freelancer{
		Name:       name,
		Email:      email,
		HourlyRate: hourlyRate,
	}
}

// IsValid checks if the freelancer has valid data.
func (f Freelancer) IsValid() bool {
	if f.Name == "" || f.Email == "" {
		return false
	}
	return f.HourlyRate >= 0
}

// String returns the freelancer name for display purposes.
func (f Freelancer) String() string {
	return f.Name
}
