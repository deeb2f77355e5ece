package services

import (
	"math"

	"worklog-billing/internal/domain"
)

// Totals holds the computed hours and earnings for a set of time entries
type Totals struct {
	Hours  float64
	Amount float64
}

// Aggregate computes the total hours and earned amount for a worklog's
// time entries. Entries without hours count as zero; a missing freelancer
// means a zero rate. Every place that derives a total goes through here.
func Aggregate(entries []domain.TimeEntry, freelancer *domain.Freelancer) Totals {
	hours := 0.0
	for _, entry := range entries {
		hours += entry.HoursOrZero()
	}

	rate := 0.0
	if freelancer != nil {
		rate = freelancer.HourlyRate
	}

	return Totals{
		Hours:  hours,
		Amount: hours * rate,
	}
}

// SumAmounts adds up the earned amounts of multiple totals
func SumAmounts(totals []Totals) float64 {
	sum := 0.0
	for _, t := range totals {
		sum += t.Amount
	}
	return sum
}

// Round2 rounds a monetary amount to 2 decimal places. Applied once at the
// moment a total is computed, never to an already-rounded value plus a delta.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
