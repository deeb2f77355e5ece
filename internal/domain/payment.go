package domain

import "time"

// PaymentStatus represents the lifecycle state of a payment batch.
type PaymentStatus string

const (
	PaymentStatusDraft     PaymentStatus = "draft"
	PaymentStatusConfirmed PaymentStatus = "confirmed"
)

// IsValid reports whether the status is one of the known values.
func (s PaymentStatus) IsValid() bool {
	return s == PaymentStatusDraft || s == PaymentStatusConfirmed
}

// Payment represents a batch grouping worklogs for settlement. The status
// transition is one-way: draft to confirmed. TotalAmount is derived from the
// linked worklogs and rounded to two decimals when computed.
type Payment struct {
	ID             int64
	Status         PaymentStatus
	TotalAmount    float64
	DateRangeStart time.Time
	DateRangeEnd   time.Time
	CreatedAt      time.Time
}

// NewPayment creates a new draft Payment covering the given date range.
func NewPayment(totalAmount float64, rangeStart, rangeEnd time.Time) Payment {
	return Payment{
		Status:         PaymentStatusDraft,
		TotalAmount:    totalAmount,
		DateRangeStart: rangeStart,
		DateRangeEnd:   rangeEnd,
		CreatedAt:      time.Now(),
	}
}

// IsDraft returns true while membership and total may still change.
func (p Payment) IsDraft() bool {
	return p.Status == PaymentStatusDraft
}

// IsConfirmed returns true once the payment is frozen.
func (p Payment) IsConfirmed() bool {
	return p.Status == PaymentStatusConfirmed
}

// IsValid checks if the payment has valid data.
func (p Payment) IsValid() bool {
	if !p.Status.IsValid() {
		return false
	}
	if p.TotalAmount < 0 {
		return false
	}
	return !p.DateRangeEnd.Before(p.DateRangeStart)
}
