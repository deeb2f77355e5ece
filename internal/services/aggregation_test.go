package services

import (
	"testing"

	"worklog-billing/internal/domain"

	"github.com/stretchr/testify/assert"
)

func hoursPtr(h float64) *float64 { return &h }

func TestAggregate(t *testing.T) {
	freelancer := &domain.Freelancer{ID: 1, Name: "Alice", HourlyRate: 50}

	tests := []struct {
		name       string
		entries    []domain.TimeEntry
		freelancer *domain.Freelancer
		wantHours  float64
		wantAmount float64
	}{
		{
			name: "Two entries at fifty per hour",
			entries: []domain.TimeEntry{
				{Hours: hoursPtr(2)},
				{Hours: hoursPtr(3)},
			},
			freelancer: freelancer,
			wantHours:  5,
			wantAmount: 250,
		},
		{
			name:       "No entries",
			entries:    nil,
			freelancer: freelancer,
			wantHours:  0,
			wantAmount: 0,
		},
		{
			name: "Missing hours count as zero",
			entries: []domain.TimeEntry{
				{Hours: hoursPtr(1.5)},
				{Hours: nil},
			},
			freelancer: freelancer,
			wantHours:  1.5,
			wantAmount: 75,
		},
		{
			name: "No freelancer means zero rate",
			entries: []domain.TimeEntry{
				{Hours: hoursPtr(4)},
			},
			freelancer: nil,
			wantHours:  4,
			wantAmount: 0,
		},
		{
			name: "Fractional hours",
			entries: []domain.TimeEntry{
				{Hours: hoursPtr(0.25)},
				{Hours: hoursPtr(0.75)},
			},
			freelancer: &domain.Freelancer{HourlyRate: 33.5},
			wantHours:  1,
			wantAmount: 33.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			totals := Aggregate(tt.entries, tt.freelancer)
			assert.Equal(t, tt.wantHours, totals.Hours)
			assert.InDelta(t, tt.wantAmount, totals.Amount, 1e-9)
		})
	}
}

func TestAggregate_Deterministic(t *testing.T) {
	entries := []domain.TimeEntry{
		{Hours: hoursPtr(1.1)},
		{Hours: hoursPtr(2.2)},
		{Hours: hoursPtr(3.3)},
	}
	freelancer := &domain.Freelancer{HourlyRate: 42.42}

	first := Aggregate(entries, freelancer)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Aggregate(entries, freelancer))
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{1.005, 1.0},
		{1.015, 1.01},
		{2.675, 2.67},
		{249.999, 250.0},
		{100.125, 100.13},
		{-1.004, -1.0},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, Round2(tt.in), 1e-9, "Round2(%v)", tt.in)
	}
}

func TestSumAmounts(t *testing.T) {
	totals := []Totals{
		{Hours: 1, Amount: 10},
		{Hours: 2, Amount: 20},
		{Hours: 3, Amount: 30},
	}
	assert.Equal(t, 60.0, SumAmounts(totals))
	assert.Equal(t, 0.0, SumAmounts(nil))
}
