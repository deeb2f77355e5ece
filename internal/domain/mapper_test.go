package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"worklog-billing/internal/repository/sqlite"
)

func TestWorkLogMapper_RoundTrip(t *testing.T) {
	mapper := NewWorkLogMapper()
	freelancerID := int64(3)
	paymentID := int64(8)
	description := "Checkout flow rework"

	original := WorkLog{
		ID:           1,
		TaskName:     "Checkout",
		Description:  &description,
		FreelancerID: &freelancerID,
		Status:       WorkLogStatusPending,
		PaymentID:    &paymentID,
		CreatedAt:    time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC),
	}

	converted := mapper.FromDatabase(mapper.ToDatabase(original))
	assert.Equal(t, original, converted)
}

func TestWorkLogMapper_NilReferences(t *testing.T) {
	mapper := NewWorkLogMapper()

	original := WorkLog{ID: 2, TaskName: "Solo task", Status: WorkLogStatusPaid}

	dbWorkLog := mapper.ToDatabase(original)
	assert.Nil(t, dbWorkLog.FreelancerID)
	assert.Nil(t, dbWorkLog.PaymentID)
	assert.Nil(t, dbWorkLog.Description)

	converted := mapper.FromDatabase(dbWorkLog)
	assert.Equal(t, original, converted)
}

func TestTimeEntryMapper_RoundTrip(t *testing.T) {
	mapper := NewTimeEntryMapper()
	start := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)
	hours := 2.0

	original := TimeEntry{
		ID:        1,
		WorkLogID: 4,
		StartTime: &start,
		EndTime:   &end,
		Hours:     &hours,
		CreatedAt: time.Date(2026, 2, 1, 11, 0, 0, 0, time.UTC),
	}

	converted := mapper.FromDatabase(mapper.ToDatabase(original))
	assert.Equal(t, original, converted)
}

func TestPaymentMapper_RoundTrip(t *testing.T) {
	mapper := NewPaymentMapper()

	original := Payment{
		ID:             5,
		Status:         PaymentStatusConfirmed,
		TotalAmount:    199.99,
		DateRangeStart: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		DateRangeEnd:   time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC),
		CreatedAt:      time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
	}

	converted := mapper.FromDatabase(mapper.ToDatabase(original))
	assert.Equal(t, original, converted)
}

func TestFreelancerMapper_FromDatabaseSlice(t *testing.T) {
	mapper := NewFreelancerMapper()

	dbFreelancers := []*sqlite.Freelancer{
		{ID: 1, Name: "Ada", Email: "ada@example.com", HourlyRate: 50},
		{ID: 2, Name: "Bob", Email: "bob@example.com", HourlyRate: 75},
	}

	result := mapper.FromDatabaseSlice(dbFreelancers)

	assert.Len(t, result, 2)
	assert.Equal(t, "Ada", result[0].Name)
	assert.Equal(t, 75.0, result[1].HourlyRate)
}

func TestNewMapper(t *testing.T) {
	mapper := NewMapper()

	assert.NotNil(t, mapper)
	assert.NotNil(t, mapper.Freelancer)
	assert.NotNil(t, mapper.WorkLog)
	assert.NotNil(t, mapper.TimeEntry)
	assert.NotNil(t, mapper.Payment)
}
