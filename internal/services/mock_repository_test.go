package services

import (
	"context"
	"fmt"
	"time"

	"worklog-billing/internal/errors"
	"worklog-billing/internal/repository/sqlite"
)

// mockRepository is an in-memory Repository implementation for service tests
type mockRepository struct {
	freelancers []*sqlite.Freelancer
	workLogs    []*sqlite.WorkLog
	timeEntries []*sqlite.TimeEntry
	payments    []*sqlite.Payment
	nextID      int64

	// when set, list operations fail with this error
	listErr error
}

func newMockRepository() *mockRepository {
	return &mockRepository{}
}

func (m *mockRepository) id() int64 {
	m.nextID++
	return m.nextID
}

func (m *mockRepository) addFreelancer(name string, rate float64) *sqlite.Freelancer {
	f := &sqlite.Freelancer{
		ID:         m.id(),
		Name:       name,
		Email:      name + "@example.com",
		HourlyRate: rate,
		CreatedAt:  time.Now(),
	}
	m.freelancers = append(m.freelancers, f)
	return f
}

func (m *mockRepository) addWorkLog(taskName string, freelancerID *int64, createdAt time.Time) *sqlite.WorkLog {
	wl := &sqlite.WorkLog{
		ID:           m.id(),
		TaskName:     taskName,
		FreelancerID: freelancerID,
		Status:       "pending",
		CreatedAt:    createdAt,
	}
	m.workLogs = append(m.workLogs, wl)
	return wl
}

func (m *mockRepository) addHours(workLogID int64, hours float64) *sqlite.TimeEntry {
	entry := &sqlite.TimeEntry{
		ID:        m.id(),
		WorkLogID: workLogID,
		Hours:     &hours,
		CreatedAt: time.Now(),
	}
	m.timeEntries = append(m.timeEntries, entry)
	return entry
}

func (m *mockRepository) CreateFreelancer(ctx context.Context, freelancer *sqlite.Freelancer) error {
	freelancer.ID = m.id()
	m.freelancers = append(m.freelancers, freelancer)
	return nil
}

func (m *mockRepository) GetFreelancer(ctx context.Context, id int64) (*sqlite.Freelancer, error) {
	for _, f := range m.freelancers {
		if f.ID == id {
			copied := *f
			return &copied, nil
		}
	}
	return nil, errors.NewNotFoundError("freelancer", fmt.Sprintf("%d", id))
}

func (m *mockRepository) ListFreelancers(ctx context.Context) ([]*sqlite.Freelancer, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.freelancers, nil
}

func (m *mockRepository) CreateWorkLog(ctx context.Context, workLog *sqlite.WorkLog) error {
	workLog.ID = m.id()
	m.workLogs = append(m.workLogs, workLog)
	return nil
}

func (m *mockRepository) GetWorkLog(ctx context.Context, id int64) (*sqlite.WorkLog, error) {
	for _, wl := range m.workLogs {
		if wl.ID == id {
			copied := *wl
			return &copied, nil
		}
	}
	return nil, errors.NewNotFoundError("worklog", fmt.Sprintf("%d", id))
}

func (m *mockRepository) UpdateWorkLog(ctx context.Context, workLog *sqlite.WorkLog) error {
	for i, wl := range m.workLogs {
		if wl.ID == workLog.ID {
			copied := *workLog
			m.workLogs[i] = &copied
			return nil
		}
	}
	return errors.NewNotFoundError("worklog", fmt.Sprintf("%d", workLog.ID))
}

func (m *mockRepository) ListWorkLogs(ctx context.Context, opts sqlite.SearchOptions) ([]*sqlite.WorkLog, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var results []*sqlite.WorkLog
	for _, wl := range m.workLogs {
		if opts.DateFrom != nil && dateOf(wl.CreatedAt).Before(dateOf(*opts.DateFrom)) {
			continue
		}
		if opts.DateTo != nil && dateOf(wl.CreatedAt).After(dateOf(*opts.DateTo)) {
			continue
		}
		if opts.FreelancerID != nil && (wl.FreelancerID == nil || *wl.FreelancerID != *opts.FreelancerID) {
			continue
		}
		if opts.Status != nil && wl.Status != *opts.Status {
			continue
		}
		results = append(results, wl)
	}
	return results, nil
}

func (m *mockRepository) ListPendingWorkLogs(ctx context.Context) ([]*sqlite.WorkLog, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var results []*sqlite.WorkLog
	for _, wl := range m.workLogs {
		if wl.Status == "pending" && wl.PaymentID == nil {
			results = append(results, wl)
		}
	}
	return results, nil
}

func (m *mockRepository) ListWorkLogsByPayment(ctx context.Context, paymentID int64) ([]*sqlite.WorkLog, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var results []*sqlite.WorkLog
	for _, wl := range m.workLogs {
		if wl.PaymentID != nil && *wl.PaymentID == paymentID {
			results = append(results, wl)
		}
	}
	return results, nil
}

func (m *mockRepository) CreateTimeEntry(ctx context.Context, entry *sqlite.TimeEntry) error {
	entry.ID = m.id()
	m.timeEntries = append(m.timeEntries, entry)
	return nil
}

func (m *mockRepository) ListTimeEntries(ctx context.Context, workLogID int64) ([]*sqlite.TimeEntry, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var results []*sqlite.TimeEntry
	for _, entry := range m.timeEntries {
		if entry.WorkLogID == workLogID {
			results = append(results, entry)
		}
	}
	return results, nil
}

func (m *mockRepository) CreatePayment(ctx context.Context, payment *sqlite.Payment) error {
	payment.ID = m.id()
	copied := *payment
	m.payments = append(m.payments, &copied)
	return nil
}

func (m *mockRepository) GetPayment(ctx context.Context, id int64) (*sqlite.Payment, error) {
	for _, p := range m.payments {
		if p.ID == id {
			copied := *p
			return &copied, nil
		}
	}
	return nil, errors.NewNotFoundError("payment", fmt.Sprintf("%d", id))
}

func (m *mockRepository) UpdatePayment(ctx context.Context, payment *sqlite.Payment) error {
	for i, p := range m.payments {
		if p.ID == payment.ID {
			copied := *payment
			m.payments[i] = &copied
			return nil
		}
	}
	return errors.NewNotFoundError("payment", fmt.Sprintf("%d", payment.ID))
}

func (m *mockRepository) ListPayments(ctx context.Context) ([]*sqlite.Payment, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.payments, nil
}

func (m *mockRepository) Transact(ctx context.Context, fn func(sqlite.Repository) error) error {
	return fn(m)
}

func (m *mockRepository) Close() error {
	return nil
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
