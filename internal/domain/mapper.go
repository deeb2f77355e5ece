package domain

import (
	"worklog-billing/internal/repository/sqlite"
)

// FreelancerMapper handles conversion between domain and database Freelancer models.
type FreelancerMapper struct{}

// NewFreelancerMapper creates a new FreelancerMapper instance.
func NewFreelancerMapper() *FreelancerMapper {
	return &FreelancerMapper{}
}

// ToDatabase converts a domain Freelancer to a database Freelancer.
func (m *FreelancerMapper) ToDatabase(freelancer Freelancer) sqlite.Freelancer {
	return sqlite.Freelancer{
		ID:         freelancer.ID,
		Name:       freelancer.Name,
		Email:      freelancer.Email,
		HourlyRate: freelancer.HourlyRate,
		CreatedAt:  freelancer.CreatedAt,
	}
}

// FromDatabase converts a database Freelancer to a domain Freelancer.
func (m *FreelancerMapper) FromDatabase(dbFreelancer sqlite.Freelancer) Freelancer {
	return Freelancer{
		ID:         dbFreelancer.ID,
		Name:       dbFreelancer.Name,
		Email:      dbFreelancer.Email,
		HourlyRate: dbFreelancer.HourlyRate,
		CreatedAt:  dbFreelancer.CreatedAt,
	}
}

// FromDatabaseSlice converts a slice of database Freelancers to domain Freelancers.
func (m *FreelancerMapper) FromDatabaseSlice(dbFreelancers []*sqlite.Freelancer) []Freelancer {
	freelancers := make([]Freelancer, len(dbFreelancers))
	for i, f := range dbFreelancers {
		freelancers[i] = m.FromDatabase(*f)
	}
	return freelancers
}

// WorkLogMapper handles conversion between domain and database WorkLog models.
type WorkLogMapper struct{}

// NewWorkLogMapper creates a new WorkLogMapper instance.
func NewWorkLogMapper() *WorkLogMapper {
	return &WorkLogMapper{}
}

// ToDatabase converts a domain WorkLog to a database WorkLog.
func (m *WorkLogMapper) ToDatabase(workLog WorkLog) sqlite.WorkLog {
	return sqlite.WorkLog{
		ID:           workLog.ID,
		TaskName:     workLog.TaskName,
		Description:  workLog.Description,
		FreelancerID: workLog.FreelancerID,
		Status:       string(workLog.Status),
		PaymentID:    workLog.PaymentID,
		CreatedAt:    workLog.CreatedAt,
	}
}

// FromDatabase converts a database WorkLog to a domain WorkLog.
func (m *WorkLogMapper) FromDatabase(dbWorkLog sqlite.WorkLog) WorkLog {
	return WorkLog{
		ID:           dbWorkLog.ID,
		TaskName:     dbWorkLog.TaskName,
		Description:  dbWorkLog.Description,
		FreelancerID: dbWorkLog.FreelancerID,
		Status:       WorkLogStatus(dbWorkLog.Status),
		PaymentID:    dbWorkLog.PaymentID,
		CreatedAt:    dbWorkLog.CreatedAt,
	}
}

// FromDatabaseSlice converts a slice of database WorkLogs to domain WorkLogs.
func (m *WorkLogMapper) FromDatabaseSlice(dbWorkLogs []*sqlite.WorkLog) []WorkLog {
	workLogs := make([]WorkLog, len(dbWorkLogs))
	for i, wl := range dbWorkLogs {
		workLogs[i] = m.FromDatabase(*wl)
	}
	return workLogs
}

// TimeEntryMapper handles conversion between domain and database TimeEntry models.
type TimeEntryMapper struct{}

// NewTimeEntryMapper creates a new TimeEntryMapper instance.
func NewTimeEntryMapper() *TimeEntryMapper {
	return &TimeEntryMapper{}
}

// ToDatabase converts a domain TimeEntry to a database TimeEntry.
func (m *TimeEntryMapper) ToDatabase(entry TimeEntry) sqlite.TimeEntry {
	return sqlite.TimeEntry{
		ID:        entry.ID,
		WorkLogID: entry.WorkLogID,
		StartTime: entry.StartTime,
		EndTime:   entry.EndTime,
		Hours:     entry.Hours,
		CreatedAt: entry.CreatedAt,
	}
}

// FromDatabase converts a database TimeEntry to a domain TimeEntry.
func (m *TimeEntryMapper) FromDatabase(dbEntry sqlite.TimeEntry) TimeEntry {
	return TimeEntry{
		ID:        dbEntry.ID,
		WorkLogID: dbEntry.WorkLogID,
		StartTime: dbEntry.StartTime,
		EndTime:   dbEntry.EndTime,
		Hours:     dbEntry.Hours,
		CreatedAt: dbEntry.CreatedAt,
	}
}

// FromDatabaseSlice converts a slice of database TimeEntries to domain TimeEntries.
func (m *TimeEntryMapper) FromDatabaseSlice(dbEntries []*sqlite.TimeEntry) []TimeEntry {
	entries := make([]TimeEntry, len(dbEntries))
	for i, e := range dbEntries {
		entries[i] = m.FromDatabase(*e)
	}
	return entries
}

// PaymentMapper handles conversion between domain and database Payment models.
type PaymentMapper struct{}

// NewPaymentMapper creates a new PaymentMapper instance.
func NewPaymentMapper() *PaymentMapper {
	return &PaymentMapper{}
}

// ToDatabase converts a domain Payment to a database Payment.
func (m *PaymentMapper) ToDatabase(payment Payment) sqlite.Payment {
	return sqlite.Payment{
		ID:             payment.ID,
		Status:         string(payment.Status),
		TotalAmount:    payment.TotalAmount,
		DateRangeStart: payment.DateRangeStart,
		DateRangeEnd:   payment.DateRangeEnd,
		CreatedAt:      payment.CreatedAt,
	}
}

// FromDatabase converts a database Payment to a domain Payment.
func (m *PaymentMapper) FromDatabase(dbPayment sqlite.Payment) Payment {
	return Payment{
		ID:             dbPayment.ID,
		Status:         PaymentStatus(dbPayment.Status),
		TotalAmount:    dbPayment.TotalAmount,
		DateRangeStart: dbPayment.DateRangeStart,
		DateRangeEnd:   dbPayment.DateRangeEnd,
		CreatedAt:      dbPayment.CreatedAt,
	}
}

// FromDatabaseSlice converts a slice of database Payments to domain Payments.
func (m *PaymentMapper) FromDatabaseSlice(dbPayments []*sqlite.Payment) []Payment {
	payments := make([]Payment, len(dbPayments))
	for i, p := range dbPayments {
		payments[i] = m.FromDatabase(*p)
	}
	return payments
}

// Mapper provides a unified interface for all mapping operations.
type Mapper struct {
	Freelancer *FreelancerMapper
	WorkLog    *WorkLogMapper
	TimeEntry  *TimeEntryMapper
	Payment    *PaymentMapper
}

// NewMapper creates a new Mapper instance with all sub-mappers.
func NewMapper() *Mapper {
	return &Mapper{
		Freelancer: NewFreelancerMapper(),
		WorkLog:    NewWorkLogMapper(),
		TimeEntry:  NewTimeEntryMapper(),
		Payment:    NewPaymentMapper(),
	}
}
