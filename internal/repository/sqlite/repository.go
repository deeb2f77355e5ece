package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"worklog-billing/internal/errors"
	"worklog-billing/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// Repository defines the interface for database operations
type Repository interface {
	// Freelancer operations
	CreateFreelancer(ctx context.Context, freelancer *Freelancer) error
	GetFreelancer(ctx context.Context, id int64) (*Freelancer, error)
	ListFreelancers(ctx context.Context) ([]*Freelancer, error)

	// WorkLog operations
	CreateWorkLog(ctx context.Context, workLog *WorkLog) error
	GetWorkLog(ctx context.Context, id int64) (*WorkLog, error)
	UpdateWorkLog(ctx context.Context, workLog *WorkLog) error
	ListWorkLogs(ctx context.Context, opts SearchOptions) ([]*WorkLog, error)
	ListPendingWorkLogs(ctx context.Context) ([]*WorkLog, error)
	ListWorkLogsByPayment(ctx context.Context, paymentID int64) ([]*WorkLog, error)

	// TimeEntry operations
	CreateTimeEntry(ctx context.Context, entry *TimeEntry) error
	ListTimeEntries(ctx context.Context, workLogID int64) ([]*TimeEntry, error)

	// Payment operations
	CreatePayment(ctx context.Context, payment *Payment) error
	GetPayment(ctx context.Context, id int64) (*Payment, error)
	UpdatePayment(ctx context.Context, payment *Payment) error
	ListPayments(ctx context.Context) ([]*Payment, error)

	// Transact runs fn inside a single transaction. The Repository handed
	// to fn shares the transaction; any error rolls everything back.
	Transact(ctx context.Context, fn func(Repository) error) error

	// Utility
	Close() error
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db   *sql.DB
	exec Executor
}

// New creates a new SQLite repository instance
func New(dbPath string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}

	// Run migrations
	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	return &SQLiteRepository{db: db, exec: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	if r.db == nil {
		// Transactional view; nothing to close here.
		return nil
	}
	return r.db.Close()
}

// Transact runs fn within a transaction, committing on success
func (r *SQLiteRepository) Transact(ctx context.Context, fn func(Repository) error) error {
	if r.db == nil {
		// Already inside a transaction; run fn on the same executor.
		return fn(r)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.NewDatabaseError("begin transaction", err)
	}

	if err := fn(&SQLiteRepository{exec: tx}); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return errors.NewDatabaseError("commit transaction", err)
	}
	return nil
}

// CreateFreelancer creates a new freelancer
func (r *SQLiteRepository) CreateFreelancer(ctx context.Context, freelancer *Freelancer) error {
	query := `
	INSERT INTO freelancers (name, email, hourly_rate, created_at)
	VALUES (?, ?, ?, ?)`

	id, err := ExecuteWithLastInsertID(ctx, r.exec, query, freelancer.Name, freelancer.Email, freelancer.HourlyRate, FormatTimeForDB(freelancer.CreatedAt))
	if err != nil {
		return err
	}

	freelancer.ID = id
	return nil
}

// GetFreelancer retrieves a freelancer by ID
func (r *SQLiteRepository) GetFreelancer(ctx context.Context, id int64) (*Freelancer, error) {
	query := `
	SELECT id, name, email, hourly_rate, created_at
	FROM freelancers
	WHERE id = ?`

	return QuerySingle(ctx, r.exec, query, ScanFreelancer, "freelancer", fmt.Sprintf("%d", id), id)
}

// ListFreelancers retrieves all freelancers
func (r *SQLiteRepository) ListFreelancers(ctx context.Context) ([]*Freelancer, error) {
	query := `
	SELECT id, name, email, hourly_rate, created_at
	FROM freelancers
	ORDER BY id ASC`

	return QueryMultiple(ctx, r.exec, query, ScanFreelancers, "freelancers")
}

// CreateWorkLog creates a new worklog
func (r *SQLiteRepository) CreateWorkLog(ctx context.Context, workLog *WorkLog) error {
	query := `
	INSERT INTO worklogs (task_name, description, freelancer_id, status, payment_id, created_at)
	VALUES (?, ?, ?, ?, ?, ?)`

	id, err := ExecuteWithLastInsertID(ctx, r.exec, query, workLog.TaskName, workLog.Description, workLog.FreelancerID, workLog.Status, workLog.PaymentID, FormatTimeForDB(workLog.CreatedAt))
	if err != nil {
		return err
	}

	workLog.ID = id
	return nil
}

// GetWorkLog retrieves a worklog by ID
func (r *SQLiteRepository) GetWorkLog(ctx context.Context, id int64) (*WorkLog, error) {
	query := `
	SELECT id, task_name, description, freelancer_id, status, payment_id, created_at
	FROM worklogs
	WHERE id = ?`

	return QuerySingle(ctx, r.exec, query, ScanWorkLog, "worklog", fmt.Sprintf("%d", id), id)
}

// UpdateWorkLog updates an existing worklog
func (r *SQLiteRepository) UpdateWorkLog(ctx context.Context, workLog *WorkLog) error {
	query := `
	UPDATE worklogs
	SET task_name = ?, description = ?, freelancer_id = ?, status = ?, payment_id = ?
	WHERE id = ?`

	return ExecuteWithRowsAffected(ctx, r.exec, query, "worklog", fmt.Sprintf("%d", workLog.ID), workLog.TaskName, workLog.Description, workLog.FreelancerID, workLog.Status, workLog.PaymentID, workLog.ID)
}

// ListWorkLogs retrieves worklogs matching the search options
func (r *SQLiteRepository) ListWorkLogs(ctx context.Context, opts SearchOptions) ([]*WorkLog, error) {
	query := `
	SELECT id, task_name, description, freelancer_id, status, payment_id, created_at
	FROM worklogs`

	var conditions []string
	var args []interface{}

	if opts.DateFrom != nil {
		conditions = append(conditions, "date(created_at) >= ?")
		args = append(args, FormatDateForDB(*opts.DateFrom))
	}
	if opts.DateTo != nil {
		conditions = append(conditions, "date(created_at) <= ?")
		args = append(args, FormatDateForDB(*opts.DateTo))
	}
	if opts.FreelancerID != nil {
		conditions = append(conditions, "freelancer_id = ?")
		args = append(args, *opts.FreelancerID)
	}
	if opts.Status != nil {
		conditions = append(conditions, "status = ?")
		args = append(args, *opts.Status)
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY id ASC"

	return QueryMultiple(ctx, r.exec, query, ScanWorkLogs, "worklogs", args...)
}

// ListPendingWorkLogs retrieves all worklogs not yet attached to a payment
func (r *SQLiteRepository) ListPendingWorkLogs(ctx context.Context) ([]*WorkLog, error) {
	query := `
	SELECT id, task_name, description, freelancer_id, status, payment_id, created_at
	FROM worklogs
	WHERE status = 'pending' AND payment_id IS NULL
	ORDER BY id ASC`

	return QueryMultiple(ctx, r.exec, query, ScanWorkLogs, "pending worklogs")
}

// ListWorkLogsByPayment retrieves all worklogs attached to a payment
func (r *SQLiteRepository) ListWorkLogsByPayment(ctx context.Context, paymentID int64) ([]*WorkLog, error) {
	query := `
	SELECT id, task_name, description, freelancer_id, status, payment_id, created_at
	FROM worklogs
	WHERE payment_id = ?
	ORDER BY id ASC`

	return QueryMultiple(ctx, r.exec, query, ScanWorkLogs, "payment worklogs", paymentID)
}

// CreateTimeEntry creates a new time entry
func (r *SQLiteRepository) CreateTimeEntry(ctx context.Context, entry *TimeEntry) error {
	query := `
	INSERT INTO time_entries (worklog_id, start_time, end_time, hours, created_at)
	VALUES (?, ?, ?, ?, ?)`

	id, err := ExecuteWithLastInsertID(ctx, r.exec, query, entry.WorkLogID, FormatTimePtrForDB(entry.StartTime), FormatTimePtrForDB(entry.EndTime), entry.Hours, FormatTimeForDB(entry.CreatedAt))
	if err != nil {
		return err
	}

	entry.ID = id
	return nil
}

// ListTimeEntries retrieves all time entries for a worklog
func (r *SQLiteRepository) ListTimeEntries(ctx context.Context, workLogID int64) ([]*TimeEntry, error) {
	query := `
	SELECT id, worklog_id, start_time, end_time, hours, created_at
	FROM time_entries
	WHERE worklog_id = ?
	ORDER BY id ASC`

	return QueryMultiple(ctx, r.exec, query, ScanTimeEntries, "time entries", workLogID)
}

// CreatePayment creates a new payment
func (r *SQLiteRepository) CreatePayment(ctx context.Context, payment *Payment) error {
	query := `
	INSERT INTO payments (status, total_amount, date_range_start, date_range_end, created_at)
	VALUES (?, ?, ?, ?, ?)`

	id, err := ExecuteWithLastInsertID(ctx, r.exec, query, payment.Status, payment.TotalAmount, FormatDateForDB(payment.DateRangeStart), FormatDateForDB(payment.DateRangeEnd), FormatTimeForDB(payment.CreatedAt))
	if err != nil {
		return err
	}

	payment.ID = id
	return nil
}

// GetPayment retrieves a payment by ID
func (r *SQLiteRepository) GetPayment(ctx context.Context, id int64) (*Payment, error) {
	query := `
	SELECT id, status, total_amount, date_range_start, date_range_end, created_at
	FROM payments
	WHERE id = ?`

	return QuerySingle(ctx, r.exec, query, ScanPayment, "payment", fmt.Sprintf("%d", id), id)
}

// UpdatePayment updates an existing payment
func (r *SQLiteRepository) UpdatePayment(ctx context.Context, payment *Payment) error {
	query := `
	UPDATE payments
	SET status = ?, total_amount = ?, date_range_start = ?, date_range_end = ?
	WHERE id = ?`

	return ExecuteWithRowsAffected(ctx, r.exec, query, "payment", fmt.Sprintf("%d", payment.ID), payment.Status, payment.TotalAmount, FormatDateForDB(payment.DateRangeStart), FormatDateForDB(payment.DateRangeEnd), payment.ID)
}

// ListPayments retrieves all payments
func (r *SQLiteRepository) ListPayments(ctx context.Context) ([]*Payment, error) {
	query := `
	SELECT id, status, total_amount, date_range_start, date_range_end, created_at
	FROM payments
	ORDER BY id ASC`

	return QueryMultiple(ctx, r.exec, query, ScanPayments, "payments")
}
