package sqlite

import (
	"database/sql"
)

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ScanFreelancer scans a single freelancer from a database row
func ScanFreelancer(scanner Scanner) (*Freelancer, error) {
	freelancer := &Freelancer{}
	var createdAt string

	err := scanner.Scan(
		&freelancer.ID,
		&freelancer.Name,
		&freelancer.Email,
		&freelancer.HourlyRate,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	if freelancer.CreatedAt, err = ParseTimeFromDB(createdAt); err != nil {
		return nil, err
	}

	return freelancer, nil
}

// ScanFreelancers scans multiple freelancers from database rows
func ScanFreelancers(rows Rows) ([]*Freelancer, error) {
	var freelancers []*Freelancer
	for rows.Next() {
		freelancer, err := ScanFreelancer(rows)
		if err != nil {
			return nil, err
		}
		freelancers = append(freelancers, freelancer)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return freelancers, nil
}

// ScanWorkLog scans a single worklog from a database row
func ScanWorkLog(scanner Scanner) (*WorkLog, error) {
	workLog := &WorkLog{}
	var description sql.NullString
	var freelancerID, paymentID sql.NullInt64
	var createdAt string

	err := scanner.Scan(
		&workLog.ID,
		&workLog.TaskName,
		&description,
		&freelancerID,
		&workLog.Status,
		&paymentID,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	if description.Valid {
		workLog.Description = &description.String
	}
	if freelancerID.Valid {
		workLog.FreelancerID = &freelancerID.Int64
	}
	if paymentID.Valid {
		workLog.PaymentID = &paymentID.Int64
	}
	if workLog.CreatedAt, err = ParseTimeFromDB(createdAt); err != nil {
		return nil, err
	}

	return workLog, nil
}

// ScanWorkLogs scans multiple worklogs from database rows
func ScanWorkLogs(rows Rows) ([]*WorkLog, error) {
	var workLogs []*WorkLog
	for rows.Next() {
		workLog, err := ScanWorkLog(rows)
		if err != nil {
			return nil, err
		}
		workLogs = append(workLogs, workLog)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return workLogs, nil
}

// ScanTimeEntry scans a single time entry from a database row
func ScanTimeEntry(scanner Scanner) (*TimeEntry, error) {
	entry := &TimeEntry{}
	var startTime, endTime sql.NullString
	var hours sql.NullFloat64
	var createdAt string

	err := scanner.Scan(
		&entry.ID,
		&entry.WorkLogID,
		&startTime,
		&endTime,
		&hours,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	if startTime.Valid {
		parsed, err := ParseTimeFromDB(startTime.String)
		if err != nil {
			return nil, err
		}
		entry.StartTime = &parsed
	}
	if endTime.Valid {
		parsed, err := ParseTimeFromDB(endTime.String)
		if err != nil {
			return nil, err
		}
		entry.EndTime = &parsed
	}
	if hours.Valid {
		entry.Hours = &hours.Float64
	}
	if entry.CreatedAt, err = ParseTimeFromDB(createdAt); err != nil {
		return nil, err
	}

	return entry, nil
}

// ScanTimeEntries scans multiple time entries from database rows
func ScanTimeEntries(rows Rows) ([]*TimeEntry, error) {
	var entries []*TimeEntry
	for rows.Next() {
		entry, err := ScanTimeEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// ScanPayment scans a single payment from a database row
func ScanPayment(scanner Scanner) (*Payment, error) {
	payment := &Payment{}
	var rangeStart, rangeEnd, createdAt string

	err := scanner.Scan(
		&payment.ID,
		&payment.Status,
		&payment.TotalAmount,
		&rangeStart,
		&rangeEnd,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	if payment.DateRangeStart, err = ParseDateFromDB(rangeStart); err != nil {
		return nil, err
	}
	if payment.DateRangeEnd, err = ParseDateFromDB(rangeEnd); err != nil {
		return nil, err
	}
	if payment.CreatedAt, err = ParseTimeFromDB(createdAt); err != nil {
		return nil, err
	}

	return payment, nil
}

// ScanPayments scans multiple payments from database rows
func ScanPayments(rows Rows) ([]*Payment, error) {
	var payments []*Payment
	for rows.Next() {
		payment, err := ScanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, payment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return payments, nil
}
