package services

import (
	"context"

	"worklog-billing/internal/domain"
	"worklog-billing/internal/errors"
	"worklog-billing/internal/repository/sqlite"
	"worklog-billing/internal/validation"
)

// workLogServiceImpl implements the WorkLogService interface
type workLogServiceImpl struct {
	repo             sqlite.Repository
	mapper           *domain.Mapper
	workLogValidator *validation.WorkLogValidator
}

// NewWorkLogService creates a new WorkLogService instance
func NewWorkLogService(repo sqlite.Repository) WorkLogService {
	return &workLogServiceImpl{
		repo:             repo,
		mapper:           domain.NewMapper(),
		workLogValidator: validation.NewWorkLogValidator(),
	}
}

// ListWorkLogs returns all worklogs matching the filters, each with its
// computed hours and earned amount
func (w *workLogServiceImpl) ListWorkLogs(ctx context.Context, filters validation.WorkLogFilters) ([]WorkLogView, error) {
	dbWorkLogs, err := w.repo.ListWorkLogs(ctx, sqlite.SearchOptions{
		DateFrom:     filters.DateFrom,
		DateTo:       filters.DateTo,
		FreelancerID: filters.FreelancerID,
		Status:       filters.Status,
	})
	if err != nil {
		return nil, err
	}

	index, err := freelancerIndex(ctx, w.repo, w.mapper)
	if err != nil {
		return nil, err
	}

	views := make([]WorkLogView, 0, len(dbWorkLogs))
	for _, dbWorkLog := range dbWorkLogs {
		workLog := w.mapper.WorkLog.FromDatabase(*dbWorkLog)

		entries, err := w.loadTimeEntries(ctx, workLog.ID)
		if err != nil {
			return nil, err
		}

		views = append(views, w.buildView(workLog, entries, lookupFreelancer(index, workLog.FreelancerID)))
	}

	return views, nil
}

// GetWorkLogDetail returns a single worklog with its time entries
func (w *workLogServiceImpl) GetWorkLogDetail(ctx context.Context, id int64) (*WorkLogDetailView, error) {
	if err := w.workLogValidator.ValidateWorkLogID(id); err != nil {
		return nil, errors.NewValidationError("invalid worklog ID", err)
	}

	dbWorkLog, err := w.repo.GetWorkLog(ctx, id)
	if err != nil {
		return nil, err
	}
	workLog := w.mapper.WorkLog.FromDatabase(*dbWorkLog)

	var freelancer *domain.Freelancer
	if workLog.FreelancerID != nil {
		dbFreelancer, err := w.repo.GetFreelancer(ctx, *workLog.FreelancerID)
		if err != nil && !errors.IsErrorType(err, errors.ErrorTypeNotFound) {
			return nil, err
		}
		if dbFreelancer != nil {
			f := w.mapper.Freelancer.FromDatabase(*dbFreelancer)
			freelancer = &f
		}
	}

	entries, err := w.loadTimeEntries(ctx, workLog.ID)
	if err != nil {
		return nil, err
	}

	entryViews := make([]TimeEntryView, 0, len(entries))
	for _, entry := range entries {
		entryViews = append(entryViews, TimeEntryView{
			ID:        entry.ID,
			StartTime: entry.StartTime,
			EndTime:   entry.EndTime,
			Hours:     entry.Hours,
			CreatedAt: entry.CreatedAt,
		})
	}

	return &WorkLogDetailView{
		WorkLogView: w.buildView(workLog, entries, freelancer),
		TimeEntries: entryViews,
	}, nil
}

func (w *workLogServiceImpl) loadTimeEntries(ctx context.Context, workLogID int64) ([]domain.TimeEntry, error) {
	dbEntries, err := w.repo.ListTimeEntries(ctx, workLogID)
	if err != nil {
		return nil, err
	}
	return w.mapper.TimeEntry.FromDatabaseSlice(dbEntries), nil
}

func (w *workLogServiceImpl) buildView(workLog domain.WorkLog, entries []domain.TimeEntry, freelancer *domain.Freelancer) WorkLogView {
	totals := Aggregate(entries, freelancer)

	view := WorkLogView{
		ID:           workLog.ID,
		TaskName:     workLog.TaskName,
		Description:  workLog.Description,
		FreelancerID: workLog.FreelancerID,
		TotalHours:   totals.Hours,
		EarnedAmount: totals.Amount,
		Status:       string(workLog.Status),
		PaymentID:    workLog.PaymentID,
		CreatedAt:    workLog.CreatedAt,
	}
	if freelancer != nil {
		view.FreelancerName = &freelancer.Name
		view.FreelancerEmail = &freelancer.Email
		view.HourlyRate = freelancer.HourlyRate
	}
	return view
}
