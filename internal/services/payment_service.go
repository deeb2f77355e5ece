package services

import (
	"context"
	"fmt"

	"worklog-billing/internal/domain"
	"worklog-billing/internal/errors"
	"worklog-billing/internal/logging"
	"worklog-billing/internal/repository/sqlite"
	"worklog-billing/internal/validation"
)

// paymentServiceImpl implements the PaymentService interface
type paymentServiceImpl struct {
	repo             sqlite.Repository
	mapper           *domain.Mapper
	paymentValidator *validation.PaymentValidator
	logger           logging.Logger
}

// NewPaymentService creates a new PaymentService instance
func NewPaymentService(repo sqlite.Repository, logger logging.Logger) PaymentService {
	return &paymentServiceImpl{
		repo:             repo,
		mapper:           domain.NewMapper(),
		paymentValidator: validation.NewPaymentValidator(),
		logger:           logger,
	}
}

// CreatePayment selects the eligible pending worklogs for the date range,
// aggregates their earnings into a new draft payment, and links them to it.
// The whole operation commits atomically.
func (p *paymentServiceImpl) CreatePayment(ctx context.Context, input CreatePaymentInput) (*PaymentView, error) {
	var view *PaymentView

	err := p.repo.Transact(ctx, func(tx sqlite.Repository) error {
		dbWorkLogs, err := tx.ListPendingWorkLogs(ctx)
		if err != nil {
			return err
		}
		pending := p.mapper.WorkLog.FromDatabaseSlice(dbWorkLogs)

		eligible, err := SelectEligible(pending, EligibilityCriteria{
			Window:                input.DateRange,
			ExcludedWorkLogIDs:    input.ExcludedWorkLogIDs,
			ExcludedFreelancerIDs: input.ExcludedFreelancerIDs,
		})
		if err != nil {
			return err
		}
		if len(eligible) == 0 {
			return errors.NewNoEligibleWorkError()
		}

		index, err := freelancerIndex(ctx, tx, p.mapper)
		if err != nil {
			return err
		}

		items, total, err := p.buildWorkLogItems(ctx, tx, eligible, index)
		if err != nil {
			return err
		}

		payment := domain.NewPayment(Round2(total), input.DateRange.Start, input.DateRange.End)
		dbPayment := p.mapper.Payment.ToDatabase(payment)
		if err := tx.CreatePayment(ctx, &dbPayment); err != nil {
			return err
		}

		for i := range eligible {
			eligible[i].PaymentID = &dbPayment.ID
			dbWorkLog := p.mapper.WorkLog.ToDatabase(eligible[i])
			if err := tx.UpdateWorkLog(ctx, &dbWorkLog); err != nil {
				return err
			}
		}

		payment = p.mapper.Payment.FromDatabase(dbPayment)
		view = p.buildPaymentView(payment, items)
		return nil
	})
	if err != nil {
		return nil, err
	}

	p.logger.Info("payment created",
		logging.Int64("payment_id", view.ID),
		logging.Int("worklog_count", len(view.WorkLogs)),
		logging.Float64("total_amount", view.TotalAmount))

	return view, nil
}

// ListPayments returns all payment batches with their worklog counts
func (p *paymentServiceImpl) ListPayments(ctx context.Context) ([]PaymentListItem, error) {
	dbPayments, err := p.repo.ListPayments(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]PaymentListItem, 0, len(dbPayments))
	for _, dbPayment := range dbPayments {
		payment := p.mapper.Payment.FromDatabase(*dbPayment)

		workLogs, err := p.repo.ListWorkLogsByPayment(ctx, payment.ID)
		if err != nil {
			return nil, err
		}

		items = append(items, PaymentListItem{
			ID:             payment.ID,
			Status:         string(payment.Status),
			TotalAmount:    payment.TotalAmount,
			DateRangeStart: payment.DateRangeStart,
			DateRangeEnd:   payment.DateRangeEnd,
			CreatedAt:      payment.CreatedAt,
			WorkLogCount:   len(workLogs),
		})
	}

	return items, nil
}

// GetPayment returns a payment batch with its included worklogs
func (p *paymentServiceImpl) GetPayment(ctx context.Context, id int64) (*PaymentView, error) {
	if err := p.paymentValidator.ValidatePaymentID(id); err != nil {
		return nil, errors.NewValidationError("invalid payment ID", err)
	}

	dbPayment, err := p.repo.GetPayment(ctx, id)
	if err != nil {
		return nil, err
	}
	payment := p.mapper.Payment.FromDatabase(*dbPayment)

	items, err := p.loadWorkLogItems(ctx, p.repo, payment.ID)
	if err != nil {
		return nil, err
	}

	return p.buildPaymentView(payment, items), nil
}

// ConfirmPayment moves a draft payment to confirmed and marks every linked
// worklog as paid. Confirming twice is rejected, not silently accepted.
func (p *paymentServiceImpl) ConfirmPayment(ctx context.Context, id int64) (*PaymentView, error) {
	if err := p.paymentValidator.ValidatePaymentID(id); err != nil {
		return nil, errors.NewValidationError("invalid payment ID", err)
	}

	var view *PaymentView

	err := p.repo.Transact(ctx, func(tx sqlite.Repository) error {
		dbPayment, err := tx.GetPayment(ctx, id)
		if err != nil {
			return err
		}
		payment := p.mapper.Payment.FromDatabase(*dbPayment)

		if payment.IsConfirmed() {
			return errors.NewAlreadyConfirmedError(id)
		}

		payment.Status = domain.PaymentStatusConfirmed
		updated := p.mapper.Payment.ToDatabase(payment)
		if err := tx.UpdatePayment(ctx, &updated); err != nil {
			return err
		}

		dbWorkLogs, err := tx.ListWorkLogsByPayment(ctx, payment.ID)
		if err != nil {
			return err
		}
		workLogs := p.mapper.WorkLog.FromDatabaseSlice(dbWorkLogs)

		for i := range workLogs {
			workLogs[i].Status = domain.WorkLogStatusPaid
			dbWorkLog := p.mapper.WorkLog.ToDatabase(workLogs[i])
			if err := tx.UpdateWorkLog(ctx, &dbWorkLog); err != nil {
				return err
			}
		}

		index, err := freelancerIndex(ctx, tx, p.mapper)
		if err != nil {
			return err
		}

		items, _, err := p.buildWorkLogItems(ctx, tx, workLogs, index)
		if err != nil {
			return err
		}

		view = p.buildPaymentView(payment, items)
		return nil
	})
	if err != nil {
		return nil, err
	}

	p.logger.Info("payment confirmed",
		logging.Int64("payment_id", view.ID),
		logging.Int("worklog_count", len(view.WorkLogs)))

	return view, nil
}

// ExcludeWorkLog unlinks a worklog from a draft payment and recomputes the
// payment's total from its remaining worklogs. The total is always rebuilt
// from scratch rather than decremented.
func (p *paymentServiceImpl) ExcludeWorkLog(ctx context.Context, paymentID, workLogID int64) (*ExcludeResult, error) {
	if err := p.paymentValidator.ValidatePaymentID(paymentID); err != nil {
		return nil, errors.NewValidationError("invalid payment ID", err)
	}

	var result *ExcludeResult

	err := p.repo.Transact(ctx, func(tx sqlite.Repository) error {
		dbPayment, err := tx.GetPayment(ctx, paymentID)
		if err != nil {
			return err
		}
		payment := p.mapper.Payment.FromDatabase(*dbPayment)

		if payment.IsConfirmed() {
			return errors.NewImmutablePaymentError(paymentID)
		}

		dbWorkLog, err := tx.GetWorkLog(ctx, workLogID)
		if err != nil {
			return err
		}
		workLog := p.mapper.WorkLog.FromDatabase(*dbWorkLog)

		if !workLog.LinkedTo(paymentID) {
			return errors.NewNotFoundError("worklog in payment", fmt.Sprintf("%d", workLogID))
		}

		workLog.PaymentID = nil
		unlinked := p.mapper.WorkLog.ToDatabase(workLog)
		if err := tx.UpdateWorkLog(ctx, &unlinked); err != nil {
			return err
		}

		dbRemaining, err := tx.ListWorkLogsByPayment(ctx, payment.ID)
		if err != nil {
			return err
		}
		remaining := p.mapper.WorkLog.FromDatabaseSlice(dbRemaining)

		index, err := freelancerIndex(ctx, tx, p.mapper)
		if err != nil {
			return err
		}

		_, total, err := p.buildWorkLogItems(ctx, tx, remaining, index)
		if err != nil {
			return err
		}

		payment.TotalAmount = Round2(total)
		updated := p.mapper.Payment.ToDatabase(payment)
		if err := tx.UpdatePayment(ctx, &updated); err != nil {
			return err
		}

		result = &ExcludeResult{NewTotal: payment.TotalAmount}
		return nil
	})
	if err != nil {
		return nil, err
	}

	p.logger.Info("worklog excluded from payment",
		logging.Int64("payment_id", paymentID),
		logging.Int64("worklog_id", workLogID),
		logging.Float64("new_total", result.NewTotal))

	return result, nil
}

// buildWorkLogItems computes per-worklog totals and the unrounded batch sum
func (p *paymentServiceImpl) buildWorkLogItems(ctx context.Context, repo sqlite.Repository, workLogs []domain.WorkLog, index map[int64]domain.Freelancer) ([]PaymentWorkLogItem, float64, error) {
	items := make([]PaymentWorkLogItem, 0, len(workLogs))
	total := 0.0

	for _, workLog := range workLogs {
		dbEntries, err := repo.ListTimeEntries(ctx, workLog.ID)
		if err != nil {
			return nil, 0, err
		}
		entries := p.mapper.TimeEntry.FromDatabaseSlice(dbEntries)

		freelancer := lookupFreelancer(index, workLog.FreelancerID)
		totals := Aggregate(entries, freelancer)
		total += totals.Amount

		item := PaymentWorkLogItem{
			ID:           workLog.ID,
			TaskName:     workLog.TaskName,
			FreelancerID: workLog.FreelancerID,
			TotalHours:   totals.Hours,
			EarnedAmount: totals.Amount,
		}
		if freelancer != nil {
			item.FreelancerName = &freelancer.Name
		}
		items = append(items, item)
	}

	return items, total, nil
}

// loadWorkLogItems builds the worklog items for an existing payment
func (p *paymentServiceImpl) loadWorkLogItems(ctx context.Context, repo sqlite.Repository, paymentID int64) ([]PaymentWorkLogItem, error) {
	dbWorkLogs, err := repo.ListWorkLogsByPayment(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	workLogs := p.mapper.WorkLog.FromDatabaseSlice(dbWorkLogs)

	index, err := freelancerIndex(ctx, repo, p.mapper)
	if err != nil {
		return nil, err
	}

	items, _, err := p.buildWorkLogItems(ctx, repo, workLogs, index)
	return items, err
}

func (p *paymentServiceImpl) buildPaymentView(payment domain.Payment, items []PaymentWorkLogItem) *PaymentView {
	return &PaymentView{
		ID:             payment.ID,
		Status:         string(payment.Status),
		TotalAmount:    payment.TotalAmount,
		DateRangeStart: payment.DateRangeStart,
		DateRangeEnd:   payment.DateRangeEnd,
		CreatedAt:      payment.CreatedAt,
		WorkLogs:       items,
	}
}
