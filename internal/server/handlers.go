package server

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"worklog-billing/internal/errors"
	"worklog-billing/internal/logging"
	"worklog-billing/internal/services"
	"worklog-billing/internal/validation"
)

// Handlers holds the route handlers and their service dependencies
type Handlers struct {
	services         *services.ServiceContainer
	logger           logging.Logger
	paymentValidator *validation.PaymentValidator
	workLogValidator *validation.WorkLogValidator
}

// NewHandlers creates the route handlers
func NewHandlers(container *services.ServiceContainer, logger logging.Logger) *Handlers {
	return &Handlers{
		services:         container,
		logger:           logger,
		paymentValidator: validation.NewPaymentValidator(),
		workLogValidator: validation.NewWorkLogValidator(),
	}
}

// HealthCheck reports service liveness
func (h *Handlers) HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// ListFreelancers returns all freelancers. A store failure degrades to an
// empty listing; listings are non-critical reads.
func (h *Handlers) ListFreelancers(c *fiber.Ctx) error {
	freelancers, err := h.services.FreelancerService.ListFreelancers(c.UserContext())
	if err != nil {
		h.logger.Error("failed to fetch freelancers", logging.Err(err))
		return c.JSON(freelancerListResponse{Data: []freelancerResponse{}, Count: 0})
	}

	return c.JSON(toFreelancerListResponse(freelancers))
}

// ListWorkLogs returns worklogs with computed totals, optionally filtered by
// date range, freelancer and status. Store failures degrade to an empty list.
func (h *Handlers) ListWorkLogs(c *fiber.Ctx) error {
	var freelancerID *int64
	if raw := c.Query("freelancer_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return errors.NewInvalidInputError("freelancer_id", raw, "must be an integer")
		}
		freelancerID = &id
	}

	filters, err := h.workLogValidator.ValidateFilters(
		c.Query("date_from"),
		c.Query("date_to"),
		c.Query("status"),
		freelancerID,
	)
	if err != nil {
		return errors.NewValidationError("invalid worklog filters", err)
	}

	views, err := h.services.WorkLogService.ListWorkLogs(c.UserContext(), filters)
	if err != nil {
		h.logger.Error("failed to fetch worklogs", logging.Err(err))
		return c.JSON(workLogListResponse{Data: []services.WorkLogView{}, Count: 0})
	}

	return c.JSON(toWorkLogListResponse(views))
}

// GetWorkLogDetail returns a single worklog with its time entries
func (h *Handlers) GetWorkLogDetail(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	detail, err := h.services.WorkLogService.GetWorkLogDetail(c.UserContext(), id)
	if err != nil {
		return err
	}

	if detail.TimeEntries == nil {
		detail.TimeEntries = []services.TimeEntryView{}
	}
	return c.JSON(detail)
}

// CreatePayment creates a draft payment batch from the eligible worklogs
func (h *Handlers) CreatePayment(c *fiber.Ctx) error {
	var req createPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.NewInvalidInputError("body", "", "malformed request body")
	}

	start, end, err := h.paymentValidator.ValidateDateRange(req.DateRangeStart, req.DateRangeEnd)
	if err != nil {
		return errors.NewValidationError("invalid payment date range", err)
	}

	view, err := h.services.PaymentService.CreatePayment(c.UserContext(), services.CreatePaymentInput{
		DateRange:             services.DateRange{Start: start, End: end},
		ExcludedWorkLogIDs:    req.ExcludedWorkLogIDs,
		ExcludedFreelancerIDs: req.ExcludedFreelancerIDs,
	})
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(toPaymentResponse(view))
}

// ListPayments returns all payment batches. Store failures degrade to an
// empty listing.
func (h *Handlers) ListPayments(c *fiber.Ctx) error {
	items, err := h.services.PaymentService.ListPayments(c.UserContext())
	if err != nil {
		h.logger.Error("failed to fetch payments", logging.Err(err))
		return c.JSON(paymentListResponse{Data: []paymentListItem{}, Count: 0})
	}

	return c.JSON(toPaymentListResponse(items))
}

// GetPaymentDetail returns a payment batch with its included worklogs
func (h *Handlers) GetPaymentDetail(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	view, err := h.services.PaymentService.GetPayment(c.UserContext(), id)
	if err != nil {
		return err
	}

	return c.JSON(toPaymentResponse(view))
}

// ConfirmPayment confirms a draft payment and marks its worklogs paid
func (h *Handlers) ConfirmPayment(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	view, err := h.services.PaymentService.ConfirmPayment(c.UserContext(), id)
	if err != nil {
		return err
	}

	return c.JSON(toPaymentResponse(view))
}

// ExcludeWorkLog removes a worklog from a draft payment and reports the
// recomputed total
func (h *Handlers) ExcludeWorkLog(c *fiber.Ctx) error {
	paymentID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	workLogID, err := parseIDParam(c, "wl_id")
	if err != nil {
		return err
	}

	result, err := h.services.PaymentService.ExcludeWorkLog(c.UserContext(), paymentID, workLogID)
	if err != nil {
		return err
	}

	return c.JSON(excludeResponse{
		Message:  "Worklog excluded from payment",
		NewTotal: result.NewTotal,
	})
}

func parseIDParam(c *fiber.Ctx, name string) (int64, error) {
	raw := c.Params(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errors.NewInvalidInputError(name, raw, "must be an integer")
	}
	return id, nil
}
