package server

import (
	"github.com/gofiber/fiber/v2"

	"worklog-billing/internal/errors"
	"worklog-billing/internal/logging"
)

// statusForError maps the domain error taxonomy to HTTP status codes
func statusForError(err error) int {
	appErr, ok := errors.AsAppError(err)
	if !ok {
		if fiberErr, isFiber := err.(*fiber.Error); isFiber {
			return fiberErr.Code
		}
		return fiber.StatusInternalServerError
	}

	switch appErr.Type {
	case errors.ErrorTypeValidation, errors.ErrorTypeInvalidInput,
		errors.ErrorTypeNoEligibleWork, errors.ErrorTypeImmutablePayment,
		errors.ErrorTypeAlreadyConfirmed:
		return fiber.StatusBadRequest
	case errors.ErrorTypeNotFound:
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// newErrorHandler builds the app-level error handler. Domain errors map to
// their status codes with a user-safe detail; everything else is a 500.
func newErrorHandler(logger logging.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := statusForError(err)

		if errors.ShouldLogError(err) || status >= 500 {
			logger.Error("request error",
				logging.String("path", c.Path()),
				logging.Int("status", status),
				logging.Err(err))
		}

		return c.Status(status).JSON(errorResponse{Detail: errors.GetUserMessage(err)})
	}
}
