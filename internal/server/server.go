package server

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"worklog-billing/internal/config"
	"worklog-billing/internal/logging"
	"worklog-billing/internal/services"
)

// Server wraps the HTTP app and its route handlers
type Server struct {
	app      *fiber.App
	cfg      *config.Config
	logger   logging.Logger
	handlers *Handlers
}

// New creates a configured HTTP server with all routes registered
func New(cfg *config.Config, container *services.ServiceContainer, logger logging.Logger) *Server {
	app := fiber.New(fiber.Config{
		AppName:               "worklog-billing",
		DisableStartupMessage: true,
		ReadTimeout:           cfg.HTTP.ReadTimeout,
		WriteTimeout:          cfg.HTTP.WriteTimeout,
		ErrorHandler:          newErrorHandler(logger),
	})

	app.Use(recover.New())
	app.Use(requestLogger(logger))
	app.Use(cors.New())

	s := &Server{
		app:      app,
		cfg:      cfg,
		logger:   logger,
		handlers: NewHandlers(container, logger),
	}
	s.setupRoutes()

	return s
}

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() {
	s.app.Get("/health", s.handlers.HealthCheck)

	s.app.Get("/freelancers/", s.handlers.ListFreelancers)

	s.app.Get("/worklogs/", s.handlers.ListWorkLogs)
	s.app.Get("/worklogs/:id", s.handlers.GetWorkLogDetail)

	s.app.Post("/payments/", s.handlers.CreatePayment)
	s.app.Get("/payments/", s.handlers.ListPayments)
	s.app.Get("/payments/:id", s.handlers.GetPaymentDetail)
	s.app.Post("/payments/:id/confirm", s.handlers.ConfirmPayment)
	s.app.Delete("/payments/:id/worklogs/:wl_id", s.handlers.ExcludeWorkLog)
}

// Listen starts serving on the configured address, blocking until shutdown
func (s *Server) Listen() error {
	addr := s.cfg.GetListenAddr()
	s.logger.Info("http server listening", logging.String("addr", addr))
	return s.app.Listen(addr)
}

// Shutdown gracefully stops the server, honoring the context deadline
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("http server shutting down")
	return s.app.ShutdownWithContext(ctx)
}

// App exposes the underlying fiber app for tests
func (s *Server) App() *fiber.App {
	return s.app
}
