package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"worklog-billing/internal/config"
	"worklog-billing/internal/logging"
	"worklog-billing/internal/server"
	"worklog-billing/internal/services"
)

// RootCommand represents the worklogd command
type RootCommand struct {
	cmd *cobra.Command

	host     string
	port     int
	dbDir    string
	logLevel string
}

// NewRootCommand creates the root cobra command with its flags
func NewRootCommand() *RootCommand {
	root := &RootCommand{}

	root.cmd = &cobra.Command{
		Use:   "worklogd",
		Short: "Freelance worklog billing service",
		Long: `worklogd serves the worklog billing HTTP API: freelancers, worklogs
with computed earnings, and the payment batch lifecycle (create, confirm,
exclude).

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > defaults

  Database Configuration:
    WB_DB_DIR                 Database directory (default: ~/.worklog-billing)
    WB_DB_FILENAME            Database filename (default: billing.db)
    WB_DB_QUERY_TIMEOUT       Query timeout (default: 10s)
    WB_DB_WRITE_TIMEOUT       Write timeout (default: 5s)

  HTTP Configuration:
    WB_HTTP_HOST              Listen host (default: 0.0.0.0)
    WB_HTTP_PORT              Listen port (default: 8080)
    WB_HTTP_READ_TIMEOUT      Read timeout (default: 15s)
    WB_HTTP_WRITE_TIMEOUT     Write timeout (default: 15s)
    WB_HTTP_SHUTDOWN_TIMEOUT  Graceful shutdown timeout (default: 10s)

  Logging Configuration:
    WB_LOG_LEVEL              Log level: trace, debug, info, warn, error (default: info)`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return root.runServe(cmd.Context())
		},
	}

	flags := root.cmd.Flags()
	flags.StringVar(&root.host, "host", "", "listen host (overrides WB_HTTP_HOST)")
	flags.IntVar(&root.port, "port", 0, "listen port (overrides WB_HTTP_PORT)")
	flags.StringVar(&root.dbDir, "db-dir", "", "database directory (overrides WB_DB_DIR)")
	flags.StringVar(&root.logLevel, "log-level", "", "log level (overrides WB_LOG_LEVEL)")

	return root
}

// Execute runs the command with the given context
func (r *RootCommand) Execute(ctx context.Context) error {
	return r.cmd.ExecuteContext(ctx)
}

// loadConfig builds the effective configuration from defaults, environment
// and flags, in ascending priority
func (r *RootCommand) loadConfig() (*config.Config, error) {
	cfg := config.NewConfig()
	if err := cfg.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if r.host != "" {
		cfg.HTTP.Host = r.host
	}
	if r.port != 0 {
		cfg.HTTP.Port = r.port
	}
	if r.dbDir != "" {
		cfg.Database.Dir = r.dbDir
	}
	if r.logLevel != "" {
		cfg.Logging.Level = r.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// runServe starts the HTTP server and blocks until the context is cancelled
func (r *RootCommand) runServe(ctx context.Context) error {
	cfg, err := r.loadConfig()
	if err != nil {
		return err
	}

	logger := logging.NewZerologAdapter(cfg.Logging.Level)

	repo, err := config.CreateRepository(cfg)
	if err != nil {
		return err
	}
	defer repo.Close()

	container := &services.ServiceContainer{
		FreelancerService: services.NewFreelancerService(repo),
		WorkLogService:    services.NewWorkLogService(repo),
		PaymentService:    services.NewPaymentService(repo, logger),
	}

	srv := server.New(cfg, container, logger)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Listen()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	return <-errCh
}
