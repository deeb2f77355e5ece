package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all configuration options for the billing service
type Config struct {
	Database DatabaseConfig
	HTTP     HTTPConfig
	Logging  LoggingConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Dir            string        `env:"WB_DB_DIR"`
	Filename       string        `env:"WB_DB_FILENAME"`
	QueryTimeout   time.Duration `env:"WB_DB_QUERY_TIMEOUT"`
	WriteTimeout   time.Duration `env:"WB_DB_WRITE_TIMEOUT"`
	DirPermissions uint32        `env:"WB_DB_DIR_PERMISSIONS"`
}

// HTTPConfig holds HTTP server configuration
type HTTPConfig struct {
	Host            string        `env:"WB_HTTP_HOST"`
	Port            int           `env:"WB_HTTP_PORT"`
	ReadTimeout     time.Duration `env:"WB_HTTP_READ_TIMEOUT"`
	WriteTimeout    time.Duration `env:"WB_HTTP_WRITE_TIMEOUT"`
	ShutdownTimeout time.Duration `env:"WB_HTTP_SHUTDOWN_TIMEOUT"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string `env:"WB_LOG_LEVEL"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDBDir := filepath.Join(homeDir, ".worklog-billing")

	return &Config{
		Database: DatabaseConfig{
			Dir:            defaultDBDir,
			Filename:       "billing.db",
			QueryTimeout:   10 * time.Second,
			WriteTimeout:   5 * time.Second,
			DirPermissions: 0755,
		},
		HTTP: HTTPConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

// GetListenAddr returns the HTTP listen address
func (c *Config) GetListenAddr() string {
	return fmt.Sprintf("%s:%d", c.HTTP.Host, c.HTTP.Port)
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Database configuration
	if dir := os.Getenv("WB_DB_DIR"); dir != "" {
		c.Database.Dir = dir
	}
	if filename := os.Getenv("WB_DB_FILENAME"); filename != "" {
		c.Database.Filename = filename
	}
	if timeout := os.Getenv("WB_DB_QUERY_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Database.QueryTimeout = d
		}
	}
	if timeout := os.Getenv("WB_DB_WRITE_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Database.WriteTimeout = d
		}
	}
	if perms := os.Getenv("WB_DB_DIR_PERMISSIONS"); perms != "" {
		if p, err := strconv.ParseUint(perms, 8, 32); err == nil {
			c.Database.DirPermissions = uint32(p)
		}
	}

	// HTTP configuration
	if host := os.Getenv("WB_HTTP_HOST"); host != "" {
		c.HTTP.Host = host
	}
	if port := os.Getenv("WB_HTTP_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			c.HTTP.Port = p
		}
	}
	if timeout := os.Getenv("WB_HTTP_READ_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.HTTP.ReadTimeout = d
		}
	}
	if timeout := os.Getenv("WB_HTTP_WRITE_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.HTTP.WriteTimeout = d
		}
	}
	if timeout := os.Getenv("WB_HTTP_SHUTDOWN_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.HTTP.ShutdownTimeout = d
		}
	}

	// Logging configuration
	if level := os.Getenv("WB_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	// Validate database configuration
	if c.Database.Dir == "" {
		return &ConfigError{Field: "database.dir", Message: "database directory cannot be empty"}
	}
	if c.Database.Filename == "" {
		return &ConfigError{Field: "database.filename", Message: "database filename cannot be empty"}
	}
	if c.Database.QueryTimeout <= 0 {
		return &ConfigError{Field: "database.query_timeout", Message: "query timeout must be positive"}
	}
	if c.Database.WriteTimeout <= 0 {
		return &ConfigError{Field: "database.write_timeout", Message: "write timeout must be positive"}
	}

	// Validate HTTP configuration
	if c.HTTP.Port < 1 || c.HTTP.Port > 65535 {
		return &ConfigError{Field: "http.port", Message: "port must be between 1 and 65535"}
	}
	if c.HTTP.ReadTimeout <= 0 {
		return &ConfigError{Field: "http.read_timeout", Message: "read timeout must be positive"}
	}
	if c.HTTP.WriteTimeout <= 0 {
		return &ConfigError{Field: "http.write_timeout", Message: "write timeout must be positive"}
	}
	if c.HTTP.ShutdownTimeout <= 0 {
		return &ConfigError{Field: "http.shutdown_timeout", Message: "shutdown timeout must be positive"}
	}

	// Validate logging configuration
	switch c.Logging.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		return &ConfigError{Field: "logging.level", Message: "level must be one of: trace, debug, info, warn, error"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
