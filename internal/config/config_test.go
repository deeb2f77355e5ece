package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, "billing.db", cfg.Database.Filename)
	assert.Equal(t, 10*time.Second, cfg.Database.QueryTimeout)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "info", cfg.Logging.Level)
	require.NoError(t, cfg.Validate())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("WB_DB_DIR", "/tmp/billing-test")
	t.Setenv("WB_DB_FILENAME", "test.db")
	t.Setenv("WB_HTTP_PORT", "9090")
	t.Setenv("WB_HTTP_SHUTDOWN_TIMEOUT", "30s")
	t.Setenv("WB_LOG_LEVEL", "debug")

	cfg := NewConfig()
	require.NoError(t, cfg.LoadFromEnvironment())

	assert.Equal(t, "/tmp/billing-test", cfg.Database.Dir)
	assert.Equal(t, "test.db", cfg.Database.Filename)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 30*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "/tmp/billing-test/test.db", cfg.GetDatabasePath())
}

func TestLoadFromEnvironment_IgnoresInvalidValues(t *testing.T) {
	t.Setenv("WB_HTTP_PORT", "not-a-port")
	t.Setenv("WB_DB_QUERY_TIMEOUT", "soon")

	cfg := NewConfig()
	require.NoError(t, cfg.LoadFromEnvironment())

	// Defaults stay in place when parsing fails
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, 10*time.Second, cfg.Database.QueryTimeout)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		modify    func(*Config)
		wantField string
	}{
		{"Empty db dir", func(c *Config) { c.Database.Dir = "" }, "database.dir"},
		{"Empty db filename", func(c *Config) { c.Database.Filename = "" }, "database.filename"},
		{"Zero query timeout", func(c *Config) { c.Database.QueryTimeout = 0 }, "database.query_timeout"},
		{"Port out of range", func(c *Config) { c.HTTP.Port = 70000 }, "http.port"},
		{"Zero shutdown timeout", func(c *Config) { c.HTTP.ShutdownTimeout = 0 }, "http.shutdown_timeout"},
		{"Unknown log level", func(c *Config) { c.Logging.Level = "loud" }, "logging.level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.modify(cfg)

			err := cfg.Validate()
			require.Error(t, err)

			var cfgErr *ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.wantField, cfgErr.Field)
		})
	}
}

func TestGetListenAddr(t *testing.T) {
	cfg := NewConfig()
	cfg.HTTP.Host = "127.0.0.1"
	cfg.HTTP.Port = 3000

	assert.Equal(t, "127.0.0.1:3000", cfg.GetListenAddr())
}
