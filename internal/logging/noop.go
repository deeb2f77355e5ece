package logging

// NoopLogger discards all log messages. Useful as a default and in tests.
type NoopLogger struct{}

// NewNoopLogger creates a logger that discards everything.
func NewNoopLogger() *NoopLogger {
	return &NoopLogger{}
}

// Debug discards the message.
func (n *NoopLogger) Debug(msg string, fields ...Field) {}

// Info discards the message.
func (n *NoopLogger) Info(msg string, fields ...Field) {}

// Warn discards the message.
func (n *NoopLogger) Warn(msg string, fields ...Field) {}

// Error discards the message.
func (n *NoopLogger) Error(msg string, fields ...Field) {}
