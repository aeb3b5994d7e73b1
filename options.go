package console

import (
	"log/slog"

	"go.opentelemetry.io/otel/trace"
)

// Option configures the Console.
type Option func(*consoleConfig)

// consoleConfig holds construction-time settings for a Console instance.
type consoleConfig struct {
	configPath string
	logger     *slog.Logger
	tracer     trace.Tracer
}

// WithConfig sets the configuration file path. The file carries policy
// values like the listing page size and the SLA warning window; when no
// path is given, built-in defaults apply.
func WithConfig(path string) Option {
	return func(c *consoleConfig) {
		c.configPath = path
	}
}

// WithLogger sets a custom logger. If not provided, a default JSON logger
// is created.
func WithLogger(logger *slog.Logger) Option {
	return func(c *consoleConfig) {
		c.logger = logger
	}
}

// WithTracer sets an OpenTelemetry tracer for the engine entry points.
// Without one, spans are no-ops.
func WithTracer(tracer trace.Tracer) Option {
	return func(c *consoleConfig) {
		c.tracer = tracer
	}
}
