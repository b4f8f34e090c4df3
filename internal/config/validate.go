package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error with context.
type ValidationError struct {
	Field   string
	Message string
	Hint    string
}

func (e ValidationError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("%s: %s (hint: %s)", e.Field, e.Message, e.Hint)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	Field   string
	Message string
	Hint    string
}

// ValidationResult contains the results of configuration validation.
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationWarning
}

// HasErrors returns true if there are any validation errors.
func (r *ValidationResult) HasErrors() bool {
	return len(r.Errors) > 0
}

// Error returns a combined error message if there are validation errors.
func (r *ValidationResult) Error() string {
	if !r.HasErrors() {
		return ""
	}
	var msgs []string
	for _, e := range r.Errors {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate checks the configuration for errors and returns validation results.
// It returns both errors (fatal) and warnings (non-fatal issues).
func (c *Config) Validate() *ValidationResult {
	result := &ValidationResult{}

	c.Database.validate(result)
	c.Server.validate(result)
	c.Observability.validate(result)

	return result
}

var validSSLModes = map[string]bool{
	"disable":     true,
	"allow":       true,
	"prefer":      true,
	"require":     true,
	"verify-ca":   true,
	"verify-full": true,
}

func (d *DatabaseConfig) validate(result *ValidationResult) {
	if d.ConnectionString == "" {
		if d.Host == "" {
			result.Errors = append(result.Errors, ValidationError{
				Field:   "database.host",
				Message: "host cannot be empty",
				Hint:    "set database.host or provide a complete database.dsn",
			})
		}
		if d.Port < 1 || d.Port > 65535 {
			result.Errors = append(result.Errors, ValidationError{
				Field:   "database.port",
				Message: fmt.Sprintf("port %d is out of valid range (1-65535)", d.Port),
			})
		}
		if d.Database == "" {
			result.Errors = append(result.Errors, ValidationError{
				Field:   "database.database",
				Message: "database name cannot be empty",
			})
		}
		if d.SSLMode != "" && !validSSLModes[d.SSLMode] {
			result.Errors = append(result.Errors, ValidationError{
				Field:   "database.ssl_mode",
				Message: fmt.Sprintf("unsupported sslmode %q", d.SSLMode),
				Hint:    "use disable, allow, prefer, require, verify-ca, or verify-full",
			})
		}
		if d.Password == "" && !d.PasswordPrompt && d.PasswordFile == "" {
			result.Warnings = append(result.Warnings, ValidationWarning{
				Field:   "database.password",
				Message: "no password configured",
				Hint:    "set database.password, database.password_file, or database.password_prompt",
			})
		}
	}

	for _, r := range d.SortCollation {
		if r == '"' {
			result.Errors = append(result.Errors, ValidationError{
				Field:   "database.sort_collation",
				Message: "collation name must not contain double quotes",
			})
			break
		}
	}

	if d.Pool.MaxIdle > d.Pool.MaxOpen {
		result.Warnings = append(result.Warnings, ValidationWarning{
			Field:   "database.pool.max_idle",
			Message: fmt.Sprintf("max_idle (%d) exceeds max_open (%d); the pool will cap it", d.Pool.MaxIdle, d.Pool.MaxOpen),
		})
	}
}

func (s *ServerConfig) validate(result *ValidationResult) {
	if s.Port < 1 || s.Port > 65535 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "server.port",
			Message: fmt.Sprintf("port %d is out of valid range (1-65535)", s.Port),
		})
	}
	if s.CORSEnabled && len(s.CORSAllowedOrigins) == 0 {
		result.Warnings = append(result.Warnings, ValidationWarning{
			Field:   "server.cors_allowed_origins",
			Message: "CORS is enabled but no origins are allowed; all cross-origin requests will be rejected",
		})
	}
	if s.ShutdownTimeout < 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "server.shutdown_timeout",
			Message: "shutdown timeout cannot be negative",
		})
	}
}

func (o *ObservabilityConfig) validate(result *ValidationResult) {
	if o.ServiceName == "" {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "observability.service_name",
			Message: "service name cannot be empty",
		})
	}
	if o.TraceSampleRatio < 0 || o.TraceSampleRatio > 1 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "observability.trace_sample_ratio",
			Message: fmt.Sprintf("sample ratio %v must be between 0.0 and 1.0", o.TraceSampleRatio),
		})
	}

	switch o.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		result.Errors = append(result.Errors, ValidationError{
			Field:   "observability.logging.level",
			Message: fmt.Sprintf("unsupported log level %q", o.Logging.Level),
			Hint:    "use debug, info, warn, or error",
		})
	}
	switch o.Logging.Format {
	case "", "json", "text":
	default:
		result.Errors = append(result.Errors, ValidationError{
			Field:   "observability.logging.format",
			Message: fmt.Sprintf("unsupported log format %q", o.Logging.Format),
			Hint:    "use json or text",
		})
	}

	if o.TracingEnabled && o.GetTracesConfig().Endpoint == "" {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "observability.otlp.endpoint",
			Message: "tracing is enabled but no OTLP endpoint is configured",
		})
	}
}
