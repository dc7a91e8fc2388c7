package config

import (
	"fmt"
	"time"
)

// ObservabilityConfig groups logging, New Relic and health check settings.
type ObservabilityConfig struct {
	ServiceName  string             `koanf:"service_name" validate:"required"`
	Environment  string             `koanf:"environment" validate:"required"`
	Logging      LoggingConfig      `koanf:"logging" validate:"required"`
	NewRelic     NewRelicConfig     `koanf:"new_relic" validate:"required"`
	HealthChecks HealthChecksConfig `koanf:"health_checks" validate:"required"`
}

// LoggingConfig holds application logging configuration.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `koanf:"level" validate:"required"`

	// Format is "json" or "console". JSON is only used in production.
	Format string `koanf:"format" validate:"required"`
}

// NewRelicConfig holds New Relic APM settings. An empty LicenseKey disables
// the agent.
type NewRelicConfig struct {
	LicenseKey                string `koanf:"license_key"`
	AppLogForwardingEnabled   bool   `koanf:"app_log_forwarding_enabled"`
	DistributedTracingEnabled bool   `koanf:"distributed_tracing_enabled"`
	DebugLogging              bool   `koanf:"debug_logging"`
}

// HealthChecksConfig controls the dependency checks behind GET /status.
type HealthChecksConfig struct {
	Enabled bool `koanf:"enabled"`

	// Timeout bounds each dependency ping.
	Timeout time.Duration `koanf:"timeout" validate:"min=1s"`

	// Checks names the dependencies to ping. Only "redis" is known.
	Checks []string `koanf:"checks"`
}

// DefaultObservabilityConfig is used when no observability block is set.
func DefaultObservabilityConfig() *ObservabilityConfig {
	return &ObservabilityConfig{
		ServiceName: ServiceName,
		Environment: "development",
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		NewRelic: NewRelicConfig{
			AppLogForwardingEnabled:   true,
			DistributedTracingEnabled: true,
			DebugLogging:              false, // mixes agent output into our log format
		},
		HealthChecks: HealthChecksConfig{
			Enabled: true,
			Timeout: 5 * time.Second,
			Checks:  []string{"redis"},
		},
	}
}

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks the rules struct tags cannot express.
func (c *ObservabilityConfig) Validate() error {
	if c.ServiceName == "" {
		return fmt.Errorf("service_name is required")
	}

	if c.Logging.Level != "" && !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s (must be one of: debug, info, warn, error)", c.Logging.Level)
	}

	if c.HealthChecks.Enabled && c.HealthChecks.Timeout < time.Second {
		return fmt.Errorf("health_checks timeout must be at least 1s")
	}

	return nil
}

// GetLogLevel returns the configured level, defaulting to info in
// production and debug in development.
func (c *ObservabilityConfig) GetLogLevel() string {
	switch c.Environment {
	case "production":
		if c.Logging.Level == "" {
			return "info"
		}
	case "development":
		if c.Logging.Level == "" {
			return "debug"
		}
	}
	return c.Logging.Level
}

// IsProduction reports whether the service runs in production.
func (c *ObservabilityConfig) IsProduction() bool {
	return c.Environment == "production"
}

// HealthCheckEnabled reports whether the named dependency should be pinged.
func (c *ObservabilityConfig) HealthCheckEnabled(name string) bool {
	if !c.HealthChecks.Enabled {
		return false
	}
	for _, check := range c.HealthChecks.Checks {
		if check == name {
			return true
		}
	}
	return false
}
