// Package config loads the service configuration from the environment.
//
// Variables are read with the ESTATE_ prefix (a `.env` file is loaded first
// when present), mapped onto the Config structs with koanf and checked with
// go-playground/validator so the process fails fast on missing values.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	// Loads `.env` into the process environment before anything reads it.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of every variable the service reads.
//
// Nesting uses ".", e.g. ESTATE_SERVER.PORT -> server.port -> Config.Server.Port.
const EnvPrefix = "ESTATE_"

// ServiceName identifies the service in logs and APM.
const ServiceName = "estate-api"

// Config is the root configuration object.
//
// Observability and Intake are optional: defaults are injected when absent.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Redis         RedisConfig          `koanf:"redis" validate:"required"`
	Auth          AuthConfig           `koanf:"auth" validate:"required"`
	Intake        IntakeConfig         `koanf:"intake"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds the runtime environment label ("local", "production", ...).
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups HTTP server settings. Timeouts are in seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`
}

// RedisConfig holds the Redis address ("host:port") used by the submission
// queue.
type RedisConfig struct {
	Address string `koanf:"address" validate:"required"`
}

// AuthConfig stores the Clerk secret key used to verify admin sessions.
type AuthConfig struct {
	SecretKey string `koanf:"secret_key" validate:"required"`
}

// IntakeConfig tunes the public intake routes.
type IntakeConfig struct {
	// InquiryRateLimit is the sustained number of inquiries per second
	// accepted from one client IP.
	InquiryRateLimit float64 `koanf:"inquiry_rate_limit" validate:"gte=0"`

	// InquiryBurst is how many inquiries one IP may send at once.
	InquiryBurst int `koanf:"inquiry_burst" validate:"gte=0"`
}

// DefaultIntakeConfig allows one inquiry every ten seconds with a burst of
// three per client.
func DefaultIntakeConfig() IntakeConfig {
	return IntakeConfig{
		InquiryRateLimit: 0.1,
		InquiryBurst:     3,
	}
}

// listKeys are read as comma-separated lists.
var listKeys = map[string]bool{
	"server.cors_allowed_origins":        true,
	"observability.health_checks.checks": true,
}

func splitList(value string) []string {
	items := make([]string, 0, strings.Count(value, ",")+1)
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// Load reads the environment, unmarshals it into Config, validates it and
// applies defaults.
func Load() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.ProviderWithValue(EnvPrefix, ".", func(key, value string) (string, interface{}) {
		key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
		if listKeys[key] {
			return key, splitList(value)
		}
		return key, value
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	mainConfig := &Config{}
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal main config: %w", err)
	}

	if err := validator.New().Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if mainConfig.Intake.InquiryRateLimit == 0 {
		mainConfig.Intake.InquiryRateLimit = DefaultIntakeConfig().InquiryRateLimit
	}
	if mainConfig.Intake.InquiryBurst == 0 {
		mainConfig.Intake.InquiryBurst = DefaultIntakeConfig().InquiryBurst
	}

	if mainConfig.Observability == nil {
		mainConfig.Observability = DefaultObservabilityConfig()
	}

	// Service name and environment always follow the primary config.
	mainConfig.Observability.ServiceName = ServiceName
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return mainConfig, nil
}
