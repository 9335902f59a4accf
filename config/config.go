// Package config holds process-wide configuration loaded once at startup.
// Values come from the environment (a .env file is honored in development)
// and are treated as immutable after Load.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// DevSessionSecret is the fallback signing secret for non-production
// environments. It is public knowledge and must never reach production;
// Validate rejects it there.
const DevSessionSecret = "default_secret_key_change_me"

// ServiceConfig identifies the running service.
type ServiceConfig struct {
	Name    string
	Version string
	Env     string
	Port    string
}

// LoggingConfig controls the global zerolog level.
type LoggingConfig struct {
	Level string
}

// DatabaseConfig holds the Postgres connection settings.
type DatabaseConfig struct {
	URL string
}

// SessionConfig holds the session-token signing secret and cookie policy.
type SessionConfig struct {
	// Secret signs session tokens. Loaded from SESSION_SECRET; in
	// non-production it falls back to DevSessionSecret.
	Secret string
	// UsingDevSecret is true when Secret is the insecure fallback.
	UsingDevSecret bool
	// TTL is the session lifetime; cookie expiry matches token expiry.
	TTL time.Duration
	// CookieSecure sets the Secure flag on the session cookie.
	CookieSecure bool
}

// TracingConfig controls OpenTelemetry export.
type TracingConfig struct {
	Enabled    bool
	Endpoint   string
	SampleRate float64
}

// ProfilingConfig controls Pyroscope continuous profiling.
type ProfilingConfig struct {
	Enabled  bool
	Endpoint string
}

// ShutdownConfig controls graceful shutdown timing, in seconds.
type ShutdownConfig struct {
	TimeoutSeconds             int
	ReadinessDrainDelaySeconds int
}

// Config is the root configuration object.
type Config struct {
	Service   ServiceConfig
	Logging   LoggingConfig
	Database  DatabaseConfig
	Session   SessionConfig
	Tracing   TracingConfig
	Profiling ProfilingConfig
	Shutdown  ShutdownConfig
}

// Load reads configuration from the environment. A missing .env file is not
// an error; explicit environment variables always win over .env contents.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		Service: ServiceConfig{
			Name:    getEnv("SERVICE_NAME", "secure-dash"),
			Version: getEnv("SERVICE_VERSION", "dev"),
			Env:     getEnv("APP_ENV", "development"),
			Port:    getEnv("PORT", "8080"),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Database: DatabaseConfig{
			URL: getEnv("DATABASE_URL", ""),
		},
		Session: SessionConfig{
			Secret:       getEnv("SESSION_SECRET", ""),
			TTL:          getEnvDuration("SESSION_TTL", 24*time.Hour),
			CookieSecure: getEnvBool("SESSION_COOKIE_SECURE", false),
		},
		Tracing: TracingConfig{
			Enabled:    getEnvBool("TRACING_ENABLED", false),
			Endpoint:   getEnv("TRACING_ENDPOINT", "http://localhost:4318"),
			SampleRate: getEnvFloat("TRACING_SAMPLE_RATE", 1.0),
		},
		Profiling: ProfilingConfig{
			Enabled:  getEnvBool("PROFILING_ENABLED", false),
			Endpoint: getEnv("PROFILING_ENDPOINT", "http://localhost:4040"),
		},
		Shutdown: ShutdownConfig{
			TimeoutSeconds:             getEnvInt("SHUTDOWN_TIMEOUT_SECONDS", 10),
			ReadinessDrainDelaySeconds: getEnvInt("READINESS_DRAIN_DELAY_SECONDS", 0),
		},
	}

	if cfg.Session.Secret == "" && !cfg.IsProduction() {
		cfg.Session.Secret = DevSessionSecret
		cfg.Session.UsingDevSecret = true
	}
	if cfg.IsProduction() {
		// Outside local development the cookie always carries Secure.
		cfg.Session.CookieSecure = true
	}

	return cfg
}

// Validate checks the loaded configuration and returns the first problem
// found. The service must not start when Validate fails.
func (c *Config) Validate() error {
	if c.Service.Port == "" {
		return fmt.Errorf("PORT must not be empty")
	}
	if _, err := strconv.Atoi(c.Service.Port); err != nil {
		return fmt.Errorf("PORT must be numeric, got %q", c.Service.Port)
	}
	if c.Database.URL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.IsProduction() {
		if c.Session.Secret == "" || c.Session.Secret == DevSessionSecret {
			return fmt.Errorf("SESSION_SECRET is required in production")
		}
	}
	if len(c.Session.Secret) < 16 && !c.Session.UsingDevSecret {
		return fmt.Errorf("SESSION_SECRET must be at least 16 bytes")
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive, got %s", c.Session.TTL)
	}
	if c.Tracing.SampleRate < 0 || c.Tracing.SampleRate > 1 {
		return fmt.Errorf("TRACING_SAMPLE_RATE must be in [0,1], got %v", c.Tracing.SampleRate)
	}
	if c.Shutdown.TimeoutSeconds <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT_SECONDS must be positive")
	}
	return nil
}

// IsProduction reports whether the service runs with production hardening.
func (c *Config) IsProduction() bool {
	return c.Service.Env == "production"
}

// GetShutdownTimeoutDuration returns the graceful shutdown timeout.
func (c *Config) GetShutdownTimeoutDuration() time.Duration {
	return time.Duration(c.Shutdown.TimeoutSeconds) * time.Second
}

// GetReadinessDrainDelayDuration returns how long to fail readiness before
// shutting the HTTP server down.
func (c *Config) GetReadinessDrainDelayDuration() time.Duration {
	return time.Duration(c.Shutdown.ReadinessDrainDelaySeconds) * time.Second
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
