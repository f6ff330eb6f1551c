package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds every runtime setting of the service. Values come from the
// environment so the same binary runs unchanged across environments.
type Config struct {
	AppEnv         string
	ServiceName    string
	ServiceVersion string

	HTTPAddr     string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	LogLevel           string
	CORSAllowedOrigins []string

	FPLBaseURL                 string
	FPLTimeout                 time.Duration
	FPLMaxRetries              int
	FPLCircuitEnabled          bool
	FPLCircuitFailureThreshold int
	FPLCircuitOpenTimeout      time.Duration
	FPLCircuitHalfOpenMaxReq   int

	ResultsBaseURL                 string
	ResultsSeasons                 []string
	ResultsTimeout                 time.Duration
	ResultsMaxRetries              int
	ResultsCircuitEnabled          bool
	ResultsCircuitFailureThreshold int
	ResultsCircuitOpenTimeout      time.Duration
	ResultsCircuitHalfOpenMaxReq   int

	UptraceDSN         string
	UptraceEnabled     bool
	UptraceLogsEnabled bool
	PyroscopeEnabled   bool
	PyroscopeEndpoint  string
	PyroscopeAuthToken string
	PprofEnabled       bool
	PprofAddr          string
}

// Load reads configuration from environment variables and validates it.
func Load() (*Config, error) {
	cfg := &Config{
		AppEnv:         getEnv("APP_ENV", "development"),
		ServiceName:    getEnv("APP_SERVICE_NAME", "fpl-compare"),
		ServiceVersion: getEnv("APP_SERVICE_VERSION", "dev"),

		HTTPAddr: getEnv("APP_HTTP_ADDR", ":8080"),

		LogLevel: getEnv("APP_LOG_LEVEL", "info"),

		FPLBaseURL: getEnv("FPL_BASE_URL", "https://fantasy.premierleague.com/api"),

		ResultsBaseURL: getEnv("RESULTS_BASE_URL", "https://raw.githubusercontent.com/openfootball/football.json/master"),

		UptraceDSN:         getEnv("UPTRACE_DSN", ""),
		PyroscopeEndpoint:  getEnv("PYROSCOPE_ENDPOINT", ""),
		PyroscopeAuthToken: getEnv("PYROSCOPE_AUTH_TOKEN", ""),
		PprofAddr:          getEnv("PPROF_ADDR", "localhost:6060"),
	}

	var err error

	if cfg.ReadTimeout, err = getEnvAsDuration("APP_READ_TIMEOUT", 15*time.Second); err != nil {
		return nil, err
	}
	if cfg.WriteTimeout, err = getEnvAsDuration("APP_WRITE_TIMEOUT", 30*time.Second); err != nil {
		return nil, err
	}
	if cfg.IdleTimeout, err = getEnvAsDuration("APP_IDLE_TIMEOUT", 60*time.Second); err != nil {
		return nil, err
	}

	cfg.CORSAllowedOrigins = getEnvAsCSV("CORS_ALLOWED_ORIGINS", []string{"*"})

	if cfg.FPLTimeout, err = getEnvAsDuration("FPL_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if cfg.FPLMaxRetries, err = getEnvAsInt("FPL_MAX_RETRIES", 1); err != nil {
		return nil, err
	}
	if cfg.FPLCircuitEnabled, err = getEnvAsBool("FPL_CIRCUIT_ENABLED", true); err != nil {
		return nil, err
	}
	if cfg.FPLCircuitFailureThreshold, err = getEnvAsInt("FPL_CIRCUIT_FAILURE_THRESHOLD", 5); err != nil {
		return nil, err
	}
	if cfg.FPLCircuitOpenTimeout, err = getEnvAsDuration("FPL_CIRCUIT_OPEN_TIMEOUT", 15*time.Second); err != nil {
		return nil, err
	}
	if cfg.FPLCircuitHalfOpenMaxReq, err = getEnvAsInt("FPL_CIRCUIT_HALF_OPEN_MAX_REQ", 2); err != nil {
		return nil, err
	}

	cfg.ResultsSeasons = getEnvAsCSV("RESULTS_SEASONS", []string{"2025-26", "2024-25"})

	if cfg.ResultsTimeout, err = getEnvAsDuration("RESULTS_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if cfg.ResultsMaxRetries, err = getEnvAsInt("RESULTS_MAX_RETRIES", 1); err != nil {
		return nil, err
	}
	if cfg.ResultsCircuitEnabled, err = getEnvAsBool("RESULTS_CIRCUIT_ENABLED", true); err != nil {
		return nil, err
	}
	if cfg.ResultsCircuitFailureThreshold, err = getEnvAsInt("RESULTS_CIRCUIT_FAILURE_THRESHOLD", 5); err != nil {
		return nil, err
	}
	if cfg.ResultsCircuitOpenTimeout, err = getEnvAsDuration("RESULTS_CIRCUIT_OPEN_TIMEOUT", 15*time.Second); err != nil {
		return nil, err
	}
	if cfg.ResultsCircuitHalfOpenMaxReq, err = getEnvAsInt("RESULTS_CIRCUIT_HALF_OPEN_MAX_REQ", 2); err != nil {
		return nil, err
	}

	if cfg.UptraceEnabled, err = getEnvAsBool("UPTRACE_ENABLED", false); err != nil {
		return nil, err
	}
	if cfg.UptraceLogsEnabled, err = getEnvAsBool("UPTRACE_LOGS_ENABLED", true); err != nil {
		return nil, err
	}
	if cfg.PyroscopeEnabled, err = getEnvAsBool("PYROSCOPE_ENABLED", false); err != nil {
		return nil, err
	}
	if cfg.PprofEnabled, err = getEnvAsBool("PPROF_ENABLED", false); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.HTTPAddr == "" {
		return fmt.Errorf("APP_HTTP_ADDR must not be empty")
	}
	if c.FPLBaseURL == "" {
		return fmt.Errorf("FPL_BASE_URL must not be empty")
	}
	if c.ResultsBaseURL == "" {
		return fmt.Errorf("RESULTS_BASE_URL must not be empty")
	}
	if len(c.ResultsSeasons) == 0 {
		return fmt.Errorf("RESULTS_SEASONS must list at least one season")
	}
	if c.FPLMaxRetries < 0 {
		return fmt.Errorf("FPL_MAX_RETRIES must not be negative")
	}
	if c.ResultsMaxRetries < 0 {
		return fmt.Errorf("RESULTS_MAX_RETRIES must not be negative")
	}
	if c.UptraceEnabled && c.UptraceDSN == "" {
		return fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED is true")
	}
	if c.PyroscopeEnabled && c.PyroscopeEndpoint == "" {
		return fmt.Errorf("PYROSCOPE_ENDPOINT is required when PYROSCOPE_ENABLED is true")
	}
	return nil
}

// IsProduction reports whether the service runs with production settings.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, "production")
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) (int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(raw) == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return parsed, nil
}

func getEnvAsBool(key string, fallback bool) (bool, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(raw) == "" {
		return fallback, nil
	}
	parsed, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return false, fmt.Errorf("parse %s: %w", key, err)
	}
	return parsed, nil
}

func getEnvAsDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(raw) == "" {
		return fallback, nil
	}
	parsed, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return parsed, nil
}

func getEnvAsCSV(key string, fallback []string) []string {
	raw, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(raw) == "" {
		return fallback
	}

	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
