package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the gateway.
type Config struct {
	App          AppConfig
	Backend      BackendConfig
	Redis        RedisConfig
	Logger       LoggerConfig
	Auth         AuthConfig
	Notification NotificationConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// BackendConfig points at the catalog REST API.
type BackendConfig struct {
	BaseURL        string
	TimeoutSeconds int
}

// RedisConfig holds Redis connection values. An empty Addr disables the
// dashboard cache.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// AuthConfig defines session and credential-cookie parameters.
type AuthConfig struct {
	CookieName       string
	TokenTTLDays     int
	StatsCacheTTLSec int
}

// NotificationConfig holds the security-alert webhook endpoint.
type NotificationConfig struct {
	WebhookURL string
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	backendURL := os.Getenv("BACKEND_BASE_URL")
	if backendURL == "" {
		return nil, fmt.Errorf("BACKEND_BASE_URL is required")
	}

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "manga-admin-gateway"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "8080"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Backend: BackendConfig{
			BaseURL:        backendURL,
			TimeoutSeconds: getEnvAsInt("BACKEND_TIMEOUT_SECONDS", 15),
		},
		Redis: RedisConfig{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Auth: AuthConfig{
			CookieName:       getEnv("AUTH_COOKIE_NAME", "admin_token"),
			TokenTTLDays:     getEnvAsInt("AUTH_TOKEN_TTL_DAYS", 7),
			StatsCacheTTLSec: getEnvAsInt("STATS_CACHE_TTL_SECONDS", 60),
		},
		Notification: NotificationConfig{
			WebhookURL: getEnv("NOTIFY_WEBHOOK_URL", ""),
		},
	}

	return cfg, nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// IsProduction reports whether the app runs in a production-like environment.
func (a AppConfig) IsProduction() bool {
	return a.Env == "production" || a.Env == "staging"
}

// Timeout returns the backend request timeout duration.
func (b BackendConfig) Timeout() time.Duration {
	if b.TimeoutSeconds <= 0 {
		return 15 * time.Second
	}
	return time.Duration(b.TimeoutSeconds) * time.Second
}

// TokenTTL returns the credential cookie lifetime.
func (a AuthConfig) TokenTTL() time.Duration {
	days := a.TokenTTLDays
	if days <= 0 {
		days = 7
	}
	return time.Duration(days) * 24 * time.Hour
}

// StatsCacheTTL returns how long dashboard counters stay cached.
func (a AuthConfig) StatsCacheTTL() time.Duration {
	if a.StatsCacheTTLSec <= 0 {
		return time.Minute
	}
	return time.Duration(a.StatsCacheTTLSec) * time.Second
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}
