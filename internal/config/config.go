package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the service.
type Config struct {
	App     AppConfig
	Store   StoreConfig
	Logger  LoggerConfig
	Auth    AuthConfig
	Tracing TracingConfig
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

// StoreDriver selects the blob store backend.
type StoreDriver string

const (
	DriverBadger   StoreDriver = "badger"
	DriverRedis    StoreDriver = "redis"
	DriverPostgres StoreDriver = "postgres"
	DriverMemory   StoreDriver = "memory"
)

// StoreConfig holds blob store settings for every supported driver.
type StoreConfig struct {
	Driver    StoreDriver
	KeyPrefix string
	LatencyMS int

	BadgerPath     string
	BadgerInMemory bool

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	PostgresDSN      string
	PostgresMaxConns int32
	PostgresMinConns int32
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// AuthConfig defines authentication parameters.
type AuthConfig struct {
	AdminUsername string
	AdminPassword string
	// AdminPasswordHash, when set, takes precedence over AdminPassword.
	AdminPasswordHash     string
	JWTSecret             string
	AccessTokenTTLMinutes int
	BcryptCost            int
}

// TracingConfig controls the OpenTelemetry exporter.
type TracingConfig struct {
	Enabled        bool
	JaegerEndpoint string
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "admin-dashboard"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "8080"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Store: StoreConfig{
			Driver:           StoreDriver(getEnv("STORE_DRIVER", string(DriverBadger))),
			KeyPrefix:        getEnv("STORE_KEY_PREFIX", "admin_dashboard_"),
			LatencyMS:        getEnvAsInt("STORE_LATENCY_MS", 0),
			BadgerPath:       getEnv("BADGER_PATH", "./data/badger"),
			BadgerInMemory:   getEnvAsBool("BADGER_IN_MEMORY", false),
			RedisAddr:        getEnv("REDIS_ADDR", "127.0.0.1:6379"),
			RedisPassword:    os.Getenv("REDIS_PASSWORD"),
			RedisDB:          redisDB,
			PostgresDSN:      os.Getenv("POSTGRES_DSN"),
			PostgresMaxConns: int32(getEnvAsInt("POSTGRES_MAX_CONNS", 10)),
			PostgresMinConns: int32(getEnvAsInt("POSTGRES_MIN_CONNS", 2)),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Auth: AuthConfig{
			AdminUsername:         getEnv("AUTH_ADMIN_USERNAME", "admin"),
			AdminPassword:         getEnv("AUTH_ADMIN_PASSWORD", "admin"),
			AdminPasswordHash:     os.Getenv("AUTH_ADMIN_PASSWORD_HASH"),
			JWTSecret:             getEnv("AUTH_JWT_SECRET", "dev-secret"),
			AccessTokenTTLMinutes: getEnvAsInt("AUTH_ACCESS_TOKEN_TTL_MINUTES", 60),
			BcryptCost:            getEnvAsInt("AUTH_BCRYPT_COST", 12),
		},
		Tracing: TracingConfig{
			Enabled:        getEnvAsBool("TRACING_ENABLED", false),
			JaegerEndpoint: getEnv("JAEGER_ENDPOINT", "http://localhost:14268/api/traces"),
		},
	}

	switch cfg.Store.Driver {
	case DriverBadger, DriverRedis, DriverPostgres, DriverMemory:
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER: %q", cfg.Store.Driver)
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

// Latency returns the simulated per-operation store latency.
func (s StoreConfig) Latency() time.Duration {
	if s.LatencyMS <= 0 {
		return 0
	}
	return time.Duration(s.LatencyMS) * time.Millisecond
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

func getEnvAsBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}
