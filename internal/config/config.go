// Package config loads the service configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds every setting the server and the seed tool read at startup.
type Config struct {
	Env      string `env:"APP_ENV,default=development"`
	Port     string `env:"PORT,default=5000"`
	LogLevel string `env:"LOG_LEVEL,default=info"`

	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Limits   RateLimitConfig

	CORSOrigins    string        `env:"CORS_ORIGINS,default=*"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT,default=10s"`
}

// DatabaseConfig holds the PostgreSQL DSN and pool settings.
type DatabaseConfig struct {
	URL             string        `env:"DATABASE_URL"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS,default=10"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS,default=100"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME,default=1h"`
	ConnMaxIdleTime time.Duration `env:"DB_CONN_MAX_IDLE_TIME,default=30m"`
	SlowThreshold   time.Duration `env:"DB_SLOW_THRESHOLD,default=1s"`
}

// RedisConfig is optional; an empty Addr keeps limiter state in memory.
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,default=0"`
}

type JWTConfig struct {
	Secret string        `env:"JWT_SECRET"`
	TTL    time.Duration `env:"JWT_TTL,default=168h"`
	Issuer string        `env:"JWT_ISSUER,default=counpaign-api"`
}

type RateLimitConfig struct {
	Max        int           `env:"RATE_LIMIT_MAX,default=5000"`
	Window     time.Duration `env:"RATE_LIMIT_WINDOW,default=15m"`
	AuthMax    int           `env:"AUTH_RATE_LIMIT_MAX,default=20"`
	AuthWindow time.Duration `env:"AUTH_RATE_LIMIT_WINDOW,default=1m"`
}

var (
	ErrMissingDatabaseURL = errors.New("config: DATABASE_URL is required")
	ErrMissingJWTSecret   = errors.New("config: JWT_SECRET is required")
)

// LoadEnv loads variables from a .env file if present.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		logrus.Debugf("no .env file found: %v", err)
	}
}

// Load reads .env (if any) and decodes the environment into a Config.
func Load() (*Config, error) {
	LoadEnv()
	return FromEnv()
}

// FromEnv decodes the current environment without touching .env.
func FromEnv() (*Config, error) {
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return nil, fmt.Errorf("config: decode environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports missing required settings.
func (c *Config) Validate() error {
	if c.Database.URL == "" {
		return ErrMissingDatabaseURL
	}
	if c.JWT.Secret == "" {
		return ErrMissingJWTSecret
	}
	if c.JWT.TTL <= 0 {
		return fmt.Errorf("config: JWT_TTL must be positive, got %s", c.JWT.TTL)
	}
	return nil
}

// IsProduction checks if the app runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
