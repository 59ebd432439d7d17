package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v9"
)

const minJWTSecretLength = 32

var (
	ErrJWTSecretTooShort      = errors.New("JWT_SECRET_KEY must be at least 32 characters")
	ErrInvalidLookupLimit     = errors.New("RESOLVER_TOPIC_LOOKUP_CONCURRENCY must be positive")
	ErrInvalidAuditTimeout    = errors.New("AUDIT_WRITE_TIMEOUT must be positive")
	ErrInvalidPostgresSSLMode = errors.New("POSTGRES_SSLMODE must be one of disable, require, verify-ca, verify-full")
)

// Config holds all service configuration.
type Config struct {
	// Server Configuration
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Storage Configuration
	Postgres PostgresConfig
	Redis    RedisConfig

	// Authentication & Security Configuration
	JWT JWTConfig

	// Recipient Resolution Configuration
	FeatureFlag FeatureFlagConfig
	Resolver    ResolverConfig
	Audit       AuditConfig
}

// HTTPServerConfig is the configuration for the HTTP server
type HTTPServerConfig struct {
	Host string `env:"HOST" envDefault:""`
	Port int    `env:"APP_PORT" envDefault:"8080"`
	Mode string `env:"API_MODE" envDefault:"debug"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
}

// LoggerConfig is the configuration for the logger
type LoggerConfig struct {
	Level        string `env:"LOGGER_LEVEL" envDefault:"debug"`
	Mode         string `env:"LOGGER_MODE" envDefault:"development"`
	Encoding     string `env:"LOGGER_ENCODING" envDefault:"console"`
	ColorEnabled bool   `env:"LOGGER_COLOR_ENABLED" envDefault:"true"`
}

// PostgresConfig is the configuration for PostgreSQL
type PostgresConfig struct {
	Host     string `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port     int    `env:"POSTGRES_PORT" envDefault:"5432"`
	User     string `env:"POSTGRES_USER" envDefault:"postgres"`
	Password string `env:"POSTGRES_PASSWORD"`
	DBName   string `env:"POSTGRES_DB" envDefault:"postgres"`
	SSLMode  string `env:"POSTGRES_SSLMODE" envDefault:"disable"`
}

// RedisConfig is the configuration for Redis
type RedisConfig struct {
	Host     string `env:"REDIS_HOST" envDefault:"localhost"`
	Port     int    `env:"REDIS_PORT" envDefault:"6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
	UseTLS   bool   `env:"REDIS_USE_TLS" envDefault:"false"`

	// Connection pool settings
	MaxRetries      int           `env:"REDIS_MAX_RETRIES" envDefault:"3"`
	MinIdleConns    int           `env:"REDIS_MIN_IDLE_CONNS" envDefault:"10"`
	PoolSize        int           `env:"REDIS_POOL_SIZE" envDefault:"100"`
	PoolTimeout     time.Duration `env:"REDIS_POOL_TIMEOUT" envDefault:"4s"`
	ConnMaxIdleTime time.Duration `env:"REDIS_CONN_MAX_IDLE_TIME" envDefault:"5m"`
	ConnMaxLifetime time.Duration `env:"REDIS_CONN_MAX_LIFETIME" envDefault:"30m"`
}

// JWTConfig is the configuration for the JWT
type JWTConfig struct {
	SecretKey string `env:"JWT_SECRET_KEY,required"`
}

// FeatureFlagConfig holds flag values used when no override is stored.
type FeatureFlagConfig struct {
	IsTopicNotificationEnabled bool `env:"FF_IS_TOPIC_NOTIFICATION_ENABLED" envDefault:"false"`
}

// ResolverConfig tunes recipient resolution.
type ResolverConfig struct {
	TopicLookupConcurrency int `env:"RESOLVER_TOPIC_LOOKUP_CONCURRENCY" envDefault:"8"`
}

// AuditConfig is the configuration for the execution log writer
type AuditConfig struct {
	Enabled      bool          `env:"AUDIT_ENABLED" envDefault:"true"`
	WriteTimeout time.Duration `env:"AUDIT_WRITE_TIMEOUT" envDefault:"5s"`
}

// Load parses configuration from environment variables and validates it.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if len(c.JWT.SecretKey) < minJWTSecretLength {
		return ErrJWTSecretTooShort
	}
	if c.Resolver.TopicLookupConcurrency <= 0 {
		return ErrInvalidLookupLimit
	}
	if c.Audit.WriteTimeout <= 0 {
		return ErrInvalidAuditTimeout
	}
	switch c.Postgres.SSLMode {
	case "disable", "require", "verify-ca", "verify-full":
	default:
		return ErrInvalidPostgresSSLMode
	}
	return nil
}
