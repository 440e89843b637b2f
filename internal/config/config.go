package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds server configuration
type Config struct {
	Port      string `env:"PORT" envDefault:"8080"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	DBDriver  string `env:"DB_DRIVER" envDefault:"sqlite"`
	DBConn    string `env:"DB_CONN" envDefault:"gradgoals.db"`
	JWTSecret string `env:"JWT_SECRET" envDefault:"secret"`

	// Redis is optional; the calculator falls back to an in-memory cache.
	RedisAddr string        `env:"REDIS_ADDR"`
	CacheTTL  time.Duration `env:"CACHE_TTL" envDefault:"1h"`

	TreasuryURL     string        `env:"TREASURY_URL" envDefault:"https://home.treasury.gov/resource-center/data-chart-center/interest-rates/pages/xml"`
	TreasuryTimeout time.Duration `env:"TREASURY_TIMEOUT" envDefault:"10s"`
	LoanAddOn       float64       `env:"LOAN_ADD_ON" envDefault:"2.05"`
	LoanRateCap     float64       `env:"LOAN_RATE_CAP" envDefault:"8.25"`

	// SMTP settings; notifications are disabled when SMTPHost is empty.
	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUser     string `env:"SMTP_USER"`
	SMTPPassword string `env:"SMTP_PASSWORD"`
	SenderEmail  string `env:"SENDER_EMAIL" envDefault:"noreply@gradgoals.app"`

	ReminderSchedule string `env:"REMINDER_SCHEDULE" envDefault:"0 9 * * MON"`

	RateLimit       int           `env:"RATE_LIMIT" envDefault:"60"`
	RateLimitWindow time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"1m"`
}

// NewConfig loads configuration from environment variables
func NewConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks required fields and value ranges.
func (c *Config) Validate() error {
	if c.DBConn == "" {
		return fmt.Errorf("DB_CONN is required")
	}
	if c.DBDriver != "postgres" && c.DBDriver != "sqlite" {
		return fmt.Errorf("DB_DRIVER must be postgres or sqlite, got %q", c.DBDriver)
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.RateLimit <= 0 || c.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT and RATE_LIMIT_WINDOW must be positive")
	}
	if c.SMTPHost != "" && c.SenderEmail == "" {
		return fmt.Errorf("SENDER_EMAIL is required when SMTP_HOST is set")
	}
	return nil
}

// NotificationsEnabled reports whether SMTP is configured.
func (c *Config) NotificationsEnabled() bool {
	return c.SMTPHost != ""
}
