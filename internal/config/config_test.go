package config

import (
	"testing"
	"time"
)

func TestNewConfig_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_CONN", "host=localhost dbname=gradgoals sslmode=disable")
	t.Setenv("CACHE_TTL", "5m")
	t.Setenv("RATE_LIMIT", "10")

	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	if cfg.Port != "9090" || cfg.DBDriver != "postgres" {
		t.Errorf("got port %q driver %q", cfg.Port, cfg.DBDriver)
	}
	if cfg.CacheTTL != 5*time.Minute {
		t.Errorf("CacheTTL = %v, want 5m", cfg.CacheTTL)
	}
	if cfg.RateLimit != 10 || cfg.RateLimitWindow != time.Minute {
		t.Errorf("rate limit = %d per %v", cfg.RateLimit, cfg.RateLimitWindow)
	}
	if cfg.NotificationsEnabled() {
		t.Error("notifications should be off without SMTP_HOST")
	}
}

func TestValidate(t *testing.T) {
	base := func() Config {
		return Config{DBDriver: "sqlite", DBConn: "x.db", JWTSecret: "s", RateLimit: 1, RateLimitWindow: time.Second}
	}
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(*Config) {}, false},
		{"no conn", func(c *Config) { c.DBConn = "" }, true},
		{"bad driver", func(c *Config) { c.DBDriver = "mysql" }, true},
		{"no secret", func(c *Config) { c.JWTSecret = "" }, true},
		{"zero limit", func(c *Config) { c.RateLimit = 0 }, true},
		{"smtp without sender", func(c *Config) { c.SMTPHost = "smtp.example.com"; c.SenderEmail = "" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base()
			tt.mutate(&c)
			if err := c.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
