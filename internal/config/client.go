package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ClientConfig is the gradgoals CLI configuration file.
type ClientConfig struct {
	API  APIConfig  `toml:"api"`
	Quiz QuizConfig `toml:"quiz"`
}

// APIConfig locates the server and identifies the user.
type APIConfig struct {
	BaseURL string `toml:"base_url"`
	UserID  string `toml:"user_id,omitempty"`
	Token   string `toml:"token,omitempty"`
}

// QuizConfig tunes question selection.
type QuizConfig struct {
	MaxRetries int `toml:"max_retries"`
}

// DefaultClientConfig returns the configuration used when no file exists.
func DefaultClientConfig() ClientConfig {
	return ClientConfig{
		API:  APIConfig{BaseURL: "http://localhost:8080"},
		Quiz: QuizConfig{MaxRetries: 5},
	}
}

// ClientConfigDir returns the XDG-compliant config directory.
func ClientConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "gradgoals")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "gradgoals")
}

// ClientConfigPath returns the full path to the config file.
func ClientConfigPath() string {
	return filepath.Join(ClientConfigDir(), "config.toml")
}

// LoadClient reads the config file at path, returning defaults if it doesn't exist.
func LoadClient(path string) (ClientConfig, error) {
	cfg := DefaultClientConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = DefaultClientConfig().API.BaseURL
	}
	return cfg, nil
}

// SaveClient writes the config to path. The file holds a token, so it is private to the user.
func SaveClient(path string, cfg ClientConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}
