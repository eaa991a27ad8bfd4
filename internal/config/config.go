package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds process configuration. The API key only comes from the
// environment; model and temperature may also be set in an optional
// ~/.config/documind/config.toml.
type Config struct {
	GeminiAPIKey string  `toml:"-"`
	Model        string  `toml:"model"`
	Temperature  float64 `toml:"temperature"`
}

func Load() (*Config, error) {
	cfg := &Config{
		Model:       "gemini-2.5-flash",
		Temperature: 0.3,
	}

	if home, err := os.UserHomeDir(); err == nil {
		path := filepath.Join(home, ".config", "documind", "config.toml")
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	if v := os.Getenv("DOCUMIND_MODEL"); v != "" {
		cfg.Model = v
	}
	cfg.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")

	if cfg.Model == "" {
		cfg.Model = "gemini-2.5-flash"
	}
	if cfg.Temperature < 0 || cfg.Temperature > 2 {
		cfg.Temperature = 0.3
	}

	return cfg, nil
}

// Validate checks credentials that are only required once a chat session is
// about to start.
func (c *Config) Validate() error {
	if c.GeminiAPIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is required")
	}
	return nil
}
