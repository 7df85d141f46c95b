package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Env holds overrides read from the environment (and a .env file if present).
type Env struct {
	ConfigFile string `env:"POKERFORMS_CONFIG" envDefault:"pokerforms.hcl"`
	Variant    string `env:"POKERFORMS_VARIANT"`
	LogLevel   string `env:"POKERFORMS_LOG_LEVEL"`
	Seed       *int64 `env:"POKERFORMS_SEED"`
}

// LoadEnv loads .env files (missing files are ignored) and parses POKERFORMS_* variables.
func LoadEnv(files ...string) (*Env, error) {
	_ = godotenv.Load(files...)
	return ParseEnv()
}

// ParseEnv parses POKERFORMS_* variables without touching .env files.
func ParseEnv() (*Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &e, nil
}

// Apply overlays non-empty environment values onto cfg.
func (e *Env) Apply(cfg *Config) error {
	if e.LogLevel != "" {
		cfg.LogLevel = e.LogLevel
	}
	if e.Variant != "" {
		if _, err := cfg.Variant(e.Variant); err != nil {
			return fmt.Errorf("POKERFORMS_VARIANT: %w", err)
		}
		cfg.DefaultVariant = e.Variant
	}
	return nil
}
