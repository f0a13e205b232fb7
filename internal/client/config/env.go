package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// envConfig lists the LG_* variables. Fields carry no env-default so an
// unset variable keeps whatever the earlier sources produced.
type envConfig struct {
	APIBaseURL     string        `env:"LG_API_BASE_URL"`
	RequestTimeout time.Duration `env:"LG_REQUEST_TIMEOUT"`
	DatabasePath   string        `env:"LG_DB_PATH"`
	RememberFor    time.Duration `env:"LG_REMEMBER_FOR"`
	LogLevel       string        `env:"LG_LOG_LEVEL"`
}

func parseEnv(cfg *Config) error {
	var ec envConfig
	if err := cleanenv.ReadEnv(&ec); err != nil {
		return fmt.Errorf("failed to read environment: %w", err)
	}

	if ec.APIBaseURL != "" {
		cfg.APIBaseURL = ec.APIBaseURL
	}
	if ec.RequestTimeout != 0 {
		cfg.RequestTimeout = ec.RequestTimeout
	}
	if ec.DatabasePath != "" {
		cfg.DatabasePath = ec.DatabasePath
	}
	if ec.RememberFor != 0 {
		cfg.RememberFor = ec.RememberFor
	}
	if ec.LogLevel != "" {
		cfg.LogLevel = ec.LogLevel
	}
	return nil
}
