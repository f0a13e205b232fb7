package config

import (
	"time"

	"github.com/dmitrijs2005/lightgallery/internal/client/session"
)

// Config holds runtime settings for the light gallery CLI.
//
// Fields:
//   - APIBaseURL: base URL of the REST API, e.g. http://localhost:8080/api.
//   - RequestTimeout: per-request timeout of the API client.
//   - DatabasePath: SQLite file holding the remembered credential.
//   - RememberFor: how long a remembered login stays valid; 0 means no cap.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	DatabasePath   string
	RememberFor    time.Duration
	LogLevel       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8080/api"
	c.RequestTimeout = 10 * time.Second
	c.DatabasePath = "lightgallery.db"
	c.RememberFor = session.DefaultRememberFor
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags. Later sources
// take precedence over earlier ones. args excludes the program name.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}
