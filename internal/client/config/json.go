package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/lightgallery/internal/flagx"
	"github.com/dmitrijs2005/lightgallery/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations
// use timex.Duration so they may be strings like "10s" or integer
// nanoseconds. Absent keys leave the current value untouched.
type JsonConfig struct {
	APIBaseURL     string          `json:"api_base_url"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
	DatabasePath   string          `json:"db_path"`
	RememberFor    *timex.Duration `json:"remember_for"`
	LogLevel       string          `json:"log_level"`
}

// parseJson overlays cfg with the JSON file named by -c or -config. Without
// either flag nothing is loaded.
func parseJson(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.RememberFor != nil {
		cfg.RememberFor = jc.RememberFor.Duration
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	return nil
}
