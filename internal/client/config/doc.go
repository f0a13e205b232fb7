// Package config loads runtime configuration for the light gallery CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via flags: -c or -config.
//  3. LG_* environment variables, read with cleanenv.
//  4. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   API base URL
//	-t int      request timeout (seconds)
//	-d string   credential database path
//	-l string   log level
//
// # JSON schema
//
//	{
//	  "api_base_url": "http://localhost:8080/api",
//	  "request_timeout": "10s",
//	  "db_path": "lightgallery.db",
//	  "remember_for": "168h",
//	  "log_level": "info"
//	}
//
// # Environment
//
//	LG_API_BASE_URL, LG_REQUEST_TIMEOUT, LG_DB_PATH, LG_REMEMBER_FOR, LG_LOG_LEVEL
package config
