// Package config reads the process configuration from environment
// variables. Local-friendly defaults apply everywhere; a .env file is
// picked up by godotenv in the entry point.
package config

import (
	"log/slog"
	"os"
	"strconv"
)

// Config is the assembled process configuration.
//
// Supported env vars:
//   - DASHBOARD_CACHE_PATH (default: dashboard.db)
//   - DASHBOARD_AUTO_ACTIVATE (default: false; completing technical
//     setup also activates an eligible pending agreement)
//   - DASHBOARD_LOG_LEVEL (debug|info|warn|error, default: info)
type Config struct {
	CachePath    string
	AutoActivate bool
	LogLevel     slog.Level
}

// Load builds the configuration from the environment.
func Load() Config {
	return Config{
		CachePath:    getenvDefault("DASHBOARD_CACHE_PATH", "dashboard.db"),
		AutoActivate: getenvBool("DASHBOARD_AUTO_ACTIVATE", false),
		LogLevel:     parseLevel(getenvDefault("DASHBOARD_LOG_LEVEL", "info")),
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
