package config

import (
	"log/slog"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if cfg.CachePath != "dashboard.db" {
		t.Fatalf("default cache path = %q", cfg.CachePath)
	}
	if cfg.AutoActivate {
		t.Fatalf("auto-activation must default to off")
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Fatalf("default log level = %v", cfg.LogLevel)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DASHBOARD_CACHE_PATH", "/tmp/console.db")
	t.Setenv("DASHBOARD_AUTO_ACTIVATE", "true")
	t.Setenv("DASHBOARD_LOG_LEVEL", "debug")

	cfg := Load()
	if cfg.CachePath != "/tmp/console.db" {
		t.Fatalf("cache path = %q", cfg.CachePath)
	}
	if !cfg.AutoActivate {
		t.Fatalf("expected auto-activation on")
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Fatalf("log level = %v", cfg.LogLevel)
	}
}

func TestBadBoolFallsBack(t *testing.T) {
	t.Setenv("DASHBOARD_AUTO_ACTIVATE", "maybe")
	if Load().AutoActivate {
		t.Fatalf("unparseable bool must keep the default")
	}
}
