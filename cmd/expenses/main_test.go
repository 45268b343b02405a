package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"expenses/internal/config"
	applog "expenses/internal/log"
)

func testLogger(buf *bytes.Buffer) *applog.Logger {
	return applog.New(applog.Config{Level: slog.LevelDebug, Component: applog.ComponentApp, Output: buf})
}

func validConfig() *config.Config {
	return &config.Config{
		Port:                   "8081",
		LogLevel:               "info",
		Theme:                  "stylesheet",
		SessionTTL:             time.Hour,
		SessionMax:             10,
		SessionCleanupInterval: time.Minute,
		RateLimitRPS:           5,
		RateLimitBurst:         20,
	}
}

func TestRunReturnsConfigError(t *testing.T) {
	var buf bytes.Buffer
	cfg := validConfig()
	cfg.Port = "abc"

	err := run(cfg, testLogger(&buf))
	if err == nil {
		t.Fatal("expected error for invalid configuration")
	}
	if !strings.Contains(buf.String(), "component=config") || !strings.Contains(buf.String(), "invalid port") {
		t.Errorf("config failure not logged: %s", buf.String())
	}
}

func TestRunReturnsThemeError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.toml")
	if err := os.WriteFile(path, []byte("card = [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	cfg := validConfig()
	cfg.ThemeFile = path

	err := run(cfg, testLogger(&buf))
	if err == nil || !strings.Contains(err.Error(), "loading theme") {
		t.Fatalf("run() = %v, want theme error", err)
	}
}
