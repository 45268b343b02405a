package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	applog "expenses/internal/log"
	"expenses/internal/ui"
)

type Config struct {
	// HTTP Server
	Port     string
	LogLevel string

	// UI
	Theme     string
	ThemeFile string

	// Sessions
	SessionTTL             time.Duration
	SessionMax             int
	SessionCleanupInterval time.Duration

	// Rate limiting (POST/DELETE only)
	RateLimitRPS   float64
	RateLimitBurst int

	// Demo data for new sessions
	SeedDemo  bool
	SeedCount int

	MetricsEnabled bool

	// Extra proxy networks, besides loopback and private ranges, whose
	// X-Forwarded-For header is trusted
	TrustedProxies []string
}

// LoadEnvFile loads variables from the given .env files without overriding
// the ones already set. A missing default ".env" is not an error.
func LoadEnvFile(paths ...string) error {
	if len(paths) == 0 {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("loading .env: %w", err)
		}
		return nil
	}
	if err := godotenv.Load(paths...); err != nil {
		return fmt.Errorf("loading env files %v: %w", paths, err)
	}
	return nil
}

func Load() *Config {
	return &Config{
		Port:     getEnv("PORT", "8081"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		Theme:     getEnv("UI_THEME", ui.StylesheetTheme.Name),
		ThemeFile: getEnv("UI_THEME_FILE", ""),

		SessionTTL:             getEnvDuration("SESSION_TTL", 2*time.Hour),
		SessionMax:             getEnvInt("SESSION_MAX", 1000),
		SessionCleanupInterval: getEnvDuration("SESSION_CLEANUP_INTERVAL", 10*time.Minute),

		RateLimitRPS:   getEnvFloat("RATE_LIMIT_RPS", 5),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 20),

		SeedDemo:  getEnvBool("SEED_DEMO", false),
		SeedCount: getEnvInt("SEED_COUNT", 8),

		MetricsEnabled: getEnvBool("METRICS_ENABLED", true),

		TrustedProxies: getEnvList("TRUSTED_PROXIES"),
	}
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errs []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errs = append(errs, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errs = append(errs, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if _, err := applog.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Sprintf("invalid log level '%s': must be one of [debug info warn error]", c.LogLevel))
	}

	themes := ui.ThemeNames()
	if !slices.Contains(themes, c.Theme) {
		errs = append(errs, fmt.Sprintf("invalid theme '%s': must be one of %v", c.Theme, themes))
	}
	if c.ThemeFile != "" {
		if _, err := os.Stat(c.ThemeFile); err != nil {
			errs = append(errs, fmt.Sprintf("theme file does not exist: %s", c.ThemeFile))
		}
	}

	if c.SessionTTL < time.Minute {
		errs = append(errs, fmt.Sprintf("invalid session TTL %v: must be at least 1 minute", c.SessionTTL))
	}
	if c.SessionMax < 1 {
		errs = append(errs, fmt.Sprintf("invalid session max %d: must be at least 1", c.SessionMax))
	}
	if c.SessionCleanupInterval < time.Second {
		errs = append(errs, fmt.Sprintf("invalid session cleanup interval %v: must be at least 1 second", c.SessionCleanupInterval))
	}

	if c.RateLimitRPS <= 0 {
		errs = append(errs, fmt.Sprintf("invalid rate limit %v: must be positive", c.RateLimitRPS))
	}
	if c.RateLimitBurst < 1 {
		errs = append(errs, fmt.Sprintf("invalid rate limit burst %d: must be at least 1", c.RateLimitBurst))
	}

	if c.SeedDemo && (c.SeedCount < 1 || c.SeedCount > 100) {
		errs = append(errs, fmt.Sprintf("invalid seed count %d: must be between 1 and 100", c.SeedCount))
	}

	for _, cidr := range c.TrustedProxies {
		if _, _, err := net.ParseCIDR(cidr); err != nil {
			errs = append(errs, fmt.Sprintf("invalid trusted proxy '%s': must be a CIDR", cidr))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

// getEnvList splits a comma-separated variable, dropping empty items.
func getEnvList(key string) []string {
	var out []string
	for _, item := range strings.Split(os.Getenv(key), ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
