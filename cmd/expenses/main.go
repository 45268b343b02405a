package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"expenses/internal/cache"
	"expenses/internal/config"
	"expenses/internal/demo"
	apphttp "expenses/internal/http"
	applog "expenses/internal/log"
	"expenses/internal/metrics"
	"expenses/internal/middleware/ratelimit"
	"expenses/internal/session"
	"expenses/internal/ui"
)

// demoSeedBase fixes the demo data so a restart shows the same sample sessions.
const demoSeedBase = 1

func main() {
	// Load .env file for local development
	if err := config.LoadEnvFile(); err != nil {
		applog.New(applog.DefaultConfig()).Warn("Ignoring .env file", applog.FieldError, err)
	}

	cfg := config.Load()
	level, _ := applog.ParseLevel(cfg.LogLevel)
	logger := applog.New(applog.Config{Level: level, Component: applog.ComponentApp, Output: os.Stdout})
	applog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("Server exited with error", applog.FieldError, err, "port", cfg.Port)
		os.Exit(1)
	}
	logger.Info("Server stopped gracefully")
}

// run wires the server and blocks until it stops. Deferred cleanup runs
// before main decides the exit code.
func run(cfg *config.Config, logger *applog.Logger) error {
	if err := cfg.Validate(); err != nil {
		logger.WithComponent(applog.ComponentConfig).Error("Configuration validation failed",
			applog.FieldError, err, applog.FieldErrorType, applog.ErrorTypeConfiguration)
		return errors.New("invalid configuration")
	}

	theme, err := loadTheme(cfg)
	if err != nil {
		return fmt.Errorf("loading theme %q: %w", cfg.Theme, err)
	}
	renderer, err := ui.NewRenderer(theme)
	if err != nil {
		return fmt.Errorf("parsing templates: %w", err)
	}

	storeOpts := []session.Option{
		session.WithLogger(logger.WithComponent(applog.ComponentSession).Slog()),
	}
	if cfg.SeedDemo {
		storeOpts = append(storeOpts, session.WithSeed(demo.Seeder(demoSeedBase, cfg.SeedCount, time.Now)))
		logger.WithComponent(applog.ComponentDemo).Info("Demo data enabled",
			applog.FieldCount, cfg.SeedCount, applog.FieldOperation, applog.OpSeed)
	}
	sessions := session.NewStore(session.Config{TTL: cfg.SessionTTL, MaxEntries: cfg.SessionMax}, storeOpts...)

	caches := cache.NewManager(logger.WithComponent(applog.ComponentCache).Slog())
	caches.Register(sessions.Cache())
	caches.StartCleanup(cfg.SessionCleanupInterval)
	defer caches.Stop()

	srvOpts := []apphttp.Option{
		apphttp.WithLogger(logger),
		apphttp.WithRateLimit(ratelimit.Config{
			RequestsPerSecond: cfg.RateLimitRPS,
			Burst:             cfg.RateLimitBurst,
		}),
		apphttp.WithTrustedProxies(cfg.TrustedProxies...),
	}
	if cfg.MetricsEnabled {
		m := metrics.New(true)
		m.TrackActiveSessions(sessions.Len)
		srvOpts = append(srvOpts, apphttp.WithMetrics(m))
		logger.WithComponent(applog.ComponentMetrics).Info("Metrics exposed", applog.FieldPath, "/metrics")
	}
	srv := apphttp.NewServer(cfg.Addr(), renderer, sessions, srvOpts...)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Starting expenses server",
			applog.FieldOperation, applog.OpStartup,
			"port", cfg.Port,
			applog.FieldTheme, theme.Name)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutdown signal received", applog.FieldOperation, applog.OpShutdown)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// loadTheme picks the built-in theme, or the TOML file when one is configured.
func loadTheme(cfg *config.Config) (ui.Theme, error) {
	if cfg.ThemeFile != "" {
		return ui.LoadTheme(cfg.ThemeFile)
	}
	return ui.ThemeByName(cfg.Theme)
}
