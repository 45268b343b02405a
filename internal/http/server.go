package http

import (
	"context"
	"io/fs"
	"net/http"
	"time"

	applog "expenses/internal/log"
	"expenses/internal/metrics"
	"expenses/internal/middleware/ratelimit"
	"expenses/internal/middleware/security"
	"expenses/internal/middleware/trace"
	"expenses/internal/session"
	"expenses/internal/ui"
	appweb "expenses/web"
)

// Server serves the expense tracker UI.
type Server struct {
	http.Server

	renderer *ui.Renderer
	sessions *session.Store
	logger   *applog.Logger
	sl       *applog.StructuredLogger
	metrics  *metrics.Metrics
	detector *security.Detector
	limiter  *ratelimit.Limiter

	exposeMetrics  bool
	rateConfig     ratelimit.Config
	headers        security.HeadersConfig
	trustedProxies []string
}

// Option configures a Server.
type Option func(*Server)

func WithLogger(l *applog.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// WithMetrics records into m and serves it on /metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Server) {
		s.metrics = m
		s.exposeMetrics = true
	}
}

func WithRateLimit(cfg ratelimit.Config) Option {
	return func(s *Server) { s.rateConfig = cfg }
}

func WithSecurityHeaders(cfg security.HeadersConfig) Option {
	return func(s *Server) { s.headers = cfg }
}

// WithTrustedProxies trusts forwarding headers from the given CIDR networks
// in addition to loopback and private ranges.
func WithTrustedProxies(cidrs ...string) Option {
	return func(s *Server) { s.trustedProxies = append(s.trustedProxies, cidrs...) }
}

// NewServer wires routes and middleware. Call Shutdown to release the
// rate limiter's background goroutine.
func NewServer(addr string, renderer *ui.Renderer, sessions *session.Store, opts ...Option) *Server {
	s := &Server{
		renderer:   renderer,
		sessions:   sessions,
		detector:   security.NewDetector(),
		rateConfig: ratelimit.DefaultConfig(),
		headers:    security.DefaultHeadersConfig(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = applog.New(applog.DefaultConfig())
	}
	s.logger = s.logger.WithComponent(applog.ComponentHTTP)
	s.sl = applog.NewStructuredLogger(s.logger)
	for _, cidr := range s.trustedProxies {
		if err := s.detector.AddTrustedProxy(cidr); err != nil {
			s.logger.Warn("Ignoring trusted proxy", applog.FieldError, err)
		}
	}
	if s.metrics == nil {
		s.metrics = metrics.New(false)
	}
	s.limiter = ratelimit.NewLimiter(s.rateConfig)

	s.Server = http.Server{
		Addr:              addr,
		Handler:           s.middleware(s.routes()),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return s
}

func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()

	if sub, err := fs.Sub(appweb.StaticFS, "static"); err == nil {
		static := http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
		mux.Handle("GET /static/", security.StaticAssetMiddleware(3600)(static))
	} else {
		s.logger.Warn("Failed to mount embedded static FS", applog.FieldError, err)
	}

	s.route(mux, "GET /healthz", handleHealth)
	s.route(mux, "GET /readyz", s.handleReady)
	if s.exposeMetrics {
		mux.Handle("GET /metrics", s.metrics.Handler())
	}

	s.route(mux, "GET /{$}", s.app(s.handleIndex))
	s.route(mux, "GET "+ui.ListPath, s.app(s.handleList))
	s.route(mux, "POST "+ui.FieldPath, s.app(s.handleFieldUpdate))
	s.route(mux, "POST "+ui.SubmitPath, s.app(s.handleSubmit))
	s.route(mux, "DELETE /expenses/{id}", s.app(s.handleDelete))
	s.route(mux, "POST /expenses/{id}/delete", s.app(s.handleDelete))

	return mux
}

// app binds h to the caller's session. Its responses are never cached.
func (s *Server) app(h http.HandlerFunc) http.HandlerFunc {
	return security.NoStore(s.withSession(h)).ServeHTTP
}

// route registers h and records request count and latency under pattern.
func (s *Server) route(mux *http.ServeMux, pattern string, h http.HandlerFunc) {
	mux.Handle(pattern, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := trace.NewResponseWriter(w)
		h(rw, r)
		s.metrics.ObserveHTTP(r.Method, pattern, rw.Status(), time.Since(start))
	}))
}

// middleware wraps the mux: trace, security headers, suspicious-request detection, then
// rate limiting on state-changing methods.
func (s *Server) middleware(next http.Handler) http.Handler {
	h := s.limiter.Middleware(s.detector.ExtractClientIP, s.onRateLimited, http.MethodPost, http.MethodDelete)(next)
	h = s.detect(h)
	h = security.NewHeadersMiddleware(s.headers).Middleware(h)
	h = trace.NewMiddleware(s.logger, s.detector.ExtractClientIP).Middleware(h)
	return h
}

func (s *Server) detect(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if reason := s.detector.Inspect(r); reason != "" {
			applog.FromContext(r.Context()).WithComponent(applog.ComponentSecurity).
				WarnContext(r.Context(), "Suspicious request",
					"reason", reason,
					applog.FieldClientIP, s.detector.ExtractClientIP(r),
					applog.FieldPath, r.URL.Path)
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) onRateLimited(w http.ResponseWriter, r *http.Request) {
	s.metrics.RateLimited()
	applog.FromContext(r.Context()).WithComponent(applog.ComponentRateLimit).
		WarnContext(r.Context(), "Rate limit exceeded",
			applog.FieldClientIP, s.detector.ExtractClientIP(r),
			applog.FieldErrorType, applog.ErrorTypeRateLimited)
	TooManyRequestsError("Too many requests. Please slow down.").Write(w)
}

// Shutdown stops background work and gracefully shuts the listener down.
func (s *Server) Shutdown(ctx context.Context) error {
	s.limiter.Stop()
	return s.Server.Shutdown(ctx)
}
