package log

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
)

// ContextKey type for context keys
type ContextKey string

const (
	// LoggerContextKey is the context key for the logger
	LoggerContextKey ContextKey = "logger"
)

// WithLogger stores a logger in the context
func WithLogger(ctx context.Context, logger *Logger) context.Context {
	return context.WithValue(ctx, LoggerContextKey, logger)
}

// FromContext extracts a logger from the request context
func FromContext(ctx context.Context) *Logger {
	if logger, ok := ctx.Value(LoggerContextKey).(*Logger); ok {
		return logger
	}
	return &Logger{
		Logger:    slog.Default(),
		component: "unknown",
	}
}

// StructuredLogger provides structured logging methods with context awareness
type StructuredLogger struct {
	logger *Logger
}

func NewStructuredLogger(logger *Logger) *StructuredLogger {
	return &StructuredLogger{logger: logger}
}

func (sl *StructuredLogger) emit(ctx context.Context, level slog.Level, msg string, fields LogFields) {
	l := sl.logger
	if c, ok := fields.Component(); ok {
		l = l.WithComponent(c)
	}
	l.Log(ctx, level, msg, fields.ToSlice()...)
}

// LogHTTPStart logs the start of an HTTP request
func (sl *StructuredLogger) LogHTTPStart(ctx context.Context, r *http.Request, requestID, clientIP string) {
	fields := NewFields().
		WithHTTPRequest(r.Method, r.URL.Path, r.URL.RawQuery, r.Header.Get("User-Agent"), r.Header.Get("Referer")).
		WithRequestID(requestID).
		WithClientIP(clientIP).
		WithComponent(ComponentHTTP)

	sl.emit(ctx, slog.LevelDebug, "HTTP request started", fields)
}

// LogHTTPEnd logs the completion of an HTTP request
func (sl *StructuredLogger) LogHTTPEnd(ctx context.Context, r *http.Request, requestID string, statusCode int, durationMs int64, clientIP string) {
	level := slog.LevelInfo
	if statusCode >= 400 && statusCode < 500 {
		level = slog.LevelWarn
	} else if statusCode >= 500 {
		level = slog.LevelError
	}

	fields := NewFields().
		WithHTTPRequest(r.Method, r.URL.Path, r.URL.RawQuery, "", "").
		WithHTTPResponse(statusCode, durationMs, statusCode < 400).
		WithRequestID(requestID).
		WithClientIP(clientIP).
		WithComponent(ComponentHTTP)

	sl.emit(ctx, level, "HTTP request completed", fields)
}

// LogExpenseCreated logs an accepted editor submission
func (sl *StructuredLogger) LogExpenseCreated(ctx context.Context, sessionID string, id int64, desc, amount, category string) {
	fields := NewFields().
		WithExpense(id, desc, amount, category).
		WithSession(sessionID).
		WithOperation(OpCreate).
		WithComponent(ComponentExpense)

	sl.emit(ctx, slog.LevelInfo, "Expense created", fields)
}

// LogExpenseDeleted logs removal of an expense by its owner
func (sl *StructuredLogger) LogExpenseDeleted(ctx context.Context, sessionID string, id int64) {
	fields := NewFields().
		WithSession(sessionID).
		WithOperation(OpDelete).
		WithComponent(ComponentExpense)
	fields[FieldExpenseID] = id

	sl.emit(ctx, slog.LevelInfo, "Expense deleted", fields)
}

// LogSubmissionRejected logs a submit that failed validation
func (sl *StructuredLogger) LogSubmissionRejected(ctx context.Context, sessionID string, invalid []string) {
	fields := NewFields().
		WithSession(sessionID).
		WithOperation(OpValidate).
		WithErrorType(ErrorTypeValidation).
		WithComponent(ComponentEditor)
	fields[FieldInvalidFields] = strings.Join(invalid, ",")

	sl.emit(ctx, slog.LevelInfo, "Expense submission rejected", fields)
}

// LogError logs an error with structured context
func (sl *StructuredLogger) LogError(ctx context.Context, msg string, err error, component string, operation string, fields LogFields) {
	if fields == nil {
		fields = NewFields()
	}
	fields.
		WithError(err).
		WithOperation(operation).
		WithComponent(component)
	if _, ok := fields[FieldErrorType]; !ok {
		fields.WithErrorType(ErrorTypeInternal)
	}

	sl.emit(ctx, slog.LevelError, msg, fields)
}
