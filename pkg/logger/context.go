package logger

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const (
	// Context keys for logger fields
	requestIDKey contextKey = "request_id"
	visitorIDKey contextKey = "visitor_id"
	sourceKey    contextKey = "source"
)

// WithRequestID adds request ID to context
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// WithVisitorID adds visitor ID to context
func WithVisitorID(ctx context.Context, visitorID string) context.Context {
	return context.WithValue(ctx, visitorIDKey, visitorID)
}

// WithSource adds the submission source to context
func WithSource(ctx context.Context, source string) context.Context {
	return context.WithValue(ctx, sourceKey, source)
}

// FromContext builds a logger carrying the request ID, visitor ID and
// submission source accumulated on the context. The middleware attaches
// the identity fields, so service and dispatch logs stay correlated to
// the request without threading fields by hand.
func FromContext(ctx context.Context) *zap.Logger {
	l := Logger
	if l == nil {
		// Fallback to a basic logger if not initialized
		l, _ = zap.NewProduction()
	}

	var fields []zap.Field

	if requestID, ok := ctx.Value(requestIDKey).(string); ok && requestID != "" {
		fields = append(fields, zap.String("request_id", requestID))
	}

	if visitorID, ok := ctx.Value(visitorIDKey).(string); ok && visitorID != "" {
		fields = append(fields, zap.String("visitor_id", visitorID))
	}

	if source, ok := ctx.Value(sourceKey).(string); ok && source != "" {
		fields = append(fields, zap.String("source", source))
	}

	if len(fields) > 0 {
		l = l.With(fields...)
	}

	return l
}

// Dynamic log level management

// SetLogLevel dynamically changes the log level
func SetLogLevel(level string) error {
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		return err
	}

	SetLevel(zapLevel)
	return nil
}

// GetLogLevel returns the current log level
func GetLogLevel() string {
	return GetLevel().String()
}
