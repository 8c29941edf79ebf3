package logger

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the global SugaredLogger. It starts as a no-op logger so packages can
// log unconditionally before Initialize runs.
var Log *zap.SugaredLogger = zap.NewNop().Sugar()

// Initialize replaces the global logger with a production logger at the given level.
func Initialize(level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	logger, err := cfg.Build()
	if err != nil {
		return err
	}

	Log = logger.Sugar()
	return nil
}

// requestIDKey is the context key carrying the per-request id assigned by the
// logging middleware.
type requestIDKey struct{}

// ContextWithRequestID returns a copy of ctx carrying the request id.
func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// RequestIDFromContext returns the request id carried by ctx, or "" when none is set.
func RequestIDFromContext(ctx context.Context) string {
	requestID, _ := ctx.Value(requestIDKey{}).(string)
	return requestID
}

// FromContext returns the global logger annotated with the request id carried
// by ctx, so lines written by handlers, services and repositories while
// serving one HTTP request can be correlated. Without a request id it returns
// the global logger unchanged.
func FromContext(ctx context.Context) *zap.SugaredLogger {
	if requestID := RequestIDFromContext(ctx); requestID != "" {
		return Log.With("request_id", requestID)
	}
	return Log
}
