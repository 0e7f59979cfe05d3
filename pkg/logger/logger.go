// Package logger keeps a zap logger in the request context so fields such as
// the request ID or a job ID follow a call through every layer.
package logger

import (
	"context"
	"log/slog"

	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
	"go.uber.org/zap/zapcore"
)

// Environments understood by Setup.
const (
	// DevelopmentEnvironment logs human readable lines from debug level up.
	DevelopmentEnvironment = "development"
	// ProductionEnvironment logs JSON from info level up.
	ProductionEnvironment = "production"
)

// fallback serves contexts without a logger. It discards everything until
// Setup runs, so library code and tests can log without configuring anything.
var fallback = zap.NewNop() //nolint: gochecknoglobals

// Setup builds the process logger for environment. level ("debug", "info",
// "warn", "error") overrides the environment default; an empty or unknown
// level is ignored.
func Setup(environment string, level string) {
	cfg := zap.NewDevelopmentConfig()
	if environment == ProductionEnvironment {
		cfg = zap.NewProductionConfig()
	}
	if lvl, err := zapcore.ParseLevel(level); level != "" && err == nil {
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}

	if l, err := cfg.Build(); err == nil {
		fallback = l
	}
}

type ctxKey struct{}

// Get returns the logger attached to ctx, or the process logger.
func Get(ctx context.Context) *zap.Logger {
	if l, _ := ctx.Value(ctxKey{}).(*zap.Logger); l != nil {
		return l
	}

	return fallback
}

func WithLogger(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// WithFields returns a context whose logger adds fields to every entry.
func WithFields(ctx context.Context, fields ...zapcore.Field) context.Context {
	return WithLogger(ctx, Get(ctx).With(fields...))
}

// Slog returns a log/slog logger writing to the context logger's core, for
// libraries such as River that log through slog.
func Slog(ctx context.Context) *slog.Logger {
	return slog.New(zapslog.NewHandler(Get(ctx).Core()))
}

// IsDebug reports whether the context logger emits debug entries. Use it to
// skip building expensive debug fields.
func IsDebug(ctx context.Context) bool {
	return Get(ctx).Core().Enabled(zapcore.DebugLevel)
}

func Debug(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Debug(msg, fields...)
}

func Info(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Info(msg, fields...)
}

func Warn(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Warn(msg, fields...)
}

func Error(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Error(msg, fields...)
}

// Fatal logs and exits the process.
func Fatal(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Fatal(msg, fields...)
}
