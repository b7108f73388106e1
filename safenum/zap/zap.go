// Package zap provides the zap-backed implementation of the safenum/log
// facade.
package zap

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/LerianStudio/lib-safenum/safenum/log"
)

// Logger adapts a *zap.Logger to the log.Logger interface.
type Logger struct {
	base *zap.Logger
}

// New wraps an existing zap logger.
func New(base *zap.Logger) *Logger {
	if base == nil {
		base = zap.NewNop()
	}

	return &Logger{base: base}
}

// NewProduction builds a Logger on top of zap's production preset.
func NewProduction() (*Logger, error) {
	base, err := zap.NewProduction()
	if err != nil {
		return nil, fmt.Errorf("build zap logger: %w", err)
	}

	return &Logger{base: base}, nil
}

// Log writes a single entry at the given level.
func (l *Logger) Log(_ context.Context, level log.Level, msg string, fields ...log.Field) {
	if ce := l.base.Check(toZapLevel(level), msg); ce != nil {
		ce.Write(toZapFields(fields)...)
	}
}

// With returns a logger with the given fields attached to every entry.
//
//nolint:ireturn
func (l *Logger) With(fields ...log.Field) log.Logger {
	return &Logger{base: l.base.With(toZapFields(fields)...)}
}

// Enabled reports whether entries at the given level would be written.
func (l *Logger) Enabled(level log.Level) bool {
	return l.base.Core().Enabled(toZapLevel(level))
}

func toZapLevel(level log.Level) zapcore.Level {
	switch level {
	case log.LevelDebug:
		return zapcore.DebugLevel
	case log.LevelInfo:
		return zapcore.InfoLevel
	case log.LevelWarn:
		return zapcore.WarnLevel
	case log.LevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func toZapFields(fields []log.Field) []zap.Field {
	zf := make([]zap.Field, 0, len(fields))
	for _, f := range fields {
		zf = append(zf, zap.Any(f.Key, f.Value))
	}

	return zf
}
