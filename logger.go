package retropda

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger handles logging for the PDA shell
type Logger struct {
	enabled bool
	z       *zap.SugaredLogger
}

// NewLogger creates a console logger. Debug output is only written when
// debug is true; warnings and errors are always written.
func NewLogger(debug bool) *Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}
	base, err := cfg.Build()
	if err != nil {
		base = zap.NewNop()
	}
	return &Logger{enabled: true, z: base.Sugar().Named("pda")}
}

// NewNopLogger returns a logger that discards everything
func NewNopLogger() *Logger {
	return &Logger{enabled: false, z: zap.NewNop().Sugar()}
}

// WrapLogger adapts an existing zap logger
func WrapLogger(z *zap.Logger) *Logger {
	if z == nil {
		return NewNopLogger()
	}
	return &Logger{enabled: true, z: z.Sugar()}
}

// Debug logs a debug message
func (l *Logger) Debug(format string, args ...interface{}) {
	if l == nil || !l.enabled {
		return
	}
	l.z.Debugf(format, args...)
}

// Info logs an informational message
func (l *Logger) Info(format string, args ...interface{}) {
	if l == nil || !l.enabled {
		return
	}
	l.z.Infof(format, args...)
}

// Warn logs a warning message
func (l *Logger) Warn(format string, args ...interface{}) {
	if l == nil || !l.enabled {
		return
	}
	l.z.Warnf(format, args...)
}

// Error logs an error message
func (l *Logger) Error(format string, args ...interface{}) {
	if l == nil || !l.enabled {
		return
	}
	l.z.Errorf(format, args...)
}

// With returns a child logger carrying the given key/value pairs on every entry.
func (l *Logger) With(keysAndValues ...interface{}) *Logger {
	if l == nil {
		return NewNopLogger()
	}
	return &Logger{enabled: l.enabled, z: l.z.With(keysAndValues...)}
}

// Named returns a child logger with a name segment appended.
func (l *Logger) Named(name string) *Logger {
	if l == nil {
		return NewNopLogger()
	}
	return &Logger{enabled: l.enabled, z: l.z.Named(name)}
}

// SetEnabled enables or disables logging
func (l *Logger) SetEnabled(enabled bool) {
	l.enabled = enabled
}

// Sync flushes buffered entries.
func (l *Logger) Sync() error {
	if l == nil {
		return nil
	}
	if err := l.z.Sync(); err != nil {
		return fmt.Errorf("sync logger: %w", err)
	}
	return nil
}
