package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Fields carries structured context attached to log entries.
type Fields map[string]any

// Logger is the logging facade used across the application. Components
// receive a Logger rather than a concrete implementation so tests can
// swap in a no-op.
type Logger interface {
	Debug(msg string, fields ...Fields)
	Info(msg string, fields ...Fields)
	Warn(msg string, fields ...Fields)
	Error(msg string, fields ...Fields)
	WithFields(fields Fields) Logger
}

type zapLogger struct {
	sugar *zap.SugaredLogger
}

// NewLogger creates a console logger at the given level. Unknown level
// strings fall back to info.
func NewLogger(level string) Logger {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	if lvl, err := zapcore.ParseLevel(level); err == nil {
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}

	l, err := cfg.Build(zap.WithCaller(false))
	if err != nil {
		l = zap.NewNop()
	}

	return &zapLogger{sugar: l.Sugar()}
}

// NewDefaultLogger creates a logger at info level.
func NewDefaultLogger() Logger {
	return NewLogger("info")
}

// NewNopLogger creates a logger that discards everything.
func NewNopLogger() Logger {
	return &zapLogger{sugar: zap.NewNop().Sugar()}
}

// WithFields creates a default logger pre-populated with fields.
func WithFields(fields Fields) Logger {
	return NewDefaultLogger().WithFields(fields)
}

func (z *zapLogger) Debug(msg string, fields ...Fields) {
	z.sugar.Debugw(msg, flatten(fields)...)
}

func (z *zapLogger) Info(msg string, fields ...Fields) {
	z.sugar.Infow(msg, flatten(fields)...)
}

func (z *zapLogger) Warn(msg string, fields ...Fields) {
	z.sugar.Warnw(msg, flatten(fields)...)
}

func (z *zapLogger) Error(msg string, fields ...Fields) {
	z.sugar.Errorw(msg, flatten(fields)...)
}

func (z *zapLogger) WithFields(fields Fields) Logger {
	return &zapLogger{sugar: z.sugar.With(flatten([]Fields{fields})...)}
}

func flatten(fields []Fields) []any {
	var kv []any
	for _, f := range fields {
		for k, v := range f {
			kv = append(kv, k, v)
		}
	}
	return kv
}
