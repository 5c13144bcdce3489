package logger

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu     sync.RWMutex
	global = &Logger{z: zap.NewNop()}
)

// Logger is a thin wrapper around zap that takes a context on every call,
// so call sites can stay uniform if request-scoped fields are added later.
type Logger struct {
	z *zap.Logger
}

// Init builds the global logger. Level is a zap level string ("debug",
// "info", ...); asJSON switches between JSON and console encoding.
func Init(level string, asJSON bool) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	if !asJSON {
		cfg.Encoding = "console"
		cfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}

	z, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()
	global = &Logger{z: z}
	return nil
}

// SetNopLogger silences the global logger. Used in tests.
func SetNopLogger() {
	mu.Lock()
	defer mu.Unlock()
	global = &Logger{z: zap.NewNop()}
}

// L returns the current global logger.
func L() *Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

// With returns a child of the global logger carrying extra fields.
func With(fields ...Field) *Logger {
	return &Logger{z: L().z.With(fields...)}
}

func (l *Logger) With(fields ...Field) *Logger {
	return &Logger{z: l.z.With(fields...)}
}

func (l *Logger) Debug(_ context.Context, msg string, fields ...Field) {
	l.z.Debug(msg, fields...)
}

func (l *Logger) Info(_ context.Context, msg string, fields ...Field) {
	l.z.Info(msg, fields...)
}

func (l *Logger) Warn(_ context.Context, msg string, fields ...Field) {
	l.z.Warn(msg, fields...)
}

func (l *Logger) Error(_ context.Context, msg string, fields ...Field) {
	l.z.Error(msg, fields...)
}

func Debug(ctx context.Context, msg string, fields ...Field) { L().Debug(ctx, msg, fields...) }
func Info(ctx context.Context, msg string, fields ...Field)  { L().Info(ctx, msg, fields...) }
func Warn(ctx context.Context, msg string, fields ...Field)  { L().Warn(ctx, msg, fields...) }
func Error(ctx context.Context, msg string, fields ...Field) { L().Error(ctx, msg, fields...) }
