// Package logger is a thin facade over zap shared by the whole service.
// It keeps call sites decoupled from the logging backend.
package logger

import (
	"context"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var global = zap.NewNop()

// Init builds the process-wide logger. Call once at startup, before any
// component logs.
func Init(level string, asJSON bool) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var enc zapcore.Encoder
	if asJSON {
		enc = zapcore.NewJSONEncoder(encCfg)
	} else {
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(os.Stdout), lvl)
	global = zap.New(core)
	return nil
}

// Sync flushes buffered entries; used on shutdown.
func Sync() {
	_ = global.Sync()
}

// Logger carries pre-bound fields.
type Logger struct {
	l *zap.Logger
}

func With(fields ...Field) Logger {
	return Logger{l: global.With(fields...)}
}

func (lg Logger) Debug(_ context.Context, msg string, fields ...Field) {
	lg.l.Debug(msg, fields...)
}

func (lg Logger) Info(_ context.Context, msg string, fields ...Field) {
	lg.l.Info(msg, fields...)
}

func (lg Logger) Warn(_ context.Context, msg string, fields ...Field) {
	lg.l.Warn(msg, fields...)
}

func (lg Logger) Error(_ context.Context, msg string, fields ...Field) {
	lg.l.Error(msg, fields...)
}

func Debug(ctx context.Context, msg string, fields ...Field) { With().Debug(ctx, msg, fields...) }
func Info(ctx context.Context, msg string, fields ...Field)  { With().Info(ctx, msg, fields...) }
func Warn(ctx context.Context, msg string, fields ...Field)  { With().Warn(ctx, msg, fields...) }
func Error(ctx context.Context, msg string, fields ...Field) { With().Error(ctx, msg, fields...) }
