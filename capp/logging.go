package capp

import (
	"github.com/chainhttp/chttp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger creates a zap logger configured from the environment.
// CHTTP_LOG_LEVEL controls the level (debug, info, warn, error).
func NewLogger(env Environment) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(env.logLevel())
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg.Build()
}

type zapLogger struct{ *zap.Logger }

func (l zapLogger) LogParserFallback(contentType string) {
	l.Logger.Debug("no parser for content type, falling back to raw bytes",
		zap.String("content_type", contentType))
}

func (l zapLogger) LogBodyCloseError(err error) {
	l.Logger.Error("error while closing response body", zap.Error(err))
}

// NewChttpLogger adapts a zap logger to the [chttp.Logger] interface.
func NewChttpLogger(l *zap.Logger) chttp.Logger {
	return zapLogger{l.Named("chttp")}
}
