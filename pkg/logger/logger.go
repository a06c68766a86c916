// Package logger builds the service's zap loggers: one process-wide logger
// for the server and standalone ones for tools.
package logger

import (
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const defaultLevel = zapcore.InfoLevel

var (
	global *zap.Logger
	once   sync.Once
)

// New builds a JSON logger at level. An unknown level falls back to info.
func New(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = defaultLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.MessageKey = "message"
	cfg.EncoderConfig.LevelKey = "level"
	cfg.EncoderConfig.CallerKey = "caller"

	return cfg.Build()
}

// Init sets up the process-wide logger. Only the first call has effect.
func Init(level string) error {
	var err error
	once.Do(func() {
		global, err = New(level)
	})
	return err
}

// Get returns the process-wide logger, or a no-op logger before Init.
func Get() *zap.Logger {
	if global == nil {
		return zap.NewNop()
	}
	return global
}

func Sync() {
	if global != nil {
		_ = global.Sync()
	}
}

// GooseLogger routes goose migration output through zap.
type GooseLogger struct {
	sugar *zap.SugaredLogger
}

func NewGooseLogger(logger *zap.Logger) *GooseLogger {
	return &GooseLogger{sugar: logger.Named("goose").Sugar()}
}

func (g *GooseLogger) Fatalf(format string, v ...interface{}) {
	g.sugar.Fatalf(format, v...)
}

func (g *GooseLogger) Printf(format string, v ...interface{}) {
	g.sugar.Infof(strings.TrimSuffix(format, "\n"), v...)
}
