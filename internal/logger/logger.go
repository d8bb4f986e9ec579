// Package logger builds the zap logger used by the ptreport CLI.
package logger

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a console logger writing to w. Debug messages are dropped
// unless debug is set.
func New(w io.Writer, debug bool) *zap.Logger {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.LevelKey = "level"
	encoderCfg.MessageKey = "message"
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	level := zapcore.InfoLevel
	opts := []zap.Option{zap.AddStacktrace(zapcore.FatalLevel)}
	if debug {
		level = zapcore.DebugLevel
		opts = append(opts, zap.AddCaller())
	} else {
		encoderCfg.CallerKey = zapcore.OmitKey
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderCfg), zapcore.AddSync(w), level)
	return zap.New(core, opts...)
}
