// Package logging builds the logr.Logger used across cratemover, backed by zap.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a console logger writing to w at the given level string.
func New(level string, w io.Writer) (logr.Logger, error) {
	lower := strings.ToLower(level)
	encCfg := zap.NewProductionEncoderConfig()
	var zapLevel zapcore.Level
	switch lower {
	case "debug":
		encCfg = zap.NewDevelopmentEncoderConfig()
		zapLevel = zapcore.DebugLevel
	case "info", "":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return logr.Logger{}, fmt.Errorf("unknown log level %q (expected debug, info, warn, or error)", level)
	}
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.AddSync(w),
		zap.NewAtomicLevelAt(zapLevel),
	)
	return zapr.NewLogger(zap.New(core)), nil
}
