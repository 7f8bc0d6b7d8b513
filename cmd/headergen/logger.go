package main

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/yacobolo/headergen/internal/report"
)

// newLogger returns the console logger used by all commands.
// Diagnostics go to stderr so that JSON reports on stdout stay clean.
func newLogger(verbose, quiet, color bool) *zap.Logger {
	level := zapcore.WarnLevel
	switch {
	case verbose:
		level = zapcore.DebugLevel
	case quiet:
		level = zapcore.ErrorLevel
	}

	ec := zap.NewDevelopmentEncoderConfig()
	ec.CallerKey = zapcore.OmitKey
	ec.TimeKey = zapcore.OmitKey
	if report.ShouldUseColors(color) {
		ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		ec.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(ec), zapcore.Lock(os.Stderr), zap.NewAtomicLevelAt(level))
	return zap.New(core)
}
