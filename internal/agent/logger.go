package agent

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Verbosity levels of command line.
const (
	VerboseQuiet = 1 // only fatal messages
	VerboseDebug = 2
	VerboseError = 3
)

func verboseLevel(verbose int) zapcore.Level {
	switch verbose {
	case VerboseDebug:
		return zapcore.DebugLevel
	case VerboseError:
		return zapcore.ErrorLevel
	default:
		return zapcore.FatalLevel
	}
}

// NewLogger creates development logger with level from verbosity.
func NewLogger(verbose int) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(verboseLevel(verbose))
	cfg.DisableStacktrace = true
	return cfg.Build()
}
