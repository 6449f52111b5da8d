package logger

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// TraceLevel sits one step below zap's DebugLevel.
const TraceLevel = zapcore.DebugLevel - 1

// DefaultLevel is used when no level is configured.
const DefaultLevel = zapcore.WarnLevel

// ParseLevel maps a level name to its zap level. An empty name yields DefaultLevel.
func ParseLevel(name string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "":
		return DefaultLevel, nil
	case "trace":
		return TraceLevel, nil
	case "debug":
		return zapcore.DebugLevel, nil
	case "info":
		return zapcore.InfoLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return DefaultLevel, fmt.Errorf("unknown log level %q", name)
	}
}

// Trace writes msg at TraceLevel.
func Trace(l *zap.Logger, msg string, fields ...zap.Field) {
	if ce := l.WithOptions(zap.AddCallerSkip(1)).Check(TraceLevel, msg); ce != nil {
		ce.Write(fields...)
	}
}

// levelEncoder extends the capital and lowercase zap encoders with a name for TraceLevel.
func levelEncoder(console bool) zapcore.LevelEncoder {
	return func(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
		switch {
		case l == TraceLevel && console:
			// magenta, same escape layout zap uses for the other levels
			enc.AppendString("\x1b[35mTRACE\x1b[0m")
		case l == TraceLevel:
			enc.AppendString("trace")
		case console:
			zapcore.CapitalColorLevelEncoder(l, enc)
		default:
			zapcore.LowercaseLevelEncoder(l, enc)
		}
	}
}
