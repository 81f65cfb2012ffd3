package logging

import "go.uber.org/zap"

// ZapLogger adapts a *zap.Logger to the Logger interface, for callers
// who already run zap (as the cascache and junodb examples in this
// ecosystem do) and want envelope decode diagnostics folded into their
// existing structured logs instead of writing a bespoke adapter.
type ZapLogger struct {
	base *zap.Logger
}

// NewZapLogger wraps base. A nil base falls back to zap.NewNop().
func NewZapLogger(base *zap.Logger) *ZapLogger {
	if base == nil {
		base = zap.NewNop()
	}
	return &ZapLogger{base: base}
}

func (z *ZapLogger) Log(level Level, loc SourceLocation, msg string) {
	fields := []zap.Field{
		zap.String("file", loc.File),
		zap.String("func", loc.Func),
		zap.Int("line", loc.Line),
	}
	switch level {
	case LevelDebug:
		z.base.Debug(msg, fields...)
	case LevelWarn:
		z.base.Warn(msg, fields...)
	default:
		z.base.Error(msg, fields...)
	}
}
