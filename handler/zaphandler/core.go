package zaphandler

import (
	"sort"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/teelog/core"
	"github.com/philipp01105/teelog/logger"
)

// Core implements zapcore.Core on top of a *logger.Logger.
type Core struct {
	log    *logger.Logger
	fields []any
	prefix string
}

// NewCore creates a zapcore.Core that writes through log.
func NewCore(log *logger.Logger) *Core {
	return &Core{log: log}
}

// New returns a *zap.Logger backed by log.
func New(log *logger.Logger, opts ...zap.Option) *zap.Logger {
	return zap.New(NewCore(log), opts...)
}

// Enabled always reports true; teelog does not filter by level.
func (c *Core) Enabled(zapcore.Level) bool {
	return true
}

// With returns a Core that appends fields to every entry.
func (c *Core) With(fields []zapcore.Field) zapcore.Core {
	clone := &Core{
		log:    c.log,
		fields: make([]any, len(c.fields), len(c.fields)+len(fields)),
		prefix: c.prefix,
	}
	copy(clone.fields, c.fields)
	clone.fields, clone.prefix = appendFields(clone.fields, clone.prefix, fields)
	return clone
}

// Check adds this core to ce.
func (c *Core) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	return ce.AddCore(ent, c)
}

// Write logs the entry as one line: the message, the logger name as
// logger=<name> when the zap logger is named, then key=value pairs for
// the core's and the entry's fields.
func (c *Core) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	args := make([]any, 0, 2+len(c.fields)+len(fields))
	args = append(args, ent.Message)
	if ent.LoggerName != "" {
		args = append(args, core.F("logger", ent.LoggerName))
	}
	args = append(args, c.fields...)
	args, _ = appendFields(args, c.prefix, fields)
	c.log.Log(zapLevelToCore(ent.Level), args...)
	return nil
}

// Sync is a no-op; every line is flushed when written.
func (c *Core) Sync() error {
	return nil
}

// zapLevelToCore converts a zapcore.Level to a core.Level.
func zapLevelToCore(level zapcore.Level) core.Level {
	switch level {
	case zapcore.DebugLevel:
		return core.DebugLevel
	case zapcore.InfoLevel:
		return core.InfoLevel
	case zapcore.WarnLevel:
		return core.WarnLevel
	case zapcore.ErrorLevel:
		return core.ErrorLevel
	case zapcore.DPanicLevel, zapcore.PanicLevel, zapcore.FatalLevel:
		return core.FatalLevel
	default:
		if level < zapcore.DebugLevel {
			return core.TraceLevel
		}
		return core.FatalLevel
	}
}

// appendFields renders zap fields as core.Fields. Namespaces become
// dotted key prefixes for the fields that follow them; the updated
// prefix is returned. A field without a key (zap.Inline) contributes
// every key its encoder produced, sorted.
func appendFields(dst []any, prefix string, fields []zapcore.Field) ([]any, string) {
	for _, f := range fields {
		switch f.Type {
		case zapcore.SkipType:
			continue
		case zapcore.NamespaceType:
			prefix = joinKey(prefix, f.Key)
			continue
		}

		enc := zapcore.NewMapObjectEncoder()
		f.AddTo(enc)
		if f.Key == "" {
			keys := make([]string, 0, len(enc.Fields))
			for k := range enc.Fields {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				dst = append(dst, core.F(joinKey(prefix, k), enc.Fields[k]))
			}
			continue
		}
		value, ok := enc.Fields[f.Key]
		if !ok {
			continue
		}
		dst = append(dst, core.F(joinKey(prefix, f.Key), value))
	}
	return dst, prefix
}

func joinKey(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}
