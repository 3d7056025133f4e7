package sloghandler

import (
	"context"
	"log/slog"

	"github.com/philipp01105/teelog/core"
	"github.com/philipp01105/teelog/logger"
)

// Handler implements slog.Handler on top of a *logger.Logger. Each
// record becomes one line: the message followed by key=value pairs.
type Handler struct {
	log   *logger.Logger
	attrs []any
	group string
}

// New creates a slog.Handler that writes through log.
func New(log *logger.Logger) *Handler {
	return &Handler{log: log}
}

// Enabled always reports true; teelog does not filter by level.
func (h *Handler) Enabled(context.Context, slog.Level) bool {
	return true
}

// Handle writes the record as one log line.
func (h *Handler) Handle(_ context.Context, record slog.Record) error {
	args := make([]any, 0, 1+len(h.attrs)+record.NumAttrs())
	args = append(args, record.Message)
	args = append(args, h.attrs...)
	record.Attrs(func(a slog.Attr) bool {
		args = appendAttr(args, h.group, a)
		return true
	})
	h.log.Log(slogLevelToCore(record.Level), args...)
	return nil
}

// WithAttrs returns a new Handler with additional attributes.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]any, len(h.attrs), len(h.attrs)+len(attrs))
	copy(newAttrs, h.attrs)
	for _, a := range attrs {
		newAttrs = appendAttr(newAttrs, h.group, a)
	}
	return &Handler{log: h.log, attrs: newAttrs, group: h.group}
}

// WithGroup returns a new Handler that prefixes later keys with name.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	newGroup := name
	if h.group != "" {
		newGroup = h.group + "." + name
	}
	newAttrs := make([]any, len(h.attrs))
	copy(newAttrs, h.attrs)
	return &Handler{log: h.log, attrs: newAttrs, group: newGroup}
}

// slogLevelToCore converts a slog.Level to a core.Level.
func slogLevelToCore(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError+4:
		return core.FatalLevel
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	case level >= slog.LevelDebug:
		return core.DebugLevel
	default:
		return core.TraceLevel
	}
}

// appendAttr appends a as one or more Fields, flattening groups into
// dotted keys. Empty attributes are dropped as slog requires.
func appendAttr(dst []any, group string, a slog.Attr) []any {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return dst
	}

	key := a.Key
	if group != "" && key != "" {
		key = group + "." + key
	} else if key == "" {
		key = group
	}

	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			dst = appendAttr(dst, key, ga)
		}
		return dst
	}
	return append(dst, core.F(key, a.Value.Any()))
}
