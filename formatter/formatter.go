package formatter

import (
	"time"

	"github.com/philipp01105/teelog/core"
)

// maxRetainedBuffer caps the capacity of a line buffer kept for reuse.
const maxRetainedBuffer = 64 * 1024

// Config holds line formatter configuration
type Config struct {
	// Location renders the calendar part of the timestamp (default: time.Local)
	Location *time.Location
}

// LineFormatter renders complete log lines: header followed by the
// space-joined message.
type LineFormatter struct {
	Config
}

// NewLineFormatter creates a new line formatter
func NewLineFormatter(cfg Config) *LineFormatter {
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	return &LineFormatter{Config: cfg}
}

// AppendLine appends one log line, without the line terminator, to dst.
func (f *LineFormatter) AppendLine(dst []byte, now time.Time, name string, level core.Level, color bool, args ...any) []byte {
	dst = AppendHeader(dst, now, f.Location, name, level, color)
	return AppendMessage(dst, args...)
}

// ResetBuffer empties buf for reuse. Buffers that grew beyond 64 KiB
// are released so one large line does not pin memory.
func ResetBuffer(buf []byte) []byte {
	if cap(buf) > maxRetainedBuffer {
		return nil
	}
	return buf[:0]
}
