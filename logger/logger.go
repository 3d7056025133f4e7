package logger

import (
	"io"
	"sync"
	"time"

	"github.com/philipp01105/teelog/core"
	"github.com/philipp01105/teelog/formatter"
	"github.com/philipp01105/teelog/sink"
)

// Logger is a named log channel writing to one or more sinks.
// Use it through a *Logger; it must not be copied after construction.
type Logger struct {
	mu        sync.Mutex // guards buf, sinks and color
	name      string
	formatter *formatter.LineFormatter
	clock     core.Clock
	sinks     *sink.Fanout
	color     bool
	buf       []byte
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	name     string
	primary  io.Writer
	color    bool
	clock    core.Clock
	location *time.Location
}

// NewBuilder creates a new logger builder for a logger called name
func NewBuilder(name string) *Builder {
	return &Builder{
		name:  name,
		clock: core.SystemClock,
	}
}

// WithSink sets the primary sink (default: io.Discard)
func (b *Builder) WithSink(w io.Writer) *Builder {
	b.primary = w
	return b
}

// WithColor declares whether the primary sink is an interactive
// terminal that may receive ANSI color codes. See sink.IsTerminal.
func (b *Builder) WithColor(enabled bool) *Builder {
	b.color = enabled
	return b
}

// WithClock overrides the time source
func (b *Builder) WithClock(c core.Clock) *Builder {
	if c != nil {
		b.clock = c
	}
	return b
}

// WithLocation sets the time zone used in the header (default: time.Local)
func (b *Builder) WithLocation(loc *time.Location) *Builder {
	b.location = loc
	return b
}

// Build creates the Logger instance
func (b *Builder) Build() *Logger {
	primary := b.primary
	if primary == nil {
		primary = io.Discard
	}
	return &Logger{
		name:      b.name,
		formatter: formatter.NewLineFormatter(formatter.Config{Location: b.location}),
		clock:     b.clock,
		sinks:     sink.NewFanout(primary),
		color:     b.color,
		buf:       make([]byte, 0, 256),
	}
}

// New creates a Logger called name that writes to primary. terminal
// reports whether primary is an interactive terminal; only then are
// level tags colored.
func New(name string, primary io.Writer, terminal bool) *Logger {
	return NewBuilder(name).WithSink(primary).WithColor(terminal).Build()
}

// AddSink attaches another sink. Lines are written to sinks in the
// order they were added. Adding a sink permanently disables color,
// since escape codes must not reach files or other non-terminal
// writers. A nil sink is ignored.
func (l *Logger) AddSink(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.sinks.Add(w) {
		l.color = false
	}
}

// Name returns the logger's name
func (l *Logger) Name() string {
	return l.name
}

// Colored reports whether level tags are currently colored
func (l *Logger) Colored() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.color
}

// Stats returns write counters for every sink, in registration order
func (l *Logger) Stats() []sink.Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.sinks.Snapshots()
}

// Log writes one line at the given level. The arguments are rendered
// as by fmt.Sprint and joined by single spaces.
func (l *Logger) Log(level core.Level, args ...any) {
	l.log(level, args)
}

// log builds and writes a line while holding the lock. The buffer is
// emptied on every exit path, including a panic raised by a sink.
func (l *Logger) log(level core.Level, args []any) {
	l.mu.Lock()
	defer l.release()

	l.buf = l.formatter.AppendLine(l.buf, l.clock(), l.name, level, l.color, args...)
	l.buf = append(l.buf, '\n')
	l.sinks.WriteLine(l.buf)
}

func (l *Logger) release() {
	l.buf = formatter.ResetBuffer(l.buf)
	l.mu.Unlock()
}

// Info logs at INFO
func (l *Logger) Info(args ...any) {
	l.log(core.InfoLevel, args)
}

// Warn logs at WARN
func (l *Logger) Warn(args ...any) {
	l.log(core.WarnLevel, args)
}

// Error logs at ERROR
func (l *Logger) Error(args ...any) {
	l.log(core.ErrorLevel, args)
}

// Fatal logs at FATAL. Unlike many loggers it neither exits nor panics.
func (l *Logger) Fatal(args ...any) {
	l.log(core.FatalLevel, args)
}

// Debug logs at DEBUG
func (l *Logger) Debug(args ...any) {
	l.log(core.DebugLevel, args)
}

// Trace logs at TRACE
func (l *Logger) Trace(args ...any) {
	l.log(core.TraceLevel, args)
}
