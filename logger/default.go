package logger

import (
	"os"
	"sync"

	"github.com/philipp01105/teelog/sink"
)

var (
	defaultLogger *Logger
	defaultMu     sync.RWMutex
)

func init() {
	defaultLogger = New("main", os.Stdout, sink.IsTerminal(os.Stdout))
}

// Default returns the default logger
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger. A nil logger is ignored.
func SetDefault(l *Logger) {
	if l == nil {
		return
	}
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Package-level convenience functions using the default logger

// Info logs at INFO using the default logger
func Info(args ...any) {
	Default().log(InfoLevel, args)
}

// Warn logs at WARN using the default logger
func Warn(args ...any) {
	Default().log(WarnLevel, args)
}

// Error logs at ERROR using the default logger
func Error(args ...any) {
	Default().log(ErrorLevel, args)
}

// Fatal logs at FATAL using the default logger. It does not exit.
func Fatal(args ...any) {
	Default().log(FatalLevel, args)
}

// Debug logs at DEBUG using the default logger
func Debug(args ...any) {
	Default().log(DebugLevel, args)
}

// Trace logs at TRACE using the default logger
func Trace(args ...any) {
	Default().log(TraceLevel, args)
}
