package logger

import "github.com/philipp01105/teelog/core"

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	InfoLevel  = core.InfoLevel
	WarnLevel  = core.WarnLevel
	ErrorLevel = core.ErrorLevel
	FatalLevel = core.FatalLevel
	DebugLevel = core.DebugLevel
	TraceLevel = core.TraceLevel
)

// ParseLevel converts a string to a Level
func ParseLevel(s string) Level {
	return core.ParseLevel(s)
}
