package core

import "strings"

// Level tags a log line. Levels have no ordering; nothing is filtered
// by level.
type Level int8

const (
	// InfoLevel for general informational messages
	InfoLevel Level = iota
	// WarnLevel for warnings
	WarnLevel
	// ErrorLevel for errors
	ErrorLevel
	// FatalLevel for fatal conditions. Logging at this level does not exit.
	FatalLevel
	// DebugLevel for debugging output
	DebugLevel
	// TraceLevel for very detailed tracing
	TraceLevel
)

// ANSI escape sequences used for level tags.
const (
	ColorReset = "\x1b[0m"

	colorBlack  = "\x1b[30m"
	colorRed    = "\x1b[31m"
	colorGreen  = "\x1b[32m"
	colorYellow = "\x1b[33m"
	colorBlue   = "\x1b[34m"
	bgRed       = "\x1b[41m"
)

// levelStyle is one row of the level table.
type levelStyle struct {
	tag   string
	color string
}

var levelTable = [...]levelStyle{
	InfoLevel:  {tag: "INFO", color: colorBlue},
	WarnLevel:  {tag: "WARN", color: colorYellow},
	ErrorLevel: {tag: "ERROR", color: colorRed},
	FatalLevel: {tag: "FATAL", color: colorBlack + bgRed},
	DebugLevel: {tag: "DEBUG", color: colorGreen},
	TraceLevel: {tag: "TRACE", color: ColorReset},
}

// Levels lists every level in declaration order.
var Levels = [...]Level{InfoLevel, WarnLevel, ErrorLevel, FatalLevel, DebugLevel, TraceLevel}

// Valid reports whether l is one of the declared levels.
func (l Level) Valid() bool {
	return l >= 0 && int(l) < len(levelTable)
}

// String returns the tag printed in the header, e.g. "WARN".
func (l Level) String() string {
	if !l.Valid() {
		return "UNKNOWN"
	}
	return levelTable[l].tag
}

// Color returns the escape sequence that starts the colored tag.
// Unknown levels get the reset code.
func (l Level) Color() string {
	if !l.Valid() {
		return ColorReset
	}
	return levelTable[l].color
}

// ParseLevel converts a string to a Level. Unknown input maps to
// InfoLevel.
func ParseLevel(s string) Level {
	switch strings.ToUpper(s) {
	case "INFO":
		return InfoLevel
	case "WARN", "WARNING":
		return WarnLevel
	case "ERROR":
		return ErrorLevel
	case "FATAL":
		return FatalLevel
	case "DEBUG":
		return DebugLevel
	case "TRACE":
		return TraceLevel
	default:
		return InfoLevel
	}
}
