// Package formatter turns a level, a logger name and an argument list
// into one line of text.
//
// AppendHeader writes the prefix
//
//	[CEST 2019-08-23 13:42:58:123456789] [Main:INFO]<TAB>
//
// and AppendMessage writes the arguments joined by single spaces.
// Both append to a caller-provided []byte and perform no I/O, so the
// logger can reuse one buffer for every line. Scalars are rendered
// with strconv's Append functions; everything else goes through
// fmt.Append and prints exactly what fmt.Sprint would.
//
// Line buffers larger than 64 KiB are not kept by ResetBuffer to
// prevent a single large log line from permanently inflating memory
// usage.
package formatter
