// Package sloghandler provides an adapter from *logger.Logger to
// log/slog.Handler, so code written against the standard library's
// slog API can write teelog lines.
//
// Records map to levels as follows: below Debug is TRACE, Debug is
// DEBUG, Info is INFO, Warn is WARN, Error is ERROR and Error+4 and
// above is FATAL. Attributes are appended to the message as key=value,
// with group names joined by dots.
package sloghandler
