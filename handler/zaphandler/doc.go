// Package zaphandler provides a zapcore.Core that writes through a
// *logger.Logger, so code instrumented with go.uber.org/zap produces
// teelog lines.
//
// zap levels map one to one for Debug, Info, Warn and Error; DPanic,
// Panic and Fatal all become FATAL. zap still panics or exits for
// those levels after the line is written, as it does with any core.
// Fields are appended to the message as key=value; namespaces become
// dotted key prefixes. A named zap logger adds logger=<name> right after
// the message, and zap.Inline objects are spread into their own keys in
// sorted order.
package zaphandler
