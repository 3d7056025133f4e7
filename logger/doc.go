// Package logger is the public API of teelog. Most users only need to
// import this package.
//
// A Logger has a fixed name and writes every call as one line:
//
//	[CEST 2019-08-23 13:42:58:123456789] [Main:INFO]	Count: 5 3.14
//
// Arguments of any type are rendered as by fmt.Sprint and joined by
// single spaces. Levels are tags only; nothing is filtered and Fatal
// does not exit.
//
//	log := logger.New("Main", os.Stdout, sink.IsTerminal(os.Stdout))
//	log.Info("Count:", 5, 3.14)
//
// Lines are written synchronously to every sink, in the order the sinks
// were attached, and flushed. Sinks belong to the caller and must stay
// open while the Logger is in use. Attaching a second sink with AddSink
// turns color off for good:
//
//	f, _ := os.Create("app.log")
//	defer f.Close()
//	log.AddSink(f)
//
// A Logger is safe for concurrent use. One mutex covers building the
// line and writing it to all sinks, so lines never interleave. It is
// not reentrant: a String or Error method of a logged value must not
// log to the same Logger.
//
// The package initializes a default Logger named "main" on stdout in
// init(). The package-level functions Info, Warn, etc. delegate to it.
package logger
