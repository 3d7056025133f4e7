// Package sink delivers finished log lines to caller-owned writers.
//
// A sink is any io.Writer. Fanout keeps them in registration order and
// writes every line to each of them, followed by a flush for writers
// that implement Flusher. Nothing is returned to the caller: write and
// flush failures only bump that sink's Stats, and the sink is tried
// again on the next line.
//
// IsTerminal is the capability check used to decide whether a primary
// sink may receive ANSI color codes.
package sink
