package sink

import "io"

// Flusher is implemented by sinks that buffer writes, such as
// *bufio.Writer. Fanout flushes them after every line.
type Flusher interface {
	Flush() error
}

// Fanout writes each line to an ordered list of sinks. The sinks are
// referenced, never owned: Fanout does not open or close them.
//
// Fanout is not safe for concurrent use; the owning logger serializes
// access to it.
type Fanout struct {
	sinks []io.Writer
	stats []*Stats
}

// NewFanout creates a fan-out over the given sinks, in order. nil
// sinks are skipped.
func NewFanout(sinks ...io.Writer) *Fanout {
	f := &Fanout{}
	for _, w := range sinks {
		f.Add(w)
	}
	return f
}

// Add appends a sink. It reports false, and does nothing, for a nil
// sink.
func (f *Fanout) Add(w io.Writer) bool {
	if w == nil {
		return false
	}
	f.sinks = append(f.sinks, w)
	f.stats = append(f.stats, NewStats())
	return true
}

// WriteLine writes line, which must end with the line terminator, to
// every sink in registration order and flushes sinks that implement
// Flusher. Failures are counted per sink and never reported; a failing
// sink is tried again on the next line.
func (f *Fanout) WriteLine(line []byte) {
	for i, w := range f.sinks {
		if writeLine(w, line) {
			f.stats[i].IncrementWritten()
		} else {
			f.stats[i].IncrementFailed()
		}
	}
}

// writeLine performs the write and flush for one sink.
func writeLine(w io.Writer, line []byte) bool {
	n, err := w.Write(line)
	if err == nil && n < len(line) {
		err = io.ErrShortWrite
	}
	if fl, ok := w.(Flusher); ok {
		if ferr := fl.Flush(); err == nil {
			err = ferr
		}
	}
	return err == nil
}

// Snapshots returns the counters of every sink, in registration order.
func (f *Fanout) Snapshots() []Snapshot {
	out := make([]Snapshot, len(f.stats))
	for i, s := range f.stats {
		out[i] = s.GetSnapshot()
	}
	return out
}
