package core

import "time"

// Clock returns the current wall-clock time. Each log call reads it
// exactly once.
type Clock func() time.Time

// SystemClock is the default Clock.
var SystemClock Clock = time.Now

// FixedClock returns a Clock that always reports t.
func FixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

// SplitTime decomposes t into whole seconds since the Unix epoch and
// the nanoseconds within that second. The nanosecond part is always in
// [0, 1e9), also for instants before the epoch, where the seconds part
// is rounded towards negative infinity.
func SplitTime(t time.Time) (sec int64, nsec int64) {
	return t.Unix(), int64(t.Nanosecond())
}
