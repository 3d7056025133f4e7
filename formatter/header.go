package formatter

import (
	"time"

	"github.com/philipp01105/teelog/core"
)

// headerTimeLayout renders "<TZ> <YYYY-MM-DD> <HH:MM:SS>".
const headerTimeLayout = "MST 2006-01-02 15:04:05"

// nanoDigits is the width of the zero-padded sub-second field.
const nanoDigits = 9

// AppendHeader appends the line prefix for one entry to dst:
//
//	[<TZ> <YYYY-MM-DD> <HH:MM:SS>:<nanoseconds>] [<name>:<TAG>]<TAB>
//
// The calendar part is rendered from the whole seconds of now in loc
// (time.Local when loc is nil); the nanosecond part is the remainder
// within that second. When color is true the tag is wrapped in the
// level's color code and the reset code.
func AppendHeader(dst []byte, now time.Time, loc *time.Location, name string, level core.Level, color bool) []byte {
	if loc == nil {
		loc = time.Local
	}
	sec, nsec := core.SplitTime(now)

	dst = append(dst, '[')
	dst = time.Unix(sec, 0).In(loc).AppendFormat(dst, headerTimeLayout)
	dst = append(dst, ':')
	dst = appendNanos(dst, nsec)
	dst = append(dst, "] ["...)
	dst = append(dst, name...)
	dst = append(dst, ':')
	if color {
		dst = append(dst, level.Color()...)
		dst = append(dst, level.String()...)
		dst = append(dst, core.ColorReset...)
	} else {
		dst = append(dst, level.String()...)
	}
	return append(dst, ']', '\t')
}

// appendNanos appends n as exactly nanoDigits decimal digits.
func appendNanos(dst []byte, n int64) []byte {
	var digits [nanoDigits]byte
	for i := nanoDigits - 1; i >= 0; i-- {
		digits[i] = byte('0' + n%10)
		n /= 10
	}
	return append(dst, digits[:]...)
}
